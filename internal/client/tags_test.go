package client_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTagsClient_Create(t *testing.T) {
	t.Parallel()

	requests := 0
	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests++

		assert.Equal(t, "/tags", request.URL.Path)
		assert.Equal(t, "POST", request.Method)

		require.NoError(t, request.ParseForm())
		assert.Equal(t, "test-key", request.PostForm.Get("api_key"))
		assert.Equal(t, "customer", request.PostForm.Get("name"))
		assert.Equal(t, "paying customers", request.PostForm.Get("description"))

		writer.WriteHeader(http.StatusCreated)
		writeJSON(t, writer, map[string]interface{}{"id": 5, "name": "customer"})
	}, "")

	tag, err := client.Tags().Create(context.Background(), "customer", "paying customers")
	require.NoError(t, err)
	assert.Equal(t, 1, requests)

	id, err := tag.ID()
	require.NoError(t, err)
	assert.Equal(t, int64(5), id)

	name, err := tag.Name()
	require.NoError(t, err)
	assert.Equal(t, "customer", name)
}

func TestTagsClient_Find(t *testing.T) {
	t.Parallel()

	handler := func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, map[string]interface{}{
			"tags": []interface{}{
				map[string]interface{}{"id": 1, "name": "lead"},
				map[string]interface{}{"id": 2, "name": "customer"},
			},
			"page":        1,
			"total_pages": 1,
		})
	}

	t.Run("first match on either criterion wins", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, handler, "")

		// Tag 1 matches the name before tag 2 matches the id.
		tag, err := client.Tags().Find(context.Background(), convertkit.TagQuery{ID: 2, Name: "lead"})
		require.NoError(t, err)

		id, err := tag.ID()
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("matches by id", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, handler, "")

		tag, err := client.Tags().Find(context.Background(), convertkit.TagQuery{ID: 2})
		require.NoError(t, err)

		name, err := tag.Name()
		require.NoError(t, err)
		assert.Equal(t, "customer", name)
	})

	t.Run("absence is not an error", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, handler, "")

		tag, err := client.Tags().Find(context.Background(), convertkit.TagQuery{Name: "missing"})
		require.NoError(t, err)
		assert.Nil(t, tag)
	})
}
