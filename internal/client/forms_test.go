package client_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	. "github.com/convertkit-go/convertkit/internal/client"
	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc, secret string) (convertkit.Client, *httptest.Server) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	client, err := New(&convertkit.Config{
		APIKey:    "test-key",
		APISecret: secret,
		BaseURL:   server.URL,
	})
	require.NoError(t, err)

	return client, server
}

func writeJSON(t *testing.T, writer http.ResponseWriter, payload map[string]interface{}) {
	t.Helper()
	require.NoError(t, json.NewEncoder(writer).Encode(payload))
}

func TestFormsClient_List(t *testing.T) {
	t.Parallel()

	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/forms", request.URL.Path)
		assert.Equal(t, "test-key", request.URL.Query().Get("api_key"))

		switch request.URL.Query().Get("page") {
		case "2":
			writeJSON(t, writer, map[string]interface{}{
				"forms":       []interface{}{map[string]interface{}{"id": 3, "name": "waitlist"}},
				"page":        2,
				"total_pages": 2,
			})
		default:
			writeJSON(t, writer, map[string]interface{}{
				"forms": []interface{}{
					map[string]interface{}{"id": 1, "name": "newsletter"},
					map[string]interface{}{"id": 2, "name": "landing"},
				},
				"page":        1,
				"total_pages": 2,
			})
		}
	}, "")

	forms, err := client.Forms().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, forms, 3)

	id, err := forms[2].ID()
	require.NoError(t, err)
	assert.Equal(t, int64(3), id)
}

func TestFormsClient_ListLazy(t *testing.T) {
	t.Parallel()

	requests := 0
	client, _ := newTestClient(t, func(writer http.ResponseWriter, request *http.Request) {
		requests++
		writeJSON(t, writer, map[string]interface{}{
			"forms":       []interface{}{map[string]interface{}{"id": 1, "name": "newsletter"}},
			"page":        1,
			"total_pages": 4,
		})
	}, "")

	forms, err := client.Forms().List(context.Background(), &convertkit.ListOptions{Lazy: true})
	require.NoError(t, err)
	assert.Len(t, forms, 1)
	assert.Equal(t, 1, requests)
}

func TestFormsClient_Find(t *testing.T) {
	t.Parallel()

	handler := func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, map[string]interface{}{
			"forms": []interface{}{
				map[string]interface{}{"id": 1, "name": "newsletter"},
				map[string]interface{}{"id": 2, "name": "landing"},
				map[string]interface{}{"id": 3, "name": "landing"},
			},
			"page":        1,
			"total_pages": 1,
		})
	}

	t.Run("matches by name", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, handler, "")

		form, err := client.Forms().Find(context.Background(), convertkit.FormQuery{Name: "newsletter"})
		require.NoError(t, err)

		id, err := form.ID()
		require.NoError(t, err)
		assert.Equal(t, int64(1), id)
	})

	t.Run("applies id and name together", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, handler, "")

		form, err := client.Forms().Find(context.Background(), convertkit.FormQuery{ID: 3, Name: "landing"})
		require.NoError(t, err)

		id, err := form.ID()
		require.NoError(t, err)
		assert.Equal(t, int64(3), id)
	})

	t.Run("no match is an error", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, handler, "")

		_, err := client.Forms().Find(context.Background(), convertkit.FormQuery{Name: "missing"})
		require.Error(t, err)
		assert.True(t, convertkit.IsNotFound(err))
	})

	t.Run("multiple matches are ambiguous", func(t *testing.T) {
		t.Parallel()

		client, _ := newTestClient(t, handler, "")

		_, err := client.Forms().Find(context.Background(), convertkit.FormQuery{Name: "landing"})
		require.Error(t, err)
		assert.ErrorIs(t, err, convertkit.ErrAmbiguousForm)
	})
}
