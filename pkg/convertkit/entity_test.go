package convertkit_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEntity_Get(t *testing.T) {
	t.Parallel()

	entity := convertkit.NewEntity(map[string]interface{}{"name": "landing page"}, nil)

	value, err := entity.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "landing page", value)
}

func TestEntity_GetMissingKeyReturnsKeyError(t *testing.T) {
	t.Parallel()

	entity := convertkit.NewEntity(map[string]interface{}{}, nil)

	_, err := entity.Get("nope")
	require.Error(t, err)
	assert.True(t, convertkit.IsKeyError(err))

	keyErr := &convertkit.KeyError{}
	require.ErrorAs(t, err, &keyErr)
	assert.Equal(t, "nope", keyErr.Key)
}

func TestEntity_Int64CoercesNumericTypes(t *testing.T) {
	t.Parallel()

	entity := convertkit.NewEntity(map[string]interface{}{
		"from_decoder": json.Number("9007199254740993"),
		"from_float":   float64(42),
		"from_int":     7,
	}, nil)

	n, err := entity.Int64("from_decoder")
	require.NoError(t, err)
	assert.Equal(t, int64(9007199254740993), n)

	n, err = entity.Int64("from_float")
	require.NoError(t, err)
	assert.Equal(t, int64(42), n)

	n, err = entity.Int64("from_int")
	require.NoError(t, err)
	assert.Equal(t, int64(7), n)
}

func TestEntity_IDAndName(t *testing.T) {
	t.Parallel()

	form := convertkit.NewForm(map[string]interface{}{
		"id":   json.Number("12"),
		"name": "newsletter",
	}, nil)

	id, err := form.ID()
	require.NoError(t, err)
	assert.Equal(t, int64(12), id)

	name, err := form.Name()
	require.NoError(t, err)
	assert.Equal(t, "newsletter", name)
}

func TestEntity_TotalSubscriptions(t *testing.T) {
	t.Parallel()

	course := convertkit.NewCourse(map[string]interface{}{
		"id":                  json.Number("3"),
		"total_subscriptions": json.Number("240"),
	}, nil)

	n, ok := course.TotalSubscriptions()
	assert.True(t, ok)
	assert.Equal(t, int64(240), n)

	bare := convertkit.NewCourse(map[string]interface{}{"id": json.Number("4")}, nil)
	_, ok = bare.TotalSubscriptions()
	assert.False(t, ok)
}

func TestEntity_RawReturnsACopy(t *testing.T) {
	t.Parallel()

	entity := convertkit.NewEntity(map[string]interface{}{"name": "original"}, nil)

	raw := entity.Raw()
	raw["name"] = "mutated"

	value, err := entity.Get("name")
	require.NoError(t, err)
	assert.Equal(t, "original", value)
}

func TestEntity_StringSortsKeys(t *testing.T) {
	t.Parallel()

	entity := convertkit.NewEntity(map[string]interface{}{
		"zeta":  1,
		"alpha": 2,
	}, nil)

	rendered := entity.String()
	assert.Contains(t, rendered, "alpha")
	assert.Less(t, strings.Index(rendered, "alpha"), strings.Index(rendered, "zeta"))
}

func TestForm_String(t *testing.T) {
	t.Parallel()

	form := convertkit.NewForm(map[string]interface{}{
		"id":    json.Number("12"),
		"name":  "newsletter",
		"title": "Join the newsletter",
	}, nil)

	rendered := form.String()
	assert.Contains(t, rendered, "12")
	assert.Contains(t, rendered, "newsletter")
	assert.Contains(t, rendered, "Join the newsletter")
}

func TestEntity_MarshalJSON(t *testing.T) {
	t.Parallel()

	tag := convertkit.NewTag(map[string]interface{}{
		"id":   json.Number("5"),
		"name": "customer",
	}, nil)

	encoded, err := json.Marshal(tag)
	require.NoError(t, err)

	var decoded map[string]interface{}
	require.NoError(t, json.Unmarshal(encoded, &decoded))
	assert.Equal(t, "customer", decoded["name"])
	assert.InDelta(t, float64(5), decoded["id"], 0)
}

func TestNewSubscription_WrapsNestedSubscriber(t *testing.T) {
	t.Parallel()

	subscription := convertkit.NewSubscription(map[string]interface{}{
		"id":    json.Number("99"),
		"state": "active",
		"subscriber": map[string]interface{}{
			"id":            json.Number("100"),
			"email_address": "reader@example.com",
		},
	}, nil)

	subscriber := subscription.Subscriber()
	require.NotNil(t, subscriber)

	email, err := subscriber.Email()
	require.NoError(t, err)
	assert.Equal(t, "reader@example.com", email)

	id, err := subscriber.ID()
	require.NoError(t, err)
	assert.Equal(t, int64(100), id)

	// Raw unwraps the nested entity back to plain data.
	raw := subscription.Raw()
	nested, ok := raw["subscriber"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "reader@example.com", nested["email_address"])
}

func TestNewSubscription_WithoutSubscriber(t *testing.T) {
	t.Parallel()

	subscription := convertkit.NewSubscription(map[string]interface{}{
		"id": json.Number("99"),
	}, nil)

	assert.Nil(t, subscription.Subscriber())
}
