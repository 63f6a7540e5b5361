package convertkit_test

import (
	"testing"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListOptions_IsLazy(t *testing.T) {
	t.Parallel()

	var nilOpts *convertkit.ListOptions

	assert.False(t, nilOpts.IsLazy())
	assert.False(t, (&convertkit.ListOptions{}).IsLazy())
	assert.True(t, (&convertkit.ListOptions{Lazy: true}).IsLazy())
}

func TestSubscriptionListOptions_Values(t *testing.T) {
	t.Parallel()

	opts := &convertkit.SubscriptionListOptions{
		SortOrder:       "desc",
		SubscriberState: "active",
		Lazy:            true,
	}

	values, err := opts.Values()
	require.NoError(t, err)
	assert.Equal(t, "desc", values.Get("sort_order"))
	assert.Equal(t, "active", values.Get("subscriber_state"))

	// Lazy is client-side only and never reaches the wire.
	_, present := values["lazy"]
	assert.False(t, present)
}

func TestSubscriptionListOptions_ValuesOmitsEmptyFields(t *testing.T) {
	t.Parallel()

	values, err := (&convertkit.SubscriptionListOptions{}).Values()
	require.NoError(t, err)
	assert.Empty(t, values.Encode())
}

func TestSubscriptionListOptions_NilReceiver(t *testing.T) {
	t.Parallel()

	var opts *convertkit.SubscriptionListOptions

	values, err := opts.Values()
	require.NoError(t, err)
	assert.Empty(t, values)
	assert.False(t, opts.IsLazy())
}
