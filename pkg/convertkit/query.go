package convertkit

import (
	"fmt"
	"net/url"

	"github.com/google/go-querystring/query"
)

// ListOptions expresses common list parameters. Lazy stops pagination
// after the first page; it never reaches the wire.
type ListOptions struct {
	Lazy bool `url:"-"`
}

// IsLazy reports the lazy flag, tolerating a nil receiver.
func (o *ListOptions) IsLazy() bool {
	return o != nil && o.Lazy
}

// SubscriptionListOptions expresses the parameters accepted by the
// subscription listing endpoints.
type SubscriptionListOptions struct {
	// SortOrder is asc or desc; the API defaults to asc.
	SortOrder string `url:"sort_order,omitempty"`
	// SubscriberState filters by subscriber state (e.g. active, cancelled).
	SubscriberState string `url:"subscriber_state,omitempty"`
	// Lazy stops pagination after the first page.
	Lazy bool `url:"-"`
}

// Values encodes the options as query parameters.
func (o *SubscriptionListOptions) Values() (url.Values, error) {
	if o == nil {
		return url.Values{}, nil
	}

	values, err := query.Values(o)
	if err != nil {
		return nil, fmt.Errorf("encoding subscription list options: %w", err)
	}

	return values, nil
}

// IsLazy reports the lazy flag, tolerating a nil receiver.
func (o *SubscriptionListOptions) IsLazy() bool {
	return o != nil && o.Lazy
}
