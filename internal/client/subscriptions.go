package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/convertkit-go/convertkit/internal/constants"
	"github.com/convertkit-go/convertkit/pkg/convertkit"
)

// ListSubscriptions implements convertkit.Client.ListSubscriptions for any
// Subscribable entity. Secret-gated: the check runs before any request.
func (c *Client) ListSubscriptions(ctx context.Context, sub convertkit.Subscribable, opts *convertkit.SubscriptionListOptions) ([]*convertkit.Subscription, error) {
	secret, err := c.httpClient.Secret()
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	id, err := sub.EntityID()
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	params, err := opts.Values()
	if err != nil {
		return nil, err
	}

	params.Set(constants.APISecretParam, secret)

	path := fmt.Sprintf("%s/%d/subscriptions", sub.CollectionEndpoint(), id)

	subscriptions, err := convertkit.FetchAll(ctx, c, path, "subscriptions", params, opts.IsLazy(),
		func(raw map[string]interface{}) *convertkit.Subscription {
			return convertkit.NewSubscription(raw, c)
		})
	if err != nil {
		return nil, fmt.Errorf("listing subscriptions: %w", err)
	}

	return subscriptions, nil
}

// AddSubscriber implements convertkit.Client.AddSubscriber: a single POST
// to the entity's subscribe endpoint, merging any extra form parameters.
func (c *Client) AddSubscriber(ctx context.Context, sub convertkit.Subscribable, email, firstName string, extra url.Values) (*convertkit.Subscription, error) {
	id, err := sub.EntityID()
	if err != nil {
		return nil, fmt.Errorf("adding subscriber: %w", err)
	}

	form := url.Values{}
	for key, values := range extra {
		form[key] = append([]string(nil), values...)
	}

	form.Set("email", email)

	if firstName != "" {
		form.Set("first_name", firstName)
	}

	path := fmt.Sprintf("%s/%d/subscribe", sub.CollectionEndpoint(), id)

	envelope, err := c.PostFormJSON(ctx, path, form)
	if err != nil {
		return nil, fmt.Errorf("adding subscriber: %w", err)
	}

	raw, ok := envelope["subscription"].(map[string]interface{})
	if !ok {
		return nil, fmt.Errorf("%w: subscription", convertkit.ErrMissingEnvelope)
	}

	return convertkit.NewSubscription(raw, c), nil
}
