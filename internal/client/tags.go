package client

import (
	"context"
	"fmt"
	"net/url"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
)

// TagsClient implements convertkit.TagsClient.
type TagsClient struct {
	client *Client
}

// NewTagsClient creates a new tags client.
func NewTagsClient(client *Client) *TagsClient {
	return &TagsClient{client: client}
}

// List implements convertkit.TagsClient.List.
func (c *TagsClient) List(ctx context.Context, opts *convertkit.ListOptions) ([]*convertkit.Tag, error) {
	tags, err := convertkit.FetchAll(ctx, c.client, convertkit.TagsEndpoint, "tags", nil, opts.IsLazy(),
		func(raw map[string]interface{}) *convertkit.Tag {
			return convertkit.NewTag(raw, c.client)
		})
	if err != nil {
		return nil, fmt.Errorf("listing tags: %w", err)
	}

	return tags, nil
}

// Create implements convertkit.TagsClient.Create with a single POST.
func (c *TagsClient) Create(ctx context.Context, name, description string) (*convertkit.Tag, error) {
	form := url.Values{}
	form.Set("name", name)
	form.Set("description", description)

	envelope, err := c.client.PostFormJSON(ctx, convertkit.TagsEndpoint, form)
	if err != nil {
		return nil, fmt.Errorf("creating tag: %w", err)
	}

	return convertkit.NewTag(envelope, c.client), nil
}

// Find implements convertkit.TagsClient.Find: first tag whose id or name
// matches wins. An exhausted search returns (nil, nil); unlike form
// lookup, absence is not an error here.
func (c *TagsClient) Find(ctx context.Context, query convertkit.TagQuery) (*convertkit.Tag, error) {
	tags, err := c.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	for _, tag := range tags {
		if query.ID != 0 {
			if id, err := tag.ID(); err == nil && id == query.ID {
				return tag, nil
			}
		}

		if query.Name != "" {
			if name, err := tag.Name(); err == nil && name == query.Name {
				return tag, nil
			}
		}
	}

	return nil, nil
}
