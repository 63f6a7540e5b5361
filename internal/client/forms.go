package client

import (
	"context"
	"fmt"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
)

// FormsClient implements convertkit.FormsClient.
type FormsClient struct {
	client *Client
}

// NewFormsClient creates a new forms client.
func NewFormsClient(client *Client) *FormsClient {
	return &FormsClient{client: client}
}

// List implements convertkit.FormsClient.List.
func (c *FormsClient) List(ctx context.Context, opts *convertkit.ListOptions) ([]*convertkit.Form, error) {
	forms, err := convertkit.FetchAll(ctx, c.client, convertkit.FormsEndpoint, "forms", nil, opts.IsLazy(),
		func(raw map[string]interface{}) *convertkit.Form {
			return convertkit.NewForm(raw, c.client)
		})
	if err != nil {
		return nil, fmt.Errorf("listing forms: %w", err)
	}

	return forms, nil
}

// Find implements convertkit.FormsClient.Find. Both criteria apply when
// both are set; the search must resolve to exactly one form.
func (c *FormsClient) Find(ctx context.Context, query convertkit.FormQuery) (*convertkit.Form, error) {
	forms, err := c.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	matches := make([]*convertkit.Form, 0, len(forms))

	for _, form := range forms {
		if query.ID != 0 {
			id, err := form.ID()
			if err != nil || id != query.ID {
				continue
			}
		}

		if query.Name != "" {
			name, err := form.Name()
			if err != nil || name != query.Name {
				continue
			}
		}

		matches = append(matches, form)
	}

	if len(matches) == 0 {
		return nil, fmt.Errorf("%w: id=%d name=%q", convertkit.ErrFormNotFound, query.ID, query.Name)
	}

	if len(matches) > 1 {
		return nil, fmt.Errorf("%w: id=%d name=%q", convertkit.ErrAmbiguousForm, query.ID, query.Name)
	}

	return matches[0], nil
}
