package client

import (
	"context"
	"fmt"

	"github.com/convertkit-go/convertkit/pkg/convertkit"
)

// SequencesClient implements convertkit.SequencesClient. Sequences live
// under the legacy /courses endpoint.
type SequencesClient struct {
	client *Client
}

// NewSequencesClient creates a new sequences client.
func NewSequencesClient(client *Client) *SequencesClient {
	return &SequencesClient{client: client}
}

// List implements convertkit.SequencesClient.List.
func (c *SequencesClient) List(ctx context.Context, opts *convertkit.ListOptions) ([]*convertkit.Course, error) {
	courses, err := convertkit.FetchAll(ctx, c.client, convertkit.CoursesEndpoint, "courses", nil, opts.IsLazy(),
		func(raw map[string]interface{}) *convertkit.Course {
			return convertkit.NewCourse(raw, c.client)
		})
	if err != nil {
		return nil, fmt.Errorf("listing sequences: %w", err)
	}

	return courses, nil
}

// Find implements convertkit.SequencesClient.Find. Lookup is by id only;
// the located sequence is returned as a fresh entity whose
// total_subscriptions attribute reflects the subscriptions fetched for it
// (page 1 only when the query is lazy).
func (c *SequencesClient) Find(ctx context.Context, query convertkit.SequenceQuery) (*convertkit.Course, error) {
	if query.Name != "" {
		return nil, fmt.Errorf("find sequence by name: %w", convertkit.ErrNotSupported)
	}

	courses, err := c.List(ctx, nil)
	if err != nil {
		return nil, err
	}

	var course *convertkit.Course

	for _, candidate := range courses {
		if id, err := candidate.ID(); err == nil && id == query.ID {
			course = candidate

			break
		}
	}

	if course == nil {
		return nil, fmt.Errorf("%w: id=%d", convertkit.ErrSequenceNotFound, query.ID)
	}

	subscriptions, err := c.client.ListSubscriptions(ctx, course, &convertkit.SubscriptionListOptions{Lazy: query.Lazy})
	if err != nil {
		return nil, fmt.Errorf("fetching sequence subscription stats: %w", err)
	}

	data := course.Raw()
	data["total_subscriptions"] = int64(len(subscriptions))

	return convertkit.NewCourse(data, c.client), nil
}
