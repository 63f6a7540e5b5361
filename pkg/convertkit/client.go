package convertkit

import (
	"context"
	"net/url"
)

// DefaultBaseURL is the versioned ConvertKit API endpoint.
const DefaultBaseURL = "https://api.convertkit.com/v3"

// FormsClient provides access to form resources.
type FormsClient interface {
	// List fetches every form visible to the API key, aggregating pages
	// unless opts requests lazy pagination.
	List(ctx context.Context, opts *ListOptions) ([]*Form, error)
	// Find lists all forms and filters by the query's id and/or name; both
	// criteria apply when both are set. Zero matches fail with
	// ErrFormNotFound, more than one with ErrAmbiguousForm.
	Find(ctx context.Context, query FormQuery) (*Form, error)
}

// TagsClient provides access to tag resources.
type TagsClient interface {
	List(ctx context.Context, opts *ListOptions) ([]*Tag, error)
	// Create issues a single POST to the tags endpoint and returns the
	// created tag.
	Create(ctx context.Context, name, description string) (*Tag, error)
	// Find returns the first tag whose id or name matches the query.
	// No match returns (nil, nil); absence is not an error here.
	Find(ctx context.Context, query TagQuery) (*Tag, error)
}

// SequencesClient provides access to sequence (course) resources.
type SequencesClient interface {
	List(ctx context.Context, opts *ListOptions) ([]*Course, error)
	// Find locates a sequence by id and fetches its subscription stats,
	// honoring the query's Lazy flag. Lookup by name is not implemented
	// and fails with ErrNotSupported.
	Find(ctx context.Context, query SequenceQuery) (*Course, error)
}

// Client is the facade over the ConvertKit API. Entities returned by any
// operation carry a reference back to the client that produced them, so
// follow-up calls such as Form.ListSubscriptions work without re-wiring.
type Client interface {
	Forms() FormsClient
	Tags() TagsClient
	Sequences() SequencesClient

	// Account fetches the authenticated account's metadata. Secret-gated:
	// fails with ErrSecretRequired before any network call when the client
	// was built without an API secret.
	Account(ctx context.Context) (*Account, error)

	// ListSubscriptions lists subscriptions for any entity type that
	// supports them (forms, tags, sequences). Secret-gated.
	ListSubscriptions(ctx context.Context, sub Subscribable, opts *SubscriptionListOptions) ([]*Subscription, error)

	// AddSubscriber subscribes an email address to the given entity with a
	// single POST, merging any extra form parameters, and returns the
	// created subscription.
	AddSubscriber(ctx context.Context, sub Subscribable, email, firstName string, extra url.Values) (*Subscription, error)
}

// FormQuery selects a form by id and/or name. Both criteria are applied
// when both are set.
type FormQuery struct {
	ID   int64
	Name string
}

// TagQuery selects a tag by id or name, whichever matches first.
type TagQuery struct {
	ID   int64
	Name string
}

// SequenceQuery selects a sequence by id. Name is accepted for parity with
// the other finders but is not implemented. Lazy skips pagination when
// fetching the sequence's subscription stats.
type SequenceQuery struct {
	ID   int64
	Name string
	Lazy bool
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a convertkit.Client.
//
// APIKey is required for every request. APISecret is optional; operations
// documented as secret-gated (Account, ListSubscriptions) fail with
// ErrSecretRequired when it is absent. Requests are issued synchronously
// with no retries unless RetryMax is set.
type Config struct {
	// APIKey authenticates every request (required).
	APIKey string
	// APISecret unlocks secret-gated endpoints (optional).
	APISecret string
	// BaseURL overrides DefaultBaseURL, mainly for tests.
	BaseURL string

	// RetryMax enables transient-failure retries when > 0. The default of
	// 0 keeps every call a single attempt.
	RetryMax int
	// Debug enables request/response logging when a Logger is provided.
	Debug bool
	// Logger is an optional structured logger used by the HTTP layer.
	Logger Logger
	// UserAgent overrides the default User-Agent header.
	UserAgent string
}
