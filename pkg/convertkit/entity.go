package convertkit

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"sort"
	"strings"
)

// Collection endpoints for entity types that support subscriptions.
const (
	FormsEndpoint   = "/forms"
	TagsEndpoint    = "/tags"
	CoursesEndpoint = "/courses"
)

// Subscribable is implemented by entity types that support subscription
// listing and subscriber enrollment (forms, tags, sequences). Implementers
// provide their collection endpoint and numeric id; the shared behavior
// lives on the Client.
type Subscribable interface {
	CollectionEndpoint() string
	EntityID() (int64, error)
}

// Entity wraps one decoded JSON object returned by the API. The underlying
// data is read-only after construction; fetch a fresh entity instead of
// mutating. Attribute access goes through Get and the typed accessors, and
// an absent key fails with a KeyError naming it.
type Entity struct {
	client Client
	name   string
	data   map[string]interface{}
}

// NewEntity wraps raw JSON data without transforming it.
func NewEntity(data map[string]interface{}, client Client) *Entity {
	return &Entity{client: client, name: "Entity", data: data}
}

// Client returns the client that produced this entity.
func (e *Entity) Client() Client {
	return e.client
}

// Get returns the value stored under key, or a KeyError when absent.
func (e *Entity) Get(key string) (interface{}, error) {
	value, ok := e.data[key]
	if !ok {
		return nil, &KeyError{Entity: e.name, Key: key}
	}

	return value, nil
}

// Int64 returns the value under key coerced to int64. JSON numbers arrive
// as json.Number from the transport and as float64 or int from literals.
func (e *Entity) Int64(key string) (int64, error) {
	value, err := e.Get(key)
	if err != nil {
		return 0, err
	}

	n, ok := toInt64(value)
	if !ok {
		return 0, fmt.Errorf("attribute %q of %s is not numeric (got %T)", key, e.name, value)
	}

	return n, nil
}

// Str returns the value under key coerced to string.
func (e *Entity) Str(key string) (string, error) {
	value, err := e.Get(key)
	if err != nil {
		return "", err
	}

	s, ok := value.(string)
	if !ok {
		return "", fmt.Errorf("attribute %q of %s is not a string (got %T)", key, e.name, value)
	}

	return s, nil
}

// ID returns the entity's numeric id attribute.
func (e *Entity) ID() (int64, error) {
	return e.Int64("id")
}

// Name returns the entity's name attribute.
func (e *Entity) Name() (string, error) {
	return e.Str("name")
}

// TotalSubscriptions returns the cached subscription count from the
// entity's own data. The second return is false when the attribute is
// absent; no fetch is attempted.
func (e *Entity) TotalSubscriptions() (int64, bool) {
	n, err := e.Int64("total_subscriptions")
	if err != nil {
		return 0, false
	}

	return n, true
}

// Raw returns a copy of the underlying data with nested entities unwrapped
// back to plain maps, suitable for re-encoding.
func (e *Entity) Raw() map[string]interface{} {
	raw := make(map[string]interface{}, len(e.data))

	for key, value := range e.data {
		if nested, ok := value.(interface{ Raw() map[string]interface{} }); ok {
			raw[key] = nested.Raw()

			continue
		}

		raw[key] = value
	}

	return raw
}

// MarshalJSON renders the underlying data.
func (e *Entity) MarshalJSON() ([]byte, error) {
	encoded, err := json.Marshal(e.Raw())
	if err != nil {
		return nil, fmt.Errorf("encoding %s: %w", e.name, err)
	}

	return encoded, nil
}

// String renders the type name and every stored key/value pair.
func (e *Entity) String() string {
	keys := make([]string, 0, len(e.data))
	for key := range e.data {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	var builder strings.Builder

	builder.WriteString("<" + e.name)

	for _, key := range keys {
		fmt.Fprintf(&builder, " %s=%v", key, e.data[key])
	}

	builder.WriteString(">")

	return builder.String()
}

func toInt64(value interface{}) (int64, bool) {
	switch n := value.(type) {
	case json.Number:
		parsed, err := n.Int64()
		if err != nil {
			return 0, false
		}

		return parsed, true
	case float64:
		return int64(n), true
	case int64:
		return n, true
	case int:
		return int64(n), true
	default:
		return 0, false
	}
}

// Form represents a ConvertKit form.
type Form struct {
	Entity
}

// NewForm wraps raw form data.
func NewForm(data map[string]interface{}, client Client) *Form {
	return &Form{Entity{client: client, name: "Form", data: data}}
}

// CollectionEndpoint implements Subscribable.
func (f *Form) CollectionEndpoint() string {
	return FormsEndpoint
}

// EntityID implements Subscribable.
func (f *Form) EntityID() (int64, error) {
	return f.ID()
}

// ListSubscriptions lists this form's subscriptions. Secret-gated.
func (f *Form) ListSubscriptions(ctx context.Context, opts *SubscriptionListOptions) ([]*Subscription, error) {
	return f.client.ListSubscriptions(ctx, f, opts)
}

// AddSubscriber subscribes an email address to this form.
func (f *Form) AddSubscriber(ctx context.Context, email, firstName string, extra url.Values) (*Subscription, error) {
	return f.client.AddSubscriber(ctx, f, email, firstName, extra)
}

// String renders a short human-readable summary: id, name, and title when
// present.
func (f *Form) String() string {
	id, _ := f.Get("id")
	name, _ := f.Name()

	summary := fmt.Sprintf("%v %s", id, name)
	if title, err := f.Str("title"); err == nil {
		summary += " " + title
	}

	return summary
}

// Tag represents a ConvertKit tag.
type Tag struct {
	Entity
}

// NewTag wraps raw tag data.
func NewTag(data map[string]interface{}, client Client) *Tag {
	return &Tag{Entity{client: client, name: "Tag", data: data}}
}

// CollectionEndpoint implements Subscribable.
func (t *Tag) CollectionEndpoint() string {
	return TagsEndpoint
}

// EntityID implements Subscribable.
func (t *Tag) EntityID() (int64, error) {
	return t.ID()
}

// ListSubscriptions lists this tag's subscriptions. Secret-gated.
func (t *Tag) ListSubscriptions(ctx context.Context, opts *SubscriptionListOptions) ([]*Subscription, error) {
	return t.client.ListSubscriptions(ctx, t, opts)
}

// AddSubscriber subscribes an email address to this tag.
func (t *Tag) AddSubscriber(ctx context.Context, email, firstName string, extra url.Values) (*Subscription, error) {
	return t.client.AddSubscriber(ctx, t, email, firstName, extra)
}

// Course represents a ConvertKit sequence. The API still calls these
// courses, hence the collection endpoint.
type Course struct {
	Entity
}

// NewCourse wraps raw sequence data.
func NewCourse(data map[string]interface{}, client Client) *Course {
	return &Course{Entity{client: client, name: "Course", data: data}}
}

// CollectionEndpoint implements Subscribable.
func (c *Course) CollectionEndpoint() string {
	return CoursesEndpoint
}

// EntityID implements Subscribable.
func (c *Course) EntityID() (int64, error) {
	return c.ID()
}

// ListSubscriptions lists this sequence's subscriptions. Secret-gated.
func (c *Course) ListSubscriptions(ctx context.Context, opts *SubscriptionListOptions) ([]*Subscription, error) {
	return c.client.ListSubscriptions(ctx, c, opts)
}

// AddSubscriber subscribes an email address to this sequence.
func (c *Course) AddSubscriber(ctx context.Context, email, firstName string, extra url.Values) (*Subscription, error) {
	return c.client.AddSubscriber(ctx, c, email, firstName, extra)
}

// Subscriber represents a ConvertKit subscriber.
type Subscriber struct {
	Entity
}

// NewSubscriber wraps raw subscriber data.
func NewSubscriber(data map[string]interface{}, client Client) *Subscriber {
	return &Subscriber{Entity{client: client, name: "Subscriber", data: data}}
}

// Email returns the subscriber's email address.
func (s *Subscriber) Email() (string, error) {
	return s.Str("email_address")
}

// Subscription links a subscriber to a form, tag, or sequence. Building a
// subscription re-wraps a nested subscriber object into a Subscriber
// entity, so the subscriber attribute is never a raw map.
type Subscription struct {
	Entity
}

// NewSubscription wraps raw subscription data, decoding the nested
// subscriber when present.
func NewSubscription(data map[string]interface{}, client Client) *Subscription {
	if nested, ok := data["subscriber"].(map[string]interface{}); ok {
		decoded := make(map[string]interface{}, len(data))
		for key, value := range data {
			decoded[key] = value
		}

		decoded["subscriber"] = NewSubscriber(nested, client)
		data = decoded
	}

	return &Subscription{Entity{client: client, name: "Subscription", data: data}}
}

// Subscriber returns the nested subscriber entity, or nil when the
// subscription carries none.
func (s *Subscription) Subscriber() *Subscriber {
	value, err := s.Get("subscriber")
	if err != nil {
		return nil
	}

	subscriber, ok := value.(*Subscriber)
	if !ok {
		return nil
	}

	return subscriber
}

// Account represents the authenticated account's metadata.
type Account struct {
	Entity
}

// NewAccount wraps raw account data.
func NewAccount(data map[string]interface{}, client Client) *Account {
	return &Account{Entity{client: client, name: "Account", data: data}}
}
