// Package convertkit provides types, interfaces, and helpers for working
// with the ConvertKit V3 API.
//
// # Overview
//
// The convertkit package defines the entity object model (Form, Tag,
// Course, Subscriber, Subscription, Account) and the interfaces for the
// resource-oriented clients (FormsClient, TagsClient, SequencesClient). A
// concrete implementation is provided by the ckclient package, which wires
// configuration and transport. Most consumers should import ckclient to
// construct a client and then interact with the interfaces exposed here.
//
// Getting a client
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/convertkit-go/convertkit/pkg/ckclient"
//	  "github.com/convertkit-go/convertkit/pkg/convertkit"
//	)
//
//	func example() {
//	  ctx := context.Background()
//	  cli, err := ckclient.New(&convertkit.Config{APIKey: "key", APISecret: "secret"})
//	  if err != nil { log.Fatal(err) }
//
//	  forms, err := cli.Forms().List(ctx, nil)
//	  if err != nil { log.Fatal(err) }
//	  _ = forms
//	}
//
// # Entities
//
// Every API object is wrapped in an Entity: a read-only view over the
// decoded JSON with attribute access via Get and typed accessors. Entities
// carry a reference to the client that produced them, so follow-up calls
// like Form.ListSubscriptions need no extra wiring. Subscriptions decode
// their nested subscriber into a Subscriber entity eagerly.
//
// # Pagination
//
// List operations aggregate multi-page result sets transparently through
// FetchAllPages, which concatenates the raw items of every page in order
// and converts them through a factory exactly once. Pass a lazy option to
// stop after the first page.
//
// # Errors
//
// Non-success HTTP responses are surfaced as APIError with the raw body.
// Secret-gated operations invoked without a secret fail with
// ErrSecretRequired before any network call. Helpers such as IsAuthError,
// IsNotFound, and IsKeyError make it easy to branch on common cases.
package convertkit
