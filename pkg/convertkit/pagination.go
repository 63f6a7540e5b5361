package convertkit

import (
	"context"
	"fmt"
	"net/url"
	"strconv"
)

// PageGetter issues one GET and returns the decoded response envelope.
// Implemented by the concrete client; tests supply fakes.
type PageGetter interface {
	GetJSON(ctx context.Context, path string, query url.Values) (map[string]interface{}, error)
}

// FetchAllPages walks a paginated endpoint and returns the raw items of the
// named envelope field concatenated in page order. Page 1 is fetched first;
// the envelope's page and total_pages fields drive the walk, with identical
// query parameters on every page. A missing field contributes an empty
// page; total_pages of 0 or 1, or lazy, terminates after the first fetch.
// Requests are strictly sequential, one page at a time.
func FetchAllPages(ctx context.Context, getter PageGetter, path, field string, params url.Values, lazy bool) ([]map[string]interface{}, error) {
	var items []map[string]interface{}

	page := 1

	for {
		query := cloneValues(params)
		if page > 1 {
			query.Set("page", strconv.Itoa(page))
		}

		envelope, err := getter.GetJSON(ctx, path, query)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d of %s: %w", page, path, err)
		}

		items = append(items, extractField(envelope, field)...)

		current, total := pageInfo(envelope)
		if lazy || total <= 1 || current >= total {
			return items, nil
		}

		page = current + 1
	}
}

// FetchAll aggregates a paginated endpoint and converts the accumulated raw
// items through factory exactly once, after the last page has been fetched.
func FetchAll[T any](ctx context.Context, getter PageGetter, path, field string, params url.Values, lazy bool, factory func(map[string]interface{}) T) ([]T, error) {
	raw, err := FetchAllPages(ctx, getter, path, field, params, lazy)
	if err != nil {
		return nil, err
	}

	converted := make([]T, 0, len(raw))
	for _, item := range raw {
		converted = append(converted, factory(item))
	}

	return converted, nil
}

// extractField pulls the named array of objects out of a response
// envelope. An absent or malformed field yields no items.
func extractField(envelope map[string]interface{}, field string) []map[string]interface{} {
	list, ok := envelope[field].([]interface{})
	if !ok {
		return nil
	}

	items := make([]map[string]interface{}, 0, len(list))

	for _, element := range list {
		if item, ok := element.(map[string]interface{}); ok {
			items = append(items, item)
		}
	}

	return items
}

// pageInfo reads the page counter and total page count from a response
// envelope, defaulting both to 1 when absent.
func pageInfo(envelope map[string]interface{}) (current, total int) {
	current, total = 1, 1

	if n, ok := toInt64(envelope["page"]); ok {
		current = int(n)
	}

	if n, ok := toInt64(envelope["total_pages"]); ok {
		total = int(n)
	}

	return current, total
}

func cloneValues(params url.Values) url.Values {
	cloned := make(url.Values, len(params))
	for key, values := range params {
		cloned[key] = append([]string(nil), values...)
	}

	return cloned
}
