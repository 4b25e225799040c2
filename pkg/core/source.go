package core

import "context"

// Params is the flat name-to-scalar mapping attached to a query
// (e.g. Params{"slug": "my-project"}).
type Params map[string]any

// Source defines the contract for the content store behind the site.
// Adhering to this interface keeps resolution independent of the underlying
// backend (hosted CMS over HTTP, local files, in-memory fixtures in tests).
//
// Fetch runs a declarative query and decodes the matching document (or list
// of documents) into result, which must be a non-nil pointer. A query that
// matches nothing returns ErrNotFound. The query string is opaque to the
// caller; each adapter interprets the constants in queries.go its own way.
type Source interface {
	Fetch(ctx context.Context, query string, params Params, result any) error
}
