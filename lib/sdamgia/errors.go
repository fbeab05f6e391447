package sdamgia

import "fmt"

// FetchError is returned when the site could not be reached or answered
// with a non-success status. It is fatal to the calling operation and
// never retried internally.
type FetchError struct {
	Url        string
	StatusCode int
	Err        error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch %s: %s", e.Url, e.Err)
	}
	return fmt.Sprintf("fetch %s: unexpected status %d", e.Url, e.StatusCode)
}

func (e *FetchError) Unwrap() error { return e.Err }

type PageKind string

const (
	PageProblem PageKind = "problem"
	PageCatalog PageKind = "catalog"
	PageListing PageKind = "listing"
)

// ParseError is returned when an expected structural anchor is absent
// from a fetched page. The upstream markup is not contractually stable,
// so this usually means the site layout changed and the selector table
// for the page kind needs updating.
type ParseError struct {
	Kind     PageKind
	Selector string
	Url      string
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("parse %s page %s: %q matched nothing", e.Kind, e.Url, e.Selector)
}
