package catalog

import "errors"

var (
	// ErrInvalidID signals a malformed or non-positive catalog identifier.
	ErrInvalidID = errors.New("invalid catalog id")
	// ErrUpstream indicates the catalog API could not be reached on a required fetch.
	ErrUpstream = errors.New("catalog request failed")
	// ErrNoResults indicates the catalog returned nothing for a search term.
	ErrNoResults = errors.New("no catalog results")
	// ErrNotFound indicates a specific lookup matched no catalog entry.
	ErrNotFound = errors.New("not found in catalog")
)
