package ir

import "errors"

var (
	// ErrNotFound reports a name with no matching child element.
	ErrNotFound = errors.New("element does not exist")
	// ErrNonUnique reports a name matching two or more child
	// elements.  It is distinct from ErrNotFound so callers can
	// disambiguate rather than treat the element as missing.
	ErrNonUnique = errors.New("element is not unique")
)
