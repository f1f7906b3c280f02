package snippet

import "errors"

var (
	// ErrUnknown reports a requested or required snippet that is
	// not in the library.
	ErrUnknown = errors.New("unknown snippet")
	// ErrDuplicate reports two snippet definitions sharing a name.
	ErrDuplicate = errors.New("duplicate snippet")
)
