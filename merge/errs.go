package merge

import (
	"errors"
	"fmt"
	"strings"
)

// ErrAborted reports a merge the user cancelled.
var ErrAborted = errors.New("merge aborted")

// ErrConflict is the sentinel wrapped by every ConflictError.
var ErrConflict = errors.New("merge conflict")

// ConflictError reports a non-interactive merge that stopped on
// conflicts.  Summaries describes each conflicted file.
type ConflictError struct {
	Files     []string
	Summaries []string
}

func (e *ConflictError) Error() string {
	if len(e.Summaries) == 0 {
		return fmt.Sprintf("merge conflict in %d file(s)", len(e.Files))
	}
	return fmt.Sprintf("merge conflict in %d file(s):\n%s",
		len(e.Files), strings.Join(e.Summaries, "\n"))
}

func (e *ConflictError) Unwrap() error {
	return ErrConflict
}
