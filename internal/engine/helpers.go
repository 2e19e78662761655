package engine

import (
	"errors"

	"github.com/Juan-Weyrauch/Proyecto-Pokemon-sub000/internal/game"
)

// sourceError marks a failure of the ChoiceSource itself, as opposed to an
// invalid choice. It aborts the match loop.
type sourceError struct {
	err error
}

func (e *sourceError) Error() string { return "choice source: " + e.err.Error() }
func (e *sourceError) Unwrap() error { return e.err }

func fromSource(err error) error {
	if err == nil {
		return nil
	}
	return &sourceError{err: err}
}

func isSourceError(err error) bool {
	var se *sourceError
	return errors.As(err, &se)
}

// creatureName returns c's name or an empty string for nil.
func creatureName(c *game.Creature) string {
	if c == nil {
		return ""
	}
	return c.Name
}

func inRange(i, n int) bool { return i >= 0 && i < n }
