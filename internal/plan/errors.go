package plan

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidIndex is returned when a position lies outside [0, length)
	ErrInvalidIndex = errors.New("invalid index")
	// ErrNotFound is returned when an id does not name a known item
	ErrNotFound = errors.New("not found")
	// ErrInvalidGiftType is returned for gift types other than vision, revelation and dream
	ErrInvalidGiftType = errors.New("invalid gift type")
	// ErrUnknownRanker is returned when a ranker name is not registered
	ErrUnknownRanker = errors.New("unknown ranker")
)

// IndexError describes a rejected position argument
type IndexError struct {
	Op    string
	Index int
	Len   int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("%s: index %d out of range [0, %d)", e.Op, e.Index, e.Len)
}

func (e *IndexError) Unwrap() error { return ErrInvalidIndex }
