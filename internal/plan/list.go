package plan

// List is an ordered sequence whose positions are always dense and 0-based.
// It is not safe for concurrent use.
type List[T any] struct {
	items []T
}

// NewList creates a list holding a copy of items
func NewList[T any](items ...T) *List[T] {
	l := &List[T]{}
	l.items = append(l.items, items...)
	return l
}

// Len returns the number of entries
func (l *List[T]) Len() int {
	return len(l.items)
}

// At returns the entry at position i
func (l *List[T]) At(i int) (T, error) {
	if err := l.check("at", i); err != nil {
		var zero T
		return zero, err
	}
	return l.items[i], nil
}

// Items returns a copy of the entries in order
func (l *List[T]) Items() []T {
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

// Append adds item at the end. Duplicates are accepted.
func (l *List[T]) Append(item T) {
	l.items = append(l.items, item)
}

// Set replaces the entry at position i
func (l *List[T]) Set(i int, item T) error {
	if err := l.check("set", i); err != nil {
		return err
	}
	l.items[i] = item
	return nil
}

// RemoveAt deletes the entry at position i and returns it. Later entries
// shift down by one.
func (l *List[T]) RemoveAt(i int) (T, error) {
	var zero T
	if err := l.check("remove", i); err != nil {
		return zero, err
	}
	removed := l.items[i]
	copy(l.items[i:], l.items[i+1:])
	l.items[len(l.items)-1] = zero
	l.items = l.items[:len(l.items)-1]
	return removed, nil
}

// Move takes the entry at from out of the list and reinserts it at to,
// where to is a position in the list after removal.
func (l *List[T]) Move(from, to int) error {
	if err := l.check("move", from); err != nil {
		return err
	}
	if err := l.check("move", to); err != nil {
		return err
	}
	if from == to {
		return nil
	}

	item := l.items[from]
	if from < to {
		copy(l.items[from:to], l.items[from+1:to+1])
	} else {
		copy(l.items[to+1:from+1], l.items[to:from])
	}
	l.items[to] = item
	return nil
}

// IndexFunc returns the position of the first entry satisfying match, or -1
func (l *List[T]) IndexFunc(match func(T) bool) int {
	for i, item := range l.items {
		if match(item) {
			return i
		}
	}
	return -1
}

// Reset replaces the contents with a copy of items
func (l *List[T]) Reset(items []T) {
	l.items = append(l.items[:0:0], items...)
}

func (l *List[T]) check(op string, i int) error {
	if i < 0 || i >= len(l.items) {
		return &IndexError{Op: op, Index: i, Len: len(l.items)}
	}
	return nil
}
