package plan

// Rect is the vertical extent of a rendered entry
type Rect struct {
	Top    float64
	Bottom float64
}

// DragTracker turns a continuous pointer drag into discrete Move calls.
//
// A move toward the hovered entry only fires once the pointer crosses that
// entry's vertical midpoint from the side the drag came from: dragging down
// requires the pointer below the midpoint, dragging up requires it above.
// This keeps the list from flickering while the pointer rests near a
// boundary.
type DragTracker struct {
	active bool
	index  int
}

// Start begins dragging the entry at index
func (d *DragTracker) Start(index int) {
	d.active = true
	d.index = index
}

// End stops the current drag
func (d *DragTracker) End() {
	d.active = false
	d.index = 0
}

// Active reports whether a drag is in progress
func (d *DragTracker) Active() bool {
	return d.active
}

// Index returns the current position of the dragged entry
func (d *DragTracker) Index() int {
	return d.index
}

// Hover reports the move implied by the pointer at pointerY over the entry at
// hoverIndex occupying rect. When ok is true the caller should apply
// Move(from, to); the tracker already follows the entry to its new position.
func (d *DragTracker) Hover(hoverIndex int, rect Rect, pointerY float64) (from, to int, ok bool) {
	if !d.active || hoverIndex == d.index {
		return 0, 0, false
	}

	middle := (rect.Bottom - rect.Top) / 2
	offset := pointerY - rect.Top

	if d.index < hoverIndex && offset < middle {
		return 0, 0, false
	}
	if d.index > hoverIndex && offset > middle {
		return 0, 0, false
	}

	from = d.index
	d.index = hoverIndex
	return from, hoverIndex, true
}
