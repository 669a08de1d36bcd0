package composer

import (
	"slices"

	"github.com/nbmusic/nbm"
)

type (
	SelectionModel Model

	// GridPoint is a point on the piano roll in continuous (time, pitch)
	// coordinates. The note at (t, p) occupies the cell [t, t+1) x [p, p+1).
	GridPoint struct {
		Time, Pitch float64
	}

	// Direction is the direction of a nudge.
	Direction int
)

const (
	Left Direction = iota
	Right
	Up
	Down
)

// Selection returns the SelectionModel view of the model, containing the set
// of selected notes of the active layer and the batch edits operating on them.
func (m *Model) Selection() *SelectionModel { return (*SelectionModel)(m) }

// Indices returns a copy of the indices of the selected notes, in the order
// they were selected.
func (m *SelectionModel) Indices() []int { return slices.Clone(m.selection) }

// Len returns the number of selected notes.
func (m *SelectionModel) Len() int { return len(m.selection) }

// Contains reports whether the note at index of the active layer is selected.
func (m *SelectionModel) Contains(index int) bool { return slices.Contains(m.selection, index) }

// Begin starts a rectangular selection, anchored at p.
func (m *SelectionModel) Begin(p GridPoint) {
	m.anchor = &p
}

// Dragging reports whether a rectangular selection is in progress, i.e. Begin
// has been called but End has not.
func (m *SelectionModel) Dragging() (anchor GridPoint, ok bool) {
	if m.anchor == nil {
		return GridPoint{}, false
	}
	return *m.anchor, true
}

// End finishes the rectangular selection begun with Begin, selecting the
// notes in the rectangle spanned by the anchor and p. Without an anchor, End
// does nothing.
func (m *SelectionModel) End(p GridPoint) {
	if m.anchor == nil {
		return
	}
	a := *m.anchor
	m.anchor = nil
	m.Rect(a, p)
}

// Rect adds to the selection every note of the active layer whose cell
// intersects the rectangle with the corners a and b. Notes already selected
// stay selected; the selection is never reduced.
func (m *SelectionModel) Rect(a, b GridPoint) {
	minT, maxT := min(a.Time, b.Time), max(a.Time, b.Time)
	minP, maxP := min(a.Pitch, b.Pitch), max(a.Pitch, b.Pitch)
	for i, n := range (*Model)(m).activeLayer().Notes {
		t, p := float64(n.Time), float64(n.Pitch)
		if t > maxT || t+1 <= minT || p > maxP || p+1 <= minP {
			continue
		}
		if !m.Contains(i) {
			m.selection = append(m.selection, i)
		}
	}
}

// All returns an Action to select all notes of the active layer.
func (m *SelectionModel) All() Action { return MakeAction((*selectAll)(m)) }

type selectAll SelectionModel

func (m *selectAll) Do() {
	n := len((*Model)(m).activeLayer().Notes)
	m.selection = m.selection[:0]
	for i := range n {
		m.selection = append(m.selection, i)
	}
}

// Clear returns an Action to deselect all notes.
func (m *SelectionModel) Clear() Action { return MakeAction((*clearSelection)(m)) }

type clearSelection SelectionModel

func (m *clearSelection) Do()           { (*Model)(m).clearSelection() }
func (m *clearSelection) Enabled() bool { return len(m.selection) > 0 || m.anchor != nil }

// Duplicate returns an Action to copy every selected note two ticks later and
// two semitones higher. The copies become the new selection.
func (m *SelectionModel) Duplicate() Action { return MakeAction((*duplicateSelection)(m)) }

type duplicateSelection SelectionModel

func (m *duplicateSelection) Enabled() bool { return len(m.selection) > 0 }
func (m *duplicateSelection) Do() {
	defer (*Model)(m).change()()
	l := (*Model)(m).activeLayer()
	for k, i := range m.selection {
		l.Notes = append(l.Notes, l.Notes[i].Moved(2, 2))
		m.selection[k] = len(l.Notes) - 1
	}
}

// Delete returns an Action to remove the selected notes from the active layer.
func (m *SelectionModel) Delete() Action { return MakeAction((*deleteSelection)(m)) }

type deleteSelection SelectionModel

func (m *deleteSelection) Enabled() bool { return len(m.selection) > 0 }
func (m *deleteSelection) Do() {
	defer (*Model)(m).change()()
	l := (*Model)(m).activeLayer()
	indices := slices.Clone(m.selection)
	slices.Sort(indices)
	indices = slices.Compact(indices)
	for _, i := range slices.Backward(indices) {
		l.Notes = slices.Delete(l.Notes, i, i+1)
	}
	(*Model)(m).clearSelection()
}

// Nudge returns an Action to move the selected notes one tick or one semitone
// in the given direction. Notes at the edge of the grid stay in place.
func (m *SelectionModel) Nudge(dir Direction) Action {
	return MakeAction(nudgeSelection{dir: dir, Model: (*Model)(m)})
}

type nudgeSelection struct {
	dir Direction
	*Model
}

func (m nudgeSelection) Enabled() bool { return len(m.selection) > 0 }
func (m nudgeSelection) Do() {
	defer m.change()()
	var dt, dp int
	switch m.dir {
	case Left:
		dt = -1
	case Right:
		dt = 1
	case Up:
		dp = 1
	case Down:
		dp = -1
	}
	l := m.activeLayer()
	moved := false
	for _, i := range m.selection {
		n := l.Notes[i].Moved(dt, dp)
		if n != l.Notes[i] {
			l.Notes[i] = n
			moved = true
		}
	}
	m.changeCancel = !moved
}

// Note returns the note whose cell contains p. ok is false if p is outside
// the pitch range. Points before time zero snap to time zero.
func (p GridPoint) Note() (note nbm.Note, ok bool) {
	if p.Pitch < 0 || p.Pitch >= nbm.MaxPitch+1 {
		return nbm.Note{}, false
	}
	t := min(max(p.Time, 0), float64(^uint32(0)))
	return nbm.Note{Time: uint32(t), Pitch: uint8(p.Pitch)}, true
}
