package composer

import (
	"slices"

	"github.com/nbmusic/nbm"
)

// Notes returns the NoteModel view of the model, containing the point edits of
// the active layer.
func (m *Model) Notes() *NoteModel { return (*NoteModel)(m) }

type NoteModel Model

// Len returns the number of notes in the active layer.
func (m *NoteModel) Len() int { return len((*Model)(m).activeLayer().Notes) }

// At returns the note at index of the active layer.
func (m *NoteModel) At(index int) (note nbm.Note, ok bool) {
	notes := (*Model)(m).activeLayer().Notes
	if index < 0 || index >= len(notes) {
		return nbm.Note{}, false
	}
	return notes[index], true
}

// Add places a note in the active layer, unless there already is a note at the
// exact same time and pitch. Either way the selection is cleared and the pitch
// is previewed with the instrument of the active layer. Add reports whether a
// note was added.
func (m *NoteModel) Add(time uint32, pitch uint8) bool {
	if pitch > nbm.MaxPitch {
		return false
	}
	mm := (*Model)(m)
	mm.clearSelection()
	l := mm.activeLayer()
	mm.preview(l.Instrument, pitch)
	if l.Find(time, pitch) >= 0 {
		return false
	}
	defer mm.change()()
	l.Notes = append(l.Notes, nbm.Note{Time: time, Pitch: pitch})
	return true
}

// AddAt adds the note whose cell contains p; see Add.
func (m *NoteModel) AddAt(p GridPoint) bool {
	n, ok := p.Note()
	if !ok {
		return false
	}
	return m.Add(n.Time, n.Pitch)
}

// Remove removes the first note of the active layer at the exact time and
// pitch, and clears the selection. Remove reports whether a note was removed;
// if not, the project is untouched.
func (m *NoteModel) Remove(time uint32, pitch uint8) bool {
	mm := (*Model)(m)
	mm.clearSelection()
	l := mm.activeLayer()
	i := l.Find(time, pitch)
	if i < 0 {
		return false
	}
	defer mm.change()()
	l.Notes = slices.Delete(l.Notes, i, i+1)
	return true
}

// RemoveAt removes the note whose cell contains p; see Remove.
func (m *NoteModel) RemoveAt(p GridPoint) bool {
	n, ok := p.Note()
	if !ok {
		return false
	}
	return m.Remove(n.Time, n.Pitch)
}

// Audition plays the pitch with the instrument of the active layer, without
// changing anything, e.g. when the user clicks a key of the piano.
func (m *NoteModel) Audition(pitch uint8) {
	if pitch > nbm.MaxPitch {
		return
	}
	(*Model)(m).preview((*Model)(m).activeLayer().Instrument, pitch)
}
