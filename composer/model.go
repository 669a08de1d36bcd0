package composer

import (
	"github.com/nbmusic/nbm"
)

// Model implements the mutable state of the composer: the project being
// edited, the transport and the selection.
//
// Model is not safe for concurrent use. It is owned by the UI goroutine, which
// calls the model once per frame and for every input event; the only thing
// leaving that goroutine are the note triggers handed to the nbm.NoteTrigger.
type (
	// modelData is the part of the model that describes the document being
	// edited.
	modelData struct {
		Project          nbm.Project
		ActiveLayer      int
		FilePath         string
		ChangedSinceSave bool
	}

	Model struct {
		d modelData

		// selection holds indices into the notes of the active layer. It is
		// a weak reference: any structural edit clears it instead of trying
		// to remap the indices.
		selection []int
		anchor    *GridPoint

		playing        bool
		position       float64
		ticksPerSecond float64
		lastFiredTick  int64

		changeCancel bool

		alerts  []Alert
		trigger nbm.NoteTrigger
	}
)

// DefaultTicksPerSecond is the tick rate of a new model.
const DefaultTicksPerSecond = 10

// NewModel returns a model with a fresh project and a stopped transport.
// Every note that is fired, previewed or auditioned is handed to trigger;
// nil discards them.
func NewModel(trigger nbm.NoteTrigger) *Model {
	if trigger == nil {
		trigger = nbm.NullTrigger{}
	}
	ret := &Model{
		trigger:        trigger,
		ticksPerSecond: DefaultTicksPerSecond,
		position:       NotStarted,
		lastFiredTick:  noTick,
	}
	ret.reset()
	return ret
}

// Project returns a deep copy of the project being edited.
func (m *Model) Project() nbm.Project { return m.d.Project.Copy() }

// FilePath returns the path the project was last read from or written to.
func (m *Model) FilePath() string { return m.d.FilePath }

func (m *Model) SetFilePath(value string) { m.d.FilePath = value }

// ChangedSinceSave reports whether the project has been modified since it was
// last created, read or written, i.e. whether closing now would lose work.
func (m *Model) ChangedSinceSave() bool { return m.d.ChangedSinceSave }

// New returns an Action to replace the project with a fresh one. The caller is
// responsible for asking the user what to do with unsaved changes before
// doing the action.
func (m *Model) New() Action { return MakeAction((*newProject)(m)) }

type newProject Model

func (m *newProject) Do() { (*Model)(m).reset() }

func (m *Model) reset() {
	m.d = modelData{Project: nbm.NewProject()}
	m.lastFiredTick = noTick
	m.clearSelection()
}

// change marks the project as modified when the returned function is called,
// unless the change was cancelled in between with m.changeCancel = true. Use
// it as:
//
//	defer m.change()()
func (m *Model) change() func() {
	m.changeCancel = false
	return func() {
		if m.changeCancel {
			m.changeCancel = false
			return
		}
		m.d.ChangedSinceSave = true
	}
}

func (m *Model) activeLayer() *nbm.Layer {
	return &m.d.Project.Layers[m.d.ActiveLayer]
}

func (m *Model) clearSelection() {
	m.selection = m.selection[:0]
	m.anchor = nil
}

func (m *Model) preview(instrument int, pitch uint8) {
	m.trigger.Trigger(instrument, pitch)
}
