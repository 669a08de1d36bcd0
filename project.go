package nbm

import (
	"errors"
	"fmt"
	"math"
)

type (
	// Project is the persisted document: an ordered list of one or more
	// layers. All the layers play simultaneously; each layer has its own
	// instrument.
	Project struct {
		Layers []Layer `json:"layers" yaml:"layers"`
	}

	// Layer is an independent track of notes sharing one instrument. Notes
	// are kept in insertion order, not sorted by time, so the index of a
	// note is only stable until the next insertion or removal.
	Layer struct {
		Name       string `json:"name" yaml:"name"`
		Instrument int    `json:"instrument" yaml:"instrument"`
		Notes      []Note `json:"notes" yaml:"notes,flow"`
	}

	// Note is a single pitched event at an integer tick. A note has no
	// identity beyond its (Time, Pitch) pair and its position in the
	// layer.
	Note struct {
		Time  uint32 `json:"time" yaml:"time"`
		Pitch uint8  `json:"note" yaml:"note"`
	}
)

// MaxPitch is the highest pitch a note can have.
const MaxPitch = 127

var (
	ErrNoLayers          = errors.New("project has no layers")
	ErrInvalidInstrument = errors.New("instrument out of range")
	ErrInvalidPitch      = errors.New("pitch out of range")
)

// NewProject returns a fresh project with a single empty layer.
func NewProject() Project {
	return Project{Layers: []Layer{NewLayer("Layer 1", 0)}}
}

// NewLayer returns an empty layer with the given name and instrument.
func NewLayer(name string, instrument int) Layer {
	return Layer{Name: name, Instrument: instrument, Notes: []Note{}}
}

// Copy makes a deep copy of a Layer.
func (l *Layer) Copy() Layer {
	notes := make([]Note, len(l.Notes))
	copy(notes, l.Notes)
	return Layer{Name: l.Name, Instrument: l.Instrument, Notes: notes}
}

// Copy makes a deep copy of a Project.
func (p *Project) Copy() Project {
	layers := make([]Layer, len(p.Layers))
	for i := range p.Layers {
		layers[i] = p.Layers[i].Copy()
	}
	return Project{Layers: layers}
}

// Find returns the index of the first note at exactly (time, pitch), or -1
// if there is none.
func (l *Layer) Find(time uint32, pitch uint8) int {
	for i, n := range l.Notes {
		if n.Time == time && n.Pitch == pitch {
			return i
		}
	}
	return -1
}

// Length returns the number of ticks needed to play every note of the
// project, i.e. the tick of the last note plus one. An empty project has
// length 0.
func (p *Project) Length() uint64 {
	var ret uint64
	for _, l := range p.Layers {
		for _, n := range l.Notes {
			ret = max(ret, uint64(n.Time)+1)
		}
	}
	return ret
}

// NumNotes returns the total number of notes over all the layers.
func (p *Project) NumNotes() (ret int) {
	for _, l := range p.Layers {
		ret += len(l.Notes)
	}
	return
}

// Validate checks that the project could have been produced by the editor:
// at least one layer, every instrument in the catalog and every pitch in
// 0..MaxPitch.
func (p *Project) Validate() error {
	if len(p.Layers) == 0 {
		return ErrNoLayers
	}
	for i, l := range p.Layers {
		if l.Instrument < 0 || l.Instrument >= NumInstruments {
			return fmt.Errorf("layer %d (%q): %w: %d", i, l.Name, ErrInvalidInstrument, l.Instrument)
		}
		for j, n := range l.Notes {
			if n.Pitch > MaxPitch {
				return fmt.Errorf("layer %d (%q), note %d: %w: %d", i, l.Name, j, ErrInvalidPitch, n.Pitch)
			}
		}
	}
	return nil
}

// Moved returns the note shifted by dt ticks and dp semitones. The result
// saturates at the bounds of the types: time stays within 0..MaxUint32 and
// pitch within 0..MaxPitch; nothing ever wraps around.
func (n Note) Moved(dt, dp int) Note {
	t := min(max(int64(n.Time)+int64(dt), 0), math.MaxUint32)
	p := min(max(int(n.Pitch)+dp, 0), MaxPitch)
	return Note{Time: uint32(t), Pitch: uint8(p)}
}
