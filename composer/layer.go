package composer

import (
	"fmt"
	"slices"

	"github.com/nbmusic/nbm"
)

// Layers returns the LayerModel view of the model, containing the layers of
// the project and the choice of the active layer.
func (m *Model) Layers() *LayerModel { return (*LayerModel)(m) }

type LayerModel Model

// Count returns the number of layers; it is always at least one.
func (m *LayerModel) Count() int { return len(m.d.Project.Layers) }

// Name returns the name of the layer at index, or "" if there is no such layer.
func (m *LayerModel) Name(index int) string {
	if index < 0 || index >= len(m.d.Project.Layers) {
		return ""
	}
	return m.d.Project.Layers[index].Name
}

// Active returns an Int for the index of the active layer. Changing the active
// layer clears the selection.
func (m *LayerModel) Active() Int { return MakeInt((*activeLayer)(m)) }

type activeLayer LayerModel

func (v *activeLayer) Value() int { return v.d.ActiveLayer }
func (v *activeLayer) SetValue(value int) bool {
	v.d.ActiveLayer = value
	(*Model)(v).clearSelection()
	return true
}
func (v *activeLayer) Range() RangeInclusive {
	return RangeInclusive{0, len(v.d.Project.Layers) - 1}
}
func (v *activeLayer) StringOf(value int) string { return (*LayerModel)(v).Name(value) }

// Instrument returns an Int for the instrument of the active layer. Setting it
// behaves like SetInstrument on the active layer.
func (m *LayerModel) Instrument() Int { return MakeInt((*layerInstrument)(m)) }

type layerInstrument LayerModel

func (v *layerInstrument) Value() int { return (*Model)(v).activeLayer().Instrument }
func (v *layerInstrument) SetValue(value int) bool {
	return (*LayerModel)(v).SetInstrument(v.d.ActiveLayer, value)
}
func (v *layerInstrument) Range() RangeInclusive    { return RangeInclusive{0, nbm.NumInstruments - 1} }
func (v *layerInstrument) StringOf(value int) string { return nbm.InstrumentDisplayName(value) }

// Add returns an Action to append a new layer, named after its position and
// playing the first instrument. The new layer becomes active.
func (m *LayerModel) Add() Action { return MakeAction((*addLayer)(m)) }

type addLayer LayerModel

func (m *addLayer) Do() {
	defer (*Model)(m).change()()
	name := fmt.Sprintf("Layer %d", len(m.d.Project.Layers)+1)
	m.d.Project.Layers = append(m.d.Project.Layers, nbm.NewLayer(name, 0))
	m.d.ActiveLayer = len(m.d.Project.Layers) - 1
	(*Model)(m).clearSelection()
}

// Remove returns an Action to remove the layer at index. It is disabled if the
// layer is the only one left. If the active layer was at or after the removed
// one, the active layer moves one step back.
func (m *LayerModel) Remove(index int) Action {
	return MakeAction(removeLayer{index: index, Model: (*Model)(m)})
}

type removeLayer struct {
	index int
	*Model
}

func (m removeLayer) Enabled() bool {
	return len(m.d.Project.Layers) > 1 && m.index >= 0 && m.index < len(m.d.Project.Layers)
}

func (m removeLayer) Do() {
	defer m.change()()
	m.d.Project.Layers = slices.Delete(m.d.Project.Layers, m.index, m.index+1)
	if m.d.ActiveLayer >= m.index && m.d.ActiveLayer > 0 {
		m.d.ActiveLayer--
	}
	m.clearSelection()
}

// Rename sets the name of the layer at index. It reports whether the name
// changed.
func (m *LayerModel) Rename(index int, name string) bool {
	if index < 0 || index >= len(m.d.Project.Layers) || m.d.Project.Layers[index].Name == name {
		return false
	}
	defer (*Model)(m).change()()
	m.d.Project.Layers[index].Name = name
	return true
}

// SetInstrument sets the instrument of the layer at index and previews the
// instrument at the reference pitch, even if the instrument did not change. It
// reports whether the instrument changed.
func (m *LayerModel) SetInstrument(index, instrument int) bool {
	if index < 0 || index >= len(m.d.Project.Layers) || instrument < 0 || instrument >= nbm.NumInstruments {
		return false
	}
	(*Model)(m).preview(instrument, nbm.ReferencePitch)
	l := &m.d.Project.Layers[index]
	if l.Instrument == instrument {
		return false
	}
	defer (*Model)(m).change()()
	l.Instrument = instrument
	return true
}
