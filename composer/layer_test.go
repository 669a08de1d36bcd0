package composer_test

import (
	"reflect"
	"testing"

	"github.com/nbmusic/nbm"
)

func layers(n int) nbm.Project {
	var p nbm.Project
	for i := range n {
		p.Layers = append(p.Layers, nbm.Layer{Name: string(rune('a' + i)), Notes: []nbm.Note{{Time: uint32(i), Pitch: 60}}})
	}
	return p
}

func layerNames(p nbm.Project) (ret []string) {
	for _, l := range p.Layers {
		ret = append(ret, l.Name)
	}
	return
}

func TestAddLayer(t *testing.T) {
	m, _ := newModel(t, layers(2))
	m.Selection().All().Do()
	m.Layers().Add().Do()
	p := m.Project()
	if len(p.Layers) != 3 || p.Layers[2].Name != "Layer 3" || p.Layers[2].Instrument != 0 || len(p.Layers[2].Notes) != 0 {
		t.Fatalf("unexpected new layer: %#v", p.Layers)
	}
	if a := m.Layers().Active().Value(); a != 2 {
		t.Fatalf("expected the new layer to be active, got %d", a)
	}
	if m.Selection().Len() != 0 {
		t.Fatal("adding a layer should clear the selection")
	}
	if !m.ChangedSinceSave() {
		t.Fatal("adding a layer should change the project")
	}
}

func TestRemoveLayer(t *testing.T) {
	tests := []struct {
		name       string
		count      int
		active     int
		remove     int
		wantNames  []string
		wantActive int
	}{
		{"LastWhileActive", 3, 2, 2, []string{"a", "b"}, 1},
		{"BeforeActive", 3, 2, 0, []string{"b", "c"}, 1},
		{"AfterActive", 3, 0, 1, []string{"a", "c"}, 0},
		{"FirstWhileActive", 3, 0, 0, []string{"b", "c"}, 0},
		{"ActiveInMiddle", 3, 1, 1, []string{"a", "c"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModel(t, layers(tt.count))
			m.Layers().Active().SetValue(tt.active)
			m.Selection().All().Do()
			a := m.Layers().Remove(tt.remove)
			if !a.Enabled() {
				t.Fatal("remove should be enabled")
			}
			a.Do()
			if got := layerNames(m.Project()); !reflect.DeepEqual(got, tt.wantNames) {
				t.Fatalf("expected layers %v, got %v", tt.wantNames, got)
			}
			if got := m.Layers().Active().Value(); got != tt.wantActive {
				t.Fatalf("expected active layer %d, got %d", tt.wantActive, got)
			}
			if m.Selection().Len() != 0 {
				t.Fatal("removing a layer should clear the selection")
			}
			if !m.ChangedSinceSave() {
				t.Fatal("removing a layer should change the project")
			}
		})
	}
}

func TestRemoveLayerRejected(t *testing.T) {
	tests := []struct {
		name   string
		count  int
		remove int
	}{
		{"OnlyLayer", 1, 0},
		{"Negative", 2, -1},
		{"PastEnd", 2, 2},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModel(t, layers(tt.count))
			a := m.Layers().Remove(tt.remove)
			if a.Enabled() {
				t.Fatal("remove should be disabled")
			}
			a.Do()
			if n := m.Layers().Count(); n != tt.count {
				t.Fatalf("expected %d layers, got %d", tt.count, n)
			}
			if m.ChangedSinceSave() {
				t.Fatal("rejected remove should not change the project")
			}
		})
	}
}

func TestSwitchActiveLayer(t *testing.T) {
	m, _ := newModel(t, layers(3))
	m.Selection().All().Do()
	active := m.Layers().Active()
	if !active.SetValue(2) {
		t.Fatal("SetValue(2) failed")
	}
	if m.Selection().Len() != 0 {
		t.Fatal("switching the layer should clear the selection")
	}
	active.SetValue(10)
	if v := active.Value(); v != 2 {
		t.Fatalf("expected the active layer to be clamped to 2, got %d", v)
	}
	active.SetValue(-3)
	if v := active.Value(); v != 0 {
		t.Fatalf("expected the active layer to be clamped to 0, got %d", v)
	}
	if s := active.String(); s != "a" {
		t.Fatalf("expected the active layer to be named a, got %q", s)
	}
	if m.ChangedSinceSave() {
		t.Fatal("switching the layer should not change the project")
	}
}

func TestRenameLayer(t *testing.T) {
	m, _ := newModel(t, layers(2))
	if m.Layers().Rename(1, "b") {
		t.Fatal("renaming to the same name should report no change")
	}
	if m.ChangedSinceSave() {
		t.Fatal("renaming to the same name should not change the project")
	}
	if !m.Layers().Rename(1, "Drums") {
		t.Fatal("Rename failed")
	}
	if n := m.Layers().Name(1); n != "Drums" {
		t.Fatalf("expected Drums, got %q", n)
	}
	if !m.ChangedSinceSave() {
		t.Fatal("Rename should change the project")
	}
	if m.Layers().Rename(5, "x") {
		t.Fatal("renaming a missing layer should fail")
	}
}

func TestSetInstrument(t *testing.T) {
	m, rec := newModel(t, layers(2))
	if !m.Layers().SetInstrument(1, 4) {
		t.Fatal("SetInstrument failed")
	}
	if got, want := rec.take(), []trigger{{4, nbm.ReferencePitch}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected preview %v, got %v", want, got)
	}
	if i := m.Project().Layers[1].Instrument; i != 4 {
		t.Fatalf("expected instrument 4, got %d", i)
	}
	if !m.ChangedSinceSave() {
		t.Fatal("SetInstrument should change the project")
	}
	m, rec = newModel(t, layers(2))
	if m.Layers().SetInstrument(1, 0) {
		t.Fatal("setting the same instrument should report no change")
	}
	if len(rec.take()) != 1 {
		t.Fatal("setting the same instrument should still preview")
	}
	if m.ChangedSinceSave() {
		t.Fatal("setting the same instrument should not change the project")
	}
	for _, instr := range []int{-1, nbm.NumInstruments} {
		if m.Layers().SetInstrument(0, instr) {
			t.Fatalf("instrument %d accepted", instr)
		}
	}
	if len(rec.take()) != 0 {
		t.Fatal("invalid instruments should not preview")
	}
}

func TestActiveInstrument(t *testing.T) {
	m, rec := newModel(t, layers(2))
	m.Layers().Active().SetValue(1)
	instr := m.Layers().Instrument()
	instr.SetValue(10)
	if v := instr.Value(); v != 10 {
		t.Fatalf("expected instrument 10, got %d", v)
	}
	if s := instr.String(); s != "Iron Xylophone" {
		t.Fatalf("expected Iron Xylophone, got %q", s)
	}
	if got, want := rec.take(), []trigger{{10, nbm.ReferencePitch}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected preview %v, got %v", want, got)
	}
	if i := m.Project().Layers[0].Instrument; i != 0 {
		t.Fatalf("the inactive layer changed instrument to %d", i)
	}
}
