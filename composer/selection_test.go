package composer_test

import (
	"math"
	"reflect"
	"slices"
	"testing"

	"github.com/nbmusic/nbm"
	"github.com/nbmusic/nbm/composer"
)

func threeNotes() nbm.Project {
	return nbm.Project{Layers: []nbm.Layer{
		{Name: "a", Notes: []nbm.Note{{Time: 0, Pitch: 60}, {Time: 5, Pitch: 60}, {Time: 2, Pitch: 64}}},
		{Name: "b", Notes: []nbm.Note{{Time: 1, Pitch: 1}}},
	}}
}

func notes(m *composer.Model) []nbm.Note {
	return m.Project().Layers[m.Layers().Active().Value()].Notes
}

func sorted(s []int) []int {
	s = slices.Clone(s)
	slices.Sort(s)
	return s
}

func TestSelectRect(t *testing.T) {
	tests := []struct {
		name string
		a, b composer.GridPoint
		want []int
	}{
		{"Click", composer.GridPoint{Time: 5.5, Pitch: 60.5}, composer.GridPoint{Time: 5.5, Pitch: 60.5}, []int{1}},
		{"AllReversed", composer.GridPoint{Time: 10, Pitch: 70}, composer.GridPoint{Time: 0, Pitch: 50}, []int{0, 1, 2}},
		{"PartialOverlap", composer.GridPoint{Time: 2.1, Pitch: 64.9}, composer.GridPoint{Time: 0.5, Pitch: 59}, []int{0, 2}},
		{"Empty", composer.GridPoint{Time: 20, Pitch: 20}, composer.GridPoint{Time: 30, Pitch: 30}, []int{}},
		{"Adjacent", composer.GridPoint{Time: 1, Pitch: 0}, composer.GridPoint{Time: 1.9, Pitch: 127}, []int{}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModel(t, threeNotes())
			sel := m.Selection()
			sel.Begin(tt.a)
			if _, ok := sel.Dragging(); !ok {
				t.Fatal("expected a drag in progress")
			}
			sel.End(tt.b)
			if _, ok := sel.Dragging(); ok {
				t.Fatal("expected the drag to end")
			}
			if got := sorted(sel.Indices()); !slices.Equal(got, tt.want) {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if m.ChangedSinceSave() {
				t.Fatal("selecting should not change the project")
			}
		})
	}
}

func TestSelectRectIsAdditive(t *testing.T) {
	m, _ := newModel(t, threeNotes())
	sel := m.Selection()
	sel.Rect(composer.GridPoint{Time: 0.5, Pitch: 60.5}, composer.GridPoint{Time: 0.5, Pitch: 60.5})
	sel.Rect(composer.GridPoint{Time: 0, Pitch: 0}, composer.GridPoint{Time: 6, Pitch: 61})
	if got, want := sel.Indices(), []int{0, 1}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestEndWithoutBegin(t *testing.T) {
	m, _ := newModel(t, threeNotes())
	m.Selection().End(composer.GridPoint{Time: 5, Pitch: 60})
	if n := m.Selection().Len(); n != 0 {
		t.Fatalf("expected nothing selected, got %d", n)
	}
}

func TestSelectAllAndClear(t *testing.T) {
	m, _ := newModel(t, threeNotes())
	sel := m.Selection()
	if sel.Clear().Enabled() {
		t.Error("clear should be disabled when nothing is selected")
	}
	sel.Rect(composer.GridPoint{Time: 2, Pitch: 64}, composer.GridPoint{Time: 2, Pitch: 64})
	sel.All().Do()
	if got, want := sel.Indices(), []int{0, 1, 2}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	sel.Clear().Do()
	if n := sel.Len(); n != 0 {
		t.Fatalf("expected empty selection, got %d", n)
	}
	if m.ChangedSinceSave() {
		t.Fatal("selecting should not change the project")
	}
}

func TestDuplicate(t *testing.T) {
	m, _ := newModel(t, threeNotes())
	sel := m.Selection()
	sel.Rect(composer.GridPoint{Time: 5, Pitch: 60}, composer.GridPoint{Time: 5, Pitch: 60})
	sel.Duplicate().Do()
	n := notes(m)
	if len(n) != 4 || n[3] != (nbm.Note{Time: 7, Pitch: 62}) {
		t.Fatalf("expected a copy at (7, 62), got %v", n)
	}
	if got, want := sel.Indices(), []int{3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected the copy to be selected, got %v", got)
	}
	if !m.ChangedSinceSave() {
		t.Fatal("duplicate should change the project")
	}
}

func TestDuplicateKeepsSelectionOrder(t *testing.T) {
	m, _ := newModel(t, threeNotes())
	sel := m.Selection()
	sel.Rect(composer.GridPoint{Time: 2, Pitch: 64}, composer.GridPoint{Time: 2, Pitch: 64})
	sel.Rect(composer.GridPoint{Time: 0, Pitch: 60}, composer.GridPoint{Time: 0, Pitch: 60})
	sel.Duplicate().Do()
	n := notes(m)
	want := []nbm.Note{{Time: 0, Pitch: 60}, {Time: 5, Pitch: 60}, {Time: 2, Pitch: 64}, {Time: 4, Pitch: 66}, {Time: 2, Pitch: 62}}
	if !reflect.DeepEqual(n, want) {
		t.Fatalf("expected %v, got %v", want, n)
	}
	if got := sel.Indices(); !reflect.DeepEqual(got, []int{3, 4}) {
		t.Fatalf("expected [3 4], got %v", got)
	}
}

func TestDuplicateSaturates(t *testing.T) {
	m, _ := newModel(t, nbm.Project{Layers: []nbm.Layer{{Notes: []nbm.Note{{Time: math.MaxUint32, Pitch: nbm.MaxPitch}}}}})
	m.Selection().All().Do()
	m.Selection().Duplicate().Do()
	n := notes(m)
	if n[1] != n[0] {
		t.Fatalf("expected the copy to saturate at %v, got %v", n[0], n[1])
	}
}

func TestDeleteSelection(t *testing.T) {
	m, _ := newModel(t, threeNotes())
	sel := m.Selection()
	sel.Rect(composer.GridPoint{Time: 2, Pitch: 64}, composer.GridPoint{Time: 2, Pitch: 64}) // index 2
	sel.Rect(composer.GridPoint{Time: 0, Pitch: 60}, composer.GridPoint{Time: 0, Pitch: 60}) // index 0
	if got := sel.Indices(); !reflect.DeepEqual(got, []int{2, 0}) {
		t.Fatalf("expected selection [2 0], got %v", got)
	}
	sel.Delete().Do()
	if got, want := notes(m), []nbm.Note{{Time: 5, Pitch: 60}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	if sel.Len() != 0 {
		t.Fatal("expected empty selection after delete")
	}
	if !m.ChangedSinceSave() {
		t.Fatal("delete should change the project")
	}
}

func TestEmptySelectionActionsAreDisabled(t *testing.T) {
	m, _ := newModel(t, threeNotes())
	sel := m.Selection()
	for name, a := range map[string]composer.Action{
		"Duplicate": sel.Duplicate(),
		"Delete":    sel.Delete(),
		"Nudge":     sel.Nudge(composer.Up),
	} {
		if a.Enabled() {
			t.Errorf("%s should be disabled with an empty selection", name)
		}
		a.Do()
	}
	if m.ChangedSinceSave() {
		t.Fatal("disabled actions should not change the project")
	}
}

func TestNudge(t *testing.T) {
	tests := []struct {
		name    string
		note    nbm.Note
		dir     composer.Direction
		want    nbm.Note
		changed bool
	}{
		{"Left", nbm.Note{Time: 3, Pitch: 60}, composer.Left, nbm.Note{Time: 2, Pitch: 60}, true},
		{"LeftAtZero", nbm.Note{Time: 0, Pitch: 60}, composer.Left, nbm.Note{Time: 0, Pitch: 60}, false},
		{"Right", nbm.Note{Time: 3, Pitch: 60}, composer.Right, nbm.Note{Time: 4, Pitch: 60}, true},
		{"RightAtMax", nbm.Note{Time: math.MaxUint32, Pitch: 60}, composer.Right, nbm.Note{Time: math.MaxUint32, Pitch: 60}, false},
		{"Up", nbm.Note{Time: 3, Pitch: 60}, composer.Up, nbm.Note{Time: 3, Pitch: 61}, true},
		{"UpAtMax", nbm.Note{Time: 3, Pitch: nbm.MaxPitch}, composer.Up, nbm.Note{Time: 3, Pitch: nbm.MaxPitch}, false},
		{"Down", nbm.Note{Time: 3, Pitch: 60}, composer.Down, nbm.Note{Time: 3, Pitch: 59}, true},
		{"DownAtZero", nbm.Note{Time: 3, Pitch: 0}, composer.Down, nbm.Note{Time: 3, Pitch: 0}, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, _ := newModel(t, nbm.Project{Layers: []nbm.Layer{{Notes: []nbm.Note{tt.note}}}})
			m.Selection().All().Do()
			m.Selection().Nudge(tt.dir).Do()
			if got := notes(m)[0]; got != tt.want {
				t.Fatalf("expected %v, got %v", tt.want, got)
			}
			if m.ChangedSinceSave() != tt.changed {
				t.Fatalf("expected changed = %v", tt.changed)
			}
			if got := m.Selection().Indices(); !reflect.DeepEqual(got, []int{0}) {
				t.Fatalf("nudge should keep the selection, got %v", got)
			}
		})
	}
}

func TestNudgeCanStackNotes(t *testing.T) {
	m, _ := newModel(t, nbm.Project{Layers: []nbm.Layer{{Notes: []nbm.Note{{Time: 1, Pitch: 60}, {Time: 2, Pitch: 60}}}}})
	m.Selection().Rect(composer.GridPoint{Time: 2, Pitch: 60}, composer.GridPoint{Time: 2, Pitch: 60})
	m.Selection().Nudge(composer.Left).Do()
	if got, want := notes(m), []nbm.Note{{Time: 1, Pitch: 60}, {Time: 1, Pitch: 60}}; !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestGridPointNote(t *testing.T) {
	tests := []struct {
		p    composer.GridPoint
		want nbm.Note
		ok   bool
	}{
		{composer.GridPoint{Time: 3.7, Pitch: 60.2}, nbm.Note{Time: 3, Pitch: 60}, true},
		{composer.GridPoint{Time: -0.5, Pitch: 0}, nbm.Note{Time: 0, Pitch: 0}, true},
		{composer.GridPoint{Time: 1, Pitch: 127.9}, nbm.Note{Time: 1, Pitch: 127}, true},
		{composer.GridPoint{Time: 1, Pitch: 128}, nbm.Note{}, false},
		{composer.GridPoint{Time: 1, Pitch: -0.1}, nbm.Note{}, false},
	}
	for _, tt := range tests {
		got, ok := tt.p.Note()
		if ok != tt.ok || got != tt.want {
			t.Errorf("%v.Note() = %v, %v; want %v, %v", tt.p, got, ok, tt.want, tt.ok)
		}
	}
}
