package composer

import (
	"fmt"
	"io"
	"os"

	"github.com/nbmusic/nbm"
)

// ReadProject reads a project from r and closes it. If r is an *os.File, the
// file name becomes the path of the project. On failure an alert is shown,
// the error is returned and the model is left as it was.
func (m *Model) ReadProject(r io.ReadCloser) error {
	project, err := nbm.ReadProject(r)
	if cerr := r.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		m.Alerts().AddNamed("ReadProject", fmt.Sprintf("Error reading a project file: %v", err), Error)
		return err
	}
	m.load(project)
	if f, ok := r.(*os.File); ok {
		m.d.FilePath = f.Name()
	}
	return nil
}

// LoadProject replaces the project being edited with a copy of project. The
// active layer becomes the first layer, the selection is cleared and the
// project counts as unchanged. Invalid projects are rejected.
func (m *Model) LoadProject(project nbm.Project) error {
	if err := project.Validate(); err != nil {
		m.Alerts().AddNamed("LoadProject", fmt.Sprintf("Error loading a project: %v", err), Error)
		return err
	}
	m.load(project.Copy())
	return nil
}

func (m *Model) load(project nbm.Project) {
	m.d = modelData{Project: project, FilePath: m.d.FilePath}
	m.lastFiredTick = noTick // the new notes on the current tick fire on the next Advance
	m.clearSelection()
}

// WriteProject writes the project to w and closes it. The format follows the
// extension of the file being written: YAML for .yml and .yaml, JSON
// otherwise. On success the project counts as unchanged and, if w is an
// *os.File, the file name becomes the path of the project. On failure an alert
// is shown and the changed flag stays as it was.
func (m *Model) WriteProject(w io.WriteCloser) error {
	path := m.d.FilePath
	f, isFile := w.(*os.File)
	if isFile {
		path = f.Name()
	}
	err := nbm.WriteProject(w, m.d.Project, path)
	if cerr := w.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		m.Alerts().AddNamed("WriteProject", fmt.Sprintf("Error writing a project file: %v", err), Error)
		return err
	}
	if isFile {
		m.d.FilePath = path
	}
	m.d.ChangedSinceSave = false
	m.Alerts().AddNamed("WriteProject", "Project saved", Info)
	return nil
}
