package nbm

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// FileExtension is the extension the editor gives to new project files. The
// contents are JSON.
const FileExtension = ".nbm"

// ReadProject reads a project document. The contents are first parsed as
// JSON and, if that fails, as YAML. The project is validated before it is
// returned.
func ReadProject(r io.Reader) (Project, error) {
	b, err := io.ReadAll(r)
	if err != nil {
		return Project{}, fmt.Errorf("could not read project: %w", err)
	}
	return UnmarshalProject(b)
}

// UnmarshalProject parses a project document from JSON or YAML.
func UnmarshalProject(b []byte) (Project, error) {
	var project Project
	if errJSON := json.Unmarshal(b, &project); errJSON != nil {
		project = Project{}
		if errYaml := yaml.Unmarshal(b, &project); errYaml != nil {
			return Project{}, fmt.Errorf("the project could not be parsed as .json (%v) or .yml (%v)", errJSON, errYaml)
		}
	}
	if err := project.Validate(); err != nil {
		return Project{}, fmt.Errorf("invalid project: %w", err)
	}
	return project, nil
}

// MarshalProject encodes the project as YAML if path ends in .yml or .yaml,
// and as JSON otherwise.
func MarshalProject(project Project, path string) ([]byte, error) {
	var contents []byte
	var err error
	if IsYAMLPath(path) {
		contents, err = yaml.Marshal(project)
	} else {
		contents, err = json.Marshal(project)
	}
	if err != nil {
		return nil, fmt.Errorf("could not marshal project: %w", err)
	}
	return contents, nil
}

// WriteProject writes the project to w in the format chosen by path.
func WriteProject(w io.Writer, project Project, path string) error {
	contents, err := MarshalProject(project, path)
	if err != nil {
		return err
	}
	if _, err := w.Write(contents); err != nil {
		return fmt.Errorf("could not write project: %w", err)
	}
	return nil
}

// IsYAMLPath reports whether the extension of path is .yml or .yaml.
func IsYAMLPath(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yml", ".yaml":
		return true
	}
	return false
}
