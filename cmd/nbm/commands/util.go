package commands

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"sync"

	"github.com/remeh/sizedwaitgroup"

	"github.com/nbmusic/nbm"
)

// readProjectFile reads and validates the project in the file at path.
func readProjectFile(path string) (nbm.Project, error) {
	f, err := os.Open(path)
	if err != nil {
		return nbm.Project{}, err
	}
	defer f.Close()
	return nbm.ReadProject(f)
}

// outputPath returns the path of the file produced from input: the input file
// name with its extension replaced by ext, in outputDir if set or else next to
// the input.
func outputPath(input, ext string) (string, error) {
	dir, name := filepath.Split(input)
	if outputDir != "" {
		dir = outputDir
		if err := os.MkdirAll(dir, os.ModePerm); err != nil {
			return "", fmt.Errorf("could not create output directory %v: %v", dir, err)
		}
	}
	name = strings.TrimSuffix(name, filepath.Ext(name)) + ext
	return filepath.Join(dir, name), nil
}

// writeOutput writes contents to the file produced from input.
func writeOutput(input, ext string, contents []byte) error {
	path, err := outputPath(input, ext)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, contents, 0644); err != nil {
		return fmt.Errorf("could not write file %v: %v", path, err)
	}
	printVerbose("wrote %s", path)
	return nil
}

// expandArgs replaces every directory in args with the project files in it.
func expandArgs(args []string) ([]string, error) {
	var files []string
	for _, arg := range args {
		info, err := os.Stat(arg)
		if err != nil || !info.IsDir() {
			files = append(files, arg)
			continue
		}
		for _, pattern := range []string{"*" + nbm.FileExtension, "*.json", "*.yml", "*.yaml"} {
			matches, err := filepath.Glob(filepath.Join(arg, pattern))
			if err != nil {
				return nil, fmt.Errorf("could not glob the path %v: %v", arg, err)
			}
			files = append(files, matches...)
		}
	}
	return files, nil
}

// processFiles runs process on every file given on the command line, as many
// at a time as there are CPUs. Every failure is reported in the returned
// error.
func processFiles(args []string, process func(path string) error) error {
	files, err := expandArgs(args)
	if err != nil {
		return err
	}
	var mu sync.Mutex
	var errs []error
	wg := sizedwaitgroup.New(runtime.NumCPU())
	for _, file := range files {
		wg.Add()
		go func(file string) {
			defer wg.Done()
			if err := process(file); err != nil {
				mu.Lock()
				errs = append(errs, fmt.Errorf("could not process file %v: %w", file, err))
				mu.Unlock()
			}
		}(file)
	}
	wg.Wait()
	return errors.Join(errs...)
}
