package commands

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm"
)

var convertTo string

var convertCmd = &cobra.Command{
	Use:   "convert <file|dir>...",
	Short: "Convert projects between JSON and YAML",
	Long: `Convert projects between JSON (.nbm) and YAML (.yml).

Examples:
  nbm convert --to yml song.nbm
  nbm convert --to nbm -o out/ songs/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		var ext string
		switch convertTo {
		case "yml", "yaml":
			ext = ".yml"
		case "nbm", "json":
			ext = "." + convertTo
		default:
			return fmt.Errorf("unknown format %q, expected nbm, json or yml", convertTo)
		}
		return processFiles(args, func(path string) error {
			project, err := readProjectFile(path)
			if err != nil {
				return err
			}
			out, err := outputPath(path, ext)
			if err != nil {
				return err
			}
			if samePath(out, path) {
				return fmt.Errorf("refusing to overwrite %v, use --output-dir", out)
			}
			contents, err := nbm.MarshalProject(project, out)
			if err != nil {
				return err
			}
			return writeOutput(path, ext, contents)
		})
	},
}

func init() {
	convertCmd.Flags().StringVar(&convertTo, "to", "yml", "target format: nbm, json or yml")
}

func samePath(a, b string) bool {
	absA, errA := filepath.Abs(a)
	absB, errB := filepath.Abs(b)
	if errA != nil || errB != nil {
		return filepath.Clean(a) == filepath.Clean(b)
	}
	return absA == absB
}
