package commands

import (
	"bytes"

	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm/gomidi"
)

var exportCmd = &cobra.Command{
	Use:   "export <file|dir>...",
	Short: "Export projects as Standard MIDI Files",
	Long: `Export projects as Standard MIDI Files (.mid).

Every layer becomes a track playing on the General MIDI channel of its
instrument; the drums play on channel 10. A tick lasts a sixteenth note, so
the tempo is the tick rate times 15 BPM.

Examples:
  nbm export song.nbm
  nbm export --tps 8 -o midi/ songs/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		tps := tickRate()
		printVerbose("exporting at %v BPM", gomidi.BPM(tps))
		return processFiles(args, func(path string) error {
			project, err := readProjectFile(path)
			if err != nil {
				return err
			}
			var buf bytes.Buffer
			if err := gomidi.Export(&buf, project, tps); err != nil {
				return err
			}
			return writeOutput(path, ".mid", buf.Bytes())
		})
	},
}
