package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm/cmd"
)

var outputsCmd = &cobra.Command{
	Use:   "outputs",
	Short: "List the MIDI output ports",
	Long: `List the MIDI output ports. Any prefix of a port name can be given as
midi_output in the preferences or with play --midi-output.`,
	Args: cobra.NoArgs,
	RunE: func(c *cobra.Command, args []string) error {
		outs, err := cmd.MIDIOutputs()
		if err != nil {
			return err
		}
		for i, name := range outs {
			fmt.Fprintf(c.OutOrStdout(), "%d: %s\n", i, name)
		}
		return nil
	},
}
