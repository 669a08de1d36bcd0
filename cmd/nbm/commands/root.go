package commands

import (
	"log"

	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm/cmd"
)

var (
	// Global flags
	ticksPerSecond float64
	outputDir      string
	verbose        bool

	preferences cmd.Preferences
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "nbm",
	Short: "Note block music command line tool",
	Long: `nbm plays, inspects and converts note block music projects.

A project is a set of layers; every layer plays its notes on one of the
sixteen note block instruments. Projects are stored as .nbm (JSON) or .yml
files.

Examples:
  # Play a project on the sampled instruments
  nbm play song.nbm

  # Play a project twice as fast on a MIDI synthesizer
  nbm play --output midi --tps 20 song.nbm

  # Export every project in a directory as MIDI files
  nbm export -o midi/ songs/*.nbm
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initPreferences)

	rootCmd.PersistentFlags().Float64Var(&ticksPerSecond, "tps", 0, "playback rate in ticks per second (default from preferences)")
	rootCmd.PersistentFlags().StringVarP(&outputDir, "output-dir", "o", "", "directory for the output files (default: next to the input)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(renderCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(convertCmd)
	rootCmd.AddCommand(infoCmd)
	rootCmd.AddCommand(outputsCmd)
	rootCmd.AddCommand(versionCmd)
}

func initPreferences() {
	var err error
	preferences, err = cmd.MakePreferences()
	if err != nil {
		log.Printf("ignoring invalid preferences: %v", err)
	}
}

// tickRate returns the playback rate given by the --tps flag, or by the
// preferences if the flag is not set.
func tickRate() float64 {
	if ticksPerSecond > 0 {
		return ticksPerSecond
	}
	return preferences.TicksPerSecond
}

func printVerbose(format string, args ...any) {
	if verbose {
		log.Printf(format, args...)
	}
}
