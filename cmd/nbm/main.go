// Command nbm plays, inspects and converts note block music projects.
//
// Usage:
//
//	nbm [flags] <command> [args]
//
// Commands:
//
//	play     - play a project on the sampled instruments or a MIDI output
//	render   - render projects offline to .wav files
//	export   - export projects as Standard MIDI Files
//	convert  - convert projects between JSON and YAML
//	info     - print a summary of projects
//	outputs  - list the MIDI output ports
//	version  - print the version
//
// Preferences are read from <user config dir>/nbm/preferences.yml.
package main

import (
	"fmt"
	"os"

	"github.com/nbmusic/nbm/cmd/nbm/commands"
)

func main() {
	if err := commands.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
