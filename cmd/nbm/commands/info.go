package commands

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/hako/durafmt"
	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#00ff9f"))
	labelStyle = lipgloss.NewStyle().Bold(true)
	dimStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6e7681"))
)

var shortUnits, _ = durafmt.DefaultUnitsCoder.Decode("y:yrs,wk:wks,d:d,h:h,m:m,s:s,ms:ms,us:us")

var infoCmd = &cobra.Command{
	Use:   "info <file>...",
	Short: "Print a summary of projects",
	Long: `Print the layers, instruments, note counts and duration of projects.

Examples:
  nbm info song.nbm
  nbm info --tps 20 songs/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		files, err := expandArgs(args)
		if err != nil {
			return err
		}
		for _, path := range files {
			stat, err := os.Stat(path)
			if err != nil {
				return err
			}
			project, err := readProjectFile(path)
			if err != nil {
				return fmt.Errorf("could not read %v: %w", path, err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), projectSummary(path, uint64(stat.Size()), project, tickRate()))
		}
		return nil
	},
}

// projectSummary renders the summary of one project for the terminal.
func projectSummary(path string, size uint64, project nbm.Project, tps float64) string {
	length := project.Length()
	duration := time.Duration(float64(length) / tps * float64(time.Second))
	var b strings.Builder
	b.WriteString(titleStyle.Render(path) + " " + dimStyle.Render("("+humanize.Bytes(size)+")") + "\n")
	fmt.Fprintf(&b, "%s %d ticks, %s at %v ticks/s\n", labelStyle.Render("Length:"), length,
		durafmt.Parse(duration).LimitFirstN(2).Format(shortUnits), tps)
	fmt.Fprintf(&b, "%s %d in %d layers\n", labelStyle.Render("Notes:"), project.NumNotes(), len(project.Layers))
	for i, l := range project.Layers {
		fmt.Fprintf(&b, "  %2d %-20s %-16s %s\n", i, l.Name, nbm.InstrumentDisplayName(l.Instrument),
			dimStyle.Render(humanize.Comma(int64(len(l.Notes)))+" notes"))
	}
	return strings.TrimSuffix(b.String(), "\n")
}
