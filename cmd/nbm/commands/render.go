package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm/oto"
)

var (
	renderPCM16 bool
	renderRaw   bool
)

var renderCmd = &cobra.Command{
	Use:   "render <file|dir>...",
	Short: "Render projects offline to .wav files",
	Long: `Render projects offline with the sampled instruments.

The samples are read from the sounds_dir of the preferences: one raw mono
float32 file per instrument, e.g. harp.raw, at 44100 Hz.

Examples:
  nbm render song.nbm
  nbm render --pcm16 -o wav/ songs/`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sampler, err := newSampler(nil)
		if err != nil {
			return err
		}
		tps := tickRate()
		return processFiles(args, func(path string) error {
			project, err := readProjectFile(path)
			if err != nil {
				return err
			}
			format := oto.Format{PCM16: renderPCM16, Raw: renderRaw}
			contents, err := sampler.RenderFile(project, tps, format)
			if err != nil {
				return err
			}
			return writeOutput(path, format.Ext(), contents)
		})
	},
}

func init() {
	renderCmd.Flags().BoolVarP(&renderPCM16, "pcm16", "c", false, "convert audio to 16-bit signed PCM (default: float32)")
	renderCmd.Flags().BoolVarP(&renderRaw, "raw", "r", false, "output a headerless .raw file instead of .wav")
}

// newSampler returns a sampler playing through players, with the samples
// loaded from the sounds directory of the preferences.
func newSampler(players oto.PlayerFactory) (*oto.Sampler, error) {
	if preferences.SoundsDir == "" {
		return nil, fmt.Errorf("no sounds_dir in the preferences; the sampled instruments need one")
	}
	sampler := oto.NewSampler(players)
	sampler.SetGain(preferences.Gain)
	sampler.SetMaxVoices(preferences.MaxVoices)
	if err := sampler.LoadSamples(os.DirFS(preferences.SoundsDir)); err != nil {
		// the instruments that loaded still play
		printVerbose("some samples are missing: %v", err)
	}
	return sampler, nil
}
