package commands

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/nbmusic/nbm"
	"github.com/nbmusic/nbm/cmd"
	"github.com/nbmusic/nbm/composer"
	"github.com/nbmusic/nbm/gomidi"
	"github.com/nbmusic/nbm/oto"
)

var (
	playOutput     string
	playMIDIOutput string
	playFrom       float64
	playLoop       bool
)

var playCmd = &cobra.Command{
	Use:   "play <file>",
	Short: "Play a project",
	Long: `Play a project from the beginning, or from --from, until its last note.

The notes are played on the sampled instruments of the sounds_dir in the
preferences (--output oto), on a MIDI output port (--output midi) or not at
all (--output none). Press Ctrl+C to stop.

Examples:
  nbm play song.nbm
  nbm play --output midi --midi-output "Microsoft GS" song.nbm
  nbm play --loop --from 64 song.yml`,
	Args: cobra.ExactArgs(1),
	RunE: func(c *cobra.Command, args []string) error {
		output := preferences.Output
		if playOutput != "" {
			output = playOutput
		}
		sink, closeSink, err := openSink(output)
		if err != nil {
			return err
		}
		defer closeSink()

		broker := composer.NewBroker()
		model := composer.NewModel(broker)
		f, err := os.Open(args[0])
		if err != nil {
			return err
		}
		if err := model.ReadProject(f); err != nil {
			return err
		}
		model.Play().TickRate().SetValue(tickRate())
		project := model.Project()
		length := project.Length()
		printVerbose("playing %s: %d ticks at %v ticks/s on %s", model.FilePath(), length, model.Play().TickRate().Value(), output)

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()
		runCtx, cancelRun := context.WithCancel(ctx)
		done := make(chan struct{})
		go func() {
			broker.Run(runCtx, sink)
			close(done)
		}()

		play(ctx, model, length)

		// let the audio goroutine take the last notes before stopping it
		for len(broker.ToAudio) > 0 && ctx.Err() == nil {
			time.Sleep(time.Millisecond)
		}
		cancelRun()
		<-done
		if n := broker.Dropped(); n > 0 {
			log.Printf("%d notes were dropped", n)
		}
		return nil
	},
}

func init() {
	playCmd.Flags().StringVar(&playOutput, "output", "", "where to play the notes: oto, midi or none (default from preferences)")
	playCmd.Flags().StringVar(&playMIDIOutput, "midi-output", "", "prefix of the MIDI output port name (default from preferences)")
	playCmd.Flags().Float64Var(&playFrom, "from", 0, "tick to start playing from")
	playCmd.Flags().BoolVar(&playLoop, "loop", false, "start over after the last note")
}

// play advances the transport of model once per frame until the position
// passes length or ctx is done.
func play(ctx context.Context, model *composer.Model, length uint64) {
	if playFrom > 0 {
		model.Play().Seek(playFrom)
	}
	model.Play().Toggle().Do()
	ticker := time.NewTicker(preferences.FrameDuration())
	defer ticker.Stop()
	last := time.Now()
	lastTick := int64(-1)
	for {
		select {
		case <-ctx.Done():
			printVerbose("stopped at tick %v", model.Play().Position())
			model.Play().Stop().Do()
			return
		case now := <-ticker.C:
			model.Play().Advance(now.Sub(last))
			last = now
			if tick, ok := model.Play().Tick(); ok && tick != lastTick {
				printVerbose("tick %d/%d", tick, length)
				lastTick = tick
			}
			if model.Play().Position() < float64(length) {
				continue
			}
			if !playLoop || length == 0 {
				model.Play().Stop().Do()
				return
			}
			model.Play().Seek(0)
		}
	}
}

// openSink opens the output the notes are played on. close waits for the
// sounding notes to finish and releases the output.
func openSink(output string) (sink nbm.NoteTrigger, close func(), err error) {
	switch output {
	case cmd.OutputOto:
		audioContext, err := oto.NewContext()
		if err != nil {
			return nil, nil, fmt.Errorf("could not acquire oto AudioContext: %w", err)
		}
		sampler, err := newSampler(audioContext)
		if err != nil {
			audioContext.Close()
			return nil, nil, err
		}
		return sampler, func() {
			sampler.Wait()
			if err := audioContext.Err(); err != nil {
				log.Printf("audio error: %v", err)
			}
			audioContext.Close()
		}, nil
	case cmd.OutputMIDI:
		prefix := preferences.MIDIOutput
		if playMIDIOutput != "" {
			prefix = playMIDIOutput
		}
		out, closeDriver, err := cmd.OpenMIDIOutput(prefix)
		if err != nil {
			return nil, nil, err
		}
		printVerbose("playing on MIDI output %s", out)
		midiOut, err := gomidi.NewOutput(out, preferences.NoteLength())
		if err != nil {
			out.Close()
			closeDriver()
			return nil, nil, err
		}
		return midiOut, func() {
			time.Sleep(preferences.NoteLength())
			if err := midiOut.Err(); err != nil {
				log.Printf("MIDI error: %v", err)
			}
			if err := midiOut.Close(); err != nil {
				log.Printf("%v", err)
			}
			closeDriver()
		}, nil
	case cmd.OutputNone:
		return nbm.NullTrigger{}, func() {}, nil
	}
	return nil, nil, fmt.Errorf("unknown output %q, expected %s, %s or %s", output, cmd.OutputOto, cmd.OutputMIDI, cmd.OutputNone)
}
