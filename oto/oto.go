package oto

import (
	"fmt"
	"io"
	"time"

	"github.com/ebitengine/oto/v3"
)

const (
	// SampleRate is the sample rate of the output and of the sample files.
	SampleRate   = 44100
	channelCount = 2
	bufferSize   = 50 * time.Millisecond
)

// Context is the audio output device. Every sound playing at the same time
// has its own player in the context; oto mixes them.
type Context struct {
	ctx *oto.Context
}

// NewContext opens the default audio device and waits until it is ready.
func NewContext() (*Context, error) {
	ctx, ready, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   SampleRate,
		ChannelCount: channelCount,
		Format:       oto.FormatSignedInt16LE,
		BufferSize:   bufferSize,
	})
	if err != nil {
		return nil, fmt.Errorf("cannot create oto context: %w", err)
	}
	<-ready
	return &Context{ctx: ctx}, nil
}

// NewPlayer returns a paused player reading 16-bit little-endian stereo
// frames from r.
func (c *Context) NewPlayer(r io.Reader) Player {
	return c.ctx.NewPlayer(r)
}

// Err returns the error that stopped the audio device, if any.
func (c *Context) Err() error {
	return c.ctx.Err()
}

// Close suspends the audio device.
func (c *Context) Close() error {
	if err := c.ctx.Suspend(); err != nil {
		return fmt.Errorf("cannot suspend oto context: %w", err)
	}
	return nil
}
