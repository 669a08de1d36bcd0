//go:build !cgo

package cmd

import (
	"errors"

	"gitlab.com/gomidi/midi/v2/drivers"
)

// with no cgo, there is no MIDI driver
var errNoMIDI = errors.New("MIDI is not available: nbm was built without cgo")

func OpenMIDIOutput(namePrefix string) (out drivers.Out, close func(), err error) {
	return nil, nil, errNoMIDI
}

func MIDIOutputs() ([]string, error) {
	return nil, errNoMIDI
}
