//go:build cgo

package cmd

import (
	"fmt"
	"strings"

	"gitlab.com/gomidi/midi/v2/drivers"
	"gitlab.com/gomidi/midi/v2/drivers/rtmididrv"
)

// OpenMIDIOutput opens the first MIDI output port whose name starts with
// namePrefix; an empty prefix takes the first port. Closing the returned
// port does not close the driver; close is called for that.
func OpenMIDIOutput(namePrefix string) (out drivers.Out, close func(), err error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, nil, fmt.Errorf("cannot open MIDI driver: %w", err)
	}
	outs, err := driver.Outs()
	if err != nil {
		driver.Close()
		return nil, nil, fmt.Errorf("cannot list MIDI outputs: %w", err)
	}
	for _, o := range outs {
		if strings.HasPrefix(o.String(), namePrefix) {
			if err := o.Open(); err != nil {
				driver.Close()
				return nil, nil, fmt.Errorf("opening MIDI output %q failed: %w", o, err)
			}
			return o, func() { driver.Close() }, nil
		}
	}
	driver.Close()
	if namePrefix == "" {
		return nil, nil, fmt.Errorf("could not find any MIDI output")
	}
	return nil, nil, fmt.Errorf("could not find any MIDI output starting with %q", namePrefix)
}

// MIDIOutputs lists the names of the MIDI output ports.
func MIDIOutputs() ([]string, error) {
	driver, err := rtmididrv.New()
	if err != nil {
		return nil, fmt.Errorf("cannot open MIDI driver: %w", err)
	}
	defer driver.Close()
	outs, err := driver.Outs()
	if err != nil {
		return nil, fmt.Errorf("cannot list MIDI outputs: %w", err)
	}
	ret := make([]string, len(outs))
	for i, o := range outs {
		ret[i] = o.String()
	}
	return ret, nil
}
