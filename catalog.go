package nbm

import (
	"fmt"
	"math"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Instruments is the fixed catalog of playable sounds. The index into this
// list is the instrument identifier stored in the layers; the string is the
// name of the sample the audio back-end plays for it.
var Instruments = [...]string{
	"harp",
	"dbass",
	"bdrum",
	"sdrum",
	"click",
	"guitar",
	"flute",
	"bell",
	"icechime",
	"xylobone",
	"iron_xylophone",
	"cow_bell",
	"didgeridoo",
	"bit",
	"banjo",
	"pling",
}

// NumInstruments is the number of instruments in the catalog.
const NumInstruments = len(Instruments)

// ReferencePitch plays a sample at its native recorded rate. It is also the
// pitch used when previewing an instrument.
const ReferencePitch = 66

var noteNames = [12]string{"C", "C#", "D", "D#", "E", "F", "F#", "G", "G#", "A", "A#", "B"}

var titleCaser = cases.Title(language.English)

// InstrumentName returns the sample identifier of the instrument, or an
// empty string if the index is not in the catalog.
func InstrumentName(instrument int) string {
	if instrument < 0 || instrument >= NumInstruments {
		return ""
	}
	return Instruments[instrument]
}

// InstrumentDisplayName returns a human readable name, e.g. "Iron
// Xylophone" for "iron_xylophone".
func InstrumentDisplayName(instrument int) string {
	name := InstrumentName(instrument)
	if name == "" {
		return fmt.Sprintf("Instrument %d", instrument)
	}
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// NoteName returns the scientific pitch name of a MIDI style pitch: 60 is
// "C4", 61 is "C#4" and 0 is "C-1".
func NoteName(pitch uint8) string {
	return fmt.Sprintf("%s%d", noteNames[pitch%12], int(pitch/12)-1)
}

// PlaybackRate returns the speed multiplier at which a sample should be
// played to sound at the given pitch: 2^((pitch-66)/12).
func PlaybackRate(pitch uint8) float64 {
	return math.Pow(2, (float64(pitch)-ReferencePitch)/12)
}
