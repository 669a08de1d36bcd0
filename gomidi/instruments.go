package gomidi

import "github.com/nbmusic/nbm"

// PercussionChannel is the General MIDI drum channel (channel 10, counting
// from one).
const PercussionChannel = 9

// generalMIDI maps each instrument of the catalog to the closest General MIDI
// sound: the channel it plays on and the program selected on that channel.
// The drums share the percussion channel, where the pitch selects the drum.
var generalMIDI = [nbm.NumInstruments]struct {
	channel, program uint8
}{
	{0, 46},                // harp: orchestral harp
	{1, 32},                // dbass: acoustic bass
	{PercussionChannel, 0}, // bdrum
	{PercussionChannel, 0}, // sdrum
	{PercussionChannel, 0}, // click
	{2, 24},                // guitar: nylon guitar
	{3, 73},                // flute
	{4, 14},                // bell: tubular bells
	{5, 112},               // icechime: tinkle bell
	{6, 13},                // xylobone: xylophone
	{7, 11},                // iron_xylophone: vibraphone
	{8, 113},               // cow_bell: agogo
	{10, 109},              // didgeridoo: bagpipe drone
	{11, 80},               // bit: square lead
	{12, 105},              // banjo
	{13, 4},                // pling: electric piano
}

// Channel returns the MIDI channel of an instrument, or false if the
// instrument is not in the catalog.
func Channel(instrument int) (uint8, bool) {
	if instrument < 0 || instrument >= nbm.NumInstruments {
		return 0, false
	}
	return generalMIDI[instrument].channel, true
}

// Program returns the General MIDI program of an instrument.
func Program(instrument int) (uint8, bool) {
	if instrument < 0 || instrument >= nbm.NumInstruments {
		return 0, false
	}
	return generalMIDI[instrument].program, true
}
