package nbm

type (
	// NoteTrigger is the hand-off to whatever makes sound. Trigger is fire
	// and forget: it must return immediately, must be safe to call many
	// times in a row (several notes can start on the same tick) and never
	// reports back when the sound finishes.
	NoteTrigger interface {
		Trigger(instrument int, pitch uint8)
	}

	// TriggerFunc adapts an ordinary function to a NoteTrigger.
	TriggerFunc func(instrument int, pitch uint8)

	// NullTrigger discards all triggers.
	NullTrigger struct{}
)

func (f TriggerFunc) Trigger(instrument int, pitch uint8) { f(instrument, pitch) }

func (NullTrigger) Trigger(int, uint8) {}
