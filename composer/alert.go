package composer

import (
	"iter"
	"math"
	"slices"
	"time"
)

type (
	// Alert is a message shown to the user for a while, e.g. "could not open
	// the file". Alerts with the same non-empty Name replace each other, so
	// that a repeated failure does not stack up.
	Alert struct {
		Name      string
		Priority  AlertPriority
		Message   string
		Duration  time.Duration
		FadeLevel float64
	}

	AlertPriority int

	Alerts Model
)

const (
	None AlertPriority = iota
	Info
	Warning
	Error
)

const (
	defaultAlertDuration = 3 * time.Second
	alertFadeTime        = 150 * time.Millisecond
)

// Alerts returns the Alerts view of the model, the queue of messages shown to
// the user.
func (m *Model) Alerts() *Alerts { return (*Alerts)(m) }

// Add adds an unnamed alert with the default duration.
func (m *Alerts) Add(message string, priority AlertPriority) {
	m.Push(Alert{
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

// AddNamed adds an alert replacing any earlier alert with the same name.
func (m *Alerts) AddNamed(name, message string, priority AlertPriority) {
	m.Push(Alert{
		Name:     name,
		Priority: priority,
		Message:  message,
		Duration: defaultAlertDuration,
	})
}

func (m *Alerts) Push(a Alert) {
	if a.Name != "" {
		for i := range m.alerts {
			if m.alerts[i].Name == a.Name {
				a.FadeLevel = m.alerts[i].FadeLevel
				m.alerts[i] = a
				return
			}
		}
	}
	m.alerts = append(m.alerts, a)
}

// Update advances the alerts by the elapsed time: alerts fade in, count down
// their durations and fade out. Alerts that have faded out are removed. It
// returns true if there are alerts left, i.e. the UI should keep animating.
func (m *Alerts) Update(elapsed time.Duration) (animating bool) {
	fade := float64(elapsed) / float64(alertFadeTime)
	for i := range m.alerts {
		a := &m.alerts[i]
		if a.Duration > 0 {
			a.Duration -= elapsed
			a.FadeLevel = math.Min(a.FadeLevel+fade, 1)
		} else {
			a.FadeLevel = math.Max(a.FadeLevel-fade, 0)
		}
	}
	m.alerts = slices.DeleteFunc(m.alerts, func(a Alert) bool {
		return a.Duration <= 0 && a.FadeLevel <= 0
	})
	return len(m.alerts) > 0
}

// Iterate yields the alerts from the highest priority to the lowest; alerts of
// the same priority in the order they were added.
func (m *Alerts) Iterate() iter.Seq[Alert] {
	return func(yield func(Alert) bool) {
		for p := Error; p >= None; p-- {
			for _, a := range m.alerts {
				if a.Priority == p && !yield(a) {
					return
				}
			}
		}
	}
}

func (p AlertPriority) String() string {
	switch p {
	case Info:
		return "info"
	case Warning:
		return "warning"
	case Error:
		return "error"
	}
	return "none"
}
