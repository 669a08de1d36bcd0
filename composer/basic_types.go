package composer

import (
	"math"
	"strconv"
)

// Enabler is implemented by the values and actions that can be disabled, so
// that a UI can gray out the corresponding button or key.
type Enabler interface {
	Enabled() bool
}

// Action

type (
	// Action is a command the user can give to the model, e.g. "select all".
	// Do performs it, unless its Doer is an Enabler that is currently
	// disabled; then Do does nothing.
	Action struct {
		doer Doer
	}

	Doer interface {
		Do()
	}
)

func MakeAction(doer Doer) Action { return Action{doer: doer} }

func (a Action) Do() {
	if a.Enabled() {
		a.doer.Do()
	}
}

func (a Action) Enabled() bool {
	if a.doer == nil {
		return false
	}
	if e, ok := a.doer.(Enabler); ok {
		return e.Enabled()
	}
	return true
}

// Bool

type (
	// Bool is a toggleable value of the model, e.g. whether the transport is
	// playing.
	Bool struct {
		value BoolValue
	}

	BoolValue interface {
		Value() bool
		SetValue(bool)
	}
)

func MakeBool(value BoolValue) Bool { return Bool{value: value} }

func (v Bool) Toggle() { v.SetValue(!v.Value()) }

// SetValue sets the value if it differs from the current one and the Bool is
// enabled.
func (v Bool) SetValue(value bool) (changed bool) {
	if !v.Enabled() || v.Value() == value {
		return false
	}
	v.value.SetValue(value)
	return true
}

func (v Bool) Value() bool {
	return v.value != nil && v.value.Value()
}

func (v Bool) Enabled() bool {
	if v.value == nil {
		return false
	}
	if e, ok := v.value.(Enabler); ok {
		return e.Enabled()
	}
	return true
}

// Int

type (
	// Int is an integer value of the model with a range, e.g. the active
	// layer. Values set through Int are clamped to the range, and the
	// underlying IntValue only sees actual changes. If the IntValue is also a
	// StringOfer, it names the values for display.
	Int struct {
		value IntValue
	}

	IntValue interface {
		Value() int
		SetValue(int) (changed bool)
		Range() RangeInclusive
	}

	StringOfer interface {
		StringOf(value int) string
	}
)

func MakeInt(value IntValue) Int { return Int{value} }

func (v Int) Add(delta int) (changed bool) {
	return v.SetValue(v.Value() + delta)
}

func (v Int) SetValue(value int) (changed bool) {
	if v.value == nil {
		return false
	}
	r := v.Range()
	if r.Max < r.Min {
		return false
	}
	value = r.Clamp(value)
	if value == v.Value() {
		return false
	}
	return v.value.SetValue(value)
}

func (v Int) Range() RangeInclusive {
	if v.value == nil {
		return RangeInclusive{0, 0}
	}
	return v.value.Range()
}

func (v Int) Value() int {
	if v.value == nil {
		return 0
	}
	return v.value.Value()
}

func (v Int) String() string { return v.StringOf(v.Value()) }

func (v Int) StringOf(value int) string {
	if s, ok := v.value.(StringOfer); ok {
		return s.StringOf(value)
	}
	return strconv.Itoa(value)
}

// Float

type (
	// Float is the floating point counterpart of Int, used for continuous
	// values such as the tick rate. NaN is never accepted.
	Float struct {
		value FloatValue
	}

	FloatValue interface {
		Value() float64
		SetValue(float64) (changed bool)
		Range() FloatRange
	}
)

func MakeFloat(value FloatValue) Float { return Float{value} }

func (v Float) Add(delta float64) (changed bool) {
	return v.SetValue(v.Value() + delta)
}

func (v Float) SetValue(value float64) (changed bool) {
	if v.value == nil || math.IsNaN(value) {
		return false
	}
	value = v.Range().Clamp(value)
	if value == v.Value() {
		return false
	}
	return v.value.SetValue(value)
}

func (v Float) Range() FloatRange {
	if v.value == nil {
		return FloatRange{0, 0}
	}
	return v.value.Range()
}

func (v Float) Value() float64 {
	if v.value == nil {
		return 0
	}
	return v.value.Value()
}

// RangeInclusive is the range of integers [Min, Max].
type RangeInclusive struct{ Min, Max int }

func (r RangeInclusive) Clamp(value int) int { return max(min(value, r.Max), r.Min) }

// FloatRange is the range of floats [Min, Max].
type FloatRange struct{ Min, Max float64 }

func (r FloatRange) Clamp(value float64) float64 { return max(min(value, r.Max), r.Min) }
