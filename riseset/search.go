// Package riseset finds horizon crossings: the rise/set pair for a local
// day, and the next crossing after an arbitrary instant.
//
// One parameterized search serves both the Sun and the Moon. The threshold
// is a function of the sample time, so the Moon's distance-dependent horizon
// is re-evaluated at every sample while the Sun binds a constant. Crossings
// are located by linear interpolation between the two bracketing samples;
// the worst-case timing error is about half the step for near-tangential
// crossings, which the finer lunar step keeps in the one-minute range.
package riseset

import "time"

// AltitudeFunc returns a body's topocentric altitude in degrees at t.
type AltitudeFunc func(t time.Time) float64

// ThresholdFunc returns the horizon threshold in degrees at t.
type ThresholdFunc func(t time.Time) float64

// Constant adapts a fixed threshold to ThresholdFunc.
func Constant(deg float64) ThresholdFunc {
	return func(time.Time) float64 { return deg }
}

// Kind distinguishes rising from setting crossings.
type Kind int

const (
	Rise Kind = iota
	Set
)

func (k Kind) String() string {
	if k == Set {
		return "set"
	}
	return "rise"
}

// Event is one horizon crossing. OffsetMinutes is relative to the reference
// instant of the search that produced it (local noon for ForDay, the start
// instant for Next).
type Event struct {
	Kind          Kind
	Time          time.Time
	OffsetMinutes float64
}

// Events is the rise/set pair for one 24-hour window. A nil Rise or Set
// means the body did not cross the threshold in that direction within the
// window. That is a meaningful result (polar day/night or a circumpolar body), not
// an error. Use Classify to tell the two apart.
type Events struct {
	Rise *Event
	Set  *Event
}

// Found reports whether any crossing was found.
func (e Events) Found() bool { return e.Rise != nil || e.Set != nil }

// DayState classifies a windowed search result.
type DayState int

const (
	// StateNormal: at least one crossing occurred.
	StateNormal DayState = iota
	// StatePolarDay: no crossing, body above threshold throughout.
	StatePolarDay
	// StatePolarNight: no crossing, body below threshold throughout.
	StatePolarNight
)

func (s DayState) String() string {
	switch s {
	case StatePolarDay:
		return "polar day"
	case StatePolarNight:
		return "polar night"
	default:
		return "normal"
	}
}

// ForDay scans a ±12 hour window centered on noonUTC (the instant of local
// noon, expressed in UTC) at the given step, returning at most one rise and
// one set. Both altitude and threshold are evaluated at every sample.
func ForDay(alt AltitudeFunc, thr ThresholdFunc, noonUTC time.Time, step time.Duration) Events {
	if step <= 0 {
		step = 10 * time.Minute
	}
	start := noonUTC.Add(-12 * time.Hour)
	end := noonUTC.Add(12 * time.Hour)

	var ev Events
	prevT := start
	prevD := alt(prevT) - thr(prevT)

	for t := start.Add(step); !t.After(end); t = t.Add(step) {
		d := alt(t) - thr(t)

		if ev.Rise == nil && prevD < 0 && d >= 0 {
			ct := interpolate(prevT, t, prevD, d)
			ev.Rise = &Event{Kind: Rise, Time: ct, OffsetMinutes: ct.Sub(noonUTC).Minutes()}
		}
		if ev.Set == nil && prevD >= 0 && d < 0 {
			ct := interpolate(prevT, t, prevD, d)
			ev.Set = &Event{Kind: Set, Time: ct, OffsetMinutes: ct.Sub(noonUTC).Minutes()}
		}
		if ev.Rise != nil && ev.Set != nil {
			break
		}
		prevT, prevD = t, d
	}
	return ev
}

// NextStep is the sample resolution of Next.
const NextStep = 15 * time.Minute

// DefaultMaxDays bounds the forward search of Next.
const DefaultMaxDays = 60

// Next steps forward from `from` at 15-minute resolution for up to maxDays
// (DefaultMaxDays if maxDays <= 0) and returns the first threshold crossing,
// classified by which side of the threshold the body starts on. A nil result
// means no crossing within the search horizon, which is legitimate at polar
// latitudes, not an error. The loop is bounded and needs no cancellation.
func Next(alt AltitudeFunc, thr ThresholdFunc, from time.Time, maxDays int) *Event {
	if maxDays <= 0 {
		maxDays = DefaultMaxDays
	}
	end := from.AddDate(0, 0, maxDays)

	prevT := from
	prevD := alt(from) - thr(from)
	startAbove := prevD > 0

	for t := from.Add(NextStep); !t.After(end); t = t.Add(NextStep) {
		d := alt(t) - thr(t)
		if (d > 0) != startAbove {
			kind := Rise
			if startAbove {
				kind = Set
			}
			ct := interpolate(prevT, t, prevD, d)
			return &Event{Kind: kind, Time: ct, OffsetMinutes: ct.Sub(from).Minutes()}
		}
		prevT, prevD = t, d
	}
	return nil
}

// Classify resolves a no-crossing day into polar day or polar night by
// checking the current altitude against the current threshold at `at`.
func Classify(alt AltitudeFunc, thr ThresholdFunc, at time.Time, ev Events) DayState {
	if ev.Found() {
		return StateNormal
	}
	if alt(at)-thr(at) > 0 {
		return StatePolarDay
	}
	return StatePolarNight
}

// interpolate locates the zero of the sampled difference linearly between
// the bracketing samples.
func interpolate(t0, t1 time.Time, d0, d1 float64) time.Time {
	if d0 == d1 {
		return t0
	}
	frac := d0 / (d0 - d1)
	if frac < 0 {
		frac = 0
	} else if frac > 1 {
		frac = 1
	}
	return t0.Add(time.Duration(frac * float64(t1.Sub(t0))))
}
