package riseset

import (
	"context"
	"math"
	"testing"
	"time"

	"github.com/nathan-osman/go-sunrise"

	"github.com/mitchell-currie/sky-calc/body"
	"github.com/mitchell-currie/sky-calc/ephemeris"
	"github.com/mitchell-currie/sky-calc/geo"
	"github.com/mitchell-currie/sky-calc/horizon"
)

func newTestSearch(t *testing.T) *Search {
	t.Helper()
	eph := ephemeris.Default()
	if err := eph.InitNow(context.Background()); err != nil {
		t.Fatal(err)
	}
	return New(body.NewResolver(eph))
}

func TestEquinoxEquatorDayLength(t *testing.T) {
	s := newTestSearch(t)
	noon := NoonUTC(2024, time.March, 20, 0)
	ev := s.ForDay(body.Sun, 0, 0, noon)
	if ev.Rise == nil || ev.Set == nil {
		t.Fatal("no rise/set at the equator on the equinox")
	}
	day, _ := Daylight(ev)
	// 12 hours, give or take the refraction extension at both limbs.
	if off := math.Abs(day.Minutes() - 720); off > 15 {
		t.Errorf("equinox day length %v, want ~12h", day)
	}
}

func TestAgainstNOAASunriseOracle(t *testing.T) {
	s := newTestSearch(t)
	cases := []struct {
		name     string
		lat, lon float64
		y        int
		m        time.Month
		d        int
	}{
		{"london midsummer", 51.5, -0.1, 2024, time.June, 21},
		{"london midwinter", 51.5, -0.1, 2024, time.December, 21},
		{"sydney", -33.87, 151.21, 2024, time.September, 1},
		{"quito", -0.18, -78.47, 2024, time.March, 20},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			tz := math.Round(c.lon / 15)
			noon := NoonUTC(c.y, c.m, c.d, tz)
			ev := s.ForDay(body.Sun, c.lat, c.lon, noon)
			if ev.Rise == nil || ev.Set == nil {
				t.Fatal("expected both rise and set")
			}
			wantRise, wantSet := sunrise.SunriseSunset(c.lat, c.lon, c.y, c.m, c.d)
			if d := ev.Rise.Time.Sub(wantRise); math.Abs(d.Minutes()) > 5 {
				t.Errorf("sunrise %v vs oracle %v (off by %v)", ev.Rise.Time, wantRise, d)
			}
			if d := ev.Set.Time.Sub(wantSet); math.Abs(d.Minutes()) > 5 {
				t.Errorf("sunset %v vs oracle %v (off by %v)", ev.Set.Time, wantSet, d)
			}
		})
	}
}

func TestLondonDaylightDurations(t *testing.T) {
	s := newTestSearch(t)
	cases := []struct {
		name  string
		m     time.Month
		d     int
		check func(time.Duration) bool
		want  string
	}{
		{"solstice june", time.June, 21, func(d time.Duration) bool { return d > 16*time.Hour }, ">16h"},
		{"solstice december", time.December, 21, func(d time.Duration) bool { return d < 8*time.Hour+30*time.Minute }, "<8.5h"},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			ev := s.ForDay(body.Sun, 51.5, -0.1, NoonUTC(2024, c.m, c.d, 0))
			day, ok := Daylight(ev)
			if !ok {
				t.Fatal("no daylight interval found")
			}
			if !c.check(day) {
				t.Errorf("daylight %v, want %s", day, c.want)
			}
		})
	}
}

func TestSolsticeNoonAltitudeLondon(t *testing.T) {
	s := newTestSearch(t)
	at := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	obs := geo.NewPoint(51.5, -0.1)
	alt := s.altitude(body.Sun, obs)(at)
	if alt < 55 {
		t.Errorf("midsummer noon solar altitude %v, want >55", alt)
	}
}

func TestPolarDayAndNight(t *testing.T) {
	s := newTestSearch(t)

	summer := NoonUTC(2024, time.June, 21, 0)
	ev := s.ForDay(body.Sun, 85, 0, summer)
	if ev.Found() {
		t.Fatalf("lat 85 midsummer: unexpected crossing %+v", ev)
	}
	if st := s.State(body.Sun, 85, 0, summer); st != StatePolarDay {
		t.Errorf("lat 85 midsummer state = %v, want polar day", st)
	}

	winter := NoonUTC(2024, time.December, 21, 0)
	ev = s.ForDay(body.Sun, 85, 0, winter)
	if ev.Found() {
		t.Fatalf("lat 85 midwinter: unexpected crossing %+v", ev)
	}
	if st := s.State(body.Sun, 85, 0, winter); st != StatePolarNight {
		t.Errorf("lat 85 midwinter state = %v, want polar night", st)
	}

	if st := s.State(body.Sun, 51.5, -0.1, summer); st != StateNormal {
		t.Errorf("london state = %v, want normal", st)
	}
}

func TestEventsSitOnThreshold(t *testing.T) {
	s := newTestSearch(t)
	noon := NoonUTC(2024, time.June, 21, 0)
	obs := geo.NewPoint(51.5, -0.1)

	for _, b := range []body.Body{body.Sun, body.Moon} {
		ev := s.ForDay(b, obs.LatDeg, obs.LonDeg, noon)
		alt := s.altitude(b, obs)
		thr := s.threshold(b)
		for _, e := range []*Event{ev.Rise, ev.Set} {
			if e == nil {
				continue
			}
			if miss := math.Abs(alt(e.Time) - thr(e.Time)); miss > 0.3 {
				t.Errorf("%v %v at %v misses threshold by %.3f deg", b, e.Kind, e.Time, miss)
			}
			if math.Abs(e.OffsetMinutes) > 721 {
				t.Errorf("%v %v offset %v outside the day window", b, e.Kind, e.OffsetMinutes)
			}
		}
	}
}

func TestNextClassifiesFirstCrossing(t *testing.T) {
	s := newTestSearch(t)

	// Midsummer noon in London: the sun is up, so the next event is a set.
	from := time.Date(2024, 6, 21, 12, 0, 0, 0, time.UTC)
	e := s.Next(body.Sun, 51.5, -0.1, from, 2)
	if e == nil {
		t.Fatal("no next event within 2 days")
	}
	if e.Kind != Set {
		t.Errorf("next event kind = %v, want set", e.Kind)
	}
	if !e.Time.After(from) || e.OffsetMinutes <= 0 {
		t.Errorf("next event at %v (offset %v) not after start", e.Time, e.OffsetMinutes)
	}

	// Just before midnight the sun is down: next is a rise.
	from = time.Date(2024, 6, 21, 23, 30, 0, 0, time.UTC)
	e = s.Next(body.Sun, 51.5, -0.1, from, 2)
	if e == nil || e.Kind != Rise {
		t.Fatalf("expected a rise next, got %+v", e)
	}
}

func TestNextExhaustsDuringPolarNight(t *testing.T) {
	s := newTestSearch(t)
	from := time.Date(2024, 12, 1, 0, 0, 0, 0, time.UTC)
	if e := s.Next(body.Sun, 85, 0, from, 20); e != nil {
		t.Errorf("polar night: unexpected event %+v within 20 days", e)
	}
	// The same search with a longer horizon eventually finds the spring
	// sunrise.
	if e := s.Next(body.Sun, 85, 0, from, 120); e == nil {
		t.Error("no sunrise found within 120 days at lat 85")
	} else if e.Kind != Rise {
		t.Errorf("first event after polar night = %v, want rise", e.Kind)
	}
}

func TestMoonUsesPerSampleThreshold(t *testing.T) {
	s := newTestSearch(t)
	thr := s.threshold(body.Moon)
	// Across half a lunar orbit the threshold must move.
	a := thr(time.Date(2024, 1, 13, 0, 0, 0, 0, time.UTC)) // near perigee
	b := thr(time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC))  // near apogee
	if a == b {
		t.Error("lunar threshold constant across the orbit")
	}
	for _, v := range []float64{a, b} {
		if v < 0 || v > 0.3 {
			t.Errorf("lunar threshold %v outside plausible band", v)
		}
	}
}

func TestTwilightBracketsSunrise(t *testing.T) {
	s := newTestSearch(t)
	noon := NoonUTC(2024, time.June, 21, 0)
	day := s.ForDay(body.Sun, 51.5, -0.1, noon)
	civil := s.SunAtAltitude(51.5, -0.1, noon, CivilTwilightDeg)
	if day.Rise == nil || civil.Rise == nil {
		t.Fatal("missing sunrise or civil dawn")
	}
	if !civil.Rise.Time.Before(day.Rise.Time) {
		t.Errorf("civil dawn %v not before sunrise %v", civil.Rise.Time, day.Rise.Time)
	}
	if day.Set == nil || civil.Set == nil {
		t.Fatal("missing sunset or civil dusk")
	}
	if !civil.Set.Time.After(day.Set.Time) {
		t.Errorf("civil dusk %v not after sunset %v", civil.Set.Time, day.Set.Time)
	}
}

func TestBothForDayMatchesSequential(t *testing.T) {
	s := newTestSearch(t)
	noon := NoonUTC(2024, time.June, 21, 0)
	sun, moon := s.BothForDay(51.5, -0.1, noon)
	wantSun := s.ForDay(body.Sun, 51.5, -0.1, noon)
	if !eventsEqual(sun, wantSun) {
		t.Error("concurrent sun events differ from sequential")
	}
	wantMoon := s.ForDay(body.Moon, 51.5, -0.1, noon)
	if !eventsEqual(moon, wantMoon) {
		t.Error("concurrent moon events differ from sequential")
	}
}

func TestCacheReturnsSameEvents(t *testing.T) {
	s := newTestSearch(t)
	c, err := NewCache(s, 8)
	if err != nil {
		t.Fatal(err)
	}
	noon := NoonUTC(2024, time.June, 21, 0)
	first := c.ForDay(body.Sun, 51.5, -0.1, noon)
	second := c.ForDay(body.Sun, 51.5, -0.1, noon)
	if !eventsEqual(first, second) {
		t.Error("cached result differs from computed result")
	}
	if c.Len() != 1 {
		t.Errorf("cache holds %d entries, want 1", c.Len())
	}
	c.ForDay(body.Moon, 51.5, -0.1, noon)
	if c.Len() != 2 {
		t.Errorf("cache holds %d entries after second body, want 2", c.Len())
	}
}

func TestThresholdMatchesHorizonPackage(t *testing.T) {
	s := newTestSearch(t)
	if got := s.threshold(body.Sun)(time.Now()); got != horizon.SunThresholdDeg {
		t.Errorf("sun threshold func = %v, want %v", got, horizon.SunThresholdDeg)
	}
}

func eventsEqual(a, b Events) bool {
	eq := func(x, y *Event) bool {
		if (x == nil) != (y == nil) {
			return false
		}
		if x == nil {
			return true
		}
		return x.Kind == y.Kind && x.Time.Equal(y.Time)
	}
	return eq(a.Rise, b.Rise) && eq(a.Set, b.Set)
}
