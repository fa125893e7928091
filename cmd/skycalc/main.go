package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	sexa "github.com/soniakeys/sexagesimal"
	"github.com/soniakeys/unit"

	"github.com/mitchell-currie/sky-calc/body"
	"github.com/mitchell-currie/sky-calc/earth"
	"github.com/mitchell-currie/sky-calc/eclipse"
	"github.com/mitchell-currie/sky-calc/ephemeris"
	"github.com/mitchell-currie/sky-calc/geo"
	"github.com/mitchell-currie/sky-calc/riseset"
)

type config struct {
	lat, lon *float64
	tz       *float64
	timeStr  *string
	days     *int
	fallback *bool
	showHelp *bool
}

func defineFlags() config {
	return config{
		lat: flag.Float64("lat", 51.5, "Observer latitude in degrees"),
		lon: flag.Float64("lon", -0.1, "Observer longitude in degrees"),
		tz:  flag.Float64("tz", 0.0, "UTC offset in hours, used to locate local noon"),

		timeStr: flag.String("time", "", "Time in RFC3339 format (e.g., 2025-08-02T15:04:05Z); defaults to now"),
		days:    flag.Int("days", riseset.DefaultMaxDays, "Search horizon in days for the next rise/set"),

		fallback: flag.Bool("fallback", false, "Force the closed-form fallback provider"),

		showHelp: flag.Bool("h", false, "Show this help message"),
	}
}

func printHelp() {
	fmt.Fprintf(os.Stderr, `Sky Calculator - Sun/Moon positions, rise/set, and eclipse geometry

Usage:
  %[1]s [options]

`, os.Args[0])

	printGroup("Observer Options", []string{"lat", "lon", "tz"})
	printGroup("Query Options", []string{"time", "days", "fallback"})
	printGroup("Misc", []string{"h"})
}

func printGroup(title string, keys []string) {
	fmt.Fprintf(os.Stderr, "%s:\n", title)
	for _, name := range keys {
		if f := flag.Lookup(name); f != nil {
			fmt.Fprintf(os.Stderr, "  -%-8s %s (default %q)\n", f.Name, f.Usage, f.DefValue)
		}
	}
	fmt.Fprintln(os.Stderr)
}

func main() {
	cfg := defineFlags()
	flag.Usage = printHelp
	flag.Parse()

	if *cfg.showHelp {
		printHelp()
		return
	}

	at := parseTimeOrExit(*cfg.timeStr)
	obs := geo.NewPoint(*cfg.lat, *cfg.lon)

	eph := ephemeris.Default()
	if *cfg.fallback {
		eph = ephemeris.NewResolver(nil)
	}
	if err := eph.InitNow(context.Background()); err != nil {
		// An unavailable primary is not fatal; the resolver degrades to
		// the closed-form provider by itself.
		log.Printf("primary ephemeris unavailable, using fallback: %v", err)
	}

	bodies := body.NewResolver(eph)
	search := riseset.New(bodies)

	fmt.Printf("Observer %v at %s (provider: %s, accuracy: %s)\n\n",
		obs, at.UTC().Format(time.RFC3339), eph.Name(), eph.Accuracy())

	sun, moon := bodies.Both(at)
	printBody(eph, at, obs, body.Sun, sun)
	printBody(eph, at, obs, body.Moon, moon)

	fmt.Printf("Moon phase: %s (%d%% illuminated, phase %.4f)\n\n",
		body.PhaseName(moon.Phase), body.Illumination(moon.Phase), moon.Phase)

	printEvents(search, obs, at, *cfg.tz, *cfg.days)
	printEclipse(bodies, obs, at, sun, moon)
}

func parseTimeOrExit(timeStr string) time.Time {
	if timeStr == "" {
		return time.Now()
	}
	t, err := time.Parse(time.RFC3339, timeStr)
	if err != nil {
		log.Fatalf("Invalid time format: %v", err)
	}
	return t
}

func printBody(eph *ephemeris.Resolver, at time.Time, obs geo.Point, b body.Body, pos body.GeoPosition) {
	jd := eph.JulianDay(at)
	var eq ephemeris.Equatorial
	if b == body.Moon {
		eq = eph.MoonEquatorial(jd)
	} else {
		eq = eph.SunEquatorial(jd)
	}
	aa := geo.Topocentric(obs, pos.Point)

	fmt.Printf("%s:\n", b)
	fmt.Printf("  RA %v  Dec %v\n",
		sexa.FmtRA(unit.RA(unit.AngleFromDeg(eq.RADeg))),
		sexa.FmtAngle(unit.AngleFromDeg(eq.DecDeg)))
	fmt.Printf("  sub-point %v\n", pos.Point)
	if b == body.Moon {
		fmt.Printf("  distance %.0f km\n", pos.DistanceKm)
	} else {
		fmt.Printf("  distance %.1f million km\n", pos.DistanceKm/1e6)
	}
	fmt.Printf("  altitude %.2f°  azimuth %.2f°\n\n", aa.AltitudeDeg, aa.AzimuthDeg)
}

func printEvents(search *riseset.Search, obs geo.Point, at time.Time, tz float64, maxDays int) {
	y, m, d := at.Add(time.Duration(tz * float64(time.Hour))).UTC().Date()
	noon := riseset.NoonUTC(y, m, d, tz)

	sunEv, moonEv := search.BothForDay(obs.LatDeg, obs.LonDeg, noon)
	printDay(search, body.Sun, obs, noon, sunEv, tz)
	printDay(search, body.Moon, obs, noon, moonEv, tz)

	for _, b := range []body.Body{body.Sun, body.Moon} {
		if e := search.Next(b, obs.LatDeg, obs.LonDeg, at, maxDays); e != nil {
			fmt.Printf("Next %s %s: %s (in %s)\n", b, e.Kind,
				e.Time.UTC().Format(time.RFC3339),
				time.Duration(e.OffsetMinutes*float64(time.Minute)).Round(time.Minute))
		} else {
			fmt.Printf("Next %s event: none within %d days\n", b, maxDays)
		}
	}
	fmt.Println()
}

func printDay(search *riseset.Search, b body.Body, obs geo.Point, noon time.Time, ev riseset.Events, tz float64) {
	local := func(t time.Time) string {
		return t.Add(time.Duration(tz * float64(time.Hour))).UTC().Format("15:04")
	}
	switch {
	case ev.Rise != nil && ev.Set != nil:
		fmt.Printf("%s today: rise %s  set %s", b, local(ev.Rise.Time), local(ev.Set.Time))
		if day, ok := riseset.Daylight(ev); ok && b == body.Sun {
			fmt.Printf("  (daylight %s)", day.Round(time.Minute))
		}
		fmt.Println()
	case ev.Rise != nil:
		fmt.Printf("%s today: rise %s, no set\n", b, local(ev.Rise.Time))
	case ev.Set != nil:
		fmt.Printf("%s today: set %s, no rise\n", b, local(ev.Set.Time))
	default:
		fmt.Printf("%s today: %s\n", b, search.State(b, obs.LatDeg, obs.LonDeg, noon))
	}
}

func printEclipse(bodies *body.Resolver, obs geo.Point, at time.Time, sun, moon body.GeoPosition) {
	g := eclipse.Cones(moon.DistanceKm, sun.DistanceKm)

	fmt.Printf("Shadow geometry:\n")
	fmt.Printf("  umbra: half-angle %.4f°, length %.0f km", g.UmbraHalfAngleDeg, g.UmbraLengthKm)
	if g.UmbraReachesEarth {
		fmt.Printf(", reaches Earth (total eclipse possible)\n")
	} else {
		fmt.Printf(", falls short by %.0f km (annular geometry)\n", moon.DistanceKm-g.UmbraLengthKm)
	}
	fmt.Printf("  penumbra: half-angle %.4f°, radius at Earth %.0f km\n",
		g.PenumbraHalfAngleDeg, g.PenumbraRadiusAtEarthKm)

	sep := earth.TopocentricSeparationDeg(bodies, obs, at)
	frac := eclipse.Obscuration(sep,
		eclipse.AngularRadiusDeg(body.SunRadiusKm, sun.DistanceKm),
		eclipse.AngularRadiusDeg(body.MoonRadiusKm, moon.DistanceKm))
	fmt.Printf("  sun-moon separation %.2f° at the observer, solar disk obscured %.1f%%\n", sep, frac*100)
}
