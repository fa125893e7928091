package ephemeris

import (
	"context"
	"sync"
	"time"
)

// Resolver routes queries to the primary provider once it is ready and to
// the closed-form fallback until then. This keeps every fallback quantity
// (Julian Day, sidereal time, Sun position, Moon position) defined exactly
// once, in one provider, instead of duplicated at call sites.
//
// All methods are safe for concurrent use.
type Resolver struct {
	primary  Provider
	fallback Provider

	startOnce sync.Once
}

// NewResolver returns a Resolver over the given primary provider.
// A nil primary means fallback-only operation.
func NewResolver(primary Provider) *Resolver {
	return &Resolver{
		primary:  primary,
		fallback: Approx{},
	}
}

// Default returns a Resolver with the Meeus provider as primary.
// Call Start (or InitNow) to enable it.
func Default() *Resolver {
	return NewResolver(NewMeeus())
}

// Start kicks off primary initialization in the background and returns
// immediately. Queries made before initialization completes are served by
// the fallback; there is nothing to wait on and no error to handle, since a
// failed init simply leaves the fallback in charge.
func (r *Resolver) Start(ctx context.Context) {
	r.startOnce.Do(func() {
		if r.primary == nil {
			return
		}
		go func() {
			// Error intentionally dropped: an unavailable primary is
			// not a failure mode, it is the fallback's job.
			_ = r.primary.Init(ctx)
		}()
	})
}

// InitNow initializes the primary synchronously. Useful for tests and for
// callers that want full accuracy from the first query.
func (r *Resolver) InitNow(ctx context.Context) error {
	if r.primary == nil {
		return nil
	}
	return r.primary.Init(ctx)
}

func (r *Resolver) active() Provider {
	if r.primary != nil && r.primary.Ready() {
		return r.primary
	}
	return r.fallback
}

// Accuracy reports the accuracy of the provider currently answering queries.
func (r *Resolver) Accuracy() Accuracy { return r.active().Accuracy() }

// Name reports the name of the provider currently answering queries.
func (r *Resolver) Name() string { return r.active().Name() }

func (r *Resolver) JulianDay(t time.Time) float64 { return r.active().JulianDay(t) }

func (r *Resolver) SunEquatorial(jd float64) Equatorial { return r.active().SunEquatorial(jd) }

func (r *Resolver) MoonEquatorial(jd float64) Equatorial { return r.active().MoonEquatorial(jd) }

func (r *Resolver) EclipticLongitudes(jd float64) (sunDeg, moonDeg float64) {
	return r.active().EclipticLongitudes(jd)
}

func (r *Resolver) SiderealTime(jd float64) float64 { return r.active().SiderealTime(jd) }
