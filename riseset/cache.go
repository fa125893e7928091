package riseset

import (
	"math"
	"time"

	lru "github.com/hashicorp/golang-lru"

	"github.com/mitchell-currie/sky-calc/body"
)

// Cache memoizes per-day search results. A UI that re-renders every frame
// asks for the same day's events thousands of times; the search itself is a
// few hundred ephemeris evaluations, so one day of results is worth keeping.
//
// Keys round the location to 0.01 degrees (~1 km), well inside the timing
// error of the sampled search.
type Cache struct {
	search *Search
	days   *lru.Cache // dayKey -> Events
}

type dayKey struct {
	body      body.Body
	year      int
	yearDay   int
	latCenti  int
	lonCenti  int
	noonAlign int64 // distinguishes time zones sharing a UTC date
}

// NewCache wraps a Search with an LRU of the given size.
func NewCache(s *Search, size int) (*Cache, error) {
	c, err := lru.New(size)
	if err != nil {
		return nil, err
	}
	return &Cache{search: s, days: c}, nil
}

// ForDay is Search.ForDay with memoization.
func (c *Cache) ForDay(b body.Body, latDeg, lonDeg float64, noonUTC time.Time) Events {
	key := dayKey{
		body:      b,
		year:      noonUTC.UTC().Year(),
		yearDay:   noonUTC.UTC().YearDay(),
		latCenti:  int(math.Round(latDeg * 100)),
		lonCenti:  int(math.Round(lonDeg * 100)),
		noonAlign: noonUTC.UTC().Unix() % 86400,
	}
	if v, ok := c.days.Get(key); ok {
		return v.(Events)
	}
	ev := c.search.ForDay(b, latDeg, lonDeg, noonUTC)
	c.days.Add(key, ev)
	return ev
}

// Len reports the number of cached days.
func (c *Cache) Len() int { return c.days.Len() }
