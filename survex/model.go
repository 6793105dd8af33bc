package survex

import (
	"time"

	"github.com/speleogo/survex3d/internal/item"
)

// Point3 is a position in meters.
type Point3 = item.Point3

// Header holds the file prologue. It is immutable after parsing.
type Header struct {
	Magic     string    `json:"magic"`
	Version   string    `json:"version"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
	Flags     uint8     `json:"flags"`
}

// Station is a named, located survey point. Stations are keyed by
// name: re-labeling an existing name overwrites its position.
type Station struct {
	Name     string `json:"name"`
	Position Point3 `json:"position"`
	Flags    uint32 `json:"flags"`
}

// Leg is a straight survey segment. FromStation and ToStation are
// empty when the corresponding endpoint was never labeled (a splay).
type Leg struct {
	FromStation string `json:"fromStation,omitempty"`
	ToStation   string `json:"toStation,omitempty"`
	From        Point3 `json:"from"`
	To          Point3 `json:"to"`
	Flags       uint32 `json:"flags"`
}

// IsSplay reports whether either endpoint of the leg is unnamed.
func (l Leg) IsSplay() bool {
	return l.FromStation == "" || l.ToStation == ""
}

// Bounds is the axis-aligned bounding box over all station positions.
// It is zero-valued when the survey has no stations.
type Bounds struct {
	Min Point3 `json:"min"`
	Max Point3 `json:"max"`
}

// ParseResult is the complete decoded survey. It owns all of its data
// and holds no references into the input buffer.
type ParseResult struct {
	Header   Header    `json:"header"`
	Stations []Station `json:"stations"`
	Legs     []Leg     `json:"legs"`
	Bounds   Bounds    `json:"bounds"`
}

// Station returns the station with the given name, if present.
func (r *ParseResult) Station(name string) (Station, bool) {
	for _, s := range r.Stations {
		if s.Name == name {
			return s, true
		}
	}
	return Station{}, false
}

// SplayCount returns the number of legs with at least one unnamed
// endpoint.
func (r *ParseResult) SplayCount() int {
	n := 0
	for _, l := range r.Legs {
		if l.IsSplay() {
			n++
		}
	}
	return n
}
