package survex

import (
	"math"

	"github.com/speleogo/survex3d/internal/item"
)

// legMatchEpsilon is the per-axis tolerance, in meters, for matching
// a label's position against the endpoint of the leg emitted just
// before it.
const legMatchEpsilon = 0.001

// graphBuilder folds the decoded item stream into stations, legs and
// bounds. It carries the running position and the most recent label
// so that interleaved LINE/LABEL records connect up: a line's
// destination is usually named by the label that immediately follows
// it at the same coordinates.
type graphBuilder struct {
	current   Point3
	lastLabel string

	// pending indexes the leg whose destination is still unnamed, or
	// -1 when there is none.
	pending int

	stationIdx map[string]int
	stations   []Station
	legs       []Leg
}

func newGraphBuilder() *graphBuilder {
	return &graphBuilder{
		pending:    -1,
		stationIdx: make(map[string]int),
	}
}

func (g *graphBuilder) consume(it item.Item) {
	switch v := it.(type) {
	case item.Move:
		// A move breaks the chain: no leg, no label carry-over.
		g.current = v.Point
		g.lastLabel = ""
		g.pending = -1

	case item.Line:
		g.legs = append(g.legs, Leg{
			FromStation: g.lastLabel,
			From:        g.current,
			To:          v.Point,
			Flags:       uint32(v.Type & 0x3f),
		})
		g.pending = len(g.legs) - 1
		g.current = v.Point
		g.lastLabel = ""

	case item.Label:
		g.upsertStation(v.Name, v.Point, uint32(v.Type&0x7f))
		g.lastLabel = v.Name
		g.current = v.Point
		if g.pending >= 0 {
			leg := &g.legs[g.pending]
			if nearlyEqual(leg.To, v.Point) {
				leg.ToStation = v.Name
				g.pending = -1
			}
		}

	case item.Style, item.Date, item.ErrorInfo, item.CrossSection, item.Unknown:
		// No effect on the graph.
	}
}

// upsertStation records a station, overwriting position and flags if
// the name was seen before. Insertion order of first appearance is
// preserved.
func (g *graphBuilder) upsertStation(name string, p Point3, flags uint32) {
	if i, ok := g.stationIdx[name]; ok {
		g.stations[i].Position = p
		g.stations[i].Flags = flags
		return
	}
	g.stationIdx[name] = len(g.stations)
	g.stations = append(g.stations, Station{Name: name, Position: p, Flags: flags})
}

func nearlyEqual(a, b Point3) bool {
	return math.Abs(a.X-b.X) <= legMatchEpsilon &&
		math.Abs(a.Y-b.Y) <= legMatchEpsilon &&
		math.Abs(a.Z-b.Z) <= legMatchEpsilon
}

// bounds computes the componentwise min/max over all stations. A
// survey without stations has zero bounds.
func (g *graphBuilder) bounds() Bounds {
	if len(g.stations) == 0 {
		return Bounds{}
	}
	p := g.stations[0].Position
	b := Bounds{Min: p, Max: p}
	for _, s := range g.stations[1:] {
		b.Min.X = math.Min(b.Min.X, s.Position.X)
		b.Min.Y = math.Min(b.Min.Y, s.Position.Y)
		b.Min.Z = math.Min(b.Min.Z, s.Position.Z)
		b.Max.X = math.Max(b.Max.X, s.Position.X)
		b.Max.Y = math.Max(b.Max.Y, s.Position.Y)
		b.Max.Z = math.Max(b.Max.Z, s.Position.Z)
	}
	return b
}

// result finalizes the accumulated graph.
func (g *graphBuilder) result() ([]Station, []Leg, Bounds) {
	return g.stations, g.legs, g.bounds()
}
