package item

import (
	"github.com/speleogo/survex3d/internal/label"
	"github.com/speleogo/survex3d/internal/stream"
)

// Line type-byte bit signalling that no label edit precedes the
// coordinate payload.
const lineNoLabelChange = 0x20

// Decoder turns the byte stream following the file header into a
// sequence of Items. It owns the shared label buffer that
// label-bearing records edit incrementally.
type Decoder struct {
	r     *stream.Reader
	label *label.Buffer

	// warn receives soft-anomaly notes; never nil after NewDecoder.
	warn func(format string, args ...interface{})
}

// NewDecoder creates a Decoder over r. warn may be nil.
func NewDecoder(r *stream.Reader, warn func(format string, args ...interface{})) *Decoder {
	if warn == nil {
		warn = func(string, ...interface{}) {}
	}
	return &Decoder{
		r:     r,
		label: &label.Buffer{},
		warn:  warn,
	}
}

// AtEnd reports whether the underlying buffer is exhausted.
func (d *Decoder) AtEnd() bool {
	return d.r.AtEnd()
}

// Next decodes one item. It returns stream.ErrUnexpectedEOF when a
// record's payload runs past the end of the buffer; callers treat
// that as end of stream.
//
// The type byte ranges are checked in ascending order and the byte
// space is dense: every value maps to some record kind, with
// unrecognized bytes decoding as zero-payload Unknown items.
func (d *Decoder) Next() (Item, error) {
	t, err := d.r.ReadU8()
	if err != nil {
		return nil, err
	}

	switch {
	case t <= 0x04:
		return Style{Type: t}, nil

	case t <= 0x0e:
		// Reserved control bytes, no payload.
		return Unknown{Type: t}, nil

	case t == 0x0f:
		p, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		return Move{Point: p}, nil

	case t >= 0x10 && t <= 0x13:
		if t == 0x11 {
			days, err := d.r.ReadU16()
			if err != nil {
				return nil, err
			}
			return Date{Type: t, Days: days}, nil
		}
		return Date{Type: t}, nil

	case t == 0x1f:
		return d.readErrorInfo()

	case t >= 0x30 && t <= 0x33:
		return d.readCrossSection(t)

	case t >= 0x40 && t <= 0x7f:
		if t&lineNoLabelChange == 0 {
			if err := d.applyLabelEdit(t); err != nil {
				return nil, err
			}
		}
		p, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		return Line{Type: t, Point: p}, nil

	case t >= 0x80:
		if err := d.applyLabelEdit(t); err != nil {
			return nil, err
		}
		p, err := d.readPoint()
		if err != nil {
			return nil, err
		}
		return Label{Type: t, Point: p, Name: d.label.String()}, nil

	default:
		d.warn("unknown item type byte 0x%02x at offset %d", t, d.r.Offset()-1)
		return Unknown{Type: t}, nil
	}
}

// readPoint reads three signed 32-bit centimeter components and
// converts each to meters.
func (d *Decoder) readPoint() (Point3, error) {
	x, err := d.r.ReadI32()
	if err != nil {
		return Point3{}, err
	}
	y, err := d.r.ReadI32()
	if err != nil {
		return Point3{}, err
	}
	z, err := d.r.ReadI32()
	if err != nil {
		return Point3{}, err
	}
	return Point3{
		X: float64(x) / 100.0,
		Y: float64(y) / 100.0,
		Z: float64(z) / 100.0,
	}, nil
}

func (d *Decoder) readErrorInfo() (Item, error) {
	var vals [5]int32
	for i := range vals {
		v, err := d.r.ReadI32()
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	return ErrorInfo{
		Legs:   vals[0],
		Length: vals[1],
		E:      vals[2],
		H:      vals[3],
		V:      vals[4],
	}, nil
}

// readCrossSection consumes a cross-section record. 0x30/0x31 carry
// four 16-bit passage dimensions, 0x32/0x33 four 32-bit ones; both
// variants are prefixed by a label edit naming the station they
// measure.
func (d *Decoder) readCrossSection(t uint8) (Item, error) {
	if err := d.applyLabelEdit(t); err != nil {
		return nil, err
	}
	size := 2
	if t >= 0x32 {
		size = 4
	}
	if err := d.r.Skip(4 * size); err != nil {
		return nil, err
	}
	return CrossSection{Type: t, Name: d.label.String()}, nil
}

func (d *Decoder) applyLabelEdit(t uint8) error {
	clamped, err := d.label.ApplyEdit(d.r)
	if err != nil {
		return err
	}
	if clamped {
		d.warn("label edit for item type 0x%02x deleted past start of buffer (clamped)", t)
	}
	return nil
}
