package item

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"

	"github.com/speleogo/survex3d/internal/stream"
)

func appendI32(b []byte, vals ...int32) []byte {
	for _, v := range vals {
		b = binary.LittleEndian.AppendUint32(b, uint32(v))
	}
	return b
}

func decodeOne(t *testing.T, data []byte) Item {
	t.Helper()
	d := NewDecoder(stream.NewReader(data), nil)
	it, err := d.Next()
	if err != nil {
		t.Fatal(err)
	}
	return it
}

func TestMoveConvertsCentimeters(t *testing.T) {
	data := appendI32([]byte{0x0f}, 1802, -5878, 2047)
	it := decodeOne(t, data)

	mv, ok := it.(Move)
	if !ok {
		t.Fatalf("decoded %T, want Move", it)
	}
	want := Point3{X: 18.02, Y: -58.78, Z: 20.47}
	if math.Abs(mv.Point.X-want.X) > 1e-9 ||
		math.Abs(mv.Point.Y-want.Y) > 1e-9 ||
		math.Abs(mv.Point.Z-want.Z) > 1e-9 {
		t.Errorf("Move point = %+v, want %+v", mv.Point, want)
	}
}

func TestLabelCarriesName(t *testing.T) {
	// Type 0x80, edit appending "pt1", then coordinates.
	data := []byte{0x80, 0x03, 'p', 't', '1'}
	data = appendI32(data, 100, 200, 300)
	it := decodeOne(t, data)

	lb, ok := it.(Label)
	if !ok {
		t.Fatalf("decoded %T, want Label", it)
	}
	if lb.Name != "pt1" {
		t.Errorf("Name = %q, want %q", lb.Name, "pt1")
	}
	if lb.Point != (Point3{X: 1, Y: 2, Z: 3}) {
		t.Errorf("Point = %+v", lb.Point)
	}
}

func TestLineNoLabelChangeBit(t *testing.T) {
	// 0x60 has bit 0x20 set: the coordinate payload follows the type
	// byte directly, with no label edit in between.
	data := appendI32([]byte{0x60}, 100, 100, 100)
	it := decodeOne(t, data)

	ln, ok := it.(Line)
	if !ok {
		t.Fatalf("decoded %T, want Line", it)
	}
	if ln.Point != (Point3{X: 1, Y: 1, Z: 1}) {
		t.Errorf("Point = %+v", ln.Point)
	}
}

func TestLineWithLabelEdit(t *testing.T) {
	// 0x40 carries a label edit before the coordinates; the edited
	// label then feeds the next Label item that reuses the buffer.
	data := []byte{0x40, 0x02, 'a', 'b'}
	data = appendI32(data, 100, 100, 100)
	// A Label with an empty edit picks up the Line's buffer value.
	data = append(data, 0x80, 0x00, 0x00, 0x00)
	data = appendI32(data, 100, 100, 100)

	d := NewDecoder(stream.NewReader(data), nil)
	it, err := d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := it.(Line); !ok {
		t.Fatalf("first item %T, want Line", it)
	}
	it, err = d.Next()
	if err != nil {
		t.Fatal(err)
	}
	lb, ok := it.(Label)
	if !ok {
		t.Fatalf("second item %T, want Label", it)
	}
	if lb.Name != "ab" {
		t.Errorf("Name = %q, want %q", lb.Name, "ab")
	}
}

func TestDateVariants(t *testing.T) {
	d := NewDecoder(stream.NewReader([]byte{0x10, 0x11, 0x34, 0x12, 0x13}), nil)

	it, err := d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if dt, ok := it.(Date); !ok || dt.Days != 0 {
		t.Fatalf("0x10 decoded as %#v, want payload-free Date", it)
	}

	it, err = d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if dt, ok := it.(Date); !ok || dt.Days != 0x1234 {
		t.Fatalf("0x11 decoded as %#v, want Days=0x1234", it)
	}

	it, err = d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if _, ok := it.(Date); !ok {
		t.Fatalf("0x13 decoded as %T, want Date", it)
	}
}

func TestErrorInfo(t *testing.T) {
	data := appendI32([]byte{0x1f}, 10, 2500, 3, 4, 5)
	it := decodeOne(t, data)

	ei, ok := it.(ErrorInfo)
	if !ok {
		t.Fatalf("decoded %T, want ErrorInfo", it)
	}
	if ei.Legs != 10 || ei.Length != 2500 {
		t.Errorf("ErrorInfo = %+v", ei)
	}
}

func TestCrossSectionSizes(t *testing.T) {
	// 0x30 carries a label edit plus four 16-bit dimensions; a
	// following marker byte proves the cursor stayed in sync.
	data := []byte{0x30, 0x01, 'x'}
	data = append(data, 1, 0, 2, 0, 3, 0, 4, 0)
	data = append(data, 0x02) // style marker

	d := NewDecoder(stream.NewReader(data), nil)
	it, err := d.Next()
	if err != nil {
		t.Fatal(err)
	}
	xs, ok := it.(CrossSection)
	if !ok {
		t.Fatalf("decoded %T, want CrossSection", it)
	}
	if xs.Name != "x" {
		t.Errorf("Name = %q, want %q", xs.Name, "x")
	}
	it, err = d.Next()
	if err != nil {
		t.Fatal(err)
	}
	if st, ok := it.(Style); !ok || st.Type != 0x02 {
		t.Fatalf("trailing item = %#v, want Style 0x02", it)
	}
}

func TestUnknownBytesMakeProgress(t *testing.T) {
	warned := 0
	warn := func(string, ...interface{}) { warned++ }
	d := NewDecoder(stream.NewReader([]byte{0x14, 0x2a, 0x3f}), warn)

	for i := 0; i < 3; i++ {
		it, err := d.Next()
		if err != nil {
			t.Fatal(err)
		}
		if _, ok := it.(Unknown); !ok {
			t.Fatalf("item %d decoded as %T, want Unknown", i, it)
		}
	}
	if !d.AtEnd() {
		t.Error("decoder not at end after three unknown bytes")
	}
	if warned != 3 {
		t.Errorf("warn called %d times, want 3", warned)
	}
}

func TestTruncatedPayload(t *testing.T) {
	// MOVE with only two of twelve coordinate bytes present.
	d := NewDecoder(stream.NewReader([]byte{0x0f, 0x01, 0x02}), nil)
	if _, err := d.Next(); !errors.Is(err, stream.ErrUnexpectedEOF) {
		t.Fatalf("Next on truncated move = %v, want ErrUnexpectedEOF", err)
	}
}
