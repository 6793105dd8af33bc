package label

import (
	"encoding/binary"
	"errors"
	"testing"

	"github.com/speleogo/survex3d/internal/stream"
)

// seed fills a buffer by appending s through a single edit.
func seed(t *testing.T, b *Buffer, s string) {
	t.Helper()
	edit := append([]byte{0x00, 0x00, byte(len(s))}, s...)
	if _, err := b.ApplyEdit(stream.NewReader(edit)); err != nil {
		t.Fatalf("seeding buffer: %v", err)
	}
}

func TestPackedEdit(t *testing.T) {
	var b Buffer
	seed(t, &b, "abcdef")

	// delete 3, append "XY"
	r := stream.NewReader([]byte{(3 << 4) | 2, 'X', 'Y'})
	clamped, err := b.ApplyEdit(r)
	if err != nil {
		t.Fatal(err)
	}
	if clamped {
		t.Error("edit within bounds reported clamped")
	}
	if got := b.String(); got != "abcXY" {
		t.Errorf("buffer = %q, want %q", got, "abcXY")
	}
}

func TestPackedAndUnpackedAgree(t *testing.T) {
	var packed, unpacked Buffer
	seed(t, &packed, "abcdef")
	seed(t, &unpacked, "abcdef")

	if _, err := packed.ApplyEdit(stream.NewReader([]byte{(3 << 4) | 2, 'X', 'Y'})); err != nil {
		t.Fatal(err)
	}
	if _, err := unpacked.ApplyEdit(stream.NewReader([]byte{0x00, 3, 2, 'X', 'Y'})); err != nil {
		t.Fatal(err)
	}

	if packed.String() != unpacked.String() {
		t.Errorf("packed %q != unpacked %q", packed.String(), unpacked.String())
	}
}

func TestLongFormCounts(t *testing.T) {
	var b Buffer
	seed(t, &b, "cave.branch.1")

	// 0xff escape: 32-bit delete count of 1, one-byte append count.
	edit := []byte{0x00, 0xff}
	edit = binary.LittleEndian.AppendUint32(edit, 1)
	edit = append(edit, 1, '2')
	if _, err := b.ApplyEdit(stream.NewReader(edit)); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "cave.branch.2" {
		t.Errorf("buffer = %q, want %q", got, "cave.branch.2")
	}

	// 0xff escape on the append count as well.
	edit = []byte{0x00, 1, 0xff}
	edit = binary.LittleEndian.AppendUint32(edit, 2)
	edit = append(edit, '1', '0')
	if _, err := b.ApplyEdit(stream.NewReader(edit)); err != nil {
		t.Fatal(err)
	}
	if got := b.String(); got != "cave.branch.10" {
		t.Errorf("buffer = %q, want %q", got, "cave.branch.10")
	}
}

func TestDeleteClamped(t *testing.T) {
	var b Buffer
	seed(t, &b, "ab")

	// Delete 15 from a 2-byte buffer: clamps to empty, then appends.
	r := stream.NewReader([]byte{(15 << 4) | 1, 'x'})
	clamped, err := b.ApplyEdit(r)
	if err != nil {
		t.Fatal(err)
	}
	if !clamped {
		t.Error("over-long delete not reported as clamped")
	}
	if got := b.String(); got != "x" {
		t.Errorf("buffer = %q, want %q", got, "x")
	}
}

func TestTruncatedAppend(t *testing.T) {
	var b Buffer
	r := stream.NewReader([]byte{0x05, 'a', 'b'}) // append 5, only 2 present
	if _, err := b.ApplyEdit(r); !errors.Is(err, stream.ErrUnexpectedEOF) {
		t.Fatalf("ApplyEdit on truncated append = %v, want ErrUnexpectedEOF", err)
	}
}

func TestSharedPrefixSequence(t *testing.T) {
	// The encoding amortizes common prefixes across stations. Walk a
	// realistic sequence and check every intermediate value.
	var b Buffer
	steps := []struct {
		edit []byte
		want string
	}{
		{append([]byte{0x00, 0x00, 12}, "cave.entry.1"...), "cave.entry.1"},
		{[]byte{(1 << 4) | 1, '2'}, "cave.entry.2"},
		{append([]byte{0x00, 7, 8}, "branch.1"...), "cave.branch.1"},
		{[]byte{(1 << 4) | 2, '1', '0'}, "cave.branch.10"},
	}
	for i, step := range steps {
		if _, err := b.ApplyEdit(stream.NewReader(step.edit)); err != nil {
			t.Fatalf("step %d: %v", i, err)
		}
		if got := b.String(); got != step.want {
			t.Fatalf("step %d: buffer = %q, want %q", i, got, step.want)
		}
	}
}
