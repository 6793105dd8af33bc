// Package item decodes the tagged records that follow the header of a
// Survex 3D image file. Each record starts with a single type byte;
// ranges of the byte space select the record kind and imply how many
// payload bytes follow.
package item

// Point3 is a position in meters. Raw file coordinates are signed
// 32-bit centimeters and are converted at decode time.
type Point3 struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Item is one decoded record. The concrete types below are the only
// implementations.
type Item interface {
	item()
}

// Move repositions the current point without drawing a leg.
type Move struct {
	Point Point3
}

// Line draws a leg from the current point to Point. The low six bits
// of Type carry per-leg flags; bit 0x20 marks a line that reused the
// previous label instead of carrying an edit.
type Line struct {
	Type  uint8
	Point Point3
}

// Label names the station at Point. The low seven bits of Type carry
// station flags.
type Label struct {
	Type  uint8
	Point Point3
	Name  string
}

// Style is a presentation marker (type bytes 0x00-0x04).
type Style struct {
	Type uint8
}

// Date carries a survey date. Only type byte 0x11 has a payload: the
// number of days since the format epoch.
type Date struct {
	Type uint8
	Days uint16
}

// ErrorInfo carries traverse misclosure statistics. The graph builder
// ignores it; it is decoded only to keep the cursor in sync.
type ErrorInfo struct {
	Legs   int32
	Length int32
	E      int32
	H      int32
	V      int32
}

// CrossSection carries passage-dimension data at a station. The graph
// builder ignores it.
type CrossSection struct {
	Type uint8
	Name string
}

// Unknown is any type byte this decoder does not recognize. It has no
// payload so the item loop always makes forward progress.
type Unknown struct {
	Type uint8
}

func (Move) item()         {}
func (Line) item()         {}
func (Label) item()        {}
func (Style) item()        {}
func (Date) item()         {}
func (ErrorInfo) item()    {}
func (CrossSection) item() {}
func (Unknown) item()      {}
