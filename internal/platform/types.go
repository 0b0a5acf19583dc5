package platform

import "fmt"

// Attribute names understood by every backend.
const (
	AttrRole          = "AXRole"
	AttrTitle         = "AXTitle"
	AttrDescription   = "AXDescription"
	AttrHelp          = "AXHelp" // secondary label
	AttrIdentifier    = "AXIdentifier"
	AttrValue         = "AXValue"
	AttrEnabled       = "AXEnabled"
	AttrFocused       = "AXFocused"
	AttrChildren      = "AXChildren"
	AttrWindows       = "AXWindows"
	AttrFocusedWindow = "AXFocusedWindow"
	AttrMainWindow    = "AXMainWindow"
)

// ActionPress is the primary activation action.
const ActionPress = "AXPress"

// Point is a geometry value: a screen position.
type Point struct {
	X, Y float64
}

// Size is a geometry value: a width and height.
type Size struct {
	Width, Height float64
}

// Rect is a geometry value: an origin and a size.
type Rect struct {
	X, Y, Width, Height float64
}

// Range is a character or item range.
type Range struct {
	Location, Length int
}

// Opaque is an attribute value the backend could not map to a Go type.
// Description is the host's textual rendering of it.
type Opaque struct {
	Description string
}

func (p Point) String() string { return fmt.Sprintf("{%g, %g}", p.X, p.Y) }
func (s Size) String() string  { return fmt.Sprintf("{%g, %g}", s.Width, s.Height) }
func (r Rect) String() string {
	return fmt.Sprintf("{{%g, %g}, {%g, %g}}", r.X, r.Y, r.Width, r.Height)
}
func (r Range) String() string  { return fmt.Sprintf("{%d, %d}", r.Location, r.Length) }
func (o Opaque) String() string { return o.Description }
