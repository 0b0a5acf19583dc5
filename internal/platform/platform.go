package platform

import "errors"

// Element is an opaque handle to a native accessibility element. Only the
// backend that produced it knows how to interpret it.
type Element any

// Accessibility reads and mutates attributes and actions of native elements.
// Every call may fail: the element can be deallocated, its process can exit,
// or the permission grant can be revoked mid-run.
type Accessibility interface {
	// Attribute returns the named attribute of el. ok is false when the
	// attribute is absent, unsupported, or could not be read.
	Attribute(el Element, name string) (value any, ok bool)

	// SetAttribute writes the named attribute of el.
	SetAttribute(el Element, name string, value any) error

	// Actions lists the action identifiers el currently supports, in the
	// order reported by the host.
	Actions(el Element) ([]string, error)

	// PerformAction invokes the named action on el.
	PerformAction(el Element, action string) error

	// Identity returns a hash that is equal for two handles referring to the
	// same native element. Distinct elements may collide; confirm with Equal.
	// 0 means unknown.
	Identity(el Element) uintptr

	// Equal reports whether a and b refer to the same native element.
	Equal(a, b Element) bool
}

// Host exposes process-wide facilities of the desktop session.
type Host interface {
	// CheckPermission reports whether this process may drive the UI. When
	// prompt is true the host may show its one-time permission dialog.
	CheckPermission(prompt bool) bool

	// FrontmostApplication returns the application owning the active menu
	// bar, or ErrNoFrontmostApp.
	FrontmostApplication() (App, error)

	// ApplicationElement returns the root accessibility element of the
	// process with the given id.
	ApplicationElement(pid int) (Element, error)

	// PostKeyEvent posts one synthetic key-down or key-up event with the given
	// hardware key code to the system event stream.
	PostKeyEvent(code uint16, down bool) error
}

// App describes a running application.
type App struct {
	Name string
	PID  int
}

// ErrNoFrontmostApp is returned when no application is frontmost.
var ErrNoFrontmostApp = errors.New("no frontmost application")
