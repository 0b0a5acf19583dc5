// Package platformtest provides an in-memory accessibility backend for tests.
package platformtest

import (
	"errors"
	"fmt"

	"github.com/mj1618/axtree/internal/platform"
)

// Element is a fake native element. Attribute values that refer to other
// elements (AXFocusedWindow, AXWindows) should hold *Element values.
type Element struct {
	Attrs    map[string]any
	Children []*Element
	Actions  []string

	// ActionsErr, PerformErr and SetErr make the corresponding adapter call fail.
	ActionsErr error
	PerformErr error
	SetErr     error

	// ChildrenAbsent hides AXChildren entirely instead of reporting an empty list.
	ChildrenAbsent bool

	// Hash overrides the identity hash, letting tests force collisions.
	Hash uintptr
}

// NewElement returns an element with the given role and optional attributes
// given as name/value pairs.
func NewElement(role string, kv ...any) *Element {
	el := &Element{Attrs: map[string]any{}}
	if role != "" {
		el.Attrs[platform.AttrRole] = role
	}
	for i := 0; i+1 < len(kv); i += 2 {
		el.Attrs[kv[i].(string)] = kv[i+1]
	}
	return el
}

// Add appends children and returns el for chaining.
func (el *Element) Add(children ...*Element) *Element {
	el.Children = append(el.Children, children...)
	return el
}

// KeyEvent is one recorded synthetic key event.
type KeyEvent struct {
	Code uint16
	Down bool
}

// SetCall is one recorded attribute write.
type SetCall struct {
	Element *Element
	Name    string
	Value   any
}

// Backend implements platform.Accessibility and platform.Host over fake
// elements and records every mutating call.
type Backend struct {
	App     *Element
	AppName string
	PID     int

	Trusted bool
	NoApp   bool
	// KeyErr makes PostKeyEvent fail.
	KeyErr error

	Performed        []string
	Sets             []SetCall
	Keys             []KeyEvent
	PermissionChecks int
	ChildrenReads    int

	ids map[*Element]uintptr
}

// NewBackend returns a trusted backend whose frontmost application is app.
func NewBackend(name string, pid int, app *Element) *Backend {
	return &Backend{App: app, AppName: name, PID: pid, Trusted: true}
}

// Provider wraps b in a platform.Provider.
func (b *Backend) Provider() *platform.Provider {
	return &platform.Provider{Accessibility: b, Host: b}
}

func asElement(el platform.Element) (*Element, error) {
	e, ok := el.(*Element)
	if !ok || e == nil {
		return nil, fmt.Errorf("not a fake element: %T", el)
	}
	return e, nil
}

func (b *Backend) Attribute(el platform.Element, name string) (any, bool) {
	e, err := asElement(el)
	if err != nil {
		return nil, false
	}
	if name == platform.AttrChildren {
		b.ChildrenReads++
		if e.ChildrenAbsent {
			return nil, false
		}
		children := make([]platform.Element, len(e.Children))
		for i, c := range e.Children {
			children[i] = c
		}
		return children, true
	}
	v, ok := e.Attrs[name]
	if !ok {
		return nil, false
	}
	if list, isList := v.([]*Element); isList {
		out := make([]platform.Element, len(list))
		for i, c := range list {
			out[i] = c
		}
		return out, true
	}
	return v, true
}

func (b *Backend) SetAttribute(el platform.Element, name string, value any) error {
	e, err := asElement(el)
	if err != nil {
		return err
	}
	b.Sets = append(b.Sets, SetCall{Element: e, Name: name, Value: value})
	if e.SetErr != nil {
		return e.SetErr
	}
	e.Attrs[name] = value
	return nil
}

func (b *Backend) Actions(el platform.Element) ([]string, error) {
	e, err := asElement(el)
	if err != nil {
		return nil, err
	}
	if e.ActionsErr != nil {
		return nil, e.ActionsErr
	}
	return append([]string(nil), e.Actions...), nil
}

func (b *Backend) PerformAction(el platform.Element, action string) error {
	e, err := asElement(el)
	if err != nil {
		return err
	}
	b.Performed = append(b.Performed, action)
	return e.PerformErr
}

func (b *Backend) Identity(el platform.Element) uintptr {
	e, err := asElement(el)
	if err != nil {
		return 0
	}
	if e.Hash != 0 {
		return e.Hash
	}
	if b.ids == nil {
		b.ids = make(map[*Element]uintptr)
	}
	id, ok := b.ids[e]
	if !ok {
		id = uintptr(len(b.ids) + 1)
		b.ids[e] = id
	}
	return id
}

func (b *Backend) Equal(x, y platform.Element) bool {
	ex, errX := asElement(x)
	ey, errY := asElement(y)
	return errX == nil && errY == nil && ex == ey
}

func (b *Backend) CheckPermission(prompt bool) bool {
	b.PermissionChecks++
	return b.Trusted
}

func (b *Backend) FrontmostApplication() (platform.App, error) {
	if b.NoApp || b.App == nil {
		return platform.App{}, platform.ErrNoFrontmostApp
	}
	return platform.App{Name: b.AppName, PID: b.PID}, nil
}

func (b *Backend) ApplicationElement(pid int) (platform.Element, error) {
	if b.App == nil || pid != b.PID {
		return nil, errors.New("no such process")
	}
	return b.App, nil
}

func (b *Backend) PostKeyEvent(code uint16, down bool) error {
	if b.KeyErr != nil {
		return b.KeyErr
	}
	b.Keys = append(b.Keys, KeyEvent{Code: code, Down: down})
	return nil
}
