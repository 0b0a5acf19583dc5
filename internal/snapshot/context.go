// Package snapshot turns the live accessibility graph of the frontmost
// application into a model.Node tree and resolves refs back to elements.
package snapshot

import (
	"errors"

	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/platform"
)

// AcquireOptions controls how a Context is obtained.
type AcquireOptions struct {
	// Prompt lets the host show its permission dialog when access is missing.
	Prompt bool
	// AppRoot roots the context at the application element even when the
	// application has a window.
	AppRoot bool
}

// Context is the per-invocation view of the frontmost application. It is
// built fresh for every operation and never shared between operations.
type Context struct {
	App    model.AppInfo
	Window model.WindowInfo
	Root   platform.Element
}

// Acquire checks automation permission, finds the frontmost application and
// picks its root element: the focused window, else the first window, else the
// application element itself.
func Acquire(p *platform.Provider, opts AcquireOptions) (*Context, error) {
	if !p.Host.CheckPermission(opts.Prompt) {
		return nil, model.ExecutionError("accessibility permission not granted; enable it in System Settings > Privacy & Security > Accessibility")
	}

	app, err := p.Host.FrontmostApplication()
	if err != nil {
		if errors.Is(err, platform.ErrNoFrontmostApp) {
			return nil, model.ExecutionError("no frontmost application: %w", err)
		}
		return nil, model.ExecutionError("failed to get frontmost application: %w", err)
	}

	appEl, err := p.Host.ApplicationElement(app.PID)
	if err != nil {
		return nil, model.ExecutionError("failed to open application %q (pid %d): %w", app.Name, app.PID, err)
	}

	root := appEl
	if !opts.AppRoot {
		if win := windowOf(p.Accessibility, appEl); win != nil {
			root = win
		}
	}

	return &Context{
		App: model.AppInfo{Name: app.Name, PID: app.PID},
		Window: model.WindowInfo{
			Title: stringAttr(p.Accessibility, root, platform.AttrTitle),
			Role:  stringAttr(p.Accessibility, root, platform.AttrRole),
		},
		Root: root,
	}, nil
}

func windowOf(ax platform.Accessibility, app platform.Element) platform.Element {
	if v, ok := ax.Attribute(app, platform.AttrFocusedWindow); ok && v != nil {
		return v
	}
	if v, ok := ax.Attribute(app, platform.AttrWindows); ok {
		if wins := elementList(v); len(wins) > 0 {
			return wins[0]
		}
	}
	return nil
}

// elementList normalizes a list-valued attribute into element handles.
func elementList(v any) []platform.Element {
	switch list := v.(type) {
	case []platform.Element:
		return list
	case []any:
		out := make([]platform.Element, 0, len(list))
		for _, item := range list {
			if item != nil {
				out = append(out, item)
			}
		}
		return out
	}
	return nil
}

func stringAttr(ax platform.Accessibility, el platform.Element, name string) *string {
	v, ok := ax.Attribute(el, name)
	if !ok {
		return nil
	}
	s, isString := v.(string)
	if !isString {
		return nil
	}
	return &s
}

// Take acquires a fresh context and serializes its root.
func Take(p *platform.Provider, acquire AcquireOptions, build BuildOptions) (*model.Snapshot, error) {
	ctx, err := Acquire(p, acquire)
	if err != nil {
		return nil, err
	}
	return &model.Snapshot{
		App:    ctx.App,
		Window: ctx.Window,
		Tree:   Build(p.Accessibility, ctx.Root, build),
	}, nil
}
