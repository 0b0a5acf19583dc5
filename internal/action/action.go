// Package action performs click, focus, set-value and key-press operations
// against the frontmost application.
package action

import (
	"log/slog"
	"slices"

	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/platform"
	"github.com/mj1618/axtree/internal/snapshot"
)

// Command names reported in action results.
const (
	CmdClick    = "click"
	CmdFocus    = "focus"
	CmdSetValue = "set-value"
	CmdPress    = "press"
)

// Dispatcher runs single UI actions. Every ref-based action acquires a fresh
// snapshot context and resolves the ref against it; nothing is cached
// between calls.
type Dispatcher struct {
	provider *platform.Provider
	acquire  snapshot.AcquireOptions
	logger   *slog.Logger
}

// NewDispatcher returns a Dispatcher over the given provider. A nil logger
// discards output.
func NewDispatcher(p *platform.Provider, acquire snapshot.AcquireOptions, logger *slog.Logger) *Dispatcher {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Dispatcher{provider: p, acquire: acquire, logger: logger}
}

// Click invokes the primary activation action of the element at ref.
func (d *Dispatcher) Click(ref string) (*model.ActionResult, error) {
	el, err := d.resolve(CmdClick, ref)
	if err != nil {
		return nil, err
	}
	ax := d.provider.Accessibility

	actions, err := ax.Actions(el)
	if err != nil {
		return nil, d.fail(CmdClick, ref, model.NotActionable("cannot list actions of %s: %w", ref, err))
	}
	if !slices.Contains(actions, platform.ActionPress) {
		return nil, d.fail(CmdClick, ref, model.NotActionable("element %s does not support %s (actions: %v)", ref, platform.ActionPress, actions))
	}
	if err := ax.PerformAction(el, platform.ActionPress); err != nil {
		return nil, d.fail(CmdClick, ref, model.ExecutionError("%s on %s failed: %w", platform.ActionPress, ref, err))
	}

	d.logger.Debug("clicked", "ref", ref)
	return &model.ActionResult{Cmd: CmdClick, Ref: ref}, nil
}

// Focus sets the focused attribute of the element at ref.
func (d *Dispatcher) Focus(ref string) (*model.ActionResult, error) {
	el, err := d.resolve(CmdFocus, ref)
	if err != nil {
		return nil, err
	}
	if err := d.provider.Accessibility.SetAttribute(el, platform.AttrFocused, true); err != nil {
		return nil, d.fail(CmdFocus, ref, model.NotActionable("cannot focus %s: %w", ref, err))
	}

	d.logger.Debug("focused", "ref", ref)
	return &model.ActionResult{Cmd: CmdFocus, Ref: ref}, nil
}

// SetValue writes text to the value attribute of the element at ref.
func (d *Dispatcher) SetValue(ref, text string) (*model.ActionResult, error) {
	el, err := d.resolve(CmdSetValue, ref)
	if err != nil {
		return nil, err
	}
	if err := d.provider.Accessibility.SetAttribute(el, platform.AttrValue, text); err != nil {
		return nil, d.fail(CmdSetValue, ref, model.NotActionable("cannot set value of %s: %w", ref, err))
	}

	d.logger.Debug("value set", "ref", ref, "length", len(text))
	return &model.ActionResult{Cmd: CmdSetValue, Ref: ref, Value: &text}, nil
}

// Press posts a key-down/key-up pair for key to whatever holds system focus.
func (d *Dispatcher) Press(key string) (*model.ActionResult, error) {
	host := d.provider.Host
	if !host.CheckPermission(d.acquire.Prompt) {
		return nil, d.failKey(key, model.ExecutionError("accessibility permission not granted; enable it in System Settings > Privacy & Security > Accessibility"))
	}

	code, ok := KeyCode(key)
	if !ok {
		return nil, d.failKey(key, model.NotActionable("unknown key %q", key))
	}

	if err := host.PostKeyEvent(code, true); err != nil {
		return nil, d.failKey(key, model.ExecutionError("key down for %q failed: %w", key, err))
	}
	if err := host.PostKeyEvent(code, false); err != nil {
		return nil, d.failKey(key, model.ExecutionError("key up for %q failed: %w", key, err))
	}

	d.logger.Debug("key pressed", "key", key, "code", code)
	return &model.ActionResult{Cmd: CmdPress, Key: key}, nil
}

func (d *Dispatcher) resolve(cmd, ref string) (platform.Element, error) {
	ctx, err := snapshot.Acquire(d.provider, d.acquire)
	if err != nil {
		return nil, d.fail(cmd, ref, err)
	}
	el, err := snapshot.Resolve(d.provider.Accessibility, ref, ctx.Root)
	if err != nil {
		return nil, d.fail(cmd, ref, err)
	}
	return el, nil
}

func (d *Dispatcher) fail(cmd, ref string, err error) error {
	d.logger.Warn("action failed", "cmd", cmd, "ref", ref, "code", model.CodeOf(err), "err", err)
	return err
}

func (d *Dispatcher) failKey(key string, err error) error {
	d.logger.Warn("action failed", "cmd", CmdPress, "key", key, "code", model.CodeOf(err), "err", err)
	return err
}
