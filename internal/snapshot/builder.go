package snapshot

import (
	"log/slog"

	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/platform"
)

// DefaultMaxDepth bounds recursion when the caller does not choose a limit.
const DefaultMaxDepth = 256

// nameAttributes are the label-like attributes tried in order for Node.Name.
var nameAttributes = []string{
	platform.AttrTitle,
	platform.AttrDescription,
	platform.AttrHelp,
	platform.AttrIdentifier,
}

// BuildOptions bounds a traversal.
type BuildOptions struct {
	// MaxDepth is the deepest level expanded below the root. 0 is unlimited.
	MaxDepth int
	Logger   *slog.Logger
}

// Build serializes the tree rooted at root. The root gets ref "n0".
func Build(ax platform.Accessibility, root platform.Element, opts BuildOptions) model.Node {
	return BuildNode(ax, root, model.RootPath(), opts)
}

// BuildNode serializes el and its descendants depth-first, giving el the ref
// of path and each child the ref of path extended by its index.
//
// Attribute reads that fail are treated as absent. A node at MaxDepth, or
// whose child repeats an element already on the ancestor chain, is emitted
// with no children and Truncated set. The children of the other nodes are
// never cut short.
func BuildNode(ax platform.Accessibility, el platform.Element, path model.Path, opts BuildOptions) model.Node {
	w := &walker{
		ax:        ax,
		opts:      opts,
		ancestors: make(map[uintptr][]platform.Element),
		logger:    opts.Logger,
	}
	if w.logger == nil {
		w.logger = slog.New(slog.DiscardHandler)
	}
	return w.visit(el, path)
}

type walker struct {
	ax        platform.Accessibility
	opts      BuildOptions
	ancestors map[uintptr][]platform.Element
	logger    *slog.Logger
}

func (w *walker) visit(el platform.Element, path model.Path) model.Node {
	n := w.attributes(el, path)

	children := childrenOf(w.ax, el)
	if len(children) == 0 {
		return n
	}

	if w.opts.MaxDepth > 0 && len(path)-1 >= w.opts.MaxDepth {
		w.logger.Debug("depth limit reached", "ref", n.Ref, "max_depth", w.opts.MaxDepth, "children", len(children))
		n.Truncated = true
		return n
	}

	id := w.ax.Identity(el)
	if id != 0 {
		w.ancestors[id] = append(w.ancestors[id], el)
		defer w.pop(id)
	}

	n.Children = make([]model.Node, 0, len(children))
	for i, child := range children {
		childPath := path.Child(i)
		if w.onAncestorChain(child) {
			w.logger.Debug("cycle detected", "ref", childPath.Ref())
			c := w.attributes(child, childPath)
			c.Truncated = true
			n.Children = append(n.Children, c)
			continue
		}
		n.Children = append(n.Children, w.visit(child, childPath))
	}
	return n
}

// onAncestorChain reports whether el is the same native element as one of
// the nodes currently being expanded. Identity only narrows the candidates.
func (w *walker) onAncestorChain(el platform.Element) bool {
	id := w.ax.Identity(el)
	if id == 0 {
		return false
	}
	for _, a := range w.ancestors[id] {
		if w.ax.Equal(a, el) {
			return true
		}
	}
	return false
}

func (w *walker) pop(id uintptr) {
	bucket := w.ancestors[id]
	if len(bucket) <= 1 {
		delete(w.ancestors, id)
		return
	}
	w.ancestors[id] = bucket[:len(bucket)-1]
}

// attributes reads everything but the children of el.
func (w *walker) attributes(el platform.Element, path model.Path) model.Node {
	n := model.Node{
		Ref:      path.Ref(),
		Role:     stringAttr(w.ax, el, platform.AttrRole),
		Name:     nameOf(w.ax, el),
		Actions:  []string{},
		Children: []model.Node{},
	}
	if raw, ok := w.ax.Attribute(el, platform.AttrValue); ok && raw != nil {
		v := model.ValueOf(raw)
		n.Value = &v
	}
	if raw, ok := w.ax.Attribute(el, platform.AttrEnabled); ok {
		if b, isBool := raw.(bool); isBool {
			n.Enabled = &b
		}
	}
	if actions, err := w.ax.Actions(el); err == nil && actions != nil {
		n.Actions = actions
	}
	return n
}

func nameOf(ax platform.Accessibility, el platform.Element) *string {
	for _, attr := range nameAttributes {
		if s := stringAttr(ax, el, attr); s != nil && *s != "" {
			return s
		}
	}
	return nil
}

func childrenOf(ax platform.Accessibility, el platform.Element) []platform.Element {
	v, ok := ax.Attribute(el, platform.AttrChildren)
	if !ok {
		return nil
	}
	return elementList(v)
}
