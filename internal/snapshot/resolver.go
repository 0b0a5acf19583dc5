package snapshot

import (
	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/platform"
)

// Resolve walks from root along the index path encoded in ref and returns the
// element found there. The walk is purely positional: if the UI changed since
// the ref was produced, the result may be a different element than the one
// originally described.
//
// Every failure, including a malformed ref, is a NotFound error.
func Resolve(ax platform.Accessibility, ref string, root platform.Element) (platform.Element, error) {
	path, err := model.DecodeRef(ref)
	if err != nil {
		return nil, model.NotFound("%w", err)
	}

	el := root
	for depth, idx := range path[1:] {
		children := childrenOf(ax, el)
		if len(children) == 0 {
			return nil, model.NotFound("element not found: %s (%s has no children)", ref, path[:depth+1].Ref())
		}
		if idx >= len(children) {
			return nil, model.NotFound("element not found: %s (%s has %d children)", ref, path[:depth+1].Ref(), len(children))
		}
		el = children[idx]
	}
	return el, nil
}
