package model

import (
	"fmt"
	"strconv"
	"strings"
)

// refPrefix starts every ref.
const refPrefix = "n"

// Path is the root-to-node index path of a node within one traversal.
// Index 0 is always first and stands for the root; each following entry is a
// child index at that depth.
type Path []int

// RootPath is the path of the traversal root.
func RootPath() Path { return Path{0} }

// Child returns a new path extending p with child index i. p is not modified,
// so siblings never share backing storage.
func (p Path) Child(i int) Path {
	out := make(Path, len(p)+1)
	copy(out, p)
	out[len(p)] = i
	return out
}

// Ref encodes p as a ref string.
func (p Path) Ref() string { return EncodeRef(p) }

// EncodeRef encodes a path as "n" followed by the dot-joined indices, e.g.
// [0 2 1] becomes "n0.2.1".
func EncodeRef(p Path) string {
	var b strings.Builder
	b.WriteString(refPrefix)
	for i, idx := range p {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(idx))
	}
	return b.String()
}

// DecodeRef parses a ref produced by EncodeRef. A ref is valid iff it starts
// with "n", the remainder is a non-empty list of dot-separated unsigned
// decimal integers without leading zeros, and the first of them is 0.
func DecodeRef(ref string) (Path, error) {
	if !strings.HasPrefix(ref, refPrefix) {
		return nil, fmt.Errorf("invalid ref %q: must start with %q", ref, refPrefix)
	}
	body := ref[len(refPrefix):]
	if body == "" {
		return nil, fmt.Errorf("invalid ref %q: empty path", ref)
	}
	tokens := strings.Split(body, ".")
	path := make(Path, 0, len(tokens))
	for _, tok := range tokens {
		if !isDigits(tok) {
			return nil, fmt.Errorf("invalid ref %q: bad index %q", ref, tok)
		}
		if len(tok) > 1 && tok[0] == '0' {
			return nil, fmt.Errorf("invalid ref %q: index %q has a leading zero", ref, tok)
		}
		idx, err := strconv.Atoi(tok)
		if err != nil {
			return nil, fmt.Errorf("invalid ref %q: %w", ref, err)
		}
		path = append(path, idx)
	}
	if path[0] != 0 {
		return nil, fmt.Errorf("invalid ref %q: root index must be 0", ref)
	}
	return path, nil
}

// isDigits reports whether s is a non-empty run of ASCII digits. Signs are
// rejected even though strconv would accept them.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}
