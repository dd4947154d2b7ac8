package codec

import (
	"strconv"
	"strings"
)

// Frame is one step in a coding path: either a dictionary key or a list
// index.
type Frame struct {
	key     string
	index   int
	isIndex bool
}

// KeyFrame creates a dictionary-key frame.
func KeyFrame(key string) Frame {
	return Frame{key: key}
}

// IndexFrame creates a list-index frame.
func IndexFrame(i int) Frame {
	return Frame{index: i, isIndex: true}
}

// IsIndex reports whether the frame is a list index.
func (f Frame) IsIndex() bool {
	return f.isIndex
}

// Key returns the dictionary key, or "" for index frames.
func (f Frame) Key() string {
	if f.isIndex {
		return ""
	}
	return f.key
}

// Index returns the list index, or -1 for key frames.
func (f Frame) Index() int {
	if !f.isIndex {
		return -1
	}
	return f.index
}

// String renders the frame for diagnostics.
func (f Frame) String() string {
	if f.isIndex {
		return strconv.Itoa(f.index)
	}
	return f.key
}

// Path is the ordered route from the root value to the value currently being
// decoded. Paths are never mutated in place: every descent derives a fresh,
// extended copy, so sibling decode attempts cannot alias each other's
// diagnostics.
type Path []Frame

// WithKey returns a new path extended by a dictionary key.
func (p Path) WithKey(key string) Path {
	return p.extend(KeyFrame(key))
}

// WithIndex returns a new path extended by a list index.
func (p Path) WithIndex(i int) Path {
	return p.extend(IndexFrame(i))
}

func (p Path) extend(f Frame) Path {
	next := make(Path, len(p), len(p)+1)
	copy(next, p)
	return append(next, f)
}

// Strings renders each frame, suitable for the errors package Path field.
func (p Path) Strings() []string {
	if len(p) == 0 {
		return nil
	}
	out := make([]string, len(p))
	for i, f := range p {
		out[i] = f.String()
	}
	return out
}

// String renders the path as a dot-joined route for diagnostics.
func (p Path) String() string {
	return strings.Join(p.Strings(), ".")
}
