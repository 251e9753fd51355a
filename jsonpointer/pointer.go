// Package jsonpointer implements a depth-bounded RFC-6901 JSON Pointer
// engine for addressing fields inside a node/edge's props document.
//
// Grounded on the pointer-token conventions used by
// github.com/kaptinlin/jsonpointer (token escaping, "#"-free raw form) and
// generalized with TypeGraph's own depth cap and "-" prohibition, since the
// spec targets addressing typed document fields rather than RFC-6902 patch
// targets.
package jsonpointer

import (
	"strconv"
	"strings"

	"github.com/nicia-ai/typegraph/valuetype"
)

// MaxDepth is the maximum number of segments a pointer may carry (§3).
const MaxDepth = 5

// Pointer is a parsed, depth-bounded JSON Pointer. The zero value is the
// root pointer ("").
type Pointer struct {
	segments []string
}

// Root is the empty pointer, the identity element of Join.
var Root = Pointer{}

// Segments returns a defensive copy of the pointer's path segments.
func (p Pointer) Segments() []string {
	if len(p.segments) == 0 {
		return nil
	}
	out := make([]string, len(p.segments))
	copy(out, p.segments)
	return out
}

// Depth returns the number of segments.
func (p Pointer) Depth() int { return len(p.segments) }

// IsRoot reports whether p addresses the document root.
func (p Pointer) IsRoot() bool { return len(p.segments) == 0 }

// String renders the pointer in its encoded, slash-prefixed RFC-6901 form.
// The root pointer renders as "".
func (p Pointer) String() string {
	if len(p.segments) == 0 {
		return ""
	}
	var b strings.Builder
	for _, s := range p.segments {
		b.WriteByte('/')
		b.WriteString(encodeSegment(s))
	}
	return b.String()
}

// Normalized returns the canonical string form used for equality
// comparisons (key/covering-field overlap, index naming). It is identical
// to String but named distinctly so call sites document intent (§9 open
// question: compare on the normalized form, not raw user input).
func (p Pointer) Normalized() string { return p.String() }

// Equal reports whether two pointers address the same location.
func (p Pointer) Equal(other Pointer) bool {
	return p.Normalized() == other.Normalized()
}

func encodeSegment(s string) string {
	if !strings.ContainsAny(s, "~/") {
		return s
	}
	s = strings.ReplaceAll(s, "~", "~0")
	s = strings.ReplaceAll(s, "/", "~1")
	return s
}

func decodeSegment(s string) string {
	if !strings.Contains(s, "~") {
		return s
	}
	s = strings.ReplaceAll(s, "~1", "/")
	s = strings.ReplaceAll(s, "~0", "~")
	return s
}

// Build constructs a Pointer from raw (unescaped) segments, validating each
// one against §3's invariants: no "-" segment, no negative array indices,
// and a total depth of at most MaxDepth.
func Build(segments []string) (Pointer, error) {
	if len(segments) > MaxDepth {
		return Pointer{}, &DepthExceededError{Depth: len(segments), Max: MaxDepth}
	}
	out := make([]string, len(segments))
	for i, s := range segments {
		if s == "-" {
			return Pointer{}, &InvalidSegmentError{Segment: s, Reason: `segment "-" is forbidden`}
		}
		if isArrayIndex(s) {
			n, _ := strconv.Atoi(s)
			if n < 0 {
				return Pointer{}, &InvalidSegmentError{Segment: s, Reason: "array index must be non-negative"}
			}
		}
		out[i] = s
	}
	return Pointer{segments: out}, nil
}

// isArrayIndex reports whether s looks like a signed decimal integer
// (used only to catch negative indices explicitly; "0", "12" etc. are
// otherwise treated as plain segments, since a literal object key that
// happens to be numeric is indistinguishable from an array index without
// schema context).
func isArrayIndex(s string) bool {
	if s == "" {
		return false
	}
	i := 0
	if s[0] == '-' || s[0] == '+' {
		i = 1
	}
	if i == len(s) {
		return false
	}
	for ; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// Parse decodes an encoded pointer string ("/a/b~1c") into its Pointer
// representation, enforcing the same invariants as Build.
func Parse(s string) (Pointer, error) {
	if s == "" {
		return Root, nil
	}
	if s[0] != '/' {
		return Pointer{}, &InvalidSegmentError{Segment: s, Reason: "pointer must start with '/' or be empty"}
	}
	raw := strings.Split(s[1:], "/")
	segments := make([]string, len(raw))
	for i, r := range raw {
		segments[i] = decodeSegment(r)
	}
	return Build(segments)
}

// Normalize accepts either an encoded pointer string or a raw segment list
// (as produced by user-facing index/field APIs) and returns the parsed
// Pointer.
func Normalize(input any) (Pointer, error) {
	switch v := input.(type) {
	case Pointer:
		return v, nil
	case string:
		return Parse(v)
	case []string:
		return Build(v)
	default:
		return Pointer{}, &InvalidSegmentError{Reason: "normalize: unsupported input type"}
	}
}

// Join concatenates a relative pointer onto a base pointer. The empty
// pointer is the identity element on both sides.
func Join(base, relative Pointer) (Pointer, error) {
	if relative.IsRoot() {
		return base, nil
	}
	if base.IsRoot() {
		return relative, nil
	}
	combined := make([]string, 0, len(base.segments)+len(relative.segments))
	combined = append(combined, base.segments...)
	combined = append(combined, relative.segments...)
	return Build(combined)
}

// TypedNode is the minimal shape the schema introspector needs from a
// resolved schema node to continue descending a pointer: its own
// ValueType, and — when it classifies as Array or Object — the child
// schema reachable by a further segment.
type TypedNode interface {
	ValueType() valuetype.ValueType
	// Child returns the nested TypedNode addressed by a single further
	// pointer segment, or (nil, false) if the segment does not resolve
	// (e.g. an unknown object property, or a non-numeric segment against
	// an array).
	Child(segment string) (TypedNode, bool)
}

// Resolve descends ptr against root, returning the innermost TypedNode, or
// (nil, false) if any segment fails to resolve. The root pointer resolves
// to root itself.
func Resolve(root TypedNode, ptr Pointer) (TypedNode, bool) {
	cur := root
	for _, seg := range ptr.segments {
		next, ok := cur.Child(seg)
		if !ok {
			return nil, false
		}
		cur = next
	}
	return cur, true
}
