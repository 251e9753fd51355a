// Package naming implements deterministic index naming (§4.11): the fixed
// vector-index name template, and the FNV-1a-hashed default name for
// props indexes.
package naming

import (
	"encoding/json"
	"hash/fnv"
	"strconv"
	"strings"
)

const maxIdentifierLength = 63

// sanitizeComponent lowercases s, maps every character outside
// [a-z0-9_] to '_', strips leading/trailing '_', and truncates to max
// characters.
func sanitizeComponent(s string, max int) string {
	var b strings.Builder
	for _, r := range strings.ToLower(s) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '_':
			b.WriteRune(r)
		default:
			b.WriteRune('_')
		}
	}
	out := strings.Trim(b.String(), "_")
	if len(out) > max {
		out = out[:max]
	}
	return out
}

// VectorIndexName produces `idx_emb_<graphId>_<nodeKind>_<fieldPath>_<metric>`,
// each dynamic component sanitized and truncated to 20 characters (§4.11).
// metric defaults to "cosine" when empty.
func VectorIndexName(graphID, nodeKind, fieldPath, metric string) string {
	if metric == "" {
		metric = "cosine"
	}
	parts := []string{
		"idx_emb",
		sanitizeComponent(graphID, 20),
		sanitizeComponent(nodeKind, 20),
		sanitizeComponent(fieldPath, 20),
		sanitizeComponent(metric, 20),
	}
	return strings.Join(parts, "_")
}

// IndexSpec is the canonical JSON shape hashed to derive a default props
// index name (§4.11).
type IndexSpec struct {
	Kind       string   `json:"kind"`
	Unique     bool     `json:"unique"`
	Scope      string   `json:"scope"`
	Direction  string   `json:"direction,omitempty"`
	Fields     []string `json:"fields"`
	Covering   []string `json:"covering"`
}

// DefaultIndexName derives a deterministic name from spec: a
// sanitized, human-legible prefix followed by a base-36 FNV-1a hash of
// spec's canonical JSON form. If the combined identifier would exceed 63
// characters, the prefix is truncated to 54 characters and the hash
// re-appended, so the result always fits and the hash remains recoverable
// from the truncated form (§4.11).
func DefaultIndexName(spec IndexSpec) string {
	hash := hashSpec(spec)

	var b strings.Builder
	b.WriteString("idx_tg_node_")
	if spec.Direction != "" {
		b.Reset()
		b.WriteString("idx_tg_edge_")
	}
	b.WriteString(sanitizeComponent(spec.Kind, 32))
	for _, f := range spec.Fields {
		b.WriteString("_")
		b.WriteString(sanitizeComponent(f, 16))
	}
	for _, c := range spec.Covering {
		b.WriteString("_cov_")
		b.WriteString(sanitizeComponent(c, 16))
	}
	if spec.Unique {
		b.WriteString("_uniq")
	}
	b.WriteString("_")
	b.WriteString(hash)

	name := b.String()
	if len(name) <= maxIdentifierLength {
		return name
	}
	prefixBudget := 54
	prefix := name[:len(name)-len(hash)-1]
	if len(prefix) > prefixBudget {
		prefix = prefix[:prefixBudget]
	}
	return prefix + "_" + hash
}

func hashSpec(spec IndexSpec) string {
	canonical, _ := json.Marshal(spec)
	h := fnv.New32a()
	_, _ = h.Write(canonical)
	return strconv.FormatUint(uint64(h.Sum32()), 36)
}

// DefaultAlias derives a short AST alias for kind, lowercasing its first
// rune and appending a numeric suffix for the n-th occurrence of that
// kind in a query (n=0 yields the bare letter, matching the teacher's
// single-letter query-builder receiver convention; n>0 disambiguates a
// second traversal into the same kind, e.g. Person -> "p", then "p2").
func DefaultAlias(kind string, n int) string {
	letter := "q"
	for _, r := range strings.ToLower(kind) {
		letter = string(r)
		break
	}
	if n <= 0 {
		return letter
	}
	return letter + strconv.Itoa(n+1)
}
