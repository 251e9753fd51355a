package plancache

import (
	"encoding/json"
	"hash/fnv"
	"strconv"
)

// keyEnvelope is the canonical JSON shape hashed to derive a cache key.
// Keying on the dialect name alongside the raw query text matters: the
// same query string compiles to a different plan under Postgres than
// under SQLite (different Capabilities, different SQL fragments).
type keyEnvelope struct {
	Dialect string `json:"dialect"`
	Query   string `json:"query"`
}

// Key derives a deterministic cache key from a dialect name and the raw
// query text that will be compiled against it. Two calls with the same
// inputs always produce the same key; this is the only property callers
// may rely on (the key is not meant to be read back apart from hashing).
func Key(dialectName, rawQuery string) string {
	canonical, _ := json.Marshal(keyEnvelope{Dialect: dialectName, Query: rawQuery})
	h := fnv.New32a()
	_, _ = h.Write(canonical)
	return "plan:" + strconv.FormatUint(uint64(h.Sum32()), 36)
}
