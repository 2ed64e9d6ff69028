package guikit

import (
	"hash/fnv"
	"strconv"
)

// KeySource hands out stable keys for windows, rows and tree elements.
//
// Keys replace identity-derived ids: create the component once, take a key
// from the source at construction time, and the key stays the same for every
// frame the component is drawn.
type KeySource struct {
	prefix string
	next   uint64
}

// NewKeySource creates a key source whose keys start with prefix.
func NewKeySource(prefix string) *KeySource {
	return &KeySource{prefix: prefix}
}

// Next returns a new key: prefix-1, prefix-2, ...
func (s *KeySource) Next() string {
	s.next++
	return s.prefix + "-" + strconv.FormatUint(s.next, 10)
}

// HashKey derives a compact key from parts, e.g. a file path for a tree
// element whose display name is not unique. Equal parts give equal keys.
func HashKey(parts ...string) string {
	h := fnv.New64a()
	for _, p := range parts {
		h.Write([]byte(p))
		h.Write([]byte{0})
	}
	return strconv.FormatUint(h.Sum64(), 36)
}
