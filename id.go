package gridview

import "hash/fnv"

// ID identifies a table for state persistence.
// IDs are stable across frames and sessions for the same label.
type ID uint64

// HashID derives an ID from a label using FNV-1a.
func HashID(label string) ID {
	h := fnv.New64a()
	h.Write([]byte(label))
	return ID(h.Sum64())
}

// With derives a child ID, for tables nested under a host-defined scope.
func (id ID) With(label string) ID {
	h := fnv.New64a()
	var buf [8]byte
	for i := range buf {
		buf[i] = byte(uint64(id) >> (8 * i))
	}
	h.Write(buf[:])
	h.Write([]byte(label))
	return ID(h.Sum64())
}
