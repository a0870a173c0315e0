package interp

import "github.com/lil-lang/lil/internal/config"

// Hashmap is a fixed-bucket chained map used for both the command table and
// every environment's variable store, matching cli_lil.c's dual use of
// `struct hashmap`. It stores `any` rather than a concrete type since the
// command table holds *Function and the variable store holds *Variable.
type Hashmap struct {
	cells [config.HashBuckets][]hashEntry
}

type hashEntry struct {
	key string
	val any
}

// hash implements the djb2 hash cli_lil.c's hm_hash uses:
// hash = 5381; hash = hash*33 + c, for each byte of the key.
func hash(key string) uint32 {
	var h uint32 = 5381
	for i := 0; i < len(key); i++ {
		h = h*33 + uint32(key[i])
	}
	return h
}

func (m *Hashmap) bucket(key string) int {
	return int(hash(key) % config.HashBuckets)
}

// Put inserts or overwrites the value stored under key.
func (m *Hashmap) Put(key string, val any) {
	b := m.bucket(key)
	for i := range m.cells[b] {
		if m.cells[b][i].key == key {
			m.cells[b][i].val = val
			return
		}
	}
	m.cells[b] = append(m.cells[b], hashEntry{key: key, val: val})
}

// Get returns the value stored under key, and whether it was found. A
// present-but-nil value (as left behind by a command rename/delete, which
// overwrites the slot with nil rather than removing the entry) reports
// ok == true with a nil val, matching hm_get returning a NULL pointer.
func (m *Hashmap) Get(key string) (any, bool) {
	b := m.bucket(key)
	for i := range m.cells[b] {
		if m.cells[b][i].key == key {
			return m.cells[b][i].val, true
		}
	}
	return nil, false
}

// Has reports whether key has an entry at all, regardless of its value.
func (m *Hashmap) Has(key string) bool {
	_, ok := m.Get(key)
	return ok
}
