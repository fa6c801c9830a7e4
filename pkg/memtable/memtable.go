package memtable

import (
	"github.com/coocood/freecache"
)

// MemTable is a small in-process byte cache in front of hot read paths
// (public guide lookups).
type MemTable struct {
	cache *freecache.Cache
}

// New creates freecache with size
func New(size int) *MemTable {
	return &MemTable{
		cache: freecache.NewCache(size),
	}
}

// Get ...
func (m *MemTable) Get(key string) ([]byte, bool) {
	data, err := m.cache.Get([]byte(key))
	if err != nil {
		return nil, false
	}
	return data, true
}

// Set stores data with a TTL in seconds; zero means no expiry.
func (m *MemTable) Set(key string, data []byte, ttlSeconds int) {
	_ = m.cache.Set([]byte(key), data, ttlSeconds)
}

// Delete ...
func (m *MemTable) Delete(key string) {
	m.cache.Del([]byte(key))
}
