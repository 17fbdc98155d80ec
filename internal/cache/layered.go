package cache

import "time"

// Layered checks memory before disk and promotes disk hits into memory.
type Layered struct {
	memory Cache
	disk   Cache
}

// NewLayered builds the standard memory-over-disk page cache.
func NewLayered(memoryTTL time.Duration, dir string, diskTTL time.Duration) *Layered {
	return &Layered{
		memory: NewMemory(memoryTTL),
		disk:   NewDisk(dir, diskTTL),
	}
}

func (l *Layered) Get(key string) ([]byte, bool) {
	if v, found := l.memory.Get(key); found {
		return v, true
	}
	if v, found := l.disk.Get(key); found {
		_ = l.memory.Set(key, v, 0)
		return v, true
	}
	return nil, false
}

// Set stores the value in both layers. ttl governs the disk layer only;
// the memory layer keeps its own, shorter default TTL.
func (l *Layered) Set(key string, value []byte, ttl time.Duration) error {
	if err := l.memory.Set(key, value, 0); err != nil {
		return err
	}
	return l.disk.Set(key, value, ttl)
}

func (l *Layered) Delete(key string) error {
	_ = l.memory.Delete(key)
	return l.disk.Delete(key)
}

func (l *Layered) Clear() error {
	_ = l.memory.Clear()
	return l.disk.Clear()
}
