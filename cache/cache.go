// Package cache memoizes shox payloads for repeated strings.
//
// Payloads are deterministic, so a cached payload is exactly what the encoder
// would produce again. Entries are keyed by the xxHash64 of the text and
// confirmed by comparing the stored text, so a key collision only costs a
// recompression.
package cache

import (
	"bytes"
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"

	"github.com/arloliu/shox/codec"
	"github.com/arloliu/shox/errs"
	"github.com/arloliu/shox/internal/hash"
)

type entry struct {
	text    string
	payload []byte
}

// Cache is a fixed-size LRU of payloads in front of one Encoder. It is safe
// for concurrent use.
type Cache struct {
	enc        *codec.Encoder
	entries    *lru.Cache[uint64, entry]
	hits       atomic.Uint64
	misses     atomic.Uint64
	collisions atomic.Uint64
}

// Stats reports cache activity.
type Stats struct {
	Hits       uint64
	Misses     uint64
	Collisions uint64 // misses caused by a key collision, also counted in Misses
	Len        int
}

// HitRate returns Hits / (Hits + Misses), or 0 before the first lookup.
func (s Stats) HitRate() float64 {
	total := s.Hits + s.Misses
	if total == 0 {
		return 0
	}

	return float64(s.Hits) / float64(total)
}

// New creates a cache holding at most size payloads produced by enc.
func New(size int, enc *codec.Encoder) (*Cache, error) {
	if enc == nil {
		return nil, fmt.Errorf("%w: nil encoder", errs.ErrInvalidOption)
	}
	if size <= 0 {
		return nil, fmt.Errorf("%w: cache size %d must be positive", errs.ErrInvalidOption, size)
	}

	entries, err := lru.New[uint64, entry](size)
	if err != nil {
		return nil, err
	}

	return &Cache{enc: enc, entries: entries}, nil
}

// Compress returns the payload of s and its UTF-8 length, compressing only on
// a miss. The returned slice is a copy the caller may modify.
func (c *Cache) Compress(s string) ([]byte, int, error) {
	key := hash.Key(s)
	if e, ok := c.entries.Get(key); ok {
		if e.text == s {
			c.hits.Add(1)
			return bytes.Clone(e.payload), len(s), nil
		}
		c.collisions.Add(1)
	}
	c.misses.Add(1)

	payload, n, err := c.enc.Compress(s)
	if err != nil {
		return nil, 0, err
	}
	c.entries.Add(key, entry{text: s, payload: payload})

	return bytes.Clone(payload), n, nil
}

// Stats returns a snapshot of the hit and miss counters.
func (c *Cache) Stats() Stats {
	return Stats{
		Hits:       c.hits.Load(),
		Misses:     c.misses.Load(),
		Collisions: c.collisions.Load(),
		Len:        c.entries.Len(),
	}
}

// Purge drops every entry. Counters are kept.
func (c *Cache) Purge() {
	c.entries.Purge()
}
