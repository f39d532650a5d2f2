// Package store demonstrates the "external server wrapper" the dict
// package's core deliberately keeps out of scope: something that owns a
// mutable dict.Dict on behalf of multiple callers, coordinates writers
// through CAS, and publishes new snapshots to readers via an atomic handle
// swap. It fronts point lookups with a ristretto hot-key cache so repeated
// Find calls skip the binary search entirely.
package store

import (
	"fmt"
	"sync/atomic"

	"github.com/dgraph-io/ristretto/v2"

	"ordkv/dict"
)

// Store owns one dict.Dict snapshot at a time, published through an atomic
// pointer so readers never observe a partially-written value. Writes are
// serialized by the caller using CAS: a writer reads the current snapshot,
// computes its mutation, and retries if another writer raced it in between.
type Store struct {
	current atomic.Pointer[dict.Dict]
	cache   *ristretto.Cache[string, []byte]
}

// New returns a Store wrapping the given initial snapshot. cacheCapacity
// bounds the number of hot keys the read cache will track (0 disables the
// cache; lookups fall straight through to the dictionary).
func New(initial dict.Dict, cacheCapacity int64) (*Store, error) {
	s := &Store{}
	s.current.Store(&initial)

	if cacheCapacity > 0 {
		cache, err := ristretto.NewCache(&ristretto.Config[string, []byte]{
			NumCounters: cacheCapacity * 10,
			MaxCost:     cacheCapacity,
			BufferItems: 64,
			// Every entry costs 1, so MaxCost is a key count.
			IgnoreInternalCost: true,
		})
		if err != nil {
			return nil, fmt.Errorf("store.New: creating read cache: %w", err)
		}
		s.cache = cache
	}
	return s, nil
}

// Snapshot returns the current published dict.Dict. Safe for any number of
// concurrent callers; it never blocks on a writer.
func (s *Store) Snapshot() dict.Dict {
	return *s.current.Load()
}

// Find looks up k, consulting the read cache before falling back to the
// dictionary's binary search. A cache hit skips the dictionary entirely.
func (s *Store) Find(k []byte) ([]byte, error) {
	if s.cache != nil {
		if v, ok := s.cache.Get(string(k)); ok {
			return v, nil
		}
	}
	v, err := s.Snapshot().Find(k)
	if err != nil {
		return nil, err
	}
	if s.cache != nil {
		s.cache.Set(string(k), v, 1)
	}
	return v, nil
}

// CAS publishes a new snapshot with k set to v, provided the dictionary's
// current value for k still equals expected. The publish itself is a
// compare-and-swap on the atomic pointer, not just a Store: if another
// writer published a snapshot in between this call reading its baseline and
// attempting to publish, the pointer swap is rejected and CAS recomputes its
// mutation against the newly published snapshot before retrying — this is
// what keeps a concurrent write to a different key from being silently
// discarded. Apart from a wrong-width key or value, CAS returns
// dict.ErrBadArgument only for a genuine conflict on k itself (the observed
// value no longer matches expected); the caller is expected to re-read and
// retry in that case. On success the read cache
// entry for k is invalidated (the old value may now be stale) rather than
// eagerly refreshed.
func (s *Store) CAS(k, expected, v []byte) error {
	for {
		baseline := s.current.Load()
		next, err := baseline.CAS(k, expected, v)
		if err != nil {
			return err
		}
		if s.current.CompareAndSwap(baseline, &next) {
			if s.cache != nil {
				s.cache.Del(string(k))
			}
			return nil
		}
		// Another writer published a new snapshot between our read and our
		// swap attempt; recompute against it and try again.
	}
}

// Close releases the read cache's background resources.
func (s *Store) Close() {
	if s.cache != nil {
		s.cache.Close()
	}
}
