// Package shard fans a single fixed-width keyspace out across N independent
// dict.Dict instances, keyed by the xxhash of the record key. This is the
// "many small dictionaries coexist" deployment shape the dict package's
// design is aimed at: splitting one logical keyspace across shards turns a
// single-writer dictionary into N independently-lockable partitions, at the
// cost of losing a single global ordering across the whole keyspace.
package shard

import (
	"fmt"
	"sync"

	"github.com/cespare/xxhash/v2"

	"ordkv/dict"
)

// Set owns numShards independent dict.Dict instances, all sharing the same
// key and value widths. Each shard has its own mutex: writers to different
// shards never contend.
type Set struct {
	keySize   int
	valueSize int

	mu     []sync.RWMutex
	shards []dict.Dict
}

// New returns an empty Set with numShards partitions, each an empty
// dict.Dict of the given key/value widths.
func New(keySize, valueSize, numShards int) (*Set, error) {
	if numShards <= 0 {
		return nil, fmt.Errorf("shard.New: %w: numShards must be positive, got %d", dict.ErrBadArgument, numShards)
	}
	s := &Set{
		keySize:   keySize,
		valueSize: valueSize,
		mu:        make([]sync.RWMutex, numShards),
		shards:    make([]dict.Dict, numShards),
	}
	for i := range s.shards {
		d, err := dict.New(keySize, valueSize)
		if err != nil {
			return nil, fmt.Errorf("shard.New: %w", err)
		}
		s.shards[i] = d
	}
	return s, nil
}

// NumShards returns the number of partitions in the set.
func (s *Set) NumShards() int { return len(s.shards) }

// shardFor returns the shard index a key routes to.
func (s *Set) shardFor(k []byte) int {
	return int(xxhash.Sum64(k) % uint64(len(s.shards)))
}

// Find looks up k in its owning shard.
func (s *Set) Find(k []byte) ([]byte, error) {
	i := s.shardFor(k)
	s.mu[i].RLock()
	defer s.mu[i].RUnlock()
	return s.shards[i].Find(k)
}

// Insert sets k to v in its owning shard.
func (s *Set) Insert(k, v []byte) error {
	i := s.shardFor(k)
	s.mu[i].Lock()
	defer s.mu[i].Unlock()
	next, err := s.shards[i].Insert(k, v)
	if err != nil {
		return err
	}
	s.shards[i] = next
	return nil
}

// Delete removes k from its owning shard.
func (s *Set) Delete(k []byte) error {
	i := s.shardFor(k)
	s.mu[i].Lock()
	defer s.mu[i].Unlock()
	next, err := s.shards[i].Delete(k)
	if err != nil {
		return err
	}
	s.shards[i] = next
	return nil
}

// CAS performs a compare-and-swap insert in k's owning shard.
func (s *Set) CAS(k, expected, v []byte) error {
	i := s.shardFor(k)
	s.mu[i].Lock()
	defer s.mu[i].Unlock()
	next, err := s.shards[i].CAS(k, expected, v)
	if err != nil {
		return err
	}
	s.shards[i] = next
	return nil
}

// NumKeys returns the total number of keys across every shard.
func (s *Set) NumKeys() int {
	total := 0
	for i := range s.shards {
		s.mu[i].RLock()
		total += s.shards[i].NumKeys()
		s.mu[i].RUnlock()
	}
	return total
}

// Shard returns a snapshot of the dict.Dict backing shard i, for read-only
// use (e.g. feeding dict.Intersection or iterating with dict.Foldl).
func (s *Set) Shard(i int) dict.Dict {
	s.mu[i].RLock()
	defer s.mu[i].RUnlock()
	return s.shards[i]
}
