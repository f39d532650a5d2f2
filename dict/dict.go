// Package dict implements a space-efficient ordered dictionary backed by a
// single contiguous byte buffer of fixed-width (key, value) records, kept in
// ascending key order at all times. Every entry costs exactly key_size +
// value_size bytes: no pointers, no per-record header, no padding.
//
// A Dict is immutable by convention: every mutating operation returns a new
// Dict value rather than modifying the receiver in place. This makes Dict
// values safe to share across any number of concurrent readers without
// synchronization; a single logical writer produces new snapshots, and CAS
// is provided so an external owner can coordinate writers via an atomic
// handle swap (see package store for a demonstration of that pattern).
package dict

import "fmt"

// Dict is a packed ordered dictionary of fixed-width (key, value) records.
type Dict struct {
	keySize   int
	valueSize int
	blockSize int
	buf       []byte
}

// New returns an empty Dict with the given key and value widths.
func New(keySize, valueSize int) (Dict, error) {
	if keySize <= 0 || valueSize <= 0 {
		return Dict{}, fmt.Errorf("dict.New: %w: key_size and value_size must be positive, got %d and %d", ErrBadArgument, keySize, valueSize)
	}
	return Dict{keySize: keySize, valueSize: valueSize, blockSize: keySize + valueSize}, nil
}

// FromBuffer builds a Dict directly from a pre-existing packed buffer. The
// caller asserts that buf already satisfies the Dict invariants (sorted,
// no duplicate keys, length a multiple of key_size+value_size); FromBuffer
// only checks the structural length invariant, not sortedness.
func FromBuffer(keySize, valueSize int, buf []byte) (Dict, error) {
	d, err := New(keySize, valueSize)
	if err != nil {
		return Dict{}, err
	}
	if len(buf)%d.blockSize != 0 {
		return Dict{}, fmt.Errorf("dict.FromBuffer: %w: buffer length %d is not a multiple of block size %d", ErrBadArgument, len(buf), d.blockSize)
	}
	d.buf = buf
	return d, nil
}

// KeySize returns the fixed byte width of every key in the dictionary.
func (d Dict) KeySize() int { return d.keySize }

// ValueSize returns the fixed byte width of every value in the dictionary.
func (d Dict) ValueSize() int { return d.valueSize }

// BlockSize returns key_size + value_size, the width of one packed record.
func (d Dict) BlockSize() int { return d.blockSize }

// NumKeys returns the number of records currently packed into the buffer.
func (d Dict) NumKeys() int {
	if d.blockSize == 0 {
		return 0
	}
	return len(d.buf) / d.blockSize
}

// Size returns the length of the packed buffer in bytes.
func (d Dict) Size() int { return len(d.buf) }

// ExpectedSize returns the buffer length a dictionary of n records of this
// shape would occupy; useful for capacity planning ahead of a bulk build.
func (d Dict) ExpectedSize(n int) int { return n * d.blockSize }

// Compact returns a Dict backed by a freshly allocated, contiguous copy of
// the buffer. Used to defragment after many incremental inserts when the
// underlying storage might otherwise be a chain of shared sub-slices.
func (d Dict) Compact() Dict {
	cp := make([]byte, len(d.buf))
	copy(cp, d.buf)
	d.buf = cp
	return d
}

func (d Dict) keyAt(i int) []byte {
	off := i * d.blockSize
	return d.buf[off : off+d.keySize]
}

func (d Dict) valueAt(i int) []byte {
	off := i*d.blockSize + d.keySize
	return d.buf[off : off+d.valueSize]
}

// at returns the (key, value) pair at record index i, or ErrNotFound if i is
// out of range.
func (d Dict) at(i int) ([]byte, []byte, error) {
	if i < 0 || i >= d.NumKeys() {
		return nil, nil, ErrNotFound
	}
	return d.keyAt(i), d.valueAt(i), nil
}

func (d Dict) checkKeyWidth(k []byte) error {
	if len(k) != d.keySize {
		return fmt.Errorf("%w: key width %d, want %d", ErrBadArgument, len(k), d.keySize)
	}
	return nil
}

func (d Dict) checkValueWidth(v []byte) error {
	if len(v) != d.valueSize {
		return fmt.Errorf("%w: value width %d, want %d", ErrBadArgument, len(v), d.valueSize)
	}
	return nil
}
