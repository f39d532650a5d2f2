package dict

import (
	"bytes"
	"fmt"
)

// Find returns the value stored for k, or ErrNotFound if k is absent.
func (d Dict) Find(k []byte) ([]byte, error) {
	if err := d.checkKeyWidth(k); err != nil {
		return nil, fmt.Errorf("dict.Find: %w", err)
	}
	i := d.rank(k)
	if i < d.NumKeys() && bytes.Equal(d.keyAt(i), k) {
		return d.valueAt(i), nil
	}
	return nil, ErrNotFound
}

// FindResult is one element of FindMany's output: the value for Key, or a
// non-nil Err (ErrNotFound) if Key was absent.
type FindResult struct {
	Key   []byte
	Value []byte
	Err   error
}

// FindMany looks up each key in ks, in order, with no deduplication or
// reordering. It is equivalent to mapping Find over the input.
func (d Dict) FindMany(ks [][]byte) []FindResult {
	out := make([]FindResult, len(ks))
	for i, k := range ks {
		v, err := d.Find(k)
		out[i] = FindResult{Key: k, Value: v, Err: err}
	}
	return out
}

// Insert returns a new Dict with (k, v) present. If k already exists, its
// value is replaced; otherwise a new record is spliced in at rank order.
func (d Dict) Insert(k, v []byte) (Dict, error) {
	if err := d.checkKeyWidth(k); err != nil {
		return Dict{}, fmt.Errorf("dict.Insert: %w", err)
	}
	if err := d.checkValueWidth(v); err != nil {
		return Dict{}, fmt.Errorf("dict.Insert: %w", err)
	}
	i := d.rank(k)
	if i < d.NumKeys() && bytes.Equal(d.keyAt(i), k) {
		return d.replaceAt(i, k, v), nil
	}
	return d.spliceAt(i, k, v), nil
}

// Update applies f to the current value of k, or seeds k with initial if it
// is absent. If f returns bytes identical to the current value, Update
// returns d unchanged (an identity fast path that avoids a needless copy).
// f must return a value of exactly ValueSize() bytes.
func (d Dict) Update(k []byte, initial []byte, f func(current []byte) []byte) (Dict, error) {
	if err := d.checkKeyWidth(k); err != nil {
		return Dict{}, fmt.Errorf("dict.Update: %w", err)
	}
	if err := d.checkValueWidth(initial); err != nil {
		return Dict{}, fmt.Errorf("dict.Update: %w", err)
	}
	i := d.rank(k)
	if i < d.NumKeys() && bytes.Equal(d.keyAt(i), k) {
		next := f(d.valueAt(i))
		if err := d.checkValueWidth(next); err != nil {
			return Dict{}, fmt.Errorf("dict.Update: update function returned wrong-width value: %w", err)
		}
		if bytes.Equal(next, d.valueAt(i)) {
			return d, nil
		}
		return d.replaceAt(i, k, next), nil
	}
	return d.spliceAt(i, k, initial), nil
}

// Delete returns a new Dict with k removed. It is ErrBadArgument for k to be
// absent.
func (d Dict) Delete(k []byte) (Dict, error) {
	if err := d.checkKeyWidth(k); err != nil {
		return Dict{}, fmt.Errorf("dict.Delete: %w", err)
	}
	i := d.rank(k)
	if i >= d.NumKeys() || !bytes.Equal(d.keyAt(i), k) {
		return Dict{}, fmt.Errorf("dict.Delete: %w: key not present", ErrBadArgument)
	}
	buf := make([]byte, 0, len(d.buf)-d.blockSize)
	buf = append(buf, d.buf[:i*d.blockSize]...)
	buf = append(buf, d.buf[(i+1)*d.blockSize:]...)
	d.buf = buf
	return d, nil
}

// CAS performs a compare-and-swap insert: if the current value for k equals
// expected (expected == nil means "k must be absent"), k is set to v;
// otherwise CAS fails with ErrBadArgument. This is the one operation that
// offers optimistic-concurrency semantics, intended for an external writer
// serializer (see package store).
func (d Dict) CAS(k, expected, v []byte) (Dict, error) {
	if err := d.checkKeyWidth(k); err != nil {
		return Dict{}, fmt.Errorf("dict.CAS: %w", err)
	}
	current, err := d.Find(k)
	switch {
	case err == nil && expected != nil && bytes.Equal(current, expected):
	case err == ErrNotFound && expected == nil:
	default:
		return Dict{}, fmt.Errorf("dict.CAS: %w: observed value does not match expected", ErrBadArgument)
	}
	return d.Insert(k, v)
}

// Append concatenates (k, v) to the end of the buffer, skipping the binary
// search Insert would perform. The caller asserts NumKeys()==0 or k is
// strictly greater than the current last key; violating that precondition
// corrupts sort order and is a programming error reported as ErrBadArgument.
func (d Dict) Append(k, v []byte) (Dict, error) {
	if err := d.checkKeyWidth(k); err != nil {
		return Dict{}, fmt.Errorf("dict.Append: %w", err)
	}
	if err := d.checkValueWidth(v); err != nil {
		return Dict{}, fmt.Errorf("dict.Append: %w", err)
	}
	if n := d.NumKeys(); n > 0 && bytes.Compare(k, d.keyAt(n-1)) <= 0 {
		return Dict{}, fmt.Errorf("dict.Append: %w: key does not exceed current last key", ErrBadArgument)
	}
	buf := make([]byte, len(d.buf), len(d.buf)+d.blockSize)
	copy(buf, d.buf)
	buf = append(buf, k...)
	buf = append(buf, v...)
	d.buf = buf
	return d, nil
}

// First returns the lowest (key, value) pair, or ErrNotFound if empty.
func (d Dict) First() ([]byte, []byte, error) { return d.at(0) }

// Last returns the highest (key, value) pair, or ErrNotFound if empty.
func (d Dict) Last() ([]byte, []byte, error) { return d.at(d.NumKeys() - 1) }

// Next returns the pair whose key is the smallest key strictly greater than
// k, or ErrNotFound if none exists.
func (d Dict) Next(k []byte) ([]byte, []byte, error) {
	return d.NextNth(k, 1)
}

// NextNth returns the n-th pair (n >= 1) whose key is strictly greater than
// k, or ErrNotFound if fewer than n such pairs exist.
func (d Dict) NextNth(k []byte, n int) ([]byte, []byte, error) {
	if err := d.checkKeyWidth(k); err != nil {
		return nil, nil, fmt.Errorf("dict.NextNth: %w", err)
	}
	if n < 1 {
		return nil, nil, fmt.Errorf("dict.NextNth: %w: n must be >= 1, got %d", ErrBadArgument, n)
	}
	kNext, overflowed := incrementKey(k)
	if overflowed {
		return nil, nil, ErrNotFound
	}
	return d.at(d.rank(kNext) + n - 1)
}

// replaceAt returns a new Dict with the record at index i replaced in place
// (same key, new value); used by Insert/Update when the key already exists.
func (d Dict) replaceAt(i int, k, v []byte) Dict {
	buf := make([]byte, len(d.buf))
	copy(buf, d.buf)
	off := i * d.blockSize
	copy(buf[off:off+d.keySize], k)
	copy(buf[off+d.keySize:off+d.blockSize], v)
	d.buf = buf
	return d
}

// spliceAt returns a new Dict with a fresh (k, v) record inserted at record
// index i, shifting everything from i onward one block to the right.
func (d Dict) spliceAt(i int, k, v []byte) Dict {
	off := i * d.blockSize
	buf := make([]byte, 0, len(d.buf)+d.blockSize)
	buf = append(buf, d.buf[:off]...)
	buf = append(buf, k...)
	buf = append(buf, v...)
	buf = append(buf, d.buf[off:]...)
	d.buf = buf
	return d
}
