package dict

import (
	"bytes"
	"fmt"
)

// Pair is a (key, value) record used by the bulk, traversal and set-op
// surfaces. Both fields must have the widths declared by the Dict they are
// paired with.
type Pair struct {
	Key   []byte
	Value []byte
}

// BulkInsert merges a caller-supplied sequence of pairs, sorted ascending by
// key, into the Dict in a single linear pass. A running index into the old
// buffer advances past records whose key is less than the incoming key
// (copying them through unchanged), then the incoming record is emitted,
// overwriting any existing record with the same key. This is the bulk
// counterpart to repeated Insert calls: one pass over the old buffer plus
// the new pairs, instead of |pairs| independent binary searches and copies.
//
// pairs must already be sorted ascending by key; unsorted input produces a
// Dict with undefined (and likely unsorted) record order — this is not
// detected.
func (d Dict) BulkInsert(pairs []Pair) (Dict, error) {
	for _, p := range pairs {
		if err := d.checkKeyWidth(p.Key); err != nil {
			return Dict{}, fmt.Errorf("dict.BulkInsert: %w", err)
		}
		if err := d.checkValueWidth(p.Value); err != nil {
			return Dict{}, fmt.Errorf("dict.BulkInsert: %w", err)
		}
	}

	out := make([]byte, 0, len(d.buf)+len(pairs)*d.blockSize)
	n := d.NumKeys()
	i := 0 // index into the old buffer, in records

	for _, p := range pairs {
		for i < n && bytes.Compare(d.keyAt(i), p.Key) < 0 {
			out = appendRecord(out, d.keyAt(i), d.valueAt(i))
			i++
		}
		if i < n && bytes.Equal(d.keyAt(i), p.Key) {
			i++ // overwrite: skip the stale record, emit the new one below
		}
		out = appendRecord(out, p.Key, p.Value)
	}
	for i < n {
		out = appendRecord(out, d.keyAt(i), d.valueAt(i))
		i++
	}

	d.buf = out
	return d, nil
}

// FromOrdDict builds a maximally compact buffer directly from a sequence of
// pairs sorted ascending by key. empty must be an empty Dict (NumKeys()==0);
// building into a non-empty Dict is ErrBadArgument, use BulkInsert instead.
func FromOrdDict(empty Dict, pairs []Pair) (Dict, error) {
	if empty.NumKeys() != 0 {
		return Dict{}, fmt.Errorf("dict.FromOrdDict: %w: target dict is not empty", ErrBadArgument)
	}
	out := make([]byte, 0, len(pairs)*empty.blockSize)
	for _, p := range pairs {
		if err := empty.checkKeyWidth(p.Key); err != nil {
			return Dict{}, fmt.Errorf("dict.FromOrdDict: %w", err)
		}
		if err := empty.checkValueWidth(p.Value); err != nil {
			return Dict{}, fmt.Errorf("dict.FromOrdDict: %w", err)
		}
		out = appendRecord(out, p.Key, p.Value)
	}
	empty.buf = out
	return empty, nil
}

func appendRecord(buf []byte, k, v []byte) []byte {
	buf = append(buf, k...)
	buf = append(buf, v...)
	return buf
}
