package dict

import (
	"bytes"
	"fmt"
	"sort"
)

// Merge returns a Dict containing the union of small and big's keys, with
// small's records overlaid on matching keys in big (small wins). Both Dicts
// must share identical key and value widths. Internally this is a single
// linear walk over small, splicing each of its records into the moving tail
// of big using the same running-index technique as BulkInsert.
func Merge(small, big Dict) (Dict, error) {
	if small.keySize != big.keySize || small.valueSize != big.valueSize {
		return Dict{}, fmt.Errorf("dict.Merge: %w: mismatched key/value widths", ErrBadArgument)
	}
	pairs := Foldl(small, func(k, v []byte, acc []Pair) []Pair {
		return append(acc, Pair{Key: k, Value: v})
	}, make([]Pair, 0, small.NumKeys()))
	return big.BulkInsert(pairs)
}

// Intersection returns a Dict containing exactly the keys present in every
// one of dicts (two or more required), with values taken from whichever
// input was smallest by buffer size. It implements the Small-vs-Small (SvS)
// algorithm: inputs are processed smallest-first, the smallest forming the
// initial candidate set, which is progressively filtered down to the keys
// that also appear in each subsequent, larger input. Because both the
// candidate set and the probed set are walked in key order, each successive
// lookup in a probed set resumes its binary search from the previous rank
// rather than restarting from the full range.
func Intersection(dicts []Dict) (Dict, error) {
	if len(dicts) < 2 {
		return Dict{}, fmt.Errorf("dict.Intersection: %w: need at least two inputs", ErrBadArgument)
	}
	for _, d := range dicts[1:] {
		if d.blockSize != dicts[0].blockSize || d.keySize != dicts[0].keySize {
			return Dict{}, fmt.Errorf("dict.Intersection: %w: mismatched key/value widths", ErrBadArgument)
		}
	}

	ordered := make([]Dict, len(dicts))
	copy(ordered, dicts)
	sort.SliceStable(ordered, func(i, j int) bool { return len(ordered[i].buf) < len(ordered[j].buf) })

	smallest := ordered[0]
	if len(ordered) == 1 {
		return smallest, nil
	}

	// First pass: filter the smallest set, still in packed form, against
	// the next input. Foldl already walks in ascending key order, so
	// survivors accumulate in final order directly (no reverse-then-flip
	// pass is needed the way it would be with a cons-list accumulator).
	probe := ordered[1]
	rankCursor := 0
	survivors := Foldl(smallest, func(k, v []byte, acc []Pair) []Pair {
		i := probe.rankFrom(rankCursor, probe.NumKeys(), k)
		rankCursor = i
		if i < probe.NumKeys() && bytes.Equal(probe.keyAt(i), k) {
			acc = append(acc, Pair{Key: k, Value: v})
		}
		return acc
	}, make([]Pair, 0, smallest.NumKeys()))

	// Subsequent passes operate on the list form: the packed buffer we'd
	// otherwise rebuild would have most of its records discarded anyway.
	for _, probe := range ordered[2:] {
		rankCursor = 0
		next := make([]Pair, 0, len(survivors))
		for _, p := range survivors {
			i := probe.rankFrom(rankCursor, probe.NumKeys(), p.Key)
			rankCursor = i
			if i < probe.NumKeys() && bytes.Equal(probe.keyAt(i), p.Key) {
				next = append(next, p)
			}
		}
		survivors = next
	}

	empty, err := New(smallest.keySize, smallest.valueSize)
	if err != nil {
		return Dict{}, err
	}
	return FromOrdDict(empty, survivors)
}
