package dict

import (
	"errors"
	"testing"
)

func buildDict(t *testing.T, pairs map[uint64]byte) Dict {
	t.Helper()
	keys := make([]uint64, 0, len(pairs))
	for k := range pairs {
		keys = append(keys, k)
	}
	for i := 1; i < len(keys); i++ {
		for j := i; j > 0 && keys[j] < keys[j-1]; j-- {
			keys[j], keys[j-1] = keys[j-1], keys[j]
		}
	}
	d, _ := New(8, 1)
	ps := make([]Pair, len(keys))
	for i, k := range keys {
		ps[i] = Pair{Key: key8(k), Value: val1(pairs[k])}
	}
	d, err := FromOrdDict(d, ps)
	if err != nil {
		t.Fatalf("buildDict: %v", err)
	}
	return d
}

func TestMerge(t *testing.T) {
	big := buildDict(t, map[uint64]byte{1: 1, 2: 2, 3: 3})
	small := buildDict(t, map[uint64]byte{2: 20, 4: 40})

	merged, err := Merge(small, big)
	if err != nil {
		t.Fatalf("Merge: %v", err)
	}

	want := map[uint64]byte{1: 1, 2: 20, 3: 3, 4: 40}
	pairs := merged.ToOrdDict()
	if len(pairs) != len(want) {
		t.Fatalf("got %d pairs, want %d", len(pairs), len(want))
	}
	for _, p := range pairs {
		k := key8AsUint(p.Key)
		if want[k] != p.Value[0] {
			t.Errorf("key %d = %d, want %d", k, p.Value[0], want[k])
		}
	}
}

func TestMergeRejectsWidthMismatch(t *testing.T) {
	a, _ := New(8, 1)
	b, _ := New(8, 2)
	if _, err := Merge(a, b); !errors.Is(err, ErrBadArgument) {
		t.Errorf("Merge with mismatched widths: err = %v, want ErrBadArgument", err)
	}
}

// TestIntersection documents that a multi-way intersection keeps only keys
// present in every input, with values taken from the smallest input (and,
// among same-size inputs, from whichever sorts first).
func TestIntersection(t *testing.T) {
	a := buildDict(t, map[uint64]byte{1: 1, 2: 2, 3: 3})
	b := buildDict(t, map[uint64]byte{1: 1, 2: 3, 4: 4})
	c := buildDict(t, map[uint64]byte{1: 1, 2: 3, 5: 5})
	e := buildDict(t, map[uint64]byte{1: 1, 2: 3, 6: 6})

	// All four inputs pack to the same buffer size; SvS's stable sort keeps
	// a first, so a is the candidate set and its values win the tie.
	result, err := Intersection([]Dict{a, b, c, e})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}

	pairs := result.ToOrdDict()
	if len(pairs) != 2 {
		t.Fatalf("got %d pairs, want 2: %+v", len(pairs), pairs)
	}
	if key8AsUint(pairs[0].Key) != 1 || pairs[0].Value[0] != 1 {
		t.Errorf("pair 0 = %+v, want key=1 value=1", pairs[0])
	}
	if key8AsUint(pairs[1].Key) != 2 || pairs[1].Value[0] != 2 {
		t.Errorf("pair 1 = %+v, want key=2 value=2", pairs[1])
	}
}

func TestIntersectionIsOrderIndependent(t *testing.T) {
	a := buildDict(t, map[uint64]byte{1: 1, 2: 2, 3: 3})
	b := buildDict(t, map[uint64]byte{1: 1, 2: 3, 4: 4})
	c := buildDict(t, map[uint64]byte{1: 1, 2: 3, 5: 5})

	r1, err := Intersection([]Dict{a, b, c})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	r2, err := Intersection([]Dict{c, a, b})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}

	p1, p2 := r1.ToOrdDict(), r2.ToOrdDict()
	if len(p1) != len(p2) {
		t.Fatalf("order-dependent result length: %d vs %d", len(p1), len(p2))
	}
	for i := range p1 {
		if key8AsUint(p1[i].Key) != key8AsUint(p2[i].Key) {
			t.Errorf("key %d differs by input order: %d vs %d", i, key8AsUint(p1[i].Key), key8AsUint(p2[i].Key))
		}
	}
}

func TestIntersectionRequiresTwoInputs(t *testing.T) {
	a := buildDict(t, map[uint64]byte{1: 1})
	if _, err := Intersection([]Dict{a}); !errors.Is(err, ErrBadArgument) {
		t.Errorf("Intersection of one input: err = %v, want ErrBadArgument", err)
	}
}

func TestIntersectionRejectsMismatchedWidths(t *testing.T) {
	a, _ := New(8, 1)
	b, _ := New(4, 1)
	if _, err := Intersection([]Dict{a, b}); !errors.Is(err, ErrBadArgument) {
		t.Errorf("Intersection with mismatched key widths: err = %v, want ErrBadArgument", err)
	}
}

func TestIntersectionEmptyResult(t *testing.T) {
	a := buildDict(t, map[uint64]byte{1: 1})
	b := buildDict(t, map[uint64]byte{2: 2})
	result, err := Intersection([]Dict{a, b})
	if err != nil {
		t.Fatalf("Intersection: %v", err)
	}
	if result.NumKeys() != 0 {
		t.Errorf("NumKeys() = %d, want 0", result.NumKeys())
	}
}
