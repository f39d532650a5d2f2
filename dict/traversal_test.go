package dict

import "testing"

func TestFoldlOnEmptyReturnsInitial(t *testing.T) {
	d, _ := New(8, 1)
	got := Foldl(d, func(k, v []byte, acc int) int { return acc + 1 }, 42)
	if got != 42 {
		t.Errorf("Foldl on empty Dict = %d, want 42 (initial accumulator unchanged)", got)
	}
}

func TestFoldlVisitsAscending(t *testing.T) {
	d, _ := New(8, 1)
	for _, k := range []uint64{5, 1, 9, 3} {
		d, _ = d.Insert(key8(k), val1(byte(k)))
	}
	var seen []uint64
	Foldl(d, func(k, v []byte, acc struct{}) struct{} {
		seen = append(seen, key8AsUint(k))
		return acc
	}, struct{}{})

	want := []uint64{1, 3, 5, 9}
	if len(seen) != len(want) {
		t.Fatalf("visited %d keys, want %d", len(seen), len(want))
	}
	for i := range want {
		if seen[i] != want[i] {
			t.Errorf("visit order[%d] = %d, want %d", i, seen[i], want[i])
		}
	}
}

func TestFoldlSum(t *testing.T) {
	d, _ := New(8, 1)
	d, _ = d.Insert(key8(1), val1(10))
	d, _ = d.Insert(key8(2), val1(20))
	sum := Foldl(d, func(k, v []byte, acc int) int { return acc + int(v[0]) }, 0)
	if sum != 30 {
		t.Errorf("sum = %d, want 30", sum)
	}
}

func TestToOrdDictOnEmpty(t *testing.T) {
	d, _ := New(8, 1)
	if got := d.ToOrdDict(); len(got) != 0 {
		t.Errorf("ToOrdDict() on empty = %v, want empty", got)
	}
}
