package dict

// Foldl walks the dictionary's pairs in ascending key order, threading acc
// through f. On an empty Dict, Foldl returns initial unchanged — the
// mathematically correct fold identity, diverging from the original
// Erlang source's reported empty-case behavior of returning an empty list
// instead of the caller's initial accumulator.
func Foldl[T any](d Dict, f func(k, v []byte, acc T) T, initial T) T {
	acc := initial
	n := d.NumKeys()
	for i := 0; i < n; i++ {
		acc = f(d.keyAt(i), d.valueAt(i), acc)
	}
	return acc
}

// ToOrdDict returns every (key, value) pair in the dictionary, in ascending
// key order.
func (d Dict) ToOrdDict() []Pair {
	n := d.NumKeys()
	out := make([]Pair, n)
	for i := 0; i < n; i++ {
		out[i] = Pair{Key: d.keyAt(i), Value: d.valueAt(i)}
	}
	return out
}
