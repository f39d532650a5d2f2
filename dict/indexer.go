package dict

import "bytes"

// rank returns the position in [0, NumKeys()] at which k already lives, or
// at which it would need to be inserted to preserve ascending order. It is
// the shared primitive behind every point, bulk and set operation.
func (d Dict) rank(k []byte) int {
	return d.rankFrom(0, d.NumKeys(), k)
}

// rankFrom is rank restricted to the half-open window [lo, hi) of record
// indices. The SvS intersection (see set_ops.go) calls this repeatedly with
// lo pinned to the previous result, turning a sequence of lookups into a
// tight, monotonically-narrowing binary search over the probed set.
func (d Dict) rankFrom(lo, hi int, k []byte) int {
	for lo < hi {
		mid := lo + (hi-lo)/2
		switch bytes.Compare(d.keyAt(mid), k) {
		case 0:
			return mid
		case -1:
			lo = mid + 1
		default:
			hi = mid
		}
	}
	return lo
}

// incrementKey treats k as a big-endian unsigned integer of its own width
// and returns k+1. overflowed is true when k is already the maximum
// representable value of that width (all 0xff bytes); callers must treat
// that case as a direct ErrNotFound rather than wrapping around to zero.
func incrementKey(k []byte) (next []byte, overflowed bool) {
	out := make([]byte, len(k))
	copy(out, k)
	for i := len(out) - 1; i >= 0; i-- {
		out[i]++
		if out[i] != 0 {
			return out, false
		}
	}
	return nil, true
}
