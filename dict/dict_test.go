package dict

import (
	"encoding/binary"
	"testing"
)

// key8 encodes n as an 8-byte big-endian key, for tests using
// key_size=8, value_size=1.
func key8(n uint64) []byte {
	b := make([]byte, 8)
	binary.BigEndian.PutUint64(b, n)
	return b
}

func val1(b byte) []byte { return []byte{b} }

func TestNewValidatesWidths(t *testing.T) {
	if _, err := New(0, 1); err == nil {
		t.Fatalf("expected error for zero key_size")
	}
	if _, err := New(8, 0); err == nil {
		t.Fatalf("expected error for zero value_size")
	}
	d, err := New(8, 1)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if d.BlockSize() != 9 {
		t.Errorf("BlockSize() = %d, want 9", d.BlockSize())
	}
	if d.NumKeys() != 0 || d.Size() != 0 {
		t.Errorf("new dict should be empty, got NumKeys=%d Size=%d", d.NumKeys(), d.Size())
	}
}

func TestFromBufferRejectsMisalignedLength(t *testing.T) {
	if _, err := FromBuffer(8, 1, make([]byte, 10)); err == nil {
		t.Fatalf("expected error for buffer length not a multiple of block size")
	}
	d, err := FromBuffer(8, 1, make([]byte, 9))
	if err != nil {
		t.Fatalf("FromBuffer: %v", err)
	}
	if d.NumKeys() != 1 {
		t.Errorf("NumKeys() = %d, want 1", d.NumKeys())
	}
}

func TestExpectedSizeAndCompact(t *testing.T) {
	d, _ := New(8, 1)
	if got := d.ExpectedSize(10); got != 90 {
		t.Errorf("ExpectedSize(10) = %d, want 90", got)
	}

	d, _ = d.Insert(key8(1), val1(1))
	cpy := d.Compact()
	if cpy.NumKeys() != d.NumKeys() {
		t.Fatalf("Compact() changed NumKeys")
	}
	v, err := cpy.Find(key8(1))
	if err != nil || v[0] != 1 {
		t.Errorf("Compact() result lost data: v=%v err=%v", v, err)
	}
}
