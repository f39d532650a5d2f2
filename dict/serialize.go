package dict

import (
	"encoding/binary"
	"fmt"
)

// headerSize is the width of the self-describing blob header: a uint32
// key_size followed by a uint32 value_size, both big-endian. block_size is
// redundant (key_size+value_size) and is not stored.
const headerSize = 8

// Serialize produces a self-describing byte blob encoding (key_size,
// value_size, buf). Deserialize(Serialize(d)) reproduces a Dict equal to d.
func (d Dict) Serialize() []byte {
	out := make([]byte, headerSize+len(d.buf))
	binary.BigEndian.PutUint32(out[0:4], uint32(d.keySize))
	binary.BigEndian.PutUint32(out[4:8], uint32(d.valueSize))
	copy(out[headerSize:], d.buf)
	return out
}

// Deserialize parses a blob produced by Serialize. It validates that the
// declared sizes are positive and that the embedded buffer length is a
// multiple of their sum; it does not re-verify that the embedded records
// are sorted (quadratic to check, left to the caller's trust model).
func Deserialize(blob []byte) (Dict, error) {
	if len(blob) < headerSize {
		return Dict{}, fmt.Errorf("dict.Deserialize: %w: blob shorter than header", ErrBadArgument)
	}
	keySize := int(binary.BigEndian.Uint32(blob[0:4]))
	valueSize := int(binary.BigEndian.Uint32(blob[4:8]))
	buf := blob[headerSize:]

	d, err := New(keySize, valueSize)
	if err != nil {
		return Dict{}, fmt.Errorf("dict.Deserialize: %w", err)
	}
	if len(buf)%d.blockSize != 0 {
		return Dict{}, fmt.Errorf("dict.Deserialize: %w: buffer length %d is not a multiple of block size %d", ErrBadArgument, len(buf), d.blockSize)
	}
	out := make([]byte, len(buf))
	copy(out, buf)
	d.buf = out
	return d, nil
}
