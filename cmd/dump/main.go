// Dump the ascending-order contents of a dictionary blob produced by
// cmd/seed or dict.Dict.Serialize.
// Usage: go run ./cmd/dump <blob-file>
package main

import (
	"encoding/binary"
	"fmt"
	"os"

	"ordkv/dict"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <blob-file>\n", os.Args[0])
		os.Exit(1)
	}

	blob, err := os.ReadFile(os.Args[1])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	d, err := dict.Deserialize(blob)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	for _, p := range d.ToOrdDict() {
		fmt.Printf("%s => %s\n", describe(p.Key), describe(p.Value))
	}
}

// describe formats a fixed-width record as a big-endian unsigned integer
// when it is exactly 8 bytes wide, and as hex for every other width.
func describe(b []byte) string {
	switch len(b) {
	case 8:
		return fmt.Sprintf("%d", binary.BigEndian.Uint64(b))
	default:
		return fmt.Sprintf("%x", b)
	}
}
