// Seed program: builds a small 8-byte-key/8-byte-value dictionary and
// writes its serialized blob to disk.
// Run: go run ./cmd/seed <out-file>
package main

import (
	"encoding/binary"
	"fmt"
	"log"
	"os"

	"ordkv/dict"
)

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintf(os.Stderr, "Usage: %s <out-file>\n", os.Args[0])
		os.Exit(1)
	}
	outPath := os.Args[1]

	d, err := dict.New(8, 8)
	if err != nil {
		log.Fatalf("new dict: %v", err)
	}

	pairs := make([]dict.Pair, 0, 16)
	for i := uint64(0); i < 16; i++ {
		k := make([]byte, 8)
		v := make([]byte, 8)
		binary.BigEndian.PutUint64(k, i*7+1)
		binary.BigEndian.PutUint64(v, i*i)
		pairs = append(pairs, dict.Pair{Key: k, Value: v})
	}
	// pairs must be sorted ascending by key before FromOrdDict/BulkInsert.
	sortPairs(pairs)

	d, err = dict.FromOrdDict(d, pairs)
	if err != nil {
		log.Fatalf("from orddict: %v", err)
	}

	if err := os.WriteFile(outPath, d.Serialize(), 0644); err != nil {
		log.Fatalf("write %s: %v", outPath, err)
	}

	fmt.Printf("Wrote %d keys (%d bytes) to %s\n", d.NumKeys(), d.Size(), outPath)
}

func sortPairs(pairs []dict.Pair) {
	for i := 1; i < len(pairs); i++ {
		for j := i; j > 0 && string(pairs[j].Key) < string(pairs[j-1].Key); j-- {
			pairs[j], pairs[j-1] = pairs[j-1], pairs[j]
		}
	}
}
