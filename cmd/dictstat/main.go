// Report human-readable size statistics for a dictionary blob.
// Usage: go run ./cmd/dictstat <blob-file>
package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"

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

	fmt.Printf("key size:    %s bytes\n", humanize.Comma(int64(d.KeySize())))
	fmt.Printf("value size:  %s bytes\n", humanize.Comma(int64(d.ValueSize())))
	fmt.Printf("block size:  %s bytes\n", humanize.Comma(int64(d.BlockSize())))
	fmt.Printf("num keys:    %s\n", humanize.Comma(int64(d.NumKeys())))
	fmt.Printf("buffer size: %s (%s)\n", humanize.Bytes(uint64(d.Size())), humanize.Comma(int64(d.Size())))
}
