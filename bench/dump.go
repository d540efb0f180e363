package bench

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Compression magic prefixes recognized in haystack dumps.
var (
	gzipMagic = []byte{0x1f, 0x8b}
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
)

// ReadDump loads a haystack file, transparently decompressing gzip and
// zstd dumps detected by their magic bytes. Anything else is returned
// as-is.
func ReadDump(path string) ([]byte, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read haystack: %w", err)
	}

	switch {
	case bytes.HasPrefix(raw, gzipMagic):
		zr, err := gzip.NewReader(bytes.NewReader(raw))
		if err != nil {
			return nil, fmt.Errorf("failed to open gzip haystack %s: %w", path, err)
		}
		defer zr.Close()
		data, err := io.ReadAll(zr)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress gzip haystack %s: %w", path, err)
		}
		return data, nil

	case bytes.HasPrefix(raw, zstdMagic):
		zr, err := zstd.NewReader(nil)
		if err != nil {
			return nil, fmt.Errorf("failed to init zstd: %w", err)
		}
		defer zr.Close()
		data, err := zr.DecodeAll(raw, nil)
		if err != nil {
			return nil, fmt.Errorf("failed to decompress zstd haystack %s: %w", path, err)
		}
		return data, nil
	}
	return raw, nil
}
