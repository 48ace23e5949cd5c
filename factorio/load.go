package factorio

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/klauspost/compress/zstd"

	"github.com/katalvlaran/prodchain/recipe"
)

// CompressedExt marks zstd-compressed dumps.
const CompressedExt = ".zst"

// Load reads the dump at path, decompressing it when the name ends in
// CompressedExt, and parses it.
func Load(path string, opts ...Option) ([]recipe.Technology, error) {
	data, err := ReadFile(path)
	if err != nil {
		return nil, err
	}
	return Parse(data, opts...)
}

// ReadFile returns the raw JSON of the dump at path.
func ReadFile(path string) ([]byte, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("factorio: open dump: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if strings.HasSuffix(path, CompressedExt) {
		dec, err := zstd.NewReader(f)
		if err != nil {
			return nil, fmt.Errorf("factorio: zstd: %w", err)
		}
		defer dec.Close()
		r = dec
	}

	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("factorio: read dump: %w", err)
	}
	return data, nil
}
