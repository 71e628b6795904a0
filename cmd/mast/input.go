package main

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"io"
	"os"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
	"github.com/zeebo/blake3"
	"golang.org/x/term"
)

// maxDecompressed bounds the size of a decompressed input stream.
const maxDecompressed = 256 << 20

var (
	zstdMagic = []byte{0x28, 0xb5, 0x2f, 0xfd}
	lz4Magic  = []byte{0x04, 0x22, 0x4d, 0x18}
)

// input is a fully buffered MAST stream ready for decoding.
type input struct {
	// name is the file path, or "<stdin>".
	name string
	data []byte
	// compression is "none", "zstd" or "lz4".
	compression string
}

// digest returns the hex BLAKE3 hash of the decompressed stream.
func (in *input) digest() string {
	sum := blake3.Sum256(in.data)
	return hex.EncodeToString(sum[:])
}

// readInput buffers the stream named by path, or stdin when path is empty
// or "-", and removes any zstd or lz4 framing.
func readInput(path string, stdin io.Reader) (*input, error) {
	in := &input{name: path}
	var raw []byte
	var err error

	if path == "" || path == "-" {
		in.name = "<stdin>"
		if f, ok := stdin.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
			return nil, usageError(fmt.Errorf("no input file given and standard input is a terminal"))
		}
		raw, err = io.ReadAll(stdin)
		if err != nil {
			return nil, fmt.Errorf("reading standard input: %w", err)
		}
	} else {
		raw, err = os.ReadFile(path)
		if err != nil {
			return nil, err
		}
	}

	in.data, in.compression, err = decompress(raw, maxDecompressed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", in.name, err)
	}
	return in, nil
}

func decompress(raw []byte, limit int64) ([]byte, string, error) {
	switch {
	case bytes.HasPrefix(raw, zstdMagic):
		dec, err := zstd.NewReader(nil, zstd.WithDecoderMaxMemory(uint64(limit)))
		if err != nil {
			return nil, "", err
		}
		defer dec.Close()
		data, err := dec.DecodeAll(raw, nil)
		if err != nil {
			return nil, "", fmt.Errorf("zstd: %w", err)
		}
		return data, "zstd", nil

	case bytes.HasPrefix(raw, lz4Magic):
		r := io.LimitReader(lz4.NewReader(bytes.NewReader(raw)), limit+1)
		data, err := io.ReadAll(r)
		if err != nil {
			return nil, "", fmt.Errorf("lz4: %w", err)
		}
		if int64(len(data)) > limit {
			return nil, "", fmt.Errorf("lz4: decompressed stream exceeds %d bytes", limit)
		}
		return data, "lz4", nil

	default:
		return raw, "none", nil
	}
}
