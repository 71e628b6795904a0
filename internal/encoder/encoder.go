// Package encoder writes MAST byte streams. It exists to build fixtures for
// tests, fuzz seeds and golden files; it is not a general tree encoder.
package encoder

import (
	"encoding/binary"
	"math"
	"math/big"
	"unicode/utf8"

	"github.com/KimNorgaard/go-mast/internal/reader"
	"github.com/KimNorgaard/go-mast/tag"
)

// Writer accumulates a MAST stream. Methods return the Writer so fixtures
// read as one expression.
type Writer struct {
	buf   []byte
	order binary.AppendByteOrder
}

// New returns an empty Writer that encodes doubles little-endian.
func New() *Writer {
	return &Writer{order: binary.LittleEndian}
}

// WithByteOrder sets the byte order used by Double.
func (w *Writer) WithByteOrder(order binary.AppendByteOrder) *Writer {
	w.order = order
	return w
}

// Header appends the magic signature and the current version byte.
func (w *Writer) Header() *Writer {
	w.buf = append(w.buf, reader.Magic[:]...)
	w.buf = append(w.buf, reader.Version)
	return w
}

// Raw appends bytes verbatim.
func (w *Writer) Raw(b ...byte) *Writer {
	w.buf = append(w.buf, b...)
	return w
}

// Tag appends tag bytes.
func (w *Writer) Tag(tags ...tag.Tag) *Writer {
	for _, t := range tags {
		w.buf = append(w.buf, byte(t))
	}
	return w
}

// Varint appends v in continuation-bit groups. v must not be negative.
func (w *Writer) Varint(v *big.Int) *Writer {
	w.buf = AppendVarint(w.buf, v)
	return w
}

// Uint appends v as a varint.
func (w *Writer) Uint(v uint64) *Writer {
	return w.Varint(new(big.Int).SetUint64(v))
}

// Str appends a length-prefixed string. The bytes are written as given,
// valid UTF-8 or not.
func (w *Writer) Str(s string) *Writer {
	w.Uint(uint64(len(s)))
	w.buf = append(w.buf, s...)
	return w
}

// Double appends the eight bytes of f.
func (w *Writer) Double(f float64) *Writer {
	w.buf = w.order.AppendUint64(w.buf, math.Float64bits(f))
	return w
}

// Null appends a null literal node.
func (w *Writer) Null() *Writer {
	return w.Tag(tag.Literal, tag.LitNull)
}

// Char appends a character literal node.
func (w *Writer) Char(c rune) *Writer {
	w.Tag(tag.Literal, tag.LitChar)
	w.buf = utf8.AppendRune(w.buf, c)
	return w
}

// Bytes returns the encoded stream.
func (w *Writer) Bytes() []byte {
	return w.buf
}

// AppendVarint appends the varint encoding of v to dst. It panics if v is
// negative.
func AppendVarint(dst []byte, v *big.Int) []byte {
	if v.Sign() < 0 {
		panic("encoder: negative varint")
	}
	rest := new(big.Int).Set(v)
	group := new(big.Int)
	mask := big.NewInt(0x7f)
	for {
		group.And(rest, mask)
		rest.Rsh(rest, 7)
		b := byte(group.Uint64())
		if rest.Sign() == 0 {
			return append(dst, b)
		}
		dst = append(dst, b|0x80)
	}
}
