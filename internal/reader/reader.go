// Package reader implements the primitive layer of MAST decoding: a
// forward-only cursor over the input plus the header check and the
// varint, string, double and character decoders built on it.
package reader

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"io"
	"math"
	"math/big"
	"unicode/utf8"

	masterrors "github.com/KimNorgaard/go-mast/errors"
)

// HeaderLen is the size of the magic signature plus the version byte.
const HeaderLen = 10

// Version is the only format version this package reads.
const Version byte = 0x00

// Magic is the nine-byte signature every MAST stream starts with.
var Magic = [9]byte{'M', 'o', 'n', 't', 0xe0, 'M', 'A', 'S', 'T'}

// preallocLimit caps how much ReadExact reserves before the bytes arrive.
const preallocLimit = 64 << 10

// Reader is an exclusively owned, position-tracked cursor over a MAST
// stream. It only moves forward.
type Reader struct {
	r     *bufio.Reader
	off   int64
	order binary.ByteOrder
}

// New creates a Reader over r. Doubles are decoded in the given byte order;
// a nil order means little-endian.
func New(r io.Reader, order binary.ByteOrder) *Reader {
	if order == nil {
		order = binary.LittleEndian
	}
	return &Reader{r: bufio.NewReader(r), order: order}
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.off
}

// AtEOF reports whether the stream has ended cleanly at the current
// position. It does not consume input.
func (r *Reader) AtEOF() (bool, error) {
	_, err := r.r.Peek(1)
	if err == nil {
		return false, nil
	}
	if errors.Is(err, io.EOF) {
		return true, nil
	}
	return false, r.ioError(err)
}

// ValidateHeader consumes the ten header bytes and checks the signature and
// version.
func (r *Reader) ValidateHeader() error {
	var hdr [HeaderLen]byte
	n, err := io.ReadFull(r.r, hdr[:])
	r.off += int64(n)
	for i := 0; i < len(Magic) && i < n; i++ {
		if hdr[i] != Magic[i] {
			return masterrors.New(masterrors.BadMagic, int64(i))
		}
	}
	if err != nil {
		return r.eofError(err)
	}
	if hdr[HeaderLen-1] != Version {
		return masterrors.New(masterrors.BadVersion, HeaderLen-1).
			WithDetail("version 0x%02x", hdr[HeaderLen-1])
	}
	return nil
}

// ReadByte reads a single byte.
func (r *Reader) ReadByte() (byte, error) {
	b, err := r.r.ReadByte()
	if err != nil {
		return 0, r.eofError(err)
	}
	r.off++
	return b, nil
}

// ReadExact reads exactly n bytes. The buffer grows as data arrives, so a
// corrupt length costs at most the size of the remaining input.
func (r *Reader) ReadExact(n uint64) ([]byte, error) {
	if n == 0 {
		return []byte{}, nil
	}
	want := int64(math.MaxInt64)
	if n < math.MaxInt64 {
		want = int64(n)
	}
	var buf bytes.Buffer
	buf.Grow(int(min(want, preallocLimit)))
	copied, err := io.CopyN(&buf, r.r, want)
	r.off += copied
	if err != nil {
		return nil, r.eofError(err)
	}
	if uint64(copied) != n {
		return nil, masterrors.New(masterrors.UnexpectedEOF, r.off)
	}
	return buf.Bytes(), nil
}

// ReadVarint decodes a non-negative integer of unbounded size stored as
// little-endian groups of seven bits. A set high bit means another group
// follows.
func (r *Reader) ReadVarint() (*big.Int, error) {
	result := new(big.Int)
	var group big.Int
	for shift := uint(0); ; shift += 7 {
		b, err := r.ReadByte()
		if err != nil {
			return nil, err
		}
		if b&0x7f != 0 {
			group.SetUint64(uint64(b & 0x7f))
			group.Lsh(&group, shift)
			result.Or(result, &group)
		}
		if b&0x80 == 0 {
			return result, nil
		}
	}
}

// ReadLength decodes a varint that must fit in 64 bits.
func (r *Reader) ReadLength() (uint64, error) {
	start := r.off
	v, err := r.ReadVarint()
	if err != nil {
		return 0, err
	}
	if !v.IsUint64() {
		return 0, masterrors.New(masterrors.LengthOverflow, start).
			WithDetail("%d bits", v.BitLen())
	}
	return v.Uint64(), nil
}

// ReadString decodes a length-prefixed UTF-8 string.
func (r *Reader) ReadString() (string, error) {
	n, err := r.ReadLength()
	if err != nil {
		return "", err
	}
	if n == 0 {
		return "", nil
	}
	start := r.off
	b, err := r.ReadExact(n)
	if err != nil {
		return "", err
	}
	if i := invalidUTF8At(b); i >= 0 {
		return "", masterrors.New(masterrors.InvalidUTF8, start+int64(i))
	}
	return string(b), nil
}

// ReadDouble decodes an IEEE-754 binary64 value from eight bytes.
func (r *Reader) ReadDouble() (float64, error) {
	b, err := r.ReadExact(8)
	if err != nil {
		return 0, err
	}
	return math.Float64frombits(r.order.Uint64(b)), nil
}

// ReadScalarChar decodes one Unicode scalar without a length prefix. Bytes
// are added one at a time while they form a valid prefix of a longer
// sequence; at most utf8.UTFMax bytes are read.
func (r *Reader) ReadScalarChar() (rune, error) {
	start := r.off
	var buf [utf8.UTFMax]byte
	for n := 0; n < len(buf); {
		b, err := r.ReadByte()
		if err != nil {
			return 0, err
		}
		buf[n] = b
		n++
		if !utf8.FullRune(buf[:n]) {
			continue
		}
		c, size := utf8.DecodeRune(buf[:n])
		if c == utf8.RuneError && size <= 1 {
			return 0, masterrors.New(masterrors.InvalidUTF8, start)
		}
		return c, nil
	}
	return 0, masterrors.New(masterrors.InvalidUTF8, start)
}

// invalidUTF8At returns the index of the first byte that does not start a
// valid UTF-8 sequence, or -1 if b is valid.
func invalidUTF8At(b []byte) int {
	if utf8.Valid(b) {
		return -1
	}
	for i := 0; i < len(b); {
		c, size := utf8.DecodeRune(b[i:])
		if c == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

func (r *Reader) eofError(err error) error {
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return masterrors.New(masterrors.UnexpectedEOF, r.off)
	}
	return r.ioError(err)
}

func (r *Reader) ioError(err error) error {
	return fmt.Errorf("mast: reading input at offset %d: %w", r.off, err)
}
