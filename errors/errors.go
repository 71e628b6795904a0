// Package errors defines the structured error values returned when a MAST
// stream cannot be decoded.
package errors

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-mast/tag"
)

// Kind classifies a decode failure.
type Kind int

const (
	// BadMagic means the first nine bytes are not the MAST signature.
	BadMagic Kind = iota + 1
	// BadVersion means the version byte is not one this package reads.
	BadVersion
	// UnexpectedEOF means the stream ended inside a header, primitive or node.
	UnexpectedEOF
	// LengthOverflow means a length varint does not fit in 64 bits.
	LengthOverflow
	// InvalidUTF8 means string or character bytes are not valid UTF-8.
	InvalidUTF8
	// MalformedTag means a sub-tag byte is outside its family's alphabet.
	MalformedTag
	// UnknownTag means a top-level byte is outside the format's alphabet.
	UnknownTag
	// Unsupported means the tag is valid MAST that this package does not
	// decode yet. It is not a sign of corruption.
	Unsupported
	// NodeLimit means the stream holds more nodes than the decoder allows.
	NodeLimit
)

var kindNames = map[Kind]string{
	BadMagic:       "bad magic",
	BadVersion:     "bad version",
	UnexpectedEOF:  "unexpected end of input",
	LengthOverflow: "length overflow",
	InvalidUTF8:    "invalid utf-8",
	MalformedTag:   "malformed tag",
	UnknownTag:     "unknown tag",
	Unsupported:    "unsupported",
	NodeLimit:      "node limit exceeded",
}

func (k Kind) String() string {
	if n, ok := kindNames[k]; ok {
		return n
	}
	return fmt.Sprintf("Kind(%d)", int(k))
}

// DecodeError is the single error type produced by the decoder. Offset is
// the absolute byte position the failure refers to, or -1 when unknown.
type DecodeError struct {
	Kind      Kind
	Offset    int64
	Tag       tag.Tag
	Subtag    tag.Tag
	HasTag    bool
	HasSubtag bool
	Detail    string
	Err       error
}

// New returns a DecodeError of the given kind at offset.
func New(kind Kind, offset int64) *DecodeError {
	return &DecodeError{Kind: kind, Offset: offset}
}

// WithTag records the top-level tag the failure occurred under.
func (e *DecodeError) WithTag(t tag.Tag) *DecodeError {
	e.Tag = t
	e.HasTag = true
	return e
}

// WithSubtag records the sub-tag the failure occurred under.
func (e *DecodeError) WithSubtag(t tag.Tag) *DecodeError {
	e.Subtag = t
	e.HasSubtag = true
	return e
}

// WithDetail attaches a short free-form description.
func (e *DecodeError) WithDetail(format string, args ...any) *DecodeError {
	e.Detail = fmt.Sprintf(format, args...)
	return e
}

// Wrap records the underlying cause, typically a read error.
func (e *DecodeError) Wrap(err error) *DecodeError {
	e.Err = err
	return e
}

func (e *DecodeError) Error() string {
	var sb strings.Builder
	sb.WriteString("mast: ")
	sb.WriteString(e.Kind.String())
	if e.HasTag {
		// "unknown tag 0xff" rather than "unknown tag tag 0xff".
		if e.Kind == UnknownTag || e.Kind == MalformedTag {
			fmt.Fprintf(&sb, " %s", e.Tag)
		} else {
			fmt.Fprintf(&sb, " tag %s", e.Tag)
		}
	}
	if e.HasSubtag {
		fmt.Fprintf(&sb, " sub-tag %s", e.Subtag)
	}
	if e.Offset >= 0 {
		fmt.Fprintf(&sb, " at offset %d", e.Offset)
	}
	if e.Detail != "" {
		sb.WriteString(": ")
		sb.WriteString(e.Detail)
	}
	if e.Err != nil {
		sb.WriteString(": ")
		sb.WriteString(e.Err.Error())
	}
	return sb.String()
}

func (e *DecodeError) Unwrap() error { return e.Err }

// Is reports whether target is a DecodeError of the same kind, so the
// sentinels below work with errors.Is.
func (e *DecodeError) Is(target error) bool {
	t, ok := target.(*DecodeError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinels for errors.Is. Only their Kind is compared.
var (
	ErrBadMagic       = &DecodeError{Kind: BadMagic, Offset: -1}
	ErrBadVersion     = &DecodeError{Kind: BadVersion, Offset: -1}
	ErrUnexpectedEOF  = &DecodeError{Kind: UnexpectedEOF, Offset: -1}
	ErrLengthOverflow = &DecodeError{Kind: LengthOverflow, Offset: -1}
	ErrInvalidUTF8    = &DecodeError{Kind: InvalidUTF8, Offset: -1}
	ErrMalformedTag   = &DecodeError{Kind: MalformedTag, Offset: -1}
	ErrUnknownTag     = &DecodeError{Kind: UnknownTag, Offset: -1}
	ErrUnsupported    = &DecodeError{Kind: Unsupported, Offset: -1}
	ErrNodeLimit      = &DecodeError{Kind: NodeLimit, Offset: -1}
)
