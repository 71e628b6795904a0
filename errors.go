package mast

import masterrors "github.com/KimNorgaard/go-mast/errors"

// DecodeError is the error type returned for malformed, truncated or
// not-yet-supported input. See package errors for the kinds.
type DecodeError = masterrors.DecodeError

// ErrorKind classifies a DecodeError.
type ErrorKind = masterrors.Kind

// Sentinels for errors.Is; only the kind is compared.
var (
	ErrBadMagic       = masterrors.ErrBadMagic
	ErrBadVersion     = masterrors.ErrBadVersion
	ErrUnexpectedEOF  = masterrors.ErrUnexpectedEOF
	ErrLengthOverflow = masterrors.ErrLengthOverflow
	ErrInvalidUTF8    = masterrors.ErrInvalidUTF8
	ErrMalformedTag   = masterrors.ErrMalformedTag
	ErrUnknownTag     = masterrors.ErrUnknownTag
	ErrUnsupported    = masterrors.ErrUnsupported
	ErrNodeLimit      = masterrors.ErrNodeLimit
)
