// Package tag defines the byte alphabet of a MAST node stream.
package tag

import "fmt"

// Tag is a one-byte discriminator selecting the node kind that follows in
// the stream. Sub-tags (the byte after Literal or Pattern) share the type.
type Tag byte

// Top-level tags.
const (
	Literal Tag = 'L'
	Pattern Tag = 'P'

	Noun        Tag = 'N'
	Binding     Tag = 'B'
	Sequence    Tag = 'S'
	Call        Tag = 'C'
	Def         Tag = 'D'
	EscapeExit  Tag = 'e'
	EscapeCatch Tag = 'E'
	Object      Tag = 'O'
	Method      Tag = 'M'
	Run         Tag = 'R'
	Assign      Tag = 'A'
	Finally     Tag = 'F'
	Try         Tag = 'Y'
	Hide        Tag = 'H'
	If          Tag = 'I'
	ObjTry      Tag = 'T'
	Exit        Tag = 'X'
)

// Literal sub-tags.
const (
	LitNull   Tag = 'N'
	LitChar   Tag = 'C'
	LitDouble Tag = 'D'
	LitInt    Tag = 'I'
	LitStr    Tag = 'S'
)

// Pattern sub-tags. Their binding to named pattern variants is not fixed by
// the format description available to this package, so they are named by
// their byte value only.
const (
	PattF Tag = 'F'
	PattI Tag = 'I'
	PattV Tag = 'V'
	PattL Tag = 'L'
	PattA Tag = 'A'
	PattB Tag = 'B'
)

// ExprTags lists the top-level tags of higher-level expression forms.
var ExprTags = []Tag{
	Noun, Binding, Sequence, Call, Def, EscapeExit, EscapeCatch, Object,
	Method, Run, Assign, Finally, Try, Hide, If, ObjTry, Exit,
}

// LiteralSubtags lists the sub-tags that may follow Literal.
var LiteralSubtags = []Tag{LitNull, LitChar, LitDouble, LitInt, LitStr}

// PatternSubtags lists the sub-tags that may follow Pattern.
var PatternSubtags = []Tag{PattF, PattI, PattV, PattL, PattA, PattB}

// String renders printable tags as a quoted character and everything else
// as a hex byte.
func (t Tag) String() string {
	if t >= 0x21 && t < 0x7f {
		return fmt.Sprintf("'%c'", byte(t))
	}
	return fmt.Sprintf("0x%02x", byte(t))
}
