// Package ast holds the node model produced by decoding a MAST stream: two
// closed families of nodes (expressions and patterns) stored in append-only
// tables and addressed by NodeID.
package ast

import (
	"fmt"
	"strconv"
	"strings"
)

// NodeID is the stable index of a node in its table. It is assigned when the
// node is appended and never reused or reordered.
type NodeID int

// Table names one of the two node tables of a Program.
type Table int

const (
	// ExprTable holds expressions.
	ExprTable Table = iota
	// PatternTable holds patterns.
	PatternTable
)

func (t Table) String() string {
	if t == PatternTable {
		return "patterns"
	}
	return "expressions"
}

// Node is the base interface for all AST nodes.
type Node interface {
	// Stamp returns a short audit line describing the node. It is called
	// once after construction and has no side effects.
	Stamp() string
	// String returns a string representation of the node.
	String() string
}

// Expr is a node of the expression family. The family is closed: only types
// in this package implement it.
type Expr interface {
	Node
	Kind() ExprKind
	exprNode()
}

// Pattern is a node of the pattern family. The family is closed: only types
// in this package implement it.
type Pattern interface {
	Node
	Kind() PattKind
	patternNode()
}

// ExprKind enumerates every expression variant the format defines.
type ExprKind int

const (
	NullKind ExprKind = iota
	CharKind
	DoubleKind
	IntKind
	StrKind
	NounKind
	BindingKind
	SequenceKind
	CallKind
	DefKind
	EscapeExitKind
	EscapeCatchKind
	ObjectKind
	MethodKind
	RunKind
	AssignKind
	FinallyKind
	TryKind
	HideKind
	IfKind
	ObjTryKind
	ExitKind
)

var exprKindNames = [...]string{
	NullKind:        "Null",
	CharKind:        "Character",
	DoubleKind:      "Double",
	IntKind:         "Integer",
	StrKind:         "String",
	NounKind:        "Noun",
	BindingKind:     "Binding",
	SequenceKind:    "Sequence",
	CallKind:        "Call",
	DefKind:         "Def",
	EscapeExitKind:  "EscapeExit",
	EscapeCatchKind: "EscapeCatch",
	ObjectKind:      "Object",
	MethodKind:      "Method",
	RunKind:         "Run",
	AssignKind:      "Assign",
	FinallyKind:     "Finally",
	TryKind:         "Try",
	HideKind:        "Hide",
	IfKind:          "If",
	ObjTryKind:      "ObjTry",
	ExitKind:        "Exit",
}

func (k ExprKind) String() string {
	if k >= 0 && int(k) < len(exprKindNames) {
		return exprKindNames[k]
	}
	return "ExprKind(" + strconv.Itoa(int(k)) + ")"
}

// PattKind enumerates every pattern variant the format defines.
type PattKind int

const (
	IgnoreKind PattKind = iota
	FinalKind
	VarKind
	ListKind
	ViaKind
	BindKind
)

var pattKindNames = [...]string{
	IgnoreKind: "Ignore",
	FinalKind:  "Final",
	VarKind:    "Var",
	ListKind:   "List",
	ViaKind:    "Via",
	BindKind:   "Bind",
}

func (k PattKind) String() string {
	if k >= 0 && int(k) < len(pattKindNames) {
		return pattKindNames[k]
	}
	return "PattKind(" + strconv.Itoa(int(k)) + ")"
}

// NullExpr is the null literal.
type NullExpr struct{}

func (*NullExpr) exprNode()      {}
func (*NullExpr) Kind() ExprKind { return NullKind }
func (*NullExpr) Stamp() string  { return "new NullExpr" }
func (*NullExpr) String() string { return "null" }

// CharExpr is a character literal holding exactly one Unicode scalar.
type CharExpr struct {
	Value rune
}

func (*CharExpr) exprNode()        {}
func (*CharExpr) Kind() ExprKind   { return CharKind }
func (c *CharExpr) Stamp() string  { return fmt.Sprintf("new CharExpr %U", c.Value) }
func (c *CharExpr) String() string { return strconv.QuoteRune(c.Value) }

// FinalPattern is the final pattern. No decode rule produces it yet: every
// pattern sub-tag is reported as unsupported.
type FinalPattern struct{}

func (*FinalPattern) patternNode()   {}
func (*FinalPattern) Kind() PattKind { return FinalKind }
func (*FinalPattern) Stamp() string  { return "new FinalPattern" }
func (*FinalPattern) String() string { return "final" }

// Program owns the node tables of one decoded stream. Tables only grow; the
// Push methods are the only mutators.
type Program struct {
	Exprs    []Expr
	Patterns []Pattern
}

// PushExpr appends e and returns its NodeID.
func (p *Program) PushExpr(e Expr) NodeID {
	p.Exprs = append(p.Exprs, e)
	return NodeID(len(p.Exprs) - 1)
}

// PushPattern appends pt and returns its NodeID.
func (p *Program) PushPattern(pt Pattern) NodeID {
	p.Patterns = append(p.Patterns, pt)
	return NodeID(len(p.Patterns) - 1)
}

// Expr returns the expression with the given id.
func (p *Program) Expr(id NodeID) (Expr, bool) {
	if id < 0 || int(id) >= len(p.Exprs) {
		return nil, false
	}
	return p.Exprs[id], true
}

// Pattern returns the pattern with the given id.
func (p *Program) Pattern(id NodeID) (Pattern, bool) {
	if id < 0 || int(id) >= len(p.Patterns) {
		return nil, false
	}
	return p.Patterns[id], true
}

// Len returns the total number of nodes in both tables.
func (p *Program) Len() int {
	return len(p.Exprs) + len(p.Patterns)
}

// Root returns the id of the program root, the last expression appended.
// It reports false when the stream held no expressions.
func (p *Program) Root() (NodeID, bool) {
	if len(p.Exprs) == 0 {
		return 0, false
	}
	return NodeID(len(p.Exprs) - 1), true
}

// RootExpr returns the root expression, or nil for an empty program.
func (p *Program) RootExpr() Expr {
	id, ok := p.Root()
	if !ok {
		return nil
	}
	return p.Exprs[id]
}

// String returns the expression table in decode order.
func (p *Program) String() string {
	parts := make([]string, 0, len(p.Exprs))
	for _, e := range p.Exprs {
		parts = append(parts, e.String())
	}
	return "[" + strings.Join(parts, ", ") + "]"
}
