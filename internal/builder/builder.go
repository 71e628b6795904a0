// Package builder turns the tag stream of a MAST document into nodes. It
// reads tags through a reader.Reader and appends every node it completes to
// an ast.Program, in postorder.
package builder

import (
	"errors"

	"github.com/KimNorgaard/go-mast/ast"
	masterrors "github.com/KimNorgaard/go-mast/errors"
	"github.com/KimNorgaard/go-mast/internal/reader"
	"github.com/KimNorgaard/go-mast/tag"
)

// Step describes one successful decode step for diagnostics.
type Step struct {
	// Offset is where the step started in the stream.
	Offset int64
	// Consumed is the number of bytes the step read.
	Consumed int64
	// Header is set for the header check; the node fields are then zero.
	Header    bool
	Tag       tag.Tag
	Subtag    tag.Tag
	HasSubtag bool
	Table     ast.Table
	Index     ast.NodeID
	// Stamp is the node's audit line.
	Stamp string
}

// Config holds the knobs a decode session passes down.
type Config struct {
	// Trace receives a Step after the header and after every appended node.
	// Nil disables diagnostics.
	Trace func(Step)
	// MaxNodes bounds the combined size of both tables. Zero means no bound.
	MaxNodes int
}

// built is the outcome of one decode rule: exactly one of expr or pattern is
// set.
type built struct {
	expr    ast.Expr
	pattern ast.Pattern
	subtag  tag.Tag
	hasSub  bool
}

type (
	topFn func(t tag.Tag, start int64) (built, error)
	subFn func(t, sub tag.Tag, start int64) (built, error)
)

// Builder holds the dispatch state of one decode session.
type Builder struct {
	r       *reader.Reader
	program *ast.Program
	cfg     Config

	topFns     map[tag.Tag]topFn
	literalFns map[tag.Tag]subFn
	patternFns map[tag.Tag]subFn
}

// New creates a Builder reading from r.
func New(r *reader.Reader, cfg Config) *Builder {
	b := &Builder{
		r:       r,
		program: &ast.Program{},
		cfg:     cfg,
	}

	b.topFns = make(map[tag.Tag]topFn)
	b.registerTop(tag.Literal, b.decodeLiteral)
	b.registerTop(tag.Pattern, b.decodePattern)
	for _, t := range tag.ExprTags {
		b.registerTop(t, b.unsupportedExpr)
	}

	b.literalFns = make(map[tag.Tag]subFn)
	for _, t := range tag.LiteralSubtags {
		b.literalFns[t] = b.unsupportedSub
	}
	b.literalFns[tag.LitNull] = b.decodeNull
	b.literalFns[tag.LitChar] = b.decodeChar

	b.patternFns = make(map[tag.Tag]subFn)
	for _, t := range tag.PatternSubtags {
		b.patternFns[t] = b.unsupportedSub
	}

	return b
}

func (b *Builder) registerTop(t tag.Tag, fn topFn) {
	b.topFns[t] = fn
}

// Program returns the tables built so far.
func (b *Builder) Program() *ast.Program {
	return b.program
}

// DecodeAll validates the header and decodes nodes until the stream ends
// cleanly before a tag byte. On error the partial tables are discarded.
func (b *Builder) DecodeAll() (*ast.Program, error) {
	if err := b.r.ValidateHeader(); err != nil {
		return nil, err
	}
	b.emit(Step{Header: true, Consumed: reader.HeaderLen})

	for {
		eof, err := b.r.AtEOF()
		if err != nil {
			return nil, err
		}
		if eof {
			return b.program, nil
		}
		if err := b.DecodeOne(); err != nil {
			return nil, err
		}
	}
}

// DecodeOne decodes one node and appends it to its table. A failed call
// leaves both tables unchanged.
func (b *Builder) DecodeOne() error {
	start := b.r.Offset()
	raw, err := b.r.ReadByte()
	if err != nil {
		return err
	}
	t := tag.Tag(raw)

	fn, ok := b.topFns[t]
	if !ok {
		return masterrors.New(masterrors.UnknownTag, start).WithTag(t)
	}
	node, err := fn(t, start)
	if err != nil {
		return annotate(err, t)
	}

	if b.cfg.MaxNodes > 0 && b.program.Len() >= b.cfg.MaxNodes {
		return masterrors.New(masterrors.NodeLimit, start).
			WithTag(t).
			WithDetail("limit is %d nodes", b.cfg.MaxNodes)
	}

	step := Step{
		Offset:    start,
		Tag:       t,
		Subtag:    node.subtag,
		HasSubtag: node.hasSub,
	}
	if node.expr != nil {
		step.Table = ast.ExprTable
		step.Index = b.program.PushExpr(node.expr)
	} else {
		step.Table = ast.PatternTable
		step.Index = b.program.PushPattern(node.pattern)
	}
	if b.cfg.Trace != nil {
		step.Consumed = b.r.Offset() - start
		if node.expr != nil {
			step.Stamp = node.expr.Stamp()
		} else {
			step.Stamp = node.pattern.Stamp()
		}
		b.cfg.Trace(step)
	}
	return nil
}

func (b *Builder) emit(s Step) {
	if b.cfg.Trace != nil {
		b.cfg.Trace(s)
	}
}

func (b *Builder) decodeLiteral(t tag.Tag, start int64) (built, error) {
	return b.decodeSub(t, start, b.literalFns)
}

func (b *Builder) decodePattern(t tag.Tag, start int64) (built, error) {
	return b.decodeSub(t, start, b.patternFns)
}

func (b *Builder) decodeSub(t tag.Tag, start int64, fns map[tag.Tag]subFn) (built, error) {
	raw, err := b.r.ReadByte()
	if err != nil {
		return built{}, err
	}
	sub := tag.Tag(raw)
	fn, ok := fns[sub]
	if !ok {
		return built{}, masterrors.New(masterrors.MalformedTag, start+1).WithTag(t).WithSubtag(sub)
	}
	node, err := fn(t, sub, start)
	if err != nil {
		return built{}, err
	}
	node.subtag = sub
	node.hasSub = true
	return node, nil
}

func (b *Builder) decodeNull(tag.Tag, tag.Tag, int64) (built, error) {
	return built{expr: &ast.NullExpr{}}, nil
}

func (b *Builder) decodeChar(t, sub tag.Tag, _ int64) (built, error) {
	c, err := b.r.ReadScalarChar()
	if err != nil {
		return built{}, annotateSub(err, sub)
	}
	return built{expr: &ast.CharExpr{Value: c}}, nil
}

func (b *Builder) unsupportedSub(t, sub tag.Tag, start int64) (built, error) {
	return built{}, masterrors.New(masterrors.Unsupported, start).WithTag(t).WithSubtag(sub)
}

// unsupportedExpr handles tags the format defines for higher-level forms.
// Their operand layouts are not decoded yet; a rule added here must consume
// all of its operands and return exactly one node.
func (b *Builder) unsupportedExpr(t tag.Tag, start int64) (built, error) {
	return built{}, masterrors.New(masterrors.Unsupported, start).WithTag(t)
}

// annotate records the tag on errors raised while decoding its operands.
func annotate(err error, t tag.Tag) error {
	var de *masterrors.DecodeError
	if errors.As(err, &de) && !de.HasTag {
		de.WithTag(t)
	}
	return err
}

func annotateSub(err error, sub tag.Tag) error {
	var de *masterrors.DecodeError
	if errors.As(err, &de) && !de.HasSubtag {
		de.WithSubtag(sub)
	}
	return err
}
