// Package formatter renders decoded node tables as readable text.
package formatter

import (
	"fmt"
	"io"
	"strings"

	"github.com/KimNorgaard/go-mast/ast"
)

const (
	defaultIndent = 2
)

// Formatter writes a program's node tables to an output stream.
type Formatter struct {
	w      io.Writer
	indent string
}

// New returns a new formatter that writes to w.
func New(w io.Writer, indentSpaces *int) *Formatter {
	spaces := defaultIndent
	if indentSpaces != nil {
		spaces = *indentSpaces
	}
	var indentStr string
	if spaces > 0 {
		indentStr = strings.Repeat(" ", spaces)
	}
	return &Formatter{w: w, indent: indentStr}
}

// Format writes both tables of p, one node per line, in decode order. The
// root expression is marked.
func (f *Formatter) Format(p *ast.Program) error {
	root, hasRoot := p.Root()

	if err := f.printf("expressions (%d):\n", len(p.Exprs)); err != nil {
		return err
	}
	for i, e := range p.Exprs {
		mark := ""
		if hasRoot && ast.NodeID(i) == root {
			mark = " root"
		}
		if err := f.printf("%s%d %s %s%s\n", f.indent, i, e.Kind(), e, mark); err != nil {
			return err
		}
	}

	if err := f.printf("patterns (%d):\n", len(p.Patterns)); err != nil {
		return err
	}
	for i, pt := range p.Patterns {
		if err := f.printf("%s%d %s %s\n", f.indent, i, pt.Kind(), pt); err != nil {
			return err
		}
	}
	return nil
}

func (f *Formatter) printf(format string, args ...any) error {
	_, err := fmt.Fprintf(f.w, format, args...)
	return err
}
