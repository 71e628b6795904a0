package mast

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-mast/ast"
	"github.com/KimNorgaard/go-mast/internal/formatter"
	"github.com/KimNorgaard/go-mast/internal/marshaler"
)

// Format writes a readable listing of p's node tables to w, one node per
// line in decode order. Use the Indent option to change line indentation.
func Format(w io.Writer, p *ast.Program, opts ...Option) error {
	o, err := buildOptions(opts)
	if err != nil {
		return err
	}
	return formatter.New(w, o.indent).Format(p)
}

// Export encodes p's node tables as "json", "yaml" or "cbor". CBOR output
// uses deterministic encoding.
func Export(p *ast.Program, format string) ([]byte, error) {
	f, err := marshaler.ParseFormat(format)
	if err != nil {
		return nil, fmt.Errorf("mast: %w", err)
	}
	return marshaler.Marshal(p, f)
}
