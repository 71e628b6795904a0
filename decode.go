package mast

import (
	"fmt"
	"io"

	"github.com/KimNorgaard/go-mast/ast"
	"github.com/KimNorgaard/go-mast/internal/builder"
	"github.com/KimNorgaard/go-mast/internal/reader"
)

// Decoder reads one MAST stream and decodes it into an ast.Program.
//
// A Decoder is a single decode session: it owns its input cursor and node
// tables and cannot be reused. Independent Decoders share no state and may
// run in parallel.
type Decoder struct {
	r    io.Reader
	opts []Option
	used bool
}

// NewDecoder returns a new decoder that reads from r.
//
// The decoder buffers data from r as necessary. It is the caller's
// responsibility to call Close on r if required.
//
// Functional options can be provided to configure the session, such as the
// diagnostic trace (Noisy, Trace) or the byte order of doubles.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode validates the header and decodes nodes until the input ends. The
// root of the returned program is its last expression.
//
// Decoding is all-or-nothing: on error no program is returned. Malformed,
// truncated and unsupported input is reported as a *DecodeError.
func (d *Decoder) Decode() (*ast.Program, error) {
	if d.r == nil {
		return nil, fmt.Errorf("mast: Decode(nil reader)")
	}
	if d.used {
		return nil, fmt.Errorf("mast: decoder already used")
	}
	d.used = true

	o, err := buildOptions(d.opts)
	if err != nil {
		return nil, err
	}

	cfg := builder.Config{MaxNodes: o.maxNodes}
	if o.noisy {
		cfg.Trace = o.tracer.Step
	}
	b := builder.New(reader.New(d.r, o.byteOrder), cfg)
	return b.DecodeAll()
}
