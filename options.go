package mast

import (
	"encoding/binary"
	"fmt"
)

// Option configures a Decoder or the text formatter.
type Option func(*options) error

type options struct {
	noisy     bool
	tracer    Tracer
	byteOrder binary.ByteOrder
	maxNodes  int
	indent    *int
}

func buildOptions(opts []Option) (options, error) {
	o := options{byteOrder: binary.LittleEndian}
	for _, opt := range opts {
		if err := opt(&o); err != nil {
			return options{}, err
		}
	}
	if o.noisy && o.tracer == nil {
		o.tracer = defaultTracer()
	}
	return o, nil
}

// Noisy turns the diagnostic step trace on or off. It is off by default.
// Without a Trace option, steps are logged through slog.Default.
func Noisy(on bool) Option {
	return func(o *options) error {
		o.noisy = on
		return nil
	}
}

// Trace sets the Tracer that receives decode steps and turns the
// diagnostic trace on.
func Trace(t Tracer) Option {
	return func(o *options) error {
		if t == nil {
			return fmt.Errorf("mast: tracer must not be nil")
		}
		o.tracer = t
		o.noisy = true
		return nil
	}
}

// DoubleByteOrder sets the byte order of double literals. The default is
// binary.LittleEndian.
func DoubleByteOrder(order binary.ByteOrder) Option {
	return func(o *options) error {
		if order == nil {
			return fmt.Errorf("mast: byte order must not be nil")
		}
		o.byteOrder = order
		return nil
	}
}

// MaxNodes bounds the total number of nodes a stream may decode to. Zero
// means unbounded.
//
// The limit n must not be negative.
func MaxNodes(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("mast: max nodes must not be negative")
		}
		o.maxNodes = n
		return nil
	}
}

// Indent sets the number of spaces Format indents node lines with.
func Indent(n int) Option {
	return func(o *options) error {
		if n < 0 {
			return fmt.Errorf("mast: indent must not be negative")
		}
		o.indent = &n
		return nil
	}
}
