package mast_test

import (
	"bytes"
	"encoding/binary"
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/KimNorgaard/go-mast"
	"github.com/KimNorgaard/go-mast/ast"
	"github.com/KimNorgaard/go-mast/internal/encoder"
	"github.com/KimNorgaard/go-mast/tag"
	"github.com/stretchr/testify/require"
)

func TestUnmarshal(t *testing.T) {
	t.Run("Null then Character", func(t *testing.T) {
		data := encoder.New().Header().Null().Char('A').Bytes()
		program, err := mast.Unmarshal(data)
		require.NoError(t, err)
		require.Equal(t, []ast.Expr{&ast.NullExpr{}, &ast.CharExpr{Value: 'A'}}, program.Exprs)
		require.Empty(t, program.Patterns)
		require.Equal(t, &ast.CharExpr{Value: 'A'}, program.RootExpr())
	})

	t.Run("Header Only", func(t *testing.T) {
		program, err := mast.Unmarshal(encoder.New().Header().Bytes())
		require.NoError(t, err)
		_, ok := program.Root()
		require.False(t, ok)
	})

	t.Run("Supplementary Plane Character", func(t *testing.T) {
		data := encoder.New().Header().Char('𝄞').Bytes()
		program, err := mast.Unmarshal(data)
		require.NoError(t, err)
		require.Equal(t, &ast.CharExpr{Value: '𝄞'}, program.RootExpr())
	})

	t.Run("Many Nodes Keep Decode Order", func(t *testing.T) {
		w := encoder.New().Header()
		var expected []ast.Expr
		for i := 0; i < 1000; i++ {
			if i%3 == 0 {
				w.Null()
				expected = append(expected, &ast.NullExpr{})
			} else {
				c := rune('a' + i%26)
				w.Char(c)
				expected = append(expected, &ast.CharExpr{Value: c})
			}
		}
		program, err := mast.Unmarshal(w.Bytes())
		require.NoError(t, err)
		require.Equal(t, expected, program.Exprs)
	})
}

func TestDecoder(t *testing.T) {
	t.Run("Nil Reader", func(t *testing.T) {
		_, err := mast.NewDecoder(nil).Decode()
		require.EqualError(t, err, "mast: Decode(nil reader)")
	})

	t.Run("Single Use", func(t *testing.T) {
		d := mast.NewDecoder(bytes.NewReader(encoder.New().Header().Null().Bytes()))
		_, err := d.Decode()
		require.NoError(t, err)
		_, err = d.Decode()
		require.EqualError(t, err, "mast: decoder already used")
	})

	t.Run("Invalid Options", func(t *testing.T) {
		data := encoder.New().Header().Bytes()
		_, err := mast.Unmarshal(data, mast.MaxNodes(-1))
		require.EqualError(t, err, "mast: max nodes must not be negative")
		_, err = mast.Unmarshal(data, mast.DoubleByteOrder(nil))
		require.EqualError(t, err, "mast: byte order must not be nil")
		_, err = mast.Unmarshal(data, mast.Trace(nil))
		require.EqualError(t, err, "mast: tracer must not be nil")
	})

	t.Run("Max Nodes", func(t *testing.T) {
		data := encoder.New().Header().Null().Null().Bytes()
		_, err := mast.Unmarshal(data, mast.MaxNodes(1))
		require.ErrorIs(t, err, mast.ErrNodeLimit)

		program, err := mast.Unmarshal(data, mast.MaxNodes(2))
		require.NoError(t, err)
		require.Equal(t, 2, program.Len())
	})

	t.Run("Double Byte Order Is Accepted", func(t *testing.T) {
		data := encoder.New().Header().Null().Bytes()
		_, err := mast.Unmarshal(data, mast.DoubleByteOrder(binary.BigEndian))
		require.NoError(t, err)
	})
}

func TestTraceOption(t *testing.T) {
	data := encoder.New().Header().Null().Char('A').Bytes()

	t.Run("Steps Are Reported In Order", func(t *testing.T) {
		var steps []mast.Step
		_, err := mast.Unmarshal(data, mast.Trace(mast.TracerFunc(func(s mast.Step) {
			steps = append(steps, s)
		})))
		require.NoError(t, err)
		require.Len(t, steps, 3)
		require.True(t, steps[0].Header)
		require.Equal(t, tag.LitNull, steps[1].Subtag)
		require.Equal(t, int64(2), steps[1].Consumed)
		require.Equal(t, ast.NodeID(1), steps[2].Index)
		require.Equal(t, int64(12), steps[2].Offset)
	})

	t.Run("Noisy Off Silences Tracer", func(t *testing.T) {
		called := false
		tracer := mast.TracerFunc(func(mast.Step) { called = true })
		_, err := mast.Unmarshal(data, mast.Trace(tracer), mast.Noisy(false))
		require.NoError(t, err)
		require.False(t, called)
	})
}

func TestIndependentSessionsInParallel(t *testing.T) {
	var wg sync.WaitGroup
	errs := make([]error, 16)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			w := encoder.New().Header()
			for j := 0; j <= i; j++ {
				w.Char(rune('A' + j))
			}
			program, err := mast.Unmarshal(w.Bytes())
			if err != nil {
				errs[i] = err
				return
			}
			if len(program.Exprs) != i+1 {
				errs[i] = fmt.Errorf("session %d decoded %d nodes", i, len(program.Exprs))
			}
		}(i)
	}
	wg.Wait()
	require.NoError(t, errors.Join(errs...))
}
