//go:build go1.18

package mast_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/KimNorgaard/go-mast"
	"github.com/KimNorgaard/go-mast/ast"
	"github.com/KimNorgaard/go-mast/internal/encoder"
	"github.com/stretchr/testify/require"
)

func FuzzDecode(f *testing.F) {
	// Seed the corpus with the golden streams, valid and invalid.
	seedFiles, err := filepath.Glob("testdata/*.mast")
	if err != nil {
		f.Fatalf("failed to find seed files: %v", err)
	}

	for _, file := range seedFiles {
		data, err := os.ReadFile(file)
		if err != nil {
			f.Fatalf("failed to read seed file %s: %v", file, err)
		}
		f.Add(data)
	}

	f.Add(encoder.New().Header().Bytes())
	f.Add(encoder.New().Header().Null().Null().Bytes())
	f.Add(encoder.New().Header().Char('\U0010FFFF').Bytes())
	f.Add([]byte{})

	f.Fuzz(func(t *testing.T, data []byte) {
		program, err := mast.Unmarshal(data)
		if err != nil {
			// Invalid streams are expected; the fuzzer looks for panics.
			require.Nil(t, program)
			return
		}

		// Every node kind decoded today has a canonical encoding, so a
		// stream that decodes must re-encode to exactly the same bytes.
		w := encoder.New().Header()
		for _, e := range program.Exprs {
			switch n := e.(type) {
			case *ast.NullExpr:
				w.Null()
			case *ast.CharExpr:
				w.Char(n.Value)
			default:
				t.Fatalf("unexpected node %T", e)
			}
		}
		require.Empty(t, program.Patterns)
		require.Equal(t, data, w.Bytes())
	})
}
