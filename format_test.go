package mast

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/KimNorgaard/go-mast/internal/encoder"
)

func TestFormatOptions(t *testing.T) {
	program, err := Unmarshal(encoder.New().Header().Null().Char('λ').Bytes())
	require.NoError(t, err)

	testCases := []struct {
		name     string
		opts     []Option
		expected string
	}{
		{
			name:     "Default Indent",
			opts:     []Option{},
			expected: "expressions (2):\n  0 Null null\n  1 Character 'λ' root\npatterns (0):\n",
		},
		{
			name:     "Indent 0",
			opts:     []Option{Indent(0)},
			expected: "expressions (2):\n0 Null null\n1 Character 'λ' root\npatterns (0):\n",
		},
		{
			name:     "Indent 4",
			opts:     []Option{Indent(4)},
			expected: "expressions (2):\n    0 Null null\n    1 Character 'λ' root\npatterns (0):\n",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			require.NoError(t, Format(&buf, program, tc.opts...))
			require.Equal(t, tc.expected, buf.String())
		})
	}

	var buf bytes.Buffer
	require.EqualError(t, Format(&buf, program, Indent(-1)), "mast: indent must not be negative")
}

func TestExport(t *testing.T) {
	program, err := Unmarshal(encoder.New().Header().Null().Char('A').Bytes())
	require.NoError(t, err)

	out, err := Export(program, "json")
	require.NoError(t, err)
	var doc struct {
		Root        int `json:"root"`
		Expressions []struct {
			Kind  string `json:"kind"`
			Value string `json:"value"`
		} `json:"expressions"`
	}
	require.NoError(t, json.Unmarshal(out, &doc))
	require.Equal(t, 1, doc.Root)
	require.Equal(t, "Character", doc.Expressions[1].Kind)
	require.Equal(t, "A", doc.Expressions[1].Value)

	out, err = Export(program, "yaml")
	require.NoError(t, err)
	require.Contains(t, string(out), "root: 1")

	out, err = Export(program, "cbor")
	require.NoError(t, err)
	require.NotEmpty(t, out)

	_, err = Export(program, "toml")
	require.EqualError(t, err, `mast: unknown export format: "toml"`)
}
