package mast

import (
	"bytes"

	"github.com/KimNorgaard/go-mast/ast"
)

// Unmarshal decodes a complete MAST stream held in memory.
func Unmarshal(data []byte, opts ...Option) (*ast.Program, error) {
	return NewDecoder(bytes.NewReader(data), opts...).Decode()
}
