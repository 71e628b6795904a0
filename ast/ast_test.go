package ast

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	program := &Program{}
	program.PushExpr(&NullExpr{})
	program.PushExpr(&CharExpr{Value: 'A'})

	require.Equal(t, `[null, 'A']`, program.String())
}

func TestPushAssignsSequentialIDs(t *testing.T) {
	program := &Program{}
	require.Equal(t, NodeID(0), program.PushExpr(&NullExpr{}))
	require.Equal(t, NodeID(1), program.PushExpr(&CharExpr{Value: 'x'}))
	require.Equal(t, NodeID(0), program.PushPattern(&FinalPattern{}))
	require.Equal(t, 3, program.Len())

	e, ok := program.Expr(1)
	require.True(t, ok)
	require.Equal(t, CharKind, e.Kind())

	_, ok = program.Expr(2)
	require.False(t, ok)
	_, ok = program.Pattern(-1)
	require.False(t, ok)

	p, ok := program.Pattern(0)
	require.True(t, ok)
	require.Equal(t, FinalKind, p.Kind())
}

func TestRoot(t *testing.T) {
	program := &Program{}
	_, ok := program.Root()
	require.False(t, ok)
	require.Nil(t, program.RootExpr())

	program.PushExpr(&NullExpr{})
	program.PushExpr(&CharExpr{Value: 'z'})
	id, ok := program.Root()
	require.True(t, ok)
	require.Equal(t, NodeID(1), id)
	require.Equal(t, &CharExpr{Value: 'z'}, program.RootExpr())
}

func TestStamp(t *testing.T) {
	require.Equal(t, "new NullExpr", (&NullExpr{}).Stamp())
	require.Equal(t, "new CharExpr U+1F600", (&CharExpr{Value: '😀'}).Stamp())
	require.Equal(t, "new FinalPattern", (&FinalPattern{}).Stamp())
}

func TestKindNames(t *testing.T) {
	require.Equal(t, "Null", NullKind.String())
	require.Equal(t, "EscapeCatch", EscapeCatchKind.String())
	require.Equal(t, "Exit", ExitKind.String())
	require.Equal(t, "ExprKind(99)", ExprKind(99).String())
	require.Equal(t, "Via", ViaKind.String())
	require.Equal(t, "PattKind(-1)", PattKind(-1).String())
	require.Equal(t, "patterns", PatternTable.String())
	require.Equal(t, "expressions", ExprTable.String())
}
