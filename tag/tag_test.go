package tag

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExpressionAlphabet(t *testing.T) {
	require.Equal(t, "NBSCDeEOMRAFYHITX", string(bytesOf(ExprTags)))
	for _, tg := range ExprTags {
		require.NotEqual(t, Literal, tg)
		require.NotEqual(t, Pattern, tg)
	}
}

func TestSubtagAlphabets(t *testing.T) {
	require.Equal(t, "NCDIS", string(bytesOf(LiteralSubtags)))
	require.Equal(t, "FIVLAB", string(bytesOf(PatternSubtags)))
}

func TestNoDuplicates(t *testing.T) {
	for name, list := range map[string][]Tag{
		"expressions": ExprTags,
		"literals":    LiteralSubtags,
		"patterns":    PatternSubtags,
	} {
		seen := make(map[Tag]bool)
		for _, tg := range list {
			require.False(t, seen[tg], "%s: duplicate %s", name, tg)
			seen[tg] = true
		}
	}
}

func TestString(t *testing.T) {
	require.Equal(t, "'L'", Literal.String())
	require.Equal(t, "0xff", Tag(0xff).String())
	require.Equal(t, "0x20", Tag(' ').String())
}

func bytesOf(tags []Tag) []byte {
	out := make([]byte, len(tags))
	for i, tg := range tags {
		out[i] = byte(tg)
	}
	return out
}
