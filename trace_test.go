package mast_test

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"strings"
	"testing"

	"github.com/KimNorgaard/go-mast"
	"github.com/KimNorgaard/go-mast/internal/encoder"
	"github.com/stretchr/testify/require"
)

func TestLogTracer(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	data := encoder.New().Header().Char('A').Bytes()
	_, err := mast.Unmarshal(data, mast.Trace(mast.LogTracer(logger)))
	require.NoError(t, err)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)

	var header map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &header))
	require.Equal(t, "mast header", header["msg"])
	require.Equal(t, "DEBUG", header["level"])
	require.EqualValues(t, 10, header["consumed"])

	var node map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &node))
	require.Equal(t, "mast node", node["msg"])
	require.Equal(t, "'L'", node["tag"])
	require.Equal(t, "'C'", node["subtag"])
	require.Equal(t, "expressions", node["table"])
	require.EqualValues(t, 0, node["index"])
	require.EqualValues(t, 10, node["offset"])
	require.EqualValues(t, 3, node["consumed"])
	require.Equal(t, "new CharExpr U+0041", node["stamp"])
}

func TestLogTracerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelInfo}))

	_, err := mast.Unmarshal(encoder.New().Header().Null().Bytes(), mast.Trace(mast.LogTracer(logger)))
	require.NoError(t, err)
	require.Empty(t, buf.String())
}
