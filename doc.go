/*
Package mast decodes MAST, the binary serialization of a Monte abstract
syntax tree, into typed node tables. The API mirrors the standard
`encoding/json` package where it can.

A MAST stream is a ten-byte header (a nine-byte signature and a version
byte) followed by a stream of tagged nodes that runs to the end of the
input. Nodes are decoded in postorder and appended to one of two tables,
expressions and patterns, where they are addressed by ast.NodeID. The root
of a program is the last expression decoded.

Decoding a stream held in memory:

	program, err := mast.Unmarshal(data)
	if err != nil {
		// handle error
	}
	root := program.RootExpr()

Decoding from a reader, with a diagnostic trace of every step:

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
	d := mast.NewDecoder(f, mast.Trace(mast.LogTracer(logger)))
	program, err := d.Decode()

Errors are *DecodeError values carrying a kind, the byte offset and, where
known, the tag being decoded. Use errors.Is with the Err* sentinels to test
the kind. ErrUnsupported marks valid MAST that this package does not decode
yet; it is kept apart from corruption (ErrMalformedTag, ErrUnknownTag).

At present only the null and character literals are decoded. Every other
tag the format defines is recognised and reported as unsupported.
*/
package mast
