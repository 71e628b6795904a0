// mast decodes a MAST file (a serialized Monte syntax tree) and prints its
// node tables.
//
// Usage:
//
//	mast [flags] [file]
//
// With no file, or with "-", the stream is read from standard input, which
// must not be a terminal. zstd- and lz4-framed input is decompressed
// transparently.
//
// Flags may also be set in a YAML or JSONC config file named by --config or
// the MAST_CONFIG environment variable; flags given on the command line win.
//
// Exit status is 0 on success, 1 when the input cannot be read or decoded
// and 2 for usage or configuration errors.
package main
