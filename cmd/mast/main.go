package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/pflag"

	"github.com/KimNorgaard/go-mast"
	"github.com/KimNorgaard/go-mast/internal/version"
)

const (
	exitOK     = 0
	exitDecode = 1
	exitUsage  = 2
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// exitError carries the process exit status for an error.
type exitError struct {
	code int
	err  error
}

func (e *exitError) Error() string { return e.err.Error() }
func (e *exitError) Unwrap() error { return e.err }
func (e *exitError) ExitCode() int { return e.code }

func usageError(err error) error {
	return &exitError{code: exitUsage, err: err}
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	err := decodeMain(args, stdin, stdout, stderr)
	if err == nil {
		return exitOK
	}
	if errors.Is(err, pflag.ErrHelp) {
		return exitOK
	}

	output := termenv.NewOutput(stderr)
	prefix := output.String("error:").Foreground(output.Color("1")).Bold()
	fmt.Fprintf(stderr, "%s %v\n", prefix, err)

	var coder interface{ ExitCode() int }
	if errors.As(err, &coder) {
		return coder.ExitCode()
	}
	return exitDecode
}

func decodeMain(args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	cfg := defaultConfig()
	var configPath string
	var showVersion bool

	flagSet := pflag.NewFlagSet("mast", pflag.ContinueOnError)
	flagSet.SetOutput(stderr)
	flagSet.StringVar(&configPath, "config", "", "path to a YAML or JSONC config file (default: $"+configEnv+")")
	flagSet.BoolVarP(&cfg.Trace, "trace", "t", cfg.Trace, "log every decode step")
	flagSet.StringVarP(&cfg.Format, "format", "f", cfg.Format, "output format: text, json, yaml or cbor")
	flagSet.StringVar(&cfg.DoubleOrder, "double-order", cfg.DoubleOrder, "byte order of double literals: little or big")
	flagSet.IntVar(&cfg.MaxNodes, "max-nodes", cfg.MaxNodes, "maximum number of nodes to decode (0 means no limit)")
	flagSet.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "log format: text or json")
	flagSet.BoolVar(&showVersion, "version", false, "print version information and exit")
	flagSet.Usage = func() { printHelp(stderr, flagSet) }

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, pflag.ErrHelp) {
			return err
		}
		return usageError(err)
	}
	if showVersion {
		fmt.Fprintf(stdout, "mast %s\n", version.Info())
		return nil
	}

	positional := flagSet.Args()
	if len(positional) > 1 {
		return usageError(fmt.Errorf("expected at most one input file, got %d", len(positional)))
	}
	var path string
	if len(positional) == 1 {
		path = positional[0]
	}

	if configPath == "" {
		configPath = os.Getenv(configEnv)
	}
	if configPath != "" {
		if err := applyConfigFile(configPath, &cfg, flagSet); err != nil {
			return usageError(err)
		}
	}
	if err := cfg.Validate(); err != nil {
		return usageError(err)
	}
	order, err := parseByteOrder(cfg.DoubleOrder)
	if err != nil {
		return usageError(err)
	}

	logger := newLogger(stderr, cfg)

	in, err := readInput(path, stdin)
	if err != nil {
		return err
	}

	opts := []mast.Option{
		mast.DoubleByteOrder(order),
		mast.MaxNodes(cfg.MaxNodes),
	}
	if cfg.Trace {
		opts = append(opts, mast.Trace(mast.LogTracer(logger)))
	}

	program, err := mast.Unmarshal(in.data, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", in.name, err)
	}
	logger.Debug("decoded",
		"input", in.name,
		"bytes", len(in.data),
		"compression", in.compression,
		"blake3", in.digest(),
		"expressions", len(program.Exprs),
		"patterns", len(program.Patterns),
	)

	if cfg.Format == "text" {
		return mast.Format(stdout, program)
	}
	out, err := mast.Export(program, cfg.Format)
	if err != nil {
		return err
	}
	_, err = stdout.Write(out)
	return err
}

// applyConfigFile loads the config file over cfg, then restores the values
// of flags given on the command line so that they take precedence.
func applyConfigFile(path string, cfg *Config, flagSet *pflag.FlagSet) error {
	fromFlags := *cfg
	if err := loadConfig(path, cfg); err != nil {
		return err
	}
	if flagSet.Changed("trace") {
		cfg.Trace = fromFlags.Trace
	}
	if flagSet.Changed("format") {
		cfg.Format = fromFlags.Format
	}
	if flagSet.Changed("double-order") {
		cfg.DoubleOrder = fromFlags.DoubleOrder
	}
	if flagSet.Changed("max-nodes") {
		cfg.MaxNodes = fromFlags.MaxNodes
	}
	if flagSet.Changed("log-format") {
		cfg.LogFormat = fromFlags.LogFormat
	}
	return nil
}

func newLogger(w io.Writer, cfg Config) *slog.Logger {
	level := slog.LevelWarn
	if cfg.Trace {
		level = slog.LevelDebug
	}
	handlerOptions := &slog.HandlerOptions{Level: level}
	if cfg.LogFormat == "json" {
		return slog.New(slog.NewJSONHandler(w, handlerOptions))
	}
	return slog.New(slog.NewTextHandler(w, handlerOptions))
}

func printHelp(w io.Writer, flagSet *pflag.FlagSet) {
	fmt.Fprintf(w, `mast decodes a MAST file and prints its node tables.

Usage:
  mast [flags] [file]

With no file, or with "-", the stream is read from standard input.
zstd- and lz4-compressed streams are decompressed automatically.

Flags:
%s`, flagSet.FlagUsages())
}
