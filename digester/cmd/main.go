// Package main provides the dirdigest CLI that writes a single
// content fingerprint of a directory tree to an output file,
// or checks a previously written one.
//
// Usage:
//
//	dirdigest [flags] [OUTPUT [ALGORITHM]]
//
// With no arguments the sha256 fingerprint of the working
// directory is written to commit.hash.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	flag "github.com/spf13/pflag"

	"github.com/byte4ever/dirdigest/config"
	"github.com/byte4ever/dirdigest/digester"
	"github.com/byte4ever/dirdigest/report"
)

// exitMismatch is the status of a --check run whose stored
// digest is stale.
const exitMismatch = 2

type cliOptions struct {
	cfg        config.Config
	configFile string
	check      bool
	printFmt   string
	jsonOut    bool
	list       bool
	verbose    bool
}

// newFlagSet binds the CLI flags to op and flags.
func newFlagSet(op *cliOptions, flags *config.Config) *flag.FlagSet {
	fs := flag.NewFlagSet("dirdigest", flag.ContinueOnError)

	fs.StringVarP(
		&flags.Root, "root", "C", "",
		"directory to fingerprint (default: working directory)",
	)

	fs.StringVarP(
		&flags.Output, "output", "o", "",
		"file receiving the digest, relative paths are taken "+
			"relative to --root (default: "+
			digester.DefaultOutput+")",
	)

	fs.StringVarP(
		&flags.Algorithm, "algorithm", "a", "",
		"hash algorithm (default: "+
			digester.DefaultAlgorithm+")",
	)

	fs.StringVar(
		&op.configFile, "config", "",
		"YAML file with root, output and algorithm defaults",
	)

	fs.BoolVar(
		&op.check, "check", false,
		"compare with the stored digest instead of writing it",
	)

	fs.StringVar(
		&op.printFmt, "print", "",
		"print a line to stdout, e.g. '{digest}  {output}\\n'",
	)

	fs.BoolVar(
		&op.jsonOut, "json", false,
		"print a JSON summary to stdout",
	)

	fs.BoolVar(
		&op.list, "list-algorithms", false,
		"print supported algorithms and exit",
	)

	fs.BoolVarP(
		&op.verbose, "verbose", "v", false,
		"log every hashed file",
	)

	return fs
}

func parseArgs(args []string) (cliOptions, error) {
	const errCtx = "parsing arguments"

	var (
		op    cliOptions
		flags config.Config
	)

	fs := newFlagSet(&op, &flags)

	if err := fs.Parse(args); err != nil {
		return cliOptions{}, fmt.Errorf("%s: %w", errCtx, err)
	}

	if op.printFmt != "" && op.jsonOut {
		return cliOptions{}, fmt.Errorf(
			"%s: only one of --print or --json may be specified",
			errCtx,
		)
	}

	switch pos := fs.Args(); len(pos) {
	case 0:
	case 2:
		flags.Algorithm = pos[1]

		fallthrough
	case 1:
		flags.Output = pos[0]
	default:
		return cliOptions{}, fmt.Errorf(
			"%s: expected at most OUTPUT and ALGORITHM, got %q",
			errCtx, strings.Join(pos, " "),
		)
	}

	if op.configFile != "" {
		cfg, err := config.Load(op.configFile)
		if err != nil {
			return cliOptions{}, fmt.Errorf("%s: %w", errCtx, err)
		}

		op.cfg = cfg
	}

	op.cfg = op.cfg.Merge(flags)

	return op, nil
}

func run(args []string, stdout io.Writer) error {
	const errCtx = "dirdigest"

	op, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if op.verbose {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if op.list {
		_, err := fmt.Fprintln(
			stdout, strings.Join(digester.Algorithms(), "\n"),
		)
		if err != nil {
			return fmt.Errorf("%s: %w", errCtx, err)
		}

		return nil
	}

	dop := digester.Options{
		Root:      op.cfg.Root,
		Output:    op.cfg.Output,
		Algorithm: op.cfg.Algorithm,
	}

	action := digester.Digest
	if op.check {
		action = digester.Verify
	}

	res, err := action(dop)
	if err != nil && !errors.Is(err, digester.ErrDigestMismatch) {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	if werr := writeReport(stdout, op, res); werr != nil {
		return fmt.Errorf("%s: %w", errCtx, werr)
	}

	if err != nil {
		return fmt.Errorf("%s: %w", errCtx, err)
	}

	return nil
}

func writeReport(
	stdout io.Writer,
	op cliOptions,
	res digester.Result,
) error {
	switch {
	case op.jsonOut:
		return report.JSON(stdout, res)
	case op.printFmt != "":
		_, err := io.WriteString(
			stdout, report.Render(unescape(op.printFmt), res),
		)

		return err
	default:
		return nil
	}
}

// unescape turns the literal \n and \t a shell passes through
// into control characters.
func unescape(format string) string {
	return strings.NewReplacer(`\n`, "\n", `\t`, "\t").Replace(format)
}

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		slog.Error(err.Error())

		if errors.Is(err, digester.ErrDigestMismatch) {
			os.Exit(exitMismatch)
		}

		os.Exit(1)
	}
}
