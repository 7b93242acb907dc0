// Copyright 2018 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"maps"
	"os"
	"os/signal"
	"slices"
	"strings"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/cmd/formats"
	"github.com/wdltools/wdl/cmd/internal/env"
	"github.com/wdltools/wdl/filewatcher"
	pr "github.com/wdltools/wdl/internal/presentation"
	"github.com/wdltools/wdl/lexer"
	"github.com/wdltools/wdl/loader"
	"github.com/wdltools/wdl/logging"
	"github.com/wdltools/wdl/metrics"
	"github.com/wdltools/wdl/parser"
	"github.com/wdltools/wdl/util"
)

// stdinName labels sources read from standard input.
const stdinName = "stdin"

// exprStart is the nonterminal standalone expressions are parsed from.
const exprStart = "e"

type parseParams struct {
	format      *util.EnumFlag
	metrics     bool
	watch       bool
	expr        bool
	ignore      []string
	prettyLimit int
}

func newParseParams() parseParams {
	return parseParams{
		format: formats.Flag(formats.Pretty, formats.Compact, formats.JSON, formats.YAML, formats.Tree),
	}
}

var configuredParseParams = newParseParams()

var parseCommand = &cobra.Command{
	Use:   "parse <path> [<path> [...]]",
	Short: "Parse workflow source files",
	Long: `Parse workflow source files and print their AST.

Directories are searched recursively for files ending in .wdl. The path - reads
standard input. With --expr the arguments are parsed as a single expression.

The 'tree' format prints the parse tree instead of the AST.`,
	PreRunE: func(cmd *cobra.Command, args []string) error {
		if len(args) == 0 {
			return errors.New("no source file specified")
		}
		return env.CmdFlags.CheckEnvironmentVariables(cmd)
	},
	Run: func(cmd *cobra.Command, args []string) {
		ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
		code := parse(ctx, args, &configuredParseParams, os.Stdin, os.Stdout, os.Stderr)
		stop()
		os.Exit(code)
	},
}

func parse(ctx context.Context, args []string, params *parseParams, stdin io.Reader, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		return 0
	}

	format := params.format.String()
	logger := newLogger(stderr, configuredRootParams)

	m := metrics.NoOp()
	if params.metrics {
		m = metrics.New()
	}

	if params.expr {
		if params.watch {
			reportErrors(stderr, errors.New("--watch cannot be combined with --expr"), format)
			return 1
		}
		f, err := loadExpr(strings.Join(args, " "), m)
		if err != nil {
			reportErrors(stderr, err, format)
			return 1
		}
		return printAll(stdout, stderr, &loader.Result{Files: map[string]*loader.WDLFile{"": f}}, exprStart, params, m)
	}

	fl := loader.NewFileLoader().
		WithMetrics(m).
		WithLogger(logger).
		WithFilter(ignored(params.ignore))

	if params.watch {
		if slices.Contains(args, "-") {
			reportErrors(stderr, errors.New("--watch cannot be combined with standard input"), format)
			return 1
		}
		return watchParse(ctx, args, fl.WithCache(loader.NewCache(0)), params, m, logger, stdout, stderr)
	}

	result, err := loadArgs(fl, args, stdin)
	if err != nil {
		reportErrors(stderr, err, format)
		return 1
	}
	return printAll(stdout, stderr, result, "", params, m)
}

func printAll(stdout, stderr io.Writer, result *loader.Result, start string, params *parseParams, m metrics.Metrics) int {
	if err := printResult(stdout, result, start, params.format.String()); err != nil {
		reportErrors(stderr, err, params.format.String())
		return 1
	}
	if params.metrics {
		printMetrics(stderr, m, params)
	}
	return 0
}

func watchParse(ctx context.Context, args []string, fl *loader.FileLoader, params *parseParams, m metrics.Metrics, logger logging.Logger, stdout, stderr io.Writer) int {
	show := func(result *loader.Result, err error) {
		if err != nil {
			reportErrors(stderr, err, params.format.String())
			return
		}
		printAll(stdout, stderr, result, "", params, m)
		m.Clear()
	}

	show(fl.All(args))

	onReload := func(_ context.Context, elapsed time.Duration, result *loader.Result, err error) {
		logger.WithFields(map[string]any{"duration": elapsed.String()}).Info("Reloaded files.")
		show(result, err)
	}

	w := filewatcher.NewFileWatcher(args, fl, onReload, logger)
	if err := w.Start(ctx); err != nil {
		reportErrors(stderr, err, params.format.String())
		return 1
	}

	<-ctx.Done()
	return 0
}

// loadArgs loads the paths in args. The path - reads r.
func loadArgs(fl *loader.FileLoader, args []string, r io.Reader) (*loader.Result, error) {
	var paths []string
	var fromStdin bool
	for _, arg := range args {
		if arg == "-" {
			fromStdin = true
		} else {
			paths = append(paths, arg)
		}
	}

	result := &loader.Result{Files: map[string]*loader.WDLFile{}}
	errs := loader.Errors{}

	if len(paths) > 0 {
		loaded, err := fl.All(paths)
		if err != nil {
			errs.Add(err)
		} else {
			maps.Copy(result.Files, loaded.Files)
		}
	}

	if fromStdin {
		f, err := fl.LoadReader(stdinName, r)
		if err != nil {
			errs.Add(err)
		} else {
			result.Files[stdinName] = f
		}
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return result, nil
}

func loadExpr(src string, m metrics.Metrics) (*loader.WDLFile, error) {
	m.Timer(metrics.WDLLex).Start()
	ts, err := lexer.Lex(src, "")
	m.Timer(metrics.WDLLex).Stop()
	if err != nil {
		return nil, err
	}
	m.Counter(metrics.WDLTokens).Add(uint64(len(ts)))

	tree, err := parser.NewParser().WithTokens(ts).WithMetrics(m).WithStart(exprStart).Parse()
	if err != nil {
		return nil, err
	}
	return &loader.WDLFile{Raw: []byte(src), Tokens: ts, Parsed: parser.Reduce(tree, m)}, nil
}

func printResult(w io.Writer, result *loader.Result, start, format string) error {
	names := result.Names()

	if formats.MachineReadable(format) {
		var x any
		if len(names) == 1 {
			x = result.Files[names[0]].Parsed
		} else {
			obj := make(map[string]ast.Value, len(names))
			for _, name := range names {
				obj[name] = result.Files[name].Parsed
			}
			x = obj
		}
		if format == formats.YAML {
			return pr.YAML(w, x)
		}
		return pr.JSON(w, x)
	}

	for i, name := range names {
		if len(names) > 1 {
			if i > 0 {
				fmt.Fprintln(w)
			}
			fmt.Fprintf(w, "# %s\n", name)
		}
		if err := printFile(w, result.Files[name], start, format); err != nil {
			return err
		}
	}
	return nil
}

func printFile(w io.Writer, f *loader.WDLFile, start, format string) error {
	switch format {
	case formats.Compact:
		fmt.Fprintln(w, f.Parsed.String())
	case formats.Tree:
		tree, err := parser.NewParser().WithTokens(f.Tokens).WithStart(start).Parse()
		if err != nil {
			return err
		}
		fmt.Fprintln(w, tree.Pretty())
	default:
		ast.Pretty(w, f.Parsed)
	}
	return nil
}

func printMetrics(w io.Writer, m metrics.Metrics, params *parseParams) {
	out := pr.Output{Metrics: m}
	if formats.MachineReadable(params.format.String()) {
		_ = pr.JSON(w, out)
		return
	}
	_ = pr.Pretty(w, out.WithLimit(params.prettyLimit))
}

func reportErrors(w io.Writer, err error, format string) {
	out := pr.Output{Errors: pr.NewOutputErrors(err)}
	if formats.MachineReadable(format) {
		_ = pr.JSON(w, out)
		return
	}
	_ = pr.Pretty(w, out)
}

// ignored excludes files and directories below the given paths whose names
// match one of the patterns.
func ignored(patterns []string) loader.Filter {
	filters := make([]loader.Filter, len(patterns))
	for i, p := range patterns {
		filters[i] = loader.GlobExcludeName(p, 1)
	}
	return func(abspath string, info fs.FileInfo, depth int) bool {
		for _, f := range filters {
			if f(abspath, info, depth) {
				return true
			}
		}
		return false
	}
}

func init() {
	flags := parseCommand.Flags()
	addOutputFormat(flags, configuredParseParams.format)
	addMetricsFlag(flags, &configuredParseParams.metrics, false)
	addWatchFlag(flags, &configuredParseParams.watch, false)
	addExprFlag(flags, &configuredParseParams.expr, false)
	setIgnore(flags, &configuredParseParams.ignore)
	addPrettyLimit(flags, &configuredParseParams.prettyLimit, 80)

	RootCommand.AddCommand(parseCommand)
}
