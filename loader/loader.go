// Copyright 2017 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package loader contains utilities for loading workflow source files.
package loader

import (
	"io"
	"io/fs"
	"maps"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/pkg/errors"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/lexer"
	"github.com/wdltools/wdl/logging"
	"github.com/wdltools/wdl/metrics"
	"github.com/wdltools/wdl/parser"
)

// WDLExt is the extension of workflow source files discovered in directories.
const WDLExt = ".wdl"

// WDLFile represents the result of loading a single workflow source file.
type WDLFile struct {
	Name   string
	Raw    []byte
	Tokens []*ast.Terminal
	Parsed ast.Value
}

// Result represents the result of successfully loading zero or more files.
type Result struct {
	Files map[string]*WDLFile
}

// Names returns the names of the loaded files in sorted order.
func (l *Result) Names() []string {
	names := make([]string, 0, len(l.Files))
	for name := range l.Files {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Filter defines the interface for filtering files during loading. If the
// filter returns true, the file should be excluded from the result.
type Filter func(abspath string, info fs.FileInfo, depth int) bool

// GlobExcludeName excludes files and directories whose names match the shell
// style pattern at minDepth or greater.
func GlobExcludeName(pattern string, minDepth int) Filter {
	return func(_ string, info fs.FileInfo, depth int) bool {
		match, _ := filepath.Match(pattern, info.Name())
		return match && depth >= minDepth
	}
}

// FileLoader loads and parses workflow sources.
type FileLoader struct {
	metrics   metrics.Metrics
	logger    logging.Logger
	filter    Filter
	cache     *Cache
	formatter parser.ErrorFormatter
}

// NewFileLoader returns a new FileLoader without a cache.
func NewFileLoader() *FileLoader {
	return &FileLoader{
		metrics: metrics.NoOp(),
		logger:  logging.NewNoOpLogger(),
	}
}

// WithMetrics sets the metrics collection for the loader.
func (fl *FileLoader) WithMetrics(m metrics.Metrics) *FileLoader {
	fl.metrics = m
	return fl
}

// WithLogger sets the logger for the loader.
func (fl *FileLoader) WithLogger(l logging.Logger) *FileLoader {
	fl.logger = l
	return fl
}

// WithFilter excludes files and directories matching f.
func (fl *FileLoader) WithFilter(f Filter) *FileLoader {
	fl.filter = f
	return fl
}

// WithCache reuses previously parsed files with identical name and content.
func (fl *FileLoader) WithCache(c *Cache) *FileLoader {
	fl.cache = c
	return fl
}

// WithFormatter sets the formatter of parse error messages.
func (fl *FileLoader) WithFormatter(f parser.ErrorFormatter) *FileLoader {
	fl.formatter = f
	return fl
}

// All returns a Result object loaded (recursively) from the specified paths.
// Files named explicitly are loaded regardless of their extension. Inside
// directories only files ending in WDLExt are loaded.
func (fl *FileLoader) All(paths []string) (*Result, error) {
	fl.metrics.Timer(metrics.WDLLoadFiles).Start()
	defer fl.metrics.Timer(metrics.WDLLoadFiles).Stop()

	errs := Errors{}
	result := &Result{Files: map[string]*WDLFile{}}

	for _, path := range paths {
		fl.allRec(path, &errs, result, 0)
	}

	if len(errs) > 0 {
		return nil, errs
	}
	return result, nil
}

func (fl *FileLoader) allRec(path string, errs *Errors, result *Result, depth int) {
	info, err := os.Stat(path)
	if err != nil {
		errs.Add(errors.Wrap(err, "failed to load"))
		return
	}

	if fl.filter != nil && fl.filter(path, info, depth) {
		return
	}

	if !info.IsDir() {
		if depth > 0 && filepath.Ext(path) != WDLExt {
			return
		}
		f, err := fl.Load(path)
		if err != nil {
			errs.Add(err)
			return
		}
		result.Files[CleanPath(path)] = f
		return
	}

	entries, err := os.ReadDir(path)
	if err != nil {
		errs.Add(errors.Wrap(err, "failed to load"))
		return
	}

	for _, e := range entries {
		fl.allRec(filepath.Join(path, e.Name()), errs, result, depth+1)
	}
}

// Load returns the file loaded from the given path.
func (fl *FileLoader) Load(path string) (*WDLFile, error) {
	bs, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "failed to load")
	}
	return fl.LoadBytes(CleanPath(path), bs)
}

// LoadReader returns the file read from r and labelled with name.
func (fl *FileLoader) LoadReader(name string, r io.Reader) (*WDLFile, error) {
	bs, err := io.ReadAll(r)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read %s", name)
	}
	return fl.LoadBytes(name, bs)
}

// LoadBytes lexes and parses bs as a workflow document named name.
func (fl *FileLoader) LoadBytes(name string, bs []byte) (*WDLFile, error) {
	if fl.cache != nil {
		if f, ok := fl.cache.Get(name, bs); ok {
			fl.metrics.Counter(metrics.WDLCacheHit).Incr()
			fl.logger.WithFields(map[string]any{"file": name}).Debug("Using cached parse result.")
			return f, nil
		}
	}

	fl.metrics.Histogram(metrics.WDLFileSize).Update(int64(len(bs)))

	fl.metrics.Timer(metrics.WDLLex).Start()
	ts, err := lexer.Lex(string(bs), name)
	fl.metrics.Timer(metrics.WDLLex).Stop()
	if err != nil {
		return nil, err
	}
	fl.metrics.Counter(metrics.WDLTokens).Add(uint64(len(ts)))

	p := parser.NewParser().WithTokens(ts).WithMetrics(fl.metrics)
	if fl.formatter != nil {
		p = p.WithFormatter(fl.formatter)
	}
	tree, err := p.Parse()
	if err != nil {
		return nil, err
	}

	f := &WDLFile{
		Name:   name,
		Raw:    bs,
		Tokens: ts,
		Parsed: parser.Reduce(tree, fl.metrics),
	}

	var nodes uint64
	ast.WalkNodes(f.Parsed, func(*ast.Node) bool {
		nodes++
		return false
	})
	fl.metrics.Counter(metrics.WDLASTNodes).Add(nodes)

	fl.logger.WithFields(map[string]any{
		"file":   name,
		"tokens": len(ts),
	}).Debug("Parsed file.")

	if fl.cache != nil {
		fl.cache.Add(f)
	}
	return f, nil
}

// All returns a Result object loaded (recursively) from the specified paths
// with a default loader.
func All(paths []string) (*Result, error) {
	return NewFileLoader().All(paths)
}

// WDL returns a WDLFile object loaded from the given path.
func WDL(path string) (*WDLFile, error) {
	return NewFileLoader().Load(path)
}

// CleanPath returns the normalized version of a path that can be used as an
// identifier.
func CleanPath(path string) string {
	return strings.TrimPrefix(filepath.ToSlash(filepath.Clean(path)), "./")
}

// Paths returns a sorted list of files contained at path. If recurse is true
// and path is a directory, then Paths will walk the directory structure
// recursively and list files at each level.
func Paths(path string, recurse bool) (paths []string, err error) {
	err = filepath.WalkDir(path, func(f string, _ fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !recurse {
			if path != f && path != filepath.Dir(f) {
				return filepath.SkipDir
			}
		}
		paths = append(paths, f)
		return nil
	})
	return paths, err
}

// Dirs resolves filepaths to directories. It will return a list of unique
// directories.
func Dirs(paths []string) []string {
	unique := map[string]struct{}{}

	for _, path := range paths {
		unique[filepath.Dir(path)] = struct{}{}
	}

	return slices.Sorted(maps.Keys(unique))
}
