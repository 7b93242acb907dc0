// Copyright 2016 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package presentation prints results of lexing and parsing in
// human-readable and machine-readable formats.
package presentation

import (
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/olekukonko/tablewriter"
	"sigs.k8s.io/yaml"

	"github.com/wdltools/wdl/ast"
	"github.com/wdltools/wdl/loader"
	"github.com/wdltools/wdl/metrics"
)

// Output contains the errors and metrics to be presented alongside a result.
type Output struct {
	Errors  OutputErrors    `json:"errors,omitempty"`
	Metrics metrics.Metrics `json:"metrics,omitempty"`
	limit   int
}

// WithLimit sets the output limit to set on stringified values.
func (e Output) WithLimit(n int) Output {
	e.limit = n
	return e
}

// NewOutputErrors creates a new slice of OutputError's based
// on the type of error passed in. Known structured types will
// be translated as appropriate, while unknown errors are
// placed into a structured format with their string value.
func NewOutputErrors(err error) []OutputError {
	var errs []OutputError
	if err == nil {
		return errs
	}

	switch typedErr := err.(type) {
	case *ast.Error:
		oe := OutputError{
			Code:    typedErr.Code.String(),
			Message: typedErr.Message,
			err:     typedErr,
		}
		// Assigning a nil pointer would marshal as null.
		if typedErr.Location != nil {
			oe.Location = typedErr.Location
		}
		if typedErr.Details != nil {
			oe.Details = typedErr.Details
		}
		errs = []OutputError{oe}

	// The cases below are wrappers for other errors, format errors
	// recursively on them.
	case ast.Errors:
		for _, e := range typedErr {
			if e != nil {
				errs = append(errs, NewOutputErrors(e)...)
			}
		}
	case loader.Errors:
		for _, e := range typedErr {
			if e != nil {
				errs = append(errs, NewOutputErrors(e)...)
			}
		}
	default:
		// Any errors which don't have a structure we know about
		// are converted to their string representation only.
		errs = []OutputError{{
			Message: err.Error(),
			err:     typedErr,
		}}
		if d, ok := err.(ast.ErrorDetails); ok {
			errs[0].Details = strings.Join(d.Lines(), "\n")
		}
	}
	return errs
}

// OutputErrors is a list of errors encountered
// which are to presented.
type OutputErrors []OutputError

func (e OutputErrors) Error() string {
	if len(e) == 0 {
		return "no error(s)"
	}

	var prefix string
	if len(e) == 1 {
		prefix = "1 error occurred: "
	} else {
		prefix = fmt.Sprintf("%d errors occurred:\n", len(e))
	}

	s := make([]string, 0, len(e))
	for _, err := range e {
		s = append(s, err.Error())
	}

	return prefix + strings.Join(s, "\n")
}

// OutputError provides a common structure for all errors so that the JSON
// output given by the presentation package is consistent and parsable.
type OutputError struct {
	Message  string `json:"message"`
	Code     string `json:"code,omitempty"`
	Location any    `json:"location,omitempty"`
	Details  any    `json:"details,omitempty"`
	err      error
}

func (j OutputError) Error() string {
	return j.err.Error()
}

// JSON writes x to w with indentation.
func JSON(w io.Writer, x any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(x)
}

// YAML writes the JSON encoding of x to w as YAML.
func YAML(w io.Writer, x any) error {
	bs, err := json.Marshal(x)
	if err != nil {
		return err
	}
	bs, err = yaml.JSONToYAML(bs)
	if err != nil {
		return err
	}
	_, err = w.Write(bs)
	return err
}

// Pretty prints the errors and metrics of r to w in a human-readable form.
func Pretty(w io.Writer, r Output) error {
	if len(r.Errors) > 0 {
		if err := prettyError(w, r.Errors); err != nil {
			return err
		}
	}
	if r.Metrics != nil {
		return prettyMetrics(w, r.Metrics, r.limit)
	}
	return nil
}

func prettyError(w io.Writer, errs OutputErrors) error {
	_, err := fmt.Fprintln(w, errs)
	return err
}

func prettyMetrics(w io.Writer, m metrics.Metrics, limit int) error {
	tableMetrics := generateTableMetrics(w)
	populateTableMetrics(m, tableMetrics, limit)
	if tableMetrics.NumLines() > 0 {
		tableMetrics.Render()
	}
	return nil
}

// Tokens prints ts to w as a table of positions, kinds and text.
func Tokens(w io.Writer, ts []*ast.Terminal, limit int) error {
	table := generateTableWithKeys(w, "line", "col", "kind", "text")
	for _, t := range ts {
		table.Append([]string{
			strconv.Itoa(t.Line),
			strconv.Itoa(t.Col),
			t.Kind.String(),
			checkStrLimit(strconv.Quote(t.Text), limit),
		})
	}
	if table.NumLines() > 0 {
		table.Render()
	}
	return nil
}

func checkStrLimit(input string, limit int) string {
	if limit > 0 && len(input) > limit {
		input = input[:limit] + "..."
		return input
	}
	return input
}

func generateTableMetrics(writer io.Writer) *tablewriter.Table {
	return generateTableWithKeys(writer, "metric", "value")
}

func generateTableWithKeys(writer io.Writer, keys ...string) *tablewriter.Table {
	table := tablewriter.NewWriter(writer)
	aligns := make([]int, 0, len(keys))
	hdrs := make([]string, 0, len(keys))
	for _, k := range keys {
		hdrs = append(hdrs, strings.ToUpper(k[:1])+k[1:])
		aligns = append(aligns, tablewriter.ALIGN_LEFT)
	}
	table.SetHeader(hdrs)
	table.SetAutoFormatHeaders(false)
	table.SetAlignment(tablewriter.ALIGN_CENTER)
	table.SetColumnAlignment(aligns)
	return table
}

func populateTableMetrics(m metrics.Metrics, table *tablewriter.Table, prettyLimit int) {
	lines := [][]string{}
	for varName, varValueInterface := range m.All() {
		val, ok := varValueInterface.(map[string]any)
		if !ok {
			varValue := checkStrLimit(fmt.Sprintf("%v", varValueInterface), prettyLimit)
			lines = append(lines, []string{varName, varValue})
			continue
		}
		for k, v := range val {
			newVarName := fmt.Sprintf("%v_%v", varName, k)
			value := checkStrLimit(fmt.Sprintf("%v", v), prettyLimit)
			lines = append(lines, []string{newVarName, value})
		}
	}
	sortMetricRows(lines)
	table.AppendBulk(lines)
}

func sortMetricRows(data [][]string) {
	slices.SortFunc(data, func(a, b []string) int {
		return strings.Compare(a[0], b[0])
	})
}
