// Copyright 2017 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package loader

import (
	"fmt"
	"strings"

	"github.com/wdltools/wdl/ast"
)

// Errors is a wrapper for multiple loader errors.
type Errors []error

func (e Errors) Error() string {
	if len(e) == 0 {
		return "no error(s)"
	}
	if len(e) == 1 {
		return "1 error occurred during loading: " + e[0].Error()
	}
	buf := make([]string, len(e))
	for i := range buf {
		buf[i] = e[i].Error()
	}
	return fmt.Sprintf("%v errors occurred during loading:\n", len(e)) + strings.Join(buf, "\n")
}

// Add appends err. Lex, parse and nested loader errors are flattened so that
// every entry carries its own location.
func (e *Errors) Add(err error) {
	switch err := err.(type) {
	case Errors:
		*e = append(*e, err...)
	case ast.Errors:
		for _, x := range err {
			*e = append(*e, x)
		}
	default:
		*e = append(*e, err)
	}
}

// Unwrap exposes the individual errors to errors.Is and errors.As.
func (e Errors) Unwrap() []error {
	return e
}
