// Copyright 2018 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"fmt"
	"io"
	"strings"
)

// Pretty writes an indented, multi-line representation of the AST rooted at
// x to w.
//
// This is function is intended for debug purposes when inspecting ASTs.
func Pretty(w io.Writer, x Value) {
	pp := &prettyPrinter{w: w, indent: "  "}
	pp.write(x, 0)
	pp.printf("\n")
}

// PrettyString returns the output of Pretty as a string.
func PrettyString(x Value) string {
	var sb strings.Builder
	Pretty(&sb, x)
	return sb.String()
}

type prettyPrinter struct {
	w      io.Writer
	indent string
}

func (pp *prettyPrinter) write(x Value, depth int) {
	switch x := x.(type) {
	case *Node:
		if len(x.Attributes) == 0 {
			pp.printf("(%s: )", x.Name)
			return
		}
		pp.printf("(%s:\n", x.Name)
		for i, a := range x.Attributes {
			pp.pad(depth + 1)
			pp.printf("%s=", a.Key)
			pp.write(a.Value, depth+1)
			if i < len(x.Attributes)-1 {
				pp.printf(",")
			}
			pp.printf("\n")
		}
		pp.pad(depth)
		pp.printf(")")
	case List:
		if len(x) == 0 {
			pp.printf("[]")
			return
		}
		pp.printf("[\n")
		for i, v := range x {
			pp.pad(depth + 1)
			pp.write(v, depth+1)
			if i < len(x)-1 {
				pp.printf(",")
			}
			pp.printf("\n")
		}
		pp.pad(depth)
		pp.printf("]")
	default:
		pp.printf("%s", str(x))
	}
}

func (pp *prettyPrinter) pad(depth int) {
	pp.printf("%s", strings.Repeat(pp.indent, depth))
}

func (pp *prettyPrinter) printf(f string, a ...interface{}) {
	fmt.Fprintf(pp.w, f, a...)
}
