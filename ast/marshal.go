// Copyright 2026 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

package ast

import (
	"bytes"
	"encoding/json"
)

// MarshalJSON encodes the node as {"type": name, "attributes": {...}} with
// the attributes in node order.
func (n *Node) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString(`{"type":`)
	if err := writeJSON(&buf, n.Name); err != nil {
		return nil, err
	}
	buf.WriteString(`,"attributes":{`)
	for i, a := range n.Attributes {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, a.Key); err != nil {
			return nil, err
		}
		buf.WriteByte(':')
		if err := writeJSON(&buf, a.Value); err != nil {
			return nil, err
		}
	}
	buf.WriteString("}}")
	return buf.Bytes(), nil
}

// MarshalJSON encodes the list as an array. Empty lists encode as [].
func (l List) MarshalJSON() ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('[')
	for i, v := range l {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeJSON(&buf, v); err != nil {
			return nil, err
		}
	}
	buf.WriteByte(']')
	return buf.Bytes(), nil
}

// MarshalJSON encodes Null as null.
func (Null) MarshalJSON() ([]byte, error) {
	return []byte("null"), nil
}

type terminalJSON struct {
	Terminal     string `json:"terminal"`
	Resource     string `json:"resource"`
	SourceString string `json:"source_string"`
	Line         int    `json:"line"`
	Col          int    `json:"col"`
}

// MarshalJSON encodes the terminal with its kind, text and position.
func (t *Terminal) MarshalJSON() ([]byte, error) {
	return json.Marshal(terminalJSON{
		Terminal:     t.Kind.String(),
		Resource:     t.Resource,
		SourceString: t.Text,
		Line:         t.Line,
		Col:          t.Col,
	})
}

func writeJSON(buf *bytes.Buffer, x interface{}) error {
	bs, err := json.Marshal(x)
	if err != nil {
		return err
	}
	buf.Write(bs)
	return nil
}
