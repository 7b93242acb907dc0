// Copyright 2021 The OPA Authors.  All rights reserved.
// Use of this source code is governed by an Apache2
// license that can be found in the LICENSE file.

// Package logging configures the command line logger from flag values.
package logging

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/wdltools/wdl/logging"
)

// GetLevel parses a level name as accepted by --log-level.
func GetLevel(level string) (logging.Level, error) {
	switch strings.ToLower(level) {
	case "debug":
		return logging.Debug, nil
	case "", "info":
		return logging.Info, nil
	case "warn":
		return logging.Warn, nil
	case "error":
		return logging.Error, nil
	default:
		return logging.Debug, fmt.Errorf("invalid log level: %v", level)
	}
}

// GetFormatter returns the logrus formatter for a --log-format value.
func GetFormatter(format, timestampFormat string) logrus.Formatter {
	switch format {
	case "text":
		return &prettyFormatter{}
	case "json-pretty":
		return &logrus.JSONFormatter{PrettyPrint: true, TimestampFormat: timestampFormat}
	default:
		return &logrus.JSONFormatter{TimestampFormat: timestampFormat}
	}
}

// NewLogger builds a standard logger writing to w.
func NewLogger(w io.Writer, level, format string) (*logging.StandardLogger, error) {
	lvl, err := GetLevel(level)
	if err != nil {
		return nil, err
	}
	l := logging.New()
	l.SetOutput(w)
	l.SetFormatter(GetFormatter(format, ""))
	l.SetLevel(lvl)
	return l, nil
}

// prettyFormatter is a simpler text formatter than logrus.TextFormatter.
// Fields are printed in key order.
type prettyFormatter struct{}

func isJSON(s string) bool {
	var tmp any
	return json.Unmarshal([]byte(s), &tmp) == nil
}

const (
	fieldIndent     = 2
	multiLineIndent = 6
)

func (*prettyFormatter) Format(e *logrus.Entry) ([]byte, error) {
	b := new(bytes.Buffer)

	fmt.Fprintf(b, "[%s] %s\n", strings.ToUpper(e.Level.String()), e.Message)

	keys := make([]string, 0, len(e.Data))
	for k := range e.Data {
		keys = append(keys, k)
	}
	slices.Sort(keys)

	for _, k := range keys {
		val, err := formatValue(e.Data[k])
		if err != nil {
			return nil, err
		}

		b.WriteString(strings.Repeat(" ", fieldIndent))
		b.WriteString(k)
		if strings.Contains(val, "\n") {
			b.WriteString(" = |\n")
			b.WriteString(strings.Repeat(" ", multiLineIndent))
		} else {
			b.WriteString(" = ")
		}
		b.WriteString(val)
		b.WriteString("\n")
	}
	b.WriteByte('\n')
	return b.Bytes(), nil
}

// formatValue keeps multi-line strings as-is and renders everything else as
// indented JSON.
func formatValue(v any) (string, error) {
	s, ok := v.(string)
	switch {
	case ok && strings.Contains(s, "\n"):
		lines := strings.Split(s, "\n")
		for i := 1; i < len(lines); i++ {
			lines[i] = strings.Repeat(" ", multiLineIndent) + lines[i]
		}
		return strings.Join(lines, "\n"), nil
	case ok && isJSON(s):
		var tmp bytes.Buffer
		if err := json.Indent(&tmp, []byte(s), strings.Repeat(" ", multiLineIndent), "  "); err != nil {
			return "", err
		}
		return tmp.String(), nil
	default:
		bs, err := json.MarshalIndent(v, strings.Repeat(" ", multiLineIndent), "  ")
		if err != nil {
			return "", err
		}
		return string(bs), nil
	}
}
