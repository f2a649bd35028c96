package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/PaesslerAG/jsonpath"
	"github.com/charmbracelet/lipgloss"
)

const jsonPathPrefix = "jsonpath="

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	mutedStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	okStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
)

type outputFormat struct {
	kind string // pretty | json | jsonpath
	expr string
}

func parseFormat(s string) (outputFormat, error) {
	s = strings.TrimSpace(s)
	switch {
	case s == "" || s == "pretty":
		return outputFormat{kind: "pretty"}, nil
	case s == "json":
		return outputFormat{kind: "json"}, nil
	case strings.HasPrefix(s, jsonPathPrefix):
		expr := strings.TrimSpace(strings.TrimPrefix(s, jsonPathPrefix))
		if expr == "" {
			return outputFormat{}, fmt.Errorf("empty jsonpath expression in --format")
		}
		return outputFormat{kind: "jsonpath", expr: expr}, nil
	default:
		return outputFormat{}, fmt.Errorf("unsupported format %q (expected pretty|json|jsonpath=<expr>)", s)
	}
}

// render writes v using the requested format. pretty handles the human layout.
func render(w io.Writer, format string, v any, pretty func(io.Writer)) error {
	f, err := parseFormat(format)
	if err != nil {
		return err
	}

	switch f.kind {
	case "json":
		return writeJSON(w, v)
	case "jsonpath":
		doc, err := toDocument(v)
		if err != nil {
			return err
		}
		val, err := jsonpath.Get(f.expr, doc)
		if err != nil {
			return fmt.Errorf("jsonpath %q: %w", f.expr, err)
		}
		if s, ok := val.(string); ok {
			_, err = fmt.Fprintln(w, s)
			return err
		}
		return writeJSON(w, val)
	default:
		pretty(w)
		return nil
	}
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// toDocument converts v into the generic map/slice form jsonpath expects.
func toDocument(v any) (any, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return nil, err
	}
	var doc any
	if err := json.Unmarshal(b, &doc); err != nil {
		return nil, err
	}
	return doc, nil
}
