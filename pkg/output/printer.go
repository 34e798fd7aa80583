// Package output provides operator-facing result formatting and reporting.
package output

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"
)

// Printer writes phase banners and raw backend responses to the operator.
// Responses are pretty-printed when they are JSON and passed through
// verbatim otherwise; nothing is interpreted.
type Printer struct {
	out io.Writer
}

// NewPrinter creates a printer writing to the given writer.
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// Banner prints a phase banner.
func (p *Printer) Banner(phase string) {
	fmt.Fprintf(p.out, "\n=== %s ===\n", strings.ToUpper(phase))
}

// Result prints one raw backend response under a short label.
func (p *Printer) Result(label string, statusCode int, body []byte) {
	fmt.Fprintf(p.out, "--- %s (HTTP %d)\n%s\n", label, statusCode, PrettyJSON(body))
}

// Infof prints a plain informational line.
func (p *Printer) Infof(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

// Reminder prints the closing operator instruction. The tool never reads
// the backend's store itself, so confirming the blocked flag stays a
// manual (or `reportflow verify`) step.
func (p *Printer) Reminder(targetID string) {
	fmt.Fprintf(p.out, "\nDone. Check that usuarios.is_blocked is set for target %s,\n", targetID)
	fmt.Fprintf(p.out, "or run: reportflow verify --expect-blocked\n")
}

// PrettyJSON indents a JSON body for display. Non-JSON bodies are returned
// unchanged so proxy error pages and the like stay visible.
func PrettyJSON(body []byte) string {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return "(empty body)"
	}

	var buf bytes.Buffer
	if err := json.Indent(&buf, trimmed, "", "  "); err != nil {
		return string(trimmed)
	}
	return buf.String()
}
