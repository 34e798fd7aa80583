package output

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/nao1215/markdown"
)

// RunSummary is the per-run record written as a markdown report. It mirrors
// what the operator saw on stdout, in a form that can be attached to a
// verification ticket.
type RunSummary struct {
	RunID     string
	BaseURL   string
	TargetID  string
	StartedAt time.Time
	Duration  time.Duration
	State     string
	Outcomes  []IdentityOutcome
}

// IdentityOutcome records one reporter's progress through the phases.
// Zero status codes mean the phase was never reached.
type IdentityOutcome struct {
	Email          string
	RegisterStatus int
	LoginStatus    int
	TokenObtained  bool
	ReportStatus   int
}

// Reported returns whether the report call for this identity was issued.
func (o IdentityOutcome) Reported() bool {
	return o.ReportStatus != 0
}

// WriteMarkdownSummary renders the run summary as markdown.
func WriteMarkdownSummary(w io.Writer, s *RunSummary) error {
	md := markdown.NewMarkdown(w)

	md.H1("Report-Flow Run Summary")
	md.PlainText("")
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows: [][]string{
			{"Run ID", "`" + s.RunID + "`"},
			{"Backend", s.BaseURL},
			{"Target", "`" + s.TargetID + "`"},
			{"Started", s.StartedAt.Format("2006-01-02 15:04:05 MST")},
			{"Duration", s.Duration.Round(time.Millisecond).String()},
			{"Outcome", s.State},
		},
	})
	md.PlainText("")

	md.H2("Reporters")
	md.PlainText("")
	rows := make([][]string, 0, len(s.Outcomes))
	for _, o := range s.Outcomes {
		rows = append(rows, []string{
			o.Email,
			statusCell(o.RegisterStatus),
			statusCell(o.LoginStatus),
			boolCell(o.TokenObtained),
			statusCell(o.ReportStatus),
		})
	}
	md.Table(markdown.TableSet{
		Header: []string{"Email", "Register", "Login", "Token", "Report"},
		Rows:   rows,
	})
	md.PlainText("")

	md.PlainText(fmt.Sprintf("Reports filed: %d of %d reporters.", s.ReportsFiled(), len(s.Outcomes)))
	md.PlainText("Confirm the target's blocked state in the backend store or via `reportflow verify`.")

	return md.Build()
}

// SaveMarkdownSummary writes the summary to a file, creating parent
// directories as needed.
func SaveMarkdownSummary(path string, s *RunSummary) error {
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create summary directory: %w", err)
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create summary file: %w", err)
	}
	defer f.Close()

	return WriteMarkdownSummary(f, s)
}

// ReportsFiled counts how many report calls were issued.
func (s *RunSummary) ReportsFiled() int {
	n := 0
	for _, o := range s.Outcomes {
		if o.Reported() {
			n++
		}
	}
	return n
}

func statusCell(code int) string {
	if code == 0 {
		return "-"
	}
	return strconv.Itoa(code)
}

func boolCell(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
