package output

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSummary() *RunSummary {
	return &RunSummary{
		RunID:     "run-123",
		BaseURL:   "http://localhost:8000",
		TargetID:  "victim-uuid",
		StartedAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		Duration:  3200 * time.Millisecond,
		State:     "done",
		Outcomes: []IdentityOutcome{
			{Email: "reporter1@fitlink-qa.test", RegisterStatus: 201, LoginStatus: 200, TokenObtained: true, ReportStatus: 200},
			{Email: "reporter2@fitlink-qa.test", RegisterStatus: 400, LoginStatus: 200, TokenObtained: true, ReportStatus: 200},
			{Email: "reporter3@fitlink-qa.test", RegisterStatus: 201, LoginStatus: 200},
		},
	}
}

func TestReportsFiled(t *testing.T) {
	s := testSummary()
	assert.Equal(t, 2, s.ReportsFiled())
}

func TestWriteMarkdownSummary(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteMarkdownSummary(&buf, testSummary()))

	out := buf.String()
	assert.Contains(t, out, "# Report-Flow Run Summary")
	assert.Contains(t, out, "run-123")
	assert.Contains(t, out, "victim-uuid")
	assert.Contains(t, out, "reporter1@fitlink-qa.test")
	assert.Contains(t, out, "reporter3@fitlink-qa.test")
	assert.Contains(t, out, "Reports filed: 2 of 3 reporters.")
}

func TestSaveMarkdownSummary(t *testing.T) {
	path := filepath.Join(t.TempDir(), "reports", "run.md")
	require.NoError(t, SaveMarkdownSummary(path, testSummary()))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Report-Flow Run Summary")
}
