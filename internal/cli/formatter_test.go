package cli

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/idelchi/reclaim/internal/reclaim"
)

func TestPrinter_Report(t *testing.T) {
	var buf bytes.Buffer

	p := newPrinter(&buf, Options{Output: "table"})

	err := p.Report(&reclaim.Report{
		TotalBytesFreed: 1536,
		Deleted:         1234,
		Failures: []reclaim.Failure{
			{Path: "/ws/b/node_modules", Reason: "removing \"/ws/b/node_modules\": permission denied"},
		},
	})
	require.NoError(t, err)

	want := strings.Join([]string{
		"",
		"Summary:",
		"Deleted:  1,234 directories",
		"Freed:    1.5 KB",
		"Failed:   1 directories",
		"",
		"The following directories could not be removed:",
		"! /ws/b/node_modules: removing \"/ws/b/node_modules\": permission denied",
		"",
	}, "\n")

	assert.Equal(t, want, trimLines(buf.String()))
}

func TestPrinter_ReportWithoutFailures(t *testing.T) {
	var buf bytes.Buffer

	p := newPrinter(&buf, Options{Output: "table"})
	require.NoError(t, p.Report(&reclaim.Report{Failures: []reclaim.Failure{}}))

	out := buf.String()
	assert.Contains(t, out, "Freed:    0.0 Bytes")
	assert.True(t, strings.HasSuffix(out, "Done.\n"))
}

func TestPrinter_List(t *testing.T) {
	var buf bytes.Buffer

	p := newPrinter(&buf, Options{Output: "table"})

	err := p.List("node_modules", Listing{
		Targets: []ListEntry{
			{Path: "a/node_modules", Size: 1024, RunningTotal: 1024},
			{Path: "b/node_modules", Size: 512, RunningTotal: 1536},
			{Path: "c/node_modules", Error: "permission denied", RunningTotal: 1536},
		},
		TotalBytes: 1536,
	})
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "Found the following node_modules directories:\n")
	assert.Regexp(t, `- a/node_modules\s+1\.0 KB\s+\(total 1\.0 KB\)`, out)
	assert.Regexp(t, `- b/node_modules\s+512\.0 Bytes\s+\(total 1\.5 KB\)`, out)
	assert.Regexp(t, `- c/node_modules\s+\?\s+permission denied`, out)
	assert.Regexp(t, `Total:\s+1\.5 KB in 3 directories`, out)
}

func TestPrinter_NoColorOnBuffers(t *testing.T) {
	var buf bytes.Buffer

	p := newPrinter(&buf, Options{Output: "table"})
	require.NoError(t, p.Targets("node_modules", []string{"x/node_modules"}))

	assert.NotContains(t, buf.String(), "\x1b[")
}

func TestPrintJSON(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, PrintJSON(reclaim.Fold(nil, false), &buf))
	assert.JSONEq(t, `{"total_bytes_freed":0,"deleted":0,"failures":[]}`, buf.String())
}

// trimLines strips trailing spaces that tabwriter leaves after the last cell.
func trimLines(s string) string {
	lines := strings.Split(s, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}

	return strings.Join(lines, "\n")
}
