package harness

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Contributor mirrors one entry of a report's contributors list
type Contributor struct {
	Added        int    `json:"added"`
	Author       string `json:"author"`
	Commits      int    `json:"commits"`
	Deleted      int    `json:"deleted"`
	TotalChanges int    `json:"totalChanges"`
}

// Report mirrors the JSON rendering of one repository report
type Report struct {
	Branch       string        `json:"branch"`
	BranchScope  string        `json:"branchScope"`
	Branches     []string      `json:"branches"`
	Contributors []Contributor `json:"contributors"`
	Name         string        `json:"name"`
	Path         string        `json:"path"`
}

// Authors returns contributor names in report order
func (r Report) Authors() []string {
	authors := make([]string, 0, len(r.Contributors))
	for _, c := range r.Contributors {
		authors = append(authors, c.Author)
	}
	return authors
}

// Totals mirrors the aggregate block of `scan --format json`
type Totals struct {
	ContributorCount int `json:"contributorCount"`
	RepositoryCount  int `json:"repositoryCount"`
	TotalAdded       int `json:"totalAdded"`
	TotalChanges     int `json:"totalChanges"`
	TotalCommits     int `json:"totalCommits"`
	TotalDeleted     int `json:"totalDeleted"`
}

// Scan mirrors the output of `scan --format json`
type Scan struct {
	Outcome      string   `json:"outcome"`
	Repositories []Report `json:"repositories"`
	Total        Totals   `json:"total"`
}

// AssertSuccess verifies the command exited 0.
func AssertSuccess(tb testing.TB, result CommandResult) {
	tb.Helper()
	AssertExitCode(tb, result, 0)
}

// AssertExitCode verifies the command exited with a specific code.
func AssertExitCode(tb testing.TB, result CommandResult, expected int) {
	tb.Helper()
	assert.Equal(tb, expected, result.ExitCode,
		"Expected exit code %d, got %d.\nStdout: %s\nStderr: %s",
		expected, result.ExitCode, result.Stdout, result.Stderr)
}

// AssertStdoutContains verifies stdout contains the expected string.
func AssertStdoutContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stdout, expected, "Actual stdout: %s", result.Stdout)
}

// AssertStdoutNotContains verifies stdout does not contain the string.
func AssertStdoutNotContains(tb testing.TB, result CommandResult, unexpected string) {
	tb.Helper()
	assert.NotContains(tb, result.Stdout, unexpected, "Actual stdout: %s", result.Stdout)
}

// AssertStderrContains verifies the progress stream on stderr carries the expected message.
func AssertStderrContains(tb testing.TB, result CommandResult, expected string) {
	tb.Helper()
	assert.Contains(tb, result.Stderr, expected, "Actual stderr: %s", result.Stderr)
}

// AssertValidJSON verifies stdout is valid JSON and unmarshals it into target.
func AssertValidJSON(tb testing.TB, result CommandResult, target any) {
	tb.Helper()
	err := json.Unmarshal([]byte(result.Stdout), target)
	require.NoError(tb, err, "Expected valid JSON.\nStdout: %s", result.Stdout)
}

// DecodeScan requires a successful JSON scan and returns its decoded output.
func DecodeScan(tb testing.TB, result CommandResult) Scan {
	tb.Helper()
	AssertSuccess(tb, result)
	var scan Scan
	AssertValidJSON(tb, result, &scan)
	return scan
}

// DecodeReport requires a successful JSON repo run and returns the single report.
func DecodeReport(tb testing.TB, result CommandResult) Report {
	tb.Helper()
	AssertSuccess(tb, result)
	var report Report
	AssertValidJSON(tb, result, &report)
	return report
}

// AssertTotals verifies the aggregate block and that it agrees with the
// per-repository contributor rows it was folded from.
func AssertTotals(tb testing.TB, scan Scan, expected Totals) {
	tb.Helper()
	assert.Equal(tb, expected, scan.Total)

	var folded Totals
	authors := make(map[string]struct{})
	for _, report := range scan.Repositories {
		folded.RepositoryCount++
		for _, c := range report.Contributors {
			authors[c.Author] = struct{}{}
			folded.TotalAdded += c.Added
			folded.TotalDeleted += c.Deleted
			folded.TotalCommits += c.Commits
		}
	}
	folded.ContributorCount = len(authors)
	folded.TotalChanges = folded.TotalAdded + folded.TotalDeleted
	assert.Equal(tb, folded, scan.Total, "totals do not match the repository reports")
}
