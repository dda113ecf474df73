package cmd

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"codetally/internal/domain"
)

func sampleResult() *domain.ScanResult {
	return domain.NewScanResult([]domain.RepositoryReport{
		domain.NewRepositoryReport(
			domain.NewRepositoryRef("/src/r1"),
			domain.AllBranches(),
			[]string{"main", "dev"},
			[]domain.AuthorStat{
				{Author: "bob", Added: 5, Commits: 1},
				{Author: "alice", Added: 1500, Deleted: 10, Commits: 5},
			},
		),
		domain.NewRepositoryReport(domain.NewRepositoryRef("/src/empty"), domain.AllBranches(), nil, nil),
	})
}

func TestRenderScan(t *testing.T) {
	var buf bytes.Buffer

	renderScan(&buf, sampleResult())

	out := buf.String()
	assert.Contains(t, out, "r1")
	assert.Contains(t, out, "/src/r1")
	assert.Contains(t, out, "Branch: all branches, 2 branches")
	assert.Contains(t, out, "alice")
	assert.Contains(t, out, "1,500")
	assert.Contains(t, out, "+1,490")
	assert.Contains(t, out, "No contributors found.")
	assert.Contains(t, out, "Overall statistics")
	assert.Contains(t, out, "1,515")
	assert.Less(t, strings.Index(out, "alice"), strings.Index(out, "bob"))
}

func TestRenderScanNoRepositories(t *testing.T) {
	var buf bytes.Buffer

	renderScan(&buf, domain.NewScanResult(nil))

	assert.Contains(t, buf.String(), "No git repositories found.")
	assert.NotContains(t, buf.String(), "Overall statistics")
}

func TestWriteJSONScanOutput(t *testing.T) {
	result := sampleResult()
	var buf bytes.Buffer

	err := writeJSON(&buf, scanOutput{Outcome: result.Outcome, Repositories: result.Reports, Total: result.Totals})

	require.NoError(t, err)
	var decoded map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &decoded))
	assert.Equal(t, "completed", decoded["outcome"])
	total := decoded["total"].(map[string]any)
	assert.Equal(t, float64(2), total["repositoryCount"])
	assert.Equal(t, float64(1515), total["totalChanges"])
}

func TestFormatSigned(t *testing.T) {
	tests := []struct {
		name string
		n    int
		want string
	}{
		{name: "positive", n: 1234, want: "+1,234"},
		{name: "zero", n: 0, want: "0"},
		{name: "negative", n: -56789, want: "-56,789"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, formatSigned(tt.n))
		})
	}
}

func TestEncodePlain(t *testing.T) {
	event := domain.NewProgressEvent("s1", "Found 2 contributors", domain.SeverityWarning)

	line, err := encodePlain(event)

	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(string(line), "\n"))
	assert.Contains(t, string(line), "Found 2 contributors")
	assert.Contains(t, string(line), event.Timestamp.Local().Format("15:04:05"))
}
