package export

import (
	"archive/zip"
	"bytes"
	"encoding/csv"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/jmallek/promptstash/internal/model"
)

func testResult() *model.ConsolidationResult {
	base := time.Date(2025, 7, 10, 14, 30, 0, 0, time.UTC)
	temp := 0.7
	rt := 1.5
	prompts := []model.Prompt{
		{
			ID: "p1", Title: "Code Reviewer", Content: "Review this code:",
			Category: "Development", Tags: []string{"code", "review"},
			CreatedAt: base, UpdatedAt: base, UsageCount: 4, IsFavorite: true,
			Versions: []model.PromptVersion{
				{ID: "v1", Content: "Review:", Timestamp: base, Type: model.VersionManual},
			},
			ExecutionHistory: []model.ExecutionHistory{
				{ID: "e1", PromptID: "p1", ExecutedAt: base.Add(time.Hour), Model: "claude-3-5-sonnet-20241022", TokensUsed: 100, EstimatedCost: 0.01, ResponseTime: &rt, Notes: "good"},
			},
		},
		{
			ID: "p2", Title: "Summarizer", Content: "Summarize:",
			Category: "Writing", Tags: []string{},
			CreatedAt: base, UpdatedAt: base,
			ExecutionHistory: []model.ExecutionHistory{
				{ID: "e2", PromptID: "p2", ExecutedAt: base.Add(2 * time.Hour), Model: "claude-3-5-haiku-20241022", TokensUsed: 50, EstimatedCost: 0.002},
			},
		},
	}
	return &model.ConsolidationResult{
		Project: model.Project{
			ID: "proj", Name: "My Project", Description: "test project",
			PromptIDs: []string{"p1", "p2"},
			CreatedAt: base, UpdatedAt: base,
			Settings: model.ProjectSettings{
				DefaultModel:          "claude-3-5-sonnet-20241022",
				DefaultTokenLimit:     4096,
				EstimatedCostPerToken: 0.003,
				Tags:                  []string{"demo"},
				Temperature:           &temp,
			},
		},
		Prompts: prompts,
		ExecutionHistory: []model.ExecutionHistory{
			prompts[0].ExecutionHistory[0],
			prompts[1].ExecutionHistory[0],
		},
		Statistics: model.ProjectStatistics{
			TotalPrompts:              2,
			TotalVersions:             1,
			TotalExecutions:           2,
			TotalTokensUsed:           150,
			TotalCost:                 0.012,
			MostUsedPrompt:            &prompts[0],
			MostExpensiveModel:        "claude-3-5-sonnet-20241022",
			AverageTokensPerExecution: 75,
			ExecutionsByModel: map[string]int{
				"claude-3-5-sonnet-20241022": 1,
				"claude-3-5-haiku-20241022":  1,
			},
			CostByModel: map[string]float64{
				"claude-3-5-sonnet-20241022": 0.01,
				"claude-3-5-haiku-20241022":  0.002,
			},
		},
		GeneratedAt: base.Add(3 * time.Hour),
	}
}

func TestJSON_RoundTrips(t *testing.T) {
	result := testResult()
	data, err := JSON(result)
	require.NoError(t, err)

	var decoded model.ConsolidationResult
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "My Project", decoded.Project.Name)
	require.Len(t, decoded.Prompts, 2)
	require.Len(t, decoded.ExecutionHistory, 2)
	require.Equal(t, 150, decoded.Statistics.TotalTokensUsed)
}

func TestPromptsOnlyJSON_StripsIdentityAndHistory(t *testing.T) {
	data, err := PromptsOnlyJSON(testResult())
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	require.Equal(t, "My Project", decoded["projectName"])

	prompts := decoded["prompts"].([]any)
	require.Len(t, prompts, 2)
	first := prompts[0].(map[string]any)
	require.Equal(t, "Code Reviewer", first["title"])
	require.NotContains(t, first, "id")
	require.NotContains(t, first, "usageCount")
	require.NotContains(t, first, "executionHistory")
}

func TestDetailedReport(t *testing.T) {
	report := DetailedReport(testResult())

	require.Contains(t, report, "# My Project - Full Report")
	require.Contains(t, report, "**Total Prompts:** 2")
	require.Contains(t, report, "**Total Cost:** $0.0120")
	require.Contains(t, report, "**Most Used Prompt:** Code Reviewer (4 uses)")
	require.Contains(t, report, "### 1. Code Reviewer")
	require.Contains(t, report, "### 2. Summarizer")
	require.Contains(t, report, "**claude-3-5-haiku-20241022:** 1 executions")
}

func TestExecutiveSummary(t *testing.T) {
	summary := ExecutiveSummary(testResult())

	require.Contains(t, summary, "# My Project")
	require.Contains(t, summary, "## Quick Stats")
	require.Contains(t, summary, "**2** prompts")
	require.Contains(t, summary, "**Temperature:** 0.7")
	require.Contains(t, summary, "**Tags:** None") // prompt without tags
}

func TestExecutionHistoryCSV(t *testing.T) {
	data, err := ExecutionHistoryCSV(testResult())
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, records, 3)
	require.Equal(t, csvHeaders, records[0])
	require.Equal(t, "Code Reviewer", records[1][0])
	require.Equal(t, "claude-3-5-sonnet-20241022", records[1][1])
	require.Equal(t, "100", records[1][3])
	require.Equal(t, "0.010000", records[1][4])
	require.Equal(t, "1.5", records[1][5])
	require.Equal(t, "N/A", records[2][5])
}

func TestExecutionHistoryCSV_UnresolvedPromptTitle(t *testing.T) {
	result := testResult()
	result.ExecutionHistory = append(result.ExecutionHistory, model.ExecutionHistory{
		ID: "e3", PromptID: "gone", ExecutedAt: time.Now(), Model: "m", TokensUsed: 1,
	})

	data, err := ExecutionHistoryCSV(result)
	require.NoError(t, err)

	records, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Equal(t, "Unknown", records[3][0])
}

func TestHTMLReport(t *testing.T) {
	data, err := HTMLReport(testResult())
	require.NoError(t, err)

	html := string(data)
	require.Contains(t, html, "<!DOCTYPE html>")
	require.Contains(t, html, "<title>My Project - Full Report</title>")
	require.Contains(t, html, "Code Reviewer")
}

func TestZipBundle(t *testing.T) {
	data, err := ZipBundle(testResult())
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)

	names := make([]string, 0, len(r.File))
	for _, f := range r.File {
		names = append(names, f.Name)
	}
	require.Contains(t, names, "README.md")
	require.Contains(t, names, "FULL_REPORT.md")
	require.Contains(t, names, "project-data.json")
	require.Contains(t, names, "prompts/001-code-reviewer.md")
	require.Contains(t, names, "prompts/002-summarizer.md")
	require.Contains(t, names, "execution-history.csv")
	require.Contains(t, names, "PROJECT_SETTINGS.md")
}

func TestZipBundle_NoExecutionsOmitsCSV(t *testing.T) {
	result := testResult()
	result.ExecutionHistory = nil

	data, err := ZipBundle(result)
	require.NoError(t, err)

	r, err := zip.NewReader(bytes.NewReader(data), int64(len(data)))
	require.NoError(t, err)
	for _, f := range r.File {
		require.NotEqual(t, "execution-history.csv", f.Name)
	}
}

func TestWriter_Export(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)

	out, err := w.Export(testResult(), FormatMarkdown, "")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "my-project-report.md"), out.Path)
	require.Greater(t, out.Bytes, 0)

	data, err := os.ReadFile(out.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# My Project - Full Report")

	// No leftover temp files.
	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	for _, e := range entries {
		require.False(t, strings.HasSuffix(e.Name(), ".tmp"))
	}
}

func TestWriter_Export_ExplicitPathAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir)
	path := filepath.Join(dir, "nested", "report.md")

	_, err := w.Export(testResult(), FormatMarkdown, path)
	require.NoError(t, err)

	// Overwriting an existing export works and replaces the content.
	result := testResult()
	result.Project.Name = "Renamed Project"
	_, err = w.Export(result, FormatMarkdown, path)
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Contains(t, string(data), "# Renamed Project - Full Report")
}

func TestWriter_Export_UnknownFormat(t *testing.T) {
	w := NewWriter(t.TempDir())
	_, err := w.Export(testResult(), Format("pdf"), "")
	require.Error(t, err)
}

func TestSlugify(t *testing.T) {
	require.Equal(t, "my-project", Slugify("My Project"))
	require.Equal(t, "a-b-c", Slugify("  A  B\tC "))
}
