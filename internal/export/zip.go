package export

import (
	"archive/zip"
	"bytes"
	"fmt"
	"regexp"
	"strings"

	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/model"
)

// ZipBundle renders the complete project bundle: executive summary,
// full report, raw JSON snapshot, one Markdown file per prompt, the
// execution history CSV, and the settings document.
func ZipBundle(result *model.ConsolidationResult) ([]byte, error) {
	var buf bytes.Buffer
	w := zip.NewWriter(&buf)

	add := func(name string, data []byte) error {
		f, err := w.Create(name)
		if err != nil {
			return errors.NewInternal(err)
		}
		if _, err := f.Write(data); err != nil {
			return errors.NewInternal(err)
		}
		return nil
	}

	if err := add("README.md", []byte(ExecutiveSummary(result))); err != nil {
		return nil, err
	}
	if err := add("FULL_REPORT.md", []byte(DetailedReport(result))); err != nil {
		return nil, err
	}

	jsonData, err := JSON(result)
	if err != nil {
		return nil, err
	}
	if err := add("project-data.json", jsonData); err != nil {
		return nil, err
	}

	for i, p := range result.Prompts {
		name := fmt.Sprintf("prompts/%03d-%s.md", i+1, promptFilename(p.Title))
		if err := add(name, []byte(PromptDocument(p))); err != nil {
			return nil, err
		}
	}

	if len(result.ExecutionHistory) > 0 {
		csvData, err := ExecutionHistoryCSV(result)
		if err != nil {
			return nil, err
		}
		if err := add("execution-history.csv", csvData); err != nil {
			return nil, err
		}
	}

	if err := add("PROJECT_SETTINGS.md", []byte(SettingsDocument(result))); err != nil {
		return nil, err
	}

	if err := w.Close(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return buf.Bytes(), nil
}

var nonFilenameChars = regexp.MustCompile(`[^a-zA-Z0-9]`)

// promptFilename sanitizes a prompt title for use as a bundle file name,
// truncated to 50 characters.
func promptFilename(title string) string {
	name := strings.ToLower(nonFilenameChars.ReplaceAllString(title, "-"))
	if len(name) > 50 {
		name = name[:50]
	}
	return name
}
