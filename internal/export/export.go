// Package export renders consolidation snapshots into the supported
// output formats and writes them to disk. Exporters never touch the
// stores; they consume a ConsolidationResult and produce files.
package export

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
	"time"

	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/model"
)

// Format names one of the supported export formats.
type Format string

const (
	FormatJSON        Format = "json"
	FormatPromptsJSON Format = "prompts-json"
	FormatMarkdown    Format = "markdown"
	FormatCSV         Format = "csv"
	FormatHTML        Format = "html"
	FormatZip         Format = "zip"
)

// Formats lists every supported format in display order.
func Formats() []Format {
	return []Format{FormatJSON, FormatPromptsJSON, FormatMarkdown, FormatCSV, FormatHTML, FormatZip}
}

// Output describes one written export file.
type Output struct {
	Path       string `json:"path"`
	Format     string `json:"format"`
	Bytes      int    `json:"bytes"`
	ExportedAt int64  `json:"exported_at"`
}

// Writer writes export files into a base directory using atomic
// temp-file-then-rename semantics, so a failed export never clobbers a
// previous one.
type Writer struct {
	dir string
}

// NewWriter returns a Writer rooted at dir.
func NewWriter(dir string) *Writer {
	return &Writer{dir: dir}
}

// Export renders the snapshot in the given format and writes it to
// path. An empty path selects a default name under the writer's base
// directory.
func (w *Writer) Export(result *model.ConsolidationResult, format Format, path string) (*Output, error) {
	var data []byte
	var err error
	switch format {
	case FormatJSON:
		data, err = JSON(result)
	case FormatPromptsJSON:
		data, err = PromptsOnlyJSON(result)
	case FormatMarkdown:
		data = []byte(DetailedReport(result))
	case FormatCSV:
		data, err = ExecutionHistoryCSV(result)
	case FormatHTML:
		data, err = HTMLReport(result)
	case FormatZip:
		data, err = ZipBundle(result)
	default:
		return nil, errors.NewInvalidRequest(fmt.Sprintf("unknown export format %q", format))
	}
	if err != nil {
		return nil, err
	}

	if path == "" {
		path = filepath.Join(w.dir, defaultFilename(result, format))
	}

	if err := w.writeAtomic(path, data); err != nil {
		return nil, err
	}
	return &Output{
		Path:       path,
		Format:     string(format),
		Bytes:      len(data),
		ExportedAt: time.Now().Unix(),
	}, nil
}

// WriteFile writes pre-rendered export data to path with the same
// atomic semantics as Export. An empty path is rejected.
func (w *Writer) WriteFile(path string, data []byte) error {
	if path == "" {
		return errors.NewInvalidRequest("output path is required")
	}
	return w.writeAtomic(path, data)
}

// Dir returns the writer's base directory.
func (w *Writer) Dir() string {
	return w.dir
}

// writeAtomic writes data to a random-suffixed temp file in the target
// directory, then renames it into place. The previous file at path, if
// any, survives every failure mode.
func (w *Writer) writeAtomic(path string, data []byte) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0700); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to create export directory: %w", err))
	}

	randBytes := make([]byte, 8)
	if _, err := rand.Read(randBytes); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to generate temp file name: %w", err))
	}
	tempPath := path + "." + hex.EncodeToString(randBytes) + ".tmp"

	file, err := openFileNoFollow(tempPath, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0600)
	if err != nil {
		return errors.NewInternal(fmt.Errorf("failed to create export file: %w", err))
	}

	success := false
	defer func() {
		if file != nil {
			file.Close()
		}
		if !success {
			os.Remove(tempPath)
		}
	}()

	if _, err := file.Write(data); err != nil {
		return errors.NewInternal(err)
	}
	if err := file.Sync(); err != nil {
		return errors.NewInternal(err)
	}

	// Close before atomic replace (required on Windows; fine elsewhere).
	if err := file.Close(); err != nil {
		return errors.NewInternal(fmt.Errorf("failed to close export file: %w", err))
	}
	file = nil

	// os.Rename would follow a symlink at the destination.
	if info, err := os.Lstat(path); err == nil && info.Mode()&os.ModeSymlink != 0 {
		return errors.NewInternal(fmt.Errorf("export path is a symlink"))
	}

	if err := os.Rename(tempPath, path); err != nil {
		if runtime.GOOS == "windows" {
			if _, statErr := os.Stat(path); statErr == nil {
				return errors.NewInvalidRequest("export destination already exists; overwriting is not supported on Windows yet (choose a new path or delete the existing file)")
			}
		}
		return errors.NewInternal(fmt.Errorf("failed to finalize export: %w", err))
	}

	success = true
	return nil
}

// defaultFilename derives a file name from the project name, format,
// and current date.
func defaultFilename(result *model.ConsolidationResult, format Format) string {
	slug := Slugify(result.Project.Name)
	date := time.Now().Format("2006-01-02")
	switch format {
	case FormatJSON:
		return fmt.Sprintf("%s-%s.json", slug, date)
	case FormatPromptsJSON:
		return fmt.Sprintf("%s-prompts-only.json", slug)
	case FormatMarkdown:
		return fmt.Sprintf("%s-report.md", slug)
	case FormatCSV:
		return fmt.Sprintf("%s-executions.csv", slug)
	case FormatHTML:
		return fmt.Sprintf("%s-report.html", slug)
	case FormatZip:
		return fmt.Sprintf("%s-complete-%s.zip", slug, date)
	default:
		return fmt.Sprintf("%s-%s.txt", slug, date)
	}
}

var nonSlugChars = regexp.MustCompile(`\s+`)

// Slugify lowercases a project name and collapses whitespace runs into
// hyphens, matching the file names earlier exports produced.
func Slugify(name string) string {
	return nonSlugChars.ReplaceAllString(strings.ToLower(strings.TrimSpace(name)), "-")
}
