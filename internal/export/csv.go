package export

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"strconv"
	"time"

	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/model"
)

// csvHeaders is the fixed column set of the execution history CSV.
var csvHeaders = []string{
	"Prompt Title", "Model", "Date", "Tokens Used", "Estimated Cost", "Response Time", "Notes",
}

// ExecutionHistoryCSV renders the flattened execution history as CSV.
// Rows keep the snapshot's order (oldest first); executions whose prompt
// no longer resolves get the title "Unknown".
func ExecutionHistoryCSV(result *model.ConsolidationResult) ([]byte, error) {
	titleByID := make(map[string]string, len(result.Prompts))
	for _, p := range result.Prompts {
		titleByID[p.ID] = p.Title
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write(csvHeaders); err != nil {
		return nil, errors.NewInternal(err)
	}

	for _, e := range result.ExecutionHistory {
		title, ok := titleByID[e.PromptID]
		if !ok {
			title = "Unknown"
		}
		responseTime := "N/A"
		if e.ResponseTime != nil {
			responseTime = strconv.FormatFloat(*e.ResponseTime, 'f', -1, 64)
		}
		row := []string{
			title,
			e.Model,
			e.ExecutedAt.UTC().Format(time.RFC3339),
			strconv.Itoa(e.TokensUsed),
			fmt.Sprintf("%.6f", e.EstimatedCost),
			responseTime,
			e.Notes,
		}
		if err := w.Write(row); err != nil {
			return nil, errors.NewInternal(err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, errors.NewInternal(err)
	}
	return buf.Bytes(), nil
}
