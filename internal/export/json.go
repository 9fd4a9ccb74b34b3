package export

import (
	"encoding/json"
	"time"

	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/model"
)

// JSON serializes the full consolidation snapshot, indented.
func JSON(result *model.ConsolidationResult) ([]byte, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return data, nil
}

// portablePrompt is the reduced prompt shape used by the prompts-only
// export, stripped of ids, counters, and history so it imports cleanly
// into another library.
type portablePrompt struct {
	Title       string               `json:"title"`
	Content     string               `json:"content"`
	Category    string               `json:"category"`
	Tags        []string             `json:"tags"`
	Description string               `json:"description,omitempty"`
	Metadata    model.PromptMetadata `json:"metadata"`
}

type promptsOnlyExport struct {
	ProjectName string           `json:"projectName"`
	ExportedAt  time.Time        `json:"exportedAt"`
	Prompts     []portablePrompt `json:"prompts"`
}

// PromptsOnlyJSON serializes just the member prompts, suitable for
// importing into another project.
func PromptsOnlyJSON(result *model.ConsolidationResult) ([]byte, error) {
	out := promptsOnlyExport{
		ProjectName: result.Project.Name,
		ExportedAt:  result.GeneratedAt,
		Prompts:     make([]portablePrompt, 0, len(result.Prompts)),
	}
	for _, p := range result.Prompts {
		out.Prompts = append(out.Prompts, portablePrompt{
			Title:       p.Title,
			Content:     p.Content,
			Category:    p.Category,
			Tags:        p.Tags,
			Description: p.Description,
			Metadata:    p.Metadata,
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return data, nil
}
