package model

import "time"

// VersionType distinguishes how a prompt version was produced.
type VersionType string

const (
	VersionManual    VersionType = "manual"
	VersionOptimized VersionType = "optimized"
)

// Prompt is a stored, reusable text template for driving a language model.
// JSON field names match the persisted document schema.
type Prompt struct {
	// ID is a ULID that uniquely identifies this prompt
	ID string `json:"id"`

	// Title and Content are the only required fields
	Title   string `json:"title"`
	Content string `json:"content"`

	// Category references a Category by name, not by id. Renaming or
	// deleting a category leaves prompts pointing at the old name;
	// readers treat an unresolvable name as uncategorized.
	Category string `json:"category"`

	// Tags preserve insertion order for display; duplicates are forbidden
	Tags []string `json:"tags"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	IsFavorite bool `json:"isFavorite"`

	// UsageCount is a monotonic counter bumped on each explicit use;
	// bumping it does not touch UpdatedAt
	UsageCount int `json:"usageCount"`

	// Versions is append-only; entries are never edited in place
	Versions []PromptVersion `json:"versions"`

	Metadata PromptMetadata `json:"metadata"`

	// ProjectID is a soft back-reference; it is not the source of truth
	// for project membership (Project.PromptIDs is)
	ProjectID string `json:"projectId,omitempty"`

	ExecutionHistory []ExecutionHistory `json:"executionHistory"`

	PerformanceMetrics *PerformanceMetrics `json:"performanceMetrics,omitempty"`

	Description string `json:"description,omitempty"`
}

// PromptVersion is an immutable snapshot of a prompt's content.
type PromptVersion struct {
	ID        string      `json:"id"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
	Type      VersionType `json:"type"`
}

// PromptMetadata carries execution hints attached to a prompt.
type PromptMetadata struct {
	Model       string   `json:"model,omitempty"`
	Temperature *float64 `json:"temperature,omitempty"`
	MaxTokens   int      `json:"maxTokens,omitempty"`
}

// PerformanceMetrics is an optional imported aggregate. The core never
// computes it; consolidation is the statistics authority.
type PerformanceMetrics struct {
	AverageTokens       float64 `json:"averageTokens"`
	TotalExecutions     int     `json:"totalExecutions"`
	TotalCost           float64 `json:"totalCost"`
	AverageResponseTime float64 `json:"averageResponseTime"`
	SuccessRate         float64 `json:"successRate"`
}

// ExecutionHistory records one invocation of a prompt against a model.
type ExecutionHistory struct {
	ID            string    `json:"id"`
	PromptID      string    `json:"promptId"`
	ExecutedAt    time.Time `json:"executedAt"`
	Model         string    `json:"model"`
	TokensUsed    int       `json:"tokensUsed"`
	EstimatedCost float64   `json:"estimatedCost"`
	ResponseTime  *float64  `json:"responseTime,omitempty"`
	Notes         string    `json:"notes,omitempty"`
}

// Category is a named grouping with a display color and optional icon.
type Category struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
	Icon  string `json:"icon,omitempty"`
}

// Collection is a user-curated, cross-cutting set of prompt references,
// independent of projects.
type Collection struct {
	ID          string    `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	PromptIDs   []string  `json:"promptIds"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ProjectSettings holds a project's default execution parameters.
type ProjectSettings struct {
	DefaultModel          string   `json:"defaultModel"`
	DefaultTokenLimit     int      `json:"defaultTokenLimit"`
	EstimatedCostPerToken float64  `json:"estimatedCostPerToken"`
	Tags                  []string `json:"tags"`
	Temperature           *float64 `json:"temperature,omitempty"`
}

// ProjectStats is the cached per-project aggregate. Only TotalPrompts is
// maintained by the project store; the execution-derived fields are owned
// by the consolidation engine and recomputed on demand.
type ProjectStats struct {
	TotalPrompts            int        `json:"totalPrompts"`
	TotalExecutions         int        `json:"totalExecutions"`
	TotalCost               float64    `json:"totalCost"`
	AverageCostPerExecution float64    `json:"averageCostPerExecution"`
	LastExecuted            *time.Time `json:"lastExecuted,omitempty"`
}

// Project is a named workspace grouping prompts by id. PromptIDs have set
// semantics and may contain stale ids if a prompt was deleted; readers
// filter unresolvable ids rather than failing.
type Project struct {
	ID          string          `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	PromptIDs   []string        `json:"promptIds"`
	CreatedAt   time.Time       `json:"createdAt"`
	UpdatedAt   time.Time       `json:"updatedAt"`
	Settings    ProjectSettings `json:"settings"`
	Stats       ProjectStats    `json:"stats"`
	Color       string          `json:"color,omitempty"`
	Icon        string          `json:"icon,omitempty"`
}

// ProjectStatistics is the full aggregate computed by consolidation.
type ProjectStatistics struct {
	TotalPrompts              int                `json:"totalPrompts"`
	TotalVersions             int                `json:"totalVersions"`
	TotalExecutions           int                `json:"totalExecutions"`
	TotalTokensUsed           int                `json:"totalTokensUsed"`
	TotalCost                 float64            `json:"totalCost"`
	MostUsedPrompt            *Prompt            `json:"mostUsedPrompt,omitempty"`
	MostExpensiveModel        string             `json:"mostExpensiveModel,omitempty"`
	AverageTokensPerExecution float64            `json:"averageTokensPerExecution"`
	ExecutionsByModel         map[string]int     `json:"executionsByModel"`
	CostByModel               map[string]float64 `json:"costByModel"`
}

// ConsolidationResult is a disposable snapshot of one project joined with
// its member prompts and their flattened execution history. It has no
// lifecycle of its own; exporters consume it and throw it away.
type ConsolidationResult struct {
	Project          Project            `json:"project"`
	Prompts          []Prompt           `json:"prompts"`
	ExecutionHistory []ExecutionHistory `json:"executionHistory"`
	Statistics       ProjectStatistics  `json:"statistics"`
	GeneratedAt      time.Time          `json:"generatedAt"`
}
