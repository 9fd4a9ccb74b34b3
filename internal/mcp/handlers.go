package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jmallek/promptstash/internal/config"
	"github.com/jmallek/promptstash/internal/consolidate"
	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/export"
	"github.com/jmallek/promptstash/internal/model"
	"github.com/jmallek/promptstash/internal/store"
)

// Handlers holds dependencies for MCP tool handlers.
type Handlers struct {
	prompts  *store.PromptStore
	projects *store.ProjectStore
	writer   *export.Writer
	cfg      *config.Config
}

// NewHandlers creates a new Handlers instance.
func NewHandlers(prompts *store.PromptStore, projects *store.ProjectStore, writer *export.Writer, cfg *config.Config) *Handlers {
	return &Handlers{prompts: prompts, projects: projects, writer: writer, cfg: cfg}
}

// Request types for each tool

// PromptAddRequest represents the arguments for prompt_add.
type PromptAddRequest struct {
	Title       string   `json:"title"`
	Content     string   `json:"content"`
	Category    string   `json:"category,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Description string   `json:"description,omitempty"`
	Favorite    bool     `json:"favorite,omitempty"`
	Model       string   `json:"model,omitempty"`
}

// PromptIDRequest covers tools that take just a prompt id.
type PromptIDRequest struct {
	ID string `json:"id"`
}

// PromptUpdateRequest represents the arguments for prompt_update.
type PromptUpdateRequest struct {
	ID          string    `json:"id"`
	Title       *string   `json:"title,omitempty"`
	Content     *string   `json:"content,omitempty"`
	Category    *string   `json:"category,omitempty"`
	Tags        *[]string `json:"tags,omitempty"`
	Description *string   `json:"description,omitempty"`
}

// PromptVersionAddRequest represents the arguments for prompt_version_add.
type PromptVersionAddRequest struct {
	ID      string `json:"id"`
	Content string `json:"content"`
	Type    string `json:"type,omitempty"`
}

// PromptListRequest represents the arguments for prompt_list.
type PromptListRequest struct {
	Query    string   `json:"query,omitempty"`
	Category string   `json:"category,omitempty"`
	Tags     []string `json:"tags,omitempty"`
	Sort     string   `json:"sort,omitempty"`
}

// RecordExecutionRequest represents the arguments for prompt_record_execution.
type RecordExecutionRequest struct {
	PromptID      string   `json:"prompt_id"`
	Model         string   `json:"model"`
	TokensUsed    int      `json:"tokens_used,omitempty"`
	EstimatedCost float64  `json:"estimated_cost,omitempty"`
	ResponseTime  *float64 `json:"response_time,omitempty"`
	Notes         string   `json:"notes,omitempty"`
}

// CollectionCreateRequest represents the arguments for collection_create.
type CollectionCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// CollectionUpdateRequest represents the arguments for collection_update.
type CollectionUpdateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
}

// CollectionMemberRequest covers collection membership tools.
type CollectionMemberRequest struct {
	CollectionID string `json:"collection_id"`
	PromptID     string `json:"prompt_id"`
}

// CategoryCreateRequest represents the arguments for category_create.
type CategoryCreateRequest struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"`
	Icon  string `json:"icon,omitempty"`
}

// CategoryUpdateRequest represents the arguments for category_update.
type CategoryUpdateRequest struct {
	ID    string  `json:"id"`
	Name  *string `json:"name,omitempty"`
	Color *string `json:"color,omitempty"`
	Icon  *string `json:"icon,omitempty"`
}

// IDRequest covers tools that take a generic id argument.
type IDRequest struct {
	ID string `json:"id"`
}

// ProjectCreateRequest represents the arguments for project_create.
type ProjectCreateRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// ProjectUpdateRequest represents the arguments for project_update.
type ProjectUpdateRequest struct {
	ID          string  `json:"id"`
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
	Icon        *string `json:"icon,omitempty"`
}

// ProjectSettingsRequest represents the arguments for project_update_settings.
type ProjectSettingsRequest struct {
	ID                    string    `json:"id"`
	DefaultModel          *string   `json:"default_model,omitempty"`
	DefaultTokenLimit     *int      `json:"default_token_limit,omitempty"`
	EstimatedCostPerToken *float64  `json:"estimated_cost_per_token,omitempty"`
	Tags                  *[]string `json:"tags,omitempty"`
	Temperature           *float64  `json:"temperature,omitempty"`
}

// ProjectMemberRequest covers project membership tools.
type ProjectMemberRequest struct {
	ProjectID string `json:"project_id"`
	PromptID  string `json:"prompt_id"`
}

// ConsolidateRequest represents the arguments for project_consolidate.
type ConsolidateRequest struct {
	ID     string `json:"id"`
	Format string `json:"format,omitempty"`
	Path   string `json:"path,omitempty"`
}

// LibraryExportRequest represents the arguments for library_export.
type LibraryExportRequest struct {
	Path string `json:"path,omitempty"`
}

// LibraryImportRequest represents the arguments for library_import.
type LibraryImportRequest struct {
	Path string `json:"path"`
}

// Prompt handlers

// HandlePromptAdd handles the prompt_add tool call.
func (h *Handlers) HandlePromptAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptAddRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.prompts.AddPrompt(store.PromptInput{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		Tags:        input.Tags,
		Description: input.Description,
		IsFavorite:  input.Favorite,
		Metadata:    model.PromptMetadata{Model: input.Model},
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandlePromptGet handles the prompt_get tool call.
func (h *Handlers) HandlePromptGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptIDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.prompts.GetPrompt(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandlePromptUpdate handles the prompt_update tool call.
func (h *Handlers) HandlePromptUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptUpdateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.prompts.UpdatePrompt(input.ID, store.PromptUpdate{
		Title:       input.Title,
		Content:     input.Content,
		Category:    input.Category,
		Tags:        input.Tags,
		Description: input.Description,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandlePromptDelete handles the prompt_delete tool call.
func (h *Handlers) HandlePromptDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptIDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.prompts.DeletePrompt(input.ID); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"deleted": true, "id": input.ID})
}

// HandlePromptDuplicate handles the prompt_duplicate tool call.
func (h *Handlers) HandlePromptDuplicate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptIDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.prompts.DuplicatePrompt(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandlePromptFavorite handles the prompt_favorite tool call.
func (h *Handlers) HandlePromptFavorite(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptIDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.prompts.ToggleFavorite(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandlePromptUse handles the prompt_use tool call.
func (h *Handlers) HandlePromptUse(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptIDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.prompts.IncrementUsageCount(input.ID); err != nil {
		return errorResult(err), nil
	}
	p, err := h.prompts.GetPrompt(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandlePromptVersionAdd handles the prompt_version_add tool call.
func (h *Handlers) HandlePromptVersionAdd(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptVersionAddRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	versionType := model.VersionManual
	if input.Type != "" {
		versionType = model.VersionType(input.Type)
	}

	v, err := h.prompts.AddVersion(input.ID, input.Content, versionType)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(v)
}

// HandlePromptList handles the prompt_list tool call.
func (h *Handlers) HandlePromptList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[PromptListRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	sortMode := store.SortRecent
	switch input.Sort {
	case "", "recent":
	case "popular":
		sortMode = store.SortPopular
	case "favorites":
		sortMode = store.SortFavorites
	default:
		return errorResult(errors.NewInvalidRequest("sort must be one of: recent, popular, favorites")), nil
	}

	prompts := store.FilterPrompts(h.prompts.Prompts(), store.Filter{
		Query:    input.Query,
		Category: input.Category,
		Tags:     input.Tags,
		Sort:     sortMode,
	})
	return successResult(map[string]any{"prompts": prompts, "count": len(prompts)})
}

// HandlePromptRecordExecution handles the prompt_record_execution tool call.
func (h *Handlers) HandlePromptRecordExecution(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[RecordExecutionRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	exec, err := h.prompts.RecordExecution(store.ExecutionInput{
		PromptID:      input.PromptID,
		Model:         input.Model,
		TokensUsed:    input.TokensUsed,
		EstimatedCost: input.EstimatedCost,
		ResponseTime:  input.ResponseTime,
		Notes:         input.Notes,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(exec)
}

// Collection handlers

// HandleCollectionCreate handles the collection_create tool call.
func (h *Handlers) HandleCollectionCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CollectionCreateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	c, err := h.prompts.CreateCollection(input.Name, input.Description)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(c)
}

// HandleCollectionUpdate handles the collection_update tool call.
func (h *Handlers) HandleCollectionUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CollectionUpdateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	c, err := h.prompts.UpdateCollection(input.ID, store.CollectionUpdate{
		Name:        input.Name,
		Description: input.Description,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(c)
}

// HandleCollectionDelete handles the collection_delete tool call.
func (h *Handlers) HandleCollectionDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.prompts.DeleteCollection(input.ID); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"deleted": true, "id": input.ID})
}

// HandleCollectionAddPrompt handles the collection_add_prompt tool call.
func (h *Handlers) HandleCollectionAddPrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CollectionMemberRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.prompts.AddToCollection(input.CollectionID, input.PromptID); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"collection_id": input.CollectionID, "prompt_id": input.PromptID})
}

// HandleCollectionRemovePrompt handles the collection_remove_prompt tool call.
func (h *Handlers) HandleCollectionRemovePrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CollectionMemberRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.prompts.RemoveFromCollection(input.CollectionID, input.PromptID); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"collection_id": input.CollectionID, "prompt_id": input.PromptID})
}

// HandleCollectionList handles the collection_list tool call.
func (h *Handlers) HandleCollectionList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	collections := h.prompts.Collections()
	return successResult(map[string]any{"collections": collections, "count": len(collections)})
}

// Category handlers

// HandleCategoryCreate handles the category_create tool call.
func (h *Handlers) HandleCategoryCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CategoryCreateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	c, err := h.prompts.CreateCategory(input.Name, input.Color, input.Icon)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(c)
}

// HandleCategoryUpdate handles the category_update tool call.
func (h *Handlers) HandleCategoryUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[CategoryUpdateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	c, err := h.prompts.UpdateCategory(input.ID, store.CategoryUpdate{
		Name:  input.Name,
		Color: input.Color,
		Icon:  input.Icon,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(c)
}

// HandleCategoryDelete handles the category_delete tool call.
func (h *Handlers) HandleCategoryDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.prompts.DeleteCategory(input.ID); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"deleted": true, "id": input.ID})
}

// HandleCategoryList handles the category_list tool call.
func (h *Handlers) HandleCategoryList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	categories := h.prompts.Categories()
	return successResult(map[string]any{"categories": categories, "count": len(categories)})
}

// Project handlers

// HandleProjectCreate handles the project_create tool call.
func (h *Handlers) HandleProjectCreate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ProjectCreateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.projects.CreateProject(input.Name, input.Description)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandleProjectGet handles the project_get tool call.
func (h *Handlers) HandleProjectGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.projects.ProjectByID(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandleProjectUpdate handles the project_update tool call.
func (h *Handlers) HandleProjectUpdate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ProjectUpdateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.projects.UpdateProject(input.ID, store.ProjectUpdate{
		Name:        input.Name,
		Description: input.Description,
		Color:       input.Color,
		Icon:        input.Icon,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandleProjectUpdateSettings handles the project_update_settings tool call.
func (h *Handlers) HandleProjectUpdateSettings(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ProjectSettingsRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	p, err := h.projects.UpdateProjectSettings(input.ID, store.SettingsUpdate{
		DefaultModel:          input.DefaultModel,
		DefaultTokenLimit:     input.DefaultTokenLimit,
		EstimatedCostPerToken: input.EstimatedCostPerToken,
		Tags:                  input.Tags,
		Temperature:           input.Temperature,
	})
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandleProjectDelete handles the project_delete tool call.
func (h *Handlers) HandleProjectDelete(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.projects.DeleteProject(input.ID); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"deleted": true, "id": input.ID})
}

// HandleProjectList handles the project_list tool call.
func (h *Handlers) HandleProjectList(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	projects := h.projects.Projects()
	return successResult(map[string]any{"projects": projects, "count": len(projects)})
}

// HandleProjectSetActive handles the project_set_active tool call.
func (h *Handlers) HandleProjectSetActive(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[IDRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.projects.SetActiveProject(input.ID); err != nil {
		return errorResult(err), nil
	}
	p, err := h.projects.ProjectByID(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandleProjectActive handles the project_active tool call.
func (h *Handlers) HandleProjectActive(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	p := h.projects.ActiveProject()
	if p == nil {
		return errorResult(errors.NewNotFound("project", "active")), nil
	}
	return successResult(p)
}

// HandleProjectAddPrompt handles the project_add_prompt tool call.
func (h *Handlers) HandleProjectAddPrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ProjectMemberRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	// The prompt must exist; projects tolerate ids going stale later,
	// but never start that way.
	if _, err := h.prompts.GetPrompt(input.PromptID); err != nil {
		return errorResult(err), nil
	}
	if err := h.projects.AddPromptToProject(input.ProjectID, input.PromptID); err != nil {
		return errorResult(err), nil
	}
	p, err := h.projects.ProjectByID(input.ProjectID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandleProjectRemovePrompt handles the project_remove_prompt tool call.
func (h *Handlers) HandleProjectRemovePrompt(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ProjectMemberRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	if err := h.projects.RemovePromptFromProject(input.ProjectID, input.PromptID); err != nil {
		return errorResult(err), nil
	}
	p, err := h.projects.ProjectByID(input.ProjectID)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(p)
}

// HandleProjectConsolidate handles the project_consolidate tool call.
func (h *Handlers) HandleProjectConsolidate(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[ConsolidateRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	project, err := h.projects.ProjectByID(input.ID)
	if err != nil {
		return errorResult(err), nil
	}
	result := consolidate.Project(*project, h.prompts.Prompts())

	if input.Format == "" {
		return successResult(result)
	}

	out, err := h.writer.Export(result, export.Format(input.Format), input.Path)
	if err != nil {
		return errorResult(err), nil
	}
	return successResult(out)
}

// Library handlers

// HandleLibraryExport handles the library_export tool call.
func (h *Handlers) HandleLibraryExport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[LibraryExportRequest](req)
	if err != nil {
		return errorResult(err), nil
	}

	data, err := h.prompts.ExportData()
	if err != nil {
		return errorResult(err), nil
	}

	path := input.Path
	if path == "" {
		path = filepath.Join(h.writer.Dir(), fmt.Sprintf("library-%s.json", time.Now().Format("2006-01-02")))
	}
	if err := h.writer.WriteFile(path, data); err != nil {
		return errorResult(err), nil
	}
	return successResult(map[string]any{"path": path, "bytes": len(data)})
}

// HandleLibraryImport handles the library_import tool call.
func (h *Handlers) HandleLibraryImport(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	input, err := decode[LibraryImportRequest](req)
	if err != nil {
		return errorResult(err), nil
	}
	if input.Path == "" {
		return errorResult(errors.NewInvalidRequest("path is required")), nil
	}

	data, err := os.ReadFile(input.Path)
	if err != nil {
		return errorResult(errors.NewInvalidRequest(fmt.Sprintf("cannot read import file: %v", err))), nil
	}
	if err := h.prompts.ImportData(data); err != nil {
		return errorResult(err), nil
	}

	return successResult(map[string]any{
		"imported":    true,
		"prompts":     len(h.prompts.Prompts()),
		"collections": len(h.prompts.Collections()),
		"categories":  len(h.prompts.Categories()),
	})
}

// Result helpers

// errorResult creates an MCP error result from any error.
// Uses IsError: true so MCP clients recognize failures properly.
// Note: Internal error details are not exposed to prevent leaking sensitive info.
func errorResult(err error) *mcp.CallToolResult {
	var payload map[string]any

	if sErr, ok := err.(*errors.StashError); ok {
		errorObj := map[string]any{
			"code":    sErr.Code,
			"message": sErr.Message,
			"status":  sErr.Status,
		}
		// Only include details for non-internal errors to avoid leaking
		// sensitive info like file paths or SQL errors
		if sErr.Code != errors.ErrInternal && sErr.Details != nil {
			errorObj["details"] = sErr.Details
		}
		payload = map[string]any{"error": errorObj}
	} else {
		payload = map[string]any{
			"error": map[string]any{
				"code":    "INTERNAL",
				"message": "an internal error occurred",
				"status":  500,
			},
		}
	}

	content, _ := json.Marshal(payload)
	return &mcp.CallToolResult{
		Content: []mcp.Content{mcp.TextContent{Type: "text", Text: string(content)}},
		IsError: true,
	}
}

// successResult creates an MCP success result from any data.
func successResult(data any) (*mcp.CallToolResult, error) {
	return mcp.NewToolResultJSON(data)
}
