package mcp

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/jmallek/promptstash/internal/config"
	"github.com/jmallek/promptstash/internal/db"
	"github.com/jmallek/promptstash/internal/export"
	"github.com/jmallek/promptstash/internal/store"
)

// testSetup creates handlers backed by a temporary database.
func testSetup(t *testing.T) (*Handlers, string) {
	t.Helper()

	tmpDir := t.TempDir()
	database, err := db.Init(tmpDir)
	if err != nil {
		t.Fatalf("failed to init db: %v", err)
	}
	t.Cleanup(func() { database.Close() })

	prompts, err := store.NewPromptStore(database)
	if err != nil {
		t.Fatalf("failed to create prompt store: %v", err)
	}
	projects, err := store.NewProjectStore(database)
	if err != nil {
		t.Fatalf("failed to create project store: %v", err)
	}

	exportDir := filepath.Join(tmpDir, "exports")
	h := NewHandlers(prompts, projects, export.NewWriter(exportDir), config.DefaultConfig())
	return h, exportDir
}

// makeRequest creates a CallToolRequest with the given arguments.
func makeRequest(args map[string]any) mcp.CallToolRequest {
	return mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: args,
		},
	}
}

// resultPayload unmarshals a success result into a map.
func resultPayload(t *testing.T, result *mcp.CallToolResult) map[string]any {
	t.Helper()
	if result.IsError {
		t.Fatalf("expected success, got error: %v", extractErrorMessage(result))
	}
	var payload map[string]any
	if err := json.Unmarshal([]byte(result.Content[0].(mcp.TextContent).Text), &payload); err != nil {
		t.Fatalf("failed to unmarshal result: %v", err)
	}
	return payload
}

func assertErrorCode(t *testing.T, result *mcp.CallToolResult, expectedCode string) {
	t.Helper()

	if len(result.Content) == 0 {
		t.Errorf("no content in error result")
		return
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		t.Errorf("content is not TextContent")
		return
	}

	var payload map[string]any
	if err := json.Unmarshal([]byte(text.Text), &payload); err != nil {
		t.Errorf("failed to unmarshal error payload: %v", err)
		return
	}

	errorObj, ok := payload["error"].(map[string]any)
	if !ok {
		t.Errorf("no error object in payload")
		return
	}

	code, ok := errorObj["code"].(string)
	if !ok {
		t.Errorf("no code in error object")
		return
	}
	if code != expectedCode {
		t.Errorf("error code = %s, want %s", code, expectedCode)
	}
}

func extractErrorMessage(result *mcp.CallToolResult) string {
	if len(result.Content) == 0 {
		return "<no content>"
	}

	text, ok := result.Content[0].(mcp.TextContent)
	if !ok {
		return "<not text content>"
	}

	return text.Text
}

// addPrompt stores a prompt through the handler and returns its id.
func addPrompt(t *testing.T, h *Handlers, title string, args map[string]any) string {
	t.Helper()
	if args == nil {
		args = map[string]any{}
	}
	args["title"] = title
	if _, ok := args["content"]; !ok {
		args["content"] = "content for " + title
	}
	result, err := h.HandlePromptAdd(context.Background(), makeRequest(args))
	if err != nil {
		t.Fatalf("HandlePromptAdd error: %v", err)
	}
	payload := resultPayload(t, result)
	return payload["id"].(string)
}

func TestHandlePromptAdd(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	tests := []struct {
		name      string
		args      map[string]any
		wantError bool
		errorCode string
	}{
		{
			name: "valid prompt",
			args: map[string]any{
				"title":    "Summarizer",
				"content":  "Summarize the following:",
				"category": "Writing",
				"tags":     []any{"summary", "text"},
			},
			wantError: false,
		},
		{
			name:      "missing title",
			args:      map[string]any{"content": "body"},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
		{
			name:      "missing content",
			args:      map[string]any{"title": "t"},
			wantError: true,
			errorCode: "INVALID_REQUEST",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := h.HandlePromptAdd(ctx, makeRequest(tt.args))
			if err != nil {
				t.Fatalf("handler returned error: %v", err)
			}
			if tt.wantError {
				if !result.IsError {
					t.Errorf("expected error result, got success")
				}
				if tt.errorCode != "" {
					assertErrorCode(t, result, tt.errorCode)
				}
			} else if result.IsError {
				t.Errorf("expected success, got error: %v", extractErrorMessage(result))
			}
		})
	}
}

func TestHandlePromptLifecycle(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	id := addPrompt(t, h, "Lifecycle", map[string]any{"content": "v1"})

	// Update
	result, _ := h.HandlePromptUpdate(ctx, makeRequest(map[string]any{
		"id": id, "content": "v2",
	}))
	payload := resultPayload(t, result)
	if payload["content"] != "v2" {
		t.Errorf("content after update = %v, want v2", payload["content"])
	}

	// Favorite toggle
	result, _ = h.HandlePromptFavorite(ctx, makeRequest(map[string]any{"id": id}))
	payload = resultPayload(t, result)
	if payload["isFavorite"] != true {
		t.Errorf("isFavorite = %v, want true", payload["isFavorite"])
	}

	// Use bumps the counter
	result, _ = h.HandlePromptUse(ctx, makeRequest(map[string]any{"id": id}))
	payload = resultPayload(t, result)
	if payload["usageCount"].(float64) != 1 {
		t.Errorf("usageCount = %v, want 1", payload["usageCount"])
	}

	// Version snapshot
	result, _ = h.HandlePromptVersionAdd(ctx, makeRequest(map[string]any{
		"id": id, "content": "snapshot",
	}))
	payload = resultPayload(t, result)
	if payload["type"] != "manual" {
		t.Errorf("version type = %v, want manual", payload["type"])
	}

	// Duplicate
	result, _ = h.HandlePromptDuplicate(ctx, makeRequest(map[string]any{"id": id}))
	payload = resultPayload(t, result)
	if payload["title"] != "Lifecycle (Copy)" {
		t.Errorf("duplicate title = %v", payload["title"])
	}

	// Delete
	result, _ = h.HandlePromptDelete(ctx, makeRequest(map[string]any{"id": id}))
	resultPayload(t, result)

	result, _ = h.HandlePromptGet(ctx, makeRequest(map[string]any{"id": id}))
	if !result.IsError {
		t.Errorf("expected NOT_FOUND after delete")
	}
	assertErrorCode(t, result, "NOT_FOUND")
}

func TestHandlePromptList(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	addPrompt(t, h, "Go Review", map[string]any{
		"content": "review go code", "category": "Development", "tags": []any{"go"},
	})
	addPrompt(t, h, "Blog Post", map[string]any{
		"content": "write a blog post", "category": "Writing",
	})

	result, _ := h.HandlePromptList(ctx, makeRequest(map[string]any{"category": "Development"}))
	payload := resultPayload(t, result)
	if payload["count"].(float64) != 1 {
		t.Errorf("category filter count = %v, want 1", payload["count"])
	}

	result, _ = h.HandlePromptList(ctx, makeRequest(map[string]any{"query": "blog"}))
	payload = resultPayload(t, result)
	if payload["count"].(float64) != 1 {
		t.Errorf("query filter count = %v, want 1", payload["count"])
	}

	result, _ = h.HandlePromptList(ctx, makeRequest(map[string]any{"sort": "bogus"}))
	if !result.IsError {
		t.Errorf("expected error for unknown sort mode")
	}
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandlePromptRecordExecution(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	id := addPrompt(t, h, "Tracked", nil)

	result, _ := h.HandlePromptRecordExecution(ctx, makeRequest(map[string]any{
		"prompt_id":      id,
		"model":          "claude-3-5-sonnet-20241022",
		"tokens_used":    120,
		"estimated_cost": 0.004,
	}))
	payload := resultPayload(t, result)
	if payload["promptId"] != id {
		t.Errorf("promptId = %v, want %v", payload["promptId"], id)
	}

	result, _ = h.HandlePromptRecordExecution(ctx, makeRequest(map[string]any{
		"prompt_id": id,
	}))
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandleCollectionFlow(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	promptID := addPrompt(t, h, "Member", nil)

	result, _ := h.HandleCollectionCreate(ctx, makeRequest(map[string]any{
		"name": "Work", "description": "work prompts",
	}))
	payload := resultPayload(t, result)
	colID := payload["id"].(string)

	result, _ = h.HandleCollectionAddPrompt(ctx, makeRequest(map[string]any{
		"collection_id": colID, "prompt_id": promptID,
	}))
	resultPayload(t, result)

	result, _ = h.HandleCollectionList(ctx, makeRequest(nil))
	payload = resultPayload(t, result)
	if payload["count"].(float64) != 1 {
		t.Errorf("collection count = %v, want 1", payload["count"])
	}

	result, _ = h.HandleCollectionRemovePrompt(ctx, makeRequest(map[string]any{
		"collection_id": colID, "prompt_id": promptID,
	}))
	resultPayload(t, result)

	result, _ = h.HandleCollectionDelete(ctx, makeRequest(map[string]any{"id": colID}))
	resultPayload(t, result)

	result, _ = h.HandleCollectionDelete(ctx, makeRequest(map[string]any{"id": colID}))
	assertErrorCode(t, result, "NOT_FOUND")
}

func TestHandleCategoryFlow(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	result, _ := h.HandleCategoryList(ctx, makeRequest(nil))
	payload := resultPayload(t, result)
	if payload["count"].(float64) != 5 {
		t.Errorf("default category count = %v, want 5", payload["count"])
	}

	result, _ = h.HandleCategoryCreate(ctx, makeRequest(map[string]any{
		"name": "Research", "color": "bg-blue-700",
	}))
	payload = resultPayload(t, result)
	catID := payload["id"].(string)

	result, _ = h.HandleCategoryUpdate(ctx, makeRequest(map[string]any{
		"id": catID, "name": "Deep Research",
	}))
	payload = resultPayload(t, result)
	if payload["name"] != "Deep Research" {
		t.Errorf("category name = %v", payload["name"])
	}

	result, _ = h.HandleCategoryDelete(ctx, makeRequest(map[string]any{"id": catID}))
	resultPayload(t, result)
}

func TestHandleProjectFlow(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	result, _ := h.HandleProjectCreate(ctx, makeRequest(map[string]any{
		"name": "Research", "description": "research prompts",
	}))
	payload := resultPayload(t, result)
	projID := payload["id"].(string)

	// Created project becomes active.
	result, _ = h.HandleProjectActive(ctx, makeRequest(nil))
	payload = resultPayload(t, result)
	if payload["id"] != projID {
		t.Errorf("active project = %v, want %v", payload["id"], projID)
	}

	result, _ = h.HandleProjectUpdateSettings(ctx, makeRequest(map[string]any{
		"id": projID, "default_token_limit": 8192,
	}))
	payload = resultPayload(t, result)
	settings := payload["settings"].(map[string]any)
	if settings["defaultTokenLimit"].(float64) != 8192 {
		t.Errorf("defaultTokenLimit = %v, want 8192", settings["defaultTokenLimit"])
	}

	promptID := addPrompt(t, h, "Member", nil)
	result, _ = h.HandleProjectAddPrompt(ctx, makeRequest(map[string]any{
		"project_id": projID, "prompt_id": promptID,
	}))
	payload = resultPayload(t, result)
	stats := payload["stats"].(map[string]any)
	if stats["totalPrompts"].(float64) != 1 {
		t.Errorf("totalPrompts = %v, want 1", stats["totalPrompts"])
	}

	// Unknown prompt ids are rejected up front.
	result, _ = h.HandleProjectAddPrompt(ctx, makeRequest(map[string]any{
		"project_id": projID, "prompt_id": "missing",
	}))
	assertErrorCode(t, result, "NOT_FOUND")

	result, _ = h.HandleProjectDelete(ctx, makeRequest(map[string]any{"id": projID}))
	resultPayload(t, result)

	// The default project remains; the store never goes empty.
	result, _ = h.HandleProjectList(ctx, makeRequest(nil))
	payload = resultPayload(t, result)
	if payload["count"].(float64) < 1 {
		t.Errorf("project count = %v, want >= 1", payload["count"])
	}
}

func TestHandleProjectConsolidate(t *testing.T) {
	h, exportDir := testSetup(t)
	ctx := context.Background()

	result, _ := h.HandleProjectCreate(ctx, makeRequest(map[string]any{"name": "Consolidated"}))
	projID := resultPayload(t, result)["id"].(string)

	promptID := addPrompt(t, h, "Tracked", nil)
	result, _ = h.HandleProjectAddPrompt(ctx, makeRequest(map[string]any{
		"project_id": projID, "prompt_id": promptID,
	}))
	resultPayload(t, result)

	result, _ = h.HandlePromptRecordExecution(ctx, makeRequest(map[string]any{
		"prompt_id": promptID, "model": "claude-3-5-haiku-20241022",
		"tokens_used": 100, "estimated_cost": 0.01,
	}))
	resultPayload(t, result)

	// Inline snapshot
	result, _ = h.HandleProjectConsolidate(ctx, makeRequest(map[string]any{"id": projID}))
	payload := resultPayload(t, result)
	statistics := payload["statistics"].(map[string]any)
	if statistics["totalExecutions"].(float64) != 1 {
		t.Errorf("totalExecutions = %v, want 1", statistics["totalExecutions"])
	}
	if statistics["totalCost"].(float64) != 0.01 {
		t.Errorf("totalCost = %v, want 0.01", statistics["totalCost"])
	}

	// File export
	result, _ = h.HandleProjectConsolidate(ctx, makeRequest(map[string]any{
		"id": projID, "format": "markdown",
	}))
	payload = resultPayload(t, result)
	path := payload["path"].(string)
	if filepath.Dir(path) != exportDir {
		t.Errorf("export path %s not under %s", path, exportDir)
	}
	if _, err := os.Stat(path); err != nil {
		t.Errorf("export file missing: %v", err)
	}

	// Unknown format
	result, _ = h.HandleProjectConsolidate(ctx, makeRequest(map[string]any{
		"id": projID, "format": "pdf",
	}))
	assertErrorCode(t, result, "INVALID_REQUEST")
}

func TestHandleLibraryExportImport(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	addPrompt(t, h, "Exported", map[string]any{"tags": []any{"keep"}})

	result, _ := h.HandleLibraryExport(ctx, makeRequest(nil))
	payload := resultPayload(t, result)
	path := payload["path"].(string)

	// Import into a fresh library
	other, _ := testSetup(t)
	result, _ = other.HandleLibraryImport(ctx, makeRequest(map[string]any{"path": path}))
	payload = resultPayload(t, result)
	if payload["prompts"].(float64) != 1 {
		t.Errorf("imported prompts = %v, want 1", payload["prompts"])
	}

	// Malformed file leaves the library untouched
	badPath := filepath.Join(t.TempDir(), "bad.json")
	if err := os.WriteFile(badPath, []byte("{not json"), 0600); err != nil {
		t.Fatal(err)
	}
	result, _ = other.HandleLibraryImport(ctx, makeRequest(map[string]any{"path": badPath}))
	assertErrorCode(t, result, "IMPORT_FAILED")

	result, _ = other.HandlePromptList(ctx, makeRequest(nil))
	payload = resultPayload(t, result)
	if payload["count"].(float64) != 1 {
		t.Errorf("prompt count after failed import = %v, want 1", payload["count"])
	}
}

func TestValidateDisabledTools(t *testing.T) {
	unknown := ValidateDisabledTools([]string{"prompt_add", "bogus_tool"})
	if len(unknown) != 1 || unknown[0] != "bogus_tool" {
		t.Errorf("ValidateDisabledTools = %v, want [bogus_tool]", unknown)
	}
}

func TestNewServer_SkipsDisabledTools(t *testing.T) {
	h, _ := testSetup(t)
	cfg := config.DefaultConfig()
	cfg.DisabledTools = []string{"prompt_delete", "library_import"}

	s := NewServer(h, cfg, "test")
	if s == nil {
		t.Fatal("NewServer returned nil")
	}
}

func TestHandlerRejectsMistypedArguments(t *testing.T) {
	h, _ := testSetup(t)
	ctx := context.Background()

	// tags must be an array of strings.
	result, _ := h.HandlePromptAdd(ctx, makeRequest(map[string]any{
		"title":   "typed",
		"content": "body",
		"tags":    42,
	}))
	assertErrorCode(t, result, "INVALID_REQUEST")

	// tokens_used must be a number.
	result, _ = h.HandlePromptRecordExecution(ctx, makeRequest(map[string]any{
		"prompt_id":   "whatever",
		"model":       "claude-3-5-haiku-20241022",
		"tokens_used": "ten",
	}))
	assertErrorCode(t, result, "INVALID_REQUEST")
}
