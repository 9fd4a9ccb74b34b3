package store

import (
	"database/sql"
	"encoding/json"
	"strings"
	"sync"
	"time"

	"github.com/jmallek/promptstash/internal/db"
	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/model"
)

// promptDocument is the whole persisted document for the prompt store.
// Field names match the browser-era storage schema so old exports import
// cleanly.
type promptDocument struct {
	SchemaVersion int                `json:"schemaVersion"`
	Prompts       []model.Prompt     `json:"prompts"`
	Collections   []model.Collection `json:"collections"`
	Categories    []model.Category   `json:"categories"`
}

// libraryData is the bulk export/import payload: exactly the keys
// prompts, collections, categories.
type libraryData struct {
	Prompts     []model.Prompt     `json:"prompts"`
	Collections []model.Collection `json:"collections"`
	Categories  []model.Category   `json:"categories"`
}

// DefaultCategories returns the categories a fresh (or cleared) library
// starts with.
func DefaultCategories() []model.Category {
	return []model.Category{
		{ID: "1", Name: "General", Color: "bg-neutral-700"},
		{ID: "2", Name: "Development", Color: "bg-neutral-700"},
		{ID: "3", Name: "Writing", Color: "bg-neutral-700"},
		{ID: "4", Name: "Analysis", Color: "bg-neutral-700"},
		{ID: "5", Name: "Creative", Color: "bg-neutral-700"},
	}
}

// PromptStore owns the prompt, collection, and category records plus the
// presentation-facing filter state. Every mutation rewrites the whole
// persisted document before the in-memory state is published, so memory
// and disk never disagree across operations.
type PromptStore struct {
	mu sync.Mutex
	db *sql.DB

	prompts     []model.Prompt
	collections []model.Collection
	categories  []model.Category

	// Filter state is presentation-derived and never persisted.
	searchQuery      string
	selectedCategory string
	selectedTags     []string
}

// NewPromptStore loads the prompt document from the database, or starts
// an empty library with default categories if none exists yet.
func NewPromptStore(database *sql.DB) (*PromptStore, error) {
	s := &PromptStore{
		db:          database,
		prompts:     []model.Prompt{},
		collections: []model.Collection{},
		categories:  DefaultCategories(),
	}

	data, err := db.LoadDocument(database, db.NamespacePrompts)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if data == nil {
		return s, nil
	}

	var doc promptDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, errors.NewInternal(err)
	}
	if doc.Prompts != nil {
		s.prompts = doc.Prompts
	}
	if doc.Collections != nil {
		s.collections = doc.Collections
	}
	if doc.Categories != nil {
		s.categories = doc.Categories
	}
	return s, nil
}

// persist writes the candidate state as one whole document. Callers only
// publish the candidate slices to the store after persist succeeds.
func (s *PromptStore) persist(prompts []model.Prompt, collections []model.Collection, categories []model.Category) error {
	doc := promptDocument{
		SchemaVersion: db.CurrentSchemaVersion,
		Prompts:       prompts,
		Collections:   collections,
		Categories:    categories,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.NewInternal(err)
	}
	if err := db.SaveDocument(s.db, db.NamespacePrompts, data); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

func clonePrompts(in []model.Prompt) []model.Prompt {
	return append([]model.Prompt{}, in...)
}

func cloneCollections(in []model.Collection) []model.Collection {
	return append([]model.Collection{}, in...)
}

func cloneCategories(in []model.Category) []model.Category {
	return append([]model.Category{}, in...)
}

// PromptInput contains the caller-settable fields for a new prompt.
// The store assigns id, timestamps, usage count, and versions.
type PromptInput struct {
	Title       string
	Content     string
	Category    string
	Tags        []string
	Description string
	ProjectID   string
	IsFavorite  bool
	Metadata    model.PromptMetadata
}

// PromptUpdate contains optional replacement values for an existing
// prompt. Nil fields are left untouched.
type PromptUpdate struct {
	Title       *string
	Content     *string
	Category    *string
	Tags        *[]string
	Description *string
	ProjectID   *string
	IsFavorite  *bool
	Metadata    *model.PromptMetadata
}

// AddPrompt creates a new prompt. Title and content are required.
func (s *PromptStore) AddPrompt(input PromptInput) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	title := strings.TrimSpace(input.Title)
	if title == "" {
		return nil, errors.NewInvalidRequest("title is required")
	}
	if strings.TrimSpace(input.Content) == "" {
		return nil, errors.NewInvalidRequest("content is required")
	}

	now := time.Now()
	p := model.Prompt{
		ID:               newULID(),
		Title:            title,
		Content:          input.Content,
		Category:         input.Category,
		Tags:             dedupeTags(input.Tags),
		CreatedAt:        now,
		UpdatedAt:        now,
		IsFavorite:       input.IsFavorite,
		UsageCount:       0,
		Versions:         []model.PromptVersion{},
		Metadata:         input.Metadata,
		ProjectID:        input.ProjectID,
		Description:      input.Description,
		ExecutionHistory: []model.ExecutionHistory{},
	}

	next := append(clonePrompts(s.prompts), p)
	if err := s.persist(next, s.collections, s.categories); err != nil {
		return nil, err
	}
	s.prompts = next
	return &p, nil
}

// UpdatePrompt merges the given partial update over an existing prompt
// and bumps its updatedAt.
func (s *PromptStore) UpdatePrompt(id string, update PromptUpdate) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("prompt", id)
	}

	next := clonePrompts(s.prompts)
	p := &next[idx]
	if update.Title != nil {
		if strings.TrimSpace(*update.Title) == "" {
			return nil, errors.NewInvalidRequest("title must not be empty")
		}
		p.Title = strings.TrimSpace(*update.Title)
	}
	if update.Content != nil {
		if strings.TrimSpace(*update.Content) == "" {
			return nil, errors.NewInvalidRequest("content must not be empty")
		}
		p.Content = *update.Content
	}
	if update.Category != nil {
		p.Category = *update.Category
	}
	if update.Tags != nil {
		p.Tags = dedupeTags(*update.Tags)
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.ProjectID != nil {
		p.ProjectID = *update.ProjectID
	}
	if update.IsFavorite != nil {
		p.IsFavorite = *update.IsFavorite
	}
	if update.Metadata != nil {
		p.Metadata = *update.Metadata
	}
	p.UpdatedAt = time.Now()

	if err := s.persist(next, s.collections, s.categories); err != nil {
		return nil, err
	}
	s.prompts = next
	out := next[idx]
	return &out, nil
}

// DeletePrompt removes a prompt and cascades the removal into every
// collection's membership list. Project membership is intentionally not
// touched here; projects tolerate dangling ids at read time.
func (s *PromptStore) DeletePrompt(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndex(id)
	if idx < 0 {
		return errors.NewNotFound("prompt", id)
	}

	next := append(clonePrompts(s.prompts[:idx]), s.prompts[idx+1:]...)
	nextCollections := cloneCollections(s.collections)
	for i := range nextCollections {
		nextCollections[i].PromptIDs = removeString(nextCollections[i].PromptIDs, id)
	}

	if err := s.persist(next, nextCollections, s.categories); err != nil {
		return err
	}
	s.prompts = next
	s.collections = nextCollections
	return nil
}

// DuplicatePrompt copies a prompt under a fresh id with " (Copy)"
// appended to the title. Usage count, favorite flag, and versions are
// reset; execution history carries over with everything else.
func (s *PromptStore) DuplicatePrompt(id string) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("prompt", id)
	}

	src := s.prompts[idx]
	now := time.Now()
	dup := model.Prompt{
		ID:               newULID(),
		Title:            src.Title + " (Copy)",
		Content:          src.Content,
		Category:         src.Category,
		Tags:             dedupeTags(src.Tags),
		CreatedAt:        now,
		UpdatedAt:        now,
		IsFavorite:       false,
		UsageCount:       0,
		Versions:         []model.PromptVersion{},
		Metadata:         src.Metadata,
		ProjectID:        src.ProjectID,
		Description:      src.Description,
		ExecutionHistory: append([]model.ExecutionHistory{}, src.ExecutionHistory...),
	}

	next := append(clonePrompts(s.prompts), dup)
	if err := s.persist(next, s.collections, s.categories); err != nil {
		return nil, err
	}
	s.prompts = next
	return &dup, nil
}

// ToggleFavorite flips a prompt's favorite flag.
func (s *PromptStore) ToggleFavorite(id string) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("prompt", id)
	}

	next := clonePrompts(s.prompts)
	next[idx].IsFavorite = !next[idx].IsFavorite
	next[idx].UpdatedAt = time.Now()

	if err := s.persist(next, s.collections, s.categories); err != nil {
		return nil, err
	}
	s.prompts = next
	out := next[idx]
	return &out, nil
}

// IncrementUsageCount bumps a prompt's usage counter. Usage tracking is
// accounting, not a content edit, so updatedAt is left alone.
func (s *PromptStore) IncrementUsageCount(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndex(id)
	if idx < 0 {
		return errors.NewNotFound("prompt", id)
	}

	next := clonePrompts(s.prompts)
	next[idx].UsageCount++

	if err := s.persist(next, s.collections, s.categories); err != nil {
		return err
	}
	s.prompts = next
	return nil
}

// AddVersion appends an immutable content snapshot to a prompt.
func (s *PromptStore) AddVersion(promptID, content string, versionType model.VersionType) (*model.PromptVersion, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if versionType != model.VersionManual && versionType != model.VersionOptimized {
		return nil, errors.NewInvalidRequest("version type must be one of: manual, optimized")
	}

	idx := s.promptIndex(promptID)
	if idx < 0 {
		return nil, errors.NewNotFound("prompt", promptID)
	}

	v := model.PromptVersion{
		ID:        newULID(),
		Content:   content,
		Timestamp: time.Now(),
		Type:      versionType,
	}

	next := clonePrompts(s.prompts)
	next[idx].Versions = append(append([]model.PromptVersion{}, next[idx].Versions...), v)
	next[idx].UpdatedAt = v.Timestamp

	if err := s.persist(next, s.collections, s.categories); err != nil {
		return nil, err
	}
	s.prompts = next
	return &v, nil
}

// ApplyOptimizedContent accepts an externally produced optimized text for
// a prompt: the new text becomes the content and is snapshotted as an
// optimized version. Callers invoke this only after the user accepts the
// optimization result; a failed optimization never reaches the store.
func (s *PromptStore) ApplyOptimizedContent(promptID, optimized string) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if strings.TrimSpace(optimized) == "" {
		return nil, errors.NewInvalidRequest("optimized content must not be empty")
	}

	idx := s.promptIndex(promptID)
	if idx < 0 {
		return nil, errors.NewNotFound("prompt", promptID)
	}

	now := time.Now()
	next := clonePrompts(s.prompts)
	next[idx].Versions = append(append([]model.PromptVersion{}, next[idx].Versions...), model.PromptVersion{
		ID:        newULID(),
		Content:   optimized,
		Timestamp: now,
		Type:      model.VersionOptimized,
	})
	next[idx].Content = optimized
	next[idx].UpdatedAt = now

	if err := s.persist(next, s.collections, s.categories); err != nil {
		return nil, err
	}
	s.prompts = next
	out := next[idx]
	return &out, nil
}

// ExecutionInput contains the caller-settable fields for recording one
// prompt execution.
type ExecutionInput struct {
	PromptID      string
	Model         string
	TokensUsed    int
	EstimatedCost float64
	ResponseTime  *float64
	Notes         string
}

// RecordExecution appends an execution record to a prompt's history.
func (s *PromptStore) RecordExecution(input ExecutionInput) (*model.ExecutionHistory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if input.Model == "" {
		return nil, errors.NewInvalidRequest("model is required")
	}
	if input.TokensUsed < 0 {
		return nil, errors.NewInvalidRequest("tokensUsed must be non-negative")
	}
	if input.EstimatedCost < 0 {
		return nil, errors.NewInvalidRequest("estimatedCost must be non-negative")
	}

	idx := s.promptIndex(input.PromptID)
	if idx < 0 {
		return nil, errors.NewNotFound("prompt", input.PromptID)
	}

	exec := model.ExecutionHistory{
		ID:            newULID(),
		PromptID:      input.PromptID,
		ExecutedAt:    time.Now(),
		Model:         input.Model,
		TokensUsed:    input.TokensUsed,
		EstimatedCost: input.EstimatedCost,
		ResponseTime:  input.ResponseTime,
		Notes:         input.Notes,
	}

	next := clonePrompts(s.prompts)
	next[idx].ExecutionHistory = append(append([]model.ExecutionHistory{}, next[idx].ExecutionHistory...), exec)

	if err := s.persist(next, s.collections, s.categories); err != nil {
		return nil, err
	}
	s.prompts = next
	return &exec, nil
}

// GetPrompt returns a copy of the prompt with the given id.
func (s *PromptStore) GetPrompt(id string) (*model.Prompt, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.promptIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("prompt", id)
	}
	out := s.prompts[idx]
	return &out, nil
}

// Prompts returns a copy of all prompts in insertion order.
func (s *PromptStore) Prompts() []model.Prompt {
	s.mu.Lock()
	defer s.mu.Unlock()
	return clonePrompts(s.prompts)
}

// promptIndex returns the index of the prompt with the given id, or -1.
// Callers must hold s.mu.
func (s *PromptStore) promptIndex(id string) int {
	for i := range s.prompts {
		if s.prompts[i].ID == id {
			return i
		}
	}
	return -1
}

// ExportData serializes prompts, collections, and categories as one JSON
// object. Projects and their stats are not part of this raw-data export.
func (s *PromptStore) ExportData() ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := json.MarshalIndent(libraryData{
		Prompts:     s.prompts,
		Collections: s.collections,
		Categories:  s.categories,
	}, "", "  ")
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	return data, nil
}

// ImportData replaces prompts, collections, and categories wholesale.
// On malformed input the store is left exactly as it was; there is no
// partial merge. Missing keys fall back to empty collections and the
// default categories.
func (s *PromptStore) ImportData(data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	var in libraryData
	if err := json.Unmarshal(data, &in); err != nil {
		return errors.NewImportFailed(err)
	}

	prompts := in.Prompts
	if prompts == nil {
		prompts = []model.Prompt{}
	}
	collections := in.Collections
	if collections == nil {
		collections = []model.Collection{}
	}
	categories := in.Categories
	if categories == nil {
		categories = DefaultCategories()
	}

	if err := s.persist(prompts, collections, categories); err != nil {
		return err
	}
	s.prompts = prompts
	s.collections = collections
	s.categories = categories
	return nil
}

// ClearAll resets the library to empty prompts/collections, default
// categories, and clear filter state.
func (s *PromptStore) ClearAll() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	prompts := []model.Prompt{}
	collections := []model.Collection{}
	categories := DefaultCategories()

	if err := s.persist(prompts, collections, categories); err != nil {
		return err
	}
	s.prompts = prompts
	s.collections = collections
	s.categories = categories
	s.searchQuery = ""
	s.selectedCategory = ""
	s.selectedTags = nil
	return nil
}
