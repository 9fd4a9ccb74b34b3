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

// projectDocument is the whole persisted document for the project store.
type projectDocument struct {
	SchemaVersion   int             `json:"schemaVersion"`
	Projects        []model.Project `json:"projects"`
	ActiveProjectID string          `json:"activeProjectId"`
}

// DefaultProjectName is used when a project must be synthesized to keep
// the at-least-one-project invariant.
const DefaultProjectName = "Default Project"

// newDefaultProject builds a project with the stock settings.
func newDefaultProject(name, description string) model.Project {
	if name == "" {
		name = DefaultProjectName
	}
	if description == "" && name == DefaultProjectName {
		description = "Main project"
	}
	now := time.Now()
	temperature := 0.7
	return model.Project{
		ID:          newULID(),
		Name:        name,
		Description: description,
		PromptIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
		Settings: model.ProjectSettings{
			DefaultModel:          model.ModelBalanced,
			DefaultTokenLimit:     4096,
			EstimatedCostPerToken: 0.003,
			Tags:                  []string{},
			Temperature:           &temperature,
		},
		Stats: model.ProjectStats{},
		Color: "#8b5cf6",
		Icon:  "folder",
	}
}

// ProjectStore owns the project records and the active-project pointer.
// Invariant: at least one project exists at all times; deleting the last
// project synthesizes a fresh default one in the same operation.
type ProjectStore struct {
	mu sync.Mutex
	db *sql.DB

	projects        []model.Project
	activeProjectID string
}

// NewProjectStore loads the project document from the database. A fresh
// store starts with one default project, which is made active.
func NewProjectStore(database *sql.DB) (*ProjectStore, error) {
	s := &ProjectStore{db: database}

	data, err := db.LoadDocument(database, db.NamespaceProjects)
	if err != nil {
		return nil, errors.NewInternal(err)
	}
	if data != nil {
		var doc projectDocument
		if err := json.Unmarshal(data, &doc); err != nil {
			return nil, errors.NewInternal(err)
		}
		s.projects = doc.Projects
		s.activeProjectID = doc.ActiveProjectID
	}

	if len(s.projects) == 0 {
		p := newDefaultProject("", "")
		s.projects = []model.Project{p}
		s.activeProjectID = p.ID
		if err := s.persist(s.projects, s.activeProjectID); err != nil {
			return nil, err
		}
	}
	return s, nil
}

// persist writes the candidate state as one whole document.
func (s *ProjectStore) persist(projects []model.Project, activeID string) error {
	doc := projectDocument{
		SchemaVersion:   db.CurrentSchemaVersion,
		Projects:        projects,
		ActiveProjectID: activeID,
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return errors.NewInternal(err)
	}
	if err := db.SaveDocument(s.db, db.NamespaceProjects, data); err != nil {
		return errors.NewInternal(err)
	}
	return nil
}

func cloneProjects(in []model.Project) []model.Project {
	return append([]model.Project{}, in...)
}

// CreateProject creates a project with default settings and makes it the
// active project.
func (s *ProjectStore) CreateProject(name, description string) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewInvalidRequest("project name is required")
	}

	p := newDefaultProject(name, description)
	next := append(cloneProjects(s.projects), p)
	if err := s.persist(next, p.ID); err != nil {
		return nil, err
	}
	s.projects = next
	s.activeProjectID = p.ID
	return &p, nil
}

// ProjectUpdate contains optional replacement values for a project.
type ProjectUpdate struct {
	Name        *string
	Description *string
	Color       *string
	Icon        *string
}

// UpdateProject merges the given partial update over a project and bumps
// its updatedAt.
func (s *ProjectStore) UpdateProject(id string, update ProjectUpdate) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("project", id)
	}

	next := cloneProjects(s.projects)
	p := &next[idx]
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, errors.NewInvalidRequest("project name must not be empty")
		}
		p.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		p.Description = *update.Description
	}
	if update.Color != nil {
		p.Color = *update.Color
	}
	if update.Icon != nil {
		p.Icon = *update.Icon
	}
	p.UpdatedAt = time.Now()

	if err := s.persist(next, s.activeProjectID); err != nil {
		return nil, err
	}
	s.projects = next
	out := next[idx]
	return &out, nil
}

// SettingsUpdate contains optional replacement values for project
// settings.
type SettingsUpdate struct {
	DefaultModel          *string
	DefaultTokenLimit     *int
	EstimatedCostPerToken *float64
	Tags                  *[]string
	Temperature           *float64
}

// UpdateProjectSettings merges the given partial update over a project's
// settings and bumps its updatedAt.
func (s *ProjectStore) UpdateProjectSettings(id string, update SettingsUpdate) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("project", id)
	}

	next := cloneProjects(s.projects)
	settings := &next[idx].Settings
	if update.DefaultModel != nil {
		settings.DefaultModel = *update.DefaultModel
	}
	if update.DefaultTokenLimit != nil {
		if *update.DefaultTokenLimit <= 0 {
			return nil, errors.NewInvalidRequest("defaultTokenLimit must be positive")
		}
		settings.DefaultTokenLimit = *update.DefaultTokenLimit
	}
	if update.EstimatedCostPerToken != nil {
		if *update.EstimatedCostPerToken < 0 {
			return nil, errors.NewInvalidRequest("estimatedCostPerToken must be non-negative")
		}
		settings.EstimatedCostPerToken = *update.EstimatedCostPerToken
	}
	if update.Tags != nil {
		settings.Tags = dedupeTags(*update.Tags)
	}
	if update.Temperature != nil {
		settings.Temperature = update.Temperature
	}
	next[idx].UpdatedAt = time.Now()

	if err := s.persist(next, s.activeProjectID); err != nil {
		return nil, err
	}
	s.projects = next
	out := next[idx]
	return &out, nil
}

// DeleteProject removes a project. If the deleted project was active the
// first remaining project becomes active; if none remain a fresh default
// project is synthesized and activated, so callers never observe an
// empty project collection.
func (s *ProjectStore) DeleteProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(id)
	if idx < 0 {
		return errors.NewNotFound("project", id)
	}

	next := append(cloneProjects(s.projects[:idx]), s.projects[idx+1:]...)
	activeID := s.activeProjectID

	if len(next) == 0 {
		p := newDefaultProject("", "")
		next = []model.Project{p}
		activeID = p.ID
	} else if activeID == id {
		activeID = next[0].ID
	}

	if err := s.persist(next, activeID); err != nil {
		return err
	}
	s.projects = next
	s.activeProjectID = activeID
	return nil
}

// SetActiveProject sets the active-project pointer. An empty id clears
// it, meaning "select first available on next read".
func (s *ProjectStore) SetActiveProject(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if id != "" && s.projectIndex(id) < 0 {
		return errors.NewNotFound("project", id)
	}

	if err := s.persist(s.projects, id); err != nil {
		return err
	}
	s.activeProjectID = id
	return nil
}

// ActiveProject returns the active project, lazily activating the first
// project when no pointer is set. Returns nil only if the project
// collection is empty, which the store invariant prevents from
// persisting.
func (s *ProjectStore) ActiveProject() *model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.activeProjectID == "" {
		if len(s.projects) == 0 {
			return nil
		}
		first := s.projects[0]
		if err := s.persist(s.projects, first.ID); err != nil {
			// Pointer activation is a convenience; serve the read even
			// if the pointer write failed.
			out := first
			return &out
		}
		s.activeProjectID = first.ID
		out := first
		return &out
	}

	idx := s.projectIndex(s.activeProjectID)
	if idx < 0 {
		return nil
	}
	out := s.projects[idx]
	return &out
}

// AddPromptToProject adds a prompt id to a project's membership.
// Adding an already-present id is a no-op. Stats are recalculated as
// part of the same operation.
func (s *ProjectStore) AddPromptToProject(projectID, promptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(projectID)
	if idx < 0 {
		return errors.NewNotFound("project", projectID)
	}
	if promptID == "" {
		return errors.NewInvalidRequest("prompt id is required")
	}
	if containsString(s.projects[idx].PromptIDs, promptID) {
		return nil
	}

	next := cloneProjects(s.projects)
	next[idx].PromptIDs = append(append([]string{}, next[idx].PromptIDs...), promptID)
	next[idx].Stats.TotalPrompts = len(next[idx].PromptIDs)
	next[idx].UpdatedAt = time.Now()

	if err := s.persist(next, s.activeProjectID); err != nil {
		return err
	}
	s.projects = next
	return nil
}

// RemovePromptFromProject removes a prompt id from a project's
// membership and recalculates stats.
func (s *ProjectStore) RemovePromptFromProject(projectID, promptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(projectID)
	if idx < 0 {
		return errors.NewNotFound("project", projectID)
	}

	next := cloneProjects(s.projects)
	next[idx].PromptIDs = removeString(next[idx].PromptIDs, promptID)
	next[idx].Stats.TotalPrompts = len(next[idx].PromptIDs)
	next[idx].UpdatedAt = time.Now()

	if err := s.persist(next, s.activeProjectID); err != nil {
		return err
	}
	s.projects = next
	return nil
}

// RecalculateStats recomputes the membership-derived stats for a
// project. Execution-derived fields (totalExecutions, totalCost,
// averageCostPerExecution) are owned by the consolidation engine and are
// not maintained here.
func (s *ProjectStore) RecalculateStats(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(id)
	if idx < 0 {
		return errors.NewNotFound("project", id)
	}

	next := cloneProjects(s.projects)
	next[idx].Stats.TotalPrompts = len(next[idx].PromptIDs)
	next[idx].UpdatedAt = time.Now()

	if err := s.persist(next, s.activeProjectID); err != nil {
		return err
	}
	s.projects = next
	return nil
}

// ProjectByID returns a copy of the project with the given id.
func (s *ProjectStore) ProjectByID(id string) (*model.Project, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("project", id)
	}
	out := s.projects[idx]
	return &out, nil
}

// ProjectPrompts returns the prompt ids grouped under a project.
func (s *ProjectStore) ProjectPrompts(projectID string) ([]string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.projectIndex(projectID)
	if idx < 0 {
		return nil, errors.NewNotFound("project", projectID)
	}
	return append([]string{}, s.projects[idx].PromptIDs...), nil
}

// Projects returns a copy of all projects in insertion order.
func (s *ProjectStore) Projects() []model.Project {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneProjects(s.projects)
}

func (s *ProjectStore) projectIndex(id string) int {
	for i := range s.projects {
		if s.projects[i].ID == id {
			return i
		}
	}
	return -1
}
