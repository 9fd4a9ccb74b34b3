package store

import (
	"strings"
	"time"

	"github.com/jmallek/promptstash/internal/errors"
	"github.com/jmallek/promptstash/internal/model"
)

// CollectionUpdate contains optional replacement values for a collection.
type CollectionUpdate struct {
	Name        *string
	Description *string
}

// CreateCollection creates a named, empty collection.
func (s *PromptStore) CreateCollection(name, description string) (*model.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewInvalidRequest("collection name is required")
	}

	now := time.Now()
	c := model.Collection{
		ID:          newULID(),
		Name:        name,
		Description: description,
		PromptIDs:   []string{},
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	next := append(cloneCollections(s.collections), c)
	if err := s.persist(s.prompts, next, s.categories); err != nil {
		return nil, err
	}
	s.collections = next
	return &c, nil
}

// UpdateCollection merges the given partial update over a collection.
func (s *PromptStore) UpdateCollection(id string, update CollectionUpdate) (*model.Collection, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collectionIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("collection", id)
	}

	next := cloneCollections(s.collections)
	c := &next[idx]
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, errors.NewInvalidRequest("collection name must not be empty")
		}
		c.Name = strings.TrimSpace(*update.Name)
	}
	if update.Description != nil {
		c.Description = *update.Description
	}
	c.UpdatedAt = time.Now()

	if err := s.persist(s.prompts, next, s.categories); err != nil {
		return nil, err
	}
	s.collections = next
	out := next[idx]
	return &out, nil
}

// DeleteCollection removes a collection. Member prompts are unaffected.
func (s *PromptStore) DeleteCollection(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collectionIndex(id)
	if idx < 0 {
		return errors.NewNotFound("collection", id)
	}

	next := append(cloneCollections(s.collections[:idx]), s.collections[idx+1:]...)
	if err := s.persist(s.prompts, next, s.categories); err != nil {
		return err
	}
	s.collections = next
	return nil
}

// AddToCollection adds a prompt id to a collection's membership.
// Adding an already-present id is a no-op.
func (s *PromptStore) AddToCollection(collectionID, promptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collectionIndex(collectionID)
	if idx < 0 {
		return errors.NewNotFound("collection", collectionID)
	}
	if containsString(s.collections[idx].PromptIDs, promptID) {
		return nil
	}

	next := cloneCollections(s.collections)
	next[idx].PromptIDs = append(append([]string{}, next[idx].PromptIDs...), promptID)
	next[idx].UpdatedAt = time.Now()

	if err := s.persist(s.prompts, next, s.categories); err != nil {
		return err
	}
	s.collections = next
	return nil
}

// RemoveFromCollection removes a prompt id from a collection's membership.
func (s *PromptStore) RemoveFromCollection(collectionID, promptID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.collectionIndex(collectionID)
	if idx < 0 {
		return errors.NewNotFound("collection", collectionID)
	}

	next := cloneCollections(s.collections)
	next[idx].PromptIDs = removeString(next[idx].PromptIDs, promptID)
	next[idx].UpdatedAt = time.Now()

	if err := s.persist(s.prompts, next, s.categories); err != nil {
		return err
	}
	s.collections = next
	return nil
}

// Collections returns a copy of all collections.
func (s *PromptStore) Collections() []model.Collection {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCollections(s.collections)
}

func (s *PromptStore) collectionIndex(id string) int {
	for i := range s.collections {
		if s.collections[i].ID == id {
			return i
		}
	}
	return -1
}

// CategoryUpdate contains optional replacement values for a category.
type CategoryUpdate struct {
	Name  *string
	Color *string
	Icon  *string
}

// CreateCategory creates a named category with a display color.
func (s *PromptStore) CreateCategory(name, color, icon string) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	name = strings.TrimSpace(name)
	if name == "" {
		return nil, errors.NewInvalidRequest("category name is required")
	}

	c := model.Category{
		ID:    newULID(),
		Name:  name,
		Color: color,
		Icon:  icon,
	}

	next := append(cloneCategories(s.categories), c)
	if err := s.persist(s.prompts, s.collections, next); err != nil {
		return nil, err
	}
	s.categories = next
	return &c, nil
}

// UpdateCategory merges the given partial update over a category.
// Renaming does not cascade to prompts that reference the old name; they
// keep pointing at a name that no longer resolves.
func (s *PromptStore) UpdateCategory(id string, update CategoryUpdate) (*model.Category, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return nil, errors.NewNotFound("category", id)
	}

	next := cloneCategories(s.categories)
	c := &next[idx]
	if update.Name != nil {
		if strings.TrimSpace(*update.Name) == "" {
			return nil, errors.NewInvalidRequest("category name must not be empty")
		}
		c.Name = strings.TrimSpace(*update.Name)
	}
	if update.Color != nil {
		c.Color = *update.Color
	}
	if update.Icon != nil {
		c.Icon = *update.Icon
	}

	if err := s.persist(s.prompts, s.collections, next); err != nil {
		return nil, err
	}
	s.categories = next
	out := next[idx]
	return &out, nil
}

// DeleteCategory removes a category. Prompts using the category's name
// are not reassigned; their category reference simply stops resolving.
func (s *PromptStore) DeleteCategory(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.categoryIndex(id)
	if idx < 0 {
		return errors.NewNotFound("category", id)
	}

	next := append(cloneCategories(s.categories[:idx]), s.categories[idx+1:]...)
	if err := s.persist(s.prompts, s.collections, next); err != nil {
		return err
	}
	s.categories = next
	return nil
}

// Categories returns a copy of all categories.
func (s *PromptStore) Categories() []model.Category {
	s.mu.Lock()
	defer s.mu.Unlock()
	return cloneCategories(s.categories)
}

func (s *PromptStore) categoryIndex(id string) int {
	for i := range s.categories {
		if s.categories[i].ID == id {
			return i
		}
	}
	return -1
}
