package repository

import (
	"context"
	"sync"
	"time"

	"main/model"
)

// In-memory implementations of the store interfaces. They back the tests and
// keep the services storage-agnostic; the mongo repositories are the
// production counterparts.

type MemoryCategoryStore struct {
	mu         sync.RWMutex
	categories map[string]*model.Category
}

func NewMemoryCategoryStore() *MemoryCategoryStore {
	return &MemoryCategoryStore{categories: make(map[string]*model.Category)}
}

func (s *MemoryCategoryStore) GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var categories []*model.Category
	for _, category := range s.categories {
		if category.UserID == userID {
			clone := *category
			categories = append(categories, &clone)
		}
	}
	return categories, nil
}

func (s *MemoryCategoryStore) GetCategoryByID(ctx context.Context, userID, categoryID string) (*model.Category, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	category, ok := s.categories[categoryID]
	if !ok || category.UserID != userID {
		return nil, nil
	}
	clone := *category
	return &clone, nil
}

func (s *MemoryCategoryStore) CreateCategory(ctx context.Context, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *category
	s.categories[category.CategoryID] = &clone
	return nil
}

func (s *MemoryCategoryStore) UpdateCategory(ctx context.Context, category *model.Category) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[category.CategoryID]
	if !ok || existing.UserID != category.UserID {
		return errNotFound
	}
	clone := *category
	s.categories[category.CategoryID] = &clone
	return nil
}

func (s *MemoryCategoryStore) DeleteCategory(ctx context.Context, userID, categoryID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.categories[categoryID]
	if !ok || existing.UserID != userID {
		return errNotFound
	}
	delete(s.categories, categoryID)
	return nil
}

func (s *MemoryCategoryStore) BulkUpdateOrders(ctx context.Context, userID string, orders map[string]int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	updated := 0
	for categoryID, order := range orders {
		category, ok := s.categories[categoryID]
		if !ok || category.UserID != userID {
			continue
		}
		if category.Order != order {
			category.Order = order
			updated++
		}
	}
	return updated, nil
}

type MemoryTodoStore struct {
	mu    sync.RWMutex
	todos map[string]*model.Todo
}

func NewMemoryTodoStore() *MemoryTodoStore {
	return &MemoryTodoStore{todos: make(map[string]*model.Todo)}
}

func (s *MemoryTodoStore) CreateTodo(ctx context.Context, todo *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *todo
	s.todos[todo.TodoID] = &clone
	return nil
}

func (s *MemoryTodoStore) GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var todos []*model.Todo
	for _, todo := range s.todos {
		if todo.UserID == userID {
			clone := *todo
			todos = append(todos, &clone)
		}
	}
	return todos, nil
}

func (s *MemoryTodoStore) GetTodoByID(ctx context.Context, userID, todoID string) (*model.Todo, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	todo, ok := s.todos[todoID]
	if !ok || todo.UserID != userID {
		return nil, nil
	}
	clone := *todo
	return &clone, nil
}

func (s *MemoryTodoStore) UpdateTodo(ctx context.Context, todo *model.Todo) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.todos[todo.TodoID]
	if !ok || existing.UserID != todo.UserID {
		return errNotFound
	}
	clone := *todo
	s.todos[todo.TodoID] = &clone
	return nil
}

func (s *MemoryTodoStore) DeleteTodo(ctx context.Context, userID, todoID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing, ok := s.todos[todoID]
	if !ok || existing.UserID != userID {
		return errNotFound
	}
	delete(s.todos, todoID)
	return nil
}

func (s *MemoryTodoStore) DeleteUserTodos(ctx context.Context, userID string) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	deleted := 0
	for id, todo := range s.todos {
		if todo.UserID == userID {
			delete(s.todos, id)
			deleted++
		}
	}
	return deleted, nil
}

func (s *MemoryTodoStore) UpdateTodoDates(ctx context.Context, userID string, ids []string, newDate time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	moved := 0
	for _, id := range ids {
		todo, ok := s.todos[id]
		if !ok || todo.UserID != userID {
			continue
		}
		todo.Date = newDate
		todo.UpdatedAt = time.Now()
		moved++
	}
	return moved, nil
}

func (s *MemoryTodoStore) CountTodosByCategory(ctx context.Context, userID, categoryID string) (int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	count := 0
	for _, todo := range s.todos {
		if todo.UserID == userID && todo.CategoryID == categoryID {
			count++
		}
	}
	return count, nil
}

type MemorySettingsStore struct {
	mu       sync.RWMutex
	settings map[string]*model.UserSettings
}

func NewMemorySettingsStore() *MemorySettingsStore {
	return &MemorySettingsStore{settings: make(map[string]*model.UserSettings)}
}

func (s *MemorySettingsStore) GetUserSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	settings, ok := s.settings[userID]
	if !ok {
		return nil, nil
	}
	clone := *settings
	return &clone, nil
}

func (s *MemorySettingsStore) CreateUserSettings(ctx context.Context, settings *model.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *settings
	s.settings[settings.UserID] = &clone
	return nil
}

func (s *MemorySettingsStore) UpdateUserSettings(ctx context.Context, settings *model.UserSettings) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	clone := *settings
	s.settings[settings.UserID] = &clone
	return nil
}
