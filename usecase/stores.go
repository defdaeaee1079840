package usecase

import (
	"context"
	"time"

	"main/model"
)

// Storage interfaces the services depend on. The mongo repositories implement
// them for production and the in-memory stores implement them for tests.
// Lookups return (nil, nil) when the entity does not exist so callers can
// distinguish absence from storage failure.

type CategoryStore interface {
	GetUserCategories(ctx context.Context, userID string) ([]*model.Category, error)
	GetCategoryByID(ctx context.Context, userID, categoryID string) (*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	UpdateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, userID, categoryID string) error
	// BulkUpdateOrders rewrites the order field for the given category IDs,
	// scoped to the user. Returns the number of modified documents.
	BulkUpdateOrders(ctx context.Context, userID string, orders map[string]int) (int, error)
}

type TodoStore interface {
	CreateTodo(ctx context.Context, todo *model.Todo) error
	GetUserTodos(ctx context.Context, userID string) ([]*model.Todo, error)
	GetTodoByID(ctx context.Context, userID, todoID string) (*model.Todo, error)
	UpdateTodo(ctx context.Context, todo *model.Todo) error
	DeleteTodo(ctx context.Context, userID, todoID string) error
	DeleteUserTodos(ctx context.Context, userID string) (int, error)
	// UpdateTodoDates moves every todo in ids owned by the user to newDate and
	// returns how many were actually updated. Foreign ids are not matched.
	UpdateTodoDates(ctx context.Context, userID string, ids []string, newDate time.Time) (int, error)
	CountTodosByCategory(ctx context.Context, userID, categoryID string) (int, error)
}

type SettingsStore interface {
	GetUserSettings(ctx context.Context, userID string) (*model.UserSettings, error)
	CreateUserSettings(ctx context.Context, settings *model.UserSettings) error
	UpdateUserSettings(ctx context.Context, settings *model.UserSettings) error
}
