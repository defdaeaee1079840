package usecase

import (
	"context"
	"log"
	"sort"
	"time"

	"main/model"
	"main/utils"
)

// FilterCriteria is a conjunctive todo filter. Every provided field must
// match; nil fields impose no constraint. The date range is inclusive on
// both ends.
type FilterCriteria struct {
	UserID     string
	StartDate  *time.Time
	EndDate    *time.Time
	CategoryID *string
	Completed  *bool
	TodoType   *model.TodoType
}

// UpdateTodoInput carries a partial todo update. Pointer fields distinguish
// "omitted" from "set to the zero value".
type UpdateTodoInput struct {
	Title      *string         `json:"title"`
	Date       *time.Time      `json:"date"`
	Completed  *bool           `json:"completed"`
	TodoType   *model.TodoType `json:"todo_type"`
	CategoryID *string         `json:"category_id"`
}

type TodoService struct {
	todos      TodoStore
	categories CategoryStore
}

func NewTodoService(todos TodoStore, categories CategoryStore) *TodoService {
	return &TodoService{todos: todos, categories: categories}
}

// Create Todo. The category must belong to the same user; a cross-user
// category id is reported as not-found.
func (svc *TodoService) CreateTodo(ctx context.Context, todo *model.Todo) error {
	if todo.UserID == "" {
		return &ValidationError{Message: "user ID is required"}
	}
	if todo.Title == "" {
		return &ValidationError{Message: "todo title is required"}
	}
	if todo.Date.IsZero() {
		return &ValidationError{Message: "todo date is required"}
	}
	if todo.TodoType == "" {
		todo.TodoType = model.TodoTypeEvent
	}
	if err := validateTodoType(todo.TodoType); err != nil {
		return err
	}

	category, err := svc.categories.GetCategoryByID(ctx, todo.UserID, todo.CategoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return &NotFoundError{Message: "category not found"}
	}

	now := time.Now()
	if todo.TodoID == "" {
		todo.TodoID = utils.NewID()
	}
	if todo.CreatedAt.IsZero() {
		todo.CreatedAt = now
	}
	todo.UpdatedAt = now

	if err := svc.todos.CreateTodo(ctx, todo); err != nil {
		return err
	}

	utils.TrackTodoOperation("create")
	return nil
}

// Update Todo with a field-level merge of the provided input
func (svc *TodoService) UpdateTodo(ctx context.Context, userID, todoID string, input UpdateTodoInput) (*model.Todo, error) {
	existing, err := svc.todos.GetTodoByID(ctx, userID, todoID)
	if err != nil {
		return nil, err
	}
	if existing == nil {
		return nil, &NotFoundError{Message: "todo not found"}
	}

	if input.Title != nil {
		if *input.Title == "" {
			return nil, &ValidationError{Message: "todo title cannot be empty"}
		}
		existing.Title = *input.Title
	}
	if input.Date != nil {
		if input.Date.IsZero() {
			return nil, &ValidationError{Message: "todo date cannot be empty"}
		}
		existing.Date = *input.Date
	}
	if input.Completed != nil {
		existing.Completed = *input.Completed
	}
	if input.TodoType != nil {
		if err := validateTodoType(*input.TodoType); err != nil {
			return nil, err
		}
		existing.TodoType = *input.TodoType
	}
	if input.CategoryID != nil {
		category, err := svc.categories.GetCategoryByID(ctx, userID, *input.CategoryID)
		if err != nil {
			return nil, err
		}
		if category == nil {
			return nil, &NotFoundError{Message: "category not found"}
		}
		existing.CategoryID = *input.CategoryID
	}

	existing.UpdatedAt = time.Now()
	if err := svc.todos.UpdateTodo(ctx, existing); err != nil {
		return nil, err
	}

	if input.Completed != nil && *input.Completed {
		utils.TrackTodoOperation("complete")
	} else {
		utils.TrackTodoOperation("update")
	}
	return existing, nil
}

// Delete Todo
func (svc *TodoService) DeleteTodo(ctx context.Context, userID, todoID string) error {
	existing, err := svc.todos.GetTodoByID(ctx, userID, todoID)
	if err != nil {
		return err
	}
	if existing == nil {
		return &NotFoundError{Message: "todo not found"}
	}

	if err := svc.todos.DeleteTodo(ctx, userID, todoID); err != nil {
		return err
	}

	utils.TrackTodoOperation("delete")
	return nil
}

// Delete every todo the user owns
func (svc *TodoService) DeleteUserTodos(ctx context.Context, userID string) (int, error) {
	deleted, err := svc.todos.DeleteUserTodos(ctx, userID)
	if err != nil {
		return 0, err
	}
	utils.TrackTodoOperation("delete_all")
	return deleted, nil
}

// Filter Todos by the conjunction of the provided criteria, newest first
func (svc *TodoService) FilterTodos(ctx context.Context, criteria FilterCriteria) ([]*model.Todo, error) {
	if criteria.UserID == "" {
		return nil, &ValidationError{Message: "user ID is required"}
	}

	todos, err := svc.todos.GetUserTodos(ctx, criteria.UserID)
	if err != nil {
		return nil, err
	}

	return filterTodos(todos, criteria), nil
}

// Todo Stats
func (svc *TodoService) GetTodoStats(ctx context.Context, userID string) (*model.TodoStats, error) {
	todos, err := svc.todos.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, err
	}
	stats := computeStats(todos)
	return &stats, nil
}

// Todo Stats partitioned by type. Empty partitions report zeros.
func (svc *TodoService) GetTodoStatsByType(ctx context.Context, userID string) (*model.TypedTodoStats, error) {
	todos, err := svc.todos.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	var events, tasks []*model.Todo
	for _, todo := range todos {
		switch todo.TodoType {
		case model.TodoTypeEvent:
			events = append(events, todo)
		case model.TodoTypeTask:
			tasks = append(tasks, todo)
		}
	}

	return &model.TypedTodoStats{
		Event: computeStats(events),
		Task:  computeStats(tasks),
	}, nil
}

// Get Due Tasks: incomplete TASK todos dated strictly before the given day,
// oldest first. Overdue triage wants the opposite order of the display filter.
func (svc *TodoService) GetDueTasks(ctx context.Context, userID string, before time.Time) ([]*model.Todo, error) {
	todos, err := svc.todos.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	cutoff := dayOf(before)
	var due []*model.Todo
	for _, todo := range todos {
		if todo.TodoType != model.TodoTypeTask || todo.Completed {
			continue
		}
		if todo.Date.IsZero() {
			continue
		}
		if dayOf(todo.Date).Before(cutoff) {
			due = append(due, todo)
		}
	}

	sort.SliceStable(due, func(i, j int) bool {
		if !due[i].Date.Equal(due[j].Date) {
			return due[i].Date.Before(due[j].Date)
		}
		return due[i].CreatedAt.Before(due[j].CreatedAt)
	})

	return due, nil
}

// Move Tasks to a new date. Only todos owned by the caller are touched; ids
// that belong to another user are skipped without error, and the returned
// count reflects only actual updates.
func (svc *TodoService) MoveTasks(ctx context.Context, userID string, taskIDs []string, newDate time.Time) (int, error) {
	if newDate.IsZero() {
		return 0, &ValidationError{Message: "new date is required"}
	}
	if len(taskIDs) == 0 {
		return 0, nil
	}

	moved, err := svc.todos.UpdateTodoDates(ctx, userID, taskIDs, newDate)
	if err != nil {
		return 0, err
	}

	utils.TrackTodoOperation("move")
	return moved, nil
}

// Group Todos By calendar day. Todos without a usable date are skipped with
// a warning instead of failing the whole grouping.
func (svc *TodoService) GroupTodosByDate(ctx context.Context, userID string) (map[string][]*model.Todo, error) {
	todos, err := svc.todos.GetUserTodos(ctx, userID)
	if err != nil {
		return nil, err
	}

	grouped := make(map[string][]*model.Todo)
	for _, todo := range todos {
		if todo.Date.IsZero() {
			log.Printf("Skipping todo %s with invalid date while grouping", todo.TodoID)
			utils.TrackError("validation", "invalid_todo_date")
			continue
		}
		key := todo.Date.Format("2006-01-02")
		grouped[key] = append(grouped[key], todo)
	}

	return grouped, nil
}

// helper functions

func validateTodoType(todoType model.TodoType) error {
	switch todoType {
	case model.TodoTypeEvent, model.TodoTypeTask:
		return nil
	default:
		return &ValidationError{Message: "invalid todo type"}
	}
}

// dayOf discards the time-of-day component for same-day comparisons
func dayOf(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

func filterTodos(todos []*model.Todo, criteria FilterCriteria) []*model.Todo {
	results := make([]*model.Todo, 0, len(todos))
	for _, todo := range todos {
		if criteria.CategoryID != nil && todo.CategoryID != *criteria.CategoryID {
			continue
		}
		if criteria.Completed != nil && todo.Completed != *criteria.Completed {
			continue
		}
		if criteria.TodoType != nil && todo.TodoType != *criteria.TodoType {
			continue
		}
		if criteria.StartDate != nil || criteria.EndDate != nil {
			if todo.Date.IsZero() {
				// Date-bounded views skip undated todos rather than failing
				log.Printf("Skipping todo %s with invalid date while filtering", todo.TodoID)
				continue
			}
			day := dayOf(todo.Date)
			if criteria.StartDate != nil && day.Before(dayOf(*criteria.StartDate)) {
				continue
			}
			if criteria.EndDate != nil && day.After(dayOf(*criteria.EndDate)) {
				continue
			}
		}
		results = append(results, todo)
	}

	// Newest date first, ties broken by most recent creation
	sort.SliceStable(results, func(i, j int) bool {
		if !results[i].Date.Equal(results[j].Date) {
			return results[i].Date.After(results[j].Date)
		}
		return results[i].CreatedAt.After(results[j].CreatedAt)
	})

	return results
}

func computeStats(todos []*model.Todo) model.TodoStats {
	stats := model.TodoStats{Total: len(todos)}
	for _, todo := range todos {
		if todo.Completed {
			stats.Completed++
		}
	}
	stats.Incomplete = stats.Total - stats.Completed
	return stats
}
