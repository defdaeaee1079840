package dto

import (
	"time"

	"main/model"
)

type TodoResponse struct {
	ID         string         `json:"id"`
	Title      string         `json:"title"`
	Date       string         `json:"date"` // ISO-8601
	Completed  bool           `json:"completed"`
	TodoType   model.TodoType `json:"todo_type"`
	CategoryID string         `json:"category_id"`
	UserID     string         `json:"user_id"`
	Category   *CategoryRef   `json:"category,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
	UpdatedAt  time.Time      `json:"updated_at"`
}

type MoveTasksResponse struct {
	MovedCount int `json:"moved_count"`
}

// Convert model.Todo to TodoResponse, joining the owning category when known
func ToTodoResponse(todo *model.Todo, category *model.Category) TodoResponse {
	response := TodoResponse{
		ID:         todo.TodoID,
		Title:      todo.Title,
		Completed:  todo.Completed,
		TodoType:   todo.TodoType,
		CategoryID: todo.CategoryID,
		UserID:     todo.UserID,
		CreatedAt:  todo.CreatedAt,
		UpdatedAt:  todo.UpdatedAt,
	}

	if !todo.Date.IsZero() {
		response.Date = todo.Date.Format(time.RFC3339)
	}

	if category != nil {
		response.Category = &CategoryRef{
			ID:    category.CategoryID,
			Name:  category.Name,
			Color: category.Color,
		}
	}

	return response
}

// Convert a todo list, resolving categories through the given lookup
func ToTodoResponses(todos []*model.Todo, categories map[string]*model.Category) []TodoResponse {
	responses := make([]TodoResponse, len(todos))
	for i, todo := range todos {
		responses[i] = ToTodoResponse(todo, categories[todo.CategoryID])
	}
	return responses
}
