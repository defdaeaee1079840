package dto

import (
	"time"

	"main/model"
)

type CategoryResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Color     string    `json:"color"`
	Order     int       `json:"order"`
	IsDefault bool      `json:"is_default"`
	CreatedAt time.Time `json:"created_at"`
}

// CategoryRef is the joined summary embedded in todo responses
type CategoryRef struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Color string `json:"color"`
}

func ToCategoryResponse(category *model.Category) CategoryResponse {
	return CategoryResponse{
		ID:        category.CategoryID,
		Name:      category.Name,
		Color:     category.Color,
		Order:     category.Order,
		IsDefault: category.IsDefault,
		CreatedAt: category.CreatedAt,
	}
}

func ToCategoryResponses(categories []*model.Category) []CategoryResponse {
	responses := make([]CategoryResponse, len(categories))
	for i, category := range categories {
		responses[i] = ToCategoryResponse(category)
	}
	return responses
}
