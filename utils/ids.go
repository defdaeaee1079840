package utils

import "github.com/google/uuid"

// NewID generates an opaque unique identifier for categories and todos.
func NewID() string {
	return uuid.New().String()
}
