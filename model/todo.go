package model

import "time"

type TodoType string

const (
	TodoTypeEvent TodoType = "EVENT" // fixed to its calendar date
	TodoTypeTask  TodoType = "TASK"  // eligible for rollover while incomplete
)

type Todo struct {
	TodoID     string    `bson:"_id,omitempty" json:"id"`
	UserID     string    `bson:"user_id" json:"user_id"`
	CategoryID string    `bson:"category_id" json:"category_id"`
	Title      string    `bson:"title" json:"title" binding:"required"`
	Date       time.Time `bson:"date" json:"date"`
	Completed  bool      `bson:"completed" json:"completed"`
	TodoType   TodoType  `bson:"todo_type" json:"todo_type"`
	CreatedAt  time.Time `bson:"created_at" json:"created_at"`
	UpdatedAt  time.Time `bson:"updated_at" json:"updated_at"`
}
