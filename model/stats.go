package model

type TodoStats struct {
	Total      int `json:"total"`
	Completed  int `json:"completed"`
	Incomplete int `json:"incomplete"`
}

// TypedTodoStats always carries both partitions, even when one is empty.
type TypedTodoStats struct {
	Event TodoStats `json:"event"`
	Task  TodoStats `json:"task"`
}
