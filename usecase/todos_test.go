package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"main/model"
	"main/repository"
)

func newTodoServiceForTest(t *testing.T, userID string) (*TodoService, *repository.MemoryTodoStore, *model.Category) {
	t.Helper()
	categories := repository.NewMemoryCategoryStore()
	todos := repository.NewMemoryTodoStore()

	category := &model.Category{
		CategoryID: "cat-1",
		UserID:     userID,
		Name:       "general",
		Color:      model.DefaultPalette[0],
	}
	if err := categories.CreateCategory(context.Background(), category); err != nil {
		t.Fatalf("Failed to seed category: %v", err)
	}

	return NewTodoService(todos, categories), todos, category
}

func seedTodo(t *testing.T, todos *repository.MemoryTodoStore, todo *model.Todo) {
	t.Helper()
	if todo.TodoType == "" {
		todo.TodoType = model.TodoTypeEvent
	}
	if err := todos.CreateTodo(context.Background(), todo); err != nil {
		t.Fatalf("Failed to seed todo %s: %v", todo.TodoID, err)
	}
}

func day(year int, month time.Month, d int) time.Time {
	return time.Date(year, month, d, 0, 0, 0, 0, time.UTC)
}

func TestCreateTodo(t *testing.T) {
	userID := "user-1"

	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "Creates With Defaults",
			run: func(t *testing.T) {
				svc, todos, category := newTodoServiceForTest(t, userID)
				todo := &model.Todo{
					UserID:     userID,
					CategoryID: category.CategoryID,
					Title:      "standup",
					Date:       day(2026, 3, 1),
				}
				if err := svc.CreateTodo(context.Background(), todo); err != nil {
					t.Fatalf("Failed to create todo: %v", err)
				}
				if todo.TodoID == "" {
					t.Fatal("Expected a generated todo id")
				}
				if todo.TodoType != model.TodoTypeEvent {
					t.Fatalf("Expected default type EVENT, got %s", todo.TodoType)
				}
				stored, err := todos.GetTodoByID(context.Background(), userID, todo.TodoID)
				if err != nil || stored == nil {
					t.Fatalf("Created todo not found in store: %v", err)
				}
			},
		},
		{
			name: "Rejects Missing Title",
			run: func(t *testing.T) {
				svc, _, category := newTodoServiceForTest(t, userID)
				err := svc.CreateTodo(context.Background(), &model.Todo{
					UserID:     userID,
					CategoryID: category.CategoryID,
					Date:       day(2026, 3, 1),
				})
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
			},
		},
		{
			name: "Rejects Missing Date",
			run: func(t *testing.T) {
				svc, _, category := newTodoServiceForTest(t, userID)
				err := svc.CreateTodo(context.Background(), &model.Todo{
					UserID:     userID,
					CategoryID: category.CategoryID,
					Title:      "standup",
				})
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
			},
		},
		{
			name: "Rejects Unknown Todo Type",
			run: func(t *testing.T) {
				svc, _, category := newTodoServiceForTest(t, userID)
				err := svc.CreateTodo(context.Background(), &model.Todo{
					UserID:     userID,
					CategoryID: category.CategoryID,
					Title:      "standup",
					Date:       day(2026, 3, 1),
					TodoType:   model.TodoType("REMINDER"),
				})
				var validationErr *ValidationError
				if !errors.As(err, &validationErr) {
					t.Fatalf("Expected ValidationError, got %v", err)
				}
			},
		},
		{
			name: "Cross User Category Is Not Found",
			run: func(t *testing.T) {
				svc, _, _ := newTodoServiceForTest(t, userID)
				err := svc.CreateTodo(context.Background(), &model.Todo{
					UserID:     userID,
					CategoryID: "someone-elses-category",
					Title:      "standup",
					Date:       day(2026, 3, 1),
				})
				var notFoundErr *NotFoundError
				if !errors.As(err, &notFoundErr) {
					t.Fatalf("Expected NotFoundError, got %v", err)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestUpdateTodo(t *testing.T) {
	userID := "user-1"

	t.Run("Merges Only Provided Fields", func(t *testing.T) {
		svc, todos, category := newTodoServiceForTest(t, userID)
		seedTodo(t, todos, &model.Todo{
			TodoID:     "todo-1",
			UserID:     userID,
			CategoryID: category.CategoryID,
			Title:      "draft report",
			Date:       day(2026, 3, 1),
		})

		completed := true
		updated, err := svc.UpdateTodo(context.Background(), userID, "todo-1", UpdateTodoInput{
			Completed: &completed,
		})
		if err != nil {
			t.Fatalf("Failed to update todo: %v", err)
		}
		if !updated.Completed {
			t.Fatal("Completed flag was not applied")
		}
		if updated.Title != "draft report" || !updated.Date.Equal(day(2026, 3, 1)) {
			t.Fatal("Omitted fields were changed by the update")
		}
	})

	t.Run("Unknown Todo Is Not Found", func(t *testing.T) {
		svc, _, _ := newTodoServiceForTest(t, userID)
		title := "renamed"
		_, err := svc.UpdateTodo(context.Background(), userID, "missing", UpdateTodoInput{Title: &title})
		var notFoundErr *NotFoundError
		if !errors.As(err, &notFoundErr) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
	})

	t.Run("Other Users Todo Is Not Found", func(t *testing.T) {
		svc, todos, _ := newTodoServiceForTest(t, userID)
		seedTodo(t, todos, &model.Todo{
			TodoID: "theirs",
			UserID: "user-2",
			Title:  "secret",
			Date:   day(2026, 3, 1),
		})

		completed := true
		_, err := svc.UpdateTodo(context.Background(), userID, "theirs", UpdateTodoInput{Completed: &completed})
		var notFoundErr *NotFoundError
		if !errors.As(err, &notFoundErr) {
			t.Fatalf("Expected NotFoundError, got %v", err)
		}
	})
}

func TestFilterTodos(t *testing.T) {
	userID := "user-1"

	seed := func(t *testing.T) (*TodoService, *model.Category) {
		svc, todos, category := newTodoServiceForTest(t, userID)
		seedTodo(t, todos, &model.Todo{
			TodoID: "before-range", UserID: userID, CategoryID: category.CategoryID,
			Title: "before", Date: day(2026, 2, 28), TodoType: model.TodoTypeTask,
			CreatedAt: day(2026, 2, 1),
		})
		seedTodo(t, todos, &model.Todo{
			TodoID: "range-start", UserID: userID, CategoryID: category.CategoryID,
			Title: "start", Date: day(2026, 3, 1),
			CreatedAt: day(2026, 2, 2),
		})
		seedTodo(t, todos, &model.Todo{
			TodoID: "range-end", UserID: userID, CategoryID: category.CategoryID,
			Title: "end", Date: day(2026, 3, 31), Completed: true,
			CreatedAt: day(2026, 2, 3),
		})
		seedTodo(t, todos, &model.Todo{
			TodoID: "after-range", UserID: userID, CategoryID: category.CategoryID,
			Title: "after", Date: day(2026, 4, 1),
			CreatedAt: day(2026, 2, 4),
		})
		return svc, category
	}

	t.Run("Date Range Is Inclusive", func(t *testing.T) {
		svc, _ := seed(t)
		start := day(2026, 3, 1)
		end := day(2026, 3, 31)
		results, err := svc.FilterTodos(context.Background(), FilterCriteria{
			UserID: userID, StartDate: &start, EndDate: &end,
		})
		if err != nil {
			t.Fatalf("Failed to filter: %v", err)
		}
		if len(results) != 2 {
			t.Fatalf("Expected both boundary todos, got %d", len(results))
		}
		// Newest date first
		if results[0].TodoID != "range-end" || results[1].TodoID != "range-start" {
			t.Fatalf("Wrong order: %s, %s", results[0].TodoID, results[1].TodoID)
		}
	})

	t.Run("Criteria Are Conjunctive", func(t *testing.T) {
		svc, category := seed(t)
		completed := false
		taskType := model.TodoTypeTask
		results, err := svc.FilterTodos(context.Background(), FilterCriteria{
			UserID:     userID,
			CategoryID: &category.CategoryID,
			Completed:  &completed,
			TodoType:   &taskType,
		})
		if err != nil {
			t.Fatalf("Failed to filter: %v", err)
		}
		if len(results) != 1 || results[0].TodoID != "before-range" {
			t.Fatalf("Expected only the incomplete task, got %d results", len(results))
		}
	})

	t.Run("No Criteria Returns Everything Newest First", func(t *testing.T) {
		svc, _ := seed(t)
		results, err := svc.FilterTodos(context.Background(), FilterCriteria{UserID: userID})
		if err != nil {
			t.Fatalf("Failed to filter: %v", err)
		}
		if len(results) != 4 {
			t.Fatalf("Expected 4 todos, got %d", len(results))
		}
		for i := 1; i < len(results); i++ {
			if results[i].Date.After(results[i-1].Date) {
				t.Fatal("Results are not sorted newest first")
			}
		}
	})

	t.Run("Same Date Ties Break By Creation Desc", func(t *testing.T) {
		svc, todos, category := newTodoServiceForTest(t, userID)
		seedTodo(t, todos, &model.Todo{
			TodoID: "older", UserID: userID, CategoryID: category.CategoryID,
			Title: "older", Date: day(2026, 3, 5), CreatedAt: day(2026, 3, 1),
		})
		seedTodo(t, todos, &model.Todo{
			TodoID: "newer", UserID: userID, CategoryID: category.CategoryID,
			Title: "newer", Date: day(2026, 3, 5), CreatedAt: day(2026, 3, 2),
		})

		results, err := svc.FilterTodos(context.Background(), FilterCriteria{UserID: userID})
		if err != nil {
			t.Fatalf("Failed to filter: %v", err)
		}
		if results[0].TodoID != "newer" || results[1].TodoID != "older" {
			t.Fatal("Same-date todos are not ordered by creation, newest first")
		}
	})

	t.Run("Missing User Is Rejected", func(t *testing.T) {
		svc, _ := seed(t)
		_, err := svc.FilterTodos(context.Background(), FilterCriteria{})
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
	})
}

func TestTodoStats(t *testing.T) {
	userID := "user-1"

	t.Run("Counts Are Additive", func(t *testing.T) {
		svc, todos, category := newTodoServiceForTest(t, userID)
		seedTodo(t, todos, &model.Todo{
			TodoID: "t1", UserID: userID, CategoryID: category.CategoryID,
			Title: "a", Date: day(2026, 3, 1), Completed: true,
		})
		seedTodo(t, todos, &model.Todo{
			TodoID: "t2", UserID: userID, CategoryID: category.CategoryID,
			Title: "b", Date: day(2026, 3, 2),
		})
		seedTodo(t, todos, &model.Todo{
			TodoID: "t3", UserID: userID, CategoryID: category.CategoryID,
			Title: "c", Date: day(2026, 3, 3),
		})

		stats, err := svc.GetTodoStats(context.Background(), userID)
		if err != nil {
			t.Fatalf("Failed to compute stats: %v", err)
		}
		if stats.Total != 3 || stats.Completed != 1 || stats.Incomplete != 2 {
			t.Fatalf("Unexpected stats: %+v", stats)
		}
		if stats.Completed+stats.Incomplete != stats.Total {
			t.Fatal("Completed and incomplete do not sum to total")
		}
	})

	t.Run("By Type Reports Zeros For Empty Partitions", func(t *testing.T) {
		svc, todos, category := newTodoServiceForTest(t, userID)
		seedTodo(t, todos, &model.Todo{
			TodoID: "e1", UserID: userID, CategoryID: category.CategoryID,
			Title: "event", Date: day(2026, 3, 1),
		})

		stats, err := svc.GetTodoStatsByType(context.Background(), userID)
		if err != nil {
			t.Fatalf("Failed to compute typed stats: %v", err)
		}
		if stats.Event.Total != 1 || stats.Event.Incomplete != 1 {
			t.Fatalf("Unexpected event stats: %+v", stats.Event)
		}
		if stats.Task.Total != 0 || stats.Task.Completed != 0 || stats.Task.Incomplete != 0 {
			t.Fatalf("Task partition should be all zero, got %+v", stats.Task)
		}
	})
}

func TestGetDueTasks(t *testing.T) {
	userID := "user-1"
	svc, todos, category := newTodoServiceForTest(t, userID)

	seedTodo(t, todos, &model.Todo{
		TodoID: "overdue-old", UserID: userID, CategoryID: category.CategoryID,
		Title: "oldest", Date: day(2026, 3, 1), TodoType: model.TodoTypeTask,
	})
	seedTodo(t, todos, &model.Todo{
		TodoID: "overdue-recent", UserID: userID, CategoryID: category.CategoryID,
		Title: "recent", Date: day(2026, 3, 9), TodoType: model.TodoTypeTask,
	})
	seedTodo(t, todos, &model.Todo{
		TodoID: "due-today", UserID: userID, CategoryID: category.CategoryID,
		Title: "today", Date: day(2026, 3, 10), TodoType: model.TodoTypeTask,
	})
	seedTodo(t, todos, &model.Todo{
		TodoID: "done", UserID: userID, CategoryID: category.CategoryID,
		Title: "done", Date: day(2026, 3, 1), TodoType: model.TodoTypeTask, Completed: true,
	})
	seedTodo(t, todos, &model.Todo{
		TodoID: "event", UserID: userID, CategoryID: category.CategoryID,
		Title: "event", Date: day(2026, 3, 1),
	})

	due, err := svc.GetDueTasks(context.Background(), userID, day(2026, 3, 10))
	if err != nil {
		t.Fatalf("Failed to fetch due tasks: %v", err)
	}

	// Strictly before the cutoff day, incomplete tasks only, oldest first
	if len(due) != 2 {
		t.Fatalf("Expected 2 due tasks, got %d", len(due))
	}
	if due[0].TodoID != "overdue-old" || due[1].TodoID != "overdue-recent" {
		t.Fatalf("Wrong order: %s, %s", due[0].TodoID, due[1].TodoID)
	}
}

func TestMoveTasks(t *testing.T) {
	userID := "user-1"

	t.Run("Skips Foreign Ids And Counts Actual Updates", func(t *testing.T) {
		svc, todos, category := newTodoServiceForTest(t, userID)
		seedTodo(t, todos, &model.Todo{
			TodoID: "mine", UserID: userID, CategoryID: category.CategoryID,
			Title: "mine", Date: day(2026, 3, 1), TodoType: model.TodoTypeTask,
		})
		seedTodo(t, todos, &model.Todo{
			TodoID: "theirs", UserID: "user-2",
			Title: "theirs", Date: day(2026, 3, 1), TodoType: model.TodoTypeTask,
		})

		target := day(2026, 3, 15)
		moved, err := svc.MoveTasks(context.Background(), userID,
			[]string{"mine", "theirs", "missing"}, target)
		if err != nil {
			t.Fatalf("Failed to move tasks: %v", err)
		}
		if moved != 1 {
			t.Fatalf("Expected 1 move, got %d", moved)
		}

		mine, _ := todos.GetTodoByID(context.Background(), userID, "mine")
		if !mine.Date.Equal(target) {
			t.Fatal("Owned task was not moved")
		}
		theirs, _ := todos.GetTodoByID(context.Background(), "user-2", "theirs")
		if !theirs.Date.Equal(day(2026, 3, 1)) {
			t.Fatal("Foreign task was modified")
		}
	})

	t.Run("Empty Id List Moves Nothing", func(t *testing.T) {
		svc, _, _ := newTodoServiceForTest(t, userID)
		moved, err := svc.MoveTasks(context.Background(), userID, nil, day(2026, 3, 15))
		if err != nil {
			t.Fatalf("Expected no error, got %v", err)
		}
		if moved != 0 {
			t.Fatalf("Expected 0 moves, got %d", moved)
		}
	})

	t.Run("Zero Date Is Rejected", func(t *testing.T) {
		svc, _, _ := newTodoServiceForTest(t, userID)
		_, err := svc.MoveTasks(context.Background(), userID, []string{"any"}, time.Time{})
		var validationErr *ValidationError
		if !errors.As(err, &validationErr) {
			t.Fatalf("Expected ValidationError, got %v", err)
		}
	})
}

func TestGroupTodosByDate(t *testing.T) {
	userID := "user-1"
	svc, todos, category := newTodoServiceForTest(t, userID)

	seedTodo(t, todos, &model.Todo{
		TodoID: "a", UserID: userID, CategoryID: category.CategoryID,
		Title: "a", Date: day(2026, 3, 1),
	})
	seedTodo(t, todos, &model.Todo{
		TodoID: "b", UserID: userID, CategoryID: category.CategoryID,
		Title: "b", Date: day(2026, 3, 1),
	})
	seedTodo(t, todos, &model.Todo{
		TodoID: "c", UserID: userID, CategoryID: category.CategoryID,
		Title: "c", Date: day(2026, 3, 2),
	})
	seedTodo(t, todos, &model.Todo{
		TodoID: "undated", UserID: userID, CategoryID: category.CategoryID,
		Title: "broken",
	})

	grouped, err := svc.GroupTodosByDate(context.Background(), userID)
	if err != nil {
		t.Fatalf("Failed to group todos: %v", err)
	}
	if len(grouped) != 2 {
		t.Fatalf("Expected 2 groups, got %d", len(grouped))
	}
	if len(grouped["2026-03-01"]) != 2 || len(grouped["2026-03-02"]) != 1 {
		t.Fatalf("Unexpected group sizes: %d and %d",
			len(grouped["2026-03-01"]), len(grouped["2026-03-02"]))
	}
}
