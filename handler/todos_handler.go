package handler

import (
	"time"

	"main/dto"
	"main/model"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type TodoHandler struct {
	todos      *usecase.TodoService
	categories *usecase.CategoryService
}

func NewTodoHandler(todos *usecase.TodoService, categories *usecase.CategoryService) *TodoHandler {
	return &TodoHandler{todos: todos, categories: categories}
}

// parseDate accepts RFC3339 timestamps and plain calendar dates
func parseDate(value string) (time.Time, error) {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t, nil
	}
	return time.Parse("2006-01-02", value)
}

// categoryLookup builds the id -> category map used to join todo responses
func (h *TodoHandler) categoryLookup(c *gin.Context, userID string) map[string]*model.Category {
	categories, err := h.categories.GetUserCategories(c.Request.Context(), userID)
	if err != nil {
		// The join is decoration; the todo list is still served without it
		return nil
	}
	lookup := make(map[string]*model.Category, len(categories))
	for _, category := range categories {
		lookup[category.CategoryID] = category
	}
	return lookup
}

func (h *TodoHandler) GetTodos(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	criteria := usecase.FilterCriteria{UserID: userID.(string)}

	if raw := c.Query("start_date"); raw != "" {
		start, err := parseDate(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid start_date")
			return
		}
		criteria.StartDate = &start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := parseDate(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid end_date")
			return
		}
		criteria.EndDate = &end
	}
	if raw := c.Query("category_id"); raw != "" {
		criteria.CategoryID = &raw
	}
	if raw := c.Query("completed"); raw != "" {
		completed := raw == "true"
		criteria.Completed = &completed
	}
	if raw := c.Query("todo_type"); raw != "" {
		todoType := model.TodoType(raw)
		criteria.TodoType = &todoType
	}

	todos, err := h.todos.FilterTodos(c.Request.Context(), criteria)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToTodoResponses(todos, h.categoryLookup(c, userID.(string))))
}

func (h *TodoHandler) CreateTodo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Title      string         `json:"title" binding:"required"`
		Date       string         `json:"date" binding:"required"`
		CategoryID string         `json:"category_id" binding:"required"`
		TodoType   model.TodoType `json:"todo_type"`
		Completed  bool           `json:"completed"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	date, err := parseDate(req.Date)
	if err != nil {
		utils.BadRequest(c, "Invalid date")
		return
	}

	todo := &model.Todo{
		UserID:     userID.(string),
		CategoryID: req.CategoryID,
		Title:      req.Title,
		Date:       date,
		Completed:  req.Completed,
		TodoType:   req.TodoType,
	}

	if err := h.todos.CreateTodo(c.Request.Context(), todo); err != nil {
		respondServiceError(c, err)
		return
	}

	lookup := h.categoryLookup(c, userID.(string))
	utils.Created(c, dto.ToTodoResponse(todo, lookup[todo.CategoryID]))
}

func (h *TodoHandler) UpdateTodo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	todoID := c.Param("id")
	if todoID == "" {
		utils.BadRequest(c, "Todo ID is required")
		return
	}

	var req struct {
		Title      *string         `json:"title"`
		Date       *string         `json:"date"`
		Completed  *bool           `json:"completed"`
		TodoType   *model.TodoType `json:"todo_type"`
		CategoryID *string         `json:"category_id"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	input := usecase.UpdateTodoInput{
		Title:      req.Title,
		Completed:  req.Completed,
		TodoType:   req.TodoType,
		CategoryID: req.CategoryID,
	}
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			utils.BadRequest(c, "Invalid date")
			return
		}
		input.Date = &date
	}

	todo, err := h.todos.UpdateTodo(c.Request.Context(), userID.(string), todoID, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	lookup := h.categoryLookup(c, userID.(string))
	utils.Success(c, dto.ToTodoResponse(todo, lookup[todo.CategoryID]))
}

func (h *TodoHandler) DeleteTodo(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	todoID := c.Param("id")
	if todoID == "" {
		utils.BadRequest(c, "Todo ID is required")
		return
	}

	if err := h.todos.DeleteTodo(c.Request.Context(), userID.(string), todoID); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{"message": "Todo deleted"})
}

func (h *TodoHandler) DeleteAllTodos(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	deleted, err := h.todos.DeleteUserTodos(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{"deleted_count": deleted})
}

func (h *TodoHandler) MoveTasks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		TaskIDs []string `json:"task_ids" binding:"required"`
		NewDate string   `json:"new_date" binding:"required"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	newDate, err := parseDate(req.NewDate)
	if err != nil {
		utils.BadRequest(c, "Invalid new_date")
		return
	}

	moved, err := h.todos.MoveTasks(c.Request.Context(), userID.(string), req.TaskIDs, newDate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.MoveTasksResponse{MovedCount: moved})
}

func (h *TodoHandler) GetDueTasks(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	before := time.Now()
	if raw := c.Query("before"); raw != "" {
		parsed, err := parseDate(raw)
		if err != nil {
			utils.BadRequest(c, "Invalid before date")
			return
		}
		before = parsed
	}

	due, err := h.todos.GetDueTasks(c.Request.Context(), userID.(string), before)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToTodoResponses(due, h.categoryLookup(c, userID.(string))))
}

func (h *TodoHandler) GetTodoStats(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	stats, err := h.todos.GetTodoStats(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, stats)
}

func (h *TodoHandler) GetTodoStatsByType(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	stats, err := h.todos.GetTodoStatsByType(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, stats)
}

func (h *TodoHandler) GetGroupedTodos(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	grouped, err := h.todos.GroupTodosByDate(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	lookup := h.categoryLookup(c, userID.(string))
	response := make(map[string][]dto.TodoResponse, len(grouped))
	for day, todos := range grouped {
		response[day] = dto.ToTodoResponses(todos, lookup)
	}

	utils.Success(c, response)
}
