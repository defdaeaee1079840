package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type CategoryHandler struct {
	service *usecase.CategoryService
}

func NewCategoryHandler(service *usecase.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) GetCategories(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categories, err := h.service.GetUserCategories(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToCategoryResponses(categories))
}

func (h *CategoryHandler) CreateCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		Name      string `json:"name" binding:"required"`
		Color     string `json:"color" binding:"omitempty,categorycolor"`
		IsDefault bool   `json:"is_default"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.service.CreateCategory(c.Request.Context(),
		userID.(string), req.Name, req.Color, req.IsDefault)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Created(c, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) UpdateCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		utils.BadRequest(c, "Category ID is required")
		return
	}

	var req struct {
		Name      *string `json:"name"`
		Color     *string `json:"color" binding:"omitempty,categorycolor"`
		IsDefault *bool   `json:"is_default"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	category, err := h.service.UpdateCategory(c.Request.Context(),
		userID.(string), categoryID, req.Name, req.Color, req.IsDefault)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToCategoryResponse(category))
}

func (h *CategoryHandler) DeleteCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		utils.BadRequest(c, "Category ID is required")
		return
	}

	remaining, err := h.service.DeleteCategory(c.Request.Context(), userID.(string), categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToCategoryResponses(remaining))
}

func (h *CategoryHandler) ReorderCategories(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var req struct {
		OrderedIDs []string `json:"ordered_ids"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	categories, updated, err := h.service.ReorderCategories(c.Request.Context(),
		userID.(string), req.OrderedIDs)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{
		"categories":    dto.ToCategoryResponses(categories),
		"updated_count": updated,
	})
}

func (h *CategoryHandler) SetDefaultCategory(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	categoryID := c.Param("id")
	if categoryID == "" {
		utils.BadRequest(c, "Category ID is required")
		return
	}

	categories, err := h.service.SetDefaultCategory(c.Request.Context(), userID.(string), categoryID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToCategoryResponses(categories))
}

func (h *CategoryHandler) GetAvailableColors(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	colors, err := h.service.AvailableColors(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, gin.H{"colors": colors})
}
