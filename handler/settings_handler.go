package handler

import (
	"main/dto"
	"main/usecase"
	"main/utils"

	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	service *usecase.SettingsService
}

func NewSettingsHandler(service *usecase.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

// GetSettings never returns not-found: a missing document is created from
// the schema defaults on first read.
func (h *SettingsHandler) GetSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	settings, err := h.service.GetUserSettings(c.Request.Context(), userID.(string))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToSettingsResponse(settings))
}

// UpdateSettings accepts any JSON object; unknown or invalid fields are
// dropped by the merge rather than rejected.
func (h *SettingsHandler) UpdateSettings(c *gin.Context) {
	userID, exists := c.Get("user_id")
	if !exists {
		utils.Unauthorized(c, "Missing user ID")
		return
	}

	var candidate map[string]any
	if err := c.ShouldBindJSON(&candidate); err != nil {
		utils.BadRequest(c, "Invalid request body: "+err.Error())
		return
	}

	settings, err := h.service.UpdateUserSettings(c.Request.Context(), userID.(string), candidate)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.Success(c, dto.ToSettingsResponse(settings))
}
