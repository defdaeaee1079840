package dto

import "main/model"

// The settings endpoint returns the full canonical schema object. The model
// already carries the wire names, so the response only strips storage fields.
type SettingsResponse struct {
	Theme                string                  `json:"theme"`
	Language             string                  `json:"language"`
	ThemeColor           string                  `json:"themeColor"`
	CustomColor          string                  `json:"customColor"`
	DefaultView          string                  `json:"defaultView"`
	DateFormat           string                  `json:"dateFormat"`
	TimeFormat           string                  `json:"timeFormat"`
	Timezone             string                  `json:"timezone"`
	WeekStart            string                  `json:"weekStart"`
	AutoMoveTodos        bool                    `json:"autoMoveTodos"`
	ShowTaskMoveButton   bool                    `json:"showTaskMoveButton"`
	CompletedTodoDisplay string                  `json:"completedTodoDisplay"`
	SaturationEnabled    bool                    `json:"saturationEnabled"`
	SaturationLevels     []model.SaturationLevel `json:"saturationLevels"`
	UserInfo             model.UserInfoSettings  `json:"userInfo"`
	Categories           model.CategorySettings  `json:"categories"`
}

func ToSettingsResponse(settings *model.UserSettings) SettingsResponse {
	return SettingsResponse{
		Theme:                settings.Theme,
		Language:             settings.Language,
		ThemeColor:           settings.ThemeColor,
		CustomColor:          settings.CustomColor,
		DefaultView:          settings.DefaultView,
		DateFormat:           settings.DateFormat,
		TimeFormat:           settings.TimeFormat,
		Timezone:             settings.Timezone,
		WeekStart:            settings.WeekStart,
		AutoMoveTodos:        settings.AutoMoveTodos,
		ShowTaskMoveButton:   settings.ShowTaskMoveButton,
		CompletedTodoDisplay: settings.CompletedTodoDisplay,
		SaturationEnabled:    settings.SaturationEnabled,
		SaturationLevels:     settings.SaturationLevels,
		UserInfo:             settings.UserInfo,
		Categories:           settings.Categories,
	}
}
