package model

import "time"

const (
	ThemeLight  = "light"
	ThemeDark   = "dark"
	ThemeSystem = "system"

	WeekStartSunday   = "sunday"
	WeekStartMonday   = "monday"
	WeekStartSaturday = "saturday"

	ViewMonth = "month"
	ViewWeek  = "week"
	ViewDay   = "day"

	CompletedDisplayAll       = "all"
	CompletedDisplayYesterday = "yesterday"
	CompletedDisplayNone      = "none"
)

// SaturationLevel describes one step of the visual fade-out applied to old todos.
// Callers supply levels pre-sorted by ascending Days; the merge engine keeps
// whatever order it is given.
type SaturationLevel struct {
	Days    int     `bson:"days" json:"days"`
	Opacity float64 `bson:"opacity" json:"opacity"`
}

type UserInfoSettings struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

type CategorySettings struct {
	DefaultCategoryID string `bson:"default_category_id" json:"defaultCategoryId"`
	ShowAll           bool   `bson:"show_all" json:"showAll"`
}

// UserSettings is the canonical settings schema. Every field must hold a valid
// value after any read or merge; unknown or wrong-typed input falls back to the
// defaults instead of failing.
type UserSettings struct {
	UserID               string            `bson:"user_id" json:"user_id"`
	Theme                string            `bson:"theme" json:"theme"`
	Language             string            `bson:"language" json:"language"`
	ThemeColor           string            `bson:"theme_color" json:"themeColor"`
	CustomColor          string            `bson:"custom_color" json:"customColor"`
	DefaultView          string            `bson:"default_view" json:"defaultView"`
	DateFormat           string            `bson:"date_format" json:"dateFormat"`
	TimeFormat           string            `bson:"time_format" json:"timeFormat"`
	Timezone             string            `bson:"timezone" json:"timezone"`
	WeekStart            string            `bson:"week_start" json:"weekStart"`
	AutoMoveTodos        bool              `bson:"auto_move_todos" json:"autoMoveTodos"`
	ShowTaskMoveButton   bool              `bson:"show_task_move_button" json:"showTaskMoveButton"`
	CompletedTodoDisplay string            `bson:"completed_todo_display" json:"completedTodoDisplay"`
	SaturationEnabled    bool              `bson:"saturation_enabled" json:"saturationEnabled"`
	SaturationLevels     []SaturationLevel `bson:"saturation_levels" json:"saturationLevels"`
	UserInfo             UserInfoSettings  `bson:"user_info" json:"userInfo"`
	Categories           CategorySettings  `bson:"categories" json:"categories"`
	CreatedAt            time.Time         `bson:"created_at" json:"created_at"`
	UpdatedAt            time.Time         `bson:"updated_at" json:"updated_at"`
}

// DefaultUserSettings returns a fresh copy of the schema defaults.
func DefaultUserSettings() UserSettings {
	return UserSettings{
		Theme:                ThemeSystem,
		Language:             "ko",
		ThemeColor:           "#2dd4bf",
		CustomColor:          "#2dd4bf",
		DefaultView:          ViewMonth,
		DateFormat:           "YYYY-MM-DD",
		TimeFormat:           "24h",
		Timezone:             "Asia/Seoul",
		WeekStart:            WeekStartSunday,
		AutoMoveTodos:        true,
		ShowTaskMoveButton:   true,
		CompletedTodoDisplay: CompletedDisplayAll,
		SaturationEnabled:    true,
		SaturationLevels: []SaturationLevel{
			{Days: 1, Opacity: 1.0},
			{Days: 3, Opacity: 0.7},
			{Days: 7, Opacity: 0.4},
			{Days: 14, Opacity: 0.2},
		},
		UserInfo:   UserInfoSettings{},
		Categories: CategorySettings{ShowAll: true},
	}
}
