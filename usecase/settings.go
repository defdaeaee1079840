package usecase

import (
	"context"
	"encoding/json"
	"time"

	"main/model"
	"main/utils"
)

// SettingsCache is the optional read-through cache in front of the settings
// store. A nil cache disables caching.
type SettingsCache interface {
	Get(ctx context.Context, userID string) (*model.UserSettings, bool)
	Set(ctx context.Context, settings *model.UserSettings)
	Invalidate(ctx context.Context, userID string)
}

type SettingsService struct {
	store SettingsStore
	cache SettingsCache
}

func NewSettingsService(store SettingsStore, cache SettingsCache) *SettingsService {
	return &SettingsService{store: store, cache: cache}
}

// Get User Settings with create-on-read semantics: a missing document is
// synthesized from the schema defaults and persisted, never reported as
// not-found. Stored documents pass through schema migration so that a
// document written by an older version still comes back fully populated.
func (svc *SettingsService) GetUserSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	if svc.cache != nil {
		if cached, ok := svc.cache.Get(ctx, userID); ok {
			return cached, nil
		}
	}

	stored, err := svc.store.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	if stored == nil {
		settings := model.DefaultUserSettings()
		settings.UserID = userID
		now := time.Now()
		settings.CreatedAt = now
		settings.UpdatedAt = now

		// A failure here is a real I/O fault and propagates, unlike the
		// shape questions the merge absorbs.
		if err := svc.store.CreateUserSettings(ctx, &settings); err != nil {
			return nil, err
		}

		utils.TrackSettingsMerge("created")
		if svc.cache != nil {
			svc.cache.Set(ctx, &settings)
		}
		return &settings, nil
	}

	merged := MigrateSettings(stored)
	merged.UserID = stored.UserID
	merged.CreatedAt = stored.CreatedAt
	merged.UpdatedAt = stored.UpdatedAt

	utils.TrackSettingsMerge("merged")
	if svc.cache != nil {
		svc.cache.Set(ctx, &merged)
	}
	return &merged, nil
}

// Update User Settings: the candidate is merged field-by-field over the
// user's current settings, so a partially valid payload never wipes valid
// overrides and never fails on bad fields.
func (svc *SettingsService) UpdateUserSettings(ctx context.Context, userID string, candidate any) (*model.UserSettings, error) {
	current, err := svc.GetUserSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := MergeSettings(candidate, *current)
	merged.UserID = userID
	merged.CreatedAt = current.CreatedAt
	merged.UpdatedAt = time.Now()

	if err := svc.store.UpdateUserSettings(ctx, &merged); err != nil {
		return nil, err
	}

	if svc.cache != nil {
		svc.cache.Invalidate(ctx, userID)
		svc.cache.Set(ctx, &merged)
	}
	return &merged, nil
}

// MergeSettings reconciles an arbitrary JSON-shaped candidate against the
// given defaults. Every schema field is judged independently: a present,
// well-typed, enum-valid value is copied, anything else keeps the default.
// The function is total; it never fails, whatever the candidate's shape.
func MergeSettings(candidate any, defaults model.UserSettings) model.UserSettings {
	merged := defaults
	merged.SaturationLevels = append([]model.SaturationLevel(nil), defaults.SaturationLevels...)

	fields, ok := settingsMap(candidate)
	if !ok {
		return merged
	}

	if v, ok := stringField(fields, "theme", validTheme); ok {
		merged.Theme = v
	}
	if v, ok := stringField(fields, "language", validLanguage); ok {
		merged.Language = v
	}
	if v, ok := stringField(fields, "themeColor", utils.ValidateHexColor); ok {
		merged.ThemeColor = v
	}
	if v, ok := stringField(fields, "customColor", utils.ValidateHexColor); ok {
		merged.CustomColor = v
	}
	if v, ok := stringField(fields, "defaultView", validView); ok {
		merged.DefaultView = v
	}
	if v, ok := stringField(fields, "dateFormat", validDateFormat); ok {
		merged.DateFormat = v
	}
	if v, ok := stringField(fields, "timeFormat", validTimeFormat); ok {
		merged.TimeFormat = v
	}
	if v, ok := stringField(fields, "timezone", validTimezone); ok {
		merged.Timezone = v
	}
	if v, ok := stringField(fields, "weekStart", validWeekStart); ok {
		merged.WeekStart = v
	}
	if v, ok := boolField(fields, "autoMoveTodos"); ok {
		merged.AutoMoveTodos = v
	}
	if v, ok := boolField(fields, "showTaskMoveButton"); ok {
		merged.ShowTaskMoveButton = v
	}
	if v, ok := stringField(fields, "completedTodoDisplay", validCompletedDisplay); ok {
		merged.CompletedTodoDisplay = v
	}
	if v, ok := boolField(fields, "saturationEnabled"); ok {
		merged.SaturationEnabled = v
	}
	if levels, ok := saturationLevelsField(fields, "saturationLevels"); ok {
		merged.SaturationLevels = levels
	}
	if info, ok := objectField(fields, "userInfo"); ok {
		if v, ok := stringField(info, "name", anyString); ok {
			merged.UserInfo.Name = v
		}
		if v, ok := stringField(info, "email", anyString); ok {
			merged.UserInfo.Email = v
		}
	}
	if prefs, ok := objectField(fields, "categories"); ok {
		if v, ok := stringField(prefs, "defaultCategoryId", anyString); ok {
			merged.Categories.DefaultCategoryID = v
		}
		if v, ok := boolField(prefs, "showAll"); ok {
			merged.Categories.ShowAll = v
		}
	}

	return merged
}

// MigrateSettings upgrades a settings object of unknown vintage to the
// current schema. Shapes that already carry both composite fields are only
// re-validated; legacy shapes are seeded from defaults with their recognized
// scalar settings copied over, leaving the composites at their defaults.
func MigrateSettings(oldShape any) model.UserSettings {
	defaults := model.DefaultUserSettings()

	fields, ok := settingsMap(oldShape)
	if !ok {
		return MergeSettings(nil, defaults)
	}

	_, hasUserInfo := objectField(fields, "userInfo")
	_, hasCategories := objectField(fields, "categories")
	if hasUserInfo && hasCategories {
		return MergeSettings(fields, defaults)
	}

	// Legacy shape: composites never existed, so only scalars carry over
	legacy := make(map[string]any, len(fields))
	for key, value := range fields {
		if key == "userInfo" || key == "categories" {
			continue
		}
		legacy[key] = value
	}
	return MergeSettings(legacy, defaults)
}

// helper functions

func settingsMap(candidate any) (map[string]any, bool) {
	switch v := candidate.(type) {
	case nil:
		return nil, false
	case map[string]any:
		return v, true
	default:
		raw, err := json.Marshal(candidate)
		if err != nil {
			return nil, false
		}
		var m map[string]any
		if err := json.Unmarshal(raw, &m); err != nil || m == nil {
			return nil, false
		}
		return m, true
	}
}

func stringField(fields map[string]any, key string, valid func(string) bool) (string, bool) {
	raw, ok := fields[key]
	if !ok {
		return "", false
	}
	value, ok := raw.(string)
	if !ok || !valid(value) {
		return "", false
	}
	return value, true
}

func boolField(fields map[string]any, key string) (bool, bool) {
	raw, ok := fields[key]
	if !ok {
		return false, false
	}
	value, ok := raw.(bool)
	return value, ok
}

func objectField(fields map[string]any, key string) (map[string]any, bool) {
	raw, ok := fields[key]
	if !ok {
		return nil, false
	}
	value, ok := raw.(map[string]any)
	return value, ok
}

func saturationLevelsField(fields map[string]any, key string) ([]model.SaturationLevel, bool) {
	raw, ok := fields[key]
	if !ok {
		return nil, false
	}
	entries, ok := raw.([]any)
	if !ok || len(entries) == 0 {
		return nil, false
	}

	levels := make([]model.SaturationLevel, 0, len(entries))
	for _, entry := range entries {
		obj, ok := entry.(map[string]any)
		if !ok {
			return nil, false
		}
		days, ok := obj["days"].(float64)
		if !ok || days != float64(int(days)) || days < 0 {
			return nil, false
		}
		opacity, ok := obj["opacity"].(float64)
		if !ok || opacity < 0 || opacity > 1 {
			return nil, false
		}
		levels = append(levels, model.SaturationLevel{Days: int(days), Opacity: opacity})
	}
	return levels, true
}

func anyString(string) bool { return true }

func validTimezone(v string) bool { return v != "" }

func validTheme(v string) bool {
	switch v {
	case model.ThemeLight, model.ThemeDark, model.ThemeSystem:
		return true
	}
	return false
}

func validLanguage(v string) bool {
	switch v {
	case "ko", "en":
		return true
	}
	return false
}

func validView(v string) bool {
	switch v {
	case model.ViewMonth, model.ViewWeek, model.ViewDay:
		return true
	}
	return false
}

func validDateFormat(v string) bool {
	switch v {
	case "YYYY-MM-DD", "MM/DD/YYYY", "DD/MM/YYYY":
		return true
	}
	return false
}

func validTimeFormat(v string) bool {
	switch v {
	case "12h", "24h":
		return true
	}
	return false
}

func validWeekStart(v string) bool {
	switch v {
	case model.WeekStartSunday, model.WeekStartMonday, model.WeekStartSaturday:
		return true
	}
	return false
}

func validCompletedDisplay(v string) bool {
	switch v {
	case model.CompletedDisplayAll, model.CompletedDisplayYesterday, model.CompletedDisplayNone:
		return true
	}
	return false
}
