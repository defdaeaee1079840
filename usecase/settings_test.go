package usecase

import (
	"context"
	"errors"
	"testing"

	"main/model"
	"main/repository"
)

func TestMergeSettings(t *testing.T) {
	tests := []struct {
		name string
		run  func(t *testing.T)
	}{
		{
			name: "Nil Candidate Keeps Defaults",
			run: func(t *testing.T) {
				merged := MergeSettings(nil, model.DefaultUserSettings())
				defaults := model.DefaultUserSettings()
				if merged.Theme != defaults.Theme || merged.Language != defaults.Language {
					t.Fatalf("Nil candidate changed defaults: %+v", merged)
				}
			},
		},
		{
			name: "Empty Object Keeps Defaults",
			run: func(t *testing.T) {
				merged := MergeSettings(map[string]any{}, model.DefaultUserSettings())
				if merged.Theme != model.ThemeSystem || merged.WeekStart != model.WeekStartSunday {
					t.Fatalf("Empty object changed defaults: %+v", merged)
				}
			},
		},
		{
			name: "Non Object Candidate Keeps Defaults",
			run: func(t *testing.T) {
				for _, candidate := range []any{"a string", 42, []any{"theme"}, true} {
					merged := MergeSettings(candidate, model.DefaultUserSettings())
					if merged.Theme != model.ThemeSystem {
						t.Fatalf("Candidate %v changed defaults", candidate)
					}
				}
			},
		},
		{
			name: "Invalid Enum Falls Back Per Field",
			run: func(t *testing.T) {
				merged := MergeSettings(map[string]any{
					"theme":    "neon",
					"language": "ko",
				}, model.DefaultUserSettings())
				if merged.Theme != model.ThemeSystem {
					t.Fatalf("Invalid theme was accepted: %s", merged.Theme)
				}
				if merged.Language != "ko" {
					t.Fatalf("Valid language next to invalid theme was dropped: %s", merged.Language)
				}
			},
		},
		{
			name: "Wrong Types Fall Back Per Field",
			run: func(t *testing.T) {
				merged := MergeSettings(map[string]any{
					"theme":         123,
					"autoMoveTodos": "yes",
					"weekStart":     model.WeekStartMonday,
				}, model.DefaultUserSettings())
				if merged.Theme != model.ThemeSystem {
					t.Fatal("Numeric theme was accepted")
				}
				if !merged.AutoMoveTodos {
					t.Fatal("Wrong-typed autoMoveTodos displaced the default")
				}
				if merged.WeekStart != model.WeekStartMonday {
					t.Fatal("Valid weekStart was dropped")
				}
			},
		},
		{
			name: "Valid Scalars Override Defaults",
			run: func(t *testing.T) {
				merged := MergeSettings(map[string]any{
					"theme":                model.ThemeDark,
					"language":             "en",
					"themeColor":           "#336699",
					"dateFormat":           "DD/MM/YYYY",
					"timeFormat":           "12h",
					"timezone":             "Europe/Berlin",
					"defaultView":          model.ViewWeek,
					"completedTodoDisplay": model.CompletedDisplayNone,
					"autoMoveTodos":        true,
					"saturationEnabled":    true,
				}, model.DefaultUserSettings())
				if merged.Theme != model.ThemeDark || merged.Language != "en" ||
					merged.ThemeColor != "#336699" || merged.DateFormat != "DD/MM/YYYY" ||
					merged.TimeFormat != "12h" || merged.Timezone != "Europe/Berlin" ||
					merged.DefaultView != model.ViewWeek ||
					merged.CompletedTodoDisplay != model.CompletedDisplayNone ||
					!merged.AutoMoveTodos || !merged.SaturationEnabled {
					t.Fatalf("Valid overrides were not applied: %+v", merged)
				}
			},
		},
		{
			name: "Saturation Levels Replace As A Whole",
			run: func(t *testing.T) {
				merged := MergeSettings(map[string]any{
					"saturationLevels": []any{
						map[string]any{"days": float64(2), "opacity": 0.9},
						map[string]any{"days": float64(5), "opacity": 0.5},
					},
				}, model.DefaultUserSettings())
				if len(merged.SaturationLevels) != 2 {
					t.Fatalf("Expected 2 levels, got %d", len(merged.SaturationLevels))
				}
				if merged.SaturationLevels[0].Days != 2 || merged.SaturationLevels[0].Opacity != 0.9 {
					t.Fatalf("First level is wrong: %+v", merged.SaturationLevels[0])
				}
			},
		},
		{
			name: "Malformed Saturation Levels Keep Defaults",
			run: func(t *testing.T) {
				defaults := model.DefaultUserSettings()
				for _, levels := range []any{
					[]any{},
					[]any{"not an object"},
					[]any{map[string]any{"days": float64(-1), "opacity": 0.5}},
					[]any{map[string]any{"days": float64(3), "opacity": 1.5}},
					[]any{map[string]any{"days": 2.5, "opacity": 0.5}},
				} {
					merged := MergeSettings(map[string]any{"saturationLevels": levels}, defaults)
					if len(merged.SaturationLevels) != len(defaults.SaturationLevels) {
						t.Fatalf("Levels %v replaced the defaults", levels)
					}
				}
			},
		},
		{
			name: "Composite Fields Merge Per Key",
			run: func(t *testing.T) {
				merged := MergeSettings(map[string]any{
					"userInfo":   map[string]any{"name": "Mina"},
					"categories": map[string]any{"showAll": false, "defaultCategoryId": "cat-9"},
				}, model.DefaultUserSettings())
				if merged.UserInfo.Name != "Mina" {
					t.Fatalf("userInfo.name not applied: %q", merged.UserInfo.Name)
				}
				if merged.UserInfo.Email != "" {
					t.Fatalf("Missing email gained a value: %q", merged.UserInfo.Email)
				}
				if merged.Categories.ShowAll || merged.Categories.DefaultCategoryID != "cat-9" {
					t.Fatalf("categories composite not merged: %+v", merged.Categories)
				}
			},
		},
		{
			name: "Struct Candidates Merge Like JSON",
			run: func(t *testing.T) {
				stored := model.DefaultUserSettings()
				stored.Theme = model.ThemeDark
				stored.Language = "en"
				merged := MergeSettings(&stored, model.DefaultUserSettings())
				if merged.Theme != model.ThemeDark || merged.Language != "en" {
					t.Fatalf("Struct candidate lost overrides: %+v", merged)
				}
			},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, tc.run)
	}
}

func TestMigrateSettings(t *testing.T) {
	t.Run("Current Shape Is Only Revalidated", func(t *testing.T) {
		migrated := MigrateSettings(map[string]any{
			"theme":      model.ThemeDark,
			"userInfo":   map[string]any{"name": "Mina", "email": "mina@example.com"},
			"categories": map[string]any{"defaultCategoryId": "cat-1", "showAll": true},
		})
		if migrated.Theme != model.ThemeDark {
			t.Fatalf("Scalar lost during migration: %s", migrated.Theme)
		}
		if migrated.UserInfo.Name != "Mina" || migrated.Categories.DefaultCategoryID != "cat-1" {
			t.Fatal("Composite fields lost during migration of a current shape")
		}
	})

	t.Run("Legacy Shape Seeds Composites From Defaults", func(t *testing.T) {
		migrated := MigrateSettings(map[string]any{
			"theme":    model.ThemeLight,
			"language": "en",
			// only one composite present, so this is a legacy shape
			"userInfo": map[string]any{"name": "stale"},
		})
		if migrated.Theme != model.ThemeLight || migrated.Language != "en" {
			t.Fatal("Recognized scalars did not carry over")
		}
		if migrated.UserInfo.Name != "" {
			t.Fatalf("Legacy composite leaked into migrated settings: %q", migrated.UserInfo.Name)
		}
	})

	t.Run("Garbage Input Yields Defaults", func(t *testing.T) {
		migrated := MigrateSettings("not even close")
		defaults := model.DefaultUserSettings()
		if migrated.Theme != defaults.Theme || len(migrated.SaturationLevels) != len(defaults.SaturationLevels) {
			t.Fatalf("Garbage input did not yield defaults: %+v", migrated)
		}
	})
}

// failingSettingsStore simulates a storage fault on every operation.
type failingSettingsStore struct{ err error }

func (s *failingSettingsStore) GetUserSettings(ctx context.Context, userID string) (*model.UserSettings, error) {
	return nil, s.err
}
func (s *failingSettingsStore) CreateUserSettings(ctx context.Context, settings *model.UserSettings) error {
	return s.err
}
func (s *failingSettingsStore) UpdateUserSettings(ctx context.Context, settings *model.UserSettings) error {
	return s.err
}

func TestSettingsService(t *testing.T) {
	userID := "user-1"

	t.Run("Get Creates Defaults On First Read", func(t *testing.T) {
		store := repository.NewMemorySettingsStore()
		svc := NewSettingsService(store, nil)

		settings, err := svc.GetUserSettings(context.Background(), userID)
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		if settings.UserID != userID {
			t.Fatalf("Settings carry the wrong user: %s", settings.UserID)
		}
		if settings.Theme != model.ThemeSystem || settings.Language != "ko" {
			t.Fatalf("Fresh settings are not the defaults: %+v", settings)
		}

		persisted, err := store.GetUserSettings(context.Background(), userID)
		if err != nil || persisted == nil {
			t.Fatalf("Defaults were not persisted: %v", err)
		}
	})

	t.Run("Get Propagates Storage Faults", func(t *testing.T) {
		fault := errors.New("connection reset")
		svc := NewSettingsService(&failingSettingsStore{err: fault}, nil)

		_, err := svc.GetUserSettings(context.Background(), userID)
		if !errors.Is(err, fault) {
			t.Fatalf("Expected the storage fault, got %v", err)
		}
	})

	t.Run("Update Merges Over Current Settings", func(t *testing.T) {
		store := repository.NewMemorySettingsStore()
		svc := NewSettingsService(store, nil)

		if _, err := svc.UpdateUserSettings(context.Background(), userID, map[string]any{
			"theme": model.ThemeDark,
		}); err != nil {
			t.Fatalf("First update failed: %v", err)
		}

		// A later partial payload must not reset the earlier override
		updated, err := svc.UpdateUserSettings(context.Background(), userID, map[string]any{
			"language": "en",
		})
		if err != nil {
			t.Fatalf("Second update failed: %v", err)
		}
		if updated.Theme != model.ThemeDark || updated.Language != "en" {
			t.Fatalf("Partial update wiped an earlier override: %+v", updated)
		}
	})

	t.Run("Update Absorbs Invalid Fields", func(t *testing.T) {
		store := repository.NewMemorySettingsStore()
		svc := NewSettingsService(store, nil)

		updated, err := svc.UpdateUserSettings(context.Background(), userID, map[string]any{
			"theme":    "neon",
			"language": "en",
		})
		if err != nil {
			t.Fatalf("Update failed on an invalid field: %v", err)
		}
		if updated.Theme != model.ThemeSystem {
			t.Fatalf("Invalid theme was persisted: %s", updated.Theme)
		}
		if updated.Language != "en" {
			t.Fatalf("Valid field next to invalid one was dropped: %s", updated.Language)
		}
	})

	t.Run("Read Path Upgrades Stored Documents", func(t *testing.T) {
		store := repository.NewMemorySettingsStore()
		svc := NewSettingsService(store, nil)

		stored := model.UserSettings{
			UserID:   userID,
			Theme:    model.ThemeDark,
			UserInfo: model.UserInfoSettings{Name: "Mina"},
		}
		if err := store.CreateUserSettings(context.Background(), &stored); err != nil {
			t.Fatalf("Failed to seed document: %v", err)
		}

		settings, err := svc.GetUserSettings(context.Background(), userID)
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		// Migration keeps valid overrides and composites, backfills the rest
		if settings.Theme != model.ThemeDark || settings.UserInfo.Name != "Mina" {
			t.Fatalf("Stored values lost on read: %+v", settings)
		}
		if settings.DateFormat != "YYYY-MM-DD" || settings.WeekStart != model.WeekStartSunday {
			t.Fatalf("Missing fields not backfilled: %+v", settings)
		}
	})

	t.Run("Stored Partial Document Comes Back Fully Populated", func(t *testing.T) {
		store := repository.NewMemorySettingsStore()
		svc := NewSettingsService(store, nil)

		partial := model.UserSettings{UserID: userID, Theme: model.ThemeDark}
		if err := store.CreateUserSettings(context.Background(), &partial); err != nil {
			t.Fatalf("Failed to seed partial document: %v", err)
		}

		settings, err := svc.GetUserSettings(context.Background(), userID)
		if err != nil {
			t.Fatalf("Failed to get settings: %v", err)
		}
		if settings.Theme != model.ThemeDark {
			t.Fatalf("Stored override lost: %s", settings.Theme)
		}
		if settings.Language != "ko" || len(settings.SaturationLevels) == 0 {
			t.Fatalf("Missing fields were not backfilled: %+v", settings)
		}
	})
}
