package services

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"main/model"
	"main/utils"

	"github.com/redis/go-redis/v9"
)

// SettingsCache is a read-through cache for user settings. Settings are read
// on every calendar render, so the merged document is kept in Redis with a
// TTL and invalidated on update. Cache faults degrade to the store; they are
// never surfaced to callers.
type SettingsCache struct {
	client *redis.Client
	ttl    time.Duration
}

var GlobalSettingsCache *SettingsCache

// NewSettingsCache creates and initializes a new settings cache
func NewSettingsCache(redisURL string, ttl time.Duration) (*SettingsCache, error) {
	opts, err := redis.ParseURL(redisURL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %v", err)
	}

	client := redis.NewClient(opts)

	// Test connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %v", err)
	}

	return &SettingsCache{
		client: client,
		ttl:    ttl,
	}, nil
}

func settingsKey(userID string) string {
	return fmt.Sprintf("settings:%s", userID)
}

// Get returns the cached settings for a user, if present
func (sc *SettingsCache) Get(ctx context.Context, userID string) (*model.UserSettings, bool) {
	if userID == "" {
		return nil, false
	}

	data, err := sc.client.Get(ctx, settingsKey(userID)).Bytes()
	if err != nil {
		if err != redis.Nil {
			utils.TrackError("cache", "settings_get_failed")
			log.Printf("Settings cache read failed for %s: %v", userID, err)
		}
		return nil, false
	}

	var settings model.UserSettings
	if err := json.Unmarshal(data, &settings); err != nil {
		utils.TrackError("cache", "settings_decode_failed")
		return nil, false
	}
	return &settings, true
}

// Set caches the merged settings document with the configured TTL
func (sc *SettingsCache) Set(ctx context.Context, settings *model.UserSettings) {
	if settings == nil || settings.UserID == "" {
		return
	}

	data, err := json.Marshal(settings)
	if err != nil {
		utils.TrackError("cache", "settings_encode_failed")
		return
	}

	if err := sc.client.Set(ctx, settingsKey(settings.UserID), data, sc.ttl).Err(); err != nil {
		utils.TrackError("cache", "settings_set_failed")
		log.Printf("Settings cache write failed for %s: %v", settings.UserID, err)
	}
}

// Invalidate drops the cached settings for a user
func (sc *SettingsCache) Invalidate(ctx context.Context, userID string) {
	if userID == "" {
		return
	}

	if err := sc.client.Del(ctx, settingsKey(userID)).Err(); err != nil {
		utils.TrackError("cache", "settings_invalidate_failed")
		log.Printf("Settings cache invalidation failed for %s: %v", userID, err)
	}
}
