package config

import (
	"time"

	"main/utils"
)

type CacheConfig struct {
	RedisURL    string
	SettingsTTL time.Duration
	Enabled     bool
}

func LoadCacheConfig() CacheConfig {
	return CacheConfig{
		RedisURL:    utils.GetEnvAsString("REDIS_URL", "redis://localhost:6379/0"),
		SettingsTTL: utils.GetEnvAsDuration("SETTINGS_CACHE_TTL", 10*time.Minute),
		Enabled:     utils.GetEnvAsBool("SETTINGS_CACHE_ENABLED", true),
	}
}
