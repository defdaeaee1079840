package config

import "main/utils"

type ServerConfig struct {
	Port           string
	MaxRequestBody int64
}

func LoadServerConfig() ServerConfig {
	return ServerConfig{
		Port:           utils.GetEnvAsString("PORT", "8080"),
		MaxRequestBody: int64(utils.GetEnvAsUint64("MAX_REQUEST_BODY_BYTES", 1<<20)),
	}
}
