package app

import (
	"github.com/evasuite/eva-core/internal/pkg/logger"
	"github.com/evasuite/eva-core/internal/utils"
)

type Config struct {
	LogMode         string
	DefaultPageSize int
}

func LoadConfig(log *logger.Logger) Config {
	logMode := utils.GetEnv("LOG_MODE", "development", log)
	defaultPageSize := utils.GetEnvAsInt("DEFAULT_PAGE_SIZE", 20, log)
	return Config{
		LogMode:         logMode,
		DefaultPageSize: defaultPageSize,
	}
}
