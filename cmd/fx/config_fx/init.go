package config_fx

import (
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.uber.org/fx"
	"placeholder/internal/config"
	"placeholder/pkg/logger"
	"placeholder/pkg/utils"
)

var Module = fx.Options(
	fx.Provide(config.Load, provideLogger),
	fx.Invoke(configureGin),
)

func provideLogger(cfg *config.Config) zerolog.Logger {
	return logger.Init(cfg.LogLevel, cfg.LogPretty)
}

func configureGin(cfg *config.Config) {
	gin.SetMode(cfg.GinMode)
	utils.RegisterJSONFieldNames()
}
