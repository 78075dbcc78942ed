package logger

import (
	"go.uber.org/zap"

	"github.com/backsoul/classroom/pkg/config"
)

// New construye el logger según el entorno configurado
func New(cfg *config.Config) (*zap.Logger, error) {
	if cfg.Env == "production" {
		return zap.NewProduction()
	}

	return zap.NewDevelopment()
}
