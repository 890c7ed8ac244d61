package logger

import (
	"go.uber.org/zap"

	"github.com/aliskhannn/amateur-radio-quiz/internal/config"
)

// New builds the application logger. Quiz text goes to stdout, so logs are
// always written to stderr.
func New(cfg *config.Config) (*zap.Logger, error) {
	var zcfg zap.Config
	if cfg.Env == "production" {
		zcfg = zap.NewProductionConfig()
	} else {
		zcfg = zap.NewDevelopmentConfig()
	}
	zcfg.OutputPaths = []string{"stderr"}
	zcfg.ErrorOutputPaths = []string{"stderr"}

	return zcfg.Build()
}
