// Package logger builds the zap logger shared by the CLI and the UI bridge.
package logger

import (
	"Mintopia/internal/config"

	"go.uber.org/zap"
)

// New returns a SugaredLogger: development config when cfg.Debug, production otherwise.
func New(cfg *config.Config) (*zap.SugaredLogger, error) {
	var (
		l   *zap.Logger
		err error
	)
	if cfg != nil && cfg.Debug {
		l, err = zap.NewDevelopment()
	} else {
		l, err = zap.NewProduction()
	}
	if err != nil {
		return nil, err
	}
	return l.Sugar(), nil
}

// Sync flushes the logger, ignoring the harmless errors some terminals return.
func Sync(l *zap.SugaredLogger) {
	if l == nil {
		return
	}
	_ = l.Sync()
}
