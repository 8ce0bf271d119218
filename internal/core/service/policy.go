package service

import "go.uber.org/zap"

// bestEffort runs a side effect whose failure must never surface to the
// caller. The outcome is logged either way.
func bestEffort(logger *zap.Logger, step string, fn func() error) {
	if err := fn(); err != nil {
		logger.Warn("best-effort step failed", zap.String("step", step), zap.Error(err))
	}
}
