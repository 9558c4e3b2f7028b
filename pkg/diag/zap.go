package diag

import (
	"go.uber.org/zap"

	"github.com/goliatone/go-a11yfix/pkg/model"
)

// NewZapSink adapts a zap logger into a Sink. Info diagnostics map to
// logger.Info, warnings to logger.Warn; structured fields are forwarded
// with zap.Any so nested attribute snapshots survive intact.
func NewZapSink(logger *zap.Logger) Sink {
	if logger == nil {
		return Nop()
	}
	return SinkFunc(func(d model.Diagnostic) {
		fields := make([]zap.Field, 0, len(d.Fields))
		for key, value := range d.Fields {
			fields = append(fields, zap.Any(key, value))
		}
		switch d.Level {
		case model.LevelWarn:
			logger.Warn(d.Message, fields...)
		default:
			logger.Info(d.Message, fields...)
		}
	})
}
