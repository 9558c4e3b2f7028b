package model

// Level classifies a diagnostic record.
type Level string

const (
	LevelInfo Level = "info"
	LevelWarn Level = "warn"
)

// Diagnostic is a structured record emitted by the annotation components as
// a fire-and-forget side channel. Components never read diagnostics back;
// transformation results do not depend on whether a sink consumed them.
type Diagnostic struct {
	Level   Level
	Message string
	Fields  map[string]any
}

// Info builds an informational diagnostic.
func Info(message string, fields map[string]any) Diagnostic {
	return Diagnostic{Level: LevelInfo, Message: message, Fields: fields}
}

// Warn builds a warning diagnostic.
func Warn(message string, fields map[string]any) Diagnostic {
	return Diagnostic{Level: LevelWarn, Message: message, Fields: fields}
}
