package errhound

import "log/slog"

// LevelCritical is the severity of faults outside the error taxonomy.
const LevelCritical = slog.LevelError + 4

// ReplaceLevelNames renders LevelCritical as "CRITICAL".
// Use it as slog.HandlerOptions.ReplaceAttr.
func ReplaceLevelNames(_ []string, a slog.Attr) slog.Attr {
	if a.Key != slog.LevelKey {
		return a
	}
	if lvl, ok := a.Value.Any().(slog.Level); ok && lvl == LevelCritical {
		a.Value = slog.StringValue("CRITICAL")
	}
	return a
}
