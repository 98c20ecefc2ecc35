package initializer

import (
	"log/slog"
	"os"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/jamadeu/multicontas/pkg/config"
)

var levelColors = map[log.Level]lipgloss.AdaptiveColor{
	log.DebugLevel: {Light: "#7E57C2", Dark: "#7E57C2"},
	log.InfoLevel:  {Light: "#04B575", Dark: "#04B575"},
	log.WarnLevel:  {Light: "#EE6FF8", Dark: "#EE6FF8"},
	log.ErrorLevel: {Light: "#FF6B6B", Dark: "#FF6B6B"},
}

var levelBadges = map[log.Level]string{
	log.DebugLevel: "🐛",
	log.InfoLevel:  "ℹ️",
	log.WarnLevel:  "⚠️",
	log.ErrorLevel: "❌",
}

// setupLogger builds the charmbracelet logger, installs it as the slog
// default and returns the slog facade the rest of the app logs through.
func setupLogger(cfg *config.Log) *slog.Logger {
	styles := log.DefaultStyles()
	for level, color := range levelColors {
		styles.Levels[level] = lipgloss.NewStyle().
			SetString(levelBadges[level]).
			Bold(true).
			Padding(0, 1).
			Foreground(color)
	}

	meta := lipgloss.NewStyle().Foreground(levelColors[log.DebugLevel])
	for _, key := range []string{"prefix", "caller", "time", "error"} {
		styles.Keys[key] = meta
		styles.Values[key] = lipgloss.NewStyle().Bold(true)
	}

	formatter := log.TextFormatter
	if cfg.Format == "json" {
		formatter = log.JSONFormatter
	}

	logger := log.NewWithOptions(os.Stdout, log.Options{
		ReportCaller:    true,
		ReportTimestamp: true,
		TimeFormat:      cfg.TimeFormat,
		Level:           log.Level(cfg.Level),
		Prefix:          cfg.Prefix,
		Formatter:       formatter,
	})
	logger.SetStyles(styles)

	slogger := slog.New(logger)
	slog.SetDefault(slogger)

	return slogger
}
