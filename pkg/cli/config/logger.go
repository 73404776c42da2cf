package config

import (
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/m-mizutani/clog"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/masq"
	"github.com/urfave/cli/v3"
)

// Logger holds logger configuration
type Logger struct {
	Level string
	JSON  bool
	File  string
}

// Flags returns CLI flags for logger configuration
func (c *Logger) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "log-level",
			Usage:       "Log level (debug, info, warn, error)",
			Value:       "info",
			Destination: &c.Level,
			Sources:     cli.EnvVars("FANTAVOTI_LOG_LEVEL"),
		},
		&cli.BoolFlag{
			Name:        "log-json",
			Usage:       "Output logs in JSON format",
			Value:       false,
			Destination: &c.JSON,
			Sources:     cli.EnvVars("FANTAVOTI_LOG_JSON"),
		},
		&cli.StringFlag{
			Name:        "log-file",
			Usage:       "Also write logs to this file",
			Destination: &c.File,
			Sources:     cli.EnvVars("FANTAVOTI_LOG_FILE"),
		},
	}
}

func parseLevel(s string) (slog.Level, error) {
	switch strings.ToLower(s) {
	case "debug":
		return slog.LevelDebug, nil
	case "info":
		return slog.LevelInfo, nil
	case "warn":
		return slog.LevelWarn, nil
	case "error":
		return slog.LevelError, nil
	default:
		return 0, goerr.New("invalid log level", goerr.V("level", s))
	}
}

// Configure configures and returns a logger writing to stderr and, when
// File is set, to that file. The returned closer releases the log file.
func (c *Logger) Configure() (*slog.Logger, func(), error) {
	level, err := parseLevel(c.Level)
	if err != nil {
		return nil, nil, err
	}

	var (
		w       io.Writer = os.Stderr
		closer            = func() {}
		colored           = true
	)
	if c.File != "" {
		f, err := os.OpenFile(c.File, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0644)
		if err != nil {
			return nil, nil, goerr.Wrap(err, "failed to open log file", goerr.V("path", c.File))
		}
		w = io.MultiWriter(os.Stderr, f)
		closer = func() { _ = f.Close() }
		colored = false
	}

	// session tokens and passwords never reach the log output
	redact := masq.New(
		masq.WithType[model.AuthToken](),
		masq.WithFieldName("Password"),
	)

	var handler slog.Handler
	if c.JSON {
		handler = slog.NewJSONHandler(w, &slog.HandlerOptions{
			Level:       level,
			ReplaceAttr: redact,
		})
	} else {
		handler = clog.New(
			clog.WithWriter(w),
			clog.WithLevel(level),
			clog.WithColor(colored),
			clog.WithReplaceAttr(redact),
		)
	}

	return slog.New(handler), closer, nil
}
