package cli

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/fantavoti/pkg/cli/config"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/urfave/cli/v3"
)

// runtime holds what the root command prepares for its subcommands
type runtime struct {
	logger *slog.Logger
	file   *config.File
}

// Run runs the CLI application
func Run(ctx context.Context, args []string) error {
	var (
		loggerCfg  config.Logger
		configPath string
		closeLog   = func() {}
	)
	rt := &runtime{logger: slog.Default()}

	flags := append(loggerCfg.Flags(), &cli.StringFlag{
		Name:        "config",
		Aliases:     []string{"c"},
		Usage:       "TOML file with default settings",
		Destination: &configPath,
		Sources:     cli.EnvVars("FANTAVOTI_CONFIG"),
	})

	app := &cli.Command{
		Name:    "fantavoti",
		Usage:   "Download fantacalcio.it votes spreadsheets and convert them to JSON",
		Version: types.Version,
		Flags:   flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			logger, closer, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			rt.logger = logger
			closeLog = closer
			slog.SetDefault(logger)

			if configPath != "" {
				file, err := config.LoadFile(configPath)
				if err != nil {
					return ctx, err
				}
				rt.file = file
				logger.Debug("Loaded config file", "path", configPath)
			}
			return ctx, nil
		},
		Commands: []*cli.Command{
			cmdDownload(rt),
			cmdConvert(rt),
			cmdShow(rt),
			cmdLogout(rt),
		},
	}
	defer func() { closeLog() }()

	if err := app.Run(ctx, args); err != nil {
		rt.logger.Error("CLI execution failed", slog.Any("error", err))
		return err
	}

	return nil
}
