package cli

import (
	"context"

	"github.com/m-mizutani/fantavoti/pkg/cli/config"
	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/infra/fantacalcio"
	"github.com/m-mizutani/fantavoti/pkg/infra/tokenstore"
	"github.com/m-mizutani/fantavoti/pkg/infra/xlsx"
	"github.com/m-mizutani/fantavoti/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdDownload(rt *runtime) *cli.Command {
	var (
		downloadCfg config.Download
		outputCfg   config.Output
	)

	flags := append(downloadCfg.Flags(), outputCfg.Flags()...)

	return &cli.Command{
		Name:    "download",
		Aliases: []string{"d"},
		Usage:   "Download votes of a season (or a single fixture) and convert them",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			downloadCfg.Merge(c, rt.file)
			outputCfg.Merge(c, rt.file)
			if err := downloadCfg.Validate(); err != nil {
				return err
			}
			logger := rt.logger

			client := fantacalcio.NewClient(
				fantacalcio.WithBaseURL(downloadCfg.BaseURL),
				fantacalcio.WithLogger(logger),
			)

			var store interfaces.TokenStore
			if !downloadCfg.NoTokenCache {
				store = tokenstore.NewFile(downloadCfg.TokenFile)
			}
			authUC := usecase.NewAuth(client, store, newTerminalPrompter(), downloadCfg.Password,
				usecase.WithLogger(logger),
			)

			token, err := authUC.Token(ctx, downloadCfg.Username)
			if err != nil {
				return err
			}

			downloadUC := usecase.NewDownloader(
				usecase.NewFetcher(client, usecase.WithLogger(logger)),
				usecase.WithLogger(logger),
			)
			report, err := downloadUC.Run(ctx, model.Season(downloadCfg.Season), downloadCfg.Fixtures(), token, downloadCfg.CacheDir)
			if err != nil {
				return goerr.Wrap(err, "download failed", goerr.V("season", downloadCfg.Season))
			}

			if downloadCfg.DownloadOnly {
				logger.Info("--download-only has been provided. Stopping now")
				return nil
			}

			convertUC := usecase.NewConverter(xlsx.NewReader(), usecase.WithLogger(logger))
			if _, err := convertUC.ConvertFiles(ctx, report.Files, outputCfg.Dir); err != nil {
				return err
			}
			return nil
		},
	}
}
