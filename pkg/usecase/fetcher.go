package usecase

import (
	"context"
	"errors"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type fetchUseCase struct {
	client interfaces.FantacalcioClient
	logger *slog.Logger
}

// NewFetcher creates a FetchUseCase backed by a flat cache directory
func NewFetcher(client interfaces.FantacalcioClient, opts ...Option) interfaces.FetchUseCase {
	o := newOptions(opts)
	return &fetchUseCase{
		client: client,
		logger: o.logger,
	}
}

// Fetch returns the cached spreadsheet of (season, fixture), downloading
// it first when it is not in cacheDir. Presence of the file is trusted as is.
func (uc *fetchUseCase) Fetch(ctx context.Context, season model.Season, fixture int, token model.AuthToken, cacheDir string) (string, error) {
	path := filepath.Join(cacheDir, model.EncodeFileName(season, fixture))

	if _, err := os.Stat(path); err == nil {
		uc.logger.Info("Spreadsheet already present, using cache", "season", season, "fixture", fixture)
		return path, nil
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", goerr.Wrap(err, "failed to check cache", goerr.V("path", path))
	}

	seasonID, err := model.LookupSeasonID(season)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(cacheDir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create cache directory", goerr.V("dir", cacheDir))
	}

	uc.logger.Info("Downloading spreadsheet", "season", season, "fixture", fixture)
	uc.logger.Debug("Download path", "path", path)

	// Write next to the final path and rename, so an interrupted transfer
	// never looks like a cache hit
	tmpPath := path + "." + uuid.NewString() + ".part"
	if err := uc.download(ctx, seasonID, fixture, token, tmpPath); err != nil {
		if rmErr := os.Remove(tmpPath); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			uc.logger.Warn("Failed to remove partial download", "path", tmpPath, "error", rmErr)
		}
		return "", goerr.Wrap(err, "failed to download spreadsheet",
			goerr.V("season", season),
			goerr.V("fixture", fixture),
		)
	}

	if err := os.Rename(tmpPath, path); err != nil {
		return "", goerr.Wrap(err, "failed to move download into cache",
			goerr.V("from", tmpPath),
			goerr.V("to", path),
		)
	}

	uc.logger.Info("Finished downloading", "season", season, "fixture", fixture)
	return path, nil
}

func (uc *fetchUseCase) download(ctx context.Context, seasonID string, fixture int, token model.AuthToken, path string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to create file", goerr.V("path", path))
	}

	if err := uc.client.DownloadVotes(ctx, seasonID, fixture, token, f); err != nil {
		_ = f.Close()
		return err
	}

	if err := f.Close(); err != nil {
		return goerr.Wrap(err, "failed to close file", goerr.V("path", path))
	}
	return nil
}
