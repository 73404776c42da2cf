package usecase

import (
	"context"
	"log/slog"
	"slices"

	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// MaxMissingFixtures is the number of missing fixtures tolerated in a
// multi-fixture run. Exceeding it stops the run early.
const MaxMissingFixtures = 3

type downloadUseCase struct {
	fetcher interfaces.FetchUseCase
	logger  *slog.Logger
}

// NewDownloader creates a DownloadUseCase that fetches fixtures one at a time
func NewDownloader(fetcher interfaces.FetchUseCase, opts ...Option) interfaces.DownloadUseCase {
	o := newOptions(opts)
	return &downloadUseCase{
		fetcher: fetcher,
		logger:  o.logger,
	}
}

// Run fetches fixtures sequentially in the given order. When more than one
// fixture is requested, fixtures the remote reports as missing are
// collected instead of failing the run. Any other error aborts the run.
func (uc *downloadUseCase) Run(ctx context.Context, season model.Season, fixtures []int, token model.AuthToken, cacheDir string) (*model.DownloadReport, error) {
	if _, err := model.LookupSeasonID(season); err != nil {
		return nil, err
	}

	uc.logger.Debug("Requesting votes", "season", season, "fixtures", fixtures)

	tolerant := len(fixtures) > 1
	report := &model.DownloadReport{}

	for _, fixture := range fixtures {
		path, err := uc.fetcher.Fetch(ctx, season, fixture, token, cacheDir)
		if err == nil {
			report.Files = append(report.Files, path)
			continue
		}

		if !tolerant || !goerr.HasTag(err, types.ErrTagFetch) {
			return nil, err
		}

		uc.logger.Debug("Fixture not found", "season", season, "fixture", fixture, "error", err)
		report.Failures = append(report.Failures, model.FixtureFailure{Fixture: fixture, Err: err})
		if len(report.Failures) > MaxMissingFixtures {
			uc.logger.Warn("Too many missing fixtures, stopping",
				"season", season,
				"missing", len(report.Failures),
			)
			break
		}
	}

	slices.SortFunc(report.Failures, func(a, b model.FixtureFailure) int {
		return a.Fixture - b.Fixture
	})

	if len(report.Failures) > 0 {
		uc.logger.Warn("Failed to find fixtures",
			"season", season,
			"fixtures", report.MissingFixtures(),
		)
	}
	uc.logger.Info("All downloads completed", "season", season, "files", len(report.Files))

	return report, nil
}
