package interfaces

import (
	"context"

	"github.com/m-mizutani/fantavoti/pkg/domain/model"
)

// AuthUseCase resolves the session token for a run
type AuthUseCase interface {
	// Token returns a cached token or logs in with username
	Token(ctx context.Context, username string) (model.AuthToken, error)
	// Logout forgets the cached token
	Logout(ctx context.Context) error
}

// FetchUseCase returns a local copy of a single fixture spreadsheet
type FetchUseCase interface {
	Fetch(ctx context.Context, season model.Season, fixture int, token model.AuthToken, cacheDir string) (string, error)
}

// DownloadUseCase downloads a range of fixtures of a season
type DownloadUseCase interface {
	Run(ctx context.Context, season model.Season, fixtures []int, token model.AuthToken, cacheDir string) (*model.DownloadReport, error)
}

// ConvertUseCase converts spreadsheets into JSON team records
type ConvertUseCase interface {
	// Parse reads a spreadsheet file and returns its teams
	Parse(ctx context.Context, path string) ([]model.Team, error)
	// ConvertFile writes the teams of path as JSON into outDir and returns the output path
	ConvertFile(ctx context.Context, path, outDir string) (string, error)
	// ConvertFiles converts each file independently and returns the written paths
	ConvertFiles(ctx context.Context, paths []string, outDir string) ([]string, error)
}
