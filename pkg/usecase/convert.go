package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/goerr/v2"
)

type convertUseCase struct {
	reader interfaces.SheetReader
	logger *slog.Logger
}

// NewConverter creates a ConvertUseCase reading spreadsheets with reader
func NewConverter(reader interfaces.SheetReader, opts ...Option) interfaces.ConvertUseCase {
	o := newOptions(opts)
	return &convertUseCase{
		reader: reader,
		logger: o.logger,
	}
}

// fileLogger attaches season and fixture when path follows the canonical naming
func (uc *convertUseCase) fileLogger(path string) *slog.Logger {
	logger := uc.logger.With("file", path)
	if season, fixture, err := model.DecodeFileName(filepath.Base(path)); err == nil {
		logger = logger.With("season", season, "fixture", fixture)
	}
	return logger
}

// Parse reads a spreadsheet and returns its teams
func (uc *convertUseCase) Parse(ctx context.Context, path string) ([]model.Team, error) {
	logger := uc.fileLogger(path)

	logger.Debug("Starting to parse spreadsheet")
	rows, err := uc.reader.ReadRows(ctx, path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read spreadsheet", goerr.V("path", path))
	}

	logger.Debug("Converting rows", "rows", len(rows))
	teams, err := ParseRows(rows)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse spreadsheet", goerr.V("path", path))
	}

	for _, team := range teams {
		logger.Debug("Parsed team", "team", team.Name, "players", len(team.Players))
		for _, p := range team.Players {
			if !p.Role.IsKnown() {
				logger.Debug("Unknown role code", "team", team.Name, "player", p.Name, "role", p.Role)
			}
		}
	}
	return teams, nil
}

// ConvertFile writes the teams of path to outDir/<name>.json
func (uc *convertUseCase) ConvertFile(ctx context.Context, path, outDir string) (string, error) {
	teams, err := uc.Parse(ctx, path)
	if err != nil {
		return "", err
	}

	if err := os.MkdirAll(outDir, 0755); err != nil {
		return "", goerr.Wrap(err, "failed to create output directory", goerr.V("dir", outDir))
	}

	base := filepath.Base(path)
	if ext := filepath.Ext(base); strings.EqualFold(ext, ".xlsx") {
		base = strings.TrimSuffix(base, ext)
	}
	outPath := filepath.Join(outDir, base+".json")

	raw, err := json.Marshal(teams)
	if err != nil {
		return "", goerr.Wrap(err, "failed to encode teams", goerr.V("path", path))
	}
	if err := os.WriteFile(outPath, raw, 0644); err != nil {
		return "", goerr.Wrap(err, "failed to write output file", goerr.V("path", outPath))
	}

	uc.fileLogger(path).Info("Finished writing", "output", outPath, "teams", len(teams))
	return outPath, nil
}

// ConvertFiles converts every file independently. A failing file does not
// stop the others; all failures are returned joined.
func (uc *convertUseCase) ConvertFiles(ctx context.Context, paths []string, outDir string) ([]string, error) {
	var (
		outputs []string
		errs    []error
	)

	for _, path := range paths {
		if err := ctx.Err(); err != nil {
			return outputs, goerr.Wrap(err, "conversion interrupted")
		}

		out, err := uc.ConvertFile(ctx, path, outDir)
		if err != nil {
			uc.logger.Error("Failed to convert file", "file", path, "error", err)
			errs = append(errs, err)
			continue
		}
		outputs = append(outputs, out)
	}

	if len(errs) > 0 {
		return outputs, goerr.Wrap(errors.Join(errs...), "failed to convert some files",
			goerr.V("failed", len(errs)),
			goerr.V("total", len(paths)),
		)
	}
	return outputs, nil
}
