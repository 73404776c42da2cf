package cli

import (
	"context"
	"errors"
	"io/fs"
	"os"

	"github.com/m-mizutani/fantavoti/pkg/cli/config"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/fantavoti/pkg/infra/xlsx"
	"github.com/m-mizutani/fantavoti/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

func cmdConvert(rt *runtime) *cli.Command {
	var outputCfg config.Output

	return &cli.Command{
		Name:      "convert",
		Aliases:   []string{"c"},
		Usage:     "Convert xlsx files to JSON",
		ArgsUsage: "FILE...",
		Flags:     outputCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			outputCfg.Merge(c, rt.file)

			files, err := inputFiles(c)
			if err != nil {
				return err
			}
			rt.logger.Debug("Output folder", "dir", outputCfg.Dir)

			convertUC := usecase.NewConverter(xlsx.NewReader(), usecase.WithLogger(rt.logger))
			if _, err := convertUC.ConvertFiles(ctx, files, outputCfg.Dir); err != nil {
				return err
			}
			return nil
		},
	}
}

// inputFiles returns the positional arguments after checking each exists
func inputFiles(c *cli.Command) ([]string, error) {
	files := c.Args().Slice()
	if len(files) == 0 {
		return nil, goerr.New("no input files. For usage run with --help", goerr.T(types.ErrTagConfig))
	}

	for _, file := range files {
		if _, err := os.Stat(file); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				return nil, goerr.New("file does not exist", goerr.T(types.ErrTagConfig), goerr.V("file", file))
			}
			return nil, goerr.Wrap(err, "failed to check file", goerr.V("file", file))
		}
	}
	return files, nil
}
