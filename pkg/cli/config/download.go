package config

import (
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/fantavoti/pkg/infra/fantacalcio"
	"github.com/m-mizutani/fantavoti/pkg/infra/tokenstore"
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"
)

// Download holds configuration of the download command
type Download struct {
	Username     string
	Password     string
	Season       string
	Fixture      int
	CacheDir     string
	TokenFile    string
	NoTokenCache bool
	DownloadOnly bool
	BaseURL      string
}

// Flags returns CLI flags for download configuration
func (c *Download) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "user",
			Aliases:     []string{"u"},
			Usage:       "Username for login",
			Destination: &c.Username,
			Sources:     cli.EnvVars("FANTAVOTI_USER"),
		},
		&cli.StringFlag{
			Name:        "pass",
			Aliases:     []string{"p"},
			Usage:       "Password for login, prompted when omitted",
			Destination: &c.Password,
			Sources:     cli.EnvVars("FANTAVOTI_PASS"),
		},
		&cli.StringFlag{
			Name:        "season",
			Aliases:     []string{"s"},
			Usage:       "Tournament season (e.g. 2022-23)",
			Destination: &c.Season,
			Sources:     cli.EnvVars("FANTAVOTI_SEASON"),
		},
		&cli.IntFlag{
			Name:        "fixture",
			Aliases:     []string{"f"},
			Usage:       "Fixture number [1-38]. Downloads the entire season when omitted",
			Destination: &c.Fixture,
			Sources:     cli.EnvVars("FANTAVOTI_FIXTURE"),
		},
		&cli.StringFlag{
			Name:        "cache-dir",
			Usage:       "Directory for downloaded xlsx files",
			Value:       "tmp",
			Destination: &c.CacheDir,
			Sources:     cli.EnvVars("FANTAVOTI_CACHE_DIR"),
		},
		&cli.StringFlag{
			Name:        "token-file",
			Usage:       "File caching the session cookie",
			Value:       tokenstore.DefaultPath,
			Destination: &c.TokenFile,
			Sources:     cli.EnvVars("FANTAVOTI_TOKEN_FILE"),
		},
		&cli.BoolFlag{
			Name:        "no-token-cache",
			Usage:       "Don't read or write the session cookie file",
			Destination: &c.NoTokenCache,
		},
		&cli.BoolFlag{
			Name:        "download-only",
			Usage:       "Download but skip JSON conversion",
			Destination: &c.DownloadOnly,
		},
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "fantacalcio.it API base URL",
			Value:       fantacalcio.DefaultBaseURL,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("FANTAVOTI_BASE_URL"),
		},
	}
}

// Merge fills settings not given on the command line from the config file
func (c *Download) Merge(cmd *cli.Command, f *File) {
	if f == nil {
		return
	}
	mergeString(cmd, "user", &c.Username, f.Download.User)
	mergeString(cmd, "season", &c.Season, f.Download.Season)
	mergeString(cmd, "cache-dir", &c.CacheDir, f.Download.CacheDir)
	mergeString(cmd, "token-file", &c.TokenFile, f.Download.TokenFile)
	mergeString(cmd, "base-url", &c.BaseURL, f.Download.BaseURL)
}

// Fixtures returns the fixtures to download
func (c *Download) Fixtures() []int {
	if c.Fixture > 0 {
		return []int{c.Fixture}
	}
	return model.AllFixtures()
}

// Validate checks settings that have no usable default. An unknown season
// is rejected here so no login is attempted for it.
func (c *Download) Validate() error {
	if c.Season == "" {
		return goerr.New("season is required to download", goerr.T(types.ErrTagConfig))
	}
	if _, err := model.LookupSeasonID(model.Season(c.Season)); err != nil {
		return err
	}
	if c.Fixture < 0 {
		return goerr.New("fixture must be a positive number",
			goerr.T(types.ErrTagConfig),
			goerr.V("fixture", c.Fixture),
		)
	}
	return nil
}
