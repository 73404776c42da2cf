package config

import (
	"os"

	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"
)

// File is the optional TOML configuration file. Its values are used as
// defaults for flags that are not given explicitly.
type File struct {
	Download struct {
		User      string `toml:"user"`
		Season    string `toml:"season"`
		CacheDir  string `toml:"cache_dir"`
		TokenFile string `toml:"token_file"`
		BaseURL   string `toml:"base_url"`
	} `toml:"download"`
	Output struct {
		Dir string `toml:"dir"`
	} `toml:"output"`
}

// LoadFile reads a TOML configuration file. Unknown keys are rejected.
func LoadFile(path string) (*File, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open config file",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", path),
		)
	}
	defer f.Close()

	var cfg File
	decoder := toml.NewDecoder(f).DisallowUnknownFields()
	if err := decoder.Decode(&cfg); err != nil {
		return nil, goerr.Wrap(err, "failed to parse config file",
			goerr.T(types.ErrTagConfig),
			goerr.V("path", path),
		)
	}
	return &cfg, nil
}

func mergeString(cmd *cli.Command, name string, dst *string, value string) {
	if value == "" || cmd.IsSet(name) {
		return
	}
	*dst = value
}
