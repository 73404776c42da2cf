package config

import "github.com/urfave/cli/v3"

// Output holds JSON output configuration
type Output struct {
	Dir string
}

// Flags returns CLI flags for output configuration
func (c *Output) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "out",
			Aliases:     []string{"o"},
			Usage:       "JSON output directory",
			Value:       "out",
			Destination: &c.Dir,
			Sources:     cli.EnvVars("FANTAVOTI_OUT"),
		},
	}
}

// Merge fills settings not given on the command line from the config file
func (c *Output) Merge(cmd *cli.Command, f *File) {
	if f == nil {
		return
	}
	mergeString(cmd, "out", &c.Dir, f.Output.Dir)
}
