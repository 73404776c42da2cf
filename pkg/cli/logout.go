package cli

import (
	"context"

	"github.com/m-mizutani/fantavoti/pkg/infra/tokenstore"
	"github.com/m-mizutani/fantavoti/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdLogout(rt *runtime) *cli.Command {
	var tokenFile string

	return &cli.Command{
		Name:  "logout",
		Usage: "Forget the cached session cookie",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:        "token-file",
				Usage:       "File caching the session cookie",
				Value:       tokenstore.DefaultPath,
				Destination: &tokenFile,
				Sources:     cli.EnvVars("FANTAVOTI_TOKEN_FILE"),
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			if rt.file != nil && rt.file.Download.TokenFile != "" && !c.IsSet("token-file") {
				tokenFile = rt.file.Download.TokenFile
			}

			authUC := usecase.NewAuth(nil, tokenstore.NewFile(tokenFile), nil, "", usecase.WithLogger(rt.logger))
			return authUC.Logout(ctx)
		},
	}
}
