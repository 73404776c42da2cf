package cli

import (
	"context"
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/infra/xlsx"
	"github.com/m-mizutani/fantavoti/pkg/usecase"
	"github.com/urfave/cli/v3"
)

func cmdShow(rt *runtime) *cli.Command {
	return &cli.Command{
		Name:      "show",
		Usage:     "Print the teams of xlsx files",
		ArgsUsage: "FILE...",
		Action: func(ctx context.Context, c *cli.Command) error {
			files, err := inputFiles(c)
			if err != nil {
				return err
			}

			convertUC := usecase.NewConverter(xlsx.NewReader(), usecase.WithLogger(rt.logger))
			for _, file := range files {
				teams, err := convertUC.Parse(ctx, file)
				if err != nil {
					return err
				}
				printTeams(c.Root().Writer, teams)
			}
			return nil
		},
	}
}

var teamColor = color.New(color.FgGreen, color.Bold)

func printTeams(w io.Writer, teams []model.Team) {
	for _, team := range teams {
		teamColor.Fprintln(w, team.Name)
		for _, p := range team.Players {
			fmt.Fprintf(w, "  %-3s %-25s %s\n", p.Role, p.Name, formatVote(p.Vote))
		}
		fmt.Fprintln(w)
	}
}

func formatVote(vote *float64) string {
	if vote == nil {
		return "-"
	}
	return strconv.FormatFloat(*vote, 'f', -1, 64)
}
