package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

const (
	// headerRows is the number of title rows preceding the first team
	headerRows = 4
	// tableHeadMarker is the first cell of the column header row of each team
	tableHeadMarker = "Cod."
)

// Player columns, in spreadsheet order
const (
	colID = iota
	colRole
	colName
	colVote
	colGF
	colGS
	colRP
	colRS
	colRF
	colAU
	colAmm
	colEsp
	colAss
)

// ParseRows converts the rows of a votes worksheet into teams.
//
// The worksheet has no explicit section markers. After the title rows,
// each team is a row with the team name, a table head row starting with
// "Cod." and one row per player starting with the numeric player code.
// A team header whose first cell is not text ends the data.
func ParseRows(rows [][]model.Cell) ([]model.Team, error) {
	teams := []model.Team{}

	i := headerRows
	for i < len(rows) {
		nameCell := cellAt(rows[i], 0)
		if nameCell.Kind != model.CellString {
			break
		}
		i++

		if i >= len(rows) {
			return nil, goerr.New("missing table head after team name",
				goerr.T(types.ErrTagFormat),
				goerr.V("row", i),
				goerr.V("team", nameCell.Text),
			)
		}
		if head := cellAt(rows[i], 0); head.Kind != model.CellString || head.Text != tableHeadMarker {
			return nil, goerr.New("unexpected table head row",
				goerr.T(types.ErrTagFormat),
				goerr.V("row", i),
				goerr.V("team", nameCell.Text),
				goerr.V("first_cell", head.Text),
			)
		}
		i++

		team := model.Team{Name: nameCell.Text, Players: []model.Player{}}
		for i < len(rows) && cellAt(rows[i], 0).Kind == model.CellNumber {
			player, err := parsePlayer(rows[i])
			if err != nil {
				return nil, goerr.Wrap(err, "invalid player row",
					goerr.V("row", i),
					goerr.V("team", team.Name),
				)
			}
			team.Players = append(team.Players, player)
			i++
		}

		teams = append(teams, team)
	}

	return teams, nil
}

func parsePlayer(row []model.Cell) (model.Player, error) {
	player := model.Player{
		ID:   int(math.Round(cellAt(row, colID).Number)),
		Role: model.Role(cellAt(row, colRole).Text),
		Name: cellAt(row, colName).Text,
	}
	player.Vote, player.VoteRaw = parseVote(cellAt(row, colVote))

	counters := []struct {
		col int
		dst *int
	}{
		{colGF, &player.GF},
		{colGS, &player.GS},
		{colRP, &player.RP},
		{colRS, &player.RS},
		{colRF, &player.RF},
		{colAU, &player.AU},
		{colAmm, &player.Amm},
		{colEsp, &player.Esp},
		{colAss, &player.Ass},
	}
	for _, c := range counters {
		n, err := parseCounter(cellAt(row, c.col))
		if err != nil {
			return model.Player{}, goerr.Wrap(err, "invalid counter", goerr.V("column", c.col))
		}
		*c.dst = n
	}

	return player, nil
}

// cellAt returns an empty cell past the end of a row
func cellAt(row []model.Cell, col int) model.Cell {
	if col >= len(row) {
		return model.Cell{Kind: model.CellEmpty}
	}
	return row[col]
}

func parseNumber(s string) (float64, bool) {
	n, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(s), ",", "."), 64)
	return n, err == nil
}

// leadingNumber matches the rating in marked votes such as "6*" or "6,5 sv"
var leadingNumber = regexp.MustCompile(`^\s*([+-]?\d+(?:[.,]\d+)?)`)

// parseVote returns a nil vote when the player has no rating. Textual
// cells also return their raw text.
func parseVote(cell model.Cell) (*float64, string) {
	switch cell.Kind {
	case model.CellNumber:
		v := cell.Number
		return &v, ""
	case model.CellString:
		if v, ok := parseNumber(cell.Text); ok {
			return &v, cell.Text
		}
		if m := leadingNumber.FindStringSubmatch(cell.Text); m != nil {
			if v, ok := parseNumber(m[1]); ok {
				return &v, cell.Text
			}
		}
		return nil, cell.Text
	}
	return nil, ""
}

func parseCounter(cell model.Cell) (int, error) {
	switch cell.Kind {
	case model.CellEmpty:
		return 0, nil
	case model.CellNumber:
		return int(math.Round(cell.Number)), nil
	case model.CellString:
		if n, ok := parseNumber(cell.Text); ok {
			return int(math.Round(n)), nil
		}
	}
	return 0, goerr.New("counter is not a number",
		goerr.T(types.ErrTagFormat),
		goerr.V("value", cell.Text),
	)
}
