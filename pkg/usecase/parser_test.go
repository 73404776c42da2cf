package usecase_test

import (
	"strconv"
	"testing"

	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/fantavoti/pkg/usecase"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
)

// cells builds a row from Go values. Strings become string cells, ints and
// floats number cells, bools bool cells and nil an empty cell.
func cells(values ...any) []model.Cell {
	row := make([]model.Cell, len(values))
	for i, v := range values {
		switch x := v.(type) {
		case string:
			row[i] = model.StringCell(x)
		case int:
			row[i] = model.NumberCell(float64(x))
		case float64:
			row[i] = model.NumberCell(x)
		case bool:
			row[i] = model.Cell{Kind: model.CellBool, Text: strconv.FormatBool(x)}
		}
	}
	return row
}

func headerRows() [][]model.Cell {
	return [][]model.Cell{
		cells("Voti Fantacalcio 18ª giornata di campionato"),
		cells(),
		cells("Legenda"),
		cells(),
	}
}

func rows(body ...[]model.Cell) [][]model.Cell {
	return append(headerRows(), body...)
}

func TestParseRows_Example(t *testing.T) {
	teams, err := usecase.ParseRows(rows(
		cells("Team A"),
		cells("Cod."),
		cells(7, "P", "Rossi", 6.5, 0, 0, 0, 0, 0, 0, 0, 0),
		cells("Team B"),
		cells("Cod."),
	))
	gt.NoError(t, err)
	gt.A(t, teams).Length(2)

	gt.Equal(t, teams[0].Name, "Team A")
	gt.A(t, teams[0].Players).Length(1)

	p := teams[0].Players[0]
	gt.Equal(t, p.ID, 7)
	gt.Equal(t, p.Role, model.RoleGoalkeeper)
	gt.Equal(t, p.Name, "Rossi")
	gt.V(t, p.Vote).NotNil()
	gt.Equal(t, *p.Vote, 6.5)
	gt.Equal(t, p.GF+p.GS+p.RP+p.RS+p.RF+p.AU+p.Amm+p.Esp+p.Ass, 0)

	gt.Equal(t, teams[1].Name, "Team B")
	gt.V(t, teams[1].Players).NotNil()
	gt.A(t, teams[1].Players).Length(0)
}

func TestParseRows_TeamSizes(t *testing.T) {
	teams, err := usecase.ParseRows(rows(
		cells("Atalanta"),
		cells("Cod.", "Ruolo", "Nome", "Voto", "Gf", "Gs", "Rp", "Rs", "Rf", "Au", "Amm", "Esp", "Ass"),
		cells(101, "P", "Musso", 6.0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
		cells(102, "D", "Toloi", 5.5, 0, 0, 0, 0, 0, 1, 1, 0, 0),
		cells(103, "A", "Lookman", 7.5, 2, 0, 0, 1, 1, 0, 0, 0, 1),
		cells("Bologna"),
		cells("Cod.", "Ruolo", "Nome", "Voto"),
		cells(),
		cells("Voti a cura della redazione"),
	))
	// the trailing note is read as a team header without table head
	gt.Error(t, err)

	teams, err = usecase.ParseRows(rows(
		cells("Atalanta"),
		cells("Cod.", "Ruolo", "Nome", "Voto", "Gf", "Gs", "Rp", "Rs", "Rf", "Au", "Amm", "Esp", "Ass"),
		cells(101, "P", "Musso", 6.0, 0, 1, 0, 0, 0, 0, 0, 0, 0),
		cells(102, "D", "Toloi", 5.5, 0, 0, 0, 0, 0, 1, 1, 0, 0),
		cells(103, "A", "Lookman", 7.5, 2, 0, 0, 1, 1, 0, 0, 0, 1),
		cells("Bologna"),
		cells("Cod.", "Ruolo", "Nome", "Voto"),
		cells(),
		cells(),
	))
	gt.NoError(t, err)
	gt.A(t, teams).Length(2)
	gt.A(t, teams[0].Players).Length(3)
	gt.A(t, teams[1].Players).Length(0)

	lookman := teams[0].Players[2]
	gt.Equal(t, lookman.GF, 2)
	gt.Equal(t, lookman.RS, 1)
	gt.Equal(t, lookman.RF, 1)
	gt.Equal(t, lookman.Ass, 1)

	toloi := teams[0].Players[1]
	gt.Equal(t, toloi.AU, 1)
	gt.Equal(t, toloi.Amm, 1)
}

func TestParseRows_CorruptedTableHead(t *testing.T) {
	teams, err := usecase.ParseRows(rows(
		cells("Team A"),
		cells("Cod."),
		cells(7, "P", "Rossi", 6.5),
		cells("Team B"),
		cells("Codice"),
		cells(8, "D", "Verdi", 6.0),
	))
	gt.Error(t, err)
	gt.V(t, teams).Nil()
	gt.V(t, goerr.HasTag(err, types.ErrTagFormat)).Equal(true)

	e := goerr.Unwrap(err)
	gt.V(t, e).NotNil()
	gt.Equal(t, e.Values()["row"], any(8))
}

func TestParseRows_TeamNameOnLastRow(t *testing.T) {
	_, err := usecase.ParseRows(rows(
		cells("Team A"),
	))
	gt.Error(t, err)
	gt.V(t, goerr.HasTag(err, types.ErrTagFormat)).Equal(true)
}

func TestParseRows_Termination(t *testing.T) {
	tests := []struct {
		name      string
		rows      [][]model.Cell
		wantTeams int
	}{
		{
			name:      "header only",
			rows:      headerRows(),
			wantTeams: 0,
		},
		{
			name:      "shorter than header",
			rows:      headerRows()[:2],
			wantTeams: 0,
		},
		{
			name:      "empty input",
			rows:      nil,
			wantTeams: 0,
		},
		{
			name: "numeric team header ends data",
			rows: rows(
				cells("Team A"),
				cells("Cod."),
				cells(),
				cells(99, "P", "Ghost"),
			),
			wantTeams: 1,
		},
		{
			name: "blank region after players",
			rows: rows(
				cells("Team A"),
				cells("Cod."),
				cells(1, "P", "Rossi", 6.0),
				cells(),
				cells(),
			),
			wantTeams: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			teams, err := usecase.ParseRows(tt.rows)
			gt.NoError(t, err)
			gt.A(t, teams).Length(tt.wantTeams)
		})
	}
}

func TestParseRows_Cells(t *testing.T) {
	t.Run("textual and missing votes", func(t *testing.T) {
		teams, err := usecase.ParseRows(rows(
			cells("Team A"),
			cells("Cod."),
			cells(7, "P", "Rossi", "6*"),
			cells(8, "D", "Verdi"),
			cells(9, "C", "Neri", "6,5"),
			cells(10, "A", "Bianchi", "s.v."),
			cells(11, "A", "Gialli", 7.0),
		))
		gt.NoError(t, err)
		players := teams[0].Players
		gt.A(t, players).Length(5)

		gt.V(t, players[0].Vote).NotNil()
		gt.Equal(t, *players[0].Vote, 6.0)
		gt.Equal(t, players[0].VoteRaw, "6*")

		gt.V(t, players[1].Vote).Nil()
		gt.Equal(t, players[1].VoteRaw, "")

		gt.Equal(t, *players[2].Vote, 6.5)
		gt.Equal(t, players[2].VoteRaw, "6,5")

		gt.V(t, players[3].Vote).Nil()
		gt.Equal(t, players[3].VoteRaw, "s.v.")

		gt.Equal(t, *players[4].Vote, 7.0)
		gt.Equal(t, players[4].VoteRaw, "")
	})

	t.Run("unknown role passes through", func(t *testing.T) {
		teams, err := usecase.ParseRows(rows(
			cells("Team A"),
			cells("Cod."),
			cells(500, "ALL", "Gasperini", 6.0),
			cells(501, "ATT", "Somebody", 6.0),
		))
		gt.NoError(t, err)
		gt.Equal(t, teams[0].Players[0].Role, model.RoleCoach)
		gt.Equal(t, teams[0].Players[1].Role, model.Role("ATT"))
	})

	t.Run("textual counter", func(t *testing.T) {
		teams, err := usecase.ParseRows(rows(
			cells("Team A"),
			cells("Cod."),
			cells(7, "A", "Rossi", 7.0, "2"),
		))
		gt.NoError(t, err)
		gt.Equal(t, teams[0].Players[0].GF, 2)
	})

	t.Run("invalid counter", func(t *testing.T) {
		teams, err := usecase.ParseRows(rows(
			cells("Team A"),
			cells("Cod."),
			cells(7, "A", "Rossi", 7.0, "two"),
		))
		gt.Error(t, err)
		gt.V(t, teams).Nil()
		gt.V(t, goerr.HasTag(err, types.ErrTagFormat)).Equal(true)
	})
}
