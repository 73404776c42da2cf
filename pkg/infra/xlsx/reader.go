package xlsx

import (
	"context"
	"strconv"

	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
	"github.com/xuri/excelize/v2"
)

type reader struct{}

// NewReader creates a SheetReader for .xlsx files
func NewReader() interfaces.SheetReader {
	return &reader{}
}

// ReadRows returns all rows of the first worksheet. Trailing empty cells
// of a row are not included.
func (r *reader) ReadRows(ctx context.Context, path string) ([][]model.Cell, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open spreadsheet",
			goerr.T(types.ErrTagFormat),
			goerr.V("path", path),
		)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, goerr.New("spreadsheet has no worksheet",
			goerr.T(types.ErrTagFormat),
			goerr.V("path", path),
		)
	}
	sheet := sheets[0]

	raw, err := f.GetRows(sheet, excelize.Options{RawCellValue: true})
	if err != nil {
		return nil, goerr.Wrap(err, "failed to read rows",
			goerr.T(types.ErrTagFormat),
			goerr.V("path", path),
			goerr.V("sheet", sheet),
		)
	}

	rows := make([][]model.Cell, len(raw))
	for i, values := range raw {
		row := make([]model.Cell, len(values))
		for j, value := range values {
			cell, err := readCell(f, sheet, j+1, i+1, value)
			if err != nil {
				return nil, goerr.Wrap(err, "failed to read cell",
					goerr.V("path", path),
					goerr.V("sheet", sheet),
				)
			}
			row[j] = cell
		}
		rows[i] = row
	}

	return rows, nil
}

func readCell(f *excelize.File, sheet string, col, row int, value string) (model.Cell, error) {
	if value == "" {
		return model.Cell{Kind: model.CellEmpty}, nil
	}

	axis, err := excelize.CoordinatesToCellName(col, row)
	if err != nil {
		return model.Cell{}, goerr.Wrap(err, "invalid cell coordinates", goerr.V("col", col), goerr.V("row", row))
	}
	cellType, err := f.GetCellType(sheet, axis)
	if err != nil {
		return model.Cell{}, goerr.Wrap(err, "failed to get cell type", goerr.V("cell", axis))
	}

	switch cellType {
	// numeric cells usually carry no type attribute at all
	case excelize.CellTypeNumber, excelize.CellTypeUnset:
		if n, err := strconv.ParseFloat(value, 64); err == nil {
			return model.Cell{Kind: model.CellNumber, Text: value, Number: n}, nil
		}
	case excelize.CellTypeBool:
		return model.Cell{Kind: model.CellBool, Text: value}, nil
	}

	return model.StringCell(value), nil
}
