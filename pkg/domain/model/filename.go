package model

import (
	"fmt"
	"regexp"
	"strconv"

	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

var fileNamePattern = regexp.MustCompile(`Voti_Fantacalcio_Stagione_(\d{4}-\d{2})_Giornata_(\d+)`)

// EncodeFileName returns the canonical spreadsheet name used both by
// fantacalcio.it and by the local cache
func EncodeFileName(season Season, fixture int) string {
	return fmt.Sprintf("Voti_Fantacalcio_Stagione_%s_Giornata_%d.xlsx", season, fixture)
}

// DecodeFileName extracts season and fixture from a canonical file name
func DecodeFileName(name string) (Season, int, error) {
	m := fileNamePattern.FindStringSubmatch(name)
	if m == nil {
		return "", 0, goerr.New("cannot extract season and fixture from file name",
			goerr.T(types.ErrTagFormat),
			goerr.V("name", name),
		)
	}

	fixture, err := strconv.Atoi(m[2])
	if err != nil {
		return "", 0, goerr.Wrap(err, "invalid fixture number in file name",
			goerr.T(types.ErrTagFormat),
			goerr.V("name", name),
		)
	}

	return Season(m[1]), fixture, nil
}
