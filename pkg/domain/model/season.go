package model

import (
	"slices"

	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// Season is a tournament year spanning two calendar years, e.g. "2022-23"
type Season string

// MaxFixture is the number of rounds in a season
const MaxFixture = 38

// fantacalcio.it numbers seasons with integers starting from 10
var seasonIDs = map[Season]string{
	"2015-16": "10",
	"2016-17": "11",
	"2017-18": "12",
	"2018-19": "13",
	"2019-20": "14",
	"2020-21": "15",
	"2021-22": "16",
	"2022-23": "17",
}

// LookupSeasonID returns the remote identifier of a season
func LookupSeasonID(season Season) (string, error) {
	id, ok := seasonIDs[season]
	if !ok {
		return "", goerr.New("unknown season",
			goerr.T(types.ErrTagConfig),
			goerr.V("season", season),
			goerr.V("expected", Seasons()),
		)
	}
	return id, nil
}

// Seasons returns all supported seasons in ascending order
func Seasons() []Season {
	seasons := make([]Season, 0, len(seasonIDs))
	for s := range seasonIDs {
		seasons = append(seasons, s)
	}
	slices.Sort(seasons)
	return seasons
}

// AllFixtures returns fixtures 1..MaxFixture
func AllFixtures() []int {
	fixtures := make([]int, MaxFixture)
	for i := range fixtures {
		fixtures[i] = i + 1
	}
	return fixtures
}
