package model

// AuthToken is the session cookie string sent with every download
type AuthToken string

// FixtureFailure records a fixture that the remote reported as missing
type FixtureFailure struct {
	Fixture int
	Err     error
}

// DownloadReport is the result of downloading a range of fixtures
type DownloadReport struct {
	Files    []string         // local paths, in request order
	Failures []FixtureFailure // ascending by fixture
}

// MissingFixtures returns the fixture numbers of all failures
func (r *DownloadReport) MissingFixtures() []int {
	fixtures := make([]int, len(r.Failures))
	for i, f := range r.Failures {
		fixtures[i] = f.Fixture
	}
	return fixtures
}
