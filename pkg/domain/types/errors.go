package types

import "github.com/m-mizutani/goerr/v2"

// Error kinds. Every error surfaced by fantavoti carries exactly one of
// these tags; callers discriminate with goerr.HasTag.
var (
	// ErrTagAuth is set when credentials are rejected or no session token is returned
	ErrTagAuth = goerr.NewTag("auth")
	// ErrTagNetwork is set on transport failures and non-success HTTP status
	// not tied to a missing resource
	ErrTagNetwork = goerr.NewTag("network")
	// ErrTagFetch is set when the remote reports that a (season, fixture)
	// spreadsheet does not exist
	ErrTagFetch = goerr.NewTag("fetch")
	// ErrTagFormat is set when a file name or spreadsheet layout does not
	// follow the expected format
	ErrTagFormat = goerr.NewTag("format")
	// ErrTagConfig is set on invalid user configuration such as an unknown season
	ErrTagConfig = goerr.NewTag("config")
)
