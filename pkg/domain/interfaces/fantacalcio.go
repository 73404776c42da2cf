package interfaces

import (
	"context"
	"io"

	"github.com/m-mizutani/fantavoti/pkg/domain/model"
)

// FantacalcioClient defines operations against the fantacalcio.it API
type FantacalcioClient interface {
	// Login exchanges credentials for a session token
	Login(ctx context.Context, username, password string) (model.AuthToken, error)

	// DownloadVotes streams the votes spreadsheet of a fixture into w.
	// Nothing is written to w when the remote answers with a non-success status.
	DownloadVotes(ctx context.Context, seasonID string, fixture int, token model.AuthToken, w io.Writer) error
}

// TokenStore persists the session token between invocations
type TokenStore interface {
	// Load returns the stored token; ok is false when nothing is stored
	Load(ctx context.Context) (token model.AuthToken, ok bool, err error)
	// Save overwrites the stored token
	Save(ctx context.Context, token model.AuthToken) error
	// Delete removes the stored token. Deleting a missing token is not an error.
	Delete(ctx context.Context) error
}

// PasswordPrompter asks the operator for a password
type PasswordPrompter interface {
	Prompt(ctx context.Context, username string) (string, error)
}

// SheetReader reads the first worksheet of a spreadsheet file as typed cells
type SheetReader interface {
	ReadRows(ctx context.Context, path string) ([][]model.Cell, error)
}
