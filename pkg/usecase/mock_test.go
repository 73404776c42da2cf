package usecase_test

import (
	"context"
	"errors"
	"io"

	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// MockFantacalcioClient is a mock implementation of FantacalcioClient
type MockFantacalcioClient struct {
	loginFunc    func(ctx context.Context, username, password string) (model.AuthToken, error)
	downloadFunc func(ctx context.Context, seasonID string, fixture int, token model.AuthToken, w io.Writer) error

	loginCalls    []MockLoginCall
	downloadCalls []MockDownloadCall
}

type MockLoginCall struct {
	Username string
	Password string
}

type MockDownloadCall struct {
	SeasonID string
	Fixture  int
	Token    model.AuthToken
}

func (m *MockFantacalcioClient) Login(ctx context.Context, username, password string) (model.AuthToken, error) {
	m.loginCalls = append(m.loginCalls, MockLoginCall{Username: username, Password: password})
	if m.loginFunc != nil {
		return m.loginFunc(ctx, username, password)
	}
	return "", errors.New("mock not configured")
}

func (m *MockFantacalcioClient) DownloadVotes(ctx context.Context, seasonID string, fixture int, token model.AuthToken, w io.Writer) error {
	m.downloadCalls = append(m.downloadCalls, MockDownloadCall{SeasonID: seasonID, Fixture: fixture, Token: token})
	if m.downloadFunc != nil {
		return m.downloadFunc(ctx, seasonID, fixture, token, w)
	}
	return errors.New("mock not configured")
}

func notFound(fixture int) error {
	return goerr.New("votes spreadsheet not found",
		goerr.T(types.ErrTagFetch),
		goerr.V("status", 404),
		goerr.V("fixture", fixture),
	)
}

// MockFetcher is a mock implementation of FetchUseCase
type MockFetcher struct {
	fetchFunc func(fixture int) (string, error)
	calls     []int
}

func (m *MockFetcher) Fetch(ctx context.Context, season model.Season, fixture int, token model.AuthToken, cacheDir string) (string, error) {
	m.calls = append(m.calls, fixture)
	if m.fetchFunc != nil {
		return m.fetchFunc(fixture)
	}
	return "", errors.New("mock not configured")
}

// MockTokenStore is an in-memory TokenStore
type MockTokenStore struct {
	token   model.AuthToken
	saves   int
	deletes int
	loadErr error
}

func (m *MockTokenStore) Load(ctx context.Context) (model.AuthToken, bool, error) {
	if m.loadErr != nil {
		return "", false, m.loadErr
	}
	return m.token, m.token != "", nil
}

func (m *MockTokenStore) Save(ctx context.Context, token model.AuthToken) error {
	m.saves++
	m.token = token
	return nil
}

func (m *MockTokenStore) Delete(ctx context.Context) error {
	m.deletes++
	m.token = ""
	return nil
}

// MockPrompter returns a fixed password
type MockPrompter struct {
	password string
	calls    int
}

func (m *MockPrompter) Prompt(ctx context.Context, username string) (string, error) {
	m.calls++
	return m.password, nil
}

// MockSheetReader serves rows per path
type MockSheetReader struct {
	rows map[string][][]model.Cell
}

func (m *MockSheetReader) ReadRows(ctx context.Context, path string) ([][]model.Cell, error) {
	rows, ok := m.rows[path]
	if !ok {
		return nil, errors.New("no such file")
	}
	return rows, nil
}
