package fantacalcio

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"
	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

// DefaultBaseURL is the public fantacalcio.it endpoint
const DefaultBaseURL = "https://www.fantacalcio.it"

const (
	loginPath = "/api/v1/User/login"
	votesPath = "/api/v1/Excel/votes/%s/%d"
)

// config holds internal client configuration
type config struct {
	baseURL string
	logger  *slog.Logger
}

// Option is a functional option for Client configuration
type Option func(*config)

// WithBaseURL overrides the API base URL
func WithBaseURL(url string) Option {
	return func(c *config) {
		c.baseURL = url
	}
}

// WithLogger sets the logger used for request tracing
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		c.logger = logger
	}
}

type client struct {
	http   *resty.Client
	logger *slog.Logger
}

// NewClient creates a new fantacalcio.it API client
func NewClient(opts ...Option) interfaces.FantacalcioClient {
	cfg := &config{
		baseURL: DefaultBaseURL,
		logger:  slog.Default(),
	}
	for _, opt := range opts {
		opt(cfg)
	}

	httpClient := resty.New()
	httpClient.SetBaseURL(strings.TrimRight(cfg.baseURL, "/"))
	// The session travels only through the explicit Cookie header
	httpClient.SetCookieJar(nil)

	c := &client{
		http:   httpClient,
		logger: cfg.logger,
	}
	httpClient.OnAfterResponse(c.traceResponse)
	return c
}

func (c *client) traceResponse(_ *resty.Client, res *resty.Response) error {
	c.logger.Debug("HTTP response",
		"method", res.Request.Method,
		"url", res.Request.URL,
		"status", res.StatusCode(),
		"duration_ms", res.Time().Milliseconds(),
	)
	return nil
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Success  bool   `json:"success"`
	Username string `json:"username"`
}

// Login posts the credentials and returns the session cookies as a
// Cookie header value
func (c *client) Login(ctx context.Context, username, password string) (model.AuthToken, error) {
	res, err := c.http.R().
		SetContext(ctx).
		SetBody(loginRequest{Username: username, Password: password}).
		Post(loginPath)
	if err != nil {
		return "", goerr.Wrap(err, "failed to send login request",
			goerr.T(types.ErrTagNetwork),
			goerr.V("url", c.http.BaseURL+loginPath),
		)
	}

	if !res.IsSuccess() {
		return "", goerr.New("login request failed",
			goerr.T(types.ErrTagNetwork),
			goerr.V("url", res.Request.URL),
			goerr.V("status", res.StatusCode()),
			goerr.V("status_text", res.Status()),
		)
	}

	var body loginResponse
	if err := json.Unmarshal(res.Body(), &body); err != nil {
		return "", goerr.Wrap(err, "failed to decode login response",
			goerr.T(types.ErrTagNetwork),
			goerr.V("url", res.Request.URL),
			goerr.V("status", res.StatusCode()),
		)
	}

	if !body.Success {
		return "", goerr.New("invalid credentials",
			goerr.T(types.ErrTagAuth),
			goerr.V("username", username),
		)
	}

	token := joinCookies(res.Cookies())
	if token == "" {
		return "", goerr.New("missing token",
			goerr.T(types.ErrTagAuth),
			goerr.V("username", username),
		)
	}

	c.logger.Info("Logged in", "username", body.Username)
	return token, nil
}

func joinCookies(cookies []*http.Cookie) model.AuthToken {
	pairs := make([]string, 0, len(cookies))
	for _, cookie := range cookies {
		if cookie.Name == "" {
			continue
		}
		pairs = append(pairs, cookie.Name+"="+cookie.Value)
	}
	return model.AuthToken(strings.Join(pairs, "; "))
}

// DownloadVotes streams the spreadsheet of (seasonID, fixture) into w
func (c *client) DownloadVotes(ctx context.Context, seasonID string, fixture int, token model.AuthToken, w io.Writer) error {
	path := fmt.Sprintf(votesPath, seasonID, fixture)

	res, err := c.http.R().
		SetContext(ctx).
		SetHeader("Cookie", string(token)).
		SetDoNotParseResponse(true).
		Get(path)
	if err != nil {
		return goerr.Wrap(err, "failed to send download request",
			goerr.T(types.ErrTagNetwork),
			goerr.V("url", c.http.BaseURL+path),
			goerr.V("fixture", fixture),
		)
	}
	body := res.RawBody()
	defer body.Close()

	switch {
	case res.StatusCode() == http.StatusNotFound:
		return goerr.New("votes spreadsheet not found",
			goerr.T(types.ErrTagFetch),
			goerr.V("url", res.Request.URL),
			goerr.V("status", res.StatusCode()),
			goerr.V("status_text", res.Status()),
			goerr.V("fixture", fixture),
		)
	case !res.IsSuccess():
		return goerr.New("failed to download votes spreadsheet",
			goerr.T(types.ErrTagNetwork),
			goerr.V("url", res.Request.URL),
			goerr.V("status", res.StatusCode()),
			goerr.V("status_text", res.Status()),
			goerr.V("fixture", fixture),
		)
	}

	n, err := io.Copy(w, body)
	if err != nil {
		return goerr.Wrap(err, "failed to read votes spreadsheet",
			goerr.T(types.ErrTagNetwork),
			goerr.V("url", res.Request.URL),
			goerr.V("fixture", fixture),
		)
	}

	c.logger.Debug("Downloaded votes spreadsheet",
		"url", res.Request.URL,
		"size_bytes", n,
	)
	return nil
}
