package usecase

import (
	"context"
	"log/slog"

	"github.com/m-mizutani/fantavoti/pkg/domain/interfaces"
	"github.com/m-mizutani/fantavoti/pkg/domain/model"
	"github.com/m-mizutani/fantavoti/pkg/domain/types"
	"github.com/m-mizutani/goerr/v2"
)

type authUseCase struct {
	client   interfaces.FantacalcioClient
	store    interfaces.TokenStore
	prompter interfaces.PasswordPrompter
	password string
	logger   *slog.Logger
}

// NewAuth creates an AuthUseCase. store may be nil to disable token
// caching; password may be empty, then prompter is asked on login.
func NewAuth(
	client interfaces.FantacalcioClient,
	store interfaces.TokenStore,
	prompter interfaces.PasswordPrompter,
	password string,
	opts ...Option,
) interfaces.AuthUseCase {
	o := newOptions(opts)
	return &authUseCase{
		client:   client,
		store:    store,
		prompter: prompter,
		password: password,
		logger:   o.logger,
	}
}

// Token returns the cached session token, or logs in and caches a new one
func (uc *authUseCase) Token(ctx context.Context, username string) (model.AuthToken, error) {
	if uc.store != nil {
		token, ok, err := uc.store.Load(ctx)
		if err != nil {
			return "", goerr.Wrap(err, "failed to load cached token")
		}
		if ok {
			uc.logger.Info("Using cached session token")
			return token, nil
		}
	}

	if username == "" {
		return "", goerr.New("username is required to log in. Alternatively put a session cookie into the token file",
			goerr.T(types.ErrTagConfig),
		)
	}

	password := uc.password
	if password == "" {
		if uc.prompter == nil {
			return "", goerr.New("password is required to log in", goerr.T(types.ErrTagConfig))
		}
		uc.logger.Debug("No password configured, prompting", "username", username)

		var err error
		password, err = uc.prompter.Prompt(ctx, username)
		if err != nil {
			return "", goerr.Wrap(err, "failed to read password", goerr.T(types.ErrTagConfig))
		}
		if password == "" {
			return "", goerr.New("empty password", goerr.T(types.ErrTagConfig))
		}
	}

	uc.logger.Debug("Starting login", "username", username)
	token, err := uc.client.Login(ctx, username, password)
	if err != nil {
		return "", goerr.Wrap(err, "failed to log in", goerr.V("username", username))
	}
	uc.logger.Debug("User authentication completed", "username", username)

	if uc.store != nil {
		if err := uc.store.Save(ctx, token); err != nil {
			return "", goerr.Wrap(err, "failed to save session token")
		}
		uc.logger.Debug("Saved session token")
	}

	return token, nil
}

// Logout removes the cached session token
func (uc *authUseCase) Logout(ctx context.Context) error {
	if uc.store == nil {
		return nil
	}
	if err := uc.store.Delete(ctx); err != nil {
		return goerr.Wrap(err, "failed to delete cached token")
	}
	uc.logger.Info("Removed cached session token")
	return nil
}
