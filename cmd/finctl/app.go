package main

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dafibh/fortuna/fortuna-web/internal/domain"
	"github.com/dafibh/fortuna/fortuna-web/internal/repository/remote"
	"github.com/dafibh/fortuna/fortuna-web/internal/service"
	"github.com/dafibh/fortuna/fortuna-web/internal/session"
	"github.com/rs/zerolog/log"
	"github.com/spf13/viper"
)

// cliSessionTTL bounds how long a terminal sign-in is reused
const cliSessionTTL = 30 * 24 * time.Hour

var (
	errNotSignedIn    = errors.New("not signed in, run `finctl login` first")
	errSessionExpired = errors.New("the API rejected the stored sign-in, run `finctl login` again")
)

var defaultSessionFile = session.DefaultFilePath

// app wires the client layer for one command invocation
type app struct {
	store     *session.FileStore
	auth      *service.AuthService
	expenses  *service.ExpenseService
	recurring *service.RecurringService
	dashboard *service.DashboardService
}

func newApp() (*app, error) {
	apiURL := viper.GetString("api_url")
	if apiURL == "" {
		return nil, errors.New("no API URL configured: pass --api-url, set FINCTL_API_URL or add api_url to ~/.finctl.yaml")
	}

	client, err := remote.NewClient(apiURL, viper.GetDuration("timeout"))
	if err != nil {
		return nil, err
	}

	path, err := sessionFilePath()
	if err != nil {
		return nil, err
	}
	store, err := session.NewFileStore(path)
	if err != nil {
		return nil, err
	}

	recurringRepo := remote.NewRecurringExpenseRepository(client)
	return &app{
		store:     store,
		auth:      service.NewAuthService(remote.NewAuthRepository(client), store, cliSessionTTL),
		expenses:  service.NewExpenseService(remote.NewExpenseRepository(client)),
		recurring: service.NewRecurringService(recurringRepo),
		dashboard: service.NewDashboardService(remote.NewDashboardRepository(client), recurringRepo),
	}, nil
}

// withToken runs fn with the stored API token. A token the API rejects is
// dropped so the next command asks for a fresh sign-in.
func (a *app) withToken(ctx context.Context, fn func(token string) error) error {
	sess, err := a.store.Current(ctx)
	if errors.Is(err, domain.ErrSessionNotFound) {
		return errNotSignedIn
	}
	if err != nil {
		return fmt.Errorf("read session: %w", err)
	}

	err = fn(sess.Token)
	if errors.Is(err, domain.ErrUnauthorized) {
		if clearErr := a.auth.Invalidate(ctx, sess.ID); clearErr != nil {
			log.Warn().Err(clearErr).Msg("Failed to clear rejected session")
		}
		return errSessionExpired
	}
	return err
}
