// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"log/slog"

	"beacon/config"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	"beacon/internal/usecase"

	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// authService implements the AuthUsecase interface. It holds only immutable
// credentials and stateless collaborators; every call builds its own request
// graph, so concurrent calls share nothing mutable.
type authService struct {
	creds     service.Credentials
	transport service.Transport
	validate  *validator.Validate
	logger    *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	Config    *config.Config
	Transport service.Transport
	Logger    *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all
// dependencies as interfaces.
func NewAuthService(params AuthServiceParams) (usecase.AuthUsecase, error) {
	if params.Config == nil || params.Config.Auth == nil || params.Config.Auth.APIKey == "" {
		return nil, errors.New("auth api key must be provided")
	}

	return &authService{
		creds:     service.Credentials{APIKey: params.Config.Auth.APIKey},
		transport: params.Transport,
		validate:  validator.New(),
		logger:    params.Logger,
	}, nil
}

// SignInWithEmailLink runs the sign-in chain through a fresh resolver and
// returns the assembled session.
func (srv *authService) SignInWithEmailLink(ctx context.Context, input *usecase.SignInInput) (*usecase.SignInOutput, error) {
	srv.logger.Info("Starting email-link sign-in", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		return nil, errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	resolver := newSessionResolver(srv.transport, srv.creds, srv.logger)

	session, err := resolver.resolve(ctx, input.Email, input.SignInLink)
	if err != nil {
		srv.logger.Error("Email-link sign-in failed", slog.String("email", input.Email), slog.Any("error", err))

		return nil, err
	}

	srv.logger.Debug("Email-link sign-in resolved",
		slog.String("localID", session.User.LocalID),
		slog.Time("expiresAt", session.ExpiresAt))

	return &usecase.SignInOutput{Session: session}, nil
}

// SendSignInLink builds and dispatches one send-link request. Success carries
// no payload: the confirmation code in the backend reply is validated and
// discarded, never surfaced to the caller.
func (srv *authService) SendSignInLink(ctx context.Context, input *usecase.SendSignInLinkInput) error {
	srv.logger.Info("Requesting sign-in link", slog.String("email", input.Email))

	if err := srv.validate.Struct(input); err != nil {
		return errors.Wrap(domainerrors.ErrValidationFailed, err.Error())
	}

	req, err := service.NewSendSignInLinkRequest(input.Email, input.Settings, srv.creds.APIKey)
	if err != nil {
		return err
	}

	resp, err := srv.transport.SendSignInLink(ctx, req)
	if err != nil {
		srv.logger.Error("Send sign-in link failed", slog.String("email", input.Email), slog.Any("error", err))

		return errors.Wrap(err, "send sign-in link request failed")
	}

	if err := resp.Validate(); err != nil {
		return err
	}

	srv.logger.Debug("Sign-in link requested", slog.String("email", input.Email))

	return nil
}
