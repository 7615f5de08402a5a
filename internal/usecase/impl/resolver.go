package impl

import (
	"context"
	"log/slog"

	"beacon/internal/domain/entity"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

// resolverState tracks where a single sign-in chain stands. The machine is
// single-shot: no state is ever revisited, and a terminal state ends the call.
type resolverState int

const (
	stateIdle resolverState = iota
	stateAwaitingSignIn
	stateAwaitingAccountInfo
	stateResolved
	stateFailed
)

func (s resolverState) String() string {
	switch s {
	case stateIdle:
		return "idle"
	case stateAwaitingSignIn:
		return "awaiting_sign_in"
	case stateAwaitingAccountInfo:
		return "awaiting_account_info"
	case stateResolved:
		return "resolved"
	case stateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// sessionResolver drives one sign-in chain: redeem the oobCode, look up the
// account with the issued token, assemble the Session. A resolver is created
// fresh per call and owns all of its state exclusively; any error at any step
// short-circuits to failed with no retry and no partial Session.
type sessionResolver struct {
	transport service.Transport
	creds     service.Credentials
	state     resolverState
	logger    *slog.Logger
}

func newSessionResolver(transport service.Transport, creds service.Credentials, logger *slog.Logger) *sessionResolver {
	return &sessionResolver{
		transport: transport,
		creds:     creds,
		state:     stateIdle,
		logger:    logger,
	}
}

func (r *sessionResolver) transition(next resolverState) {
	r.logger.Debug("Resolver state transition",
		slog.String("from", r.state.String()),
		slog.String("to", next.String()))
	r.state = next
}

func (r *sessionResolver) fail(err error) error {
	r.transition(stateFailed)

	return err
}

// resolve runs the chain end to end. It suspends only at the two transport
// exchanges and performs no blocking computation of its own.
func (r *sessionResolver) resolve(ctx context.Context, email, signInLink string) (*entity.Session, error) {
	if r.state != stateIdle {
		return nil, errors.Errorf("resolver already used, state %s", r.state)
	}

	signInReq, err := service.NewSignInLinkRequest(email, signInLink, r.creds.APIKey)
	if err != nil {
		return nil, r.fail(err)
	}

	r.transition(stateAwaitingSignIn)

	signIn, err := r.transport.SignInWithEmailLink(ctx, signInReq)
	if err != nil {
		return nil, r.fail(errors.Wrap(err, "sign-in request failed"))
	}
	if err := signIn.Validate(); err != nil {
		return nil, r.fail(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, r.fail(errors.Wrap(err, "sign-in abandoned"))
	}

	// The freshly issued ID token doubles as the lookup access token.
	accountReq, err := service.NewAccountInfoRequest(r.creds.APIKey, signIn.IDToken)
	if err != nil {
		return nil, r.fail(err)
	}

	r.transition(stateAwaitingAccountInfo)

	accountInfo, err := r.transport.GetAccountInfo(ctx, accountReq)
	if err != nil {
		return nil, r.fail(errors.Wrap(err, "account lookup failed"))
	}
	if err := accountInfo.Validate(); err != nil {
		return nil, r.fail(err)
	}
	if err := ctx.Err(); err != nil {
		return nil, r.fail(errors.Wrap(err, "account lookup abandoned"))
	}

	first := accountInfo.Users[0]
	session := &entity.Session{
		User: &entity.User{
			LocalID:      first.LocalID,
			Email:        first.Email,
			DisplayName:  first.DisplayName,
			RefreshToken: signIn.RefreshToken,
			IsAnonymous:  false,
		},
		IDToken:      signIn.IDToken,
		RefreshToken: signIn.RefreshToken,
		ExpiresAt:    signIn.ExpiresAt,
	}

	r.transition(stateResolved)

	return session, nil
}
