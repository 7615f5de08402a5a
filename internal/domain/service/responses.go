package service

import (
	"time"

	domainerrors "beacon/internal/domain/errors"
)

// DefaultTokenTTL applies when the backend reply does not state how long the
// issued access token lives. One hour matches the backend's own issuance
// policy.
const DefaultTokenTTL = time.Hour

// SignInResponse is the decoded reply of a successful oobCode redemption.
type SignInResponse struct {
	IDToken      string
	RefreshToken string
	ExpiresAt    time.Time // Computed at decode time as now + TTL, never read off the wire.
}

// AccountInfoUser is one account entry of a lookup reply, in backend order.
type AccountInfoUser struct {
	LocalID     string
	Email       string
	DisplayName string
}

// AccountInfoResponse is the decoded reply of an account lookup.
type AccountInfoResponse struct {
	Users []AccountInfoUser
}

// ConfirmationCodeResponse is the decoded reply of a send-link request. The
// code is opaque, backend-issued and consumed exactly once server-side.
type ConfirmationCodeResponse struct {
	OOBCode string
}

// NewSignInResponse decodes a sign-in reply from its raw fields. The token
// time-to-live falls back to DefaultTokenTTL when the backend stated none, so
// ExpiresAt is always strictly in the future at creation.
func NewSignInResponse(idToken, refreshToken string, ttl time.Duration) (*SignInResponse, error) {
	if idToken == "" {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("sign-in reply missing idToken")
	}
	if refreshToken == "" {
		return nil, domainerrors.ErrMalformedResponse.WrapMessage("sign-in reply missing refreshToken")
	}

	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}

	return &SignInResponse{
		IDToken:      idToken,
		RefreshToken: refreshToken,
		ExpiresAt:    time.Now().Add(ttl),
	}, nil
}

// Validate re-checks the response invariants. Transports built from raw wire
// payloads already hold them; the resolver still validates so that canned
// test responses face the same contract.
func (r *SignInResponse) Validate() error {
	if r == nil || r.IDToken == "" || r.RefreshToken == "" {
		return domainerrors.ErrMalformedResponse.WrapMessage("sign-in response missing tokens")
	}

	return nil
}

// Validate fails when the lookup reply carries no account entry.
func (r *AccountInfoResponse) Validate() error {
	if r == nil || len(r.Users) == 0 {
		return domainerrors.ErrMalformedResponse.WrapMessage("account info response contains no users")
	}

	return nil
}

// Validate fails when the reply carries no confirmation code.
func (r *ConfirmationCodeResponse) Validate() error {
	if r == nil || r.OOBCode == "" {
		return domainerrors.ErrMalformedResponse.WrapMessage("confirmation reply missing oobCode")
	}

	return nil
}
