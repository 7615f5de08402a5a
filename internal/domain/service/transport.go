// Package service defines interfaces for core, stateless domain logic and the
// typed records that cross the backend transport boundary.
package service

import "context"

// Credentials identifies the backend project every request is keyed by.
// It is immutable and safe to share across calls.
type Credentials struct {
	APIKey string
}

// Transport is the seam between the client and the authentication backend.
// Each method sends one typed request and yields exactly one typed response
// or error; a production implementation issues an HTTP call, a test
// implementation short-circuits with a canned response. Implementations must
// not retry and must have no side effects beyond the single exchange.
type Transport interface {
	// SignInWithEmailLink redeems a one-time oobCode for tokens.
	SignInWithEmailLink(ctx context.Context, req *SignInLinkRequest) (*SignInResponse, error)

	// SendSignInLink asks the backend to email a sign-in link. The oobCode in
	// the response is issued and consumed server-side; callers above the
	// transport never see it.
	SendSignInLink(ctx context.Context, req *SendSignInLinkRequest) (*ConfirmationCodeResponse, error)

	// GetAccountInfo looks up the accounts behind an access token.
	GetAccountInfo(ctx context.Context, req *AccountInfoRequest) (*AccountInfoResponse, error)
}

// TokenInfo holds the claims the client reads out of a backend-issued ID
// token without verifying its signature. Verification is the backend's job;
// the client only uses these claims for expiry bookkeeping and logging.
type TokenInfo struct {
	Subject   string // The account's localId, from the sub claim.
	Email     string // The email claim, when present.
	ExpiresAt int64  // Unix seconds of the exp claim, zero when absent.
}

// TokenInspector extracts claims from an ID token without verifying it.
type TokenInspector interface {
	// Inspect parses the token and returns its claims. It fails when the
	// token is not a structurally valid JWT.
	Inspect(token string) (*TokenInfo, error)
}

// QRCodeService defines the interface for rendering sign-in links as QR codes
// for cross-device flows.
type QRCodeService interface {
	// GenerateSignInLinkQR renders a sign-in link as a PNG QR code.
	GenerateSignInLinkQR(signInLink string) ([]byte, error)

	// ParseSignInLinkQR validates scanned QR data as a sign-in link and
	// returns it. The data must carry an oobCode.
	ParseSignInLinkQR(qrData string) (string, error)
}
