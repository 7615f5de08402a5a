package service

import (
	"net/url"

	domainerrors "beacon/internal/domain/errors"

	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// ActionCodeSettings carries the caller-supplied continuation parameters that
// control how a sign-in link redirects back into the application.
type ActionCodeSettings struct {
	ContinueURL     string // Where the link lands after the backend handles it.
	HandleCodeInApp bool   // Must be true for email-link sign-in; the app redeems the code itself.
}

// SignInLinkRequest redeems an oobCode extracted from a sign-in link.
type SignInLinkRequest struct {
	RequestID string // Client-generated ID attached to transport logs.
	Email     string
	OOBCode   string // One-time confirmation code, non-empty by construction.
	APIKey    string
}

// SendSignInLinkRequest asks the backend to email a sign-in link.
type SendSignInLinkRequest struct {
	RequestID       string
	Email           string
	ContinueURL     string
	HandleCodeInApp bool
	APIKey          string
}

// AccountInfoRequest looks up the accounts behind an access token.
type AccountInfoRequest struct {
	RequestID   string
	APIKey      string
	AccessToken string
}

// NewSignInLinkRequest builds a sign-in request from the link the user
// followed. It fails with ErrMalformedLink when no oobCode can be extracted,
// before any backend call is made.
func NewSignInLinkRequest(email, signInLink, apiKey string) (*SignInLinkRequest, error) {
	oobCode, err := ExtractOOBCode(signInLink)
	if err != nil {
		return nil, err
	}

	return &SignInLinkRequest{
		RequestID: uuid.NewString(),
		Email:     email,
		OOBCode:   oobCode,
		APIKey:    apiKey,
	}, nil
}

// NewSendSignInLinkRequest builds a send-link request from the caller's
// action code settings. It fails with ErrInvalidSettings when in-app handling
// is requested without a continue URL.
func NewSendSignInLinkRequest(email string, settings ActionCodeSettings, apiKey string) (*SendSignInLinkRequest, error) {
	if settings.HandleCodeInApp && settings.ContinueURL == "" {
		return nil, domainerrors.ErrInvalidSettings.WrapMessage("handleCodeInApp requires a continue URL")
	}

	return &SendSignInLinkRequest{
		RequestID:       uuid.NewString(),
		Email:           email,
		ContinueURL:     settings.ContinueURL,
		HandleCodeInApp: settings.HandleCodeInApp,
		APIKey:          apiKey,
	}, nil
}

// NewAccountInfoRequest builds an account lookup request. It fails with
// ErrMissingToken when the access token is empty.
func NewAccountInfoRequest(apiKey, accessToken string) (*AccountInfoRequest, error) {
	if accessToken == "" {
		return nil, domainerrors.ErrMissingToken.WrapMessage("cannot look up account info")
	}

	return &AccountInfoRequest{
		RequestID:   uuid.NewString(),
		APIKey:      apiKey,
		AccessToken: accessToken,
	}, nil
}

// ExtractOOBCode locates the innermost oobCode parameter of a sign-in link.
// Links forwarded through a redirect service arrive with the real link nested
// behind a link= query parameter, possibly more than once; the innermost
// oobCode wins regardless of nesting depth.
func ExtractOOBCode(signInLink string) (string, error) {
	var oobCode string

	current := signInLink
	for current != "" {
		parsed, err := url.Parse(current)
		if err != nil {
			if oobCode != "" {
				break
			}

			return "", errors.Wrap(domainerrors.ErrMalformedLink, err.Error())
		}

		query := parsed.Query()
		if code := query.Get("oobCode"); code != "" {
			oobCode = code
		}

		current = query.Get("link")
	}

	if oobCode == "" {
		return "", domainerrors.ErrMalformedLink.WrapMessage("no oobCode parameter found in " + signInLink)
	}

	return oobCode, nil
}
