// Package rest implements the backend transport over the Identity Toolkit
// REST surface.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"beacon/config"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultEndpoint = "https://identitytoolkit.googleapis.com"
	defaultTimeout  = 30 * time.Second

	signInWithEmailLinkPath = "/v1/accounts:signInWithEmailLink"
	sendOOBCodePath         = "/v1/accounts:sendOobCode"
	accountLookupPath       = "/v1/accounts:lookup"

	// requestTypeEmailSignIn selects the email-link flow on sendOobCode.
	requestTypeEmailSignIn = "EMAIL_SIGNIN"
)

// transport is the production Transport implementation. It holds no per-call
// state; every exchange is a single HTTP round trip owned by its caller.
type transport struct {
	endpoint   string
	tokenTTL   time.Duration
	httpClient *http.Client
	inspector  service.TokenInspector
	logger     *slog.Logger
}

// NewTransport is the constructor for the REST transport. Endpoint, timeout
// and token TTL default when the config leaves them unset.
func NewTransport(cfg *config.Config, inspector service.TokenInspector, logger *slog.Logger) service.Transport {
	endpoint := defaultEndpoint
	timeout := defaultTimeout
	tokenTTL := service.DefaultTokenTTL

	if cfg != nil && cfg.Auth != nil {
		if cfg.Auth.Endpoint != "" {
			endpoint = cfg.Auth.Endpoint
		}
		if cfg.Auth.Timeout > 0 {
			timeout = cfg.Auth.Timeout
		}
		if cfg.Auth.TokenTTL > 0 {
			tokenTTL = cfg.Auth.TokenTTL
		}
	}

	return &transport{
		endpoint:   endpoint,
		tokenTTL:   tokenTTL,
		httpClient: &http.Client{Timeout: timeout},
		inspector:  inspector,
		logger:     logger,
	}
}

// --- wire payloads ---

type signInWithEmailLinkPayload struct {
	Email   string `json:"email"`
	OOBCode string `json:"oobCode"`
}

type signInWithEmailLinkReply struct {
	IDToken      string `json:"idToken"`
	RefreshToken string `json:"refreshToken"`
	ExpiresIn    string `json:"expiresIn"` // Seconds, as a decimal string.
	Email        string `json:"email"`
	LocalID      string `json:"localId"`
}

type sendOOBCodePayload struct {
	RequestType        string `json:"requestType"`
	Email              string `json:"email"`
	ContinueURL        string `json:"continueUrl,omitempty"`
	CanHandleCodeInApp bool   `json:"canHandleCodeInApp"`
}

type sendOOBCodeReply struct {
	Email   string `json:"email"`
	OOBCode string `json:"oobCode"`
}

type accountLookupPayload struct {
	IDToken string `json:"idToken"`
}

type accountLookupReply struct {
	Users []struct {
		LocalID     string `json:"localId"`
		Email       string `json:"email"`
		DisplayName string `json:"displayName"`
	} `json:"users"`
}

type errorReply struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// SignInWithEmailLink redeems the oobCode for tokens.
func (t *transport) SignInWithEmailLink(ctx context.Context, req *service.SignInLinkRequest) (*service.SignInResponse, error) {
	t.logger.Debug("Redeeming sign-in link", slog.String("requestID", req.RequestID), slog.String("email", req.Email))

	payload := signInWithEmailLinkPayload{
		Email:   req.Email,
		OOBCode: req.OOBCode,
	}

	var reply signInWithEmailLinkReply
	if err := t.post(ctx, signInWithEmailLinkPath, req.APIKey, req.RequestID, payload, &reply); err != nil {
		return nil, err
	}

	return service.NewSignInResponse(reply.IDToken, reply.RefreshToken, t.tokenLifetime(reply))
}

// SendSignInLink asks the backend to email a sign-in link.
func (t *transport) SendSignInLink(ctx context.Context, req *service.SendSignInLinkRequest) (*service.ConfirmationCodeResponse, error) {
	t.logger.Debug("Requesting sign-in link email", slog.String("requestID", req.RequestID), slog.String("email", req.Email))

	payload := sendOOBCodePayload{
		RequestType:        requestTypeEmailSignIn,
		Email:              req.Email,
		ContinueURL:        req.ContinueURL,
		CanHandleCodeInApp: req.HandleCodeInApp,
	}

	var reply sendOOBCodeReply
	if err := t.post(ctx, sendOOBCodePath, req.APIKey, req.RequestID, payload, &reply); err != nil {
		return nil, err
	}

	resp := &service.ConfirmationCodeResponse{OOBCode: reply.OOBCode}
	if err := resp.Validate(); err != nil {
		return nil, err
	}

	return resp, nil
}

// GetAccountInfo looks up the accounts behind an access token.
func (t *transport) GetAccountInfo(ctx context.Context, req *service.AccountInfoRequest) (*service.AccountInfoResponse, error) {
	t.logger.Debug("Looking up account info", slog.String("requestID", req.RequestID))

	payload := accountLookupPayload{IDToken: req.AccessToken}

	var reply accountLookupReply
	if err := t.post(ctx, accountLookupPath, req.APIKey, req.RequestID, payload, &reply); err != nil {
		return nil, err
	}

	resp := &service.AccountInfoResponse{}
	for _, user := range reply.Users {
		resp.Users = append(resp.Users, service.AccountInfoUser{
			LocalID:     user.LocalID,
			Email:       user.Email,
			DisplayName: user.DisplayName,
		})
	}

	if err := resp.Validate(); err != nil {
		return nil, err
	}

	return resp, nil
}

// tokenLifetime derives the issued token's TTL: the wire expiresIn wins, the
// token's own exp claim is next, and the configured default covers the rest.
func (t *transport) tokenLifetime(reply signInWithEmailLinkReply) time.Duration {
	if seconds, err := strconv.Atoi(reply.ExpiresIn); err == nil && seconds > 0 {
		return time.Duration(seconds) * time.Second
	}

	if t.inspector != nil {
		if info, err := t.inspector.Inspect(reply.IDToken); err == nil && info.ExpiresAt > 0 {
			if ttl := time.Until(time.Unix(info.ExpiresAt, 0)); ttl > 0 {
				return ttl
			}
		}
	}

	return t.tokenTTL
}

// post issues one backend exchange: encode, send, decode, and map non-2xx
// replies to BackendError with the backend's own code and message.
func (t *transport) post(ctx context.Context, path, apiKey, requestID string, payload, reply any) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return errors.Wrap(err, "failed to encode request payload")
	}

	query := url.Values{}
	query.Set("key", apiKey)
	requestURL := t.endpoint + path + "?" + query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, requestURL, bytes.NewReader(body))
	if err != nil {
		return errors.Wrap(err, "failed to create backend request")
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Client-Request-Id", requestID)

	resp, err := t.httpClient.Do(req)
	if err != nil {
		return errors.Wrap(err, "backend request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return t.decodeError(resp)
	}

	if err := json.NewDecoder(resp.Body).Decode(reply); err != nil {
		return errors.Wrap(domainerrors.ErrMalformedResponse, err.Error())
	}

	return nil
}

// decodeError maps a backend failure reply to a BackendError. The code and
// message pass through verbatim; an undecodable body falls back to the HTTP
// status text.
func (t *transport) decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(resp.Body)

	var reply errorReply
	if err := json.Unmarshal(raw, &reply); err == nil && reply.Error.Message != "" {
		return domainerrors.NewBackendError(resp.StatusCode, reply.Error.Message)
	}

	return domainerrors.NewBackendError(resp.StatusCode, http.StatusText(resp.StatusCode))
}
