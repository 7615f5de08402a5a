// Package emulator provides an in-memory Identity Toolkit backend for local
// development and integration tests. It speaks the same REST surface the
// production transport targets: oobCode issuance, email-link redemption and
// account lookup, with real (HS256) ID tokens so client-side token
// inspection behaves as it does against the hosted backend.
package emulator

import (
	"log/slog"
	"net/http"
	"net/url"
	"strconv"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/pkg/errors"
)

const requestTypeEmailSignIn = "EMAIL_SIGNIN"

// Backend error tokens, mirroring the hosted backend's vocabulary.
const (
	codeInvalidReqType     = "INVALID_REQ_TYPE"
	codeInvalidEmail       = "INVALID_EMAIL"
	codeMissingContinueURI = "MISSING_CONTINUE_URI"
	codeInvalidOOBCode     = "INVALID_OOB_CODE"
	codeInvalidIDToken     = "INVALID_ID_TOKEN"
	codeUserNotFound       = "USER_NOT_FOUND"
)

type account struct {
	localID     string
	email       string
	displayName string
}

// Emulator holds the in-memory state of one emulated backend project. All
// state is guarded by a single mutex; the emulator favors simplicity over
// throughput.
type Emulator struct {
	secret   []byte
	tokenTTL time.Duration
	logger   *slog.Logger

	mu       sync.Mutex
	codes    map[string]string  // oobCode -> email it was issued for
	accounts map[string]account // email -> account
}

// New creates an emulator minting tokens signed with secret and valid for
// tokenTTL.
func New(secret string, tokenTTL time.Duration, logger *slog.Logger) *Emulator {
	if tokenTTL <= 0 {
		tokenTTL = time.Hour
	}

	return &Emulator{
		secret:   []byte(secret),
		tokenTTL: tokenTTL,
		logger:   logger,
		codes:    make(map[string]string),
		accounts: make(map[string]account),
	}
}

// RegisterAccount pre-seeds an account, e.g. to give it a display name before
// a test signs it in. Accounts unseen before sign-in are created on the fly.
func (e *Emulator) RegisterAccount(email, displayName string) string {
	e.mu.Lock()
	defer e.mu.Unlock()

	acct, ok := e.accounts[email]
	if !ok {
		acct = account{localID: uuid.NewString(), email: email}
	}
	acct.displayName = displayName
	e.accounts[email] = acct

	return acct.localID
}

// SignInLink renders the link the backend would have emailed for an issued
// oobCode, wrapped one level behind a link= redirect parameter the way
// hosted-domain links arrive.
func (e *Emulator) SignInLink(oobCode, continueURL string) string {
	inner := url.Values{}
	inner.Set("mode", "signIn")
	inner.Set("oobCode", oobCode)
	if continueURL != "" {
		inner.Set("continueUrl", continueURL)
	}
	innerLink := "https://auth.emulator.local/action?" + inner.Encode()

	outer := url.Values{}
	outer.Set("link", innerLink)

	return "https://emulator.page.link/?" + outer.Encode()
}

// Handler builds the echo application serving the emulated REST surface.
func (e *Emulator) Handler() http.Handler {
	echoServer := echo.New()
	echoServer.HideBanner = true
	echoServer.Use(middleware.Recover())

	// Identity Toolkit verbs live after a colon inside the final path
	// segment, so they dispatch through one parameterized route.
	echoServer.POST("/v1/:action", e.dispatch)

	return echoServer
}

func (e *Emulator) dispatch(c echo.Context) error {
	switch c.Param("action") {
	case "accounts:sendOobCode":
		return e.sendOOBCode(c)
	case "accounts:signInWithEmailLink":
		return e.signInWithEmailLink(c)
	case "accounts:lookup":
		return e.lookup(c)
	default:
		return e.errorReply(c, http.StatusNotFound, "NOT_FOUND")
	}
}

type sendOOBCodePayload struct {
	RequestType        string `json:"requestType"`
	Email              string `json:"email"`
	ContinueURL        string `json:"continueUrl"`
	CanHandleCodeInApp bool   `json:"canHandleCodeInApp"`
}

func (e *Emulator) sendOOBCode(c echo.Context) error {
	var payload sendOOBCodePayload
	if err := c.Bind(&payload); err != nil {
		return e.errorReply(c, http.StatusBadRequest, codeInvalidEmail)
	}

	if payload.RequestType != requestTypeEmailSignIn {
		return e.errorReply(c, http.StatusBadRequest, codeInvalidReqType)
	}
	if payload.Email == "" {
		return e.errorReply(c, http.StatusBadRequest, codeInvalidEmail)
	}
	if payload.CanHandleCodeInApp && payload.ContinueURL == "" {
		return e.errorReply(c, http.StatusBadRequest, codeMissingContinueURI)
	}

	oobCode := uuid.NewString()

	e.mu.Lock()
	e.codes[oobCode] = payload.Email
	e.mu.Unlock()

	e.logger.Debug("Issued oobCode", slog.String("email", payload.Email))

	// The hosted backend delivers the code by email only; the emulator also
	// returns it so tests and local tools can follow the link.
	return c.JSON(http.StatusOK, map[string]any{
		"email":   payload.Email,
		"oobCode": oobCode,
	})
}

type signInWithEmailLinkPayload struct {
	Email   string `json:"email"`
	OOBCode string `json:"oobCode"`
}

func (e *Emulator) signInWithEmailLink(c echo.Context) error {
	var payload signInWithEmailLinkPayload
	if err := c.Bind(&payload); err != nil {
		return e.errorReply(c, http.StatusBadRequest, codeInvalidOOBCode)
	}

	e.mu.Lock()
	email, ok := e.codes[payload.OOBCode]
	if ok && email == payload.Email {
		// Single-use: redeeming consumes the code.
		delete(e.codes, payload.OOBCode)
	}
	e.mu.Unlock()

	if !ok || email != payload.Email {
		return e.errorReply(c, http.StatusBadRequest, codeInvalidOOBCode)
	}

	e.mu.Lock()
	acct, exists := e.accounts[email]
	if !exists {
		acct = account{localID: uuid.NewString(), email: email}
		e.accounts[email] = acct
	}
	e.mu.Unlock()

	idToken, err := e.mintIDToken(acct)
	if err != nil {
		return e.errorReply(c, http.StatusInternalServerError, "TOKEN_MINT_FAILED")
	}

	e.logger.Debug("Redeemed oobCode", slog.String("email", email), slog.String("localId", acct.localID))

	return c.JSON(http.StatusOK, map[string]any{
		"idToken":      idToken,
		"refreshToken": uuid.NewString(),
		"expiresIn":    strconv.Itoa(int(e.tokenTTL.Seconds())),
		"email":        acct.email,
		"localId":      acct.localID,
	})
}

type accountLookupPayload struct {
	IDToken string `json:"idToken"`
}

func (e *Emulator) lookup(c echo.Context) error {
	var payload accountLookupPayload
	if err := c.Bind(&payload); err != nil {
		return e.errorReply(c, http.StatusBadRequest, codeInvalidIDToken)
	}

	email, err := e.verifyIDToken(payload.IDToken)
	if err != nil {
		return e.errorReply(c, http.StatusBadRequest, codeInvalidIDToken)
	}

	e.mu.Lock()
	acct, ok := e.accounts[email]
	e.mu.Unlock()

	if !ok {
		return e.errorReply(c, http.StatusBadRequest, codeUserNotFound)
	}

	return c.JSON(http.StatusOK, map[string]any{
		"users": []map[string]any{
			{
				"localId":     acct.localID,
				"email":       acct.email,
				"displayName": acct.displayName,
			},
		},
	})
}

func (e *Emulator) mintIDToken(acct account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":   acct.localID,
		"email": acct.email,
		"iat":   now.Unix(),
		"exp":   now.Add(e.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)

	return token.SignedString(e.secret)
}

func (e *Emulator) verifyIDToken(idToken string) (string, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return e.secret, nil
	})
	if err != nil {
		return "", errors.Wrap(err, "failed to parse ID token")
	}
	if !token.Valid {
		return "", errors.New("invalid ID token")
	}

	email, _ := claims["email"].(string)
	if email == "" {
		return "", errors.New("ID token missing email claim")
	}

	return email, nil
}

// errorReply renders a failure in the backend's error envelope.
func (e *Emulator) errorReply(c echo.Context, statusCode int, message string) error {
	return c.JSON(statusCode, map[string]any{
		"error": map[string]any{
			"code":    statusCode,
			"message": message,
		},
	})
}
