package impl

import (
	"context"
	"testing"
	"time"

	"beacon/config"
	domainerrors "beacon/internal/domain/errors"
	"beacon/internal/domain/service"
	mockService "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestAuthService_SignInWithEmailLink_MalformedLink(t *testing.T) {
	transport := newUnusedTransport(t)
	svc := newTestAuthService(t, transport)

	output, err := svc.SignInWithEmailLink(context.Background(), &usecase.SignInInput{
		Email:      testEmail,
		SignInLink: "https://example.firebaseapp.com/action?apiKey=API_KEY&mode=signIn",
	})

	// The builder rejects the link before any backend call is made.
	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMalformedLink)
	assert.Nil(t, output)
	transport.AssertNotCalled(t, "SignInWithEmailLink", mock.Anything, mock.Anything)
}

func TestAuthService_SignInWithEmailLink_NoUsers(t *testing.T) {
	transport := mockService.NewMockTransport(t)
	svc := newTestAuthService(t, transport)

	ctx := context.Background()

	transport.EXPECT().
		SignInWithEmailLink(ctx, mock.Anything).
		Return(&service.SignInResponse{IDToken: "ID_TOKEN", RefreshToken: "REFRESH_TOKEN", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	transport.EXPECT().
		GetAccountInfo(ctx, mock.Anything).
		Return(&service.AccountInfoResponse{}, nil)

	output, err := svc.SignInWithEmailLink(ctx, &usecase.SignInInput{Email: testEmail, SignInLink: testSignInLink})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrMalformedResponse)
	assert.Nil(t, output)
}

func TestAuthService_SignInWithEmailLink_BackendErrorAtSignIn(t *testing.T) {
	transport := mockService.NewMockTransport(t)
	svc := newTestAuthService(t, transport)

	ctx := context.Background()
	backendErr := domainerrors.NewBackendError(400, "INVALID_OOB_CODE")

	transport.EXPECT().
		SignInWithEmailLink(ctx, mock.Anything).
		Return(nil, backendErr)

	output, err := svc.SignInWithEmailLink(ctx, &usecase.SignInInput{Email: testEmail, SignInLink: testSignInLink})

	require.Error(t, err)
	assert.Nil(t, output)

	got, ok := domainerrors.IsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, 400, got.StatusCode)
	assert.Equal(t, "INVALID_OOB_CODE", got.Code)

	// The chain short-circuits: no lookup after a failed sign-in.
	transport.AssertNotCalled(t, "GetAccountInfo", mock.Anything, mock.Anything)
}

func TestAuthService_SignInWithEmailLink_BackendErrorAtLookup(t *testing.T) {
	transport := mockService.NewMockTransport(t)
	svc := newTestAuthService(t, transport)

	ctx := context.Background()
	backendErr := domainerrors.NewBackendError(400, "INVALID_ID_TOKEN")

	transport.EXPECT().
		SignInWithEmailLink(ctx, mock.Anything).
		Return(&service.SignInResponse{IDToken: "ID_TOKEN", RefreshToken: "REFRESH_TOKEN", ExpiresAt: time.Now().Add(time.Hour)}, nil)
	transport.EXPECT().
		GetAccountInfo(ctx, mock.Anything).
		Return(nil, backendErr)

	output, err := svc.SignInWithEmailLink(ctx, &usecase.SignInInput{Email: testEmail, SignInLink: testSignInLink})

	require.Error(t, err)
	assert.Nil(t, output)

	got, ok := domainerrors.IsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, "INVALID_ID_TOKEN", got.Code)
}

func TestAuthService_SignInWithEmailLink_InvalidEmail(t *testing.T) {
	transport := newUnusedTransport(t)
	svc := newTestAuthService(t, transport)

	output, err := svc.SignInWithEmailLink(context.Background(), &usecase.SignInInput{
		Email:      "not-an-email",
		SignInLink: testSignInLink,
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
	assert.Nil(t, output)
}

func TestAuthService_SendSignInLink_InvalidSettings(t *testing.T) {
	transport := newUnusedTransport(t)
	svc := newTestAuthService(t, transport)

	err := svc.SendSignInLink(context.Background(), &usecase.SendSignInLinkInput{
		Email: testEmail,
		Settings: service.ActionCodeSettings{
			HandleCodeInApp: true, // no continue URL
		},
	})

	require.Error(t, err)
	assert.ErrorIs(t, err, domainerrors.ErrInvalidSettings)
	transport.AssertNotCalled(t, "SendSignInLink", mock.Anything, mock.Anything)
}

func TestAuthService_SendSignInLink_BackendError(t *testing.T) {
	transport := mockService.NewMockTransport(t)
	svc := newTestAuthService(t, transport)

	ctx := context.Background()

	transport.EXPECT().
		SendSignInLink(ctx, mock.Anything).
		Return(nil, domainerrors.NewBackendError(429, "QUOTA_EXCEEDED"))

	err := svc.SendSignInLink(ctx, &usecase.SendSignInLinkInput{
		Email:    testEmail,
		Settings: service.ActionCodeSettings{ContinueURL: "continueURL", HandleCodeInApp: true},
	})

	require.Error(t, err)

	got, ok := domainerrors.IsBackendError(err)
	require.True(t, ok)
	assert.Equal(t, 429, got.StatusCode)
}

func TestAuthService_SignInWithEmailLink_CancelledContext(t *testing.T) {
	transport := mockService.NewMockTransport(t)
	svc := newTestAuthService(t, transport)

	ctx, cancel := context.WithCancel(context.Background())

	transport.EXPECT().
		SignInWithEmailLink(ctx, mock.Anything).
		Run(func(_ context.Context, _ *service.SignInLinkRequest) {
			// Caller loses interest while the sign-in exchange is in flight.
			cancel()
		}).
		Return(&service.SignInResponse{IDToken: "ID_TOKEN", RefreshToken: "REFRESH_TOKEN", ExpiresAt: time.Now().Add(time.Hour)}, nil)

	output, err := svc.SignInWithEmailLink(ctx, &usecase.SignInInput{Email: testEmail, SignInLink: testSignInLink})

	// Delivery is suppressed; the chain never reaches the lookup step.
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
	assert.Nil(t, output)
	transport.AssertNotCalled(t, "GetAccountInfo", mock.Anything, mock.Anything)
}

func TestNewAuthService_MissingAPIKey(t *testing.T) {
	svc, err := NewAuthService(AuthServiceParams{
		Config:    &config.Config{},
		Transport: nil,
		Logger:    newDiscardLogger(),
	})

	require.Error(t, err)
	assert.Nil(t, svc)
}
