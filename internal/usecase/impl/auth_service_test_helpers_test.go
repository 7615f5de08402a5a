package impl

import (
	"io"
	"log/slog"
	"testing"

	"beacon/config"
	"beacon/internal/domain/service"
	mockService "beacon/internal/mocks/service"
	"beacon/internal/usecase"

	"github.com/stretchr/testify/require"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Auth = &config.AuthConfig{APIKey: "API_KEY"}

	return cfg
}

func newTestAuthService(t *testing.T, transport service.Transport) usecase.AuthUsecase {
	t.Helper()

	svc, err := NewAuthService(AuthServiceParams{
		Config:    newTestConfig(),
		Transport: transport,
		Logger:    newDiscardLogger(),
	})
	require.NoError(t, err)

	return svc
}

func newUnusedTransport(t *testing.T) *mockService.MockTransport {
	t.Helper()

	// No expectations registered: any transport call fails the test.
	return mockService.NewMockTransport(t)
}
