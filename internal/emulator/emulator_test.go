package emulator

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"beacon/internal/domain/service"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testEmail = "johnnyappleseed@apple.com"

func newTestEmulator(t *testing.T) (*Emulator, *httptest.Server) {
	t.Helper()

	em := New("test-secret", time.Hour, slog.New(slog.NewTextHandler(io.Discard, nil)))
	srv := httptest.NewServer(em.Handler())
	t.Cleanup(srv.Close)

	return em, srv
}

func postJSON(t *testing.T, url string, payload any) (int, map[string]any) {
	t.Helper()

	body, err := json.Marshal(payload)
	require.NoError(t, err)

	resp, err := http.Post(url, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()

	var reply map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&reply))

	return resp.StatusCode, reply
}

func errorMessage(t *testing.T, reply map[string]any) string {
	t.Helper()

	envelope, ok := reply["error"].(map[string]any)
	require.True(t, ok, "reply is not an error envelope: %v", reply)

	message, _ := envelope["message"].(string)

	return message
}

func TestEmulator_UnknownAction(t *testing.T) {
	_, srv := newTestEmulator(t)

	status, reply := postJSON(t, srv.URL+"/v1/accounts:bogus", map[string]any{})

	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", errorMessage(t, reply))
}

func TestEmulator_SendOOBCode(t *testing.T) {
	tests := []struct {
		name        string
		payload     map[string]any
		wantStatus  int
		wantMessage string
	}{
		{
			name: "wrong request type",
			payload: map[string]any{
				"requestType": "PASSWORD_RESET",
				"email":       testEmail,
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "INVALID_REQ_TYPE",
		},
		{
			name: "missing email",
			payload: map[string]any{
				"requestType": "EMAIL_SIGNIN",
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "INVALID_EMAIL",
		},
		{
			name: "in-app handling without continue url",
			payload: map[string]any{
				"requestType":        "EMAIL_SIGNIN",
				"email":              testEmail,
				"canHandleCodeInApp": true,
			},
			wantStatus:  http.StatusBadRequest,
			wantMessage: "MISSING_CONTINUE_URI",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, srv := newTestEmulator(t)

			status, reply := postJSON(t, srv.URL+"/v1/accounts:sendOobCode", tt.payload)

			assert.Equal(t, tt.wantStatus, status)
			assert.Equal(t, tt.wantMessage, errorMessage(t, reply))
		})
	}
}

func TestEmulator_SignInLink_ParsesLikeARealLink(t *testing.T) {
	em, _ := newTestEmulator(t)

	link := em.SignInLink("code-123", "https://example.com/finish")

	oobCode, err := service.ExtractOOBCode(link)
	require.NoError(t, err)
	assert.Equal(t, "code-123", oobCode)
}

func TestEmulator_SignInMintsVerifiableToken(t *testing.T) {
	_, srv := newTestEmulator(t)

	_, sendReply := postJSON(t, srv.URL+"/v1/accounts:sendOobCode", map[string]any{
		"requestType": "EMAIL_SIGNIN",
		"email":       testEmail,
	})
	oobCode, _ := sendReply["oobCode"].(string)
	require.NotEmpty(t, oobCode)

	status, signInReply := postJSON(t, srv.URL+"/v1/accounts:signInWithEmailLink", map[string]any{
		"email":   testEmail,
		"oobCode": oobCode,
	})
	require.Equal(t, http.StatusOK, status)

	idToken, _ := signInReply["idToken"].(string)
	require.NotEmpty(t, idToken)
	assert.NotEmpty(t, signInReply["refreshToken"])
	assert.Equal(t, "3600", signInReply["expiresIn"])

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(idToken, claims, func(*jwt.Token) (any, error) {
		return []byte("test-secret"), nil
	})
	require.NoError(t, err)
	assert.True(t, token.Valid)
	assert.Equal(t, testEmail, claims["email"])
}

func TestEmulator_OOBCodeBoundToEmail(t *testing.T) {
	_, srv := newTestEmulator(t)

	_, sendReply := postJSON(t, srv.URL+"/v1/accounts:sendOobCode", map[string]any{
		"requestType": "EMAIL_SIGNIN",
		"email":       testEmail,
	})
	oobCode, _ := sendReply["oobCode"].(string)
	require.NotEmpty(t, oobCode)

	status, reply := postJSON(t, srv.URL+"/v1/accounts:signInWithEmailLink", map[string]any{
		"email":   "someoneelse@apple.com",
		"oobCode": oobCode,
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_OOB_CODE", errorMessage(t, reply))
}

func TestEmulator_Lookup(t *testing.T) {
	em, srv := newTestEmulator(t)
	localID := em.RegisterAccount(testEmail, "Johnny Appleseed")

	_, sendReply := postJSON(t, srv.URL+"/v1/accounts:sendOobCode", map[string]any{
		"requestType": "EMAIL_SIGNIN",
		"email":       testEmail,
	})
	oobCode, _ := sendReply["oobCode"].(string)

	_, signInReply := postJSON(t, srv.URL+"/v1/accounts:signInWithEmailLink", map[string]any{
		"email":   testEmail,
		"oobCode": oobCode,
	})
	idToken, _ := signInReply["idToken"].(string)
	require.NotEmpty(t, idToken)
	assert.Equal(t, localID, signInReply["localId"])

	status, lookupReply := postJSON(t, srv.URL+"/v1/accounts:lookup", map[string]any{
		"idToken": idToken,
	})
	require.Equal(t, http.StatusOK, status)

	users, ok := lookupReply["users"].([]any)
	require.True(t, ok)
	require.Len(t, users, 1)

	user, ok := users[0].(map[string]any)
	require.True(t, ok)
	assert.Equal(t, testEmail, user["email"])
	assert.Equal(t, "Johnny Appleseed", user["displayName"])
	assert.Equal(t, localID, user["localId"])
}

func TestEmulator_Lookup_GarbageToken(t *testing.T) {
	_, srv := newTestEmulator(t)

	status, reply := postJSON(t, srv.URL+"/v1/accounts:lookup", map[string]any{
		"idToken": "not-a-token",
	})

	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "INVALID_ID_TOKEN", errorMessage(t, reply))
}
