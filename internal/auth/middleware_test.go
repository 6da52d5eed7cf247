package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "test-secret"

func signedToken(t *testing.T, claims jwt.MapClaims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(testSecret))
	require.NoError(t, err)
	return signed
}

func TestSessionMiddlewareRejectsMissingToken(t *testing.T) {
	mw := SessionMiddleware(testSecret, zap.NewNop())
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/api/rooms", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddlewareAttachesSession(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{
		"name":    "Ana",
		"user_id": "u-42",
		"email":   "ana@example.com",
		"exp":     time.Now().Add(time.Hour).Unix(),
	})

	var got Session
	mw := SessionMiddleware(testSecret, zap.NewNop())
	handler := mw(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s, ok := FromContext(r.Context())
		require.True(t, ok)
		got = s
	}))

	req := httptest.NewRequest(http.MethodGet, "/api/rooms", nil)
	req.Header.Set("Authorization", token)
	handler.ServeHTTP(httptest.NewRecorder(), req)

	assert.Equal(t, token, got.Token)
	assert.Equal(t, "Ana", got.UserName)
	assert.Equal(t, "u-42", got.UserID)
	assert.Equal(t, "ana@example.com", got.Email)
}

func TestSessionFromTokenUnverifiableFallsBackToSentinels(t *testing.T) {
	s := SessionFromToken("not-a-jwt", testSecret, zap.NewNop())

	assert.Equal(t, "not-a-jwt", s.Token)
	assert.Equal(t, DefaultUserName, s.UserName)
	assert.Equal(t, DefaultUserID, s.UserID)
}

func TestSessionFromTokenWrongSecret(t *testing.T) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{"name": "Eva"})
	signed, err := token.SignedString([]byte("other-secret"))
	require.NoError(t, err)

	s := SessionFromToken(signed, testSecret, zap.NewNop())

	assert.Equal(t, DefaultUserName, s.UserName)
}

func TestSessionFromTokenOpaqueWhenNoSecret(t *testing.T) {
	s := SessionFromToken("opaque-token", "", zap.NewNop())

	assert.Equal(t, "opaque-token", s.Token)
	assert.Equal(t, DefaultUserName, s.UserName)
	assert.Equal(t, DefaultUserID, s.UserID)
}

func TestSessionFromTokenStripsBearerPrefixForClaims(t *testing.T) {
	token := signedToken(t, jwt.MapClaims{"name": "Luis", "user_id": "u-7"})

	s := SessionFromToken("Bearer "+token, testSecret, zap.NewNop())

	// Raw header value stays untouched for upstream calls.
	assert.Equal(t, "Bearer "+token, s.Token)
	assert.Equal(t, "Luis", s.UserName)
	assert.Equal(t, "u-7", s.UserID)
}
