package auth

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"go.uber.org/zap"
)

// Sentinel identity used when the session token carries no usable
// claims, matching the upstream store's unknown-user convention.
const (
	DefaultUserName = "Desconocido"
	DefaultUserID   = "000000"
)

// Session is the caller-supplied credential and identity. Token is kept
// verbatim because the upstream store expects it unmodified in the
// Authorization header.
type Session struct {
	Token    string
	UserName string
	UserID   string
	Email    string
	Phone    string
}

type sessionKey struct{}

func NewContext(ctx context.Context, s Session) context.Context {
	return context.WithValue(ctx, sessionKey{}, s)
}

func FromContext(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(sessionKey{}).(Session)
	return s, ok
}

// SessionMiddleware rejects requests without an Authorization header and
// attaches the decoded session to the request context. When jwtSecret is
// empty the token is forwarded opaquely with sentinel identity.
func SessionMiddleware(jwtSecret string, logger *zap.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			token := r.Header.Get("Authorization")
			if token == "" {
				http.Error(w, "Unauthorized", http.StatusUnauthorized)
				return
			}
			session := SessionFromToken(token, jwtSecret, logger)
			next.ServeHTTP(w, r.WithContext(NewContext(r.Context(), session)))
		})
	}
}

// SessionFromToken builds a Session from a raw Authorization value. JWT
// claims populate identity when they verify against jwtSecret; anything
// else falls back to the sentinels.
func SessionFromToken(token, jwtSecret string, logger *zap.Logger) Session {
	session := Session{
		Token:    token,
		UserName: DefaultUserName,
		UserID:   DefaultUserID,
	}
	if jwtSecret == "" {
		return session
	}

	claims := jwt.MapClaims{}
	raw := strings.TrimPrefix(token, "Bearer ")
	_, err := jwt.ParseWithClaims(raw, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(jwtSecret), nil
	})
	if err != nil {
		logger.Debug("Session token not verifiable, using sentinel identity", zap.Error(err))
		return session
	}

	if name, ok := claims["name"].(string); ok && name != "" {
		session.UserName = name
	}
	if id, ok := claims["user_id"].(string); ok && id != "" {
		session.UserID = id
	}
	if email, ok := claims["email"].(string); ok {
		session.Email = email
	}
	if phone, ok := claims["phone"].(string); ok {
		session.Phone = phone
	}
	return session
}
