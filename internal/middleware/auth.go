package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const authCookieName = "auth_token"

// TokenExp — срок жизни auth-токена.
const TokenExp = 24 * time.Hour

type contextKey string

const userIDKey contextKey = "user_id"

// claims JWT с идентификатором пользователя.
type claims struct {
	jwt.RegisteredClaims
	UserID int64 `json:"user_id"`
}

// buildJWT создаёт подписанный токен для userID.
func buildJWT(userID int64, secret string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID: userID,
	})
	return token.SignedString([]byte(secret))
}

// SetLoginCookie выставляет cookie auth_token с JWT для userID.
func SetLoginCookie(w http.ResponseWriter, userID int64, secret string) error {
	tokenString, err := buildJWT(userID, secret)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    tokenString,
		Path:     "/",
		HttpOnly: true,
		MaxAge:   int(TokenExp.Seconds()),
	})
	return nil
}

// ClearLoginCookie сбрасывает cookie авторизации (logout).
func ClearLoginCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     authCookieName,
		Value:    "",
		Path:     "/",
		HttpOnly: true,
		MaxAge:   -1,
	})
}

// GetUserIDFromContext возвращает userID, положенный WithAuth.
func GetUserIDFromContext(ctx context.Context) (int64, bool) {
	id, ok := ctx.Value(userIDKey).(int64)
	return id, ok
}

// WithAuth разбирает cookie auth_token и кладёт userID в контекст запроса.
// Анонимные и невалидные запросы проходят дальше без userID: отказ — дело
// хендлера.
func WithAuth(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(authCookieName)
			if err != nil {
				next.ServeHTTP(w, r)
				return
			}

			c := &claims{}
			token, err := jwt.ParseWithClaims(cookie.Value, c, func(t *jwt.Token) (interface{}, error) {
				return []byte(secret), nil
			}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
			if err != nil || !token.Valid {
				next.ServeHTTP(w, r)
				return
			}

			ctx := context.WithValue(r.Context(), userIDKey, c.UserID)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
