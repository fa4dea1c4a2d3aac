package auth

import (
	"context"
	"encoding/json"
	"net/http"
)

type contextKey string

const identityKey contextKey = "identity"

// IdentityFromContext は context から認証済み Identity を取得する
func IdentityFromContext(ctx context.Context) (Identity, bool) {
	v, ok := ctx.Value(identityKey).(Identity)
	return v, ok
}

// WithIdentity は context に Identity をセットする
func WithIdentity(ctx context.Context, id Identity) context.Context {
	return context.WithValue(ctx, identityKey, id)
}

// RequireAuth は認証必須ミドルウェア。セッションを検証し、Identity を context にセットする
func RequireAuth(sessionSecret []byte) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			cookie, err := r.Cookie(SessionCookieName())
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "unauthorized"})
				return
			}

			id, err := VerifySessionToken(cookie.Value, sessionSecret)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusUnauthorized)
				_ = json.NewEncoder(w).Encode(map[string]string{"error": "invalid_session"})
				return
			}

			ctx := WithIdentity(r.Context(), id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// DevIdentity は開発用のダミー Identity（AUTH_REQUIRED=false 時に使用）
var DevIdentity = Identity{
	UID:           "dev-user-id",
	Email:         "dev@localhost",
	EmailVerified: true,
}

// DevAuth は開発用ミドルウェア。ダミー Identity を context にセットする
func DevAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := WithIdentity(r.Context(), DevIdentity)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
