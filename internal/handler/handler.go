package handler

import (
	"context"
	"net/http"
)

// DB は DB 接続の生存確認を行うインターフェース
type DB interface {
	Ping(ctx context.Context) error
}

type Handler struct {
	db          DB
	frontendURL string
}

func New(db DB, frontendURL string) *Handler {
	return &Handler{db: db, frontendURL: frontendURL}
}

func (h *Handler) CORS(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", h.frontendURL)
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PATCH, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Credentials", "true")

		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}

		next.ServeHTTP(w, r)
	})
}
