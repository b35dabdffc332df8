package middleware

import (
	"context"
	"net/http"

	"github.com/akinalp/antren/handlers"
	"github.com/google/uuid"
)

// RequestID, her isteğe benzersiz bir id atar. Id hem response header'ına
// hem context'e yazılır — log satırlarını istek bazında eşleştirmek için.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get("X-Request-Id")
		if id == "" {
			id = uuid.NewString()
		}

		w.Header().Set("X-Request-Id", id)

		ctx := context.WithValue(r.Context(), handlers.RequestIDContextKey, id)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
