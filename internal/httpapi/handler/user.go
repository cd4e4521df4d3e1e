package handler

import (
	"context"
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/vntrieu/usersvc/internal/store"
)

// UserLister returns every users row.
type UserLister interface {
	ListUsers(ctx context.Context) ([]store.Row, error)
}

// UserHandler handles the users endpoint.
type UserHandler struct {
	users  UserLister
	logger *zap.Logger
}

// NewUserHandler creates a new UserHandler.
func NewUserHandler(users UserLister, logger *zap.Logger) *UserHandler {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &UserHandler{users: users, logger: logger}
}

// ListUsers handles GET /users. The body is a JSON array with one array of column values per row.
// Failures are logged and answered with an opaque 500.
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	rows, err := h.users.ListUsers(r.Context())
	if err != nil {
		h.logger.Error("list users failed",
			zap.String("request_id", RequestIDFromRequest(r)),
			zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	// Encode before writing the header so an unencodable value still yields a 500.
	body, err := json.Marshal(rows)
	if err != nil {
		h.logger.Error("encode users failed",
			zap.String("request_id", RequestIDFromRequest(r)),
			zap.Error(err))
		http.Error(w, "internal server error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(append(body, '\n'))
}
