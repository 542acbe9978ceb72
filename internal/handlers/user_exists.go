package handlers

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/sbilibin2017/gw-bank-transfers/internal/logger"
)

// UserExistenceReader defines the interface that the service must implement.
type UserExistenceReader interface {
	UserExists(ctx context.Context, identifier string) (bool, error)
}

// UserExistsResponse reports whether a user exists
// swagger:model UserExistsResponse
type UserExistsResponse struct {
	// Whether the user exists
	Exists bool `json:"exists"`
}

// UserExistsErrorResponse represents an error response
// swagger:model UserExistsErrorResponse
type UserExistsErrorResponse struct {
	// Error message
	Error string `json:"error"`
}

// NewUserExistsHandler returns an HTTP handler probing user existence.
// @Summary Check whether a user exists
// @Description Returns whether a user exists, identified by user id or username.
// @Tags users
// @Produce json
// @Param identifier path string true "User id or username"
// @Success 200 {object} handlers.UserExistsResponse "Existence flag"
// @Failure 500 {object} handlers.UserExistsErrorResponse "Internal server error"
// @Router /users/{identifier}/exists [get]
// @Security BearerAuth
func NewUserExistsHandler(svc UserExistenceReader) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		w.Header().Set("Content-Type", "application/json")

		identifier := chi.URLParam(r, "identifier")

		exists, err := svc.UserExists(ctx, identifier)
		if err != nil {
			logger.Log.Errorw("failed to check user existence", "identifier", identifier, "error", err)
			w.WriteHeader(http.StatusInternalServerError)
			json.NewEncoder(w).Encode(UserExistsErrorResponse{Error: "Internal server error"})
			return
		}

		w.WriteHeader(http.StatusOK)
		json.NewEncoder(w).Encode(UserExistsResponse{Exists: exists})
	}
}
