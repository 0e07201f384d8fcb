package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
)

// UserLister defines the interface for listing users.
type UserLister interface {
	ListUsers(ctx context.Context) ([]models.User, error)
}

// UsersResponse wraps the user listing
// swagger:model UsersResponse
type UsersResponse struct {
	Usuarios []models.User `json:"usuarios"`
}

// NewUsersHandler returns an HTTP handler listing all users.
// @Summary List users
// @Description Returns every registered user ordered by creation time. Credentials are never included.
// @Tags accounts
// @Produce json
// @Success 200 {object} handlers.UsersResponse
// @Failure 500 {object} handlers.ErrorResponse "Storage unavailable"
// @Router /users [get]
func NewUsersHandler(svc UserLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		users, err := svc.ListUsers(r.Context())
		if err != nil {
			writeError(w, err)
			return
		}
		if users == nil {
			users = []models.User{}
		}

		writeJSON(w, http.StatusOK, UsersResponse{Usuarios: users})
	}
}
