package handlers

import (
	"context"
	"net/http"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.RegisterInput) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Unique alias
	// required: true
	// default: ana
	Nombre string `json:"nombre"`

	// Unique email
	// required: true
	// default: ana@example.com
	Email string `json:"email"`

	// Password, stored hashed
	// required: true
	// default: secret123
	Password string `json:"password"`

	// Role tag
	// required: true
	// enum: Alumno,Visitante
	UserType string `json:"userType"`

	// Payment method (students only)
	MedioPago string `json:"medioPago,omitempty"`

	// URL of the ID card front image (students only)
	FotoDniFrente string `json:"fotoDniFrente,omitempty"`

	// URL of the ID card back image (students only)
	FotoDniDorso string `json:"fotoDniDorso,omitempty"`

	// ID card procedure number (students only)
	NumeroTramiteDni string `json:"numeroTramiteDni,omitempty"`
}

// RegisteredUser is the public view of a created user
// swagger:model RegisteredUser
type RegisteredUser struct {
	ID       uuid.UUID `json:"id"`
	Nombre   string    `json:"nombre"`
	Email    string    `json:"email"`
	UserType string    `json:"userType"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// default: true
	Registrado bool           `json:"registrado"`
	Usuario    RegisteredUser `json:"usuario"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a user account and, for students, the student profile. Nombre and email must be unique: a duplicate is answered with 409 and code CONFLICT, not a generic 500, so clients should not retry it. Password is hashed before storing and must be at most 72 bytes.
// @Tags accounts
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request"
// @Failure 409 {object} handlers.ErrorResponse "Nombre or email already registered (code CONFLICT)"
// @Failure 500 {object} handlers.ErrorResponse "Storage unavailable / profile write failed"
// @Router /register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		user, err := svc.Register(r.Context(), models.RegisterInput{
			Nombre:           req.Nombre,
			Email:            req.Email,
			Password:         req.Password,
			UserType:         req.UserType,
			MedioPago:        req.MedioPago,
			FotoDniFrente:    req.FotoDniFrente,
			FotoDniDorso:     req.FotoDniDorso,
			NumeroTramiteDni: req.NumeroTramiteDni,
		})
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Registrado: true,
			Usuario: RegisteredUser{
				ID:       user.ID,
				Nombre:   user.Nombre,
				Email:    user.Email,
				UserType: user.UserType,
			},
		})
	}
}
