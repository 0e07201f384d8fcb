package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
)

// AvailabilityChecker defines the interface for email/alias lookups.
type AvailabilityChecker interface {
	CheckAvailability(ctx context.Context, email, alias string) (*models.Availability, error)
}

// AvailabilityRequest represents the JSON body for an availability check
// swagger:model AvailabilityRequest
type AvailabilityRequest struct {
	// Email to check
	// required: true
	// default: ana@example.com
	Email string `json:"email"`

	// Alias (nombre) to check
	// required: true
	// default: chef99
	Alias string `json:"alias"`
}

// AvailabilityResponse reports which identifiers are already registered
// swagger:model AvailabilityResponse
type AvailabilityResponse struct {
	// Email already registered
	EmailOcupado bool `json:"emailOcupado"`

	// Alias already registered
	AliasOcupado bool `json:"aliasOcupado"`

	// Alternative aliases, empty unless the alias is taken
	// example: ["chef991","chef992","chef993"]
	Sugerencias []string `json:"sugerencias"`
}

// NewAvailabilityHandler returns an HTTP handler for availability checks.
// @Summary Check email and alias availability
// @Description Reports whether the email and alias are already registered and suggests alternatives for a taken alias. Nothing is reserved.
// @Tags accounts
// @Accept json
// @Produce json
// @Param availabilityRequest body handlers.AvailabilityRequest true "Identifiers to check"
// @Success 200 {object} handlers.AvailabilityResponse
// @Failure 400 {object} handlers.ErrorResponse "Missing email or alias / invalid request"
// @Failure 429 {object} handlers.ErrorResponse "Too many requests"
// @Failure 500 {object} handlers.ErrorResponse "Storage unavailable"
// @Router /availability [post]
func NewAvailabilityHandler(svc AvailabilityChecker) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req AvailabilityRequest
		if err := decodeJSON(r, &req); err != nil {
			writeError(w, err)
			return
		}

		result, err := svc.CheckAvailability(r.Context(), req.Email, req.Alias)
		if err != nil {
			writeError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, AvailabilityResponse{
			EmailOcupado: result.EmailTaken,
			AliasOcupado: result.AliasTaken,
			Sugerencias:  result.Suggestions,
		})
	}
}
