package models

import (
	"strings"

	"github.com/google/uuid"
)

// RegisterInput carries a registration request.
// The student fields are only read when UserType is RoleStudent.
type RegisterInput struct {
	Nombre           string `validate:"required,max=50,nomarkup"`
	Email            string `validate:"required,email,max=100"`
	Password         string `validate:"required,maxbytes=72"`
	UserType         string `validate:"required,oneof=Alumno Visitante"`
	MedioPago        string `validate:"omitempty,max=255"`
	FotoDniFrente    string `validate:"omitempty,max=2048"`
	FotoDniDorso     string `validate:"omitempty,max=2048"`
	NumeroTramiteDni string `validate:"omitempty,max=50"`
}

// StudentProfile builds the profile row for userID. Empty fields stay nil.
func (in RegisterInput) StudentProfile(userID uuid.UUID) *StudentProfile {
	return &StudentProfile{
		UsuarioID:        userID,
		MedioPago:        optional(in.MedioPago),
		FotoDniFrente:    optional(in.FotoDniFrente),
		FotoDniDorso:     optional(in.FotoDniDorso),
		NumeroTramiteDni: optional(in.NumeroTramiteDni),
	}
}

func optional(s string) *string {
	if strings.TrimSpace(s) == "" {
		return nil
	}
	return &s
}

// Availability is the result of an email/alias availability check.
type Availability struct {
	EmailTaken  bool
	AliasTaken  bool
	Suggestions []string
}

// UserRegisteredEvent is published after a registration commits.
// It never carries credential material.
type UserRegisteredEvent struct {
	EventID   string `json:"event_id"`  // Unique identifier of the event
	Timestamp int64  `json:"timestamp"` // Unix timestamp (seconds)
	UserID    string `json:"user_id"`
	Nombre    string `json:"nombre"`
	Email     string `json:"email"`
	UserType  string `json:"user_type"`
}
