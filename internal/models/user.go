package models

import (
	"time"

	"github.com/google/uuid"
)

// Role tags accepted at registration.
const (
	RoleStudent = "Alumno"    // Student, gets a StudentProfile
	RoleVisitor = "Visitante" // Non-student
)

// User represents a row of the usuarios table
type User struct {
	ID        uuid.UUID `json:"id" db:"id"`                 // Primary key, generated on insert
	Nombre    string    `json:"nombre" db:"nombre"`         // Unique display alias
	Email     string    `json:"email" db:"email"`           // Unique email
	Password  string    `json:"-" db:"password"`            // bcrypt hash, never serialized
	UserType  string    `json:"userType" db:"user_type"`    // Role tag
	CreatedAt time.Time `json:"createdAt" db:"created_at"` // Creation timestamp
}

// IsStudent reports whether the user carries the student role.
func (u *User) IsStudent() bool {
	return u.UserType == RoleStudent
}

// StudentProfile represents a row of the alumnos_info table.
// Optional fields are NULL when not provided.
type StudentProfile struct {
	UsuarioID        uuid.UUID `json:"usuarioId" db:"usuario_id"`
	MedioPago        *string   `json:"medioPago,omitempty" db:"medio_pago"`
	FotoDniFrente    *string   `json:"fotoDniFrente,omitempty" db:"foto_dni_frente"`
	FotoDniDorso     *string   `json:"fotoDniDorso,omitempty" db:"foto_dni_dorso"`
	NumeroTramiteDni *string   `json:"numeroTramiteDni,omitempty" db:"numero_tramite_dni"`
}
