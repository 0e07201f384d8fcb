package models

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestRegisterInput_StudentProfile(t *testing.T) {
	id := uuid.New()

	in := RegisterInput{
		Nombre:       "chef99",
		UserType:     RoleStudent,
		MedioPago:    "card",
		FotoDniDorso: "   ",
	}

	p := in.StudentProfile(id)

	assert.Equal(t, id, p.UsuarioID)
	if assert.NotNil(t, p.MedioPago) {
		assert.Equal(t, "card", *p.MedioPago)
	}
	assert.Nil(t, p.FotoDniFrente)
	assert.Nil(t, p.FotoDniDorso)
	assert.Nil(t, p.NumeroTramiteDni)
}

func TestUser_IsStudent(t *testing.T) {
	assert.True(t, (&User{UserType: RoleStudent}).IsStudent())
	assert.False(t, (&User{UserType: RoleVisitor}).IsStudent())
	assert.False(t, (&User{UserType: "alumno"}).IsStudent())
}
