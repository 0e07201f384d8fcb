package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserService_ListUsers(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	stored := []models.User{
		{ID: uuid.New(), Nombre: "ana", Email: "ana@x.com", Password: "hash", UserType: models.RoleStudent},
		{ID: uuid.New(), Nombre: "bob", Email: "bob@x.com", Password: "hash", UserType: models.RoleVisitor},
	}

	reader := NewMockUserLister(ctrl)
	reader.EXPECT().List(gomock.Any()).Return(stored, nil)

	svc := NewUserService(reader, time.Second)
	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	require.Len(t, users, 2)
	for _, u := range users {
		assert.Empty(t, u.Password)
	}
	assert.Equal(t, "ana", users[0].Nombre)
	assert.Equal(t, models.RoleVisitor, users[1].UserType)
}

func TestUserService_ListUsers_Empty(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserLister(ctrl)
	reader.EXPECT().List(gomock.Any()).Return([]models.User{}, nil)

	svc := NewUserService(reader, time.Second)
	users, err := svc.ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestUserService_ListUsers_Error(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	reader := NewMockUserLister(ctrl)
	reader.EXPECT().List(gomock.Any()).Return(nil, errors.New("db down"))

	svc := NewUserService(reader, time.Second)
	users, err := svc.ListUsers(context.Background())

	assert.Nil(t, users)
	assert.ErrorIs(t, err, apperrors.ErrStorageUnavailable)
}
