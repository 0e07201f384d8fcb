package services

import (
	"context"
	"time"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
)

//go:generate mockgen -source=users.go -destination=mock_users.go -package=services

// UserLister lists stored users.
type UserLister interface {
	List(ctx context.Context) ([]models.User, error)
}

// UserService backs the administrative user listing.
type UserService struct {
	reader  UserLister
	timeout time.Duration
}

func NewUserService(reader UserLister, timeout time.Duration) *UserService {
	return &UserService{reader: reader, timeout: timeout}
}

// ListUsers returns every user without credentials.
func (s *UserService) ListUsers(ctx context.Context) ([]models.User, error) {
	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	users, err := s.reader.List(ctx)
	if err != nil {
		logger.Log.Errorw("failed to list users", "error", err)
		return nil, asStorageError(err)
	}

	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}
