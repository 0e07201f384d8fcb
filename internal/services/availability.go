package services

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
)

//go:generate mockgen -source=availability.go -destination=mock_availability.go -package=services

// UserExistenceReader answers exact-match existence queries on users.
type UserExistenceReader interface {
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	ExistsByNombre(ctx context.Context, nombre string) (bool, error)
}

// AvailabilityService reports whether an email or alias is already registered.
// The answer is advisory: it reserves nothing.
type AvailabilityService struct {
	reader  UserExistenceReader
	timeout time.Duration
}

// NewAvailabilityService creates a new AvailabilityService.
func NewAvailabilityService(reader UserExistenceReader, timeout time.Duration) *AvailabilityService {
	return &AvailabilityService{
		reader:  reader,
		timeout: timeout,
	}
}

// CheckAvailability looks up email and alias independently. When the alias
// is taken, three suggestions are returned without checking them.
func (s *AvailabilityService) CheckAvailability(ctx context.Context, email, alias string) (*models.Availability, error) {
	if strings.TrimSpace(email) == "" {
		return nil, fmt.Errorf("%w: email is required", apperrors.ErrValidation)
	}
	if strings.TrimSpace(alias) == "" {
		return nil, fmt.Errorf("%w: alias is required", apperrors.ErrValidation)
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	emailTaken, err := s.reader.ExistsByEmail(ctx, email)
	if err != nil {
		logger.Log.Errorw("failed to check email availability", "email", email, "error", err)
		return nil, asStorageError(err)
	}

	aliasTaken, err := s.reader.ExistsByNombre(ctx, alias)
	if err != nil {
		logger.Log.Errorw("failed to check alias availability", "alias", alias, "error", err)
		return nil, asStorageError(err)
	}

	result := &models.Availability{
		EmailTaken:  emailTaken,
		AliasTaken:  aliasTaken,
		Suggestions: []string{},
	}
	if aliasTaken {
		result.Suggestions = SuggestAliases(alias)
	}

	return result, nil
}

// SuggestAliases returns alias with 1, 2 and 3 appended, in that order.
func SuggestAliases(alias string) []string {
	return []string{alias + "1", alias + "2", alias + "3"}
}
