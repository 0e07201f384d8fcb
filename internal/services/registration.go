package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/apperrors"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
	"github.com/segmentio/kafka-go"
	"golang.org/x/crypto/bcrypt"
)

//go:generate mockgen -source=registration.go -destination=mock_registration.go -package=services

// UserWriter inserts base user rows.
type UserWriter interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
}

// StudentProfileWriter inserts student profile rows.
type StudentProfileWriter interface {
	Create(ctx context.Context, profile *models.StudentProfile) error
}

// Transactor runs fn inside a single store transaction.
type Transactor interface {
	WithinTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// InputValidator validates struct input and describes what is wrong.
type InputValidator interface {
	Struct(s any) error
}

// KafkaWriter defines a Kafka writer abstraction.
type KafkaWriter interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error // Writes messages to Kafka
	Close() error                                                   // Closes the Kafka writer
}

// RegistrationService creates users and, for students, their profile.
//
// With atomic set, the user and profile inserts share one transaction and a
// failed profile insert rolls the user back. Without it, the user insert
// stands on its own and a failed profile insert is reported as
// apperrors.ErrProfileWriteFailed.
type RegistrationService struct {
	writer      UserWriter
	profiles    StudentProfileWriter
	tx          Transactor
	validator   InputValidator
	kafkaWriter KafkaWriter
	atomic      bool
	timeout     time.Duration
}

// NewRegistrationService creates a new RegistrationService. kafkaWriter may be nil.
func NewRegistrationService(
	writer UserWriter,
	profiles StudentProfileWriter,
	tx Transactor,
	validator InputValidator,
	kafkaWriter KafkaWriter,
	atomic bool,
	timeout time.Duration,
) *RegistrationService {
	return &RegistrationService{
		writer:      writer,
		profiles:    profiles,
		tx:          tx,
		validator:   validator,
		kafkaWriter: kafkaWriter,
		atomic:      atomic,
		timeout:     timeout,
	}
}

// Register validates in, hashes the password and persists the user.
// The returned user never carries the password hash.
func (s *RegistrationService) Register(ctx context.Context, in models.RegisterInput) (*models.User, error) {
	if err := s.validator.Struct(in); err != nil {
		logger.Log.Infow("registration rejected", "nombre", in.Nombre, "email", in.Email, "error", err)
		return nil, fmt.Errorf("%w: %v", apperrors.ErrValidation, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if errors.Is(err, bcrypt.ErrPasswordTooLong) {
		return nil, fmt.Errorf("%w: password must be at most 72 bytes", apperrors.ErrValidation)
	}
	if err != nil {
		logger.Log.Errorw("failed to hash password", "err", err)
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:       uuid.New(),
		Nombre:   in.Nombre,
		Email:    in.Email,
		Password: string(hashedPassword),
		UserType: in.UserType,
	}

	storeCtx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if s.atomic {
		err = s.tx.WithinTx(storeCtx, func(ctx context.Context) error {
			return s.persist(ctx, user, in)
		})
	} else {
		err = s.persistBestEffort(storeCtx, user, in)
	}
	if err != nil {
		logger.Log.Errorw("failed to register user", "nombre", user.Nombre, "email", user.Email, "atomic", s.atomic, "err", err)
		return nil, err
	}

	user.Password = ""
	s.publishRegistration(ctx, user)

	return user, nil
}

// persist writes the user and, for students, the profile. Any failure is
// returned as-is so the surrounding transaction rolls back.
func (s *RegistrationService) persist(ctx context.Context, user *models.User, in models.RegisterInput) error {
	if _, err := s.writer.Create(ctx, user); err != nil {
		return asStorageError(err)
	}
	if !user.IsStudent() {
		return nil
	}
	if err := s.profiles.Create(ctx, in.StudentProfile(user.ID)); err != nil {
		return asStorageError(err)
	}
	return nil
}

// persistBestEffort writes the user, then the profile without a transaction.
func (s *RegistrationService) persistBestEffort(ctx context.Context, user *models.User, in models.RegisterInput) error {
	if _, err := s.writer.Create(ctx, user); err != nil {
		return asStorageError(err)
	}
	if !user.IsStudent() {
		return nil
	}
	if err := s.profiles.Create(ctx, in.StudentProfile(user.ID)); err != nil {
		logger.Log.Warnw("user created without student profile", "userID", user.ID, "err", err)
		return fmt.Errorf("%w: user %s: %w", apperrors.ErrProfileWriteFailed, user.ID, asStorageError(err))
	}
	return nil
}

// publishRegistration publishes a user.registered event to Kafka within the
// storage timeout. Failures are logged only.
func (s *RegistrationService) publishRegistration(ctx context.Context, user *models.User) {
	if s.kafkaWriter == nil {
		logger.Log.Debugw("Kafka writer not configured, skipping publishing", "userID", user.ID)
		return
	}

	event := models.UserRegisteredEvent{
		EventID:   uuid.NewString(),
		Timestamp: time.Now().Unix(),
		UserID:    user.ID.String(),
		Nombre:    user.Nombre,
		Email:     user.Email,
		UserType:  user.UserType,
	}

	data, err := json.Marshal(event)
	if err != nil {
		logger.Log.Errorw("Failed to marshal registration event", "userID", user.ID, "error", err)
		return
	}

	msg := kafka.Message{
		Key:   []byte(event.UserID),
		Value: data,
	}

	ctx, cancel := withTimeout(ctx, s.timeout)
	defer cancel()

	if err := s.kafkaWriter.WriteMessages(ctx, msg); err != nil {
		logger.Log.Errorw("Failed to publish registration event", "userID", user.ID, "error", err)
	} else {
		logger.Log.Infow("Registration event published", "userID", user.ID, "event_id", event.EventID)
	}
}
