package repositories

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
)

type UserReadRepository struct {
	db *sqlx.DB
}

func NewUserReadRepository(db *sqlx.DB) *UserReadRepository {
	return &UserReadRepository{db: db}
}

// ExistsByEmail reports whether a user with exactly this email exists.
func (r *UserReadRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM usuarios WHERE email = $1)`
	return r.exists(ctx, query, email)
}

// ExistsByNombre reports whether a user with exactly this alias exists.
func (r *UserReadRepository) ExistsByNombre(ctx context.Context, nombre string) (bool, error) {
	const query = `SELECT EXISTS (SELECT 1 FROM usuarios WHERE nombre = $1)`
	return r.exists(ctx, query, nombre)
}

func (r *UserReadRepository) exists(ctx context.Context, query string, arg string) (bool, error) {
	var exists bool
	err := r.db.GetContext(ctx, &exists, query, arg)

	// Log with query in single line
	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{arg},
		"result", exists,
		"error", err,
	)

	if err != nil {
		return false, classify(err)
	}
	return exists, nil
}

// List returns all users ordered by creation time. Password hashes are not selected.
func (r *UserReadRepository) List(ctx context.Context) ([]models.User, error) {
	const query = `
		SELECT id, nombre, email, user_type, created_at
		FROM usuarios
		ORDER BY created_at, nombre
	`

	users := []models.User{}
	err := r.db.SelectContext(ctx, &users, query)

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{},
		"result", len(users),
		"error", err,
	)

	if err != nil {
		return nil, classify(err)
	}
	return users, nil
}

// UserWriteRepository inserts users, inside the context transaction when there is one.
type UserWriteRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewUserWriteRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *UserWriteRepository {
	return &UserWriteRepository{db: db, txGetter: txGetter}
}

// Create inserts user, assigning its ID when unset and CreatedAt from the store.
// A duplicate nombre or email fails with apperrors.ErrConflict.
func (r *UserWriteRepository) Create(ctx context.Context, user *models.User) (*models.User, error) {
	const query = `
		INSERT INTO usuarios (id, nombre, email, password, user_type, created_at)
		VALUES ($1, $2, $3, $4, $5, NOW())
		RETURNING created_at
	`

	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	err := executor.QueryRowxContext(ctx, query,
		user.ID, user.Nombre, user.Email, user.Password, user.UserType,
	).Scan(&user.CreatedAt)

	// Log query, args (password masked), result, error
	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{user.ID, user.Nombre, user.Email, "***", user.UserType},
		"result", user.CreatedAt,
		"error", err,
	)

	if err != nil {
		return nil, classify(err)
	}
	return user, nil
}
