package repositories

import (
	"context"
	"strings"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/logger"
	"github.com/sbilibin2017/gw-recipe-accounts/internal/models"
)

// StudentProfileRepository handles alumnos_info writes
type StudentProfileRepository struct {
	db       *sqlx.DB
	txGetter func(ctx context.Context) *sqlx.Tx
}

func NewStudentProfileRepository(db *sqlx.DB, txGetter func(ctx context.Context) *sqlx.Tx) *StudentProfileRepository {
	return &StudentProfileRepository{db: db, txGetter: txGetter}
}

// Create inserts the profile. Nil optional fields are stored as NULL.
func (r *StudentProfileRepository) Create(ctx context.Context, profile *models.StudentProfile) error {
	const query = `
		INSERT INTO alumnos_info (usuario_id, medio_pago, foto_dni_frente, foto_dni_dorso, numero_tramite_dni)
		VALUES ($1, $2, $3, $4, $5)
	`

	var executor sqlx.ExtContext = r.db
	if r.txGetter != nil {
		if tx := r.txGetter(ctx); tx != nil {
			executor = tx
		}
	}

	args := []any{
		profile.UsuarioID,
		profile.MedioPago,
		profile.FotoDniFrente,
		profile.FotoDniDorso,
		profile.NumeroTramiteDni,
	}

	res, err := executor.ExecContext(ctx, query, args...)
	var rowsAffected int64
	if res != nil {
		rowsAffected, _ = res.RowsAffected()
	}

	logger.Log.Infow("db query",
		"query", strings.Join(strings.Fields(query), " "),
		"args", []any{profile.UsuarioID},
		"result", rowsAffected,
		"error", err,
	)

	return classify(err)
}
