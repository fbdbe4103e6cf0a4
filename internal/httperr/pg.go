package httperr

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// IsExclusionConflict detecta violação de unicidade/exclusão vinda do
// Postgres. Duas reservas simultâneas podem passar no pré-check de
// conflito; a segunda escrita cai no índice parcial e termina aqui.
func IsExclusionConflict(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" || pgErr.Code == "23P01"
}
