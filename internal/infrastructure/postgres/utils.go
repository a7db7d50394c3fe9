package postgres

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// SQLSTATE de violación de constraint UNIQUE.
const uniqueViolationCode = "23505"

// isUniqueViolation reporta si err proviene de una violación de UNIQUE: el
// email de users o la clave compuesta (user_id, id) de products.
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode
}
