package pkg

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// https://www.postgresql.org/docs/current/errcodes-appendix.html
const (
	pgCodeUniqueViolation     = "23505"
	pgCodeForeignKeyViolation = "23503"
)

func IsUniqueViolationError(err error) bool {
	return isPgErrorCode(err, pgCodeUniqueViolation)
}

func IsForeignKeyViolationError(err error) bool {
	return isPgErrorCode(err, pgCodeForeignKeyViolation)
}

func isPgErrorCode(err error, code string) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == code
}
