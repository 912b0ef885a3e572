package repository

import (
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
)

// ErrDuplicate is returned when an insert violates a unique constraint. The
// duplicate-email check in the auth flow is check-then-insert, so the race
// window still surfaces here and gets mapped to a conflict upstream.
var ErrDuplicate = errors.New("duplicate key")

const uniqueViolationCode = "23505"

func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == uniqueViolationCode {
		return ErrDuplicate
	}
	return err
}
