package implementation

import (
	"errors"
	"fmt"

	"numero-be/internal/repository/contract"

	"github.com/jackc/pgx/v5/pgconn"
)

const (
	pgForeignKeyViolation = "23503"
	pgUniqueViolation     = "23505"
)

// translateError maps Postgres constraint failures onto the repository contract errors.
func translateError(err error) error {
	if err == nil {
		return nil
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgForeignKeyViolation:
			return fmt.Errorf("%w: %s", contract.ErrReferenceNotFound, pgErr.ConstraintName)
		case pgUniqueViolation:
			return fmt.Errorf("%w: %s", contract.ErrDuplicate, pgErr.ConstraintName)
		}
	}
	return err
}
