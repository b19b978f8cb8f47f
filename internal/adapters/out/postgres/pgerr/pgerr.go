// Package pgerr translates PostgreSQL failures into the application error sentinels.
package pgerr

import (
	"errors"
	"fmt"

	"forwarding/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const (
	codeUniqueViolation      = "23505"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
	codeLockNotAvailable     = "55P03"
)

// Map wraps err with errs.ErrTransientConflict for serialization failures and deadlocks
// and with errs.ErrDuplicateKey for unique violations. Other errors pass through.
func Map(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%w: %w", errs.ErrDuplicateKey, err)
	}

	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return err
	}

	switch pgErr.Code {
	case codeUniqueViolation:
		return fmt.Errorf("%w: %s", errs.ErrDuplicateKey, pgErr.Message)
	case codeSerializationFailure, codeDeadlockDetected, codeLockNotAvailable:
		return fmt.Errorf("%w: %s (%s)", errs.ErrTransientConflict, pgErr.Message, pgErr.Code)
	default:
		return err
	}
}
