package repository

import (
	stderrors "errors"

	"github.com/jackc/pgx/v5"

	"github.com/openmaterials/auction-engine/internal/domain/errors"
)

// storageError maps a driver failure to the retryable storage kind. Missing
// rows are handled at the call sites that know which resource was asked for.
func storageError(err error, op string) error {
	if stderrors.Is(err, pgx.ErrNoRows) {
		return err
	}
	return errors.NewStorageError(op).WithCause(err)
}
