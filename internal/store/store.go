// Package store is the resource store: per-entity CRUD plus the composite
// event reads. Every write is atomic as a unit; multi-row deletes run in a
// transaction. Storage-level integrity failures never escape raw — they are
// translated to the domain errors in apperr.
//
// Deletes are hard deletes (Unscoped): the unique indexes on usernames and
// on (media_id, user_id) must be freed for re-use, which a soft-deleted row
// would block.
package store

import (
	"errors"
	"fmt"

	"github.com/eventhub-dev/eventhub/internal/apperr"
	"gorm.io/gorm"
)

// translate maps gorm errors to the domain taxonomy.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return apperr.ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return fmt.Errorf("%w: duplicate value", apperr.ErrInvalid)
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: referenced record does not exist", apperr.ErrInvalid)
	default:
		return fmt.Errorf("%w: %v", apperr.ErrInternal, err)
	}
}
