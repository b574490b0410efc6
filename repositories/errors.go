package repositories

import (
	"errors"

	"gorm.io/gorm"
)

// Sentinel errors shared by every repository. Service code matches on these
// instead of engine-specific failures.
var (
	// ErrNotFound signals an empty result for the given key. It is a normal
	// outcome, not a storage failure.
	ErrNotFound = errors.New("record not found")

	// ErrDuplicateKey signals a unique-constraint violation. The unique index
	// is the final authority on slug uniqueness; any pre-check in the service
	// layer is only an optimization.
	ErrDuplicateKey = errors.New("duplicate key")
)

// translateError maps GORM's translated engine errors onto the repository
// sentinels and leaves everything else (storage failures) untouched.
func translateError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrDuplicateKey
	default:
		return err
	}
}
