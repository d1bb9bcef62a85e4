package usecase

import (
	"errors"

	"gorm.io/gorm"
)

var (
	ErrNotFound             = errors.New("not found")
	ErrForbidden            = errors.New("forbidden")
	ErrConflict             = errors.New("conflict")
	ErrInvalidCredentials   = errors.New("invalid credentials")
	ErrInvalidInput         = errors.New("invalid input")
	ErrEmbeddingUnavailable = errors.New("embedding provider unavailable")
)

// notFoundOr maps gorm's record-not-found to ErrNotFound and leaves other
// errors untouched.
func notFoundOr(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	return err
}
