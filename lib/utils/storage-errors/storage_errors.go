package storageerrors

import (
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// ErrStorage - database or object storage failure, its text is safe to show to users
var ErrStorage = errors.New("Something went wrong, please try again")

type storageError struct {
	cause error
}

func (e *storageError) Error() string {
	return e.cause.Error()
}

func (e *storageError) Unwrap() error {
	return e.cause
}

func (e *storageError) Is(target error) bool {
	return target == ErrStorage
}

// Wrap - marks err as a storage failure, nil stays nil
func Wrap(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, ErrStorage) {
		return err
	}
	return &storageError{cause: err}
}

// IsDuplicate - unique constraint violation, needs TranslateError on the gorm config
func IsDuplicate(err error) bool {
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
