package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/sirdesai22/staffing-service/internal/metrics"
)

var (
	// ErrNotFound is returned when no row has the requested id.
	ErrNotFound = errors.New("record not found")
	// ErrConflict is returned when a write would break a unique constraint (email).
	ErrConflict = errors.New("record conflicts with an existing one")
	// ErrInvalidReference is returned when a project points at a sales staff row that does not exist.
	ErrInvalidReference = errors.New("referenced record does not exist")
)

// translate maps gorm/driver errors onto the package sentinels. gorm must be
// opened with TranslateError so that driver codes arrive as gorm errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return ErrConflict
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return ErrInvalidReference
	}
	return err
}

// wrap adds the operation name while keeping the sentinel reachable via errors.Is.
func wrap(op string, err error) error {
	return fmt.Errorf("%s: %w", op, translate(err))
}

func outcome(err error) string {
	switch {
	case err == nil:
		return "ok"
	case errors.Is(err, ErrNotFound):
		return "not_found"
	case errors.Is(err, ErrConflict):
		return "conflict"
	case errors.Is(err, ErrInvalidReference):
		return "invalid_reference"
	}
	return "error"
}

func observe(entity, op string, err error) {
	metrics.Operations.WithLabelValues(entity, op, outcome(err)).Inc()
}
