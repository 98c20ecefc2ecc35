package repository

import (
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jamadeu/multicontas/pkg/domain"
	"gorm.io/gorm"
)

// MapGormErrorToDomain converts GORM and Postgres driver errors to domain
// errors. This keeps infrastructure concerns (database errors) within the
// infrastructure layer. A unique-constraint violation surfaces as
// domain.ErrAlreadyExists so the constraint backstop and the service-level
// pre-check produce the same outcome.
func MapGormErrorToDomain(err error) error {
	if err == nil {
		return nil
	}

	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey):
		return domain.ErrAlreadyExists
	case errors.Is(err, gorm.ErrRecordNotFound):
		return domain.ErrNotFound
	case errors.Is(err, gorm.ErrForeignKeyViolated):
		return domain.ErrValidation
	}

	// GORM only translates driver errors when TranslateError is enabled,
	// so also inspect the raw Postgres error code.
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return domain.ErrAlreadyExists
		case pgerrcode.ForeignKeyViolation:
			return domain.ErrValidation
		}
	}

	return err
}
