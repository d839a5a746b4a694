package service

import (
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	"gorm.io/gorm"
)

var (
	ErrValidation            = errors.New("validation failed")
	ErrConstraintViolation   = errors.New("constraint violation")
	ErrConnectionUnavailable = errors.New("database connection unavailable")
	ErrQueryFailed           = errors.New("query failed")
	ErrWriteFailed           = errors.New("write failed")

	ErrInvalidPage  = fmt.Errorf("%w: page must be at least 1", ErrValidation)
	ErrInvalidLimit = fmt.Errorf("%w: limit must be at least 1", ErrValidation)
)

// classify 将底层存储错误归入错误分级，未识别的错误落入 fallback。
func classify(err error, fallback error) error {
	switch {
	case errors.Is(err, gorm.ErrDuplicatedKey), errors.Is(err, gorm.ErrForeignKeyViolated):
		return fmt.Errorf("%w: %v", ErrConstraintViolation, err)
	case errors.Is(err, sql.ErrConnDone), errors.Is(err, driver.ErrBadConn):
		return fmt.Errorf("%w: %v", ErrConnectionUnavailable, err)
	default:
		return fmt.Errorf("%w: %v", fallback, err)
	}
}
