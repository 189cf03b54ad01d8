package repository

import (
	"errors"

	"github.com/go-sql-driver/mysql"
)

var (
	ErrUserNotFound        = errors.New("user not found")
	ErrDuplicateEmail      = errors.New("email already exists")
	ErrTransactionNotFound = errors.New("transaction not found")
	ErrInvalidData         = errors.New("record rejected by schema")
)

// isDuplicateEntryError reports whether err is a MySQL unique-key violation
// (error 1062). The email uniqueness constraint surfaces through here.
func isDuplicateEntryError(err error) bool {
	var mysqlErr *mysql.MySQLError
	return errors.As(err, &mysqlErr) && mysqlErr.Number == 1062
}

// isDataError reports whether err is a MySQL schema rejection: truncated or
// out-of-range values (1265, 1264, 1406) or a bad enum value (1366).
func isDataError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if !errors.As(err, &mysqlErr) {
		return false
	}
	switch mysqlErr.Number {
	case 1264, 1265, 1366, 1406:
		return true
	}
	return false
}
