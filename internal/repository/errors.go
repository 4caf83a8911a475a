package repository

import (
	"errors"
	"fmt"
	"strings"

	domainRepo "hospital-management-api/internal/domain/repository"

	"github.com/go-sql-driver/mysql"
	"github.com/jackc/pgx/v5/pgconn"
)

// MySQL error numbers for values the column cannot hold.
var mysqlDataErrors = map[uint16]bool{
	1264: true, // out of range value
	1265: true, // data truncated
	1366: true, // incorrect value
	1406: true, // data too long
}

// translateError maps driver-level data errors to domainRepo.ErrInvalidData.
// Any other error is returned unchanged.
func translateError(err error) error {
	if err == nil {
		return nil
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		// Class 22: data exception
		if strings.HasPrefix(pgErr.Code, "22") {
			return fmt.Errorf("%w: %s", domainRepo.ErrInvalidData, pgErr.Message)
		}
		return err
	}

	var myErr *mysql.MySQLError
	if errors.As(err, &myErr) && mysqlDataErrors[myErr.Number] {
		return fmt.Errorf("%w: %s", domainRepo.ErrInvalidData, myErr.Message)
	}

	return err
}

// containsPattern builds a LIKE pattern matching s anywhere in the column.
func containsPattern(s string) string {
	return "%" + s + "%"
}
