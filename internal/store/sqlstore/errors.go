package sqlstore

import (
	"errors"
	"fmt"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
)

var (
	errNilDBClient       = errors.New("db client is nil")
	errNilSQLClient      = errors.New("sql client is nil")
	errUnknownDriver     = errors.New("unknown sql driver")
	errInvalidIdentifier = errors.New("invalid sql identifier")
	errUndefinedTable    = errors.New("undefined table")
	errUndefinedColumn   = errors.New("undefined column")
	errQueryCanceled     = errors.New("query canceled")
)

func checkPostgresError(err error) error {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UndefinedTable:
			return fmt.Errorf("%w [%s]", errUndefinedTable, pgErr.Message)
		case pgerrcode.UndefinedColumn:
			return fmt.Errorf("%w [%s]", errUndefinedColumn, pgErr.Message)
		case pgerrcode.QueryCanceled:
			return fmt.Errorf("%w [%s]", errQueryCanceled, pgErr.Message)
		}
	}
	return err
}
