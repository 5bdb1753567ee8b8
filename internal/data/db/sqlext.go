package db

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	pkgerrors "github.com/rulzurlabs/rulzurapi/internal/pkg/errors"
)

const (
	pgUniqueViolation = "23505"
	pgLockNotAvail    = "55P03"
)

// InsertUnique inserts the subset of values whose uniqueColumn is not already
// present in table, in one statement regardless of batch size. The
// check-and-insert is not atomic across transactions on its own; callers must
// hold the table lock (LockTables) for the duration. A unique violation here
// means that coordination was broken, so it surfaces as ErrIntegrity and is
// never retried.
func InsertUnique(ctx context.Context, tx *gorm.DB, table, uniqueColumn string, values []string) (int64, error) {
	if len(values) == 0 {
		return 0, nil
	}
	if !validIdent(table) || !validIdent(uniqueColumn) {
		return 0, fmt.Errorf("%w: identifier %q.%q", pkgerrors.ErrInvalidArgument, table, uniqueColumn)
	}

	placeholders := make([]string, len(values))
	args := make([]interface{}, len(values))
	for i, v := range values {
		placeholders[i] = "(?)"
		args[i] = v
	}
	stmt := fmt.Sprintf(
		"INSERT INTO %s (%s) SELECT v.%s FROM (VALUES %s) AS v(%s) WHERE v.%s NOT IN (SELECT %s FROM %s)",
		table, uniqueColumn,
		uniqueColumn, strings.Join(placeholders, ", "), uniqueColumn,
		uniqueColumn, uniqueColumn, table,
	)

	res := tx.WithContext(ctx).Exec(stmt, args...)
	if res.Error != nil {
		if IsUniqueViolation(res.Error) {
			return 0, fmt.Errorf("%w: concurrent insert into %s bypassed the table lock: %v",
				pkgerrors.ErrIntegrity, table, res.Error)
		}
		return 0, res.Error
	}
	return res.RowsAffected, nil
}

// UpdateReturning applies changes to the row of table whose id column equals
// pk and scans the post-update row into dest, in a single round trip. A
// missing row is not an error: it reports found=false and leaves dest
// untouched.
func UpdateReturning(ctx context.Context, tx *gorm.DB, table string, pk interface{}, changes map[string]interface{}, dest interface{}) (bool, error) {
	if len(changes) == 0 {
		return false, fmt.Errorf("%w: no changes for %s update", pkgerrors.ErrInvalidArgument, table)
	}
	if !validIdent(table) {
		return false, fmt.Errorf("%w: table name %q", pkgerrors.ErrInvalidArgument, table)
	}

	columns := make([]string, 0, len(changes))
	for column := range changes {
		if !validIdent(column) {
			return false, fmt.Errorf("%w: column name %q", pkgerrors.ErrInvalidArgument, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	assignments := make([]string, len(columns))
	args := make([]interface{}, 0, len(columns)+1)
	for i, column := range columns {
		assignments[i] = column + " = ?"
		args = append(args, changes[column])
	}
	args = append(args, pk)

	stmt := fmt.Sprintf("UPDATE %s SET %s WHERE id = ? RETURNING *", table, strings.Join(assignments, ", "))

	res := tx.WithContext(ctx).Raw(stmt, args...).Scan(dest)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

// IsUniqueViolation reports whether err is a Postgres unique-constraint
// violation surfaced through the pgx driver.
func IsUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation
}

// IsLockTimeout reports whether err is a lock acquisition timeout. The whole
// write rolls back; retrying is the client's decision.
func IsLockTimeout(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgLockNotAvail
}
