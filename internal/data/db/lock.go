package db

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
	pkgerrors "github.com/rulzurlabs/rulzurapi/internal/pkg/errors"
)

// Writers against the shared reference tables must always acquire locks in
// the same order, or two requests touching both tables can deadlock each
// other. Lower rank locks first.
var lockRank = map[string]int{
	domain.TableUtensil:    0,
	domain.TableIngredient: 1,
}

// LockTables serializes concurrent writers against the given reference
// tables for the remainder of the enclosing transaction. SHARE ROW EXCLUSIVE
// blocks other writers but never plain readers; Postgres releases the lock at
// commit or rollback, never explicitly. Re-locking a table already held by
// the same transaction is a no-op.
func LockTables(ctx context.Context, tx *gorm.DB, tables ...string) error {
	stmt, err := lockStatement(tables)
	if err != nil {
		return err
	}
	if stmt == "" {
		return nil
	}
	return tx.WithContext(ctx).Exec(stmt).Error
}

func lockStatement(tables []string) (string, error) {
	if len(tables) == 0 {
		return "", nil
	}
	ordered := make([]string, 0, len(tables))
	seen := map[string]bool{}
	for _, table := range tables {
		if !validIdent(table) {
			return "", fmt.Errorf("%w: table name %q", pkgerrors.ErrInvalidArgument, table)
		}
		if seen[table] {
			continue
		}
		seen[table] = true
		ordered = append(ordered, table)
	}
	sort.Slice(ordered, func(i, j int) bool {
		ri, iKnown := lockRank[ordered[i]]
		rj, jKnown := lockRank[ordered[j]]
		switch {
		case iKnown && jKnown:
			return ri < rj
		case iKnown != jKnown:
			return iKnown
		default:
			return ordered[i] < ordered[j]
		}
	})
	return "LOCK TABLE " + strings.Join(ordered, ", ") + " IN SHARE ROW EXCLUSIVE MODE", nil
}

func validIdent(name string) bool {
	if name == "" {
		return false
	}
	for i, r := range name {
		switch {
		case r == '_', r >= 'a' && r <= 'z':
		case r >= '0' && r <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return true
}
