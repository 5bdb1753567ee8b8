package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
	pkgerrors "github.com/rulzurlabs/rulzurapi/internal/pkg/errors"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

// ReferenceResolver turns a mixed list of "existing by id" / "create by name"
// reference items into resolved entities, creating missing names without ever
// duplicating a row under concurrent writers.
type ReferenceResolver interface {
	// Resolve qualifies refs, takes the table lock, inserts missing names and
	// re-fetches the full set in one query. The returned slice is positional:
	// entities[i] resolves refs[i]. Validation failures come back per item in
	// ItemErrors; the error return is reserved for storage failures. When tx
	// is nil the call runs in its own transaction, rolled back if any item
	// fails.
	Resolve(ctx context.Context, tx *gorm.DB, table string, refs []domain.Ref) ([]domain.Entity, domain.ItemErrors, error)
}

type referenceResolver struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewReferenceResolver(gdb *gorm.DB, baseLog *logger.Logger) ReferenceResolver {
	return &referenceResolver{db: gdb, log: baseLog.With("service", "ReferenceResolver")}
}

// errRollback forces the standalone transaction to roll back when items
// failed validation, so a half-resolved batch never commits.
var errRollback = errors.New("reference resolution rolled back")

func (r *referenceResolver) Resolve(ctx context.Context, tx *gorm.DB, table string, refs []domain.Ref) ([]domain.Entity, domain.ItemErrors, error) {
	if len(refs) == 0 {
		return []domain.Entity{}, nil, nil
	}

	q, itemErrs := qualifyRefs(refs)
	if len(itemErrs) > 0 {
		return nil, itemErrs, nil
	}

	if tx != nil {
		return r.resolveLocked(ctx, tx, table, refs, q)
	}

	var entities []domain.Entity
	err := r.db.WithContext(ctx).Transaction(func(inner *gorm.DB) error {
		var resolveErr error
		entities, itemErrs, resolveErr = r.resolveLocked(ctx, inner, table, refs, q)
		if resolveErr != nil {
			return resolveErr
		}
		if len(itemErrs) > 0 {
			return errRollback
		}
		return nil
	})
	if err != nil && !errors.Is(err, errRollback) {
		return nil, nil, err
	}
	if len(itemErrs) > 0 {
		return nil, itemErrs, nil
	}
	return entities, nil, nil
}

// resolveLocked runs the insert-if-absent protocol inside tx. The table lock
// must cover both the unique insert and the re-fetch, or a concurrent writer
// could slip a duplicate in between.
func (r *referenceResolver) resolveLocked(ctx context.Context, tx *gorm.DB, table string, refs []domain.Ref, q *qualified) ([]domain.Entity, domain.ItemErrors, error) {
	if err := db.LockTables(ctx, tx, table); err != nil {
		return nil, nil, fmt.Errorf("lock %s: %w", table, err)
	}

	if _, err := db.InsertUnique(ctx, tx, table, "name", q.names); err != nil {
		return nil, nil, err
	}

	rows, err := r.fetch(ctx, tx, table, q)
	if err != nil {
		return nil, nil, fmt.Errorf("fetch %s references: %w", table, err)
	}

	itemErrs := domain.ItemErrors{}
	entities := make([]domain.Entity, len(refs))

	for _, row := range rows {
		idIdxs, idHit := q.byID[row.ID]
		nameIdxs, nameHit := q.byName[row.Name]

		// The same row requested once by id and once by name is two
		// references to one entity: a client error on every position
		// involved, not something to silently deduplicate.
		if idHit && nameHit {
			for _, i := range idIdxs {
				itemErrs.Add(i, "id", domain.MsgMultipleEntries)
			}
			for _, i := range nameIdxs {
				itemErrs.Add(i, "name", domain.MsgMultipleEntries)
			}
			delete(q.byID, row.ID)
			delete(q.byName, row.Name)
			continue
		}
		if idHit {
			entities[idIdxs[0]] = row
			delete(q.byID, row.ID)
			continue
		}
		if nameHit {
			entities[nameIdxs[0]] = row
			delete(q.byName, row.Name)
		}
	}

	for _, idxs := range q.byID {
		for _, i := range idxs {
			itemErrs.Add(i, "id", domain.MsgNoCorresponding)
		}
	}
	// Every requested name was just inserted (or already present) under the
	// table lock, so it must come back from the fetch.
	if len(q.byName) > 0 {
		return nil, nil, fmt.Errorf("%w: %d inserted name(s) missing from %s fetch",
			pkgerrors.ErrIntegrity, len(q.byName), table)
	}

	if len(itemErrs) > 0 {
		return nil, itemErrs, nil
	}
	return entities, nil, nil
}

func (r *referenceResolver) fetch(ctx context.Context, tx *gorm.DB, table string, q *qualified) ([]domain.Entity, error) {
	query := tx.WithContext(ctx).Table(table).Select("id, name")
	switch {
	case len(q.ids) > 0 && len(q.names) > 0:
		query = query.Where("id IN ? OR name IN ?", q.ids, q.names)
	case len(q.ids) > 0:
		query = query.Where("id IN ?", q.ids)
	case len(q.names) > 0:
		query = query.Where("name IN ?", q.names)
	default:
		return nil, nil
	}
	var rows []domain.Entity
	if err := query.Find(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

// qualified is the partition of one request's reference items, with lookups
// from each key back to the originating positions for the merge step.
type qualified struct {
	ids    []int64
	names  []string
	byID   map[int64][]int
	byName map[string][]int
}

// qualifyRefs splits refs into by-id and by-name sets. Duplicate ids or
// names within one request, and items carrying neither key, are client
// errors reported per position; nothing is fetched or inserted for a batch
// that fails here.
func qualifyRefs(refs []domain.Ref) (*qualified, domain.ItemErrors) {
	q := &qualified{
		byID:   map[int64][]int{},
		byName: map[string][]int{},
	}
	itemErrs := domain.ItemErrors{}

	for i, ref := range refs {
		switch {
		case ref.ID != nil:
			if _, ok := q.byID[*ref.ID]; !ok {
				q.ids = append(q.ids, *ref.ID)
			}
			q.byID[*ref.ID] = append(q.byID[*ref.ID], i)
		case ref.Name != nil && *ref.Name != "":
			if _, ok := q.byName[*ref.Name]; !ok {
				q.names = append(q.names, *ref.Name)
			}
			q.byName[*ref.Name] = append(q.byName[*ref.Name], i)
		default:
			itemErrs.Add(i, "id", domain.MsgMissingID)
			itemErrs.Add(i, "name", domain.MsgMissingName)
		}
	}

	for _, idxs := range q.byID {
		if len(idxs) > 1 {
			for _, i := range idxs {
				itemErrs.Add(i, "id", domain.MsgMultipleEntries)
			}
		}
	}
	for _, idxs := range q.byName {
		if len(idxs) > 1 {
			for _, i := range idxs {
				itemErrs.Add(i, "name", domain.MsgMultipleEntries)
			}
		}
	}

	if len(itemErrs) > 0 {
		return nil, itemErrs
	}
	return q, nil
}
