package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type UtensilRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.Utensil) ([]*domain.Utensil, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Utensil, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Utensil, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*domain.Utensil, error)
	UpdateReturning(ctx context.Context, tx *gorm.DB, id int64, changes map[string]interface{}) (*domain.Utensil, bool, error)
}

type utensilRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewUtensilRepo(db *gorm.DB, baseLog *logger.Logger) UtensilRepo {
	return &utensilRepo{db: db, log: baseLog.With("repo", "UtensilRepo")}
}

func (r *utensilRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Utensil) ([]*domain.Utensil, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*domain.Utensil{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *utensilRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Utensil, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Utensil
	if err := t.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *utensilRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Utensil, error) {
	rows, err := r.GetByIDs(ctx, tx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *utensilRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*domain.Utensil, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Utensil
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *utensilRepo) UpdateReturning(ctx context.Context, tx *gorm.DB, id int64, changes map[string]interface{}) (*domain.Utensil, bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var row domain.Utensil
	found, err := db.UpdateReturning(ctx, t, domain.TableUtensil, id, changes, &row)
	if err != nil || !found {
		return nil, found, err
	}
	return &row, true, nil
}
