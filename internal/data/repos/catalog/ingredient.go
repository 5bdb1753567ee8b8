package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type IngredientRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.Ingredient) ([]*domain.Ingredient, error)
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Ingredient, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Ingredient, error)
	GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*domain.Ingredient, error)
	UpdateReturning(ctx context.Context, tx *gorm.DB, id int64, changes map[string]interface{}) (*domain.Ingredient, bool, error)
}

type ingredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return &ingredientRepo{db: db, log: baseLog.With("repo", "IngredientRepo")}
}

func (r *ingredientRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.Ingredient) ([]*domain.Ingredient, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return []*domain.Ingredient{}, nil
	}
	if err := t.WithContext(ctx).Create(&rows).Error; err != nil {
		return nil, err
	}
	return rows, nil
}

func (r *ingredientRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Ingredient, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Ingredient
	if err := t.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ingredientRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Ingredient, error) {
	rows, err := r.GetByIDs(ctx, tx, []int64{id})
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

func (r *ingredientRepo) GetByIDs(ctx context.Context, tx *gorm.DB, ids []int64) ([]*domain.Ingredient, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Ingredient
	if len(ids) == 0 {
		return out, nil
	}
	if err := t.WithContext(ctx).Where("id IN ?", ids).Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *ingredientRepo) UpdateReturning(ctx context.Context, tx *gorm.DB, id int64, changes map[string]interface{}) (*domain.Ingredient, bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var row domain.Ingredient
	found, err := db.UpdateReturning(ctx, t, domain.TableIngredient, id, changes, &row)
	if err != nil || !found {
		return nil, found, err
	}
	return &row, true, nil
}
