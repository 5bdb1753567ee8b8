package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type RecipeRepo interface {
	Create(ctx context.Context, tx *gorm.DB, row *domain.Recipe) error
	List(ctx context.Context, tx *gorm.DB) ([]*domain.Recipe, error)
	GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Recipe, error)
	GetByIngredientID(ctx context.Context, tx *gorm.DB, ingredientID int64) ([]*domain.Recipe, error)
	GetByUtensilID(ctx context.Context, tx *gorm.DB, utensilID int64) ([]*domain.Recipe, error)
	UpdateReturning(ctx context.Context, tx *gorm.DB, id int64, changes map[string]interface{}) (*domain.Recipe, bool, error)
}

type recipeRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return &recipeRepo{db: db, log: baseLog.With("repo", "RecipeRepo")}
}

func (r *recipeRepo) Create(ctx context.Context, tx *gorm.DB, row *domain.Recipe) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if row == nil {
		return nil
	}
	return t.WithContext(ctx).Create(row).Error
}

func (r *recipeRepo) List(ctx context.Context, tx *gorm.DB) ([]*domain.Recipe, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Recipe
	if err := t.WithContext(ctx).Order("id ASC").Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) GetByID(ctx context.Context, tx *gorm.DB, id int64) (*domain.Recipe, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Recipe
	if err := t.WithContext(ctx).Where("id = ?", id).Limit(1).Find(&out).Error; err != nil {
		return nil, err
	}
	if len(out) == 0 {
		return nil, nil
	}
	return out[0], nil
}

func (r *recipeRepo) GetByIngredientID(ctx context.Context, tx *gorm.DB, ingredientID int64) ([]*domain.Recipe, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Recipe
	if err := t.WithContext(ctx).
		Joins("JOIN recipe_ingredients ON recipe_ingredients.fk_recipe = recipe.id").
		Where("recipe_ingredients.fk_ingredient = ?", ingredientID).
		Order("recipe.id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) GetByUtensilID(ctx context.Context, tx *gorm.DB, utensilID int64) ([]*domain.Recipe, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var out []*domain.Recipe
	if err := t.WithContext(ctx).
		Joins("JOIN recipe_utensils ON recipe_utensils.fk_recipe = recipe.id").
		Where("recipe_utensils.fk_utensil = ?", utensilID).
		Order("recipe.id ASC").
		Find(&out).Error; err != nil {
		return nil, err
	}
	return out, nil
}

func (r *recipeRepo) UpdateReturning(ctx context.Context, tx *gorm.DB, id int64, changes map[string]interface{}) (*domain.Recipe, bool, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	var row domain.Recipe
	found, err := db.UpdateReturning(ctx, t, domain.TableRecipe, id, changes, &row)
	if err != nil || !found {
		return nil, found, err
	}
	return &row, true, nil
}
