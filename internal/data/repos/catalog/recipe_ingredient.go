package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type RecipeIngredientRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.RecipeIngredient) error
	DeleteByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) error
	LinksByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) ([]domain.IngredientLink, error)
	LinksByRecipeIDs(ctx context.Context, tx *gorm.DB, recipeIDs []int64) (map[int64][]domain.IngredientLink, error)
}

type recipeIngredientRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeIngredientRepo(db *gorm.DB, baseLog *logger.Logger) RecipeIngredientRepo {
	return &recipeIngredientRepo{db: db, log: baseLog.With("repo", "RecipeIngredientRepo")}
}

func (r *recipeIngredientRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.RecipeIngredient) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&rows).Error
}

func (r *recipeIngredientRepo) DeleteByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("fk_recipe = ?", recipeID).Delete(&domain.RecipeIngredient{}).Error
}

type ingredientLinkRow struct {
	RecipeID    int64
	ID          int64
	Name        string
	Quantity    int
	Measurement domain.Measurement
}

func (r *recipeIngredientRepo) LinksByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) ([]domain.IngredientLink, error) {
	byRecipe, err := r.LinksByRecipeIDs(ctx, tx, []int64{recipeID})
	if err != nil {
		return nil, err
	}
	links := byRecipe[recipeID]
	if links == nil {
		links = []domain.IngredientLink{}
	}
	return links, nil
}

func (r *recipeIngredientRepo) LinksByRecipeIDs(ctx context.Context, tx *gorm.DB, recipeIDs []int64) (map[int64][]domain.IngredientLink, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	out := map[int64][]domain.IngredientLink{}
	if len(recipeIDs) == 0 {
		return out, nil
	}
	var rows []ingredientLinkRow
	if err := t.WithContext(ctx).Raw(`
		SELECT ri.fk_recipe AS recipe_id, i.id, i.name, ri.quantity, ri.measurement
		FROM recipe_ingredients ri
		JOIN ingredient i ON i.id = ri.fk_ingredient
		WHERE ri.fk_recipe IN ?
		ORDER BY ri.fk_recipe ASC, i.id ASC`, recipeIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RecipeID] = append(out[row.RecipeID], domain.IngredientLink{
			ID:          row.ID,
			Name:        row.Name,
			Quantity:    row.Quantity,
			Measurement: row.Measurement,
		})
	}
	return out, nil
}
