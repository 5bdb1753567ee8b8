package catalog

import (
	"context"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type RecipeUtensilRepo interface {
	Create(ctx context.Context, tx *gorm.DB, rows []*domain.RecipeUtensil) error
	DeleteByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) error
	LinksByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) ([]domain.UtensilLink, error)
	LinksByRecipeIDs(ctx context.Context, tx *gorm.DB, recipeIDs []int64) (map[int64][]domain.UtensilLink, error)
}

type recipeUtensilRepo struct {
	db  *gorm.DB
	log *logger.Logger
}

func NewRecipeUtensilRepo(db *gorm.DB, baseLog *logger.Logger) RecipeUtensilRepo {
	return &recipeUtensilRepo{db: db, log: baseLog.With("repo", "RecipeUtensilRepo")}
}

func (r *recipeUtensilRepo) Create(ctx context.Context, tx *gorm.DB, rows []*domain.RecipeUtensil) error {
	t := tx
	if t == nil {
		t = r.db
	}
	if len(rows) == 0 {
		return nil
	}
	return t.WithContext(ctx).Create(&rows).Error
}

func (r *recipeUtensilRepo) DeleteByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) error {
	t := tx
	if t == nil {
		t = r.db
	}
	return t.WithContext(ctx).Where("fk_recipe = ?", recipeID).Delete(&domain.RecipeUtensil{}).Error
}

type utensilLinkRow struct {
	RecipeID int64
	ID       int64
	Name     string
}

func (r *recipeUtensilRepo) LinksByRecipeID(ctx context.Context, tx *gorm.DB, recipeID int64) ([]domain.UtensilLink, error) {
	byRecipe, err := r.LinksByRecipeIDs(ctx, tx, []int64{recipeID})
	if err != nil {
		return nil, err
	}
	links := byRecipe[recipeID]
	if links == nil {
		links = []domain.UtensilLink{}
	}
	return links, nil
}

func (r *recipeUtensilRepo) LinksByRecipeIDs(ctx context.Context, tx *gorm.DB, recipeIDs []int64) (map[int64][]domain.UtensilLink, error) {
	t := tx
	if t == nil {
		t = r.db
	}
	out := map[int64][]domain.UtensilLink{}
	if len(recipeIDs) == 0 {
		return out, nil
	}
	var rows []utensilLinkRow
	if err := t.WithContext(ctx).Raw(`
		SELECT ru.fk_recipe AS recipe_id, u.id, u.name
		FROM recipe_utensils ru
		JOIN utensil u ON u.id = ru.fk_utensil
		WHERE ru.fk_recipe IN ?
		ORDER BY ru.fk_recipe ASC, u.id ASC`, recipeIDs).
		Scan(&rows).Error; err != nil {
		return nil, err
	}
	for _, row := range rows {
		out[row.RecipeID] = append(out[row.RecipeID], domain.UtensilLink{ID: row.ID, Name: row.Name})
	}
	return out, nil
}
