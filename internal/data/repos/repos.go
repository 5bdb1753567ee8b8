package repos

import (
	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/repos/catalog"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type IngredientRepo = catalog.IngredientRepo
type UtensilRepo = catalog.UtensilRepo
type RecipeRepo = catalog.RecipeRepo
type RecipeIngredientRepo = catalog.RecipeIngredientRepo
type RecipeUtensilRepo = catalog.RecipeUtensilRepo

func NewIngredientRepo(db *gorm.DB, baseLog *logger.Logger) IngredientRepo {
	return catalog.NewIngredientRepo(db, baseLog)
}
func NewUtensilRepo(db *gorm.DB, baseLog *logger.Logger) UtensilRepo {
	return catalog.NewUtensilRepo(db, baseLog)
}
func NewRecipeRepo(db *gorm.DB, baseLog *logger.Logger) RecipeRepo {
	return catalog.NewRecipeRepo(db, baseLog)
}
func NewRecipeIngredientRepo(db *gorm.DB, baseLog *logger.Logger) RecipeIngredientRepo {
	return catalog.NewRecipeIngredientRepo(db, baseLog)
}
func NewRecipeUtensilRepo(db *gorm.DB, baseLog *logger.Logger) RecipeUtensilRepo {
	return catalog.NewRecipeUtensilRepo(db, baseLog)
}
