package app

import (
	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/repos"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type Repos struct {
	Ingredient       repos.IngredientRepo
	Utensil          repos.UtensilRepo
	Recipe           repos.RecipeRepo
	RecipeIngredient repos.RecipeIngredientRepo
	RecipeUtensil    repos.RecipeUtensilRepo
}

func wireRepos(db *gorm.DB, log *logger.Logger) Repos {
	log.Info("Wiring repos...")
	return Repos{
		Ingredient:       repos.NewIngredientRepo(db, log),
		Utensil:          repos.NewUtensilRepo(db, log),
		Recipe:           repos.NewRecipeRepo(db, log),
		RecipeIngredient: repos.NewRecipeIngredientRepo(db, log),
		RecipeUtensil:    repos.NewRecipeUtensilRepo(db, log),
	}
}
