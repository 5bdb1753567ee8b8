package app

import (
	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
	"github.com/rulzurlabs/rulzurapi/internal/services"
)

type Services struct {
	Resolver   services.ReferenceResolver
	Ingredient services.IngredientService
	Utensil    services.UtensilService
	Recipe     services.RecipeService
}

func wireServices(db *gorm.DB, log *logger.Logger, reposet Repos) Services {
	log.Info("Wiring services...")
	resolver := services.NewReferenceResolver(db, log)
	return Services{
		Resolver:   resolver,
		Ingredient: services.NewIngredientService(db, reposet.Ingredient, log),
		Utensil:    services.NewUtensilService(db, reposet.Utensil, log),
		Recipe: services.NewRecipeService(
			db,
			reposet.Recipe,
			reposet.Ingredient,
			reposet.Utensil,
			reposet.RecipeIngredient,
			reposet.RecipeUtensil,
			resolver,
			log,
		),
	}
}
