package app

import (
	"github.com/rulzurlabs/rulzurapi/internal/http"
	httpH "github.com/rulzurlabs/rulzurapi/internal/http/handlers"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type Handlers struct {
	Health     *httpH.HealthHandler
	Ingredient *httpH.IngredientHandler
	Utensil    *httpH.UtensilHandler
	Recipe     *httpH.RecipeHandler
}

func wireHandlers(log *logger.Logger, services Services) Handlers {
	log.Info("Wiring handlers...")
	return Handlers{
		Health:     httpH.NewHealthHandler(),
		Ingredient: httpH.NewIngredientHandler(services.Ingredient, services.Recipe, log),
		Utensil:    httpH.NewUtensilHandler(services.Utensil, services.Recipe, log),
		Recipe:     httpH.NewRecipeHandler(services.Recipe, log),
	}
}

func wireServer(handlers Handlers) *http.Server {
	return http.NewServer(http.RouterConfig{
		HealthHandler:     handlers.Health,
		IngredientHandler: handlers.Ingredient,
		UtensilHandler:    handlers.Utensil,
		RecipeHandler:     handlers.Recipe,
	})
}
