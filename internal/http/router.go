package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/rulzurlabs/rulzurapi/internal/http/handlers"
	httpMW "github.com/rulzurlabs/rulzurapi/internal/http/middleware"
)

type RouterConfig struct {
	IngredientHandler *httpH.IngredientHandler
	UtensilHandler    *httpH.UtensilHandler
	RecipeHandler     *httpH.RecipeHandler

	HealthHandler *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.CORS())

	// Health
	if cfg.HealthHandler != nil {
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	// Ingredients
	if cfg.IngredientHandler != nil {
		r.GET("/ingredients", cfg.IngredientHandler.List)
		r.POST("/ingredients", cfg.IngredientHandler.Create)
		r.PUT("/ingredients", cfg.IngredientHandler.BulkUpdate)
		r.GET("/ingredients/:id", cfg.IngredientHandler.Get)
		r.PUT("/ingredients/:id", cfg.IngredientHandler.Update)
		r.GET("/ingredients/:id/recipes", cfg.IngredientHandler.Recipes)
	}

	// Utensils
	if cfg.UtensilHandler != nil {
		r.GET("/utensils", cfg.UtensilHandler.List)
		r.POST("/utensils", cfg.UtensilHandler.Create)
		r.PUT("/utensils", cfg.UtensilHandler.BulkUpdate)
		r.GET("/utensils/:id", cfg.UtensilHandler.Get)
		r.PUT("/utensils/:id", cfg.UtensilHandler.Update)
		r.GET("/utensils/:id/recipes", cfg.UtensilHandler.Recipes)
	}

	// Recipes
	if cfg.RecipeHandler != nil {
		r.GET("/recipes", cfg.RecipeHandler.List)
		r.POST("/recipes", cfg.RecipeHandler.Create)
		r.PUT("/recipes", cfg.RecipeHandler.BulkUpdate)
		r.GET("/recipes/:id", cfg.RecipeHandler.Get)
		r.GET("/recipes/:id/ingredients", cfg.RecipeHandler.Ingredients)
		r.GET("/recipes/:id/utensils", cfg.RecipeHandler.Utensils)
	}

	return r
}
