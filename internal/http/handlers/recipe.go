package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/http/response"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
	"github.com/rulzurlabs/rulzurapi/internal/services"
)

type RecipeHandler struct {
	recipeService services.RecipeService
	log           *logger.Logger
}

func NewRecipeHandler(recipeService services.RecipeService, baseLog *logger.Logger) *RecipeHandler {
	return &RecipeHandler{
		recipeService: recipeService,
		log:           baseLog.With("handler", "RecipeHandler"),
	}
}

// GET /recipes
func (h *RecipeHandler) List(c *gin.Context) {
	rows, err := h.recipeService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "list recipes", err)
		return
	}
	response.RespondOK(c, gin.H{"recipes": rows})
}

// POST /recipes
func (h *RecipeHandler) Create(c *gin.Context) {
	var input domain.RecipeInput
	if err := c.ShouldBindJSON(&input); err != nil {
		response.RespondMalformed(c, gin.H{"recipe": []string{err.Error()}})
		return
	}
	row, err := h.recipeService.Create(c.Request.Context(), &input)
	if err != nil {
		respondServiceError(c, h.log, "create recipe", err)
		return
	}
	response.RespondCreated(c, gin.H{"recipe": row})
}

// PUT /recipes
// body: { "recipes": [ { "id": n, ...partial fields... }, ... ] }
func (h *RecipeHandler) BulkUpdate(c *gin.Context) {
	var req struct {
		Recipes []domain.RecipeUpdate `json:"recipes" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMalformed(c, gin.H{"recipes": []string{"missing or malformed recipes list"}})
		return
	}
	rows, err := h.recipeService.BulkUpdate(c.Request.Context(), req.Recipes)
	if err != nil {
		respondServiceError(c, h.log, "bulk update recipes", err)
		return
	}
	response.RespondOK(c, gin.H{"recipes": rows})
}

// GET /recipes/:id
func (h *RecipeHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.recipeService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "get recipe", err)
		return
	}
	response.RespondOK(c, gin.H{"recipe": row})
}

// GET /recipes/:id/ingredients
func (h *RecipeHandler) Ingredients(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	links, err := h.recipeService.IngredientsOf(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "list recipe ingredients", err)
		return
	}
	response.RespondOK(c, gin.H{"ingredients": links})
}

// GET /recipes/:id/utensils
func (h *RecipeHandler) Utensils(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	links, err := h.recipeService.UtensilsOf(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "list recipe utensils", err)
		return
	}
	response.RespondOK(c, gin.H{"utensils": links})
}
