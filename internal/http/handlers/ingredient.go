package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/http/response"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
	"github.com/rulzurlabs/rulzurapi/internal/services"
)

type IngredientHandler struct {
	ingredientService services.IngredientService
	recipeService     services.RecipeService
	log               *logger.Logger
}

func NewIngredientHandler(ingredientService services.IngredientService, recipeService services.RecipeService, baseLog *logger.Logger) *IngredientHandler {
	return &IngredientHandler{
		ingredientService: ingredientService,
		recipeService:     recipeService,
		log:               baseLog.With("handler", "IngredientHandler"),
	}
}

// GET /ingredients
func (h *IngredientHandler) List(c *gin.Context) {
	rows, err := h.ingredientService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "list ingredients", err)
		return
	}
	response.RespondOK(c, gin.H{"ingredients": rows})
}

// POST /ingredients
// body: { "name": "..." }
func (h *IngredientHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMalformed(c, gin.H{"name": []string{"missing name"}})
		return
	}
	row, err := h.ingredientService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, h.log, "create ingredient", err)
		return
	}
	response.RespondCreated(c, gin.H{"ingredient": row})
}

// PUT /ingredients
// body: { "ingredients": [ { "id": n, "name": "..." }, ... ] }
func (h *IngredientHandler) BulkUpdate(c *gin.Context) {
	var req struct {
		Ingredients []domain.EntityUpdate `json:"ingredients" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMalformed(c, gin.H{"ingredients": []string{"missing or malformed ingredients list"}})
		return
	}
	rows, err := h.ingredientService.BulkUpdate(c.Request.Context(), req.Ingredients)
	if err != nil {
		respondServiceError(c, h.log, "bulk update ingredients", err)
		return
	}
	response.RespondOK(c, gin.H{"ingredients": rows})
}

// GET /ingredients/:id
func (h *IngredientHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.ingredientService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "get ingredient", err)
		return
	}
	response.RespondOK(c, gin.H{"ingredient": row})
}

// PUT /ingredients/:id
// body: { "name": "..." }
func (h *IngredientHandler) Update(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMalformed(c, gin.H{"name": []string{"missing name"}})
		return
	}
	row, err := h.ingredientService.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondServiceError(c, h.log, "update ingredient", err)
		return
	}
	response.RespondOK(c, gin.H{"ingredient": row})
}

// GET /ingredients/:id/recipes
func (h *IngredientHandler) Recipes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.recipeService.ListByIngredient(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "list recipes by ingredient", err)
		return
	}
	response.RespondOK(c, gin.H{"recipes": rows})
}
