package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
	"github.com/rulzurlabs/rulzurapi/internal/http/response"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
	"github.com/rulzurlabs/rulzurapi/internal/services"
)

type UtensilHandler struct {
	utensilService services.UtensilService
	recipeService  services.RecipeService
	log            *logger.Logger
}

func NewUtensilHandler(utensilService services.UtensilService, recipeService services.RecipeService, baseLog *logger.Logger) *UtensilHandler {
	return &UtensilHandler{
		utensilService: utensilService,
		recipeService:  recipeService,
		log:            baseLog.With("handler", "UtensilHandler"),
	}
}

// GET /utensils
func (h *UtensilHandler) List(c *gin.Context) {
	rows, err := h.utensilService.List(c.Request.Context())
	if err != nil {
		respondServiceError(c, h.log, "list utensils", err)
		return
	}
	response.RespondOK(c, gin.H{"utensils": rows})
}

// POST /utensils
// body: { "name": "..." }
func (h *UtensilHandler) Create(c *gin.Context) {
	var req struct {
		Name string `json:"name" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMalformed(c, gin.H{"name": []string{"missing name"}})
		return
	}
	row, err := h.utensilService.Create(c.Request.Context(), req.Name)
	if err != nil {
		respondServiceError(c, h.log, "create utensil", err)
		return
	}
	response.RespondCreated(c, gin.H{"utensil": row})
}

// PUT /utensils
// body: { "utensils": [ { "id": n, "name": "..." }, ... ] }
func (h *UtensilHandler) BulkUpdate(c *gin.Context) {
	var req struct {
		Utensils []domain.EntityUpdate `json:"utensils" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondMalformed(c, gin.H{"utensils": []string{"missing or malformed utensils list"}})
		return
	}
	rows, err := h.utensilService.BulkUpdate(c.Request.Context(), req.Utensils)
	if err != nil {
		respondServiceError(c, h.log, "bulk update utensils", err)
		return
	}
	response.RespondOK(c, gin.H{"utensils": rows})
}

// GET /utensils/:id
func (h *UtensilHandler) Get(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	row, err := h.utensilService.Get(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "get utensil", err)
		return
	}
	response.RespondOK(c, gin.H{"utensil": row})
}

// PUT /utensils/:id
// body: { "name": "..." }
func (h *UtensilHandler) Update(c *gin.Context) {
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
	row, err := h.utensilService.Update(c.Request.Context(), id, req.Name)
	if err != nil {
		respondServiceError(c, h.log, "update utensil", err)
		return
	}
	response.RespondOK(c, gin.H{"utensil": row})
}

// GET /utensils/:id/recipes
func (h *UtensilHandler) Recipes(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	rows, err := h.recipeService.ListByUtensil(c.Request.Context(), id)
	if err != nil {
		respondServiceError(c, h.log, "list recipes by utensil", err)
		return
	}
	response.RespondOK(c, gin.H{"recipes": rows})
}
