package services

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/data/repos"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
	pkgerrors "github.com/rulzurlabs/rulzurapi/internal/pkg/errors"
	"github.com/rulzurlabs/rulzurapi/internal/pkg/logger"
)

type RecipeService interface {
	List(ctx context.Context) ([]*domain.Recipe, error)
	Get(ctx context.Context, id int64) (*domain.Recipe, error)
	Create(ctx context.Context, input *domain.RecipeInput) (*domain.Recipe, error)
	BulkUpdate(ctx context.Context, updates []domain.RecipeUpdate) ([]*domain.Recipe, error)
	ListByIngredient(ctx context.Context, ingredientID int64) ([]*domain.Recipe, error)
	ListByUtensil(ctx context.Context, utensilID int64) ([]*domain.Recipe, error)
	IngredientsOf(ctx context.Context, recipeID int64) ([]domain.IngredientLink, error)
	UtensilsOf(ctx context.Context, recipeID int64) ([]domain.UtensilLink, error)
}

type recipeService struct {
	db             *gorm.DB
	recipeRepo     repos.RecipeRepo
	ingredientRepo repos.IngredientRepo
	utensilRepo    repos.UtensilRepo
	riRepo         repos.RecipeIngredientRepo
	ruRepo         repos.RecipeUtensilRepo
	resolver       ReferenceResolver
	log            *logger.Logger
}

func NewRecipeService(
	gdb *gorm.DB,
	recipeRepo repos.RecipeRepo,
	ingredientRepo repos.IngredientRepo,
	utensilRepo repos.UtensilRepo,
	riRepo repos.RecipeIngredientRepo,
	ruRepo repos.RecipeUtensilRepo,
	resolver ReferenceResolver,
	baseLog *logger.Logger,
) RecipeService {
	return &recipeService{
		db:             gdb,
		recipeRepo:     recipeRepo,
		ingredientRepo: ingredientRepo,
		utensilRepo:    utensilRepo,
		riRepo:         riRepo,
		ruRepo:         ruRepo,
		resolver:       resolver,
		log:            baseLog.With("service", "RecipeService"),
	}
}

func (s *recipeService) List(ctx context.Context) ([]*domain.Recipe, error) {
	rows, err := s.recipeRepo.List(ctx, nil)
	if err != nil {
		return nil, err
	}
	if err := s.attachLinks(ctx, nil, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *recipeService) Get(ctx context.Context, id int64) (*domain.Recipe, error) {
	row, err := s.recipeRepo.GetByID(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	if row == nil {
		return nil, fmt.Errorf("recipe %d %w", id, pkgerrors.ErrNotFound)
	}
	if err := s.attachLinks(ctx, nil, []*domain.Recipe{row}); err != nil {
		return nil, err
	}
	return row, nil
}

// Create resolves both reference lists under the shared table lock, persists
// the recipe and its junction rows, and returns the recipe with resolved
// links attached. Everything happens in one transaction: a failed resolution
// leaves no trace.
func (s *recipeService) Create(ctx context.Context, input *domain.RecipeInput) (*domain.Recipe, error) {
	if err := input.Validate(); err != nil {
		return nil, err
	}

	var out *domain.Recipe
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// Single lock statement for both tables, so concurrent creates
		// serialize without deadlocking on acquisition order.
		if err := db.LockTables(ctx, tx, domain.TableUtensil, domain.TableIngredient); err != nil {
			return fmt.Errorf("lock reference tables: %w", err)
		}

		utEnts, utErrs, err := s.resolver.Resolve(ctx, tx, domain.TableUtensil, domain.UtensilRefs(input.Utensils))
		if err != nil {
			return err
		}
		ingEnts, ingErrs, err := s.resolver.Resolve(ctx, tx, domain.TableIngredient, domain.IngredientRefs(input.Ingredients))
		if err != nil {
			return err
		}
		if len(utErrs) > 0 || len(ingErrs) > 0 {
			return &domain.ReferenceErrors{Ingredients: ingErrs, Utensils: utErrs}
		}

		rec := &domain.Recipe{
			Name:       input.Name,
			Directions: input.Directions,
			Difficulty: input.Difficulty,
			Duration:   input.Duration,
			People:     input.People,
			Category:   input.Category,
		}
		if rec.Directions == nil {
			rec.Directions = domain.Directions{}
		}
		if err := s.recipeRepo.Create(ctx, tx, rec); err != nil {
			if db.IsUniqueViolation(err) {
				return fmt.Errorf("recipe %q %w", input.Name, pkgerrors.ErrConflict)
			}
			return err
		}

		if err := s.replaceIngredients(ctx, tx, rec, input.Ingredients, ingEnts, false); err != nil {
			return err
		}
		if err := s.replaceUtensils(ctx, tx, rec, utEnts, false); err != nil {
			return err
		}

		out = rec
		return nil
	})
	if err != nil {
		return nil, err
	}
	s.log.Info("recipe created", "id", out.ID, "name", out.Name)
	return out, nil
}

// BulkUpdate applies every update in one transaction; any failure rolls the
// whole batch back. The reference tables are locked up front since any update
// may replace junction rows.
func (s *recipeService) BulkUpdate(ctx context.Context, updates []domain.RecipeUpdate) ([]*domain.Recipe, error) {
	for i := range updates {
		if err := updates[i].Validate(); err != nil {
			return nil, err
		}
	}

	out := make([]*domain.Recipe, 0, len(updates))
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := db.LockTables(ctx, tx, domain.TableUtensil, domain.TableIngredient); err != nil {
			return fmt.Errorf("lock reference tables: %w", err)
		}
		for i := range updates {
			rec, err := s.applyUpdate(ctx, tx, &updates[i])
			if err != nil {
				return err
			}
			out = append(out, rec)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *recipeService) applyUpdate(ctx context.Context, tx *gorm.DB, up *domain.RecipeUpdate) (*domain.Recipe, error) {
	var rec *domain.Recipe

	changes := up.Changes()
	if len(changes) > 0 {
		row, found, err := s.recipeRepo.UpdateReturning(ctx, tx, up.ID, changes)
		if err != nil {
			if db.IsUniqueViolation(err) {
				return nil, fmt.Errorf("recipe name %w", pkgerrors.ErrConflict)
			}
			return nil, err
		}
		if !found {
			return nil, fmt.Errorf("recipe %d %w", up.ID, pkgerrors.ErrNotFound)
		}
		rec = row
	} else {
		row, err := s.recipeRepo.GetByID(ctx, tx, up.ID)
		if err != nil {
			return nil, err
		}
		if row == nil {
			return nil, fmt.Errorf("recipe %d %w", up.ID, pkgerrors.ErrNotFound)
		}
		rec = row
	}

	if up.Ingredients != nil {
		ents, itemErrs, err := s.resolver.Resolve(ctx, tx, domain.TableIngredient, domain.IngredientRefs(up.Ingredients))
		if err != nil {
			return nil, err
		}
		if len(itemErrs) > 0 {
			return nil, &domain.ReferenceErrors{Ingredients: itemErrs}
		}
		if err := s.replaceIngredients(ctx, tx, rec, up.Ingredients, ents, true); err != nil {
			return nil, err
		}
	} else {
		links, err := s.riRepo.LinksByRecipeID(ctx, tx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Ingredients = links
	}

	if up.Utensils != nil {
		ents, itemErrs, err := s.resolver.Resolve(ctx, tx, domain.TableUtensil, domain.UtensilRefs(up.Utensils))
		if err != nil {
			return nil, err
		}
		if len(itemErrs) > 0 {
			return nil, &domain.ReferenceErrors{Utensils: itemErrs}
		}
		if err := s.replaceUtensils(ctx, tx, rec, ents, true); err != nil {
			return nil, err
		}
	} else {
		links, err := s.ruRepo.LinksByRecipeID(ctx, tx, rec.ID)
		if err != nil {
			return nil, err
		}
		rec.Utensils = links
	}

	return rec, nil
}

// replaceIngredients writes the junction rows for a resolved ingredient list,
// preserving the request's item order and per-item quantity/measurement, and
// attaches the resulting links to rec. ents is positional with items.
func (s *recipeService) replaceIngredients(ctx context.Context, tx *gorm.DB, rec *domain.Recipe, items []domain.IngredientItem, ents []domain.Entity, clear bool) error {
	if clear {
		if err := s.riRepo.DeleteByRecipeID(ctx, tx, rec.ID); err != nil {
			return err
		}
	}
	rows := make([]*domain.RecipeIngredient, len(ents))
	links := make([]domain.IngredientLink, len(ents))
	for i, ent := range ents {
		rows[i] = &domain.RecipeIngredient{
			RecipeID:     rec.ID,
			IngredientID: ent.ID,
			Quantity:     items[i].Quantity,
			Measurement:  items[i].Measurement,
		}
		links[i] = domain.IngredientLink{
			ID:          ent.ID,
			Name:        ent.Name,
			Quantity:    items[i].Quantity,
			Measurement: items[i].Measurement,
		}
	}
	if err := s.riRepo.Create(ctx, tx, rows); err != nil {
		return err
	}
	rec.Ingredients = links
	return nil
}

func (s *recipeService) replaceUtensils(ctx context.Context, tx *gorm.DB, rec *domain.Recipe, ents []domain.Entity, clear bool) error {
	if clear {
		if err := s.ruRepo.DeleteByRecipeID(ctx, tx, rec.ID); err != nil {
			return err
		}
	}
	rows := make([]*domain.RecipeUtensil, len(ents))
	links := make([]domain.UtensilLink, len(ents))
	for i, ent := range ents {
		rows[i] = &domain.RecipeUtensil{RecipeID: rec.ID, UtensilID: ent.ID}
		links[i] = domain.UtensilLink{ID: ent.ID, Name: ent.Name}
	}
	if err := s.ruRepo.Create(ctx, tx, rows); err != nil {
		return err
	}
	rec.Utensils = links
	return nil
}

func (s *recipeService) ListByIngredient(ctx context.Context, ingredientID int64) ([]*domain.Recipe, error) {
	ing, err := s.ingredientRepo.GetByID(ctx, nil, ingredientID)
	if err != nil {
		return nil, err
	}
	if ing == nil {
		return nil, fmt.Errorf("ingredient %d %w", ingredientID, pkgerrors.ErrNotFound)
	}
	rows, err := s.recipeRepo.GetByIngredientID(ctx, nil, ingredientID)
	if err != nil {
		return nil, err
	}
	if err := s.attachLinks(ctx, nil, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *recipeService) ListByUtensil(ctx context.Context, utensilID int64) ([]*domain.Recipe, error) {
	ut, err := s.utensilRepo.GetByID(ctx, nil, utensilID)
	if err != nil {
		return nil, err
	}
	if ut == nil {
		return nil, fmt.Errorf("utensil %d %w", utensilID, pkgerrors.ErrNotFound)
	}
	rows, err := s.recipeRepo.GetByUtensilID(ctx, nil, utensilID)
	if err != nil {
		return nil, err
	}
	if err := s.attachLinks(ctx, nil, rows); err != nil {
		return nil, err
	}
	return rows, nil
}

func (s *recipeService) IngredientsOf(ctx context.Context, recipeID int64) ([]domain.IngredientLink, error) {
	rec, err := s.recipeRepo.GetByID(ctx, nil, recipeID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("recipe %d %w", recipeID, pkgerrors.ErrNotFound)
	}
	return s.riRepo.LinksByRecipeID(ctx, nil, recipeID)
}

func (s *recipeService) UtensilsOf(ctx context.Context, recipeID int64) ([]domain.UtensilLink, error) {
	rec, err := s.recipeRepo.GetByID(ctx, nil, recipeID)
	if err != nil {
		return nil, err
	}
	if rec == nil {
		return nil, fmt.Errorf("recipe %d %w", recipeID, pkgerrors.ErrNotFound)
	}
	return s.ruRepo.LinksByRecipeID(ctx, nil, recipeID)
}

// attachLinks populates the transient reference lists for a batch of recipes
// with two grouped queries instead of one pair per recipe.
func (s *recipeService) attachLinks(ctx context.Context, tx *gorm.DB, rows []*domain.Recipe) error {
	if len(rows) == 0 {
		return nil
	}
	ids := make([]int64, len(rows))
	for i, rec := range rows {
		ids[i] = rec.ID
	}
	ingByRecipe, err := s.riRepo.LinksByRecipeIDs(ctx, tx, ids)
	if err != nil {
		return err
	}
	utByRecipe, err := s.ruRepo.LinksByRecipeIDs(ctx, tx, ids)
	if err != nil {
		return err
	}
	for _, rec := range rows {
		rec.Ingredients = ingByRecipe[rec.ID]
		if rec.Ingredients == nil {
			rec.Ingredients = []domain.IngredientLink{}
		}
		rec.Utensils = utByRecipe[rec.ID]
		if rec.Utensils == nil {
			rec.Utensils = []domain.UtensilLink{}
		}
	}
	return nil
}
