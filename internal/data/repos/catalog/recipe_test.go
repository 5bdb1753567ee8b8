package catalog_test

import (
	"context"
	"testing"

	"github.com/rulzurlabs/rulzurapi/internal/data/repos/catalog"
	"github.com/rulzurlabs/rulzurapi/internal/data/repos/testutil"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
)

func TestRecipeRepoCreateAndGet(t *testing.T) {
	tx := testutil.Tx(t)
	repo := catalog.NewRecipeRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	rec := &domain.Recipe{
		Name: "ratatouille",
		Directions: domain.Directions{
			{Title: "prep", Text: "slice the vegetables"},
			{Title: "bake", Text: "layer and roast"},
		},
		Difficulty: 3,
		Duration:   "60/75",
		People:     6,
		Category:   domain.CategoryMain,
	}
	if err := repo.Create(ctx, tx, rec); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if rec.ID == 0 {
		t.Fatal("expected assigned id")
	}

	got, err := repo.GetByID(ctx, tx, rec.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got == nil {
		t.Fatal("expected recipe")
	}
	if got.Name != "ratatouille" || got.Duration != "60/75" || got.Category != domain.CategoryMain {
		t.Errorf("unexpected recipe: %+v", got)
	}
	if len(got.Directions) != 2 || got.Directions[0].Title != "prep" {
		t.Errorf("directions did not round trip: %+v", got.Directions)
	}
}

func TestRecipeRepoGetByIngredientID(t *testing.T) {
	tx := testutil.Tx(t)
	recipeRepo := catalog.NewRecipeRepo(testutil.DB(t), testutil.Logger(t))
	riRepo := catalog.NewRecipeIngredientRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	rec := testutil.SeedRecipe(t, tx, "pesto pasta")
	other := testutil.SeedRecipe(t, tx, "plain pasta")
	basil := testutil.SeedIngredient(t, tx, "basil")

	err := riRepo.Create(ctx, tx, []*domain.RecipeIngredient{{
		RecipeID:     rec.ID,
		IngredientID: basil.ID,
		Quantity:     1,
		Measurement:  domain.MeasurementSpoon,
	}})
	if err != nil {
		t.Fatalf("link: %v", err)
	}

	rows, err := recipeRepo.GetByIngredientID(ctx, tx, basil.ID)
	if err != nil {
		t.Fatalf("GetByIngredientID: %v", err)
	}
	if len(rows) != 1 || rows[0].ID != rec.ID {
		t.Fatalf("expected only %q, got %+v", rec.Name, rows)
	}
	for _, row := range rows {
		if row.ID == other.ID {
			t.Error("unlinked recipe returned")
		}
	}
}

func TestRecipeIngredientLinks(t *testing.T) {
	tx := testutil.Tx(t)
	riRepo := catalog.NewRecipeIngredientRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	rec := testutil.SeedRecipe(t, tx, "soup")
	onion := testutil.SeedIngredient(t, tx, "onion")
	stock := testutil.SeedIngredient(t, tx, "stock")

	err := riRepo.Create(ctx, tx, []*domain.RecipeIngredient{
		{RecipeID: rec.ID, IngredientID: onion.ID, Quantity: 3, Measurement: domain.MeasurementGram},
		{RecipeID: rec.ID, IngredientID: stock.ID, Quantity: 1, Measurement: domain.MeasurementLiter},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	links, err := riRepo.LinksByRecipeID(ctx, tx, rec.ID)
	if err != nil {
		t.Fatalf("LinksByRecipeID: %v", err)
	}
	if len(links) != 2 {
		t.Fatalf("expected 2 links, got %d", len(links))
	}
	byName := map[string]domain.IngredientLink{}
	for _, link := range links {
		byName[link.Name] = link
	}
	if byName["onion"].Quantity != 3 || byName["onion"].Measurement != domain.MeasurementGram {
		t.Errorf("onion link wrong: %+v", byName["onion"])
	}
	if byName["stock"].Measurement != domain.MeasurementLiter {
		t.Errorf("stock link wrong: %+v", byName["stock"])
	}

	if err := riRepo.DeleteByRecipeID(ctx, tx, rec.ID); err != nil {
		t.Fatalf("DeleteByRecipeID: %v", err)
	}
	links, err = riRepo.LinksByRecipeID(ctx, tx, rec.ID)
	if err != nil {
		t.Fatalf("LinksByRecipeID after delete: %v", err)
	}
	if len(links) != 0 {
		t.Errorf("expected no links after delete, got %+v", links)
	}
}

func TestRecipeUtensilLinksByRecipeIDs(t *testing.T) {
	tx := testutil.Tx(t)
	ruRepo := catalog.NewRecipeUtensilRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	recA := testutil.SeedRecipe(t, tx, "omelette")
	recB := testutil.SeedRecipe(t, tx, "crepes")
	pan := testutil.SeedUtensil(t, tx, "pan")
	whisk := testutil.SeedUtensil(t, tx, "whisk")

	err := ruRepo.Create(ctx, tx, []*domain.RecipeUtensil{
		{RecipeID: recA.ID, UtensilID: pan.ID},
		{RecipeID: recA.ID, UtensilID: whisk.ID},
		{RecipeID: recB.ID, UtensilID: pan.ID},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}

	grouped, err := ruRepo.LinksByRecipeIDs(ctx, tx, []int64{recA.ID, recB.ID})
	if err != nil {
		t.Fatalf("LinksByRecipeIDs: %v", err)
	}
	if len(grouped[recA.ID]) != 2 {
		t.Errorf("expected 2 utensils for %q, got %+v", recA.Name, grouped[recA.ID])
	}
	if len(grouped[recB.ID]) != 1 || grouped[recB.ID][0].Name != "pan" {
		t.Errorf("expected pan for %q, got %+v", recB.Name, grouped[recB.ID])
	}
}
