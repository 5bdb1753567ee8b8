package catalog_test

import (
	"context"
	"testing"

	"github.com/rulzurlabs/rulzurapi/internal/data/db"
	"github.com/rulzurlabs/rulzurapi/internal/data/repos/catalog"
	"github.com/rulzurlabs/rulzurapi/internal/data/repos/testutil"
	"github.com/rulzurlabs/rulzurapi/internal/domain"
)

func TestIngredientRepoCreateAndList(t *testing.T) {
	tx := testutil.Tx(t)
	repo := catalog.NewIngredientRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	rows, err := repo.Create(ctx, tx, []*domain.Ingredient{
		{Name: "carrot"},
		{Name: "leek"},
	})
	if err != nil {
		t.Fatalf("Create: %v", err)
	}
	for _, row := range rows {
		if row.ID == 0 {
			t.Errorf("expected assigned id for %q", row.Name)
		}
	}

	listed, err := repo.List(ctx, tx)
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(listed) < 2 {
		t.Fatalf("expected at least 2 ingredients, got %d", len(listed))
	}
	for i := 1; i < len(listed); i++ {
		if listed[i-1].ID > listed[i].ID {
			t.Fatal("list should be ordered by id")
		}
	}
}

func TestIngredientRepoCreateDuplicateName(t *testing.T) {
	tx := testutil.Tx(t)
	repo := catalog.NewIngredientRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, tx, []*domain.Ingredient{{Name: "thyme"}}); err != nil {
		t.Fatalf("Create: %v", err)
	}
	_, err := repo.Create(ctx, tx, []*domain.Ingredient{{Name: "thyme"}})
	if !db.IsUniqueViolation(err) {
		t.Errorf("expected unique violation, got %v", err)
	}
}

func TestIngredientRepoGetByID(t *testing.T) {
	tx := testutil.Tx(t)
	repo := catalog.NewIngredientRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	seeded := testutil.SeedIngredient(t, tx, "basil")

	row, err := repo.GetByID(ctx, tx, seeded.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if row == nil || row.Name != "basil" {
		t.Errorf("unexpected row: %+v", row)
	}

	row, err = repo.GetByID(ctx, tx, 999999)
	if err != nil {
		t.Fatalf("GetByID missing: %v", err)
	}
	if row != nil {
		t.Errorf("expected nil for absent id, got %+v", row)
	}
}

func TestIngredientRepoUpdateReturning(t *testing.T) {
	tx := testutil.Tx(t)
	repo := catalog.NewIngredientRepo(testutil.DB(t), testutil.Logger(t))
	ctx := context.Background()

	seeded := testutil.SeedIngredient(t, tx, "corriander")

	row, found, err := repo.UpdateReturning(ctx, tx, seeded.ID, map[string]interface{}{"name": "coriander"})
	if err != nil {
		t.Fatalf("UpdateReturning: %v", err)
	}
	if !found || row.Name != "coriander" {
		t.Errorf("unexpected result: found=%v row=%+v", found, row)
	}

	_, found, err = repo.UpdateReturning(ctx, tx, 999999, map[string]interface{}{"name": "nope"})
	if err != nil {
		t.Fatalf("UpdateReturning missing: %v", err)
	}
	if found {
		t.Error("expected found=false for absent id")
	}
}
