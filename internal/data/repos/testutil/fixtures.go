package testutil

import (
	"fmt"
	"testing"
	"time"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
)

// UniqueName returns a name unlikely to collide with rows left over from
// other runs, for tests that must commit outside a rollback transaction.
func UniqueName(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

func SeedIngredient(tb testing.TB, tx *gorm.DB, name string) *domain.Ingredient {
	tb.Helper()
	row := &domain.Ingredient{Name: name}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed ingredient %q: %v", name, err)
	}
	return row
}

func SeedUtensil(tb testing.TB, tx *gorm.DB, name string) *domain.Utensil {
	tb.Helper()
	row := &domain.Utensil{Name: name}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed utensil %q: %v", name, err)
	}
	return row
}

func SeedRecipe(tb testing.TB, tx *gorm.DB, name string) *domain.Recipe {
	tb.Helper()
	row := &domain.Recipe{
		Name:       name,
		Directions: domain.Directions{{Title: "step 1", Text: "mix"}},
		Difficulty: 2,
		Duration:   domain.Duration("15/20"),
		People:     4,
		Category:   domain.CategoryMain,
	}
	if err := tx.Create(row).Error; err != nil {
		tb.Fatalf("seed recipe %q: %v", name, err)
	}
	return row
}
