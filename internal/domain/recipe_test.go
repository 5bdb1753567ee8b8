package domain

import (
	"errors"
	"testing"
)

func validInput() *RecipeInput {
	return &RecipeInput{
		Name:       "onion soup",
		Directions: Directions{{Title: "step 1", Text: "slice"}},
		Difficulty: 2,
		Duration:   "30/45",
		People:     4,
		Category:   CategoryStarter,
		Ingredients: []IngredientItem{
			{Name: strPtr("onion"), Quantity: 3, Measurement: MeasurementGram},
		},
		Utensils: []UtensilItem{{Name: strPtr("pot")}},
	}
}

func strPtr(s string) *string { return &s }
func intPtr(n int) *int       { return &n }

func TestRecipeInputValidateAccepts(t *testing.T) {
	if err := validInput().Validate(); err != nil {
		t.Fatalf("expected valid input, got %v", err)
	}
}

func TestRecipeInputValidateCollectsAllFields(t *testing.T) {
	in := validInput()
	in.Name = ""
	in.Difficulty = 6
	in.People = 0
	in.Duration = "forever"
	in.Category = "snack"
	err := in.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %T", err)
	}
	for _, field := range []string{"name", "difficulty", "people", "duration", "category"} {
		if len(fieldErrs[field]) == 0 {
			t.Errorf("expected error on %q, got %v", field, fieldErrs)
		}
	}
}

func TestRecipeInputValidateItemBounds(t *testing.T) {
	in := validInput()
	in.Ingredients = []IngredientItem{
		{Name: strPtr("salt"), Quantity: -1, Measurement: MeasurementGram},
		{Name: strPtr("flour"), Quantity: 2, Measurement: "kg"},
	}
	err := in.Validate()
	var fieldErrs FieldErrors
	if !errors.As(err, &fieldErrs) {
		t.Fatalf("expected FieldErrors, got %v", err)
	}
	if len(fieldErrs["ingredients"]) != 2 {
		t.Errorf("expected quantity and measurement errors, got %v", fieldErrs["ingredients"])
	}
}

func TestRecipeUpdateValidatePartial(t *testing.T) {
	up := &RecipeUpdate{ID: 7, People: intPtr(3)}
	if err := up.Validate(); err != nil {
		t.Fatalf("partial update should validate, got %v", err)
	}

	up = &RecipeUpdate{ID: 7, People: intPtr(13)}
	if err := up.Validate(); err == nil {
		t.Error("expected people bound error")
	}

	up = &RecipeUpdate{People: intPtr(3)}
	if err := up.Validate(); err == nil {
		t.Error("expected missing id error")
	}
}

func TestRecipeUpdateChanges(t *testing.T) {
	up := &RecipeUpdate{ID: 7}
	if got := up.Changes(); len(got) != 0 {
		t.Errorf("no fields set should map to no changes, got %v", got)
	}

	name := "new name"
	people := 2
	up = &RecipeUpdate{ID: 7, Name: &name, People: &people}
	changes := up.Changes()
	if len(changes) != 2 {
		t.Fatalf("expected 2 changes, got %v", changes)
	}
	if changes["name"] != "new name" || changes["people"] != 2 {
		t.Errorf("unexpected changes: %v", changes)
	}
	// Untouched columns must never appear, or the update would overwrite
	// them with zero values.
	if _, ok := changes["difficulty"]; ok {
		t.Error("difficulty should be absent")
	}
}
