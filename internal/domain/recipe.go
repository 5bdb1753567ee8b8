package domain

import "fmt"

const (
	TableIngredient = "ingredient"
	TableUtensil    = "utensil"
	TableRecipe     = "recipe"
)

const (
	MinPeople     = 1
	MaxPeople     = 12
	MinDifficulty = 1
	MaxDifficulty = 5
)

type Recipe struct {
	ID         int64      `gorm:"primaryKey;autoIncrement" json:"id"`
	Name       string     `gorm:"type:text;not null;uniqueIndex" json:"name"`
	Directions Directions `gorm:"type:jsonb;not null;default:'[]'" json:"directions"`
	Difficulty int        `gorm:"not null" json:"difficulty"`
	Duration   Duration   `gorm:"type:e_duration;not null" json:"duration"`
	People     int        `gorm:"not null" json:"people"`
	Category   Category   `gorm:"type:e_category;not null" json:"category"`

	// Resolved reference lists, populated from the junction tables. Never
	// persisted on this row.
	Ingredients []IngredientLink `gorm:"-" json:"ingredients"`
	Utensils    []UtensilLink    `gorm:"-" json:"utensils"`
}

func (Recipe) TableName() string { return TableRecipe }

// RecipeInput is the payload for creating a recipe. Its reference lists carry
// unresolved items; the resolver fills their ids/names before persisting.
type RecipeInput struct {
	Name        string           `json:"name" binding:"required"`
	Directions  Directions       `json:"directions"`
	Difficulty  int              `json:"difficulty" binding:"required"`
	Duration    Duration         `json:"duration" binding:"required"`
	People      int              `json:"people" binding:"required"`
	Category    Category         `json:"category" binding:"required"`
	Ingredients []IngredientItem `json:"ingredients"`
	Utensils    []UtensilItem    `json:"utensils"`
}

func (in *RecipeInput) Validate() error {
	errs := FieldErrors{}
	if in.Name == "" {
		errs.Add("name", "missing name")
	}
	if in.Difficulty < MinDifficulty || in.Difficulty > MaxDifficulty {
		errs.Add("difficulty", fmt.Sprintf("must be between %d and %d", MinDifficulty, MaxDifficulty))
	}
	if in.People < MinPeople || in.People > MaxPeople {
		errs.Add("people", fmt.Sprintf("must be between %d and %d", MinPeople, MaxPeople))
	}
	if !in.Duration.Valid() {
		errs.Add("duration", fmt.Sprintf("invalid enum value %q", string(in.Duration)))
	}
	if !in.Category.Valid() {
		errs.Add("category", fmt.Sprintf("invalid enum value %q", string(in.Category)))
	}
	for _, item := range in.Ingredients {
		if item.Quantity < 0 {
			errs.Add("ingredients", "quantity must not be negative")
			break
		}
	}
	for _, item := range in.Ingredients {
		if !item.Measurement.Valid() {
			errs.Add("ingredients", fmt.Sprintf("invalid measurement %q", string(item.Measurement)))
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// RecipeUpdate is one element of a bulk recipe update. Nil fields are left
// untouched; a nil reference list keeps the current junction rows, a non-nil
// one replaces them wholesale.
type RecipeUpdate struct {
	ID          int64            `json:"id" binding:"required"`
	Name        *string          `json:"name"`
	Directions  *Directions      `json:"directions"`
	Difficulty  *int             `json:"difficulty"`
	Duration    *Duration        `json:"duration"`
	People      *int             `json:"people"`
	Category    *Category        `json:"category"`
	Ingredients []IngredientItem `json:"ingredients"`
	Utensils    []UtensilItem    `json:"utensils"`
}

func (up *RecipeUpdate) Validate() error {
	errs := FieldErrors{}
	if up.ID == 0 {
		errs.Add("id", "missing id")
	}
	if up.Name != nil && *up.Name == "" {
		errs.Add("name", "must not be empty")
	}
	if up.Difficulty != nil && (*up.Difficulty < MinDifficulty || *up.Difficulty > MaxDifficulty) {
		errs.Add("difficulty", fmt.Sprintf("must be between %d and %d", MinDifficulty, MaxDifficulty))
	}
	if up.People != nil && (*up.People < MinPeople || *up.People > MaxPeople) {
		errs.Add("people", fmt.Sprintf("must be between %d and %d", MinPeople, MaxPeople))
	}
	if up.Duration != nil && !up.Duration.Valid() {
		errs.Add("duration", fmt.Sprintf("invalid enum value %q", string(*up.Duration)))
	}
	if up.Category != nil && !up.Category.Valid() {
		errs.Add("category", fmt.Sprintf("invalid enum value %q", string(*up.Category)))
	}
	for _, item := range up.Ingredients {
		if item.Quantity < 0 {
			errs.Add("ingredients", "quantity must not be negative")
			break
		}
	}
	for _, item := range up.Ingredients {
		if !item.Measurement.Valid() {
			errs.Add("ingredients", fmt.Sprintf("invalid measurement %q", string(item.Measurement)))
			break
		}
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// Changes maps the non-nil scalar fields to their column names for a
// returning update. Reference lists are handled separately.
func (up *RecipeUpdate) Changes() map[string]interface{} {
	changes := map[string]interface{}{}
	if up.Name != nil {
		changes["name"] = *up.Name
	}
	if up.Directions != nil {
		changes["directions"] = *up.Directions
	}
	if up.Difficulty != nil {
		changes["difficulty"] = *up.Difficulty
	}
	if up.Duration != nil {
		changes["duration"] = *up.Duration
	}
	if up.People != nil {
		changes["people"] = *up.People
	}
	if up.Category != nil {
		changes["category"] = *up.Category
	}
	return changes
}

// FieldErrors collects validation messages keyed by the offending field.
type FieldErrors map[string][]string

func (e FieldErrors) Add(field, msg string) {
	e[field] = append(e[field], msg)
}

func (e FieldErrors) Error() string {
	return fmt.Sprintf("validation failed on %d field(s)", len(e))
}
