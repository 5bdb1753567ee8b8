package domain

// RecipeIngredient links a recipe to a shared ingredient with per-link
// metadata. Composite-keyed: a recipe references an ingredient at most once.
type RecipeIngredient struct {
	RecipeID     int64       `gorm:"column:fk_recipe;primaryKey" json:"recipe_id"`
	IngredientID int64       `gorm:"column:fk_ingredient;primaryKey" json:"ingredient_id"`
	Quantity     int         `gorm:"not null" json:"quantity"`
	Measurement  Measurement `gorm:"type:e_measurement;not null" json:"measurement"`
}

func (RecipeIngredient) TableName() string { return "recipe_ingredients" }

type RecipeUtensil struct {
	RecipeID  int64 `gorm:"column:fk_recipe;primaryKey" json:"recipe_id"`
	UtensilID int64 `gorm:"column:fk_utensil;primaryKey" json:"utensil_id"`
}

func (RecipeUtensil) TableName() string { return "recipe_utensils" }

// IngredientLink is the flattened join of a junction row with its ingredient,
// the shape recipes expose in their nested payloads.
type IngredientLink struct {
	ID          int64       `json:"id"`
	Name        string      `json:"name"`
	Quantity    int         `json:"quantity"`
	Measurement Measurement `json:"measurement"`
}

type UtensilLink struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}
