package domain

// Ingredient is a shared reference entity: uniquely named, referenced by many
// recipes, created on demand when a recipe mentions an unknown name.
type Ingredient struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex" json:"name"`
}

func (Ingredient) TableName() string { return TableIngredient }

type Utensil struct {
	ID   int64  `gorm:"primaryKey;autoIncrement" json:"id"`
	Name string `gorm:"type:text;not null;uniqueIndex" json:"name"`
}

func (Utensil) TableName() string { return TableUtensil }

// EntityUpdate is one element of a bulk rename of reference entities.
type EntityUpdate struct {
	ID   int64  `json:"id" binding:"required"`
	Name string `json:"name" binding:"required"`
}
