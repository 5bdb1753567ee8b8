package db

import (
	"fmt"

	"gorm.io/gorm"

	"github.com/rulzurlabs/rulzurapi/internal/domain"
)

// Enum column types are created before the tables that use them. Guarded so
// migration stays re-runnable.
var enumDDL = []string{
	`DO $$ BEGIN
		CREATE TYPE e_duration AS ENUM (
			'0/5', '5/10', '10/15', '15/20', '20/25', '25/30',
			'30/45', '45/60', '60/75', '75/90', '90/120', '120/150'
		);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE e_category AS ENUM ('starter', 'main', 'dessert');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		CREATE TYPE e_measurement AS ENUM ('L', 'g', 'oz', 'spoon');
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
}

var constraintDDL = []string{
	`DO $$ BEGIN
		ALTER TABLE recipe_ingredients
		ADD CONSTRAINT fk_recipe_ingredients_recipe
		FOREIGN KEY (fk_recipe) REFERENCES recipe(id) ON DELETE CASCADE;
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE recipe_ingredients
		ADD CONSTRAINT fk_recipe_ingredients_ingredient
		FOREIGN KEY (fk_ingredient) REFERENCES ingredient(id);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE recipe_utensils
		ADD CONSTRAINT fk_recipe_utensils_recipe
		FOREIGN KEY (fk_recipe) REFERENCES recipe(id) ON DELETE CASCADE;
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
	`DO $$ BEGIN
		ALTER TABLE recipe_utensils
		ADD CONSTRAINT fk_recipe_utensils_utensil
		FOREIGN KEY (fk_utensil) REFERENCES utensil(id);
	EXCEPTION WHEN duplicate_object THEN NULL; END $$`,
}

// Migrate creates the enum types, the tables, and the junction foreign keys.
// Shared with the test harness so tests run against the same schema.
func Migrate(gdb *gorm.DB) error {
	for _, stmt := range enumDDL {
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("create enum type: %w", err)
		}
	}

	if err := gdb.AutoMigrate(
		&domain.Ingredient{},
		&domain.Utensil{},
		&domain.Recipe{},
		&domain.RecipeIngredient{},
		&domain.RecipeUtensil{},
	); err != nil {
		return fmt.Errorf("automigrate: %w", err)
	}

	for _, stmt := range constraintDDL {
		if err := gdb.Exec(stmt).Error; err != nil {
			return fmt.Errorf("add constraint: %w", err)
		}
	}
	return nil
}
