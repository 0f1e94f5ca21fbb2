package schema

import (
	"gorm.io/gorm"
)

// AllModels returns all schema models for GORM AutoMigrate.
// FNDDS entity tables come first, in loader order, then FPED tables.
func AllModels() []interface{} {
	return []interface{}{
		&DatasetVersion{},
		&Food{},
		&FoodDescription{},
		&FoodPortion{},
		&Subcode{},
		&FoodSubcodeLink{},
		&FoodWeight{},
		&Nutrient{},
		&NutrientValue{},
		&Modification{},
		&ModNutrientValue{},
		&MoistureAdjustment{},
		&Equivalent{},
		&ModEquivalent{},
	}
}

// Migrate runs GORM AutoMigrate to create or update schema.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(AllModels()...)
}
