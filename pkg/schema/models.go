// Package schema provides destination database models for fsdb.
// Table shapes follow the published FNDDS and FPED data dictionaries,
// normalized and tagged with a version code so several releases can
// coexist in one database.
package schema

import (
	"time"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// DatasetVersion records that one dataset release was loaded.
// Exactly one row exists per (version_id, family) pair at any time;
// re-importing a release replaces the row with a fresh timestamp.
type DatasetVersion struct {
	// VersionID is the bit-flag version code of the release.
	VersionID int `gorm:"primaryKey" db:"version_id" ddl:"SMALLINT NOT NULL"`

	// Family is the dataset family, "fndds" or "fped".
	Family string `gorm:"primaryKey;size:10" db:"family" ddl:"VARCHAR(10) NOT NULL"`

	// UUID is a deterministic v5 identifier derived from the family
	// and survey years.
	UUID string `db:"uuid" ddl:"UUID DEFAULT '00000000-0000-0000-0000-000000000000'"`

	// BeginYear and EndYear bound the survey cycle of the release.
	BeginYear int `db:"begin_year" ddl:"SMALLINT"`
	EndYear   int `db:"end_year" ddl:"SMALLINT"`

	// MajorRevision and MinorRevision form the USDA revision number.
	MajorRevision int `db:"major_revision" ddl:"SMALLINT"`
	MinorRevision int `db:"minor_revision" ddl:"SMALLINT"`

	// CreatedAt records when this release was last imported.
	CreatedAt time.Time `db:"created_at" ddl:"TIMESTAMP WITHOUT TIME ZONE"`
}

// Food is a main food item of an FNDDS release.
type Food struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// FoodCode is the 8-digit USDA food code.
	FoodCode int `db:"food_code" ddl:"INT NOT NULL"`

	// Description is the main food description.
	Description string `db:"description" ddl:"VARCHAR(255)"`

	// FortificationID marks fortified variants, zero when absent.
	FortificationID int `db:"fortification_id" ddl:"SMALLINT"`
}

// FoodDescription is an additional description of a food item.
type FoodDescription struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// FoodCode references Food.FoodCode within the same release.
	FoodCode int `db:"food_code" ddl:"INT NOT NULL"`

	// SeqNum orders multiple descriptions of one food.
	SeqNum int `db:"seq_num" ddl:"SMALLINT"`

	Description string `db:"description" ddl:"VARCHAR(255)"`
}

// FoodPortion describes a portion size used by food weights.
type FoodPortion struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// PortionCode is the 5-digit USDA portion code.
	PortionCode int `db:"portion_code" ddl:"INT NOT NULL"`

	Description string `db:"description" ddl:"VARCHAR(255)"`
}

// Subcode is a food subcode of an FNDDS release.
type Subcode struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// Code is the 7-digit USDA subcode.
	Code int `db:"code" ddl:"INT NOT NULL"`

	Description string `db:"description" ddl:"VARCHAR(255)"`
}

// FoodSubcodeLink connects a food item with one of its subcodes.
type FoodSubcodeLink struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// FoodCode references Food.FoodCode within the same release.
	FoodCode int `db:"food_code" ddl:"INT NOT NULL"`

	// Code references Subcode.Code within the same release.
	Code int `db:"code" ddl:"INT NOT NULL"`

	SeqNum int `db:"seq_num" ddl:"SMALLINT"`
}

// FoodWeight is the gram weight of one portion of a food item.
type FoodWeight struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	FoodCode int `db:"food_code" ddl:"INT NOT NULL"`

	// Code references Subcode.Code, zero for the default subcode.
	Code int `db:"code" ddl:"INT"`

	SeqNum int `db:"seq_num" ddl:"SMALLINT"`

	// PortionCode references FoodPortion.PortionCode.
	PortionCode int `db:"portion_code" ddl:"INT NOT NULL"`

	// Weight is the portion weight in grams.
	Weight float64 `db:"weight" ddl:"NUMERIC(8,3)"`
}

// Nutrient describes one nutrient tracked by an FNDDS release.
type Nutrient struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// NutrientCode is the USDA nutrient code.
	NutrientCode int `db:"nutrient_code" ddl:"SMALLINT NOT NULL"`

	Description string `db:"description" ddl:"VARCHAR(255)"`

	// Tagname is the INFOODS abbreviation, may be empty.
	Tagname string `db:"tagname" ddl:"VARCHAR(20)"`

	// Unit is the unit of measure, e.g. "G" or "MG".
	Unit string `db:"unit" ddl:"VARCHAR(10)"`

	// Decimals is the number of decimal places published for values.
	Decimals int `db:"decimals" ddl:"SMALLINT"`
}

// NutrientValue is the amount of one nutrient per 100g of a food item.
type NutrientValue struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	FoodCode int `db:"food_code" ddl:"INT NOT NULL"`

	NutrientCode int `db:"nutrient_code" ddl:"SMALLINT NOT NULL"`

	// Value is the nutrient amount per 100g of the food.
	Value float64 `db:"value" ddl:"NUMERIC(12,4)"`
}

// Modification is a food modification of an FNDDS release.
type Modification struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// Code is the 8-digit modification code.
	Code int `db:"code" ddl:"INT NOT NULL"`

	Description string `db:"description" ddl:"VARCHAR(255)"`
}

// ModNutrientValue is the nutrient amount of a modified food.
type ModNutrientValue struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// Code references Modification.Code within the same release.
	Code int `db:"code" ddl:"INT NOT NULL"`

	NutrientCode int `db:"nutrient_code" ddl:"SMALLINT NOT NULL"`

	Value float64 `db:"value" ddl:"NUMERIC(12,4)"`
}

// MoistureAdjustment holds moisture and fat changes applied during
// food preparation.
type MoistureAdjustment struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	FoodCode int `db:"food_code" ddl:"INT NOT NULL"`

	// MoistureChange is the percent moisture change on preparation.
	MoistureChange float64 `db:"moisture_change" ddl:"NUMERIC(6,2)"`

	// FatChange is the percent fat change on preparation.
	FatChange float64 `db:"fat_change" ddl:"NUMERIC(6,2)"`

	// FatType references the food code of the fat used, zero if none.
	FatType int `db:"fat_type" ddl:"INT"`
}

// PatternComponents are the food-pattern component amounts per 100g
// shared by equivalents and modification-equivalents rows.
type PatternComponents struct {
	GrainsTotal   float64 `db:"grains_total" ddl:"NUMERIC(8,3)"`
	GrainsWhole   float64 `db:"grains_whole" ddl:"NUMERIC(8,3)"`
	GrainsRefined float64 `db:"grains_refined" ddl:"NUMERIC(8,3)"`

	VegTotal     float64 `db:"veg_total" ddl:"NUMERIC(8,3)"`
	VegDarkGreen float64 `db:"veg_dark_green" ddl:"NUMERIC(8,3)"`
	VegRedOrange float64 `db:"veg_red_orange" ddl:"NUMERIC(8,3)"`
	VegStarchy   float64 `db:"veg_starchy" ddl:"NUMERIC(8,3)"`
	VegOther     float64 `db:"veg_other" ddl:"NUMERIC(8,3)"`

	FruitTotal float64 `db:"fruit_total" ddl:"NUMERIC(8,3)"`
	FruitJuice float64 `db:"fruit_juice" ddl:"NUMERIC(8,3)"`

	DairyTotal  float64 `db:"dairy_total" ddl:"NUMERIC(8,3)"`
	DairyMilk   float64 `db:"dairy_milk" ddl:"NUMERIC(8,3)"`
	DairyCheese float64 `db:"dairy_cheese" ddl:"NUMERIC(8,3)"`

	ProteinTotal   float64 `db:"protein_total" ddl:"NUMERIC(8,3)"`
	ProteinMeat    float64 `db:"protein_meat" ddl:"NUMERIC(8,3)"`
	ProteinSeafood float64 `db:"protein_seafood" ddl:"NUMERIC(8,3)"`

	Oils            float64 `db:"oils" ddl:"NUMERIC(8,3)"`
	SolidFats       float64 `db:"solid_fats" ddl:"NUMERIC(8,3)"`
	AddedSugars     float64 `db:"added_sugars" ddl:"NUMERIC(8,3)"`
	AlcoholicDrinks float64 `db:"alcoholic_drinks" ddl:"NUMERIC(8,3)"`
}

// Equivalent is one FPED food-pattern equivalents row.
type Equivalent struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	FoodCode int `db:"food_code" ddl:"INT NOT NULL"`

	Description string `db:"description" ddl:"VARCHAR(255)"`

	PatternComponents `gorm:"embedded"`
}

// ModEquivalent is one FPED modification-equivalents row.
// Releases from 2013-2014 on no longer ship this table.
type ModEquivalent struct {
	VersionID int `db:"version_id" ddl:"SMALLINT NOT NULL"`

	// Code references an FNDDS modification code.
	Code int `db:"code" ddl:"INT NOT NULL"`

	Description string `db:"description" ddl:"VARCHAR(255)"`

	PatternComponents `gorm:"embedded"`
}
