package schema

import (
	"fmt"
	"reflect"
	"strings"
)

// generateDDL creates a CREATE TABLE statement from struct tags.
// Anonymous embedded structs (PatternComponents) are flattened.
func generateDDL(model interface{}, tableName string) string {
	columns := columnDefs(reflect.TypeOf(model))

	ddl := fmt.Sprintf("CREATE TABLE %s (\n%s\n);",
		tableName,
		strings.Join(columns, ",\n"))

	return ddl
}

func columnDefs(t reflect.Type) []string {
	if t.Kind() == reflect.Ptr {
		t = t.Elem()
	}

	var columns []string
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		if field.Anonymous && field.Type.Kind() == reflect.Struct {
			columns = append(columns, columnDefs(field.Type)...)
			continue
		}

		dbTag := field.Tag.Get("db")
		ddlTag := field.Tag.Get("ddl")
		if dbTag != "" && ddlTag != "" {
			columns = append(columns, fmt.Sprintf("    %s %s", dbTag, ddlTag))
		}
	}
	return columns
}

// DatasetVersion DDL methods
func (dv DatasetVersion) TableDDL() string {
	return generateDDL(dv, "dataset_versions")
}

func (dv DatasetVersion) IndexDDL() []string {
	return []string{
		"CREATE UNIQUE INDEX idx_dataset_versions_version_family " +
			"ON dataset_versions(version_id, family);",
	}
}

func (dv DatasetVersion) TableName() string {
	return "dataset_versions"
}

// Food DDL methods
func (f Food) TableDDL() string {
	return generateDDL(f, "foods")
}

func (f Food) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_foods_version ON foods(version_id);",
		"CREATE INDEX idx_foods_food_code ON foods(food_code);",
	}
}

func (f Food) TableName() string {
	return "foods"
}

// FoodDescription DDL methods
func (fd FoodDescription) TableDDL() string {
	return generateDDL(fd, "food_descriptions")
}

func (fd FoodDescription) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_food_descriptions_food_code " +
			"ON food_descriptions(food_code);",
	}
}

func (fd FoodDescription) TableName() string {
	return "food_descriptions"
}

// FoodPortion DDL methods
func (fp FoodPortion) TableDDL() string {
	return generateDDL(fp, "food_portions")
}

func (fp FoodPortion) IndexDDL() []string {
	return []string{}
}

func (fp FoodPortion) TableName() string {
	return "food_portions"
}

// Subcode DDL methods
func (s Subcode) TableDDL() string {
	return generateDDL(s, "subcodes")
}

func (s Subcode) IndexDDL() []string {
	return []string{}
}

func (s Subcode) TableName() string {
	return "subcodes"
}

// FoodSubcodeLink DDL methods
func (fs FoodSubcodeLink) TableDDL() string {
	return generateDDL(fs, "food_subcode_links")
}

func (fs FoodSubcodeLink) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_food_subcode_links_food_code " +
			"ON food_subcode_links(food_code);",
	}
}

func (fs FoodSubcodeLink) TableName() string {
	return "food_subcode_links"
}

// FoodWeight DDL methods
func (fw FoodWeight) TableDDL() string {
	return generateDDL(fw, "food_weights")
}

func (fw FoodWeight) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_food_weights_food_code ON food_weights(food_code);",
	}
}

func (fw FoodWeight) TableName() string {
	return "food_weights"
}

// Nutrient DDL methods
func (n Nutrient) TableDDL() string {
	return generateDDL(n, "nutrients")
}

func (n Nutrient) IndexDDL() []string {
	return []string{}
}

func (n Nutrient) TableName() string {
	return "nutrients"
}

// NutrientValue DDL methods
func (nv NutrientValue) TableDDL() string {
	return generateDDL(nv, "nutrient_values")
}

func (nv NutrientValue) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_nutrient_values_food_code " +
			"ON nutrient_values(food_code);",
		"CREATE INDEX idx_nutrient_values_nutrient_code " +
			"ON nutrient_values(nutrient_code);",
	}
}

func (nv NutrientValue) TableName() string {
	return "nutrient_values"
}

// Modification DDL methods
func (m Modification) TableDDL() string {
	return generateDDL(m, "modifications")
}

func (m Modification) IndexDDL() []string {
	return []string{}
}

func (m Modification) TableName() string {
	return "modifications"
}

// ModNutrientValue DDL methods
func (mn ModNutrientValue) TableDDL() string {
	return generateDDL(mn, "mod_nutrient_values")
}

func (mn ModNutrientValue) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_mod_nutrient_values_code " +
			"ON mod_nutrient_values(code);",
	}
}

func (mn ModNutrientValue) TableName() string {
	return "mod_nutrient_values"
}

// MoistureAdjustment DDL methods
func (ma MoistureAdjustment) TableDDL() string {
	return generateDDL(ma, "moisture_adjustments")
}

func (ma MoistureAdjustment) IndexDDL() []string {
	return []string{}
}

func (ma MoistureAdjustment) TableName() string {
	return "moisture_adjustments"
}

// Equivalent DDL methods
func (e Equivalent) TableDDL() string {
	return generateDDL(e, "equivalents")
}

func (e Equivalent) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_equivalents_version ON equivalents(version_id);",
		"CREATE INDEX idx_equivalents_food_code ON equivalents(food_code);",
	}
}

func (e Equivalent) TableName() string {
	return "equivalents"
}

// ModEquivalent DDL methods
func (me ModEquivalent) TableDDL() string {
	return generateDDL(me, "mod_equivalents")
}

func (me ModEquivalent) IndexDDL() []string {
	return []string{
		"CREATE INDEX idx_mod_equivalents_version " +
			"ON mod_equivalents(version_id);",
	}
}

func (me ModEquivalent) TableName() string {
	return "mod_equivalents"
}
