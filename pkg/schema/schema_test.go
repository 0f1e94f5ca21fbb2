package schema_test

import (
	"strings"
	"testing"

	"github.com/foodsurveys/fsdb/pkg/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAllModels(t *testing.T) {
	models := schema.AllModels()
	require.Len(t, models, 14)

	names := make([]string, len(models))
	for i, m := range models {
		gen, ok := m.(schema.DDLGenerator)
		require.True(t, ok, "model %d implements DDLGenerator", i)
		names[i] = gen.TableName()
	}

	assert.Equal(t, []string{
		"dataset_versions",
		"foods",
		"food_descriptions",
		"food_portions",
		"subcodes",
		"food_subcode_links",
		"food_weights",
		"nutrients",
		"nutrient_values",
		"modifications",
		"mod_nutrient_values",
		"moisture_adjustments",
		"equivalents",
		"mod_equivalents",
	}, names)
}

func TestTableDDL(t *testing.T) {
	tests := []struct {
		msg     string
		model   schema.DDLGenerator
		table   string
		columns []string
	}{
		{
			msg:   "dataset_versions",
			model: schema.DatasetVersion{},
			table: "dataset_versions",
			columns: []string{
				"version_id SMALLINT NOT NULL",
				"family VARCHAR(10) NOT NULL",
				"uuid UUID",
				"begin_year SMALLINT",
				"end_year SMALLINT",
				"major_revision SMALLINT",
				"minor_revision SMALLINT",
				"created_at TIMESTAMP WITHOUT TIME ZONE",
			},
		},
		{
			msg:   "foods",
			model: schema.Food{},
			table: "foods",
			columns: []string{
				"version_id SMALLINT NOT NULL",
				"food_code INT NOT NULL",
				"description VARCHAR(255)",
				"fortification_id SMALLINT",
			},
		},
		{
			msg:   "nutrient_values",
			model: schema.NutrientValue{},
			table: "nutrient_values",
			columns: []string{
				"version_id SMALLINT NOT NULL",
				"food_code INT NOT NULL",
				"nutrient_code SMALLINT NOT NULL",
				"value NUMERIC(12,4)",
			},
		},
	}

	for _, v := range tests {
		ddl := v.model.TableDDL()
		assert.True(t,
			strings.HasPrefix(ddl, "CREATE TABLE "+v.table+" ("),
			v.msg)
		for _, col := range v.columns {
			assert.Contains(t, ddl, col, v.msg)
		}
	}
}

// Embedded PatternComponents must flatten into the DDL of both
// FPED tables.
func TestPatternDDL(t *testing.T) {
	components := []string{
		"grains_total", "grains_whole", "grains_refined",
		"veg_total", "veg_dark_green", "veg_red_orange",
		"veg_starchy", "veg_other",
		"fruit_total", "fruit_juice",
		"dairy_total", "dairy_milk", "dairy_cheese",
		"protein_total", "protein_meat", "protein_seafood",
		"oils", "solid_fats", "added_sugars", "alcoholic_drinks",
	}

	for _, model := range []schema.DDLGenerator{
		schema.Equivalent{}, schema.ModEquivalent{},
	} {
		ddl := model.TableDDL()
		for _, col := range components {
			assert.Contains(t, ddl, col+" NUMERIC(8,3)", model.TableName())
		}
	}
}

func TestIndexDDL(t *testing.T) {
	tests := []struct {
		msg     string
		model   schema.DDLGenerator
		indexes int
	}{
		{"dataset_versions", schema.DatasetVersion{}, 1},
		{"foods", schema.Food{}, 2},
		{"food_portions", schema.FoodPortion{}, 0},
		{"nutrient_values", schema.NutrientValue{}, 2},
		{"equivalents", schema.Equivalent{}, 2},
		{"mod_equivalents", schema.ModEquivalent{}, 1},
	}

	for _, v := range tests {
		indexes := v.model.IndexDDL()
		assert.Len(t, indexes, v.indexes, v.msg)
		for _, idx := range indexes {
			assert.Contains(t, idx, "CREATE", v.msg)
			assert.Contains(t, idx, v.model.TableName(), v.msg)
		}
	}
}
