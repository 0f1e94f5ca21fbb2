package ioimport

import (
	"database/sql"

	"github.com/gnames/gnlib"
)

// fnddsLoaders returns the FNDDS loader sequence.
//
// The order is a dependency order, not arbitrary: descriptions,
// portions and subcodes insert the identifiers that weights and
// nutrient values reference later in the same run.
func fnddsLoaders(base tableLoader) []Loader {
	return []Loader{
		newFoodsLoader(base),
		newFoodDescriptionsLoader(base),
		newFoodPortionsLoader(base),
		newSubcodesLoader(base),
		newFoodSubcodeLinksLoader(base),
		newFoodWeightsLoader(base),
		newNutrientsLoader(base),
		newNutrientValuesLoader(base),
		newModificationsLoader(base),
		newModNutrientValuesLoader(base),
		newMoistureAdjustmentsLoader(base),
	}
}

func newFoodsLoader(base tableLoader) Loader {
	l := base
	l.table = "foods"
	l.srcTable = "MainFoodDesc"
	l.srcQuery = `
		SELECT Food_code, Main_food_description, Fortification_id
		FROM MainFoodDesc`
	l.columns = []string{
		"version_id", "food_code", "description", "fortification_id",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code int64
		var desc sql.NullString
		var fort sql.NullInt64
		if err := rows.Scan(&code, &desc, &fort); err != nil {
			return nil, err
		}
		return []any{
			code, gnlib.FixUtf8(desc.String), fort.Int64,
		}, nil
	}
	return &l
}

func newFoodDescriptionsLoader(base tableLoader) Loader {
	l := base
	l.table = "food_descriptions"
	l.srcTable = "AddFoodDesc"
	l.srcQuery = `
		SELECT Food_code, Seq_num, Additional_food_description
		FROM AddFoodDesc`
	l.columns = []string{
		"version_id", "food_code", "seq_num", "description",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code, seq int64
		var desc sql.NullString
		if err := rows.Scan(&code, &seq, &desc); err != nil {
			return nil, err
		}
		return []any{code, seq, gnlib.FixUtf8(desc.String)}, nil
	}
	return &l
}

func newFoodPortionsLoader(base tableLoader) Loader {
	l := base
	l.table = "food_portions"
	l.srcTable = "FoodPortionDesc"
	l.srcQuery = `
		SELECT Portion_code, Portion_description
		FROM FoodPortionDesc`
	l.columns = []string{
		"version_id", "portion_code", "description",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code int64
		var desc sql.NullString
		if err := rows.Scan(&code, &desc); err != nil {
			return nil, err
		}
		return []any{code, gnlib.FixUtf8(desc.String)}, nil
	}
	return &l
}

func newSubcodesLoader(base tableLoader) Loader {
	l := base
	l.table = "subcodes"
	l.srcTable = "SubcodeDesc"
	l.srcQuery = `
		SELECT Subcode, Subcode_description
		FROM SubcodeDesc`
	l.columns = []string{
		"version_id", "code", "description",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code int64
		var desc sql.NullString
		if err := rows.Scan(&code, &desc); err != nil {
			return nil, err
		}
		return []any{code, gnlib.FixUtf8(desc.String)}, nil
	}
	return &l
}

func newFoodSubcodeLinksLoader(base tableLoader) Loader {
	l := base
	l.table = "food_subcode_links"
	l.srcTable = "FoodSubcodeLinks"
	l.srcQuery = `
		SELECT Food_code, Subcode, Seq_num
		FROM FoodSubcodeLinks`
	l.columns = []string{
		"version_id", "food_code", "code", "seq_num",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var food, code, seq int64
		if err := rows.Scan(&food, &code, &seq); err != nil {
			return nil, err
		}
		return []any{food, code, seq}, nil
	}
	return &l
}

func newFoodWeightsLoader(base tableLoader) Loader {
	l := base
	l.table = "food_weights"
	l.srcTable = "FoodWeights"
	l.srcQuery = `
		SELECT Food_code, Subcode, Seq_num, Portion_code, Portion_weight
		FROM FoodWeights`
	l.columns = []string{
		"version_id", "food_code", "code", "seq_num",
		"portion_code", "weight",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var food, seq, portion int64
		var code sql.NullInt64
		var weight sql.NullFloat64
		err := rows.Scan(&food, &code, &seq, &portion, &weight)
		if err != nil {
			return nil, err
		}
		return []any{
			food, code.Int64, seq, portion, weight.Float64,
		}, nil
	}
	return &l
}

func newNutrientsLoader(base tableLoader) Loader {
	l := base
	l.table = "nutrients"
	l.srcTable = "NutDesc"
	l.srcQuery = `
		SELECT Nutrient_code, Nutrient_description, Tagname, Unit, Decimals
		FROM NutDesc`
	l.columns = []string{
		"version_id", "nutrient_code", "description",
		"tagname", "unit", "decimals",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code int64
		var desc, tag, unit sql.NullString
		var decimals sql.NullInt64
		err := rows.Scan(&code, &desc, &tag, &unit, &decimals)
		if err != nil {
			return nil, err
		}
		return []any{
			code, gnlib.FixUtf8(desc.String),
			tag.String, unit.String, decimals.Int64,
		}, nil
	}
	return &l
}

func newNutrientValuesLoader(base tableLoader) Loader {
	l := base
	l.table = "nutrient_values"
	l.srcTable = "FNDDSNutVal"
	l.srcQuery = `
		SELECT Food_code, Nutrient_code, Nutrient_value
		FROM FNDDSNutVal`
	l.columns = []string{
		"version_id", "food_code", "nutrient_code", "value",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var food, nutrient int64
		var value sql.NullFloat64
		if err := rows.Scan(&food, &nutrient, &value); err != nil {
			return nil, err
		}
		return []any{food, nutrient, value.Float64}, nil
	}
	return &l
}

func newModificationsLoader(base tableLoader) Loader {
	l := base
	l.table = "modifications"
	l.srcTable = "ModDesc"
	l.srcQuery = `
		SELECT Modification_code, Modification_description
		FROM ModDesc`
	l.columns = []string{
		"version_id", "code", "description",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code int64
		var desc sql.NullString
		if err := rows.Scan(&code, &desc); err != nil {
			return nil, err
		}
		return []any{code, gnlib.FixUtf8(desc.String)}, nil
	}
	return &l
}

func newModNutrientValuesLoader(base tableLoader) Loader {
	l := base
	l.table = "mod_nutrient_values"
	l.srcTable = "ModNutVal"
	l.srcQuery = `
		SELECT Modification_code, Nutrient_code, Nutrient_value
		FROM ModNutVal`
	l.columns = []string{
		"version_id", "code", "nutrient_code", "value",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code, nutrient int64
		var value sql.NullFloat64
		if err := rows.Scan(&code, &nutrient, &value); err != nil {
			return nil, err
		}
		return []any{code, nutrient, value.Float64}, nil
	}
	return &l
}

func newMoistureAdjustmentsLoader(base tableLoader) Loader {
	l := base
	l.table = "moisture_adjustments"
	l.srcTable = "MoistNFatAdjust"
	l.srcQuery = `
		SELECT Food_code, Moisture_change, Fat_change, Type_of_fat
		FROM MoistNFatAdjust`
	l.columns = []string{
		"version_id", "food_code", "moisture_change",
		"fat_change", "fat_type",
	}
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var food int64
		var moisture, fat sql.NullFloat64
		var fatType sql.NullInt64
		err := rows.Scan(&food, &moisture, &fat, &fatType)
		if err != nil {
			return nil, err
		}
		return []any{
			food, moisture.Float64, fat.Float64, fatType.Int64,
		}, nil
	}
	return &l
}
