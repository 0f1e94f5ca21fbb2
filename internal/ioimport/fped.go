package ioimport

import (
	"database/sql"
	"fmt"

	"github.com/gnames/gnlib"
)

// patternColumns are the destination columns shared by equivalents
// and mod_equivalents, in source column order.
var patternColumns = []string{
	"grains_total", "grains_whole", "grains_refined",
	"veg_total", "veg_dark_green", "veg_red_orange",
	"veg_starchy", "veg_other",
	"fruit_total", "fruit_juice",
	"dairy_total", "dairy_milk", "dairy_cheese",
	"protein_total", "protein_meat", "protein_seafood",
	"oils", "solid_fats", "added_sugars", "alcoholic_drinks",
}

// patternSrcColumns are the corresponding source columns of the
// versioned FPED tables.
const patternSrcColumns = `G_TOTAL, G_WHOLE, G_REFINED,
		V_TOTAL, V_DRKGR, V_REDOR, V_STARCHY, V_OTHER,
		F_TOTAL, F_JUICE,
		D_TOTAL, D_MILK, D_CHEESE,
		PF_TOTAL, PF_MPS_TOTAL, PF_SEAFD_TOT,
		OILS, SOLID_FATS, ADD_SUGARS, A_DRINKS`

// fpedLoaders returns the FPED loader sequence for one release.
//
// The source table names vary by release, so the orchestrator computes
// them from the version code and passes them in explicitly; loaders
// hold no shared mutable binding. The mod-equivalents loader
// participates only when the release ships its table.
func fpedLoaders(
	base tableLoader,
	equivTable, modEquivTable string,
) []Loader {
	res := []Loader{newEquivalentsLoader(base, equivTable)}
	if modEquivTable != "" {
		res = append(res, newModEquivalentsLoader(base, modEquivTable))
	}
	return res
}

// scanPattern reads the twenty component amounts shared by both
// FPED row shapes.
func scanPattern(rows *sql.Rows, lead ...any) ([]any, error) {
	components := make([]sql.NullFloat64, len(patternColumns))
	dest := make([]any, 0, len(lead)+len(components))
	dest = append(dest, lead...)
	for i := range components {
		dest = append(dest, &components[i])
	}

	if err := rows.Scan(dest...); err != nil {
		return nil, err
	}

	vals := make([]any, len(components))
	for i, c := range components {
		vals[i] = c.Float64
	}
	return vals, nil
}

func newEquivalentsLoader(base tableLoader, srcTable string) Loader {
	l := base
	l.table = "equivalents"
	l.srcTable = srcTable
	l.srcQuery = fmt.Sprintf(`
		SELECT Food_code, Description, %s
		FROM %s`, patternSrcColumns, srcTable)
	l.columns = append(
		[]string{"version_id", "food_code", "description"},
		patternColumns...,
	)
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code int64
		var desc sql.NullString
		vals, err := scanPattern(rows, &code, &desc)
		if err != nil {
			return nil, err
		}
		res := []any{code, gnlib.FixUtf8(desc.String)}
		return append(res, vals...), nil
	}
	return &l
}

func newModEquivalentsLoader(base tableLoader, srcTable string) Loader {
	l := base
	l.table = "mod_equivalents"
	l.srcTable = srcTable
	l.srcQuery = fmt.Sprintf(`
		SELECT Mod_code, Mod_description, %s
		FROM %s`, patternSrcColumns, srcTable)
	l.columns = append(
		[]string{"version_id", "code", "description"},
		patternColumns...,
	)
	l.mapRow = func(rows *sql.Rows) ([]any, error) {
		var code int64
		var desc sql.NullString
		vals, err := scanPattern(rows, &code, &desc)
		if err != nil {
			return nil, err
		}
		res := []any{code, gnlib.FixUtf8(desc.String)}
		return append(res, vals...), nil
	}
	return &l
}
