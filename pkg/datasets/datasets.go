// Package datasets describes the catalog of USDA food-survey dataset
// releases supported by fsdb.
//
// Both dataset families (FNDDS and FPED) are published biennially.
// Releases are identified by bit-flag version codes so that downstream
// tools can combine several releases into one mask. The catalog is a
// fixed in-code table: new USDA releases require a code change, not a
// runtime configuration.
package datasets

// Family names one of the two dataset families handled by fsdb.
type Family string

const (
	// FNDDS is the Food and Nutrient Database for Dietary Studies.
	FNDDS Family = "fndds"
	// FPED is the Food Patterns Equivalents Database.
	FPED Family = "fped"
)

// Version describes one biennial dataset release.
// Values are immutable after resolution.
type Version struct {
	// ID is the bit-flag version code (1, 2, 4, ... 128).
	ID int

	// BeginYear and EndYear bound the survey cycle covered by
	// the release.
	BeginYear int
	EndYear   int

	// Major and Minor form the USDA revision number of the release.
	Major int
	Minor int
}

// catalog holds every supported release in ascending code order.
var catalog = []Version{
	{ID: 1, BeginYear: 2001, EndYear: 2002, Major: 1, Minor: 0},
	{ID: 2, BeginYear: 2003, EndYear: 2004, Major: 2, Minor: 0},
	{ID: 4, BeginYear: 2005, EndYear: 2006, Major: 3, Minor: 0},
	{ID: 8, BeginYear: 2007, EndYear: 2008, Major: 4, Minor: 1},
	{ID: 16, BeginYear: 2009, EndYear: 2010, Major: 5, Minor: 0},
	{ID: 32, BeginYear: 2011, EndYear: 2012, Major: 6, Minor: 0},
	{ID: 64, BeginYear: 2013, EndYear: 2014, Major: 7, Minor: 0},
	{ID: 128, BeginYear: 2015, EndYear: 2016, Major: 8, Minor: 0},
}

// equivSuffixes maps version codes to the suffix of the FPED source
// tables for that release. Codes outside the map are not eligible for
// FPED imports: the 2001-2004 cycles predate FPED, and the 2015-2016
// cycle changed the distribution format.
var equivSuffixes = map[int]string{
	4:  "0506",
	8:  "0708",
	16: "0910",
	32: "1112",
	64: "1314",
}

// Resolve looks up a release by its version code.
// The lookup is exact-match, unknown codes return an error.
func Resolve(id int) (Version, error) {
	for _, v := range catalog {
		if v.ID == id {
			return v, nil
		}
	}
	return Version{}, UnknownVersion(id)
}

// All returns the catalog in ascending version-code order.
func All() []Version {
	res := make([]Version, len(catalog))
	copy(res, catalog)
	return res
}

// EquivSuffix returns the FPED source-table suffix for a version code.
// The second value is false when the code is not eligible for FPED.
func EquivSuffix(id int) (string, bool) {
	s, ok := equivSuffixes[id]
	return s, ok
}

// FPEDEligible reports whether a version code has FPED source tables.
func FPEDEligible(id int) bool {
	_, ok := equivSuffixes[id]
	return ok
}

// HasModEquiv reports whether the release ships the companion
// modification-equivalents table. Releases from 2013-2014 on
// dropped it.
func HasModEquiv(id int) bool {
	return FPEDEligible(id) && id < 64
}

// EquivTable returns the version-specific name of the FPED
// equivalents source table, e.g. "FPED_0506" for code 4.
// The second value is false when the code is not eligible.
func EquivTable(id int) (string, bool) {
	s, ok := equivSuffixes[id]
	if !ok {
		return "", false
	}
	return "FPED_" + s, true
}

// ModEquivTable returns the version-specific name of the FPED
// modification-equivalents source table, e.g. "FPED_0506_MOD".
// The second value is false when the release does not ship it.
func ModEquivTable(id int) (string, bool) {
	if !HasModEquiv(id) {
		return "", false
	}
	s := equivSuffixes[id]
	return "FPED_" + s + "_MOD", true
}
