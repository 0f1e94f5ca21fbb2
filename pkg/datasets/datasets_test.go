package datasets_test

import (
	"testing"

	"github.com/foodsurveys/fsdb/pkg/datasets"
	"github.com/gnames/gn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolve(t *testing.T) {
	tests := []struct {
		msg       string
		id        int
		beginYear int
		endYear   int
		major     int
		minor     int
	}{
		{"first release", 1, 2001, 2002, 1, 0},
		{"second release", 2, 2003, 2004, 2, 0},
		{"first fped release", 4, 2005, 2006, 3, 0},
		{"minor revision", 8, 2007, 2008, 4, 1},
		{"2009-2010", 16, 2009, 2010, 5, 0},
		{"2011-2012", 32, 2011, 2012, 6, 0},
		{"last mod-less fped", 64, 2013, 2014, 7, 0},
		{"last release", 128, 2015, 2016, 8, 0},
	}

	for _, v := range tests {
		res, err := datasets.Resolve(v.id)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.id, res.ID, v.msg)
		assert.Equal(t, v.beginYear, res.BeginYear, v.msg)
		assert.Equal(t, v.endYear, res.EndYear, v.msg)
		assert.Equal(t, v.major, res.Major, v.msg)
		assert.Equal(t, v.minor, res.Minor, v.msg)
	}
}

func TestResolveUnknown(t *testing.T) {
	// Only exact bit-flag codes resolve; sums of flags, zero and
	// negatives do not.
	tests := []struct {
		msg string
		id  int
	}{
		{"zero", 0},
		{"negative", -1},
		{"non-flag", 3},
		{"sum of flags", 12},
		{"above catalog", 256},
	}

	for _, v := range tests {
		_, err := datasets.Resolve(v.id)
		require.Error(t, err, v.msg)

		gnErr, ok := err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.NotEmpty(t, gnErr.Msg, v.msg)
	}
}

func TestAll(t *testing.T) {
	all := datasets.All()
	require.Len(t, all, 8)

	// Ascending bit-flag order.
	for i, v := range all {
		assert.Equal(t, 1<<i, v.ID)
	}

	// The returned slice is a copy; mutating it does not affect
	// the catalog.
	all[0].ID = 999
	fresh := datasets.All()
	assert.Equal(t, 1, fresh[0].ID)
}

func TestEquivSuffix(t *testing.T) {
	tests := []struct {
		msg      string
		id       int
		suffix   string
		eligible bool
	}{
		{"2001-2002 predates fped", 1, "", false},
		{"2003-2004 predates fped", 2, "", false},
		{"2005-2006", 4, "0506", true},
		{"2007-2008", 8, "0708", true},
		{"2009-2010", 16, "0910", true},
		{"2011-2012", 32, "1112", true},
		{"2013-2014", 64, "1314", true},
		{"2015-2016 changed format", 128, "", false},
		{"unknown code", 5, "", false},
	}

	for _, v := range tests {
		suffix, ok := datasets.EquivSuffix(v.id)
		assert.Equal(t, v.eligible, ok, v.msg)
		assert.Equal(t, v.suffix, suffix, v.msg)
		assert.Equal(t, v.eligible, datasets.FPEDEligible(v.id), v.msg)
	}
}

func TestHasModEquiv(t *testing.T) {
	tests := []struct {
		msg string
		id  int
		res bool
	}{
		{"ineligible release", 1, false},
		{"first fped release", 4, true},
		{"2007-2008", 8, true},
		{"2009-2010", 16, true},
		{"2011-2012", 32, true},
		{"2013-2014 dropped the table", 64, false},
		{"ineligible release", 128, false},
	}

	for _, v := range tests {
		assert.Equal(t, v.res, datasets.HasModEquiv(v.id), v.msg)
	}
}

func TestEquivTable(t *testing.T) {
	table, ok := datasets.EquivTable(4)
	require.True(t, ok)
	assert.Equal(t, "FPED_0506", table)

	table, ok = datasets.EquivTable(64)
	require.True(t, ok)
	assert.Equal(t, "FPED_1314", table)

	table, ok = datasets.EquivTable(128)
	assert.False(t, ok)
	assert.Empty(t, table)
}

func TestModEquivTable(t *testing.T) {
	table, ok := datasets.ModEquivTable(4)
	require.True(t, ok)
	assert.Equal(t, "FPED_0506_MOD", table)

	// Eligible for FPED but ships no mod-equivalents table.
	table, ok = datasets.ModEquivTable(64)
	assert.False(t, ok)
	assert.Empty(t, table)

	table, ok = datasets.ModEquivTable(1)
	assert.False(t, ok)
	assert.Empty(t, table)
}
