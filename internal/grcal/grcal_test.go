package grcal

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMonthPattern_SumsToYear(t *testing.T) {
	// The eleven fixed months plus February must account for a whole
	// year in both leap and common years.
	sum := int32(0)
	variable := 0
	for i := int32(0); i < 12; i++ {
		ml := monthLength(i)
		if ml == 0 {
			variable++
			continue
		}
		sum += ml
	}
	assert.Equal(t, 1, variable, "exactly one variable-length month")
	assert.Equal(t, int32(337), sum, "fixed months sum")
	assert.Equal(t, int32(365), sum+nonLeapFebDays)
	assert.Equal(t, int32(366), sum+leapFebDays)
}

func TestIsLeapYear(t *testing.T) {
	tests := []struct {
		year int32
		leap bool
	}{
		{1600, true},
		{1700, false},
		{1800, false},
		{1900, false},
		{2000, true},
		{2023, false},
		{2024, true},
		{4, true},
		{100, false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.leap, IsLeapYear(tt.year), "year %d", tt.year)
	}
}

func TestIsLeapYear_ContractFault(t *testing.T) {
	assert.Panics(t, func() { IsLeapYear(0) })
	assert.Panics(t, func() { IsLeapYear(-400) })
}

func TestOffsetToDate_Boundaries(t *testing.T) {
	y, m, d := OffsetToDate(DayMin)
	assert.Equal(t, [3]int32{1582, 10, 15}, [3]int32{y, m, d}, "first supported day")

	y, m, d = OffsetToDate(DayMax)
	assert.Equal(t, [3]int32{9999, 12, 31}, [3]int32{y, m, d}, "last supported day")
}

func TestOffsetToDate_KnownDates(t *testing.T) {
	tests := []struct {
		offs  int32
		year  int32
		month int32
		day   int32
	}{
		{264773, 1925, 2, 2}, // NELSC epoch alignment day
		{139756, 1582, 10, 21},
		{292193, 2000, 2, 29}, // leap day ending a 400-year cycle
	}
	for _, tt := range tests {
		y, m, d := OffsetToDate(tt.offs)
		assert.Equal(t, [3]int32{tt.year, tt.month, tt.day},
			[3]int32{y, m, d}, "offset %d", tt.offs)
	}
}

func TestOffsetToDate_ContractFault(t *testing.T) {
	assert.Panics(t, func() { OffsetToDate(DayMin - 1) })
	assert.Panics(t, func() { OffsetToDate(DayMax + 1) })
}

func TestDateToOffset_LeapDayValidation(t *testing.T) {
	// 1700 is not a leap year; 1600 is.
	_, err := DateToOffset(1700, 2, 29)
	require.Error(t, err)
	var derr *DateError
	require.ErrorAs(t, err, &derr)
	assert.Equal(t, "day exceeds month length", derr.Reason)

	_, err = DateToOffset(1600, 2, 29)
	assert.NoError(t, err)
}

func TestDateToOffset_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		year  int32
		month int32
		day   int32
	}{
		{"year at base", 1200, 6, 1},
		{"year below base", 1199, 6, 1},
		{"year above max", 10000, 1, 1},
		{"month zero", 2000, 0, 1},
		{"month thirteen", 2000, 13, 1},
		{"day zero", 2000, 1, 0},
		{"day 32 in January", 2000, 1, 32},
		{"day 31 in April", 2000, 4, 31},
		{"before Gregorian adoption", 1582, 10, 14},
		{"in-range year, offset below range", 1300, 1, 1},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DateToOffset(tt.year, tt.month, tt.day)
			assert.Error(t, err)
		})
	}
}

func TestDateToOffset_Boundaries(t *testing.T) {
	offs, err := DateToOffset(1582, 10, 15)
	require.NoError(t, err)
	assert.Equal(t, int32(DayMin), offs)

	offs, err = DateToOffset(9999, 12, 31)
	require.NoError(t, err)
	assert.Equal(t, int32(DayMax), offs)
}

func TestRoundTrip_SampledOffsets(t *testing.T) {
	// Stepping by a prime visits every day-of-week, month and year
	// phase across the full range.
	for offs := int32(DayMin); offs <= DayMax; offs += 89 {
		y, m, d := OffsetToDate(offs)
		back, err := DateToOffset(y, m, d)
		require.NoError(t, err, "offset %d -> %04d-%02d-%02d", offs, y, m, d)
		require.Equal(t, offs, back, "offset %d", offs)
	}
}

func TestRoundTrip_DenseAroundCycleBoundaries(t *testing.T) {
	// Exercise every day near the quad-century and quad-year leap-day
	// special cases.
	starts := []int32{
		292193 - 800, // around 2000-02-29 (400-year cycle end)
		284888 - 800, // around 1980-02-29 (quad-year leap day)
		DayMin,
		DayMax - 1600,
	}
	for _, start := range starts {
		for offs := start; offs < start+1600 && offs <= DayMax; offs++ {
			y, m, d := OffsetToDate(offs)
			back, err := DateToOffset(y, m, d)
			require.NoError(t, err, "offset %d", offs)
			require.Equal(t, offs, back, "offset %d", offs)
		}
	}
}

func TestOffsetToDate_Monotonic(t *testing.T) {
	py, pm, pd := OffsetToDate(DayMin)
	for offs := int32(DayMin + 1); offs <= DayMax; offs += 37 {
		y, m, d := OffsetToDate(offs)
		after := y > py || (y == py && (m > pm || (m == pm && d > pd)))
		require.True(t, after, "offset %d: %04d-%02d-%02d not after %04d-%02d-%02d",
			offs, y, m, d, py, pm, pd)
		py, pm, pd = y, m, d
	}
}
