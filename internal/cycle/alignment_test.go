package cycle_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/lunisolar/nelsc/internal/cycle"
	"github.com/lunisolar/nelsc/internal/grcal"
)

// alignmentFixture mirrors testdata/alignment.yaml.
type alignmentFixture struct {
	Equivalences []struct {
		Name        string `yaml:"name"`
		NelscDay    int32  `yaml:"nelsc_day"`
		NelscMonth  int32  `yaml:"nelsc_month"`
		Year        int32  `yaml:"year"`
		MonthOfYear int32  `yaml:"month_of_year"`
		DayOfMonth  int32  `yaml:"day_of_month"`
		Gregorian   string `yaml:"gregorian"`
	} `yaml:"equivalences"`
}

func loadAlignmentFixture(t *testing.T) alignmentFixture {
	t.Helper()

	raw, err := os.ReadFile(filepath.Join("testdata", "alignment.yaml"))
	require.NoError(t, err)

	var fx alignmentFixture
	require.NoError(t, yaml.Unmarshal(raw, &fx))
	require.NotEmpty(t, fx.Equivalences)
	return fx
}

func TestAlignment_Fixture(t *testing.T) {
	fx := loadAlignmentFixture(t)

	for _, eq := range fx.Equivalences {
		t.Run(eq.Name, func(t *testing.T) {
			m, dom := cycle.DayToMonth(eq.NelscDay)
			assert.Equal(t, eq.NelscMonth, m)
			assert.Equal(t, eq.DayOfMonth, dom)

			y, moy := cycle.MonthToYear(m)
			assert.Equal(t, eq.Year, y)
			assert.Equal(t, eq.MonthOfYear, moy)

			// Through the alignment constant into the Gregorian engine
			// and back.
			gy, gm, gd := grcal.OffsetToDate(eq.NelscDay + cycle.GregorianOffset)
			assert.Equal(t, eq.Gregorian, grcal.FormatDate(gy, gm, gd))

			offs, rest, err := grcal.ParseDate(eq.Gregorian)
			require.NoError(t, err)
			require.Empty(t, rest)
			assert.Equal(t, eq.NelscDay, offs-cycle.GregorianOffset)
		})
	}
}

func TestAlignment_EpochConstant(t *testing.T) {
	// NELSC day zero is Gregorian day 264773, which must decode to the
	// documented epoch date.
	y, m, d := grcal.OffsetToDate(cycle.GregorianOffset)
	assert.Equal(t, [3]int32{1925, 2, 2}, [3]int32{y, m, d})
}

func TestAlignment_RangeEndsInsideGregorian(t *testing.T) {
	// Both NELSC range ends must translate to valid Gregorian offsets,
	// or the date command's fallback parsing could never cover them.
	assert.GreaterOrEqual(t, int32(cycle.DayMin+cycle.GregorianOffset), int32(grcal.DayMin))
	assert.LessOrEqual(t, int32(cycle.DayMax+cycle.GregorianOffset), int32(grcal.DayMax))
}
