/*------------------------------------------------------------------------------
* sat_test.go : satellite number/id and frequency unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSatNoSatSys(t *testing.T) {
	assert := assert.New(t)
	var prn int

	sat := SatNo(SYS_GPS, 1)
	assert.Equal(1, sat)
	assert.Equal(SYS_GPS, SatSys(sat, &prn))
	assert.Equal(1, prn)

	sat = SatNo(SYS_GLO, 10)
	assert.True(sat > 0)
	assert.Equal(SYS_GLO, SatSys(sat, &prn))
	assert.Equal(10, prn)

	sat = SatNo(SYS_GAL, 11)
	assert.True(sat > 0)
	assert.Equal(SYS_GAL, SatSys(sat, &prn))
	assert.Equal(11, prn)

	sat = SatNo(SYS_QZS, 193)
	assert.True(sat > 0)
	assert.Equal(SYS_QZS, SatSys(sat, &prn))
	assert.Equal(193, prn)

	sat = SatNo(SYS_CMP, 6)
	assert.True(sat > 0)
	assert.Equal(SYS_CMP, SatSys(sat, &prn))
	assert.Equal(6, prn)

	sat = SatNo(SYS_SBS, 120)
	assert.True(sat > 0)
	assert.Equal(SYS_SBS, SatSys(sat, &prn))
	assert.Equal(120, prn)

	/* out of range */
	assert.Equal(0, SatNo(SYS_GPS, 0))
	assert.Equal(0, SatNo(SYS_GPS, MAXPRNGPS+1))
	assert.Equal(0, SatNo(SYS_GLO, NSATGLO+1))
	assert.Equal(SYS_NONE, SatSys(0, &prn))
	assert.Equal(SYS_NONE, SatSys(MAXSAT+1, &prn))
}

func TestSatIdRoundTrip(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SatNo(SYS_GPS, 5), SatId2No("G05"))
	assert.Equal(SatNo(SYS_GLO, 10), SatId2No("R10"))
	assert.Equal("G05", SatNo2Id(SatNo(SYS_GPS, 5)))
	assert.Equal("R10", SatNo2Id(SatNo(SYS_GLO, 10)))

	for _, sat := range []int{
		SatNo(SYS_GPS, 32), SatNo(SYS_GLO, 1), SatNo(SYS_GAL, 36),
		SatNo(SYS_QZS, 195), SatNo(SYS_CMP, 46), SatNo(SYS_IRN, 2),
		SatNo(SYS_SBS, 133),
	} {
		if sat == 0 {
			continue
		}
		assert.Equal(sat, SatId2No(SatNo2Id(sat)))
	}
	assert.Equal(0, SatId2No(""))
	assert.Equal(0, SatId2No("X99"))
}

func TestSat2Freq(t *testing.T) {
	assert := assert.New(t)

	sat := SatNo(SYS_GPS, 5)
	assert.InDelta(FREQ1, Sat2Freq(sat, CODE_L1C, nil), 1.0)
	assert.Equal(0.0, Sat2Freq(sat, CODE_NONE, nil))

	/* glonass fdma needs the channel number from nav */
	var nav Nav
	rsat := SatNo(SYS_GLO, 10)
	assert.Equal(0.0, Sat2Freq(rsat, CODE_L1C, &nav))

	nav.Geph = []GEph{{Sat: rsat, Frq: -4}}
	f := Sat2Freq(rsat, CODE_L1C, &nav)
	assert.InDelta(1.602e9-4*0.5625e6, f, 1.0)
}
