/*------------------------------------------------------------------------------
* nav_test.go : navigation and observation management unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func navTestObs() *Obs {
	t0 := Epoch2Time([]float64{2026, 8, 27, 1, 2, 0.0})
	t1 := TimeAdd(t0, 1.0)
	t2 := TimeAdd(t0, 2.0)

	obs := &Obs{}
	/* deliberately unsorted, with one duplicate record */
	obs.AddObsData(&ObsD{Time: t1, Sat: 5, Rcv: 1})
	obs.AddObsData(&ObsD{Time: t0, Sat: 7, Rcv: 1})
	obs.AddObsData(&ObsD{Time: t0, Sat: 3, Rcv: 2})
	obs.AddObsData(&ObsD{Time: t0, Sat: 3, Rcv: 1})
	obs.AddObsData(&ObsD{Time: t0, Sat: 3, Rcv: 1})
	obs.AddObsData(&ObsD{Time: t2, Sat: 3, Rcv: 1})
	obs.AddObsData(&ObsD{Time: t1, Sat: 3, Rcv: 1})
	return obs
}

func TestSortObs(t *testing.T) {
	assert := assert.New(t)

	obs := navTestObs()
	assert.Equal(3, obs.SortObs())
	assert.Equal(6, obs.N()) /* duplicate dropped */

	/* first epoch sorted by receiver then satellite */
	assert.Equal(3, obs.Data[0].Sat)
	assert.Equal(1, obs.Data[0].Rcv)
	assert.Equal(7, obs.Data[1].Sat)
	assert.Equal(3, obs.Data[2].Sat)
	assert.Equal(2, obs.Data[2].Rcv)

	/* sorting again is a no-op */
	assert.Equal(3, obs.SortObs())
	assert.Equal(6, obs.N())
}

func TestNextObsF(t *testing.T) {
	assert := assert.New(t)

	obs := navTestObs()
	obs.SortObs()

	i := 0
	n := obs.NextObsF(&i, 1)
	assert.Equal(2, n) /* sats 3 and 7 at the first epoch */
	assert.Equal(0, i)

	i += n
	n = obs.NextObsF(&i, 1)
	assert.Equal(2, n) /* second epoch, rcv 2 record skipped */
	assert.Equal(3, i)

	i += n
	n = obs.NextObsF(&i, 1)
	assert.Equal(1, n)

	i += n
	assert.Equal(0, obs.NextObsF(&i, 1))

	/* base receiver has a single epoch */
	i = 0
	assert.Equal(1, obs.NextObsF(&i, 2))
	assert.Equal(2, i)
}

func TestNextObsB(t *testing.T) {
	assert := assert.New(t)

	obs := navTestObs()
	obs.SortObs()

	i := obs.N() - 1
	n := obs.NextObsB(&i, 1)
	assert.Equal(1, n) /* last epoch */
	assert.Equal(5, i)

	i -= n
	n = obs.NextObsB(&i, 1)
	assert.Equal(2, n)

	i -= n
	n = obs.NextObsB(&i, 1)
	assert.Equal(2, n) /* first epoch, rcv 2 record skipped */

	i -= n
	assert.Equal(0, obs.NextObsB(&i, 1))
}

func TestAddEph(t *testing.T) {
	assert := assert.New(t)

	t0 := Epoch2Time([]float64{2026, 8, 27, 0, 0, 0.0})
	t1 := TimeAdd(t0, 7200.0)

	nav := &Nav{}
	nav.AddEph(&Eph{Sat: 5, Iode: 42, Toe: t0, Toc: t0}, false)
	nav.AddEph(&Eph{Sat: 6, Iode: 20, Toe: t0, Toc: t0}, false)
	assert.Equal(2, nav.N())

	/* new iode for the same satellite is kept alongside the old one */
	nav.AddEph(&Eph{Sat: 5, Iode: 43, Toe: t1, Toc: t1}, false)
	assert.Equal(3, nav.N())
	assert.Equal(42, nav.Ephs[0].Iode)

	/* exact duplicate of (sat,iode,toe,toc) is dropped */
	nav.AddEph(&Eph{Sat: 5, Iode: 42, Toe: t0, Toc: t0}, false)
	assert.Equal(3, nav.N())

	/* keeping all ephemerides appends even the duplicate */
	nav.AddEph(&Eph{Sat: 5, Iode: 42, Toe: t0, Toc: t0}, true)
	assert.Equal(4, nav.N())
}

func TestUniqNav(t *testing.T) {
	assert := assert.New(t)

	t0 := Epoch2Time([]float64{2026, 8, 27, 0, 0, 0.0})
	t1 := TimeAdd(t0, 7200.0)

	nav := &Nav{}
	nav.Ephs = append(nav.Ephs,
		Eph{Sat: 5, Iode: 10, Toe: t0, Ttr: t0},
		Eph{Sat: 5, Iode: 10, Toe: t0, Ttr: t0},
		Eph{Sat: 6, Iode: 20, Toe: t0, Ttr: t0})
	nav.Geph = append(nav.Geph,
		GEph{Sat: 40, Toe: t0, Tof: t0},
		GEph{Sat: 40, Toe: t0, Tof: t1})

	nav.UniqNav()
	assert.Equal(2, nav.N()) /* duplicate iode merged */
	assert.Equal(1, nav.Ng())
}

func TestScreenTime(t *testing.T) {
	assert := assert.New(t)

	ts := Epoch2Time([]float64{2026, 8, 27, 0, 0, 0.0})
	te := TimeAdd(ts, 3600.0)
	var none Gtime

	assert.Equal(1, ScreenTime(TimeAdd(ts, 30.0), ts, te, 0.0))
	assert.Equal(0, ScreenTime(TimeAdd(ts, -1.0), ts, te, 0.0))
	assert.Equal(0, ScreenTime(TimeAdd(te, 1.0), ts, te, 0.0))

	/* interval screening */
	assert.Equal(1, ScreenTime(TimeAdd(ts, 30.0), none, none, 30.0))
	assert.Equal(0, ScreenTime(TimeAdd(ts, 31.0), none, none, 30.0))
}

func TestSatExclude(t *testing.T) {
	assert := assert.New(t)

	sat := SatNo(SYS_GPS, 7)
	opt := &PrcOpt{NavSys: SYS_GPS | SYS_GLO}

	assert.Equal(0, SatExclude(sat, 4.0, 0, opt))
	assert.Equal(1, SatExclude(sat, 4.0, -1, opt)) /* no ephemeris */
	assert.Equal(1, SatExclude(sat, 4.0, 1, opt))  /* unhealthy */
	assert.Equal(1, SatExclude(sat, maxVarEph*2.0, 0, opt))

	opt.ExSats[sat-1] = 1
	assert.Equal(1, SatExclude(sat, 4.0, 0, opt))
	opt.ExSats[sat-1] = 2 /* forced inclusion */
	assert.Equal(0, SatExclude(sat, 4.0, 0, opt))
	opt.ExSats[sat-1] = 0

	gal := SatNo(SYS_GAL, 11)
	assert.Equal(1, SatExclude(gal, 4.0, 0, opt)) /* system unselected */
}

func TestTestSnr(t *testing.T) {
	assert := assert.New(t)

	var mask SnrMask
	mask.Ena[0] = 1
	for i := 0; i < 9; i++ {
		mask.Mask[0][i] = 30.0 + float64(i) /* 30 dBHz at 5 deg up to 38 at 85 */
	}

	assert.Equal(0, TestSnr(0, 0, 45.0*D2R, 40.0, &mask))
	assert.Equal(1, TestSnr(0, 0, 45.0*D2R, 30.0, &mask))

	/* below the first node the lowest mask applies */
	assert.Equal(1, TestSnr(0, 0, 2.0*D2R, 29.0, &mask))
	assert.Equal(0, TestSnr(0, 0, 2.0*D2R, 31.0, &mask))

	/* disabled mask and out of range index never mask */
	assert.Equal(0, TestSnr(1, 0, 45.0*D2R, 10.0, &mask))
	assert.Equal(0, TestSnr(0, NFREQ, 45.0*D2R, 10.0, &mask))
}
