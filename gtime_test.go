/*------------------------------------------------------------------------------
* gtime_test.go : time and string functions unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEpochTimeRoundTrip(t *testing.T) {
	assert := assert.New(t)
	eps := [][]float64{
		{1980, 1, 6, 0, 0, 0.0},
		{2004, 2, 29, 12, 34, 56.789},
		{2026, 8, 27, 23, 59, 59.999},
		{2038, 1, 19, 3, 14, 8.0},
	}
	for _, ep := range eps {
		time := Epoch2Time(ep)
		var out [6]float64
		Time2Epoch(time, out[:])
		for i := 0; i < 5; i++ {
			assert.Equal(ep[i], out[i])
		}
		assert.InDelta(ep[5], out[5], 1e-6)
	}
}

func TestGpsTimeRoundTrip(t *testing.T) {
	assert := assert.New(t)

	time := Epoch2Time([]float64{2026, 8, 27, 6, 0, 30.0})
	var week int
	tow := Time2GpsT(time, &week)
	assert.True(week > 2300)
	assert.True(tow >= 0.0 && tow < 604800.0)
	assert.InDelta(0.0, TimeDiff(GpsT2Time(week, tow), time), 1e-9)

	/* week rollover */
	t2 := GpsT2Time(week+1, tow-604800.0)
	assert.InDelta(0.0, TimeDiff(t2, time), 1e-9)
}

func TestTimeAddDiff(t *testing.T) {
	assert := assert.New(t)

	t1 := Epoch2Time([]float64{2026, 1, 1, 0, 0, 0.0})
	t2 := TimeAdd(t1, 86400.5)
	assert.InDelta(86400.5, TimeDiff(t2, t1), 1e-9)
	assert.InDelta(-86400.5, TimeDiff(t1, t2), 1e-9)

	/* fractional second carry */
	t3 := TimeAdd(t1, 0.75)
	t4 := TimeAdd(t3, 0.75)
	assert.InDelta(1.5, TimeDiff(t4, t1), 1e-9)
}

func TestTime2Str(t *testing.T) {
	assert := assert.New(t)

	time := Epoch2Time([]float64{2026, 8, 27, 1, 2, 3.456})
	assert.Equal("2026/08/27 01:02:03.456", Time2Str(time, 3))
	assert.Equal("2026/08/27 01:02:03", Time2Str(time, 0))

	/* rounding at the second boundary */
	time = Epoch2Time([]float64{2026, 8, 27, 1, 2, 59.9999})
	assert.Equal("2026/08/27 01:03:00.00", Time2Str(time, 2))
}

func TestGpsUtcRoundTrip(t *testing.T) {
	assert := assert.New(t)

	gpst := Epoch2Time([]float64{2026, 8, 27, 12, 0, 0.0})
	utc := GpsT2Utc(gpst)

	/* 18 leap seconds since 2017 */
	assert.InDelta(-18.0, TimeDiff(utc, gpst), 1e-9)
	assert.InDelta(0.0, TimeDiff(Utc2GpsT(utc), gpst), 1e-9)
}

func TestDegDmsRoundTrip(t *testing.T) {
	assert := assert.New(t)
	var dms [3]float64

	for _, deg := range []float64{35.678901234, -139.98765, 0.0, 89.999999} {
		Deg2Dms(deg, dms[:], 7)
		assert.InDelta(deg, Dms2Deg(dms[:]), 1e-10)
	}

	/* carry on the second field */
	Deg2Dms(29.9999999999, dms[:], 4)
	assert.Equal(30.0, dms[0])
	assert.Equal(0.0, dms[1])
	assert.Equal(0.0, dms[2])
}

func TestAdjWeek(t *testing.T) {
	assert := assert.New(t)

	/* mid-week tow keeps its week */
	t0 := GpsT2Time(2230, 302400.0)
	assert.InDelta(0.0,
		TimeDiff(AdjWeek(t0, 302500.0), GpsT2Time(2230, 302500.0)), 1e-9)

	/* tow just before the rollover, reference just after: previous week */
	t0 = GpsT2Time(2231, 5.0)
	assert.InDelta(0.0,
		TimeDiff(AdjWeek(t0, 604790.0), GpsT2Time(2230, 604790.0)), 1e-9)

	/* tow just after the rollover, reference just before: next week */
	t0 = GpsT2Time(2230, 604795.0)
	assert.InDelta(0.0,
		TimeDiff(AdjWeek(t0, 5.0), GpsT2Time(2231, 5.0)), 1e-9)
}
