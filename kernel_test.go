/*------------------------------------------------------------------------------
* kernel_test.go : positioning engine interface unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

/* fixed position engine for tests */
type fixedEngine struct {
	rr [3]float64
}

func (*fixedEngine) Name() string { return "fixed" }

func (e *fixedEngine) Estimate(rtk *RtkCtrl, obs []ObsD, nav *Nav) int {
	if len(obs) == 0 {
		return 0
	}
	rtk.RtkSol.Time = obs[0].Time
	for i := 0; i < 3; i++ {
		rtk.RtkSol.Rr[i] = e.rr[i]
	}
	rtk.RtkSol.Stat = SOLQ_FIX
	rtk.RtkSol.Ns = uint8(len(obs))
	return 1
}

func testObsEpoch(time Gtime, prns []int, rcv int) []ObsD {
	var obs []ObsD
	for _, prn := range prns {
		od := ObsD{Time: time, Sat: SatNo(SYS_GPS, prn), Rcv: rcv}
		od.SNR[0] = snRatio(42.0)
		obs = append(obs, od)
	}
	return obs
}

func TestInitRtk(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultProcOpt()
	opt.Rb = [3]float64{1.0, 2.0, 3.0}
	var rtk RtkCtrl
	rtk.InitRtk(&opt)

	assert.Equal(float32(opt.ThresAr[0]), rtk.RtkSol.Thres)
	assert.Equal(opt.Rb[0], rtk.Rb[0])
	assert.Equal(opt.Rb[2], rtk.Rb[2])
	assert.Equal("null", rtk.Engine.Name())
	assert.Equal(uint32(1000000), rtk.Ssat[0].Outc[0])
}

func TestNullEngine(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultProcOpt()
	var rtk RtkCtrl
	rtk.InitRtk(&opt)

	var nav Nav
	time := Epoch2Time([]float64{2026, 8, 27, 0, 0, 0.0})
	obs := testObsEpoch(time, []int{5, 12}, 1)
	obs = append(obs, testObsEpoch(time, []int{5}, 2)...)

	assert.Equal(0, rtk.RtkPos(obs, &nav))
	assert.Equal(uint8(SOLQ_NONE), rtk.RtkSol.Stat)
	assert.Equal(uint8(2), rtk.RtkSol.Ns) /* base obs not counted */
	assert.InDelta(0.0, TimeDiff(rtk.RtkSol.Time, time), 1e-9)

	g05 := SatNo(SYS_GPS, 5)
	g12 := SatNo(SYS_GPS, 12)
	assert.Equal(uint8(1), rtk.Ssat[g05-1].Vs)
	assert.Equal(uint8(1), rtk.Ssat[g12-1].Vs)
	assert.Equal(snRatio(42.0), rtk.Ssat[g05-1].Snr[0])
	assert.Equal(uint32(0), rtk.Ssat[g05-1].Outc[0])

	/* unobserved satellites keep counting outage */
	g07 := SatNo(SYS_GPS, 7)
	assert.Equal(uint32(1000001), rtk.Ssat[g07-1].Outc[0])
}

func TestEngineEstimate(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultProcOpt()
	var rtk RtkCtrl
	rtk.InitRtk(&opt)
	rtk.Engine = &fixedEngine{rr: [3]float64{-3978241.0, 3382840.0, 3649900.0}}

	var nav Nav
	t1 := Epoch2Time([]float64{2026, 8, 27, 0, 0, 0.0})
	assert.Equal(1, rtk.RtkPos(testObsEpoch(t1, []int{5, 12, 23}, 1), &nav))
	assert.Equal(uint8(SOLQ_FIX), rtk.RtkSol.Stat)
	assert.Equal(uint8(3), rtk.RtkSol.Ns)

	/* tt reflects the epoch interval */
	t2 := TimeAdd(t1, 1.0)
	assert.Equal(1, rtk.RtkPos(testObsEpoch(t2, []int{5, 12, 23}, 1), &nav))
	assert.InDelta(1.0, rtk.Tt, 1e-9)
}

func TestBaseLineLen(t *testing.T) {
	assert := assert.New(t)

	var rtk RtkCtrl
	assert.Equal(0.0, rtk.BaseLineLen())

	rtk.Rb = [6]float64{-3978241.0, 3382840.0, 3649900.0}
	rtk.RtkSol.Rr = [6]float64{-3978238.0, 3382844.0, 3649900.0}
	assert.InDelta(5.0, rtk.BaseLineLen(), 1e-9)
}

func TestRtkOutStatRoundTrip(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultProcOpt()
	opt.Nf = 1
	var rtk RtkCtrl
	rtk.InitRtk(&opt)

	rtk.RtkSol.Time = GpsT2Time(2430, 172800.0)
	rtk.RtkSol.Rr = [6]float64{-3978241.0, 3382840.0, 3649900.0, 0.0, 0.0, 0.0}
	rtk.RtkSol.Stat = SOLQ_SINGLE
	rtk.RtkSol.Dtr[0] = 1.5e-7

	g05 := SatNo(SYS_GPS, 5)
	rtk.Ssat[g05-1].Vs = 1
	rtk.Ssat[g05-1].Azel = [2]float64{120.0 * D2R, 60.0 * D2R}
	rtk.Ssat[g05-1].Vsat[0] = 1
	rtk.Ssat[g05-1].Snr[0] = snRatio(45.0)
	rtk.Ssat[g05-1].Lock[0] = 12
	rtk.Ssat[g05-1].Outc[0] = 0

	var buff string
	assert.True(rtk.RtkOutStat(&buff) > 0)
	assert.True(strings.HasPrefix(buff, "$POS"))
	assert.True(strings.Contains(buff, "$SAT"))

	var statbuf SolStatBuf
	var t0 Gtime
	assert.Equal(1, ReadSolStatData(strings.NewReader(buff), t0, t0, &statbuf))
	assert.Equal(1, len(statbuf.Data))

	stat := statbuf.Data[0]
	assert.Equal(uint8(g05), stat.Sat)
	assert.Equal(uint8(1), stat.Frq)
	assert.InDelta(120.0*D2R, float64(stat.Az), 1e-2)
	assert.InDelta(60.0*D2R, float64(stat.El), 1e-2)
	assert.Equal(snRatio(45.0), stat.Snr)
	assert.Equal(uint16(12), stat.Lock)
	assert.InDelta(0.0, TimeDiff(stat.Time, rtk.RtkSol.Time), 1e-3)
}

func TestRtkOutStatNoSolution(t *testing.T) {
	var rtk RtkCtrl
	opt := DefaultProcOpt()
	rtk.InitRtk(&opt)

	var buff string
	assert.Equal(t, 0, rtk.RtkOutStat(&buff))
}
