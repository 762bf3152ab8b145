/*------------------------------------------------------------------------------
* rtksvr_test.go : rtk server unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestInitRtkSvr(t *testing.T) {
	assert := assert.New(t)

	var svr RtkSvr
	assert.Equal(1, svr.InitRtkSvr())

	/* two ephemeris sets, current and previous */
	assert.Equal(MAXSAT*4, len(svr.NavData.Ephs))
	assert.Equal(NSATGLO*2, len(svr.NavData.Geph))
	assert.Equal(-1, svr.NavData.Ephs[0].Iode)
	assert.Equal(-1, svr.NavData.Geph[0].Iode)
	assert.Equal(10.0, svr.BaseLenReset)
	assert.Equal("null", svr.RtkCtrl.Engine.Name())

	svr.FreeRtkSvr()
	assert.Nil(svr.NavData.Ephs)
}

func TestUpdateSvrObs(t *testing.T) {
	assert := assert.New(t)

	var svr RtkSvr
	assert.Equal(1, svr.InitRtkSvr())
	svr.RtkCtrl.Opt.NavSys = SYS_GPS
	g12 := SatNo(SYS_GPS, 12)
	svr.RtkCtrl.Opt.ExSats[g12-1] = 1 /* excluded */

	time := GpsT2Time(2430, 3600.0)
	var obs Obs
	for _, prn := range []int{23, 5, 12} {
		od := ObsD{Time: time, Sat: SatNo(SYS_GPS, prn)}
		obs.AddObsData(&od)
	}
	od := ObsD{Time: time, Sat: SatNo(SYS_GLO, 3)} /* filtered by navsys */
	obs.AddObsData(&od)

	svr.updateSvr(1, &obs, nil, 0, 0, 0, 0, nil)

	epoch := &svr.ObsData[0][0]
	assert.Equal(2, epoch.N())
	/* sorted by satellite number and tagged as rover */
	assert.Equal(SatNo(SYS_GPS, 5), epoch.Data[0].Sat)
	assert.Equal(SatNo(SYS_GPS, 23), epoch.Data[1].Sat)
	assert.Equal(1, epoch.Data[0].Rcv)
	assert.Equal(1, svr.InputMsg[0][0])
}

func TestUpdateSvrEphSets(t *testing.T) {
	assert := assert.New(t)

	var svr RtkSvr
	assert.Equal(1, svr.InitRtkSvr())

	sat := SatNo(SYS_GPS, 7)
	nav := Nav{Ephs: make([]Eph, MAXSAT*2)}
	toe := GpsT2Time(2430, 57600.0)

	nav.Ephs[sat-1] = Eph{Sat: sat, Iode: 10, Toe: toe, Toc: toe,
		Ttr: TimeAdd(toe, -3600.0)}
	svr.updateSvr(2, nil, &nav, sat, 0, 0, 0, nil)
	assert.Equal(10, svr.NavData.Ephs[sat-1].Iode)

	/* newer issue moves the old one to the previous set */
	toe2 := TimeAdd(toe, 7200.0)
	nav.Ephs[sat-1] = Eph{Sat: sat, Iode: 11, Toe: toe2, Toc: toe2,
		Ttr: TimeAdd(toe2, -3600.0)}
	svr.updateSvr(2, nil, &nav, sat, 0, 0, 0, nil)
	assert.Equal(11, svr.NavData.Ephs[sat-1].Iode)
	assert.Equal(10, svr.NavData.Ephs[sat-1+MAXSAT*2].Iode)

	/* repeating the same issue leaves both sets alone */
	svr.updateSvr(2, nil, &nav, sat, 0, 0, 0, nil)
	assert.Equal(11, svr.NavData.Ephs[sat-1].Iode)
	assert.Equal(10, svr.NavData.Ephs[sat-1+MAXSAT*2].Iode)
}

func TestUpdateSvrEphNavSel(t *testing.T) {
	assert := assert.New(t)

	var svr RtkSvr
	assert.Equal(1, svr.InitRtkSvr())
	svr.NavSel = 1 /* rover only */

	sat := SatNo(SYS_GPS, 9)
	nav := Nav{Ephs: make([]Eph, MAXSAT*2)}
	toe := GpsT2Time(2430, 57600.0)
	nav.Ephs[sat-1] = Eph{Sat: sat, Iode: 20, Toe: toe, Toc: toe, Ttr: toe}

	/* base stream rejected */
	svr.updateSvr(2, nil, &nav, sat, 0, 1, 0, nil)
	assert.Equal(-1, svr.NavData.Ephs[sat-1].Iode)

	svr.updateSvr(2, nil, &nav, sat, 0, 0, 0, nil)
	assert.Equal(20, svr.NavData.Ephs[sat-1].Iode)
}

func TestUpdateSvrSbas(t *testing.T) {
	assert := assert.New(t)

	var svr RtkSvr
	assert.Equal(1, svr.InitRtkSvr())

	for i := 0; i < MAXSBSMSG+2; i++ {
		msg := SbsMsg{Week: 2430, Tow: 3600 + i, Prn: 133}
		svr.updateSvr(3, nil, nil, 0, 0, 2, 0, &msg)
	}
	assert.Equal(MAXSBSMSG, svr.NSbs)
	/* ring dropped the oldest messages */
	assert.Equal(3602, svr.SbsMsgs[0].Tow)
	assert.Equal(uint8(3), svr.SbsMsgs[0].Rcv)
}

func TestRtkSvrObsStatStopped(t *testing.T) {
	var svr RtkSvr
	assert.Equal(t, 1, svr.InitRtkSvr())

	var (
		time      Gtime
		sat, vsat [MAXOBS]int
		az, el    [MAXOBS]float64
		snr       [MAXOBS][]int
	)
	for i := range snr {
		snr[i] = make([]int, NFREQ)
	}
	n := svr.RtkSvrObsStat(0, &time, sat[:], vsat[:], az[:], el[:], snr[:])
	assert.Equal(t, 0, n)
}

func TestRtkSvrMarkStopped(t *testing.T) {
	var svr RtkSvr
	assert.Equal(t, 1, svr.InitRtkSvr())
	assert.Equal(t, 0, svr.RtkSvrMark("m1", "test"))
}
