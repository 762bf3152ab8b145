/*------------------------------------------------------------------------------
* streamsvr_test.go : stream server and converter unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewStreamConv(t *testing.T) {
	assert := assert.New(t)

	conv := NewStreamConv(STRFMT_UBX, STRFMT_RTCM3, "1074(1),1084(1),1019,1005(10)", 0, 0, "")
	if !assert.NotNil(conv) {
		return
	}
	assert.Equal(STRFMT_UBX, conv.InputType)
	assert.Equal(STRFMT_RTCM3, conv.OutputType)
	assert.Equal(4, conv.NoMsg)
	assert.Equal(1074, conv.MsgType[0])
	assert.Equal(1.0, conv.OutInterval[0])
	assert.Equal(1019, conv.MsgType[2])
	assert.Equal(0.0, conv.OutInterval[2])
	assert.Equal(1005, conv.MsgType[3])
	assert.Equal(10.0, conv.OutInterval[3])

	/* -EPHALL is forced so every ephemeris update is forwarded */
	assert.Contains(conv.RtcmInput.Opt, "-EPHALL")
	assert.Contains(conv.RawInput.Opt, "-EPHALL")
}

func TestNewStreamConvStaId(t *testing.T) {
	assert := assert.New(t)

	conv := NewStreamConv(STRFMT_RTCM3, STRFMT_RTCM3, "1005", 2222, 1, "")
	if assert.NotNil(conv) {
		assert.Equal(2222, conv.RtcmOutput.StaId)
	}

	/* remote station id selected: keep the input id */
	conv = NewStreamConv(STRFMT_RTCM3, STRFMT_RTCM3, "1005", 2222, 0, "")
	if assert.NotNil(conv) {
		assert.Equal(0, conv.RtcmOutput.StaId)
	}
}

func TestNewStreamConvEmpty(t *testing.T) {
	assert.Nil(t, NewStreamConv(STRFMT_UBX, STRFMT_RTCM3, "", 0, 0, ""))
	assert.Nil(t, NewStreamConv(STRFMT_UBX, STRFMT_RTCM3, "abc", 0, 0, ""))
}

func TestMsgClasses(t *testing.T) {
	assert := assert.New(t)

	assert.True(isObsMsg(1004))
	assert.True(isObsMsg(1074))
	assert.True(isObsMsg(1127))
	assert.False(isObsMsg(1019))
	assert.False(isObsMsg(1005))

	assert.True(isNavMsg(1019))
	assert.True(isNavMsg(1046))
	assert.False(isNavMsg(1074))

	assert.True(isStaMsg(1005))
	assert.True(isStaMsg(1033))
	assert.False(isStaMsg(1019))
}

func TestIsTint(t *testing.T) {
	assert := assert.New(t)

	time := GpsT2Time(2430, 3600.0)
	assert.True(isTint(time, 0.0))
	assert.True(isTint(time, 30.0))
	assert.False(isTint(TimeAdd(time, 13.0), 30.0))
}

func TestRaw2RtcmObs(t *testing.T) {
	assert := assert.New(t)

	var raw Raw
	assert.Equal(1, raw.InitRaw(STRFMT_UBX))
	var out Rtcm
	assert.Equal(1, out.InitRtcm())

	time := GpsT2Time(2430, 7200.0)
	od := ObsD{Time: time, Sat: SatNo(SYS_GPS, 5), Rcv: 1}
	od.Code[0] = CODE_L1C
	od.P[0] = 21456789.0
	raw.Time = time
	raw.ObsData.AddObsData(&od)

	raw.Raw2Rtcm(&out, 1)
	assert.Equal(1, out.ObsData.N())
	assert.Equal(od.Sat, out.ObsData.Data[0].Sat)
	assert.InDelta(0.0, TimeDiff(out.Time, time), 1e-9)
}

func TestWriteRtcm3MsmSplit(t *testing.T) {
	assert := assert.New(t)

	var str Stream
	str.InitStream()
	assert.Equal(1, str.OpenStream(STR_MEMBUF, STR_MODE_RW, "32768"))
	defer str.StreamClose()

	var out Rtcm
	assert.Equal(1, out.InitRtcm())
	out.Time = GpsT2Time(2430, 86400.0)

	/* 22 satellites x 3 signals exceeds the 64 cell message limit */
	codes := []uint8{CODE_L1C, CODE_L2W, CODE_L5I}
	lam := CLIGHT / FREQ1
	for prn := 1; prn <= 22; prn++ {
		od := ObsD{Time: out.Time, Sat: SatNo(SYS_GPS, prn), Rcv: 1}
		for j, code := range codes {
			od.Code[j] = code
			od.P[j] = 22000000.0 + float64(prn)*1e3
			od.L[j] = od.P[j] / lam
			od.SNR[j] = snRatio(40.0)
		}
		out.ObsData.AddObsData(&od)
	}
	str.WriteRtcm3Msm(&out, 1074, 0)

	buff := make([]uint8, 32768)
	n := str.StreamRead(buff, len(buff))
	assert.True(n > 0)

	/* the epoch is packed into two 1074 frames */
	nframe := 0
	for i := 0; i+6 <= n; {
		assert.Equal(uint8(RTCM3PREAMB), buff[i])
		length := int(GetBitU(buff[i:], 14, 10))
		assert.Equal(1074, int(GetBitU(buff[i:], 24, 12)))
		nframe++
		i += length + 6
	}
	assert.Equal(2, nframe)

	/* the first frame carries the multiple-message flag, so a decoder only
	 * reports the epoch once all satellites are in */
	var dec Rtcm
	assert.Equal(1, dec.InitRtcm())
	dec.Time = out.Time
	assert.Equal(1, feedRtcm3(&dec, buff[:n]))
	assert.Equal(22, dec.ObsData.N())
}

func TestNextSatRoundRobin(t *testing.T) {
	assert := assert.New(t)

	var rtcm Rtcm
	assert.Equal(1, rtcm.InitRtcm())
	nav := &rtcm.NavData

	prns := []int{2, 9, 30}
	for _, prn := range prns {
		sat := SatNo(SYS_GPS, prn)
		nav.Ephs[sat-1].Sat = sat
	}
	/* each satellite with an ephemeris is emitted once per cycle, in order */
	sat := 0
	for cycle := 0; cycle < 2; cycle++ {
		for _, prn := range prns {
			sat = nav.NextSat(sat, 1019)
			assert.Equal(SatNo(SYS_GPS, prn), sat)
		}
	}
	/* no ephemeris at all */
	var empty Rtcm
	assert.Equal(1, empty.InitRtcm())
	assert.Equal(0, empty.NavData.NextSat(0, 1019))
}
