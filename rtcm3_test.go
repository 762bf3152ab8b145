/*------------------------------------------------------------------------------
* rtcm3_test.go : rtcm 3 encoder/decoder round trip unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

/* feed a generated frame back through the byte stream decoder and return the
 * last non-zero status */
func feedRtcm3(dec *Rtcm, frame []uint8) int {
	ret := 0
	for _, b := range frame {
		if r := dec.InputRtcm3(b); r != 0 {
			ret = r
		}
	}
	return ret
}

func TestRtcm3Type1005RoundTrip(t *testing.T) {
	assert := assert.New(t)
	var enc, dec Rtcm

	assert.Equal(1, enc.InitRtcm())
	assert.Equal(1, dec.InitRtcm())

	enc.StaId = 1234
	enc.StaPara.Pos = [3]float64{-3978241.5612, 3382840.8622, 3649900.1215}

	assert.Equal(1, enc.GenRtcm3(1005, 0, 0))
	assert.True(enc.Nbyte > 0)
	assert.Equal(uint8(RTCM3PREAMB), enc.Buff[0])
	assert.Equal(enc.MsgLen+3, enc.Nbyte)
	assert.Equal(uint32(0), CRC24q(enc.Buff[:], enc.Nbyte))

	assert.Equal(5, feedRtcm3(&dec, enc.Buff[:enc.Nbyte]))
	assert.Equal(1234, dec.StaId)
	for i := 0; i < 3; i++ {
		assert.InDelta(enc.StaPara.Pos[i], dec.StaPara.Pos[i], 1e-4)
	}
}

func TestRtcm3Type1019RoundTrip(t *testing.T) {
	assert := assert.New(t)
	var enc, dec Rtcm

	assert.Equal(1, enc.InitRtcm())
	assert.Equal(1, dec.InitRtcm())

	sat := SatNo(SYS_GPS, 7)
	eph := Eph{
		Sat: sat, Iode: 45, Iodc: 45, Sva: 2, Svh: 0, Week: 2430, Code: 1,
		Toes: 57600.0,
		A:    26559800.0,
		E:    0.0123456789,
		I0:   0.9761234, OMG0: -1.2345678, Omg: 0.5678901, M0: -2.3456789,
		Deln: 4.5e-9, OMGd: -8.1e-9, Idot: 3.2e-10,
		Crc: 221.5, Crs: -15.25, Cuc: -1.2e-6, Cus: 8.4e-6,
		Cic: 6.0e-8, Cis: -4.5e-8,
		F0:  -3.2e-4, F1: -5.2e-12, F2: 0.0,
		Fit: 4.0,
	}
	eph.Tgd[0] = -1.1e-8
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, eph.Toes)

	enc.NavData.Ephs[sat-1] = eph
	enc.EphSat = sat
	enc.Time = GpsT2Time(eph.Week, eph.Toes)
	dec.Time = enc.Time

	assert.Equal(1, enc.GenRtcm3(1019, 0, 0))
	assert.Equal(2, feedRtcm3(&dec, enc.Buff[:enc.Nbyte]))
	assert.Equal(sat, dec.EphSat)

	out := dec.NavData.Ephs[sat-1]
	assert.Equal(eph.Iode, out.Iode)
	assert.Equal(eph.Iodc, out.Iodc)
	assert.Equal(eph.Week, out.Week)
	assert.Equal(eph.Svh, out.Svh)
	assert.Equal(eph.Toes, out.Toes)
	assert.InDelta(eph.A, out.A, 1.0)
	assert.InDelta(eph.E, out.E, 1e-9)
	assert.InDelta(eph.I0, out.I0, 5e-9)
	assert.InDelta(eph.OMG0, out.OMG0, 5e-9)
	assert.InDelta(eph.Omg, out.Omg, 5e-9)
	assert.InDelta(eph.M0, out.M0, 5e-9)
	assert.InDelta(eph.F0, out.F0, 1e-9)
	assert.InDelta(eph.F1, out.F1, P2_43) /* af1 quantization step */
	assert.InDelta(eph.Crc, out.Crc, 0.1)
	assert.InDelta(eph.Cus, out.Cus, 1e-8)
	assert.InDelta(eph.Tgd[0], out.Tgd[0], 1e-9)
	assert.InDelta(0.0, TimeDiff(eph.Toe, out.Toe), 1e-6)
}

func TestRtcm3Msm4RoundTrip(t *testing.T) {
	assert := assert.New(t)
	var enc, dec Rtcm

	assert.Equal(1, enc.InitRtcm())
	assert.Equal(1, dec.InitRtcm())

	time := GpsT2Time(2430, 86400.0)
	enc.Time = time
	dec.Time = time

	lam := CLIGHT / FREQ1
	for _, prn := range []int{5, 12, 23} {
		od := ObsD{Time: time, Sat: SatNo(SYS_GPS, prn), Rcv: 1}
		od.Code[0] = CODE_L1C
		od.P[0] = 21456789.123 + float64(prn)*1e5
		od.L[0] = od.P[0]/lam + 123.5
		od.SNR[0] = snRatio(45.0)
		enc.ObsData.AddObsData(&od)
	}

	assert.Equal(1, enc.GenRtcm3(1074, 0, 0))
	assert.Equal(1, feedRtcm3(&dec, enc.Buff[:enc.Nbyte]))
	assert.Equal(3, dec.ObsData.N())

	for i := 0; i < dec.ObsData.N(); i++ {
		in := enc.ObsData.Data[i]
		var out *ObsD
		for j := 0; j < dec.ObsData.N(); j++ {
			if dec.ObsData.Data[j].Sat == in.Sat {
				out = &dec.ObsData.Data[j]
				break
			}
		}
		if !assert.NotNil(out) {
			continue
		}
		assert.Equal(CODE_L1C, int(out.Code[0]))
		assert.InDelta(in.P[0], out.P[0], 0.05)
		assert.InDelta(in.L[0], out.L[0], 0.01)
		assert.InDelta(float64(in.SNR[0]), float64(out.SNR[0]), 1.0/SNR_UNIT)
		assert.InDelta(0.0, TimeDiff(in.Time, out.Time), 1e-6)
	}
}

func TestRtcm3GarbageResync(t *testing.T) {
	assert := assert.New(t)
	var enc, dec Rtcm

	assert.Equal(1, enc.InitRtcm())
	assert.Equal(1, dec.InitRtcm())

	enc.StaId = 99
	enc.StaPara.Pos = [3]float64{1.0, 2.0, 3.0}
	assert.Equal(1, enc.GenRtcm3(1005, 0, 0))

	/* leading garbage, then a corrupted frame, then a good one */
	stream := []uint8{0x00, 0xFF, 0x7E}
	bad := make([]uint8, enc.Nbyte)
	copy(bad, enc.Buff[:enc.Nbyte])
	bad[8] ^= 0x40 /* break the crc */
	stream = append(stream, bad...)
	stream = append(stream, enc.Buff[:enc.Nbyte]...)

	assert.Equal(5, feedRtcm3(&dec, stream))
	assert.InDelta(1.0, dec.StaPara.Pos[0], 1e-4)
}

func TestGenRtcm2NotSupported(t *testing.T) {
	var rtcm Rtcm
	assert.Equal(t, 1, rtcm.InitRtcm())
	assert.Equal(t, 0, rtcm.GenRtcm2(1, 0))
}

func TestRtcm3UnsupportedType(t *testing.T) {
	var rtcm Rtcm
	assert.Equal(t, 1, rtcm.InitRtcm())
	assert.Equal(t, 0, rtcm.GenRtcm3(9999, 0, 0))
	assert.Equal(t, 0, rtcm.Nbyte)
}
