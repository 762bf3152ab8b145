/*------------------------------------------------------------------------------
* ublox_test.go : u-blox receiver message unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"encoding/binary"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenUbx(t *testing.T) {
	assert := assert.New(t)
	var buff [256]uint8

	n := GenUbx("CFG-RATE 200 1 1", buff[:])
	assert.Equal(8+6, n) /* frame + 3 x U2 payload */
	assert.Equal(uint8(0xB5), buff[0])
	assert.Equal(uint8(0x62), buff[1])
	assert.Equal(uint8(0x06), buff[2]) /* class CFG */
	assert.Equal(uint8(0x08), buff[3]) /* id RATE */
	assert.Equal(uint8(6), buff[4])    /* payload length */
	assert.Equal(uint8(200), buff[6])  /* meas rate lsb */
	assert.Equal(1, ubxChecksum(buff[:], n))

	n = GenUbx("CFG-MSG 0x02 0x15 1", buff[:])
	assert.True(n > 0)
	assert.Equal(uint8(0x01), buff[3])
	assert.Equal(1, ubxChecksum(buff[:], n))

	assert.Equal(0, GenUbx("CFG-UNKNOWN 1 2 3", buff[:]))
	assert.Equal(0, GenUbx("", buff[:]))
}

func TestUbxChecksum(t *testing.T) {
	assert := assert.New(t)
	var buff [64]uint8

	n := GenUbx("CFG-RST 0 0 0", buff[:])
	assert.True(n > 0)
	assert.Equal(1, ubxChecksum(buff[:], n))

	buff[6] ^= 0xFF
	assert.Equal(0, ubxChecksum(buff[:], n))
}

func TestUbxSys(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(SYS_GPS, ubxSys(0))
	assert.Equal(SYS_SBS, ubxSys(1))
	assert.Equal(SYS_GAL, ubxSys(2))
	assert.Equal(SYS_CMP, ubxSys(3))
	assert.Equal(SYS_QZS, ubxSys(5))
	assert.Equal(SYS_GLO, ubxSys(6))
	assert.Equal(0, ubxSys(4))
}

func TestInputUbxResync(t *testing.T) {
	assert := assert.New(t)

	var raw Raw
	assert.Equal(1, raw.InitRaw(STRFMT_UBX))

	var buff [64]uint8
	n := GenUbx("CFG-RATE 200 1 1", buff[:])
	assert.True(n > 0)

	/* garbage before the frame must not break synchronisation; a config
	 * message carries no observation so the decoder reports nothing */
	stream := append([]uint8{0x00, 0xB5, 0x13}, buff[:n]...)
	for _, b := range stream {
		assert.True(raw.InputUbx(b) <= 0)
	}
}

func TestInputUbxRxmRawxTadj(t *testing.T) {
	assert := assert.New(t)

	var raw Raw
	assert.Equal(1, raw.InitRaw(STRFMT_UBX))
	raw.Opt = "-TADJ=1.0"

	/* RXM-RAWX with one GPS L1C/A measurement, 0.25 s off the rounding grid */
	payload := make([]uint8, 16+32)
	tow := 123456.25
	binary.LittleEndian.PutUint64(payload[0:], math.Float64bits(tow))
	binary.LittleEndian.PutUint16(payload[8:], 2230) /* week */
	payload[11] = 1                                  /* numMeas */
	payload[13] = 1                                  /* version */

	m := payload[16:]
	prMes := 22000000.0
	cpMes := prMes / (CLIGHT / FREQ1)
	binary.LittleEndian.PutUint64(m[0:], math.Float64bits(prMes))
	binary.LittleEndian.PutUint64(m[8:], math.Float64bits(cpMes))
	m[20] = 0 /* gnssId GPS */
	m[21] = 7 /* svId */
	m[22] = 0 /* sigId L1C/A */
	binary.LittleEndian.PutUint16(m[24:], 1000) /* locktime (ms) */
	m[26] = 45                                  /* cn0 */
	m[28] = 4                                   /* cpStdev */
	m[30] = 7                                   /* trkStat: pr,cp,half cycle ok */

	frame := append([]uint8{0xB5, 0x62, 0x02, 0x15,
		uint8(len(payload)), uint8(len(payload) >> 8)}, payload...)
	var cka, ckb uint8
	for _, b := range frame[2:] {
		cka += b
		ckb += cka
	}
	frame = append(frame, cka, ckb)

	ret := 0
	for _, b := range frame {
		ret = raw.InputUbx(b)
	}
	assert.Equal(1, ret)

	/* time tag rounded down by 0.25 s, observables shifted to match */
	assert.InDelta(0.0, TimeDiff(raw.Time, GpsT2Time(2230, 123456.0)), 1e-9)
	assert.Equal(1, raw.ObsData.N())
	d := raw.ObsData.Data[0]
	assert.Equal(SatNo(SYS_GPS, 7), d.Sat)
	assert.Equal(uint8(CODE_L1C), d.Code[0])
	assert.InDelta(prMes-0.25*CLIGHT, d.P[0], 1e-6)
	assert.InDelta(cpMes-0.25*FREQ1, d.L[0], 1e-6)
	assert.Equal(snRatio(45.0), d.SNR[0])
}
