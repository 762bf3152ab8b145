/*------------------------------------------------------------------------------
* solution_test.go : solution input/output unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testSol() Sol {
	var sol Sol
	sol.Time = Epoch2Time([]float64{2026, 8, 27, 3, 30, 15.0})
	sol.Rr = [6]float64{-3978241.5612, 3382840.8622, 3649900.1215, 0.01, -0.02, 0.005}
	sol.Qr = [6]float32{4.0, 4.0, 9.0, 0.5, -0.25, 0.1}
	sol.Stat = SOLQ_SINGLE
	sol.Ns = 9
	sol.Age = 1.5
	sol.Ratio = 2.5
	return sol
}

func TestOutDecodeSolXyz(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultSolOpt()
	opt.Posf = SOLF_XYZ
	sol := testSol()

	var buff string
	n := OutSols(&buff, &sol, nil, &opt)
	assert.True(n > 0)
	assert.True(strings.HasPrefix(buff, "2026/08/27"))

	var out Sol
	assert.Equal(1, DecodeSol([]byte(buff), &opt, &out))
	assert.InDelta(0.0, TimeDiff(out.Time, sol.Time), 1e-3)
	for i := 0; i < 3; i++ {
		assert.InDelta(sol.Rr[i], out.Rr[i], 1e-4)
	}
	assert.Equal(sol.Stat, out.Stat)
	assert.Equal(sol.Ns, out.Ns)
	assert.InDelta(float64(sol.Age), float64(out.Age), 0.01)
	assert.InDelta(float64(sol.Ratio), float64(out.Ratio), 0.01)
}

func TestOutDecodeSolLatLonHeight(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultSolOpt()
	sol := testSol()

	var buff string
	assert.True(OutSols(&buff, &sol, nil, &opt) > 0)

	var out Sol
	assert.Equal(1, DecodeSol([]byte(buff), &opt, &out))
	for i := 0; i < 3; i++ {
		assert.InDelta(sol.Rr[i], out.Rr[i], 0.01)
	}
	assert.Equal(sol.Stat, out.Stat)
}

func TestOutSolsWeekTow(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultSolOpt()
	opt.Posf = SOLF_XYZ
	opt.TimeF = 0 /* week/tow */
	sol := testSol()

	var buff string
	assert.True(OutSols(&buff, &sol, nil, &opt) > 0)

	var out Sol
	assert.Equal(1, DecodeSol([]byte(buff), &opt, &out))
	assert.InDelta(0.0, TimeDiff(out.Time, sol.Time), 1e-3)
}

func TestOutSolsNoSolution(t *testing.T) {
	opt := DefaultSolOpt()
	sol := testSol()
	sol.Stat = SOLQ_NONE

	var buff string
	assert.Equal(t, 0, OutSols(&buff, &sol, nil, &opt))
	assert.Equal(t, "", buff)
}

func TestSolHeaderOptRoundTrip(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultSolOpt()
	opt.Posf = SOLF_XYZ
	opt.TimeS = TIMES_UTC

	var buff string
	assert.True(OutSolHeader(&buff, &opt) > 0)

	out := DefaultSolOpt()
	for _, line := range strings.Split(buff, "\n") {
		DecodeSolOpt(line, &out)
	}
	assert.Equal(SOLF_XYZ, out.Posf)
	assert.Equal(TIMES_UTC, out.TimeS)
}

func TestNmeaRoundTrip(t *testing.T) {
	assert := assert.New(t)

	sol := testSol()
	var buff string
	assert.True(sol.OutSolNmeaRmc(&buff) > 0)
	assert.True(sol.OutSolNmeaGga(&buff) > 0)
	assert.True(TestNmea(buff))

	var out Sol
	for _, line := range strings.Split(buff, "\r\n") {
		if line == "" {
			continue
		}
		assert.True(out.DecodeNmea(line) > 0)
	}
	assert.Equal(uint8(SOLQ_SINGLE), out.Stat)
	assert.Equal(sol.Ns, out.Ns)
	assert.InDelta(0.0, TimeDiff(out.Time, sol.Time), 0.1)

	var pin, pout [3]float64
	Ecef2Pos(sol.Rr[:], pin[:])
	Ecef2Pos(out.Rr[:], pout[:])
	assert.InDelta(pin[0], pout[0], 1e-8)
	assert.InDelta(pin[1], pout[1], 1e-8)
	assert.InDelta(pin[2], pout[2], 0.1)
}

func TestNmeaCheckSum(t *testing.T) {
	assert := assert.New(t)

	sol := testSol()
	var buff string
	sol.OutSolNmeaGga(&buff)

	i := strings.Index(buff, "*")
	assert.True(i > 0)
	var sum uint8
	for _, c := range []byte(buff[1:i]) {
		sum ^= c
	}
	assert.Equal(strings.ToUpper(buff[i+1:i+3]),
		strings.ToUpper(string([]byte{"0123456789ABCDEF"[sum>>4], "0123456789ABCDEF"[sum&0xF]})))
}

func TestSol2CovRoundTrip(t *testing.T) {
	assert := assert.New(t)

	sol := testSol()
	var P [9]float64
	Sol2Cov(&sol, P[:])
	assert.Equal(float64(sol.Qr[0]), P[0])
	assert.Equal(float64(sol.Qr[1]), P[4])
	assert.Equal(float64(sol.Qr[2]), P[8])
	assert.Equal(P[1], P[3])

	var out Sol
	Cov2Sol(P[:], &out)
	for i := 0; i < 6; i++ {
		assert.InDelta(float64(sol.Qr[i]), float64(out.Qr[i]), 1e-6)
	}
}

func TestAddSolCyclic(t *testing.T) {
	assert := assert.New(t)

	var buf SolBuf
	InitSolBuf(&buf, 1, 4)

	for i := 0; i < 6; i++ {
		sol := testSol()
		sol.Time = TimeAdd(sol.Time, float64(i))
		assert.Equal(1, AddSol(&buf, &sol))
	}
	/* the ring keeps nmax-1 entries */
	assert.Equal(3, buf.N)

	first := GetSol(&buf, 0)
	assert.NotNil(first)
	assert.InDelta(3.0, TimeDiff(first.Time, testSol().Time), 1e-9)

	last := GetSol(&buf, 2)
	assert.NotNil(last)
	assert.InDelta(5.0, TimeDiff(last.Time, testSol().Time), 1e-9)
	assert.Nil(GetSol(&buf, 3))

	FreeSolBuf(&buf)
	assert.Equal(0, buf.N)
}

func TestReadSolData(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultSolOpt()
	opt.Posf = SOLF_XYZ
	var text string
	assert.True(OutSolHeader(&text, &opt) > 0)
	for i := 0; i < 3; i++ {
		sol := testSol()
		sol.Time = TimeAdd(sol.Time, float64(i))
		OutSols(&text, &sol, nil, &opt)
	}

	var buf SolBuf
	var t0 Gtime
	InitSolBuf(&buf, 0, 0)
	assert.Equal(1, ReadSolData(strings.NewReader(text), t0, t0, 0.0, 0, &opt, &buf))
	assert.Equal(3, buf.N)
	assert.InDelta(0.0, TimeDiff(buf.Data[0].Time, testSol().Time), 1e-3)
}

func TestSolStd(t *testing.T) {
	assert := assert.New(t)

	opt := DefaultSolOpt()
	opt.Posf = SOLF_XYZ
	opt.MaxSolStd = 1.0 /* smaller than the largest position std-dev */
	sol := testSol()

	var buff string
	assert.Equal(0, OutSols(&buff, &sol, nil, &opt))

	opt.MaxSolStd = 3.5
	assert.True(OutSols(&buff, &sol, nil, &opt) > 0)
}
