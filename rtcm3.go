/*------------------------------------------------------------------------------
* rtcm3.go : rtcm ver.3 message decoding
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"math"
	"strings"
)

const (
	PRUNIT_GPS = 299792.458     /* rtcm 3 unit of gps pseudorange (m) */
	PRUNIT_GLO = 599584.916     /* rtcm 3 unit of glonass pseudorange (m) */
	RANGE_MS   = CLIGHT * 0.001 /* range in 1 ms */

	invalidCP  = -524288 /* invalid 20 bit carrier-phase (0x80000) */
	invalidPR2 = -8192   /* invalid 14 bit L2-L1 pseudorange (0x2000) */
)

/* multi-signal-message header */
type msmHead struct {
	iod        uint8 /* issue of data station */
	timeS      uint8 /* cumulative session transmitting time */
	clkStr     uint8 /* clock steering indicator */
	clkExt     uint8 /* external clock indicator */
	smooth     uint8 /* divergence free smoothing indicator */
	tintS      uint8 /* smoothing interval */
	nsat, nsig int
	sats       [64]uint8
	sigs       [32]uint8
	cellmask   [64]uint8
}

/* MSM signal ID tables */
var (
	msmSigGps = [32]string{
		"", "1C", "1P", "1W", "", "", "", "2C", "2P", "2W", "", "",
		"", "", "2S", "2L", "2X", "", "", "", "", "5I", "5Q", "5X",
		"", "", "", "", "", "1S", "1L", "1X"}
	msmSigGlo = [32]string{
		"", "1C", "1P", "", "", "", "", "2C", "2P", "", "", "",
		"", "", "", "", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", ""}
	msmSigGal = [32]string{
		"", "1C", "1A", "1B", "1X", "1Z", "", "6C", "6A", "6B", "6X", "6Z",
		"", "7I", "7Q", "7X", "", "8I", "8Q", "8X", "", "5I", "5Q", "5X",
		"", "", "", "", "", "", "", ""}
	msmSigQzs = [32]string{
		"", "1C", "", "", "", "", "", "", "6S", "6L", "6X", "",
		"", "", "2S", "2L", "2X", "", "", "", "", "5I", "5Q", "5X",
		"", "", "", "", "", "1S", "1L", "1X"}
	msmSigSbs = [32]string{
		"", "1C", "", "", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", "", "", "5I", "5Q", "5X",
		"", "", "", "", "", "", "", ""}
	msmSigCmp = [32]string{
		"", "2I", "2Q", "2X", "", "", "", "6I", "6Q", "6X", "", "",
		"", "7I", "7Q", "7X", "", "", "", "", "", "5D", "5P", "5X",
		"", "", "", "", "", "1D", "1P", "1X"}
	msmSigIrn = [32]string{
		"", "", "", "", "", "", "", "", "", "", "", "",
		"", "", "", "", "", "", "", "", "", "5A", "", "",
		"", "", "", "", "", "", "", ""}
)

/* SSR signal and tracking mode IDs */
var (
	ssrSigGps = [32]uint8{
		CODE_L1C, CODE_L1P, CODE_L1W, CODE_L1S, CODE_L1L, CODE_L2C, CODE_L2D, CODE_L2S,
		CODE_L2L, CODE_L2X, CODE_L2P, CODE_L2W, 0, 0, CODE_L5I, CODE_L5Q}
	ssrSigGlo = [32]uint8{
		CODE_L1C, CODE_L1P, CODE_L2C, CODE_L2P, CODE_L4A, CODE_L4B, CODE_L6A, CODE_L6B,
		CODE_L3I, CODE_L3Q}
	ssrSigGal = [32]uint8{
		CODE_L1A, CODE_L1B, CODE_L1C, 0, 0, CODE_L5I, CODE_L5Q, 0,
		CODE_L7I, CODE_L7Q, 0, CODE_L8I, CODE_L8Q, 0, CODE_L6A, CODE_L6B,
		CODE_L6C}
	ssrSigQzs = [32]uint8{
		CODE_L1C, CODE_L1S, CODE_L1L, CODE_L2S, CODE_L2L, 0, CODE_L5I, CODE_L5Q,
		0, CODE_L6S, CODE_L6L, 0, 0, 0, 0, 0,
		0, CODE_L6E}
	ssrSigCmp = [32]uint8{
		CODE_L2I, CODE_L2Q, 0, CODE_L6I, CODE_L6Q, 0, CODE_L7I, CODE_L7Q,
		0, CODE_L1D, CODE_L1P, 0, CODE_L5D, CODE_L5P, 0, CODE_L1A,
		0, 0, CODE_L6A}
	ssrSigSbs = [32]uint8{
		CODE_L1C, CODE_L5I, CODE_L5Q}
)

/* SSR update intervals */
var ssrUdInt = [16]float64{
	1, 2, 5, 10, 15, 30, 60, 120, 240, 300, 600, 900, 1800, 3600, 7200, 10800}

/* per-system SSR field widths: prn bits, iode bits, iodcrc bits, prn offset */
func ssrSys(sys int) (np, ni, nj, offp int, sigs []uint8, ok bool) {
	switch sys {
	case SYS_GPS:
		return 6, 8, 0, 0, ssrSigGps[:], true
	case SYS_GLO:
		return 5, 8, 0, 0, ssrSigGlo[:], true
	case SYS_GAL:
		return 6, 10, 0, 0, ssrSigGal[:], true
	case SYS_QZS:
		return 4, 8, 0, 192, ssrSigQzs[:], true
	case SYS_CMP:
		return 6, 10, 24, 1, ssrSigCmp[:], true
	case SYS_SBS:
		return 6, 9, 24, 120, ssrSigSbs[:], true
	}
	return 0, 0, 0, 0, nil, false
}

func msmTypeIndex(sys int) int {
	switch sys {
	case SYS_GPS:
		return 0
	case SYS_GLO:
		return 1
	case SYS_GAL:
		return 2
	case SYS_QZS:
		return 3
	case SYS_SBS:
		return 4
	case SYS_CMP:
		return 5
	case SYS_IRN:
		return 6
	}
	return -1
}

/* adjust weekly rollover of GPS time */
func (rtcm *Rtcm) adjWeek(tow float64) {
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	rtcm.Time = AdjWeek(rtcm.Time, tow)
}

/* adjust weekly rollover of BDS time */
func adjBDTWeek(week int) int {
	var w int
	Time2BDT(GpsT2BDT(Utc2GpsT(TimeGet())), &w)
	if w < 1 {
		w = 1 /* use 2006/1/1 if time is earlier than 2006/1/1 */
	}
	return week + (w-week+512)/1024*1024
}

/* adjust daily rollover of GLONASS time */
func (rtcm *Rtcm) adjDayGlot(tod float64) {
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	var week int
	time := TimeAdd(GpsT2Utc(rtcm.Time), 10800.0) /* glonass time */
	tow := Time2GpsT(time, &week)
	todP := math.Mod(tow, 86400.0)
	tow -= todP
	if tod < todP-43200.0 {
		tod += 86400.0
	} else if tod > todP+43200.0 {
		tod -= 86400.0
	}
	time = GpsT2Time(week, tow+tod)
	rtcm.Time = Utc2GpsT(TimeAdd(time, -10800.0))
}

/* adjust carrier-phase rollover */
func (rtcm *Rtcm) adjCP(sat, idx int, cp float64) float64 {
	switch {
	case rtcm.Cp[sat-1][idx] == 0.0:
	case cp < rtcm.Cp[sat-1][idx]-750.0:
		cp += 1500.0
	case cp > rtcm.Cp[sat-1][idx]+750.0:
		cp -= 1500.0
	}
	rtcm.Cp[sat-1][idx] = cp
	return cp
}

/* loss-of-lock indicator */
func (rtcm *Rtcm) lossOfLock(sat, idx, lock int) uint8 {
	var lli uint8
	if (lock == 0 && rtcm.Lock[sat-1][idx] == 0) || lock < int(rtcm.Lock[sat-1][idx]) {
		lli = LLI_SLIP
	}
	rtcm.Lock[sat-1][idx] = uint16(lock)
	return lli
}

/* S/N ratio to obs data snr unit */
func snRatio(snr float64) uint16 {
	if snr <= 0.0 || 100.0 <= snr {
		return 0
	}
	return uint16(snr/SNR_UNIT + 0.5)
}

/* start a new epoch if the epoch time changed or the last one completed */
func (rtcm *Rtcm) flushObsEpoch() {
	if rtcm.ObsFlag != 0 || (rtcm.ObsData.N() > 0 &&
		math.Abs(TimeDiff(rtcm.ObsData.Data[0].Time, rtcm.Time)) > 1e-9) {
		rtcm.ObsData.Data = rtcm.ObsData.Data[:0]
		rtcm.ObsFlag = 0
	}
}

/* test station ID consistency */
func (rtcm *Rtcm) testStaId(staid int) int {
	/* test station id option */
	if index := strings.Index(rtcm.Opt, "-STA="); index >= 0 {
		var id int
		n, _ := fmt.Sscanf(rtcm.Opt[index:], "-STA=%d", &id)
		if n == 1 && staid != id {
			return 0
		}
	}
	/* save station id */
	if rtcm.StaId == 0 || rtcm.ObsFlag > 0 {
		rtcm.StaId = staid
	} else if staid != rtcm.StaId {
		ctype := int(GetBitU(rtcm.Buff[:], 24, 12))
		Trace(2, "rtcm3 %d staid invalid id=%d %d\n", ctype, staid, rtcm.StaId)

		/* reset station id on error */
		rtcm.StaId = 0
		return 0
	}
	return 1
}

/* decode type 1001-1004 message header */
func (rtcm *Rtcm) decodeHead1001(sync *int) int {
	var nsat int
	i := 24

	ctype := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12

	if i+52 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12
	tow := float64(GetBitU(rtcm.Buff[:], i, 30)) * 0.001
	i += 30
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	nsat = int(GetBitU(rtcm.Buff[:], i, 5))

	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.adjWeek(tow)

	tstr := Time2Str(rtcm.Time, 2)
	Trace(5, "decodeHead1001: time=%s nsat=%d sync=%d\n", tstr, nsat, *sync)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d %s nsat=%2d sync=%d", staid, tstr, nsat, *sync)
	}
	return nsat
}

/* decode type 1001: L1-only GPS RTK observables (header only) */
func (rtcm *Rtcm) decodeType1001() int {
	var sync int
	if rtcm.decodeHead1001(&sync) < 0 {
		return -1
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1002: extended L1-only GPS RTK observables */
func (rtcm *Rtcm) decodeType1002() int {
	var sync int
	i := 24 + 64
	nsat := rtcm.decodeHead1001(&sync)
	if nsat < 0 {
		return -1
	}
	for j := 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+74 <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		pr1 := float64(GetBitU(rtcm.Buff[:], i, 24))
		i += 24
		ppr1 := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb := int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		cnr1 := float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		sys := SYS_GPS
		if prn >= 40 {
			sys = SYS_SBS
			prn += 80
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 1002 satellite number error: prn=%d\n", prn)
			continue
		}
		rtcm.flushObsEpoch()
		index := rtcm.ObsData.obsIndex(rtcm.Time, sat)
		if index < 0 {
			continue
		}
		data := &rtcm.ObsData.Data[index]
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GPS
		data.P[0] = pr1

		if ppr1 != invalidCP {
			cp1 := rtcm.adjCP(sat, 0, float64(ppr1)*0.0005*FREQ1/CLIGHT)
			data.L[0] = pr1*FREQ1/CLIGHT + cp1
		}
		data.LLI[0] = rtcm.lossOfLock(sat, 0, lock1)
		data.SNR[0] = snRatio(cnr1 * 0.25)
		if code > 0 {
			data.Code[0] = CODE_L1P
		} else {
			data.Code[0] = CODE_L1C
		}
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1003: L1&L2 GPS RTK observables (header only) */
func (rtcm *Rtcm) decodeType1003() int {
	var sync int
	if rtcm.decodeHead1001(&sync) < 0 {
		return -1
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1004: extended L1&L2 GPS RTK observables */
func (rtcm *Rtcm) decodeType1004() int {
	L2codes := []uint8{CODE_L2X, CODE_L2P, CODE_L2D, CODE_L2W}
	var sync int
	i := 24 + 64
	nsat := rtcm.decodeHead1001(&sync)
	if nsat < 0 {
		return -1
	}
	for j := 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+125 <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code1 := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		pr1 := float64(GetBitU(rtcm.Buff[:], i, 24))
		i += 24
		ppr1 := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb := int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		cnr1 := float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		code2 := int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		pr21 := int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		ppr2 := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock2 := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr2 := float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		sys := SYS_GPS
		if prn >= 40 {
			sys = SYS_SBS
			prn += 80
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 1004 satellite number error: sys=%d prn=%d\n", sys, prn)
			continue
		}
		rtcm.flushObsEpoch()
		index := rtcm.ObsData.obsIndex(rtcm.Time, sat)
		if index < 0 {
			continue
		}
		data := &rtcm.ObsData.Data[index]
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GPS
		data.P[0] = pr1

		if ppr1 != invalidCP {
			cp1 := rtcm.adjCP(sat, 0, float64(ppr1)*0.0005*FREQ1/CLIGHT)
			data.L[0] = pr1*FREQ1/CLIGHT + cp1
		}
		data.LLI[0] = rtcm.lossOfLock(sat, 0, lock1)
		data.SNR[0] = snRatio(cnr1 * 0.25)
		if code1 > 0 {
			data.Code[0] = CODE_L1P
		} else {
			data.Code[0] = CODE_L1C
		}
		if pr21 != invalidPR2 {
			data.P[1] = pr1 + float64(pr21)*0.02
		}
		if ppr2 != invalidCP {
			cp2 := rtcm.adjCP(sat, 1, float64(ppr2)*0.0005*FREQ2/CLIGHT)
			data.L[1] = pr1*FREQ2/CLIGHT + cp2
		}
		data.LLI[1] = rtcm.lossOfLock(sat, 1, lock2)
		data.SNR[1] = snRatio(cnr2 * 0.25)
		data.Code[1] = L2codes[code2]
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* get signed 38bit field */
func getBits38(buff []uint8, pos int) float64 {
	return float64(GetBits(buff, pos, 32))*64.0 + float64(GetBitU(buff, pos+32, 6))
}

/* decode type 1005: stationary RTK reference station ARP */
func (rtcm *Rtcm) decodeType1005() int {
	var rr [3]float64
	i := 24 + 12

	if i+140 != rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1005 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12
	itrf := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6 + 4
	rr[0] = getBits38(rtcm.Buff[:], i)
	i += 38 + 2
	rr[1] = getBits38(rtcm.Buff[:], i)
	i += 38 + 2
	rr[2] = getBits38(rtcm.Buff[:], i)

	if rtcm.OutType > 0 {
		var re, pos [3]float64
		for j := 0; j < 3; j++ {
			re[j] = rr[j] * 0.0001
		}
		Ecef2Pos(re[:], pos[:])
		rtcm.MsgType += fmt.Sprintf(" staid=%4d pos=%.8f %.8f %.3f", staid,
			pos[0]*R2D, pos[1]*R2D, pos[2])
	}
	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.DelType = 0 /* xyz */
	for j := 0; j < 3; j++ {
		rtcm.StaPara.Pos[j] = rr[j] * 0.0001
		rtcm.StaPara.Del[j] = 0.0
	}
	rtcm.StaPara.Hgt = 0.0
	rtcm.StaPara.Itrf = itrf
	return 5
}

/* decode type 1006: stationary RTK reference station ARP with height */
func (rtcm *Rtcm) decodeType1006() int {
	var rr [3]float64
	i := 24 + 12

	if i+156 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1006 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12
	itrf := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6 + 4
	rr[0] = getBits38(rtcm.Buff[:], i)
	i += 38 + 2
	rr[1] = getBits38(rtcm.Buff[:], i)
	i += 38 + 2
	rr[2] = getBits38(rtcm.Buff[:], i)
	i += 38
	anth := float64(GetBitU(rtcm.Buff[:], i, 16))

	if rtcm.OutType > 0 {
		var re, pos [3]float64
		for j := 0; j < 3; j++ {
			re[j] = rr[j] * 0.0001
		}
		Ecef2Pos(re[:], pos[:])
		rtcm.MsgType += fmt.Sprintf(" staid=%4d pos=%.8f %.8f %.3f anth=%.3f", staid,
			pos[0]*R2D, pos[1]*R2D, pos[2], anth*0.0001)
	}
	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.DelType = 1 /* xyz */
	for j := 0; j < 3; j++ {
		rtcm.StaPara.Pos[j] = rr[j] * 0.0001
		rtcm.StaPara.Del[j] = 0.0
	}
	rtcm.StaPara.Hgt = anth * 0.0001
	rtcm.StaPara.Itrf = itrf
	return 5
}

/* decode type 1007: antenna descriptor */
func (rtcm *Rtcm) decodeType1007() int {
	var des [32]byte
	i := 24 + 12

	n := int(GetBitU(rtcm.Buff[:], i+12, 8))

	if i+28+8*n > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1007 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12 + 8
	for j := 0; j < n && j < 31; j++ {
		des[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	setup := int(GetBitU(rtcm.Buff[:], i, 8))

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d", staid)
	}
	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.AntDes = string(des[:n])
	rtcm.StaPara.AntSetup = setup
	rtcm.StaPara.AntSno = ""
	return 5
}

/* decode type 1008: antenna descriptor & serial number */
func (rtcm *Rtcm) decodeType1008() int {
	var des, sno [32]byte
	i := 24 + 12

	n := int(GetBitU(rtcm.Buff[:], i+12, 8))
	m := int(GetBitU(rtcm.Buff[:], i+28+8*n, 8))

	if i+36+8*(n+m) > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1008 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12 + 8
	for j := 0; j < n && j < 31; j++ {
		des[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	setup := int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8 + 8
	for j := 0; j < m && j < 31; j++ {
		sno[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d", staid)
	}
	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.AntDes = string(des[:n])
	rtcm.StaPara.AntSetup = setup
	rtcm.StaPara.AntSno = string(sno[:m])
	return 5
}

/* decode type 1009-1012 message header */
func (rtcm *Rtcm) decodeHead1009(sync *int) int {
	i := 24

	ctype := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12

	if i+49 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12
	tod := float64(GetBitU(rtcm.Buff[:], i, 27)) * 0.001 /* sec in a day */
	i += 27
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	nsat := int(GetBitU(rtcm.Buff[:], i, 5))

	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.adjDayGlot(tod)

	tstr := Time2Str(rtcm.Time, 2)
	Trace(5, "decodeHead1009: time=%s nsat=%d sync=%d\n", tstr, nsat, *sync)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d %s nsat=%2d sync=%d", staid, tstr, nsat, *sync)
	}
	return nsat
}

/* decode type 1009: L1-only GLONASS RTK observables (header only) */
func (rtcm *Rtcm) decodeType1009() int {
	var sync int
	if rtcm.decodeHead1009(&sync) < 0 {
		return -1
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1010: extended L1-only GLONASS RTK observables */
func (rtcm *Rtcm) decodeType1010() int {
	var sync int
	i := 24 + 61
	nsat := rtcm.decodeHead1009(&sync)
	if nsat < 0 {
		return -1
	}
	for j := 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+79 <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		fcn := int(GetBitU(rtcm.Buff[:], i, 5)) /* fcn+7 */
		i += 5
		pr1 := float64(GetBitU(rtcm.Buff[:], i, 25))
		i += 25
		ppr1 := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr1 := float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		sat := SatNo(SYS_GLO, prn)
		if sat == 0 {
			Trace(2, "rtcm3 1010 satellite number error: prn=%d\n", prn)
			continue
		}
		if rtcm.NavData.GloFcn[prn-1] == 0 {
			rtcm.NavData.GloFcn[prn-1] = fcn + 1 /* fcn+8 */
		}
		rtcm.flushObsEpoch()
		index := rtcm.ObsData.obsIndex(rtcm.Time, sat)
		if index < 0 {
			continue
		}
		data := &rtcm.ObsData.Data[index]
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GLO
		data.P[0] = pr1

		if ppr1 != invalidCP {
			freq1 := Code2Freq(SYS_GLO, CODE_L1C, fcn-7)
			cp1 := rtcm.adjCP(sat, 0, float64(ppr1)*0.0005*freq1/CLIGHT)
			data.L[0] = pr1*freq1/CLIGHT + cp1
		}
		data.LLI[0] = rtcm.lossOfLock(sat, 0, lock1)
		data.SNR[0] = snRatio(cnr1 * 0.25)
		if code > 0 {
			data.Code[0] = CODE_L1P
		} else {
			data.Code[0] = CODE_L1C
		}
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1011: L1&L2 GLONASS RTK observables (header only) */
func (rtcm *Rtcm) decodeType1011() int {
	var sync int
	if rtcm.decodeHead1009(&sync) < 0 {
		return -1
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1012: extended L1&L2 GLONASS RTK observables */
func (rtcm *Rtcm) decodeType1012() int {
	var sync int
	i := 24 + 61
	nsat := rtcm.decodeHead1009(&sync)
	if nsat < 0 {
		return -1
	}
	for j := 0; j < nsat && rtcm.ObsData.N() < MAXOBS+1 && i+130 <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
		code1 := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		fcn := int(GetBitU(rtcm.Buff[:], i, 5)) /* fcn+7 */
		i += 5
		pr1 := float64(GetBitU(rtcm.Buff[:], i, 25))
		i += 25
		ppr1 := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock1 := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		amb := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr1 := float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		code2 := int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		pr21 := int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		ppr2 := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		lock2 := int(GetBitU(rtcm.Buff[:], i, 7))
		i += 7
		cnr2 := float64(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		sat := SatNo(SYS_GLO, prn)
		if sat == 0 {
			Trace(2, "rtcm3 1012 satellite number error: prn=%d\n", prn)
			continue
		}
		if rtcm.NavData.GloFcn[prn-1] == 0 {
			rtcm.NavData.GloFcn[prn-1] = fcn + 1 /* fcn+8 */
		}
		rtcm.flushObsEpoch()
		index := rtcm.ObsData.obsIndex(rtcm.Time, sat)
		if index < 0 {
			continue
		}
		data := &rtcm.ObsData.Data[index]
		pr1 = pr1*0.02 + float64(amb)*PRUNIT_GLO
		data.P[0] = pr1

		freq1 := Code2Freq(SYS_GLO, CODE_L1C, fcn-7)
		freq2 := Code2Freq(SYS_GLO, CODE_L2C, fcn-7)
		if ppr1 != invalidCP {
			cp1 := rtcm.adjCP(sat, 0, float64(ppr1)*0.0005*freq1/CLIGHT)
			data.L[0] = pr1*freq1/CLIGHT + cp1
		}
		data.LLI[0] = rtcm.lossOfLock(sat, 0, lock1)
		data.SNR[0] = snRatio(cnr1 * 0.25)
		if code1 > 0 {
			data.Code[0] = CODE_L1P
		} else {
			data.Code[0] = CODE_L1C
		}
		if pr21 != invalidPR2 {
			data.P[1] = pr1 + float64(pr21)*0.02
		}
		if ppr2 != invalidCP {
			cp2 := rtcm.adjCP(sat, 1, float64(ppr2)*0.0005*freq2/CLIGHT)
			data.L[1] = pr1*freq2/CLIGHT + cp2
		}
		data.LLI[1] = rtcm.lossOfLock(sat, 1, lock2)
		data.SNR[1] = snRatio(cnr2 * 0.25)
		if code2 > 0 {
			data.Code[1] = CODE_L2P
		} else {
			data.Code[1] = CODE_L2C
		}
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1019: GPS ephemerides */
func (rtcm *Rtcm) decodeType1019() int {
	var eph Eph
	i := 24 + 12
	sys := SYS_GPS

	if i+476 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1019 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	prn := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	week := int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	eph.Code = int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2
	eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
	i += 14
	eph.Iode = int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8
	toc := float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
	i += 16
	eph.F2 = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_55
	i += 8
	eph.F1 = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43
	i += 16
	eph.F0 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_31
	i += 22
	eph.Iodc = int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
	i += 16
	eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
	i += 32
	eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	sqrtA := float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
	i += 32
	eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
	i += 16
	eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
	i += 24
	eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_31
	i += 8
	eph.Svh = int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	eph.Flag = int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	eph.Fit = 4.0 /* 0:4hr,1:>4hr */
	if GetBitU(rtcm.Buff[:], i, 1) > 0 {
		eph.Fit = 0.0
	}
	if prn >= 40 {
		sys = SYS_SBS
		prn += 80
	}
	Trace(4, "decodeType1019: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d iodc=%3d week=%d toe=%6.0f toc=%6.0f svh=%02X",
			prn, eph.Iode, eph.Iodc, week, eph.Toes, toc, eph.Svh)
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "rtcm3 1019 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = AdjGpsWeek(week)
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	tt := TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1].Iode {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode type 1020: GLONASS ephemerides */
func (rtcm *Rtcm) decodeType1020() int {
	var geph GEph
	i := 24 + 12

	if i+348 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1020 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	prn := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	geph.Frq = int(GetBitU(rtcm.Buff[:], i, 5)) - 7
	i += 5 + 2 + 2
	tkH := float64(GetBitU(rtcm.Buff[:], i, 5))
	i += 5
	tkM := float64(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	tkS := float64(GetBitU(rtcm.Buff[:], i, 1)) * 30.0
	i++
	bn := int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1 + 1
	tb := int(GetBitU(rtcm.Buff[:], i, 7))
	i += 7
	geph.Vel[0] = GetBitG(rtcm.Buff[:], i, 24) * P2_20 * 1e3
	i += 24
	geph.Pos[0] = GetBitG(rtcm.Buff[:], i, 27) * P2_11 * 1e3
	i += 27
	geph.Acc[0] = GetBitG(rtcm.Buff[:], i, 5) * P2_30 * 1e3
	i += 5
	geph.Vel[1] = GetBitG(rtcm.Buff[:], i, 24) * P2_20 * 1e3
	i += 24
	geph.Pos[1] = GetBitG(rtcm.Buff[:], i, 27) * P2_11 * 1e3
	i += 27
	geph.Acc[1] = GetBitG(rtcm.Buff[:], i, 5) * P2_30 * 1e3
	i += 5
	geph.Vel[2] = GetBitG(rtcm.Buff[:], i, 24) * P2_20 * 1e3
	i += 24
	geph.Pos[2] = GetBitG(rtcm.Buff[:], i, 27) * P2_11 * 1e3
	i += 27
	geph.Acc[2] = GetBitG(rtcm.Buff[:], i, 5) * P2_30 * 1e3
	i += 5 + 1
	geph.Gamn = GetBitG(rtcm.Buff[:], i, 11) * P2_40
	i += 11 + 3
	geph.Taun = GetBitG(rtcm.Buff[:], i, 22) * P2_30
	i += 22
	geph.DTaun = GetBitG(rtcm.Buff[:], i, 5) * P2_30
	i += 5
	geph.Age = int(GetBitU(rtcm.Buff[:], i, 5))

	sat := SatNo(SYS_GLO, prn)
	if sat == 0 {
		Trace(2, "rtcm3 1020 satellite number error: prn=%d\n", prn)
		return -1
	}
	Trace(4, "decodeType1020: prn=%d tk=%02.0f:%02.0f:%02.0f\n", prn, tkH, tkM, tkS)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d tk=%02.0f:%02.0f:%02.0f frq=%2d bn=%d tb=%d",
			prn, tkH, tkM, tkS, geph.Frq, bn, tb)
	}
	geph.Sat = sat
	geph.Svh = bn
	geph.Iode = tb & 0x7F
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	var week int
	tow := Time2GpsT(GpsT2Utc(rtcm.Time), &week)
	tod := math.Mod(tow, 86400.0)
	tow -= tod
	tof := tkH*3600.0 + tkM*60.0 + tkS - 10800.0 /* lt->utc */
	if tof < tod-43200.0 {
		tof += 86400.0
	} else if tof > tod+43200.0 {
		tof -= 86400.0
	}
	geph.Tof = Utc2GpsT(GpsT2Time(week, tow+tof))
	toe := float64(tb)*900.0 - 10800.0 /* lt->utc */
	if toe < tod-43200.0 {
		toe += 86400.0
	} else if toe > tod+43200.0 {
		toe -= 86400.0
	}
	geph.Toe = Utc2GpsT(GpsT2Time(week, tow+toe)) /* utc->gpst */

	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if math.Abs(TimeDiff(geph.Toe, rtcm.NavData.Geph[prn-1].Toe)) < 1.0 &&
			geph.Svh == rtcm.NavData.Geph[prn-1].Svh {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Geph[prn-1] = geph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode type 1029: unicode text string */
func (rtcm *Rtcm) decodeType1029() int {
	var msg []byte
	i := 24 + 12

	if i+60 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1029 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12 + 16 + 17 /* mjd, tod */
	nchar := int(GetBitU(rtcm.Buff[:], i, 7))
	i += 7 + 8 /* cunit */

	if i+nchar*8 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1029 length error: len=%d nchar=%d\n", rtcm.MsgLen, nchar)
		return -1
	}
	for j := 0; j < nchar && j < 126; j++ {
		msg = append(msg, byte(GetBitU(rtcm.Buff[:], i, 8)))
		i += 8
	}
	rtcm.Msg = string(msg)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d text=%s", staid, rtcm.Msg)
	}
	return 0
}

/* decode type 1033: receiver and antenna descriptor */
func (rtcm *Rtcm) decodeType1033() int {
	var des, sno, rec, ver, rsn [32]byte
	i := 24 + 12

	n := int(GetBitU(rtcm.Buff[:], i+12, 8))
	m := int(GetBitU(rtcm.Buff[:], i+28+8*n, 8))
	n1 := int(GetBitU(rtcm.Buff[:], i+36+8*(n+m), 8))
	n2 := int(GetBitU(rtcm.Buff[:], i+44+8*(n+m+n1), 8))
	n3 := int(GetBitU(rtcm.Buff[:], i+52+8*(n+m+n1+n2), 8))

	if i+60+8*(n+m+n1+n2+n3) > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1033 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12 + 8
	for j := 0; j < n && j < 31; j++ {
		des[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	setup := int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8 + 8
	for j := 0; j < m && j < 31; j++ {
		sno[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	i += 8
	for j := 0; j < n1 && j < 31; j++ {
		rec[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	i += 8
	for j := 0; j < n2 && j < 31; j++ {
		ver[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	i += 8
	for j := 0; j < n3 && j < 31; j++ {
		rsn[j] = byte(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
	}
	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d", staid)
	}
	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.StaPara.Name = fmt.Sprintf("%04d", staid)
	rtcm.StaPara.AntDes = string(des[:n])
	rtcm.StaPara.AntSetup = setup
	rtcm.StaPara.AntSno = string(sno[:m])
	rtcm.StaPara.Type = string(rec[:n1])
	rtcm.StaPara.RecVer = string(ver[:n2])
	rtcm.StaPara.RecSN = string(rsn[:n3])

	Trace(5, "rtcm3 1033: ant=%s:%s rec=%s:%s:%s\n", rtcm.StaPara.AntDes,
		rtcm.StaPara.AntSno, rtcm.StaPara.Type, rtcm.StaPara.RecVer, rtcm.StaPara.RecSN)
	return 5
}

/* decode type 1041: NavIC/IRNSS ephemerides */
func (rtcm *Rtcm) decodeType1041() int {
	var eph Eph
	i := 24 + 12
	sys := SYS_IRN

	if i+470 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1041 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	prn := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	week := int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.F0 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_31
	i += 22
	eph.F1 = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43
	i += 16
	eph.F2 = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_55
	i += 8
	eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	toc := float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
	i += 16
	eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_31
	i += 8
	eph.Deln = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_41 * SC2RAD
	i += 22
	eph.Iode = int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8 + 10 /* IODEC */
	eph.Svh = int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2 /* L5+S health */
	eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 15)) * P2_28
	i += 15
	eph.Cus = float64(GetBits(rtcm.Buff[:], i, 15)) * P2_28
	i += 15
	eph.Cic = float64(GetBits(rtcm.Buff[:], i, 15)) * P2_28
	i += 15
	eph.Cis = float64(GetBits(rtcm.Buff[:], i, 15)) * P2_28
	i += 15
	eph.Crc = float64(GetBits(rtcm.Buff[:], i, 15)) * 0.0625
	i += 15
	eph.Crs = float64(GetBits(rtcm.Buff[:], i, 15)) * 0.0625
	i += 15
	eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
	i += 14
	eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
	i += 16
	eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
	i += 32
	sqrtA := float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
	i += 32
	eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_41 * SC2RAD
	i += 22
	eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD

	Trace(4, "decodeType1041: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d week=%d toe=%6.0f toc=%6.0f svh=%02X",
			prn, eph.Iode, week, eph.Toes, toc, eph.Svh)
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "rtcm3 1041 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = AdjGpsWeek(week)
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	tt := TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	eph.Iodc = eph.Iode
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1].Iode {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode type 1044: QZSS ephemerides */
func (rtcm *Rtcm) decodeType1044() int {
	var eph Eph
	i := 24 + 12
	sys := SYS_QZS

	if i+473 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1044 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	prn := int(GetBitU(rtcm.Buff[:], i, 4)) + 192
	i += 4
	toc := float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
	i += 16
	eph.F2 = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_55
	i += 8
	eph.F1 = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43
	i += 16
	eph.F0 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_31
	i += 22
	eph.Iode = int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8
	eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
	i += 16
	eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
	i += 32
	eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	sqrtA := float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
	i += 32
	eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
	i += 16
	eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
	i += 24
	eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
	i += 14
	eph.Code = int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2
	week := int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	eph.Svh = int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_31
	i += 8
	eph.Iodc = int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.Fit = 2.0 /* 0:2hr,1:>2hr */
	if GetBitU(rtcm.Buff[:], i, 1) > 0 {
		eph.Fit = 0.0
	}
	Trace(4, "decodeType1044: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%3d iode=%3d iodc=%3d week=%d toe=%6.0f toc=%6.0f svh=%02X",
			prn, eph.Iode, eph.Iodc, week, eph.Toes, toc, eph.Svh)
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "rtcm3 1044 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = AdjGpsWeek(week)
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	tt := TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	eph.Flag = 1 /* fixed to 1 */
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1].Iode &&
			eph.Iodc == rtcm.NavData.Ephs[sat-1].Iodc {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode type 1045: Galileo F/NAV ephemerides */
func (rtcm *Rtcm) decodeType1045() int {
	var eph Eph
	i := 24 + 12
	sys := SYS_GAL

	/* only I/NAV requested */
	if strings.Contains(rtcm.Opt, "-GALINAV") {
		return 0
	}
	if i+484 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1045 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	prn := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	week := int(GetBitU(rtcm.Buff[:], i, 12)) /* gst-week */
	i += 12
	eph.Iode = int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.Sva = int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8
	eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
	i += 14
	toc := float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
	i += 14
	eph.F2 = float64(GetBits(rtcm.Buff[:], i, 6)) * P2_59
	i += 6
	eph.F1 = float64(GetBits(rtcm.Buff[:], i, 21)) * P2_46
	i += 21
	eph.F0 = float64(GetBits(rtcm.Buff[:], i, 31)) * P2_34
	i += 31
	eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
	i += 16
	eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
	i += 32
	eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	sqrtA := float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
	i += 32
	eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
	i += 14
	eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
	i += 24
	eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 10)) * P2_32 /* E5a/E1 */
	i += 10
	e5aHs := int(GetBitU(rtcm.Buff[:], i, 2)) /* OSHS */
	i += 2
	e5aDvs := int(GetBitU(rtcm.Buff[:], i, 1)) /* OSDVS */

	Trace(4, "decodeType1045: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d week=%d toe=%6.0f toc=%6.0f hs=%d dvs=%d",
			prn, eph.Iode, week, eph.Toes, toc, e5aHs, e5aDvs)
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "rtcm3 1045 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = week + 1024 /* gal-week = gst-week + 1024 */
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	tt := TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	eph.Svh = (e5aHs << 4) + (e5aDvs << 3)
	eph.Code = (1 << 1) + (1 << 8) /* data source = F/NAV+E5a */
	eph.Iodc = eph.Iode
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1+MAXSAT].Iode {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1+MAXSAT] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 1 /* F/NAV */
	return 2
}

/* decode type 1046: Galileo I/NAV ephemerides */
func (rtcm *Rtcm) decodeType1046() int {
	var eph Eph
	i := 24 + 12
	sys := SYS_GAL

	/* only F/NAV requested */
	if strings.Contains(rtcm.Opt, "-GALFNAV") {
		return 0
	}
	if i+492 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1046 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	prn := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	week := int(GetBitU(rtcm.Buff[:], i, 12)) /* gst-week */
	i += 12
	eph.Iode = int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.Sva = int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8
	eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
	i += 14
	toc := float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
	i += 14
	eph.F2 = float64(GetBits(rtcm.Buff[:], i, 6)) * P2_59
	i += 6
	eph.F1 = float64(GetBits(rtcm.Buff[:], i, 21)) * P2_46
	i += 21
	eph.F0 = float64(GetBits(rtcm.Buff[:], i, 31)) * P2_34
	i += 31
	eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
	i += 16
	eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
	i += 32
	eph.Cus = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	sqrtA := float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
	i += 32
	eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 14)) * 60.0
	i += 14
	eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
	i += 24
	eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 10)) * P2_32 /* E5a/E1 */
	i += 10
	eph.Tgd[1] = float64(GetBits(rtcm.Buff[:], i, 10)) * P2_32 /* E5b/E1 */
	i += 10
	e5bHs := int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2
	e5bDvs := int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	e1Hs := int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2
	e1Dvs := int(GetBitU(rtcm.Buff[:], i, 1))

	Trace(4, "decodeType1046: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d week=%d toe=%6.0f toc=%6.0f hs=%d %d dvs=%d %d",
			prn, eph.Iode, week, eph.Toes, toc, e5bHs, e1Hs, e5bDvs, e1Dvs)
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "rtcm3 1046 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = week + 1024 /* gal-week = gst-week + 1024 */
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	tt := TimeDiff(GpsT2Time(eph.Week, eph.Toes), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	eph.Svh = (e5bHs << 7) + (e5bDvs << 6) + (e1Hs << 1) + (e1Dvs << 0)
	eph.Code = (1 << 0) + (1 << 2) + (1 << 9) /* data source = I/NAV+E1+E5b */
	eph.Iodc = eph.Iode
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if eph.Iode == rtcm.NavData.Ephs[sat-1].Iode {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0 /* I/NAV */
	return 2
}

/* decode type 1042/63: BeiDou ephemerides */
func (rtcm *Rtcm) decodeType1042() int {
	var eph Eph
	i := 24 + 12
	sys := SYS_CMP

	if i+499 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1042 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	prn := int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	week := int(GetBitU(rtcm.Buff[:], i, 13))
	i += 13
	eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
	i += 14
	eph.Iode = int(GetBitU(rtcm.Buff[:], i, 5)) /* AODE */
	i += 5
	toc := float64(GetBitU(rtcm.Buff[:], i, 17)) * 8.0
	i += 17
	eph.F2 = float64(GetBits(rtcm.Buff[:], i, 11)) * P2_66
	i += 11
	eph.F1 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_50
	i += 22
	eph.F0 = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_33
	i += 24
	eph.Iodc = int(GetBitU(rtcm.Buff[:], i, 5)) /* AODC */
	i += 5
	eph.Crs = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_6
	i += 18
	eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
	i += 16
	eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cuc = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
	i += 18
	eph.E = float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_33
	i += 32
	eph.Cus = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
	i += 18
	sqrtA := float64(GetBitU(rtcm.Buff[:], i, 32)) * P2_19
	i += 32
	eph.Toes = float64(GetBitU(rtcm.Buff[:], i, 17)) * 8.0
	i += 17
	eph.Cic = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
	i += 18
	eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cis = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_31
	i += 18
	eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Crc = float64(GetBits(rtcm.Buff[:], i, 18)) * P2_6
	i += 18
	eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
	i += 24
	eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 10)) * 1e-10
	i += 10
	eph.Tgd[1] = float64(GetBits(rtcm.Buff[:], i, 10)) * 1e-10
	i += 10
	eph.Svh = int(GetBitU(rtcm.Buff[:], i, 1))

	Trace(4, "decodeType1042: prn=%d iode=%d toe=%.0f\n", prn, eph.Iode, eph.Toes)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" prn=%2d iode=%3d iodc=%3d week=%d toe=%6.0f toc=%6.0f svh=%02X",
			prn, eph.Iode, eph.Iodc, week, eph.Toes, toc, eph.Svh)
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "rtcm3 1042 satellite number error: prn=%d\n", prn)
		return -1
	}
	eph.Sat = sat
	eph.Week = adjBDTWeek(week)
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	tt := TimeDiff(BDT2GpsT(BDT2Time(eph.Week, eph.Toes)), rtcm.Time)
	if tt < -302400.0 {
		eph.Week++
	} else if tt >= 302400.0 {
		eph.Week--
	}
	eph.Toe = BDT2GpsT(BDT2Time(eph.Week, eph.Toes)) /* bdt -> gpst */
	eph.Toc = BDT2GpsT(BDT2Time(eph.Week, toc))      /* bdt -> gpst */
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	if !strings.Contains(rtcm.Opt, "-EPHALL") {
		if TimeDiff(eph.Toe, rtcm.NavData.Ephs[sat-1].Toe) == 0.0 &&
			eph.Iode == rtcm.NavData.Ephs[sat-1].Iode &&
			eph.Iodc == rtcm.NavData.Ephs[sat-1].Iodc {
			return 0 /* unchanged */
		}
	}
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSat = sat
	rtcm.EphSet = 0
	return 2
}

/* decode SSR message epoch time */
func (rtcm *Rtcm) decodeSsrEpoch(sys, subtype int) int {
	i := 24 + 12

	if subtype == 0 { /* RTCM SSR */
		if sys == SYS_GLO {
			tod := float64(GetBitU(rtcm.Buff[:], i, 17))
			i += 17
			rtcm.adjDayGlot(tod)
		} else {
			tow := float64(GetBitU(rtcm.Buff[:], i, 20))
			i += 20
			rtcm.adjWeek(tow)
		}
	} else { /* IGS SSR */
		i += 3 + 8
		tow := float64(GetBitU(rtcm.Buff[:], i, 20))
		i += 20
		rtcm.adjWeek(tow)
	}
	return i
}

/* decode SSR 1,4 message header */
func (rtcm *Rtcm) decodeSsr1Head(sys, subtype int, sync, iod *int, udint *float64,
	refd, hsize *int) int {
	ns := 6
	i := 24 + 12
	if subtype == 0 { /* RTCM SSR */
		if sys == SYS_QZS {
			ns = 4
		}
		hlen := 50
		if sys == SYS_GLO {
			hlen = 53
		}
		if i+hlen+ns > rtcm.MsgLen*8 {
			return -1
		}
	} else { /* IGS SSR */
		if i+3+8+50+ns > rtcm.MsgLen*8 {
			return -1
		}
	}
	i = rtcm.decodeSsrEpoch(sys, subtype)
	udi := int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	if subtype == 0 {
		*refd = int(GetBitU(rtcm.Buff[:], i, 1)) /* satellite ref datum */
		i++
	}
	*iod = int(GetBitU(rtcm.Buff[:], i, 4)) /* IOD SSR */
	i += 4
	provid := int(GetBitU(rtcm.Buff[:], i, 16)) /* provider ID */
	i += 16
	solid := int(GetBitU(rtcm.Buff[:], i, 4)) /* solution ID */
	i += 4
	if subtype > 0 { /* IGS SSR: global/regional CRS indicator */
		*refd = int(GetBitU(rtcm.Buff[:], i, 1))
		i++
	}
	nsat := int(GetBitU(rtcm.Buff[:], i, ns))
	i += ns
	*udint = ssrUdInt[udi]

	tstr := Time2Str(rtcm.Time, 2)
	Trace(5, "decodeSsr1Head: time=%s sys=%d subtype=%d nsat=%d sync=%d iod=%d provid=%d solid=%d\n",
		tstr, sys, subtype, nsat, *sync, *iod, provid, solid)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" %s nsat=%2d iod=%2d udi=%2d sync=%d", tstr, nsat, *iod, udi, *sync)
	}
	*hsize = i
	return nsat
}

/* decode SSR 2,3,5,6 message header */
func (rtcm *Rtcm) decodeSsr2Head(sys, subtype int, sync, iod *int, udint *float64,
	hsize *int) int {
	ns := 6
	i := 24 + 12
	if subtype == 0 { /* RTCM SSR */
		if sys == SYS_QZS {
			ns = 4
		}
		hlen := 49
		if sys == SYS_GLO {
			hlen = 52
		}
		if i+hlen+ns > rtcm.MsgLen*8 {
			return -1
		}
	} else { /* IGS SSR */
		if i+3+8+49+ns > rtcm.MsgLen*8 {
			return -1
		}
	}
	i = rtcm.decodeSsrEpoch(sys, subtype)
	udi := int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	*iod = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	provid := int(GetBitU(rtcm.Buff[:], i, 16)) /* provider ID */
	i += 16
	solid := int(GetBitU(rtcm.Buff[:], i, 4)) /* solution ID */
	i += 4
	nsat := int(GetBitU(rtcm.Buff[:], i, ns))
	i += ns
	*udint = ssrUdInt[udi]

	tstr := Time2Str(rtcm.Time, 2)
	Trace(5, "decodeSsr2Head: time=%s sys=%d subtype=%d nsat=%d sync=%d iod=%d provid=%d solid=%d\n",
		tstr, sys, subtype, nsat, *sync, *iod, provid, solid)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" %s nsat=%2d iod=%2d udi=%2d sync=%d", tstr, nsat, *iod, udi, *sync)
	}
	*hsize = i
	return nsat
}

func retSsr(sync int) int {
	if sync > 0 {
		return 0
	}
	return 10
}

/* decode SSR 1: orbit corrections */
func (rtcm *Rtcm) decodeSsr1(sys, subtype int) int {
	var (
		udint                float64
		deph, ddeph          [3]float64
		i, sync, iod, refd   int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	nsat := rtcm.decodeSsr1Head(sys, subtype, &sync, &iod, &udint, &refd, &i)
	if nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, ni, nj, offp, _, ok := ssrSys(sys)
	if !ok {
		return retSsr(sync)
	}
	if subtype > 0 { /* IGS SSR */
		np, ni, nj, offp = 6, 8, 0, 0
		if sys == SYS_SBS {
			offp = 119
		}
	}
	for j := 0; j < nsat && i+121+np+ni+nj <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		iode := int(GetBitU(rtcm.Buff[:], i, ni))
		i += ni
		iodcrc := int(GetBitU(rtcm.Buff[:], i, nj))
		i += nj
		deph[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22
		deph[1] = float64(GetBits(rtcm.Buff[:], i, 20)) * 4e-4
		i += 20
		deph[2] = float64(GetBits(rtcm.Buff[:], i, 20)) * 4e-4
		i += 20
		ddeph[0] = float64(GetBits(rtcm.Buff[:], i, 21)) * 1e-6
		i += 21
		ddeph[1] = float64(GetBits(rtcm.Buff[:], i, 19)) * 4e-6
		i += 19
		ddeph[2] = float64(GetBits(rtcm.Buff[:], i, 19)) * 4e-6
		i += 19

		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		ssr := &rtcm.Ssr[sat-1]
		ssr.T0[0] = rtcm.Time
		ssr.Udi[0] = udint
		ssr.Iod[0] = iod
		ssr.Iode = iode     /* SBAS/BDS: toe/t0 modulo */
		ssr.IodCrc = iodcrc /* SBAS/BDS: IOD CRC */
		ssr.Refd = refd
		for k := 0; k < 3; k++ {
			ssr.Deph[k] = deph[k]
			ssr.Ddeph[k] = ddeph[k]
		}
		ssr.Update = 1
	}
	return retSsr(sync)
}

/* decode SSR 2: clock corrections */
func (rtcm *Rtcm) decodeSsr2(sys, subtype int) int {
	var (
		udint        float64
		dclk         [3]float64
		i, sync, iod int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	nsat := rtcm.decodeSsr2Head(sys, subtype, &sync, &iod, &udint, &i)
	if nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, _, ok := ssrSys(sys)
	if !ok {
		return retSsr(sync)
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		if sys == SYS_CMP {
			offp = 0
		} else if sys == SYS_SBS {
			offp = 119
		}
	}
	for j := 0; j < nsat && i+70+np <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		dclk[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22
		dclk[1] = float64(GetBits(rtcm.Buff[:], i, 21)) * 1e-6
		i += 21
		dclk[2] = float64(GetBits(rtcm.Buff[:], i, 27)) * 2e-8
		i += 27

		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		ssr := &rtcm.Ssr[sat-1]
		ssr.T0[1] = rtcm.Time
		ssr.Udi[1] = udint
		ssr.Iod[1] = iod
		for k := 0; k < 3; k++ {
			ssr.Dclk[k] = dclk[k]
		}
		ssr.Update = 1
	}
	return retSsr(sync)
}

/* decode SSR 3: satellite code biases */
func (rtcm *Rtcm) decodeSsr3(sys, subtype int) int {
	var (
		udint        float64
		cbias        [MAXCODE]float64
		i, sync, iod int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	nsat := rtcm.decodeSsr2Head(sys, subtype, &sync, &iod, &udint, &i)
	if nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, sigs, ok := ssrSys(sys)
	if !ok {
		return retSsr(sync)
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		if sys == SYS_CMP {
			offp = 0
		} else if sys == SYS_SBS {
			offp = 119
		}
	}
	for j := 0; j < nsat && i+5+np <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		nbias := int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5

		for k := range cbias {
			cbias[k] = 0.0
		}
		for k := 0; k < nbias && i+19 <= rtcm.MsgLen*8; k++ {
			mode := int(GetBitU(rtcm.Buff[:], i, 5))
			i += 5
			bias := float64(GetBits(rtcm.Buff[:], i, 14)) * 0.01
			i += 14
			if sigs[mode] > 0 {
				cbias[sigs[mode]-1] = bias
			} else {
				Trace(2, "rtcm3 %d not supported mode: mode=%d\n", ctype, mode)
			}
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		ssr := &rtcm.Ssr[sat-1]
		ssr.T0[4] = rtcm.Time
		ssr.Udi[4] = udint
		ssr.Iod[4] = iod
		for k := 0; k < MAXCODE; k++ {
			ssr.Cbias[k] = float32(cbias[k])
		}
		ssr.Update = 1
	}
	return retSsr(sync)
}

/* decode SSR 4: combined orbit and clock corrections */
func (rtcm *Rtcm) decodeSsr4(sys, subtype int) int {
	var (
		udint              float64
		deph, ddeph, dclk  [3]float64
		i, sync, iod, refd int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	nsat := rtcm.decodeSsr1Head(sys, subtype, &sync, &iod, &udint, &refd, &i)
	if nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, ni, nj, offp, _, ok := ssrSys(sys)
	if !ok {
		return retSsr(sync)
	}
	if subtype > 0 { /* IGS SSR */
		np, ni, nj, offp = 6, 8, 0, 0
		if sys == SYS_SBS {
			offp = 119
		}
	}
	for j := 0; j < nsat && i+191+np+ni+nj <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		iode := int(GetBitU(rtcm.Buff[:], i, ni))
		i += ni
		iodcrc := int(GetBitU(rtcm.Buff[:], i, nj))
		i += nj
		deph[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22
		deph[1] = float64(GetBits(rtcm.Buff[:], i, 20)) * 4e-4
		i += 20
		deph[2] = float64(GetBits(rtcm.Buff[:], i, 20)) * 4e-4
		i += 20
		ddeph[0] = float64(GetBits(rtcm.Buff[:], i, 21)) * 1e-6
		i += 21
		ddeph[1] = float64(GetBits(rtcm.Buff[:], i, 19)) * 4e-6
		i += 19
		ddeph[2] = float64(GetBits(rtcm.Buff[:], i, 19)) * 4e-6
		i += 19
		dclk[0] = float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22
		dclk[1] = float64(GetBits(rtcm.Buff[:], i, 21)) * 1e-6
		i += 21
		dclk[2] = float64(GetBits(rtcm.Buff[:], i, 27)) * 2e-8
		i += 27

		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		ssr := &rtcm.Ssr[sat-1]
		ssr.T0[0], ssr.T0[1] = rtcm.Time, rtcm.Time
		ssr.Udi[0], ssr.Udi[1] = udint, udint
		ssr.Iod[0], ssr.Iod[1] = iod, iod
		ssr.Iode = iode
		ssr.IodCrc = iodcrc
		ssr.Refd = refd
		for k := 0; k < 3; k++ {
			ssr.Deph[k] = deph[k]
			ssr.Ddeph[k] = ddeph[k]
			ssr.Dclk[k] = dclk[k]
		}
		ssr.Update = 1
	}
	return retSsr(sync)
}

/* decode SSR 5: URA */
func (rtcm *Rtcm) decodeSsr5(sys, subtype int) int {
	var (
		udint        float64
		i, sync, iod int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	nsat := rtcm.decodeSsr2Head(sys, subtype, &sync, &iod, &udint, &i)
	if nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, _, ok := ssrSys(sys)
	if !ok {
		return retSsr(sync)
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		if sys == SYS_CMP {
			offp = 0
		} else if sys == SYS_SBS {
			offp = 119
		}
	}
	for j := 0; j < nsat && i+6+np <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		ura := int(GetBitU(rtcm.Buff[:], i, 6))
		i += 6

		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		ssr := &rtcm.Ssr[sat-1]
		ssr.T0[3] = rtcm.Time
		ssr.Udi[3] = udint
		ssr.Iod[3] = iod
		ssr.Ura = ura
		ssr.Update = 1
	}
	return retSsr(sync)
}

/* decode SSR 6: high rate clock correction */
func (rtcm *Rtcm) decodeSsr6(sys, subtype int) int {
	var (
		udint        float64
		i, sync, iod int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	nsat := rtcm.decodeSsr2Head(sys, subtype, &sync, &iod, &udint, &i)
	if nsat < 0 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, _, ok := ssrSys(sys)
	if !ok {
		return retSsr(sync)
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		if sys == SYS_CMP {
			offp = 0
		} else if sys == SYS_SBS {
			offp = 119
		}
	}
	for j := 0; j < nsat && i+22+np <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		hrclk := float64(GetBits(rtcm.Buff[:], i, 22)) * 1e-4
		i += 22

		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		ssr := &rtcm.Ssr[sat-1]
		ssr.T0[2] = rtcm.Time
		ssr.Udi[2] = udint
		ssr.Iod[2] = iod
		ssr.Hrclk = hrclk
		ssr.Update = 1
	}
	return retSsr(sync)
}

/* decode SSR 7 message header */
func (rtcm *Rtcm) decodeSsr7Head(sys, subtype int, sync, iod *int, udint *float64,
	dispe, mw, hsize *int) int {
	ns := 6
	i := 24 + 12
	if subtype == 0 { /* RTCM SSR */
		if sys == SYS_QZS {
			ns = 4
		}
		hlen := 51
		if sys == SYS_GLO {
			hlen = 54
		}
		if i+hlen+ns > rtcm.MsgLen*8 {
			return -1
		}
	} else { /* IGS SSR */
		if i+3+8+51+ns > rtcm.MsgLen*8 {
			return -1
		}
	}
	i = rtcm.decodeSsrEpoch(sys, subtype)
	udi := int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	*iod = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	provid := int(GetBitU(rtcm.Buff[:], i, 16)) /* provider ID */
	i += 16
	solid := int(GetBitU(rtcm.Buff[:], i, 4)) /* solution ID */
	i += 4
	*dispe = int(GetBitU(rtcm.Buff[:], i, 1)) /* dispersive bias consistency */
	i++
	*mw = int(GetBitU(rtcm.Buff[:], i, 1)) /* MW consistency */
	i++
	nsat := int(GetBitU(rtcm.Buff[:], i, ns))
	i += ns
	*udint = ssrUdInt[udi]

	tstr := Time2Str(rtcm.Time, 2)
	Trace(5, "decodeSsr7Head: time=%s sys=%d subtype=%d nsat=%d sync=%d iod=%d provid=%d solid=%d\n",
		tstr, sys, subtype, nsat, *sync, *iod, provid, solid)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" %s nsat=%2d iod=%2d udi=%2d sync=%d", tstr, nsat, *iod, udi, *sync)
	}
	*hsize = i
	return nsat
}

/* decode SSR 7: phase biases */
func (rtcm *Rtcm) decodeSsr7(sys, subtype int) int {
	var (
		udint                  float64
		pbias, stdpb           [MAXCODE]float64
		i, sync, iod, dispe, mw int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	nsat := rtcm.decodeSsr7Head(sys, subtype, &sync, &iod, &udint, &dispe, &mw, &i)
	if nsat < 0 {
		Trace(5, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	np, _, _, offp, sigs, ok := ssrSys(sys)
	if !ok {
		return retSsr(sync)
	}
	if subtype > 0 { /* IGS SSR */
		np = 6
		if sys == SYS_CMP {
			offp = 0
		} else if sys == SYS_SBS {
			offp = 119
		}
	}
	for j := 0; j < nsat && i+5+17+np <= rtcm.MsgLen*8; j++ {
		prn := int(GetBitU(rtcm.Buff[:], i, np)) + offp
		i += np
		nbias := int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5
		yawAng := int(GetBitU(rtcm.Buff[:], i, 9))
		i += 9
		yawRate := int(GetBits(rtcm.Buff[:], i, 8))
		i += 8

		for k := range pbias {
			pbias[k], stdpb[k] = 0.0, 0.0
		}
		blen := 32
		if subtype == 0 {
			blen = 49
		}
		for k := 0; k < nbias && i+blen <= rtcm.MsgLen*8; k++ {
			mode := int(GetBitU(rtcm.Buff[:], i, 5))
			i += 5 + 1 + 2 + 4 /* integer/WL-integer indicators, discont counter */
			bias := float64(GetBits(rtcm.Buff[:], i, 20))
			i += 20
			std := 0.0
			if subtype == 0 {
				std = float64(GetBitU(rtcm.Buff[:], i, 17))
				i += 17
			}
			if sigs[mode] > 0 {
				pbias[sigs[mode]-1] = bias * 0.0001 /* (m) */
				stdpb[sigs[mode]-1] = std * 0.0001  /* (m) */
			} else {
				Trace(2, "rtcm3 %d not supported mode: mode=%d\n", ctype, mode)
			}
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "rtcm3 %d satellite number error: prn=%d\n", ctype, prn)
			continue
		}
		ssr := &rtcm.Ssr[sat-1]
		ssr.T0[5] = rtcm.Time
		ssr.Udi[5] = udint
		ssr.Iod[5] = iod
		ssr.YawAng = float64(yawAng) / 256.0 * 180.0    /* (deg) */
		ssr.YawRate = float64(yawRate) / 8192.0 * 180.0 /* (deg/s) */
		for k := 0; k < MAXCODE; k++ {
			ssr.Pbias[k] = pbias[k]
			ssr.Stdpb[k] = float32(stdpb[k])
		}
		ssr.Update = 1
	}
	return 20
}

/* select highest-priority signal per frequency index */
func msmSigIndex(sys int, code []uint8, n int, opt string, idx []int) {
	var (
		priH, index [8]int
		ex          [32]int
	)
	for i := 0; i < n; i++ {
		if code[i] == 0 {
			continue
		}
		if idx[i] >= NFREQ { /* save as extended signal if idx >= NFREQ */
			ex[i] = 1
			continue
		}
		pri := GetCodePri(sys, code[i], opt)

		if pri > priH[idx[i]] {
			if index[idx[i]] > 0 {
				ex[index[idx[i]]-1] = 1
			}
			priH[idx[i]] = pri
			index[idx[i]] = i + 1
		} else {
			ex[i] = 1
		}
	}
	for i, nex := 0, 0; i < n; i++ {
		if ex[i] == 0 {
			continue
		}
		if nex < NEXOBS {
			idx[i] = NFREQ + nex
			nex++
		} else { /* no space in obs data */
			Trace(2, "rtcm msm: no space in obs data sys=%d code=%d\n", sys, code[i])
			idx[i] = -1
		}
	}
}

func (rtcm *Rtcm) msmSig(sys int, id uint8) string {
	switch sys {
	case SYS_GPS:
		return msmSigGps[id-1]
	case SYS_GLO:
		return msmSigGlo[id-1]
	case SYS_GAL:
		return msmSigGal[id-1]
	case SYS_QZS:
		return msmSigQzs[id-1]
	case SYS_SBS:
		return msmSigSbs[id-1]
	case SYS_CMP:
		return msmSigCmp[id-1]
	case SYS_IRN:
		return msmSigIrn[id-1]
	}
	return ""
}

/* save obs data from MSM message */
func (rtcm *Rtcm) saveMsmObs(sys int, h *msmHead, r, pr, cp, rr, rrf, cnr []float64,
	lock, ex, half []int) {
	var (
		code [32]uint8
		idx  [32]int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))
	mi := msmTypeIndex(sys)

	/* id to signal */
	for i := 0; i < h.nsig; i++ {
		sig := rtcm.msmSig(sys, h.sigs[i])

		/* signal to rinex obs type */
		code[i] = Obs2Code(sig)
		idx[i] = Code2Idx(sys, code[i])

		sep := ""
		if i < h.nsig-1 {
			sep = ","
		}
		if mi >= 0 {
			if code[i] != CODE_NONE {
				rtcm.MsmType[mi] += fmt.Sprintf("L%s%s", sig, sep)
			} else {
				rtcm.MsmType[mi] += fmt.Sprintf("(%d)%s", h.sigs[i], sep)
				Trace(2, "rtcm3 %d: unknown signal id=%2d\n", ctype, h.sigs[i])
			}
		}
	}
	/* get signal index */
	msmSigIndex(sys, code[:], h.nsig, rtcm.Opt, idx[:])

	for i, j := 0, 0; i < h.nsat; i++ {
		prn := int(h.sats[i])
		switch sys {
		case SYS_QZS:
			prn += MINPRNQZS - 1
		case SYS_SBS:
			prn += MINPRNSBS - 1
		}
		index := -1
		sat := SatNo(sys, prn)
		if sat > 0 {
			rtcm.flushObsEpoch()
			index = rtcm.ObsData.obsIndex(rtcm.Time, sat)
		} else {
			Trace(2, "rtcm3 %d satellite error: prn=%d\n", ctype, prn)
		}
		fcn := 0
		if sys == SYS_GLO {
			fcn = -8 /* no glonass fcn info */
			switch {
			case ex != nil && ex[i] <= 13:
				fcn = ex[i] - 7
				if rtcm.NavData.GloFcn[prn-1] == 0 {
					rtcm.NavData.GloFcn[prn-1] = fcn + 8
				}
			case sat > 0 && rtcm.NavData.Geph[prn-1].Sat == sat:
				fcn = rtcm.NavData.Geph[prn-1].Frq
			case rtcm.NavData.GloFcn[prn-1] > 0:
				fcn = rtcm.NavData.GloFcn[prn-1] - 8
			}
		}
		for k := 0; k < h.nsig; k++ {
			if h.cellmask[k+i*h.nsig] == 0 {
				continue
			}
			if sat > 0 && index >= 0 && idx[k] >= 0 {
				data := &rtcm.ObsData.Data[index]
				freq := Code2Freq(sys, code[k], fcn)
				if fcn < -7 {
					freq = 0.0
				}
				/* pseudorange (m) */
				if r[i] != 0.0 && pr[j] > -1e12 {
					data.P[idx[k]] = r[i] + pr[j]
				}
				/* carrier-phase (cycle) */
				if r[i] != 0.0 && cp[j] > -1e12 {
					data.L[idx[k]] = (r[i] + cp[j]) * freq / CLIGHT
				}
				/* doppler (hz) */
				if rr != nil && rrf != nil && rrf[j] > -1e12 {
					data.D[idx[k]] = -(rr[i] + rrf[j]) * freq / CLIGHT
				}
				lli := rtcm.lossOfLock(sat, idx[k], lock[j])
				if half[j] > 0 {
					lli |= LLI_HALFC | LLI_HALFA
				}
				data.LLI[idx[k]] = lli
				data.SNR[idx[k]] = snRatio(cnr[j])
				data.Code[idx[k]] = code[k]
			}
			j++
		}
	}
}

/* decode MSM message header */
func (rtcm *Rtcm) decodeMsmHead(sys int, sync, iod *int, h *msmHead, hsize *int) int {
	var ncell int
	i := 24

	ctype := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12

	*h = msmHead{}
	if i+157 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: len=%d\n", ctype, rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12

	switch sys {
	case SYS_GLO:
		i += 3 /* day of week */
		tod := float64(GetBitU(rtcm.Buff[:], i, 27)) * 0.001
		i += 27
		rtcm.adjDayGlot(tod)
	case SYS_CMP:
		tow := float64(GetBitU(rtcm.Buff[:], i, 30)) * 0.001
		i += 30
		tow += 14.0 /* BDT -> GPST */
		rtcm.adjWeek(tow)
	default:
		tow := float64(GetBitU(rtcm.Buff[:], i, 30)) * 0.001
		i += 30
		rtcm.adjWeek(tow)
	}
	*sync = int(GetBitU(rtcm.Buff[:], i, 1))
	i++
	*iod = int(GetBitU(rtcm.Buff[:], i, 3))
	i += 3
	h.timeS = uint8(GetBitU(rtcm.Buff[:], i, 7))
	i += 7
	h.clkStr = uint8(GetBitU(rtcm.Buff[:], i, 2))
	i += 2
	h.clkExt = uint8(GetBitU(rtcm.Buff[:], i, 2))
	i += 2
	h.smooth = uint8(GetBitU(rtcm.Buff[:], i, 1))
	i++
	h.tintS = uint8(GetBitU(rtcm.Buff[:], i, 3))
	i += 3
	for j := 1; j <= 64; j++ {
		if GetBitU(rtcm.Buff[:], i, 1) > 0 {
			h.sats[h.nsat] = uint8(j)
			h.nsat++
		}
		i++
	}
	for j := 1; j <= 32; j++ {
		if GetBitU(rtcm.Buff[:], i, 1) > 0 {
			h.sigs[h.nsig] = uint8(j)
			h.nsig++
		}
		i++
	}
	/* test station id */
	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	if h.nsat*h.nsig > 64 {
		Trace(2, "rtcm3 %d number of sats and sigs error: nsat=%d nsig=%d\n",
			ctype, h.nsat, h.nsig)
		return -1
	}
	if i+h.nsat*h.nsig > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: len=%d nsat=%d nsig=%d\n", ctype,
			rtcm.MsgLen, h.nsat, h.nsig)
		return -1
	}
	for j := 0; j < h.nsat*h.nsig; j++ {
		h.cellmask[j] = uint8(GetBitU(rtcm.Buff[:], i, 1))
		i++
		if h.cellmask[j] > 0 {
			ncell++
		}
	}
	*hsize = i

	tstr := Time2Str(rtcm.Time, 2)
	Trace(4, "decodeMsmHead: time=%s sys=%d staid=%d nsat=%d nsig=%d sync=%d iod=%d ncell=%d\n",
		tstr, sys, staid, h.nsat, h.nsig, *sync, *iod, ncell)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d %s nsat=%2d nsig=%2d iod=%2d ncell=%2d sync=%d",
			staid, tstr, h.nsat, h.nsig, *iod, ncell, *sync)
	}
	return ncell
}

/* decode unsupported MSM message (header only) */
func (rtcm *Rtcm) decodeMsm0(sys int) int {
	var (
		h            msmHead
		i, sync, iod int
	)
	if rtcm.decodeMsmHead(sys, &sync, &iod, &h, &i) < 0 {
		return -1
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode MSM 4: full pseudorange and phaserange plus CNR */
func (rtcm *Rtcm) decodeMsm4(sys int) int {
	var (
		h              msmHead
		r, pr, cp, cnr [64]float64
		lock, half     [64]int
		i, sync, iod   int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	ncell := rtcm.decodeMsmHead(sys, &sync, &iod, &h, &i)
	if ncell < 0 {
		return -1
	}
	if i+h.nsat*18+ncell*48 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j := 0; j < ncell; j++ {
		pr[j], cp[j] = -1e16, -1e16
	}
	/* decode satellite data */
	for j := 0; j < h.nsat; j++ { /* range */
		rng := int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j := 0; j < h.nsat; j++ {
		rngM := int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rngM) * P2_10 * RANGE_MS
		}
	}
	/* decode signal data */
	for j := 0; j < ncell; j++ { /* pseudorange */
		prv := int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if prv != -16384 {
			pr[j] = float64(prv) * P2_24 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* phaserange */
		cpv := int(GetBits(rtcm.Buff[:], i, 22))
		i += 22
		if cpv != -2097152 {
			cp[j] = float64(cpv) * P2_29 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j := 0; j < ncell; j++ { /* half-cycle ambiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i++
	}
	for j := 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
	}
	rtcm.saveMsmObs(sys, &h, r[:], pr[:], cp[:], nil, nil, cnr[:], lock[:], nil, half[:])

	return retSync(sync, &rtcm.ObsFlag)
}

/* decode MSM 5: full pseudorange, phaserange, phaserangerate and CNR */
func (rtcm *Rtcm) decodeMsm5(sys int) int {
	var (
		h                       msmHead
		r, rr, pr, cp, rrf, cnr [64]float64
		lock, ex, half          [64]int
		i, sync, iod            int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	ncell := rtcm.decodeMsmHead(sys, &sync, &iod, &h, &i)
	if ncell < 0 {
		return -1
	}
	if i+h.nsat*36+ncell*63 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j := 0; j < h.nsat; j++ {
		ex[j] = 15
	}
	for j := 0; j < ncell; j++ {
		pr[j], cp[j], rrf[j] = -1e16, -1e16, -1e16
	}
	/* decode satellite data */
	for j := 0; j < h.nsat; j++ { /* range */
		rng := int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j := 0; j < h.nsat; j++ { /* extended info */
		ex[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j := 0; j < h.nsat; j++ {
		rngM := int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rngM) * P2_10 * RANGE_MS
		}
	}
	for j := 0; j < h.nsat; j++ { /* phaserangerate */
		rate := int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		if rate != -8192 {
			rr[j] = float64(rate)
		}
	}
	/* decode signal data */
	for j := 0; j < ncell; j++ { /* pseudorange */
		prv := int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if prv != -16384 {
			pr[j] = float64(prv) * P2_24 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* phaserange */
		cpv := int(GetBits(rtcm.Buff[:], i, 22))
		i += 22
		if cpv != -2097152 {
			cp[j] = float64(cpv) * P2_29 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j := 0; j < ncell; j++ { /* half-cycle ambiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i++
	}
	for j := 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 6))
		i += 6
	}
	for j := 0; j < ncell; j++ { /* phaserangerate */
		rrv := int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if rrv != -16384 {
			rrf[j] = float64(rrv) * 0.0001
		}
	}
	rtcm.saveMsmObs(sys, &h, r[:], pr[:], cp[:], rr[:], rrf[:], cnr[:], lock[:], ex[:], half[:])

	return retSync(sync, &rtcm.ObsFlag)
}

/* decode MSM 6: full pseudorange and phaserange plus CNR (high-res) */
func (rtcm *Rtcm) decodeMsm6(sys int) int {
	var (
		h              msmHead
		r, pr, cp, cnr [64]float64
		lock, half     [64]int
		i, sync, iod   int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	ncell := rtcm.decodeMsmHead(sys, &sync, &iod, &h, &i)
	if ncell < 0 {
		return -1
	}
	if i+h.nsat*18+ncell*65 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j := 0; j < ncell; j++ {
		pr[j], cp[j] = -1e16, -1e16
	}
	/* decode satellite data */
	for j := 0; j < h.nsat; j++ { /* range */
		rng := int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j := 0; j < h.nsat; j++ {
		rngM := int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rngM) * P2_10 * RANGE_MS
		}
	}
	/* decode signal data */
	for j := 0; j < ncell; j++ { /* pseudorange */
		prv := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		if prv != -524288 {
			pr[j] = float64(prv) * P2_29 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* phaserange */
		cpv := int(GetBits(rtcm.Buff[:], i, 24))
		i += 24
		if cpv != -8388608 {
			cp[j] = float64(cpv) * P2_31 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
	}
	for j := 0; j < ncell; j++ { /* half-cycle ambiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i++
	}
	for j := 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 10)) * 0.0625
		i += 10
	}
	rtcm.saveMsmObs(sys, &h, r[:], pr[:], cp[:], nil, nil, cnr[:], lock[:], nil, half[:])

	return retSync(sync, &rtcm.ObsFlag)
}

/* decode MSM 7: full pseudorange, phaserange, phaserangerate and CNR (h-res) */
func (rtcm *Rtcm) decodeMsm7(sys int) int {
	var (
		h                       msmHead
		r, rr, pr, cp, rrf, cnr [64]float64
		lock, ex, half          [64]int
		i, sync, iod            int
	)
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	ncell := rtcm.decodeMsmHead(sys, &sync, &iod, &h, &i)
	if ncell < 0 {
		return -1
	}
	if i+h.nsat*36+ncell*80 > rtcm.MsgLen*8 {
		Trace(2, "rtcm3 %d length error: nsat=%d ncell=%d len=%d\n", ctype, h.nsat,
			ncell, rtcm.MsgLen)
		return -1
	}
	for j := 0; j < h.nsat; j++ {
		ex[j] = 15
	}
	for j := 0; j < ncell; j++ {
		pr[j], cp[j], rrf[j] = -1e16, -1e16, -1e16
	}
	/* decode satellite data */
	for j := 0; j < h.nsat; j++ { /* range */
		rng := int(GetBitU(rtcm.Buff[:], i, 8))
		i += 8
		if rng != 255 {
			r[j] = float64(rng) * RANGE_MS
		}
	}
	for j := 0; j < h.nsat; j++ { /* extended info */
		ex[j] = int(GetBitU(rtcm.Buff[:], i, 4))
		i += 4
	}
	for j := 0; j < h.nsat; j++ {
		rngM := int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
		if r[j] != 0.0 {
			r[j] += float64(rngM) * P2_10 * RANGE_MS
		}
	}
	for j := 0; j < h.nsat; j++ { /* phaserangerate */
		rate := int(GetBits(rtcm.Buff[:], i, 14))
		i += 14
		if rate != -8192 {
			rr[j] = float64(rate)
		}
	}
	/* decode signal data */
	for j := 0; j < ncell; j++ { /* pseudorange */
		prv := int(GetBits(rtcm.Buff[:], i, 20))
		i += 20
		if prv != -524288 {
			pr[j] = float64(prv) * P2_29 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* phaserange */
		cpv := int(GetBits(rtcm.Buff[:], i, 24))
		i += 24
		if cpv != -8388608 {
			cp[j] = float64(cpv) * P2_31 * RANGE_MS
		}
	}
	for j := 0; j < ncell; j++ { /* lock time */
		lock[j] = int(GetBitU(rtcm.Buff[:], i, 10))
		i += 10
	}
	for j := 0; j < ncell; j++ { /* half-cycle ambiguity */
		half[j] = int(GetBitU(rtcm.Buff[:], i, 1))
		i++
	}
	for j := 0; j < ncell; j++ { /* cnr */
		cnr[j] = float64(GetBitU(rtcm.Buff[:], i, 10)) * 0.0625
		i += 10
	}
	for j := 0; j < ncell; j++ { /* phaserangerate */
		rrv := int(GetBits(rtcm.Buff[:], i, 15))
		i += 15
		if rrv != -16384 {
			rrf[j] = float64(rrv) * 0.0001
		}
	}
	rtcm.saveMsmObs(sys, &h, r[:], pr[:], cp[:], rr[:], rrf[:], cnr[:], lock[:], ex[:], half[:])

	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 1230: GLONASS L1 and L2 code-phase biases */
func (rtcm *Rtcm) decodeType1230() int {
	i := 24 + 12

	if i+20 >= rtcm.MsgLen*8 {
		Trace(2, "rtcm3 1230 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	staid := int(GetBitU(rtcm.Buff[:], i, 12))
	i += 12
	align := int(GetBitU(rtcm.Buff[:], i, 1))
	i += 1 + 3
	mask := int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" staid=%4d align=%d mask=0x%X", staid, align, mask)
	}
	if rtcm.testStaId(staid) == 0 {
		return -1
	}
	rtcm.StaPara.GloCpAlign = align
	for j := 0; j < 4; j++ {
		rtcm.StaPara.GloCpBias[j] = 0.0
	}
	for j := 0; j < 4 && i+16 <= rtcm.MsgLen*8; j++ {
		if mask&(1<<(3-j)) == 0 {
			continue
		}
		bias := int(GetBits(rtcm.Buff[:], i, 16))
		i += 16
		if bias != -32768 {
			rtcm.StaPara.GloCpBias[j] = float64(bias) * 0.02
		}
	}
	return 5
}

/* decode type 4076: proprietary message IGS */
func (rtcm *Rtcm) decodeType4076() int {
	i := 24 + 12

	if i+3+8 >= rtcm.MsgLen*8 {
		Trace(2, "rtcm3 4076 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	ver := int(GetBitU(rtcm.Buff[:], i, 3))
	i += 3
	subtype := int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf(" ver=%d subtype=%3d", ver, subtype)
	}
	/* subtype = IGS SSR type: tens select the system, units the correction */
	sys := 0
	switch subtype / 20 {
	case 1:
		sys = SYS_GPS
	case 2:
		sys = SYS_GLO
	case 3:
		sys = SYS_GAL
	case 4:
		sys = SYS_QZS
	case 5:
		sys = SYS_CMP
	case 6:
		sys = SYS_SBS
	}
	if sys == 0 {
		Trace(3, "rtcm3 4076: unsupported message subtype=%d\n", subtype)
		return 0
	}
	switch (subtype-1)%20 + 1 {
	case 1:
		return rtcm.decodeSsr1(sys, subtype)
	case 2:
		return rtcm.decodeSsr2(sys, subtype)
	case 3:
		return rtcm.decodeSsr4(sys, subtype)
	case 4:
		return rtcm.decodeSsr6(sys, subtype)
	case 5:
		return rtcm.decodeSsr3(sys, subtype)
	case 6:
		return rtcm.decodeSsr7(sys, subtype)
	case 7:
		return rtcm.decodeSsr5(sys, subtype)
	}
	Trace(3, "rtcm3 4076: unsupported message subtype=%d\n", subtype)
	return 0
}

/* decode RTCM ver.3 message */
func (rtcm *Rtcm) DecodeRtcm3() int {
	ret := 0
	ctype := int(GetBitU(rtcm.Buff[:], 24, 12))

	Trace(3, "DecodeRtcm3: len=%3d type=%d\n", rtcm.MsgLen, ctype)

	if rtcm.OutType > 0 {
		rtcm.MsgType += fmt.Sprintf("RTCM %4d (%4d):", ctype, rtcm.MsgLen)
	}
	/* real-time input option */
	if strings.Contains(rtcm.Opt, "-RT_INP") {
		var week int
		tow := Time2GpsT(Utc2GpsT(TimeGet()), &week)
		rtcm.Time = GpsT2Time(week, math.Floor(tow))
	}
	switch ctype {
	case 1001:
		ret = rtcm.decodeType1001()
	case 1002:
		ret = rtcm.decodeType1002()
	case 1003:
		ret = rtcm.decodeType1003()
	case 1004:
		ret = rtcm.decodeType1004()
	case 1005:
		ret = rtcm.decodeType1005()
	case 1006:
		ret = rtcm.decodeType1006()
	case 1007:
		ret = rtcm.decodeType1007()
	case 1008:
		ret = rtcm.decodeType1008()
	case 1009:
		ret = rtcm.decodeType1009()
	case 1010:
		ret = rtcm.decodeType1010()
	case 1011:
		ret = rtcm.decodeType1011()
	case 1012:
		ret = rtcm.decodeType1012()
	case 1019:
		ret = rtcm.decodeType1019()
	case 1020:
		ret = rtcm.decodeType1020()
	case 1029:
		ret = rtcm.decodeType1029()
	case 1033:
		ret = rtcm.decodeType1033()
	case 1041:
		ret = rtcm.decodeType1041()
	case 1044:
		ret = rtcm.decodeType1044()
	case 1045:
		ret = rtcm.decodeType1045()
	case 1046:
		ret = rtcm.decodeType1046()
	case 63, 1042: /* 63: RTCM draft */
		ret = rtcm.decodeType1042()
	case 1057:
		ret = rtcm.decodeSsr1(SYS_GPS, 0)
	case 1058:
		ret = rtcm.decodeSsr2(SYS_GPS, 0)
	case 1059:
		ret = rtcm.decodeSsr3(SYS_GPS, 0)
	case 1060:
		ret = rtcm.decodeSsr4(SYS_GPS, 0)
	case 1061:
		ret = rtcm.decodeSsr5(SYS_GPS, 0)
	case 1062:
		ret = rtcm.decodeSsr6(SYS_GPS, 0)
	case 1063:
		ret = rtcm.decodeSsr1(SYS_GLO, 0)
	case 1064:
		ret = rtcm.decodeSsr2(SYS_GLO, 0)
	case 1065:
		ret = rtcm.decodeSsr3(SYS_GLO, 0)
	case 1066:
		ret = rtcm.decodeSsr4(SYS_GLO, 0)
	case 1067:
		ret = rtcm.decodeSsr5(SYS_GLO, 0)
	case 1068:
		ret = rtcm.decodeSsr6(SYS_GLO, 0)
	case 1071, 1072, 1073:
		ret = rtcm.decodeMsm0(SYS_GPS)
	case 1074:
		ret = rtcm.decodeMsm4(SYS_GPS)
	case 1075:
		ret = rtcm.decodeMsm5(SYS_GPS)
	case 1076:
		ret = rtcm.decodeMsm6(SYS_GPS)
	case 1077:
		ret = rtcm.decodeMsm7(SYS_GPS)
	case 1081, 1082, 1083:
		ret = rtcm.decodeMsm0(SYS_GLO)
	case 1084:
		ret = rtcm.decodeMsm4(SYS_GLO)
	case 1085:
		ret = rtcm.decodeMsm5(SYS_GLO)
	case 1086:
		ret = rtcm.decodeMsm6(SYS_GLO)
	case 1087:
		ret = rtcm.decodeMsm7(SYS_GLO)
	case 1091, 1092, 1093:
		ret = rtcm.decodeMsm0(SYS_GAL)
	case 1094:
		ret = rtcm.decodeMsm4(SYS_GAL)
	case 1095:
		ret = rtcm.decodeMsm5(SYS_GAL)
	case 1096:
		ret = rtcm.decodeMsm6(SYS_GAL)
	case 1097:
		ret = rtcm.decodeMsm7(SYS_GAL)
	case 1101, 1102, 1103:
		ret = rtcm.decodeMsm0(SYS_SBS)
	case 1104:
		ret = rtcm.decodeMsm4(SYS_SBS)
	case 1105:
		ret = rtcm.decodeMsm5(SYS_SBS)
	case 1106:
		ret = rtcm.decodeMsm6(SYS_SBS)
	case 1107:
		ret = rtcm.decodeMsm7(SYS_SBS)
	case 1111, 1112, 1113:
		ret = rtcm.decodeMsm0(SYS_QZS)
	case 1114:
		ret = rtcm.decodeMsm4(SYS_QZS)
	case 1115:
		ret = rtcm.decodeMsm5(SYS_QZS)
	case 1116:
		ret = rtcm.decodeMsm6(SYS_QZS)
	case 1117:
		ret = rtcm.decodeMsm7(SYS_QZS)
	case 1121, 1122, 1123:
		ret = rtcm.decodeMsm0(SYS_CMP)
	case 1124:
		ret = rtcm.decodeMsm4(SYS_CMP)
	case 1125:
		ret = rtcm.decodeMsm5(SYS_CMP)
	case 1126:
		ret = rtcm.decodeMsm6(SYS_CMP)
	case 1127:
		ret = rtcm.decodeMsm7(SYS_CMP)
	case 1131, 1132, 1133:
		ret = rtcm.decodeMsm0(SYS_IRN)
	case 1134:
		ret = rtcm.decodeMsm4(SYS_IRN)
	case 1135:
		ret = rtcm.decodeMsm5(SYS_IRN)
	case 1136:
		ret = rtcm.decodeMsm6(SYS_IRN)
	case 1137:
		ret = rtcm.decodeMsm7(SYS_IRN)
	case 1230:
		ret = rtcm.decodeType1230()
	case 1240: /* draft */
		ret = rtcm.decodeSsr1(SYS_GAL, 0)
	case 1241:
		ret = rtcm.decodeSsr2(SYS_GAL, 0)
	case 1242:
		ret = rtcm.decodeSsr3(SYS_GAL, 0)
	case 1243:
		ret = rtcm.decodeSsr4(SYS_GAL, 0)
	case 1244:
		ret = rtcm.decodeSsr5(SYS_GAL, 0)
	case 1245:
		ret = rtcm.decodeSsr6(SYS_GAL, 0)
	case 1246:
		ret = rtcm.decodeSsr1(SYS_QZS, 0)
	case 1247:
		ret = rtcm.decodeSsr2(SYS_QZS, 0)
	case 1248:
		ret = rtcm.decodeSsr3(SYS_QZS, 0)
	case 1249:
		ret = rtcm.decodeSsr4(SYS_QZS, 0)
	case 1250:
		ret = rtcm.decodeSsr5(SYS_QZS, 0)
	case 1251:
		ret = rtcm.decodeSsr6(SYS_QZS, 0)
	case 1252:
		ret = rtcm.decodeSsr1(SYS_SBS, 0)
	case 1253:
		ret = rtcm.decodeSsr2(SYS_SBS, 0)
	case 1254:
		ret = rtcm.decodeSsr3(SYS_SBS, 0)
	case 1255:
		ret = rtcm.decodeSsr4(SYS_SBS, 0)
	case 1256:
		ret = rtcm.decodeSsr5(SYS_SBS, 0)
	case 1257:
		ret = rtcm.decodeSsr6(SYS_SBS, 0)
	case 1258:
		ret = rtcm.decodeSsr1(SYS_CMP, 0)
	case 1259:
		ret = rtcm.decodeSsr2(SYS_CMP, 0)
	case 1260:
		ret = rtcm.decodeSsr3(SYS_CMP, 0)
	case 1261:
		ret = rtcm.decodeSsr4(SYS_CMP, 0)
	case 1262:
		ret = rtcm.decodeSsr5(SYS_CMP, 0)
	case 1263:
		ret = rtcm.decodeSsr6(SYS_CMP, 0)
	case 11: /* tentative */
		ret = rtcm.decodeSsr7(SYS_GPS, 0)
	case 12:
		ret = rtcm.decodeSsr7(SYS_GAL, 0)
	case 13:
		ret = rtcm.decodeSsr7(SYS_QZS, 0)
	case 14:
		ret = rtcm.decodeSsr7(SYS_CMP, 0)
	case 4076:
		ret = rtcm.decodeType4076()
	default:
		Trace(4, "rtcm3 %d: not supported message\n", ctype)
	}
	if ret >= 0 {
		switch {
		case 1001 <= ctype && ctype <= 1299:
			rtcm.Nmsg3[ctype-1000]++ /*   1-299 */
		case 4070 <= ctype && ctype <= 4099:
			rtcm.Nmsg3[ctype-3770]++ /* 300-329 */
		default:
			rtcm.Nmsg3[0]++ /* other */
		}
	}
	return ret
}
