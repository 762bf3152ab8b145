/*------------------------------------------------------------------------------
* rtcm3e.go : rtcm ver.3 message encoding
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"math"
)

func roundU(x float64) uint32 { return uint32(math.Floor(x + 0.5)) }

/* set sign-magnitude bits */
func setBitG(buff []uint8, pos, nbit int, value int32) {
	if value < 0 {
		SetBitU(buff, pos, 1, 1)
		SetBitU(buff, pos+1, nbit-1, uint32(-value))
	} else {
		SetBitU(buff, pos, 1, 0)
		SetBitU(buff, pos+1, nbit-1, uint32(value))
	}
}

/* set signed 38bit field */
func set38Bits(buff []uint8, pos int, value float64) {
	wordH := int(math.Floor(value / 64.0))
	wordL := uint32(value - float64(wordH)*64.0)
	SetBits(buff, pos, 32, int32(wordH))
	SetBitU(buff, pos+32, 6, wordL)
}

/* continuous lock time since the last slip (s) */
func lockTime(time Gtime, lltime *Gtime, lli uint8) float64 {
	if lltime.Time == 0 || lli&1 == 1 {
		*lltime = time
	}
	return TimeDiff(time, *lltime)
}

/* GLONASS frequency channel number in RTCM (fcn+7, -1:error) */
func (rtcm *Rtcm) fcnGlo(sat int) int {
	var prn int
	if SatSys(sat, &prn) != SYS_GLO {
		return -1
	}
	if rtcm.NavData.Geph[prn-1].Sat == sat {
		return rtcm.NavData.Geph[prn-1].Frq + 7
	}
	if rtcm.NavData.GloFcn[prn-1] > 0 { /* fcn+8 (0: no data) */
		return rtcm.NavData.GloFcn[prn-1] - 8 + 7
	}
	return -1
}

/* lock time indicator */
func toLock(lock int) int {
	switch {
	case lock < 0:
		return 0
	case lock < 24:
		return lock
	case lock < 72:
		return (lock + 24) / 2
	case lock < 168:
		return (lock + 120) / 4
	case lock < 360:
		return (lock + 408) / 8
	case lock < 744:
		return (lock + 1176) / 16
	case lock < 937:
		return (lock + 3096) / 32
	}
	return 127
}

/* MSM lock time indicator */
func toMsmLock(lock float64) int {
	for i, lim := range [15]float64{
		0.032, 0.064, 0.128, 0.256, 0.512, 1.024, 2.048, 4.096,
		8.192, 16.384, 32.768, 65.536, 131.072, 262.144, 524.288} {
		if lock < lim {
			return i
		}
	}
	return 15
}

/* MSM lock time indicator with extended-resolution */
func toMsmLockEx(lock float64) int {
	lockMs := int(lock * 1000.0)

	switch {
	case lock < 0.0:
		return 0
	case lock < 0.064:
		return lockMs
	case lock < 0.128:
		return (lockMs + 64) / 2
	case lock < 0.256:
		return (lockMs + 256) / 4
	case lock < 0.512:
		return (lockMs + 768) / 8
	case lock < 1.024:
		return (lockMs + 2048) / 16
	case lock < 2.048:
		return (lockMs + 5120) / 32
	case lock < 4.096:
		return (lockMs + 12288) / 64
	case lock < 8.192:
		return (lockMs + 28672) / 128
	case lock < 16.384:
		return (lockMs + 65536) / 256
	case lock < 32.768:
		return (lockMs + 147456) / 512
	case lock < 65.536:
		return (lockMs + 327680) / 1024
	case lock < 131.072:
		return (lockMs + 720896) / 2048
	case lock < 262.144:
		return (lockMs + 1572864) / 4096
	case lock < 524.288:
		return (lockMs + 3407872) / 8192
	case lock < 1048.576:
		return (lockMs + 7340032) / 16384
	case lock < 2097.152:
		return (lockMs + 15728640) / 32768
	case lock < 4194.304:
		return (lockMs + 33554432) / 65536
	case lock < 8388.608:
		return (lockMs + 71303168) / 131072
	case lock < 16777.216:
		return (lockMs + 150994944) / 262144
	case lock < 33554.432:
		return (lockMs + 318767104) / 524288
	case lock < 67108.864:
		return (lockMs + 671088640) / 1048576
	}
	return 704
}

/* L1 code indicator GPS */
func toCode1Gps(code uint8) int {
	switch code {
	case CODE_L1P, CODE_L1W, CODE_L1Y, CODE_L1N:
		return 1 /* L1 P(Y) direct */
	}
	return 0 /* L1 C/A */
}

/* L2 code indicator GPS */
func toCode2Gps(code uint8) int {
	switch code {
	case CODE_L2P, CODE_L2Y:
		return 1 /* L2 P(Y) direct */
	case CODE_L2D:
		return 2 /* L2 P(Y) cross-correlated */
	case CODE_L2W, CODE_L2N:
		return 3 /* L2 correlated P/Y */
	}
	return 0 /* L2 C/A or L2C */
}

/* L1 code indicator GLONASS */
func toCode1Glo(code uint8) int {
	if code == CODE_L1P {
		return 1
	}
	return 0
}

/* L2 code indicator GLONASS */
func toCode2Glo(code uint8) int {
	if code == CODE_L2P {
		return 1
	}
	return 0
}

/* carrier-phase - pseudorange in cycle */
func cpPr(cp, prCyc float64) float64 {
	return math.Mod(cp-prCyc+750.0, 1500.0) - 750.0
}

/* generate obs field data GPS */
func (rtcm *Rtcm) genObsGps(data *ObsD, code1, pr1, ppr1, lock1, amb, cnr1,
	code2, pr21, ppr2, lock2, cnr2 *int) {
	var pr1c, ppr float64

	lam1 := CLIGHT / FREQ1
	lam2 := CLIGHT / FREQ2
	*pr1, *amb = 0, 0
	if ppr1 != nil {
		*ppr1 = invalidCP /* invalid values */
	}
	if pr21 != nil {
		*pr21 = invalidPR2
	}
	if ppr2 != nil {
		*ppr2 = invalidCP
	}
	/* L1 pseudorange */
	if data.P[0] != 0.0 && data.Code[0] > 0 {
		*amb = int(math.Floor(data.P[0] / PRUNIT_GPS))
		*pr1 = roundI((data.P[0] - float64(*amb)*PRUNIT_GPS) / 0.02)
		pr1c = float64(*pr1)*0.02 + float64(*amb)*PRUNIT_GPS
	}
	/* L1 phaserange - L1 pseudorange */
	if data.P[0] != 0.0 && data.L[0] != 0.0 && data.Code[0] > 0 && ppr1 != nil {
		ppr = cpPr(data.L[0], pr1c/lam1)
		*ppr1 = roundI(ppr * lam1 / 0.0005)
	}
	/* L2 - L1 pseudorange */
	if data.P[0] != 0.0 && data.P[1] != 0.0 && data.Code[0] > 0 && data.Code[1] > 0 &&
		math.Abs(data.P[1]-pr1c) <= 163.82 && pr21 != nil {
		*pr21 = roundI((data.P[1] - pr1c) / 0.02)
	}
	/* L2 phaserange - L1 pseudorange */
	if data.P[0] != 0.0 && data.L[1] != 0.0 && data.Code[0] > 0 && data.Code[1] > 0 &&
		ppr2 != nil {
		ppr = cpPr(data.L[1], pr1c/lam2)
		*ppr2 = roundI(ppr * lam2 / 0.0005)
	}
	lt1 := int(lockTime(data.Time, &rtcm.Lltime[data.Sat-1][0], data.LLI[0]))
	lt2 := int(lockTime(data.Time, &rtcm.Lltime[data.Sat-1][1], data.LLI[1]))

	if lock1 != nil {
		*lock1 = toLock(lt1)
	}
	if lock2 != nil {
		*lock2 = toLock(lt2)
	}
	if cnr1 != nil {
		*cnr1 = roundI(float64(data.SNR[0]) * SNR_UNIT / 0.25)
	}
	if cnr2 != nil {
		*cnr2 = roundI(float64(data.SNR[1]) * SNR_UNIT / 0.25)
	}
	if code1 != nil {
		*code1 = toCode1Gps(data.Code[0])
	}
	if code2 != nil {
		*code2 = toCode2Gps(data.Code[1])
	}
}

/* generate obs field data GLONASS */
func (rtcm *Rtcm) genObsGlo(data *ObsD, fcn int, code1, pr1, ppr1, lock1, amb, cnr1,
	code2, pr21, ppr2, lock2, cnr2 *int) {
	var lam1, lam2, pr1c, ppr float64

	if fcn >= 0 { /* fcn+7 */
		lam1 = CLIGHT / (FREQ1_GLO + DFRQ1_GLO*float64(fcn-7))
		lam2 = CLIGHT / (FREQ2_GLO + DFRQ2_GLO*float64(fcn-7))
	}
	*pr1, *amb = 0, 0
	if ppr1 != nil {
		*ppr1 = invalidCP /* invalid values */
	}
	if pr21 != nil {
		*pr21 = invalidPR2
	}
	if ppr2 != nil {
		*ppr2 = invalidCP
	}
	/* L1 pseudorange */
	if data.P[0] != 0.0 {
		*amb = int(math.Floor(data.P[0] / PRUNIT_GLO))
		*pr1 = roundI((data.P[0] - float64(*amb)*PRUNIT_GLO) / 0.02)
		pr1c = float64(*pr1)*0.02 + float64(*amb)*PRUNIT_GLO
	}
	/* L1 phaserange - L1 pseudorange */
	if data.P[0] != 0.0 && data.L[0] != 0.0 && data.Code[0] > 0 && lam1 > 0.0 &&
		ppr1 != nil {
		ppr = cpPr(data.L[0], pr1c/lam1)
		*ppr1 = roundI(ppr * lam1 / 0.0005)
	}
	/* L2 - L1 pseudorange */
	if data.P[0] != 0.0 && data.P[1] != 0.0 && data.Code[0] > 0 && data.Code[1] > 0 &&
		math.Abs(data.P[1]-pr1c) <= 163.82 && pr21 != nil {
		*pr21 = roundI((data.P[1] - pr1c) / 0.02)
	}
	/* L2 phaserange - L1 pseudorange */
	if data.P[0] != 0.0 && data.L[1] != 0.0 && data.Code[0] > 0 && data.Code[1] > 0 &&
		lam2 > 0.0 && ppr2 != nil {
		ppr = cpPr(data.L[1], pr1c/lam2)
		*ppr2 = roundI(ppr * lam2 / 0.0005)
	}
	lt1 := int(lockTime(data.Time, &rtcm.Lltime[data.Sat-1][0], data.LLI[0]))
	lt2 := int(lockTime(data.Time, &rtcm.Lltime[data.Sat-1][1], data.LLI[1]))

	if lock1 != nil {
		*lock1 = toLock(lt1)
	}
	if lock2 != nil {
		*lock2 = toLock(lt2)
	}
	if cnr1 != nil {
		*cnr1 = roundI(float64(data.SNR[0]) * SNR_UNIT / 0.25)
	}
	if cnr2 != nil {
		*cnr2 = roundI(float64(data.SNR[1]) * SNR_UNIT / 0.25)
	}
	if code1 != nil {
		*code1 = toCode1Glo(data.Code[0])
	}
	if code2 != nil {
		*code2 = toCode2Glo(data.Code[1])
	}
}

/* encode legacy observation message header */
func (rtcm *Rtcm) encodeHead(ctype, sys, sync, nsat int) int {
	var week, epoch int
	i := 24

	Trace(4, "encodeHead: type=%d sync=%d sys=%d nsat=%d\n", ctype, sync, sys, nsat)

	SetBitU(rtcm.Buff[:], i, 12, uint32(ctype))
	i += 12 /* message no */
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12 /* ref station id */

	if sys == SYS_GLO {
		tow := Time2GpsT(TimeAdd(GpsT2Utc(rtcm.Time), 10800.0), &week)
		epoch = roundI(math.Mod(tow, 86400.0) / 0.001)
		SetBitU(rtcm.Buff[:], i, 27, uint32(epoch))
		i += 27 /* glonass epoch time */
	} else {
		tow := Time2GpsT(rtcm.Time, &week)
		epoch = roundI(tow / 0.001)
		SetBitU(rtcm.Buff[:], i, 30, uint32(epoch))
		i += 30 /* gps epoch time */
	}
	SetBitU(rtcm.Buff[:], i, 1, uint32(sync))
	i++ /* synchronous gnss flag */
	SetBitU(rtcm.Buff[:], i, 5, uint32(nsat))
	i += 5 /* no of satellites */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* smoothing indicator */
	SetBitU(rtcm.Buff[:], i, 3, 0)
	i += 3 /* smoothing interval */
	return i
}

/* encode type 1001: basic L1-only GPS RTK observables */
func (rtcm *Rtcm) encodeType1001(sync int) int {
	var nsat, prn, code1, pr1, ppr1, lock1, amb int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		if SatSys(rtcm.ObsData.Data[j].Sat, &prn)&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1001, SYS_GPS, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sys := SatSys(rtcm.ObsData.Data[j].Sat, &prn)
		if sys&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		if sys == SYS_SBS {
			prn -= 80 /* 40-58: sbas 120-138 */
		}
		rtcm.genObsGps(&rtcm.ObsData.Data[j], &code1, &pr1, &ppr1, &lock1, &amb,
			nil, nil, nil, nil, nil, nil)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 24, uint32(pr1))
		i += 24
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1002: extended L1-only GPS RTK observables */
func (rtcm *Rtcm) encodeType1002(sync int) int {
	var nsat, prn, code1, pr1, ppr1, lock1, amb, cnr1 int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		if SatSys(rtcm.ObsData.Data[j].Sat, &prn)&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1002, SYS_GPS, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sys := SatSys(rtcm.ObsData.Data[j].Sat, &prn)
		if sys&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		if sys == SYS_SBS {
			prn -= 80 /* 40-58: sbas 120-138 */
		}
		rtcm.genObsGps(&rtcm.ObsData.Data[j], &code1, &pr1, &ppr1, &lock1, &amb,
			&cnr1, nil, nil, nil, nil, nil)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 24, uint32(pr1))
		i += 24
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
		SetBitU(rtcm.Buff[:], i, 8, uint32(amb))
		i += 8
		SetBitU(rtcm.Buff[:], i, 8, uint32(cnr1))
		i += 8
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1003: basic L1&L2 GPS RTK observables */
func (rtcm *Rtcm) encodeType1003(sync int) int {
	var nsat, prn, code1, pr1, ppr1, lock1, amb, code2, pr21, ppr2, lock2 int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		if SatSys(rtcm.ObsData.Data[j].Sat, &prn)&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1003, SYS_GPS, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sys := SatSys(rtcm.ObsData.Data[j].Sat, &prn)
		if sys&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		if sys == SYS_SBS {
			prn -= 80 /* 40-58: sbas 120-138 */
		}
		rtcm.genObsGps(&rtcm.ObsData.Data[j], &code1, &pr1, &ppr1, &lock1, &amb,
			nil, &code2, &pr21, &ppr2, &lock2, nil)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 24, uint32(pr1))
		i += 24
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
		SetBitU(rtcm.Buff[:], i, 2, uint32(code2))
		i += 2
		SetBits(rtcm.Buff[:], i, 14, int32(pr21))
		i += 14
		SetBits(rtcm.Buff[:], i, 20, int32(ppr2))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock2))
		i += 7
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1004: extended L1&L2 GPS RTK observables */
func (rtcm *Rtcm) encodeType1004(sync int) int {
	var nsat, prn, code1, pr1, ppr1, lock1, amb, cnr1 int
	var code2, pr21, ppr2, lock2, cnr2 int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		if SatSys(rtcm.ObsData.Data[j].Sat, &prn)&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1004, SYS_GPS, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sys := SatSys(rtcm.ObsData.Data[j].Sat, &prn)
		if sys&(SYS_GPS|SYS_SBS) == 0 {
			continue
		}
		if sys == SYS_SBS {
			prn -= 80 /* 40-58: sbas 120-138 */
		}
		rtcm.genObsGps(&rtcm.ObsData.Data[j], &code1, &pr1, &ppr1, &lock1, &amb,
			&cnr1, &code2, &pr21, &ppr2, &lock2, &cnr2)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 24, uint32(pr1))
		i += 24
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
		SetBitU(rtcm.Buff[:], i, 8, uint32(amb))
		i += 8
		SetBitU(rtcm.Buff[:], i, 8, uint32(cnr1))
		i += 8
		SetBitU(rtcm.Buff[:], i, 2, uint32(code2))
		i += 2
		SetBits(rtcm.Buff[:], i, 14, int32(pr21))
		i += 14
		SetBits(rtcm.Buff[:], i, 20, int32(ppr2))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock2))
		i += 7
		SetBitU(rtcm.Buff[:], i, 8, uint32(cnr2))
		i += 8
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1005: stationary RTK reference station ARP */
func (rtcm *Rtcm) encodeType1005(sync int) int {
	p := rtcm.StaPara.Pos[:]
	i := 24

	Trace(3, "encodeType1005: sync=%d\n", sync)

	SetBitU(rtcm.Buff[:], i, 12, 1005)
	i += 12 /* message no */
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12 /* ref station id */
	SetBitU(rtcm.Buff[:], i, 6, 0)
	i += 6 /* itrf realization year */
	SetBitU(rtcm.Buff[:], i, 1, 1)
	i++ /* gps indicator */
	SetBitU(rtcm.Buff[:], i, 1, 1)
	i++ /* glonass indicator */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* galileo indicator */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* ref station indicator */
	set38Bits(rtcm.Buff[:], i, p[0]/0.0001)
	i += 38 /* antenna ref point ecef-x */
	SetBitU(rtcm.Buff[:], i, 1, 1)
	i++ /* oscillator indicator */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* reserved */
	set38Bits(rtcm.Buff[:], i, p[1]/0.0001)
	i += 38 /* antenna ref point ecef-y */
	SetBitU(rtcm.Buff[:], i, 2, 0)
	i += 2 /* quarter cycle indicator */
	set38Bits(rtcm.Buff[:], i, p[2]/0.0001)
	i += 38 /* antenna ref point ecef-z */
	rtcm.Nbit = i
	return 1
}

/* encode type 1006: stationary RTK reference station ARP with height */
func (rtcm *Rtcm) encodeType1006(sync int) int {
	p := rtcm.StaPara.Pos[:]
	var hgt uint32
	i := 24

	Trace(3, "encodeType1006: sync=%d\n", sync)

	if 0.0 <= rtcm.StaPara.Hgt && rtcm.StaPara.Hgt <= 6.5535 {
		hgt = roundU(rtcm.StaPara.Hgt / 0.0001)
	} else {
		Trace(2, "antenna height error: h=%.4f\n", rtcm.StaPara.Hgt)
	}
	SetBitU(rtcm.Buff[:], i, 12, 1006)
	i += 12 /* message no */
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12 /* ref station id */
	SetBitU(rtcm.Buff[:], i, 6, 0)
	i += 6 /* itrf realization year */
	SetBitU(rtcm.Buff[:], i, 1, 1)
	i++ /* gps indicator */
	SetBitU(rtcm.Buff[:], i, 1, 1)
	i++ /* glonass indicator */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* galileo indicator */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* ref station indicator */
	set38Bits(rtcm.Buff[:], i, p[0]/0.0001)
	i += 38 /* antenna ref point ecef-x */
	SetBitU(rtcm.Buff[:], i, 1, 1)
	i++ /* oscillator indicator */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* reserved */
	set38Bits(rtcm.Buff[:], i, p[1]/0.0001)
	i += 38 /* antenna ref point ecef-y */
	SetBitU(rtcm.Buff[:], i, 2, 0)
	i += 2 /* quarter cycle indicator */
	set38Bits(rtcm.Buff[:], i, p[2]/0.0001)
	i += 38 /* antenna ref point ecef-z */
	SetBitU(rtcm.Buff[:], i, 16, hgt)
	i += 16 /* antenna height */
	rtcm.Nbit = i
	return 1
}

func setString(buff []uint8, i int, s string) int {
	n := len(s)
	if n > 31 {
		n = 31
	}
	SetBitU(buff, i, 8, uint32(n))
	i += 8
	for j := 0; j < n; j++ {
		SetBitU(buff, i, 8, uint32(s[j]))
		i += 8
	}
	return i
}

/* encode type 1007: antenna descriptor */
func (rtcm *Rtcm) encodeType1007(sync int) int {
	i := 24

	Trace(3, "encodeType1007: sync=%d\n", sync)

	SetBitU(rtcm.Buff[:], i, 12, 1007)
	i += 12 /* message no */
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12 /* ref station id */
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.AntDes)
	SetBitU(rtcm.Buff[:], i, 8, uint32(rtcm.StaPara.AntSetup))
	i += 8 /* antenna setup id */
	rtcm.Nbit = i
	return 1
}

/* encode type 1008: antenna descriptor & serial number */
func (rtcm *Rtcm) encodeType1008(sync int) int {
	i := 24

	Trace(3, "encodeType1008: sync=%d\n", sync)

	SetBitU(rtcm.Buff[:], i, 12, 1008)
	i += 12 /* message no */
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12 /* ref station id */
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.AntDes)
	SetBitU(rtcm.Buff[:], i, 8, uint32(rtcm.StaPara.AntSetup))
	i += 8 /* antenna setup id */
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.AntSno)
	rtcm.Nbit = i
	return 1
}

/* encode type 1009: basic L1-only GLONASS RTK observables */
func (rtcm *Rtcm) encodeType1009(sync int) int {
	var nsat, prn, fcn, code1, pr1, ppr1, lock1, amb int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO || rtcm.fcnGlo(sat) < 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1009, SYS_GLO, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO {
			continue
		}
		if fcn = rtcm.fcnGlo(sat); fcn < 0 { /* fcn+7 */
			continue
		}
		rtcm.genObsGlo(&rtcm.ObsData.Data[j], fcn, &code1, &pr1, &ppr1, &lock1, &amb,
			nil, nil, nil, nil, nil, nil)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 5, uint32(fcn))
		i += 5 /* fcn+7 */
		SetBitU(rtcm.Buff[:], i, 25, uint32(pr1))
		i += 25
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1010: extended L1-only GLONASS RTK observables */
func (rtcm *Rtcm) encodeType1010(sync int) int {
	var nsat, prn, fcn, code1, pr1, ppr1, lock1, amb, cnr1 int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO || rtcm.fcnGlo(sat) < 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1010, SYS_GLO, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO {
			continue
		}
		if fcn = rtcm.fcnGlo(sat); fcn < 0 { /* fcn+7 */
			continue
		}
		rtcm.genObsGlo(&rtcm.ObsData.Data[j], fcn, &code1, &pr1, &ppr1, &lock1, &amb,
			&cnr1, nil, nil, nil, nil, nil)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 5, uint32(fcn))
		i += 5 /* fcn+7 */
		SetBitU(rtcm.Buff[:], i, 25, uint32(pr1))
		i += 25
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
		SetBitU(rtcm.Buff[:], i, 7, uint32(amb))
		i += 7
		SetBitU(rtcm.Buff[:], i, 8, uint32(cnr1))
		i += 8
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1011: basic L1&L2 GLONASS RTK observables */
func (rtcm *Rtcm) encodeType1011(sync int) int {
	var nsat, prn, fcn, code1, pr1, ppr1, lock1, amb int
	var code2, pr21, ppr2, lock2 int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO || rtcm.fcnGlo(sat) < 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1011, SYS_GLO, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO {
			continue
		}
		if fcn = rtcm.fcnGlo(sat); fcn < 0 { /* fcn+7 */
			continue
		}
		rtcm.genObsGlo(&rtcm.ObsData.Data[j], fcn, &code1, &pr1, &ppr1, &lock1, &amb,
			nil, &code2, &pr21, &ppr2, &lock2, nil)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 5, uint32(fcn))
		i += 5 /* fcn+7 */
		SetBitU(rtcm.Buff[:], i, 25, uint32(pr1))
		i += 25
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
		SetBitU(rtcm.Buff[:], i, 2, uint32(code2))
		i += 2
		SetBits(rtcm.Buff[:], i, 14, int32(pr21))
		i += 14
		SetBits(rtcm.Buff[:], i, 20, int32(ppr2))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock2))
		i += 7
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1012: extended L1&L2 GLONASS RTK observables */
func (rtcm *Rtcm) encodeType1012(sync int) int {
	var nsat, prn, fcn, code1, pr1, ppr1, lock1, amb, cnr1 int
	var code2, pr21, ppr2, lock2, cnr2 int

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO || rtcm.fcnGlo(sat) < 0 {
			continue
		}
		nsat++
	}
	i := rtcm.encodeHead(1012, SYS_GLO, sync, nsat)

	for j := 0; j < rtcm.ObsData.N() && nsat < MAXOBS; j++ {
		sat := rtcm.ObsData.Data[j].Sat
		if SatSys(sat, &prn) != SYS_GLO {
			continue
		}
		if fcn = rtcm.fcnGlo(sat); fcn < 0 { /* fcn+7 */
			continue
		}
		rtcm.genObsGlo(&rtcm.ObsData.Data[j], fcn, &code1, &pr1, &ppr1, &lock1, &amb,
			&cnr1, &code2, &pr21, &ppr2, &lock2, &cnr2)

		SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
		i += 6
		SetBitU(rtcm.Buff[:], i, 1, uint32(code1))
		i++
		SetBitU(rtcm.Buff[:], i, 5, uint32(fcn))
		i += 5 /* fcn+7 */
		SetBitU(rtcm.Buff[:], i, 25, uint32(pr1))
		i += 25
		SetBits(rtcm.Buff[:], i, 20, int32(ppr1))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock1))
		i += 7
		SetBitU(rtcm.Buff[:], i, 7, uint32(amb))
		i += 7
		SetBitU(rtcm.Buff[:], i, 8, uint32(cnr1))
		i += 8
		SetBitU(rtcm.Buff[:], i, 2, uint32(code2))
		i += 2
		SetBits(rtcm.Buff[:], i, 14, int32(pr21))
		i += 14
		SetBits(rtcm.Buff[:], i, 20, int32(ppr2))
		i += 20
		SetBitU(rtcm.Buff[:], i, 7, uint32(lock2))
		i += 7
		SetBitU(rtcm.Buff[:], i, 8, uint32(cnr2))
		i += 8
	}
	rtcm.Nbit = i
	return 1
}

/* encode type 1019: GPS ephemerides */
func (rtcm *Rtcm) encodeType1019(sync int) int {
	var prn int
	i := 24

	Trace(3, "encodeType1019: sync=%d\n", sync)

	if SatSys(rtcm.EphSat, &prn) != SYS_GPS {
		return 0
	}
	eph := &rtcm.NavData.Ephs[rtcm.EphSat-1]
	if eph.Sat != rtcm.EphSat {
		return 0
	}
	week := eph.Week % 1024
	toe := roundI(eph.Toes / 16.0)
	toc := roundI(Time2GpsT(eph.Toc, nil) / 16.0)
	sqrtA := roundU(math.Sqrt(eph.A) / P2_19)
	e := roundU(eph.E / P2_33)
	i0 := roundI(eph.I0 / P2_31 / SC2RAD)
	OMG0 := roundI(eph.OMG0 / P2_31 / SC2RAD)
	omg := roundI(eph.Omg / P2_31 / SC2RAD)
	M0 := roundI(eph.M0 / P2_31 / SC2RAD)
	deln := roundI(eph.Deln / P2_43 / SC2RAD)
	idot := roundI(eph.Idot / P2_43 / SC2RAD)
	OMGd := roundI(eph.OMGd / P2_43 / SC2RAD)
	crs := roundI(eph.Crs / P2_5)
	crc := roundI(eph.Crc / P2_5)
	cus := roundI(eph.Cus / P2_29)
	cuc := roundI(eph.Cuc / P2_29)
	cis := roundI(eph.Cis / P2_29)
	cic := roundI(eph.Cic / P2_29)
	af0 := roundI(eph.F0 / P2_31)
	af1 := roundI(eph.F1 / P2_43)
	af2 := roundI(eph.F2 / P2_55)
	tgd := roundI(eph.Tgd[0] / P2_31)

	SetBitU(rtcm.Buff[:], i, 12, 1019)
	i += 12
	SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
	i += 6
	SetBitU(rtcm.Buff[:], i, 10, uint32(week))
	i += 10
	SetBitU(rtcm.Buff[:], i, 4, uint32(eph.Sva))
	i += 4
	SetBitU(rtcm.Buff[:], i, 2, uint32(eph.Code))
	i += 2
	SetBits(rtcm.Buff[:], i, 14, int32(idot))
	i += 14
	SetBitU(rtcm.Buff[:], i, 8, uint32(eph.Iode))
	i += 8
	SetBitU(rtcm.Buff[:], i, 16, uint32(toc))
	i += 16
	SetBits(rtcm.Buff[:], i, 8, int32(af2))
	i += 8
	SetBits(rtcm.Buff[:], i, 16, int32(af1))
	i += 16
	SetBits(rtcm.Buff[:], i, 22, int32(af0))
	i += 22
	SetBitU(rtcm.Buff[:], i, 10, uint32(eph.Iodc))
	i += 10
	SetBits(rtcm.Buff[:], i, 16, int32(crs))
	i += 16
	SetBits(rtcm.Buff[:], i, 16, int32(deln))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(M0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cuc))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, e)
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cus))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, sqrtA)
	i += 32
	SetBitU(rtcm.Buff[:], i, 16, uint32(toe))
	i += 16
	SetBits(rtcm.Buff[:], i, 16, int32(cic))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(OMG0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cis))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(i0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(crc))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(omg))
	i += 32
	SetBits(rtcm.Buff[:], i, 24, int32(OMGd))
	i += 24
	SetBits(rtcm.Buff[:], i, 8, int32(tgd))
	i += 8
	SetBitU(rtcm.Buff[:], i, 6, uint32(eph.Svh))
	i += 6
	SetBitU(rtcm.Buff[:], i, 1, uint32(eph.Flag))
	i++
	if eph.Fit > 0.0 {
		SetBitU(rtcm.Buff[:], i, 1, 0)
	} else {
		SetBitU(rtcm.Buff[:], i, 1, 1)
	}
	i++
	rtcm.Nbit = i
	return 1
}

/* encode type 1020: GLONASS ephemerides */
func (rtcm *Rtcm) encodeType1020(sync int) int {
	var (
		ep            [6]float64
		pos, vel, acc [3]int
		prn           int
	)
	i := 24

	Trace(3, "encodeType1020: sync=%d\n", sync)

	if SatSys(rtcm.EphSat, &prn) != SYS_GLO {
		return 0
	}
	geph := &rtcm.NavData.Geph[prn-1]
	if geph.Sat != rtcm.EphSat {
		return 0
	}
	fcn := geph.Frq + 7

	/* time of frame within day (utc(su) + 3 hr) */
	time := TimeAdd(GpsT2Utc(geph.Tof), 10800.0)
	Time2Epoch(time, ep[:])
	tkH := int(ep[3])
	tkM := int(ep[4])
	tkS := roundI(ep[5] / 30.0)

	/* number of days since jan 1 in the leap year */
	ep[0] = math.Floor(ep[0]/4.0) * 4.0
	ep[1], ep[2] = 1.0, 1.0
	ep[3], ep[4], ep[5] = 0.0, 0.0, 0.0
	NT := int(math.Floor(TimeDiff(time, Epoch2Time(ep[:]))/86400.0 + 1.0))

	/* index of time interval within day (utc(su) + 3 hr) */
	time = TimeAdd(GpsT2Utc(geph.Toe), 10800.0)
	Time2Epoch(time, ep[:])
	tb := roundI((ep[3]*3600.0 + ep[4]*60.0 + ep[5]) / 900.0)

	for j := 0; j < 3; j++ {
		pos[j] = roundI(geph.Pos[j] / P2_11 / 1e3)
		vel[j] = roundI(geph.Vel[j] / P2_20 / 1e3)
		acc[j] = roundI(geph.Acc[j] / P2_30 / 1e3)
	}
	gamn := roundI(geph.Gamn / P2_40)
	taun := roundI(geph.Taun / P2_30)
	dtaun := roundI(geph.DTaun / P2_30)

	SetBitU(rtcm.Buff[:], i, 12, 1020)
	i += 12
	SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
	i += 6
	SetBitU(rtcm.Buff[:], i, 5, uint32(fcn))
	i += 5
	SetBitU(rtcm.Buff[:], i, 4, 0)
	i += 4 /* almanac health, P1 */
	SetBitU(rtcm.Buff[:], i, 5, uint32(tkH))
	i += 5
	SetBitU(rtcm.Buff[:], i, 6, uint32(tkM))
	i += 6
	SetBitU(rtcm.Buff[:], i, 1, uint32(tkS))
	i++
	SetBitU(rtcm.Buff[:], i, 1, uint32(geph.Svh))
	i++ /* Bn */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* P2 */
	SetBitU(rtcm.Buff[:], i, 7, uint32(tb))
	i += 7
	setBitG(rtcm.Buff[:], i, 24, int32(vel[0]))
	i += 24
	setBitG(rtcm.Buff[:], i, 27, int32(pos[0]))
	i += 27
	setBitG(rtcm.Buff[:], i, 5, int32(acc[0]))
	i += 5
	setBitG(rtcm.Buff[:], i, 24, int32(vel[1]))
	i += 24
	setBitG(rtcm.Buff[:], i, 27, int32(pos[1]))
	i += 27
	setBitG(rtcm.Buff[:], i, 5, int32(acc[1]))
	i += 5
	setBitG(rtcm.Buff[:], i, 24, int32(vel[2]))
	i += 24
	setBitG(rtcm.Buff[:], i, 27, int32(pos[2]))
	i += 27
	setBitG(rtcm.Buff[:], i, 5, int32(acc[2]))
	i += 5
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* P3 */
	setBitG(rtcm.Buff[:], i, 11, int32(gamn))
	i += 11
	SetBitU(rtcm.Buff[:], i, 3, 0)
	i += 3 /* P, ln */
	setBitG(rtcm.Buff[:], i, 22, int32(taun))
	i += 22
	setBitG(rtcm.Buff[:], i, 5, int32(dtaun))
	i += 5
	SetBitU(rtcm.Buff[:], i, 5, uint32(geph.Age))
	i += 5 /* En */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* P4 */
	SetBitU(rtcm.Buff[:], i, 4, 0)
	i += 4 /* FT */
	SetBitU(rtcm.Buff[:], i, 11, uint32(NT))
	i += 11
	SetBitU(rtcm.Buff[:], i, 2, 0)
	i += 2 /* M */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* flag for additional data */
	SetBitU(rtcm.Buff[:], i, 11, 0)
	i += 11 /* NA */
	SetBitU(rtcm.Buff[:], i, 32, 0)
	i += 32 /* tauc */
	SetBitU(rtcm.Buff[:], i, 5, 0)
	i += 5 /* N4 */
	SetBitU(rtcm.Buff[:], i, 22, 0)
	i += 22 /* taugps */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* ln */
	SetBitU(rtcm.Buff[:], i, 7, 0)
	i += 7
	rtcm.Nbit = i
	return 1
}

/* encode type 1033: receiver and antenna descriptor */
func (rtcm *Rtcm) encodeType1033(sync int) int {
	i := 24

	Trace(3, "encodeType1033: sync=%d\n", sync)

	SetBitU(rtcm.Buff[:], i, 12, 1033)
	i += 12
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.AntDes)
	SetBitU(rtcm.Buff[:], i, 8, uint32(rtcm.StaPara.AntSetup))
	i += 8
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.AntSno)
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.Type)
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.RecVer)
	i = setString(rtcm.Buff[:], i, rtcm.StaPara.RecSN)
	rtcm.Nbit = i
	return 1
}

/* encode type 1041: NavIC/IRNSS ephemerides */
func (rtcm *Rtcm) encodeType1041(sync int) int {
	var prn int
	i := 24

	Trace(3, "encodeType1041: sync=%d\n", sync)

	if SatSys(rtcm.EphSat, &prn) != SYS_IRN {
		return 0
	}
	eph := &rtcm.NavData.Ephs[rtcm.EphSat-1]
	if eph.Sat != rtcm.EphSat {
		return 0
	}
	week := eph.Week % 1024
	toe := roundI(eph.Toes / 16.0)
	toc := roundI(Time2GpsT(eph.Toc, nil) / 16.0)
	sqrtA := roundU(math.Sqrt(eph.A) / P2_19)
	e := roundU(eph.E / P2_33)
	i0 := roundI(eph.I0 / P2_31 / SC2RAD)
	OMG0 := roundI(eph.OMG0 / P2_31 / SC2RAD)
	omg := roundI(eph.Omg / P2_31 / SC2RAD)
	M0 := roundI(eph.M0 / P2_31 / SC2RAD)
	deln := roundI(eph.Deln / P2_41 / SC2RAD)
	idot := roundI(eph.Idot / P2_43 / SC2RAD)
	OMGd := roundI(eph.OMGd / P2_41 / SC2RAD)
	crs := roundI(eph.Crs / 0.0625)
	crc := roundI(eph.Crc / 0.0625)
	cus := roundI(eph.Cus / P2_28)
	cuc := roundI(eph.Cuc / P2_28)
	cis := roundI(eph.Cis / P2_28)
	cic := roundI(eph.Cic / P2_28)
	af0 := roundI(eph.F0 / P2_31)
	af1 := roundI(eph.F1 / P2_43)
	af2 := roundI(eph.F2 / P2_55)
	tgd := roundI(eph.Tgd[0] / P2_31)

	SetBitU(rtcm.Buff[:], i, 12, 1041)
	i += 12
	SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
	i += 6
	SetBitU(rtcm.Buff[:], i, 10, uint32(week))
	i += 10
	SetBits(rtcm.Buff[:], i, 22, int32(af0))
	i += 22
	SetBits(rtcm.Buff[:], i, 16, int32(af1))
	i += 16
	SetBits(rtcm.Buff[:], i, 8, int32(af2))
	i += 8
	SetBitU(rtcm.Buff[:], i, 4, uint32(eph.Sva))
	i += 4
	SetBitU(rtcm.Buff[:], i, 16, uint32(toc))
	i += 16
	SetBits(rtcm.Buff[:], i, 8, int32(tgd))
	i += 8
	SetBits(rtcm.Buff[:], i, 22, int32(deln))
	i += 22
	SetBitU(rtcm.Buff[:], i, 8, uint32(eph.Iode))
	i += 8 + 10 /* IODEC */
	SetBitU(rtcm.Buff[:], i, 2, uint32(eph.Svh))
	i += 2 /* L5+S health */
	SetBits(rtcm.Buff[:], i, 15, int32(cuc))
	i += 15
	SetBits(rtcm.Buff[:], i, 15, int32(cus))
	i += 15
	SetBits(rtcm.Buff[:], i, 15, int32(cic))
	i += 15
	SetBits(rtcm.Buff[:], i, 15, int32(cis))
	i += 15
	SetBits(rtcm.Buff[:], i, 15, int32(crc))
	i += 15
	SetBits(rtcm.Buff[:], i, 15, int32(crs))
	i += 15
	SetBits(rtcm.Buff[:], i, 14, int32(idot))
	i += 14
	SetBits(rtcm.Buff[:], i, 32, int32(M0))
	i += 32
	SetBitU(rtcm.Buff[:], i, 16, uint32(toe))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, e)
	i += 32
	SetBitU(rtcm.Buff[:], i, 32, sqrtA)
	i += 32
	SetBits(rtcm.Buff[:], i, 32, int32(OMG0))
	i += 32
	SetBits(rtcm.Buff[:], i, 32, int32(omg))
	i += 32
	SetBits(rtcm.Buff[:], i, 22, int32(OMGd))
	i += 22
	SetBits(rtcm.Buff[:], i, 32, int32(i0))
	i += 32 + 4
	rtcm.Nbit = i
	return 1
}

/* encode type 1044: QZSS ephemerides */
func (rtcm *Rtcm) encodeType1044(sync int) int {
	var prn int
	i := 24

	Trace(3, "encodeType1044: sync=%d\n", sync)

	if SatSys(rtcm.EphSat, &prn) != SYS_QZS {
		return 0
	}
	eph := &rtcm.NavData.Ephs[rtcm.EphSat-1]
	if eph.Sat != rtcm.EphSat {
		return 0
	}
	week := eph.Week % 1024
	toe := roundI(eph.Toes / 16.0)
	toc := roundI(Time2GpsT(eph.Toc, nil) / 16.0)
	sqrtA := roundU(math.Sqrt(eph.A) / P2_19)
	e := roundU(eph.E / P2_33)
	i0 := roundI(eph.I0 / P2_31 / SC2RAD)
	OMG0 := roundI(eph.OMG0 / P2_31 / SC2RAD)
	omg := roundI(eph.Omg / P2_31 / SC2RAD)
	M0 := roundI(eph.M0 / P2_31 / SC2RAD)
	deln := roundI(eph.Deln / P2_43 / SC2RAD)
	idot := roundI(eph.Idot / P2_43 / SC2RAD)
	OMGd := roundI(eph.OMGd / P2_43 / SC2RAD)
	crs := roundI(eph.Crs / P2_5)
	crc := roundI(eph.Crc / P2_5)
	cus := roundI(eph.Cus / P2_29)
	cuc := roundI(eph.Cuc / P2_29)
	cis := roundI(eph.Cis / P2_29)
	cic := roundI(eph.Cic / P2_29)
	af0 := roundI(eph.F0 / P2_31)
	af1 := roundI(eph.F1 / P2_43)
	af2 := roundI(eph.F2 / P2_55)
	tgd := roundI(eph.Tgd[0] / P2_31)

	SetBitU(rtcm.Buff[:], i, 12, 1044)
	i += 12
	SetBitU(rtcm.Buff[:], i, 4, uint32(prn-192))
	i += 4
	SetBitU(rtcm.Buff[:], i, 16, uint32(toc))
	i += 16
	SetBits(rtcm.Buff[:], i, 8, int32(af2))
	i += 8
	SetBits(rtcm.Buff[:], i, 16, int32(af1))
	i += 16
	SetBits(rtcm.Buff[:], i, 22, int32(af0))
	i += 22
	SetBitU(rtcm.Buff[:], i, 8, uint32(eph.Iode))
	i += 8
	SetBits(rtcm.Buff[:], i, 16, int32(crs))
	i += 16
	SetBits(rtcm.Buff[:], i, 16, int32(deln))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(M0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cuc))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, e)
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cus))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, sqrtA)
	i += 32
	SetBitU(rtcm.Buff[:], i, 16, uint32(toe))
	i += 16
	SetBits(rtcm.Buff[:], i, 16, int32(cic))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(OMG0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cis))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(i0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(crc))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(omg))
	i += 32
	SetBits(rtcm.Buff[:], i, 24, int32(OMGd))
	i += 24
	SetBits(rtcm.Buff[:], i, 14, int32(idot))
	i += 14
	SetBitU(rtcm.Buff[:], i, 2, uint32(eph.Code))
	i += 2
	SetBitU(rtcm.Buff[:], i, 10, uint32(week))
	i += 10
	SetBitU(rtcm.Buff[:], i, 4, uint32(eph.Sva))
	i += 4
	SetBitU(rtcm.Buff[:], i, 6, uint32(eph.Svh))
	i += 6
	SetBits(rtcm.Buff[:], i, 8, int32(tgd))
	i += 8
	SetBitU(rtcm.Buff[:], i, 10, uint32(eph.Iodc))
	i += 10
	if eph.Fit == 2.0 {
		SetBitU(rtcm.Buff[:], i, 1, 0)
	} else {
		SetBitU(rtcm.Buff[:], i, 1, 1)
	}
	i++
	rtcm.Nbit = i
	return 1
}

/* encode type 1045: Galileo F/NAV satellite ephemerides */
func (rtcm *Rtcm) encodeType1045(sync int) int {
	var prn int
	i := 24

	Trace(3, "encodeType1045: sync=%d\n", sync)

	if SatSys(rtcm.EphSat, &prn) != SYS_GAL {
		return 0
	}
	eph := &rtcm.NavData.Ephs[rtcm.EphSat-1+MAXSAT] /* F/NAV */
	if eph.Sat != rtcm.EphSat {
		return 0
	}
	week := (eph.Week - 1024) % 4096 /* gst-week = gal-week - 1024 */
	toe := roundI(eph.Toes / 60.0)
	toc := roundI(Time2GpsT(eph.Toc, nil) / 60.0)
	sqrtA := roundU(math.Sqrt(eph.A) / P2_19)
	e := roundU(eph.E / P2_33)
	i0 := roundI(eph.I0 / P2_31 / SC2RAD)
	OMG0 := roundI(eph.OMG0 / P2_31 / SC2RAD)
	omg := roundI(eph.Omg / P2_31 / SC2RAD)
	M0 := roundI(eph.M0 / P2_31 / SC2RAD)
	deln := roundI(eph.Deln / P2_43 / SC2RAD)
	idot := roundI(eph.Idot / P2_43 / SC2RAD)
	OMGd := roundI(eph.OMGd / P2_43 / SC2RAD)
	crs := roundI(eph.Crs / P2_5)
	crc := roundI(eph.Crc / P2_5)
	cus := roundI(eph.Cus / P2_29)
	cuc := roundI(eph.Cuc / P2_29)
	cis := roundI(eph.Cis / P2_29)
	cic := roundI(eph.Cic / P2_29)
	af0 := roundI(eph.F0 / P2_34)
	af1 := roundI(eph.F1 / P2_46)
	af2 := roundI(eph.F2 / P2_59)
	bgd1 := roundI(eph.Tgd[0] / P2_32) /* E5a/E1 */
	oshs := (eph.Svh >> 4) & 3         /* E5a SVH */
	osdvs := (eph.Svh >> 3) & 1        /* E5a DVS */

	SetBitU(rtcm.Buff[:], i, 12, 1045)
	i += 12
	SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
	i += 6
	SetBitU(rtcm.Buff[:], i, 12, uint32(week))
	i += 12
	SetBitU(rtcm.Buff[:], i, 10, uint32(eph.Iode))
	i += 10
	SetBitU(rtcm.Buff[:], i, 8, uint32(eph.Sva))
	i += 8
	SetBits(rtcm.Buff[:], i, 14, int32(idot))
	i += 14
	SetBitU(rtcm.Buff[:], i, 14, uint32(toc))
	i += 14
	SetBits(rtcm.Buff[:], i, 6, int32(af2))
	i += 6
	SetBits(rtcm.Buff[:], i, 21, int32(af1))
	i += 21
	SetBits(rtcm.Buff[:], i, 31, int32(af0))
	i += 31
	SetBits(rtcm.Buff[:], i, 16, int32(crs))
	i += 16
	SetBits(rtcm.Buff[:], i, 16, int32(deln))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(M0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cuc))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, e)
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cus))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, sqrtA)
	i += 32
	SetBitU(rtcm.Buff[:], i, 14, uint32(toe))
	i += 14
	SetBits(rtcm.Buff[:], i, 16, int32(cic))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(OMG0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cis))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(i0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(crc))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(omg))
	i += 32
	SetBits(rtcm.Buff[:], i, 24, int32(OMGd))
	i += 24
	SetBits(rtcm.Buff[:], i, 10, int32(bgd1))
	i += 10
	SetBitU(rtcm.Buff[:], i, 2, uint32(oshs))
	i += 2 /* E5a SVH */
	SetBitU(rtcm.Buff[:], i, 1, uint32(osdvs))
	i++ /* E5a DVS */
	SetBitU(rtcm.Buff[:], i, 7, 0)
	i += 7 /* reserved */
	rtcm.Nbit = i
	return 1
}

/* encode type 1046: Galileo I/NAV satellite ephemerides */
func (rtcm *Rtcm) encodeType1046(sync int) int {
	var prn int
	i := 24

	Trace(3, "encodeType1046: sync=%d\n", sync)

	if SatSys(rtcm.EphSat, &prn) != SYS_GAL {
		return 0
	}
	eph := &rtcm.NavData.Ephs[rtcm.EphSat-1] /* I/NAV */
	if eph.Sat != rtcm.EphSat {
		return 0
	}
	week := (eph.Week - 1024) % 4096 /* gst-week = gal-week - 1024 */
	toe := roundI(eph.Toes / 60.0)
	toc := roundI(Time2GpsT(eph.Toc, nil) / 60.0)
	sqrtA := roundU(math.Sqrt(eph.A) / P2_19)
	e := roundU(eph.E / P2_33)
	i0 := roundI(eph.I0 / P2_31 / SC2RAD)
	OMG0 := roundI(eph.OMG0 / P2_31 / SC2RAD)
	omg := roundI(eph.Omg / P2_31 / SC2RAD)
	M0 := roundI(eph.M0 / P2_31 / SC2RAD)
	deln := roundI(eph.Deln / P2_43 / SC2RAD)
	idot := roundI(eph.Idot / P2_43 / SC2RAD)
	OMGd := roundI(eph.OMGd / P2_43 / SC2RAD)
	crs := roundI(eph.Crs / P2_5)
	crc := roundI(eph.Crc / P2_5)
	cus := roundI(eph.Cus / P2_29)
	cuc := roundI(eph.Cuc / P2_29)
	cis := roundI(eph.Cis / P2_29)
	cic := roundI(eph.Cic / P2_29)
	af0 := roundI(eph.F0 / P2_34)
	af1 := roundI(eph.F1 / P2_46)
	af2 := roundI(eph.F2 / P2_59)
	bgd1 := roundI(eph.Tgd[0] / P2_32) /* E5a/E1 */
	bgd2 := roundI(eph.Tgd[1] / P2_32) /* E5b/E1 */
	oshs1 := (eph.Svh >> 7) & 3        /* E5b SVH */
	osdvs1 := (eph.Svh >> 6) & 1       /* E5b DVS */
	oshs2 := (eph.Svh >> 1) & 3        /* E1 SVH */
	osdvs2 := eph.Svh & 1              /* E1 DVS */

	SetBitU(rtcm.Buff[:], i, 12, 1046)
	i += 12
	SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
	i += 6
	SetBitU(rtcm.Buff[:], i, 12, uint32(week))
	i += 12
	SetBitU(rtcm.Buff[:], i, 10, uint32(eph.Iode))
	i += 10
	SetBitU(rtcm.Buff[:], i, 8, uint32(eph.Sva))
	i += 8
	SetBits(rtcm.Buff[:], i, 14, int32(idot))
	i += 14
	SetBitU(rtcm.Buff[:], i, 14, uint32(toc))
	i += 14
	SetBits(rtcm.Buff[:], i, 6, int32(af2))
	i += 6
	SetBits(rtcm.Buff[:], i, 21, int32(af1))
	i += 21
	SetBits(rtcm.Buff[:], i, 31, int32(af0))
	i += 31
	SetBits(rtcm.Buff[:], i, 16, int32(crs))
	i += 16
	SetBits(rtcm.Buff[:], i, 16, int32(deln))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(M0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cuc))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, e)
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cus))
	i += 16
	SetBitU(rtcm.Buff[:], i, 32, sqrtA)
	i += 32
	SetBitU(rtcm.Buff[:], i, 14, uint32(toe))
	i += 14
	SetBits(rtcm.Buff[:], i, 16, int32(cic))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(OMG0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(cis))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(i0))
	i += 32
	SetBits(rtcm.Buff[:], i, 16, int32(crc))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(omg))
	i += 32
	SetBits(rtcm.Buff[:], i, 24, int32(OMGd))
	i += 24
	SetBits(rtcm.Buff[:], i, 10, int32(bgd1))
	i += 10
	SetBits(rtcm.Buff[:], i, 10, int32(bgd2))
	i += 10
	SetBitU(rtcm.Buff[:], i, 2, uint32(oshs1))
	i += 2 /* E5b SVH */
	SetBitU(rtcm.Buff[:], i, 1, uint32(osdvs1))
	i++ /* E5b DVS */
	SetBitU(rtcm.Buff[:], i, 2, uint32(oshs2))
	i += 2 /* E1 SVH */
	SetBitU(rtcm.Buff[:], i, 1, uint32(osdvs2))
	i++ /* E1 DVS */
	rtcm.Nbit = i
	return 1
}

/* encode type 1042/63: BeiDou ephemerides */
func (rtcm *Rtcm) encodeType1042(ctype, sync int) int {
	var prn int
	i := 24

	Trace(3, "encodeType1042: type=%d sync=%d\n", ctype, sync)

	if SatSys(rtcm.EphSat, &prn) != SYS_CMP {
		return 0
	}
	eph := &rtcm.NavData.Ephs[rtcm.EphSat-1]
	if eph.Sat != rtcm.EphSat {
		return 0
	}
	week := eph.Week % 8192
	toe := roundI(eph.Toes / 8.0)
	toc := roundI(Time2BDT(GpsT2BDT(eph.Toc), nil) / 8.0) /* gpst -> bdt */
	sqrtA := roundU(math.Sqrt(eph.A) / P2_19)
	e := roundU(eph.E / P2_33)
	i0 := roundI(eph.I0 / P2_31 / SC2RAD)
	OMG0 := roundI(eph.OMG0 / P2_31 / SC2RAD)
	omg := roundI(eph.Omg / P2_31 / SC2RAD)
	M0 := roundI(eph.M0 / P2_31 / SC2RAD)
	deln := roundI(eph.Deln / P2_43 / SC2RAD)
	idot := roundI(eph.Idot / P2_43 / SC2RAD)
	OMGd := roundI(eph.OMGd / P2_43 / SC2RAD)
	crs := roundI(eph.Crs / P2_6)
	crc := roundI(eph.Crc / P2_6)
	cus := roundI(eph.Cus / P2_31)
	cuc := roundI(eph.Cuc / P2_31)
	cis := roundI(eph.Cis / P2_31)
	cic := roundI(eph.Cic / P2_31)
	af0 := roundI(eph.F0 / P2_33)
	af1 := roundI(eph.F1 / P2_50)
	af2 := roundI(eph.F2 / P2_66)
	tgd1 := roundI(eph.Tgd[0] / 1e-10)
	tgd2 := roundI(eph.Tgd[1] / 1e-10)

	SetBitU(rtcm.Buff[:], i, 12, uint32(ctype))
	i += 12
	SetBitU(rtcm.Buff[:], i, 6, uint32(prn))
	i += 6
	SetBitU(rtcm.Buff[:], i, 13, uint32(week))
	i += 13
	SetBitU(rtcm.Buff[:], i, 4, uint32(eph.Sva))
	i += 4
	SetBits(rtcm.Buff[:], i, 14, int32(idot))
	i += 14
	SetBitU(rtcm.Buff[:], i, 5, uint32(eph.Iode))
	i += 5
	SetBitU(rtcm.Buff[:], i, 17, uint32(toc))
	i += 17
	SetBits(rtcm.Buff[:], i, 11, int32(af2))
	i += 11
	SetBits(rtcm.Buff[:], i, 22, int32(af1))
	i += 22
	SetBits(rtcm.Buff[:], i, 24, int32(af0))
	i += 24
	SetBitU(rtcm.Buff[:], i, 5, uint32(eph.Iodc))
	i += 5
	SetBits(rtcm.Buff[:], i, 18, int32(crs))
	i += 18
	SetBits(rtcm.Buff[:], i, 16, int32(deln))
	i += 16
	SetBits(rtcm.Buff[:], i, 32, int32(M0))
	i += 32
	SetBits(rtcm.Buff[:], i, 18, int32(cuc))
	i += 18
	SetBitU(rtcm.Buff[:], i, 32, e)
	i += 32
	SetBits(rtcm.Buff[:], i, 18, int32(cus))
	i += 18
	SetBitU(rtcm.Buff[:], i, 32, sqrtA)
	i += 32
	SetBitU(rtcm.Buff[:], i, 17, uint32(toe))
	i += 17
	SetBits(rtcm.Buff[:], i, 18, int32(cic))
	i += 18
	SetBits(rtcm.Buff[:], i, 32, int32(OMG0))
	i += 32
	SetBits(rtcm.Buff[:], i, 18, int32(cis))
	i += 18
	SetBits(rtcm.Buff[:], i, 32, int32(i0))
	i += 32
	SetBits(rtcm.Buff[:], i, 18, int32(crc))
	i += 18
	SetBits(rtcm.Buff[:], i, 32, int32(omg))
	i += 32
	SetBits(rtcm.Buff[:], i, 24, int32(OMGd))
	i += 24
	SetBits(rtcm.Buff[:], i, 10, int32(tgd1))
	i += 10
	SetBits(rtcm.Buff[:], i, 10, int32(tgd2))
	i += 10
	SetBitU(rtcm.Buff[:], i, 1, uint32(eph.Svh))
	i++
	rtcm.Nbit = i
	return 1
}

/* encode SSR message header */
func (rtcm *Rtcm) encodeSsrHead(ctype, sys, subtype, nsat, sync, iod int,
	udint float64, refd, provid, solid int) int {
	var msgno, week int
	i := 24

	Trace(4, "encodeSsrHead: type=%d sys=%d subtype=%d nsat=%d sync=%d iod=%d udint=%.0f\n",
		ctype, sys, subtype, nsat, sync, iod, udint)

	ns := 6
	if subtype == 0 { /* RTCM SSR */
		if sys == SYS_QZS {
			ns = 4
		}
		if ctype == 7 {
			switch sys {
			case SYS_GPS:
				msgno = 11
			case SYS_GAL:
				msgno = 12 /* draft */
			case SYS_QZS:
				msgno = 13 /* draft */
			case SYS_CMP:
				msgno = 14 /* draft */
			default:
				return 0
			}
		} else {
			switch sys {
			case SYS_GPS:
				msgno = 1056 + ctype
			case SYS_GLO:
				msgno = 1062 + ctype
			case SYS_GAL:
				msgno = 1239 + ctype /* draft */
			case SYS_QZS:
				msgno = 1245 + ctype /* draft */
			case SYS_CMP:
				msgno = 1257 + ctype /* draft */
			case SYS_SBS:
				msgno = 1251 + ctype /* draft */
			default:
				return 0
			}
		}
		SetBitU(rtcm.Buff[:], i, 12, uint32(msgno))
		i += 12 /* message type */

		if sys == SYS_GLO {
			tow := Time2GpsT(TimeAdd(GpsT2Utc(rtcm.Time), 10800.0), &week)
			epoch := roundI(tow) % 86400
			SetBitU(rtcm.Buff[:], i, 17, uint32(epoch))
			i += 17 /* GLONASS epoch time */
		} else {
			tow := Time2GpsT(rtcm.Time, &week)
			epoch := roundI(tow) % 604800
			SetBitU(rtcm.Buff[:], i, 20, uint32(epoch))
			i += 20 /* GPS epoch time */
		}
	} else { /* IGS SSR */
		tow := Time2GpsT(rtcm.Time, &week)
		epoch := roundI(tow) % 604800
		SetBitU(rtcm.Buff[:], i, 12, 4076)
		i += 12 /* message type */
		SetBitU(rtcm.Buff[:], i, 3, 1)
		i += 3 /* version */
		SetBitU(rtcm.Buff[:], i, 8, uint32(subtype))
		i += 8 /* subtype */
		SetBitU(rtcm.Buff[:], i, 20, uint32(epoch))
		i += 20 /* SSR epoch time */
	}
	udi := 0
	for ; udi < 15; udi++ {
		if ssrUdInt[udi] >= udint {
			break
		}
	}
	SetBitU(rtcm.Buff[:], i, 4, uint32(udi))
	i += 4 /* update interval */
	SetBitU(rtcm.Buff[:], i, 1, uint32(sync))
	i++ /* multiple message indicator */
	if subtype == 0 && (ctype == 1 || ctype == 4) {
		SetBitU(rtcm.Buff[:], i, 1, uint32(refd))
		i++ /* satellite ref datum */
	}
	SetBitU(rtcm.Buff[:], i, 4, uint32(iod))
	i += 4 /* IOD SSR */
	SetBitU(rtcm.Buff[:], i, 16, uint32(provid))
	i += 16 /* provider ID */
	SetBitU(rtcm.Buff[:], i, 4, uint32(solid))
	i += 4 /* solution ID */
	if subtype > 0 && (ctype == 1 || ctype == 4) {
		SetBitU(rtcm.Buff[:], i, 1, uint32(refd))
		i++ /* global/regional CRS indicator */
	}
	if ctype == 7 {
		SetBitU(rtcm.Buff[:], i, 1, 0)
		i++ /* dispersive bias consistency ind */
		SetBitU(rtcm.Buff[:], i, 1, 0)
		i++ /* MW consistency indicator */
	}
	SetBitU(rtcm.Buff[:], i, ns, uint32(nsat))
	i += ns /* no of satellites */
	return i
}

/* adjust prn bit widths and offsets for IGS SSR */
func igsSsrAdj(sys, np, offp int) (int, int) {
	np = 6
	if sys == SYS_CMP {
		offp = 0
	} else if sys == SYS_SBS {
		offp = 119
	}
	return np, offp
}

/* encode SSR 1: orbit corrections */
func (rtcm *Rtcm) encodeSsr1(sys, subtype, sync int) int {
	var (
		udint           float64
		iod, prn, refd  int
		deph, ddeph     [3]int
	)
	Trace(4, "encodeSsr1: sys=%d subtype=%d sync=%d\n", sys, subtype, sync)

	np, ni, nj, offp, _, ok := ssrSys(sys)
	if !ok {
		return 0
	}
	if subtype > 0 { /* IGS SSR */
		ni, nj = 8, 0
		np, offp = igsSsrAdj(sys, np, offp)
	}
	nsat := 0
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nsat++
		udint = rtcm.Ssr[j].Udi[0]
		iod = rtcm.Ssr[j].Iod[0]
		refd = rtcm.Ssr[j].Refd
	}
	i := rtcm.encodeSsrHead(1, sys, subtype, nsat, sync, iod, udint, refd, 0, 0)
	if i == 0 {
		return 0
	}
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		iode := rtcm.Ssr[j].Iode     /* SBAS/BDS: toe/t0 modulo */
		iodcrc := rtcm.Ssr[j].IodCrc /* SBAS/BDS: IOD CRC */
		if subtype > 0 {             /* IGS SSR */
			iode &= 0xFF
		}
		deph[0] = roundI(rtcm.Ssr[j].Deph[0] / 1e-4)
		deph[1] = roundI(rtcm.Ssr[j].Deph[1] / 4e-4)
		deph[2] = roundI(rtcm.Ssr[j].Deph[2] / 4e-4)
		ddeph[0] = roundI(rtcm.Ssr[j].Ddeph[0] / 1e-6)
		ddeph[1] = roundI(rtcm.Ssr[j].Ddeph[1] / 4e-6)
		ddeph[2] = roundI(rtcm.Ssr[j].Ddeph[2] / 4e-6)

		SetBitU(rtcm.Buff[:], i, np, uint32(prn-offp))
		i += np /* satellite ID */
		SetBitU(rtcm.Buff[:], i, ni, uint32(iode))
		i += ni /* IODE */
		SetBitU(rtcm.Buff[:], i, nj, uint32(iodcrc))
		i += nj /* IODCRC */
		SetBits(rtcm.Buff[:], i, 22, int32(deph[0]))
		i += 22 /* delta radial */
		SetBits(rtcm.Buff[:], i, 20, int32(deph[1]))
		i += 20 /* delta along-track */
		SetBits(rtcm.Buff[:], i, 20, int32(deph[2]))
		i += 20 /* delta cross-track */
		SetBits(rtcm.Buff[:], i, 21, int32(ddeph[0]))
		i += 21 /* dot delta radial */
		SetBits(rtcm.Buff[:], i, 19, int32(ddeph[1]))
		i += 19 /* dot delta along-track */
		SetBits(rtcm.Buff[:], i, 19, int32(ddeph[2]))
		i += 19 /* dot delta cross-track */
	}
	rtcm.Nbit = i
	return 1
}

/* encode SSR 2: clock corrections */
func (rtcm *Rtcm) encodeSsr2(sys, subtype, sync int) int {
	var (
		udint    float64
		iod, prn int
		dclk     [3]int
	)
	Trace(4, "encodeSsr2: sys=%d subtype=%d sync=%d\n", sys, subtype, sync)

	np, _, _, offp, _, ok := ssrSys(sys)
	if !ok {
		return 0
	}
	if subtype > 0 { /* IGS SSR */
		np, offp = igsSsrAdj(sys, np, offp)
	}
	nsat := 0
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nsat++
		udint = rtcm.Ssr[j].Udi[1]
		iod = rtcm.Ssr[j].Iod[1]
	}
	i := rtcm.encodeSsrHead(2, sys, subtype, nsat, sync, iod, udint, 0, 0, 0)
	if i == 0 {
		return 0
	}
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		dclk[0] = roundI(rtcm.Ssr[j].Dclk[0] / 1e-4)
		dclk[1] = roundI(rtcm.Ssr[j].Dclk[1] / 1e-6)
		dclk[2] = roundI(rtcm.Ssr[j].Dclk[2] / 2e-8)

		SetBitU(rtcm.Buff[:], i, np, uint32(prn-offp))
		i += np /* satellite ID */
		SetBits(rtcm.Buff[:], i, 22, int32(dclk[0]))
		i += 22 /* delta clock C0 */
		SetBits(rtcm.Buff[:], i, 21, int32(dclk[1]))
		i += 21 /* delta clock C1 */
		SetBits(rtcm.Buff[:], i, 27, int32(dclk[2]))
		i += 27 /* delta clock C2 */
	}
	rtcm.Nbit = i
	return 1
}

/* encode SSR 3: satellite code biases */
func (rtcm *Rtcm) encodeSsr3(sys, subtype, sync int) int {
	var (
		udint      float64
		iod, prn   int
		code, bias [MAXCODE]int
	)
	Trace(4, "encodeSsr3: sys=%d subtype=%d sync=%d\n", sys, subtype, sync)

	np, _, _, offp, codes, ok := ssrSys(sys)
	if !ok {
		return 0
	}
	if subtype > 0 { /* IGS SSR */
		np, offp = igsSsrAdj(sys, np, offp)
	}
	nsat := 0
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nsat++
		udint = rtcm.Ssr[j].Udi[4]
		iod = rtcm.Ssr[j].Iod[4]
	}
	i := rtcm.encodeSsrHead(3, sys, subtype, nsat, sync, iod, udint, 0, 0, 0)
	if i == 0 {
		return 0
	}
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nbias := 0
		for k := 0; k < len(codes) && k < 32; k++ {
			if codes[k] == 0 || rtcm.Ssr[j].Cbias[codes[k]-1] == 0.0 {
				continue
			}
			code[nbias] = k
			bias[nbias] = roundI(float64(rtcm.Ssr[j].Cbias[codes[k]-1]) / 0.01)
			nbias++
		}
		SetBitU(rtcm.Buff[:], i, np, uint32(prn-offp))
		i += np /* satellite ID */
		SetBitU(rtcm.Buff[:], i, 5, uint32(nbias))
		i += 5 /* number of code biases */

		for k := 0; k < nbias; k++ {
			SetBitU(rtcm.Buff[:], i, 5, uint32(code[k]))
			i += 5 /* signal indicator */
			SetBits(rtcm.Buff[:], i, 14, int32(bias[k]))
			i += 14 /* code bias */
		}
	}
	rtcm.Nbit = i
	return 1
}

/* encode SSR 4: combined orbit and clock corrections */
func (rtcm *Rtcm) encodeSsr4(sys, subtype, sync int) int {
	var (
		udint             float64
		iod, prn, refd    int
		deph, ddeph, dclk [3]int
	)
	Trace(4, "encodeSsr4: sys=%d subtype=%d sync=%d\n", sys, subtype, sync)

	np, ni, nj, offp, _, ok := ssrSys(sys)
	if !ok {
		return 0
	}
	if subtype > 0 { /* IGS SSR */
		ni, nj = 8, 0
		np, offp = igsSsrAdj(sys, np, offp)
	}
	nsat := 0
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nsat++
		udint = rtcm.Ssr[j].Udi[0]
		iod = rtcm.Ssr[j].Iod[0]
		refd = rtcm.Ssr[j].Refd
	}
	i := rtcm.encodeSsrHead(4, sys, subtype, nsat, sync, iod, udint, refd, 0, 0)
	if i == 0 {
		return 0
	}
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		iode := rtcm.Ssr[j].Iode
		iodcrc := rtcm.Ssr[j].IodCrc
		if subtype > 0 { /* IGS SSR */
			iode &= 0xFF
		}
		deph[0] = roundI(rtcm.Ssr[j].Deph[0] / 1e-4)
		deph[1] = roundI(rtcm.Ssr[j].Deph[1] / 4e-4)
		deph[2] = roundI(rtcm.Ssr[j].Deph[2] / 4e-4)
		ddeph[0] = roundI(rtcm.Ssr[j].Ddeph[0] / 1e-6)
		ddeph[1] = roundI(rtcm.Ssr[j].Ddeph[1] / 4e-6)
		ddeph[2] = roundI(rtcm.Ssr[j].Ddeph[2] / 4e-6)
		dclk[0] = roundI(rtcm.Ssr[j].Dclk[0] / 1e-4)
		dclk[1] = roundI(rtcm.Ssr[j].Dclk[1] / 1e-6)
		dclk[2] = roundI(rtcm.Ssr[j].Dclk[2] / 2e-8)

		SetBitU(rtcm.Buff[:], i, np, uint32(prn-offp))
		i += np /* satellite ID */
		SetBitU(rtcm.Buff[:], i, ni, uint32(iode))
		i += ni /* IODE */
		SetBitU(rtcm.Buff[:], i, nj, uint32(iodcrc))
		i += nj /* IODCRC */
		SetBits(rtcm.Buff[:], i, 22, int32(deph[0]))
		i += 22 /* delta radial */
		SetBits(rtcm.Buff[:], i, 20, int32(deph[1]))
		i += 20 /* delta along-track */
		SetBits(rtcm.Buff[:], i, 20, int32(deph[2]))
		i += 20 /* delta cross-track */
		SetBits(rtcm.Buff[:], i, 21, int32(ddeph[0]))
		i += 21 /* dot delta radial */
		SetBits(rtcm.Buff[:], i, 19, int32(ddeph[1]))
		i += 19 /* dot delta along-track */
		SetBits(rtcm.Buff[:], i, 19, int32(ddeph[2]))
		i += 19 /* dot delta cross-track */
		SetBits(rtcm.Buff[:], i, 22, int32(dclk[0]))
		i += 22 /* delta clock C0 */
		SetBits(rtcm.Buff[:], i, 21, int32(dclk[1]))
		i += 21 /* delta clock C1 */
		SetBits(rtcm.Buff[:], i, 27, int32(dclk[2]))
		i += 27 /* delta clock C2 */
	}
	rtcm.Nbit = i
	return 1
}

/* encode SSR 5: URA */
func (rtcm *Rtcm) encodeSsr5(sys, subtype, sync int) int {
	var (
		udint    float64
		iod, prn int
	)
	Trace(4, "encodeSsr5: sys=%d subtype=%d sync=%d\n", sys, subtype, sync)

	np, _, _, offp, _, ok := ssrSys(sys)
	if !ok {
		return 0
	}
	if subtype > 0 { /* IGS SSR */
		np, offp = igsSsrAdj(sys, np, offp)
	}
	nsat := 0
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nsat++
		udint = rtcm.Ssr[j].Udi[3]
		iod = rtcm.Ssr[j].Iod[3]
	}
	i := rtcm.encodeSsrHead(5, sys, subtype, nsat, sync, iod, udint, 0, 0, 0)
	if i == 0 {
		return 0
	}
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		SetBitU(rtcm.Buff[:], i, np, uint32(prn-offp))
		i += np /* satellite ID */
		SetBitU(rtcm.Buff[:], i, 6, uint32(rtcm.Ssr[j].Ura))
		i += 6 /* ssr ura */
	}
	rtcm.Nbit = i
	return 1
}

/* encode SSR 6: high rate clock correction */
func (rtcm *Rtcm) encodeSsr6(sys, subtype, sync int) int {
	var (
		udint    float64
		iod, prn int
	)
	Trace(4, "encodeSsr6: sys=%d subtype=%d sync=%d\n", sys, subtype, sync)

	np, _, _, offp, _, ok := ssrSys(sys)
	if !ok {
		return 0
	}
	if subtype > 0 { /* IGS SSR */
		np, offp = igsSsrAdj(sys, np, offp)
	}
	nsat := 0
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nsat++
		udint = rtcm.Ssr[j].Udi[2]
		iod = rtcm.Ssr[j].Iod[2]
	}
	i := rtcm.encodeSsrHead(6, sys, subtype, nsat, sync, iod, udint, 0, 0, 0)
	if i == 0 {
		return 0
	}
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		hrclk := roundI(rtcm.Ssr[j].Hrclk / 1e-4)

		SetBitU(rtcm.Buff[:], i, np, uint32(prn-offp))
		i += np /* satellite ID */
		SetBits(rtcm.Buff[:], i, 22, int32(hrclk))
		i += 22 /* high rate clock corr */
	}
	rtcm.Nbit = i
	return 1
}

/* encode SSR 7: satellite phase biases */
func (rtcm *Rtcm) encodeSsr7(sys, subtype, sync int) int {
	var (
		udint              float64
		iod, prn           int
		code, pbias, stdpb [MAXCODE]int
	)
	Trace(4, "encodeSsr7: sys=%d subtype=%d sync=%d\n", sys, subtype, sync)

	np, _, _, offp, codes, ok := ssrSys(sys)
	if !ok {
		return 0
	}
	if subtype > 0 { /* IGS SSR */
		np, offp = igsSsrAdj(sys, np, offp)
	}
	nsat := 0
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nsat++
		udint = rtcm.Ssr[j].Udi[5]
		iod = rtcm.Ssr[j].Iod[5]
	}
	i := rtcm.encodeSsrHead(7, sys, subtype, nsat, sync, iod, udint, 0, 0, 0)
	if i == 0 {
		return 0
	}
	for j := 0; j < MAXSAT; j++ {
		if SatSys(j+1, &prn) != sys || rtcm.Ssr[j].Update == 0 {
			continue
		}
		nbias := 0
		for k := 0; k < len(codes) && k < 32; k++ {
			if codes[k] == 0 || rtcm.Ssr[j].Pbias[codes[k]-1] == 0.0 {
				continue
			}
			code[nbias] = k
			pbias[nbias] = roundI(rtcm.Ssr[j].Pbias[codes[k]-1] / 0.0001)
			stdpb[nbias] = roundI(float64(rtcm.Ssr[j].Stdpb[codes[k]-1]) / 0.0001)
			nbias++
		}
		yawAng := roundI(rtcm.Ssr[j].YawAng / 180.0 * 256.0)
		yawRate := roundI(rtcm.Ssr[j].YawRate / 180.0 * 8192.0)

		SetBitU(rtcm.Buff[:], i, np, uint32(prn-offp))
		i += np /* satellite ID */
		SetBitU(rtcm.Buff[:], i, 5, uint32(nbias))
		i += 5 /* number of code biases */
		SetBitU(rtcm.Buff[:], i, 9, uint32(yawAng))
		i += 9 /* yaw angle */
		SetBits(rtcm.Buff[:], i, 8, int32(yawRate))
		i += 8 /* yaw rate */

		for k := 0; k < nbias; k++ {
			SetBitU(rtcm.Buff[:], i, 5, uint32(code[k]))
			i += 5 /* signal indicator */
			SetBitU(rtcm.Buff[:], i, 1, 0)
			i++ /* integer-indicator */
			SetBitU(rtcm.Buff[:], i, 2, 0)
			i += 2 /* WL integer-indicator */
			SetBitU(rtcm.Buff[:], i, 4, 0)
			i += 4 /* discont counter */
			SetBits(rtcm.Buff[:], i, 20, int32(pbias[k]))
			i += 20 /* phase bias */
			if subtype == 0 {
				SetBits(rtcm.Buff[:], i, 17, int32(stdpb[k]))
				i += 17 /* std-dev ph-bias */
			}
		}
	}
	rtcm.Nbit = i
	return 1
}

/* satellite number to MSM satellite ID */
func toSatId(sys, sat int) int {
	var prn int
	if SatSys(sat, &prn) != sys {
		return 0
	}
	switch sys {
	case SYS_QZS:
		prn -= MINPRNQZS - 1
	case SYS_SBS:
		prn -= MINPRNSBS - 1
	}
	return prn
}

func msmSigs(sys int) []string {
	switch sys {
	case SYS_GPS:
		return msmSigGps[:]
	case SYS_GLO:
		return msmSigGlo[:]
	case SYS_GAL:
		return msmSigGal[:]
	case SYS_QZS:
		return msmSigQzs[:]
	case SYS_SBS:
		return msmSigSbs[:]
	case SYS_CMP:
		return msmSigCmp[:]
	case SYS_IRN:
		return msmSigIrn[:]
	}
	return nil
}

/* observation code to MSM signal ID */
func toSigId(sys int, code uint8) int {
	/* signal conversion for undefined signal by rtcm */
	if sys == SYS_GPS {
		switch code {
		case CODE_L1Y, CODE_L1M, CODE_L1N:
			code = CODE_L1P
		case CODE_L2D, CODE_L2Y, CODE_L2M, CODE_L2N:
			code = CODE_L2P
		}
	}
	sig := Code2Obs(code)
	sigs := msmSigs(sys)
	if sigs == nil || sig == "" {
		return 0
	}
	for i := 0; i < 32; i++ {
		if sig == sigs[i] {
			return i + 1
		}
	}
	return 0
}

/* generate MSM satellite, signal and cell index */
func (rtcm *Rtcm) genMsmIndex(sys int, nsat, nsig, ncell *int, satInd, sigInd, cellInd []uint8) {
	*nsat, *nsig, *ncell = 0, 0, 0

	/* generate satellite and signal index */
	for i := 0; i < rtcm.ObsData.N(); i++ {
		sat := toSatId(sys, rtcm.ObsData.Data[i].Sat)
		if sat == 0 {
			continue
		}
		for j := 0; j < NFREQ+NEXOBS; j++ {
			sig := toSigId(sys, rtcm.ObsData.Data[i].Code[j])
			if sig == 0 {
				continue
			}
			satInd[sat-1], sigInd[sig-1] = 1, 1
		}
	}
	for i := 0; i < 64; i++ {
		if satInd[i] > 0 {
			*nsat++
			satInd[i] = uint8(*nsat)
		}
	}
	for i := 0; i < 32; i++ {
		if sigInd[i] > 0 {
			*nsig++
			sigInd[i] = uint8(*nsig)
		}
	}
	/* generate cell index */
	for i := 0; i < rtcm.ObsData.N(); i++ {
		sat := toSatId(sys, rtcm.ObsData.Data[i].Sat)
		if sat == 0 {
			continue
		}
		for j := 0; j < NFREQ+NEXOBS; j++ {
			sig := toSigId(sys, rtcm.ObsData.Data[i].Code[j])
			if sig == 0 {
				continue
			}
			cell := int(sigInd[sig-1]) - 1 + int(satInd[sat-1]-1)*(*nsig)
			cellInd[cell] = 1
		}
	}
	for i := 0; i < *nsat**nsig; i++ {
		if cellInd[i] > 0 && *ncell < 64 {
			*ncell++
			cellInd[i] = uint8(*ncell)
		}
	}
}

/* generate MSM satellite data fields */
func (rtcm *Rtcm) genMsmSat(sys, nsat int, satInd []uint8, rrng, rrate []float64, info []uint8) {
	for i := 0; i < 64; i++ {
		rrng[i], rrate[i] = 0.0, 0.0
	}
	for i := 0; i < rtcm.ObsData.N(); i++ {
		data := &rtcm.ObsData.Data[i]
		fcn := rtcm.fcnGlo(data.Sat) /* fcn+7 */

		sat := toSatId(sys, data.Sat)
		if sat == 0 {
			continue
		}
		for j := 0; j < NFREQ+NEXOBS; j++ {
			if toSigId(sys, data.Code[j]) == 0 {
				continue
			}
			k := int(satInd[sat-1]) - 1
			freq := Code2Freq(sys, data.Code[j], fcn-7)

			/* rough range (ms) and rough phase-range-rate (m/s) */
			if rrng[k] == 0.0 && data.P[j] != 0.0 {
				rrng[k] = float64(roundI(data.P[j]/RANGE_MS/P2_10)) * RANGE_MS * P2_10
			}
			if rrate[k] == 0.0 && data.D[j] != 0.0 && freq > 0.0 {
				rrate[k] = float64(roundI(-data.D[j] * CLIGHT / freq))
			}
			/* extended satellite info */
			if info != nil {
				info[k] = 0
				if sys == SYS_GLO {
					if fcn < 0 {
						info[k] = 15
					} else {
						info[k] = uint8(fcn)
					}
				}
			}
		}
	}
}

/* generate MSM signal data fields */
func (rtcm *Rtcm) genMsmSig(sys, nsat, nsig, ncell int, satInd, sigInd, cellInd []uint8,
	rrng, rrate, psrng, phrng, rate, lock []float64, half []uint8, cnr []float32) {
	for i := 0; i < ncell; i++ {
		if psrng != nil {
			psrng[i] = 0.0
		}
		if phrng != nil {
			phrng[i] = 0.0
		}
		if rate != nil {
			rate[i] = 0.0
		}
	}
	for i := 0; i < rtcm.ObsData.N(); i++ {
		data := &rtcm.ObsData.Data[i]
		fcn := rtcm.fcnGlo(data.Sat) /* fcn+7 */

		sat := toSatId(sys, data.Sat)
		if sat == 0 {
			continue
		}
		for j := 0; j < NFREQ+NEXOBS; j++ {
			sig := toSigId(sys, data.Code[j])
			if sig == 0 {
				continue
			}
			k := int(satInd[sat-1]) - 1
			cell := int(cellInd[int(sigInd[sig-1])-1+k*nsig])
			if cell >= 64 {
				continue
			}
			freq := Code2Freq(sys, data.Code[j], fcn-7)
			lambda := 0.0
			if freq > 0.0 {
				lambda = CLIGHT / freq
			}
			psrngS := data.P[j] - rrng[k]
			if data.P[j] == 0.0 {
				psrngS = 0.0
			}
			phrngS := data.L[j]*lambda - rrng[k]
			if data.L[j] == 0.0 || lambda <= 0.0 {
				phrngS = 0.0
			}
			rateS := -data.D[j]*lambda - rrate[k]
			if data.D[j] == 0.0 || lambda <= 0.0 {
				rateS = 0.0
			}
			/* subtract phase - pseudorange integer cycle offset */
			lli := int(data.LLI[j])
			if lli&1 > 0 || math.Abs(phrngS-rtcm.Cp[data.Sat-1][j]) > 1171.0 {
				rtcm.Cp[data.Sat-1][j] = float64(roundI(phrngS/lambda)) * lambda
				lli |= 1
			}
			phrngS -= rtcm.Cp[data.Sat-1][j]

			lt := lockTime(data.Time, &rtcm.Lltime[data.Sat-1][j], uint8(lli))

			if psrng != nil && psrngS != 0.0 {
				psrng[cell-1] = psrngS
			}
			if phrng != nil && phrngS != 0.0 {
				phrng[cell-1] = phrngS
			}
			if rate != nil && rateS != 0.0 {
				rate[cell-1] = rateS
			}
			if lock != nil {
				lock[cell-1] = lt
			}
			if half != nil {
				half[cell-1] = 0
				if data.LLI[j]&2 > 0 {
					half[cell-1] = 1
				}
			}
			if cnr != nil {
				cnr[cell-1] = float32(data.SNR[j]) * SNR_UNIT
			}
		}
	}
}

/* encode MSM message header */
func (rtcm *Rtcm) encodeMsmHead(ctype, sys, sync int, nsat, ncell *int, rrng, rrate []float64,
	info []uint8, psrng, phrng, rate, lock []float64, half []uint8, cnr []float32) int {
	var (
		satInd  [64]uint8
		sigInd  [32]uint8
		cellInd [32 * 64]uint8
		epoch   uint32
		nsig    int
	)
	i := 24

	switch sys {
	case SYS_GPS:
		ctype += 1070
	case SYS_GLO:
		ctype += 1080
	case SYS_GAL:
		ctype += 1090
	case SYS_SBS:
		ctype += 1100
	case SYS_QZS:
		ctype += 1110
	case SYS_CMP:
		ctype += 1120
	case SYS_IRN:
		ctype += 1130
	default:
		return 0
	}
	/* generate msm satellite, signal and cell index */
	rtcm.genMsmIndex(sys, nsat, &nsig, ncell, satInd[:], sigInd[:], cellInd[:])

	switch sys {
	case SYS_GLO:
		/* GLONASS time (dow + tod-ms) */
		tow := Time2GpsT(TimeAdd(GpsT2Utc(rtcm.Time), 10800.0), nil)
		dow := uint32(tow / 86400.0)
		epoch = (dow << 27) + roundU(math.Mod(tow, 86400.0)*1e3)
	case SYS_CMP:
		/* BDS time (tow-ms) */
		epoch = roundU(Time2GpsT(GpsT2BDT(rtcm.Time), nil) * 1e3)
	default:
		/* GPS, QZSS, Galileo and NavIC time (tow-ms) */
		epoch = roundU(Time2GpsT(rtcm.Time, nil) * 1e3)
	}
	SetBitU(rtcm.Buff[:], i, 12, uint32(ctype))
	i += 12 /* message number */
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12 /* reference station id */
	SetBitU(rtcm.Buff[:], i, 30, epoch)
	i += 30 /* epoch time */
	SetBitU(rtcm.Buff[:], i, 1, uint32(sync))
	i++ /* multiple message bit */
	SetBitU(rtcm.Buff[:], i, 3, uint32(rtcm.SeqNo))
	i += 3 /* issue of data station */
	SetBitU(rtcm.Buff[:], i, 7, 0)
	i += 7 /* reserved */
	SetBitU(rtcm.Buff[:], i, 2, 0)
	i += 2 /* clock steering indicator */
	SetBitU(rtcm.Buff[:], i, 2, 0)
	i += 2 /* external clock indicator */
	SetBitU(rtcm.Buff[:], i, 1, 0)
	i++ /* smoothing indicator */
	SetBitU(rtcm.Buff[:], i, 3, 0)
	i += 3 /* smoothing interval */

	/* satellite mask */
	for j := 0; j < 64; j++ {
		if satInd[j] > 0 {
			SetBitU(rtcm.Buff[:], i, 1, 1)
		} else {
			SetBitU(rtcm.Buff[:], i, 1, 0)
		}
		i++
	}
	/* signal mask */
	for j := 0; j < 32; j++ {
		if sigInd[j] > 0 {
			SetBitU(rtcm.Buff[:], i, 1, 1)
		} else {
			SetBitU(rtcm.Buff[:], i, 1, 0)
		}
		i++
	}
	/* cell mask */
	for j := 0; j < *nsat*nsig && j < 64; j++ {
		if cellInd[j] > 0 {
			SetBitU(rtcm.Buff[:], i, 1, 1)
		} else {
			SetBitU(rtcm.Buff[:], i, 1, 0)
		}
		i++
	}
	/* generate msm satellite data fields */
	rtcm.genMsmSat(sys, *nsat, satInd[:], rrng, rrate, info)

	/* generate msm signal data fields */
	rtcm.genMsmSig(sys, *nsat, nsig, *ncell, satInd[:], sigInd[:], cellInd[:], rrng, rrate,
		psrng, phrng, rate, lock, half, cnr)

	return i
}

/* encode rough range integer ms */
func (rtcm *Rtcm) encodeMsmIntRrng(i int, rrng []float64, nsat int) int {
	var intMs uint32

	for j := 0; j < nsat; j++ {
		if rrng[j] == 0.0 {
			intMs = 255
		} else if rrng[j] < 0.0 || rrng[j] > RANGE_MS*255.0 {
			Trace(2, "msm rough range overflow %s rrng=%.3f\n",
				Time2Str(rtcm.Time, 0), rrng[j])
			intMs = 255
		} else {
			intMs = roundU(rrng[j]/RANGE_MS/P2_10) >> 10
		}
		SetBitU(rtcm.Buff[:], i, 8, intMs)
		i += 8
	}
	return i
}

/* encode rough range modulo 1 ms */
func (rtcm *Rtcm) encodeMsmModRrng(i int, rrng []float64, nsat int) int {
	var modMs uint32

	for j := 0; j < nsat; j++ {
		if rrng[j] <= 0.0 || rrng[j] > RANGE_MS*255.0 {
			modMs = 0
		} else {
			modMs = roundU(rrng[j]/RANGE_MS/P2_10) & 0x3FF
		}
		SetBitU(rtcm.Buff[:], i, 10, modMs)
		i += 10
	}
	return i
}

/* encode extended satellite info */
func (rtcm *Rtcm) encodeMsmInfo(i int, info []uint8, nsat int) int {
	for j := 0; j < nsat; j++ {
		SetBitU(rtcm.Buff[:], i, 4, uint32(info[j]))
		i += 4
	}
	return i
}

/* encode rough phase-range-rate */
func (rtcm *Rtcm) encodeMsmRrate(i int, rrate []float64, nsat int) int {
	var rrateVal int

	for j := 0; j < nsat; j++ {
		if math.Abs(rrate[j]) > 8191.0 {
			Trace(2, "msm rough phase-range-rate overflow %s rrate=%.4f\n",
				Time2Str(rtcm.Time, 0), rrate[j])
			rrateVal = -8192
		} else {
			rrateVal = roundI(rrate[j])
		}
		SetBits(rtcm.Buff[:], i, 14, int32(rrateVal))
		i += 14
	}
	return i
}

/* encode fine pseudorange */
func (rtcm *Rtcm) encodeMsmPsrng(i int, psrng []float64, ncell int) int {
	var psrngVal int

	for j := 0; j < ncell; j++ {
		if psrng[j] == 0.0 {
			psrngVal = -16384
		} else if math.Abs(psrng[j]) > 292.7 {
			Trace(2, "msm fine pseudorange overflow %s psrng=%.3f\n",
				Time2Str(rtcm.Time, 0), psrng[j])
			psrngVal = -16384
		} else {
			psrngVal = roundI(psrng[j] / RANGE_MS / P2_24)
		}
		SetBits(rtcm.Buff[:], i, 15, int32(psrngVal))
		i += 15
	}
	return i
}

/* encode fine pseudorange with extended resolution */
func (rtcm *Rtcm) encodeMsmPsrngEx(i int, psrng []float64, ncell int) int {
	var psrngVal int

	for j := 0; j < ncell; j++ {
		if psrng[j] == 0.0 {
			psrngVal = -524288
		} else if math.Abs(psrng[j]) > 292.7 {
			Trace(2, "msm fine pseudorange ext overflow %s psrng=%.3f\n",
				Time2Str(rtcm.Time, 0), psrng[j])
			psrngVal = -524288
		} else {
			psrngVal = roundI(psrng[j] / RANGE_MS / P2_29)
		}
		SetBits(rtcm.Buff[:], i, 20, int32(psrngVal))
		i += 20
	}
	return i
}

/* encode fine phase-range */
func (rtcm *Rtcm) encodeMsmPhrng(i int, phrng []float64, ncell int) int {
	var phrngVal int

	for j := 0; j < ncell; j++ {
		if phrng[j] == 0.0 {
			phrngVal = -2097152
		} else if math.Abs(phrng[j]) > 1171.0 {
			Trace(2, "msm fine phase-range overflow %s phrng=%.3f\n",
				Time2Str(rtcm.Time, 0), phrng[j])
			phrngVal = -2097152
		} else {
			phrngVal = roundI(phrng[j] / RANGE_MS / P2_29)
		}
		SetBits(rtcm.Buff[:], i, 22, int32(phrngVal))
		i += 22
	}
	return i
}

/* encode fine phase-range with extended resolution */
func (rtcm *Rtcm) encodeMsmPhrngEx(i int, phrng []float64, ncell int) int {
	var phrngVal int

	for j := 0; j < ncell; j++ {
		if phrng[j] == 0.0 {
			phrngVal = -8388608
		} else if math.Abs(phrng[j]) > 1171.0 {
			Trace(2, "msm fine phase-range ext overflow %s phrng=%.3f\n",
				Time2Str(rtcm.Time, 0), phrng[j])
			phrngVal = -8388608
		} else {
			phrngVal = roundI(phrng[j] / RANGE_MS / P2_31)
		}
		SetBits(rtcm.Buff[:], i, 24, int32(phrngVal))
		i += 24
	}
	return i
}

/* encode lock-time indicator */
func (rtcm *Rtcm) encodeMsmLock(i int, lock []float64, ncell int) int {
	for j := 0; j < ncell; j++ {
		SetBitU(rtcm.Buff[:], i, 4, uint32(toMsmLock(lock[j])))
		i += 4
	}
	return i
}

/* encode lock-time indicator with extended range and resolution */
func (rtcm *Rtcm) encodeMsmLockEx(i int, lock []float64, ncell int) int {
	for j := 0; j < ncell; j++ {
		SetBitU(rtcm.Buff[:], i, 10, uint32(toMsmLockEx(lock[j])))
		i += 10
	}
	return i
}

/* encode half-cycle-ambiguity indicator */
func (rtcm *Rtcm) encodeMsmHalfAmb(i int, half []uint8, ncell int) int {
	for j := 0; j < ncell; j++ {
		SetBitU(rtcm.Buff[:], i, 1, uint32(half[j]))
		i++
	}
	return i
}

/* encode signal CNR */
func (rtcm *Rtcm) encodeMsmCnr(i int, cnr []float32, ncell int) int {
	for j := 0; j < ncell; j++ {
		SetBitU(rtcm.Buff[:], i, 6, uint32(roundI(float64(cnr[j]))))
		i += 6
	}
	return i
}

/* encode signal CNR with extended resolution */
func (rtcm *Rtcm) encodeMsmCnrEx(i int, cnr []float32, ncell int) int {
	for j := 0; j < ncell; j++ {
		SetBitU(rtcm.Buff[:], i, 10, uint32(roundI(float64(cnr[j])/0.0625)))
		i += 10
	}
	return i
}

/* encode fine phase-range-rate */
func (rtcm *Rtcm) encodeMsmRate(i int, rate []float64, ncell int) int {
	var rateVal int

	for j := 0; j < ncell; j++ {
		if rate[j] == 0.0 {
			rateVal = -16384
		} else if math.Abs(rate[j]) > 1.6384 {
			Trace(2, "msm fine phase-range-rate overflow %s rate=%.3f\n",
				Time2Str(rtcm.Time, 0), rate[j])
			rateVal = -16384
		} else {
			rateVal = roundI(rate[j] / 0.0001)
		}
		SetBits(rtcm.Buff[:], i, 15, int32(rateVal))
		i += 15
	}
	return i
}

/* encode MSM 1: compact pseudorange */
func (rtcm *Rtcm) encodeMsm1(sys, sync int) int {
	var (
		rrng, rrate, psrng [64]float64
		nsat, ncell        int
	)
	Trace(4, "encodeMsm1: sys=%d sync=%d\n", sys, sync)

	i := rtcm.encodeMsmHead(1, sys, sync, &nsat, &ncell, rrng[:], rrate[:], nil, psrng[:],
		nil, nil, nil, nil, nil)
	if i == 0 {
		return 0
	}
	i = rtcm.encodeMsmModRrng(i, rrng[:], nsat) /* rough range modulo 1 ms */
	i = rtcm.encodeMsmPsrng(i, psrng[:], ncell) /* fine pseudorange */
	rtcm.Nbit = i
	return 1
}

/* encode MSM 2: compact phaserange */
func (rtcm *Rtcm) encodeMsm2(sys, sync int) int {
	var (
		rrng, rrate, phrng, lock [64]float64
		half                     [64]uint8
		nsat, ncell              int
	)
	Trace(4, "encodeMsm2: sys=%d sync=%d\n", sys, sync)

	i := rtcm.encodeMsmHead(2, sys, sync, &nsat, &ncell, rrng[:], rrate[:], nil, nil,
		phrng[:], nil, lock[:], half[:], nil)
	if i == 0 {
		return 0
	}
	i = rtcm.encodeMsmModRrng(i, rrng[:], nsat)   /* rough range modulo 1 ms */
	i = rtcm.encodeMsmPhrng(i, phrng[:], ncell)   /* fine phase-range */
	i = rtcm.encodeMsmLock(i, lock[:], ncell)     /* lock-time indicator */
	i = rtcm.encodeMsmHalfAmb(i, half[:], ncell)  /* half-cycle-amb indicator */
	rtcm.Nbit = i
	return 1
}

/* encode MSM 3: compact pseudorange and phaserange */
func (rtcm *Rtcm) encodeMsm3(sys, sync int) int {
	var (
		rrng, rrate, psrng, phrng, lock [64]float64
		half                            [64]uint8
		nsat, ncell                     int
	)
	Trace(4, "encodeMsm3: sys=%d sync=%d\n", sys, sync)

	i := rtcm.encodeMsmHead(3, sys, sync, &nsat, &ncell, rrng[:], rrate[:], nil, psrng[:],
		phrng[:], nil, lock[:], half[:], nil)
	if i == 0 {
		return 0
	}
	i = rtcm.encodeMsmModRrng(i, rrng[:], nsat)  /* rough range modulo 1 ms */
	i = rtcm.encodeMsmPsrng(i, psrng[:], ncell)  /* fine pseudorange */
	i = rtcm.encodeMsmPhrng(i, phrng[:], ncell)  /* fine phase-range */
	i = rtcm.encodeMsmLock(i, lock[:], ncell)    /* lock-time indicator */
	i = rtcm.encodeMsmHalfAmb(i, half[:], ncell) /* half-cycle-amb indicator */
	rtcm.Nbit = i
	return 1
}

/* encode MSM 4: full pseudorange and phaserange plus CNR */
func (rtcm *Rtcm) encodeMsm4(sys, sync int) int {
	var (
		rrng, rrate, psrng, phrng, lock [64]float64
		cnr                             [64]float32
		half                            [64]uint8
		nsat, ncell                     int
	)
	Trace(4, "encodeMsm4: sys=%d sync=%d\n", sys, sync)

	i := rtcm.encodeMsmHead(4, sys, sync, &nsat, &ncell, rrng[:], rrate[:], nil, psrng[:],
		phrng[:], nil, lock[:], half[:], cnr[:])
	if i == 0 {
		return 0
	}
	i = rtcm.encodeMsmIntRrng(i, rrng[:], nsat)  /* rough range integer ms */
	i = rtcm.encodeMsmModRrng(i, rrng[:], nsat)  /* rough range modulo 1 ms */
	i = rtcm.encodeMsmPsrng(i, psrng[:], ncell)  /* fine pseudorange */
	i = rtcm.encodeMsmPhrng(i, phrng[:], ncell)  /* fine phase-range */
	i = rtcm.encodeMsmLock(i, lock[:], ncell)    /* lock-time indicator */
	i = rtcm.encodeMsmHalfAmb(i, half[:], ncell) /* half-cycle-amb indicator */
	i = rtcm.encodeMsmCnr(i, cnr[:], ncell)      /* signal cnr */
	rtcm.Nbit = i
	return 1
}

/* encode MSM 5: full pseudorange, phaserange, phaserangerate and CNR */
func (rtcm *Rtcm) encodeMsm5(sys, sync int) int {
	var (
		rrng, rrate, psrng, phrng, rate, lock [64]float64
		cnr                                   [64]float32
		info, half                            [64]uint8
		nsat, ncell                           int
	)
	Trace(4, "encodeMsm5: sys=%d sync=%d\n", sys, sync)

	i := rtcm.encodeMsmHead(5, sys, sync, &nsat, &ncell, rrng[:], rrate[:], info[:], psrng[:],
		phrng[:], rate[:], lock[:], half[:], cnr[:])
	if i == 0 {
		return 0
	}
	i = rtcm.encodeMsmIntRrng(i, rrng[:], nsat)  /* rough range integer ms */
	i = rtcm.encodeMsmInfo(i, info[:], nsat)     /* extended satellite info */
	i = rtcm.encodeMsmModRrng(i, rrng[:], nsat)  /* rough range modulo 1 ms */
	i = rtcm.encodeMsmRrate(i, rrate[:], nsat)   /* rough phase-range-rate */
	i = rtcm.encodeMsmPsrng(i, psrng[:], ncell)  /* fine pseudorange */
	i = rtcm.encodeMsmPhrng(i, phrng[:], ncell)  /* fine phase-range */
	i = rtcm.encodeMsmLock(i, lock[:], ncell)    /* lock-time indicator */
	i = rtcm.encodeMsmHalfAmb(i, half[:], ncell) /* half-cycle-amb indicator */
	i = rtcm.encodeMsmCnr(i, cnr[:], ncell)      /* signal cnr */
	i = rtcm.encodeMsmRate(i, rate[:], ncell)    /* fine phase-range-rate */
	rtcm.Nbit = i
	return 1
}

/* encode MSM 6: full pseudorange and phaserange plus CNR (high-res) */
func (rtcm *Rtcm) encodeMsm6(sys, sync int) int {
	var (
		rrng, rrate, psrng, phrng, lock [64]float64
		cnr                             [64]float32
		half                            [64]uint8
		nsat, ncell                     int
	)
	Trace(4, "encodeMsm6: sys=%d sync=%d\n", sys, sync)

	i := rtcm.encodeMsmHead(6, sys, sync, &nsat, &ncell, rrng[:], rrate[:], nil, psrng[:],
		phrng[:], nil, lock[:], half[:], cnr[:])
	if i == 0 {
		return 0
	}
	i = rtcm.encodeMsmIntRrng(i, rrng[:], nsat)   /* rough range integer ms */
	i = rtcm.encodeMsmModRrng(i, rrng[:], nsat)   /* rough range modulo 1 ms */
	i = rtcm.encodeMsmPsrngEx(i, psrng[:], ncell) /* fine pseudorange ext */
	i = rtcm.encodeMsmPhrngEx(i, phrng[:], ncell) /* fine phase-range ext */
	i = rtcm.encodeMsmLockEx(i, lock[:], ncell)   /* lock-time indicator ext */
	i = rtcm.encodeMsmHalfAmb(i, half[:], ncell)  /* half-cycle-amb indicator */
	i = rtcm.encodeMsmCnrEx(i, cnr[:], ncell)     /* signal cnr ext */
	rtcm.Nbit = i
	return 1
}

/* encode MSM 7: full pseudorange, phaserange, phaserangerate and CNR (h-res) */
func (rtcm *Rtcm) encodeMsm7(sys, sync int) int {
	var (
		rrng, rrate, psrng, phrng, rate, lock [64]float64
		cnr                                   [64]float32
		info, half                            [64]uint8
		nsat, ncell                           int
	)
	Trace(4, "encodeMsm7: sys=%d sync=%d\n", sys, sync)

	i := rtcm.encodeMsmHead(7, sys, sync, &nsat, &ncell, rrng[:], rrate[:], info[:], psrng[:],
		phrng[:], rate[:], lock[:], half[:], cnr[:])
	if i == 0 {
		return 0
	}
	i = rtcm.encodeMsmIntRrng(i, rrng[:], nsat)   /* rough range integer ms */
	i = rtcm.encodeMsmInfo(i, info[:], nsat)      /* extended satellite info */
	i = rtcm.encodeMsmModRrng(i, rrng[:], nsat)   /* rough range modulo 1 ms */
	i = rtcm.encodeMsmRrate(i, rrate[:], nsat)    /* rough phase-range-rate */
	i = rtcm.encodeMsmPsrngEx(i, psrng[:], ncell) /* fine pseudorange ext */
	i = rtcm.encodeMsmPhrngEx(i, phrng[:], ncell) /* fine phase-range ext */
	i = rtcm.encodeMsmLockEx(i, lock[:], ncell)   /* lock-time indicator ext */
	i = rtcm.encodeMsmHalfAmb(i, half[:], ncell)  /* half-cycle-amb indicator */
	i = rtcm.encodeMsmCnrEx(i, cnr[:], ncell)     /* signal cnr ext */
	i = rtcm.encodeMsmRate(i, rate[:], ncell)     /* fine phase-range-rate */
	rtcm.Nbit = i
	return 1
}

/* encode type 1230: GLONASS L1 and L2 code-phase biases */
func (rtcm *Rtcm) encodeType1230(sync int) int {
	var bias [4]int
	i := 24
	mask := 15

	Trace(3, "encodeType1230: sync=%d\n", sync)

	for j := 0; j < 4; j++ {
		bias[j] = roundI(rtcm.StaPara.GloCpBias[j] / 0.02)
		if bias[j] <= -32768 || bias[j] > 32767 {
			bias[j] = -32768 /* invalid value */
		}
	}
	SetBitU(rtcm.Buff[:], i, 12, 1230)
	i += 12 /* message no */
	SetBitU(rtcm.Buff[:], i, 12, uint32(rtcm.StaId))
	i += 12 /* station ID */
	SetBitU(rtcm.Buff[:], i, 1, uint32(rtcm.StaPara.GloCpAlign))
	i++ /* GLO code-phase bias ind */
	SetBitU(rtcm.Buff[:], i, 3, 0)
	i += 3 /* reserved */
	SetBitU(rtcm.Buff[:], i, 4, uint32(mask))
	i += 4 /* GLO FDMA signals mask */
	SetBits(rtcm.Buff[:], i, 16, int32(bias[0]))
	i += 16 /* GLO C1 code-phase bias */
	SetBits(rtcm.Buff[:], i, 16, int32(bias[1]))
	i += 16 /* GLO P1 code-phase bias */
	SetBits(rtcm.Buff[:], i, 16, int32(bias[2]))
	i += 16 /* GLO C2 code-phase bias */
	SetBits(rtcm.Buff[:], i, 16, int32(bias[3]))
	i += 16 /* GLO P2 code-phase bias */
	rtcm.Nbit = i
	return 1
}

/* encode type 4076: proprietary message IGS */
func (rtcm *Rtcm) encodeType4076(subtype, sync int) int {
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
		return rtcm.encodeSsr1(sys, subtype, sync)
	case 2:
		return rtcm.encodeSsr2(sys, subtype, sync)
	case 3:
		return rtcm.encodeSsr4(sys, subtype, sync)
	case 4:
		return rtcm.encodeSsr6(sys, subtype, sync)
	case 5:
		return rtcm.encodeSsr3(sys, subtype, sync)
	case 6:
		return rtcm.encodeSsr7(sys, subtype, sync)
	case 7:
		return rtcm.encodeSsr5(sys, subtype, sync)
	}
	Trace(3, "rtcm3 4076: unsupported message subtype=%d\n", subtype)
	return 0
}

/* encode RTCM ver.3 message */
func (rtcm *Rtcm) EncodeRtcm3(ctype, subtype, sync int) int {
	ret := 0

	Trace(4, "EncodeRtcm3: type=%d subtype=%d sync=%d\n", ctype, subtype, sync)

	switch ctype {
	case 1001:
		ret = rtcm.encodeType1001(sync)
	case 1002:
		ret = rtcm.encodeType1002(sync)
	case 1003:
		ret = rtcm.encodeType1003(sync)
	case 1004:
		ret = rtcm.encodeType1004(sync)
	case 1005:
		ret = rtcm.encodeType1005(sync)
	case 1006:
		ret = rtcm.encodeType1006(sync)
	case 1007:
		ret = rtcm.encodeType1007(sync)
	case 1008:
		ret = rtcm.encodeType1008(sync)
	case 1009:
		ret = rtcm.encodeType1009(sync)
	case 1010:
		ret = rtcm.encodeType1010(sync)
	case 1011:
		ret = rtcm.encodeType1011(sync)
	case 1012:
		ret = rtcm.encodeType1012(sync)
	case 1019:
		ret = rtcm.encodeType1019(sync)
	case 1020:
		ret = rtcm.encodeType1020(sync)
	case 1033:
		ret = rtcm.encodeType1033(sync)
	case 1041:
		ret = rtcm.encodeType1041(sync)
	case 1042:
		ret = rtcm.encodeType1042(1042, sync)
	case 63: /* RTCM draft */
		ret = rtcm.encodeType1042(63, sync)
	case 1044:
		ret = rtcm.encodeType1044(sync)
	case 1045:
		ret = rtcm.encodeType1045(sync)
	case 1046:
		ret = rtcm.encodeType1046(sync)
	case 1057:
		ret = rtcm.encodeSsr1(SYS_GPS, 0, sync)
	case 1058:
		ret = rtcm.encodeSsr2(SYS_GPS, 0, sync)
	case 1059:
		ret = rtcm.encodeSsr3(SYS_GPS, 0, sync)
	case 1060:
		ret = rtcm.encodeSsr4(SYS_GPS, 0, sync)
	case 1061:
		ret = rtcm.encodeSsr5(SYS_GPS, 0, sync)
	case 1062:
		ret = rtcm.encodeSsr6(SYS_GPS, 0, sync)
	case 1063:
		ret = rtcm.encodeSsr1(SYS_GLO, 0, sync)
	case 1064:
		ret = rtcm.encodeSsr2(SYS_GLO, 0, sync)
	case 1065:
		ret = rtcm.encodeSsr3(SYS_GLO, 0, sync)
	case 1066:
		ret = rtcm.encodeSsr4(SYS_GLO, 0, sync)
	case 1067:
		ret = rtcm.encodeSsr5(SYS_GLO, 0, sync)
	case 1068:
		ret = rtcm.encodeSsr6(SYS_GLO, 0, sync)
	case 1071:
		ret = rtcm.encodeMsm1(SYS_GPS, sync)
	case 1072:
		ret = rtcm.encodeMsm2(SYS_GPS, sync)
	case 1073:
		ret = rtcm.encodeMsm3(SYS_GPS, sync)
	case 1074:
		ret = rtcm.encodeMsm4(SYS_GPS, sync)
	case 1075:
		ret = rtcm.encodeMsm5(SYS_GPS, sync)
	case 1076:
		ret = rtcm.encodeMsm6(SYS_GPS, sync)
	case 1077:
		ret = rtcm.encodeMsm7(SYS_GPS, sync)
	case 1081:
		ret = rtcm.encodeMsm1(SYS_GLO, sync)
	case 1082:
		ret = rtcm.encodeMsm2(SYS_GLO, sync)
	case 1083:
		ret = rtcm.encodeMsm3(SYS_GLO, sync)
	case 1084:
		ret = rtcm.encodeMsm4(SYS_GLO, sync)
	case 1085:
		ret = rtcm.encodeMsm5(SYS_GLO, sync)
	case 1086:
		ret = rtcm.encodeMsm6(SYS_GLO, sync)
	case 1087:
		ret = rtcm.encodeMsm7(SYS_GLO, sync)
	case 1091:
		ret = rtcm.encodeMsm1(SYS_GAL, sync)
	case 1092:
		ret = rtcm.encodeMsm2(SYS_GAL, sync)
	case 1093:
		ret = rtcm.encodeMsm3(SYS_GAL, sync)
	case 1094:
		ret = rtcm.encodeMsm4(SYS_GAL, sync)
	case 1095:
		ret = rtcm.encodeMsm5(SYS_GAL, sync)
	case 1096:
		ret = rtcm.encodeMsm6(SYS_GAL, sync)
	case 1097:
		ret = rtcm.encodeMsm7(SYS_GAL, sync)
	case 1101:
		ret = rtcm.encodeMsm1(SYS_SBS, sync)
	case 1102:
		ret = rtcm.encodeMsm2(SYS_SBS, sync)
	case 1103:
		ret = rtcm.encodeMsm3(SYS_SBS, sync)
	case 1104:
		ret = rtcm.encodeMsm4(SYS_SBS, sync)
	case 1105:
		ret = rtcm.encodeMsm5(SYS_SBS, sync)
	case 1106:
		ret = rtcm.encodeMsm6(SYS_SBS, sync)
	case 1107:
		ret = rtcm.encodeMsm7(SYS_SBS, sync)
	case 1111:
		ret = rtcm.encodeMsm1(SYS_QZS, sync)
	case 1112:
		ret = rtcm.encodeMsm2(SYS_QZS, sync)
	case 1113:
		ret = rtcm.encodeMsm3(SYS_QZS, sync)
	case 1114:
		ret = rtcm.encodeMsm4(SYS_QZS, sync)
	case 1115:
		ret = rtcm.encodeMsm5(SYS_QZS, sync)
	case 1116:
		ret = rtcm.encodeMsm6(SYS_QZS, sync)
	case 1117:
		ret = rtcm.encodeMsm7(SYS_QZS, sync)
	case 1121:
		ret = rtcm.encodeMsm1(SYS_CMP, sync)
	case 1122:
		ret = rtcm.encodeMsm2(SYS_CMP, sync)
	case 1123:
		ret = rtcm.encodeMsm3(SYS_CMP, sync)
	case 1124:
		ret = rtcm.encodeMsm4(SYS_CMP, sync)
	case 1125:
		ret = rtcm.encodeMsm5(SYS_CMP, sync)
	case 1126:
		ret = rtcm.encodeMsm6(SYS_CMP, sync)
	case 1127:
		ret = rtcm.encodeMsm7(SYS_CMP, sync)
	case 1131:
		ret = rtcm.encodeMsm1(SYS_IRN, sync)
	case 1132:
		ret = rtcm.encodeMsm2(SYS_IRN, sync)
	case 1133:
		ret = rtcm.encodeMsm3(SYS_IRN, sync)
	case 1134:
		ret = rtcm.encodeMsm4(SYS_IRN, sync)
	case 1135:
		ret = rtcm.encodeMsm5(SYS_IRN, sync)
	case 1136:
		ret = rtcm.encodeMsm6(SYS_IRN, sync)
	case 1137:
		ret = rtcm.encodeMsm7(SYS_IRN, sync)
	case 1230:
		ret = rtcm.encodeType1230(sync)
	case 1240: /* draft */
		ret = rtcm.encodeSsr1(SYS_GAL, 0, sync)
	case 1241:
		ret = rtcm.encodeSsr2(SYS_GAL, 0, sync)
	case 1242:
		ret = rtcm.encodeSsr3(SYS_GAL, 0, sync)
	case 1243:
		ret = rtcm.encodeSsr4(SYS_GAL, 0, sync)
	case 1244:
		ret = rtcm.encodeSsr5(SYS_GAL, 0, sync)
	case 1245:
		ret = rtcm.encodeSsr6(SYS_GAL, 0, sync)
	case 1246:
		ret = rtcm.encodeSsr1(SYS_QZS, 0, sync)
	case 1247:
		ret = rtcm.encodeSsr2(SYS_QZS, 0, sync)
	case 1248:
		ret = rtcm.encodeSsr3(SYS_QZS, 0, sync)
	case 1249:
		ret = rtcm.encodeSsr4(SYS_QZS, 0, sync)
	case 1250:
		ret = rtcm.encodeSsr5(SYS_QZS, 0, sync)
	case 1251:
		ret = rtcm.encodeSsr6(SYS_QZS, 0, sync)
	case 1252:
		ret = rtcm.encodeSsr1(SYS_SBS, 0, sync)
	case 1253:
		ret = rtcm.encodeSsr2(SYS_SBS, 0, sync)
	case 1254:
		ret = rtcm.encodeSsr3(SYS_SBS, 0, sync)
	case 1255:
		ret = rtcm.encodeSsr4(SYS_SBS, 0, sync)
	case 1256:
		ret = rtcm.encodeSsr5(SYS_SBS, 0, sync)
	case 1257:
		ret = rtcm.encodeSsr6(SYS_SBS, 0, sync)
	case 1258:
		ret = rtcm.encodeSsr1(SYS_CMP, 0, sync)
	case 1259:
		ret = rtcm.encodeSsr2(SYS_CMP, 0, sync)
	case 1260:
		ret = rtcm.encodeSsr3(SYS_CMP, 0, sync)
	case 1261:
		ret = rtcm.encodeSsr4(SYS_CMP, 0, sync)
	case 1262:
		ret = rtcm.encodeSsr5(SYS_CMP, 0, sync)
	case 1263:
		ret = rtcm.encodeSsr6(SYS_CMP, 0, sync)
	case 11: /* tentative */
		ret = rtcm.encodeSsr7(SYS_GPS, 0, sync)
	case 12:
		ret = rtcm.encodeSsr7(SYS_GAL, 0, sync)
	case 13:
		ret = rtcm.encodeSsr7(SYS_QZS, 0, sync)
	case 14:
		ret = rtcm.encodeSsr7(SYS_CMP, 0, sync)
	case 4076:
		ret = rtcm.encodeType4076(subtype, sync)
	}
	if ret > 0 {
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
