/*------------------------------------------------------------------------------
* ublox.go : u-blox receiver dependent functions
*
* reference :
*     [1] ublox-AG, GPS.G3-X-03002-D, ANTARIS Positioning Engine NMEA and UBX
*         Protocol Specification, Version 5.00, 2003
*     [2] ublox-AG, UBX-13003221-R09, u-blox 8 /u-blox M8 Receiver Description
*         including Protocol Specification V15.00-18.00, January, 2016
*     [3] ublox-AG, UBX-18010854-R08, u-blox ZED-F9P Interface Description,
*         May, 2020
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	ubxSync1 = 0xB5 /* message sync code 1 */
	ubxSync2 = 0x62 /* message sync code 2 */
	ubxCfg   = 0x06 /* message class cfg */

	idNavSol   = 0x0106 /* nav solution info */
	idNavTime  = 0x0120 /* nav time gps */
	idRxmRaw   = 0x0210 /* raw measurement data */
	idRxmSfrb  = 0x0211 /* subframe buffer */
	idRxmSfrbx = 0x0213 /* raw subframe data */
	idRxmRawx  = 0x0215 /* multi-gnss raw measurement data */
	idTrkD5    = 0x030A /* trace measurement data */
	idTrkSfrbx = 0x030F /* trace subframe buffer */
	idTrkMeas  = 0x0310 /* trace measurement data */
	idTimTm2   = 0x0D03 /* external event time mark */

	preambCnav = 0x8B /* cnav preamble */

	cpstdValid = 5 /* default std-dev threshold of valid carrier-phase */
)

/* get fields (little-endian) */
func u1(p []uint8) uint8 { return p[0] }
func i1(p []uint8) int8  { return int8(p[0]) }
func u2l(p []uint8) uint16 {
	return binary.LittleEndian.Uint16(p)
}
func u4l(p []uint8) uint32 {
	return binary.LittleEndian.Uint32(p)
}
func i4l(p []uint8) int32 {
	return int32(binary.LittleEndian.Uint32(p))
}
func r4l(p []uint8) float32 {
	return math.Float32frombits(binary.LittleEndian.Uint32(p))
}
func r8l(p []uint8) float64 {
	return math.Float64frombits(binary.LittleEndian.Uint64(p))
}
func i8l(p []uint8) float64 {
	return float64(i4l(p[4:]))*4294967296.0 + float64(u4l(p))
}

/* set fields (little-endian) */
func setU1(p []uint8, u uint8)   { p[0] = u }
func setU2(p []uint8, u uint16)  { binary.LittleEndian.PutUint16(p, u) }
func setU4(p []uint8, u uint32)  { binary.LittleEndian.PutUint32(p, u) }
func setI1(p []uint8, v int8)    { p[0] = uint8(v) }
func setI2(p []uint8, v int16)   { binary.LittleEndian.PutUint16(p, uint16(v)) }
func setI4(p []uint8, v int32)   { binary.LittleEndian.PutUint32(p, uint32(v)) }
func setR4(p []uint8, v float32) { binary.LittleEndian.PutUint32(p, math.Float32bits(v)) }
func setR8(p []uint8, v float64) { binary.LittleEndian.PutUint64(p, math.Float64bits(v)) }

func roundI(x float64) int { return int(math.Floor(x + 0.5)) }

/* ubx 8-bit Fletcher checksum over class..payload */
func ubxChecksum(buff []uint8, length int) int {
	var cka, ckb uint8

	for i := 2; i < length-2; i++ {
		cka += buff[i]
		ckb += cka
	}
	if cka == buff[length-2] && ckb == buff[length-1] {
		return 1
	}
	return 0
}

func setUbxCS(buff []uint8, length int) {
	var cka, ckb uint8

	for i := 2; i < length-2; i++ {
		cka += buff[i]
		ckb += cka
	}
	buff[length-2] = cka
	buff[length-1] = ckb
}

/* UBX GnssId to system (ref [2] 25) */
func ubxSys(gnssid int) int {
	switch gnssid {
	case 0:
		return SYS_GPS
	case 1:
		return SYS_SBS
	case 2:
		return SYS_GAL
	case 3:
		return SYS_CMP
	case 5:
		return SYS_QZS
	case 6:
		return SYS_GLO
	}
	return 0
}

/* UBX SigId to obs code (ref [3] 1.5.4) */
func ubxSig(sys, sigid int) uint8 {
	switch sys {
	case SYS_GPS:
		switch sigid {
		case 0:
			return CODE_L1C /* L1C/A */
		case 3:
			return CODE_L2L /* L2CL */
		case 4:
			return CODE_L2S /* L2CM */
		}
	case SYS_GLO:
		switch sigid {
		case 0:
			return CODE_L1C /* G1C/A */
		case 2:
			return CODE_L2C /* G2C/A */
		}
	case SYS_GAL:
		switch sigid {
		case 0:
			return CODE_L1C /* E1C */
		case 1:
			return CODE_L1B /* E1B */
		case 5:
			return CODE_L7I /* E5bI */
		case 6:
			return CODE_L7Q /* E5bQ */
		}
	case SYS_QZS:
		switch sigid {
		case 0:
			return CODE_L1C /* L1C/A */
		case 1:
			return CODE_L1Z /* L1S */
		case 4:
			return CODE_L2S /* L2CM */
		case 5:
			return CODE_L2L /* L2CL */
		}
	case SYS_CMP:
		switch sigid {
		case 0, 1:
			return CODE_L2I /* B1I D1/D2 */
		case 2, 3:
			return CODE_L7I /* B2I D1/D2 */
		}
	case SYS_SBS:
		if sigid == 0 {
			return CODE_L1C /* L1C/A */
		}
	}
	return CODE_NONE
}

/* signal index in obs data */
func sigIdx(sys int, code uint8) int {
	idx := Code2Idx(sys, code)

	switch sys {
	case SYS_GPS:
		if code == CODE_L2S && NEXOBS < 1 { /* L2CM */
			return -1
		}
	case SYS_GAL:
		if code == CODE_L1B && NEXOBS < 1 { /* E1B */
			return -1
		}
	case SYS_QZS:
		if code == CODE_L1Z && NEXOBS < 2 { /* L1S */
			return -1
		}
	}
	if idx >= 0 && idx < NFREQ {
		return idx
	}
	return -1
}

func zeroObsD(data *ObsD) {
	for k := 0; k < NFRQX; k++ {
		data.L[k], data.P[k], data.D[k] = 0.0, 0.0, 0.0
		data.SNR[k], data.LLI[k] = 0, 0
		data.Pstd[k], data.Lstd[k] = 0, 0
		data.Code[k] = CODE_NONE
	}
}

/* decode UBX-RXM-RAW: raw measurement data */
func decodeRxmRaw(raw *Raw) int {
	opt := raw.options()
	p := 6

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX RXM-RAW   (%4d): nsat=%d", raw.Len,
			u1(raw.Buff[p+6:]))
	}
	nsat := int(u1(raw.Buff[p+6:]))
	if raw.Len < 12+24*nsat {
		Trace(2, "ubx rxmraw length error: len=%d nsat=%d\n", raw.Len, nsat)
		return -1
	}
	tow := float64(u4l(raw.Buff[p:]))
	week := int(u2l(raw.Buff[p+4:]))
	if week == 0 {
		Trace(3, "ubx rxmraw week=0 error: len=%d nsat=%d\n", raw.Len, nsat)
		return 0
	}
	time := GpsT2Time(week, tow*0.001)

	/* time tag rounding (-TADJ) */
	var toff float64
	if opt.Tadj > 0.0 {
		tn := Time2GpsT(time, &week) / opt.Tadj
		toff = (tn - math.Floor(tn+0.5)) * opt.Tadj
		time = TimeAdd(time, -toff)
	}
	tt := TimeDiff(time, raw.Time)

	data := raw.ObsData.Data[:0]
	for i, p := 0, p+8; i < nsat && len(data) < MAXOBS; i, p = i+1, p+24 {
		var d ObsD
		zeroObsD(&d)
		d.Time = time
		d.L[0] = r8l(raw.Buff[p:]) - toff*FREQ1
		d.P[0] = r8l(raw.Buff[p+8:]) - toff*CLIGHT
		d.D[0] = float64(r4l(raw.Buff[p+16:]))
		prn := int(u1(raw.Buff[p+20:]))
		d.SNR[0] = uint16(float64(i1(raw.Buff[p+22:]))/SNR_UNIT + 0.5)
		d.LLI[0] = u1(raw.Buff[p+23:])
		d.Code[0] = CODE_L1C

		/* phase polarity flip option (-INVCP) */
		if opt.InvCP {
			d.L[0] = -d.L[0]
		}
		sys := SYS_GPS
		if prn >= MINPRNSBS {
			sys = SYS_SBS
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "ubx rxmraw sat number error: prn=%d\n", prn)
			continue
		}
		d.Sat = sat

		if d.LLI[0]&1 != 0 || tt < 1.0 || tt > 10.0 {
			raw.LockTime[sat-1][0] = 0.0
		} else {
			raw.LockTime[sat-1][0] += tt
		}
		data = append(data, d)
	}
	raw.Time = time
	raw.ObsData.Data = data
	return 1
}

/* decode UBX-RXM-RAWX: multi-GNSS raw measurement data (ref [2][3]) */
func decodeRxmRawx(raw *Raw) int {
	opt := raw.options()
	p := 6

	if raw.Len < 24 {
		Trace(2, "ubx rxmrawx length error: len=%d\n", raw.Len)
		return -1
	}
	tow := r8l(raw.Buff[p:])             /* rcvTow (s) */
	week := int(u2l(raw.Buff[p+8:]))     /* week */
	nmeas := int(u1(raw.Buff[p+11:]))    /* numMeas */
	ver := int(u1(raw.Buff[p+13:]))      /* version */

	if raw.Len < 24+32*nmeas {
		Trace(2, "ubx rxmrawx length error: len=%d nmeas=%d\n", raw.Len, nmeas)
		return -1
	}
	if week == 0 {
		Trace(3, "ubx rxmrawx week=0 error: len=%d nmeas=%d\n", raw.Len, nmeas)
		return 0
	}
	time := GpsT2Time(week, tow)

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX RXM-RAWX  (%4d): time=%s nmeas=%d ver=%d",
			raw.Len, Time2Str(time, 2), nmeas, ver)
	}
	maxStdCP := cpstdValid
	if opt.MaxStdCP >= 0 {
		maxStdCP = opt.MaxStdCP
	}
	/* time tag rounding (-TADJ) */
	var toff float64
	if opt.Tadj > 0.0 {
		tn := Time2GpsT(time, &week) / opt.Tadj
		toff = (tn - math.Floor(tn+0.5)) * opt.Tadj
		time = TimeAdd(time, -toff)
	}
	data := raw.ObsData.Data[:0]
	for i, p := 0, p+16; i < nmeas; i, p = i+1, p+32 {
		P := r8l(raw.Buff[p:])                  /* prMes (m) */
		L := r8l(raw.Buff[p+8:])                /* cpMes (cyc) */
		D := float64(r4l(raw.Buff[p+16:]))      /* doMes (hz) */
		gnss := int(u1(raw.Buff[p+20:]))        /* gnssId */
		svid := int(u1(raw.Buff[p+21:]))        /* svId */
		sigid := int(u1(raw.Buff[p+22:]))       /* sigId */
		frqid := int(u1(raw.Buff[p+23:]))       /* freqId (fcn+7) */
		lockt := int(u2l(raw.Buff[p+24:]))      /* locktime (ms) */
		cn0 := int(u1(raw.Buff[p+26:]))         /* cn0 (dBHz) */
		prstd := int(u1(raw.Buff[p+27:])) & 15  /* prStdev (0.01*2^n m) */
		cpstd := int(u1(raw.Buff[p+28:])) & 15  /* cpStdev (0.004 m) */
		tstat := int(u1(raw.Buff[p+30:]))       /* trkStat */
		if tstat&1 == 0 {
			P = 0.0
		}
		if tstat&2 == 0 || L == -0.5 || cpstd > maxStdCP {
			L = 0.0
		}
		sys := ubxSys(gnss)
		if sys == 0 {
			Trace(2, "ubx rxmrawx: system error gnss=%d\n", gnss)
			continue
		}
		prn := svid
		if sys == SYS_QZS {
			prn = svid + 192
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			if sys == SYS_GLO && prn == 255 {
				continue /* unknown glonass satellite */
			}
			Trace(2, "ubx rxmrawx sat number error: sys=%2d prn=%2d\n", sys, prn)
			continue
		}
		if sys == SYS_GLO && raw.NavData.GloFcn[prn-1] == 0 {
			raw.NavData.GloFcn[prn-1] = frqid - 7 + 8
		}
		var code uint8
		if ver >= 1 {
			code = ubxSig(sys, sigid)
		} else {
			switch sys {
			case SYS_CMP:
				code = CODE_L2I
			case SYS_GAL:
				code = CODE_L1X
			default:
				code = CODE_L1C
			}
		}
		idx := sigIdx(sys, code)
		if idx < 0 {
			Trace(2, "ubx rxmrawx signal error: sat=%2d sigid=%d\n", sat, sigid)
			continue
		}
		/* offset by time tag rounding */
		if toff != 0.0 {
			P -= toff * CLIGHT
			L -= toff * Code2Freq(sys, code, frqid-7)
		}
		/* half-cycle shift correction for BDS GEO */
		if sys == SYS_CMP && (prn <= 5 || prn >= 59) && L != 0.0 {
			L += 0.5
		}
		if opt.InvCP {
			L = -L
		}
		halfv := tstat & 4 >> 2 /* half cycle valid */
		halfc := tstat & 8 >> 3 /* half cycle subtracted from phase */
		slip := 0
		if lockt == 0 || float64(lockt)*1e-3 < raw.LockTime[sat-1][idx] ||
			halfc != int(raw.Halfc[sat-1][idx]) ||
			(opt.StdSlip > 0 && cpstd >= opt.StdSlip) {
			slip = LLI_SLIP
		}
		raw.LockTime[sat-1][idx] = float64(lockt) * 1e-3
		raw.Halfc[sat-1][idx] = uint8(halfc)

		LLI := slip
		if halfv == 0 {
			LLI |= LLI_HALFC
		}
		if halfc != 0 {
			LLI |= LLI_HALFS
		}
		/* merge signals of the same satellite into one record */
		j := 0
		for ; j < len(data); j++ {
			if data[j].Sat == sat {
				break
			}
		}
		if j >= len(data) {
			if len(data) >= MAXOBS {
				continue
			}
			var d ObsD
			zeroObsD(&d)
			d.Time = time
			d.Sat = sat
			data = append(data, d)
		}
		/* keep the higher priority code per band (-MULTICODE) */
		if data[j].Code[idx] != CODE_NONE {
			if !opt.MultiCode ||
				GetCodePri(sys, code, "") <= GetCodePri(sys, data[j].Code[idx], "") {
				continue
			}
		}
		data[j].L[idx] = L
		data[j].P[idx] = P
		data[j].D[idx] = D
		data[j].SNR[idx] = uint16(float64(cn0)/SNR_UNIT + 0.5)
		data[j].LLI[idx] = uint8(LLI)
		data[j].Code[idx] = code
		if opt.RcvStds {
			data[j].Pstd[idx] = uint8(prstd)
			data[j].Lstd[idx] = uint8(cpstd)
		}
	}
	raw.Time = time
	raw.ObsData.Data = data
	return 1
}

/* decode UBX-NAV-SOL: navigation solution */
func decodeNavSol(raw *Raw) int {
	p := 6

	Trace(4, "decodeNavSol: len=%d\n", raw.Len)

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX NAV-SOL   (%4d):", raw.Len)
	}
	itow := int(u4l(raw.Buff[p:]))
	ftow := int(i4l(raw.Buff[p+4:]))
	week := int(u2l(raw.Buff[p+8:]))
	if u1(raw.Buff[p+11:])&0x0C == 0x0C {
		raw.Time = GpsT2Time(week, float64(itow)*1e-3+float64(ftow)*1e-9)
	}
	return 0
}

/* decode UBX-NAV-TIMEGPS: GPS time solution */
func decodeNavTime(raw *Raw) int {
	p := 6

	Trace(4, "decodeNavTime: len=%d\n", raw.Len)

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX NAV-TIME  (%4d):", raw.Len)
	}
	itow := int(u4l(raw.Buff[p:]))
	ftow := int(i4l(raw.Buff[p+4:]))
	week := int(u2l(raw.Buff[p+8:]))
	if u1(raw.Buff[p+11:])&0x03 == 0x03 {
		raw.Time = GpsT2Time(week, float64(itow)*1e-3+float64(ftow)*1e-9)
	}
	return 0
}

/* decode UBX-TIM-TM2: external event time mark (ref [3]) */
func decodeTimTm2(raw *Raw) int {
	p := 6

	Trace(4, "decodeTimTm2: len=%d\n", raw.Len)

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX TIM-TM2   (%4d):", raw.Len)
	}
	if raw.Len < 36 {
		Trace(2, "ubx timtm2 length error: len=%d\n", raw.Len)
		return -1
	}
	flags := int(u1(raw.Buff[p+1:]))
	if flags&0x80 == 0 { /* no newRisingEdge */
		return 0
	}
	week := int(u2l(raw.Buff[p+4:])) /* wnR */
	towMs := u4l(raw.Buff[p+8:])     /* towMsR */
	towSub := u4l(raw.Buff[p+12:])   /* towSubMsR */
	time := GpsT2Time(week, float64(towMs)*1e-3+float64(towSub)*1e-9)
	if (flags>>3)&3 == 2 { /* time base utc */
		time = Utc2GpsT(time)
	}
	raw.EventTime = time
	raw.EventN++
	return 0
}

/* decode UBX-TRK-MEAS: trace measurement data (unofficial) */
func decodeTrkMeas(raw *Raw) int {
	opt := raw.options()
	p := 6

	Trace(4, "decodeTrkMeas: len=%d\n", raw.Len)

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX TRK-MEAS  (%4d):", raw.Len)
	}
	if raw.Time.Time == 0 {
		return 0
	}
	nch := int(u1(raw.Buff[p+2:])) /* number of channels */

	if raw.Len < 112+nch*56 {
		Trace(2, "decodeTrkMeas: length error len=%d nch=%2d\n", raw.Len, nch)
		return -1
	}
	/* time-tag = max(transmission time + 0.08) rounded by 100 ms */
	tr := -1.0
	for i, q := 0, p+110; i < nch; i, q = i+1, q+56 {
		if u1(raw.Buff[q+1:]) < 4 || ubxSys(int(u1(raw.Buff[q+4:]))) != SYS_GPS {
			continue
		}
		if t := i8l(raw.Buff[q+24:]) * P2_32 / 1000.0; t > tr {
			tr = t
		}
	}
	if tr < 0.0 {
		return 0
	}
	tr = float64(roundI((tr+0.08)/0.1)) * 0.1

	/* adjust week handover */
	var week int
	t := Time2GpsT(raw.Time, &week)
	if tr < t-302400.0 {
		week++
	} else if tr > t+302400.0 {
		week--
	}
	time := GpsT2Time(week, tr)
	utcGpst := TimeDiff(GpsT2Utc(time), time)

	data := raw.ObsData.Data[:0]
	for i, p := 0, p+110; i < nch; i, p = i+1, p+56 {

		/* quality indicator (0:idle,1:search,2:acquired,3:unusable, */
		/*                    4:code lock,5,6,7:code/carrier lock) */
		qi := int(u1(raw.Buff[p+1:]))
		if qi < 4 || qi > 7 {
			continue
		}
		sys := ubxSys(int(u1(raw.Buff[p+4:])))
		if sys == 0 {
			Trace(2, "ubx trkmeas: system error\n")
			continue
		}
		prn := int(u1(raw.Buff[p+5:]))
		if sys == SYS_QZS {
			prn += 192
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "ubx trkmeas sat number error: sys=%2d prn=%2d\n", sys, prn)
			continue
		}
		/* transmission time */
		ts := i8l(raw.Buff[p+24:]) * P2_32 / 1000.0
		if sys == SYS_CMP {
			ts += 14.0 /* bdt -> gpst */
		} else if sys == SYS_GLO {
			ts -= 10800.0 + utcGpst /* glot -> gpst */
		}
		/* signal travel time */
		tau := tr - ts
		if tau < -302400.0 {
			tau += 604800.0
		} else if tau > 302400.0 {
			tau -= 604800.0
		}
		flag := int(u1(raw.Buff[p+8:]))   /* tracking status */
		lock2 := int(u1(raw.Buff[p+17:])) /* phase lock count */
		snr := float64(u2l(raw.Buff[p+20:])) / 256.0
		adr := i8l(raw.Buff[p+32:]) * P2_32
		if flag&0x40 != 0 {
			adr += 0.5
		}
		dop := float64(i4l(raw.Buff[p+40:])) * P2_10 * 10.0

		/* set slip flag */
		if lock2 == 0 || float64(lock2) < raw.LockTime[sat-1][0] {
			raw.LockTime[sat-1][1] = 1.0
		}
		raw.LockTime[sat-1][0] = float64(lock2)

		/* check phase lock */
		if flag&0x20 == 0 {
			continue
		}
		if len(data) >= MAXOBS {
			continue
		}
		var d ObsD
		zeroObsD(&d)
		d.Time = time
		d.Sat = sat
		d.P[0] = tau * CLIGHT
		d.L[0] = -adr
		if opt.InvCP {
			d.L[0] = adr
		}
		d.D[0] = dop
		d.SNR[0] = uint16(snr/SNR_UNIT + 0.5)
		if sys == SYS_CMP {
			d.Code[0] = CODE_L2I
		} else {
			d.Code[0] = CODE_L1C
		}
		if raw.LockTime[sat-1][1] > 0.0 {
			d.LLI[0] = LLI_SLIP
		}
		if sys == SYS_SBS { /* half-cycle valid */
			if lock2 <= 142 {
				d.LLI[0] |= LLI_HALFC
			}
		} else if flag&0x80 == 0 {
			d.LLI[0] |= LLI_HALFC
		}
		raw.LockTime[sat-1][1] = 0.0
		data = append(data, d)
	}
	if len(data) == 0 {
		return 0
	}
	raw.Time = time
	raw.ObsData.Data = data
	return 1
}

/* decode UBX-TRK-D5: trace measurement data (unofficial) */
func decodeTrkD5(raw *Raw) int {
	opt := raw.options()
	p := 6

	Trace(4, "decodeTrkD5: len=%d\n", raw.Len)

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX TRK-D5    (%4d):", raw.Len)
	}
	if raw.Time.Time == 0 {
		return 0
	}
	utcGpst := TimeDiff(GpsT2Utc(raw.Time), raw.Time)

	var off, length int
	ctype := int(u1(raw.Buff[p:]))
	switch ctype {
	case 3:
		off, length = 86, 56
	case 6:
		off, length = 86, 64 /* u-blox 7 */
	default:
		off, length = 78, 56
	}
	tr := -1.0
	for p := off; p < raw.Len-2; p += length {
		qi := int(u1(raw.Buff[p+41:])) & 7
		if qi < 4 || qi > 7 {
			continue
		}
		t := i8l(raw.Buff[p:]) * P2_32 / 1000.0
		if ctype == 6 && ubxSys(int(u1(raw.Buff[p+56:]))) == SYS_GLO {
			t -= 10800.0 + utcGpst
		}
		if t > tr {
			tr = t
			break
		}
	}
	if tr < 0.0 {
		return 0
	}
	tr = float64(roundI((tr+0.08)/0.1)) * 0.1

	/* adjust week handover */
	var week int
	t := Time2GpsT(raw.Time, &week)
	if tr < t-302400.0 {
		week++
	} else if tr > t+302400.0 {
		week--
	}
	time := GpsT2Time(week, tr)

	data := raw.ObsData.Data[:0]
	for p := off; p < raw.Len-2; p += length {
		qi := int(u1(raw.Buff[p+41:])) & 7
		if qi < 4 || qi > 7 {
			continue
		}
		var sys, prn int
		if ctype == 6 {
			if sys = ubxSys(int(u1(raw.Buff[p+56:]))); sys == 0 {
				Trace(2, "ubx trkd5: system error\n")
				continue
			}
			prn = int(u1(raw.Buff[p+57:]))
			if sys == SYS_QZS {
				prn += 192
			}
		} else {
			prn = int(u1(raw.Buff[p+34:]))
			if prn < MINPRNSBS {
				sys = SYS_GPS
			} else {
				sys = SYS_SBS
			}
		}
		sat := SatNo(sys, prn)
		if sat == 0 {
			Trace(2, "ubx trkd5 sat number error: sys=%2d prn=%2d\n", sys, prn)
			continue
		}
		/* transmission time */
		ts := i8l(raw.Buff[p:]) * P2_32 / 1000.0
		if sys == SYS_GLO {
			ts -= 10800.0 + utcGpst /* glot -> gpst */
		}
		/* signal travel time */
		tau := tr - ts
		if tau < -302400.0 {
			tau += 604800.0
		} else if tau > 302400.0 {
			tau -= 604800.0
		}
		flag := int(u1(raw.Buff[p+54:])) /* tracking status */
		adr := 0.0
		if qi >= 6 {
			adr = i8l(raw.Buff[p+8:]) * P2_32
		}
		if flag&0x01 == 0 {
			adr += 0.5
		}
		dop := float64(i4l(raw.Buff[p+16:])) * P2_10 / 4.0
		snr := float64(u2l(raw.Buff[p+32:])) / 256.0

		if snr <= 10.0 {
			raw.LockTime[sat-1][1] = 1.0
		}
		/* check phase lock */
		if flag&0x08 == 0 {
			continue
		}
		if len(data) >= MAXOBS {
			continue
		}
		var d ObsD
		zeroObsD(&d)
		d.Time = time
		d.Sat = sat
		d.P[0] = tau * CLIGHT
		d.L[0] = -adr
		if opt.InvCP {
			d.L[0] = adr
		}
		d.D[0] = dop
		d.SNR[0] = uint16(snr/SNR_UNIT + 0.5)
		if sys == SYS_CMP {
			d.Code[0] = CODE_L2I
		} else {
			d.Code[0] = CODE_L1C
		}
		if raw.LockTime[sat-1][1] > 0.0 {
			d.LLI[0] = LLI_SLIP
		}
		raw.LockTime[sat-1][1] = 0.0
		data = append(data, d)
	}
	if len(data) == 0 {
		return 0
	}
	raw.Time = time
	raw.ObsData.Data = data
	return 1
}

/* UTC 8-bit week -> full week */
func adjUtcWeek(time Gtime, utc []float64) {
	var week int

	Time2GpsT(time, &week)
	utc[3] += float64(week / 256 * 256)
	if utc[3] < float64(week)-127.0 {
		utc[3] += 256.0
	} else if utc[3] > float64(week)+127.0 {
		utc[3] -= 256.0
	}
	utc[5] += float64(int(utc[3]) / 256 * 256)
	if utc[5] < utc[3]-127.0 {
		utc[5] += 256.0
	} else if utc[5] > utc[3]+127.0 {
		utc[5] -= 256.0
	}
}

/* decode GPS/QZSS ephemeris from subframe buffer */
func decodeUbxEph(raw *Raw, sat int) int {
	var eph Eph

	if DecodeFrameEph(raw.SubFrm[sat-1][:], &eph) == 0 {
		return 0
	}
	if !raw.options().EphAll {
		if eph.Iode == raw.NavData.Ephs[sat-1].Iode &&
			eph.Iodc == raw.NavData.Ephs[sat-1].Iodc &&
			TimeDiff(eph.Toe, raw.NavData.Ephs[sat-1].Toe) == 0.0 &&
			TimeDiff(eph.Toc, raw.NavData.Ephs[sat-1].Toc) == 0.0 {
			return 0
		}
	}
	eph.Sat = sat
	raw.NavData.Ephs[sat-1] = eph
	raw.EphSat = sat
	raw.EphSet = 0
	return 2
}

/* decode GPS/QZSS ION/UTC parameters from subframe buffer */
func decodeUbxIonUtc(raw *Raw, sat int) int {
	var ion, utc [8]float64

	if DecodeFrameIon(raw.SubFrm[sat-1][:], ion[:]) == 0 ||
		DecodeFrameUtc(raw.SubFrm[sat-1][:], utc[:]) == 0 {
		return 0
	}
	adjUtcWeek(raw.Time, utc[:])
	if SatSys(sat, nil) == SYS_QZS {
		copy(raw.NavData.IonQzs[:], ion[:])
		copy(raw.NavData.UtcQzs[:], utc[:])
	} else {
		copy(raw.NavData.IonGps[:], ion[:])
		copy(raw.NavData.UtcGps[:], utc[:])
	}
	return 9
}

/* decode GPS/QZSS navigation data */
func decodeUbxNav(raw *Raw, sat, off int) int {
	var buff [30]uint8
	p := 6 + off

	if raw.Len < 48+off {
		Trace(2, "ubx rxmsfrbx nav length error: sat=%d len=%d\n", sat, raw.Len)
		return -1
	}
	if u4l(raw.Buff[p:])>>24 == preambCnav {
		Trace(3, "ubx rxmsfrbx nav unsupported sat=%d len=%d\n", sat, raw.Len)
		return 0
	}
	for i := 0; i < 10; i, p = i+1, p+4 { /* 24 x 10 bits w/o parity */
		SetBitU(buff[:], 24*i, 24, u4l(raw.Buff[p:])>>6)
	}
	id := int(GetBitU(buff[:], 43, 3))
	if id < 1 || id > 5 {
		Trace(2, "ubx rxmsfrbx nav subframe id error: sat=%d id=%d\n", sat, id)
		return -1
	}
	copy(raw.SubFrm[sat-1][(id-1)*30:], buff[:30])

	switch id {
	case 3:
		return decodeUbxEph(raw, sat)
	case 4, 5:
		return decodeUbxIonUtc(raw, sat)
	}
	return 0
}

/* decode Galileo I/NAV navigation data */
func decodeUbxEnav(raw *Raw, sat, off int) int {
	var (
		eph     Eph
		ion     [4]float64
		utc     [8]float64
		buff    [32]uint8
		crcBuff [26]uint8
	)
	p := 6 + off

	if raw.Len < 40+off {
		Trace(2, "ubx rxmsfrbx enav length error: sat=%d len=%d\n", sat, raw.Len)
		return -1
	}
	if raw.Len < 44+off {
		return 0 /* E5b I/NAV */
	}
	for i := 0; i < 8; i, p = i+1, p+4 {
		SetBitU(buff[:], 32*i, 32, u4l(raw.Buff[p:]))
	}
	part1 := int(GetBitU(buff[:], 0, 1))
	page1 := int(GetBitU(buff[:], 1, 1))
	part2 := int(GetBitU(buff[:], 128, 1))
	page2 := int(GetBitU(buff[:], 129, 1))

	if part1 != 0 || part2 != 1 {
		Trace(3, "ubx rxmsfrbx enav page even/odd error: sat=%d\n", sat)
		return -1
	}
	if page1 == 1 || page2 == 1 {
		return 0 /* alert page */
	}
	/* test crc (4(pad) + 114 + 82 bits) */
	for i, j := 0, 4; i < 15; i, j = i+1, j+8 {
		SetBitU(crcBuff[:], j, 8, GetBitU(buff[:], i*8, 8))
	}
	for i, j := 0, 118; i < 11; i, j = i+1, j+8 {
		SetBitU(crcBuff[:], j, 8, GetBitU(buff[:], i*8+128, 8))
	}
	if CRC24q(crcBuff[:], 25) != GetBitU(buff[:], 128+82, 24) {
		Trace(2, "ubx rxmsfrbx enav crc error: sat=%d\n", sat)
		return -1
	}
	ctype := int(GetBitU(buff[:], 2, 6)) /* word type */
	if ctype > 6 {
		return 0
	}
	/* save 128 (112:even+16:odd) bits word */
	for i, j := 0, 2; i < 14; i, j = i+1, j+8 {
		raw.SubFrm[sat-1][ctype*16+i] = uint8(GetBitU(buff[:], j, 8))
	}
	for i, j := 14, 130; i < 16; i, j = i+1, j+8 {
		raw.SubFrm[sat-1][ctype*16+i] = uint8(GetBitU(buff[:], j, 8))
	}
	if ctype != 5 {
		return 0
	}
	if DecodeGalInav(raw.SubFrm[sat-1][:], &eph, ion[:], utc[:]) == 0 {
		return 0
	}
	if eph.Sat != sat {
		Trace(2, "ubx rxmsfrbx enav satellite error: sat=%d %d\n", sat, eph.Sat)
		return -1
	}
	eph.Code |= 1 << 0 /* data source: E1 */

	adjUtcWeek(raw.Time, utc[:])
	copy(raw.NavData.IonGal[:], ion[:])
	copy(raw.NavData.UtcGal[:], utc[:])

	if !raw.options().EphAll {
		if eph.Iode == raw.NavData.Ephs[sat-1].Iode &&
			TimeDiff(eph.Toe, raw.NavData.Ephs[sat-1].Toe) == 0.0 &&
			TimeDiff(eph.Toc, raw.NavData.Ephs[sat-1].Toc) == 0.0 {
			return 0
		}
	}
	raw.NavData.Ephs[sat-1] = eph
	raw.EphSat = sat
	raw.EphSet = 0 /* 0:I/NAV */
	return 2
}

/* decode BDS navigation data */
func decodeUbxCnav(raw *Raw, sat, off int) int {
	var (
		eph      Eph
		ion, utc [8]float64
		buff     [38]uint8
		prn      int
	)
	p := 6 + off

	if raw.Len < 48+off {
		Trace(2, "ubx rxmsfrbx cnav length error: sat=%d len=%d\n", sat, raw.Len)
		return -1
	}
	for i := 0; i < 10; i, p = i+1, p+4 {
		SetBitU(buff[:], 30*i, 30, u4l(raw.Buff[p:]))
	}
	id := int(GetBitU(buff[:], 15, 3)) /* subframe id */
	if id < 1 || id > 5 {
		Trace(2, "ubx rxmsfrbx cnav subframe id error: sat=%2d\n", sat)
		return -1
	}
	SatSys(sat, &prn)

	if prn >= 6 && prn <= 58 { /* IGSO/MEO: D1 */
		copy(raw.SubFrm[sat-1][(id-1)*38:], buff[:38])

		switch id {
		case 3:
			if DecodeBDSD1Eph(raw.SubFrm[sat-1][:], &eph) == 0 {
				return 0
			}
		case 5:
			if DecodeBDSD1Ion(raw.SubFrm[sat-1][:], ion[:]) == 0 ||
				DecodeBDSD1Utc(raw.SubFrm[sat-1][:], utc[:]) == 0 {
				return 0
			}
			copy(raw.NavData.IonCmp[:], ion[:])
			copy(raw.NavData.UtcCmp[:], utc[:])
			return 9
		default:
			return 0
		}
	} else { /* GEO: D2 */
		pgn := int(GetBitU(buff[:], 42, 4)) /* page number */

		switch {
		case id == 1 && pgn >= 1 && pgn <= 10:
			copy(raw.SubFrm[sat-1][(pgn-1)*38:], buff[:38])
			if pgn != 10 {
				return 0
			}
			if DecodeBDSD2Eph(raw.SubFrm[sat-1][:], &eph) == 0 {
				return 0
			}
		case id == 5 && pgn == 102:
			copy(raw.SubFrm[sat-1][10*38:], buff[:38])
			if DecodeBDSD2Utc(raw.SubFrm[sat-1][:], utc[:]) == 0 {
				return 0
			}
			copy(raw.NavData.UtcCmp[:], utc[:])
			return 9
		default:
			return 0
		}
	}
	if !raw.options().EphAll {
		if TimeDiff(eph.Toe, raw.NavData.Ephs[sat-1].Toe) == 0.0 {
			return 0
		}
	}
	eph.Sat = sat
	raw.NavData.Ephs[sat-1] = eph
	raw.EphSat = sat
	raw.EphSet = 0
	return 2
}

/* decode GLONASS navigation data */
func decodeUbxGnav(raw *Raw, sat, off, frq int) int {
	var (
		geph   GEph
		utcGlo [8]float64
		buff   [64]uint8
		prn    int
	)
	p := 6 + off

	SatSys(sat, &prn)

	if raw.Len < 24+off {
		Trace(2, "ubx rxmsfrbx gnav length error: len=%d\n", raw.Len)
		return -1
	}
	for i, k := 0, 0; i < 4; i, p = i+1, p+4 {
		for j := 0; j < 4; j, k = j+1, k+1 {
			buff[k] = raw.Buff[p+3-j]
		}
	}
	/* test hamming of GLONASS string */
	if TestGloStr(buff[:]) == 0 {
		Trace(2, "ubx rxmsfrbx gnav hamming error: sat=%2d\n", sat)
		return -1
	}
	m := int(GetBitU(buff[:], 1, 4))
	if m < 1 || m > 15 {
		Trace(2, "ubx rxmsfrbx gnav string no error: sat=%2d\n", sat)
		return -1
	}
	/* flush frame buffer if frame-id changed */
	fid := raw.SubFrm[sat-1][150:]
	if fid[0] != buff[12] || fid[1] != buff[13] {
		for i := 0; i < 40; i++ {
			raw.SubFrm[sat-1][i] = 0
		}
		copy(fid, buff[12:14])
	}
	copy(raw.SubFrm[sat-1][(m-1)*10:], buff[:10])

	switch m {
	case 4:
		/* decode GLONASS ephemeris strings */
		geph.Tof = raw.Time
		if DecodeGloStrEph(raw.SubFrm[sat-1][:], &geph) == 0 || geph.Sat != sat {
			return 0
		}
		geph.Frq = frq - 7

		if !raw.options().EphAll {
			if geph.Iode == raw.NavData.Geph[prn-1].Iode {
				return 0
			}
		}
		raw.NavData.Geph[prn-1] = geph
		raw.EphSat = sat
		raw.EphSet = 0
		return 2
	case 5:
		if DecodeGloStrUtc(raw.SubFrm[sat-1][:], utcGlo[:]) == 0 {
			return 0
		}
		copy(raw.NavData.UtcGlo[:], utcGlo[:])
		return 9
	}
	return 0
}

/* decode SBAS message from 8-bit words, check crc */
func sbsDecodeMsg(time Gtime, prn int, words []uint32, sbsmsg *SbsMsg) int {
	var f [29]uint8

	if time.Time == 0 {
		return 0
	}
	tow := Time2GpsT(time, &sbsmsg.Week)
	sbsmsg.Tow = int(tow + DTTOL)
	sbsmsg.Prn = uint8(prn)
	for i := 0; i < 7; i++ {
		for j := 0; j < 4; j++ {
			sbsmsg.Msg[i*4+j] = uint8(words[i] >> ((3 - j) * 8))
		}
	}
	sbsmsg.Msg[28] = uint8(words[7]>>18) & 0xC0

	for i := 28; i > 0; i-- {
		f[i] = sbsmsg.Msg[i]>>6 | sbsmsg.Msg[i-1]<<2
	}
	f[0] = sbsmsg.Msg[0] >> 6

	if CRC24q(f[:], 29) == words[7]&0xFFFFFF {
		return 1
	}
	return 0
}

/* decode SBAS navigation data */
func decodeUbxSnav(raw *Raw, prn, off int) int {
	var buff [32]uint8
	p := 6 + off

	if raw.Len < 40+off {
		Trace(2, "ubx rxmsfrbx snav length error: len=%d\n", raw.Len)
		return -1
	}
	var week int
	tow := int(Time2GpsT(TimeAdd(raw.Time, -1.0), &week))
	raw.Sbsmsg.Prn = uint8(prn)
	raw.Sbsmsg.Tow = tow
	raw.Sbsmsg.Week = week
	for i := 0; i < 8; i, p = i+1, p+4 {
		SetBitU(buff[:], 32*i, 32, u4l(raw.Buff[p:]))
	}
	copy(raw.Sbsmsg.Msg[:], buff[:29])
	raw.Sbsmsg.Msg[28] &= 0xC0
	return 3
}

/* decode UBX-RXM-SFRBX: raw subframe data (ref [2][3]) */
func decodeRxmSfrbx(raw *Raw) int {
	p := 6

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX RXM-SFRBX (%4d): sys=%d prn=%3d", raw.Len,
			u1(raw.Buff[p:]), u1(raw.Buff[p+1:]))
	}
	sys := ubxSys(int(u1(raw.Buff[p:])))
	if sys == 0 {
		Trace(2, "ubx rxmsfrbx sys id error: sys=%d\n", u1(raw.Buff[p:]))
		return -1
	}
	prn := int(u1(raw.Buff[p+1:]))
	if sys == SYS_QZS {
		prn += 192
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		if sys == SYS_GLO && prn == 255 {
			return 0 /* unknown glonass satellite */
		}
		Trace(2, "ubx rxmsfrbx sat number error: sys=%d prn=%d\n", sys, prn)
		return -1
	}
	if sys == SYS_QZS && raw.Len == 52 { /* QZSS L1S */
		sys = SYS_SBS
		prn -= 10
	}
	switch sys {
	case SYS_GPS, SYS_QZS:
		return decodeUbxNav(raw, sat, 8)
	case SYS_GAL:
		return decodeUbxEnav(raw, sat, 8)
	case SYS_CMP:
		return decodeUbxCnav(raw, sat, 8)
	case SYS_GLO:
		return decodeUbxGnav(raw, sat, 8, int(u1(raw.Buff[p+3:])))
	case SYS_SBS:
		return decodeUbxSnav(raw, prn, 8)
	}
	return 0
}

/* decode UBX-TRK-SFRBX: subframe buffer extension (unofficial) */
func decodeTrkSfrbx(raw *Raw) int {
	p := 6

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX TRK-SFRBX (%4d): sys=%d prn=%3d", raw.Len,
			u1(raw.Buff[p+1:]), u1(raw.Buff[p+2:]))
	}
	sys := ubxSys(int(u1(raw.Buff[p+1:])))
	if sys == 0 {
		Trace(2, "ubx trksfrbx sys id error: sys=%d\n", u1(raw.Buff[p+1:]))
		return -1
	}
	prn := int(u1(raw.Buff[p+2:]))
	if sys == SYS_QZS {
		prn += 192
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "ubx trksfrbx sat number error: sys=%d prn=%d\n", sys, prn)
		return -1
	}
	switch sys {
	case SYS_GPS, SYS_QZS:
		return decodeUbxNav(raw, sat, 13)
	case SYS_GAL:
		return decodeUbxEnav(raw, sat, 13)
	case SYS_CMP:
		return decodeUbxCnav(raw, sat, 13)
	case SYS_GLO:
		return decodeUbxGnav(raw, sat, 13, int(u1(raw.Buff[p+4:])))
	case SYS_SBS:
		return decodeUbxSnav(raw, prn, 13)
	}
	return 0
}

/* decode UBX-RXM-SFRB: subframe buffer (GPS/SBAS) */
func decodeRxmSfrb(raw *Raw) int {
	var (
		words [10]uint32
		buff  [30]uint8
	)
	p := 6

	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX RXM-SFRB  (%4d): prn=%2d", raw.Len,
			u1(raw.Buff[p+1:]))
	}
	if raw.Len < 42 {
		Trace(2, "ubx rxmsfrb length error: len=%d\n", raw.Len)
		return -1
	}
	prn := int(u1(raw.Buff[p+1:]))
	sys := SYS_GPS
	if prn >= MINPRNSBS {
		sys = SYS_SBS
	}
	sat := SatNo(sys, prn)
	if sat == 0 {
		Trace(2, "ubx rxmsfrb satellite error: prn=%d\n", prn)
		return -1
	}
	if sys == SYS_GPS {
		for i, p := 0, p+2; i < 10; i, p = i+1, p+4 {
			SetBitU(buff[:], 24*i, 24, u4l(raw.Buff[p:]))
		}
		id := int(GetBitU(buff[:], 43, 3))
		if id >= 1 && id <= 5 {
			copy(raw.SubFrm[sat-1][(id-1)*30:], buff[:30])
			switch id {
			case 3:
				return decodeUbxEph(raw, sat)
			case 4, 5:
				return decodeUbxIonUtc(raw, sat)
			}
		}
		return 0
	}
	for i, p := 0, p+2; i < 10; i, p = i+1, p+4 {
		words[i] = u4l(raw.Buff[p:])
	}
	if sbsDecodeMsg(raw.Time, prn, words[:], &raw.Sbsmsg) == 0 {
		return 0
	}
	return 3
}

/* decode u-blox raw message */
func decodeUbx(raw *Raw) int {
	ctype := int(u1(raw.Buff[2:]))<<8 + int(u1(raw.Buff[3:]))

	Trace(3, "decodeUbx: type=%04x len=%d\n", ctype, raw.Len)

	if ubxChecksum(raw.Buff[:], raw.Len) == 0 {
		Trace(2, "ubx checksum error: type=%04x len=%d\n", ctype, raw.Len)
		return -1
	}
	switch ctype {
	case idRxmRaw:
		return decodeRxmRaw(raw)
	case idRxmRawx:
		return decodeRxmRawx(raw)
	case idRxmSfrb:
		return decodeRxmSfrb(raw)
	case idRxmSfrbx:
		return decodeRxmSfrbx(raw)
	case idNavSol:
		return decodeNavSol(raw)
	case idNavTime:
		return decodeNavTime(raw)
	case idTimTm2:
		return decodeTimTm2(raw)
	case idTrkMeas:
		return decodeTrkMeas(raw)
	case idTrkD5:
		return decodeTrkD5(raw)
	case idTrkSfrbx:
		return decodeTrkSfrbx(raw)
	}
	if raw.OutType > 0 {
		raw.MsgType = fmt.Sprintf("UBX 0x%02X 0x%02X (%4d)", ctype>>8, ctype&0xFF,
			raw.Len)
	}
	return 0
}

func syncUbx(buff []uint8, data uint8) int {
	buff[0] = buff[1]
	buff[1] = data
	if buff[0] == ubxSync1 && buff[1] == ubxSync2 {
		return 1
	}
	return 0
}

/* input u-blox raw message from stream ----------------------------------------
* fetch next u-blox raw data and input a message from stream
* args   : raw *Raw       IO  receiver raw data control struct
*          data uint8     I   stream data (1 byte)
* return : status (-1: error message, 0: no message, 1: input observation data,
*                  2: input ephemeris, 3: input sbas message,
*                  9: input ion/utc parameter)
*
* notes  : to specify input options, set raw.Opt to the following option
*          strings separated by spaces.
*
*          -EPHALL      : input all ephemerides
*          -INVCP       : invert polarity of carrier-phase
*          -TADJ=tint   : adjust time tags to multiples of tint (sec)
*          -STD_SLIP=n  : slip by std-dev of carrier phase under n
*          -MAX_STD_CP=n: max std-dev index to accept carrier phase
*          -MULTICODE   : prefer higher priority code per frequency band
*          -RCVSTDS     : keep receiver reported std-dev indices
*
*          The supported messages are as follows.
*
*          UBX-RXM-RAW  : raw measurement data
*          UBX-RXM-RAWX : multi-gnss measurement data
*          UBX-RXM-SFRB : subframe buffer
*          UBX-RXM-SFRBX: subframe buffer extension
*          UBX-NAV-SOL/TIMEGPS, UBX-TIM-TM2
*
*          UBX-TRK-MEAS, UBX-TRK-SFRBX and UBX-TRK-D5 are not formally
*          documented and not supported by u-blox. Use at your own risk.
*-----------------------------------------------------------------------------*/
func (raw *Raw) InputUbx(data uint8) int {
	Trace(5, "InputUbx: data=%02x\n", data)

	/* synchronize frame */
	if raw.NumByte == 0 {
		if syncUbx(raw.Buff[:], data) == 0 {
			return 0
		}
		raw.NumByte = 2
		return 0
	}
	raw.Buff[raw.NumByte] = data
	raw.NumByte++

	if raw.NumByte == 6 {
		if raw.Len = int(u2l(raw.Buff[4:])) + 8; raw.Len > MAXRAWLEN {
			Trace(2, "ubx length error: len=%d\n", raw.Len)
			raw.NumByte = 0
			return -1
		}
	}
	if raw.NumByte < 6 || raw.NumByte < raw.Len {
		return 0
	}
	raw.NumByte = 0

	return decodeUbx(raw)
}

/* input u-blox raw message from file (-2: end of file, else same as InputUbx) */
func (raw *Raw) InputUbxF(fp *os.File) int {
	Trace(4, "InputUbxF:\n")

	/* synchronize frame */
	if raw.NumByte == 0 {
		var c [1]byte
		for i := 0; ; i++ {
			if _, err := fp.Read(c[:]); err == io.EOF {
				return -2
			}
			if syncUbx(raw.Buff[:], c[0]) != 0 {
				break
			}
			if i >= 4096 {
				return 0
			}
		}
	}
	if n, _ := io.ReadFull(fp, raw.Buff[2:6]); n < 4 {
		return -2
	}
	raw.NumByte = 6

	if raw.Len = int(u2l(raw.Buff[4:])) + 8; raw.Len > MAXRAWLEN {
		Trace(2, "ubx length error: len=%d\n", raw.Len)
		raw.NumByte = 0
		return -1
	}
	if n, _ := io.ReadFull(fp, raw.Buff[6:raw.Len]); n < raw.Len-6 {
		return -2
	}
	raw.NumByte = 0

	return decodeUbx(raw)
}

func ubxStoi(s string) int {
	var n uint32
	if k, _ := fmt.Sscanf(s, "0x%X", &n); k == 1 {
		return int(n) /* hex (0xXXXX) */
	}
	k, _ := strconv.Atoi(s)
	return k
}

/* generate u-blox binary message ----------------------------------------------
* generate u-blox binary message from message string
* args   : msg  string  I      message string
*            "CFG-PRT   portid res0 res1 mode baudrate inmask outmask flags"
*            "CFG-USB   vendid prodid res1 res2 power flags vstr pstr serino"
*            "CFG-MSG   msgid rate0 rate1 rate2 rate3 rate4 rate5 rate6"
*            "CFG-NMEA  filter version numsv flags"
*            "CFG-RATE  meas nav time"
*            "CFG-CFG   clear_mask save_mask load_mask [dev_mask]"
*            "CFG-TP    interval length status time_ref res adelay rdelay udelay"
*            "CFG-NAV2  ..."
*            "CFG-DAT   maja flat dx dy dz rotx roty rotz scale"
*            "CFG-INF   protocolid res0 res1 res2 mask0 mask1 mask2 ... mask5"
*            "CFG-RST   navbbr reset res"
*            "CFG-RXM   gpsmode lpmode"
*            "CFG-ANT   flags pins"
*            "CFG-FXN   flags treacq tacq treacqoff tacqoff ton toff res basetow"
*            "CFG-SBAS  mode usage maxsbas res scanmode"
*            "CFG-LIC   key0 key1 key2 key3 key4 key5"
*            "CFG-TM    intid rate flags"
*            "CFG-TM2   ch res0 res1 rate flags"
*            "CFG-TMODE tmode posx posy posz posvar svinmindur svinvarlimit"
*            "CFG-EKF   ..."
*            "CFG-GNSS  ..."
*            "CFG-ITFM  conf conf2"
*            "CFG-LOGFILTER ver flag min_int time_thr speed_thr pos_thr"
*            "CFG-NAV5  ..."
*            "CFG-NAVX5 ..."
*            "CFG-ODO   ..."
*            "CFG-PM2   ..."
*            "CFG-PWR   ver rsv1 rsv2 rsv3 state"
*            "CFG-RINV  flag data ..."
*            "CFG-SMGR  ..."
*            "CFG-TMODE2 ..."
*            "CFG-TMODE3 ..."
*            "CFG-TPS   ..."
*            "CFG-TXSLOT ..."
*            "CFG-VALDEL ver layer res0 res1 key [key ...]"
*            "CFG-VALGET ver layer pos key [key ...]"
*            "CFG-VALSET ver layer res0 res1 key value [key value ...]"
*          buff []uint8 O      binary message
* return : length of binary message (0: error)
*-----------------------------------------------------------------------------*/
func GenUbx(msg string, buff []uint8) int {
	const (
		fU1 = iota + 1
		fU2
		fU4
		fI1
		fI2
		fI4
		fR4
		fR8
		fS32
	)
	cmd := []string{
		"PRT", "USB", "MSG", "NMEA", "RATE", "CFG", "TP", "NAV2", "DAT", "INF",
		"RST", "RXM", "ANT", "FXN", "SBAS", "LIC", "TM", "TM2", "TMODE", "EKF",
		"GNSS", "ITFM", "LOGFILTER", "NAV5", "NAVX5", "ODO", "PM2", "PWR",
		"RINV", "SMGR", "TMODE2", "TMODE3", "TPS", "TXSLOT",
		"VALDEL", "VALGET", "VALSET",
	}
	id := []uint8{
		0x00, 0x1B, 0x01, 0x17, 0x08, 0x09, 0x07, 0x1A, 0x06, 0x02,
		0x04, 0x11, 0x13, 0x0E, 0x16, 0x80, 0x10, 0x19, 0x1D, 0x12,
		0x3E, 0x39, 0x47, 0x24, 0x23, 0x1E, 0x3B, 0x57, 0x34, 0x62,
		0x36, 0x71, 0x31, 0x53,
		0x8C, 0x8B, 0x8A,
	}
	prm := [][]int{
		{fU1, fU1, fU2, fU4, fU4, fU2, fU2, fU2, fU2},    /* PRT */
		{fU2, fU2, fU2, fU2, fU2, fU2, fS32, fS32, fS32}, /* USB */
		{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1},         /* MSG */
		{fU1, fU1, fU1, fU1},                             /* NMEA */
		{fU2, fU2, fU2},                                  /* RATE */
		{fU4, fU4, fU4, fU1},                             /* CFG */
		{fU4, fU4, fI1, fU1, fU2, fI2, fI2, fI4},         /* TP */
		{fU1, fU1, fU2, fU1, fU1, fU1, fU1, fI4, fU1, fU1, fU1, fU1, fU1, fU1,
			fU2, fU2, fU2, fU2, fU2, fU1, fU1, fU2, fU4, fU4}, /* NAV2 */
		{fR8, fR8, fR4, fR4, fR4, fR4, fR4, fR4, fR4},      /* DAT */
		{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1}, /* INF */
		{fU2, fU1, fU1},                                    /* RST */
		{fU1, fU1},                                         /* RXM */
		{fU2, fU2},                                         /* ANT */
		{fU4, fU4, fU4, fU4, fU4, fU4, fU4, fU4},           /* FXN */
		{fU1, fU1, fU1, fU1, fU4},                          /* SBAS */
		{fU2, fU2, fU2, fU2, fU2, fU2},                     /* LIC */
		{fU4, fU4, fU4},                                    /* TM */
		{fU1, fU1, fU2, fU4, fU4},                          /* TM2 */
		{fU4, fI4, fI4, fI4, fU4, fU4, fU4},                /* TMODE */
		{fU1, fU1, fU1, fU1, fU4, fU2, fU2, fU1, fU1, fU2}, /* EKF */
		{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU4},      /* GNSS */
		{fU4, fU4},                                         /* ITFM */
		{fU1, fU1, fU2, fU2, fU2, fU4},                     /* LOGFILTER */
		{fU2, fU1, fU1, fI4, fU4, fI1, fU1, fU2, fU2, fU2, fU2, fU1, fU1, fU1,
			fU1, fU1, fU1, fU2, fU1, fU1, fU1, fU1, fU1, fU1}, /* NAV5 */
		{fU2, fU2, fU4, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU2,
			fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU2}, /* NAVX5 */
		{fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1, fU1},                /* ODO */
		{fU1, fU1, fU1, fU1, fU4, fU4, fU4, fU4, fU2, fU2},           /* PM2 */
		{fU1, fU1, fU1, fU1, fU4},                                    /* PWR */
		{fU1, fU1},                                                   /* RINV */
		{fU1, fU1, fU2, fU2, fU1, fU1, fU2, fU2, fU2, fU2, fU4},      /* SMGR */
		{fU1, fU1, fU2, fI4, fI4, fI4, fU4, fU4, fU4},                /* TMODE2 */
		{fU1, fU1, fU2, fI4, fI4, fI4, fU4, fU4, fU4},                /* TMODE3 */
		{fU1, fU1, fU1, fU1, fI2, fI2, fU4, fU4, fU4, fU4, fI4, fU4}, /* TPS */
		{fU1, fU1, fU1, fU1, fU4, fU4, fU4, fU4, fU4},                /* TXSLOT */
		{fU1, fU1, fU1, fU1},                                         /* VALDEL */
		{fU1, fU1, fU2},                                              /* VALGET */
		{fU1, fU1, fU1, fU1},                                         /* VALSET */
	}
	Trace(4, "GenUbx: msg=%s\n", msg)

	args := strings.Fields(msg)
	if len(args) < 1 || len(args[0]) < 5 || !strings.EqualFold(args[0][:4], "CFG-") {
		return 0
	}
	i := 0
	for ; i < len(cmd); i++ {
		if strings.EqualFold(args[0][4:], cmd[i]) {
			break
		}
	}
	if i >= len(cmd) {
		return 0
	}
	q := 0
	buff[q] = ubxSync1
	q++
	buff[q] = ubxSync2
	q++
	buff[q] = ubxCfg
	q++
	buff[q] = id[i]
	q++
	q += 2 /* length, set later */

	for j := 1; j-1 < len(prm[i]) || j < len(args); j++ {
		ftype := fU1
		if j-1 < len(prm[i]) {
			ftype = prm[i][j-1]
		}
		arg := ""
		if j < len(args) {
			arg = args[j]
		}
		switch ftype {
		case fU2:
			setU2(buff[q:], uint16(ubxStoi(arg)))
			q += 2
		case fU4:
			setU4(buff[q:], uint32(ubxStoi(arg)))
			q += 4
		case fI1:
			setI1(buff[q:], int8(ubxStoi(arg)))
			q++
		case fI2:
			setI2(buff[q:], int16(ubxStoi(arg)))
			q += 2
		case fI4:
			setI4(buff[q:], int32(ubxStoi(arg)))
			q += 4
		case fR4:
			v, _ := strconv.ParseFloat(arg, 32)
			setR4(buff[q:], float32(v))
			q += 4
		case fR8:
			v, _ := strconv.ParseFloat(arg, 64)
			setR8(buff[q:], v)
			q += 8
		case fS32:
			copy(buff[q:], fmt.Sprintf("%-32.32s", arg))
			q += 32
		default:
			setU1(buff[q:], uint8(ubxStoi(arg)))
			q++
		}
	}
	n := q + 2
	setU2(buff[4:], uint16(n-8)) /* payload length */
	setUbxCS(buff[:], n)

	Trace(5, "GenUbx: buff=\n")
	Traceb(5, buff[:n])
	return n
}
