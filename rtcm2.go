/*------------------------------------------------------------------------------
* rtcm2.go : rtcm ver.2 message decoding
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"math"
)

/* adjust hourly rollover of rtcm 2 time */
func (rtcm *Rtcm) adjHour(zcnt float64) {
	/* if no time, get cpu time */
	if rtcm.Time.Time == 0 {
		rtcm.Time = Utc2GpsT(TimeGet())
	}
	var week int
	tow := Time2GpsT(rtcm.Time, &week)
	hour := math.Floor(tow / 3600.0)
	sec := tow - hour*3600.0
	if zcnt < sec-1800.0 {
		zcnt += 3600.0
	} else if zcnt > sec+1800.0 {
		zcnt -= 3600.0
	}
	rtcm.Time = GpsT2Time(week, hour*3600.0+zcnt)
}

/* get observation data index, adding a new record if needed (-1:overflow) */
func (obs *Obs) obsIndex(time Gtime, sat int) int {
	for i := range obs.Data {
		if obs.Data[i].Sat == sat {
			return i /* field already exists */
		}
	}
	if obs.N() >= MAXOBS {
		return -1
	}
	/* add new field */
	var data ObsD
	zeroObsD(&data)
	data.Time = time
	data.Sat = sat
	obs.Data = append(obs.Data, data)
	return obs.N() - 1
}

/* decode type 1/9: differential gps correction/partial correction set */
func (rtcm *Rtcm) decodeType1() int {
	Trace(4, "decodeType1: len=%d\n", rtcm.MsgLen)

	for i := 48; i+40 <= rtcm.MsgLen*8; {
		fact := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		udre := int(GetBitU(rtcm.Buff[:], i, 2))
		i += 2
		prn := int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5
		prc := int(GetBits(rtcm.Buff[:], i, 16))
		i += 16
		rrc := int(GetBits(rtcm.Buff[:], i, 8))
		i += 8
		iod := int(GetBits(rtcm.Buff[:], i, 8))
		i += 8
		if prn == 0 {
			prn = 32
		}
		if prc == -32768 || rrc == -128 {
			Trace(2, "rtcm2 1 satellite problem: prn=%d\n", prn)
			continue
		}
		sat := SatNo(SYS_GPS, prn)
		if sat == 0 {
			continue
		}
		dgps := &rtcm.Dgps[sat-1]
		dgps.T0 = rtcm.Time
		if fact > 0 {
			dgps.Prc = float64(prc) * 0.32
			dgps.Rrc = float64(rrc) * 0.032
		} else {
			dgps.Prc = float64(prc) * 0.02
			dgps.Rrc = float64(rrc) * 0.002
		}
		dgps.Iod = iod
		dgps.Udre = float64(udre)
	}
	return 7
}

/* decode type 3: reference station parameter */
func (rtcm *Rtcm) decodeType3() int {
	i := 48

	Trace(4, "decodeType3: len=%d\n", rtcm.MsgLen)

	if i+96 > rtcm.MsgLen*8 {
		Trace(2, "rtcm2 3 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	rtcm.StaPara.Pos[0] = float64(GetBits(rtcm.Buff[:], i, 32)) * 0.01
	i += 32
	rtcm.StaPara.Pos[1] = float64(GetBits(rtcm.Buff[:], i, 32)) * 0.01
	i += 32
	rtcm.StaPara.Pos[2] = float64(GetBits(rtcm.Buff[:], i, 32)) * 0.01
	return 5
}

/* decode type 14: gps time of week */
func (rtcm *Rtcm) decodeType14() int {
	i := 48

	Trace(4, "decodeType14: len=%d\n", rtcm.MsgLen)

	zcnt := float64(GetBitU(rtcm.Buff[:], 24, 13))
	if i+24 > rtcm.MsgLen*8 {
		Trace(2, "rtcm2 14 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	week := int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	hour := int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8
	leaps := int(GetBitU(rtcm.Buff[:], i, 6))

	week = AdjGpsWeek(week)
	rtcm.Time = GpsT2Time(week, float64(hour)*3600.0+zcnt*0.6)
	rtcm.NavData.UtcGps[4] = float64(leaps)
	return 6
}

/* decode type 16: gps special message */
func (rtcm *Rtcm) decodeType16() int {
	var msg []byte

	Trace(4, "decodeType16: len=%d\n", rtcm.MsgLen)

	for i := 48; i+8 <= rtcm.MsgLen*8 && len(msg) < 90; i += 8 {
		msg = append(msg, byte(GetBitU(rtcm.Buff[:], i, 8)))
	}
	rtcm.Msg = string(msg)

	Trace(3, "rtcm2 16 message: %s\n", rtcm.Msg)
	return 9
}

/* decode type 17: gps ephemerides */
func (rtcm *Rtcm) decodeType17() int {
	var eph Eph
	i := 48

	Trace(4, "decodeType17: len=%d\n", rtcm.MsgLen)

	if i+480 > rtcm.MsgLen*8 {
		Trace(2, "rtcm2 17 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	week := int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.Idot = float64(GetBits(rtcm.Buff[:], i, 14)) * P2_43 * SC2RAD
	i += 14
	eph.Iode = int(GetBitU(rtcm.Buff[:], i, 8))
	i += 8
	toc := float64(GetBitU(rtcm.Buff[:], i, 16)) * 16.0
	i += 16
	eph.F1 = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43
	i += 16
	eph.F2 = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_55
	i += 8
	eph.Crs = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.Deln = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_43 * SC2RAD
	i += 16
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
	eph.OMG0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cic = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.I0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Cis = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_29
	i += 16
	eph.Omg = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Crc = float64(GetBits(rtcm.Buff[:], i, 16)) * P2_5
	i += 16
	eph.OMGd = float64(GetBits(rtcm.Buff[:], i, 24)) * P2_43 * SC2RAD
	i += 24
	eph.M0 = float64(GetBits(rtcm.Buff[:], i, 32)) * P2_31 * SC2RAD
	i += 32
	eph.Iodc = int(GetBitU(rtcm.Buff[:], i, 10))
	i += 10
	eph.F0 = float64(GetBits(rtcm.Buff[:], i, 22)) * P2_31
	i += 22
	prn := int(GetBitU(rtcm.Buff[:], i, 5))
	i += 5 + 3
	eph.Tgd[0] = float64(GetBits(rtcm.Buff[:], i, 8)) * P2_31
	i += 8
	eph.Code = int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2
	eph.Sva = int(GetBitU(rtcm.Buff[:], i, 4))
	i += 4
	eph.Svh = int(GetBitU(rtcm.Buff[:], i, 6))
	i += 6
	eph.Flag = int(GetBitU(rtcm.Buff[:], i, 1))

	if prn == 0 {
		prn = 32
	}
	sat := SatNo(SYS_GPS, prn)
	if sat == 0 {
		return -1
	}
	eph.Sat = sat
	eph.Week = AdjGpsWeek(week)
	eph.Toe = GpsT2Time(eph.Week, eph.Toes)
	eph.Toc = GpsT2Time(eph.Week, toc)
	eph.Ttr = rtcm.Time
	eph.A = sqrtA * sqrtA
	rtcm.NavData.Ephs[sat-1] = eph
	rtcm.EphSet = 0
	rtcm.EphSat = sat
	return 2
}

/* decode type 18: rtk uncorrected carrier-phase */
func (rtcm *Rtcm) decodeType18() int {
	i := 48
	sync := 1

	Trace(4, "decodeType18: len=%d\n", rtcm.MsgLen)

	if i+24 > rtcm.MsgLen*8 {
		Trace(2, "rtcm2 18 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	freq := int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2 + 2
	usec := float64(GetBitU(rtcm.Buff[:], i, 20))
	i += 20

	if freq&0x1 != 0 {
		Trace(2, "rtcm2 18 not supported frequency: freq=%d\n", freq)
		return -1
	}
	freq >>= 1

	for i+48 <= rtcm.MsgLen*8 {
		sync = int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		code := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		sys := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		prn := int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5 + 3
		loss := int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5
		cp := float64(GetBits(rtcm.Buff[:], i, 32))
		i += 32
		if prn == 0 {
			prn = 32
		}
		sysno := SYS_GPS
		if sys != 0 {
			sysno = SYS_GLO
		}
		sat := SatNo(sysno, prn)
		if sat == 0 {
			Trace(2, "rtcm2 18 satellite number error: sys=%d prn=%d\n", sys, prn)
			continue
		}
		time := TimeAdd(rtcm.Time, usec*1e-6)
		if sys != 0 {
			time = Utc2GpsT(time) /* convert glonass time to gpst */
		}
		/* start new epoch on time change or after a complete epoch */
		if rtcm.ObsFlag != 0 || (rtcm.ObsData.N() > 0 &&
			math.Abs(TimeDiff(rtcm.ObsData.Data[0].Time, time)) > 1e-9) {
			rtcm.ObsData.Data = rtcm.ObsData.Data[:0]
			rtcm.ObsFlag = 0
		}
		index := rtcm.ObsData.obsIndex(time, sat)
		if index < 0 {
			continue
		}
		data := &rtcm.ObsData.Data[index]
		data.L[freq] = -cp / 256.0
		if int(rtcm.Loss[sat-1][freq]) != loss {
			data.LLI[freq] = LLI_SLIP
		} else {
			data.LLI[freq] = 0
		}
		switch {
		case freq == 0 && code != 0:
			data.Code[freq] = CODE_L1P
		case freq == 0:
			data.Code[freq] = CODE_L1C
		case code != 0:
			data.Code[freq] = CODE_L2P
		default:
			data.Code[freq] = CODE_L2C
		}
		rtcm.Loss[sat-1][freq] = uint16(loss)
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 19: rtk uncorrected pseudorange */
func (rtcm *Rtcm) decodeType19() int {
	i := 48
	sync := 1

	Trace(4, "decodeType19: len=%d\n", rtcm.MsgLen)

	if i+24 > rtcm.MsgLen*8 {
		Trace(2, "rtcm2 19 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	freq := int(GetBitU(rtcm.Buff[:], i, 2))
	i += 2 + 2
	usec := float64(GetBitU(rtcm.Buff[:], i, 20))
	i += 20

	if freq&0x1 != 0 {
		Trace(2, "rtcm2 19 not supported frequency: freq=%d\n", freq)
		return -1
	}
	freq >>= 1

	for i+48 <= rtcm.MsgLen*8 {
		sync = int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		code := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		sys := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		prn := int(GetBitU(rtcm.Buff[:], i, 5))
		i += 5 + 8
		pr := float64(GetBitU(rtcm.Buff[:], i, 32))
		i += 32
		if prn == 0 {
			prn = 32
		}
		sysno := SYS_GPS
		if sys != 0 {
			sysno = SYS_GLO
		}
		sat := SatNo(sysno, prn)
		if sat == 0 {
			Trace(2, "rtcm2 19 satellite number error: sys=%d prn=%d\n", sys, prn)
			continue
		}
		time := TimeAdd(rtcm.Time, usec*1e-6)
		if sys != 0 {
			time = Utc2GpsT(time) /* convert glonass time to gpst */
		}
		if rtcm.ObsFlag != 0 || (rtcm.ObsData.N() > 0 &&
			math.Abs(TimeDiff(rtcm.ObsData.Data[0].Time, time)) > 1e-9) {
			rtcm.ObsData.Data = rtcm.ObsData.Data[:0]
			rtcm.ObsFlag = 0
		}
		index := rtcm.ObsData.obsIndex(time, sat)
		if index < 0 {
			continue
		}
		data := &rtcm.ObsData.Data[index]
		data.P[freq] = pr * 0.02
		switch {
		case freq == 0 && code != 0:
			data.Code[freq] = CODE_L1P
		case freq == 0:
			data.Code[freq] = CODE_L1C
		case code != 0:
			data.Code[freq] = CODE_L2P
		default:
			data.Code[freq] = CODE_L2C
		}
	}
	return retSync(sync, &rtcm.ObsFlag)
}

/* decode type 22: extended reference station parameter */
func (rtcm *Rtcm) decodeType22() int {
	var (
		del [2][3]float64
		hgt float64
	)
	i := 48

	Trace(4, "decodeType22: len=%d\n", rtcm.MsgLen)

	if i+24 > rtcm.MsgLen*8 {
		Trace(2, "rtcm2 22 length error: len=%d\n", rtcm.MsgLen)
		return -1
	}
	del[0][0] = float64(GetBits(rtcm.Buff[:], i, 8)) / 25600.0
	i += 8
	del[0][1] = float64(GetBits(rtcm.Buff[:], i, 8)) / 25600.0
	i += 8
	del[0][2] = float64(GetBits(rtcm.Buff[:], i, 8)) / 25600.0
	i += 8

	if i+24 <= rtcm.MsgLen*8 {
		i += 5
		noh := int(GetBitU(rtcm.Buff[:], i, 1))
		i++
		if noh == 0 {
			hgt = float64(GetBitU(rtcm.Buff[:], i, 18)) / 25600.0
		}
		i += 18
	}
	if i+24 <= rtcm.MsgLen*8 {
		del[1][0] = float64(GetBits(rtcm.Buff[:], i, 8)) / 1600.0
		i += 8
		del[1][1] = float64(GetBits(rtcm.Buff[:], i, 8)) / 1600.0
		i += 8
		del[1][2] = float64(GetBits(rtcm.Buff[:], i, 8)) / 1600.0
	}
	rtcm.StaPara.DelType = 1 /* xyz */
	for j := 0; j < 3; j++ {
		rtcm.StaPara.Del[j] = del[0][j]
	}
	rtcm.StaPara.Hgt = hgt
	return 5
}

/* decode rtcm ver.2 message */
func (rtcm *Rtcm) DecodeRtcm2() int {
	ctype := int(GetBitU(rtcm.Buff[:], 8, 6))

	Trace(3, "DecodeRtcm2: type=%2d len=%3d\n", ctype, rtcm.MsgLen)

	zcnt := float64(GetBitU(rtcm.Buff[:], 24, 13)) * 0.6
	if zcnt >= 3600.0 {
		Trace(2, "rtcm2 modified z-count error: zcnt=%.1f\n", zcnt)
		return -1
	}
	rtcm.adjHour(zcnt)
	staid := int(GetBitU(rtcm.Buff[:], 14, 10))
	seqno := int(GetBitU(rtcm.Buff[:], 37, 3))
	stah := int(GetBitU(rtcm.Buff[:], 45, 3))
	if seqno-rtcm.SeqNo != 1 && seqno-rtcm.SeqNo != -7 {
		Trace(2, "rtcm2 message outage: seqno=%d->%d\n", rtcm.SeqNo, seqno)
	}
	rtcm.SeqNo = seqno
	rtcm.StaHealth = stah

	if rtcm.OutType > 0 {
		rtcm.MsgType = fmt.Sprintf("RTCM %2d (%4d) zcnt=%7.1f staid=%3d seqno=%d",
			ctype, rtcm.MsgLen, zcnt, staid, seqno)
	}
	if ctype == 3 || ctype == 22 {
		if rtcm.StaId != 0 && staid != rtcm.StaId {
			Trace(2, "rtcm2 station id changed: %d->%d\n", rtcm.StaId, staid)
		}
		rtcm.StaId = staid
	}
	if rtcm.StaId != 0 && staid != rtcm.StaId {
		Trace(2, "rtcm2 station id invalid: %d %d\n", staid, rtcm.StaId)
		return -1
	}
	ret := 0
	switch ctype {
	case 1, 9:
		ret = rtcm.decodeType1()
	case 3:
		ret = rtcm.decodeType3()
	case 14:
		ret = rtcm.decodeType14()
	case 16:
		ret = rtcm.decodeType16()
	case 17:
		ret = rtcm.decodeType17()
	case 18:
		ret = rtcm.decodeType18()
	case 19:
		ret = rtcm.decodeType19()
	case 22:
		ret = rtcm.decodeType22()
	}
	if ret >= 0 {
		if ctype >= 1 && ctype <= 99 {
			rtcm.Nmsg2[ctype]++
		} else {
			rtcm.Nmsg2[0]++
		}
	}
	return ret
}
