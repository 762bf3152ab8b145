/*------------------------------------------------------------------------------
* rcvraw.go : receiver raw data and broadcast navigation message decoders
*
* references :
*     [1] IS-GPS-200K, Navstar GPS Space Segment/Navigation User Interfaces
*     [2] Global Navigation Satellite System GLONASS ICD, Edition 5.1
*     [3] BeiDou Navigation Satellite System Signal In Space ICD (B1I) 3.0
*     [4] IS-QZSS-PNT-003
*     [5] Galileo OS Signal In Space ICD, Issue 1.3
*     [6] IRNSS SIS ICD for SPS, version 1.1
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"math"
	"os"
	"strings"
)

func sqr(x float64) float64 { return x * x }

/* decode GPS/QZSS ephemeris from subframes 1-3 */
func DecodeFrameEph(buff []uint8, eph *Eph) int {
	var e Eph

	i := 240*0 + 24 /* subframe 1 */
	tow1 := float64(GetBitU(buff, i, 17)) * 6.0
	i += 17 + 2
	id1 := int(GetBitU(buff, i, 3))
	i += 3 + 2
	week := int(GetBitU(buff, i, 10))
	i += 10
	e.Code = int(GetBitU(buff, i, 2))
	i += 2
	e.Sva = int(GetBitU(buff, i, 4)) /* ura index */
	i += 4
	e.Svh = int(GetBitU(buff, i, 6))
	i += 6
	iodc0 := int(GetBitU(buff, i, 2))
	i += 2
	e.Flag = int(GetBitU(buff, i, 1))
	i += 1 + 87
	tgd := int(GetBits(buff, i, 8))
	i += 8
	iodc1 := int(GetBitU(buff, i, 8))
	i += 8
	toc := float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	e.F2 = float64(GetBits(buff, i, 8)) * P2_55
	i += 8
	e.F1 = float64(GetBits(buff, i, 16)) * P2_43
	i += 16
	e.F0 = float64(GetBits(buff, i, 22)) * P2_31

	i = 240*1 + 24 /* subframe 2 */
	i += 17 + 2
	id2 := int(GetBitU(buff, i, 3))
	i += 3 + 2
	e.Iode = int(GetBitU(buff, i, 8))
	i += 8
	e.Crs = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Deln = float64(GetBits(buff, i, 16)) * P2_43 * SC2RAD
	i += 16
	e.M0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Cuc = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.E = float64(GetBitU(buff, i, 32)) * P2_33
	i += 32
	e.Cus = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	sqrtA := float64(GetBitU(buff, i, 32)) * P2_19
	i += 32
	e.Toes = float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	if GetBitU(buff, i, 1) != 0 {
		e.Fit = 0.0
	} else {
		e.Fit = 4.0 /* 0:4hr,1:>4hr */
	}

	i = 240*2 + 24 /* subframe 3 */
	i += 17 + 2
	id3 := int(GetBitU(buff, i, 3))
	i += 3 + 2
	e.Cic = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.OMG0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Cis = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.I0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Crc = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Omg = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.OMGd = float64(GetBits(buff, i, 24)) * P2_43 * SC2RAD
	i += 24
	iode := int(GetBitU(buff, i, 8))
	i += 8
	e.Idot = float64(GetBits(buff, i, 14)) * P2_43 * SC2RAD

	e.A = sqrtA * sqrtA
	e.Iodc = iodc0<<8 + iodc1
	if tgd != -128 {
		e.Tgd[0] = float64(tgd) * P2_31
	}

	if id1 != 1 || id2 != 2 || id3 != 3 {
		Trace(2, "DecodeFrameEph error: id=%d %d %d\n", id1, id2, id3)
		return 0
	}
	/* iode and iodc consistency across subframes */
	if iode != e.Iode || iode != e.Iodc&0xFF {
		Trace(2, "DecodeFrameEph error: iode=%d %d iodc=%d\n", e.Iode, iode, e.Iodc)
		return 0
	}
	e.Week = AdjGpsWeek(week)
	e.Ttr = GpsT2Time(e.Week, tow1)
	if e.Toes < tow1-302400.0 {
		e.Week++
	} else if e.Toes > tow1+302400.0 {
		e.Week--
	}
	e.Toe = GpsT2Time(e.Week, e.Toes)
	e.Toc = GpsT2Time(e.Week, toc)
	*eph = e
	return 1
}

/* decode GPS/QZSS per-satellite almanac fields */
func decodeAlmSat(buff []uint8, ctype int, alm *Alm) {
	var eRef, iRef float64

	/* ctype=0:GPS,1:QZS-QZO,2:QZS-GEO */
	switch ctype {
	case 0:
		eRef, iRef = 0.0, 0.3
	case 1:
		eRef, iRef = 0.06, 0.25
	}

	i := 50
	alm.E = float64(GetBits(buff, i, 16))*P2_21 + eRef
	i += 16
	alm.Toas = float64(GetBitU(buff, i, 8)) * 4096.0
	i += 8
	deltai := float64(GetBits(buff, i, 16)) * P2_19
	i += 16
	alm.OMGd = float64(GetBits(buff, i, 16)) * P2_38 * SC2RAD
	i += 16
	alm.Svh = int(GetBitU(buff, i, 8))
	i += 8
	sqrtA := float64(GetBitU(buff, i, 24)) * P2_11
	i += 24
	alm.OMG0 = float64(GetBits(buff, i, 24)) * P2_23 * SC2RAD
	i += 24
	alm.Omg = float64(GetBits(buff, i, 24)) * P2_23 * SC2RAD
	i += 24
	alm.M0 = float64(GetBits(buff, i, 24)) * P2_23 * SC2RAD
	i += 24
	f0 := int(GetBits(buff, i, 8))
	i += 8
	alm.F1 = float64(GetBits(buff, i, 11)) * P2_38
	i += 11
	alm.F0 = float64(GetBitU(buff, i, 3))*P2_17 + float64(f0)*P2_20
	alm.A = sqrtA * sqrtA
	alm.I0 = (iRef + deltai) * SC2RAD
	alm.Week = 0
	alm.Toa = Gtime{}
}

/* decode GPS almanac/health in subframe 4/5 */
func decodeAlmGps(buff []uint8, frm int, alm []Alm) int {
	svid := int(GetBitU(buff, 50, 6))

	switch {
	case (frm == 5 && svid >= 1 && svid <= 24) || (frm == 4 && svid >= 25 && svid <= 32):
		sat := SatNo(SYS_GPS, svid)
		if sat == 0 {
			return 0
		}
		alm[sat-1].Sat = sat
		decodeAlmSat(buff, 0, &alm[sat-1])
		return 1

	case frm == 5 && svid == 51: /* subframe 5 page 25 */
		i := 56
		toas := int(GetBitU(buff, i, 8)) * 4096
		i += 8
		week := int(GetBitU(buff, i, 8))
		i += 8
		for j := 0; j < 24; i, j = i+6, j+1 {
			sat := SatNo(SYS_GPS, j+1)
			if sat == 0 {
				continue
			}
			alm[sat-1].Svh = int(GetBitU(buff, i, 6))
		}
		for j := 0; j < 32; j++ {
			sat := SatNo(SYS_GPS, j+1)
			if sat == 0 || alm[sat-1].Sat != sat || alm[sat-1].Toas != float64(toas) {
				continue
			}
			alm[sat-1].Week = AdjGpsWeek(week)
			alm[sat-1].Toa = GpsT2Time(alm[sat-1].Week, float64(toas))
		}
		return 1

	case frm == 4 && svid == 63: /* subframe 4 page 25 */
		i := 186
		for j := 0; j < 8; i, j = i+6, j+1 {
			sat := SatNo(SYS_GPS, j+25)
			if sat == 0 {
				continue
			}
			alm[sat-1].Svh = int(GetBitU(buff, i, 6))
		}
		return 1
	}
	return 0
}

/* decode QZSS almanac/health */
func decodeAlmQzs(buff []uint8, alm []Alm) int {
	svid := int(GetBitU(buff, 50, 6))

	switch {
	case svid >= 1 && svid <= 9:
		sat := SatNo(SYS_QZS, 192+svid)
		if sat == 0 {
			return 0
		}
		alm[sat-1].Sat = sat
		if svid <= 6 {
			decodeAlmSat(buff, 1, &alm[sat-1])
		} else {
			decodeAlmSat(buff, 2, &alm[sat-1])
		}
		return 1

	case svid == 51:
		i := 56
		toas := int(GetBitU(buff, i, 8)) * 4096
		i += 8
		week := int(GetBitU(buff, i, 8))
		i += 8
		for j := 0; j < 10; i, j = i+6, j+1 {
			sat := SatNo(SYS_QZS, 193+j)
			if sat == 0 {
				continue
			}
			alm[sat-1].Svh = int(GetBitU(buff, i, 6))
		}
		for j := 0; j < 10; j++ {
			sat := SatNo(SYS_QZS, 193+j)
			if sat == 0 || alm[sat-1].Sat != sat || alm[sat-1].Toas != float64(toas) {
				continue
			}
			alm[sat-1].Week = AdjGpsWeek(week)
			alm[sat-1].Toa = GpsT2Time(alm[sat-1].Week, float64(toas))
		}
		return 1
	}
	return 0
}

/* decode GPS/QZSS almanac/health in subframes 4/5 */
func DecodeFrameAlm(buff []uint8, alm []Alm) int {
	ret := 0
	for frm, index := 4, 90; frm <= 5; frm, index = frm+1, index+30 {
		if int(GetBitU(buff[index:], 43, 3)) != frm {
			continue
		}
		switch GetBitU(buff[index:], 48, 2) {
		case 1: /* GPS */
			ret |= decodeAlmGps(buff[index:], frm, alm)
		case 3: /* QZSS */
			ret |= decodeAlmQzs(buff[index:], alm)
		}
	}
	return ret
}

/* decode GPS/QZSS iono parameters (subframe 4/5 page 18) */
func DecodeFrameIon(buff []uint8, ion []float64) int {
	for frm, index := 4, 90; frm <= 5; frm, index = frm+1, index+30 {
		if frm == 5 && GetBitU(buff[index:], 48, 2) == 1 {
			continue
		}
		if int(GetBitU(buff[index:], 43, 3)) != frm || GetBitU(buff[index:], 50, 6) != 56 {
			continue
		}
		i := 56
		ion[0] = float64(GetBits(buff[index:], i, 8)) * P2_30
		i += 8
		ion[1] = float64(GetBits(buff[index:], i, 8)) * P2_27
		i += 8
		ion[2] = float64(GetBits(buff[index:], i, 8)) * P2_24
		i += 8
		ion[3] = float64(GetBits(buff[index:], i, 8)) * P2_24
		i += 8
		ion[4] = float64(GetBits(buff[index:], i, 8)) * P2P11
		i += 8
		ion[5] = float64(GetBits(buff[index:], i, 8)) * P2P14
		i += 8
		ion[6] = float64(GetBits(buff[index:], i, 8)) * P2P16
		i += 8
		ion[7] = float64(GetBits(buff[index:], i, 8)) * P2P16
		return 1
	}
	return 0
}

/* decode GPS/QZSS UTC parameters (subframe 4/5 page 18) */
func DecodeFrameUtc(buff []uint8, utc []float64) int {
	for frm, index := 4, 90; frm <= 5; frm, index = frm+1, index+30 {
		if frm == 5 && GetBitU(buff[index:], 48, 2) == 1 {
			continue
		}
		if int(GetBitU(buff[index:], 43, 3)) != frm || GetBitU(buff[index:], 50, 6) != 56 {
			continue
		}
		i := 120
		utc[1] = float64(GetBits(buff[index:], i, 24)) * P2_50
		i += 24 /* A1 (s/s) */
		utc[0] = float64(GetBits(buff[index:], i, 32)) * P2_30
		i += 32 /* A0 (s) */
		utc[2] = float64(GetBitU(buff[index:], i, 8)) * P2P12
		i += 8 /* tot (s) */
		utc[3] = float64(GetBitU(buff[index:], i, 8))
		i += 8 /* WNt */
		utc[4] = float64(GetBits(buff[index:], i, 8))
		i += 8 /* dt_LS */
		utc[5] = float64(GetBitU(buff[index:], i, 8))
		i += 8 /* WN_LSF */
		utc[6] = float64(GetBitU(buff[index:], i, 8))
		i += 8 /* DN */
		utc[7] = float64(GetBits(buff[index:], i, 8)) /* dt_LSF */
		return 1
	}
	return 0
}

/* decode GPS/QZSS navigation frame (ref [1],[4])
 *   buff[  0- 29]: subframe 1 (240 bits w/o parity)
 *   buff[ 30- 59]: subframe 2
 *   buff[ 60- 89]: subframe 3
 *   buff[ 90-119]: subframe 4
 *   buff[120-149]: subframe 5
 * any nil output is skipped. return 1:ok,0:error or no data */
func DecodeFrame(buff []uint8, eph *Eph, alm []Alm, ion, utc []float64) int {
	if eph != nil && DecodeFrameEph(buff, eph) == 0 {
		return 0
	}
	if alm != nil && DecodeFrameAlm(buff, alm) == 0 {
		return 0
	}
	if ion != nil && DecodeFrameIon(buff, ion) == 0 {
		return 0
	}
	if utc != nil && DecodeFrameUtc(buff, utc) == 0 {
		return 0
	}
	return 1
}

/* decode Galileo I/NAV ephemeris from word types 1-5 */
func DecodeGalInavEph(buff []uint8, eph *Eph) int {
	var (
		e      Eph
		ctype  [6]int
		iodNav [4]int
	)

	i := 128 /* word type 1 */
	ctype[0] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[0] = int(GetBitU(buff, i, 10))
	i += 10
	e.Toes = float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	e.M0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.E = float64(GetBitU(buff, i, 32)) * P2_33
	i += 32
	sqrtA := float64(GetBitU(buff, i, 32)) * P2_19

	i = 128 * 2 /* word type 2 */
	ctype[1] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[1] = int(GetBitU(buff, i, 10))
	i += 10
	e.OMG0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.I0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Omg = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Idot = float64(GetBits(buff, i, 14)) * P2_43 * SC2RAD

	i = 128 * 3 /* word type 3 */
	ctype[2] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[2] = int(GetBitU(buff, i, 10))
	i += 10
	e.OMGd = float64(GetBits(buff, i, 24)) * P2_43 * SC2RAD
	i += 24
	e.Deln = float64(GetBits(buff, i, 16)) * P2_43 * SC2RAD
	i += 16
	e.Cuc = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Cus = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Crc = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Crs = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Sva = int(GetBitU(buff, i, 8))

	i = 128 * 4 /* word type 4 */
	ctype[3] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[3] = int(GetBitU(buff, i, 10))
	i += 10
	svid := int(GetBitU(buff, i, 6))
	i += 6
	e.Cic = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Cis = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	toc := float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	e.F0 = float64(GetBits(buff, i, 31)) * P2_34
	i += 31
	e.F1 = float64(GetBits(buff, i, 21)) * P2_46
	i += 21
	e.F2 = float64(GetBits(buff, i, 6)) * P2_59

	i = 128 * 5 /* word type 5 */
	ctype[4] = int(GetBitU(buff, i, 6))
	i += 6 + 11 + 11 + 14 + 5
	e.Tgd[0] = float64(GetBits(buff, i, 10)) * P2_32
	i += 10 /* BGD E5a/E1 */
	e.Tgd[1] = float64(GetBits(buff, i, 10)) * P2_32
	i += 10 /* BGD E5b/E1 */
	e5bHs := int(GetBitU(buff, i, 2))
	i += 2
	e1bHs := int(GetBitU(buff, i, 2))
	i += 2
	e5bDvs := int(GetBitU(buff, i, 1))
	i++
	e1bDvs := int(GetBitU(buff, i, 1))
	i++
	week := int(GetBitU(buff, i, 12)) /* gst-week */
	i += 12
	tow := float64(GetBitU(buff, i, 20))

	if ctype[0] != 1 || ctype[1] != 2 || ctype[2] != 3 || ctype[3] != 4 || ctype[4] != 5 {
		Trace(2, "DecodeGalInavEph error: type=%d %d %d %d %d\n",
			ctype[0], ctype[1], ctype[2], ctype[3], ctype[4])
		return 0
	}
	if iodNav[0] != iodNav[1] || iodNav[0] != iodNav[2] || iodNav[0] != iodNav[3] {
		Trace(2, "DecodeGalInavEph error: iod_nav=%d %d %d %d\n",
			iodNav[0], iodNav[1], iodNav[2], iodNav[3])
		return 0
	}
	if e.Sat = SatNo(SYS_GAL, svid); e.Sat == 0 {
		Trace(2, "DecodeGalInavEph svid error: svid=%d\n", svid)
		return 0
	}
	e.A = sqrtA * sqrtA
	e.Iode, e.Iodc = iodNav[0], iodNav[0]
	e.Svh = e5bHs<<7 | e5bDvs<<6 | e1bHs<<1 | e1bDvs
	e.Ttr = GsT2Time(week, tow)
	tt := TimeDiff(GsT2Time(week, e.Toes), e.Ttr)
	if tt > 302400.0 {
		week--
	} else if tt < -302400.0 {
		week++
	}
	e.Toe = GsT2Time(week, e.Toes)
	e.Toc = GsT2Time(week, toc)
	e.Week = week + 1024 /* gal-week = gst-week + 1024 */
	e.Code = 1 << 9      /* I/NAV: af0-2,Toc,SISA for E5b-E1 */
	*eph = e
	return 1
}

/* decode Galileo I/NAV iono parameters (word type 5) */
func DecodeGalInavIon(buff []uint8, ion []float64) int {
	i := 128 * 5
	if GetBitU(buff, i, 6) != 5 {
		return 0
	}
	i += 6
	ion[0] = float64(GetBitU(buff, i, 11)) * 0.25
	i += 11
	ion[1] = float64(GetBits(buff, i, 11)) * P2_8
	i += 11
	ion[2] = float64(GetBits(buff, i, 14)) * P2_15
	i += 14
	ion[3] = float64(GetBitU(buff, i, 5))
	return 1
}

/* decode Galileo I/NAV UTC parameters (word type 6) */
func DecodeGalInavUtc(buff []uint8, utc []float64) int {
	i := 128 * 6
	if GetBitU(buff, i, 6) != 6 {
		return 0
	}
	i += 6
	utc[0] = float64(GetBits(buff, i, 32)) * P2_30
	i += 32 /* A0 */
	utc[1] = float64(GetBits(buff, i, 24)) * P2_50
	i += 24 /* A1 */
	utc[4] = float64(GetBits(buff, i, 8))
	i += 8 /* dt_LS */
	utc[2] = float64(GetBitU(buff, i, 8)) * 3600.0
	i += 8 /* tot */
	utc[3] = float64(GetBitU(buff, i, 8))
	i += 8 /* WNt */
	utc[5] = float64(GetBitU(buff, i, 8))
	i += 8 /* WN_LSF */
	utc[6] = float64(GetBitU(buff, i, 3))
	i += 3 /* DN */
	utc[7] = float64(GetBits(buff, i, 8)) /* dt_LSF */
	return 1
}

/* decode Galileo I/NAV navigation data (ref [5] 4.3)
 *   buff[ 0- 15]: word type 0 (128 bits)
 *   buff[16- 31]: word type 1 ... buff[96-111]: word type 6 */
func DecodeGalInav(buff []uint8, eph *Eph, ion, utc []float64) int {
	if eph != nil && DecodeGalInavEph(buff, eph) == 0 {
		return 0
	}
	if ion != nil && DecodeGalInavIon(buff, ion) == 0 {
		return 0
	}
	if utc != nil && DecodeGalInavUtc(buff, utc) == 0 {
		return 0
	}
	return 1
}

/* decode Galileo F/NAV ephemeris from page types 1-4 */
func DecodeGalFnavEph(buff []uint8, eph *Eph) int {
	var (
		e      Eph
		tow    [4]float64
		week   [3]int
		ctype  [4]int
		iodNav [4]int
	)

	i := 0 /* page type 1 */
	ctype[0] = int(GetBitU(buff, i, 6))
	i += 6
	svid := int(GetBitU(buff, i, 6))
	i += 6
	iodNav[0] = int(GetBitU(buff, i, 10))
	i += 10
	toc := float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	e.F0 = float64(GetBits(buff, i, 31)) * P2_34
	i += 31
	e.F1 = float64(GetBits(buff, i, 21)) * P2_46
	i += 21
	e.F2 = float64(GetBits(buff, i, 6)) * P2_59
	i += 6
	e.Sva = int(GetBitU(buff, i, 8))
	i += 8 + 11 + 11 + 14 + 5
	e.Tgd[0] = float64(GetBits(buff, i, 10)) * P2_32
	i += 10 /* BGD E5a/E1 */
	e5aHs := int(GetBitU(buff, i, 2))
	i += 2
	week[0] = int(GetBitU(buff, i, 12)) /* gst-week */
	i += 12
	tow[0] = float64(GetBitU(buff, i, 20))
	i += 20
	e5aDvs := int(GetBitU(buff, i, 1))

	i = 31 * 8 /* page type 2 */
	ctype[1] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[1] = int(GetBitU(buff, i, 10))
	i += 10
	e.M0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.OMGd = float64(GetBits(buff, i, 24)) * P2_43 * SC2RAD
	i += 24
	e.E = float64(GetBitU(buff, i, 32)) * P2_33
	i += 32
	sqrtA := float64(GetBitU(buff, i, 32)) * P2_19
	i += 32
	e.OMG0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Idot = float64(GetBits(buff, i, 14)) * P2_43 * SC2RAD
	i += 14
	week[1] = int(GetBitU(buff, i, 12))
	i += 12
	tow[1] = float64(GetBitU(buff, i, 20))

	i = 62 * 8 /* page type 3 */
	ctype[2] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[2] = int(GetBitU(buff, i, 10))
	i += 10
	e.I0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Omg = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Deln = float64(GetBits(buff, i, 16)) * P2_43 * SC2RAD
	i += 16
	e.Cuc = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Cus = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Crc = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Crs = float64(GetBits(buff, i, 16)) * P2_5
	i += 16
	e.Toes = float64(GetBitU(buff, i, 14)) * 60.0
	i += 14
	week[2] = int(GetBitU(buff, i, 12))
	i += 12
	tow[2] = float64(GetBitU(buff, i, 20))

	i = 93 * 8 /* page type 4 */
	ctype[3] = int(GetBitU(buff, i, 6))
	i += 6
	iodNav[3] = int(GetBitU(buff, i, 10))
	i += 10
	e.Cic = float64(GetBits(buff, i, 16)) * P2_29
	i += 16
	e.Cis = float64(GetBits(buff, i, 16)) * P2_29

	if ctype[0] != 1 || ctype[1] != 2 || ctype[2] != 3 || ctype[3] != 4 {
		Trace(2, "DecodeGalFnavEph error: svid=%d type=%d %d %d %d\n", svid,
			ctype[0], ctype[1], ctype[2], ctype[3])
		return 0
	}
	if iodNav[0] != iodNav[1] || iodNav[0] != iodNav[2] || iodNav[0] != iodNav[3] {
		Trace(2, "DecodeGalFnavEph error: svid=%d iod_nav=%d %d %d %d\n", svid,
			iodNav[0], iodNav[1], iodNav[2], iodNav[3])
		return 0
	}
	if e.Sat = SatNo(SYS_GAL, svid); e.Sat == 0 {
		Trace(2, "DecodeGalFnavEph svid error: svid=%d\n", svid)
		return 0
	}
	e.A = sqrtA * sqrtA
	e.Tgd[1] = 0.0 /* BGD E5b/E1 */
	e.Iode, e.Iodc = iodNav[0], iodNav[0]
	e.Svh = e5aHs<<4 | e5aDvs<<3
	e.Ttr = GsT2Time(week[0], tow[0])
	tt := TimeDiff(GsT2Time(week[0], e.Toes), e.Ttr)
	if tt > 302400.0 {
		week[0]--
	} else if tt < -302400.0 {
		week[0]++
	}
	e.Toe = GsT2Time(week[0], e.Toes)
	e.Toc = GsT2Time(week[0], toc)
	e.Week = week[0] + 1024
	e.Code = 1 << 8 /* F/NAV: af0-2,Toc,SISA for E5a,E1 */
	*eph = e
	return 1
}

/* decode Galileo F/NAV iono parameters (page type 1) */
func DecodeGalFnavIon(buff []uint8, ion []float64) int {
	i := 0
	if GetBitU(buff, i, 6) != 1 {
		return 0
	}
	i += 6 + 6 + 10 + 14 + 31 + 21 + 6 + 8
	ion[0] = float64(GetBitU(buff, i, 11)) * 0.25
	i += 11
	ion[1] = float64(GetBits(buff, i, 11)) * P2_8
	i += 11
	ion[2] = float64(GetBits(buff, i, 14)) * P2_15
	i += 14
	ion[3] = float64(GetBitU(buff, i, 5))
	return 1
}

/* decode Galileo F/NAV UTC parameters (page type 4) */
func DecodeGalFnavUtc(buff []uint8, utc []float64) int {
	i := 93 * 8
	if GetBitU(buff, i, 6) != 4 {
		return 0
	}
	i += 6 + 10 + 16 + 16
	utc[0] = float64(GetBits(buff, i, 32)) * P2_30
	i += 32 /* A0 */
	utc[1] = float64(GetBits(buff, i, 24)) * P2_50
	i += 24 /* A1 */
	utc[4] = float64(GetBits(buff, i, 8))
	i += 8 /* dt_LS */
	utc[2] = float64(GetBitU(buff, i, 8)) * 3600.0
	i += 8 /* tot */
	utc[3] = float64(GetBitU(buff, i, 8))
	i += 8 /* WN_ot */
	utc[5] = float64(GetBitU(buff, i, 8))
	i += 8 /* WN_LSF */
	utc[6] = float64(GetBitU(buff, i, 3))
	i += 3 /* DN */
	utc[7] = float64(GetBits(buff, i, 8)) /* dt_LSF */
	return 1
}

/* decode Galileo F/NAV navigation data (ref [5] 4.2)
 *   buff[  0- 30]: page type 1 (244 bits)
 *   buff[ 31- 61]: page type 2 ... buff[155-185]: page type 6 */
func DecodeGalFnav(buff []uint8, eph *Eph, ion, utc []float64) int {
	if eph != nil && DecodeGalFnavEph(buff, eph) == 0 {
		return 0
	}
	if ion != nil && DecodeGalFnavIon(buff, ion) == 0 {
		return 0
	}
	if utc != nil && DecodeGalFnavUtc(buff, utc) == 0 {
		return 0
	}
	return 1
}

/* decode BDS D1 ephemeris from subframes 1-3 */
func DecodeBDSD1Eph(buff []uint8, eph *Eph) int {
	var e Eph

	i := 8 * 38 * 0 /* subframe 1 */
	frn1 := int(GetBitU(buff, i+15, 3))
	sow1 := GetBitU2(buff, i+18, 8, i+30, 12)
	e.Svh = int(GetBitU(buff, i+42, 1))  /* SatH1 */
	e.Iodc = int(GetBitU(buff, i+43, 5)) /* AODC */
	e.Sva = int(GetBitU(buff, i+48, 4))
	e.Week = int(GetBitU(buff, i+60, 13)) /* week in BDT */
	tocBds := float64(GetBitU2(buff, i+73, 9, i+90, 8)) * 8.0
	e.Tgd[0] = float64(GetBits(buff, i+98, 10)) * 0.1 * 1e-9
	e.Tgd[1] = float64(GetBits2(buff, i+108, 4, i+120, 6)) * 0.1 * 1e-9
	e.F2 = float64(GetBits(buff, i+214, 11)) * P2_66
	e.F0 = float64(GetBits2(buff, i+225, 7, i+240, 17)) * P2_33
	e.F1 = float64(GetBits2(buff, i+257, 5, i+270, 17)) * P2_50
	e.Iode = int(GetBitU(buff, i+287, 5)) /* AODE */

	i = 8 * 38 * 1 /* subframe 2 */
	frn2 := int(GetBitU(buff, i+15, 3))
	sow2 := GetBitU2(buff, i+18, 8, i+30, 12)
	e.Deln = float64(GetBits2(buff, i+42, 10, i+60, 6)) * P2_43 * SC2RAD
	e.Cuc = float64(GetBits2(buff, i+66, 16, i+90, 2)) * P2_31
	e.M0 = float64(GetBits2(buff, i+92, 20, i+120, 12)) * P2_31 * SC2RAD
	e.E = float64(GetBitU2(buff, i+132, 10, i+150, 22)) * P2_33
	e.Cus = float64(GetBits(buff, i+180, 18)) * P2_31
	e.Crc = float64(GetBits2(buff, i+198, 4, i+210, 14)) * P2_6
	e.Crs = float64(GetBits2(buff, i+224, 8, i+240, 10)) * P2_6
	sqrtA := float64(GetBitU2(buff, i+250, 12, i+270, 20)) * P2_19
	toe1 := GetBitU(buff, i+290, 2) /* TOE 2-MSB */
	e.A = sqrtA * sqrtA

	i = 8 * 38 * 2 /* subframe 3 */
	frn3 := int(GetBitU(buff, i+15, 3))
	sow3 := GetBitU2(buff, i+18, 8, i+30, 12)
	toe2 := GetBitU2(buff, i+42, 10, i+60, 5) /* TOE 5-LSB */
	e.I0 = float64(GetBits2(buff, i+65, 17, i+90, 15)) * P2_31 * SC2RAD
	e.Cic = float64(GetBits2(buff, i+105, 7, i+120, 11)) * P2_31
	e.OMGd = float64(GetBits2(buff, i+131, 11, i+150, 13)) * P2_43 * SC2RAD
	e.Cis = float64(GetBits2(buff, i+163, 9, i+180, 9)) * P2_31
	e.Idot = float64(GetBits2(buff, i+189, 13, i+210, 1)) * P2_43 * SC2RAD
	e.OMG0 = float64(GetBits2(buff, i+211, 21, i+240, 11)) * P2_31 * SC2RAD
	e.Omg = float64(GetBits2(buff, i+251, 11, i+270, 21)) * P2_31 * SC2RAD
	e.Toes = float64(MergeBitsU(toe1, toe2, 15)) * 8.0

	if frn1 != 1 || frn2 != 2 || frn3 != 3 {
		Trace(2, "DecodeBDSD1Eph error: frn=%d %d %d\n", frn1, frn2, frn3)
		return 0
	}
	if sow2 != sow1+6 || sow3 != sow2+6 {
		Trace(2, "DecodeBDSD1Eph error: sow=%d %d %d\n", sow1, sow2, sow3)
		return 0
	}
	if tocBds != e.Toes {
		Trace(2, "DecodeBDSD1Eph error: toe=%.0f toc=%.0f\n", e.Toes, tocBds)
		return 0
	}
	e.Ttr = BDT2GpsT(BDT2Time(e.Week, float64(sow1)))
	if e.Toes > float64(sow1)+302400.0 {
		e.Week++
	} else if e.Toes < float64(sow1)-302400.0 {
		e.Week--
	}
	e.Toe = BDT2GpsT(BDT2Time(e.Week, e.Toes))
	e.Toc = BDT2GpsT(BDT2Time(e.Week, tocBds))
	e.Code = 0 /* data source = unknown */
	e.Flag = 1 /* nav type = IGSO/MEO */
	*eph = e
	return 1
}

/* decode BDS D1 iono parameters (subframe 1) */
func DecodeBDSD1Ion(buff []uint8, ion []float64) int {
	i := 0
	if GetBitU(buff, i+15, 3) != 1 {
		return 0
	}
	ion[0] = float64(GetBits(buff, i+126, 8)) * P2_30
	ion[1] = float64(GetBits(buff, i+134, 8)) * P2_27
	ion[2] = float64(GetBits(buff, i+150, 8)) * P2_24
	ion[3] = float64(GetBits(buff, i+158, 8)) * P2_24
	ion[4] = float64(GetBits2(buff, i+166, 6, i+180, 2)) * P2P11
	ion[5] = float64(GetBits(buff, i+182, 8)) * P2P14
	ion[6] = float64(GetBits(buff, i+190, 8)) * P2P16
	ion[7] = float64(GetBits2(buff, i+198, 4, i+210, 4)) * P2P16
	return 1
}

/* decode BDS D1 UTC parameters (subframe 5 page 10) */
func DecodeBDSD1Utc(buff []uint8, utc []float64) int {
	if GetBitU(buff, 15, 3) != 1 {
		return 0 /* subframe 1 */
	}
	i := 8 * 38 * 4 /* subframe 5 */
	if GetBitU(buff, i+15, 3) != 5 || GetBitU(buff, i+43, 7) != 10 {
		return 0
	}
	utc[4] = float64(GetBits2(buff, i+50, 2, i+60, 6))            /* dt_LS */
	utc[7] = float64(GetBits(buff, i+66, 8))                      /* dt_LSF */
	utc[5] = float64(GetBitU(buff, i+74, 8))                      /* WN_LSF */
	utc[0] = float64(GetBits2(buff, i+90, 22, i+120, 10)) * P2_30 /* A0 */
	utc[1] = float64(GetBits2(buff, i+130, 12, i+150, 12)) * P2_50 /* A1 */
	utc[6] = float64(GetBitU(buff, i+162, 8))                     /* DN */
	utc[2] = float64(GetBitU2(buff, i+18, 8, i+30, 12))           /* SOW */
	utc[3] = float64(GetBitU(buff, 60, 13))                       /* WN */
	return 1
}

/* decode BDS D1 navigation data (IGSO/MEO) (ref [3] 5.2)
 *   buff[  0- 37]: subframe 1 (300 bits) ... buff[152-189]: subframe 5 */
func DecodeBDSD1(buff []uint8, eph *Eph, ion, utc []float64) int {
	if eph != nil && DecodeBDSD1Eph(buff, eph) == 0 {
		return 0
	}
	if ion != nil && DecodeBDSD1Ion(buff, ion) == 0 {
		return 0
	}
	if utc != nil && DecodeBDSD1Utc(buff, utc) == 0 {
		return 0
	}
	return 1
}

/* decode BDS D2 ephemeris from subframe 1 pages 1-10 */
func DecodeBDSD2Eph(buff []uint8, eph *Eph) int {
	var e Eph

	i := 8 * 38 * 0 /* page 1 */
	pgn1 := int(GetBitU(buff, i+42, 4))
	sow1 := GetBitU2(buff, i+18, 8, i+30, 12)
	e.Svh = int(GetBitU(buff, i+46, 1))  /* SatH1 */
	e.Iodc = int(GetBitU(buff, i+47, 5)) /* AODC */
	e.Sva = int(GetBitU(buff, i+60, 4))
	e.Week = int(GetBitU(buff, i+64, 13)) /* week in BDT */
	tocBds := float64(GetBitU2(buff, i+77, 5, i+90, 12)) * 8.0
	e.Tgd[0] = float64(GetBits(buff, i+102, 10)) * 0.1 * 1e-9
	e.Tgd[1] = float64(GetBits(buff, i+120, 10)) * 0.1 * 1e-9

	i = 8 * 38 * 2 /* page 3 */
	pgn3 := int(GetBitU(buff, i+42, 4))
	sow3 := GetBitU2(buff, i+18, 8, i+30, 12)
	e.F0 = float64(GetBits2(buff, i+100, 12, i+120, 12)) * P2_33
	f1p3 := GetBits(buff, i+132, 4)

	i = 8 * 38 * 3 /* page 4 */
	pgn4 := int(GetBitU(buff, i+42, 4))
	sow4 := GetBitU2(buff, i+18, 8, i+30, 12)
	f1p4 := GetBitU2(buff, i+46, 6, i+60, 12)
	e.F2 = float64(GetBits2(buff, i+72, 10, i+90, 1)) * P2_66
	e.Iode = int(GetBitU(buff, i+91, 5)) /* AODE */
	e.Deln = float64(GetBits(buff, i+96, 16)) * P2_43 * SC2RAD
	cucp4 := GetBits(buff, i+120, 14)

	i = 8 * 38 * 4 /* page 5 */
	pgn5 := int(GetBitU(buff, i+42, 4))
	sow5 := GetBitU2(buff, i+18, 8, i+30, 12)
	cucp5 := GetBitU(buff, i+46, 4)
	e.M0 = float64(GetBits3(buff, i+50, 2, i+60, 22, i+90, 8)) * P2_31 * SC2RAD
	e.Cus = float64(GetBits2(buff, i+98, 14, i+120, 4)) * P2_31
	ep5 := GetBits(buff, i+124, 10)

	i = 8 * 38 * 5 /* page 6 */
	pgn6 := int(GetBitU(buff, i+42, 4))
	sow6 := GetBitU2(buff, i+18, 8, i+30, 12)
	ep6 := GetBitU2(buff, i+46, 6, i+60, 16)
	sqrtA := float64(GetBitU3(buff, i+76, 6, i+90, 22, i+120, 4)) * P2_19
	cicp6 := GetBits(buff, i+124, 10)
	e.A = sqrtA * sqrtA

	i = 8 * 38 * 6 /* page 7 */
	pgn7 := int(GetBitU(buff, i+42, 4))
	sow7 := GetBitU2(buff, i+18, 8, i+30, 12)
	cicp7 := GetBitU2(buff, i+46, 6, i+60, 2)
	e.Cis = float64(GetBits(buff, i+62, 18)) * P2_31
	e.Toes = float64(GetBitU2(buff, i+80, 2, i+90, 15)) * 8.0
	i0p7 := GetBits2(buff, i+105, 7, i+120, 14)

	i = 8 * 38 * 7 /* page 8 */
	pgn8 := int(GetBitU(buff, i+42, 4))
	sow8 := GetBitU2(buff, i+18, 8, i+30, 12)
	i0p8 := GetBitU2(buff, i+46, 6, i+60, 5)
	e.Crc = float64(GetBits2(buff, i+65, 17, i+90, 1)) * P2_6
	e.Crs = float64(GetBits(buff, i+91, 18)) * P2_6
	OMGdp8 := GetBits2(buff, i+109, 3, i+120, 16)

	i = 8 * 38 * 8 /* page 9 */
	pgn9 := int(GetBitU(buff, i+42, 4))
	sow9 := GetBitU2(buff, i+18, 8, i+30, 12)
	OMGdp9 := GetBitU(buff, i+46, 5)
	e.OMG0 = float64(GetBits3(buff, i+51, 1, i+60, 22, i+90, 9)) * P2_31 * SC2RAD
	omgp9 := GetBits2(buff, i+99, 13, i+120, 14)

	i = 8 * 38 * 9 /* page 10 */
	pgn10 := int(GetBitU(buff, i+42, 4))
	sow10 := GetBitU2(buff, i+18, 8, i+30, 12)
	omgp10 := GetBitU(buff, i+46, 5)
	e.Idot = float64(GetBits2(buff, i+51, 1, i+60, 13)) * P2_43 * SC2RAD

	if pgn1 != 1 || pgn3 != 3 || pgn4 != 4 || pgn5 != 5 || pgn6 != 6 ||
		pgn7 != 7 || pgn8 != 8 || pgn9 != 9 || pgn10 != 10 {
		Trace(2, "DecodeBDSD2Eph error: pgn=%d %d %d %d %d %d %d %d %d\n",
			pgn1, pgn3, pgn4, pgn5, pgn6, pgn7, pgn8, pgn9, pgn10)
		return 0
	}
	if sow3 != sow1+6 || sow4 != sow3+3 || sow5 != sow4+3 || sow6 != sow5+3 ||
		sow7 != sow6+3 || sow8 != sow7+3 || sow9 != sow8+3 || sow10 != sow9+3 {
		Trace(2, "DecodeBDSD2Eph error: sow=%d %d %d %d %d %d %d %d %d\n",
			sow1, sow3, sow4, sow5, sow6, sow7, sow8, sow9, sow10)
		return 0
	}
	if tocBds != e.Toes {
		Trace(2, "DecodeBDSD2Eph error: toe=%.0f toc=%.0f\n", e.Toes, tocBds)
		return 0
	}
	e.F1 = float64(MergeBitsS(f1p3, f1p4, 18)) * P2_50
	e.Cuc = float64(MergeBitsS(cucp4, cucp5, 4)) * P2_31
	e.E = float64(MergeBitsS(ep5, ep6, 22)) * P2_33
	e.Cic = float64(MergeBitsS(cicp6, cicp7, 8)) * P2_31
	e.I0 = float64(MergeBitsS(i0p7, i0p8, 11)) * P2_31 * SC2RAD
	e.OMGd = float64(MergeBitsS(OMGdp8, OMGdp9, 5)) * P2_43 * SC2RAD
	e.Omg = float64(MergeBitsS(omgp9, omgp10, 5)) * P2_31 * SC2RAD

	e.Ttr = BDT2GpsT(BDT2Time(e.Week, float64(sow1)))
	if e.Toes > float64(sow1)+302400.0 {
		e.Week++
	} else if e.Toes < float64(sow1)-302400.0 {
		e.Week--
	}
	e.Toe = BDT2GpsT(BDT2Time(e.Week, e.Toes))
	e.Toc = BDT2GpsT(BDT2Time(e.Week, tocBds))
	e.Code = 0 /* data source = unknown */
	e.Flag = 2 /* nav type = GEO */
	*eph = e
	return 1
}

/* decode BDS D2 UTC parameters (subframe 5 page 102) */
func DecodeBDSD2Utc(buff []uint8, utc []float64) int {
	if GetBitU(buff, 15, 3) != 1 || GetBitU(buff, 42, 4) != 1 {
		return 0 /* subframe 1 page 1 */
	}
	i := 8 * 38 * 10
	if GetBitU(buff, i+15, 3) != 5 || GetBitU(buff, i+43, 7) != 102 {
		return 0
	}
	utc[4] = float64(GetBits2(buff, i+50, 2, i+60, 6))             /* dt_LS */
	utc[7] = float64(GetBits(buff, i+66, 8))                       /* dt_LSF */
	utc[5] = float64(GetBitU(buff, i+74, 8))                       /* WN_LSF */
	utc[0] = float64(GetBits2(buff, i+90, 22, i+120, 10)) * P2_30  /* A0 */
	utc[1] = float64(GetBits2(buff, i+130, 12, i+150, 12)) * P2_50 /* A1 */
	utc[6] = float64(GetBitU(buff, i+162, 8))                      /* DN */
	utc[2] = float64(GetBitU2(buff, i+18, 8, i+30, 12))            /* SOW */
	utc[3] = float64(GetBitU(buff, 64, 13))                        /* WN */
	return 1
}

/* decode BDS D2 navigation data (GEO) (ref [3] 5.3)
 *   buff[  0- 37]: subframe 1 page 1 (300 bits)
 *   ...
 *   buff[342-379]: subframe 1 page 10
 *   buff[380-417]: subframe 5 page 102 */
func DecodeBDSD2(buff []uint8, eph *Eph, utc []float64) int {
	if eph != nil && DecodeBDSD2Eph(buff, eph) == 0 {
		return 0
	}
	if utc != nil && DecodeBDSD2Utc(buff, utc) == 0 {
		return 0
	}
	return 1
}

/* decode GLONASS ephemeris from strings 1-4 */
func DecodeGloStrEph(buff []uint8, geph *GEph) int {
	g := GEph{}

	i := 1 /* string 1 */
	frn1 := int(GetBitU(buff, i, 4))
	i += 4 + 2 + 2
	tkH := int(GetBitU(buff, i, 5))
	i += 5
	tkM := int(GetBitU(buff, i, 6))
	i += 6
	tkS := int(GetBitU(buff, i, 1)) * 30
	i++
	g.Vel[0] = GetBitG(buff, i, 24) * P2_20 * 1e3
	i += 24
	g.Acc[0] = GetBitG(buff, i, 5) * P2_30 * 1e3
	i += 5
	g.Pos[0] = GetBitG(buff, i, 27) * P2_11 * 1e3
	i += 27 + 4

	/* string 2 */
	frn2 := int(GetBitU(buff, i, 4))
	i += 4
	g.Svh = int(GetBitU(buff, i, 1)) /* MSB of Bn */
	i += 1 + 2 + 1
	tb := int(GetBitU(buff, i, 7))
	i += 7 + 5
	g.Vel[1] = GetBitG(buff, i, 24) * P2_20 * 1e3
	i += 24
	g.Acc[1] = GetBitG(buff, i, 5) * P2_30 * 1e3
	i += 5
	g.Pos[1] = GetBitG(buff, i, 27) * P2_11 * 1e3
	i += 27 + 4

	/* string 3 */
	frn3 := int(GetBitU(buff, i, 4))
	i += 4 + 1
	g.Gamn = GetBitG(buff, i, 11) * P2_40
	i += 11 + 1 + 2 + 1
	g.Vel[2] = GetBitG(buff, i, 24) * P2_20 * 1e3
	i += 24
	g.Acc[2] = GetBitG(buff, i, 5) * P2_30 * 1e3
	i += 5
	g.Pos[2] = GetBitG(buff, i, 27) * P2_11 * 1e3
	i += 27 + 4

	/* string 4 */
	frn4 := int(GetBitU(buff, i, 4))
	i += 4
	g.Taun = GetBitG(buff, i, 22) * P2_30
	i += 22
	g.DTaun = GetBitG(buff, i, 5) * P2_30
	i += 5
	g.Age = int(GetBitU(buff, i, 5))
	i += 5 + 14 + 1
	g.Sva = int(GetBitU(buff, i, 4))
	i += 4 + 3 + 11
	slot := int(GetBitU(buff, i, 5))

	if frn1 != 1 || frn2 != 2 || frn3 != 3 || frn4 != 4 {
		Trace(2, "DecodeGloStrEph error: frn=%d %d %d %d\n", frn1, frn2, frn3, frn4)
		return 0
	}
	if g.Sat = SatNo(SYS_GLO, slot); g.Sat == 0 {
		Trace(2, "DecodeGloStrEph error: slot=%d\n", slot)
		return 0
	}
	g.Frq = 0 /* frequency number unknown here */
	g.Iode = tb

	/* geph.Tof carries the approximate frame time on input */
	var week int
	tow := Time2GpsT(GpsT2Utc(geph.Tof), &week)
	tod := math.Mod(tow, 86400.0)
	tow -= tod
	tof := float64(tkH)*3600.0 + float64(tkM)*60.0 + float64(tkS) - 10800.0 /* lt->utc */
	if tof < tod-43200.0 {
		tof += 86400.0
	} else if tof > tod+43200.0 {
		tof -= 86400.0
	}
	g.Tof = Utc2GpsT(GpsT2Time(week, tow+tof))
	toe := float64(tb)*900.0 - 10800.0 /* lt->utc */
	if toe < tod-43200.0 {
		toe += 86400.0
	} else if toe > tod+43200.0 {
		toe -= 86400.0
	}
	g.Toe = Utc2GpsT(GpsT2Time(week, tow+toe))
	*geph = g
	return 1
}

/* decode GLONASS UTC parameters (string 5) */
func DecodeGloStrUtc(buff []uint8, utc []float64) int {
	i := 1 + 80*4
	if GetBitU(buff, i, 4) != 5 {
		return 0
	}
	i += 4 + 11
	utc[0] = float64(GetBits(buff, i, 32)) * P2_31 /* tau_C */
	i += 32 + 1 + 6
	utc[1] = float64(GetBits(buff, i, 22)) * P2_30 /* tau_GPS */
	for j := 2; j < 8; j++ {
		utc[j] = 0.0
	}
	return 1
}

/* decode GLONASS navigation strings (ref [2])
 *   buff[ 0- 9]: string 1 (77 bits w/o hamming and time mark)
 *   buff[10-19]: string 2 ... buff[40-49]: string 5
 * geph.Tof must hold the approximate frame time (within 1/2 day) on entry;
 * geph.Frq is left 0 */
func DecodeGloStr(buff []uint8, geph *GEph, utc []float64) int {
	if geph != nil && DecodeGloStrEph(buff, geph) == 0 {
		return 0
	}
	if utc != nil && DecodeGloStrUtc(buff, utc) == 0 {
		return 0
	}
	return 1
}

/* decode NavIC/IRNSS ephemeris from subframes 1-2 */
func DecodeIrnEph(buff []uint8, eph *Eph) int {
	var e Eph

	i := 8 /* subframe 1 */
	tow1 := float64(GetBitU(buff, i, 17)) * 12.0
	i += 17 + 2
	id1 := int(GetBitU(buff, i, 2))
	i += 2 + 1
	week := int(GetBitU(buff, i, 10))
	i += 10
	e.F0 = float64(GetBits(buff, i, 22)) * P2_31
	i += 22
	e.F1 = float64(GetBits(buff, i, 16)) * P2_43
	i += 16
	e.F2 = float64(GetBits(buff, i, 8)) * P2_55
	i += 8
	e.Sva = int(GetBitU(buff, i, 4))
	i += 4
	toc := float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	e.Tgd[0] = float64(GetBits(buff, i, 8)) * P2_31
	i += 8
	e.Deln = float64(GetBits(buff, i, 22)) * P2_41 * SC2RAD
	i += 22
	e.Iode = int(GetBitU(buff, i, 8))
	i += 8 + 10
	e.Svh = int(GetBitU(buff, i, 2))
	i += 2
	e.Cuc = float64(GetBits(buff, i, 15)) * P2_28
	i += 15
	e.Cus = float64(GetBits(buff, i, 15)) * P2_28
	i += 15
	e.Cic = float64(GetBits(buff, i, 15)) * P2_28
	i += 15
	e.Cis = float64(GetBits(buff, i, 15)) * P2_28
	i += 15
	e.Crc = float64(GetBits(buff, i, 15)) * 0.0625
	i += 15
	e.Crs = float64(GetBits(buff, i, 15)) * 0.0625
	i += 15
	e.Idot = float64(GetBits(buff, i, 14)) * P2_43 * SC2RAD

	i = 8*37 + 8 /* subframe 2 */
	tow2 := float64(GetBitU(buff, i, 17)) * 12.0
	i += 17 + 2
	id2 := int(GetBitU(buff, i, 2))
	i += 2 + 1
	e.M0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Toes = float64(GetBitU(buff, i, 16)) * 16.0
	i += 16
	e.E = float64(GetBitU(buff, i, 32)) * P2_33
	i += 32
	sqrtA := float64(GetBitU(buff, i, 32)) * P2_19
	i += 32
	e.OMG0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.Omg = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD
	i += 32
	e.OMGd = float64(GetBits(buff, i, 22)) * P2_41 * SC2RAD
	i += 22
	e.I0 = float64(GetBits(buff, i, 32)) * P2_31 * SC2RAD

	/* subframe ids, tow and toe/toc consistency */
	if id1 != 0 || id2 != 1 || tow1+12.0 != tow2 || toc != e.Toes {
		return 0
	}
	e.A = sqr(sqrtA)
	e.Iodc = e.Iode
	week = AdjGpsWeek(week)
	e.Week = week
	to := GpsT2Time(e.Week, e.Toes)
	e.Toe, e.Toc = to, to
	if tow1 < e.Toes-302400.0 {
		week++
	} else if tow1 > e.Toes+302400.0 {
		week--
	}
	e.Ttr = GpsT2Time(week, tow1)
	*eph = e
	return 1
}

/* decode NavIC/IRNSS iono parameters (message id 11) */
func DecodeIrnIon(buff []uint8, ion []float64) int {
	id3 := int(GetBitU(buff, 8*37*2+30, 6))
	id4 := int(GetBitU(buff, 8*37*3+30, 6))

	var i int
	switch {
	case id3 == 11:
		i = 8*37*2 + 174
	case id4 == 11:
		i = 8*37*3 + 174
	default:
		return 0
	}
	ion[0] = float64(GetBits(buff, i, 8)) * P2_30
	i += 8
	ion[1] = float64(GetBits(buff, i, 8)) * P2_27
	i += 8
	ion[2] = float64(GetBits(buff, i, 8)) * P2_24
	i += 8
	ion[3] = float64(GetBits(buff, i, 8)) * P2_24
	i += 8
	ion[4] = float64(GetBits(buff, i, 8)) * P2P11
	i += 8
	ion[5] = float64(GetBits(buff, i, 8)) * P2P14
	i += 8
	ion[6] = float64(GetBits(buff, i, 8)) * P2P16
	i += 8
	ion[7] = float64(GetBits(buff, i, 8)) * P2P16
	return 1
}

/* decode NavIC/IRNSS UTC parameters (message id 9 or 26) */
func DecodeIrnUtc(buff []uint8, utc []float64) int {
	id3 := int(GetBitU(buff, 8*37*2+30, 6))
	id4 := int(GetBitU(buff, 8*37*3+30, 6))

	var i int
	switch {
	case id3 == 9 || id3 == 26:
		i = 8*37*2 + 36
	case id4 == 9 || id4 == 26:
		i = 8*37*3 + 36
	default:
		return 0
	}
	utc[0] = float64(GetBits(buff, i, 16)) * P2_35
	i += 16 /* A0 */
	utc[1] = float64(GetBits(buff, i, 13)) * P2_51
	i += 13 /* A1 */
	utc[8] = float64(GetBits(buff, i, 7)) * P2_68
	i += 7 /* A2 */
	utc[4] = float64(GetBits(buff, i, 8))
	i += 8 /* dt_LS */
	utc[2] = float64(GetBitU(buff, i, 16)) * 16.0
	i += 16 /* tot */
	utc[3] = float64(GetBitU(buff, i, 10))
	i += 10 /* WNt */
	utc[5] = float64(GetBitU(buff, i, 10))
	i += 10 /* WN_LSF */
	utc[6] = float64(GetBitU(buff, i, 4))
	i += 4 /* DN */
	utc[7] = float64(GetBits(buff, i, 8)) /* dt_LSF */
	return 1
}

/* decode NavIC/IRNSS navigation data (ref [6] 5.9-6)
 *   buff[  0- 36]: subframe 1 (292 bits)
 *   buff[ 37- 73]: subframe 2
 *   buff[ 74-110]: subframe 3
 *   buff[111-147]: subframe 4 */
func DecodeIrnNav(buff []uint8, eph *Eph, ion, utc []float64) int {
	if eph != nil && DecodeIrnEph(buff, eph) == 0 {
		return 0
	}
	if ion != nil && DecodeIrnIon(buff, ion) == 0 {
		return 0
	}
	if utc != nil && DecodeIrnUtc(buff, utc) == 0 {
		return 0
	}
	return 1
}

type Raw struct { /* receiver raw data control */
	Time    Gtime              /* message time */
	Tobs    [MAXSAT][NFRQX]Gtime /* last observation time per signal */
	ObsData Obs                /* observation data */
	ObsBuf  Obs                /* observation data buffer under assembly */
	NavData Nav                /* satellite ephemerides */
	StaData Sta                /* station parameters */
	EphSat  int                /* updated satellite of ephemeris (0:none) */
	EphSet  int                /* updated set of ephemeris (0-1) */
	Sbsmsg  SbsMsg             /* SBAS message */
	MsgType string             /* last message type */

	SubFrm   [MAXSAT][380]uint8    /* subframe buffer */
	LockTime [MAXSAT][NFRQX]float64 /* lock time (s) */
	Halfc    [MAXSAT][NFRQX]uint8   /* half-cycle add flag */

	NumByte int /* bytes in message buffer */
	Len     int /* message length (bytes) */
	Iod     int /* issue of data */
	Tod     int /* time of day (ms) */
	Tbase   int /* time base (0:gpst,1:utc(usno),2:glonass,3:utc(su)) */
	Flag    int /* general purpose flag */
	OutType int /* output message type enabled */

	EventTime Gtime /* time of last external event (time mark) */
	EventN    int   /* external event count */

	Buff   [MAXRAWLEN]uint8
	Opt    string /* receiver dependent options */
	Format int    /* receiver stream format */

	optSrc string
	optVal RawOpt
}

type RawOpt struct { /* receiver dependent options, parsed */
	EphAll    bool    /* -EPHALL: accept all ephemerides */
	InvCP     bool    /* -INVCP: invert polarity of carrier-phase */
	MultiCode bool    /* -MULTICODE: prefer higher priority code per band */
	RcvStds   bool    /* -RCVSTDS: keep receiver reported std-devs */
	Tadj      float64 /* -TADJ=tint: round time tags to multiples of tint (s) */
	StdSlip   int     /* -STD_SLIP=n: slip if phase std-dev index >= n */
	MaxStdCP  int     /* -MAX_STD_CP=n: max phase std-dev index to use phase */
}

func parseRawOpt(opt string) RawOpt {
	ro := RawOpt{MaxStdCP: -1}

	ro.EphAll = strings.Contains(opt, "-EPHALL")
	ro.InvCP = strings.Contains(opt, "-INVCP")
	ro.MultiCode = strings.Contains(opt, "-MULTICODE")
	ro.RcvStds = strings.Contains(opt, "-RCVSTDS")
	if q := strings.Index(opt, "-TADJ="); q >= 0 {
		fmt.Sscanf(opt[q:], "-TADJ=%f", &ro.Tadj)
	}
	if q := strings.Index(opt, "-STD_SLIP="); q >= 0 {
		fmt.Sscanf(opt[q:], "-STD_SLIP=%d", &ro.StdSlip)
	}
	if q := strings.Index(opt, "-MAX_STD_CP="); q >= 0 {
		fmt.Sscanf(opt[q:], "-MAX_STD_CP=%d", &ro.MaxStdCP)
	}
	return ro
}

/* receiver options, parsed once per option string */
func (raw *Raw) options() *RawOpt {
	if raw.optSrc != raw.Opt {
		raw.optVal = parseRawOpt(raw.Opt)
		raw.optSrc = raw.Opt
	}
	return &raw.optVal
}

/* initialize receiver raw data control (1:ok,0:error) */
func (raw *Raw) InitRaw(format int) int {
	Trace(3, "InitRaw: format=%d\n", format)

	if raw == nil {
		return 0
	}
	*raw = Raw{Tod: -1, Format: format}
	raw.ObsData.Data = make([]ObsD, 0, MAXOBS)
	raw.ObsBuf.Data = make([]ObsD, 0, MAXOBS)
	raw.NavData.Ephs = make([]Eph, MAXSAT*2)
	raw.NavData.Alm = make([]Alm, MAXSAT)
	raw.NavData.Geph = make([]GEph, NSATGLO)
	raw.NavData.Seph = make([]SEph, NSATSBS*2)

	for i := range raw.NavData.Ephs {
		raw.NavData.Ephs[i] = Eph{Iode: -1, Iodc: -1}
	}
	for i := range raw.NavData.Alm {
		raw.NavData.Alm[i] = Alm{Svh: -1}
	}
	for i := range raw.NavData.Geph {
		raw.NavData.Geph[i] = GEph{Iode: -1}
	}
	return 1
}

/* input receiver raw data from stream, one byte at a time
 * return : -1: error message, 0: no message, 1: observation data,
 *           2: ephemeris, 3: sbas message, 9: ion/utc parameters */
func (raw *Raw) InputRaw(format int, data uint8) int {
	switch format {
	case STRFMT_UBX:
		return raw.InputUbx(data)
	}
	return 0
}

/* input receiver raw data from file
 * return : -2: end of file, otherwise same as InputRaw */
func (raw *Raw) InputRawF(format int, fp *os.File) int {
	switch format {
	case STRFMT_UBX:
		return raw.InputUbxF(fp)
	}
	return -2
}
