/*------------------------------------------------------------------------------
* nav.go : navigation data and observation management
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"math"
	"sort"
)

const maxVarEph = 300.0 * 300.0 /* max variance of broadcast ephemeris (m^2) */

/* add observation data record */
func (obs *Obs) AddObsData(data *ObsD) int {
	obs.Data = append(obs.Data, *data)
	return 1
}

/* add broadcast ephemeris; a duplicate of an existing (sat,iode,toe,toc)
 * entry is dropped unless ephall keeps every received ephemeris */
func (nav *Nav) AddEph(eph *Eph, ephall bool) {
	if !ephall {
		for i := range nav.Ephs {
			if nav.Ephs[i].Sat == eph.Sat && nav.Ephs[i].Iode == eph.Iode &&
				TimeDiff(nav.Ephs[i].Toe, eph.Toe) == 0.0 &&
				TimeDiff(nav.Ephs[i].Toc, eph.Toc) == 0.0 {
				return
			}
		}
	}
	nav.Ephs = append(nav.Ephs, *eph)
}

func (nav *Nav) AddGeph(geph *GEph) {
	for i := range nav.Geph {
		if nav.Geph[i].Sat == geph.Sat {
			nav.Geph[i] = *geph
			return
		}
	}
	nav.Geph = append(nav.Geph, *geph)
}

func (nav *Nav) AddSeph(seph *SEph) {
	for i := range nav.Seph {
		if nav.Seph[i].Sat == seph.Sat {
			nav.Seph[i] = *seph
			return
		}
	}
	nav.Seph = append(nav.Seph, *seph)
}

func (nav *Nav) AddAlm(alm *Alm) {
	for i := range nav.Alm {
		if nav.Alm[i].Sat == alm.Sat {
			nav.Alm[i] = *alm
			return
		}
	}
	nav.Alm = append(nav.Alm, *alm)
}

func cmpEph(p1, p2 *Eph) int {
	if p1.Ttr.Time != p2.Ttr.Time {
		return int(p1.Ttr.Time - p2.Ttr.Time)
	}
	if p1.Toe.Time != p2.Toe.Time {
		return int(p1.Toe.Time - p2.Toe.Time)
	}
	return p1.Sat - p2.Sat
}

/* sort and unique broadcast ephemeris */
func (nav *Nav) UniqEph() {
	if nav.N() <= 0 {
		return
	}
	sort.Slice(nav.Ephs, func(i, j int) bool {
		return cmpEph(&nav.Ephs[i], &nav.Ephs[j]) < 0
	})
	j := 0
	for i := 1; i < nav.N(); i++ {
		if nav.Ephs[i].Sat != nav.Ephs[j].Sat ||
			nav.Ephs[i].Iode != nav.Ephs[j].Iode {
			j++
			nav.Ephs[j] = nav.Ephs[i]
		}
	}
	nav.Ephs = nav.Ephs[:j+1]

	Trace(4, "UniqEph: n=%d\n", nav.N())
}

func cmpGeph(q1, q2 *GEph) int {
	if q1.Tof.Time != q2.Tof.Time {
		return int(q1.Tof.Time - q2.Tof.Time)
	}
	if q1.Toe.Time != q2.Toe.Time {
		return int(q1.Toe.Time - q2.Toe.Time)
	}
	return q1.Sat - q2.Sat
}

/* sort and unique glonass ephemeris */
func (nav *Nav) UniqGEph() {
	if nav.Ng() <= 0 {
		return
	}
	sort.Slice(nav.Geph, func(i, j int) bool {
		return cmpGeph(&nav.Geph[i], &nav.Geph[j]) < 0
	})
	j := 0
	for i := 1; i < nav.Ng(); i++ {
		if nav.Geph[i].Sat != nav.Geph[j].Sat ||
			nav.Geph[i].Toe.Time != nav.Geph[j].Toe.Time ||
			nav.Geph[i].Svh != nav.Geph[j].Svh {
			j++
			nav.Geph[j] = nav.Geph[i]
		}
	}
	nav.Geph = nav.Geph[:j+1]

	Trace(4, "UniqGEph: ng=%d\n", nav.Ng())
}

func cmpSeph(q1, q2 *SEph) int {
	if q1.Tof.Time != q2.Tof.Time {
		return int(q1.Tof.Time - q2.Tof.Time)
	}
	if q1.T0.Time != q2.T0.Time {
		return int(q1.T0.Time - q2.T0.Time)
	}
	return q1.Sat - q2.Sat
}

/* sort and unique sbas ephemeris */
func (nav *Nav) UniqSEph() {
	if nav.Ns() <= 0 {
		return
	}
	sort.Slice(nav.Seph, func(i, j int) bool {
		return cmpSeph(&nav.Seph[i], &nav.Seph[j]) < 0
	})
	j := 0
	for i := 1; i < nav.Ns(); i++ {
		if nav.Seph[i].Sat != nav.Seph[j].Sat ||
			nav.Seph[i].T0.Time != nav.Seph[j].T0.Time {
			j++
			nav.Seph[j] = nav.Seph[i]
		}
	}
	nav.Seph = nav.Seph[:j+1]

	Trace(4, "UniqSEph: ns=%d\n", nav.Ns())
}

/* unique ephemerides in navigation data */
func (nav *Nav) UniqNav() {
	nav.UniqEph()
	nav.UniqGEph()
	nav.UniqSEph()
}

func cmpObs(q1, q2 *ObsD) int {
	tt := TimeDiff(q1.Time, q2.Time)
	if math.Abs(tt) > DTTOL {
		if tt < 0 {
			return -1
		}
		return 1
	}
	if q1.Rcv != q2.Rcv {
		return q1.Rcv - q2.Rcv
	}
	return q1.Sat - q2.Sat
}

/* sort observation data by time, receiver and satellite, drop duplicates,
 * return the number of epochs */
func (obs *Obs) SortObs() int {
	if obs.N() <= 0 {
		return 0
	}
	sort.SliceStable(obs.Data, func(i, j int) bool {
		return cmpObs(&obs.Data[i], &obs.Data[j]) < 0
	})

	j := 0
	for i := 1; i < obs.N(); i++ {
		if obs.Data[i].Sat != obs.Data[j].Sat ||
			obs.Data[i].Rcv != obs.Data[j].Rcv ||
			TimeDiff(obs.Data[i].Time, obs.Data[j].Time) != 0.0 {
			j++
			obs.Data[j] = obs.Data[i]
		}
	}
	obs.Data = obs.Data[:j+1]

	n := 0
	for i := 0; i < obs.N(); n++ {
		j = i + 1
		for ; j < obs.N(); j++ {
			if math.Abs(TimeDiff(obs.Data[j].Time, obs.Data[i].Time)) > DTTOL {
				break
			}
		}
		i = j
	}
	return n
}

/* NextObsF advances i to the next observation of receiver rcv and returns the
 * number of observations in that epoch (0:no more data) */
func (obs *Obs) NextObsF(i *int, rcv int) int {
	for ; *i < obs.N(); *i++ {
		if obs.Data[*i].Rcv == rcv {
			break
		}
	}
	n := 0
	for ; *i+n < obs.N(); n++ {
		tt := TimeDiff(obs.Data[*i+n].Time, obs.Data[*i].Time)
		if obs.Data[*i+n].Rcv != rcv || tt > DTTOL {
			break
		}
	}
	return n
}

/* NextObsB moves i back to the previous observation epoch of receiver rcv and
 * returns the number of observations in that epoch (0:no more data) */
func (obs *Obs) NextObsB(i *int, rcv int) int {
	for ; *i >= 0; *i-- {
		if obs.Data[*i].Rcv == rcv {
			break
		}
	}
	n := 0
	for ; *i-n >= 0; n++ {
		tt := TimeDiff(obs.Data[*i-n].Time, obs.Data[*i].Time)
		if obs.Data[*i-n].Rcv != rcv || tt < -DTTOL {
			break
		}
	}
	return n
}

/* screen by time start/end and interval (1:on condition,0:off) */
func ScreenTime(time, ts, te Gtime, tint float64) int {
	if (tint <= 0.0 || math.Mod(Time2GpsT(time, nil)+DTTOL, tint) <= DTTOL*2.0) &&
		(ts.Time == 0 || TimeDiff(time, ts) >= -DTTOL) &&
		(te.Time == 0 || TimeDiff(time, te) < DTTOL) {
		return 1
	}
	return 0
}

/* test excluded satellite (1:excluded,0:not excluded) */
func SatExclude(sat int, variance float64, svh int, opt *PrcOpt) int {
	sys := SatSys(sat, nil)

	if svh < 0 {
		return 1 /* ephemeris unavailable */
	}
	if opt != nil {
		if opt.ExSats[sat-1] == 1 {
			return 1
		}
		if opt.ExSats[sat-1] == 2 {
			return 0
		}
		if sys&opt.NavSys == 0 {
			return 1
		}
	}
	if sys == SYS_QZS {
		svh &= 0xFE /* mask QZSS LEX health */
	}
	if svh != 0 {
		Trace(2, "unhealthy satellite: sat=%3d svh=%02X\n", sat, svh)
		return 1
	}
	if variance > maxVarEph {
		Trace(2, "invalid ura satellite: sat=%3d ura=%.2f\n", sat, math.Sqrt(variance))
		return 1
	}
	return 0
}

/* test SNR mask (1:masked,0:unmasked) */
func TestSnr(base, idx int, el, snr float64, mask *SnrMask) int {
	if mask.Ena[base] == 0 || idx < 0 || idx >= NFREQ {
		return 0
	}
	a := (el*R2D + 5.0) / 10.0
	i := int(math.Floor(a))
	a -= float64(i)

	var minsnr float64
	switch {
	case i < 1:
		minsnr = mask.Mask[idx][0]
	case i > 8:
		minsnr = mask.Mask[idx][8]
	default:
		minsnr = (1.0-a)*mask.Mask[idx][i-1] + a*mask.Mask[idx][i]
	}
	if snr < minsnr {
		return 1
	}
	return 0
}
