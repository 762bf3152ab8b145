/*------------------------------------------------------------------------------
* gtime.go : GNSS time functions
*
* notes  :
*     Gtime carries integer seconds since 1970-01-01 00:00:00 plus a fraction
*     under 1 s, so epoch arithmetic keeps sub-ns resolution over the full
*     GNSS era. calendar conversion is valid in 1970-2099 (leap year if
*     year%4==0 in that span).
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"math"
	"sync"
	"time"
)

type Gtime struct {
	Time int64   /* time (s) since 1970-01-01 00:00:00 */
	Sec  float64 /* fraction of second under 1 s */
}

var (
	gpst0 = []float64{1980, 1, 6, 0, 0, 0}  /* gps time reference */
	gst0  = []float64{1999, 8, 22, 0, 0, 0} /* galileo system time reference */
	bdt0  = []float64{2006, 1, 1, 0, 0, 0}  /* beidou time reference */
)

/* leap seconds (y,m,d,h,m,s,utc-gpst), descending order */
var leaps = [MAXLEAPS + 1][7]float64{
	{2017, 1, 1, 0, 0, 0, -18},
	{2015, 7, 1, 0, 0, 0, -17},
	{2012, 7, 1, 0, 0, 0, -16},
	{2009, 1, 1, 0, 0, 0, -15},
	{2006, 1, 1, 0, 0, 0, -14},
	{1999, 1, 1, 0, 0, 0, -13},
	{1997, 7, 1, 0, 0, 0, -12},
	{1996, 1, 1, 0, 0, 0, -11},
	{1994, 7, 1, 0, 0, 0, -10},
	{1993, 7, 1, 0, 0, 0, -9},
	{1992, 7, 1, 0, 0, 0, -8},
	{1991, 1, 1, 0, 0, 0, -7},
	{1990, 1, 1, 0, 0, 0, -6},
	{1988, 1, 1, 0, 0, 0, -5},
	{1985, 7, 1, 0, 0, 0, -4},
	{1983, 7, 1, 0, 0, 0, -3},
	{1982, 7, 1, 0, 0, 0, -2},
	{1981, 7, 1, 0, 0, 0, -1},
}

/* convert calendar day/time {y,m,d,h,m,s} to Gtime */
func Epoch2Time(ep []float64) Gtime {
	doy := []int{1, 32, 60, 91, 121, 152, 182, 213, 244, 274, 305, 335}
	var t Gtime

	year, mon, day := int(ep[0]), int(ep[1]), int(ep[2])
	if year < 1970 || 2099 < year || mon < 1 || 12 < mon {
		return t
	}
	days := (year-1970)*365 + (year-1969)/4 + doy[mon-1] + day - 2
	if year%4 == 0 && mon >= 3 {
		days++
	}
	sec := int(math.Floor(ep[5]))
	t.Time = int64(days)*86400 + int64(ep[3])*3600 + int64(ep[4])*60 + int64(sec)
	t.Sec = ep[5] - float64(sec)
	return t
}

/* convert Gtime to calendar day/time {y,m,d,h,m,s} */
func Time2Epoch(t Gtime, ep []float64) {
	mday := []int{ /* # of days in a month over a 4-year cycle */
		31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31,
		31, 29, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31, 31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	days := int(t.Time / 86400)
	sec := int(t.Time - int64(days)*86400)
	day, mon := days%1461, 0
	for ; mon < 48; mon++ {
		if day < mday[mon] {
			break
		}
		day -= mday[mon]
	}
	ep[0] = float64(1970 + days/1461*4 + mon/12)
	ep[1] = float64(mon%12 + 1)
	ep[2] = float64(day + 1)
	ep[3] = float64(sec / 3600)
	ep[4] = float64(sec % 3600 / 60)
	ep[5] = float64(sec%60) + t.Sec
}

/* convert week and tow in gps time to Gtime */
func GpsT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(gpst0)
	if sec < -1e9 || 1e9 < sec {
		sec = 0.0
	}
	t.Time += int64(86400*7*week) + int64(sec)
	t.Sec = sec - math.Floor(sec)
	return t
}

/* convert Gtime to week and tow in gps time */
func Time2GpsT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(gpst0)
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))
	if week != nil {
		*week = w
	}
	return float64(sec-int64(w)*86400*7) + t.Sec
}

/* convert week and tow in galileo system time (gst) to Gtime */
func GsT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(gst0)
	if sec < -1e9 || 1e9 < sec {
		sec = 0.0
	}
	t.Time += int64(86400*7*week) + int64(sec)
	t.Sec = sec - math.Floor(sec)
	return t
}

/* convert Gtime to week and tow in galileo system time (gst) */
func Time2GsT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(gst0)
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))
	if week != nil {
		*week = w
	}
	return float64(sec-int64(w)*86400*7) + t.Sec
}

/* convert week and tow in beidou time (bdt) to Gtime */
func BDT2Time(week int, sec float64) Gtime {
	t := Epoch2Time(bdt0)
	if sec < -1e9 || 1e9 < sec {
		sec = 0.0
	}
	t.Time += int64(86400*7*week) + int64(sec)
	t.Sec = sec - math.Floor(sec)
	return t
}

/* convert Gtime to week and tow in beidou time (bdt) */
func Time2BDT(t Gtime, week *int) float64 {
	t0 := Epoch2Time(bdt0)
	sec := t.Time - t0.Time
	w := int(sec / (86400 * 7))
	if week != nil {
		*week = w
	}
	return float64(sec-int64(w)*86400*7) + t.Sec
}

/* add seconds to time */
func TimeAdd(t Gtime, sec float64) Gtime {
	t.Sec += sec
	tt := math.Floor(t.Sec)
	t.Time += int64(tt)
	t.Sec -= tt
	return t
}

/* time difference t1-t2 (s) */
func TimeDiff(t1, t2 Gtime) float64 {
	return float64(t1.Time-t2.Time) + t1.Sec - t2.Sec
}

var (
	timeoffset float64 /* simulated time offset (s), timeget() only */
	timeLock   sync.Mutex
)

/* current time in utc */
func TimeGet() Gtime {
	timeLock.Lock()
	defer timeLock.Unlock()

	ts := time.Now().UTC()
	ep := []float64{float64(ts.Year()), float64(ts.Month()), float64(ts.Day()),
		float64(ts.Hour()), float64(ts.Minute()),
		float64(ts.Second()) + float64(ts.Nanosecond())*1e-9}
	return TimeAdd(Epoch2Time(ep), timeoffset)
}

/* set current time in utc (sets offset between cpu time and given time) */
func TimeSet(t Gtime) {
	timeoffset += TimeDiff(t, TimeGet())
}

func TimeReset() {
	timeoffset = 0.0
}

/* gpstime to utc considering leap seconds */
func GpsT2Utc(t Gtime) Gtime {
	for i := 0; leaps[i][0] > 0; i++ {
		tu := TimeAdd(t, leaps[i][6])
		if TimeDiff(tu, Epoch2Time(leaps[i][:])) >= 0.0 {
			return tu
		}
	}
	return t
}

/* utc to gpstime considering leap seconds */
func Utc2GpsT(t Gtime) Gtime {
	for i := 0; leaps[i][0] > 0; i++ {
		if TimeDiff(t, Epoch2Time(leaps[i][:])) >= 0.0 {
			return TimeAdd(t, -leaps[i][6])
		}
	}
	return t
}

/* gpstime to bdt (2006/1/1 00:00 BDT = 2006/1/1 00:00 UTC, no leaps in bdt) */
func GpsT2BDT(t Gtime) Gtime {
	return TimeAdd(t, -14.0)
}

func BDT2GpsT(t Gtime) Gtime {
	return TimeAdd(t, 14.0)
}

/* time to day start and seconds of day */
func Time2Sec(t Gtime, day *Gtime) float64 {
	var ep [6]float64
	Time2Epoch(t, ep[:])
	sec := ep[3]*3600.0 + ep[4]*60.0 + ep[5]
	ep[3], ep[4], ep[5] = 0.0, 0.0, 0.0
	*day = Epoch2Time(ep[:])
	return sec
}

/* time to day of year */
func Time2DoY(t Gtime) float64 {
	var ep [6]float64
	Time2Epoch(t, ep[:])
	ep[1], ep[2], ep[3], ep[4], ep[5] = 1.0, 1.0, 0.0, 0.0, 0.0
	return TimeDiff(t, Epoch2Time(ep[:]))/86400.0 + 1.0
}

/* convert Gtime to string "yyyy/mm/dd hh:mm:ss.sss" with n decimals */
func Time2Str(t Gtime, n int) string {
	if n < 0 {
		n = 0
	} else if n > 12 {
		n = 12
	}
	if 1.0-t.Sec < 0.5/math.Pow(10.0, float64(n)) {
		t.Time++
		t.Sec = 0.0
	}
	var ep [6]float64
	Time2Epoch(t, ep[:])
	n1, n2 := 2, 0
	if n > 0 {
		n1, n2 = n+3, n
	}
	return fmt.Sprintf("%04.0f/%02.0f/%02.0f %02.0f:%02.0f:%0*.*f",
		ep[0], ep[1], ep[2], ep[3], ep[4], n1, n2, ep[5])
}

func TimeStr(t Gtime, n int) string { return Time2Str(t, n) }

/* parse "yyyy mm dd hh mm ss" substring s[i:i+n] to time */
func Str2Time(s string, i, n int, t *Gtime) int {
	if i < 0 || len(s) < i || i+n > len(s) {
		return -1
	}
	ep := make([]float64, 6)
	m, _ := fmt.Sscanf(s[i:i+n], "%f %f %f %f %f %f",
		&ep[0], &ep[1], &ep[2], &ep[3], &ep[4], &ep[5])
	if m < 6 {
		return -1
	}
	if ep[0] < 100.0 {
		if ep[0] < 80.0 {
			ep[0] += 2000.0
		} else {
			ep[0] += 1900.0
		}
	}
	*t = Epoch2Time(ep)
	return 0
}

/* adjust gps week number using cpu time (resolve 1024-week ambiguity) */
func AdjGpsWeek(week int) int {
	var w int
	Time2GpsT(Utc2GpsT(TimeGet()), &w)
	if w < 1560 {
		w = 1560 /* use 2009/12/1 if time is earlier than 2009/12/1 */
	}
	return week + (w-week+1)/1024*1024
}

/* adjust weekly rollover of time: move t by +-604800 s into half a week of t0 */
func AdjWeek(t0 Gtime, tow float64) Gtime {
	tow0 := Time2GpsT(t0, nil)
	if tow < tow0-302400.0 {
		tow += 604800.0
	} else if tow > tow0+302400.0 {
		tow -= 604800.0
	}
	var week int
	Time2GpsT(t0, &week)
	return GpsT2Time(week, tow)
}

/* adjust daily rollover of time: move tod into half a day of t0 */
func AdjDay(t0 Gtime, tod float64) Gtime {
	var ep [6]float64
	Time2Epoch(t0, ep[:])
	tod0 := ep[3]*3600.0 + ep[4]*60.0 + ep[5]
	if tod < tod0-43200.0 {
		tod += 86400.0
	} else if tod > tod0+43200.0 {
		tod -= 86400.0
	}
	ep[3], ep[4], ep[5] = 0.0, 0.0, 0.0
	return TimeAdd(Epoch2Time(ep[:]), tod)
}

/* current tick in ms */
func TickGet() int64 {
	return time.Now().UnixMilli()
}

func Sleepms(ms int) {
	if ms > 0 {
		time.Sleep(time.Duration(ms) * time.Millisecond)
	}
}

/* convert degree to degree-minute-second */
func Deg2Dms(deg float64, dms []float64, ndec int) {
	sign := 1.0
	if deg < 0.0 {
		sign = -1.0
	}
	a := math.Abs(deg)
	unit := math.Pow(0.1, float64(ndec))

	dms[0] = math.Floor(a)
	a = (a - dms[0]) * 60.0
	dms[1] = math.Floor(a)
	a = (a - dms[1]) * 60.0
	dms[2] = math.Floor(a/unit+0.5) * unit
	if dms[2] >= 60.0 {
		dms[2] = 0.0
		dms[1] += 1.0
		if dms[1] >= 60.0 {
			dms[1] = 0.0
			dms[0] += 1.0
		}
	}
	dms[0] *= sign
}

/* convert degree-minute-second to degree */
func Dms2Deg(dms []float64) float64 {
	sign := 1.0
	if dms[0] < 0.0 {
		sign = -1.0
	}
	return sign * (math.Abs(dms[0]) + dms[1]/60.0 + dms[2]/3600.0)
}
