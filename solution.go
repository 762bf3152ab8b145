/*------------------------------------------------------------------------------
* solution.go : solution input/output functions
*
*          Copyright (C) 2026 by The GNSSRT Project, All rights reserved.
*
* references :
*     [1] National Marine Electronic Association and International Marine
*         Electronics Association, NMEA 0183 standard for interfacing marine
*         electronic devices, Version 4.10, August 1, 2012
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"bufio"
	"fmt"
	"io"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"

	nmea "github.com/adrianmo/go-nmea"
)

const (
	NMEA_TID = "GN"        /* NMEA talker ID for RMC and GGA sentences */
	MAXNMEA  = 256         /* max length of nmea sentence */
	KNOT2M   = 0.514444444 /* m/knot */
)

/* solution status of NMEA GGA quality indicator */
var nmeaSolq = []int{
	SOLQ_NONE, SOLQ_SINGLE, SOLQ_DGPS, SOLQ_PPP, SOLQ_FIX,
	SOLQ_FLOAT, SOLQ_DR, SOLQ_NONE, SOLQ_NONE}

/* last reported course over ground for static receivers */
var nmeaDirp float64

/* field separator of solution options */
func opt2sep(opt *SolOpt) string {
	switch opt.Sep {
	case "":
		return " "
	case "\\t":
		return "\t"
	}
	return opt.Sep
}

/* sqrt of covariance, sign preserved */
func sqvar(covar float64) float64 {
	if covar < 0.0 {
		return -math.Sqrt(-covar)
	}
	return math.Sqrt(covar)
}

/* solution to xyz covariance (3x3 row major) */
func Sol2Cov(sol *Sol, P []float64) {
	P[0] = float64(sol.Qr[0])
	P[4] = float64(sol.Qr[1])
	P[8] = float64(sol.Qr[2])
	P[1], P[3] = float64(sol.Qr[3]), float64(sol.Qr[3])
	P[5], P[7] = float64(sol.Qr[4]), float64(sol.Qr[4])
	P[2], P[6] = float64(sol.Qr[5]), float64(sol.Qr[5])
}

/* xyz covariance to solution */
func Cov2Sol(P []float64, sol *Sol) {
	sol.Qr[0] = float32(P[0])
	sol.Qr[1] = float32(P[4])
	sol.Qr[2] = float32(P[8])
	sol.Qr[3] = float32(P[1])
	sol.Qr[4] = float32(P[5])
	sol.Qr[5] = float32(P[2])
}

/* solution to velocity covariance */
func Sol2CovarianceVel(sol *Sol, P []float64) {
	P[0] = float64(sol.Qv[0])
	P[4] = float64(sol.Qv[1])
	P[8] = float64(sol.Qv[2])
	P[1], P[3] = float64(sol.Qv[3]), float64(sol.Qv[3])
	P[5], P[7] = float64(sol.Qv[4]), float64(sol.Qv[4])
	P[2], P[6] = float64(sol.Qv[5]), float64(sol.Qv[5])
}

/* velocity covariance to solution */
func CovarianceVel2Sol(P []float64, sol *Sol) {
	sol.Qv[0] = float32(P[0])
	sol.Qv[1] = float32(P[4])
	sol.Qv[2] = float32(P[8])
	sol.Qv[3] = float32(P[1])
	sol.Qv[4] = float32(P[5])
	sol.Qv[5] = float32(P[2])
}

/* TestNmea checks whether the buffer starts an NMEA 0183 sentence */
func TestNmea(buff string) bool {
	if len(buff) < 6 || buff[0] != '$' {
		return false
	}
	switch buff[1:3] {
	case "GP", "GA", "GL", "GN", "GB", "GQ", "GI", "BD", "QZ":
		return true
	}
	return false
}

/* TestSolStat checks whether the buffer starts a solution status record */
func TestSolStat(buff string) bool {
	if len(buff) < 7 || buff[0] != '$' {
		return false
	}
	for _, tag := range []string{
		"$POS", "$VELACC", "$CLK", "$ION", "$TROP", "$HWBIAS", "$TRPG",
		"$AMB", "$SAT"} {
		if strings.HasPrefix(buff, tag) {
			return true
		}
	}
	return false
}

/* decode NMEA RMC: recommended minimum specific GNSS data */
func (sol *Sol) decodeNmeaRmc(m *nmea.RMC) int {
	Trace(4, "decodeNmeaRmc:\n")

	if m.Validity != "A" || !m.Date.Valid {
		sol.Stat = SOLQ_NONE
		return 0
	}
	var ep [6]float64
	ep[0] = float64(m.Date.YY)
	if ep[0] < 80.0 {
		ep[0] += 2000.0
	} else {
		ep[0] += 1900.0
	}
	ep[1] = float64(m.Date.MM)
	ep[2] = float64(m.Date.DD)
	ep[3] = float64(m.Time.Hour)
	ep[4] = float64(m.Time.Minute)
	ep[5] = float64(m.Time.Second) + float64(m.Time.Millisecond)*1e-3
	sol.Time = Utc2GpsT(Epoch2Time(ep[:]))

	pos := [3]float64{m.Latitude * D2R, m.Longitude * D2R, 0.0}
	Pos2Ecef(pos[:], sol.Rr[:])
	sol.Stat = SOLQ_SINGLE
	sol.Ns = 0
	sol.Type = 0 /* position type = xyz */
	return 2     /* update time */
}

/* decode NMEA ZDA: time and date */
func (sol *Sol) decodeNmeaZda(m *nmea.ZDA) int {
	Trace(4, "decodeNmeaZda:\n")

	ep := [6]float64{
		float64(m.Year), float64(m.Month), float64(m.Day),
		float64(m.Time.Hour), float64(m.Time.Minute),
		float64(m.Time.Second) + float64(m.Time.Millisecond)*1e-3}
	sol.Time = Utc2GpsT(Epoch2Time(ep[:]))
	sol.Ns = 0
	return 2 /* update time */
}

/* decode NMEA GGA: fix data */
func (sol *Sol) decodeNmeaGga(m *nmea.GGA) int {
	Trace(4, "decodeNmeaGga:\n")

	solq, err := strconv.Atoi(m.FixQuality)
	if err != nil || solq <= 0 {
		sol.Stat = SOLQ_NONE
		return 0
	}
	/* date comes from a preceding RMC or ZDA */
	if sol.Time.Time == 0 {
		Trace(3, "decodeNmeaGga: no date info\n")
		return 0
	}
	var ep [6]float64
	Time2Epoch(GpsT2Utc(sol.Time), ep[:])
	ep[3] = float64(m.Time.Hour)
	ep[4] = float64(m.Time.Minute)
	ep[5] = float64(m.Time.Second) + float64(m.Time.Millisecond)*1e-3
	time := Utc2GpsT(Epoch2Time(ep[:]))
	tt := TimeDiff(time, sol.Time)
	if tt < -43200.0 {
		sol.Time = TimeAdd(time, 86400.0)
	} else if tt > 43200.0 {
		sol.Time = TimeAdd(time, -86400.0)
	} else {
		sol.Time = time
	}
	pos := [3]float64{m.Latitude * D2R, m.Longitude * D2R,
		m.Altitude + m.Separation}
	Pos2Ecef(pos[:], sol.Rr[:])
	if solq <= 8 {
		sol.Stat = uint8(nmeaSolq[solq])
	} else {
		sol.Stat = SOLQ_NONE
	}
	sol.Ns = uint8(m.NumSatellites)
	sol.Type = 0
	if age, err := strconv.ParseFloat(m.DGPSAge, 64); err == nil {
		sol.Age = float32(age)
	}
	return 1
}

/* DecodeNmea decodes one NMEA sentence into the solution. RMC and ZDA only
 * update the solution time (return 2), GGA yields a position (return 1) */
func (sol *Sol) DecodeNmea(buff string) int {
	Trace(4, "DecodeNmea: buff=%s\n", buff)

	s, err := nmea.Parse(strings.TrimSpace(buff))
	if err != nil {
		Trace(3, "DecodeNmea: parse error %s\n", err.Error())
		return 0
	}
	switch m := s.(type) {
	case nmea.RMC:
		return sol.decodeNmeaRmc(&m)
	case nmea.ZDA:
		return sol.decodeNmeaZda(&m)
	case nmea.GGA:
		return sol.decodeNmeaGga(&m)
	}
	return 0
}

/* split a solution line into trimmed fields */
func solFields(buff, sep string) []string {
	if sep == " " || sep == "\t" {
		return strings.Fields(buff)
	}
	var fields []string
	for _, v := range strings.Split(buff, sep) {
		if v = strings.TrimSpace(v); v != "" {
			fields = append(fields, v)
		}
	}
	return fields
}

/* parse leading numeric fields */
func solNums(fields []string) []float64 {
	var vals []float64
	for _, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			break
		}
		vals = append(vals, v)
	}
	return vals
}

/* decode solution time from leading fields, return remaining fields */
func decodeSolTime(fields []string, opt *SolOpt) (Gtime, []string, bool) {
	var time Gtime

	if len(fields) < 2 {
		return time, nil, false
	}
	if strings.Contains(fields[0], "/") { /* yyyy/mm/dd hh:mm:ss.sss */
		var ep [6]float64
		n1, _ := fmt.Sscanf(fields[0], "%f/%f/%f", &ep[0], &ep[1], &ep[2])
		n2, _ := fmt.Sscanf(fields[1], "%f:%f:%f", &ep[3], &ep[4], &ep[5])
		if n1 < 3 || n2 < 3 {
			return time, nil, false
		}
		if ep[0] < 100.0 {
			ep[0] += 2000.0
		}
		time = Epoch2Time(ep[:])
		if opt.TimeS == TIMES_UTC {
			time = Utc2GpsT(time)
		} else if opt.TimeS == TIMES_JST {
			time = Utc2GpsT(TimeAdd(time, -9*3600.0))
		}
		return time, fields[2:], true
	}
	/* wwww ssssss.sss */
	week, err1 := strconv.Atoi(fields[0])
	tow, err2 := strconv.ParseFloat(fields[1], 64)
	if err1 != nil || err2 != nil || week < 10 {
		return time, nil, false
	}
	return GpsT2Time(week, tow), fields[2:], true
}

/* decode x/y/z-ecef solution fields */
func (sol *Sol) decodeSolXyz(vals []float64, opt *SolOpt) int {
	n := len(vals)
	if n < 3 {
		return 0
	}
	i := 0
	for j := 0; j < 3; j++ {
		sol.Rr[j] = vals[i]
		i++
	}
	sol.Type = 0
	if i < n {
		sol.Stat = uint8(vals[i])
		i++
	}
	if i < n {
		sol.Ns = uint8(vals[i])
		i++
	}
	if i+3 <= n {
		for j := 0; j < 3; j++ {
			sol.Qr[j] = float32(vals[i] * vals[i])
			i++
		}
	}
	if i+2 < n { /* off-diagonal terms present */
		for j := 0; j < 3; j++ {
			v := vals[i]
			sol.Qr[3+j] = float32(math.Copysign(v*v, v))
			i++
		}
	}
	if i < n {
		sol.Age = float32(vals[i])
		i++
	}
	if i < n {
		sol.Ratio = float32(vals[i])
		i++
	}
	if opt.OutVel != 0 && i+3 <= n {
		for j := 0; j < 3; j++ {
			sol.Rr[3+j] = vals[i]
			i++
		}
		if i+3 <= n {
			for j := 0; j < 3; j++ {
				sol.Qv[j] = float32(vals[i] * vals[i])
				i++
			}
		}
		if i+3 <= n {
			for j := 0; j < 3; j++ {
				v := vals[i]
				sol.Qv[3+j] = float32(math.Copysign(v*v, v))
				i++
			}
		}
	}
	if sol.Stat > MAXSOLQ {
		sol.Stat = SOLQ_NONE
	}
	return 1
}

/* decode lat/lon/height solution fields */
func (sol *Sol) decodeSolLatLonHeight(vals []float64, opt *SolOpt) int {
	var pos [3]float64
	n := len(vals)
	i := 0

	if opt.DegF == 1 {
		if n < 7 {
			return 0
		}
		pos[0] = Dms2Deg(vals[0:3]) * D2R
		pos[1] = Dms2Deg(vals[3:6]) * D2R
		pos[2] = vals[6]
		i = 7
	} else {
		if n < 3 {
			return 0
		}
		pos[0] = vals[0] * D2R
		pos[1] = vals[1] * D2R
		pos[2] = vals[2]
		i = 3
	}
	if opt.Height == 1 { /* geodetic height */
		pos[2] += GeoidH(pos[:])
	}
	Pos2Ecef(pos[:], sol.Rr[:])
	sol.Type = 0
	if i < n {
		sol.Stat = uint8(vals[i])
		i++
	}
	if i < n {
		sol.Ns = uint8(vals[i])
		i++
	}
	var Q, P [9]float64
	if i+3 <= n { /* sdn sde sdu */
		Q[4] = vals[i] * vals[i]
		Q[0] = vals[i+1] * vals[i+1]
		Q[8] = vals[i+2] * vals[i+2]
		i += 3
	}
	if i+2 < n { /* sdne sdeu sdun */
		v := vals[i]
		Q[1], Q[3] = math.Copysign(v*v, v), math.Copysign(v*v, v)
		v = vals[i+1]
		Q[2], Q[6] = math.Copysign(v*v, v), math.Copysign(v*v, v)
		v = vals[i+2]
		Q[5], Q[7] = math.Copysign(v*v, v), math.Copysign(v*v, v)
		i += 3
	}
	Cov2Ecef(pos[:], Q[:], P[:])
	Cov2Sol(P[:], sol)
	if i < n {
		sol.Age = float32(vals[i])
		i++
	}
	if i < n {
		sol.Ratio = float32(vals[i])
		i++
	}
	if opt.OutVel != 0 && i+3 <= n { /* vn ve vu */
		venu := [3]float64{vals[i+1], vals[i], vals[i+2]}
		Enu2Ecef(pos[:], venu[:], sol.Rr[3:])
		i += 3
		var Qv, Pv [9]float64
		if i+3 <= n {
			Qv[4] = vals[i] * vals[i]
			Qv[0] = vals[i+1] * vals[i+1]
			Qv[8] = vals[i+2] * vals[i+2]
			i += 3
		}
		if i+3 <= n {
			v := vals[i]
			Qv[1], Qv[3] = math.Copysign(v*v, v), math.Copysign(v*v, v)
			v = vals[i+1]
			Qv[2], Qv[6] = math.Copysign(v*v, v), math.Copysign(v*v, v)
			v = vals[i+2]
			Qv[5], Qv[7] = math.Copysign(v*v, v), math.Copysign(v*v, v)
		}
		Cov2Ecef(pos[:], Qv[:], Pv[:])
		CovarianceVel2Sol(Pv[:], sol)
	}
	if sol.Stat > MAXSOLQ {
		sol.Stat = SOLQ_NONE
	}
	return 1
}

/* decode e/n/u-baseline solution fields */
func (sol *Sol) decodeSolEnu(vals []float64) int {
	n := len(vals)
	if n < 3 {
		return 0
	}
	i := 0
	for j := 0; j < 3; j++ {
		sol.Rr[j] = vals[i]
		i++
	}
	sol.Type = 1 /* enu baseline */
	if i < n {
		sol.Stat = uint8(vals[i])
		i++
	}
	if i < n {
		sol.Ns = uint8(vals[i])
		i++
	}
	if i+3 <= n {
		for j := 0; j < 3; j++ {
			sol.Qr[j] = float32(vals[i] * vals[i])
			i++
		}
	}
	if i+2 < n {
		for j := 0; j < 3; j++ {
			v := vals[i]
			sol.Qr[3+j] = float32(math.Copysign(v*v, v))
			i++
		}
	}
	if i < n {
		sol.Age = float32(vals[i])
		i++
	}
	if i < n {
		sol.Ratio = float32(vals[i])
	}
	if sol.Stat > MAXSOLQ {
		sol.Stat = SOLQ_NONE
	}
	return 1
}

/* decode $POS record of solution status */
func (sol *Sol) decodeSolStatPos(buff string) int {
	var (
		week, solq int
		tow        float64
		rr         [3]float64
	)
	n, _ := fmt.Sscanf(buff, "$POS,%d,%f,%d,%f,%f,%f",
		&week, &tow, &solq, &rr[0], &rr[1], &rr[2])
	if n < 6 {
		return 0
	}
	sol.Time = GpsT2Time(week, tow)
	for i := 0; i < 3; i++ {
		sol.Rr[i] = rr[i]
	}
	sol.Stat = uint8(solq)
	sol.Ns = 0
	sol.Type = 0
	return 1
}

/* decode solution position line */
func (sol *Sol) decodeSolPos(buff string, opt *SolOpt) int {
	fields := solFields(buff, opt2sep(opt))
	time, rest, ok := decodeSolTime(fields, opt)
	if !ok {
		Trace(3, "decodeSolPos: time error buff=%s\n", buff)
		return 0
	}
	vals := solNums(rest)
	sol.Time = time

	switch opt.Posf {
	case SOLF_XYZ:
		return sol.decodeSolXyz(vals, opt)
	case SOLF_ENU:
		return sol.decodeSolEnu(vals)
	default: /* SOLF_LLH */
		return sol.decodeSolLatLonHeight(vals, opt)
	}
}

/* DecodeRefPos decodes a reference station position line ("lat lon hgt" or
 * "x y z" per solution format) */
func DecodeRefPos(buff string, opt *SolOpt, rb []float64) int {
	vals := solNums(solFields(buff, opt2sep(opt)))

	if opt.Posf == SOLF_XYZ {
		if len(vals) < 3 {
			return 0
		}
		for i := 0; i < 3; i++ {
			rb[i] = vals[i]
		}
		return 1
	}
	var pos [3]float64
	if opt.DegF == 1 {
		if len(vals) < 7 {
			return 0
		}
		pos[0] = Dms2Deg(vals[0:3]) * D2R
		pos[1] = Dms2Deg(vals[3:6]) * D2R
		pos[2] = vals[6]
	} else {
		if len(vals) < 3 {
			return 0
		}
		pos[0] = vals[0] * D2R
		pos[1] = vals[1] * D2R
		pos[2] = vals[2]
	}
	Pos2Ecef(pos[:], rb)
	return 1
}

/* DecodeSol decodes one solution message (0:no solution,1:solution,
 * 2:time update only) */
func DecodeSol(buff []byte, opt *SolOpt, sol *Sol) int {
	s := string(buff)

	Trace(4, "DecodeSol: buff=%s\n", s)

	if strings.HasPrefix(s, COMMENTH) { /* comment line */
		return 0
	}
	if TestNmea(s) {
		return sol.DecodeNmea(s)
	}
	if strings.HasPrefix(s, "$POS") {
		return sol.decodeSolStatPos(s)
	}
	if strings.HasPrefix(s, "$") { /* other status records */
		return 0
	}
	return sol.decodeSolPos(s, opt)
}

/* DecodeSolOpt updates solution options from a header comment line */
func DecodeSolOpt(buff string, opt *SolOpt) {
	if !strings.HasPrefix(buff, COMMENTH) {
		return
	}
	switch {
	case strings.Contains(buff, "x-ecef(m)"):
		opt.Posf = SOLF_XYZ
	case strings.Contains(buff, "latitude(d'\")"):
		opt.Posf = SOLF_LLH
		opt.DegF = 1
	case strings.Contains(buff, "latitude(deg)"):
		opt.Posf = SOLF_LLH
		opt.DegF = 0
	case strings.Contains(buff, "e-baseline(m)"):
		opt.Posf = SOLF_ENU
	}
	if strings.Contains(buff, "UTC") {
		opt.TimeS = TIMES_UTC
	} else if strings.Contains(buff, "JST") {
		opt.TimeS = TIMES_JST
	} else if strings.Contains(buff, "GPST") {
		opt.TimeS = TIMES_GPST
	}
	if strings.Contains(buff, "week") {
		opt.TimeF = 0
	} else if strings.Contains(buff, "yyyy/mm/dd") {
		opt.TimeF = 1
	}
	if strings.Contains(buff, "(geodetic)") {
		opt.Height = 1
	} else if strings.Contains(buff, "(ellipsoidal)") {
		opt.Height = 0
	}
	if strings.Contains(buff, "vn(m/s)") || strings.Contains(buff, "vx(m/s)") {
		opt.OutVel = 1
	}
}

/* InputSol feeds one byte of a solution stream into the buffer
 * (1:solution added,0:no solution,-1:disconnect received) */
func InputSol(data uint8, ts, te Gtime, tint float64, qflag int,
	opt *SolOpt, solbuf *SolBuf) int {
	var sol Sol

	Trace(5, "InputSol: data=0x%02x\n", data)

	sol.Time = solbuf.Time

	/* sync on header or binary garbage */
	if data == '$' || ((data < 0x20 || data > 0x7e) && data != '\r' && data != '\n') {
		solbuf.buff = solbuf.buff[:0]
	}
	solbuf.buff = append(solbuf.buff, data)
	if data != '\n' && len(solbuf.buff) < MAXSOLMSG {
		return 0
	}
	buff := string(solbuf.buff)
	solbuf.buff = solbuf.buff[:0]

	if strings.Contains(buff, MSG_DISCONN) {
		Trace(3, "InputSol: disconnect received\n")
		return -1
	}
	stat := DecodeSol([]byte(buff), opt, &sol)
	if stat > 0 {
		solbuf.Time = sol.Time
	}
	if stat != 1 || (qflag > 0 && int(sol.Stat) != qflag) ||
		ScreenTime(sol.Time, ts, te, tint) == 0 {
		return 0
	}
	return AddSol(solbuf, &sol)
}

/* AddSol appends a solution to the buffer (1:ok,0:buffer full) */
func AddSol(solbuf *SolBuf, sol *Sol) int {
	Trace(4, "AddSol:\n")

	if solbuf.Cyclic > 0 { /* ring buffer */
		if solbuf.Nmax <= 1 {
			return 0
		}
		solbuf.Data[solbuf.End] = *sol
		solbuf.End = (solbuf.End + 1) % solbuf.Nmax
		if solbuf.Start == solbuf.End {
			solbuf.Start = (solbuf.Start + 1) % solbuf.Nmax
		} else {
			solbuf.N++
		}
		return 1
	}
	if solbuf.N >= solbuf.Nmax {
		if solbuf.Nmax == 0 {
			solbuf.Nmax = 8192
		} else {
			solbuf.Nmax *= 2
		}
		data := make([]Sol, solbuf.Nmax)
		copy(data, solbuf.Data)
		solbuf.Data = data
	}
	solbuf.Data[solbuf.N] = *sol
	solbuf.N++
	return 1
}

/* GetSol returns the i-th buffered solution or nil */
func GetSol(solbuf *SolBuf, i int) *Sol {
	if i < 0 || solbuf.N <= i {
		return nil
	}
	if solbuf.Cyclic > 0 {
		return &solbuf.Data[(solbuf.Start+i)%solbuf.Nmax]
	}
	return &solbuf.Data[i]
}

/* InitSolBuf initializes the solution buffer. cyclic>0 allocates a fixed
 * ring of nmax entries, otherwise the buffer grows on demand */
func InitSolBuf(solbuf *SolBuf, cyclic, nmax int) {
	Trace(3, "InitSolBuf: cyclic=%d nmax=%d\n", cyclic, nmax)

	*solbuf = SolBuf{Cyclic: cyclic}
	if cyclic > 0 {
		if nmax <= 2 {
			nmax = 2
		}
		solbuf.Data = make([]Sol, nmax)
		solbuf.Nmax = nmax
	}
}

/* FreeSolBuf releases the solution buffer */
func FreeSolBuf(solbuf *SolBuf) {
	*solbuf = SolBuf{}
}

/* ReadSolData reads solutions from a stream into the buffer */
func ReadSolData(fp io.Reader, ts, te Gtime, tint float64, qflag int,
	opt *SolOpt, solbuf *SolBuf) int {
	n := 0
	scanner := bufio.NewScanner(fp)
	scanner.Buffer(make([]byte, MAXSOLMSG+2), MAXSOLMSG+2)

	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, COMMENTH) {
			DecodeSolOpt(line, opt)
			continue
		}
		for _, b := range []byte(line + "\n") {
			if InputSol(b, ts, te, tint, qflag, opt, solbuf) == 1 {
				n++
			}
		}
	}
	if n > 0 {
		return 1
	}
	return 0
}

/* sort solutions by time */
func sortSolBuf(solbuf *SolBuf) int {
	Trace(4, "sortSolBuf: n=%d\n", solbuf.N)

	if solbuf.N <= 0 {
		return 0
	}
	sort.SliceStable(solbuf.Data[:solbuf.N], func(i, j int) bool {
		return TimeDiff(solbuf.Data[i].Time, solbuf.Data[j].Time) < 0.0
	})
	solbuf.Start = 0
	solbuf.End = solbuf.N - 1
	solbuf.Time = solbuf.Data[solbuf.N-1].Time
	return 1
}

/* ReadSolt reads solution files with time screening */
func ReadSolt(files []string, ts, te Gtime, tint float64, qflag int,
	solbuf *SolBuf) int {
	Trace(3, "ReadSolt: nfile=%d\n", len(files))

	InitSolBuf(solbuf, 0, 0)
	opt := DefaultSolOpt()

	for _, file := range files {
		fp, err := os.Open(file)
		if err != nil {
			Trace(2, "ReadSolt: file open error %s\n", file)
			continue
		}
		ReadSolData(fp, ts, te, tint, qflag, &opt, solbuf)
		fp.Close()
	}
	return sortSolBuf(solbuf)
}

/* ReadSol reads solution files */
func ReadSol(files []string, solbuf *SolBuf) int {
	var t0 Gtime
	return ReadSolt(files, t0, t0, 0.0, 0, solbuf)
}

/* decode $SAT record of solution status */
func decodeSolStat(buff string, stat *SolStat) int {
	var (
		week, frq, vsat, fix, slip, lock, outc, slipc, rejc int
		tow, az, el, resp, resc, snr                        float64
		id                                                  string
	)
	if !strings.HasPrefix(buff, "$SAT") {
		return 0
	}
	b := strings.ReplaceAll(buff, ",", " ")
	n, _ := fmt.Sscanf(b, "$SAT %d %f %s %d %f %f %f %f %d %f %d %d %d %d %d %d",
		&week, &tow, &id, &frq, &az, &el, &resp, &resc, &vsat, &snr, &fix,
		&slip, &lock, &outc, &slipc, &rejc)
	if n < 15 {
		Trace(3, "decodeSolStat: error decode %s\n", buff)
		return 0
	}
	sat := SatId2No(id)
	if sat <= 0 {
		Trace(3, "decodeSolStat: satellite error sat=%s\n", id)
		return 0
	}
	*stat = SolStat{
		Time: GpsT2Time(week, tow),
		Sat:  uint8(sat), Frq: uint8(frq),
		Az: float32(az * D2R), El: float32(el * D2R),
		Resp: float32(resp), Resc: float32(resc),
		Flag: uint8((vsat << 5) + (slip << 3) + fix),
		Snr:  uint16(snr/SNR_UNIT + 0.5),
		Lock: uint16(lock), Outc: uint16(outc),
		Slipc: uint16(slipc), Rejc: uint16(rejc)}
	return 1
}

/* AddSolStat appends a status record to the buffer */
func AddSolStat(statbuf *SolStatBuf, stat *SolStat) {
	statbuf.Data = append(statbuf.Data, *stat)
}

/* ReadSolStatData reads solution status records from a stream */
func ReadSolStatData(fp io.Reader, ts, te Gtime, statbuf *SolStatBuf) int {
	var stat SolStat
	n := 0
	scanner := bufio.NewScanner(fp)
	scanner.Buffer(make([]byte, MAXSOLMSG+2), MAXSOLMSG+2)

	for scanner.Scan() {
		if decodeSolStat(scanner.Text(), &stat) == 0 {
			continue
		}
		if ScreenTime(stat.Time, ts, te, 0.0) == 0 {
			continue
		}
		AddSolStat(statbuf, &stat)
		n++
	}
	if n > 0 {
		return 1
	}
	return 0
}

/* ReadSolStatt reads solution status files with time screening */
func ReadSolStatt(files []string, ts, te Gtime, statbuf *SolStatBuf) int {
	Trace(3, "ReadSolStatt: nfile=%d\n", len(files))

	statbuf.Data = nil
	for _, file := range files {
		fp, err := os.Open(file)
		if err != nil {
			Trace(2, "ReadSolStatt: file open error %s\n", file)
			continue
		}
		ReadSolStatData(fp, ts, te, statbuf)
		fp.Close()
	}
	sort.SliceStable(statbuf.Data, func(i, j int) bool {
		tt := TimeDiff(statbuf.Data[i].Time, statbuf.Data[j].Time)
		if tt != 0.0 {
			return tt < 0.0
		}
		if statbuf.Data[i].Sat != statbuf.Data[j].Sat {
			return statbuf.Data[i].Sat < statbuf.Data[j].Sat
		}
		return statbuf.Data[i].Frq < statbuf.Data[j].Frq
	})
	if len(statbuf.Data) > 0 {
		return 1
	}
	return 0
}

/* ReadSolStat reads solution status files */
func ReadSolStat(files []string, statbuf *SolStatBuf) int {
	var t0 Gtime
	return ReadSolStatt(files, t0, t0, statbuf)
}

/* max position std-dev of a solution (m) */
func solStd(sol *Sol) float64 {
	v := 0.0
	for i := 0; i < 3; i++ {
		if float64(sol.Qr[i]) > v {
			v = float64(sol.Qr[i])
		}
	}
	return math.Sqrt(v)
}

/* append an x/y/z-ecef solution line */
func OutEcef(buff *string, s string, sol *Sol, opt *SolOpt) int {
	sep := opt2sep(opt)

	p := fmt.Sprintf("%s%s%14.4f%s%14.4f%s%14.4f%s%3d%s%3d%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%6.2f%s%6.1f",
		s, sep, sol.Rr[0], sep, sol.Rr[1], sep, sol.Rr[2], sep, sol.Stat, sep,
		sol.Ns, sep,
		math.Sqrt(float64(sol.Qr[0])), sep, math.Sqrt(float64(sol.Qr[1])), sep,
		math.Sqrt(float64(sol.Qr[2])), sep, sqvar(float64(sol.Qr[3])), sep,
		sqvar(float64(sol.Qr[4])), sep, sqvar(float64(sol.Qr[5])), sep,
		sol.Age, sep, sol.Ratio)

	if opt.OutVel != 0 {
		p += fmt.Sprintf("%s%10.5f%s%10.5f%s%10.5f%s%9.5f%s%8.5f%s%8.5f%s%8.5f%s%8.5f%s%8.5f",
			sep, sol.Rr[3], sep, sol.Rr[4], sep, sol.Rr[5], sep,
			math.Sqrt(float64(sol.Qv[0])), sep, math.Sqrt(float64(sol.Qv[1])), sep,
			math.Sqrt(float64(sol.Qv[2])), sep, sqvar(float64(sol.Qv[3])), sep,
			sqvar(float64(sol.Qv[4])), sep, sqvar(float64(sol.Qv[5])))
	}
	p += "\n"
	*buff += p
	return len(p)
}

/* append a lat/lon/height solution line */
func OutSolPos(buff *string, s string, sol *Sol, opt *SolOpt) int {
	var pos [3]float64
	var P, Q [9]float64
	sep := opt2sep(opt)

	Ecef2Pos(sol.Rr[:], pos[:])
	Sol2Cov(sol, P[:])
	Cov2Enu(pos[:], P[:], Q[:])
	if opt.Height == 1 { /* geodetic height */
		pos[2] -= GeoidH(pos[:])
	}
	p := s
	if opt.DegF != 0 {
		var dms1, dms2 [3]float64
		Deg2Dms(pos[0]*R2D, dms1[:], 5)
		Deg2Dms(pos[1]*R2D, dms2[:], 5)
		p += fmt.Sprintf("%s%4.0f%s%02.0f%s%08.5f%s%4.0f%s%02.0f%s%08.5f",
			sep, dms1[0], sep, dms1[1], sep, dms1[2], sep, dms2[0], sep,
			dms2[1], sep, dms2[2])
	} else {
		p += fmt.Sprintf("%s%14.9f%s%14.9f", sep, pos[0]*R2D, sep, pos[1]*R2D)
	}
	p += fmt.Sprintf("%s%10.4f%s%3d%s%3d%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%6.2f%s%6.1f",
		sep, pos[2], sep, sol.Stat, sep, sol.Ns, sep,
		math.Sqrt(Q[4]), sep, math.Sqrt(Q[0]), sep, math.Sqrt(Q[8]), sep,
		sqvar(Q[1]), sep, sqvar(Q[2]), sep, sqvar(Q[5]), sep,
		sol.Age, sep, sol.Ratio)

	if opt.OutVel != 0 {
		var vel [3]float64
		var Pv, Qv [9]float64
		Ecef2Enu(pos[:], sol.Rr[3:], vel[:])
		Sol2CovarianceVel(sol, Pv[:])
		Cov2Enu(pos[:], Pv[:], Qv[:])
		p += fmt.Sprintf("%s%10.5f%s%10.5f%s%10.5f%s%9.5f%s%8.5f%s%8.5f%s%8.5f%s%8.5f%s%8.5f",
			sep, vel[1], sep, vel[0], sep, vel[2], sep,
			math.Sqrt(Qv[4]), sep, math.Sqrt(Qv[0]), sep, math.Sqrt(Qv[8]), sep,
			sqvar(Qv[1]), sep, sqvar(Qv[2]), sep, sqvar(Qv[5]))
	}
	p += "\n"
	*buff += p
	return len(p)
}

/* append an e/n/u-baseline solution line */
func OutSolEnu(buff *string, s string, sol *Sol, rb []float64, opt *SolOpt) int {
	var pos, rr, enu [3]float64
	var P, Q [9]float64
	sep := opt2sep(opt)

	for i := 0; i < 3; i++ {
		rr[i] = sol.Rr[i] - rb[i]
	}
	Ecef2Pos(rb, pos[:])
	Sol2Cov(sol, P[:])
	Cov2Enu(pos[:], P[:], Q[:])
	Ecef2Enu(pos[:], rr[:], enu[:])

	p := fmt.Sprintf("%s%s%14.4f%s%14.4f%s%14.4f%s%3d%s%3d%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%8.4f%s%6.2f%s%6.1f\n",
		s, sep, enu[0], sep, enu[1], sep, enu[2], sep, sol.Stat, sep, sol.Ns,
		sep,
		math.Sqrt(Q[0]), sep, math.Sqrt(Q[4]), sep, math.Sqrt(Q[8]), sep,
		sqvar(Q[1]), sep, sqvar(Q[5]), sep, sqvar(Q[2]), sep,
		sol.Age, sep, sol.Ratio)
	*buff += p
	return len(p)
}

/* append NMEA checksum and line terminator */
func nmeaCheckSum(s string) string {
	var sum uint8
	for i := 1; i < len(s); i++ {
		sum ^= s[i]
	}
	return fmt.Sprintf("%s*%02X\r\n", s, sum)
}

/* OutSolNmeaRmc appends an NMEA RMC sentence */
func (sol *Sol) OutSolNmeaRmc(buff *string) int {
	Trace(4, "OutSolNmeaRmc:\n")

	if sol.Stat <= SOLQ_NONE {
		p := nmeaCheckSum(fmt.Sprintf("$%sRMC,,V,,,,,,,,,,N", NMEA_TID))
		*buff += p
		return len(p)
	}
	time := GpsT2Utc(sol.Time)
	if time.Sec >= 0.995 {
		time.Time++
		time.Sec = 0.0
	}
	var ep [6]float64
	var pos, enu, dms1, dms2 [3]float64
	Time2Epoch(time, ep[:])
	Ecef2Pos(sol.Rr[:], pos[:])
	Ecef2Enu(pos[:], sol.Rr[3:], enu[:])
	vel := Norm(enu[:], 3)
	var dir float64
	if vel >= 1.0 {
		dir = math.Atan2(enu[0], enu[1]) * R2D
		if dir < 0.0 {
			dir += 360.0
		}
		nmeaDirp = dir
	} else {
		dir = nmeaDirp
	}
	Deg2Dms(math.Abs(pos[0])*R2D, dms1[:], 7)
	Deg2Dms(math.Abs(pos[1])*R2D, dms2[:], 7)

	ns, ew := "N", "E"
	if pos[0] < 0.0 {
		ns = "S"
	}
	if pos[1] < 0.0 {
		ew = "W"
	}
	mode := "A"
	switch sol.Stat {
	case SOLQ_DGPS, SOLQ_SBAS:
		mode = "D"
	case SOLQ_FLOAT, SOLQ_FIX:
		mode = "R"
	case SOLQ_PPP:
		mode = "P"
	}
	p := nmeaCheckSum(fmt.Sprintf(
		"$%sRMC,%02.0f%02.0f%05.2f,A,%02.0f%010.7f,%s,%03.0f%010.7f,%s,%4.2f,%4.2f,%02.0f%02.0f%02.0f,,,%s",
		NMEA_TID, ep[3], ep[4], ep[5],
		dms1[0], dms1[1]+dms1[2]/60.0, ns,
		dms2[0], dms2[1]+dms2[2]/60.0, ew,
		vel/KNOT2M, dir, ep[2], ep[1], math.Mod(ep[0], 100.0), mode))
	*buff += p
	return len(p)
}

/* OutSolNmeaGga appends an NMEA GGA sentence */
func (sol *Sol) OutSolNmeaGga(buff *string) int {
	Trace(4, "OutSolNmeaGga:\n")

	if sol.Stat <= SOLQ_NONE {
		p := nmeaCheckSum(fmt.Sprintf("$%sGGA,,,,,,,,,,,,,,", NMEA_TID))
		*buff += p
		return len(p)
	}
	solq := 0
	for i := 0; i <= 8; i++ {
		if nmeaSolq[i] == int(sol.Stat) {
			solq = i
			break
		}
	}
	time := GpsT2Utc(sol.Time)
	if time.Sec >= 0.995 {
		time.Time++
		time.Sec = 0.0
	}
	var ep [6]float64
	var pos, dms1, dms2 [3]float64
	Time2Epoch(time, ep[:])
	Ecef2Pos(sol.Rr[:], pos[:])
	h := GeoidH(pos[:])
	Deg2Dms(math.Abs(pos[0])*R2D, dms1[:], 7)
	Deg2Dms(math.Abs(pos[1])*R2D, dms2[:], 7)

	ns, ew := "N", "E"
	if pos[0] < 0.0 {
		ns = "S"
	}
	if pos[1] < 0.0 {
		ew = "W"
	}
	dop := 1.0
	p := nmeaCheckSum(fmt.Sprintf(
		"$%sGGA,%02.0f%02.0f%05.2f,%02.0f%010.7f,%s,%03.0f%010.7f,%s,%d,%02d,%.1f,%.3f,M,%.3f,M,%.1f,",
		NMEA_TID, ep[3], ep[4], ep[5],
		dms1[0], dms1[1]+dms1[2]/60.0, ns,
		dms2[0], dms2[1]+dms2[2]/60.0, ew,
		solq, sol.Ns, dop, pos[2]-h, h, sol.Age))
	*buff += p
	return len(p)
}

/* per-system NMEA satellite id */
func nmeaSatId(sys, prn int) int {
	switch sys {
	case SYS_SBS:
		return prn - 87 /* 120-158 -> 33-71 */
	case SYS_QZS:
		return prn - 192 /* 193-202 -> 1-10 */
	}
	return prn
}

/* per-system NMEA talker id */
func nmeaTalker(sys int) string {
	switch sys {
	case SYS_GLO:
		return "GL"
	case SYS_GAL:
		return "GA"
	case SYS_CMP:
		return "GB"
	case SYS_QZS:
		return "GQ"
	}
	return "GP"
}

/* OutSolNmeaGsa appends NMEA GSA sentences, one per constellation */
func (sol *Sol) OutSolNmeaGsa(buff *string, ssat []SSat) int {
	Trace(4, "OutSolNmeaGsa:\n")

	if sol.Stat <= SOLQ_NONE {
		p := nmeaCheckSum(fmt.Sprintf("$%sGSA,A,1,,,,,,,,,,,,,,,", NMEA_TID))
		*buff += p
		return len(p)
	}
	n := 0
	for _, sys := range []int{SYS_GPS, SYS_GLO, SYS_GAL, SYS_CMP, SYS_QZS} {
		var prns []int
		var azel []float64
		for sat := 1; sat <= MAXSAT && len(prns) < 12; sat++ {
			if ssat[sat-1].Vs == 0 || ssat[sat-1].Azel[1] <= 0.0 {
				continue
			}
			var prn int
			s := SatSys(sat, &prn)
			if s != sys && !(sys == SYS_GPS && s == SYS_SBS) {
				continue
			}
			prns = append(prns, nmeaSatId(s, prn))
			azel = append(azel, ssat[sat-1].Azel[0], ssat[sat-1].Azel[1])
		}
		if len(prns) == 0 {
			continue
		}
		s := fmt.Sprintf("$%sGSA,A,%d", nmeaTalker(sys), 3)
		for i := 0; i < 12; i++ {
			if i < len(prns) {
				s += fmt.Sprintf(",%02d", prns[i])
			} else {
				s += ","
			}
		}
		var dop [4]float64
		Dops(len(prns), azel, 0.0, dop[:])
		s += fmt.Sprintf(",%3.1f,%3.1f,%3.1f", dop[1], dop[2], dop[3])
		p := nmeaCheckSum(s)
		*buff += p
		n += len(p)
	}
	return n
}

/* OutSolNmeaGsv appends NMEA GSV sentences, one group per constellation */
func (sol *Sol) OutSolNmeaGsv(buff *string, ssat []SSat) int {
	Trace(4, "OutSolNmeaGsv:\n")

	if sol.Stat <= SOLQ_NONE {
		p := nmeaCheckSum(fmt.Sprintf("$%sGSV,1,1,0,,,,,,,,,,,,,,,,", NMEA_TID))
		*buff += p
		return len(p)
	}
	n := 0
	for _, sys := range []int{SYS_GPS, SYS_GLO, SYS_GAL, SYS_CMP, SYS_QZS} {
		var sats []int
		for sat := 1; sat <= MAXSAT; sat++ {
			if ssat[sat-1].Azel[1] <= 0.0 {
				continue
			}
			var prn int
			s := SatSys(sat, &prn)
			if s != sys && !(sys == SYS_GPS && s == SYS_SBS) {
				continue
			}
			sats = append(sats, sat)
		}
		if len(sats) == 0 {
			continue
		}
		nmsg := (len(sats) + 3) / 4
		for i := 0; i < nmsg; i++ {
			s := fmt.Sprintf("$%sGSV,%d,%d,%02d", nmeaTalker(sys), nmsg, i+1,
				len(sats))
			for j := i * 4; j < i*4+4; j++ {
				if j < len(sats) {
					sat := sats[j]
					var prn int
					sy := SatSys(sat, &prn)
					az := ssat[sat-1].Azel[0] * R2D
					if az < 0.0 {
						az += 360.0
					}
					el := ssat[sat-1].Azel[1] * R2D
					snr := float64(ssat[sat-1].Snr[0]) * SNR_UNIT
					s += fmt.Sprintf(",%02d,%02.0f,%03.0f,%02.0f",
						nmeaSatId(sy, prn), el, az, snr)
				} else {
					s += ",,,,"
				}
			}
			s += ",0" /* L1 signal */
			p := nmeaCheckSum(s)
			*buff += p
			n += len(p)
		}
	}
	return n
}

/* OutPrcOpts appends processing options as comment lines */
func OutPrcOpts(buff *string, opt *PrcOpt) int {
	s1 := []string{"Single", "DGPS", "Kinematic", "Static", "Static-Start",
		"Moving-Base", "Fixed", "PPP-Kinematic", "PPP-Static", "PPP-Fixed"}
	s2 := []string{"L1", "L1+2", "L1+2+3", "L1+2+3+4"}
	s3 := []string{"Forward", "Backward", "Combined"}
	s4 := []string{"OFF", "Broadcast", "SBAS", "Iono-Free LC", "Estimate TEC",
		"IONEX TEC", "QZSS Broadcast"}
	s5 := []string{"OFF", "Saastamoinen", "SBAS", "Estimate ZTD",
		"Estimate ZTD+Grad"}
	s6 := []string{"Broadcast", "Precise", "Broadcast+SBAS", "Broadcast+SSR APC",
		"Broadcast+SSR CoM"}
	s7 := []string{"OFF", "Continuous", "Instantaneous", "Fix and Hold"}

	p := fmt.Sprintf("%s program   : %s ver.%s\n", COMMENTH, "GNSSRT", VER_GNSSRT)
	p += fmt.Sprintf("%s pos mode  : %s\n", COMMENTH, s1[opt.Mode])
	p += fmt.Sprintf("%s freqs     : %s\n", COMMENTH, s2[opt.Nf-1])
	if opt.Mode > PMODE_SINGLE {
		p += fmt.Sprintf("%s solution  : %s\n", COMMENTH, s3[opt.SolType])
	}
	p += fmt.Sprintf("%s elev mask : %4.1f deg\n", COMMENTH, opt.Elmin*R2D)
	if opt.Mode > PMODE_SINGLE {
		dyn, tide := "off", "off"
		if opt.Dynamics > 0 {
			dyn = "on"
		}
		if opt.TideCorr > 0 {
			tide = "on"
		}
		p += fmt.Sprintf("%s dynamics  : %s\n", COMMENTH, dyn)
		p += fmt.Sprintf("%s tidecorr  : %s\n", COMMENTH, tide)
	}
	if opt.Mode <= PMODE_FIXED {
		p += fmt.Sprintf("%s ionos opt : %s\n", COMMENTH, s4[opt.IonoOpt])
	}
	p += fmt.Sprintf("%s tropo opt : %s\n", COMMENTH, s5[opt.TropOpt])
	p += fmt.Sprintf("%s ephemeris : %s\n", COMMENTH, s6[opt.SatEph])
	p += fmt.Sprintf("%s navi sys  :", COMMENTH)
	for _, v := range []struct {
		sys  int
		name string
	}{{SYS_GPS, "gps"}, {SYS_GLO, "glonass"}, {SYS_GAL, "galileo"},
		{SYS_QZS, "qzss"}, {SYS_SBS, "sbas"}, {SYS_CMP, "beidou"},
		{SYS_IRN, "navic"}} {
		if opt.NavSys&v.sys > 0 {
			p += " " + v.name
		}
	}
	p += "\n"
	if PMODE_KINEMA <= opt.Mode && opt.Mode <= PMODE_FIXED {
		p += fmt.Sprintf("%s amb res   : %s\n", COMMENTH, s7[opt.ModeAr])
		if opt.NavSys&SYS_GLO > 0 {
			p += fmt.Sprintf("%s amb glo   : %s\n", COMMENTH, s7[opt.GloModeAr])
		}
		if opt.ThresAr[0] > 0.0 {
			p += fmt.Sprintf("%s val thres : %3.1f\n", COMMENTH, opt.ThresAr[0])
		}
	}
	if opt.Mode > PMODE_SINGLE {
		p += fmt.Sprintf("%s antenna1  : %-21s (%7.4f %7.4f %7.4f)\n", COMMENTH,
			opt.AntType[0], opt.AntDel[0][0], opt.AntDel[0][1], opt.AntDel[0][2])
		p += fmt.Sprintf("%s antenna2  : %-21s (%7.4f %7.4f %7.4f)\n", COMMENTH,
			opt.AntType[1], opt.AntDel[1][0], opt.AntDel[1][1], opt.AntDel[1][2])
	}
	*buff += p
	return len(p)
}

/* OutSolHeader appends the solution field header lines */
func OutSolHeader(buff *string, opt *SolOpt) int {
	if opt.Posf == SOLF_NMEA || opt.Posf == SOLF_STAT {
		return 0
	}
	sep := opt2sep(opt)
	timeu := opt.TimeU
	if timeu < 0 {
		timeu = 0
	} else if timeu > 20 {
		timeu = 20
	}
	p := fmt.Sprintf("%s (", COMMENTH)
	switch opt.Posf {
	case SOLF_XYZ:
		p += "x/y/z-ecef=WGS84"
	case SOLF_ENU:
		p += "e/n/u-baseline=WGS84"
	default:
		hgt := "ellipsoidal"
		if opt.Height == 1 {
			hgt = "geodetic"
		}
		p += "lat/lon/height=WGS84/" + hgt
	}
	p += ",Q=1:fix,2:float,3:sbas,4:dgps,5:single,6:ppp,ns=# of satellites)\n"

	tsys := "GPST"
	if opt.TimeS == TIMES_UTC {
		tsys = "UTC"
	} else if opt.TimeS == TIMES_JST {
		tsys = "JST"
	}
	tlen := 16
	if opt.TimeF != 0 {
		tlen = 19
	}
	if timeu > 0 {
		tlen += timeu + 1
	}
	p += fmt.Sprintf("%s  %-*s%s", COMMENTH, tlen-2, tsys, sep)

	switch opt.Posf {
	case SOLF_LLH:
		if opt.DegF != 0 {
			p += fmt.Sprintf("%16s%s%16s", "latitude(d'\")", sep, "longitude(d'\")")
		} else {
			p += fmt.Sprintf("%14s%s%14s", "latitude(deg)", sep, "longitude(deg)")
		}
		p += fmt.Sprintf("%s%10s%s%3s%s%3s%s%8s%s%8s%s%8s%s%8s%s%8s%s%8s%s%6s%s%6s",
			sep, "height(m)", sep, "Q", sep, "ns", sep, "sdn(m)", sep, "sde(m)",
			sep, "sdu(m)", sep, "sdne(m)", sep, "sdeu(m)", sep, "sdun(m)", sep,
			"age(s)", sep, "ratio")
		if opt.OutVel != 0 {
			p += fmt.Sprintf("%s%10s%s%10s%s%10s%s%9s%s%8s%s%8s%s%8s%s%8s%s%8s",
				sep, "vn(m/s)", sep, "ve(m/s)", sep, "vu(m/s)", sep, "sdvn",
				sep, "sdve", sep, "sdvu", sep, "sdvne", sep, "sdveu", sep,
				"sdvun")
		}
	case SOLF_XYZ:
		p += fmt.Sprintf("%14s%s%14s%s%14s%s%3s%s%3s%s%8s%s%8s%s%8s%s%8s%s%8s%s%8s%s%6s%s%6s",
			"x-ecef(m)", sep, "y-ecef(m)", sep, "z-ecef(m)", sep, "Q", sep,
			"ns", sep, "sdx(m)", sep, "sdy(m)", sep, "sdz(m)", sep, "sdxy(m)",
			sep, "sdyz(m)", sep, "sdzx(m)", sep, "age(s)", sep, "ratio")
		if opt.OutVel != 0 {
			p += fmt.Sprintf("%s%10s%s%10s%s%10s%s%9s%s%8s%s%8s%s%8s%s%8s%s%8s",
				sep, "vx(m/s)", sep, "vy(m/s)", sep, "vz(m/s)", sep, "sdvx",
				sep, "sdvy", sep, "sdvz", sep, "sdvxy", sep, "sdvyz", sep,
				"sdvzx")
		}
	case SOLF_ENU:
		p += fmt.Sprintf("%14s%s%14s%s%14s%s%3s%s%3s%s%8s%s%8s%s%8s%s%8s%s%8s%s%8s%s%6s%s%6s",
			"e-baseline(m)", sep, "n-baseline(m)", sep, "u-baseline(m)", sep,
			"Q", sep, "ns", sep, "sde(m)", sep, "sdn(m)", sep, "sdu(m)", sep,
			"sden(m)", sep, "sdnu(m)", sep, "sdue(m)", sep, "age(s)", sep,
			"ratio")
	}
	p += "\n"
	*buff += p
	return len(p)
}

/* OutSols appends one solution in the configured format */
func OutSols(buff *string, sol *Sol, rb []float64, opt *SolOpt) int {
	Trace(4, "OutSols:\n")

	if opt.Posf == SOLF_NMEA {
		var t0 Gtime
		if opt.NmeaIntv[0] < 0.0 {
			return 0
		}
		if opt.NmeaIntv[0] > 0.0 &&
			ScreenTime(sol.Time, t0, t0, opt.NmeaIntv[0]) == 0 {
			return 0
		}
		n := sol.OutSolNmeaRmc(buff)
		n += sol.OutSolNmeaGga(buff)
		return n
	}
	if sol.Stat <= SOLQ_NONE {
		return 0
	}
	if opt.MaxSolStd > 0.0 && solStd(sol) > opt.MaxSolStd {
		return 0
	}
	if opt.Posf == SOLF_ENU && Norm(rb, 3) <= 0.0 {
		return 0
	}
	timeu := opt.TimeU
	if timeu < 0 {
		timeu = 0
	} else if timeu > 20 {
		timeu = 20
	}
	time := sol.Time
	if opt.TimeS >= TIMES_UTC {
		time = GpsT2Utc(time)
	}
	if opt.TimeS == TIMES_JST {
		time = TimeAdd(time, 9*3600.0)
	}
	var s string
	if opt.TimeF != 0 {
		s = Time2Str(time, timeu)
	} else {
		var week int
		gpst := Time2GpsT(time, &week)
		if 86400*7-gpst < 0.5/math.Pow(10.0, float64(timeu)) {
			week++
			gpst = 0.0
		}
		w := 6
		if timeu > 0 {
			w += timeu + 1
		}
		s = fmt.Sprintf("%4d%s%*.*f", week, opt2sep(opt), w, timeu, gpst)
	}
	switch opt.Posf {
	case SOLF_XYZ:
		return OutEcef(buff, s, sol, opt)
	case SOLF_ENU:
		return OutSolEnu(buff, s, sol, rb, opt)
	default:
		return OutSolPos(buff, s, sol, opt)
	}
}

/* OutSolExs appends extended solution sentences (NMEA GSA/GSV) */
func OutSolExs(buff *string, sol *Sol, ssat []SSat, opt *SolOpt) int {
	Trace(4, "OutSolExs:\n")

	if opt.Posf != SOLF_NMEA {
		return 0
	}
	var t0 Gtime
	if opt.NmeaIntv[1] < 0.0 {
		return 0
	}
	if opt.NmeaIntv[1] > 0.0 &&
		ScreenTime(sol.Time, t0, t0, opt.NmeaIntv[1]) == 0 {
		return 0
	}
	n := sol.OutSolNmeaGsa(buff, ssat)
	n += sol.OutSolNmeaGsv(buff, ssat)
	return n
}

/* OutPrcOpt writes processing options to a file */
func OutPrcOpt(fp *os.File, opt *PrcOpt) {
	var buff string
	if OutPrcOpts(&buff, opt) > 0 {
		fp.WriteString(buff)
	}
}

/* OutSolHead writes the solution header to a file */
func OutSolHead(fp *os.File, opt *SolOpt) {
	var buff string
	if OutSolHeader(&buff, opt) > 0 {
		fp.WriteString(buff)
	}
}

/* OutSol writes one solution to a file */
func OutSol(fp *os.File, sol *Sol, rb []float64, opt *SolOpt) {
	var buff string
	if OutSols(&buff, sol, rb, opt) > 0 {
		fp.WriteString(buff)
	}
}

/* OutSolex writes extended solution sentences to a file */
func OutSolex(fp *os.File, sol *Sol, ssat []SSat, opt *SolOpt) {
	var buff string
	if OutSolExs(&buff, sol, ssat, opt) > 0 {
		fp.WriteString(buff)
	}
}
