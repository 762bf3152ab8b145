/*------------------------------------------------------------------------------
* trace.go : leveled debug trace
*
* notes  :
*     trace levels follow the usual convention, 1:error 2:warning 3:info
*     4:debug 5:raw dump. output goes through a logrus logger so apps can
*     share the sink with their own logging
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"os"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	traceLog   = logrus.New()
	traceLock  sync.Mutex
	traceLevel int
	traceFile  string
	traceFp    *os.File
	traceTick  int64
	traceTime  Gtime
)

func init() {
	traceLog.SetOutput(os.Stderr)
	traceLog.SetFormatter(&logrus.TextFormatter{
		DisableTimestamp: true, DisableLevelTruncation: true})
	traceLog.SetLevel(logrus.ErrorLevel)
}

func levelOf(level int) logrus.Level {
	switch {
	case level <= 1:
		return logrus.ErrorLevel
	case level == 2:
		return logrus.WarnLevel
	case level == 3:
		return logrus.InfoLevel
	case level == 4:
		return logrus.DebugLevel
	}
	return logrus.TraceLevel
}

/* swap trace file by interval INT_SWAP_TR */
func traceSwap() {
	time := Utc2GpsT(TimeGet())

	if int(Time2GpsT(time, nil)/INT_SWAP_TR) ==
		int(Time2GpsT(traceTime, nil)/INT_SWAP_TR) {
		return
	}
	traceTime = time

	path := RepPath(traceFile, time, "", "")
	if path == traceFile {
		return
	}
	fp, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
	if err != nil {
		return
	}
	if traceFp != nil {
		traceFp.Close()
	}
	traceFp = fp
	traceLog.SetOutput(traceFp)
}

/* open debug trace, empty file traces to stderr */
func TraceOpen(file string) {
	traceLock.Lock()
	defer traceLock.Unlock()

	time := Utc2GpsT(TimeGet())
	path := RepPath(file, time, "", "")

	if len(path) == 0 {
		traceLog.SetOutput(os.Stderr)
	} else {
		fp, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0644)
		if err != nil {
			return
		}
		traceFp = fp
		traceLog.SetOutput(traceFp)
	}
	traceTick = TickGet()
	traceTime = time
	traceFile = file
}

func TraceClose() {
	traceLock.Lock()
	defer traceLock.Unlock()

	if traceFp != nil {
		traceLog.SetOutput(os.Stderr)
		traceFp.Close()
		traceFp = nil
	}
	traceFile = ""
}

func TraceLevel(level int) {
	traceLock.Lock()
	defer traceLock.Unlock()

	traceLevel = level
	traceLog.SetLevel(levelOf(level))
}

/* output debug trace */
func Trace(level int, format string, v ...interface{}) {
	if level > traceLevel {
		return
	}
	traceLock.Lock()
	traceSwap()
	traceLock.Unlock()
	traceLog.Logf(levelOf(level), format, v...)
}

/* output debug trace with elapsed time tag */
func Tracet(level int, format string, v ...interface{}) {
	if level > traceLevel {
		return
	}
	traceLock.Lock()
	traceSwap()
	tick := traceTick
	traceLock.Unlock()
	traceLog.WithField("t", fmt.Sprintf("%9.3f", float64(TickGet()-tick)/1000.0)).
		Logf(levelOf(level), format, v...)
}

/* dump binary buffer */
func Traceb(level int, p []uint8) {
	if level > traceLevel {
		return
	}
	s := make([]byte, 0, len(p)*3)
	for i, b := range p {
		s = append(s, fmt.Sprintf("%02X", b)...)
		if i%8 == 7 {
			s = append(s, ' ')
		}
	}
	traceLog.Logf(levelOf(level), "%s", s)
}

/* dump observation data */
func TraceObs(level int, obs []ObsD) {
	if level > traceLevel {
		return
	}
	for i := range obs {
		traceLog.Logf(levelOf(level),
			"(%2d) %s %-3s rcv%d %13.3f %13.3f %13.3f %13.3f %d %d %d %d %3.1f %3.1f",
			i+1, Time2Str(obs[i].Time, 3), SatNo2Id(obs[i].Sat), obs[i].Rcv,
			obs[i].L[0], obs[i].L[1], obs[i].P[0], obs[i].P[1],
			obs[i].LLI[0], obs[i].LLI[1], obs[i].Code[0], obs[i].Code[1],
			float64(obs[i].SNR[0])*SNR_UNIT, float64(obs[i].SNR[1])*SNR_UNIT)
	}
}
