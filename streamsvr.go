/*------------------------------------------------------------------------------
* streamsvr.go : stream server functions
*
* references :
*     [1] RTCM Standard 10403.3, Differential GNSS (Global Navigation Satellite
*         Systems) Services - version 3, October 7, 2016
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"math"
	"strings"
	"sync"
)

type StrConv struct { /* stream converter type */
	InputType   int         /* input stream format (STRFMT_???) */
	OutputType  int         /* output stream format (STRFMT_???) */
	NoMsg       int         /* number of output messages */
	MsgType     [32]int     /* output message types */
	OutInterval [32]float64 /* output message intervals (s) */
	Tick        [32]uint32  /* cycle tick of output message */
	EphSat      [32]int     /* satellites of output ephemeris */
	StationSel  int         /* station info selection (0:remote,1:local) */
	RtcmInput   Rtcm        /* rtcm input data buffer */
	RawInput    Raw         /* raw input data buffer */
	RtcmOutput  Rtcm        /* rtcm output data buffer */
}

type StreamSvr struct { /* stream server type */
	State        int            /* server state (0:stop,1:running) */
	Cycle        int            /* server cycle (ms) */
	BuffSize     int            /* input/monitor buffer size (bytes) */
	NmeaCycle    int            /* NMEA request cycle (ms) (0:no) */
	RelayBack    int            /* relay back of output streams (0:no) */
	Npb          int            /* data length in peek buffer (bytes) */
	CmdsPeriodic [16]string     /* periodic commands */
	NmeaPos      [3]float64     /* NMEA request position (ecef) (m) */
	Buff         []uint8        /* input buffer */
	PeekBuf      []uint8        /* peek buffer */
	Tick         int64          /* start tick */
	Streams      [16]Stream     /* input/output streams */
	StreamLog    [16]Stream     /* return log streams */
	NoStream     int            /* number of streams (1 input + (nstr-1) outputs) */
	Converter    [16]*StrConv   /* stream converters */
	Wg           sync.WaitGroup /* server thread */
	Lock         sync.Mutex     /* lock flag */
}

/* test observation data message ---------------------------------------------*/
func isObsMsg(msg int) bool {
	return (1001 <= msg && msg <= 1004) || (1009 <= msg && msg <= 1012) ||
		(1071 <= msg && msg <= 1077) || (1081 <= msg && msg <= 1087) ||
		(1091 <= msg && msg <= 1097) || (1101 <= msg && msg <= 1107) ||
		(1111 <= msg && msg <= 1117) || (1121 <= msg && msg <= 1127) ||
		(1131 <= msg && msg <= 1137)
}

/* test navigation data message ----------------------------------------------*/
func isNavMsg(msg int) bool {
	return msg == 1019 || msg == 1020 || msg == 1041 || msg == 1042 ||
		msg == 1044 || msg == 1045 || msg == 1046 || msg == 63
}

/* test station info message -------------------------------------------------*/
func isStaMsg(msg int) bool {
	return msg == 1005 || msg == 1006 || msg == 1007 || msg == 1008 ||
		msg == 1033 || msg == 1230
}

/* test time interval --------------------------------------------------------*/
func isTint(time Gtime, tint float64) bool {
	if tint <= 0.0 {
		return true
	}
	return math.Mod(Time2GpsT(time, nil)+DTTOL, tint) <= 2.0*DTTOL
}

/* new stream converter --------------------------------------------------------
* generate new stream converter
* args   : itype    I   input stream format  (STRFMT_???)
*          otype    I   output stream format (STRFMT_???)
*          msgs     I   output message types and intervals (, separated)
*          staid    I   station id
*          stasel   I   station info selection (0:remote,1:local)
*          opt      I   rtcm or receiver raw options
* return : stream converter (nil:error)
*-----------------------------------------------------------------------------*/
func NewStreamConv(itype, otype int, msgs string, staid, stasel int, opt string) *StrConv {
	conv := new(StrConv)

	for _, s := range strings.Split(msgs, ",") {
		var (
			msg  int
			tint float64
		)
		if n, _ := fmt.Sscanf(s, "%d(%f)", &msg, &tint); n < 1 {
			continue
		}
		conv.MsgType[conv.NoMsg] = msg
		conv.OutInterval[conv.NoMsg] = tint
		conv.Tick[conv.NoMsg] = uint32(TickGet())
		conv.EphSat[conv.NoMsg] = 0
		conv.NoMsg++
		if conv.NoMsg >= 32 {
			break
		}
	}
	if conv.NoMsg <= 0 {
		return nil
	}
	conv.InputType = itype
	conv.OutputType = otype
	conv.StationSel = stasel
	if conv.RtcmInput.InitRtcm() == 0 || conv.RtcmOutput.InitRtcm() == 0 {
		return nil
	}
	if conv.RawInput.InitRaw(itype) == 0 {
		return nil
	}
	if stasel > 0 {
		conv.RtcmOutput.StaId = staid
	}
	conv.RtcmInput.Opt = fmt.Sprintf("-EPHALL %s", opt)
	conv.RawInput.Opt = fmt.Sprintf("-EPHALL %s", opt)
	return conv
}

/* copy received data from receiver raw to rtcm ------------------------------*/
func (raw *Raw) Raw2Rtcm(out *Rtcm, ret int) {
	var prn int

	out.Time = raw.Time

	switch ret {
	case 1:
		for i := 0; i < raw.ObsData.N(); i++ {
			out.Time = raw.ObsData.Data[i].Time
			out.ObsData.AddObsData(&raw.ObsData.Data[i])

			if sys := SatSys(raw.ObsData.Data[i].Sat, &prn); sys == SYS_GLO &&
				raw.NavData.GloFcn[prn-1] > 0 {
				out.NavData.GloFcn[prn-1] = raw.NavData.GloFcn[prn-1]
			}
		}
	case 2:
		sat := raw.EphSat
		set := raw.EphSet
		switch SatSys(sat, &prn) {
		case SYS_GLO:
			out.NavData.Geph[prn-1] = raw.NavData.Geph[prn-1]
			out.EphSat = sat
			out.EphSet = set
		case SYS_GPS, SYS_GAL, SYS_QZS, SYS_CMP, SYS_IRN:
			out.NavData.Ephs[sat-1+MAXSAT*set] = raw.NavData.Ephs[sat-1+MAXSAT*set]
			out.EphSat = sat
			out.EphSet = set
		}
	case 5:
		out.StaPara = raw.StaData
	case 9:
		out.NavData.UtcGps = raw.NavData.UtcGps
		out.NavData.UtcGlo = raw.NavData.UtcGlo
		out.NavData.UtcGal = raw.NavData.UtcGal
		out.NavData.UtcQzs = raw.NavData.UtcQzs
		out.NavData.UtcCmp = raw.NavData.UtcCmp
		out.NavData.UtcIrn = raw.NavData.UtcIrn
		out.NavData.UtcSbs = raw.NavData.UtcSbs
		out.NavData.IonGps = raw.NavData.IonGps
		out.NavData.IonGal = raw.NavData.IonGal
		out.NavData.IonQzs = raw.NavData.IonQzs
		out.NavData.IonCmp = raw.NavData.IonCmp
		out.NavData.IonIrn = raw.NavData.IonIrn
	}
}

/* copy received data from receiver rtcm to rtcm -----------------------------*/
func (rtcm *Rtcm) Rtcm2Rtcm(out *Rtcm, ret, stasel int) {
	var prn int

	out.Time = rtcm.Time

	if stasel == 0 {
		out.StaId = rtcm.StaId
	}
	switch ret {
	case 1:
		for i := 0; i < rtcm.ObsData.N(); i++ {
			out.ObsData.AddObsData(&rtcm.ObsData.Data[i])

			if sys := SatSys(rtcm.ObsData.Data[i].Sat, &prn); sys == SYS_GLO &&
				rtcm.NavData.GloFcn[prn-1] > 0 {
				out.NavData.GloFcn[prn-1] = rtcm.NavData.GloFcn[prn-1]
			}
		}
	case 2:
		sat := rtcm.EphSat
		set := rtcm.EphSet
		switch SatSys(sat, &prn) {
		case SYS_GLO:
			out.NavData.Geph[prn-1] = rtcm.NavData.Geph[prn-1]
			out.EphSat = sat
			out.EphSet = set
		case SYS_GPS, SYS_GAL, SYS_QZS, SYS_CMP, SYS_IRN:
			out.NavData.Ephs[sat-1+MAXSAT*set] = rtcm.NavData.Ephs[sat-1+MAXSAT*set]
			out.EphSat = sat
			out.EphSet = set
		}
	case 5:
		if stasel == 0 {
			out.StaPara = rtcm.StaPara
		}
	}
}

/* write rtcm3 msm to stream -------------------------------------------------*/
func (str *Stream) WriteRtcm3Msm(out *Rtcm, msg, sync int) {
	var (
		sys              int
		nsat, nsig, nmsg int
		mask             [MAXCODE]int
	)
	switch {
	case 1071 <= msg && msg <= 1077:
		sys = SYS_GPS
	case 1081 <= msg && msg <= 1087:
		sys = SYS_GLO
	case 1091 <= msg && msg <= 1097:
		sys = SYS_GAL
	case 1101 <= msg && msg <= 1107:
		sys = SYS_SBS
	case 1111 <= msg && msg <= 1117:
		sys = SYS_QZS
	case 1121 <= msg && msg <= 1127:
		sys = SYS_CMP
	case 1131 <= msg && msg <= 1137:
		sys = SYS_IRN
	default:
		return
	}
	data := out.ObsData.Data
	nobs := out.ObsData.N()

	/* count number of satellites and signals */
	for i := 0; i < nobs && i < MAXOBS; i++ {
		if SatSys(data[i].Sat, nil) != sys {
			continue
		}
		nsat++
		for j := 0; j < NFREQ+NEXOBS; j++ {
			code := int(data[i].Code[j])
			if code == 0 || mask[code-1] > 0 {
				continue
			}
			mask[code-1] = 1
			nsig++
		}
	}
	if nsig > 64 {
		return
	}
	/* pack data to multiple messages if nsat x nsig > 64 */
	var ns int
	if nsig > 0 {
		ns = 64 / nsig           /* max number of sats in a message */
		nmsg = (nsat-1)/ns + 1   /* number of messages */
	} else {
		ns = 0
		nmsg = 1
	}
	out.ObsData.Data = make([]ObsD, 0, MAXOBS)

	for i, j := 0, 0; i < nmsg; i++ {
		out.ObsData.Data = out.ObsData.Data[:0]

		for n := 0; n < ns && j < nobs && j < MAXOBS; j++ {
			if SatSys(data[j].Sat, nil) != sys {
				continue
			}
			out.ObsData.AddObsData(&data[j])
			n++
		}
		isync := sync
		if i < nmsg-1 {
			isync = 1 /* more messages follow */
		}
		if out.GenRtcm3(msg, 0, isync) > 0 {
			str.StreamWrite(out.Buff[:], out.Nbyte)
		}
	}
	out.ObsData.Data = data
}

/* write obs data messages ---------------------------------------------------*/
func (str *Stream) WriteObs(time Gtime, conv *StrConv) {
	j := -1 /* index of last message */
	for i := 0; i < conv.NoMsg; i++ {
		if isObsMsg(conv.MsgType[i]) && isTint(time, conv.OutInterval[i]) {
			j = i
		}
	}
	for i := 0; i < conv.NoMsg; i++ {
		if !isObsMsg(conv.MsgType[i]) || !isTint(time, conv.OutInterval[i]) {
			continue
		}
		sync := 0
		if i != j {
			sync = 1 /* sync flag: more messages at this epoch */
		}
		/* generate messages */
		switch conv.OutputType {
		case STRFMT_RTCM2:
			if conv.RtcmOutput.GenRtcm2(conv.MsgType[i], sync) == 0 {
				continue
			}
			str.StreamWrite(conv.RtcmOutput.Buff[:], conv.RtcmOutput.Nbyte)
		case STRFMT_RTCM3:
			if conv.MsgType[i] <= 1012 {
				if conv.RtcmOutput.GenRtcm3(conv.MsgType[i], 0, sync) == 0 {
					continue
				}
				str.StreamWrite(conv.RtcmOutput.Buff[:], conv.RtcmOutput.Nbyte)
			} else { /* write rtcm3 msm to stream */
				str.WriteRtcm3Msm(&conv.RtcmOutput, conv.MsgType[i], sync)
			}
		}
	}
	conv.RtcmOutput.ObsData.Data = conv.RtcmOutput.ObsData.Data[:0]
}

/* write nav data messages ---------------------------------------------------*/
func (str *Stream) WriteNav(time Gtime, conv *StrConv) {
	for i := 0; i < conv.NoMsg; i++ {
		if !isNavMsg(conv.MsgType[i]) || conv.OutInterval[i] > 0.0 {
			continue
		}
		/* generate messages */
		switch conv.OutputType {
		case STRFMT_RTCM2:
			if conv.RtcmOutput.GenRtcm2(conv.MsgType[i], 0) == 0 {
				continue
			}
		case STRFMT_RTCM3:
			if conv.RtcmOutput.GenRtcm3(conv.MsgType[i], 0, 0) == 0 {
				continue
			}
		default:
			continue
		}
		/* write messages to stream */
		str.StreamWrite(conv.RtcmOutput.Buff[:], conv.RtcmOutput.Nbyte)
	}
}

/* next ephemeris satellite --------------------------------------------------*/
func (nav *Nav) NextSat(sat, msg int) int {
	var sys, set, p1, p2 int

	switch msg {
	case 1019:
		sys, set, p1, p2 = SYS_GPS, 0, MINPRNGPS, MAXPRNGPS
	case 1020:
		sys, set, p1, p2 = SYS_GLO, 0, MINPRNGLO, MAXPRNGLO
	case 1044:
		sys, set, p1, p2 = SYS_QZS, 0, MINPRNQZS, MAXPRNQZS
	case 1045:
		sys, set, p1, p2 = SYS_GAL, 1, MINPRNGAL, MAXPRNGAL /* F/NAV */
	case 1046:
		sys, set, p1, p2 = SYS_GAL, 0, MINPRNGAL, MAXPRNGAL /* I/NAV */
	case 63, 1042:
		sys, set, p1, p2 = SYS_CMP, 0, MINPRNCMP, MAXPRNCMP
	case 1041:
		sys, set, p1, p2 = SYS_IRN, 0, MINPRNIRN, MAXPRNIRN
	default:
		return 0
	}
	var p0 int
	if SatSys(sat, &p0) != sys {
		p0 = p1 - 1 /* round robin restarts at the first prn */
	}
	/* search next valid ephemeris */
	p := p0 + 1
	if p0 >= p2 {
		p = p1
	}
	for p != p0 {
		sat = SatNo(sys, p)
		if sys == SYS_GLO {
			if nav.Geph[p-1].Sat == sat {
				return sat
			}
		} else if nav.Ephs[sat-1+MAXSAT*set].Sat == sat {
			return sat
		}
		if p >= p2 {
			p = p1
		} else {
			p++
		}
	}
	return 0
}

/* write cyclic nav data messages --------------------------------------------*/
func (str *Stream) WriteNavCycle(conv *StrConv) {
	tick := TickGet()

	for i := 0; i < conv.NoMsg; i++ {
		if !isNavMsg(conv.MsgType[i]) || conv.OutInterval[i] <= 0.0 {
			continue
		}
		/* output cycle */
		tint := int(conv.OutInterval[i] * 1000.0)
		if int(tick-int64(conv.Tick[i])) < tint {
			continue
		}
		conv.Tick[i] = uint32(tick)

		/* next satellite */
		sat := conv.RtcmOutput.NavData.NextSat(conv.EphSat[i], conv.MsgType[i])
		if sat == 0 {
			continue
		}
		conv.RtcmOutput.EphSat, conv.EphSat[i] = sat, sat

		/* generate messages */
		switch conv.OutputType {
		case STRFMT_RTCM2:
			if conv.RtcmOutput.GenRtcm2(conv.MsgType[i], 0) == 0 {
				continue
			}
		case STRFMT_RTCM3:
			if conv.RtcmOutput.GenRtcm3(conv.MsgType[i], 0, 0) == 0 {
				continue
			}
		default:
			continue
		}
		/* write messages to stream */
		str.StreamWrite(conv.RtcmOutput.Buff[:], conv.RtcmOutput.Nbyte)
	}
}

/* write cyclic station info messages ----------------------------------------*/
func (str *Stream) WriteStaCycle(conv *StrConv) {
	tick := TickGet()

	for i := 0; i < conv.NoMsg; i++ {
		if !isStaMsg(conv.MsgType[i]) {
			continue
		}
		/* output cycle */
		tint := 30000 /* default 30 s */
		if conv.OutInterval[i] > 0.0 {
			tint = int(conv.OutInterval[i] * 1000.0)
		}
		if int(tick-int64(conv.Tick[i])) < tint {
			continue
		}
		conv.Tick[i] = uint32(tick)

		/* generate messages */
		switch conv.OutputType {
		case STRFMT_RTCM2:
			if conv.RtcmOutput.GenRtcm2(conv.MsgType[i], 0) == 0 {
				continue
			}
		case STRFMT_RTCM3:
			if conv.RtcmOutput.GenRtcm3(conv.MsgType[i], 0, 0) == 0 {
				continue
			}
		default:
			continue
		}
		/* write messages to stream */
		str.StreamWrite(conv.RtcmOutput.Buff[:], conv.RtcmOutput.Nbyte)
	}
}

/* convert stream --------------------------------------------------------------
* convert input stream data to output messages and write them to stream
* args   : str      IO  output stream
*          conv     IO  stream converter
*          buff     I   input data buffer
*          n        I   input data length (bytes)
* return : none
*-----------------------------------------------------------------------------*/
func (str *Stream) StreamConv(conv *StrConv, buff []uint8, n int) {
	var ret int

	for i := 0; i < n; i++ {

		/* input messages */
		switch conv.InputType {
		case STRFMT_RTCM2:
			ret = conv.RtcmInput.InputRtcm2(buff[i])
			conv.RtcmInput.Rtcm2Rtcm(&conv.RtcmOutput, ret, conv.StationSel)
		case STRFMT_RTCM3:
			ret = conv.RtcmInput.InputRtcm3(buff[i])
			conv.RtcmInput.Rtcm2Rtcm(&conv.RtcmOutput, ret, conv.StationSel)
		default: /* receiver raw messages */
			ret = conv.RawInput.InputRaw(conv.InputType, buff[i])
			conv.RawInput.Raw2Rtcm(&conv.RtcmOutput, ret)
		}
		/* write obs and nav data messages to stream */
		switch ret {
		case 1:
			str.WriteObs(conv.RtcmOutput.Time, conv)
		case 2:
			str.WriteNav(conv.RtcmOutput.Time, conv)
		}
	}
	/* write cyclic nav data and station info messages to stream */
	str.WriteNavCycle(conv)
	str.WriteStaCycle(conv)
}

/* write periodic command to stream ------------------------------------------*/
func periodicCmd(cyc int, cmd string, stream *Stream) {
	for _, msg := range strings.FieldsFunc(cmd, func(r rune) bool {
		return r == '\r' || r == '\n'
	}) {
		period := 0
		if idx := strings.LastIndex(msg, "#"); idx >= 0 {
			fmt.Sscanf(msg[idx:], "# %d", &period)
			msg = strings.TrimRight(msg[:idx], " ")
		}
		if period <= 0 {
			period = 1000
		}
		if len(msg) > 0 && cyc%period == 0 {
			stream.StrSendCmd(msg)
		}
	}
}

/* stream server thread ------------------------------------------------------*/
func streamSvrThread(svr *StreamSvr) {
	var (
		solNmea  Sol
		buff     = make([]uint8, 1024)
	)
	Tracet(3, "streamSvrThread:\n")

	svr.Tick = TickGet()
	tickNmea := svr.Tick - 1000

	for cyc := 0; svr.State > 0; cyc++ {
		tick := TickGet()

		/* read data from input stream */
		for svr.State > 0 {
			n := svr.Streams[0].StreamRead(svr.Buff, svr.BuffSize)
			if n <= 0 {
				break
			}
			/* write data to output streams */
			for i := 1; i < svr.NoStream; i++ {
				if svr.Converter[i-1] != nil {
					svr.Streams[i].StreamConv(svr.Converter[i-1], svr.Buff, n)
				} else {
					svr.Streams[i].StreamWrite(svr.Buff, n)
				}
			}
			/* write data to log stream */
			svr.StreamLog[0].StreamWrite(svr.Buff, n)

			svr.Lock.Lock()
			for i := 0; i < n && svr.Npb < svr.BuffSize; i++ {
				svr.PeekBuf[svr.Npb] = svr.Buff[i]
				svr.Npb++
			}
			svr.Lock.Unlock()
		}
		for i := 1; i < svr.NoStream; i++ {

			/* read message from output stream */
			for {
				n := svr.Streams[i].StreamRead(buff, len(buff))
				if n <= 0 {
					break
				}
				/* relay back message from output stream to input stream */
				if i == svr.RelayBack {
					svr.Streams[0].StreamWrite(buff, n)
				}
				/* write data to log stream */
				svr.StreamLog[i].StreamWrite(buff, n)
			}
		}
		/* write periodic command to input stream */
		for i := 0; i < svr.NoStream; i++ {
			periodicCmd(cyc*svr.Cycle, svr.CmdsPeriodic[i], &svr.Streams[i])
		}
		/* write nmea messages to input stream */
		if svr.NmeaCycle > 0 && int(tick-tickNmea) >= svr.NmeaCycle {
			solNmea.Stat = SOLQ_SINGLE
			solNmea.Time = Utc2GpsT(TimeGet())
			copy(solNmea.Rr[:3], svr.NmeaPos[:])
			svr.Streams[0].StreamSendNmea(&solNmea)
			tickNmea = tick
		}
		Sleepms(svr.Cycle - int(TickGet()-tick))
	}
	for i := 0; i < svr.NoStream; i++ {
		svr.Streams[i].StreamClose()
	}
	for i := 0; i < svr.NoStream; i++ {
		svr.StreamLog[i].StreamClose()
	}
	svr.Npb = 0
	svr.Buff = nil
	svr.PeekBuf = nil

	svr.Wg.Done()
}

/* initialize stream server ----------------------------------------------------
* initialize stream server
* args   : svr      IO  stream server
*          nout     I   number of output streams
* return : none
*-----------------------------------------------------------------------------*/
func (svr *StreamSvr) InitStreamSvr(nout int) {
	var i int

	Tracet(3, "InitStreamSvr: nout=%d\n", nout)

	svr.State = 0
	svr.Cycle = 0
	svr.BuffSize = 0
	svr.NmeaCycle = 0
	svr.RelayBack = 0
	svr.Npb = 0
	for i = 0; i < 16; i++ {
		svr.CmdsPeriodic[i] = ""
		svr.Converter[i] = nil
	}
	for i = 0; i < 3; i++ {
		svr.NmeaPos[i] = 0.0
	}
	svr.Buff, svr.PeekBuf = nil, nil
	svr.Tick = 0
	for i = 0; i < nout+1 && i < 16; i++ {
		svr.Streams[i].InitStream()
		svr.StreamLog[i].InitStream()
	}
	svr.NoStream = i
}

/* start stream server ---------------------------------------------------------
* start stream server
* args   : svr      IO  stream server
*          opts     I   stream options
*              opts[0]= inactive timeout (ms)
*              opts[1]= interval to reconnect (ms)
*              opts[2]= averaging time of data rate (ms)
*              opts[3]= receive/send buffer size (bytes)
*              opts[4]= server cycle (ms)
*              opts[5]= nmea request cycle (ms) (0:no)
*              opts[6]= file swap margin (s)
*              opts[7]= relay back of output stream (0:no)
*          strs     I   stream types (STR_???)
*              strs[0]= input stream, strs[1..]= output streams
*          paths    I   stream paths
*          logs     I   return log paths ("": no log)
*          conv     I   stream converters (nil: no conversion)
*          cmds     I   start commands ("": no cmd)
*          cmdsPeriodic I periodic commands ("": no cmd)
*          nmeapos  I   nmea request position (ecef) (m) (nil: no)
* return : status (0:error,1:ok)
*-----------------------------------------------------------------------------*/
func (svr *StreamSvr) StreamSvrStart(opts, strs []int, paths, logs []string,
	conv []*StrConv, cmds, cmdsPeriodic []string, nmeapos []float64) int {
	var stropt [5]int

	Tracet(3, "StreamSvrStart:\n")

	if svr.State > 0 {
		return 0
	}
	for i := 0; i < 4; i++ {
		stropt[i] = opts[i]
	}
	stropt[4] = opts[6]
	StreamSetOpt(stropt[:])

	svr.Cycle = opts[4]
	svr.BuffSize = opts[3]
	if opts[3] < 4096 {
		svr.BuffSize = 4096 /* >=4096 bytes */
	}
	svr.NmeaCycle = opts[5]
	if 0 < opts[5] && opts[5] < 1000 {
		svr.NmeaCycle = 1000 /* >=1 s */
	}
	svr.RelayBack = opts[7]
	for i := 0; i < 3; i++ {
		svr.NmeaPos[i] = 0.0
		if nmeapos != nil {
			svr.NmeaPos[i] = nmeapos[i]
		}
	}
	for i := 0; i < svr.NoStream; i++ {
		svr.CmdsPeriodic[i] = cmdsPeriodic[i]
	}
	for i := 0; i < svr.NoStream-1; i++ {
		svr.Converter[i] = conv[i]
	}
	svr.Buff = make([]uint8, svr.BuffSize)
	svr.PeekBuf = make([]uint8, svr.BuffSize)

	/* open streams */
	for i := 0; i < svr.NoStream; i++ {
		file1 := paths[0]
		if idx := strings.Index(file1, "::"); idx >= 0 {
			file1 = file1[:idx]
		}
		file2 := paths[i]
		if idx := strings.Index(file2, "::"); idx >= 0 {
			file2 = file2[:idx]
		}
		if i > 0 && len(file1) > 0 && file1 == file2 {
			svr.Streams[i].Msg = fmt.Sprintf("output path error: %s", file2)
			for i--; i >= 0; i-- {
				svr.Streams[i].StreamClose()
			}
			return 0
		}
		rw := STR_MODE_RW
		if strs[i] == STR_FILE {
			rw = STR_MODE_W
			if i == 0 {
				rw = STR_MODE_R
			}
		}
		if svr.Streams[i].OpenStream(strs[i], rw, paths[i]) > 0 {
			continue
		}
		for i--; i >= 0; i-- {
			svr.Streams[i].StreamClose()
		}
		return 0
	}
	/* open log streams */
	for i := 0; i < svr.NoStream; i++ {
		if strs[i] == STR_NONE || strs[i] == STR_FILE || len(logs[i]) == 0 {
			continue
		}
		svr.StreamLog[i].OpenStream(STR_FILE, STR_MODE_W, logs[i])
	}
	/* write start commands to input/output streams */
	for i := 0; i < svr.NoStream; i++ {
		if len(cmds[i]) == 0 {
			continue
		}
		svr.Streams[i].StreamWrite([]byte(""), 0) /* for connect */
		Sleepms(100)
		svr.Streams[i].StrSendCmd(cmds[i])
	}
	svr.State = 1

	/* create stream server thread */
	svr.Wg.Add(1)
	go streamSvrThread(svr)

	return 1
}

/* stop stream server ----------------------------------------------------------
* stop stream server
* args   : svr      IO  stream server
*          cmds     I   stop commands ("": no cmd)
* return : none
*-----------------------------------------------------------------------------*/
func (svr *StreamSvr) StreamSvrStop(cmds []string) {
	Tracet(3, "StreamSvrStop:\n")

	for i := 0; i < svr.NoStream; i++ {
		if len(cmds[i]) > 0 {
			svr.Streams[i].StrSendCmd(cmds[i])
		}
	}
	svr.State = 0
	svr.Wg.Wait()
}

/* get stream server status ----------------------------------------------------
* get status of stream server
* args   : svr      IO  stream server
*          stat     O   stream status
*          logStat  O   log status
*          ibyte    O   bytes received/sent
*          bps      O   bitrate received/sent
*          msg      O   messages
* return : none
*-----------------------------------------------------------------------------*/
func (svr *StreamSvr) StreamSvrStat(stat, logStat, ibyte, bps []int, msg *string) {
	var (
		s     string
		bpsIn int
	)
	Tracet(4, "StreamSvrStat:\n")

	for i := 0; i < svr.NoStream; i++ {
		if i == 0 {
			svr.Streams[0].StreamSum(&ibyte[0], &bps[0], nil, nil)
		} else {
			svr.Streams[i].StreamSum(nil, &bpsIn, &ibyte[i], &bps[i])
		}
		stat[i] = svr.Streams[i].StreamStat(&s)
		if len(s) > 0 {
			*msg += fmt.Sprintf("(%d) %s ", i, s)
		}
		logStat[i] = svr.StreamLog[i].StreamStat(&s)
	}
}

/* peek input/output stream ----------------------------------------------------
* peek input/output stream of stream server
* args   : svr      IO  stream server
*          buff     O   stream buffer
*          nmax     I   buffer size (bytes)
* return : stream size (bytes)
*-----------------------------------------------------------------------------*/
func (svr *StreamSvr) StreamSvrPeek(buff []uint8, nmax int) int {
	if svr.State == 0 {
		return 0
	}
	svr.Lock.Lock()
	defer svr.Lock.Unlock()

	n := nmax
	if svr.Npb < nmax {
		n = svr.Npb
	}
	if n > 0 {
		copy(buff, svr.PeekBuf[:n])
	}
	if n < svr.Npb {
		copy(svr.PeekBuf, svr.PeekBuf[n:svr.Npb])
	}
	svr.Npb -= n
	return n
}
