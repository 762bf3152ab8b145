/*------------------------------------------------------------------------------
* rtksvr.go : real-time positioning server
*
*          Copyright (C) 2026 by The GNSSRT Project, All rights reserved.
*
* The rtk server reads raw/rtcm data from up to three input streams (rover,
* base, correction), decodes them into synchronized observation epochs and
* navigation data, runs the attached positioning engine on each rover epoch
* and writes solutions to two output streams plus an optional monitor port.
* Streams 5-7 log the raw input of the corresponding input stream.
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"sync"
)

const MIN_INT_RESET = 30000 /* min interval of reset command (ms) */

type RBSol struct { /* base position with solution for monitoring */
	Rb  [3]float64
	Sol Sol
}

type RtkSvr struct { /* rtk server */
	State     int        /* state (0:stop,1:running) */
	Cycle     int        /* processing cycle (ms) */
	NmeaCycle int        /* nmea request cycle (ms) (0:no request) */
	NmeaReq   int        /* nmea request type (0:no,1:nmeapos,2:single sol,3:reset and single sol) */
	NmeaPos   [3]float64 /* nmea request position (ecef) (m) */
	BuffSize  int        /* input buffer size (bytes) */
	Format    [3]int     /* input format (STRFMT_???) */
	NavSel    int        /* ephemeris selection (0:all,1:rover,2:base,3:corr) */

	Solopt [2]SolOpt /* output solution options {sol1,sol2} */

	Stream  [MAXSTRRTK]Stream /* streams {rov,base,corr,sol1,sol2,logr,logb,logc} */
	Monitor *Stream           /* monitor stream */

	RtkCtrl RtkCtrl /* rtk control/result */
	NavData Nav     /* navigation data */

	ObsData  [3][MAXOBSBUF]Obs /* observation data {rov,base,corr} */
	RawCtrl  [3]Raw            /* receiver raw control {rov,base,corr} */
	RtcmCtrl [3]Rtcm           /* rtcm control {rov,base,corr} */

	InputMsg [3][10]int /* input message counts */

	Nb   [3]int     /* bytes in input buffers {rov,base,corr} */
	Nsb  [2]int     /* bytes in solution buffers */
	Npb  [3]int     /* bytes in input peek buffers */
	Buff [3][]uint8 /* input buffers {rov,base,corr} */
	SBuf [2][]uint8 /* output buffers {sol1,sol2} */
	PBuf [3][]uint8 /* peek buffers {rov,base,corr} */

	SolBuf [MAXSOLBUF]Sol /* solution buffer */
	NSol   int            /* number of solution buffer */

	SbsMsgs [MAXSBSMSG]SbsMsg /* sbas message buffer */
	NSbs    int               /* number of sbas message buffer */

	CmdsPeriodic [3]string /* periodic commands */
	CmdReset     string    /* reset command */
	BaseLenReset float64   /* baseline length to reset (km) */

	Tick    int64      /* start tick */
	CpuTime int        /* cpu time (ms) of a processing cycle */
	PrcOut  int        /* missing observation data count */
	NAve    int        /* number of averaging base pos */
	RbAve   [3]float64 /* averaging base pos */

	ObsChannel   chan []ObsD /* observation epoch channel for monitors */
	RbSolChannel chan RBSol  /* solution channel for monitors */

	Wg   sync.WaitGroup
	Lock sync.Mutex
}

func (svr *RtkSvr) RtkSvrLock()   { svr.Lock.Lock() }
func (svr *RtkSvr) RtkSvrUnlock() { svr.Lock.Unlock() }

/* write solution header to output stream */
func (svr *RtkSvr) writeSolHead(stream *Stream, solopt *SolOpt) {
	var buff string

	OutSolHeader(&buff, solopt)
	stream.StreamWrite([]byte(buff), len(buff))
}

/* save output buffer for peek */
func (svr *RtkSvr) saveOutBuf(buff []uint8, n, index int) {
	svr.RtkSvrLock()
	defer svr.RtkSvrUnlock()

	if n >= svr.BuffSize-svr.Nsb[index] {
		n = svr.BuffSize - svr.Nsb[index]
	}
	copy(svr.SBuf[index][svr.Nsb[index]:], buff[:n])
	svr.Nsb[index] += n
}

/* write solution to output stream */
func (svr *RtkSvr) writeSol(index int) {
	var buff string

	Tracet(4, "writeSol: index=%d\n", index)

	solopt := DefaultSolOpt()

	for i := 0; i < 2; i++ {
		buff = ""
		if svr.Solopt[i].Posf == SOLF_STAT {
			/* output solution status */
			svr.RtkSvrLock()
			svr.RtkCtrl.RtkOutStat(&buff)
			svr.RtkSvrUnlock()
		} else {
			/* output solution */
			OutSols(&buff, &svr.RtkCtrl.RtkSol, svr.RtkCtrl.Rb[:], &svr.Solopt[i])
		}
		svr.Stream[i+3].StreamWrite([]byte(buff), len(buff))
		svr.saveOutBuf([]byte(buff), len(buff), i)

		/* output extended solution */
		buff = ""
		OutSolExs(&buff, &svr.RtkCtrl.RtkSol, svr.RtkCtrl.Ssat[:], &svr.Solopt[i])
		svr.Stream[i+3].StreamWrite([]byte(buff), len(buff))
		svr.saveOutBuf([]byte(buff), len(buff), i)
	}
	/* output solution to monitor port */
	if svr.Monitor != nil {
		buff = ""
		OutSols(&buff, &svr.RtkCtrl.RtkSol, svr.RtkCtrl.Rb[:], &solopt)
		svr.Monitor.StreamWrite([]byte(buff), len(buff))
	}
	if svr.RbSolChannel != nil {
		rbsol := RBSol{Sol: svr.RtkCtrl.RtkSol}
		copy(rbsol.Rb[:], svr.RtkCtrl.Rb[:3])
		select {
		case svr.RbSolChannel <- rbsol:
		default:
		}
	}
	/* save solution buffer */
	if svr.NSol < MAXSOLBUF {
		svr.RtkSvrLock()
		svr.SolBuf[svr.NSol] = svr.RtkCtrl.RtkSol
		svr.NSol++
		svr.RtkSvrUnlock()
	}
}

/* sync glonass frequency channel numbers across receivers */
func (svr *RtkSvr) updateGloFcn() {
	for i := 0; i < MAXPRNGLO; i++ {
		sat := SatNo(SYS_GLO, i+1)

		frq := -999
		for j := 0; j < 3; j++ {
			if svr.RawCtrl[j].NavData.Geph[i].Sat != sat {
				continue
			}
			frq = svr.RawCtrl[j].NavData.Geph[i].Frq
		}
		if frq < -7 || frq > 6 {
			continue
		}
		for j := 0; j < 3; j++ {
			if svr.RawCtrl[j].NavData.Geph[i].Sat == sat {
				continue
			}
			svr.RawCtrl[j].NavData.Geph[i].Sat = sat
			svr.RawCtrl[j].NavData.Geph[i].Frq = frq
		}
	}
}

/* update rtk server struct with decoded message */
func (svr *RtkSvr) updateSvr(ret int, obs *Obs, nav *Nav, sat, set, index, iobs int, sbsmsg *SbsMsg) {
	var pos, del, dr [3]float64

	Tracet(4, "updateSvr: ret=%d sat=%d index=%d\n", ret, sat, index)

	switch ret {
	case 1: /* observation data */
		if iobs < MAXOBSBUF {
			svr.ObsData[index][iobs].Data = svr.ObsData[index][iobs].Data[:0]
			for i := 0; i < obs.N(); i++ {
				sys := SatSys(obs.Data[i].Sat, nil)
				if svr.RtkCtrl.Opt.ExSats[obs.Data[i].Sat-1] == 1 ||
					sys&svr.RtkCtrl.Opt.NavSys == 0 {
					continue
				}
				data := obs.Data[i]
				data.Rcv = index + 1
				svr.ObsData[index][iobs].AddObsData(&data)
			}
			svr.ObsData[index][iobs].SortObs()
			if index == 0 && svr.ObsChannel != nil {
				epoch := make([]ObsD, len(svr.ObsData[0][iobs].Data))
				copy(epoch, svr.ObsData[0][iobs].Data)
				select {
				case svr.ObsChannel <- epoch:
				default:
				}
			}
		}
		svr.InputMsg[index][0]++
	case 2: /* ephemeris */
		var prn int
		if SatSys(sat, &prn) != SYS_GLO {
			if svr.NavSel == 0 || svr.NavSel == index+1 {
				/* svr.NavData.Ephs={current_set1,current_set2,prev_set1,prev_set2} */
				eph1 := &nav.Ephs[sat-1+MAXSAT*set]             /* received */
				eph2 := &svr.NavData.Ephs[sat-1+MAXSAT*set]     /* current */
				eph3 := &svr.NavData.Ephs[sat-1+MAXSAT*(2+set)] /* previous */
				if eph2.Ttr.Time == 0 ||
					(eph1.Iode != eph2.Iode && eph1.Iode != eph3.Iode) ||
					(TimeDiff(eph1.Toe, eph2.Toe) != 0.0 &&
						TimeDiff(eph1.Toc, eph2.Toc) != 0.0) {
					*eph3 = *eph2 /* current -> previous */
					*eph2 = *eph1 /* received -> current */
				}
			}
			svr.InputMsg[index][1]++
		} else {
			if svr.NavSel == 0 || svr.NavSel == index+1 {
				geph1 := &nav.Geph[prn-1]
				geph2 := &svr.NavData.Geph[prn-1]
				geph3 := &svr.NavData.Geph[prn-1+MAXPRNGLO]
				if geph2.Tof.Time == 0 ||
					(geph1.Iode != geph2.Iode && geph1.Iode != geph3.Iode) {
					*geph3 = *geph2
					*geph2 = *geph1
					svr.updateGloFcn()
				}
			}
			svr.InputMsg[index][6]++
		}
	case 3: /* sbas message */
		if sbsmsg != nil {
			sbsmsg.Rcv = uint8(index + 1)
			if svr.NSbs < MAXSBSMSG {
				svr.SbsMsgs[svr.NSbs] = *sbsmsg
				svr.NSbs++
			} else {
				for i := 0; i < MAXSBSMSG-1; i++ {
					svr.SbsMsgs[i] = svr.SbsMsgs[i+1]
				}
				svr.SbsMsgs[MAXSBSMSG-1] = *sbsmsg
			}
		}
		svr.InputMsg[index][3]++
	case 9: /* ion/utc parameters */
		if svr.NavSel == 0 || svr.NavSel == index+1 {
			svr.NavData.UtcGps = nav.UtcGps
			svr.NavData.UtcGlo = nav.UtcGlo
			svr.NavData.UtcGal = nav.UtcGal
			svr.NavData.UtcQzs = nav.UtcQzs
			svr.NavData.UtcCmp = nav.UtcCmp
			svr.NavData.UtcIrn = nav.UtcIrn
			svr.NavData.UtcSbs = nav.UtcSbs
			svr.NavData.IonGps = nav.IonGps
			svr.NavData.IonGal = nav.IonGal
			svr.NavData.IonQzs = nav.IonQzs
			svr.NavData.IonCmp = nav.IonCmp
			svr.NavData.IonIrn = nav.IonIrn
		}
		svr.InputMsg[index][2]++
	case 5: /* antenna position parameters */
		if svr.RtkCtrl.Opt.RefPos == POSOPT_RTCM && index == 1 {
			sta := &svr.RtcmCtrl[1].StaPara
			for i := 0; i < 3; i++ {
				svr.RtkCtrl.Rb[i] = sta.Pos[i]
			}
			/* antenna delta */
			Ecef2Pos(svr.RtkCtrl.Rb[:], pos[:])
			if sta.DelType != 0 { /* xyz */
				del[2] = sta.Hgt
				Enu2Ecef(pos[:], del[:], dr[:])
				for i := 0; i < 3; i++ {
					svr.RtkCtrl.Rb[i] += sta.Del[i] + dr[i]
				}
			} else { /* enu */
				Enu2Ecef(pos[:], sta.Del[:], dr[:])
				for i := 0; i < 3; i++ {
					svr.RtkCtrl.Rb[i] += dr[i]
				}
			}
		}
		svr.InputMsg[index][4]++
	case 7: /* dgps correction */
		svr.InputMsg[index][5]++
	case 10: /* ssr message */
		for i := 0; i < MAXSAT; i++ {
			ssr := &svr.RtcmCtrl[index].Ssr[i]
			if ssr.Update == 0 {
				continue
			}
			/* check consistency between iods of orbit and clock */
			if ssr.Iod[0] != ssr.Iod[1] {
				continue
			}
			ssr.Update = 0

			iode := ssr.Iode
			var prn int
			sys := SatSys(i+1, &prn)

			/* check corresponding ephemeris exists */
			if sys == SYS_GPS || sys == SYS_GAL || sys == SYS_QZS {
				if svr.NavData.Ephs[i].Iode != iode &&
					svr.NavData.Ephs[i+MAXSAT].Iode != iode {
					continue
				}
			} else if sys == SYS_GLO {
				if svr.NavData.Geph[prn-1].Iode != iode &&
					svr.NavData.Geph[prn-1+MAXPRNGLO].Iode != iode {
					continue
				}
			}
			svr.NavData.Ssr[i] = *ssr
		}
		svr.InputMsg[index][7]++
	case -1: /* error */
		svr.InputMsg[index][9]++
	}
}

/* decode receiver raw/rtcm data, return number of observation epochs */
func (svr *RtkSvr) decodeRaw(index int) int {
	var (
		obs           *Obs
		nav           *Nav
		sbsmsg        *SbsMsg
		sat, set, ret int
	)
	Tracet(4, "decodeRaw: index=%d\n", index)

	svr.RtkSvrLock()
	defer svr.RtkSvrUnlock()

	fobs := 0
	for i := 0; i < svr.Nb[index]; i++ {
		/* input rtcm/receiver raw data from stream */
		switch svr.Format[index] {
		case STRFMT_RTCM2:
			ret = svr.RtcmCtrl[index].InputRtcm2(svr.Buff[index][i])
			obs = &svr.RtcmCtrl[index].ObsData
			nav = &svr.RtcmCtrl[index].NavData
			sat = svr.RtcmCtrl[index].EphSat
			set = svr.RtcmCtrl[index].EphSet
			sbsmsg = nil
		case STRFMT_RTCM3:
			ret = svr.RtcmCtrl[index].InputRtcm3(svr.Buff[index][i])
			obs = &svr.RtcmCtrl[index].ObsData
			nav = &svr.RtcmCtrl[index].NavData
			sat = svr.RtcmCtrl[index].EphSat
			set = svr.RtcmCtrl[index].EphSet
			sbsmsg = nil
		default:
			ret = svr.RawCtrl[index].InputRaw(svr.Format[index], svr.Buff[index][i])
			obs = &svr.RawCtrl[index].ObsData
			nav = &svr.RawCtrl[index].NavData
			sat = svr.RawCtrl[index].EphSat
			set = svr.RawCtrl[index].EphSet
			sbsmsg = &svr.RawCtrl[index].Sbsmsg
		}
		/* update rtk server */
		if ret > 0 {
			svr.updateSvr(ret, obs, nav, sat, set, index, fobs, sbsmsg)
		}
		/* observation data received */
		if ret == 1 {
			if fobs < MAXOBSBUF {
				fobs++
			} else {
				svr.PrcOut++
			}
		}
	}
	svr.Nb[index] = 0
	return fobs
}

/* carrier-phase bias correction by ssr phase bias */
func corrPhaseBias(obs []ObsD, nav *Nav) {
	for i := range obs {
		for j := 0; j < NFREQ; j++ {
			code := obs[i].Code[j]
			if code == 0 {
				continue
			}
			freq := Sat2Freq(obs[i].Sat, code, nav)
			if freq == 0.0 {
				continue
			}
			/* correct phase bias (cyc) */
			obs[i].L[j] -= nav.Ssr[obs[i].Sat-1].Pbias[code-1] * freq / CLIGHT
		}
	}
}

/* average single-point base position */
func (svr *RtkSvr) averageBasePos() {
	var rtk RtkCtrl
	rtk.InitRtk(&svr.RtkCtrl.Opt)
	rtk.Engine = svr.RtkCtrl.Engine

	if svr.RtkCtrl.Opt.MaxAveEp <= 0 || svr.NAve < svr.RtkCtrl.Opt.MaxAveEp {
		if rtk.Engine.Estimate(&rtk, svr.ObsData[1][0].Data, &svr.NavData) != 0 &&
			rtk.RtkSol.Stat != SOLQ_NONE {
			svr.NAve++
			for i := 0; i < 3; i++ {
				svr.RbAve[i] += (rtk.RtkSol.Rr[i] - svr.RbAve[i]) / float64(svr.NAve)
			}
		}
	}
	for i := 0; i < 3; i++ {
		svr.RtkCtrl.Opt.Rb[i] = svr.RbAve[i]
	}
}

/* send nmea request to base/nrtk input stream */
func (svr *RtkSvr) sendNmea(tickreset *int64) {
	var sol Sol

	if svr.Stream[1].State != 1 {
		return
	}
	switch svr.NmeaReq {
	case 1: /* fixed position mode */
		sol.Stat = SOLQ_SINGLE
		sol.Time = Utc2GpsT(TimeGet())
		copy(sol.Rr[:3], svr.NmeaPos[:])
		svr.Stream[1].StreamSendNmea(&sol)
	case 2: /* single-solution mode */
		if Norm(svr.RtkCtrl.RtkSol.Rr[:], 3) <= 0.0 {
			break
		}
		sol.Stat = SOLQ_SINGLE
		sol.Time = svr.RtkCtrl.RtkSol.Time
		copy(sol.Rr[:3], svr.RtkCtrl.RtkSol.Rr[:3])
		svr.Stream[1].StreamSendNmea(&sol)
	case 3: /* reset-and-single-solution mode */
		tick := TickGet()

		/* send reset command if baseline over threshold */
		bl := svr.RtkCtrl.BaseLineLen()
		if bl >= svr.BaseLenReset*1e3 && int(tick-*tickreset) > MIN_INT_RESET {
			svr.Stream[1].StrSendCmd(svr.CmdReset)

			Tracet(2, "sendNmea: reset rcv bl=%.3f\n", bl)
			*tickreset = tick
		} else if Norm(svr.RtkCtrl.RtkSol.Rr[:], 3) > 0.0 {
			sol.Stat = SOLQ_SINGLE
			sol.Time = svr.RtkCtrl.RtkSol.Time
			copy(sol.Rr[:3], svr.RtkCtrl.RtkSol.Rr[:3])

			/* predicted position if velocity over 36km/h */
			if vel := Norm(svr.RtkCtrl.RtkSol.Rr[3:], 3); vel > 10.0 {
				for i := 0; i < 3; i++ {
					sol.Rr[i] += svr.RtkCtrl.RtkSol.Rr[i+3] / vel * svr.BaseLenReset * 1e3 * 0.8
				}
			}
			svr.Stream[1].StreamSendNmea(&sol)
		}
		Tracet(3, "sendNmea: rr=%.3f %.3f %.3f\n", sol.Rr[0], sol.Rr[1], sol.Rr[2])
	}
}

/* rtk server processing loop */
func (svr *RtkSvr) rtkSvrThread() {
	var fobs [3]int

	Tracet(3, "rtkSvrThread:\n")

	defer svr.Wg.Done()

	obsEpoch := make([]ObsD, 0, MAXOBS*2)

	svr.State = 1
	svr.Tick = TickGet()
	ticknmea := svr.Tick - 1000
	tick1hz := svr.Tick - 1000
	tickreset := svr.Tick - MIN_INT_RESET

	for cycle := 0; svr.State != 0; cycle++ {
		tick := TickGet()

		for i := 0; i < 3; i++ {
			/* read receiver raw/rtcm data from input stream */
			n := svr.Stream[i].StreamRead(svr.Buff[i][svr.Nb[i]:], svr.BuffSize-svr.Nb[i])
			if n <= 0 {
				continue
			}
			/* write receiver raw/rtcm data to log stream */
			svr.Stream[i+5].StreamWrite(svr.Buff[i][svr.Nb[i]:], n)

			/* save peek buffer */
			svr.RtkSvrLock()
			m := n
			if m > svr.BuffSize-svr.Npb[i] {
				m = svr.BuffSize - svr.Npb[i]
			}
			copy(svr.PBuf[i][svr.Npb[i]:], svr.Buff[i][svr.Nb[i]:svr.Nb[i]+m])
			svr.Npb[i] += m
			svr.RtkSvrUnlock()

			svr.Nb[i] += n
		}
		/* decode receiver raw/rtcm data */
		for i := 0; i < 3; i++ {
			fobs[i] = svr.decodeRaw(i)
		}
		/* averaging single base position */
		if fobs[1] > 0 && svr.RtkCtrl.Opt.RefPos == POSOPT_SINGLE {
			svr.averageBasePos()
		}
		for i := 0; i < fobs[0]; i++ { /* for each rover observation epoch */
			obsEpoch = obsEpoch[:0]
			for j := 0; j < svr.ObsData[0][i].N() && len(obsEpoch) < MAXOBS*2; j++ {
				obsEpoch = append(obsEpoch, svr.ObsData[0][i].Data[j])
			}
			for j := 0; j < svr.ObsData[1][0].N() && len(obsEpoch) < MAXOBS*2; j++ {
				obsEpoch = append(obsEpoch, svr.ObsData[1][0].Data[j])
			}
			/* carrier-phase bias correction */
			corrPhaseBias(obsEpoch, &svr.NavData)

			/* rtk positioning */
			svr.RtkSvrLock()
			svr.RtkCtrl.RtkPos(obsEpoch, &svr.NavData)
			svr.RtkSvrUnlock()

			if svr.RtkCtrl.RtkSol.Stat != SOLQ_NONE {
				/* adjust current time */
				tt := float64(TickGet()-tick)/1000.0 + DTTOL
				TimeSet(GpsT2Utc(TimeAdd(svr.RtkCtrl.RtkSol.Time, tt)))

				/* write solution */
				svr.writeSol(i)
			}
			/* if cpu overload, increment obs outage counter */
			if int(TickGet()-tick) >= svr.Cycle {
				svr.PrcOut += fobs[0] - i - 1
			}
		}
		/* send null solution if no solution (1hz) */
		if svr.RtkCtrl.RtkSol.Stat == SOLQ_NONE && int(tick-tick1hz) >= 1000 {
			svr.writeSol(0)
			tick1hz = tick
		}
		/* write periodic command to input stream */
		for i := 0; i < 3; i++ {
			periodicCmd(cycle*svr.Cycle, svr.CmdsPeriodic[i], &svr.Stream[i])
		}
		/* send nmea request to base/nrtk input stream */
		if svr.NmeaCycle > 0 && int(tick-ticknmea) >= svr.NmeaCycle {
			svr.sendNmea(&tickreset)
			ticknmea = tick
		}
		cputime := int(TickGet() - tick)
		if cputime > 0 {
			svr.CpuTime = cputime
		}
		/* sleep until next cycle */
		Sleepms(svr.Cycle - cputime)
	}
	for i := 0; i < MAXSTRRTK; i++ {
		svr.Stream[i].StreamClose()
	}
	for i := 0; i < 3; i++ {
		svr.Nb[i], svr.Npb[i] = 0, 0
		svr.Buff[i] = nil
		svr.PBuf[i] = nil
	}
	for i := 0; i < 2; i++ {
		svr.Nsb[i] = 0
		svr.SBuf[i] = nil
	}
}

/* InitRtkSvr initializes the rtk server struct (1:ok,0:error) */
func (svr *RtkSvr) InitRtkSvr() int {
	Tracet(3, "InitRtkSvr:\n")

	if svr == nil {
		return 0
	}
	*svr = RtkSvr{BaseLenReset: 10.0}

	svr.Solopt[0] = DefaultSolOpt()
	svr.Solopt[1] = DefaultSolOpt()

	opt := DefaultProcOpt()
	svr.RtkCtrl.InitRtk(&opt)

	svr.NavData.Ephs = make([]Eph, MAXSAT*4)
	svr.NavData.Geph = make([]GEph, NSATGLO*2)
	svr.NavData.Seph = make([]SEph, NSATSBS*2)
	for i := range svr.NavData.Ephs {
		svr.NavData.Ephs[i] = Eph{Iode: -1, Iodc: -1}
	}
	for i := range svr.NavData.Geph {
		svr.NavData.Geph[i] = GEph{Iode: -1}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < MAXOBSBUF; j++ {
			svr.ObsData[i][j].Data = make([]ObsD, 0, MAXOBS*2)
		}
	}
	for i := 0; i < MAXSTRRTK; i++ {
		svr.Stream[i].InitStream()
	}
	return 1
}

/* FreeRtkSvr frees the rtk server resources */
func (svr *RtkSvr) FreeRtkSvr() {
	Tracet(3, "FreeRtkSvr:\n")

	svr.NavData.Ephs = nil
	svr.NavData.Geph = nil
	svr.NavData.Seph = nil
	svr.RtkCtrl.FreeRtk()
}

/* RtkSvrStart starts the rtk server -------------------------------------------
* args   : cycle        I   server cycle (ms)
*          buffsize     I   input buffer size (bytes)
*          strs         I   stream types (STR_???) {rov,base,corr,sol1,sol2,
*                           logr,logb,logc}
*          paths        I   input stream paths
*          formats      I   input stream formats (STRFMT_???) {rov,base,corr}
*          navsel       I   ephemeris select (0:all,1:rover,2:base,3:corr)
*          cmds         I   input stream start commands {rov,base,corr}
*          cmdsPeriodic I   input stream periodic commands {rov,base,corr}
*          rcvopts      I   receiver options {rov,base,corr}
*          nmeacycle    I   nmea request cycle (ms) (0:no request)
*          nmeareq      I   nmea request type
*          nmeapos      I   transmitted nmea position (ecef) (m)
*          prcopt       I   processing options
*          solopt       I   solution options {sol1,sol2}
*          moni         I   monitor stream (nil:no monitor)
*          errmsg       O   error message
* return : status (1:ok,0:error)
*-----------------------------------------------------------------------------*/
func (svr *RtkSvr) RtkSvrStart(cycle, buffsize int, strs []int, paths []string,
	formats []int, navsel int, cmds, cmdsPeriodic, rcvopts []string,
	nmeacycle, nmeareq int, nmeapos []float64, prcopt *PrcOpt,
	solopt []SolOpt, moni *Stream, errmsg *string) int {
	Tracet(3, "RtkSvrStart: cycle=%d buffsize=%d navsel=%d nmeacycle=%d nmeareq=%d\n",
		cycle, buffsize, navsel, nmeacycle, nmeareq)

	if svr.State != 0 {
		*errmsg = "server already started"
		return 0
	}
	svr.Cycle = cycle
	if svr.Cycle < 1 {
		svr.Cycle = 1
	}
	svr.NmeaCycle = nmeacycle
	if nmeacycle > 0 && svr.NmeaCycle < 1000 {
		svr.NmeaCycle = 1000
	}
	svr.NmeaReq = nmeareq
	copy(svr.NmeaPos[:], nmeapos)
	svr.BuffSize = buffsize
	if svr.BuffSize < 4096 {
		svr.BuffSize = 4096
	}
	for i := 0; i < 3; i++ {
		svr.Format[i] = formats[i]
	}
	svr.NavSel = navsel
	svr.NSbs = 0
	svr.NSol = 0
	svr.PrcOut = 0

	/* keep the attached positioning engine over restarts */
	engine := svr.RtkCtrl.Engine
	svr.RtkCtrl.FreeRtk()
	svr.RtkCtrl.InitRtk(prcopt)
	if engine != nil {
		svr.RtkCtrl.Engine = engine
	}
	if prcopt.InitRst != 0 { /* init averaging pos by restart */
		svr.NAve = 0
		for i := 0; i < 3; i++ {
			svr.RbAve[i] = 0.0
		}
	}
	for i := 0; i < 3; i++ { /* input/log streams */
		svr.Nb[i], svr.Npb[i] = 0, 0
		svr.Buff[i] = make([]uint8, svr.BuffSize)
		svr.PBuf[i] = make([]uint8, svr.BuffSize)

		for j := 0; j < 10; j++ {
			svr.InputMsg[i][j] = 0
		}
		for j := 0; j < MAXOBSBUF; j++ {
			svr.ObsData[i][j].Data = svr.ObsData[i][j].Data[:0]
		}
		svr.CmdsPeriodic[i] = cmdsPeriodic[i]

		/* initialize receiver raw and rtcm control */
		svr.RawCtrl[i].InitRaw(formats[i])
		svr.RtcmCtrl[i].InitRtcm()

		/* set receiver and rtcm option */
		svr.RawCtrl[i].Opt = rcvopts[i]
		svr.RtcmCtrl[i].Opt = rcvopts[i]
	}
	for i := 0; i < 2; i++ { /* output peek buffers */
		svr.Nsb[i] = 0
		svr.SBuf[i] = make([]uint8, svr.BuffSize)
	}
	/* set solution options */
	for i := 0; i < 2; i++ {
		svr.Solopt[i] = solopt[i]
	}
	/* set base station position */
	if prcopt.RefPos != POSOPT_SINGLE {
		for i := 0; i < 6; i++ {
			if i < 3 {
				svr.RtkCtrl.Rb[i] = prcopt.Rb[i]
			} else {
				svr.RtkCtrl.Rb[i] = 0.0
			}
		}
	}
	/* set monitor stream */
	svr.Monitor = moni

	/* open input and output streams */
	for i := 0; i < MAXSTRRTK; i++ {
		rw := STR_MODE_R
		if i >= 3 {
			rw = STR_MODE_W
		}
		if strs[i] != STR_FILE {
			rw |= STR_MODE_W
		}
		if svr.Stream[i].OpenStream(strs[i], rw, paths[i]) == 0 {
			*errmsg = fmt.Sprintf("str%d open error path=%s", i+1, paths[i])
			for i--; i >= 0; i-- {
				svr.Stream[i].StreamClose()
			}
			return 0
		}
		/* set initial time for rtcm and raw decoders */
		if i < 3 {
			time := Utc2GpsT(TimeGet())
			if strs[i] == STR_FILE {
				time = svr.Stream[i].StreamGetTime()
			}
			svr.RawCtrl[i].Time = time
			svr.RtcmCtrl[i].Time = time
		}
	}
	/* sync input streams */
	StreamSync(&svr.Stream[0], &svr.Stream[1])
	StreamSync(&svr.Stream[0], &svr.Stream[2])

	/* write start commands to input streams */
	for i := 0; i < 3; i++ {
		if len(cmds[i]) == 0 {
			continue
		}
		svr.Stream[i].StreamWrite([]byte(""), 0) /* for connect */
		Sleepms(100)
		svr.Stream[i].StrSendCmd(cmds[i])
	}
	/* write solution header to solution streams */
	for i := 3; i < 5; i++ {
		svr.writeSolHead(&svr.Stream[i], &svr.Solopt[i-3])
	}
	/* create rtk server thread */
	svr.Wg.Add(1)
	go svr.rtkSvrThread()
	return 1
}

/* RtkSvrStop stops the rtk server. cmds are the input stream stop commands */
func (svr *RtkSvr) RtkSvrStop(cmds []string) {
	Tracet(3, "RtkSvrStop:\n")

	/* write stop commands to input streams */
	svr.RtkSvrLock()
	for i := 0; i < 3; i++ {
		if len(cmds[i]) > 0 {
			svr.Stream[i].StrSendCmd(cmds[i])
		}
		/* disconnect input stream */
		svr.Stream[i].StreamWrite([]byte(MSG_DISCONN), len(MSG_DISCONN))
	}
	svr.RtkSvrUnlock()

	/* stop rtk server thread */
	svr.State = 0
	svr.Wg.Wait()
}

/* RtkSvrOpenStream opens an output/log stream while the server is running
* (index 3:sol1,4:sol2,5:logr,6:logb,7:logc) (1:ok,0:error) */
func (svr *RtkSvr) RtkSvrOpenStream(index, str int, path string, solopt *SolOpt) int {
	Tracet(3, "RtkSvrOpenStream: index=%d str=%d path=%s\n", index, str, path)

	if index < 3 || index > 7 || svr.State == 0 {
		return 0
	}
	svr.RtkSvrLock()
	defer svr.RtkSvrUnlock()

	if svr.Stream[index].State > 0 {
		return 0
	}
	if svr.Stream[index].OpenStream(str, STR_MODE_W, path) == 0 {
		Tracet(2, "stream open error: index=%d\n", index)
		return 0
	}
	if index <= 4 {
		svr.Solopt[index-3] = *solopt

		/* write solution header to solution stream */
		svr.writeSolHead(&svr.Stream[index], &svr.Solopt[index-3])
	}
	return 1
}

/* RtkSvrCloseStream closes an output/log stream (index 3:sol1,...,7:logc) */
func (svr *RtkSvr) RtkSvrCloseStream(index int) {
	Tracet(3, "RtkSvrCloseStream: index=%d\n", index)

	if index < 3 || index > 7 || svr.State == 0 {
		return
	}
	svr.RtkSvrLock()
	svr.Stream[index].StreamClose()
	svr.RtkSvrUnlock()
}

/* RtkSvrObsStat returns the latest observation status of a receiver ----------
* args   : rcv   I  receiver (0:rover,1:base,2:corr)
*          time  O  time of observation data
*          sat   O  satellite numbers
*          vsat  O  valid satellite flags
*          az,el O  satellite azimuth/elevation angles (rad)
*          snr   O  satellite snr for each freq (dBHz)
* return : number of satellites
*-----------------------------------------------------------------------------*/
func (svr *RtkSvr) RtkSvrObsStat(rcv int, time *Gtime, sat, vsat []int,
	az, el []float64, snr [][]int) int {
	if svr.State == 0 || rcv < 0 || rcv > 2 {
		return 0
	}
	svr.RtkSvrLock()
	defer svr.RtkSvrUnlock()

	ns := svr.ObsData[rcv][0].N()
	if ns > 0 {
		*time = svr.ObsData[rcv][0].Data[0].Time
	}
	for i := 0; i < ns; i++ {
		data := &svr.ObsData[rcv][0].Data[i]
		sat[i] = data.Sat
		az[i] = svr.RtkCtrl.Ssat[sat[i]-1].Azel[0]
		el[i] = svr.RtkCtrl.Ssat[sat[i]-1].Azel[1]
		for j := 0; j < NFREQ; j++ {
			snr[i][j] = int(float64(data.SNR[j])*SNR_UNIT + 0.5)
		}
		if svr.RtkCtrl.RtkSol.Stat == SOLQ_NONE ||
			svr.RtkCtrl.RtkSol.Stat == SOLQ_SINGLE {
			vsat[i] = int(svr.RtkCtrl.Ssat[sat[i]-1].Vs)
		} else {
			vsat[i] = int(svr.RtkCtrl.Ssat[sat[i]-1].Vsat[0])
		}
	}
	return ns
}

/* RtkSvrStreamStat fills per-stream states and returns a summary message */
func (svr *RtkSvr) RtkSvrStreamStat(sstat []int, msg *string) {
	var s string

	svr.RtkSvrLock()
	for i := 0; i < MAXSTRRTK; i++ {
		sstat[i] = svr.Stream[i].StreamStat(&s)
		if len(s) > 0 {
			*msg += fmt.Sprintf("(%d) %s ", i+1, s)
		}
	}
	svr.RtkSvrUnlock()
}

/* RtkSvrMark writes a marker record to the solution streams (1:ok,0:error) */
func (svr *RtkSvr) RtkSvrMark(name, comment string) int {
	var pos [3]float64

	Tracet(4, "RtkSvrMark: name=%s comment=%s\n", name, comment)

	if svr.State == 0 {
		return 0
	}
	svr.RtkSvrLock()
	defer svr.RtkSvrUnlock()

	tstr := Time2Str(svr.RtkCtrl.RtkSol.Time, 3)
	var week int
	tow := Time2GpsT(svr.RtkCtrl.RtkSol.Time, &week)
	Ecef2Pos(svr.RtkCtrl.RtkSol.Rr[:], pos[:])

	for i := 0; i < 2; i++ {
		var buff string
		switch svr.Solopt[i].Posf {
		case SOLF_STAT:
			buff = fmt.Sprintf("$MARK,%d,%.3f,%d,%.4f,%.4f,%.4f,%s,%s\n", week,
				tow, svr.RtkCtrl.RtkSol.Stat, svr.RtkCtrl.RtkSol.Rr[0],
				svr.RtkCtrl.RtkSol.Rr[1], svr.RtkCtrl.RtkSol.Rr[2], name, comment)
		case SOLF_NMEA:
			buff = fmt.Sprintf("$GPTXT,01,01,02,MARK:%s,%s", name, comment)
			buff += nmeaCheckSum(buff)
		default:
			buff = fmt.Sprintf("%s MARK: %s,%s,%.9f,%.9f,%.4f,%s\n", COMMENTH,
				name, tstr, pos[0]*R2D, pos[1]*R2D, pos[2], comment)
		}
		svr.Stream[i+3].StreamWrite([]byte(buff), len(buff))
		svr.saveOutBuf([]byte(buff), len(buff), i)
	}
	if svr.Monitor != nil {
		buff := fmt.Sprintf("%s MARK: %s,%s,%.9f,%.9f,%.4f,%s\n", COMMENTH,
			name, tstr, pos[0]*R2D, pos[1]*R2D, pos[2], comment)
		svr.Monitor.StreamWrite([]byte(buff), len(buff))
	}
	return 1
}
