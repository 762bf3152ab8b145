/*------------------------------------------------------------------------------
* kernel.go : positioning engine interface and rtk control
*
*          Copyright (C) 2026 by The GNSSRT Project, All rights reserved.
*
* The stream server feeds synchronized observation epochs to a pluggable
* positioning engine. The built-in engine only tracks satellite status and
* reports SOLQ_NONE; external estimators implement PosEngine to supply real
* solutions while reusing the server, streams and solution output unchanged.
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"math"
)

/* PosEngine estimates a solution from one observation epoch. Estimate fills
 * rtk.RtkSol and rtk.Ssat and returns the status (0:error,1:ok) */
type PosEngine interface {
	Name() string
	Estimate(rtk *RtkCtrl, obs []ObsD, nav *Nav) int
}

type RtkCtrl struct { /* rtk control/result */
	RtkSol Sol        /* solution */
	Rb     [6]float64 /* base position/velocity (ecef) (m|m/s) */
	Tt     float64    /* time difference between current and previous (s) */
	Opt    PrcOpt
	Ssat   [MAXSAT]SSat
	Neb    int    /* bytes in error message buffer */
	ErrBuf string /* error message buffer */
	Engine PosEngine
}

/* NullEngine tracks which satellites are observed and their signal levels
 * without estimating a position */
type NullEngine struct{}

func (*NullEngine) Name() string { return "null" }

func (*NullEngine) Estimate(rtk *RtkCtrl, obs []ObsD, nav *Nav) int {
	for i := range rtk.Ssat {
		rtk.Ssat[i].Vs = 0
		for j := 0; j < NFREQ; j++ {
			rtk.Ssat[i].Vsat[j] = 0
			rtk.Ssat[i].Snr[j] = 0
		}
	}
	ns := 0
	for i := range obs {
		if obs[i].Rcv != 1 {
			continue
		}
		sat := obs[i].Sat
		if sat < 1 || sat > MAXSAT {
			continue
		}
		rtk.Ssat[sat-1].Sys = uint8(SatSys(sat, nil))
		rtk.Ssat[sat-1].Vs = 1
		for j := 0; j < NFREQ; j++ {
			rtk.Ssat[sat-1].Snr[j] = obs[i].SNR[j]
		}
		ns++
	}
	if len(obs) > 0 {
		rtk.RtkSol.Time = obs[0].Time
	}
	rtk.RtkSol.Ns = uint8(ns)
	rtk.RtkSol.Stat = SOLQ_NONE
	return 0
}

/* InitRtk initializes the rtk control struct with processing options */
func (rtk *RtkCtrl) InitRtk(opt *PrcOpt) {
	Trace(4, "InitRtk:\n")

	*rtk = RtkCtrl{Opt: *opt, Engine: &NullEngine{}}
	rtk.RtkSol.Thres = float32(opt.ThresAr[0])
	for i := 0; i < 3; i++ {
		rtk.Rb[i] = opt.Rb[i]
	}
	for i := range rtk.Ssat {
		rtk.Ssat[i] = SSat{}
		for j := 0; j < NFREQ; j++ {
			rtk.Ssat[i].Outc[j] = 1000000
		}
	}
}

func (rtk *RtkCtrl) FreeRtk() {
	Trace(4, "FreeRtk:\n")

	rtk.Engine = nil
	rtk.ErrBuf = ""
	rtk.Neb = 0
}

/* RtkPos processes one observation epoch through the attached positioning
 * engine (status 0:error,1:ok) */
func (rtk *RtkCtrl) RtkPos(obs []ObsD, nav *Nav) int {
	if len(obs) > 0 {
		Trace(4, "RtkPos: time=%s n=%d\n", Time2Str(obs[0].Time, 3), len(obs))
	}
	if rtk.Engine == nil {
		rtk.Engine = &NullEngine{}
	}
	if rtk.RtkSol.Time.Time != 0 && len(obs) > 0 {
		rtk.Tt = TimeDiff(obs[0].Time, rtk.RtkSol.Time)
	}
	stat := rtk.Engine.Estimate(rtk, obs, nav)

	/* carry outage counters for unobserved satellites */
	for i := range rtk.Ssat {
		for j := 0; j < NFREQ; j++ {
			if rtk.Ssat[i].Vsat[j] == 0 && rtk.Ssat[i].Vs == 0 {
				if rtk.Ssat[i].Outc[j] < math.MaxUint32 {
					rtk.Ssat[i].Outc[j]++
				}
			} else {
				rtk.Ssat[i].Outc[j] = 0
			}
		}
	}
	return stat
}

/* BaseLineLen returns rover-base baseline length (m) (0.0 if no base) */
func (rtk *RtkCtrl) BaseLineLen() float64 {
	if Norm(rtk.Rb[:], 3) <= 0.0 {
		return 0.0
	}
	var dr [3]float64
	for i := 0; i < 3; i++ {
		dr[i] = rtk.RtkSol.Rr[i] - rtk.Rb[i]
	}
	return Norm(dr[:], 3)
}

/* RtkOutStat writes solution status records ($POS,$VELACC,$CLK,$SAT) for the
 * current epoch and returns the number of bytes appended */
func (rtk *RtkCtrl) RtkOutStat(buff *string) int {
	if rtk.RtkSol.Stat == SOLQ_NONE {
		return 0
	}
	n := len(*buff)
	var week int
	tow := Time2GpsT(rtk.RtkSol.Time, &week)
	var pos, vel [3]float64

	/* receiver position */
	*buff += fmt.Sprintf("$POS,%d,%.3f,%d,%.4f,%.4f,%.4f,%.4f,%.4f,%.4f\n",
		week, tow, rtk.RtkSol.Stat, rtk.RtkSol.Rr[0], rtk.RtkSol.Rr[1],
		rtk.RtkSol.Rr[2], 0.0, 0.0, 0.0)

	/* receiver velocity and acceleration (enu) */
	Ecef2Pos(rtk.RtkSol.Rr[:], pos[:])
	Ecef2Enu(pos[:], rtk.RtkSol.Rr[3:], vel[:])
	*buff += fmt.Sprintf("$VELACC,%d,%.3f,%d,%.4f,%.4f,%.4f,%.5f,%.5f,%.5f,%.4f,%.4f,%.4f,%.5f,%.5f,%.5f\n",
		week, tow, rtk.RtkSol.Stat, vel[0], vel[1], vel[2], 0.0, 0.0, 0.0,
		0.0, 0.0, 0.0, 0.0, 0.0, 0.0)

	/* receiver clock bias */
	*buff += fmt.Sprintf("$CLK,%d,%.3f,%d,%d,%.3f,%.3f,%.3f,%.3f\n",
		week, tow, rtk.RtkSol.Stat, 1, rtk.RtkSol.Dtr[0]*1e9,
		rtk.RtkSol.Dtr[1]*1e9, rtk.RtkSol.Dtr[2]*1e9, rtk.RtkSol.Dtr[3]*1e9)

	/* satellite status */
	for i := range rtk.Ssat {
		ssat := &rtk.Ssat[i]
		if ssat.Vs == 0 {
			continue
		}
		id := SatNo2Id(i + 1)
		for j := 0; j < rtk.Opt.Nf && j < NFREQ; j++ {
			*buff += fmt.Sprintf("$SAT,%d,%.3f,%s,%d,%.1f,%.1f,%.4f,%.4f,%d,%.2f,%d,%d,%d,%d,%d,%d\n",
				week, tow, id, j+1, ssat.Azel[0]*R2D, ssat.Azel[1]*R2D,
				ssat.Resp[j], ssat.Resc[j], ssat.Vsat[j],
				float64(ssat.Snr[j])*SNR_UNIT, ssat.Fix[j], ssat.Slip[j]&3,
				ssat.Lock[j], ssat.Outc[j], ssat.Slipc[j], ssat.Rejc[j])
		}
	}
	return len(*buff) - n
}
