/*------------------------------------------------------------------------------
* types.go : gnss observation, ephemeris and solution data model
*-----------------------------------------------------------------------------*/
package gnssrt

type ObsD struct { /* observation data record */
	Time     Gtime          /* receiver sampling time (GPST) */
	Sat, Rcv int            /* satellite/receiver number */
	SNR      [NFRQX]uint16  /* signal strength (0.001 dBHz) */
	LLI      [NFRQX]uint8   /* loss of lock indicator */
	Code     [NFRQX]uint8   /* code indicator (CODE_???) */
	Pstd     [NFRQX]uint8   /* pseudorange std-dev index reported by receiver */
	Lstd     [NFRQX]uint8   /* carrier-phase std-dev index reported by receiver */
	L        [NFRQX]float64 /* carrier-phase (cycle) */
	P        [NFRQX]float64 /* pseudorange (m) */
	D        [NFRQX]float64 /* doppler frequency (Hz) */
}

type Obs struct { /* observation data */
	Data []ObsD
}

func (obs *Obs) N() int { return len(obs.Data) }

type Eph struct { /* GPS/QZS/GAL/BDS/IRN broadcast ephemeris */
	Sat        int /* satellite number */
	Iode, Iodc int
	Sva        int /* SV accuracy (URA index) */
	Svh        int /* SV health (0:ok) */
	Week       int /* GPS/QZS: gps week, GAL: galileo week */
	Code       int /* GPS/QZS: code on L2, GAL: data source, BDS: data source */
	Flag       int /* GPS/QZS: L2 P data flag, BDS: nav type */

	Toe, Toc, Ttr Gtime

	/* SV orbit parameters */
	A, E, I0, OMG0, Omg, M0, Deln, OMGd, Idot float64
	Crc, Crs, Cuc, Cus, Cic, Cis              float64

	Toes       float64 /* Toe (s) in week */
	Fit        float64 /* fit interval (h) */
	F0, F1, F2 float64 /* SV clock parameters (af0,af1,af2) */

	Tgd [6]float64 /* group delay parameters */
	/* GPS/QZS: Tgd[0]=TGD
	 * GAL    : Tgd[0]=BGD_E1E5a, Tgd[1]=BGD_E1E5b
	 * BDS    : Tgd[0]=TGD_B1I, Tgd[1]=TGD_B2I/B2b, Tgd[2]=TGD_B1Cp
	 *          Tgd[3]=TGD_B2ap, Tgd[4]=ISC_B1Cd, Tgd[5]=ISC_B2ad */

	Adot, Ndot float64 /* Adot,ndot for CNAV */
}

type GEph struct { /* GLONASS broadcast ephemeris */
	Sat           int        /* satellite number */
	Iode          int        /* IODE (0-6 bit of tb field) */
	Frq           int        /* satellite frequency number */
	Svh, Sva, Age int        /* health, accuracy, age of operation */
	Toe           Gtime      /* epoch of ephemerides (gpst) */
	Tof           Gtime      /* message frame time (gpst) */
	Pos           [3]float64 /* satellite position (ecef) (m) */
	Vel           [3]float64 /* satellite velocity (ecef) (m/s) */
	Acc           [3]float64 /* satellite acceleration (ecef) (m/s^2) */
	Taun, Gamn    float64    /* SV clock bias (s)/relative freq bias */
	DTaun         float64    /* delay between L1 and L2 (s) */
}

type SEph struct { /* SBAS (geo) ephemeris */
	Sat      int
	T0       Gtime /* reference epoch time (GPST) */
	Tof      Gtime /* time of message frame (GPST) */
	Sva, Svh int
	Pos      [3]float64
	Vel      [3]float64
	Acc      [3]float64
	Af0, Af1 float64 /* satellite clock-offset/drift (s,s/s) */
}

type Alm struct { /* almanac */
	Sat    int
	Svh    int
	SvConf int
	Week   int
	Toa    Gtime

	/* SV orbit parameters */
	A, E, I0, OMG0, Omg, M0, OMGd float64

	Toas   float64 /* Toa (s) in week */
	F0, F1 float64 /* SV clock parameters */
}

type PEph struct { /* precise ephemeris record */
	Time  Gtime
	Index int                /* ephemeris index for multiple files */
	Pos   [MAXSAT][4]float64 /* satellite position/clock (ecef) (m|s) */
	Std   [MAXSAT][4]float32
	Vel   [MAXSAT][4]float64 /* satellite velocity/clk-rate (m/s|s/s) */
	Vst   [MAXSAT][4]float32
}

type PClk struct { /* precise clock record */
	Time  Gtime
	Index int
	Clk   [MAXSAT]float64 /* satellite clock (s) */
	Std   [MAXSAT]float32
}

type SbsMsg struct { /* SBAS message */
	Week, Tow int       /* reception time */
	Prn, Rcv  uint8     /* SBAS satellite PRN, receiver number */
	Msg       [29]uint8 /* SBAS message (226bit) padded by 0 */
}

type DGps struct { /* DGPS/DGNSS pseudorange correction */
	T0   Gtime   /* correction time */
	Prc  float64 /* pseudorange correction (m) */
	Rrc  float64 /* range rate correction (m/s) */
	Iod  int     /* issue of data */
	Udre float64
}

type SSR struct { /* SSR correction */
	T0     [6]Gtime   /* epoch time (GPST) {eph,clk,hrclk,ura,bias,pbias} */
	Udi    [6]float64 /* update interval (s) */
	Iod    [6]int     /* iod ssr {eph,clk,hrclk,ura,bias,pbias} */
	Iode   int        /* issue of data */
	IodCrc int        /* issue of data crc for beidou/sbas */
	Ura    int        /* URA indicator */
	Refd   int        /* sat ref datum (0:ITRF,1:regional) */
	Deph   [3]float64 /* delta orbit {radial,along,cross} (m) */
	Ddeph  [3]float64 /* dot delta orbit (m/s) */
	Dclk   [3]float64 /* delta clock {c0,c1,c2} (m,m/s,m/s^2) */
	Hrclk  float64    /* high-rate clock correction (m) */

	Cbias [MAXCODE]float32 /* code biases (m) */
	Pbias [MAXCODE]float64 /* phase biases (m) */
	Stdpb [MAXCODE]float32 /* std-dev of phase biases (m) */

	YawAng, YawRate float64 /* yaw angle and yaw rate (deg,deg/s) */
	Update          uint8   /* update flag */
}

type Nav struct { /* navigation data */
	Ephs []Eph  /* GPS/QZS/GAL/BDS/IRN ephemeris */
	Geph []GEph /* GLONASS ephemeris */
	Seph []SEph /* SBAS ephemeris */
	Peph []PEph /* precise ephemeris */
	Pclk []PClk /* precise clock */
	Alm  []Alm  /* almanac data */

	UtcGps [8]float64 /* GPS delta-UTC parameters {A0,A1,Tot,WNt,dt_LS,WN_LSF,DN,dt_LSF} */
	UtcGlo [8]float64 /* GLONASS UTC parameters {tau_C,tau_GPS} */
	UtcGal [8]float64
	UtcQzs [8]float64
	UtcCmp [8]float64
	UtcIrn [9]float64 /* {A0,A1,Tot,...,dt_LSF,A2} */
	UtcSbs [4]float64

	IonGps [8]float64 /* iono model parameters {a0,a1,a2,a3,b0,b1,b2,b3} */
	IonGal [4]float64 /* {ai0,ai1,ai2,0} */
	IonQzs [8]float64
	IonCmp [8]float64
	IonIrn [8]float64

	GloFcn [32]int /* GLONASS FCN + 8 (0:unknown) */

	Dgps [MAXSAT]DGps /* DGPS corrections */
	Ssr  [MAXSAT]SSR  /* SSR corrections */
}

func (nav *Nav) N() int  { return len(nav.Ephs) }
func (nav *Nav) Ng() int { return len(nav.Geph) }
func (nav *Nav) Ns() int { return len(nav.Seph) }
func (nav *Nav) Na() int { return len(nav.Alm) }

type Sta struct { /* station parameters */
	Name     string /* marker name */
	Marker   string /* marker number */
	AntDes   string /* antenna descriptor */
	AntSno   string /* antenna serial number */
	Type     string /* receiver type descriptor */
	RecVer   string /* receiver firmware version */
	RecSN    string /* receiver serial number */
	AntSetup int    /* antenna setup id */
	Itrf     int    /* ITRF realization year */
	DelType  int    /* antenna delta type (0:enu,1:xyz) */

	Pos [3]float64 /* station position (ecef) (m) */
	Del [3]float64 /* antenna position delta (e/n/u or x/y/z) (m) */
	Hgt float64    /* antenna height (m) */

	GloCpAlign int        /* GLONASS code-phase alignment (0:no,1:yes) */
	GloCpBias  [4]float64 /* GLONASS code-phase biases {1C,1P,2C,2P} (m) */
}

type Sol struct { /* solution */
	Time Gtime      /* time (GPST) */
	Rr   [6]float64 /* position/velocity {x,y,z,vx,vy,vz} or {e,n,u,ve,vn,vu} */
	Qr   [6]float32 /* position variance/covariance (m^2)
	 * {c_xx,c_yy,c_zz,c_xy,c_yz,c_zx} or {c_ee,c_nn,c_uu,c_en,c_nu,c_ue} */
	Qv    [6]float32 /* velocity variance/covariance (m^2/s^2) */
	Dtr   [6]float64 /* receiver clock bias to time systems (s) */
	Type  uint8      /* type (0:xyz-ecef,1:enu-baseline) */
	Stat  uint8      /* solution status (SOLQ_???) */
	Ns    uint8      /* number of valid satellites */
	Age   float32    /* age of differential (s) */
	Ratio float32    /* AR ratio factor for validation */
	Thres float32    /* AR ratio threshold for validation */
}

type SolBuf struct { /* solution buffer */
	N, Nmax    int /* number of solutions/buffer size */
	Cyclic     int /* cyclic buffer flag */
	Start, End int
	Time       Gtime /* current solution time */
	Data       []Sol
	Rb         [3]float64 /* reference position {x,y,z} (ecef) (m) */
	buff       []byte     /* pending input text */
}

type SolStat struct { /* per-satellite solution status */
	Time   Gtime
	Sat    uint8
	Frq    uint8 /* frequency (1:L1,2:L2,...) */
	Az, El float32
	Resp   float32 /* pseudorange residual (m) */
	Resc   float32 /* carrier-phase residual (m) */
	Flag   uint8   /* flags: (vsat<<5)+(slip<<3)+fix */
	Snr    uint16  /* signal strength (*SNR_UNIT dBHz) */

	Lock, Outc  uint16
	Slipc, Rejc uint16
}

type SolStatBuf struct {
	Data []SolStat
	buff []byte
}

type SSat struct { /* satellite status */
	Sys   uint8 /* navigation system */
	Vs    uint8 /* valid satellite flag */
	Azel  [2]float64
	Resp  [NFREQ]float32
	Resc  [NFREQ]float32
	Vsat  [NFREQ]uint8
	Snr   [NFREQ]uint16
	Fix   [NFREQ]uint8 /* ambiguity fix flag (1:fix,2:float,3:hold) */
	Slip  [NFREQ]uint8
	Half  [NFREQ]uint8
	Lock  [NFREQ]int
	Outc  [NFREQ]uint32
	Slipc [NFREQ]uint32
	Rejc  [NFREQ]uint32
	Pt    [2][NFREQ]Gtime   /* previous carrier-phase time */
	Ph    [2][NFREQ]float64 /* previous carrier-phase (cycle) */
}

type SnrMask struct {
	Ena  [2]int            /* enable flag {rover,base} */
	Mask [NFREQ][9]float64 /* mask (dBHz) at 5,10,...85 deg */
}

type PrcOpt struct { /* processing options */
	Mode      int /* positioning mode (PMODE_???) */
	SolType   int /* solution type (0:forward,1:backward,2:combined) */
	Nf        int /* number of frequencies */
	NavSys    int /* navigation systems */
	Elmin     float64
	SnrMask   SnrMask
	SatEph    int /* satellite ephemeris option (EPHOPT_???) */
	ModeAr    int /* AR mode (ARMODE_???) */
	GloModeAr int
	BdsModeAr int
	MaxOut    int /* obs outage count to reset bias */
	MinLock   int
	MinFix    int
	IonoOpt   int
	TropOpt   int
	Dynamics  int /* dynamics model (0:none,1:velocity,2:accel) */
	TideCorr  int
	NoIter    int

	RovPos int /* rover position source for fixed mode (POSOPT_???) */
	RefPos int /* base position source for relative mode */

	Eratio    [NFREQ]float64
	Err       [5]float64 /* measurement error factors */
	Std       [3]float64 /* initial-state std {bias,iono,trop} */
	Prn       [6]float64 /* process-noise std */
	ThresAr   [8]float64 /* AR validation thresholds */
	ElMaskAr  float64
	ThresSlip float64
	MaxTmDiff float64 /* max age of differential (s) */
	MaxInno   float64
	MaxGdop   float64

	Ru [3]float64 /* rover position for fixed mode (ecef) (m) */
	Rb [3]float64 /* base position for relative mode (ecef) (m) */

	AntType [2]string /* antenna types {rover,base} */
	AntDel  [2][3]float64

	ExSats    [MAXSAT]uint8 /* excluded satellites (1:excluded,2:included) */
	MaxAveEp  int           /* max averaging epochs for base position */
	InitRst   int           /* initialize by restart */
	OutSingle int           /* output single by dgps/float/fix outage */
	SyncSol   int           /* solution sync mode (0:off,1:on) */
}

type SolOpt struct { /* solution output options */
	Posf      int /* solution format (SOLF_???) */
	TimeS     int /* time system (TIMES_???) */
	TimeF     int /* time format (0:sssss.s,1:yyyy/mm/dd hh:mm:ss.s) */
	TimeU     int /* time digits under decimal point */
	DegF      int /* lat/lon format (0:ddd.ddd,1:ddd mm ss) */
	OutHead   int
	OutOpt    int
	OutVel    int
	Height    int /* height (0:ellipsoidal,1:geodetic) */
	SolStatic int
	SStat     int /* solution statistics level */
	Trace     int /* debug trace level */

	NmeaIntv [2]float64 /* nmea output interval (s) (<0:no,0:all)
	 * [0]:RMC/GGA, [1]:GSA/GSV */

	Sep       string  /* field separator */
	Prog      string  /* program name */
	MaxSolStd float64 /* max std-dev for solution output (m) (0:all) */
}

/* default processing options */
func DefaultProcOpt() PrcOpt {
	return PrcOpt{
		Mode: PMODE_SINGLE, SolType: 0, Nf: 2,
		NavSys: SYS_GPS | SYS_GLO | SYS_GAL | SYS_QZS | SYS_CMP,
		Elmin:  15.0 * D2R,
		SatEph: EPHOPT_BRDC, ModeAr: ARMODE_CONT,
		MaxOut: 5, MinLock: 0, MinFix: 10,
		IonoOpt: IONOOPT_BRDC, TropOpt: TROPOPT_SAAS,
		Eratio:    [NFREQ]float64{100.0, 100.0, 100.0},
		Err:       [5]float64{100.0, 0.003, 0.003, 0.0, 1.0},
		Std:       [3]float64{30.0, 0.03, 0.3},
		Prn:       [6]float64{1e-4, 1e-3, 1e-4, 1e-1, 1e-2, 0.0},
		ThresAr:   [8]float64{3.0, 0.9999, 0.25, 0.1, 0.05},
		ThresSlip: 0.05,
		MaxTmDiff: 30.0, MaxInno: 30.0, MaxGdop: 30.0,
	}
}

/* default solution output options */
func DefaultSolOpt() SolOpt {
	return SolOpt{
		Posf: SOLF_LLH, TimeS: TIMES_GPST, TimeF: 1, TimeU: 3,
		OutHead: 1,
		Sep:     " ", Prog: "gnssrt",
	}
}
