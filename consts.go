/*------------------------------------------------------------------------------
* consts.go : gnssrt constants
*
* notes  :
*     frequency values, code tables and quantization constants follow the
*     relevant ICDs (IS-GPS-200, GLONASS ICD 5.1, Galileo OS SIS ICD, BDS
*     ICD 3.0, IS-QZSS, IRNSS ICD) and RTCM 10403.3
*-----------------------------------------------------------------------------*/
package gnssrt

const (
	VER_GNSSRT = "1.0.0" /* library version */

	PI       = 3.1415926535897932  /* pi */
	D2R      = PI / 180.0          /* deg to rad */
	R2D      = 180.0 / PI          /* rad to deg */
	CLIGHT   = 299792458.0         /* speed of light (m/s) */
	SC2RAD   = 3.1415926535898     /* semi-circle to radian (IS-GPS) */
	OMGE     = 7.2921151467e-5     /* earth angular velocity (IS-GPS) (rad/s) */
	RE_WGS84 = 6378137.0           /* earth semimajor axis (WGS84) (m) */
	FE_WGS84 = 1.0 / 298.257223563 /* earth flattening (WGS84) */
)

/* carrier frequencies (Hz) */
const (
	FREQ1      = 1.57542e9  /* L1/E1/B1C */
	FREQ2      = 1.22760e9  /* L2 */
	FREQ5      = 1.17645e9  /* L5/E5a/B2a */
	FREQ6      = 1.27875e9  /* E6/L6 */
	FREQ7      = 1.20714e9  /* E5b */
	FREQ8      = 1.191795e9 /* E5a+b */
	FREQ9      = 2.492028e9 /* S */
	FREQ1_GLO  = 1.60200e9  /* GLONASS G1 base */
	DFRQ1_GLO  = 0.56250e6  /* GLONASS G1 bias (Hz/n) */
	FREQ2_GLO  = 1.24600e9  /* GLONASS G2 base */
	DFRQ2_GLO  = 0.43750e6  /* GLONASS G2 bias (Hz/n) */
	FREQ3_GLO  = 1.202025e9 /* GLONASS G3 */
	FREQ1a_GLO = 1.600995e9 /* GLONASS G1a */
	FREQ2a_GLO = 1.248060e9 /* GLONASS G2a */
	FREQ1_CMP  = 1.561098e9 /* BDS B1I */
	FREQ2_CMP  = 1.20714e9  /* BDS B2I/B2b */
	FREQ3_CMP  = 1.26852e9  /* BDS B3 */
)

/* navigation systems */
const (
	SYS_NONE = 0x00
	SYS_GPS  = 0x01
	SYS_SBS  = 0x02
	SYS_GLO  = 0x04
	SYS_GAL  = 0x08
	SYS_QZS  = 0x10
	SYS_CMP  = 0x20
	SYS_IRN  = 0x40
	SYS_ALL  = 0xFF
)

/* satellite number ranges */
const (
	NFREQ     = 3 /* number of carrier frequencies */
	NFREQGLO  = 2 /* number of GLONASS frequencies */
	NEXOBS    = 0 /* number of extended obs codes */
	NFRQX     = NFREQ + NEXOBS
	SNR_UNIT  = 0.001 /* SNR unit (dBHz) */
	MINPRNGPS = 1
	MAXPRNGPS = 32
	NSATGPS   = MAXPRNGPS - MINPRNGPS + 1
	MINPRNGLO = 1
	MAXPRNGLO = 27
	NSATGLO   = MAXPRNGLO - MINPRNGLO + 1
	MINPRNGAL = 1
	MAXPRNGAL = 36
	NSATGAL   = MAXPRNGAL - MINPRNGAL + 1
	MINPRNQZS = 193
	MAXPRNQZS = 202
	NSATQZS   = MAXPRNQZS - MINPRNQZS + 1
	MINPRNCMP = 1
	MAXPRNCMP = 63
	NSATCMP   = MAXPRNCMP - MINPRNCMP + 1
	MINPRNIRN = 1
	MAXPRNIRN = 14
	NSATIRN   = MAXPRNIRN - MINPRNIRN + 1
	MINPRNSBS = 120
	MAXPRNSBS = 158
	NSATSBS   = MAXPRNSBS - MINPRNSBS + 1
	NSYS      = 7
	MAXSAT    = NSATGPS + NSATGLO + NSATGAL + NSATQZS + NSATCMP + NSATIRN + NSATSBS
)

/* limits and tolerances */
const (
	MAXRCV      = 64      /* max receiver number (1 to MAXRCV) */
	MAXOBS      = 96      /* max number of obs in an epoch */
	DTTOL       = 0.025   /* tolerance of time difference (s) */
	MAXDTOE     = 7200.0  /* max time difference to GPS Toe (s) */
	MAXDTOE_GLO = 1800.0  /* max time difference to GLONASS Toe (s) */
	MAXDTOE_SBS = 360.0   /* max time difference to SBAS Toe (s) */
	MAXSBSMSG   = 32      /* max number of SBAS msg in RTK server */
	MAXSOLMSG   = 8191    /* max length of solution message */
	MAXRAWLEN   = 16384   /* max length of receiver raw message */
	MAXANT      = 64      /* max length of station name/antenna type */
	MAXSOLBUF   = 256     /* max number of solution buffer */
	MAXOBSBUF   = 128     /* max number of observation data buffer */
	MAXLEAPS    = 64      /* max number of leap seconds table */
	MAXSTRPATH  = 1024    /* max length of stream path */
	MAXSTRMSG   = 1024    /* max length of stream message */
	MAXRCVCMD   = 4096    /* max length of receiver commands */
	MAXSTRSVR   = 16      /* max number of streams in stream server */
	MAXSTRRTK   = 8       /* max number of streams in RTK server */
	INT_SWAP_TR = 86400.0 /* swap interval of trace file (s) */
)

/* observation codes (RINEX 3.04) */
const (
	CODE_NONE = 0  /* none or unknown */
	CODE_L1C  = 1  /* L1C/A,G1C/A,E1C (GPS,GLO,GAL,QZS,SBS) */
	CODE_L1P  = 2  /* L1P,G1P,B1P (GPS,GLO,BDS) */
	CODE_L1W  = 3  /* L1 Z-track (GPS) */
	CODE_L1Y  = 4  /* L1Y (GPS) */
	CODE_L1M  = 5  /* L1M (GPS) */
	CODE_L1N  = 6  /* L1codeless,B1codeless (GPS,BDS) */
	CODE_L1S  = 7  /* L1C(D) (GPS,QZS) */
	CODE_L1L  = 8  /* L1C(P) (GPS,QZS) */
	CODE_L1E  = 9  /* (not used) */
	CODE_L1A  = 10 /* E1A,B1A (GAL,BDS) */
	CODE_L1B  = 11 /* E1B (GAL) */
	CODE_L1X  = 12 /* E1B+C,L1C(D+P),B1D+P (GAL,QZS,BDS) */
	CODE_L1Z  = 13 /* E1A+B+C,L1S (GAL,QZS) */
	CODE_L2C  = 14 /* L2C/A,G1C/A (GPS,GLO) */
	CODE_L2D  = 15 /* L2 L1C/A-(P2-P1) (GPS) */
	CODE_L2S  = 16 /* L2C(M) (GPS,QZS) */
	CODE_L2L  = 17 /* L2C(L) (GPS,QZS) */
	CODE_L2X  = 18 /* L2C(M+L),B1_2I+Q (GPS,QZS,BDS) */
	CODE_L2P  = 19 /* L2P,G2P (GPS,GLO) */
	CODE_L2W  = 20 /* L2 Z-track (GPS) */
	CODE_L2Y  = 21 /* L2Y (GPS) */
	CODE_L2M  = 22 /* L2M (GPS) */
	CODE_L2N  = 23 /* L2codeless (GPS) */
	CODE_L5I  = 24 /* L5I,E5aI (GPS,GAL,QZS,SBS) */
	CODE_L5Q  = 25 /* L5Q,E5aQ (GPS,GAL,QZS,SBS) */
	CODE_L5X  = 26 /* L5I+Q,E5aI+Q,L5B+C,B2aD+P (GPS,GAL,QZS,IRN,SBS,BDS) */
	CODE_L7I  = 27 /* E5bI,B2bI (GAL,BDS) */
	CODE_L7Q  = 28 /* E5bQ,B2bQ (GAL,BDS) */
	CODE_L7X  = 29 /* E5bI+Q,B2bI+Q (GAL,BDS) */
	CODE_L6A  = 30 /* E6A,B3A (GAL,BDS) */
	CODE_L6B  = 31 /* E6B (GAL) */
	CODE_L6C  = 32 /* E6C (GAL) */
	CODE_L6X  = 33 /* E6B+C,LEXS+L,B3I+Q (GAL,QZS,BDS) */
	CODE_L6Z  = 34 /* E6A+B+C,L6D+E (GAL,QZS) */
	CODE_L6S  = 35 /* L6S (QZS) */
	CODE_L6L  = 36 /* L6L (QZS) */
	CODE_L8I  = 37 /* E5abI (GAL) */
	CODE_L8Q  = 38 /* E5abQ (GAL) */
	CODE_L8X  = 39 /* E5abI+Q,B2abD+P (GAL,BDS) */
	CODE_L2I  = 40 /* B1_2I (BDS) */
	CODE_L2Q  = 41 /* B1_2Q (BDS) */
	CODE_L6I  = 42 /* B3I (BDS) */
	CODE_L6Q  = 43 /* B3Q (BDS) */
	CODE_L3I  = 44 /* G3I (GLO) */
	CODE_L3Q  = 45 /* G3Q (GLO) */
	CODE_L3X  = 46 /* G3I+Q (GLO) */
	CODE_L1I  = 47 /* B1I (BDS) (obsolete) */
	CODE_L1Q  = 48 /* B1Q (BDS) (obsolete) */
	CODE_L5A  = 49 /* L5A SPS (IRN) */
	CODE_L5B  = 50 /* L5B RS(D) (IRN) */
	CODE_L5C  = 51 /* L5C RS(P) (IRN) */
	CODE_L9A  = 52 /* SA SPS (IRN) */
	CODE_L9B  = 53 /* SB RS(D) (IRN) */
	CODE_L9C  = 54 /* SC RS(P) (IRN) */
	CODE_L9X  = 55 /* SB+C (IRN) */
	CODE_L1D  = 56 /* B1D (BDS) */
	CODE_L5D  = 57 /* L5D(L5S),B2aD (QZS,BDS) */
	CODE_L5P  = 58 /* L5P(L5S),B2aP (QZS,BDS) */
	CODE_L5Z  = 59 /* L5D+P(L5S) (QZS) */
	CODE_L6E  = 60 /* L6E (QZS) */
	CODE_L7D  = 61 /* B2bD (BDS) */
	CODE_L7P  = 62 /* B2bP (BDS) */
	CODE_L7Z  = 63 /* B2bD+P (BDS) */
	CODE_L8D  = 64 /* B2abD (BDS) */
	CODE_L8P  = 65 /* B2abP (BDS) */
	CODE_L4A  = 66 /* G1aL1OCd (GLO) */
	CODE_L4B  = 67 /* G1aL1OCp (GLO) */
	CODE_L4X  = 68 /* G1aL1OCd+p (GLO) */
	MAXCODE   = 68
)

/* positioning modes */
const (
	PMODE_SINGLE       = 0
	PMODE_DGPS         = 1
	PMODE_KINEMA       = 2
	PMODE_STATIC       = 3
	PMODE_STATIC_START = 4
	PMODE_MOVEB        = 5
	PMODE_FIXED        = 6
	PMODE_PPP_KINEMA   = 7
	PMODE_PPP_STATIC   = 8
	PMODE_PPP_FIXED    = 9
)

/* solution formats and status */
const (
	SOLF_LLH  = 0 /* lat/lon/height */
	SOLF_XYZ  = 1 /* x/y/z-ecef */
	SOLF_ENU  = 2 /* e/n/u-baseline */
	SOLF_NMEA = 3 /* NMEA-0183 */
	SOLF_STAT = 4 /* solution status */

	SOLQ_NONE   = 0 /* no solution */
	SOLQ_FIX    = 1 /* fixed */
	SOLQ_FLOAT  = 2 /* float */
	SOLQ_SBAS   = 3 /* SBAS */
	SOLQ_DGPS   = 4 /* DGPS/DGNSS */
	SOLQ_SINGLE = 5 /* single */
	SOLQ_PPP    = 6 /* PPP */
	SOLQ_DR     = 7 /* dead reckoning */
	MAXSOLQ     = 7

	TIMES_GPST = 0 /* time system: gps time */
	TIMES_UTC  = 1 /* time system: utc */
	TIMES_JST  = 2 /* time system: jst */
)

/* processing options */
const (
	IONOOPT_OFF  = 0 /* correction off */
	IONOOPT_BRDC = 1 /* broadcast model */
	IONOOPT_SBAS = 2 /* SBAS model */
	IONOOPT_IFLC = 3 /* L1/L2 iono-free LC */
	IONOOPT_EST  = 4 /* estimation */
	IONOOPT_TEC  = 5 /* IONEX TEC model */
	IONOOPT_QZS  = 6 /* QZSS broadcast model */

	TROPOPT_OFF  = 0 /* correction off */
	TROPOPT_SAAS = 1 /* Saastamoinen model */
	TROPOPT_SBAS = 2 /* SBAS model */
	TROPOPT_EST  = 3 /* ZTD estimation */
	TROPOPT_ESTG = 4 /* ZTD+grad estimation */

	EPHOPT_BRDC   = 0 /* broadcast ephemeris */
	EPHOPT_PREC   = 1 /* precise ephemeris */
	EPHOPT_SBAS   = 2 /* broadcast + SBAS */
	EPHOPT_SSRAPC = 3 /* broadcast + SSR (antenna phase center) */
	EPHOPT_SSRCOM = 4 /* broadcast + SSR (center of mass) */

	ARMODE_OFF     = 0 /* AR off */
	ARMODE_CONT    = 1 /* continuous */
	ARMODE_INST    = 2 /* instantaneous */
	ARMODE_FIXHOLD = 3 /* fix and hold */

	POSOPT_POS    = 0 /* LLH/XYZ in options */
	POSOPT_SINGLE = 1 /* average of single pos */
	POSOPT_FILE   = 2 /* read from pos file */
	POSOPT_RINEX  = 3 /* rinex header pos */
	POSOPT_RTCM   = 4 /* rtcm/raw station pos */
)

/* stream types and modes */
const (
	STR_NONE     = 0
	STR_SERIAL   = 1
	STR_FILE     = 2
	STR_TCPSVR   = 3
	STR_TCPCLI   = 4
	STR_NTRIPSVR = 5
	STR_NTRIPCLI = 6
	STR_FTP      = 7
	STR_HTTP     = 8
	STR_NTRIPCAS = 9
	STR_UDPSVR   = 10
	STR_UDPCLI   = 11
	STR_MEMBUF   = 12

	STR_MODE_R  = 0x1 /* read */
	STR_MODE_W  = 0x2 /* write */
	STR_MODE_RW = 0x3 /* read/write */
)

/* stream formats */
const (
	STRFMT_RTCM2 = 0 /* RTCM 2 */
	STRFMT_RTCM3 = 1 /* RTCM 3 */
	STRFMT_UBX   = 2 /* u-blox UBX */
	STRFMT_NMEA  = 3 /* NMEA 0183 */
	MAXRCVFMT    = 2 /* max number of receiver format */
)

/* loss-of-lock indicator bits */
const (
	LLI_SLIP   = 0x01 /* cycle slip */
	LLI_HALFC  = 0x02 /* half-cycle not resolved */
	LLI_BOCTRK = 0x04 /* boc tracking of mboc signal */
	LLI_HALFA  = 0x40 /* half-cycle added */
	LLI_HALFS  = 0x80 /* half-cycle subtracted */
)

const (
	COMMENTH    = "%"                /* comment line indicator for solution */
	MSG_DISCONN = "$_DISCONNECT\r\n" /* disconnect message */
)

/* power-of-two scale factors for ICD field quantization */
const (
	P2_5  = 0.03125
	P2_6  = 0.015625
	P2_8  = 0.00390625
	P2_10 = 0.0009765625
	P2_11 = 4.882812500000000e-04
	P2_15 = 3.051757812500000e-05
	P2_17 = 7.629394531250000e-06
	P2_19 = 1.907348632812500e-06
	P2_20 = 9.536743164062500e-07
	P2_21 = 4.768371582031250e-07
	P2_23 = 1.192092895507810e-07
	P2_24 = 5.960464477539063e-08
	P2_27 = 7.450580596923828e-09
	P2_28 = 3.725290298461914e-09
	P2_29 = 1.862645149230957e-09
	P2_30 = 9.313225746154785e-10
	P2_31 = 4.656612873077393e-10
	P2_32 = 2.328306436538696e-10
	P2_33 = 1.164153218269348e-10
	P2_34 = 5.820766091346740e-11
	P2_35 = 2.910383045673370e-11
	P2_38 = 3.637978807091710e-12
	P2_39 = 1.818989403545856e-12
	P2_40 = 9.094947017729280e-13
	P2_41 = 4.547473508864641e-13
	P2_43 = 1.136868377216160e-13
	P2_46 = 1.421085471520200e-14
	P2_48 = 3.552713678800501e-15
	P2_50 = 8.881784197001252e-16
	P2_51 = 4.440892098500626e-16
	P2_55 = 2.775557561562891e-17
	P2_59 = 1.734723475976810e-18
	P2_66 = 1.355252715606880e-20
	P2_68 = 3.388131789017201e-21

	P2P11 = 2048.0
	P2P12 = 4096.0
	P2P14 = 16384.0
	P2P16 = 65536.0
)

/* raw/rtcm decoder return codes */
const (
	DECODE_ERROR = -1 /* error message */
	DECODE_NONE  = 0  /* no message */
	DECODE_OBS   = 1  /* input observation data */
	DECODE_EPH   = 2  /* input ephemeris */
	DECODE_SBAS  = 3  /* input sbas message */
	DECODE_STA   = 5  /* input station parameters */
	DECODE_DGPS  = 7  /* input dgps corrections */
	DECODE_SSR   = 10 /* input ssr messages */
	DECODE_LEX   = 31 /* input lex messages (not used) */
	DECODE_ION   = 9  /* input ion/utc parameters */
)
