/*------------------------------------------------------------------------------
* rtcm.go : rtcm control and message framing
*
* references :
*     [1] RTCM Recommended Standards for Differential GNSS Service version 2.3,
*         August 20, 2001
*     [2] RTCM Standard 10403.3, Differential GNSS (Global Navigation Satellite
*         Systems) Services - version 3, with amendment 1, April 28, 2020
*     [3] IGS State Space Representation (SSR) Format version 1.00, October 5,
*         2020
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"io"
	"os"
)

const (
	RTCM2PREAMB = 0x66 /* rtcm ver.2 frame preamble */
	RTCM3PREAMB = 0xD3 /* rtcm ver.3 frame preamble */
)

type Rtcm struct { /* rtcm control */
	StaId     int   /* station id */
	StaHealth int   /* station health */
	SeqNo     int   /* sequence number for rtcm 2 or iods msm */
	OutType   int   /* output message type enabled */
	Time      Gtime /* message time */
	TimeS     Gtime /* observation data start time */

	ObsData Obs    /* observation data (uncorrected) */
	NavData Nav    /* satellite ephemerides */
	StaPara Sta    /* station parameters */
	Dgps    [MAXSAT]DGps /* output of dgps corrections */
	Ssr     [MAXSAT]SSR

	Msg     string    /* special message */
	MsgType string    /* last message type */
	MsmType [7]string /* msm signal types */

	ObsFlag int /* obs data complete flag (1:ok,0:not complete) */
	EphSat  int /* input ephemeris satellite number */
	EphSet  int /* input ephemeris set (0-1) */

	Cp     [MAXSAT][NFRQX]float64 /* carrier-phase measurement */
	Lock   [MAXSAT][NFRQX]uint16  /* lock time */
	Loss   [MAXSAT][NFRQX]uint16  /* loss of lock count */
	Lltime [MAXSAT][NFRQX]Gtime   /* last lock time */

	Nbyte  int /* number of bytes in message buffer */
	Nbit   int /* number of bits in word buffer */
	MsgLen int /* message length (bytes) */

	Buff  [1200]uint8   /* message buffer */
	Word  uint32        /* word buffer for rtcm 2 */
	Nmsg2 [100]uint16   /* message count of rtcm 2 (1-99:1-99,0:other) */
	Nmsg3 [400]uint16   /* message count of rtcm 3 (1-299:1001-1299, */
	                    /* 300-329:4070-4099,0:other) */
	Opt string /* rtcm dependent options */
}

func retSync(sync int, obsFlag *int) int {
	if sync > 0 {
		*obsFlag = 0
		return 0
	}
	*obsFlag = 1
	return 1
}

/* initialize rtcm control -----------------------------------------------------
* initialize rtcm control struct and allocate the observation and ephemeris
* buffers
* args   : rtcm *Rtcm       IO  rtcm control struct
* return : status (1:ok,0:error)
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) InitRtcm() int {
	Trace(4, "InitRtcm:\n")

	if rtcm == nil {
		return 0
	}
	*rtcm = Rtcm{}

	rtcm.ObsData.Data = make([]ObsD, 0, MAXOBS)
	rtcm.NavData.Ephs = make([]Eph, MAXSAT*2)
	rtcm.NavData.Geph = make([]GEph, NSATGLO)

	for i := range rtcm.NavData.Ephs {
		rtcm.NavData.Ephs[i] = Eph{Iode: -1, Iodc: -1}
	}
	for i := range rtcm.NavData.Geph {
		rtcm.NavData.Geph[i] = GEph{Iode: -1}
	}
	return 1
}

/* input RTCM 2 message from stream --------------------------------------------
* fetch next RTCM 2 message and input a message from byte stream
* args   : rtcm *Rtcm       IO  rtcm control struct
*          data uint8       I   stream data (1 byte)
* return : status (-1: error message, 0: no message, 1: input observation data,
*                  2: input ephemeris, 5: input station pos/ant parameters,
*                  6: input time parameter, 7: input dgps corrections,
*                  9: input special message)
* notes  : before firstly calling the function, time in rtcm control struct has
*          to be set to the approximate time within 1/2 hour in order to
*          resolve ambiguity of time in rtcm messages.
*          supported msgs RTCM ver.2: 1,3,9,14,16,17,18,19,22
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) InputRtcm2(data uint8) int {
	Trace(5, "InputRtcm2: data=%02x\n", data)

	if data&0xC0 != 0x40 {
		return 0 /* ignore if upper 2bit != 01 */
	}
	for i := 0; i < 6; i, data = i+1, data>>1 { /* decode 6-of-8 form */
		rtcm.Word = rtcm.Word<<1 + uint32(data&1)

		/* synchronize frame */
		if rtcm.Nbyte == 0 {
			preamb := uint8(rtcm.Word >> 22)
			if rtcm.Word&0x40000000 != 0 {
				preamb ^= 0xFF /* decode preamble */
			}
			if preamb != RTCM2PREAMB {
				continue
			}
			/* check parity */
			if DecodeWord(rtcm.Word, rtcm.Buff[:]) == 0 {
				continue
			}
			rtcm.Nbyte = 3
			rtcm.Nbit = 0
			continue
		}
		if rtcm.Nbit++; rtcm.Nbit < 30 {
			continue
		}
		rtcm.Nbit = 0

		/* check parity */
		if DecodeWord(rtcm.Word, rtcm.Buff[rtcm.Nbyte:]) == 0 {
			Trace(2, "rtcm2 parity error: i=%d word=%08x\n", i, rtcm.Word)
			rtcm.Nbyte = 0
			rtcm.Word &= 0x3
			continue
		}
		rtcm.Nbyte += 3
		if rtcm.Nbyte == 6 {
			rtcm.MsgLen = int(rtcm.Buff[5]>>3)*3 + 6
		}
		if rtcm.Nbyte < rtcm.MsgLen {
			continue
		}
		rtcm.Nbyte = 0
		rtcm.Word &= 0x3

		/* decode rtcm2 message */
		return rtcm.DecodeRtcm2()
	}
	return 0
}

/* input RTCM 3 message from stream --------------------------------------------
* fetch next RTCM 3 message and input a message from byte stream
* args   : rtcm *Rtcm       IO  rtcm control struct
*          data uint8       I   stream data (1 byte)
* return : status (-1: error message, 0: no message, 1: input observation data,
*                  2: input ephemeris, 5: input station pos/ant parameters,
*                  10: input ssr messages)
* notes  : before firstly calling the function, time in rtcm control struct has
*          to be set to the approximate time within 1/2 week in order to
*          resolve ambiguity of time in rtcm messages.
*
*          to specify input options, set rtcm.Opt to the following option
*          strings separated by spaces.
*
*          -EPHALL  : input all ephemerides (default: only new)
*          -STA=nnn : input only message with STAID=nnn (default: all)
*          -GLss    : select signal ss for GPS MSM (ss=1C,1P,...)
*          -RLss    : select signal ss for GLO MSM (ss=1C,1P,...)
*          -ELss    : select signal ss for GAL MSM (ss=1C,1B,...)
*          -JLss    : select signal ss for QZS MSM (ss=1C,2C,...)
*          -CLss    : select signal ss for BDS MSM (ss=2I,7I,...)
*          -ILss    : select signal ss for IRN MSM (ss=5A,9A,...)
*          -GALINAV : select I/NAV for Galileo ephemeris (default: all)
*          -GALFNAV : select F/NAV for Galileo ephemeris (default: all)
*
*          supported RTCM 3 messages:
*
*            TYPE       :  GPS   GLONASS Galileo  QZSS     BDS    SBAS    NavIC
*         ----------------------------------------------------------------------
*          OBS COMP L1  : 1001~   1009~     -       -       -       -       -
*              FULL L1  : 1002    1010      -       -       -       -       -
*              COMP L1L2: 1003~   1011~     -       -       -       -       -
*              FULL L1L2: 1004    1012      -       -       -       -       -
*
*          NAV          : 1019    1020    1045**  1044    1042      -     1041
*                           -       -     1046**    -       63*     -       -
*
*          MSM 1        : 1071~   1081~   1091~   1111~   1121~   1101~   1131~
*              2        : 1072~   1082~   1092~   1112~   1122~   1102~   1132~
*              3        : 1073~   1083~   1093~   1113~   1123~   1103~   1133~
*              4        : 1074    1084    1094    1114    1124    1104    1134
*              5        : 1075    1085    1095    1115    1125    1105    1135
*              6        : 1076    1086    1096    1116    1126    1106    1136
*              7        : 1077    1087    1097    1117    1127    1107    1137
*
*          SSR ORBIT    : 1057    1063      -       -       -       -       -
*              CLOCK    : 1058    1064      -       -       -       -       -
*              CODE BIAS: 1059    1065      -       -       -       -       -
*              OBT/CLK  : 1060    1066      -       -       -       -       -
*              URA      : 1061    1067      -       -       -       -       -
*              HR-CLOCK : 1062    1068      -       -       -       -       -
*
*          ANT/RCV INFO : 1007    1008    1033
*          STA POSITION : 1005    1006
*          GLO BIASES   : 1230
*         ----------------------------------------------------------------------
*                            (** 1045:F/NAV,1046:I/NAV, ~ only encode)
*
*          for MSM observation data with multiple signals for a frequency,
*          a signal is selected according to internal priority. to select
*          a specified signal, use the input options.
*
*          RTCM 3 message format:
*            +----------+--------+-----------+--------------------+----------+
*            | preamble | 000000 |  length   |    data message    |  parity  |
*            +----------+--------+-----------+--------------------+----------+
*            |<-- 8 --->|<- 6 -->|<-- 10 --->|<--- length x 8 --->|<-- 24 -->|
*
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) InputRtcm3(data uint8) int {
	Trace(5, "InputRtcm3: data=%02x\n", data)

	/* synchronize frame */
	if rtcm.Nbyte == 0 {
		if data != RTCM3PREAMB {
			return 0
		}
		rtcm.Buff[rtcm.Nbyte] = data
		rtcm.Nbyte++
		return 0
	}
	rtcm.Buff[rtcm.Nbyte] = data
	rtcm.Nbyte++

	if rtcm.Nbyte == 3 {
		rtcm.MsgLen = int(GetBitU(rtcm.Buff[:], 14, 10)) + 3 /* length without parity */
	}
	if rtcm.Nbyte < 3 || rtcm.Nbyte < rtcm.MsgLen+3 {
		return 0
	}
	rtcm.Nbyte = 0

	/* check parity */
	if CRC24q(rtcm.Buff[:], rtcm.MsgLen) != GetBitU(rtcm.Buff[:], rtcm.MsgLen*8, 24) {
		Trace(2, "rtcm3 parity error: len=%d\n", rtcm.MsgLen)
		return 0
	}
	/* decode rtcm3 message */
	return rtcm.DecodeRtcm3()
}

/* input RTCM 2 message from file (-2: end of file, else same as InputRtcm2) */
func (rtcm *Rtcm) InputRtcm2F(fp *os.File) int {
	Trace(4, "InputRtcm2F:\n")

	var c [1]byte
	for i := 0; i < 4096; i++ {
		if _, err := fp.Read(c[:]); err == io.EOF {
			return -2
		}
		if ret := rtcm.InputRtcm2(c[0]); ret != 0 {
			return ret
		}
	}
	return 0 /* return at every 4k bytes */
}

/* input RTCM 3 message from file (-2: end of file, else same as InputRtcm3) */
func (rtcm *Rtcm) InputRtcm3F(fp *os.File) int {
	Trace(4, "InputRtcm3F:\n")

	var c [1]byte
	for i := 0; i < 4096; i++ {
		if _, err := fp.Read(c[:]); err == io.EOF {
			return -2
		}
		if ret := rtcm.InputRtcm3(c[0]); ret != 0 {
			return ret
		}
	}
	return 0 /* return at every 4k bytes */
}

/* generate RTCM 2 message -----------------------------------------------------
* generate RTCM 2 message
* args   : rtcm *Rtcm       IO  rtcm control struct
*          ctype int        I   message type
*          sync int         I   sync flag (1:another message follows)
* return : status (1:ok,0:error)
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) GenRtcm2(ctype, sync int) int {
	Trace(4, "GenRtcm2: type=%d sync=%d\n", ctype, sync)

	rtcm.Nbit, rtcm.MsgLen, rtcm.Nbyte = 0, 0, 0

	/* encoding of rtcm 2 is not supported */

	return 0
}

/* generate RTCM 3 message -----------------------------------------------------
* generate RTCM 3 message
* args   : rtcm *Rtcm       IO  rtcm control struct
*          ctype int        I   message type
*          subtype int      I   message subtype
*          sync int         I   sync flag (1:another message follows)
* return : status (1:ok,0:error)
* notes  : for rtcm 3 msm, the {nsat} x {nsig} in rtcm.ObsData should not
*          exceed 64. if {nsat} x {nsig} of the input obs data exceeds 64,
*          separate them to multiple ones and call GenRtcm3() multiple times
*          as user responsibility.
*          ({nsat} = number of valid satellites, {nsig} = number of signals in
*          the obs data)
*-----------------------------------------------------------------------------*/
func (rtcm *Rtcm) GenRtcm3(ctype, subtype, sync int) int {
	Trace(4, "GenRtcm3: type=%d subtype=%d sync=%d\n", ctype, subtype, sync)

	rtcm.Nbit, rtcm.MsgLen, rtcm.Nbyte = 0, 0, 0

	/* set preamble and reserved */
	i := 0
	SetBitU(rtcm.Buff[:], i, 8, RTCM3PREAMB)
	i += 8
	SetBitU(rtcm.Buff[:], i, 6, 0)
	i += 6
	SetBitU(rtcm.Buff[:], i, 10, 0)
	i += 10

	/* encode rtcm 3 message body */
	if rtcm.EncodeRtcm3(ctype, subtype, sync) == 0 {
		return 0
	}
	/* padding to align 8 bit boundary */
	for i = rtcm.Nbit; i%8 > 0; i++ {
		SetBitU(rtcm.Buff[:], i, 1, 0)
	}
	/* message length (header+data) (bytes) */
	if rtcm.MsgLen = i / 8; rtcm.MsgLen >= 3+1024 {
		Trace(2, "generate rtcm 3 message length error len=%d\n", rtcm.MsgLen-3)
		rtcm.Nbit, rtcm.MsgLen = 0, 0
		return 0
	}
	/* message length without header and parity */
	SetBitU(rtcm.Buff[:], 14, 10, uint32(rtcm.MsgLen-3))

	/* crc-24q */
	crc := CRC24q(rtcm.Buff[:], rtcm.MsgLen)
	SetBitU(rtcm.Buff[:], i, 24, crc)

	/* length total (bytes) */
	rtcm.Nbyte = rtcm.MsgLen + 3

	return 1
}
