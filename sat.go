/*------------------------------------------------------------------------------
* sat.go : satellite and signal identity
*
* notes  :
*     a satellite is identified by a dense number 1..MAXSAT packing system and
*     prn/slot; signals follow RINEX 3.04 two-character observation codes
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"fmt"
	"strings"
)

/* observation code strings indexed by CODE_??? */
var obscodes = []string{
	"", "1C", "1P", "1W", "1Y", "1M", "1N", "1S", "1L", "1E", /*  0- 9 */
	"1A", "1B", "1X", "1Z", "2C", "2D", "2S", "2L", "2X", "2P", /* 10-19 */
	"2W", "2Y", "2M", "2N", "5I", "5Q", "5X", "7I", "7Q", "7X", /* 20-29 */
	"6A", "6B", "6C", "6X", "6Z", "6S", "6L", "8I", "8Q", "8X", /* 30-39 */
	"2I", "2Q", "6I", "6Q", "3I", "3Q", "3X", "1I", "1Q", "5A", /* 40-49 */
	"5B", "5C", "9A", "9B", "9C", "9X", "1D", "5D", "5P", "5Z", /* 50-59 */
	"6E", "7D", "7P", "7Z", "8D", "8P", "4A", "4B", "4X", ""} /* 60-69 */

/* code priority per system and frequency index, higher priority first */
var codepris = [7][NFREQ + 2]string{
	/*    0           1            2        3        4    */
	{"CPYWMNSL", "PYWCMNDLSX", "IQX", "", ""},     /* GPS */
	{"CPABX", "PCABX", "IQX", "", ""},             /* GLO */
	{"CABXZ", "IQX", "IQX", "ABCXZ", "IQX"},       /* GAL */
	{"CLSXZ", "LSX", "IQXDPZ", "LSXEZ", ""},       /* QZS */
	{"C", "IQX", "", "", ""},                      /* SBS */
	{"IQXDPAN", "IQXDPZ", "DPX", "IQXA", "DPX"},   /* BDS */
	{"ABCX", "ABCX", "", "", ""}}                  /* IRN */

var navsys = []int{SYS_GPS, SYS_GLO, SYS_GAL, SYS_QZS, SYS_SBS, SYS_CMP, SYS_IRN, 0}

/* convert system + prn/slot number to satellite number (0:error) */
func SatNo(sys, prn int) int {
	if prn <= 0 {
		return 0
	}
	switch sys {
	case SYS_GPS:
		if prn < MINPRNGPS || MAXPRNGPS < prn {
			return 0
		}
		return prn - MINPRNGPS + 1
	case SYS_GLO:
		if prn < MINPRNGLO || MAXPRNGLO < prn {
			return 0
		}
		return NSATGPS + prn - MINPRNGLO + 1
	case SYS_GAL:
		if prn < MINPRNGAL || MAXPRNGAL < prn {
			return 0
		}
		return NSATGPS + NSATGLO + prn - MINPRNGAL + 1
	case SYS_QZS:
		if prn < MINPRNQZS || MAXPRNQZS < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + prn - MINPRNQZS + 1
	case SYS_CMP:
		if prn < MINPRNCMP || MAXPRNCMP < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + NSATQZS + prn - MINPRNCMP + 1
	case SYS_IRN:
		if prn < MINPRNIRN || MAXPRNIRN < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + NSATQZS + NSATCMP + prn - MINPRNIRN + 1
	case SYS_SBS:
		if prn < MINPRNSBS || MAXPRNSBS < prn {
			return 0
		}
		return NSATGPS + NSATGLO + NSATGAL + NSATQZS + NSATCMP + NSATIRN + prn - MINPRNSBS + 1
	}
	return 0
}

/* convert satellite number to system, prn optionally output */
func SatSys(sat int, prn *int) int {
	sys := SYS_NONE
	switch {
	case sat <= 0 || MAXSAT < sat:
		sat = 0
	case sat <= NSATGPS:
		sys = SYS_GPS
		sat += MINPRNGPS - 1
	case sat <= NSATGPS+NSATGLO:
		sys = SYS_GLO
		sat += MINPRNGLO - 1 - NSATGPS
	case sat <= NSATGPS+NSATGLO+NSATGAL:
		sys = SYS_GAL
		sat += MINPRNGAL - 1 - NSATGPS - NSATGLO
	case sat <= NSATGPS+NSATGLO+NSATGAL+NSATQZS:
		sys = SYS_QZS
		sat += MINPRNQZS - 1 - NSATGPS - NSATGLO - NSATGAL
	case sat <= NSATGPS+NSATGLO+NSATGAL+NSATQZS+NSATCMP:
		sys = SYS_CMP
		sat += MINPRNCMP - 1 - NSATGPS - NSATGLO - NSATGAL - NSATQZS
	case sat <= NSATGPS+NSATGLO+NSATGAL+NSATQZS+NSATCMP+NSATIRN:
		sys = SYS_IRN
		sat += MINPRNIRN - 1 - NSATGPS - NSATGLO - NSATGAL - NSATQZS - NSATCMP
	default:
		sys = SYS_SBS
		sat += MINPRNSBS - 1 - NSATGPS - NSATGLO - NSATGAL - NSATQZS - NSATCMP - NSATIRN
	}
	if prn != nil {
		*prn = sat
	}
	return sys
}

/* convert satellite id (Gnn,Rnn,Enn,Jnn,Cnn,Inn,nnn) to satellite number */
func SatId2No(id string) int {
	var sys, prn int
	var code rune

	if n, _ := fmt.Sscanf(id, "%d", &prn); n == 1 {
		switch {
		case MINPRNGPS <= prn && prn <= MAXPRNGPS:
			sys = SYS_GPS
		case MINPRNSBS <= prn && prn <= MAXPRNSBS:
			sys = SYS_SBS
		case MINPRNQZS <= prn && prn <= MAXPRNQZS:
			sys = SYS_QZS
		default:
			return 0
		}
		return SatNo(sys, prn)
	}
	if n, _ := fmt.Sscanf(id, "%c%d", &code, &prn); n < 2 {
		return 0
	}
	switch code {
	case 'G':
		sys = SYS_GPS
		prn += MINPRNGPS - 1
	case 'R':
		sys = SYS_GLO
		prn += MINPRNGLO - 1
	case 'E':
		sys = SYS_GAL
		prn += MINPRNGAL - 1
	case 'J':
		sys = SYS_QZS
		prn += MINPRNQZS - 1
	case 'C':
		sys = SYS_CMP
		prn += MINPRNCMP - 1
	case 'I':
		sys = SYS_IRN
		prn += MINPRNIRN - 1
	case 'S':
		sys = SYS_SBS
		prn += 100
	default:
		return 0
	}
	return SatNo(sys, prn)
}

/* convert satellite number to id string */
func SatNo2Id(sat int) string {
	var prn int
	switch SatSys(sat, &prn) {
	case SYS_GPS:
		return fmt.Sprintf("G%02d", prn-MINPRNGPS+1)
	case SYS_GLO:
		return fmt.Sprintf("R%02d", prn-MINPRNGLO+1)
	case SYS_GAL:
		return fmt.Sprintf("E%02d", prn-MINPRNGAL+1)
	case SYS_QZS:
		return fmt.Sprintf("J%02d", prn-MINPRNQZS+1)
	case SYS_CMP:
		return fmt.Sprintf("C%02d", prn-MINPRNCMP+1)
	case SYS_IRN:
		return fmt.Sprintf("I%02d", prn-MINPRNIRN+1)
	case SYS_SBS:
		return fmt.Sprintf("%03d", prn)
	}
	return ""
}

/* convert obs code string ("1C","2W",...) to obs code */
func Obs2Code(obs string) uint8 {
	for i := 1; i < len(obscodes) && obscodes[i] != ""; i++ {
		if obscodes[i] == obs {
			return uint8(i)
		}
	}
	return CODE_NONE
}

/* convert obs code to obs code string */
func Code2Obs(code uint8) string {
	if code <= CODE_NONE || MAXCODE < code {
		return ""
	}
	return obscodes[code]
}

/* frequency band index and carrier of a code per system */
func code2FreqGPS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) == 0 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0 /* L1 */
	case '2':
		*freq = FREQ2
		return 1 /* L2 */
	case '5':
		*freq = FREQ5
		return 2 /* L5 */
	}
	return -1
}

func code2FreqGLO(code uint8, fcn int, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) == 0 || fcn < -7 || 6 < fcn {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1_GLO + DFRQ1_GLO*float64(fcn)
		return 0 /* G1 */
	case '2':
		*freq = FREQ2_GLO + DFRQ2_GLO*float64(fcn)
		return 1 /* G2 */
	case '3':
		*freq = FREQ3_GLO
		return 2 /* G3 */
	case '4':
		*freq = FREQ1a_GLO
		return 0 /* G1a */
	case '6':
		*freq = FREQ2a_GLO
		return 1 /* G2a */
	}
	return -1
}

func code2FreqGAL(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) == 0 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0 /* E1 */
	case '7':
		*freq = FREQ7
		return 1 /* E5b */
	case '5':
		*freq = FREQ5
		return 2 /* E5a */
	case '6':
		*freq = FREQ6
		return 3 /* E6 */
	case '8':
		*freq = FREQ8
		return 4 /* E5ab */
	}
	return -1
}

func code2FreqQZS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) == 0 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0 /* L1 */
	case '2':
		*freq = FREQ2
		return 1 /* L2 */
	case '5':
		*freq = FREQ5
		return 2 /* L5 */
	case '6':
		*freq = FREQ6
		return 3 /* L6 */
	}
	return -1
}

func code2FreqSBS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) == 0 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0 /* L1 */
	case '5':
		*freq = FREQ5
		return 1 /* L5 */
	}
	return -1
}

func code2FreqBDS(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) == 0 {
		return -1
	}
	switch obs[0] {
	case '1':
		*freq = FREQ1
		return 0 /* B1C */
	case '2':
		*freq = FREQ1_CMP
		return 0 /* B1I */
	case '7':
		*freq = FREQ2_CMP
		return 1 /* B2I/B2b */
	case '5':
		*freq = FREQ5
		return 2 /* B2a */
	case '6':
		*freq = FREQ3_CMP
		return 3 /* B3 */
	case '8':
		*freq = FREQ8
		return 4 /* B2ab */
	}
	return -1
}

func code2FreqIRN(code uint8, freq *float64) int {
	obs := Code2Obs(code)
	if len(obs) == 0 {
		return -1
	}
	switch obs[0] {
	case '5':
		*freq = FREQ5
		return 0 /* L5 */
	case '9':
		*freq = FREQ9
		return 1 /* S */
	}
	return -1
}

/* convert system and obs code to frequency index (-1:error)
 *                  0     1     2     3     4
 *      GPS        L1    L2    L5     -     -
 *      GLONASS    G1    G2    G3     -     -   (G1=G1,G1a, G2=G2,G2a)
 *      Galileo    E1    E5b   E5a   E6   E5ab
 *      QZSS       L1    L2    L5    L6     -
 *      SBAS       L1     -    L5     -     -
 *      BDS        B1    B2    B2a   B3   B2ab  (B1=B1I,B1C, B2=B2I,B2b)
 *      NavIC      L5     S     -     -     -                             */
func Code2Idx(sys int, code uint8) int {
	var freq float64
	switch sys {
	case SYS_GPS:
		return code2FreqGPS(code, &freq)
	case SYS_GLO:
		return code2FreqGLO(code, 0, &freq)
	case SYS_GAL:
		return code2FreqGAL(code, &freq)
	case SYS_QZS:
		return code2FreqQZS(code, &freq)
	case SYS_SBS:
		return code2FreqSBS(code, &freq)
	case SYS_CMP:
		return code2FreqBDS(code, &freq)
	case SYS_IRN:
		return code2FreqIRN(code, &freq)
	}
	return -1
}

/* convert system and obs code to carrier frequency (Hz) (0.0:error) */
func Code2Freq(sys int, code uint8, fcn int) float64 {
	freq := 0.0
	switch sys {
	case SYS_GPS:
		code2FreqGPS(code, &freq)
	case SYS_GLO:
		code2FreqGLO(code, fcn, &freq)
	case SYS_GAL:
		code2FreqGAL(code, &freq)
	case SYS_QZS:
		code2FreqQZS(code, &freq)
	case SYS_SBS:
		code2FreqSBS(code, &freq)
	case SYS_CMP:
		code2FreqBDS(code, &freq)
	case SYS_IRN:
		code2FreqIRN(code, &freq)
	}
	return freq
}

/* convert satellite and obs code to carrier frequency, nav supplies the
 * GLONASS frequency channel number */
func Sat2Freq(sat int, code uint8, nav *Nav) float64 {
	var prn int
	sys := SatSys(sat, &prn)
	fcn := 0

	if sys == SYS_GLO {
		if nav == nil {
			return 0.0
		}
		i := 0
		for ; i < len(nav.Geph); i++ {
			if nav.Geph[i].Sat == sat {
				break
			}
		}
		if i < len(nav.Geph) {
			fcn = nav.Geph[i].Frq
		} else if nav.GloFcn[prn-1] > 0 {
			fcn = nav.GloFcn[prn-1] - 8
		} else {
			return 0.0
		}
	}
	return Code2Freq(sys, code, fcn)
}

/* set code priority for multiple codes in a frequency */
func SetCodePri(sys, idx int, pri string) {
	Trace(4, "SetCodePri: sys=%d idx=%d pri=%s\n", sys, idx, pri)

	if idx < 0 || idx >= NFREQ+2 {
		return
	}
	for i, s := range navsys[:NSYS] {
		if sys&s != 0 {
			codepris[i][idx] = pri
		}
	}
}

/* get code priority (15:highest - 1:lowest, 0:error); opt may carry
 * "-GL1W" style overrides selecting a single code per band */
func GetCodePri(sys int, code uint8, opt string) int {
	var i int
	var optstr string

	switch sys {
	case SYS_GPS:
		i, optstr = 0, "GL"
	case SYS_GLO:
		i, optstr = 1, "RL"
	case SYS_GAL:
		i, optstr = 2, "EL"
	case SYS_QZS:
		i, optstr = 3, "JL"
	case SYS_SBS:
		i, optstr = 4, "SL"
	case SYS_CMP:
		i, optstr = 5, "CL"
	case SYS_IRN:
		i, optstr = 6, "IL"
	default:
		return 0
	}
	j := Code2Idx(sys, code)
	if j < 0 {
		return 0
	}
	obs := Code2Obs(code)

	/* parse code options */
	for _, q := range strings.Split(opt, "-") {
		if !strings.HasPrefix(q, optstr) || len(q) < 4 || q[2] != obs[0] {
			continue
		}
		if q[3] == obs[1] {
			return 15
		}
		return 0
	}
	/* search code priority */
	if n := strings.IndexByte(codepris[i][j], obs[1]); n >= 0 {
		return 14 - n
	}
	return 0
}
