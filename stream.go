/*------------------------------------------------------------------------------
* stream.go : stream input/output functions
*
* references :
*     [1] RTCM Recommended Standards for Networked Transport for RTCM via
*         Internet Protocol (Ntrip), Version 1.0, September 30, 2004
*     [2] H.Niksic and others, GNU Wget 1.12, The non-interactive download
*         utility, 4 September 2009
*     [3] RTCM Recommended Standards for Networked Transport for RTCM via
*         Internet Protocol (Ntrip), Version 2.0, June 28, 2011
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"encoding/base64"
	"encoding/binary"
	"fmt"
	"io"
	"math"
	"net"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"

	serial "github.com/tarm/goserial"
)

/* constants -----------------------------------------------------------------*/
const (
	TINTACT             = 200  /* period for stream active (ms) */
	SERIBUFFSIZE        = 4096 /* serial buffer size (bytes) */
	TIMETAGH_LEN        = 64   /* time tag file header length */
	MAXCLI              = 32   /* max client connection for tcp svr */
	MAXSTATMSG          = 32   /* max length of status message */
	DEFAULT_MEMBUF_SIZE = 4096 /* default memory buffer size (bytes) */
	FILEPATHSEP         = "/"

	NTRIP_AGENT        = "RTKLIB/" + VER_GNSSRT
	NTRIP_CLI_PORT     = 2101                     /* default ntrip-client connection port */
	NTRIP_SVR_PORT     = 80                       /* default ntrip-server connection port */
	NTRIP_MAXRSP       = 32768                    /* max size of ntrip response */
	NTRIP_MAXSTR       = 256                      /* max length of mountpoint string */
	NTRIP_RSP_OK_CLI   = "ICY 200 OK\r\n"         /* ntrip response: client */
	NTRIP_RSP_OK_SVR   = "OK\r\n"                 /* ntrip response: server */
	NTRIP_RSP_SRCTBL   = "SOURCETABLE 200 OK\r\n" /* ntrip response: source table */
	NTRIP_RSP_TBLEND   = "ENDSOURCETABLE"
	NTRIP_RSP_HTTP     = "HTTP/" /* ntrip response: http */
	NTRIP_RSP_ERROR    = "ERROR" /* ntrip response: error */
	NTRIP_RSP_UNAUTH   = "HTTP/1.0 401 Unauthorized\r\n"
	NTRIP_RSP_ERR_MNTP = "ERROR - Bad Mountpoint\r\n"

	FTP_CMD     = "wget" /* ftp/http command */
	FTP_TIMEOUT = 30     /* ftp/http timeout (s) */
)

/* global options ------------------------------------------------------------*/
var (
	toinact     = 10000 /* inactive timeout (ms) */
	ticonnect   = 1000  /* interval to re-connect (ms) */
	tirate      = 1000  /* averaging time for data rate (ms) */
	localdir    = ""    /* local directory for ftp/http */
	proxyaddr   = ""    /* http/ntrip/ftp proxy address */
	tickMaster  uint32  /* time tick master for replay */
	fswapmargin = 30    /* file swap margin (s) */
)

/* type definitions ----------------------------------------------------------*/

type Stream struct { /* stream type */
	Type                   int         /* type (STR_???) */
	Mode                   int         /* mode (STR_MODE_?) */
	State                  int         /* state (-1:error,0:close,1:open) */
	InBytes, InRate        uint32      /* input bytes/rate */
	OutBytes, OutRate      uint32      /* output bytes/rate */
	TickInput              int64       /* input tick */
	TickOutput             int64       /* output tick */
	TickActive             int64       /* active tick */
	InByteTick             uint32      /* input bytes at tick */
	OutByteTick            uint32      /* output bytes at tick */
	Lock                   sync.Mutex  /* lock flag */
	Port                   interface{} /* type dependent port control struct */
	Path                   string      /* stream path */
	Msg                    string      /* stream message */
}

type FileType struct { /* file control type */
	fp       *os.File /* file pointer */
	fpTag    *os.File /* file pointer of tag file */
	fpTmp    *os.File /* temporary file pointer for swap */
	fpTagTmp *os.File /* temporary file pointer of tag file for swap */
	path     string   /* file path */
	openPath string   /* open file path */
	mode     int      /* file mode */
	timeTag  int      /* time tag flag (0:off,1:on) */
	repMode  int      /* replay mode (0:master,1:slave) */
	offset   int      /* time offset (ms) for slave */
	sizeFpos int      /* file position size (bytes) */
	time     Gtime    /* start time */
	wtime    Gtime    /* write time */
	tick     uint32   /* start tick */
	tickF    uint32   /* start tick in file */
	fposN    int64    /* next file position */
	tickN    uint32   /* next tick */
	start    float64  /* start offset (s) */
	speed    float64  /* replay speed (time factor) */
	swapIntv float64  /* swap interval (hr) (0: no swap) */
}

type TcpConn struct { /* tcp control type */
	state    int          /* state (0:close,1:wait,2:connect) */
	saddr    string       /* address string */
	port     int          /* port */
	sock     net.Conn     /* connected socket */
	listener net.Listener /* listen socket for server */
	tcon     int          /* reconnect time (ms) (-1:never,0:now) */
	tact     int64        /* data active tick */
	tdis     int64        /* disconnect tick */
}

func (conn *TcpConn) resolveAddr() string {
	return fmt.Sprintf("%s:%d", conn.saddr, conn.port)
}

type TcpSvr struct { /* tcp server type */
	svr TcpConn         /* tcp server control */
	cli [MAXCLI]TcpConn /* tcp client controls */
}

type TcpClient struct { /* tcp client type */
	svr     TcpConn /* tcp server control */
	toinact int     /* inactive timeout (ms) (0:no timeout) */
	tirecon int     /* reconnect interval (ms) (0:no reconnect) */
}

type SerialComm struct { /* serial control type */
	dev    io.ReadWriteCloser /* serial device */
	err    int                /* error state */
	tcpsvr *TcpSvr            /* tcp server to echo received stream */
}

type NTrip struct { /* ntrip control type */
	state  int        /* state (0:close,1:wait,2:connect) */
	ctype  int        /* type (0:server,1:client) */
	nb     int        /* response buffer size */
	url    string     /* url for proxy */
	mntpnt string     /* mountpoint */
	user   string     /* user */
	passwd string     /* password */
	str    string     /* mountpoint string for server */
	buff   []byte     /* response buffer */
	tcp    *TcpClient /* tcp client */
}

type NTripcCon struct { /* ntrip caster connection type */
	state  int    /* state (0:close,1:connect) */
	mntpnt string /* mountpoint */
	nb     int    /* request buffer size */
	buff   []byte /* request buffer */
}

type NTripc struct { /* ntrip caster control type */
	state  int         /* state (0:close,1:wait,2:connect) */
	mntpnt string      /* mountpoint */
	user   string      /* user */
	passwd string      /* password */
	srctbl string      /* source table */
	tcp    *TcpSvr     /* tcp server */
	con    []NTripcCon /* ntrip client/server connections */
}

type UdpConn struct { /* udp control type */
	state int      /* state (0:close,2:open) */
	ctype int      /* type (0:server,1:client) */
	port  int      /* port */
	saddr string   /* address (server:filter,client:server) */
	sock  net.Conn /* socket descriptor */
}

type FtpConn struct { /* ftp download control type */
	state int /* state (0:close,1:download,2:complete,3:error) */
	proto int /* protocol (0:ftp,1:http) */
	errNo int /* error code (0:no error,1-10:wget error, */
	/*            11:no temp dir,12:uncompact error) */
	addr   string /* download address */
	file   string /* download file path */
	user   string /* user for ftp */
	passwd string /* password for ftp */
	local  string /* local file path */
	topts  [4]int /* time options {poff,tint,toff,tretry} (s) */
	tnext  Gtime  /* next retry time (gpst) */
}

type MemBuf struct { /* memory buffer type */
	state, wp, rp int        /* state,write/read pointer */
	bufSize       int        /* buffer size (bytes) */
	lock          sync.Mutex /* lock flag */
	buf           []byte     /* ring buffer */
}

/* path keyword replacement ----------------------------------------------------
* replace keywords in file path with date, time, rover and base station id
* args   : path     I   file path (see below)
*          time     I   time (gpst) (time.Time==0: not replaced)
*          rov      I   rover id string        ("": not replaced)
*          base     I   base station id string ("": not replaced)
* return : replaced file path
* notes  : the following keywords in path are replaced by date, time and name
*              %Y . yyyy : year (4 digits) (1900-2099)
*              %y . yy   : year (2 digits) (00-99)
*              %m . mm   : month           (01-12)
*              %d . dd   : day of month    (01-31)
*              %h . hh   : hours           (00-23)
*              %M . mm   : minutes         (00-59)
*              %S . ss   : seconds         (00-59)
*              %n . ddd  : day of year     (001-366)
*              %W . wwww : gps week        (0001-9999)
*              %D . d    : day of gps week (0-6)
*              %H . h    : hour code       (a=0,b=1,c=2,...,x=23)
*              %ha. hh   : 3 hours         (00,03,06,...,21)
*              %hb. hh   : 6 hours         (00,06,12,18)
*              %hc. hh   : 12 hours        (00,12)
*              %t . mm   : 15 minutes      (00,15,30,45)
*              %r . rrrr : rover id
*              %b . bbbb : base station id
*-----------------------------------------------------------------------------*/
func RepPath(path string, time Gtime, rov, base string) string {
	var (
		ep    [6]float64
		week  int
		rpath = path
	)
	if !strings.Contains(path, "%") {
		return rpath
	}
	if len(rov) > 0 {
		rpath = strings.Replace(rpath, "%r", rov, -1)
	}
	if len(base) > 0 {
		rpath = strings.Replace(rpath, "%b", base, -1)
	}
	if time.Time == 0 {
		return rpath
	}
	Time2Epoch(time, ep[:])
	dow := int(math.Floor(Time2GpsT(time, &week) / 86400.0))
	ep0 := [6]float64{ep[0], 1, 1, 0, 0, 0}
	doy := int(math.Floor(TimeDiff(time, Epoch2Time(ep0[:]))/86400.0)) + 1

	rpath = strings.Replace(rpath, "%ha", fmt.Sprintf("%02d", int(ep[3]/3)*3), -1)
	rpath = strings.Replace(rpath, "%hb", fmt.Sprintf("%02d", int(ep[3]/6)*6), -1)
	rpath = strings.Replace(rpath, "%hc", fmt.Sprintf("%02d", int(ep[3]/12)*12), -1)
	rpath = strings.Replace(rpath, "%Y", fmt.Sprintf("%04.0f", ep[0]), -1)
	rpath = strings.Replace(rpath, "%y", fmt.Sprintf("%02.0f", math.Mod(ep[0], 100.0)), -1)
	rpath = strings.Replace(rpath, "%m", fmt.Sprintf("%02.0f", ep[1]), -1)
	rpath = strings.Replace(rpath, "%d", fmt.Sprintf("%02.0f", ep[2]), -1)
	rpath = strings.Replace(rpath, "%h", fmt.Sprintf("%02.0f", ep[3]), -1)
	rpath = strings.Replace(rpath, "%M", fmt.Sprintf("%02.0f", ep[4]), -1)
	rpath = strings.Replace(rpath, "%S", fmt.Sprintf("%02.0f", math.Floor(ep[5])), -1)
	rpath = strings.Replace(rpath, "%n", fmt.Sprintf("%03d", doy), -1)
	rpath = strings.Replace(rpath, "%W", fmt.Sprintf("%04d", week), -1)
	rpath = strings.Replace(rpath, "%D", fmt.Sprintf("%d", dow), -1)
	rpath = strings.Replace(rpath, "%H", fmt.Sprintf("%c", rune('a'+int(ep[3]))), -1)
	rpath = strings.Replace(rpath, "%t", fmt.Sprintf("%02d", int(ep[4]/15)*15), -1)
	return rpath
}

/* replace keywords and generate multiple paths ---------------------------------
* replace keywords in file path over a time range and generate multiple paths
* args   : path     I   file path (see RepPath())
*          nmax     I   max number of output file paths
*          ts,te    I   time start/end (gpst)
*          rov,base I   rover/base station id string ("": not replaced)
* return : replaced file paths
* notes  : minimum interval of time replaced is 900s
*-----------------------------------------------------------------------------*/
func RepPaths(path string, nmax int, ts, te Gtime, rov, base string) []string {
	var (
		week  int
		tint  = 86400.0
		rpath []string
	)
	Trace(4, "RepPaths: path=%s nmax=%d rov=%s base=%s\n", path, nmax, rov, base)

	if ts.Time == 0 || te.Time == 0 || TimeDiff(ts, te) > 0.0 {
		return nil
	}
	if strings.Contains(path, "%S") || strings.Contains(path, "%M") ||
		strings.Contains(path, "%t") {
		tint = 900.0
	} else if strings.Contains(path, "%h") || strings.Contains(path, "%H") {
		tint = 3600.0
	}
	tow := Time2GpsT(ts, &week)
	t := GpsT2Time(week, math.Floor(tow/tint)*tint)

	for ; TimeDiff(t, te) <= 0.0 && len(rpath) < nmax; t = TimeAdd(t, tint) {
		p := RepPath(path, t, rov, base)
		if len(rpath) == 0 || p != rpath[len(rpath)-1] {
			rpath = append(rpath, p)
		}
	}
	return rpath
}

/* create directory of file path if not exists -------------------------------*/
func CreateDir(path string) {
	Trace(4, "CreateDir: path=%s\n", path)

	if idx := strings.LastIndex(path, FILEPATHSEP); idx > 0 {
		os.MkdirAll(path[:idx], os.ModeDir|os.ModePerm)
	}
}

/* execute command by operating system shell (0:ok,>0:error) -----------------*/
func ExecCmd(cmd string) int {
	args := strings.Fields(cmd)
	if len(args) == 0 {
		return 1
	}
	if err := exec.Command(args[0], args[1:]...).Run(); err != nil {
		return 1
	}
	return 0
}

/* expand file path with wild-cards, alphabetical order ----------------------*/
func ExPath(path string, nmax int) []string {
	match, err := filepath.Glob(path)
	if err != nil {
		return nil
	}
	if len(match) > nmax {
		match = match[:nmax]
	}
	return match
}

/* uncompress gzip/zip file, return uncompressed path (1:ok,0:error) ---------*/
func Uncompress(file string, uncfile *string) int {
	var cmd string

	Trace(3, "Uncompress: file=%s\n", file)

	switch {
	case strings.HasSuffix(file, ".z") || strings.HasSuffix(file, ".Z") ||
		strings.HasSuffix(file, ".gz") || strings.HasSuffix(file, ".GZ"):
		*uncfile = file[:strings.LastIndex(file, ".")]
		cmd = fmt.Sprintf("gzip -f -d -c %s > %s", file, *uncfile)
		if ExecCmd(cmd) > 0 {
			os.Remove(*uncfile)
			return 0
		}
	case strings.HasSuffix(file, ".zip") || strings.HasSuffix(file, ".ZIP"):
		*uncfile = file[:strings.LastIndex(file, ".")]
		cmd = fmt.Sprintf("unzip -p %s > %s", file, *uncfile)
		if ExecCmd(cmd) > 0 {
			os.Remove(*uncfile)
			return 0
		}
	default:
		return 0
	}
	return 1
}

/* open serial (path=port[:brate[:bsize[:parity[:stopb[:fctr[#port]]]]]]) ----*/
func OpenSerial(path string, mode int, msg *string) *SerialComm {
	var (
		brs = []int{300, 600, 1200, 2400, 4800, 9600, 19200, 38400, 57600,
			115200, 230400, 460800, 921600}
		brate, bsize, stopb, tcpPort = 9600, 8, 1, 0
		parity                       = 'N'
		port, fctr, msgTcp           string
	)
	if idx := strings.Index(path, ":"); idx >= 0 {
		port = path[:idx]
		fmt.Sscanf(path[idx:], ":%d:%d:%c:%d:%s", &brate, &bsize, &parity, &stopb, &fctr)
	} else {
		port = path
	}
	if idx := strings.Index(path, "#"); idx >= 0 {
		fmt.Sscanf(path[idx:], "#%d", &tcpPort)
	}
	ok := false
	for _, br := range brs {
		if br == brate {
			ok = true
			break
		}
	}
	if !ok {
		*msg = fmt.Sprintf("bitrate error (%d)", brate)
		Tracet(1, "OpenSerial: %s path=%s\n", *msg, path)
		return nil
	}
	seri := new(SerialComm)
	dev, err := serial.OpenPort(&serial.Config{Name: port, Baud: brate})
	if err != nil {
		*msg = fmt.Sprintf("device open error (%s)", port)
		Tracet(1, "OpenSerial: %s err=%v\n", *msg, err)
		return nil
	}
	seri.dev = dev

	/* open tcp server to output received stream */
	if tcpPort > 0 {
		seri.tcpsvr = OpenTcpSvr(fmt.Sprintf(":%d", tcpPort), &msgTcp)
	}
	Tracet(3, "OpenSerial: port=%s brate=%d\n", port, brate)
	return seri
}

/* close serial --------------------------------------------------------------*/
func (seri *SerialComm) CloseSerial() {
	if seri == nil {
		return
	}
	if seri.dev != nil {
		seri.dev.Close()
	}
	if seri.tcpsvr != nil {
		seri.tcpsvr.CloseTcpSvr()
	}
}

/* read serial ---------------------------------------------------------------*/
func (seri *SerialComm) ReadSerial(buff []byte, n int, msg *string) int {
	var msgTcp string

	Tracet(4, "ReadSerial: n=%d\n", n)

	if seri == nil || seri.dev == nil {
		return 0
	}
	nr, err := seri.dev.Read(buff[:n])
	if err != nil && err != io.EOF {
		seri.err = 1
	} else {
		seri.err = 0
	}
	/* echo received stream to tcp server port */
	if seri.tcpsvr != nil && nr > 0 {
		seri.tcpsvr.WriteTcpSvr(buff, nr, &msgTcp)
	}
	return nr
}

/* write serial --------------------------------------------------------------*/
func (seri *SerialComm) WriteSerial(buff []byte, n int, msg *string) int {
	Tracet(4, "WriteSerial: n=%d\n", n)

	if seri == nil || seri.dev == nil || n <= 0 {
		return 0
	}
	ns, err := seri.dev.Write(buff[:n])
	if err != nil {
		seri.err = 1
	} else {
		seri.err = 0
	}
	return ns
}

/* get state serial ----------------------------------------------------------*/
func (seri *SerialComm) StateSerial() int {
	if seri == nil {
		return 0
	}
	if seri.err != 0 {
		return -1
	}
	return 2
}

/* get extended state serial -------------------------------------------------*/
func (seri *SerialComm) StatExSerial(msg *string) int {
	state := seri.StateSerial()

	*msg += "serial:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  error   = %d\n", seri.err)
	return state
}

/* open file with keyword-replaced path --------------------------------------*/
func openFileStream(file *FileType, time Gtime, msg *string) int {
	var (
		tagh = make([]byte, TIMETAGH_LEN)
		err  error
	)
	Tracet(3, "openFileStream: path=%s time=%s\n", file.path, Time2Str(time, 0))

	file.time = Utc2GpsT(TimeGet())
	file.tick = uint32(TickGet())
	file.tickF = file.tick
	file.fposN = 0
	file.tickN = 0

	/* use stdin or stdout if file path is null */
	if len(file.path) == 0 {
		if file.mode&STR_MODE_R > 0 {
			file.fp = os.Stdin
		} else {
			file.fp = os.Stdout
		}
		return 1
	}
	/* replace keywords */
	file.openPath = RepPath(file.path, time, "", "")

	/* create directory */
	if file.mode&STR_MODE_W > 0 && file.mode&STR_MODE_R == 0 {
		CreateDir(file.openPath)
	}
	rw := os.O_RDONLY
	if file.mode&STR_MODE_R == 0 {
		rw = os.O_CREATE | os.O_WRONLY | os.O_TRUNC
	}
	if file.fp, err = os.OpenFile(file.openPath, rw, 0664); err != nil {
		*msg = fmt.Sprintf("file open error: %s", file.openPath)
		Tracet(1, "openFileStream: %s\n", *msg)
		return 0
	}
	tagpath := file.openPath + ".tag"

	if file.timeTag > 0 { /* output/sync time-tag */
		if file.fpTag, err = os.OpenFile(tagpath, rw, 0664); err != nil {
			*msg = fmt.Sprintf("tag open error: %s", tagpath)
			Tracet(1, "openFileStream: %s\n", *msg)
			file.fp.Close()
			file.fp = nil
			return 0
		}
		/* time tag file structure            */
		/*   HEADER(60)+TICK(4)+TIME(4+8)+    */
		/*   TICK0(4)+FPOS0(4/8)+             */
		/*   TICK1(4)+FPOS1(4/8)+...          */
		if file.mode&STR_MODE_R > 0 {
			var (
				timeTime uint32
				timeSec  float64
			)
			if binary.Read(file.fpTag, binary.BigEndian, tagh) == nil &&
				binary.Read(file.fpTag, binary.BigEndian, &timeTime) == nil &&
				binary.Read(file.fpTag, binary.BigEndian, &timeSec) == nil {
				file.time.Time = int64(timeTime)
				file.time.Sec = timeSec
				file.wtime = file.time
				file.tickF = binary.BigEndian.Uint32(tagh[TIMETAGH_LEN-4:])
			} else {
				file.tickF = 0
			}
			/* adjust time to read playback file */
			TimeSet(GpsT2Utc(file.time))
		} else {
			copy(tagh, fmt.Sprintf("TIMETAG RTKLIB %s", VER_GNSSRT))
			binary.BigEndian.PutUint32(tagh[TIMETAGH_LEN-4:], file.tickF)
			binary.Write(file.fpTag, binary.BigEndian, tagh)
			binary.Write(file.fpTag, binary.BigEndian, uint32(file.time.Time))
			binary.Write(file.fpTag, binary.BigEndian, file.time.Sec)
		}
	} else if file.mode&STR_MODE_W > 0 { /* remove time-tag */
		if fp, e := os.Open(tagpath); e == nil {
			fp.Close()
			os.Remove(tagpath)
		}
	}
	return 1
}

/* close file ----------------------------------------------------------------*/
func closeFileStream(file *FileType) {
	Tracet(3, "closeFileStream: path=%s\n", file.path)

	if file.fp != nil && file.fp != os.Stdin && file.fp != os.Stdout {
		file.fp.Close()
	}
	if file.fpTag != nil {
		file.fpTag.Close()
	}
	if file.fpTmp != nil {
		file.fpTmp.Close()
	}
	if file.fpTagTmp != nil {
		file.fpTagTmp.Close()
	}
	file.fp, file.fpTag, file.fpTmp, file.fpTagTmp = nil, nil, nil, nil

	/* reset virtual clock */
	TimeReset()
}

/* open file (path=filepath[::T][::+start][::xspeed][::S=swap][::P={4|8}]) ---*/
func OpenStreamFile(path string, mode int, msg *string) *FileType {
	var (
		file                   = new(FileType)
		speed, start, swapintv = 1.0, 0.0, 0.0
		timetag, sizeFpos      = 0, 4 /* default 4B */
	)
	Tracet(3, "OpenStreamFile: path=%s mode=%d\n", path, mode)

	if mode&(STR_MODE_R|STR_MODE_W) == 0 {
		return nil
	}
	/* file options */
	for p := path; ; {
		idx := strings.Index(p, "::")
		if idx < 0 {
			break
		}
		p = p[idx+2:]
		if len(p) == 0 {
			break
		}
		switch p[0] {
		case 'T':
			timetag = 1
		case '+':
			fmt.Sscanf(p, "+%f", &start)
		case 'x':
			fmt.Sscanf(p, "x%f", &speed)
		case 'S':
			fmt.Sscanf(p, "S=%f", &swapintv)
		case 'P':
			fmt.Sscanf(p, "P=%d", &sizeFpos)
		}
	}
	if start <= 0.0 {
		start = 0.0
	}
	if swapintv <= 0.0 {
		swapintv = 0.0
	}
	file.path = path
	if idx := strings.Index(path, "::"); idx >= 0 {
		file.path = path[:idx]
	}
	file.mode = mode
	file.timeTag = timetag
	file.sizeFpos = sizeFpos
	file.start = start
	file.speed = speed
	file.swapIntv = swapintv

	time := Utc2GpsT(TimeGet())

	/* open new file */
	if openFileStream(file, time, msg) == 0 {
		return nil
	}
	return file
}

/* close file ----------------------------------------------------------------*/
func (file *FileType) CloseStreamFile() {
	if file == nil {
		return
	}
	closeFileStream(file)
}

/* open new swap file --------------------------------------------------------*/
func (file *FileType) SwapStreamFile(time Gtime, msg *string) {
	Tracet(3, "SwapStreamFile: time=%s\n", Time2Str(time, 0))

	/* return if old swap file open */
	if file.fpTmp != nil || file.fpTagTmp != nil {
		return
	}
	/* check path of new swap file */
	openPath := RepPath(file.path, time, "", "")

	if openPath == file.openPath {
		Tracet(2, "SwapStreamFile: no need to swap %s\n", openPath)
		return
	}
	/* save file pointer to temporary pointer */
	file.fpTmp = file.fp
	file.fpTagTmp = file.fpTag

	/* open new swap file */
	openFileStream(file, time, msg)
}

/* close old swap file -------------------------------------------------------*/
func (file *FileType) CloseSwapFile() {
	Tracet(3, "CloseSwapFile:\n")

	if file.fpTmp != nil {
		file.fpTmp.Close()
	}
	if file.fpTagTmp != nil {
		file.fpTagTmp.Close()
	}
	file.fpTmp, file.fpTagTmp = nil, nil
}

/* get state file ------------------------------------------------------------*/
func (file *FileType) StateFile() int {
	if file != nil {
		return 2
	}
	return 0
}

/* get extended state file ---------------------------------------------------*/
func (file *FileType) StatExFile(msg *string) int {
	state := file.StateFile()

	*msg += "file:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  path    = %s\n", file.path)
	*msg += fmt.Sprintf("  openpath= %s\n", file.openPath)
	*msg += fmt.Sprintf("  mode    = %d\n", file.mode)
	*msg += fmt.Sprintf("  timetag = %d\n", file.timeTag)
	*msg += fmt.Sprintf("  repmode = %d\n", file.repMode)
	*msg += fmt.Sprintf("  offset  = %d\n", file.offset)
	*msg += fmt.Sprintf("  time    = %s\n", Time2Str(file.time, 3))
	*msg += fmt.Sprintf("  wtime   = %s\n", Time2Str(file.wtime, 3))
	*msg += fmt.Sprintf("  tick    = %d\n", file.tick)
	*msg += fmt.Sprintf("  tick_f  = %d\n", file.tickF)
	*msg += fmt.Sprintf("  start   = %.3f\n", file.start)
	*msg += fmt.Sprintf("  speed   = %.3f\n", file.speed)
	*msg += fmt.Sprintf("  swapintv= %.3f\n", file.swapIntv)
	return state
}

/* read tag record, returns 0 at end of tag file -----------------------------*/
func (file *FileType) readTagRecord() int {
	var (
		fpos4 uint32
		fpos8 uint64
	)
	if binary.Read(file.fpTag, binary.BigEndian, &file.tickN) != nil {
		return 0
	}
	if file.sizeFpos == 4 {
		if binary.Read(file.fpTag, binary.BigEndian, &fpos4) != nil {
			return 0
		}
		file.fposN = int64(fpos4)
	} else {
		if binary.Read(file.fpTag, binary.BigEndian, &fpos8) != nil {
			return 0
		}
		file.fposN = int64(fpos8)
	}
	return 1
}

/* read file -----------------------------------------------------------------*/
func (file *FileType) ReadFile(buff []byte, nmax int64, msg *string) int {
	Tracet(4, "ReadFile: nmax=%d\n", nmax)

	if file == nil || file.fp == nil {
		return 0
	}
	if file.fpTag != nil {
		var t uint32

		/* target tick */
		if file.repMode > 0 { /* slave */
			t = tickMaster + uint32(file.offset)
		} else { /* master */
			t = uint32(float64(TickGet()-int64(file.tick))*file.speed + file.start*1000.0)
			tickMaster = t
		}
		/* seek time-tag file to get next tick and file position */
		for int32(file.tickN-t) <= 0 {
			if file.readTagRecord() == 0 {
				file.tickN = 0xffffffff
				pos, _ := file.fp.Seek(0, io.SeekCurrent)
				file.fposN, _ = file.fp.Seek(0, io.SeekEnd)
				file.fp.Seek(pos, io.SeekStart)
				break
			}
		}
		if file.tickN == 0xffffffff {
			*msg = "end"
		} else {
			*msg = fmt.Sprintf("T%+.1fs", float64(t)*0.001)
			file.wtime = TimeAdd(file.time, float64(t)*0.001)
			TimeSet(TimeAdd(GpsT2Utc(file.time), float64(file.tickN)*0.001))
		}
		pos, _ := file.fp.Seek(0, io.SeekCurrent)
		if n := file.fposN - pos; n < nmax {
			nmax = n
		}
	}
	if nmax <= 0 {
		return 0
	}
	nr, err := file.fp.Read(buff[:nmax])
	if err == io.EOF {
		*msg = "end"
	}
	return nr
}

/* write file ----------------------------------------------------------------*/
func (file *FileType) WriteFile(buff []byte, n int, msg *string) int {
	var week1, week2 int

	Tracet(4, "WriteFile: n=%d\n", n)

	if file == nil {
		return 0
	}
	wtime := Utc2GpsT(TimeGet()) /* write time in gpst */
	tick := uint32(TickGet())

	/* swap writing file */
	if file.swapIntv > 0.0 && file.wtime.Time != 0 {
		intv := file.swapIntv * 3600.0
		tow1 := Time2GpsT(file.wtime, &week1)
		tow2 := Time2GpsT(wtime, &week2)
		tow2 += 604800.0 * float64(week2-week1)

		/* open new swap file */
		if math.Floor((tow1+float64(fswapmargin))/intv) <
			math.Floor((tow2+float64(fswapmargin))/intv) {
			file.SwapStreamFile(TimeAdd(wtime, float64(fswapmargin)), msg)
		}
		/* close old swap file */
		if math.Floor((tow1-float64(fswapmargin))/intv) <
			math.Floor((tow2-float64(fswapmargin))/intv) {
			file.CloseSwapFile()
		}
	}
	if file.fp == nil {
		return 0
	}
	ns, _ := file.fp.Write(buff[:n])
	fpos, _ := file.fp.Seek(0, io.SeekCurrent)

	file.wtime = wtime

	var fposTmp int64
	if file.fpTmp != nil {
		file.fpTmp.Write(buff[:n])
		fposTmp, _ = file.fpTmp.Seek(0, io.SeekCurrent)
	}
	if file.fpTag != nil {
		tick -= file.tick
		binary.Write(file.fpTag, binary.BigEndian, tick)
		if file.sizeFpos == 4 {
			binary.Write(file.fpTag, binary.BigEndian, uint32(fpos))
		} else {
			binary.Write(file.fpTag, binary.BigEndian, uint64(fpos))
		}
		if file.fpTagTmp != nil {
			binary.Write(file.fpTagTmp, binary.BigEndian, tick)
			if file.sizeFpos == 4 {
				binary.Write(file.fpTagTmp, binary.BigEndian, uint32(fposTmp))
			} else {
				binary.Write(file.fpTagTmp, binary.BigEndian, uint64(fposTmp))
			}
		}
	}
	Tracet(5, "WriteFile: ns=%d tick=%d fpos=%d\n", ns, tick, fpos)
	return ns
}

/* sync files by time-tag ----------------------------------------------------*/
func syncFile(file1, file2 *FileType) {
	if file1.fpTag == nil || file2.fpTag == nil {
		return
	}
	file1.repMode = 0
	file2.repMode = 1
	file2.offset = int(file1.tickF - file2.tickF)
}

/* decode tcp/ntrip path (path=[user[:passwd]@]addr[:port][/mntpnt[:str]]) ---*/
func DecodeTcpPath(path string, addr, port, user, passwd, mntpnt, str *string) {
	Tracet(4, "DecodeTcpPath: path=%s\n", path)

	for _, p := range []*string{addr, port, user, passwd, mntpnt, str} {
		if p != nil {
			*p = ""
		}
	}
	buff := path

	if idx := strings.Index(buff, "@"); idx >= 0 {
		cred := buff[:idx]
		if i := strings.Index(cred, ":"); i >= 0 {
			if passwd != nil {
				*passwd = cred[i+1:]
			}
			cred = cred[:i]
		}
		if user != nil {
			*user = cred
		}
		buff = buff[idx+1:]
	}
	if idx := strings.Index(buff, "/"); idx >= 0 {
		p := buff[idx+1:]
		if i := strings.Index(p, ":"); i >= 0 {
			if str != nil {
				*str = p[i+1:]
			}
			p = p[:i]
		}
		if mntpnt != nil {
			*mntpnt = p
		}
		buff = buff[:idx]
	}
	if idx := strings.Index(buff, ":"); idx >= 0 {
		if port != nil {
			*port = buff[idx+1:]
		}
		buff = buff[:idx]
	}
	if addr != nil {
		*addr = buff
	}
}

/* non-block accept ----------------------------------------------------------*/
func acceptNb(listener net.Listener) net.Conn {
	if listener == nil {
		return nil
	}
	if l, ok := listener.(*net.TCPListener); ok {
		l.SetDeadline(time.Now().Add(time.Millisecond))
	}
	sock, err := listener.Accept()
	if err != nil {
		return nil
	}
	return sock
}

/* non-block receive (-1:error/disconnect) -----------------------------------*/
func recvNb(sock net.Conn, buff []byte, n int) int {
	if sock == nil {
		return -1
	}
	sock.SetReadDeadline(time.Now().Add(time.Millisecond))
	nr, err := sock.Read(buff[:n])
	sock.SetReadDeadline(time.Time{})
	if err != nil {
		if e, ok := err.(net.Error); ok && e.Timeout() {
			return nr
		}
		return -1
	}
	return nr
}

/* non-block send (-1:error) -------------------------------------------------*/
func sendNb(sock net.Conn, buff []byte, n int) int {
	if sock == nil {
		return -1
	}
	sock.SetWriteDeadline(time.Now().Add(time.Second))
	ns, err := sock.Write(buff[:n])
	sock.SetWriteDeadline(time.Time{})
	if err != nil || ns < n {
		return -1
	}
	return ns
}

/* generate tcp socket (0:server listen,1:client wait) -----------------------*/
func (tcp *TcpConn) genTcp(ctype int, msg *string) int {
	Tracet(4, "genTcp: type=%d\n", ctype)

	if ctype == 0 { /* server socket */
		listener, err := net.Listen("tcp", fmt.Sprintf(":%d", tcp.port))
		if err != nil {
			*msg = "bind error"
			Tracet(1, "genTcp: bind error port=%d err=%v\n", tcp.port, err)
			tcp.state = -1
			return 0
		}
		tcp.listener = listener
	}
	tcp.state = 1
	tcp.tact = TickGet()
	return 1
}

/* disconnect tcp ------------------------------------------------------------*/
func (tcp *TcpConn) disconnectTcp(tcon int) {
	Tracet(3, "disconnectTcp: tcon=%d\n", tcon)

	if tcp.sock != nil {
		tcp.sock.Close()
		tcp.sock = nil
	}
	tcp.state = 0
	tcp.tcon = tcon
	tcp.tdis = TickGet()
}

/* open tcp server (path=:port) ----------------------------------------------*/
func OpenTcpSvr(path string, msg *string) *TcpSvr {
	var (
		tcpsvr = new(TcpSvr)
		port   string
	)
	Tracet(3, "OpenTcpSvr: path=%s\n", path)

	DecodeTcpPath(path, &tcpsvr.svr.saddr, &port, nil, nil, nil, nil)
	if n, _ := fmt.Sscanf(port, "%d", &tcpsvr.svr.port); n < 1 {
		*msg = fmt.Sprintf("port error: %s", port)
		Tracet(1, "OpenTcpSvr: port error port=%s\n", port)
		return nil
	}
	if tcpsvr.svr.genTcp(0, msg) == 0 {
		return nil
	}
	tcpsvr.svr.tcon = 0
	return tcpsvr
}

/* close tcp server ----------------------------------------------------------*/
func (tcpsvr *TcpSvr) CloseTcpSvr() {
	Tracet(3, "CloseTcpSvr:\n")

	for i := 0; i < MAXCLI; i++ {
		if tcpsvr.cli[i].state > 0 && tcpsvr.cli[i].sock != nil {
			tcpsvr.cli[i].sock.Close()
			tcpsvr.cli[i].state = 0
		}
	}
	if tcpsvr.svr.listener != nil {
		tcpsvr.svr.listener.Close()
	}
	tcpsvr.svr.state = 0
}

/* update tcp server ---------------------------------------------------------*/
func (tcpsvr *TcpSvr) UpdateTcpSvr(msg *string) {
	var (
		saddr string
		n     int
	)
	Tracet(4, "UpdateTcpSvr: state=%d\n", tcpsvr.svr.state)

	if tcpsvr.svr.state == 0 {
		return
	}
	for i := 0; i < MAXCLI; i++ {
		if tcpsvr.cli[i].state == 0 {
			continue
		}
		saddr = tcpsvr.cli[i].saddr
		n++
	}
	if n == 0 {
		tcpsvr.svr.state = 1
		*msg = "waiting..."
		return
	}
	tcpsvr.svr.state = 2
	if n == 1 {
		*msg = saddr
	} else {
		*msg = fmt.Sprintf("%d clients", n)
	}
}

/* accept client connection --------------------------------------------------*/
func (tcpsvr *TcpSvr) AccSock(msg *string) int {
	var i int

	Tracet(4, "AccSock:\n")

	for i = 0; i < MAXCLI; i++ {
		if tcpsvr.cli[i].state == 0 {
			break
		}
	}
	if i >= MAXCLI {
		Tracet(2, "AccSock: too many clients\n")
		return 0
	}
	sock := acceptNb(tcpsvr.svr.listener)
	if sock == nil {
		return 0
	}
	tcpsvr.cli[i].sock = sock
	tcpsvr.cli[i].saddr = sock.RemoteAddr().String()
	*msg = tcpsvr.cli[i].saddr
	Tracet(3, "AccSock: connected addr=%s i=%d\n", tcpsvr.cli[i].saddr, i)
	tcpsvr.cli[i].state = 2
	tcpsvr.cli[i].tact = TickGet()
	return 1
}

/* wait socket accept --------------------------------------------------------*/
func (tcpsvr *TcpSvr) WaitTcpSvr(msg *string) int {
	Tracet(4, "WaitTcpSvr: state=%d\n", tcpsvr.svr.state)

	if tcpsvr.svr.state <= 0 {
		return 0
	}
	for tcpsvr.AccSock(msg) > 0 {
	}
	tcpsvr.UpdateTcpSvr(msg)
	if tcpsvr.svr.state == 2 {
		return 1
	}
	return 0
}

/* read tcp server -----------------------------------------------------------*/
func (tcpsvr *TcpSvr) ReadTcpSvr(buff []byte, n int, msg *string) int {
	Tracet(4, "ReadTcpSvr: state=%d\n", tcpsvr.svr.state)

	if tcpsvr.WaitTcpSvr(msg) == 0 {
		return 0
	}
	for i := 0; i < MAXCLI; i++ {
		if tcpsvr.cli[i].state != 2 {
			continue
		}
		nr := recvNb(tcpsvr.cli[i].sock, buff, n)
		if nr == -1 {
			Tracet(2, "ReadTcpSvr: recv error i=%d\n", i)
			tcpsvr.cli[i].disconnectTcp(ticonnect)
			tcpsvr.UpdateTcpSvr(msg)
			continue
		}
		if nr > 0 {
			tcpsvr.cli[i].tact = TickGet()
			return nr
		}
	}
	return 0
}

/* write tcp server ----------------------------------------------------------*/
func (tcpsvr *TcpSvr) WriteTcpSvr(buff []byte, n int, msg *string) int {
	var nmax int

	Tracet(4, "WriteTcpSvr: state=%d n=%d\n", tcpsvr.svr.state, n)

	if tcpsvr.WaitTcpSvr(msg) == 0 {
		return 0
	}
	for i := 0; i < MAXCLI; i++ {
		if tcpsvr.cli[i].state != 2 {
			continue
		}
		ns := sendNb(tcpsvr.cli[i].sock, buff, n)
		if ns == -1 {
			Tracet(2, "WriteTcpSvr: send error i=%d\n", i)
			tcpsvr.cli[i].disconnectTcp(ticonnect)
			tcpsvr.UpdateTcpSvr(msg)
			continue
		}
		if ns > nmax {
			nmax = ns
		}
		if ns > 0 {
			tcpsvr.cli[i].tact = TickGet()
		}
	}
	return nmax
}

/* get state tcp server ------------------------------------------------------*/
func (tcpsvr *TcpSvr) StateTcpSvr() int {
	if tcpsvr != nil {
		return tcpsvr.svr.state
	}
	return 0
}

/* print extended state tcp --------------------------------------------------*/
func (tcp *TcpConn) statExTcp(msg *string) {
	*msg += fmt.Sprintf("    state = %d\n", tcp.state)
	*msg += fmt.Sprintf("    saddr = %s\n", tcp.saddr)
	*msg += fmt.Sprintf("    port  = %d\n", tcp.port)
}

/* get extended state tcp server ---------------------------------------------*/
func (tcpsvr *TcpSvr) StatExTcpSvr(msg *string) int {
	state := tcpsvr.StateTcpSvr()

	*msg += "tcpsvr:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += "  svr:\n"
	tcpsvr.svr.statExTcp(msg)
	for i := 0; i < MAXCLI; i++ {
		if tcpsvr.cli[i].state == 0 {
			continue
		}
		*msg += fmt.Sprintf("  cli#%d:\n", i)
		tcpsvr.cli[i].statExTcp(msg)
	}
	return state
}

/* connect server ------------------------------------------------------------*/
func (tcpcli *TcpClient) connectSock(msg *string) int {
	Tracet(4, "connectSock:\n")

	/* wait re-connect */
	if tcpcli.svr.tcon < 0 || (tcpcli.svr.tcon > 0 &&
		int(TickGet()-tcpcli.svr.tdis) < tcpcli.svr.tcon) {
		return 0
	}
	sock, err := net.DialTimeout("tcp", tcpcli.svr.resolveAddr(), 5*time.Second)
	if err != nil {
		*msg = fmt.Sprintf("connect error (%s)", err.Error())
		Tracet(2, "connectSock: connect error addr=%s err=%s\n",
			tcpcli.svr.resolveAddr(), err.Error())
		tcpcli.svr.disconnectTcp(tcpcli.tirecon)
		return 0
	}
	tcpcli.svr.sock = sock
	*msg = tcpcli.svr.saddr
	Tracet(3, "connectSock: connected addr=%s\n", tcpcli.svr.saddr)
	tcpcli.svr.state = 2
	tcpcli.svr.tact = TickGet()
	return 1
}

/* open tcp client (path=addr:port) ------------------------------------------*/
func OpenTcpClient(path string, msg *string) *TcpClient {
	var (
		tcpcli = new(TcpClient)
		port   string
		err    error
	)
	Tracet(3, "OpenTcpClient: path=%s\n", path)

	DecodeTcpPath(path, &tcpcli.svr.saddr, &port, nil, nil, nil, nil)
	if tcpcli.svr.port, err = strconv.Atoi(port); err != nil {
		*msg = fmt.Sprintf("port error: %s", port)
		Tracet(2, "OpenTcpClient: port error port=%s\n", port)
		return nil
	}
	tcpcli.svr.tcon = 0
	tcpcli.toinact = toinact
	tcpcli.tirecon = ticonnect
	return tcpcli
}

/* close tcp client ----------------------------------------------------------*/
func (tcpcli *TcpClient) CloseTcpClient() {
	Tracet(3, "CloseTcpClient:\n")

	if tcpcli.svr.sock != nil {
		tcpcli.svr.sock.Close()
		tcpcli.svr.sock = nil
	}
	tcpcli.svr.state = 0
}

/* wait socket connect -------------------------------------------------------*/
func (tcpcli *TcpClient) WaitTcpClient(msg *string) int {
	Tracet(4, "WaitTcpClient: state=%d\n", tcpcli.svr.state)

	if tcpcli.svr.state < 0 {
		return 0
	}
	if tcpcli.svr.state == 0 { /* close */
		if tcpcli.svr.genTcp(1, msg) == 0 {
			return 0
		}
	}
	if tcpcli.svr.state == 1 { /* wait */
		if tcpcli.connectSock(msg) == 0 {
			return 0
		}
	}
	if tcpcli.svr.state == 2 { /* connect */
		if tcpcli.toinact > 0 &&
			int(TickGet()-tcpcli.svr.tact) > tcpcli.toinact {
			*msg = "timeout"
			Tracet(2, "WaitTcpClient: inactive timeout\n")
			tcpcli.svr.disconnectTcp(tcpcli.tirecon)
			return 0
		}
	}
	return 1
}

/* read tcp client -----------------------------------------------------------*/
func (tcpcli *TcpClient) ReadTcpClient(buff []byte, n int, msg *string) int {
	Tracet(4, "ReadTcpClient:\n")

	if tcpcli.WaitTcpClient(msg) == 0 {
		return 0
	}
	nr := recvNb(tcpcli.svr.sock, buff, n)
	if nr == -1 {
		*msg = "disconnected"
		Tracet(2, "ReadTcpClient: recv error\n")
		tcpcli.svr.disconnectTcp(tcpcli.tirecon)
		return 0
	}
	if nr > 0 {
		tcpcli.svr.tact = TickGet()
	}
	return nr
}

/* write tcp client ----------------------------------------------------------*/
func (tcpcli *TcpClient) WriteTcpClient(buff []byte, n int, msg *string) int {
	Tracet(4, "WriteTcpClient: state=%d n=%d\n", tcpcli.svr.state, n)

	if tcpcli.WaitTcpClient(msg) == 0 {
		return 0
	}
	ns := sendNb(tcpcli.svr.sock, buff, n)
	if ns == -1 {
		*msg = "send error"
		Tracet(2, "WriteTcpClient: send error\n")
		tcpcli.svr.disconnectTcp(tcpcli.tirecon)
		return 0
	}
	if ns > 0 {
		tcpcli.svr.tact = TickGet()
	}
	return ns
}

/* get state tcp client ------------------------------------------------------*/
func (tcpcli *TcpClient) StateTcpCli() int {
	if tcpcli != nil {
		return tcpcli.svr.state
	}
	return 0
}

/* get extended state tcp client ---------------------------------------------*/
func (tcpcli *TcpClient) StatExTcpClient(msg *string) int {
	state := tcpcli.StateTcpCli()

	*msg += "tcpcli:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += "  svr:\n"
	tcpcli.svr.statExTcp(msg)
	return state
}

/* send ntrip server request -------------------------------------------------*/
func (ntrip *NTrip) requestNtripSvr(msg *string) int {
	Tracet(3, "requestNtripSvr: state=%d\n", ntrip.state)

	p := fmt.Sprintf("SOURCE %s %s\r\n", ntrip.passwd, ntrip.mntpnt)
	p += fmt.Sprintf("Source-Agent: NTRIP %s\r\n", NTRIP_AGENT)
	p += fmt.Sprintf("STR: %s\r\n", ntrip.str)
	p += "\r\n"

	if ntrip.tcp.WriteTcpClient([]byte(p), len(p), msg) != len(p) {
		return 0
	}
	Tracet(3, "requestNtripSvr: send request ns=%d\n", len(p))
	ntrip.state = 1
	return 1
}

/* send ntrip client request -------------------------------------------------*/
func (ntrip *NTrip) requestNtripCli(msg *string) int {
	Tracet(3, "requestNtripCli: state=%d\n", ntrip.state)

	p := fmt.Sprintf("GET %s/%s HTTP/1.0\r\n", ntrip.url, ntrip.mntpnt)
	p += fmt.Sprintf("User-Agent: NTRIP %s\r\n", NTRIP_AGENT)

	if len(ntrip.user) == 0 {
		p += "Accept: */*\r\n"
		p += "Connection: close\r\n"
	} else {
		user := fmt.Sprintf("%s:%s", ntrip.user, ntrip.passwd)
		p += "Authorization: Basic "
		p += base64.StdEncoding.EncodeToString([]byte(user))
		p += "\r\n"
	}
	p += "\r\n"

	if ntrip.tcp.WriteTcpClient([]byte(p), len(p), msg) != len(p) {
		return 0
	}
	Tracet(3, "requestNtripCli: send request ns=%d\n", len(p))
	ntrip.state = 1
	return 1
}

/* discard response buffer and disconnect ------------------------------------*/
func (ntrip *NTrip) discardNtrip() {
	ntrip.nb = 0
	ntrip.buff = ntrip.buff[:0]
	ntrip.state = 0
	ntrip.tcp.svr.disconnectTcp(ntrip.tcp.tirecon)
}

/* test ntrip server response ------------------------------------------------*/
func (ntrip *NTrip) responseNtripSvr(msg *string) int {
	Tracet(3, "responseNtripSvr: state=%d nb=%d\n", ntrip.state, ntrip.nb)

	rsp := string(ntrip.buff[:ntrip.nb])

	if idx := strings.Index(rsp, NTRIP_RSP_OK_SVR); idx >= 0 { /* ok */
		idx += len(NTRIP_RSP_OK_SVR)
		ntrip.nb -= idx
		ntrip.buff = append(ntrip.buff[:0], ntrip.buff[idx:idx+ntrip.nb]...)
		ntrip.state = 2
		*msg = fmt.Sprintf("%s/%s", ntrip.tcp.svr.saddr, ntrip.mntpnt)
		Tracet(3, "responseNtripSvr: response ok nb=%d\n", ntrip.nb)
		return 1
	}
	if idx := strings.Index(rsp, NTRIP_RSP_ERROR); idx >= 0 { /* error */
		nb := ntrip.nb
		if nb > MAXSTATMSG {
			nb = MAXSTATMSG
		}
		*msg = string(ntrip.buff[:nb])
		if i := strings.Index(*msg, "\r"); i >= 0 {
			*msg = (*msg)[:i]
		}
		Tracet(3, "responseNtripSvr: %s nb=%d\n", *msg, ntrip.nb)
		ntrip.discardNtrip()
	} else if ntrip.nb >= NTRIP_MAXRSP { /* buffer overflow */
		*msg = "response overflow"
		Tracet(3, "responseNtripSvr: response overflow nb=%d\n", ntrip.nb)
		ntrip.discardNtrip()
	}
	return 0
}

/* test ntrip client response ------------------------------------------------*/
func (ntrip *NTrip) responseNtripCli(msg *string) int {
	Tracet(3, "responseNtripCli: state=%d nb=%d\n", ntrip.state, ntrip.nb)

	rsp := string(ntrip.buff[:ntrip.nb])

	if idx := strings.Index(rsp, NTRIP_RSP_OK_CLI); idx >= 0 { /* ok */
		idx += len(NTRIP_RSP_OK_CLI)
		ntrip.nb -= idx
		ntrip.buff = append(ntrip.buff[:0], ntrip.buff[idx:idx+ntrip.nb]...)
		ntrip.state = 2
		*msg = fmt.Sprintf("%s/%s", ntrip.tcp.svr.saddr, ntrip.mntpnt)
		Tracet(3, "responseNtripCli: response ok nb=%d\n", ntrip.nb)
		return 1
	}
	if strings.Contains(rsp, NTRIP_RSP_SRCTBL) { /* source table */
		if len(ntrip.mntpnt) == 0 { /* source table request */
			ntrip.state = 2
			*msg = "source table received"
			Tracet(3, "responseNtripCli: receive source table nb=%d\n", ntrip.nb)
			return 1
		}
		*msg = "no mountp. reconnect..."
		Tracet(2, "responseNtripCli: no mount point nb=%d\n", ntrip.nb)
		ntrip.discardNtrip()
	} else if idx := strings.Index(rsp, NTRIP_RSP_HTTP); idx >= 0 { /* http response */
		line := rsp[idx:]
		if i := strings.Index(line, "\r"); i >= 0 {
			line = line[:i]
		} else if len(line) > 128 {
			line = line[:128]
		}
		*msg = line
		Tracet(3, "responseNtripCli: %s nb=%d\n", *msg, ntrip.nb)
		ntrip.discardNtrip()
	} else if ntrip.nb >= NTRIP_MAXRSP { /* buffer overflow */
		*msg = "response overflow"
		Tracet(2, "responseNtripCli: response overflow nb=%d\n", ntrip.nb)
		ntrip.discardNtrip()
	}
	return 0
}

/* wait ntrip request/response -----------------------------------------------*/
func (ntrip *NTrip) WaitNtrip(msg *string) int {
	Tracet(4, "WaitNtrip: state=%d nb=%d\n", ntrip.state, ntrip.nb)

	if ntrip.state < 0 {
		return 0 /* error */
	}
	if ntrip.tcp.svr.state < 2 {
		ntrip.state = 0 /* tcp disconnected */
	}
	if ntrip.state == 0 { /* send request */
		var ret int
		if ntrip.ctype == 0 {
			ret = ntrip.requestNtripSvr(msg)
		} else {
			ret = ntrip.requestNtripCli(msg)
		}
		if ret == 0 {
			return 0
		}
		Tracet(3, "WaitNtrip: state=%d nb=%d\n", ntrip.state, ntrip.nb)
	}
	if ntrip.state == 1 { /* read response */
		p := make([]byte, NTRIP_MAXRSP)
		n := ntrip.tcp.ReadTcpClient(p, NTRIP_MAXRSP-ntrip.nb-1, msg)
		if n == 0 {
			Tracet(5, "WaitNtrip: readtcp n=%d\n", n)
			return 0
		}
		ntrip.buff = append(ntrip.buff, p[:n]...)
		ntrip.nb += n

		/* wait response */
		if ntrip.ctype == 0 {
			return ntrip.responseNtripSvr(msg)
		}
		return ntrip.responseNtripCli(msg)
	}
	return 1
}

/* open ntrip (type=0:server,1:client) ---------------------------------------*/
func OpenNtrip(path string, ctype int, msg *string) *NTrip {
	var (
		ntrip      = new(NTrip)
		addr, port string
	)
	Tracet(3, "OpenNtrip: path=%s type=%d\n", path, ctype)

	ntrip.ctype = ctype

	/* decode tcp/ntrip path */
	DecodeTcpPath(path, &addr, &port, &ntrip.user, &ntrip.passwd, &ntrip.mntpnt,
		&ntrip.str)

	/* use default port if no port specified */
	if len(port) == 0 {
		if ctype > 0 {
			port = strconv.Itoa(NTRIP_CLI_PORT)
		} else {
			port = strconv.Itoa(NTRIP_SVR_PORT)
		}
	}
	tpath := fmt.Sprintf("%s:%s", addr, port)

	/* ntrip access via proxy server */
	if len(proxyaddr) > 0 {
		ntrip.url = fmt.Sprintf("http://%s", tpath)
		tpath = proxyaddr
	}
	/* open tcp client stream */
	if ntrip.tcp = OpenTcpClient(tpath, msg); ntrip.tcp == nil {
		Tracet(2, "OpenNtrip: opentcp error\n")
		return nil
	}
	return ntrip
}

/* close ntrip ---------------------------------------------------------------*/
func (ntrip *NTrip) CloseNtrip() {
	Tracet(3, "CloseNtrip: state=%d\n", ntrip.state)

	ntrip.tcp.CloseTcpClient()
}

/* read ntrip ----------------------------------------------------------------*/
func (ntrip *NTrip) ReadNtrip(buff []byte, n int, msg *string) int {
	Tracet(4, "ReadNtrip:\n")

	if ntrip.WaitNtrip(msg) == 0 {
		return 0
	}
	if ntrip.nb > 0 { /* read response buffer first */
		nb := ntrip.nb
		if nb > n {
			nb = n
		}
		copy(buff, ntrip.buff[ntrip.nb-nb:ntrip.nb])
		ntrip.nb = 0
		ntrip.buff = ntrip.buff[:0]
		return nb
	}
	return ntrip.tcp.ReadTcpClient(buff, n, msg)
}

/* write ntrip ---------------------------------------------------------------*/
func (ntrip *NTrip) WriteNtrip(buff []byte, n int, msg *string) int {
	Tracet(4, "WriteNtrip: n=%d\n", n)

	if ntrip.WaitNtrip(msg) == 0 {
		return 0
	}
	return ntrip.tcp.WriteTcpClient(buff, n, msg)
}

/* get state ntrip -----------------------------------------------------------*/
func (ntrip *NTrip) StateNtrip() int {
	if ntrip == nil {
		return 0
	}
	if ntrip.state == 0 {
		return ntrip.tcp.svr.state
	}
	return ntrip.state
}

/* get extended state ntrip --------------------------------------------------*/
func (ntrip *NTrip) StatExNtrip(msg *string) int {
	state := ntrip.StateNtrip()

	*msg += "ntrip:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  type    = %d\n", ntrip.ctype)
	*msg += fmt.Sprintf("  nb      = %d\n", ntrip.nb)
	*msg += fmt.Sprintf("  url     = %s\n", ntrip.url)
	*msg += fmt.Sprintf("  mntpnt  = %s\n", ntrip.mntpnt)
	*msg += fmt.Sprintf("  user    = %s\n", ntrip.user)
	*msg += fmt.Sprintf("  str     = %s\n", ntrip.str)
	*msg += "  svr:\n"
	ntrip.tcp.svr.statExTcp(msg)
	return state
}

/* open ntrip-caster (path=[user[:passwd]@][:port]/mpoint[:srctbl]) ----------*/
func OpenNtripc(path string, msg *string) *NTripc {
	var (
		ntripc = new(NTripc)
		port   string
	)
	Tracet(3, "OpenNtripc: path=%s\n", path)

	ntripc.con = make([]NTripcCon, MAXCLI)

	/* decode tcp/ntrip path */
	DecodeTcpPath(path, nil, &port, &ntripc.user, &ntripc.passwd, &ntripc.mntpnt,
		&ntripc.srctbl)

	if len(ntripc.mntpnt) == 0 {
		Tracet(2, "OpenNtripc: no mountpoint path=%s\n", path)
		return nil
	}
	/* use default port if no port specified */
	if len(port) == 0 {
		port = strconv.Itoa(NTRIP_CLI_PORT)
	}
	/* open tcp server stream */
	if ntripc.tcp = OpenTcpSvr(":"+port, msg); ntripc.tcp == nil {
		Tracet(2, "OpenNtripc: opentcpsvr error port=%s\n", port)
		return nil
	}
	return ntripc
}

/* close ntrip-caster --------------------------------------------------------*/
func (ntripc *NTripc) CloseNtripc() {
	Tracet(3, "CloseNtripc: state=%d\n", ntripc.state)

	ntripc.tcp.CloseTcpSvr()
}

/* disconnect ntrip-caster connection ----------------------------------------*/
func (ntripc *NTripc) DisconnectNtripc(i int) {
	Tracet(3, "DisconnectNtripc: i=%d\n", i)

	ntripc.tcp.cli[i].disconnectTcp(ticonnect)
	ntripc.con[i].nb = 0
	ntripc.con[i].buff = ntripc.con[i].buff[:0]
	ntripc.con[i].state = 0
}

/* send ntrip source table ---------------------------------------------------*/
func (ntripc *NTripc) SendSrcTbl(sock net.Conn) {
	srctbl := fmt.Sprintf("STR;%s;%s\r\n%s\r\n", ntripc.mntpnt, ntripc.srctbl,
		NTRIP_RSP_TBLEND)
	buff := NTRIP_RSP_SRCTBL
	buff += fmt.Sprintf("Server: %s %s\r\n", "RTKLIB", VER_GNSSRT)
	buff += fmt.Sprintf("Date: %s UTC\r\n", Time2Str(TimeGet(), 0))
	buff += "Connection: close\r\n"
	buff += "Content-Type: text/plain\r\n"
	buff += fmt.Sprintf("Content-Length: %d\r\n\r\n", len(srctbl))
	sendNb(sock, []byte(buff), len(buff))
	sendNb(sock, []byte(srctbl), len(srctbl))
}

/* test ntrip client request -------------------------------------------------*/
func (ntripc *NTripc) RequestNtripc(i int) {
	var url, proto string

	con := &ntripc.con[i]
	req := string(con.buff[:con.nb])

	Tracet(3, "RequestNtripc: i=%d\n", i)

	if con.nb >= NTRIP_MAXRSP-1 { /* buffer overflow */
		Tracet(2, "RequestNtripc: request buffer overflow\n")
		ntripc.DisconnectNtripc(i)
		return
	}
	/* test GET and User-Agent */
	if !strings.Contains(req, "\r\n") {
		return /* wait for complete request */
	}
	if n, _ := fmt.Sscanf(req, "GET %s %s", &url, &proto); n < 2 ||
		(proto != "HTTP/1.0" && proto != "HTTP/1.1") {
		Tracet(2, "RequestNtripc: request error proto=%s\n", proto)
		ntripc.DisconnectNtripc(i)
		return
	}
	mntpnt := strings.TrimPrefix(url, "/")

	/* test mountpoint */
	if len(mntpnt) == 0 || mntpnt != ntripc.mntpnt {
		Tracet(2, "RequestNtripc: no mountpoint %s\n", mntpnt)

		/* send source table */
		ntripc.SendSrcTbl(ntripc.tcp.cli[i].sock)
		ntripc.DisconnectNtripc(i)
		return
	}
	/* test authentication */
	if len(ntripc.passwd) > 0 {
		user := fmt.Sprintf("%s:%s", ntripc.user, ntripc.passwd)
		auth := "Authorization: Basic " +
			base64.StdEncoding.EncodeToString([]byte(user))
		if !strings.Contains(req, auth) {
			Tracet(2, "RequestNtripc: authorization error\n")
			rsp := NTRIP_RSP_UNAUTH
			sendNb(ntripc.tcp.cli[i].sock, []byte(rsp), len(rsp))
			ntripc.DisconnectNtripc(i)
			return
		}
	}
	/* send OK response */
	rsp := NTRIP_RSP_OK_CLI
	sendNb(ntripc.tcp.cli[i].sock, []byte(rsp), len(rsp))

	con.state = 1
	con.mntpnt = mntpnt
}

/* handle ntrip client connect request ---------------------------------------*/
func (ntripc *NTripc) WaitNtripc(msg *string) {
	Tracet(4, "WaitNtripc:\n")

	ntripc.state = ntripc.tcp.svr.state

	if ntripc.tcp.WaitTcpSvr(msg) == 0 {
		return
	}
	for i := 0; i < len(ntripc.con); i++ {
		if ntripc.tcp.cli[i].state != 2 || ntripc.con[i].state > 0 {
			continue
		}
		/* receive ntrip client request */
		buff := make([]byte, NTRIP_MAXRSP)
		nmax := NTRIP_MAXRSP - ntripc.con[i].nb - 1

		n := recvNb(ntripc.tcp.cli[i].sock, buff, nmax)
		if n == -1 {
			Tracet(2, "WaitNtripc: recv error i=%d\n", i)
			ntripc.DisconnectNtripc(i)
			continue
		}
		if n <= 0 {
			continue
		}
		/* test ntrip client request */
		ntripc.con[i].buff = append(ntripc.con[i].buff, buff[:n]...)
		ntripc.con[i].nb += n
		ntripc.RequestNtripc(i)
	}
}

/* read ntrip-caster ---------------------------------------------------------*/
func (ntripc *NTripc) ReadNtripc(buff []byte, n int, msg *string) int {
	Tracet(4, "ReadNtripc:\n")

	ntripc.WaitNtripc(msg)

	for i := 0; i < len(ntripc.con); i++ {
		if ntripc.con[i].state == 0 {
			continue
		}
		nr := recvNb(ntripc.tcp.cli[i].sock, buff, n)
		if nr < 0 {
			Tracet(2, "ReadNtripc: recv error i=%d\n", i)
			ntripc.DisconnectNtripc(i)
			continue
		}
		if nr > 0 {
			ntripc.tcp.cli[i].tact = TickGet()
			return nr
		}
	}
	return 0
}

/* write ntrip-caster --------------------------------------------------------*/
func (ntripc *NTripc) WriteNtripc(buff []byte, n int, msg *string) int {
	var ns int

	Tracet(4, "WriteNtripc: n=%d\n", n)

	ntripc.WaitNtripc(msg)

	for i := 0; i < len(ntripc.con); i++ {
		if ntripc.con[i].state == 0 {
			continue
		}
		ns = sendNb(ntripc.tcp.cli[i].sock, buff, n)
		if ns < n {
			Tracet(2, "WriteNtripc: send error i=%d\n", i)
			ntripc.DisconnectNtripc(i)
		} else {
			ntripc.tcp.cli[i].tact = TickGet()
		}
	}
	return ns
}

/* get state ntrip-caster ----------------------------------------------------*/
func (ntripc *NTripc) StateNtripc() int {
	if ntripc == nil {
		return 0
	}
	return ntripc.state
}

/* get extended state ntrip-caster -------------------------------------------*/
func (ntripc *NTripc) StatExNtripc(msg *string) int {
	state := ntripc.StateNtripc()

	*msg += "ntripc:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  mntpnt  = %s\n", ntripc.mntpnt)
	*msg += fmt.Sprintf("  user    = %s\n", ntripc.user)
	*msg += fmt.Sprintf("  srctbl  = %s\n", ntripc.srctbl)
	*msg += "  svr:\n"
	ntripc.tcp.svr.statExTcp(msg)
	for i := 0; i < len(ntripc.tcp.cli); i++ {
		if ntripc.tcp.cli[i].state == 0 {
			continue
		}
		*msg += fmt.Sprintf("  cli#%d:\n", i)
		ntripc.tcp.cli[i].statExTcp(msg)
		*msg += fmt.Sprintf("    mntpnt= %s\n", ntripc.con[i].mntpnt)
		*msg += fmt.Sprintf("    nb    = %d\n", ntripc.con[i].nb)
	}
	return state
}

/* generate udp socket (type=0:server,1:client) ------------------------------*/
func GenUdp(ctype, port int, saddr string, msg *string) *UdpConn {
	var err error

	Tracet(3, "GenUdp: type=%d\n", ctype)

	udp := new(UdpConn)
	udp.state = 2
	udp.ctype = ctype
	udp.port = port
	udp.saddr = saddr

	if ctype == 0 { /* udp server */
		addr, e := net.ResolveUDPAddr("udp", fmt.Sprintf(":%d", port))
		if e != nil {
			*msg = fmt.Sprintf("address error (%s)", e.Error())
			return nil
		}
		if udp.sock, err = net.ListenUDP("udp", addr); err != nil {
			*msg = fmt.Sprintf("bind error (%s): %d", err.Error(), port)
			Tracet(2, "GenUdp: bind error port=%d err=%v\n", port, err)
			return nil
		}
	} else { /* udp client */
		if udp.sock, err = net.Dial("udp", fmt.Sprintf("%s:%d", saddr, port)); err != nil {
			*msg = fmt.Sprintf("address error (%s)", saddr)
			return nil
		}
	}
	return udp
}

/* open udp server (path=:port) ----------------------------------------------*/
func OpenUdpSvr(path string, msg *string) *UdpConn {
	var sport string

	Tracet(3, "OpenUdpSvr: path=%s\n", path)

	DecodeTcpPath(path, nil, &sport, nil, nil, nil, nil)

	port, err := strconv.Atoi(sport)
	if err != nil {
		*msg = fmt.Sprintf("port error: %s", sport)
		Tracet(2, "OpenUdpSvr: port error port=%s\n", sport)
		return nil
	}
	return GenUdp(0, port, "", msg)
}

/* close udp server ----------------------------------------------------------*/
func (udpsvr *UdpConn) CloseUdpSvr() {
	Tracet(3, "CloseUdpSvr:\n")

	udpsvr.sock.Close()
	udpsvr.state = 0
}

/* read udp server -----------------------------------------------------------*/
func (udpsvr *UdpConn) ReadUdpSvr(buff []byte, n int, msg *string) int {
	Tracet(4, "ReadUdpSvr: n=%d\n", n)

	udpsvr.sock.SetReadDeadline(time.Now().Add(time.Millisecond))
	nr, _ := udpsvr.sock.Read(buff[:n])
	udpsvr.sock.SetReadDeadline(time.Time{})
	return nr
}

/* get state udp server ------------------------------------------------------*/
func (udpsvr *UdpConn) StateUdpSvr() int {
	if udpsvr != nil {
		return udpsvr.state
	}
	return 0
}

/* get extended state udp server ---------------------------------------------*/
func (udpsvr *UdpConn) StatExUdpSvr(msg *string) int {
	state := udpsvr.StateUdpSvr()

	*msg += "udpsvr:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  type    = %d\n", udpsvr.ctype)
	*msg += fmt.Sprintf("  port    = %d\n", udpsvr.port)
	return state
}

/* open udp client (path=addr:port) ------------------------------------------*/
func OpenUdpClient(path string, msg *string) *UdpConn {
	var sport, saddr string

	Tracet(3, "OpenUdpClient: path=%s\n", path)

	DecodeTcpPath(path, &saddr, &sport, nil, nil, nil, nil)

	port, err := strconv.Atoi(sport)
	if err != nil {
		*msg = fmt.Sprintf("port error: %s", sport)
		Tracet(2, "OpenUdpClient: port error port=%s\n", sport)
		return nil
	}
	return GenUdp(1, port, saddr, msg)
}

/* close udp client ----------------------------------------------------------*/
func (udpcli *UdpConn) CloseUdpClient() {
	Tracet(3, "CloseUdpClient:\n")

	udpcli.sock.Close()
	udpcli.state = 0
}

/* write udp client ----------------------------------------------------------*/
func (udpcli *UdpConn) WriteUdpClient(buff []byte, n int, msg *string) int {
	Tracet(4, "WriteUdpClient: n=%d\n", n)

	ns, _ := udpcli.sock.Write(buff[:n])
	return ns
}

/* get state udp client ------------------------------------------------------*/
func (udpcli *UdpConn) StateUdpClient() int {
	if udpcli == nil {
		return 0
	}
	return udpcli.state
}

/* get extended state udp client ---------------------------------------------*/
func (udpcli *UdpConn) StatExUdpClient(msg *string) int {
	state := udpcli.StateUdpClient()

	*msg += "udpcli:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  type    = %d\n", udpcli.ctype)
	*msg += fmt.Sprintf("  addr    = %s\n", udpcli.saddr)
	*msg += fmt.Sprintf("  port    = %d\n", udpcli.port)
	return state
}

/* decode ftp path (path=[user[:passwd]@]addr/path[::T=poff,tint,toff,tret]) -*/
func DecodeFtpPath(path string, addr, file, user, passwd *string, topts []int) {
	Tracet(4, "DecodeFtpPath: path=%s\n", path)

	if user != nil {
		*user = ""
	}
	if passwd != nil {
		*passwd = ""
	}
	if len(topts) > 3 {
		topts[0] = 0    /* time offset in path (s) */
		topts[1] = 3600 /* download interval (s) */
		topts[2] = 0    /* download time offset (s) */
		topts[3] = 0    /* retry interval (s) (0: no retry) */
	}
	buff := path

	if idx := strings.Index(buff, "::"); idx >= 0 {
		if len(topts) > 3 {
			fmt.Sscanf(buff[idx+2:], "T=%d,%d,%d,%d", &topts[0], &topts[1],
				&topts[2], &topts[3])
		}
		buff = buff[:idx]
	}
	if idx := strings.Index(buff, "/"); idx >= 0 {
		if file != nil {
			*file = buff[idx+1:]
		}
		buff = buff[:idx]
	}
	if idx := strings.Index(buff, "@"); idx >= 0 {
		cred := buff[:idx]
		if i := strings.Index(cred, ":"); i >= 0 {
			if passwd != nil {
				*passwd = cred[i+1:]
			}
			cred = cred[:i]
		}
		if user != nil {
			*user = cred
		}
		buff = buff[idx+1:]
	}
	if addr != nil {
		*addr = buff
	}
}

/* next download time --------------------------------------------------------*/
func nextDlTime(topts []int, stat int) Gtime {
	var week int

	Tracet(3, "nextDlTime: topts=%d %d %d %d stat=%d\n", topts[0], topts[1],
		topts[2], topts[3], stat)

	/* current time (gpst) */
	t := Utc2GpsT(TimeGet())
	tow := Time2GpsT(t, &week)

	/* next retry time */
	if stat == 0 && topts[3] > 0 {
		tow = (math.Floor((tow-float64(topts[2]))/float64(topts[3]))+1.0)*
			float64(topts[3]) + float64(topts[2])
		return GpsT2Time(week, tow)
	}
	/* next interval time */
	tint := 3600
	if topts[1] > 0 {
		tint = topts[1]
	}
	tow = (math.Floor((tow-float64(topts[2]))/float64(tint))+1.0)*float64(tint) +
		float64(topts[2])
	return GpsT2Time(week, tow)
}

/* ftp download thread -------------------------------------------------------*/
func ftpThread(ftp *FtpConn) {
	var proxyOpt, env string

	Tracet(3, "ftpThread:\n")

	if len(localdir) == 0 {
		Tracet(2, "ftpThread: no local directory\n")
		ftp.errNo = 11
		ftp.state = 3
		return
	}
	/* replace keyword in file path and local path */
	t := TimeAdd(Utc2GpsT(TimeGet()), float64(ftp.topts[0]))
	remote := RepPath(ftp.file, t, "", "")

	p := remote
	if idx := strings.LastIndex(remote, "/"); idx >= 0 {
		p = remote[idx+1:]
	}
	local := localdir + FILEPATHSEP + p
	errfile := local + ".err"

	/* if local file exist, skip download */
	tmpfile := local
	if strings.HasSuffix(tmpfile, ".z") || strings.HasSuffix(tmpfile, ".gz") ||
		strings.HasSuffix(tmpfile, ".zip") || strings.HasSuffix(tmpfile, ".Z") ||
		strings.HasSuffix(tmpfile, ".GZ") || strings.HasSuffix(tmpfile, ".ZIP") {
		tmpfile = tmpfile[:strings.LastIndex(tmpfile, ".")]
	}
	if fp, err := os.Open(tmpfile); err == nil {
		fp.Close()
		ftp.local = tmpfile
		Tracet(3, "ftpThread: file exists %s\n", ftp.local)
		ftp.state = 2
		return
	}
	if len(proxyaddr) > 0 {
		proto := "ftp"
		if ftp.proto > 0 {
			proto = "http"
		}
		env = fmt.Sprintf("set %s_proxy=http://%s & ", proto, proxyaddr)
		proxyOpt = "--proxy=on "
	}
	/* download command (ref [2]) */
	var cmd string
	if ftp.proto == 0 { /* ftp */
		opt := fmt.Sprintf("--ftp-user=%s --ftp-password=%s --glob=off "+
			"--passive-ftp %s-t 1 -T %d -O \"%s\"",
			ftp.user, ftp.passwd, proxyOpt, FTP_TIMEOUT, local)
		cmd = fmt.Sprintf("%s%s %s \"ftp://%s/%s\" 2> \"%s\"", env, FTP_CMD, opt,
			ftp.addr, remote, errfile)
	} else { /* http */
		opt := fmt.Sprintf("%s-t 1 -T %d -O \"%s\"", proxyOpt, FTP_TIMEOUT, local)
		cmd = fmt.Sprintf("%s%s %s \"http://%s/%s\" 2> \"%s\"", env, FTP_CMD, opt,
			ftp.addr, remote, errfile)
	}
	/* execute download command */
	if ret := ExecCmd(cmd); ret > 0 {
		os.Remove(local)
		Tracet(2, "ftpThread: execcmd error cmd=%s ret=%d\n", cmd, ret)
		ftp.errNo = ret
		ftp.state = 3
		return
	}
	os.Remove(errfile)

	/* uncompress downloaded file */
	if strings.HasSuffix(local, ".z") || strings.HasSuffix(local, ".gz") ||
		strings.HasSuffix(local, ".zip") || strings.HasSuffix(local, ".Z") ||
		strings.HasSuffix(local, ".GZ") || strings.HasSuffix(local, ".ZIP") {
		if Uncompress(local, &tmpfile) > 0 {
			os.Remove(local)
			local = tmpfile
		} else {
			Tracet(2, "ftpThread: uncompact error %s\n", local)
			ftp.errNo = 12
			ftp.state = 3
			return
		}
	}
	ftp.local = local
	ftp.state = 2 /* download completed */

	Tracet(3, "ftpThread: complete cmd=%s\n", cmd)
}

/* open ftp/http (type=0:ftp,1:http) -----------------------------------------*/
func OpenFtp(path string, ctype int, msg *string) *FtpConn {
	ftp := new(FtpConn)

	Tracet(3, "OpenFtp: path=%s type=%d\n", path, ctype)

	*msg = ""
	ftp.proto = ctype

	/* decode ftp path */
	DecodeFtpPath(path, &ftp.addr, &ftp.file, &ftp.user, &ftp.passwd, ftp.topts[:])

	/* set first download time */
	ftp.tnext = TimeAdd(TimeGet(), 10.0)

	return ftp
}

/* close ftp -----------------------------------------------------------------*/
func (ftp *FtpConn) CloseFtp() {
	Tracet(3, "CloseFtp: state=%d\n", ftp.state)
}

/* read ftp ------------------------------------------------------------------*/
func (ftp *FtpConn) ReadFtp(buff []byte, n int, msg *string) int {
	Tracet(4, "ReadFtp: n=%d\n", n)

	t := Utc2GpsT(TimeGet())

	if TimeDiff(t, ftp.tnext) < 0.0 { /* until download time? */
		return 0
	}
	if ftp.state <= 0 { /* ftp/http not executed? */
		ftp.state = 1
		proto := "ftp"
		if ftp.proto > 0 {
			proto = "http"
		}
		*msg = fmt.Sprintf("%s://%s", proto, ftp.addr)

		go ftpThread(ftp)
	}
	if ftp.state <= 1 {
		return 0 /* ftp/http on going? */
	}
	if ftp.state == 3 { /* ftp error */
		proto := "ftp"
		if ftp.proto > 0 {
			proto = "http"
		}
		*msg = fmt.Sprintf("%s error (%d)", proto, ftp.errNo)

		/* set next retry time */
		ftp.tnext = nextDlTime(ftp.topts[:], 0)
		ftp.state = 0
		return 0
	}
	/* return local file path if download completed */
	path := ftp.local + "\r\n"
	if len(path) > n {
		path = path[:n]
	}
	copy(buff, path)

	/* set next download time */
	ftp.tnext = nextDlTime(ftp.topts[:], 1)
	ftp.state = 0

	*msg = ""
	return len(path)
}

/* get state ftp -------------------------------------------------------------*/
func (ftp *FtpConn) StateFtp() int {
	if ftp == nil {
		return 0
	}
	if ftp.state == 0 {
		return 2
	}
	if ftp.state <= 2 {
		return 3
	}
	return -1
}

/* get extended state ftp ----------------------------------------------------*/
func (ftp *FtpConn) StatExFtp(msg *string) int {
	state := ftp.StateFtp()

	*msg += "ftp:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  proto   = %d\n", ftp.proto)
	*msg += fmt.Sprintf("  addr    = %s\n", ftp.addr)
	*msg += fmt.Sprintf("  file    = %s\n", ftp.file)
	*msg += fmt.Sprintf("  local   = %s\n", ftp.local)
	*msg += fmt.Sprintf("  error   = %d\n", ftp.errNo)
	return state
}

/* open memory buffer (path=size) --------------------------------------------*/
func OpenMemBuf(path string, msg *string) *MemBuf {
	var (
		membuf  = new(MemBuf)
		bufsize = DEFAULT_MEMBUF_SIZE
	)
	Tracet(3, "OpenMemBuf: path=%s\n", path)

	fmt.Sscanf(path, "%d", &bufsize)

	membuf.state = 1
	membuf.bufSize = bufsize
	membuf.buf = make([]byte, bufsize)
	*msg = fmt.Sprintf("membuf sizebuf=%d", bufsize)

	return membuf
}

/* close memory buffer -------------------------------------------------------*/
func (membuf *MemBuf) CloseMemBuf() {
	Tracet(3, "CloseMemBuf:\n")
	membuf.buf = nil
	membuf.state = 0
}

/* read memory buffer --------------------------------------------------------*/
func (membuf *MemBuf) ReadMemBuf(buff []byte, n int, msg *string) int {
	var nr int

	Tracet(4, "ReadMemBuf: n=%d\n", n)

	if membuf == nil {
		return 0
	}
	membuf.lock.Lock()
	defer membuf.lock.Unlock()

	i := membuf.rp
	for i != membuf.wp && nr < n {
		buff[nr] = membuf.buf[i]
		nr++
		i++
		if i >= membuf.bufSize {
			i = 0
		}
	}
	membuf.rp = i
	return nr
}

/* write memory buffer -------------------------------------------------------*/
func (membuf *MemBuf) WriteMemBuf(buff []byte, n int, msg *string) int {
	Tracet(4, "WriteMemBuf: n=%d\n", n)

	if membuf == nil {
		return 0
	}
	membuf.lock.Lock()
	defer membuf.lock.Unlock()

	for i := 0; i < n; i++ {
		membuf.buf[membuf.wp] = buff[i]
		membuf.wp++
		if membuf.wp >= membuf.bufSize {
			membuf.wp = 0
		}
		if membuf.wp == membuf.rp {
			*msg = "mem-buffer overflow"
			membuf.state = -1
			return i + 1
		}
	}
	return n
}

/* get state memory buffer ---------------------------------------------------*/
func (membuf *MemBuf) StateMemBuf() int {
	if membuf == nil {
		return 0
	}
	return membuf.state
}

/* get extended state memory buffer ------------------------------------------*/
func (membuf *MemBuf) StatExMemBuf(msg *string) int {
	state := membuf.StateMemBuf()

	*msg += "membuf:\n"
	*msg += fmt.Sprintf("  state   = %d\n", state)
	if state == 0 {
		return 0
	}
	*msg += fmt.Sprintf("  buffsize= %d\n", membuf.bufSize)
	*msg += fmt.Sprintf("  wp      = %d\n", membuf.wp)
	*msg += fmt.Sprintf("  rp      = %d\n", membuf.rp)
	return state
}

/* initialize stream -----------------------------------------------------------
* initialize stream struct
* args   : stream IO  stream
* return : none
*-----------------------------------------------------------------------------*/
func (stream *Stream) InitStream() {
	Tracet(3, "InitStream:\n")

	stream.Type = 0
	stream.Mode = 0
	stream.State = 0
	stream.InBytes, stream.InRate, stream.OutBytes, stream.OutRate = 0, 0, 0, 0
	stream.TickInput, stream.TickOutput, stream.TickActive = 0, 0, 0
	stream.InByteTick, stream.OutByteTick = 0, 0
	stream.Port = nil
	stream.Path = ""
	stream.Msg = ""
}

/* open stream -----------------------------------------------------------------
*
* open stream to read or write data from or to virtual devices.
*
* args   : ctype    I   stream type
*                         STR_SERIAL   = serial device
*                         STR_FILE     = file (record and playback)
*                         STR_TCPSVR   = TCP server
*                         STR_TCPCLI   = TCP client
*                         STR_NTRIPSVR = NTRIP server
*                         STR_NTRIPCLI = NTRIP client
*                         STR_NTRIPCAS = NTRIP caster
*                         STR_UDPSVR   = UDP server (read only)
*                         STR_UDPCLI   = UDP client (write only)
*                         STR_MEMBUF   = memory buffer (FIFO)
*                         STR_FTP      = download by FTP (read only)
*                         STR_HTTP     = download by HTTP (read only)
*          mode     I   stream mode (STR_MODE_???)
*          path     I   stream path (see below)
*
* return : status (0:error,1:ok)
*
* notes  : see reference [1] for NTRIP
*          STR_FTP/HTTP needs "wget" in command search paths
*
* stream path ([] options):
*
*   STR_SERIAL   port[:brate[:bsize[:parity[:stopb[:fctr[#port]]]]]]
*   STR_FILE     path[::T][::+start][::xspeed][::S=swap][::P={4|8}]
*   STR_TCPSVR   :port
*   STR_TCPCLI   addr:port
*   STR_NTRIPSVR [:passwd@]addr[:port]/mpoint[:string]
*   STR_NTRIPCLI [user[:passwd]@]addr[:port]/mpoint
*   STR_NTRIPCAS [user[:passwd]@][:port]/mpoint[:srctbl]
*   STR_UDPSVR   :port
*   STR_UDPCLI   addr:port
*   STR_MEMBUF   [size]
*   STR_FTP      [user[:passwd]@]addr/path[::T=poff[,tint[,toff,tret]]]
*   STR_HTTP     addr/path[::T=poff[,tint[,toff,tret]]]
*-----------------------------------------------------------------------------*/
func (stream *Stream) OpenStream(ctype, mode int, path string) int {
	Tracet(3, "OpenStream: type=%d mode=%d path=%s\n", ctype, mode, path)

	stream.Type = ctype
	stream.Mode = mode
	stream.Path = path
	stream.InBytes, stream.InRate, stream.OutBytes, stream.OutRate = 0, 0, 0, 0
	stream.TickInput = TickGet()
	stream.TickOutput = stream.TickInput
	stream.InByteTick, stream.OutByteTick = 0, 0
	stream.Msg = ""
	stream.Port = nil

	switch ctype {
	case STR_SERIAL:
		stream.Port = OpenSerial(path, mode, &stream.Msg)
	case STR_FILE:
		stream.Port = OpenStreamFile(path, mode, &stream.Msg)
	case STR_TCPSVR:
		stream.Port = OpenTcpSvr(path, &stream.Msg)
	case STR_TCPCLI:
		stream.Port = OpenTcpClient(path, &stream.Msg)
	case STR_NTRIPSVR:
		stream.Port = OpenNtrip(path, 0, &stream.Msg)
	case STR_NTRIPCLI:
		stream.Port = OpenNtrip(path, 1, &stream.Msg)
	case STR_NTRIPCAS:
		stream.Port = OpenNtripc(path, &stream.Msg)
	case STR_UDPSVR:
		stream.Port = OpenUdpSvr(path, &stream.Msg)
	case STR_UDPCLI:
		stream.Port = OpenUdpClient(path, &stream.Msg)
	case STR_MEMBUF:
		stream.Port = OpenMemBuf(path, &stream.Msg)
	case STR_FTP:
		stream.Port = OpenFtp(path, 0, &stream.Msg)
	case STR_HTTP:
		stream.Port = OpenFtp(path, 1, &stream.Msg)
	default:
		stream.State = 0
		return 1
	}
	/* typed nil port means open error */
	switch p := stream.Port.(type) {
	case *SerialComm:
		if p == nil {
			stream.Port = nil
		}
	case *FileType:
		if p == nil {
			stream.Port = nil
		}
	case *TcpSvr:
		if p == nil {
			stream.Port = nil
		}
	case *TcpClient:
		if p == nil {
			stream.Port = nil
		}
	case *NTrip:
		if p == nil {
			stream.Port = nil
		}
	case *NTripc:
		if p == nil {
			stream.Port = nil
		}
	case *UdpConn:
		if p == nil {
			stream.Port = nil
		}
	case *MemBuf:
		if p == nil {
			stream.Port = nil
		}
	case *FtpConn:
		if p == nil {
			stream.Port = nil
		}
	}
	if stream.Port == nil {
		stream.State = -1
		return 0
	}
	stream.State = 1
	return 1
}

/* close stream ----------------------------------------------------------------
* close stream
* args   : stream IO  stream
* return : none
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamClose() {
	Tracet(3, "StreamClose: type=%d mode=%d\n", stream.Type, stream.Mode)

	streamLock(stream)

	if stream.Port != nil {
		switch stream.Type {
		case STR_SERIAL:
			stream.Port.(*SerialComm).CloseSerial()
		case STR_FILE:
			stream.Port.(*FileType).CloseStreamFile()
		case STR_TCPSVR:
			stream.Port.(*TcpSvr).CloseTcpSvr()
		case STR_TCPCLI:
			stream.Port.(*TcpClient).CloseTcpClient()
		case STR_NTRIPSVR, STR_NTRIPCLI:
			stream.Port.(*NTrip).CloseNtrip()
		case STR_NTRIPCAS:
			stream.Port.(*NTripc).CloseNtripc()
		case STR_UDPSVR:
			stream.Port.(*UdpConn).CloseUdpSvr()
		case STR_UDPCLI:
			stream.Port.(*UdpConn).CloseUdpClient()
		case STR_MEMBUF:
			stream.Port.(*MemBuf).CloseMemBuf()
		case STR_FTP, STR_HTTP:
			stream.Port.(*FtpConn).CloseFtp()
		}
	}
	stream.Type = 0
	stream.Mode = 0
	stream.State = 0
	stream.InRate, stream.OutRate = 0, 0
	stream.Path = ""
	stream.Msg = ""
	stream.Port = nil

	streamUnlock(stream)
}

/* sync streams ----------------------------------------------------------------
* sync time for streams
* args   : stream1 IO stream 1
*          stream2 IO stream 2
* return : none
* notes  : for replay files with time tags
*-----------------------------------------------------------------------------*/
func StreamSync(stream1, stream2 *Stream) {
	if stream1.Type != STR_FILE || stream2.Type != STR_FILE {
		return
	}
	file1, ok1 := stream1.Port.(*FileType)
	file2, ok2 := stream2.Port.(*FileType)
	if ok1 && ok2 && file1 != nil && file2 != nil {
		syncFile(file1, file2)
	}
}

/* lock/unlock stream --------------------------------------------------------*/
func streamLock(stream *Stream)   { stream.Lock.Lock() }
func streamUnlock(stream *Stream) { stream.Lock.Unlock() }

/* read stream -----------------------------------------------------------------
* read data from stream (unblocked)
* args   : stream I  stream
*          buff   O  data buffer
*          n      I  maximum data length
* return : read data length
* notes  : if no data, return immediately with no data
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamRead(buff []byte, n int) int {
	tick := TickGet()
	msg := &stream.Msg
	var nr int

	Tracet(4, "StreamRead: n=%d\n", n)

	if stream.Mode&STR_MODE_R == 0 || stream.Port == nil {
		return 0
	}
	streamLock(stream)

	switch stream.Type {
	case STR_SERIAL:
		nr = stream.Port.(*SerialComm).ReadSerial(buff, n, msg)
	case STR_FILE:
		nr = stream.Port.(*FileType).ReadFile(buff, int64(n), msg)
	case STR_TCPSVR:
		nr = stream.Port.(*TcpSvr).ReadTcpSvr(buff, n, msg)
	case STR_TCPCLI:
		nr = stream.Port.(*TcpClient).ReadTcpClient(buff, n, msg)
	case STR_NTRIPSVR, STR_NTRIPCLI:
		nr = stream.Port.(*NTrip).ReadNtrip(buff, n, msg)
	case STR_NTRIPCAS:
		nr = stream.Port.(*NTripc).ReadNtripc(buff, n, msg)
	case STR_UDPSVR:
		nr = stream.Port.(*UdpConn).ReadUdpSvr(buff, n, msg)
	case STR_MEMBUF:
		nr = stream.Port.(*MemBuf).ReadMemBuf(buff, n, msg)
	case STR_FTP, STR_HTTP:
		nr = stream.Port.(*FtpConn).ReadFtp(buff, n, msg)
	default:
		streamUnlock(stream)
		return 0
	}
	if nr > 0 {
		stream.InBytes += uint32(nr)
		stream.TickActive = tick
	}
	tt := int(tick - stream.TickInput)
	if tt >= tirate {
		stream.InRate = uint32(float64(stream.InBytes-stream.InByteTick) * 8.0 /
			(float64(tt) * 0.001))
		stream.TickInput = tick
		stream.InByteTick = stream.InBytes
	}
	streamUnlock(stream)
	return nr
}

/* write stream ----------------------------------------------------------------
* write data to stream (unblocked)
* args   : stream I  stream
*          buff   I  data buffer
*          n      I  data length
* return : written data length
* notes  : write data to buffer and return immediately
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamWrite(buff []byte, n int) int {
	tick := TickGet()
	msg := &stream.Msg
	var ns int

	Tracet(4, "StreamWrite: n=%d\n", n)

	if stream.Mode&STR_MODE_W == 0 || stream.Port == nil {
		return 0
	}
	streamLock(stream)

	switch stream.Type {
	case STR_SERIAL:
		ns = stream.Port.(*SerialComm).WriteSerial(buff, n, msg)
	case STR_FILE:
		ns = stream.Port.(*FileType).WriteFile(buff, n, msg)
	case STR_TCPSVR:
		ns = stream.Port.(*TcpSvr).WriteTcpSvr(buff, n, msg)
	case STR_TCPCLI:
		ns = stream.Port.(*TcpClient).WriteTcpClient(buff, n, msg)
	case STR_NTRIPSVR, STR_NTRIPCLI:
		ns = stream.Port.(*NTrip).WriteNtrip(buff, n, msg)
	case STR_NTRIPCAS:
		ns = stream.Port.(*NTripc).WriteNtripc(buff, n, msg)
	case STR_UDPCLI:
		ns = stream.Port.(*UdpConn).WriteUdpClient(buff, n, msg)
	case STR_MEMBUF:
		ns = stream.Port.(*MemBuf).WriteMemBuf(buff, n, msg)
	default:
		streamUnlock(stream)
		return 0
	}
	if ns > 0 {
		stream.OutBytes += uint32(ns)
		stream.TickActive = tick
	}
	tt := int(tick - stream.TickOutput)
	if tt >= tirate {
		stream.OutRate = uint32(float64(stream.OutBytes-stream.OutByteTick) * 8.0 /
			(float64(tt) * 0.001))
		stream.TickOutput = tick
		stream.OutByteTick = stream.OutBytes
	}
	streamUnlock(stream)
	return ns
}

/* get stream status -----------------------------------------------------------
* get stream status
* args   : stream I   stream
*          msg    IO  status message (nil: no output)
* return : status (-1:error,0:close,1:wait,2:connect,3:active)
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamStat(msg *string) int {
	var state int

	Tracet(4, "StreamStat:\n")

	streamLock(stream)
	if msg != nil {
		*msg = stream.Msg
	}
	if stream.Port == nil {
		streamUnlock(stream)
		return stream.State
	}
	switch stream.Type {
	case STR_SERIAL:
		state = stream.Port.(*SerialComm).StateSerial()
	case STR_FILE:
		state = stream.Port.(*FileType).StateFile()
	case STR_TCPSVR:
		state = stream.Port.(*TcpSvr).StateTcpSvr()
	case STR_TCPCLI:
		state = stream.Port.(*TcpClient).StateTcpCli()
	case STR_NTRIPSVR, STR_NTRIPCLI:
		state = stream.Port.(*NTrip).StateNtrip()
	case STR_NTRIPCAS:
		state = stream.Port.(*NTripc).StateNtripc()
	case STR_UDPSVR:
		state = stream.Port.(*UdpConn).StateUdpSvr()
	case STR_UDPCLI:
		state = stream.Port.(*UdpConn).StateUdpClient()
	case STR_MEMBUF:
		state = stream.Port.(*MemBuf).StateMemBuf()
	case STR_FTP, STR_HTTP:
		state = stream.Port.(*FtpConn).StateFtp()
	default:
		streamUnlock(stream)
		return 0
	}
	if state == 2 && int(TickGet()-stream.TickActive) <= TINTACT {
		state = 3
	}
	streamUnlock(stream)
	return state
}

/* get extended stream status ----------------------------------------------------
* get extended stream status
* args   : stream I   stream
*          msg    IO  extended status message
* return : status (-1:error,0:close,1:wait,2:connect,3:active)
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamStateX(msg *string) int {
	var state int

	Tracet(4, "StreamStateX:\n")

	streamLock(stream)

	if stream.Port == nil {
		streamUnlock(stream)
		return stream.State
	}
	switch stream.Type {
	case STR_SERIAL:
		state = stream.Port.(*SerialComm).StatExSerial(msg)
	case STR_FILE:
		state = stream.Port.(*FileType).StatExFile(msg)
	case STR_TCPSVR:
		state = stream.Port.(*TcpSvr).StatExTcpSvr(msg)
	case STR_TCPCLI:
		state = stream.Port.(*TcpClient).StatExTcpClient(msg)
	case STR_NTRIPSVR, STR_NTRIPCLI:
		state = stream.Port.(*NTrip).StatExNtrip(msg)
	case STR_NTRIPCAS:
		state = stream.Port.(*NTripc).StatExNtripc(msg)
	case STR_UDPSVR:
		state = stream.Port.(*UdpConn).StatExUdpSvr(msg)
	case STR_UDPCLI:
		state = stream.Port.(*UdpConn).StatExUdpClient(msg)
	case STR_MEMBUF:
		state = stream.Port.(*MemBuf).StatExMemBuf(msg)
	case STR_FTP, STR_HTTP:
		state = stream.Port.(*FtpConn).StatExFtp(msg)
	default:
		*msg = ""
		streamUnlock(stream)
		return 0
	}
	if state == 2 && int(TickGet()-stream.TickActive) <= TINTACT {
		state = 3
	}
	streamUnlock(stream)
	return state
}

/* get stream statistics summary -----------------------------------------------
* get stream statistics summary
* args   : stream I   stream
*          inb    IO  bytes of input  (nil: no output)
*          inr    IO  bps of input    (nil: no output)
*          outb   IO  bytes of output (nil: no output)
*          outr   IO  bps of output   (nil: no output)
* return : none
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamSum(inb, inr, outb, outr *int) {
	Tracet(4, "StreamSum:\n")

	streamLock(stream)
	if inb != nil {
		*inb = int(stream.InBytes)
	}
	if inr != nil {
		*inr = int(stream.InRate)
	}
	if outb != nil {
		*outb = int(stream.OutBytes)
	}
	if outr != nil {
		*outr = int(stream.OutRate)
	}
	streamUnlock(stream)
}

/* set global stream options ---------------------------------------------------
* set global stream options
* args   : opt    I   options
*              opt[0]= inactive timeout (ms) (0: no timeout)
*              opt[1]= interval to reconnect (ms)
*              opt[2]= averaging time of data rate (ms)
*              opt[3]= receive/send buffer size (bytes)
*              opt[4]= file swap margin (s)
*              opt[5]-[7]= reserved
* return : none
*-----------------------------------------------------------------------------*/
func StreamSetOpt(opt []int) {
	Tracet(3, "StreamSetOpt: opt=%v\n", opt)

	toinact = opt[0]
	if opt[0] < 1000 {
		toinact = 1000 /* >=1s */
	}
	ticonnect = opt[1]
	if opt[1] < 1000 {
		ticonnect = 1000 /* >=1s */
	}
	tirate = opt[2]
	if opt[2] < 100 {
		tirate = 100 /* >=0.1s */
	}
	fswapmargin = opt[4]
	if opt[4] < 0 {
		fswapmargin = 0
	}
}

/* set timeout time ------------------------------------------------------------
* set timeout time
* args   : stream  I   stream (STR_TCPCLI,STR_NTRIPCLI,STR_NTRIPSVR)
*          toinact I   inactive timeout (ms) (0: no timeout)
*          tirecon I   reconnect interval (ms) (0: no reconnect)
* return : none
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamSetTimeout(toinact, tirecon int) {
	var tcpcli *TcpClient

	Tracet(3, "StreamSetTimeout: toinact=%d tirecon=%d\n", toinact, tirecon)

	switch stream.Type {
	case STR_TCPCLI:
		tcpcli = stream.Port.(*TcpClient)
	case STR_NTRIPCLI, STR_NTRIPSVR:
		tcpcli = stream.Port.(*NTrip).tcp
	default:
		return
	}
	tcpcli.toinact = toinact
	tcpcli.tirecon = tirecon
}

/* set local directory ---------------------------------------------------------
* set local directory path for ftp/http download
* args   : dir    I   directory for download files
* return : none
*-----------------------------------------------------------------------------*/
func StreamSetDir(dir string) {
	Tracet(3, "StreamSetDir: dir=%s\n", dir)

	localdir = dir
}

/* set http/ntrip proxy address ------------------------------------------------
* set http/ntrip proxy address
* args   : addr   I   http/ntrip proxy address <address>:<port>
* return : none
*-----------------------------------------------------------------------------*/
func StreamSetProxy(addr string) {
	Tracet(3, "StreamSetProxy: addr=%s\n", addr)

	proxyaddr = addr
}

/* get stream time -------------------------------------------------------------
* get stream time
* args   : stream I   stream
* return : current time or replay time for playback file
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamGetTime() Gtime {
	if stream.Type == STR_FILE && stream.Mode&STR_MODE_R > 0 {
		if file, ok := stream.Port.(*FileType); ok && file != nil {
			return TimeAdd(file.time, file.start) /* replay start time */
		}
	}
	return Utc2GpsT(TimeGet())
}

/* send nmea request -----------------------------------------------------------
* send nmea gpgga message to stream
* args   : stream I   stream
*          sol    I   solution
* return : none
*-----------------------------------------------------------------------------*/
func (stream *Stream) StreamSendNmea(sol *Sol) {
	var buff string

	Tracet(3, "StreamSendNmea: rr=%.3f %.3f %.3f\n", sol.Rr[0], sol.Rr[1],
		sol.Rr[2])

	n := sol.OutSolNmeaGga(&buff)
	stream.StreamWrite([]byte(buff), n)
}

/* generate general hex message ----------------------------------------------*/
func genHex(msg string, buff []byte) int {
	var (
		b uint32
		j int
	)
	Trace(4, "genHex: msg=%s\n", msg)

	if len(msg) > 1023 {
		msg = msg[:1023]
	}
	for _, arg := range strings.Fields(msg) {
		if _, err := fmt.Sscanf(arg, "%x", &b); err == nil {
			buff[j] = byte(b)
			j++
		}
	}
	return j
}

/* set serial bitrate by reopening the stream --------------------------------*/
func setBrate(stream *Stream, brate int) int {
	ctype, mode := stream.Type, stream.Mode

	if ctype != STR_SERIAL {
		return 0
	}
	path := stream.Path
	if idx := strings.Index(path, ":"); idx < 0 {
		path += fmt.Sprintf(":%d", brate)
	} else {
		var rest string
		if i := strings.Index(path[idx+1:], ":"); i >= 0 {
			rest = path[idx+1+i:]
		}
		path = fmt.Sprintf("%s:%d%s", path[:idx], brate, rest)
	}
	stream.StreamClose()
	return stream.OpenStream(ctype, mode, path)
}

/* send receiver command -------------------------------------------------------
* send receiver commands to stream
* args   : stream I   stream
*          cmd    I   receiver command strings separated by '\r' or '\n'
* return : none
* notes  : special commands
*            !WAIT n    : wait n ms (max 3000)
*            !BRATE n   : reopen serial device with bitrate n
*            !UBX ...   : generate u-blox binary message
*            !HEX h h...: generate binary message from hex bytes
*-----------------------------------------------------------------------------*/
func (stream *Stream) StrSendCmd(cmd string) {
	buff := make([]byte, 1024)

	Tracet(3, "StrSendCmd: cmd=%s\n", cmd)

	lines := strings.FieldsFunc(cmd, func(r rune) bool {
		return r == '\r' || r == '\n'
	})
	for _, msg := range lines {
		switch {
		case len(msg) == 0 || strings.HasPrefix(msg, "#"): /* null or comment */

		case strings.HasPrefix(msg, "!"): /* binary escape */
			switch {
			case len(msg) >= 5 && strings.EqualFold(msg[1:5], "WAIT"):
				var ms int
				if n, _ := fmt.Sscanf(msg[5:], "%d", &ms); n < 1 {
					ms = 100
				}
				if ms > 3000 {
					ms = 3000 /* max 3 s */
				}
				Sleepms(ms)
			case len(msg) >= 6 && strings.EqualFold(msg[1:6], "BRATE"):
				var brate int
				if n, _ := fmt.Sscanf(msg[6:], "%d", &brate); n < 1 {
					brate = 9600
				}
				setBrate(stream, brate)
				Sleepms(500)
			case len(msg) >= 4 && strings.EqualFold(msg[1:4], "UBX"):
				if m := GenUbx(msg[4:], buff); m > 0 {
					stream.StreamWrite(buff, m)
				}
			case len(msg) >= 4 && strings.EqualFold(msg[1:4], "HEX"):
				if m := genHex(msg[4:], buff); m > 0 {
					stream.StreamWrite(buff, m)
				}
			}
		default:
			msg += "\r\n"
			stream.StreamWrite([]byte(msg), len(msg))
		}
	}
}
