/*------------------------------------------------------------------------------
* rtkrcv.go : real-time positioning server console ap
*
*          Copyright (C) 2026 by The GNSSRT Project, All rights reserved.
*
* rtkrcv reads a yaml configuration, starts the rtk server on the configured
* input/output/log streams and keeps running until SIGINT/SIGTERM. Optional
* facilities: a websocket monitor that pushes observation epochs and solutions
* as json, and a ClickHouse sink for raw observation archiving.
*-----------------------------------------------------------------------------*/
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	_ "github.com/ClickHouse/clickhouse-go"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"

	"github.com/ourairquality/gnssrt"
)

const (
	PRGNAME   = "rtkrcv"
	CONFFILE  = "rtkrcv.yml"
	TRACEFILE = "rtkrcv_%Y%m%d%h%M.trace"
)

/* stream section of the configuration */
type StreamConf struct {
	Type   string `yaml:"type"`   /* off,serial,file,tcpsvr,tcpcli,ntripsvr,ntripcli,ntripc,udpsvr,udpcli */
	Path   string `yaml:"path"`
	Format string `yaml:"format"` /* in: rtcm2,rtcm3,ubx / out: llh,xyz,enu,nmea,stat */
}

type Config struct {
	Cycle       int        `yaml:"cycle"`       /* server cycle (ms) */
	BuffSize    int        `yaml:"buffsize"`    /* input buffer size (bytes) */
	Timeout     int        `yaml:"timeout"`     /* inactive timeout (ms) */
	Reconnect   int        `yaml:"reconnect"`   /* reconnect interval (ms) */
	FSwapMargin int        `yaml:"fswapmargin"` /* file swap margin (s) */
	NavSel      int        `yaml:"navsel"`      /* ephemeris select (0:all,1:rover,2:base,3:corr) */
	NmeaCycle   int        `yaml:"nmeacycle"`   /* nmea request cycle (ms) */
	NmeaReq     string     `yaml:"nmeareq"`     /* off,latlon,single,reset */
	NmeaPos     [3]float64 `yaml:"nmeapos"`     /* lat(deg),lon(deg),hgt(m) */
	ProxyAddr   string     `yaml:"proxyaddr"`
	LocalDir    string     `yaml:"localdir"`

	Inputs  [3]StreamConf `yaml:"inputs"`  /* rover,base,corr */
	Outputs [2]StreamConf `yaml:"outputs"` /* sol1,sol2 */
	Logs    [3]StreamConf `yaml:"logs"`    /* logr,logb,logc */

	CmdFiles [3]string `yaml:"cmdfiles"` /* receiver command files */
	RcvOpts  [3]string `yaml:"rcvopts"`  /* receiver dependent options */
	StartCmd string    `yaml:"startcmd"` /* shell command on start */
	StopCmd  string    `yaml:"stopcmd"`  /* shell command on stop */

	Processing struct {
		Mode     string     `yaml:"mode"`   /* single,dgps,kinematic,static,movingbase,fixed */
		NavSys   int        `yaml:"navsys"` /* navigation system mask */
		ElMask   float64    `yaml:"elmask"` /* elevation mask (deg) */
		RefPos   string     `yaml:"refpos"` /* pos,single,rtcm */
		BasePos  [3]float64 `yaml:"basepos"` /* base position (ecef m) */
		MaxAveEp int        `yaml:"maxaveep"`
		ExSats   string     `yaml:"exsats"` /* excluded satellites (+ to include) */
	} `yaml:"processing"`

	Solution struct {
		TimeSys   string  `yaml:"timesys"` /* gpst,utc,jst */
		TimeForm  string  `yaml:"timeform"` /* tow,hms */
		Height    string  `yaml:"height"`   /* ellipsoidal,geodetic */
		NmeaIntv1 float64 `yaml:"nmeaintv1"`
		NmeaIntv2 float64 `yaml:"nmeaintv2"`
		MaxSolStd float64 `yaml:"maxsolstd"`
	} `yaml:"solution"`

	Geoid struct {
		Model int    `yaml:"model"` /* 0:internal,1:egm96,2:egm2008-2.5,3:egm2008-1.0 */
		File  string `yaml:"file"`
	} `yaml:"geoid"`

	Monitor struct {
		Addr string `yaml:"addr"` /* websocket monitor address (e.g. :8090) */
	} `yaml:"monitor"`

	ClickHouse struct {
		DSN   string `yaml:"dsn"` /* e.g. tcp://127.0.0.1:9000?database=gnss */
		Table string `yaml:"table"`
	} `yaml:"clickhouse"`
}

var strTypes = map[string]int{
	"off": gnssrt.STR_NONE, "": gnssrt.STR_NONE,
	"serial":   gnssrt.STR_SERIAL,
	"file":     gnssrt.STR_FILE,
	"tcpsvr":   gnssrt.STR_TCPSVR,
	"tcpcli":   gnssrt.STR_TCPCLI,
	"ntripsvr": gnssrt.STR_NTRIPSVR,
	"ntripcli": gnssrt.STR_NTRIPCLI,
	"ntripc":   gnssrt.STR_NTRIPCAS,
	"udpsvr":   gnssrt.STR_UDPSVR,
	"udpcli":   gnssrt.STR_UDPCLI,
}

var inFormats = map[string]int{
	"rtcm2": gnssrt.STRFMT_RTCM2,
	"rtcm3": gnssrt.STRFMT_RTCM3,
	"ubx":   gnssrt.STRFMT_UBX,
	"":      gnssrt.STRFMT_RTCM3,
}

var outFormats = map[string]int{
	"llh": gnssrt.SOLF_LLH, "": gnssrt.SOLF_LLH,
	"xyz":  gnssrt.SOLF_XYZ,
	"enu":  gnssrt.SOLF_ENU,
	"nmea": gnssrt.SOLF_NMEA,
	"stat": gnssrt.SOLF_STAT,
}

var posModes = map[string]int{
	"single": gnssrt.PMODE_SINGLE, "": gnssrt.PMODE_SINGLE,
	"dgps":       gnssrt.PMODE_DGPS,
	"kinematic":  gnssrt.PMODE_KINEMA,
	"static":     gnssrt.PMODE_STATIC,
	"movingbase": gnssrt.PMODE_MOVEB,
	"fixed":      gnssrt.PMODE_FIXED,
}

var log = logrus.New()

var (
	svr  gnssrt.RtkSvr
	conf Config
)

func defaultConfig() Config {
	var c Config
	c.Cycle = 10
	c.BuffSize = 32768
	c.Timeout = 10000
	c.Reconnect = 10000
	c.FSwapMargin = 30
	c.NmeaCycle = 5000
	c.NmeaReq = "off"
	return c
}

func loadConfig(file string) (Config, error) {
	c := defaultConfig()

	data, err := os.ReadFile(file)
	if err != nil {
		return c, err
	}
	if err = yaml.Unmarshal(data, &c); err != nil {
		return c, err
	}
	return c, nil
}

/* read one section of a receiver command file (sections separated by @) */
func readCmd(file string, section int) string {
	data, err := os.ReadFile(file)
	if err != nil {
		return ""
	}
	var cmd string
	i := 0
	for _, line := range strings.Split(string(data), "\n") {
		if strings.HasPrefix(line, "@") {
			i++
		} else if i == section && len(cmd)+len(line) < gnssrt.MAXRCVCMD {
			cmd += strings.TrimRight(line, "\r") + "\r\n"
		}
	}
	return cmd
}

func (c *Config) procOpt() gnssrt.PrcOpt {
	opt := gnssrt.DefaultProcOpt()

	opt.Mode = posModes[strings.ToLower(c.Processing.Mode)]
	if c.Processing.NavSys != 0 {
		opt.NavSys = c.Processing.NavSys
	}
	if c.Processing.ElMask > 0.0 {
		opt.Elmin = c.Processing.ElMask * gnssrt.D2R
	}
	switch strings.ToLower(c.Processing.RefPos) {
	case "single":
		opt.RefPos = gnssrt.POSOPT_SINGLE
	case "rtcm":
		opt.RefPos = gnssrt.POSOPT_RTCM
	default:
		opt.RefPos = gnssrt.POSOPT_POS
		opt.Rb = c.Processing.BasePos
	}
	opt.MaxAveEp = c.Processing.MaxAveEp

	for _, id := range strings.Fields(c.Processing.ExSats) {
		ex := uint8(1)
		if strings.HasPrefix(id, "+") {
			ex = 2
			id = id[1:]
		}
		if sat := gnssrt.SatId2No(id); sat > 0 {
			opt.ExSats[sat-1] = ex
		}
	}
	return opt
}

func (c *Config) solOpt(format string) gnssrt.SolOpt {
	opt := gnssrt.DefaultSolOpt()

	opt.Posf = outFormats[strings.ToLower(format)]
	switch strings.ToLower(c.Solution.TimeSys) {
	case "utc":
		opt.TimeS = gnssrt.TIMES_UTC
	case "jst":
		opt.TimeS = gnssrt.TIMES_JST
	default:
		opt.TimeS = gnssrt.TIMES_GPST
	}
	if strings.ToLower(c.Solution.TimeForm) == "tow" {
		opt.TimeF = 0
	} else {
		opt.TimeF = 1
	}
	if strings.ToLower(c.Solution.Height) == "geodetic" {
		opt.Height = 1
	}
	opt.NmeaIntv[0] = c.Solution.NmeaIntv1
	opt.NmeaIntv[1] = c.Solution.NmeaIntv2
	opt.MaxSolStd = c.Solution.MaxSolStd
	opt.Prog = PRGNAME
	return opt
}

/* websocket monitor -----------------------------------------------------------
* pushes observation epochs and solutions to all connected clients as json */
type monitorHub struct {
	mu      sync.Mutex
	clients map[string]*websocket.Conn
}

type obsRecord struct {
	Time float64   `json:"time"`
	Sat  int       `json:"sat"`
	Rcv  int       `json:"rcv"`
	SNR  []float64 `json:"snr"`
	P    []float64 `json:"p"`
	L    []float64 `json:"l"`
	D    []float64 `json:"d"`
}

type solRecord struct {
	Time  float64    `json:"time"`
	Stat  int        `json:"stat"`
	Ns    int        `json:"ns"`
	Rr    [3]float64 `json:"rr"`
	Rb    [3]float64 `json:"rb"`
	Age   float64    `json:"age"`
	Ratio float64    `json:"ratio"`
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

func (h *monitorHub) serve(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.WithError(err).Warn("websocket upgrade error")
		return
	}
	id := uuid.NewString()
	h.mu.Lock()
	h.clients[id] = conn
	h.mu.Unlock()
	log.WithField("client", id).Info("monitor client connected")

	/* drain control frames, drop the client on error */
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.mu.Lock()
				delete(h.clients, id)
				h.mu.Unlock()
				conn.Close()
				log.WithField("client", id).Info("monitor client disconnected")
				return
			}
		}
	}()
}

func (h *monitorHub) broadcast(v interface{}) {
	data, err := json.Marshal(v)
	if err != nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	for id, conn := range h.clients {
		if err := conn.WriteMessage(websocket.TextMessage, data); err != nil {
			delete(h.clients, id)
			conn.Close()
		}
	}
}

func gtimeSeconds(t gnssrt.Gtime) float64 {
	return float64(t.Time) + t.Sec
}

func runMonitor(addr string, obsCh chan []gnssrt.ObsD, solCh chan gnssrt.RBSol,
	chCh chan<- []gnssrt.ObsD) {
	hub := &monitorHub{clients: make(map[string]*websocket.Conn)}

	mux := http.NewServeMux()
	mux.HandleFunc("/ws", hub.serve)
	go func() {
		if err := http.ListenAndServe(addr, mux); err != nil {
			log.WithError(err).Error("monitor listen error")
		}
	}()
	for {
		select {
		case epoch, ok := <-obsCh:
			if !ok {
				return
			}
			if chCh != nil {
				select {
				case chCh <- epoch:
				default:
				}
			}
			recs := make([]obsRecord, 0, len(epoch))
			for i := range epoch {
				rec := obsRecord{
					Time: gtimeSeconds(epoch[i].Time),
					Sat:  epoch[i].Sat, Rcv: epoch[i].Rcv,
				}
				for j := 0; j < gnssrt.NFREQ; j++ {
					rec.SNR = append(rec.SNR, float64(epoch[i].SNR[j])*gnssrt.SNR_UNIT)
					rec.P = append(rec.P, epoch[i].P[j])
					rec.L = append(rec.L, epoch[i].L[j])
					rec.D = append(rec.D, epoch[i].D[j])
				}
				recs = append(recs, rec)
			}
			hub.broadcast(map[string]interface{}{"obs": recs})
		case rbsol, ok := <-solCh:
			if !ok {
				return
			}
			rec := solRecord{
				Time: gtimeSeconds(rbsol.Sol.Time),
				Stat: int(rbsol.Sol.Stat), Ns: int(rbsol.Sol.Ns),
				Rb:  rbsol.Rb,
				Age: float64(rbsol.Sol.Age), Ratio: float64(rbsol.Sol.Ratio),
			}
			copy(rec.Rr[:], rbsol.Sol.Rr[:3])
			hub.broadcast(map[string]interface{}{"sol": rec})
		}
	}
}

/* ClickHouse sink: archives raw observation epochs ---------------------------*/
func runClickHouse(dsn, table string, ch <-chan []gnssrt.ObsD) {
	db, err := sqlx.Open("clickhouse", dsn)
	if err != nil {
		log.WithError(err).Error("clickhouse open error")
		return
	}
	defer db.Close()

	if len(table) == 0 {
		table = "obs"
	}
	query := fmt.Sprintf(
		"INSERT INTO %s (time, sat, rcv, snr, code, lli, l, p, d) VALUES (?,?,?,?,?,?,?,?,?)",
		table)

	for epoch := range ch {
		tx, err := db.Begin()
		if err != nil {
			log.WithError(err).Warn("clickhouse begin error")
			continue
		}
		stmt, err := tx.Prepare(query)
		if err != nil {
			log.WithError(err).Warn("clickhouse prepare error")
			tx.Rollback()
			continue
		}
		for i := range epoch {
			data := &epoch[i]
			t := time.Unix(data.Time.Time, int64(data.Time.Sec*1e9))
			if _, err = stmt.Exec(t, data.Sat, data.Rcv,
				data.SNR[:], data.Code[:], data.LLI[:],
				data.L[:], data.P[:], data.D[:]); err != nil {
				log.WithError(err).Warn("clickhouse insert error")
				break
			}
		}
		if err = tx.Commit(); err != nil {
			log.WithError(err).Warn("clickhouse commit error")
		}
	}
}

/* start rtk server */
func startSvr() int {
	var (
		strs    [gnssrt.MAXSTRRTK]int
		paths   [gnssrt.MAXSTRRTK]string
		formats [3]int
		cmds, cmdsPeriodic [3]string
		npos    [3]float64
		errmsg  string
	)
	for i := 0; i < 3; i++ {
		strs[i] = strTypes[strings.ToLower(conf.Inputs[i].Type)]
		paths[i] = conf.Inputs[i].Path
		formats[i] = inFormats[strings.ToLower(conf.Inputs[i].Format)]
	}
	for i := 0; i < 2; i++ {
		strs[i+3] = strTypes[strings.ToLower(conf.Outputs[i].Type)]
		paths[i+3] = conf.Outputs[i].Path
	}
	for i := 0; i < 3; i++ {
		strs[i+5] = strTypes[strings.ToLower(conf.Logs[i].Type)]
		paths[i+5] = conf.Logs[i].Path
	}
	for i := 0; i < 3; i++ {
		if len(conf.CmdFiles[i]) > 0 {
			cmds[i] = readCmd(conf.CmdFiles[i], 0)
			cmdsPeriodic[i] = readCmd(conf.CmdFiles[i], 2)
		}
	}
	nmeareq := 0
	switch strings.ToLower(conf.NmeaReq) {
	case "latlon":
		nmeareq = 1
	case "single":
		nmeareq = 2
	case "reset":
		nmeareq = 3
	}
	pos := [3]float64{conf.NmeaPos[0] * gnssrt.D2R, conf.NmeaPos[1] * gnssrt.D2R,
		conf.NmeaPos[2]}
	gnssrt.Pos2Ecef(pos[:], npos[:])

	prcopt := conf.procOpt()
	solopt := []gnssrt.SolOpt{
		conf.solOpt(conf.Outputs[0].Format),
		conf.solOpt(conf.Outputs[1].Format),
	}
	/* open geoid data file */
	if conf.Geoid.Model > 0 && gnssrt.OpenGeoid(conf.Geoid.Model, conf.Geoid.File) == 0 {
		log.WithField("file", conf.Geoid.File).Warn("geoid data open error")
	}
	/* set stream options */
	stropt := []int{conf.Timeout, conf.Reconnect, 1000, conf.BuffSize, conf.FSwapMargin}
	gnssrt.StreamSetOpt(stropt)
	gnssrt.StreamSetDir(conf.LocalDir)
	gnssrt.StreamSetProxy(conf.ProxyAddr)

	/* execute start command */
	if len(conf.StartCmd) > 0 && gnssrt.ExecCmd(conf.StartCmd) < 0 {
		log.WithField("cmd", conf.StartCmd).Warn("command exec error")
	}
	/* start rtk server */
	if svr.RtkSvrStart(conf.Cycle, conf.BuffSize, strs[:], paths[:], formats[:],
		conf.NavSel, cmds[:], cmdsPeriodic[:], conf.RcvOpts[:], conf.NmeaCycle,
		nmeareq, npos[:], &prcopt, solopt, nil, &errmsg) == 0 {
		log.WithField("error", errmsg).Error("rtk server start error")
		return 0
	}
	return 1
}

/* stop rtk server */
func stopSvr() {
	if svr.State == 0 {
		return
	}
	var cmds [3]string
	for i := 0; i < 3; i++ {
		if len(conf.CmdFiles[i]) > 0 {
			cmds[i] = readCmd(conf.CmdFiles[i], 1)
		}
	}
	svr.RtkSvrStop(cmds[:])

	if len(conf.StopCmd) > 0 && gnssrt.ExecCmd(conf.StopCmd) < 0 {
		log.WithField("cmd", conf.StopCmd).Warn("command exec error")
	}
	if conf.Geoid.Model > 0 {
		gnssrt.CloseGeoid()
	}
}

func main() {
	var (
		file     string
		trace    int
		dispint  int
		err      error
	)
	ss := []string{"E", "-", "W", "C", "C"}

	flag.StringVar(&file, "o", CONFFILE, "configuration file")
	flag.IntVar(&trace, "t", 0, "debug trace level (0:off,1-5:on)")
	flag.IntVar(&dispint, "d", 5000, "status display interval (ms)")
	flag.Parse()

	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	if conf, err = loadConfig(file); err != nil {
		log.WithError(err).Warnf("no configuration file: %s, defaults used", file)
	}
	if trace > 0 {
		gnssrt.TraceOpen(gnssrt.RepPath(TRACEFILE, gnssrt.Utc2GpsT(gnssrt.TimeGet()), "", ""))
		gnssrt.TraceLevel(trace)
		defer gnssrt.TraceClose()
	}
	svr.InitRtkSvr()

	/* attach monitoring channels before start */
	if len(conf.Monitor.Addr) > 0 || len(conf.ClickHouse.DSN) > 0 {
		svr.ObsChannel = make(chan []gnssrt.ObsD, 16)
		svr.RbSolChannel = make(chan gnssrt.RBSol, 16)

		var chCh chan []gnssrt.ObsD
		if len(conf.ClickHouse.DSN) > 0 {
			chCh = make(chan []gnssrt.ObsD, 16)
			go runClickHouse(conf.ClickHouse.DSN, conf.ClickHouse.Table, chCh)
		}
		addr := conf.Monitor.Addr
		if len(addr) == 0 {
			/* no websocket listener, still forward epochs to the sink */
			go func() {
				for epoch := range svr.ObsChannel {
					select {
					case chCh <- epoch:
					default:
					}
				}
			}()
			go func() {
				for range svr.RbSolChannel {
				}
			}()
		} else {
			go runMonitor(addr, svr.ObsChannel, svr.RbSolChannel, chCh)
		}
	}
	intr := make(chan os.Signal, 1)
	signal.Notify(intr, syscall.SIGINT, syscall.SIGTERM)

	if startSvr() == 0 {
		os.Exit(1)
	}
	log.Info("rtk server start")

	for stop := false; !stop; {
		select {
		case <-intr:
			stop = true
			continue
		case <-time.After(time.Duration(dispint) * time.Millisecond):
		}
		var (
			sstat  [gnssrt.MAXSTRRTK]int
			strmsg string
			states string
		)
		svr.RtkSvrStreamStat(sstat[:], &strmsg)
		for i := 0; i < gnssrt.MAXSTRRTK; i++ {
			states += ss[sstat[i]+1]
		}
		fmt.Fprintf(os.Stderr, "%s [%s] %s\n",
			gnssrt.TimeStr(gnssrt.Utc2GpsT(gnssrt.TimeGet()), 0), states, strmsg)
	}
	stopSvr()
	log.Info("rtk server stop")
}
