/*------------------------------------------------------------------------------
* str2str.go : console stream server
*
*          Copyright (C) 2026 by The GNSSRT Project, All rights reserved.
*
* Input data from a stream and divide and output them to multiple streams.
* If both the input and an output stream carry a #format suffix, input
* messages are converted to the output format.
*-----------------------------------------------------------------------------*/
package main

import (
	"bufio"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strconv"
	"strings"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/ourairquality/gnssrt"
)

const (
	PRGNAME = "str2str"
	MAXSTR  = 5 /* max number of streams */
	TRFILE  = "str2str.trace"
)

var strsvr gnssrt.StreamSvr

var (
	streamBytes = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gnssrt", Subsystem: "str2str",
		Name: "stream_bytes", Help: "bytes received/sent per stream"},
		[]string{"stream"})
	streamBps = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gnssrt", Subsystem: "str2str",
		Name: "stream_bps", Help: "bitrate received/sent per stream"},
		[]string{"stream"})
	streamState = prometheus.NewGaugeVec(prometheus.GaugeOpts{
		Namespace: "gnssrt", Subsystem: "str2str",
		Name: "stream_state", Help: "stream state (-1:error,0:close,2:wait,3:connected)"},
		[]string{"stream"})
)

var helpText = []string{
	"",
	" usage: str2str -in stream[#format] [-out stream[#format] [-out stream...]] [options]",
	"",
	" Input data from a stream and divide and output them to multiple streams.",
	" The input stream can be serial, tcp client, tcp server, ntrip client, udp",
	" server or file. The output stream can be serial, tcp client, tcp server,",
	" ntrip server, udp client or file. str2str is a resident application. To",
	" stop it, type ctrl-c in the console or send SIGINT to the process. If both",
	" the input stream and an output stream follow #format, input messages are",
	" converted to the output format. To specify the output messages, use the",
	" -msg option. If -in or -out is omitted, stdin or stdout is used.",
	"",
	" -in  stream[#format] input  stream path and format",
	" -out stream[#format] output stream paths and formats (, separated)",
	"",
	"  stream path",
	"    serial       : serial://port[:brate[:bsize[:parity[:stopb[:fctr]]]]]",
	"    tcp server   : tcpsvr://:port",
	"    tcp client   : tcpcli://addr[:port]",
	"    ntrip client : ntrip://[user[:passwd]@]addr[:port][/mntpnt]",
	"    ntrip server : ntrips://[:passwd@]addr[:port]/mntpnt[:str] (only out)",
	"    ntrip caster : ntripc://[user:passwd@][:port]/mntpnt[:srctbl] (only out)",
	"    udp server   : udpsvr://:port (only in)",
	"    udp client   : udpcli://addr[:port] (only out)",
	"    file         : [file://]path[::T][::+start][::xspeed][::S=swap]",
	"",
	"  format",
	"    rtcm2        : RTCM 2 (only in)",
	"    rtcm3        : RTCM 3",
	"    ubx          : u-blox UBX (only in)",
	"",
	" -msg \"type[(tint)][,type[(tint)]...]\"",
	"                   rtcm message types and output intervals (s)",
	" -sta sta          station id",
	" -opt opt          receiver dependent options",
	" -s  msec          timeout time (ms) [10000]",
	" -r  msec          reconnect interval (ms) [10000]",
	" -n  msec          nmea request cycle (ms) [0]",
	" -f  sec           file swap margin (s) [30]",
	" -b  str_no        relay back messages from output str to input str [no]",
	" -c  file          input commands file [no]",
	" -c1 file          output 1 commands file [no]",
	" -c2 file          output 2 commands file [no]",
	" -c3 file          output 3 commands file [no]",
	" -c4 file          output 4 commands file [no]",
	" -p  lat,lon,hgt   station position (latitude/longitude/height) (deg,m)",
	" -px x,y,z         station position (x/y/z-ecef) (m)",
	" -o  e,n,u         antenna offset (e,n,u) (m)",
	" -a  antinfo       antenna info (separated by ,)",
	" -i  rcvinfo       receiver info (separated by ,)",
	" -l  local_dir     ftp/http local directory []",
	" -x  proxy_addr    http/ntrip proxy address [no]",
	" -d  msec          status display interval (ms) [5000]",
	" -m  addr          metrics endpoint address (e.g. :9123) [no]",
	" -t  level         trace level [0]",
	" -fl file          trace file [" + TRFILE + "]",
	" -h                print help",
}

func searchHelp(key string) string {
	for _, v := range helpText {
		if strings.Contains(v, " "+key+" ") {
			return strings.TrimSpace(v)
		}
	}
	return ""
}

func printHelp() {
	for _, v := range helpText {
		fmt.Fprintf(os.Stderr, "%s\n", v)
	}
	os.Exit(0)
}

/* decode format suffix (#rtcm2 etc.) and strip it from path */
func decodeFmt(path *string) int {
	idx := strings.LastIndex(*path, "#")
	if idx < 0 {
		return -1
	}
	format := -1
	switch (*path)[idx:] {
	case "#rtcm2":
		format = gnssrt.STRFMT_RTCM2
	case "#rtcm3":
		format = gnssrt.STRFMT_RTCM3
	case "#ubx":
		format = gnssrt.STRFMT_UBX
	default:
		return -1
	}
	*path = (*path)[:idx]
	return format
}

/* decode stream path (type://path[#format]) */
func decodePath(path string, ctype *int, strpath *string, format *int) int {
	buff := path

	*format = decodeFmt(&buff)

	idx := strings.Index(buff, "://")
	if idx < 0 {
		*strpath = buff
		*ctype = gnssrt.STR_FILE
		return 1
	}
	switch buff[:idx] {
	case "serial":
		*ctype = gnssrt.STR_SERIAL
	case "tcpsvr":
		*ctype = gnssrt.STR_TCPSVR
	case "tcpcli":
		*ctype = gnssrt.STR_TCPCLI
	case "ntripc":
		*ctype = gnssrt.STR_NTRIPCAS
	case "ntrips":
		*ctype = gnssrt.STR_NTRIPSVR
	case "ntrip":
		*ctype = gnssrt.STR_NTRIPCLI
	case "udpsvr":
		*ctype = gnssrt.STR_UDPSVR
	case "udpcli":
		*ctype = gnssrt.STR_UDPCLI
	case "file":
		*ctype = gnssrt.STR_FILE
	default:
		fmt.Fprintf(os.Stderr, "stream path error: %s\n", buff)
		return 0
	}
	*strpath = buff[idx+3:]
	return 1
}

/* read receiver commands (sections separated by @: start/stop/periodic) */
func readCmd(file string, cmd *string, section int) {
	*cmd = ""

	fp, err := os.Open(file)
	if err != nil {
		return
	}
	defer fp.Close()

	i := 0
	scanner := bufio.NewScanner(fp)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.HasPrefix(line, "@") {
			i++
		} else if i == section {
			*cmd += line + "\r\n"
		}
	}
}

type posFlag struct {
	pos *[3]float64
	set bool
}

func (f *posFlag) Set(s string) error {
	values := strings.Split(s, ",")
	if len(values) < 3 {
		return fmt.Errorf("too few arguments")
	}
	for i := 0; i < 3; i++ {
		v, err := strconv.ParseFloat(strings.TrimSpace(values[i]), 64)
		if err != nil {
			return err
		}
		f.pos[i] = v
	}
	f.set = true
	return nil
}

func (f *posFlag) String() string { return "" }

func main() {
	var (
		cmdfile              [MAXSTR]string
		cmds, cmdsPeriodic   [MAXSTR]string
		types, fmts          [MAXSTR]int
		paths, logs          [MAXSTR]string
		conv                 [MAXSTR]*gnssrt.StrConv
		pos, stapos, stadel  [3]float64
		stat, logStat        [MAXSTR]int
		bytes, bps           [MAXSTR]int
		strmsg               string
	)
	ss := []string{"E", "-", "W", "C", "C"}

	var (
		infile, outfile  string
		msg              = "1004,1019"
		opt, antinfo     string
		rcvinfo, local   string
		proxy, logfile   string
		metricsAddr      string
		sta, trlevel     int
		dispint          = 5000
	)
	opts := []int{10000, 10000, 2000, 32768, 10, 0, 30, 0}

	flag.StringVar(&infile, "in", "", searchHelp("-in"))
	flag.StringVar(&outfile, "out", "", searchHelp("-out"))
	posF := &posFlag{pos: &pos}
	flag.Var(posF, "p", searchHelp("-p"))
	staposF := &posFlag{pos: &stapos}
	flag.Var(staposF, "px", searchHelp("-px"))
	stadelF := &posFlag{pos: &stadel}
	flag.Var(stadelF, "o", searchHelp("-o"))
	flag.StringVar(&msg, "msg", msg, searchHelp("-msg"))
	flag.StringVar(&opt, "opt", "", searchHelp("-opt"))
	flag.IntVar(&sta, "sta", 0, searchHelp("-sta"))
	flag.IntVar(&dispint, "d", dispint, searchHelp("-d"))
	flag.IntVar(&opts[0], "s", opts[0], searchHelp("-s"))
	flag.IntVar(&opts[1], "r", opts[1], searchHelp("-r"))
	flag.IntVar(&opts[5], "n", opts[5], searchHelp("-n"))
	flag.IntVar(&opts[6], "f", opts[6], searchHelp("-f"))
	flag.IntVar(&opts[7], "b", opts[7], searchHelp("-b"))
	flag.StringVar(&cmdfile[0], "c", "", searchHelp("-c"))
	flag.StringVar(&cmdfile[1], "c1", "", searchHelp("-c1"))
	flag.StringVar(&cmdfile[2], "c2", "", searchHelp("-c2"))
	flag.StringVar(&cmdfile[3], "c3", "", searchHelp("-c3"))
	flag.StringVar(&cmdfile[4], "c4", "", searchHelp("-c4"))
	flag.StringVar(&antinfo, "a", "", searchHelp("-a"))
	flag.StringVar(&rcvinfo, "i", "", searchHelp("-i"))
	flag.StringVar(&local, "l", "", searchHelp("-l"))
	flag.StringVar(&proxy, "x", "", searchHelp("-x"))
	flag.StringVar(&metricsAddr, "m", "", searchHelp("-m"))
	flag.StringVar(&logfile, "fl", "", searchHelp("-fl"))
	flag.IntVar(&trlevel, "t", 0, searchHelp("-t"))
	flag.Parse()

	if flag.NFlag() < 1 {
		printHelp()
	}
	if posF.set {
		llh := [3]float64{pos[0] * gnssrt.D2R, pos[1] * gnssrt.D2R, pos[2]}
		gnssrt.Pos2Ecef(llh[:], stapos[:])
	}
	for i := range fmts {
		fmts[i] = -1
	}
	if len(infile) > 0 {
		if decodePath(infile, &types[0], &paths[0], &fmts[0]) == 0 {
			os.Exit(1)
		}
	}
	n := 0
	if len(outfile) > 0 {
		for _, v := range strings.Split(outfile, ",") {
			if n+1 >= MAXSTR {
				break
			}
			if decodePath(v, &types[n+1], &paths[n+1], &fmts[n+1]) == 0 {
				os.Exit(1)
			}
			n++
		}
	}
	if n == 0 {
		n = 1
	}
	for i := 0; i < n; i++ {
		if fmts[i+1] < 0 {
			continue
		}
		if fmts[i+1] != gnssrt.STRFMT_RTCM3 {
			fmt.Fprintf(os.Stderr, "unsupported output format\n")
			os.Exit(1)
		}
		if fmts[0] < 0 {
			fmt.Fprintf(os.Stderr, "specify input format\n")
			os.Exit(1)
		}
		stasel := 0
		if sta != 0 {
			stasel = 1
		}
		if conv[i] = gnssrt.NewStreamConv(fmts[0], fmts[i+1], msg, sta, stasel, opt); conv[i] == nil {
			fmt.Fprintf(os.Stderr, "stream conversion error\n")
			os.Exit(1)
		}
		if len(antinfo) > 0 {
			if ant := strings.Split(antinfo, ","); len(ant) >= 3 {
				conv[i].RtcmOutput.StaPara.AntDes = ant[0]
				conv[i].RtcmOutput.StaPara.AntSno = ant[1]
				conv[i].RtcmOutput.StaPara.AntSetup, _ = strconv.Atoi(ant[2])
			}
		}
		if len(rcvinfo) > 0 {
			if rcv := strings.Split(rcvinfo, ","); len(rcv) >= 3 {
				conv[i].RtcmOutput.StaPara.Type = rcv[0]
				conv[i].RtcmOutput.StaPara.RecVer = rcv[1]
				conv[i].RtcmOutput.StaPara.RecSN = rcv[2]
			}
		}
		conv[i].RtcmOutput.StaPara.Pos = stapos
		conv[i].RtcmOutput.StaPara.Del = stadel
	}
	intr := make(chan os.Signal, 1)
	signal.Notify(intr, syscall.SIGINT, syscall.SIGTERM)

	strsvr.InitStreamSvr(n)

	if trlevel > 0 {
		if len(logfile) == 0 {
			logfile = TRFILE
		}
		gnssrt.TraceOpen(logfile)
		gnssrt.TraceLevel(trlevel)
		defer gnssrt.TraceClose()
	}
	if len(metricsAddr) > 0 {
		prometheus.MustRegister(streamBytes, streamBps, streamState)
		http.Handle("/metrics", promhttp.Handler())
		go func() {
			if err := http.ListenAndServe(metricsAddr, nil); err != nil {
				fmt.Fprintf(os.Stderr, "metrics endpoint error: %s\n", err.Error())
			}
		}()
	}
	fmt.Fprintf(os.Stderr, "stream server start\n")

	gnssrt.StreamSetDir(local)
	gnssrt.StreamSetProxy(proxy)

	for i := 0; i < MAXSTR; i++ {
		if len(cmdfile[i]) > 0 {
			readCmd(cmdfile[i], &cmds[i], 0)
			readCmd(cmdfile[i], &cmdsPeriodic[i], 2)
		}
	}
	/* start stream server */
	if strsvr.StreamSvrStart(opts, types[:], paths[:], logs[:], conv[:],
		cmds[:], cmdsPeriodic[:], stapos[:]) == 0 {
		fmt.Fprintf(os.Stderr, "stream server start error\n")
		os.Exit(1)
	}
	for stop := false; !stop; {
		select {
		case <-intr:
			stop = true
			continue
		default:
		}
		strmsg = ""

		/* get stream server status */
		strsvr.StreamSvrStat(stat[:], logStat[:], bytes[:], bps[:], &strmsg)

		var states string
		for i := 0; i <= n; i++ {
			states += ss[stat[i]+1]
			label := strconv.Itoa(i)
			streamBytes.WithLabelValues(label).Set(float64(bytes[i]))
			streamBps.WithLabelValues(label).Set(float64(bps[i]))
			streamState.WithLabelValues(label).Set(float64(stat[i]))
		}
		fmt.Fprintf(os.Stderr, "%s [%s] %10s %7d bps %s\n",
			gnssrt.TimeStr(gnssrt.Utc2GpsT(gnssrt.TimeGet()), 0), states,
			humanize.Bytes(uint64(bytes[0])), bps[0], strmsg)

		gnssrt.Sleepms(dispint)
	}
	for i := 0; i < MAXSTR; i++ {
		if len(cmdfile[i]) > 0 {
			readCmd(cmdfile[i], &cmds[i], 1)
		}
	}
	/* stop stream server */
	strsvr.StreamSvrStop(cmds[:])

	fmt.Fprintf(os.Stderr, "stream server stop\n")
}
