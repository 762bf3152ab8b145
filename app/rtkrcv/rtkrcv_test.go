package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ourairquality/gnssrt"
)

func TestLoadConfig(t *testing.T) {
	yml := `
cycle: 20
buffsize: 8192
nmeareq: single
nmeapos: [35.0, 139.0, 60.0]
inputs:
  - {type: tcpcli, path: "localhost:2101", format: ubx}
  - {type: ntripcli, path: "user:pass@caster:2101/MOUNT", format: rtcm3}
outputs:
  - {type: file, path: "sol_%Y%m%d.pos", format: llh}
  - {type: tcpsvr, path: ":52001", format: nmea}
processing:
  mode: kinematic
  elmask: 10.0
  refpos: rtcm
solution:
  timesys: utc
  height: geodetic
`
	file := filepath.Join(t.TempDir(), "rtkrcv.yml")
	assert.NoError(t, os.WriteFile(file, []byte(yml), 0644))

	c, err := loadConfig(file)
	assert.NoError(t, err)
	assert.Equal(t, 20, c.Cycle)
	assert.Equal(t, 8192, c.BuffSize)
	assert.Equal(t, "single", c.NmeaReq)
	assert.Equal(t, [3]float64{35.0, 139.0, 60.0}, c.NmeaPos)
	assert.Equal(t, "tcpcli", c.Inputs[0].Type)
	assert.Equal(t, "ubx", c.Inputs[0].Format)
	assert.Equal(t, "ntripcli", c.Inputs[1].Type)
	assert.Equal(t, "", c.Inputs[2].Type)
	assert.Equal(t, "nmea", c.Outputs[1].Format)

	/* defaults survive for unset keys */
	assert.Equal(t, 10000, c.Timeout)
	assert.Equal(t, 10000, c.Reconnect)
}

func TestProcOpt(t *testing.T) {
	c := defaultConfig()
	c.Processing.Mode = "kinematic"
	c.Processing.ElMask = 10.0
	c.Processing.RefPos = "single"
	c.Processing.MaxAveEp = 60
	c.Processing.ExSats = "G05 +R10"

	opt := c.procOpt()
	assert.Equal(t, gnssrt.PMODE_KINEMA, opt.Mode)
	assert.InDelta(t, 10.0*gnssrt.D2R, opt.Elmin, 1e-12)
	assert.Equal(t, gnssrt.POSOPT_SINGLE, opt.RefPos)
	assert.Equal(t, 60, opt.MaxAveEp)

	g05 := gnssrt.SatId2No("G05")
	r10 := gnssrt.SatId2No("R10")
	assert.Equal(t, uint8(1), opt.ExSats[g05-1])
	assert.Equal(t, uint8(2), opt.ExSats[r10-1])
}

func TestSolOpt(t *testing.T) {
	c := defaultConfig()
	c.Solution.TimeSys = "utc"
	c.Solution.Height = "geodetic"
	c.Solution.NmeaIntv1 = 1.0

	opt := c.solOpt("nmea")
	assert.Equal(t, gnssrt.SOLF_NMEA, opt.Posf)
	assert.Equal(t, gnssrt.TIMES_UTC, opt.TimeS)
	assert.Equal(t, 1, opt.Height)
	assert.Equal(t, 1.0, opt.NmeaIntv[0])

	opt = c.solOpt("stat")
	assert.Equal(t, gnssrt.SOLF_STAT, opt.Posf)
}
