/*------------------------------------------------------------------------------
* stream_test.go : stream path and memory buffer unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRepPath(t *testing.T) {
	assert := assert.New(t)

	time := Epoch2Time([]float64{2026, 8, 27, 13, 47, 21.0})

	assert.Equal("plain.log", RepPath("plain.log", time, "", ""))
	assert.Equal("2026/08/27_134721",
		RepPath("%Y/%m/%d_%h%M%S", time, "", ""))
	assert.Equal("rovA_baseB",
		RepPath("%r_%b", time, "rovA", "baseB"))

	/* session keywords */
	assert.Equal("12_12_12_45",
		RepPath("%ha_%hb_%hc_%t", time, "", ""))

	var week int
	dow := int(Time2GpsT(time, &week) / 86400.0)
	assert.Equal(RepPath("%W%D", time, "", ""),
		RepPath("%W", time, "", "")+RepPath("%D", time, "", ""))
	assert.True(dow >= 0 && dow <= 6)

	/* no time: only station ids replaced */
	var t0 Gtime
	assert.Equal("rovA_%Y", RepPath("%r_%Y", t0, "rovA", ""))
}

func TestRepPaths(t *testing.T) {
	assert := assert.New(t)

	ts := Epoch2Time([]float64{2026, 8, 25, 0, 0, 0.0})
	te := Epoch2Time([]float64{2026, 8, 27, 23, 59, 59.0})

	paths := RepPaths("log_%Y%m%d.ubx", 10, ts, te, "", "")
	assert.Equal(3, len(paths))
	assert.Equal("log_20260825.ubx", paths[0])
	assert.Equal("log_20260827.ubx", paths[2])

	/* reversed range */
	assert.Nil(RepPaths("log_%Y%m%d.ubx", 10, te, ts, "", ""))
}

func TestMemBufStream(t *testing.T) {
	assert := assert.New(t)

	var s Stream
	s.InitStream()
	assert.Equal(1, s.OpenStream(STR_MEMBUF, STR_MODE_RW, "4096"))
	assert.Equal(1, s.State)

	msg := []byte("$GPGGA,012345.00,3541.1234,N,13945.5678,E,1,09,1.0,45.0,M,36.7,M,,*00\r\n")
	assert.Equal(len(msg), s.StreamWrite(msg, len(msg)))

	buff := make([]byte, 256)
	n := s.StreamRead(buff, len(buff))
	assert.Equal(len(msg), n)
	assert.Equal(msg, buff[:n])

	s.StreamClose()
	assert.Equal(0, s.State)
}
