/*------------------------------------------------------------------------------
* geoid_test.go : geoid model unit test
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

/* build a synthetic EGM96 grid (int16 big-endian, cm) whose node value is the
 * longitude index */
func writeEgm96Grid(t *testing.T) string {
	const nlon, nlat = 1440, 721

	buff := make([]byte, nlon*nlat*2)
	for row := 0; row < nlat; row++ {
		for col := 0; col < nlon; col++ {
			binary.BigEndian.PutUint16(buff[(row*nlon+col)*2:], uint16(col))
		}
	}
	file := filepath.Join(t.TempDir(), "WW15MGH.DAC")
	if err := os.WriteFile(file, buff, 0644); err != nil {
		t.Fatal(err)
	}
	return file
}

func TestGeoidEmbedded(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(1, OpenGeoid(GEOID_EMBEDDED, ""))
	pos := [3]float64{36.0 * D2R, 140.0 * D2R, 0.0}
	assert.Equal(0.0, GeoidH(pos[:]))
	CloseGeoid()
}

func TestGeoidOpenErrors(t *testing.T) {
	assert := assert.New(t)

	assert.Equal(0, OpenGeoid(99, "nofile"))
	assert.Equal(0, OpenGeoid(GEOID_EGM96_M150, filepath.Join(t.TempDir(), "missing.dac")))
	CloseGeoid()
}

func TestGeoidBilinear(t *testing.T) {
	assert := assert.New(t)

	file := writeEgm96Grid(t)
	assert.Equal(1, OpenGeoid(GEOID_EGM96_M150, file))
	defer CloseGeoid()

	/* on a grid node: lon index = lon/0.25 */
	pos := [3]float64{40.0 * D2R, 10.0 * D2R, 0.0}
	assert.InDelta(40*0.01, GeoidH(pos[:]), 1e-6)

	/* midway between two longitude nodes the value interpolates linearly */
	pos[1] = 10.125 * D2R
	assert.InDelta(40.5*0.01, GeoidH(pos[:]), 1e-6)

	/* latitude does not change the synthetic grid */
	pos[0] = -33.3 * D2R
	assert.InDelta(40.5*0.01, GeoidH(pos[:]), 1e-6)

	/* negative longitude wraps into 0..360 */
	pos[1] = -90.0 * D2R
	assert.InDelta(float64(1080)*0.01, GeoidH(pos[:]), 1e-6)
}

func TestGeoidClosed(t *testing.T) {
	CloseGeoid()
	pos := [3]float64{36.0 * D2R, 140.0 * D2R, 0.0}
	assert.Equal(t, 0.0, GeoidH(pos[:]))
}
