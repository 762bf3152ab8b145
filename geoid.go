/*------------------------------------------------------------------------------
* geoid.go : geoid model
*
*          Copyright (C) 2026 by The GNSSRT Project, All rights reserved.
*
* references :
*     [1] EGM96 The NASA GSFC and NIMA Joint Geopotential Model
*     [2] Earth Gravitational Model 2008 (EGM2008)
*-----------------------------------------------------------------------------*/
package gnssrt

import (
	"encoding/binary"
	"os"
)

/* geoid models */
const (
	GEOID_EMBEDDED    = 0 /* internal (always zero undulation) */
	GEOID_EGM96_M150  = 1 /* EGM96 15x15" */
	GEOID_EGM2008_M25 = 2 /* EGM2008 2.5x2.5" */
	GEOID_EGM2008_M10 = 3 /* EGM2008 1.0x1.0" */
)

type geoidModel struct {
	fp     *os.File
	model  int
	lon    [2]float64 /* lon range (deg) */
	lat    [2]float64 /* lat range (deg) */
	dlon   float64    /* lon interval (deg) */
	dlat   float64    /* lat interval (deg) */
	nlon   int
	nlat   int
	north  bool /* rows ordered north to south */
	recpos int  /* header offset (bytes) */
}

var geoid geoidModel

/* grid parameters by model */
var geoidPrm = map[int]geoidModel{
	GEOID_EGM96_M150:  {model: GEOID_EGM96_M150, lon: [2]float64{0.0, 360.0}, lat: [2]float64{-90.0, 90.0}, dlon: 0.25, dlat: 0.25, nlon: 1440, nlat: 721, north: true},
	GEOID_EGM2008_M25: {model: GEOID_EGM2008_M25, lon: [2]float64{0.0, 360.0}, lat: [2]float64{-90.0, 90.0}, dlon: 2.5 / 60.0, dlat: 2.5 / 60.0, nlon: 8640, nlat: 4321, north: true},
	GEOID_EGM2008_M10: {model: GEOID_EGM2008_M10, lon: [2]float64{0.0, 360.0}, lat: [2]float64{-90.0, 90.0}, dlon: 1.0 / 60.0, dlat: 1.0 / 60.0, nlon: 21600, nlat: 10801, north: true},
}

/* OpenGeoid opens an external geoid grid file. model GEOID_EMBEDDED needs no
 * file and selects the zero-undulation fallback. EGM96 uses 15'x15' int16
 * big-endian records in units of cm (WW15MGH.DAC), EGM2008 variants use
 * float32 little-endian records in m */
func OpenGeoid(model int, file string) int {
	Tracet(3, "OpenGeoid: model=%d file=%s\n", model, file)

	CloseGeoid()
	if model == GEOID_EMBEDDED {
		return 1
	}
	prm, ok := geoidPrm[model]
	if !ok {
		Tracet(2, "OpenGeoid: invalid model %d\n", model)
		return 0
	}
	fp, err := os.Open(file)
	if err != nil {
		Tracet(2, "OpenGeoid: file open error %s\n", file)
		return 0
	}
	geoid = prm
	geoid.fp = fp
	return 1
}

/* CloseGeoid closes the geoid grid file */
func CloseGeoid() {
	if geoid.fp != nil {
		geoid.fp.Close()
	}
	geoid = geoidModel{}
}

/* read one grid node (m) */
func geoidNode(i, j int) (float64, bool) {
	row := j
	if geoid.north {
		row = geoid.nlat - 1 - j
	}
	rec := row*geoid.nlon + i%geoid.nlon

	switch geoid.model {
	case GEOID_EGM96_M150:
		var v int16
		if _, err := geoid.fp.Seek(int64(geoid.recpos+rec*2), 0); err != nil {
			return 0.0, false
		}
		if err := binary.Read(geoid.fp, binary.BigEndian, &v); err != nil {
			return 0.0, false
		}
		return float64(v) * 0.01, true
	case GEOID_EGM2008_M25, GEOID_EGM2008_M10:
		var v float32
		if _, err := geoid.fp.Seek(int64(geoid.recpos+rec*4), 0); err != nil {
			return 0.0, false
		}
		if err := binary.Read(geoid.fp, binary.LittleEndian, &v); err != nil {
			return 0.0, false
		}
		return float64(v), true
	}
	return 0.0, false
}

/* GeoidH returns geoid undulation (m) at geodetic position pos {lat,lon}
 * (rad) by bilinear interpolation of the opened grid, or 0.0 when no grid
 * file is open */
func GeoidH(pos []float64) float64 {
	if geoid.fp == nil {
		return 0.0
	}
	lat := pos[0] * R2D
	lon := pos[1] * R2D
	if lon < 0.0 {
		lon += 360.0
	}
	if lat < geoid.lat[0] || geoid.lat[1] < lat || lon < geoid.lon[0] || geoid.lon[1] < lon {
		return 0.0
	}
	a := (lon - geoid.lon[0]) / geoid.dlon
	b := (lat - geoid.lat[0]) / geoid.dlat
	i1 := int(a)
	j1 := int(b)
	a -= float64(i1)
	b -= float64(j1)
	i2 := i1 + 1
	j2 := j1 + 1
	if j2 >= geoid.nlat {
		j2 = geoid.nlat - 1
	}
	y00, ok0 := geoidNode(i1, j1)
	y10, ok1 := geoidNode(i2, j1)
	y01, ok2 := geoidNode(i1, j2)
	y11, ok3 := geoidNode(i2, j2)
	if !ok0 || !ok1 || !ok2 || !ok3 {
		return 0.0
	}
	return y00*(1.0-a)*(1.0-b) + y10*a*(1.0-b) + y01*(1.0-a)*b + y11*a*b
}
