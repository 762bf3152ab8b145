/*------------------------------------------------------------------------------
* coords.go : small vector helpers and coordinate transforms
*-----------------------------------------------------------------------------*/
package gnssrt

import "math"

/* inner product of vectors */
func Dot(a, b []float64, n int) float64 {
	var c float64
	for i := 0; i < n; i++ {
		c += a[i] * b[i]
	}
	return c
}

/* euclid norm of vector */
func Norm(a []float64, n int) float64 {
	return math.Sqrt(Dot(a, a, n))
}

/* multiply 3x3 matrix (row major) by 3-vector: y = A*x or y = A'*x */
func mul3(a []float64, x []float64, y []float64, trans bool) {
	for i := 0; i < 3; i++ {
		y[i] = 0.0
		for j := 0; j < 3; j++ {
			if trans {
				y[i] += a[j*3+i] * x[j]
			} else {
				y[i] += a[i*3+j] * x[j]
			}
		}
	}
}

/* C = A*P*A' for 3x3 row-major matrices */
func sandwich3(a, p, c []float64) {
	var ap [9]float64
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			ap[i*3+j] = 0.0
			for k := 0; k < 3; k++ {
				ap[i*3+j] += a[i*3+k] * p[k*3+j]
			}
		}
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			c[i*3+j] = 0.0
			for k := 0; k < 3; k++ {
				c[i*3+j] += ap[i*3+k] * a[j*3+k]
			}
		}
	}
}

/* transform ecef to geodetic position {lat,lon,h} (rad,m), ellipsoid WGS84 */
func Ecef2Pos(r []float64, pos []float64) {
	e2 := FE_WGS84 * (2.0 - FE_WGS84)
	r2 := Dot(r, r, 2)
	v := RE_WGS84
	z := r[2]
	zk := 0.0

	for math.Abs(z-zk) >= 1e-4 {
		zk = z
		sinp := z / math.Sqrt(r2+z*z)
		v = RE_WGS84 / math.Sqrt(1.0-e2*sinp*sinp)
		z = r[2] + v*e2*sinp
	}
	if r2 > 1e-12 {
		pos[0] = math.Atan(z / math.Sqrt(r2))
		pos[1] = math.Atan2(r[1], r[0])
	} else {
		if r[2] > 0.0 {
			pos[0] = PI / 2.0
		} else {
			pos[0] = -PI / 2.0
		}
		pos[1] = 0.0
	}
	pos[2] = math.Sqrt(r2+z*z) - v
}

/* transform geodetic position to ecef */
func Pos2Ecef(pos []float64, r []float64) {
	sinp, cosp := math.Sin(pos[0]), math.Cos(pos[0])
	sinl, cosl := math.Sin(pos[1]), math.Cos(pos[1])
	e2 := FE_WGS84 * (2.0 - FE_WGS84)
	v := RE_WGS84 / math.Sqrt(1.0-e2*sinp*sinp)

	r[0] = (v + pos[2]) * cosp * cosl
	r[1] = (v + pos[2]) * cosp * sinl
	r[2] = (v*(1.0-e2) + pos[2]) * sinp
}

/* ecef-to-local rotation matrix E (3x3 row major) at geodetic position */
func XYZ2Enu(pos []float64, e []float64) {
	sinp, cosp := math.Sin(pos[0]), math.Cos(pos[0])
	sinl, cosl := math.Sin(pos[1]), math.Cos(pos[1])

	e[0], e[1], e[2] = -sinl, cosl, 0.0
	e[3], e[4], e[5] = -sinp*cosl, -sinp*sinl, cosp
	e[6], e[7], e[8] = cosp*cosl, cosp*sinl, sinp
}

/* transform ecef vector to local tangential coordinate */
func Ecef2Enu(pos, r, e []float64) {
	var m [9]float64
	XYZ2Enu(pos, m[:])
	mul3(m[:], r, e, false)
}

/* transform local vector to ecef coordinate */
func Enu2Ecef(pos, e, r []float64) {
	var m [9]float64
	XYZ2Enu(pos, m[:])
	mul3(m[:], e, r, true)
}

/* transform ecef covariance to local tangential coordinate */
func Cov2Enu(pos, P, Q []float64) {
	var m [9]float64
	XYZ2Enu(pos, m[:])
	sandwich3(m[:], P, Q)
}

/* transform local covariance to xyz-ecef coordinate */
func Cov2Ecef(pos, Q, P []float64) {
	var m, mt [9]float64
	XYZ2Enu(pos, m[:])
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			mt[i*3+j] = m[j*3+i]
		}
	}
	sandwich3(mt[:], Q, P)
}

/* geometric distance and unit vector receiver-to-satellite, with
 * sagnac correction (m) */
func GeoDist(rs, rr, e []float64) float64 {
	if Norm(rs, 3) < RE_WGS84 {
		return -1.0
	}
	for i := 0; i < 3; i++ {
		e[i] = rs[i] - rr[i]
	}
	r := Norm(e, 3)
	for i := 0; i < 3; i++ {
		e[i] /= r
	}
	return r + OMGE*(rs[0]*rr[1]-rs[1]*rr[0])/CLIGHT
}

/* satellite azimuth/elevation angle (rad), azel optionally output */
func SatAzel(pos, e, azel []float64) float64 {
	az, el := 0.0, PI/2.0
	if pos[2] > -RE_WGS84 {
		var enu [3]float64
		Ecef2Enu(pos, e, enu[:])
		if Dot(enu[:], enu[:], 2) >= 1e-12 {
			az = math.Atan2(enu[0], enu[1])
		}
		if az < 0.0 {
			az += 2 * PI
		}
		el = math.Asin(enu[2])
	}
	if azel != nil {
		azel[0], azel[1] = az, el
	}
	return el
}

/* dilution of precision {GDOP,PDOP,HDOP,VDOP} from azimuth/elevation */
func Dops(ns int, azel []float64, elmin float64, dop []float64) {
	var h [4 * MAXOBS]float64
	n := 0

	for i := 0; i < 4; i++ {
		dop[i] = 0.0
	}
	for i := 0; i < ns && i < MAXOBS; i++ {
		if azel[1+i*2] < elmin || azel[1+i*2] <= 0.0 {
			continue
		}
		cosel := math.Cos(azel[1+i*2])
		sinel := math.Sin(azel[1+i*2])
		h[4*n] = cosel * math.Sin(azel[i*2])
		h[1+4*n] = cosel * math.Cos(azel[i*2])
		h[2+4*n] = sinel
		h[3+4*n] = 1.0
		n++
	}
	if n < 4 {
		return
	}
	/* Q = (H'*H)^-1 */
	var q [16]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			for k := 0; k < n; k++ {
				q[i*4+j] += h[i+4*k] * h[j+4*k]
			}
		}
	}
	if inv4(q[:]) != 0 {
		return
	}
	dop[0] = math.Sqrt(q[0] + q[5] + q[10] + q[15]) /* GDOP */
	dop[1] = math.Sqrt(q[0] + q[5] + q[10])         /* PDOP */
	dop[2] = math.Sqrt(q[0] + q[5])                 /* HDOP */
	dop[3] = math.Sqrt(q[10])                       /* VDOP */
}

/* invert 4x4 matrix in place by gauss-jordan (0:ok,-1:singular) */
func inv4(a []float64) int {
	var b [32]float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			b[i*8+j] = a[i*4+j]
		}
		b[i*8+4+i] = 1.0
	}
	for i := 0; i < 4; i++ {
		p := i
		for k := i + 1; k < 4; k++ {
			if math.Abs(b[k*8+i]) > math.Abs(b[p*8+i]) {
				p = k
			}
		}
		if math.Abs(b[p*8+i]) < 1e-13 {
			return -1
		}
		if p != i {
			for j := 0; j < 8; j++ {
				b[i*8+j], b[p*8+j] = b[p*8+j], b[i*8+j]
			}
		}
		d := b[i*8+i]
		for j := 0; j < 8; j++ {
			b[i*8+j] /= d
		}
		for k := 0; k < 4; k++ {
			if k == i {
				continue
			}
			d = b[k*8+i]
			for j := 0; j < 8; j++ {
				b[k*8+j] -= d * b[i*8+j]
			}
		}
	}
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			a[i*4+j] = b[i*8+4+j]
		}
	}
	return 0
}
