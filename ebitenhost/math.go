package ebitenhost

import "math"

// vec3 is a point in page space: X right, Y down, Z toward the viewer.
type vec3 struct {
	X, Y, Z float64
}

// xform is an affine 3D transform: p' = m*p + t, with m row-major.
type xform struct {
	m [9]float64
	t vec3
}

var identityXform = xform{m: [9]float64{1, 0, 0, 0, 1, 0, 0, 0, 1}}

func (a xform) apply(p vec3) vec3 {
	return vec3{
		X: a.m[0]*p.X + a.m[1]*p.Y + a.m[2]*p.Z + a.t.X,
		Y: a.m[3]*p.X + a.m[4]*p.Y + a.m[5]*p.Z + a.t.Y,
		Z: a.m[6]*p.X + a.m[7]*p.Y + a.m[8]*p.Z + a.t.Z,
	}
}

// mul returns a∘b: b is applied first.
func (a xform) mul(b xform) xform {
	var out xform
	for r := 0; r < 3; r++ {
		for c := 0; c < 3; c++ {
			out.m[r*3+c] = a.m[r*3]*b.m[c] + a.m[r*3+1]*b.m[3+c] + a.m[r*3+2]*b.m[6+c]
		}
	}
	out.t = a.apply(b.t)
	return out
}

func translate(x, y, z float64) xform {
	out := identityXform
	out.t = vec3{x, y, z}
	return out
}

func scaleXform(s float64) xform {
	return xform{m: [9]float64{s, 0, 0, 0, s, 0, 0, 0, s}}
}

// rotX rotates about the X axis by deg degrees, matching CSS rotateX.
func rotX(deg float64) xform {
	if deg == 0 {
		return identityXform
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	return xform{m: [9]float64{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}}
}

// rotY rotates about the Y axis by deg degrees, matching CSS rotateY.
func rotY(deg float64) xform {
	if deg == 0 {
		return identityXform
	}
	s, c := math.Sincos(deg * math.Pi / 180)
	return xform{m: [9]float64{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}}
}

// project applies a perspective of distance d centered on (cx, cy). Points at
// z == 0 are unchanged; points behind the eye are pushed far away.
func project(p vec3, d, cx, cy float64) (x, y float64) {
	if d <= 0 {
		return p.X, p.Y
	}
	den := d - p.Z
	if den < 1e-3 {
		den = 1e-3
	}
	k := d / den
	return cx + (p.X-cx)*k, cy + (p.Y-cy)*k
}

// quad is a projected quadrilateral in screen space, corners in order
// top-left, top-right, bottom-right, bottom-left.
type quad struct {
	pts   [4][2]float64
	depth float64
}

// signedArea is positive when the corners wind clockwise on screen (Y down),
// i.e. the front face is visible.
func (q *quad) signedArea() float64 {
	var a float64
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		a += q.pts[i][0]*q.pts[j][1] - q.pts[j][0]*q.pts[i][1]
	}
	return a / 2
}

// contains reports whether (x, y) lies inside the convex quad.
func (q *quad) contains(x, y float64) bool {
	var pos, neg bool
	for i := 0; i < 4; i++ {
		j := (i + 1) % 4
		cross := (q.pts[j][0]-q.pts[i][0])*(y-q.pts[i][1]) - (q.pts[j][1]-q.pts[i][1])*(x-q.pts[i][0])
		if cross > 0 {
			pos = true
		} else if cross < 0 {
			neg = true
		}
		if pos && neg {
			return false
		}
	}
	return true
}

// aabb returns the screen-space bounding box as X, Y, W, H.
func (q *quad) aabb() (x, y, w, h float64) {
	minX, minY := q.pts[0][0], q.pts[0][1]
	maxX, maxY := minX, minY
	for _, p := range q.pts[1:] {
		minX = math.Min(minX, p[0])
		minY = math.Min(minY, p[1])
		maxX = math.Max(maxX, p[0])
		maxY = math.Max(maxY, p[1])
	}
	return minX, minY, maxX - minX, maxY - minY
}
