package ebitenhost

import (
	"math"
	"testing"
)

const epsilon = 1e-9

func approxVec(a, b vec3) bool {
	return math.Abs(a.X-b.X) < 1e-6 && math.Abs(a.Y-b.Y) < 1e-6 && math.Abs(a.Z-b.Z) < 1e-6
}

func TestRotations(t *testing.T) {
	front := vec3{0, 0, 160}
	tests := []struct {
		name string
		xf   xform
		want vec3
	}{
		{"right face", rotY(90), vec3{160, 0, 0}},
		{"back face", rotY(180), vec3{0, 0, -160}},
		{"left face", rotY(-90), vec3{-160, 0, 0}},
		{"top face", rotX(90), vec3{0, -160, 0}},
		{"bottom face", rotX(-90), vec3{0, 160, 0}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.xf.apply(front); !approxVec(got, tt.want) {
				t.Errorf("got %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestXformCompose(t *testing.T) {
	// rotateY(90deg) translateZ(160): translate first, then rotate.
	xf := rotY(90).mul(translate(0, 0, 160))
	if got := xf.apply(vec3{}); !approxVec(got, vec3{160, 0, 0}) {
		t.Errorf("origin -> %+v", got)
	}
	s := translate(10, 20, 0).mul(scaleXform(2))
	if got := s.apply(vec3{1, 1, 0}); !approxVec(got, vec3{12, 22, 0}) {
		t.Errorf("scale then translate -> %+v", got)
	}
	if got := identityXform.mul(s).apply(vec3{1, 1, 0}); !approxVec(got, vec3{12, 22, 0}) {
		t.Errorf("identity compose -> %+v", got)
	}
}

func TestProject(t *testing.T) {
	x, y := project(vec3{100, 50, 0}, 1200, 0, 0)
	if x != 100 || y != 50 {
		t.Errorf("z=0 should be unchanged, got %v %v", x, y)
	}
	x, _ = project(vec3{100, 0, 600}, 1200, 0, 0)
	if math.Abs(x-200) > epsilon {
		t.Errorf("z=600 at d=1200 should double, got %v", x)
	}
	x, _ = project(vec3{100, 0, -1200}, 1200, 0, 0)
	if math.Abs(x-50) > epsilon {
		t.Errorf("z=-1200 should halve, got %v", x)
	}
	x, _ = project(vec3{100, 0, 5000}, -1, 0, 0)
	if x != 100 {
		t.Errorf("disabled perspective should be orthographic, got %v", x)
	}
}

func TestQuad(t *testing.T) {
	q := quad{pts: [4][2]float64{{0, 0}, {10, 0}, {10, 10}, {0, 10}}}
	if a := q.signedArea(); a != 100 {
		t.Errorf("front area = %v, want 100", a)
	}
	if !q.contains(5, 5) || !q.contains(0, 0) || q.contains(11, 5) {
		t.Error("contains mismatch")
	}
	x, y, w, h := q.aabb()
	if x != 0 || y != 0 || w != 10 || h != 10 {
		t.Errorf("aabb = %v %v %v %v", x, y, w, h)
	}

	back := quad{pts: [4][2]float64{{10, 0}, {0, 0}, {0, 10}, {10, 10}}}
	if back.signedArea() >= 0 {
		t.Error("mirrored quad should face away")
	}
	if !back.contains(5, 5) {
		t.Error("contains should not depend on winding")
	}
}
