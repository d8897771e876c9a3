package scrollstage

import (
	"slices"
	"testing"
)

func TestComputeOffsets_Index(t *testing.T) {
	got := ComputeOffsets(4, StaggerIndex, 0, nil)
	want := []float64{0, 1.0 / 3, 2.0 / 3, 1}
	for i := range want {
		if !approx(got[i], want[i]) {
			t.Fatalf("offsets = %v, want %v", got, want)
		}
	}
}

func TestComputeOffsets_Small(t *testing.T) {
	for _, p := range []StaggerPolicy{StaggerIndex, StaggerRandom, StaggerCenter, StaggerEdges} {
		if got := ComputeOffsets(0, p, 1, nil); len(got) != 0 {
			t.Errorf("%v n=0: %v", p, got)
		}
		if got := ComputeOffsets(1, p, 1, nil); len(got) != 1 || got[0] != 0 {
			t.Errorf("%v n=1: %v", p, got)
		}
	}
}

func TestComputeOffsets_RandomDeterministic(t *testing.T) {
	a := ComputeOffsets(6, StaggerRandom, 42, nil)
	b := ComputeOffsets(6, StaggerRandom, 42, nil)
	if !slices.Equal(a, b) {
		t.Fatalf("same seed gave %v and %v", a, b)
	}

	// Offsets are a permutation of the index offsets.
	sorted := slices.Clone(a)
	slices.Sort(sorted)
	index := ComputeOffsets(6, StaggerIndex, 0, nil)
	for i := range index {
		if !approx(sorted[i], index[i]) {
			t.Fatalf("random offsets %v are not a permutation of %v", a, index)
		}
	}

	differs := false
	for seed := uint64(1); seed < 20 && !differs; seed++ {
		differs = !slices.Equal(a, ComputeOffsets(6, StaggerRandom, 42+seed, nil))
	}
	if !differs {
		t.Error("different seeds never changed the order")
	}
}

func TestComputeOffsets_CenterSymmetric(t *testing.T) {
	got := ComputeOffsets(4, StaggerCenter, 0, nil)
	want := []float64{1, 0, 0, 1}
	if !slices.Equal(got, want) {
		t.Errorf("center n=4 = %v, want %v", got, want)
	}

	got = ComputeOffsets(5, StaggerCenter, 0, nil)
	want = []float64{1, 0.5, 0, 0.5, 1}
	if !slices.Equal(got, want) {
		t.Errorf("center n=5 = %v, want %v", got, want)
	}
}

func TestComputeOffsets_CenterPositions(t *testing.T) {
	// Four outer faces and two nearer the middle.
	faces := []Vec2{{0, -1}, {0, 1}, {-1, 0}, {1, 0}, {0.5, 0.5}, {-0.5, -0.5}}
	got := ComputeOffsets(len(faces), StaggerCenter, 0, faces)
	for i := 0; i < 4; i++ {
		if got[i] != 1 {
			t.Errorf("outer face %d offset = %v, want 1", i, got[i])
		}
	}
	if got[4] != 0 || got[5] != 0 {
		t.Errorf("inner faces = %v, %v; want 0", got[4], got[5])
	}
}

func TestComputeOffsets_AllTied(t *testing.T) {
	pts := []Vec2{{1, 0}, {-1, 0}, {0, 1}, {0, -1}}
	got := ComputeOffsets(4, StaggerCenter, 0, pts)
	for i, o := range got {
		if o != 0 {
			t.Errorf("offset %d = %v, want 0 for equidistant points", i, o)
		}
	}
}

func TestComputeOffsets_Edges(t *testing.T) {
	got := ComputeOffsets(5, StaggerEdges, 0, nil)
	want := []float64{0, 0.5, 1, 0.5, 0}
	if !slices.Equal(got, want) {
		t.Errorf("edges = %v, want %v", got, want)
	}
}

func TestRandomValues(t *testing.T) {
	a := RandomValues(7, 12, -160, 160)
	b := RandomValues(7, 12, -160, 160)
	if !slices.Equal(a, b) {
		t.Fatal("same seed should repeat")
	}
	for _, v := range a {
		if v < -160 || v >= 160 {
			t.Errorf("value %v out of range", v)
		}
	}
}

func TestStaggerPolicyString(t *testing.T) {
	if StaggerCenter.String() != "center" || StaggerPolicy(9).String() != "unknown" {
		t.Error("unexpected policy names")
	}
}
