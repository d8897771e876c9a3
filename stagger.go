package scrollstage

import (
	"math"
	"math/rand/v2"
	"slices"
)

// StaggerPolicy selects the order in which the objects of a stagger group
// start animating.
type StaggerPolicy uint8

const (
	StaggerIndex  StaggerPolicy = iota // ascending by index
	StaggerRandom                      // seeded random permutation
	StaggerCenter                      // nearest to the centroid first
	StaggerEdges                       // farthest from the centroid first
)

func (p StaggerPolicy) String() string {
	switch p {
	case StaggerIndex:
		return "index"
	case StaggerRandom:
		return "random"
	case StaggerCenter:
		return "center"
	case StaggerEdges:
		return "edges"
	default:
		return "unknown"
	}
}

// distanceEpsilon treats nearly equal centroid distances as ties so that
// symmetric layouts get symmetric offsets despite rounding.
const distanceEpsilon = 1e-9

// Stagger spreads a tween's start across its targets. Each target's span
// becomes [p0 + offset*Spread*(p1-p0), p1].
type Stagger struct {
	Policy StaggerPolicy
	Seed   uint64
	// Spread is the fraction of the tween's range reserved for staggering,
	// in [0, 1].
	Spread float64
	// Positions are the targets' spatial positions for the center and edges
	// policies. When empty, targets are laid out on a line by index.
	Positions []Vec2
}

// ComputeOffsets returns one offset in [0, 1] per object, in object order.
// n == 1 yields [0]; n <= 0 yields nil.
func ComputeOffsets(n int, policy StaggerPolicy, seed uint64, positions []Vec2) []float64 {
	if n <= 0 {
		return nil
	}
	offsets := make([]float64, n)
	if n == 1 {
		return offsets
	}
	last := float64(n - 1)

	switch policy {
	case StaggerRandom:
		r := rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
		for i, slot := range r.Perm(n) {
			offsets[i] = float64(slot) / last
		}
	case StaggerCenter, StaggerEdges:
		ranks, maxRank := distanceRanks(n, positions)
		for i, rank := range ranks {
			if maxRank == 0 {
				offsets[i] = 0
				continue
			}
			o := float64(rank) / float64(maxRank)
			if policy == StaggerEdges {
				o = 1 - o
			}
			offsets[i] = o
		}
	default:
		for i := range offsets {
			offsets[i] = float64(i) / last
		}
	}
	return offsets
}

// distanceRanks assigns each object a dense rank by distance from the
// centroid: the nearest objects get rank 0 and equal distances share a rank.
func distanceRanks(n int, positions []Vec2) ([]int, int) {
	pts := make([]Vec2, n)
	for i := range pts {
		if i < len(positions) {
			pts[i] = positions[i]
		} else {
			pts[i] = Vec2{X: float64(i)}
		}
	}

	var centroid Vec2
	for _, p := range pts {
		centroid.X += p.X
		centroid.Y += p.Y
	}
	centroid.X /= float64(n)
	centroid.Y /= float64(n)

	dist := make([]float64, n)
	for i, p := range pts {
		dist[i] = p.Dist(centroid)
	}

	sorted := slices.Clone(dist)
	slices.Sort(sorted)
	levels := []float64{sorted[0]}
	for _, d := range sorted[1:] {
		if d-levels[len(levels)-1] > distanceEpsilon {
			levels = append(levels, d)
		}
	}

	ranks := make([]int, n)
	for i, d := range dist {
		idx, _ := slices.BinarySearchFunc(levels, d, func(level, target float64) int {
			if math.Abs(level-target) <= distanceEpsilon {
				return 0
			}
			if level < target {
				return -1
			}
			return 1
		})
		ranks[i] = idx
	}
	return ranks, len(levels) - 1
}

// RandomValues returns n values drawn uniformly from [min, max) with a
// deterministic seed, for per-target dispersal vectors.
func RandomValues(seed uint64, n int, min, max float64) []float64 {
	r := rand.New(rand.NewPCG(seed, seed+1))
	out := make([]float64, n)
	for i := range out {
		out[i] = min + r.Float64()*(max-min)
	}
	return out
}
