package backdrop

import "math"

// Edge is a transient proximity pair, recomputed every frame. A < B holds by
// construction of the scan.
type Edge struct {
	A, B int
	Dist float64
}

// Triangle joins particle A with its two nearest qualifying neighbors. N1 is
// the nearer of the two; on equal distances the earlier-scanned index wins.
type Triangle struct {
	A, N1, N2 int
	D1, D2    float64
}

// AvgDist is the mean of the two neighbor distances, which drives the fill
// alpha falloff.
func (t Triangle) AvgDist() float64 { return (t.D1 + t.D2) / 2 }

// BuildGraph runs the full pairwise scan over the current particle snapshot
// and returns line edges (pairs under lineMax) and triangle candidates
// (particles with two neighbors under the stricter triMax).
//
// Deliberately O(n^2): particle counts stay in the tens to low hundreds, so
// a spatial index would not pay for itself at this scale.
func BuildGraph(ps []Particle, lineMax, triMax float64) ([]Edge, []Triangle) {
	var edges []Edge
	var tris []Triangle
	for i := 0; i < len(ps); i++ {
		n1, n2 := -1, -1
		d1, d2 := math.MaxFloat64, math.MaxFloat64
		for j := i + 1; j < len(ps); j++ {
			dx := ps[i].X - ps[j].X
			dy := ps[i].Y - ps[j].Y
			dist := math.Sqrt(dx*dx + dy*dy)
			if dist < lineMax {
				edges = append(edges, Edge{A: i, B: j, Dist: dist})
			}
			if dist < triMax {
				// Strict less-than keeps the earliest-found neighbor on ties.
				switch {
				case dist < d1:
					n2, d2 = n1, d1
					n1, d1 = j, dist
				case dist < d2:
					n2, d2 = j, dist
				}
			}
		}
		// Both slots must fill; a lone neighbor renders as a line only.
		if n1 >= 0 && n2 >= 0 {
			tris = append(tris, Triangle{A: i, N1: n1, N2: n2, D1: d1, D2: d2})
		}
	}
	return edges, tris
}
