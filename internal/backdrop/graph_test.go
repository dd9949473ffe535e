package backdrop

import (
	"reflect"
	"testing"
)

func TestEdgeThresholdIsStrict(t *testing.T) {
	lineMax := 140.0

	ps := []Particle{{X: 0, Y: 0}, {X: 140, Y: 0}}
	edges, _ := BuildGraph(ps, lineMax, 90)
	if len(edges) != 0 {
		t.Fatalf("pair at exactly lineMax produced %d edges, want 0 (strict <)", len(edges))
	}

	ps[1].X = 139.999
	edges, _ = BuildGraph(ps, lineMax, 90)
	if len(edges) != 1 {
		t.Fatalf("pair just under lineMax produced %d edges, want 1", len(edges))
	}
	if edges[0].A != 0 || edges[0].B != 1 {
		t.Fatalf("edge = (%d,%d), want (0,1)", edges[0].A, edges[0].B)
	}
}

func TestEdgesInScanOrder(t *testing.T) {
	ps := []Particle{{X: 0, Y: 0}, {X: 10, Y: 0}, {X: 0, Y: 10}}
	edges, _ := BuildGraph(ps, 140, 90)

	want := [][2]int{{0, 1}, {0, 2}, {1, 2}}
	if len(edges) != len(want) {
		t.Fatalf("got %d edges, want %d", len(edges), len(want))
	}
	for i, e := range edges {
		if e.A != want[i][0] || e.B != want[i][1] {
			t.Fatalf("edge[%d] = (%d,%d), want (%d,%d)", i, e.A, e.B, want[i][0], want[i][1])
		}
	}
}

func TestTriangleRequiresTwoNeighbors(t *testing.T) {
	// One qualifying neighbor: line only, no triangle.
	ps := []Particle{{X: 0, Y: 0}, {X: 10, Y: 0}}
	edges, tris := BuildGraph(ps, 140, 90)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	if len(tris) != 0 {
		t.Fatalf("got %d triangles with a single neighbor, want 0", len(tris))
	}

	// Two qualifying neighbors: exactly one triangle for the scan root.
	ps = append(ps, Particle{X: 0, Y: 10})
	_, tris = BuildGraph(ps, 140, 90)
	if len(tris) != 1 {
		t.Fatalf("got %d triangles, want 1", len(tris))
	}
	if tris[0].A != 0 {
		t.Fatalf("triangle root = %d, want 0", tris[0].A)
	}
}

func TestTriangleUsesTwoNearest(t *testing.T) {
	// Neighbors of particle 0 at distances 30, 5, 50: nearest two are 2 and 1.
	ps := []Particle{
		{X: 0, Y: 0},
		{X: 30, Y: 0},
		{X: 5, Y: 0},
		{X: 50, Y: 0},
	}
	_, tris := BuildGraph(ps, 1, 90) // lineMax 1 keeps the edge list empty

	if len(tris) == 0 {
		t.Fatal("expected a triangle for particle 0")
	}
	tri := tris[0]
	if tri.A != 0 || tri.N1 != 2 || tri.N2 != 1 {
		t.Fatalf("triangle = (%d,%d,%d), want (0,2,1)", tri.A, tri.N1, tri.N2)
	}
	if tri.D1 != 5 || tri.D2 != 30 {
		t.Fatalf("distances = (%v,%v), want (5,30)", tri.D1, tri.D2)
	}
	if tri.AvgDist() != 17.5 {
		t.Fatalf("AvgDist = %v, want 17.5", tri.AvgDist())
	}
}

func TestTriangleThresholdStricterThanLine(t *testing.T) {
	// Within lineMax but outside triMax: edges yes, triangles no.
	ps := []Particle{{X: 0, Y: 0}, {X: 100, Y: 0}, {X: 0, Y: 100}}
	edges, tris := BuildGraph(ps, 140, 90)
	if len(edges) != 2 {
		t.Fatalf("got %d edges, want 2", len(edges))
	}
	if len(tris) != 0 {
		t.Fatalf("got %d triangles outside triMax, want 0", len(tris))
	}
}

func TestTieBreakIsScanOrderDeterministic(t *testing.T) {
	// Particles 1 and 2 sit at exactly equal distance from particle 0. The
	// earliest-scanned neighbor must win the first slot, every run.
	ps := []Particle{
		{X: 0, Y: 0},
		{X: 30, Y: 0},
		{X: 0, Y: 30},
	}

	first, firstTris := BuildGraph(ps, 140, 90)
	for i := 0; i < 10; i++ {
		edges, tris := BuildGraph(ps, 140, 90)
		if !reflect.DeepEqual(edges, first) || !reflect.DeepEqual(tris, firstTris) {
			t.Fatal("proximity scan is not deterministic for equal distances")
		}
	}
	if firstTris[0].A != 0 || firstTris[0].N1 != 1 || firstTris[0].N2 != 2 {
		t.Fatalf("tie-break chose (%d,%d,%d), want scan order (0,1,2)",
			firstTris[0].A, firstTris[0].N1, firstTris[0].N2)
	}
}

func TestCoincidentParticles(t *testing.T) {
	ps := []Particle{{X: 5, Y: 5}, {X: 5, Y: 5}}
	edges, _ := BuildGraph(ps, 140, 90)
	if len(edges) != 1 {
		t.Fatalf("got %d edges, want 1", len(edges))
	}
	if edges[0].Dist != 0 {
		t.Fatalf("coincident pair distance = %v, want 0", edges[0].Dist)
	}
}

func TestEmptyAndSingleParticle(t *testing.T) {
	if edges, tris := BuildGraph(nil, 140, 90); len(edges) != 0 || len(tris) != 0 {
		t.Fatal("empty field should produce an empty graph")
	}
	if edges, tris := BuildGraph([]Particle{{X: 1, Y: 1}}, 140, 90); len(edges) != 0 || len(tris) != 0 {
		t.Fatal("single particle should produce an empty graph")
	}
}
