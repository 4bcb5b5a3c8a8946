package simplify_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/halfedge"
	"github.com/katalvlaran/lvmesh/simplify"
)

func mustBuild(t testing.TB, bopts []builder.BuilderOption, cons ...builder.Constructor) *halfedge.Mesh {
	t.Helper()
	m, err := builder.BuildMesh(bopts, cons...)
	require.NoError(t, err)
	return m
}

// auditor checks every accepted collapse as it happens.
type auditor struct {
	simplify.BaseVisitor
	t *testing.T

	vertices, edges int
	selected        int
	rejected        int
	collapsed       int
	stops           int
}

func (a *auditor) OnSelected(*simplify.Profile, float64, int, int) { a.selected++ }

func (a *auditor) OnCollapsing(p *simplify.Profile, _ r3.Vec) {
	a.vertices, a.edges = p.Mesh().VertexCount(), p.Mesh().EdgeCount()
}

func (a *auditor) OnCollapsed(p *simplify.Profile, kept halfedge.VertexID) {
	m := p.Mesh()
	a.collapsed++
	assert.Equal(a.t, a.vertices-1, m.VertexCount(), "one vertex per collapse")
	assert.Less(a.t, m.EdgeCount(), a.edges, "edges strictly decrease")
	assert.NoError(a.t, m.Check(), "manifold after collapse %d", a.collapsed)
	assert.False(a.t, m.IsVertexRemoved(kept))
	assert.True(a.t, m.IsVertexRemoved(p.V1()))
}

func (a *auditor) OnNonCollapsible(*simplify.Profile)       { a.rejected++ }
func (a *auditor) OnStopConditionReached(*simplify.Profile) { a.stops++ }

func TestSimplify_InputErrors(t *testing.T) {
	_, err := simplify.Simplify(nil)
	assert.ErrorIs(t, err, simplify.ErrNilMesh)

	m := mustBuild(t, nil, builder.PlatonicSolid(builder.Cube))
	_, err = simplify.Simplify(m, simplify.WithConstraints(make(halfedge.EdgeFlags, 3)))
	assert.ErrorIs(t, err, simplify.ErrConstraintSize)
	assert.Equal(t, 18, m.EdgeCount(), "mesh untouched")
}

func TestSimplify_ProgressAndManifold(t *testing.T) {
	meshes := map[string]*halfedge.Mesh{
		"icosahedron": mustBuild(t, nil, builder.PlatonicSolid(builder.Icosahedron)),
		"bipyramid":   mustBuild(t, nil, builder.Bipyramid(8)),
		"grid":        mustBuild(t, []builder.BuilderOption{builder.WithSeed(5), builder.WithJitter(0.2)}, builder.Grid(6, 6)),
	}
	for name, m := range meshes {
		t.Run(name, func(t *testing.T) {
			a := &auditor{t: t}
			res, err := simplify.Simplify(m, simplify.WithStop(simplify.NeverStop()), simplify.WithVisitor(a))
			require.NoError(t, err)

			assert.Equal(t, simplify.Finished, res.Outcome)
			assert.Positive(t, res.Collapses)
			assert.Equal(t, a.collapsed, res.Collapses)
			assert.Equal(t, res.InitialVertices-res.Collapses, res.FinalVertices)
			assert.Equal(t, m.EdgeCount(), res.FinalEdges)
			assert.Zero(t, a.stops)
			assert.NoError(t, m.Check())
		})
	}
}

func TestSimplify_StopOnFirstCandidate(t *testing.T) {
	m := mustBuild(t, nil, builder.PlatonicSolid(builder.Icosahedron))
	points, tris := m.Compact()

	a := &auditor{t: t}
	res, err := simplify.Simplify(m,
		simplify.WithStop(simplify.StopFunc(func(float64, *simplify.Profile, int, int) bool { return true })),
		simplify.WithVisitor(a),
	)
	require.NoError(t, err)

	assert.Equal(t, simplify.Stopped, res.Outcome)
	assert.Zero(t, res.Collapses)
	assert.Equal(t, 1, a.selected)
	assert.Equal(t, 1, a.stops)
	assert.Equal(t, res.InitialEdges, res.FinalEdges)

	gotPoints, gotTris := m.Compact()
	assert.Equal(t, points, gotPoints)
	assert.Equal(t, tris, gotTris)
}

func TestSimplify_CubeToSixEdges(t *testing.T) {
	m := mustBuild(t, nil, builder.PlatonicSolid(builder.Cube))

	a := &auditor{t: t}
	res, err := simplify.Simplify(m, simplify.WithStop(simplify.EdgeCountStop(6)), simplify.WithVisitor(a))
	require.NoError(t, err)

	require.Equal(t, simplify.Stopped, res.Outcome)
	assert.LessOrEqual(t, m.EdgeCount(), 6)

	c := res.Collapses
	require.Equal(t, (res.InitialEdges-res.FinalEdges)/3, c, "closed meshes lose three edges per collapse")
	assert.Equal(t, 3*c, res.InitialEdges-res.FinalEdges)
	assert.Equal(t, 8-c, m.VertexCount())
	assert.Equal(t, 18-3*c, m.EdgeCount())
	assert.Equal(t, 12-2*c, m.FaceCount())
	assert.Equal(t, c, a.collapsed)
	assert.Equal(t, 1, a.stops)
	assert.True(t, m.IsClosed())
	assert.NoError(t, m.Check())
}

func TestSimplify_OpenTriangle(t *testing.T) {
	m := mustBuild(t, nil, builder.Triangle())

	a := &auditor{t: t}
	res, err := simplify.Simplify(m, simplify.WithStop(simplify.NeverStop()), simplify.WithVisitor(a))
	require.NoError(t, err)

	assert.Equal(t, simplify.Finished, res.Outcome)
	assert.Equal(t, 1, res.Collapses)
	assert.Zero(t, a.rejected, "no validity rejection")
	assert.Equal(t, 2, m.VertexCount())
	assert.Equal(t, 1, m.EdgeCount())
	assert.Zero(t, m.FaceCount())
	assert.NoError(t, m.Check())
}

func TestSimplify_TetrahedronCollapsesToPillow(t *testing.T) {
	m := mustBuild(t, nil, builder.PlatonicSolid(builder.Tetrahedron))

	res, err := simplify.Simplify(m, simplify.WithStop(simplify.NeverStop()))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Collapses)
	assert.Equal(t, 3, m.VertexCount())
	assert.Equal(t, 3, m.EdgeCount())
	assert.Equal(t, 2, m.FaceCount())
	assert.NoError(t, m.Check())
}

func TestSimplify_ConstraintsSurvive(t *testing.T) {
	m := mustBuild(t, nil, builder.Grid(6, 6))

	// Constrain the horizontal line y=3 (vertices 21..27).
	constrained := halfedge.NewEdgeFlags(m)
	for c := 0; c < 6; c++ {
		u, v := halfedge.VertexID(3*7+c), halfedge.VertexID(3*7+c+1)
		constrained.Set(halfedge.EdgeOf(m.FindHalfedge(u, v)), true)
	}
	require.Equal(t, 6, constrained.Count(m))

	res, err := simplify.Simplify(m,
		simplify.WithStop(simplify.NeverStop()),
		simplify.WithConstraints(constrained),
		simplify.WithPlacement(simplify.ConstrainedPlacement{}),
	)
	require.NoError(t, err)
	assert.Positive(t, res.Collapses)
	assert.NoError(t, m.Check())

	assert.Equal(t, 6, constrained.Count(m), "constrained edges are never collapsed")
	for e := 0; e < len(constrained); e++ {
		if !constrained.Has(halfedge.EdgeID(e)) || m.IsEdgeRemoved(halfedge.EdgeID(e)) {
			continue
		}
		h := halfedge.PrimaryHalfedge(halfedge.EdgeID(e))
		assert.Equal(t, 3.0, m.Point(m.Source(h)).Y, "constrained endpoints stay on the line")
		assert.Equal(t, 3.0, m.Point(m.Target(h)).Y)
	}
}

func TestSimplify_FixedBorder(t *testing.T) {
	m := mustBuild(t, nil, builder.Grid(3, 3))
	borderPoints := func() []r3.Vec {
		var out []r3.Vec
		for v := 0; v < m.NumVertexIDs(); v++ {
			if !m.IsVertexRemoved(halfedge.VertexID(v)) && m.IsBorderVertex(halfedge.VertexID(v)) {
				out = append(out, m.Point(halfedge.VertexID(v)))
			}
		}
		return out
	}
	countBorderEdges := func() int {
		n := 0
		m.ForEachEdge(func(e halfedge.EdgeID) bool {
			if m.IsBorderEdge(e) {
				n++
			}
			return true
		})
		return n
	}
	before := borderPoints()
	require.Len(t, before, 12)
	require.Equal(t, 12, countBorderEdges())

	res, err := simplify.Simplify(m,
		simplify.WithStop(simplify.NeverStop()),
		simplify.WithFixedBorder(),
		simplify.WithPlacement(simplify.ConstrainedPlacement{}),
	)
	require.NoError(t, err)
	assert.Positive(t, res.Collapses)
	assert.NoError(t, m.Check())

	assert.Equal(t, 12, countBorderEdges())
	assert.ElementsMatch(t, before, borderPoints())
}

func TestSimplify_NoFlippedFaces(t *testing.T) {
	m := mustBuild(t, nil, builder.Grid(5, 5))

	_, err := simplify.Simplify(m, simplify.WithStop(simplify.NeverStop()))
	require.NoError(t, err)

	for f := 0; f < m.NumFaceIDs(); f++ {
		if m.IsFaceRemoved(halfedge.FaceID(f)) {
			continue
		}
		assert.GreaterOrEqual(t, m.FaceNormal(halfedge.FaceID(f)).Z, 0.0, "face %d", f)
	}
}

func TestSimplify_Deterministic(t *testing.T) {
	src := mustBuild(t, []builder.BuilderOption{builder.WithSeed(9), builder.WithJitter(0.3)}, builder.Grid(8, 8))

	run := func() ([]r3.Vec, [][3]int) {
		m := src.Clone()
		_, err := simplify.Simplify(m, simplify.WithStop(simplify.EdgeRatioStop(0.4)))
		require.NoError(t, err)
		return m.Compact()
	}
	p1, t1 := run()
	p2, t2 := run()
	assert.Equal(t, p1, p2)
	assert.Equal(t, t1, t2)
}

func TestSimplify_CostStop(t *testing.T) {
	// Grid edges have squared lengths 1 (sides) and 2 (diagonals).
	m := mustBuild(t, nil, builder.Grid(4, 4))

	a := &auditor{t: t}
	res, err := simplify.Simplify(m, simplify.WithStop(simplify.CostStop(0.5)), simplify.WithVisitor(a))
	require.NoError(t, err)
	assert.Equal(t, simplify.Stopped, res.Outcome)
	assert.Zero(t, res.Collapses)
}

func TestSimplify_DecliningPolicies(t *testing.T) {
	m := mustBuild(t, nil, builder.PlatonicSolid(builder.Octahedron))

	res, err := simplify.Simplify(m,
		simplify.WithStop(simplify.NeverStop()),
		simplify.WithPlacement(simplify.PlacementFunc(func(*simplify.Profile) (r3.Vec, bool) { return r3.Vec{}, false })),
	)
	require.NoError(t, err)
	assert.Equal(t, simplify.Finished, res.Outcome)
	assert.Zero(t, res.Collapses)

	res, err = simplify.Simplify(m,
		simplify.WithStop(simplify.NeverStop()),
		simplify.WithCost(simplify.CostFunc(func(*simplify.Profile, r3.Vec) (float64, bool) { return 0, false })),
	)
	require.NoError(t, err)
	assert.Zero(t, res.Collapses)
	assert.Equal(t, 12, m.EdgeCount())
}

func TestStopPolicies(t *testing.T) {
	assert.True(t, simplify.EdgeCountStop(10).ShouldStop(0, nil, 100, 10))
	assert.False(t, simplify.EdgeCountStop(10).ShouldStop(0, nil, 100, 11))
	assert.True(t, simplify.EdgeRatioStop(0.5).ShouldStop(0, nil, 100, 49))
	assert.False(t, simplify.EdgeRatioStop(0.5).ShouldStop(0, nil, 100, 50))
	assert.True(t, simplify.CostStop(1).ShouldStop(1.5, nil, 0, 0))
	assert.False(t, simplify.CostStop(1).ShouldStop(1, nil, 0, 0))
	assert.False(t, simplify.NeverStop().ShouldStop(math.Inf(1), nil, 0, 0))
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { simplify.WithCost(nil) })
	assert.Panics(t, func() { simplify.WithPlacement(nil) })
	assert.Panics(t, func() { simplify.WithStop(nil) })
	assert.Panics(t, func() { simplify.WithVisitor(nil) })
	assert.Panics(t, func() { simplify.WithMaxNormalDeviation(0) })
	assert.Panics(t, func() { simplify.WithMaxNormalDeviation(math.Pi) })
	assert.Panics(t, func() { simplify.EdgeRatioStop(0) })
	assert.Panics(t, func() { simplify.EdgeRatioStop(1.5) })
	assert.NotPanics(t, func() { simplify.WithMaxNormalDeviation(math.Pi / 2) })
}

func TestOutcome_String(t *testing.T) {
	assert.Equal(t, "finished", simplify.Finished.String())
	assert.Equal(t, "stopped", simplify.Stopped.String())
	assert.Equal(t, "unknown", simplify.Outcome(7).String())
}
