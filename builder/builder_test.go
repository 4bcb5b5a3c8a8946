package builder_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/builder"
)

func TestFixtures_Counts(t *testing.T) {
	tests := []struct {
		name    string
		con     builder.Constructor
		v, e, f int
		closed  bool
	}{
		{"triangle", builder.Triangle(), 3, 3, 1, false},
		{"tetrahedron", builder.PlatonicSolid(builder.Tetrahedron), 4, 6, 4, true},
		{"cube", builder.PlatonicSolid(builder.Cube), 8, 18, 12, true},
		{"octahedron", builder.PlatonicSolid(builder.Octahedron), 6, 12, 8, true},
		{"icosahedron", builder.PlatonicSolid(builder.Icosahedron), 12, 30, 20, true},
		{"bipyramid 5", builder.Bipyramid(5), 7, 15, 10, true},
		{"grid 1x1", builder.Grid(1, 1), 4, 5, 2, false},
		{"grid 3x4", builder.Grid(3, 4), 20, 43, 24, false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m, err := builder.BuildMesh(nil, tc.con)
			require.NoError(t, err)
			assert.Equal(t, tc.v, m.VertexCount())
			assert.Equal(t, tc.e, m.EdgeCount())
			assert.Equal(t, tc.f, m.FaceCount())
			assert.Equal(t, tc.closed, m.IsClosed())
			assert.NoError(t, m.Check())
		})
	}
}

func TestPlatonic_OutwardNormals(t *testing.T) {
	for _, name := range []builder.PlatonicName{builder.Tetrahedron, builder.Cube, builder.Octahedron, builder.Icosahedron} {
		s, err := builder.BuildSoup(nil, builder.PlatonicSolid(name))
		require.NoError(t, err, name.String())

		var centre r3.Vec
		for _, p := range s.Points {
			centre = r3.Add(centre, p)
		}
		centre = r3.Scale(1/float64(len(s.Points)), centre)

		for _, tri := range s.Triangles {
			a, b, c := s.Points[tri[0]], s.Points[tri[1]], s.Points[tri[2]]
			n := r3.Cross(r3.Sub(b, a), r3.Sub(c, a))
			assert.Greater(t, r3.Dot(n, r3.Sub(a, centre)), 0.0, "%s face %v", name, tri)
		}
	}
}

func TestBuild_Errors(t *testing.T) {
	tests := []struct {
		name string
		cons []builder.Constructor
		opts []builder.BuilderOption
		want error
	}{
		{"grid rows", []builder.Constructor{builder.Grid(0, 3)}, nil, builder.ErrTooFewCells},
		{"grid cols", []builder.Constructor{builder.Grid(3, -1)}, nil, builder.ErrTooFewCells},
		{"bipyramid", []builder.Constructor{builder.Bipyramid(2)}, nil, builder.ErrTooFewCells},
		{"unknown solid", []builder.Constructor{builder.PlatonicSolid(builder.PlatonicName(42))}, nil, builder.ErrOptionViolation},
		{"nil constructor", []builder.Constructor{nil}, nil, builder.ErrConstructFailed},
		{"jitter without rng", []builder.Constructor{builder.Triangle()}, []builder.BuilderOption{builder.WithJitter(0.1)}, builder.ErrNeedRandSource},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := builder.BuildMesh(tc.opts, tc.cons...)
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestBuild_Components(t *testing.T) {
	m, err := builder.BuildMesh(nil,
		builder.PlatonicSolid(builder.Tetrahedron),
		builder.Triangle(),
	)
	require.NoError(t, err)
	assert.Equal(t, 7, m.VertexCount())
	assert.Equal(t, 9, m.EdgeCount())
	assert.Equal(t, 5, m.FaceCount())
	assert.False(t, m.IsClosed())
	assert.NoError(t, m.Check())
}

func TestBuild_Transform(t *testing.T) {
	s, err := builder.BuildSoup(
		[]builder.BuilderOption{builder.WithScale(2), builder.WithOffset(r3.Vec{X: 1, Y: 1, Z: 1})},
		builder.Triangle(),
	)
	require.NoError(t, err)
	assert.Equal(t, []r3.Vec{{X: 1, Y: 1, Z: 1}, {X: 3, Y: 1, Z: 1}, {X: 1, Y: 3, Z: 1}}, s.Points)
}

func TestBuild_JitterDeterministic(t *testing.T) {
	build := func(seed int64) builder.Soup {
		s, err := builder.BuildSoup(
			[]builder.BuilderOption{builder.WithSeed(seed), builder.WithJitter(0.05)},
			builder.Grid(2, 2),
		)
		require.NoError(t, err)
		return s
	}

	a, b, c := build(1), build(1), build(2)
	assert.Equal(t, a, b)
	assert.NotEqual(t, a.Points, c.Points)

	plain, err := builder.BuildSoup(nil, builder.Grid(2, 2))
	require.NoError(t, err)
	for i := range a.Points {
		d := r3.Sub(a.Points[i], plain.Points[i])
		assert.LessOrEqual(t, d.X*d.X, 0.05*0.05)
		assert.LessOrEqual(t, d.Y*d.Y, 0.05*0.05)
		assert.LessOrEqual(t, d.Z*d.Z, 0.05*0.05)
	}
}

func TestOptions_Panics(t *testing.T) {
	assert.Panics(t, func() { builder.WithRand(nil) })
	assert.Panics(t, func() { builder.WithScale(0) })
	assert.Panics(t, func() { builder.WithScale(-1) })
	assert.Panics(t, func() { builder.WithJitter(-0.1) })
	assert.NotPanics(t, func() { builder.WithJitter(0) })
}
