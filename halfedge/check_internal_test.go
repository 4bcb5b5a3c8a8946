package halfedge

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/spatial/r3"
)

func TestCheck_DetectsCorruption(t *testing.T) {
	fresh := func() *Mesh {
		m, err := FromTriangles(
			[]r3.Vec{{X: 0}, {X: 1}, {Y: 1}, {Z: 1}},
			[][3]int{{0, 2, 1}, {0, 1, 3}, {0, 3, 2}, {1, 2, 3}},
		)
		require.NoError(t, err)
		require.NoError(t, m.Check())
		return m
	}

	tests := []struct {
		name   string
		tamper func(m *Mesh)
	}{
		{"edge counter", func(m *Mesh) { m.nEdges++ }},
		{"face counter", func(m *Mesh) { m.nFaces-- }},
		{"vertex counter", func(m *Mesh) { m.nVertices++ }},
		{"broken prev", func(m *Mesh) { m.halfedges[0].prev = m.halfedges[0].next }},
		{"foreign anchor", func(m *Mesh) { m.vertices[0].halfedge = m.vertices[1].halfedge }},
		{"dangling target", func(m *Mesh) { m.vertices[3].removed = true; m.nVertices-- }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			m := fresh()
			tc.tamper(m)
			assert.ErrorIs(t, m.Check(), ErrInconsistent)
		})
	}
}
