package simplify

import (
	"github.com/emirpasic/gods/sets/hashset"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// isCollapsible reports whether contracting p's edge and moving the survivor
// to placement keeps the mesh manifold and no surrounding face folds over.
//
// Rules, in order:
//  1. An edge without faces never collapses.
//  2. With constraints, an edge joining two constrained vertices is rejected.
//  3. An isolated triangle collapses unconditionally.
//  4. An edge of a tetrahedron collapses unconditionally.
//  5. An interior edge whose two link vertices coincide is rejected.
//  6. Link condition: every common neighbour of v0 and v1 must be the apex of
//     one of the edge's faces.
//  7. An interior edge joining two border vertices is rejected.
//  8. No surrounding face normal may rotate beyond the configured deviation.
func (r *runner) isCollapsible(p *Profile, placement r3.Vec) bool {
	m := r.mesh

	// 1) Dangling edge.
	if !p.HasLeftFace() && !p.HasRightFace() {
		return false
	}

	// 2) Constrained endpoints.
	if r.hasConstraints() && p.v0Constrained && p.v1Constrained {
		return false
	}

	// 3) Open triangle: all three sides of the only face lie on the border.
	if p.edgeBorder {
		if m.IsBorderEdge(halfedge.EdgeOf(m.Next(p.v0v1))) && m.IsBorderEdge(halfedge.EdgeOf(m.Prev(p.v0v1))) {
			return true
		}
	}

	if !p.edgeBorder {
		// 4) Tetrahedron.
		if r.isTetrahedron(p) {
			return true
		}
		// 5) Pillow: both faces share their third vertex.
		if p.vL == p.vR {
			return false
		}
	}

	// 6) Link condition.
	if !r.satisfiesLinkCondition(p) {
		return false
	}

	// 7) Interior edge pinching the border.
	if !p.edgeBorder && p.v0Border && p.v1Border {
		return false
	}

	// 8) Normal deviation.
	return r.keepsOrientation(p, placement)
}

// isTetrahedron reports whether p's interior edge belongs to a closed
// four-vertex component.
func (r *runner) isTetrahedron(p *Profile) bool {
	m := r.mesh
	for _, v := range [4]halfedge.VertexID{p.v0, p.v1, p.vL, p.vR} {
		if m.Degree(v) != 3 {
			return false
		}
	}
	return m.FindHalfedge(p.vL, p.vR) != halfedge.NoHalfedge
}

// satisfiesLinkCondition checks that the neighbourhoods of v0 and v1 only
// share the apexes of the edge's own faces.
func (r *runner) satisfiesLinkCondition(p *Profile) bool {
	m := r.mesh

	link0 := hashset.New()
	m.ForEachOutgoing(p.v0, func(h halfedge.HalfedgeID) bool {
		if w := m.Target(h); w != p.v1 {
			link0.Add(w)
		}
		return true
	})

	ok := true
	m.ForEachOutgoing(p.v1, func(h halfedge.HalfedgeID) bool {
		w := m.Target(h)
		if w == p.v0 || !link0.Contains(w) {
			return true
		}
		if (w == p.vL && p.HasLeftFace()) || (w == p.vR && p.HasRightFace()) {
			return true
		}
		ok = false
		return false
	})
	return ok
}

// keepsOrientation compares, for every face around v0 or v1 other than the
// two faces on the edge, the normal before and after the moved corner goes to
// placement. Faces that already have zero area are not compared.
func (r *runner) keepsOrientation(p *Profile, placement r3.Vec) bool {
	m := r.mesh

	ok := true
	check := func(v halfedge.VertexID) {
		m.ForEachOutgoing(v, func(h halfedge.HalfedgeID) bool {
			f := m.Face(h)
			if f == halfedge.NoFace || f == p.leftFace || f == p.rightFace {
				return true
			}
			// h = v→a, so the face reads (v, a, b).
			a, b := m.Point(m.Target(h)), m.Point(m.Target(m.Next(h)))
			before := halfedge.TriangleNormal(m.Point(v), a, b)
			after := halfedge.TriangleNormal(placement, a, b)
			if !r.similarNormals(before, after) {
				ok = false
			}
			return ok
		})
	}
	check(p.v0)
	if ok {
		check(p.v1)
	}
	return ok
}

// similarNormals reports whether the angle between the old normal n0 and the
// new normal n1 is within the configured deviation. A degenerate old face
// always passes; a face that would degenerate never does.
func (r *runner) similarNormals(n0, n1 r3.Vec) bool {
	l0, l1 := r3.Norm2(n0), r3.Norm2(n1)
	if l0 == 0 {
		return true
	}
	if l1 == 0 {
		return false
	}
	d := r3.Dot(n0, n1)
	if d <= 0 {
		return false
	}
	return d*d >= r.cos2*l0*l1
}
