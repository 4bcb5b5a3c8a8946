package simplify

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Profile is a snapshot of an edge's neighbourhood, built fresh for every
// evaluation. For a border edge v0→v1 is oriented so that the face lies on
// its left; vR and the right face are then absent.
//
//	        vL
//	      ↗    ↘
//	   v0 ──────▶ v1
//	      ↖    ↙
//	        vR
type Profile struct {
	mesh *halfedge.Mesh

	v0v1, v1v0     halfedge.HalfedgeID
	v0, v1, vL, vR halfedge.VertexID
	p0, p1         r3.Vec

	leftFace, rightFace halfedge.FaceID

	edgeBorder, v0Border, v1Border bool
	v0Constrained, v1Constrained   bool
}

// Mesh returns the mesh being simplified. Read only.
func (p *Profile) Mesh() *halfedge.Mesh { return p.mesh }

// Edge returns the id of the profiled edge.
func (p *Profile) Edge() halfedge.EdgeID { return halfedge.EdgeOf(p.v0v1) }

// V0V1 returns the halfedge from v0 to v1; contraction keeps v0.
func (p *Profile) V0V1() halfedge.HalfedgeID { return p.v0v1 }

// V1V0 returns the halfedge from v1 to v0.
func (p *Profile) V1V0() halfedge.HalfedgeID { return p.v1v0 }

func (p *Profile) V0() halfedge.VertexID { return p.v0 }
func (p *Profile) V1() halfedge.VertexID { return p.v1 }

// VL returns the apex of the left face, or halfedge.NoVertex.
func (p *Profile) VL() halfedge.VertexID { return p.vL }

// VR returns the apex of the right face, or halfedge.NoVertex.
func (p *Profile) VR() halfedge.VertexID { return p.vR }

func (p *Profile) P0() r3.Vec { return p.p0 }
func (p *Profile) P1() r3.Vec { return p.p1 }

func (p *Profile) LeftFace() halfedge.FaceID  { return p.leftFace }
func (p *Profile) RightFace() halfedge.FaceID { return p.rightFace }

func (p *Profile) HasLeftFace() bool  { return p.leftFace != halfedge.NoFace }
func (p *Profile) HasRightFace() bool { return p.rightFace != halfedge.NoFace }

// IsEdgeBorder reports whether the edge lacks a face on one side.
func (p *Profile) IsEdgeBorder() bool { return p.edgeBorder }

func (p *Profile) IsV0Border() bool { return p.v0Border }
func (p *Profile) IsV1Border() bool { return p.v1Border }

// IsV0Constrained reports whether an edge incident to v0 is constrained
// (border edges included under WithFixedBorder).
func (p *Profile) IsV0Constrained() bool { return p.v0Constrained }

// IsV1Constrained is IsV0Constrained for v1.
func (p *Profile) IsV1Constrained() bool { return p.v1Constrained }

// profile builds the Profile of e against the current mesh.
func (r *runner) profile(e halfedge.EdgeID) Profile {
	m := r.mesh
	h := halfedge.PrimaryHalfedge(e)
	if m.IsBorder(h) {
		h = halfedge.Opposite(h)
	}
	o := halfedge.Opposite(h)

	p := Profile{
		mesh:      m,
		v0v1:      h,
		v1v0:      o,
		v0:        m.Source(h),
		v1:        m.Target(h),
		vL:        halfedge.NoVertex,
		vR:        halfedge.NoVertex,
		leftFace:  m.Face(h),
		rightFace: m.Face(o),
	}
	p.p0, p.p1 = m.Point(p.v0), m.Point(p.v1)
	if p.HasLeftFace() {
		p.vL = m.Target(m.Next(h))
	}
	if p.HasRightFace() {
		p.vR = m.Target(m.Next(o))
	}
	p.edgeBorder = m.IsBorderEdge(e)
	p.v0Border = m.IsBorderVertex(p.v0)
	p.v1Border = m.IsBorderVertex(p.v1)
	if r.hasConstraints() {
		p.v0Constrained = r.isConstrainedVertex(p.v0)
		p.v1Constrained = r.isConstrainedVertex(p.v1)
	}
	return p
}
