package halfedge

import (
	"errors"

	"gonum.org/v1/gonum/spatial/r3"
)

// Sentinel errors for mesh construction and editing.
var (
	// ErrVertexIndex indicates a face referenced a vertex outside the point list.
	ErrVertexIndex = errors.New("halfedge: vertex index out of range")

	// ErrDegenerateFace indicates a face repeats one of its vertices.
	ErrDegenerateFace = errors.New("halfedge: face repeats a vertex")

	// ErrNonManifoldEdge indicates an edge shared by more than two faces, or two
	// faces that traverse a shared edge in the same direction.
	ErrNonManifoldEdge = errors.New("halfedge: non-manifold or inconsistently oriented edge")

	// ErrNonManifoldVertex indicates a vertex whose incident faces do not form a
	// single fan.
	ErrNonManifoldVertex = errors.New("halfedge: non-manifold vertex")

	// ErrNotContractible indicates ContractEdge was asked to contract a removed
	// edge or an edge with no incident face.
	ErrNotContractible = errors.New("halfedge: edge cannot be contracted")

	// ErrInconsistent is returned by Check when the connectivity is corrupt.
	ErrInconsistent = errors.New("halfedge: inconsistent connectivity")
)

// HalfedgeID addresses a directed halfedge.
type HalfedgeID int

// EdgeID addresses an undirected edge (a pair of opposite halfedges).
type EdgeID int

// VertexID addresses a vertex.
type VertexID int

// FaceID addresses a triangular face.
type FaceID int

// Absent references.
const (
	NoHalfedge HalfedgeID = -1
	NoVertex   VertexID   = -1
	NoFace     FaceID     = -1
)

// EdgeOf returns the undirected edge containing h.
func EdgeOf(h HalfedgeID) EdgeID { return EdgeID(h >> 1) }

// PrimaryHalfedge returns the even halfedge of e.
func PrimaryHalfedge(e EdgeID) HalfedgeID { return HalfedgeID(e << 1) }

// IsPrimary reports whether h is the even halfedge of its edge.
func IsPrimary(h HalfedgeID) bool { return h&1 == 0 }

// Opposite returns the other halfedge of h's edge.
func Opposite(h HalfedgeID) HalfedgeID { return h ^ 1 }

// EdgeFlags is a boolean map keyed by EdgeID, used for border and constraint
// marks. A nil EdgeFlags reads as all-false.
type EdgeFlags []bool

// NewEdgeFlags returns an all-false map sized for m.
func NewEdgeFlags(m *Mesh) EdgeFlags { return make(EdgeFlags, m.NumEdgeIDs()) }

// Has reports whether e is marked.
func (f EdgeFlags) Has(e EdgeID) bool {
	return int(e) < len(f) && e >= 0 && f[e]
}

// Set marks or unmarks e.
func (f EdgeFlags) Set(e EdgeID, v bool) { f[e] = v }

// Count returns the number of marked edges among the live edges of m.
func (f EdgeFlags) Count(m *Mesh) int {
	n := 0
	for e := range f {
		if f[e] && !m.IsEdgeRemoved(EdgeID(e)) {
			n++
		}
	}
	return n
}

type halfedge struct {
	next   HalfedgeID
	prev   HalfedgeID
	vertex VertexID // target
	face   FaceID   // NoFace on the border
}

type vertex struct {
	halfedge HalfedgeID // an outgoing halfedge, a border one when the vertex is on the border
	point    r3.Vec
	removed  bool
}

type face struct {
	halfedge HalfedgeID
	removed  bool
}

// Mesh is a manifold triangle mesh in halfedge representation.
type Mesh struct {
	halfedges   []halfedge
	edgeRemoved []bool
	vertices    []vertex
	faces       []face

	// live element counters
	nVertices int
	nEdges    int
	nFaces    int
}
