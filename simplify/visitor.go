package simplify

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// Visitor observes a run. Hooks must not mutate the mesh. A Profile passed to
// a hook is only valid during the call.
type Visitor interface {
	// OnSelected is called when the cheapest resolved edge is popped, before
	// the stop policy sees it.
	OnSelected(p *Profile, cost float64, initialEdges, currentEdges int)

	// OnCollapsing is called after validation, right before contraction.
	OnCollapsing(p *Profile, placement r3.Vec)

	// OnCollapsed is called after contraction with the surviving vertex,
	// already moved to the placement. p describes the edge as it was.
	OnCollapsed(p *Profile, kept halfedge.VertexID)

	// OnNonCollapsible is called when a popped edge fails validation.
	OnNonCollapsible(p *Profile)

	// OnStopConditionReached is called once when the stop policy fires.
	OnStopConditionReached(p *Profile)
}

// BaseVisitor implements every Visitor hook as a no-op. Embed it to override
// only the hooks of interest.
type BaseVisitor struct{}

func (BaseVisitor) OnSelected(*Profile, float64, int, int) {}
func (BaseVisitor) OnCollapsing(*Profile, r3.Vec) {}
func (BaseVisitor) OnCollapsed(*Profile, halfedge.VertexID) {}
func (BaseVisitor) OnNonCollapsible(*Profile) {}
func (BaseVisitor) OnStopConditionReached(*Profile) {}
