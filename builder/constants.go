// Package builder defines shared constants used by mesh constructors, ensuring
// consistent validation and error context across all fixtures.
package builder

//-----------------------------------------------------------------------------
// Constructor name constants
//   used to prefix errors with the constructor name for context.
//-----------------------------------------------------------------------------

const (
	// MethodTriangle is the canonical name for the Triangle constructor.
	MethodTriangle = "Triangle"
	// MethodPlatonicSolid is the canonical name for the PlatonicSolid constructor.
	MethodPlatonicSolid = "PlatonicSolid"
	// MethodBipyramid is the canonical name for the Bipyramid constructor.
	MethodBipyramid = "Bipyramid"
	// MethodGrid is the canonical name for the Grid constructor.
	MethodGrid = "Grid"
)

//-----------------------------------------------------------------------------
// Minimum sizes
//-----------------------------------------------------------------------------

const (
	// MinBipyramidRing is the smallest polygon a bipyramid can be raised on.
	MinBipyramidRing = 3
	// MinGridDim is the minimum number of cells along each grid axis.
	MinGridDim = 1
)
