// Package lvmesh simplifies manifold triangle meshes by greedy edge collapse.
//
// The module is organized as small packages that build on each other:
//
//	halfedge/   arena-backed halfedge mesh: construction, traversal,
//	            edge contraction and a consistency checker
//	simplify/   the collapse driver: cost-ordered edge queue, validity
//	            rules, neighbour updates, pluggable cost/placement/stop
//	            policies and a visitor for progress hooks
//	builder/    deterministic fixtures (Platonic solids, grids, bipyramids)
//	            with optional scaling, offset and seeded jitter
//	meshio/     OFF reader and writer
//	cmd/lvsimplify   command-line front end
//
// Quick start:
//
//	m, _ := builder.BuildMesh(nil, builder.PlatonicSolid(builder.Icosahedron))
//	res, err := simplify.Simplify(m, simplify.WithStop(simplify.EdgeCountStop(12)))
//
// Each collapse removes one vertex and keeps the surface manifold: an edge is
// only contracted when its endpoints share no neighbour other than the apexes
// of its two faces, and no surrounding face turns past the configured normal
// deviation.
//
//	go get github.com/katalvlaran/lvmesh
package lvmesh
