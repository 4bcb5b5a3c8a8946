// Package meshio reads and writes triangle meshes in the Object File Format
// (OFF).
//
// Reading accepts the ASCII dialect:
//
//	OFF
//	# comments run to the end of the line
//	<vertices> <faces> <edges>
//	x y z            (one line per vertex)
//	k i0 i1 ... ik-1 (one line per face)
//
// The edge count is ignored. Polygons with more than three corners are fan
// triangulated around their first corner. Per-face color values are not
// supported. Writing always emits triangles.
//
// Malformed input is reported with ErrBadHeader, ErrTruncated or ErrBadFace,
// wrapped with the position of the problem; test with errors.Is.
package meshio
