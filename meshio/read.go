package meshio

import (
	"io"
	"math"

	"github.com/pkg/errors"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// ReadOFF decodes an OFF document from r and builds a halfedge mesh from it.
// Decoding errors wrap ErrBadHeader, ErrTruncated or ErrBadFace; topology
// errors wrap the halfedge sentinels.
func ReadOFF(r io.Reader) (*halfedge.Mesh, error) {
	points, triangles, err := DecodeOFF(r)
	if err != nil {
		return nil, err
	}
	m, err := halfedge.FromTriangles(points, triangles)
	if err != nil {
		return nil, errors.Wrap(err, "meshio: building mesh")
	}
	return m, nil
}

// DecodeOFF decodes an OFF document into a point list and a triangle list.
func DecodeOFF(r io.Reader) ([]r3.Vec, [][3]int, error) {
	doc, err := offParser.Parse("", r)
	if err != nil {
		return nil, nil, errors.Wrap(ErrBadHeader, err.Error())
	}
	d := decoder{nums: doc.Numbers}
	return d.decode()
}

// decoder walks the flat number stream of an OFF document.
type decoder struct {
	nums []float64
	pos  int
}

func (d *decoder) next() (float64, bool) {
	if d.pos >= len(d.nums) {
		return 0, false
	}
	v := d.nums[d.pos]
	d.pos++
	return v, true
}

// nextIndex reads a value that must be a non-negative integer.
func (d *decoder) nextIndex() (int, bool, bool) {
	v, ok := d.next()
	if !ok {
		return 0, false, false
	}
	if v < 0 || v != math.Trunc(v) || v > math.MaxInt32 {
		return 0, true, false
	}
	return int(v), true, true
}

func (d *decoder) decode() ([]r3.Vec, [][3]int, error) {
	// 1) Header counts.
	var counts [3]int
	for i := range counts {
		n, present, valid := d.nextIndex()
		if !present {
			return nil, nil, errors.Wrap(ErrBadHeader, "missing element counts")
		}
		if !valid {
			return nil, nil, errors.Wrapf(ErrBadHeader, "count %d is not a non-negative integer", i)
		}
		counts[i] = n
	}
	nv, nf := counts[0], counts[1]

	// Every vertex takes three values and every face at least one, so counts
	// beyond what the body holds are rejected before anything is sized by them.
	if rest := len(d.nums) - d.pos; nv > rest/3 || nf > rest-3*nv {
		return nil, nil, errors.Wrapf(ErrTruncated, "header declares %d vertices and %d faces, body holds %d values", nv, nf, rest)
	}

	// 2) Vertices.
	points := make([]r3.Vec, nv)
	for v := range points {
		var xyz [3]float64
		for k := range xyz {
			c, ok := d.next()
			if !ok {
				return nil, nil, errors.Wrapf(ErrTruncated, "vertex %d of %d", v, nv)
			}
			xyz[k] = c
		}
		points[v] = r3.Vec{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	}

	// 3) Faces, fan triangulated.
	triangles := make([][3]int, 0, nf)
	corners := make([]int, 0, 4)
	for f := 0; f < nf; f++ {
		k, present, valid := d.nextIndex()
		if !present {
			return nil, nil, errors.Wrapf(ErrTruncated, "face %d of %d", f, nf)
		}
		if !valid || k < 3 {
			return nil, nil, errors.Wrapf(ErrBadFace, "face %d: corner count", f)
		}
		corners = corners[:0]
		for i := 0; i < k; i++ {
			c, present, valid := d.nextIndex()
			if !present {
				return nil, nil, errors.Wrapf(ErrTruncated, "face %d corner %d", f, i)
			}
			if !valid {
				return nil, nil, errors.Wrapf(ErrBadFace, "face %d corner %d", f, i)
			}
			corners = append(corners, c)
		}
		for i := 1; i+1 < k; i++ {
			triangles = append(triangles, [3]int{corners[0], corners[i], corners[i+1]})
		}
	}

	if d.pos != len(d.nums) {
		return nil, nil, errors.Wrapf(ErrBadFace, "%d values after the last face", len(d.nums)-d.pos)
	}
	return points, triangles, nil
}
