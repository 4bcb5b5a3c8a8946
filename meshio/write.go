package meshio

import (
	"bufio"
	"io"
	"strconv"

	"github.com/pkg/errors"

	"github.com/katalvlaran/lvmesh/halfedge"
)

// WriteOFF writes the live part of m to w as an OFF document. Vertices and
// faces are renumbered densely in ascending id order.
func WriteOFF(w io.Writer, m *halfedge.Mesh) error {
	points, triangles := m.Compact()

	bw := bufio.NewWriter(w)
	bw.WriteString("OFF\n")
	writeInts(bw, len(points), len(triangles), m.EdgeCount())
	for _, p := range points {
		writeFloats(bw, p.X, p.Y, p.Z)
	}
	for _, t := range triangles {
		writeInts(bw, 3, t[0], t[1], t[2])
	}
	return errors.Wrap(bw.Flush(), "meshio: writing OFF")
}

func writeInts(bw *bufio.Writer, vals ...int) {
	for i, v := range vals {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.Itoa(v))
	}
	bw.WriteByte('\n')
}

func writeFloats(bw *bufio.Writer, vals ...float64) {
	for i, v := range vals {
		if i > 0 {
			bw.WriteByte(' ')
		}
		bw.WriteString(strconv.FormatFloat(v, 'g', -1, 64))
	}
	bw.WriteByte('\n')
}
