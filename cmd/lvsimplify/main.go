// Command lvsimplify reduces an OFF triangle mesh by greedy edge collapse.
//
// Usage:
//
//	lvsimplify -in bunny.off -out bunny-small.off -ratio 0.25
//	lvsimplify -in sheet.off -edges 500 -keep-border -v 2
//
// With -edges the run stops once the live edge count reaches the target;
// otherwise it stops once the edge count drops below ratio of the input.
// Reading from stdin and writing to stdout is the default.
package main

import (
	"flag"
	"fmt"
	"io"
	"math"
	"os"

	"github.com/plan-systems/klog"

	"github.com/katalvlaran/lvmesh/halfedge"
	"github.com/katalvlaran/lvmesh/meshio"
	"github.com/katalvlaran/lvmesh/simplify"
)

type config struct {
	in, out      string
	ratio        float64
	edges        int
	keepBorder   bool
	maxDeviation float64
}

func main() {
	fset := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	klog.InitFlags(fset)
	fset.Set("logtostderr", "true")
	klog.SetFormatter(&klog.FmtConstWidth{
		FileNameCharWidth: 16,
		UseColor:          true,
	})

	var cfg config
	fset.StringVar(&cfg.in, "in", "-", "input OFF file (- for stdin)")
	fset.StringVar(&cfg.out, "out", "-", "output OFF file (- for stdout)")
	fset.Float64Var(&cfg.ratio, "ratio", 0.5, "stop when edges fall below this fraction of the input, in (0,1]")
	fset.IntVar(&cfg.edges, "edges", 0, "stop when at most this many edges remain (overrides -ratio)")
	fset.BoolVar(&cfg.keepBorder, "keep-border", false, "never move or remove border vertices")
	fset.Float64Var(&cfg.maxDeviation, "max-deviation-deg", 90, "reject collapses that turn a face normal by more than this many degrees, in (0,90]")
	fset.Parse(os.Args[1:])

	err := run(cfg)
	klog.Flush()
	if err != nil {
		fmt.Fprintln(os.Stderr, "lvsimplify:", err)
		os.Exit(1)
	}
}

func run(cfg config) error {
	opts, err := cfg.options()
	if err != nil {
		return err
	}

	m, err := readMesh(cfg.in)
	if err != nil {
		return err
	}
	klog.V(1).Infof("read %s: V=%d E=%d F=%d", cfg.in, m.VertexCount(), m.EdgeCount(), m.FaceCount())

	res, err := simplify.Simplify(m, opts...)
	if err != nil {
		return err
	}
	if err := m.Check(); err != nil {
		return fmt.Errorf("simplified mesh failed its consistency check: %w", err)
	}
	klog.Infof("%s after %d collapses: V %d→%d, E %d→%d",
		res.Outcome, res.Collapses, res.InitialVertices, res.FinalVertices, res.InitialEdges, res.FinalEdges)

	return writeMesh(cfg.out, m)
}

// options maps command-line settings onto simplify options.
func (cfg config) options() ([]simplify.Option, error) {
	var opts []simplify.Option

	switch {
	case cfg.edges < 0:
		return nil, fmt.Errorf("-edges must be non-negative, got %d", cfg.edges)
	case cfg.edges > 0:
		opts = append(opts, simplify.WithStop(simplify.EdgeCountStop(cfg.edges)))
	case cfg.ratio <= 0 || cfg.ratio > 1:
		return nil, fmt.Errorf("%w: -ratio %g", simplify.ErrBadRatio, cfg.ratio)
	default:
		opts = append(opts, simplify.WithStop(simplify.EdgeRatioStop(cfg.ratio)))
	}

	if cfg.maxDeviation <= 0 || cfg.maxDeviation > 90 {
		return nil, fmt.Errorf("%w: -max-deviation-deg %g", simplify.ErrBadDeviation, cfg.maxDeviation)
	}
	opts = append(opts, simplify.WithMaxNormalDeviation(cfg.maxDeviation/180*math.Pi))

	if cfg.keepBorder {
		opts = append(opts, simplify.WithFixedBorder(), simplify.WithPlacement(simplify.ConstrainedPlacement{}))
	}

	opts = append(opts, simplify.WithVisitor(&logVisitor{}))
	return opts, nil
}

// logVisitor reports rejected edges and the stop condition through klog.
type logVisitor struct {
	simplify.BaseVisitor
	rejected int
}

func (lv *logVisitor) OnNonCollapsible(p *simplify.Profile) {
	lv.rejected++
	klog.V(3).Infof("edge %d (%d→%d) not collapsible", p.Edge(), p.V0(), p.V1())
}

func (lv *logVisitor) OnStopConditionReached(p *simplify.Profile) {
	klog.V(1).Infof("stop condition reached at edge %d; %d edges were rejected", p.Edge(), lv.rejected)
}

func readMesh(path string) (*halfedge.Mesh, error) {
	var r io.Reader = os.Stdin
	if path != "-" {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		r = f
	}
	return meshio.ReadOFF(r)
}

func writeMesh(path string, m *halfedge.Mesh) error {
	if path == "-" {
		return meshio.WriteOFF(os.Stdout, m)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := meshio.WriteOFF(f, m); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
