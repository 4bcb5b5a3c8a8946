package simplify_test

import (
	"testing"

	"github.com/katalvlaran/lvmesh/builder"
	"github.com/katalvlaran/lvmesh/simplify"
)

func BenchmarkSimplify_Grid32(b *testing.B) {
	src := mustBuild(b, []builder.BuilderOption{builder.WithSeed(1), builder.WithJitter(0.2)}, builder.Grid(32, 32))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		b.StopTimer()
		m := src.Clone()
		b.StartTimer()
		if _, err := simplify.Simplify(m, simplify.WithStop(simplify.EdgeRatioStop(0.25))); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkSimplify_Icosahedron(b *testing.B) {
	src := mustBuild(b, nil, builder.PlatonicSolid(builder.Icosahedron))

	b.ReportAllocs()
	for i := 0; i < b.N; i++ {
		m := src.Clone()
		if _, err := simplify.Simplify(m, simplify.WithStop(simplify.NeverStop())); err != nil {
			b.Fatal(err)
		}
	}
}
