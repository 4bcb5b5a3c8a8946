package meshio

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// offDocument is the token-level shape of an OFF file: the keyword followed by
// a flat run of numbers. Structure is recovered from the counts in decode.
type offDocument struct {
	Magic   string    `parser:"@Magic"`
	Numbers []float64 `parser:"@Number*"`
}

var offLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Comment", Pattern: `#[^\n]*`},
	{Name: "Magic", Pattern: `OFF`},
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Whitespace", Pattern: `\s+`},
})

var offParser = participle.MustBuild[offDocument](
	participle.Lexer(offLexer),
	participle.Elide("Whitespace", "Comment"),
)
