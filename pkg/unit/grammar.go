package unit

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// literalLexer splits a SPICE number literal such as "4.7uF" or "1e-3".
var literalLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Number", Pattern: `[-+]?(\d+\.?\d*|\.\d+)([eE][-+]?\d+)?`},
	{Name: "Suffix", Pattern: `[a-zA-Z]+`},
	{Name: "Whitespace", Pattern: `\s+`},
})

// literal is the parsed form: a number and an optional scale/unit suffix.
type literal struct {
	Number string `parser:"@Number"`
	Suffix string `parser:"@Suffix?"`
}

var literalParser = participle.MustBuild[literal](
	participle.Lexer(literalLexer),
	participle.Elide("Whitespace"),
)
