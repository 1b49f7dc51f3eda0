package techfile

import (
	"github.com/alecthomas/participle/v2/lexer"
)

// TechLexer defines the lexical structure of .tech profile files: a small
// brace-delimited format with "--" line comments.
var TechLexer = lexer.MustSimple([]lexer.SimpleRule{
	// Comments - to end of line
	{Name: "Comment", Pattern: `--[^\n]*`},

	// Whitespace
	{Name: "Whitespace", Pattern: `[\s\t\n\r]+`},

	// Keywords
	{Name: "KwTechnology", Pattern: `(?i)\btechnology\b`},

	// Punctuation
	{Name: "LBrace", Pattern: `\{`},
	{Name: "RBrace", Pattern: `\}`},
	{Name: "Comma", Pattern: `,`},

	// Literals
	{Name: "String", Pattern: `"(?:[^"\\]|\\.)*"`},

	// Numbers - Real must come before Integer
	{Name: "Real", Pattern: `[-+]?[0-9]+\.[0-9]+([eE][-+]?[0-9]+)?`},
	{Name: "Integer", Pattern: `[-+]?[0-9]+`},

	// Identifiers (setting keys, layer names, style names)
	{Name: "Ident", Pattern: `[a-zA-Z][a-zA-Z0-9_]*`},
})
