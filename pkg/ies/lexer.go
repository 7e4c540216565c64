package ies

import (
	"strings"

	"github.com/alecthomas/participle/v2/lexer"
)

// DataLexer splits a line of the numeric block into values. IES files
// separate values with spaces, tabs, commas or semicolons.
var DataLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Delim", Pattern: `[ \t,;]+`},
	{Name: "Value", Pattern: `[^ \t,;]+`},
})

var valueToken = DataLexer.Symbols()["Value"]

// splitLine appends the values found in line to tokens.
func splitLine(tokens []string, line string) ([]string, error) {
	lex, err := DataLexer.LexString("", line)
	if err != nil {
		return tokens, err
	}
	all, err := lexer.ConsumeAll(lex)
	if err != nil {
		return tokens, err
	}
	for _, tok := range all {
		if tok.Type == valueToken {
			tokens = append(tokens, tok.Value)
		}
	}
	return tokens, nil
}

// lineHasNumbers reports whether line belongs to the numeric block: after
// leading spaces it must start with a digit, sign or separator. Header lines
// that merely contain numbers ("[LAMP] 2x 36W") do not qualify.
func lineHasNumbers(line string) bool {
	firstNumber := strings.IndexAny(line, "0123456789-.,")
	if firstNumber < 0 {
		return false
	}
	firstNonSpace := strings.IndexFunc(line, func(r rune) bool { return r != ' ' })
	return firstNonSpace == firstNumber
}
