package yale

import "strings"

// Token is either a Unit or a Passthrough.
type Token interface {
	String() string
	token()
}

// Unit is the romanization of one jamo.
type Unit string

// Passthrough is a rune copied to the output verbatim.
type Passthrough rune

func (u Unit) String() string        { return string(u) }
func (p Passthrough) String() string { return string(rune(p)) }

func (Unit) token()        {}
func (Passthrough) token() {}

func tokenize(stream []symbol) []Token {
	tokens := make([]Token, len(stream))
	for i, s := range stream {
		if s.jamo {
			if y, ok := yaleTable[s.r]; ok {
				tokens[i] = Unit(y)
				continue
			}
		}
		tokens[i] = Passthrough(s.r)
	}
	return tokens
}

// Tokenize decomposes text and maps every resulting position to a token,
// without applying the labial rule. Only precomposed syllables are
// decomposed; any other rune, including compatibility jamo typed on their
// own, becomes a Passthrough token.
func Tokenize(text string) []Token {
	return tokenize(decompose(text))
}

// Join concatenates tokens. A non-empty sep is written between two
// consecutive Units and nowhere else.
func Join(tokens []Token, sep string) string {
	var b strings.Builder
	for i, t := range tokens {
		b.WriteString(t.String())
		if sep == "" || i+1 == len(tokens) {
			continue
		}
		_, cur := t.(Unit)
		_, next := tokens[i+1].(Unit)
		if cur && next {
			b.WriteString(sep)
		}
	}
	return b.String()
}
