package yale

import (
	"regexp"
	"strings"

	"github.com/samber/lo"
)

// InterlinearLine pairs the words of one input line with their romanization.
type InterlinearLine struct {
	Words     []string `json:"words"`
	Romanized []string `json:"romanized"`
}

func (l InterlinearLine) Top() string    { return strings.Join(l.Words, " ") }
func (l InterlinearLine) Bottom() string { return strings.Join(l.Romanized, " ") }

// TSV renders the line as two tab-separated rows, Hangul first.
func (l InterlinearLine) TSV() string {
	return strings.Join(l.Words, "\t") + "\n" + strings.Join(l.Romanized, "\t")
}

// Interlinear converts text word by word. Lines are trimmed and blank lines
// dropped; words are split on IsBlank runes.
func Interlinear(text string, opts Options) []InterlinearLine {
	lines := lo.FilterMap(strings.Split(text, "\n"), func(line string, _ int) (string, bool) {
		line = TrimBlank(line)
		return line, line != ""
	})
	return lo.Map(lines, func(line string, _ int) InterlinearLine {
		words := strings.FieldsFunc(line, IsBlank)
		return InterlinearLine{
			Words:     words,
			Romanized: lo.Map(words, func(w string, _ int) string { return Convert(w, opts) }),
		}
	})
}

// whitespace minus \r and \n, including U+3000 and other Unicode spaces
var blanks = regexp.MustCompile(`[\t\v\f\p{Z}\x{FEFF}]+`)

// Tabify replaces each run of whitespace other than line breaks with a tab,
// which pastes into spreadsheets one word per cell.
func Tabify(s string) string {
	return blanks.ReplaceAllString(s, "\t")
}
