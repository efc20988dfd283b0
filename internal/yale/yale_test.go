package yale

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name  string
		input string
		opts  Options
		want  string
	}{
		{"two syllables", "한글", Options{}, "hankul"},
		{"separator", "한글", Options{Separator: "."}, "h.a.n.k.u.l"},
		{"separator around space", "한 글", Options{Separator: "."}, "h.a.n k.u.l"},
		{"labial on", "무", Options{LabialRule: true}, "mu"},
		{"labial off", "무", Options{}, "mwu"},
		{"compound coda", "값", Options{}, "kaps"},
		{"compound coda separated", "값", Options{Separator: "-"}, "k-a-p-s"},
		{"compound coda lk", "닭", Options{}, "talk"},
		{"silent onset", "안녕", Options{}, "annyeng"},
		{"silent onset vowel only", "아이", Options{}, "ai"},
		{"empty", "", Options{Separator: "."}, ""},
		{"whitespace only", " \t\r\n　", Options{LabialRule: true, Separator: "."}, ""},
		{"mixed latin", "Hello 세계!", Options{Separator: "."}, "Hello s.ey.k.yey!"},
		{"outer spaces kept", "  한 ", Options{}, "  han "},
		{"first block", "가", Options{}, "ka"},
		{"last block", "힣", Options{}, "hih"},
		{"past last block", "힤", Options{}, "힤"},
		{"separator truncated", "가", Options{Separator: "·x"}, "k·a"},
		{"newline blocks separator", "가\n나", Options{Separator: "."}, "k.a\nn.a"},
		{"phrase", "없습니다", Options{}, "epssupnita"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Convert(tt.input, tt.opts)
			if got != tt.want {
				t.Errorf("Convert(%q, %+v) = %q, want %q", tt.input, tt.opts, got, tt.want)
			}
		})
	}
}

func TestLabialRule(t *testing.T) {
	tests := []struct {
		input string
		on    string
		off   string
	}{
		{"붐", "pum", "pwum"},
		{"뿌리", "ppuli", "ppwuli"},
		{"푸른", "phulun", "phwulun"},
		{"무무", "mumu", "mwumwu"},
		// coda ㅁ followed by a silent onset is still adjacent
		{"밤우", "pamu", "pamwu"},
		// a space breaks adjacency
		{"밤 우", "pam wu", "pam wu"},
		// non-labial onset is untouched
		{"구", "kwu", "kwu"},
		// ㅗ is not the rounded vowel the rule rewrites
		{"모", "mo", "mo"},
	}
	for _, tt := range tests {
		if got := Convert(tt.input, Options{LabialRule: true}); got != tt.on {
			t.Errorf("Convert(%q) with labial rule = %q, want %q", tt.input, got, tt.on)
		}
		if got := Convert(tt.input, Options{}); got != tt.off {
			t.Errorf("Convert(%q) without labial rule = %q, want %q", tt.input, got, tt.off)
		}
	}
}

func TestLoneJamoPassThrough(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"ㄱㄴㄷ", "ㄱㄴㄷ"},
		{"ㅁ우", "ㅁwu"},
		{"ㅜ", "ㅜ"},
	}
	for _, tt := range tests {
		got := Convert(tt.input, Options{LabialRule: true, Separator: "."})
		if got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestNonHangulIdentity(t *testing.T) {
	inputs := []string{
		"Hello, world! 123",
		"こんにちは 你好",
		"tab\tand\nnewline",
		"ㅎㅎ ㅋㅋ",
		"emoji 🎉",
	}
	for _, in := range inputs {
		if got := Convert(in, Options{LabialRule: true}); got != in {
			t.Errorf("Convert(%q) = %q, want input unchanged", in, got)
		}
	}
}

func TestDecompose(t *testing.T) {
	tests := []struct {
		input rune
		want  string
	}{
		{'한', "ㅎㅏㄴ"},
		{'아', "ㅏ"},
		{'앉', "ㅏㄴㅈ"},
		{'없', "ㅓㅂㅅ"},
		{'뷁', "ㅂㅞㄹㄱ"},
		{'A', "A"},
		{'ㄳ', "ㄳ"},
	}
	for _, tt := range tests {
		if got := string(Decompose(tt.input)); got != tt.want {
			t.Errorf("Decompose(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestSplit(t *testing.T) {
	if len(compoundCoda) != 11 {
		t.Fatalf("compound coda table has %d entries, want 11", len(compoundCoda))
	}
	for coda, pair := range compoundCoda {
		got := Split(coda)
		if len(got) != 2 || got[0] != pair[0] || got[1] != pair[1] {
			t.Errorf("Split(%q) = %q, want %q", coda, string(got), string(pair[:]))
		}
		for _, part := range got {
			if _, ok := yaleTable[part]; !ok {
				t.Errorf("part %q of %q has no romanization", part, coda)
			}
		}
	}
	if got := Split('ㄱ'); string(got) != "ㄱ" {
		t.Errorf("Split('ㄱ') = %q, want ㄱ", string(got))
	}
}

func TestEverySyllable(t *testing.T) {
	opts := Options{Separator: "|"}
	for code := hangulBase; code < hangulBase+hangulN; code++ {
		r := rune(code)
		jamo := Decompose(r)
		if len(jamo) == 0 || len(jamo) > 4 {
			t.Fatalf("Decompose(%q) produced %d jamo", r, len(jamo))
		}
		if choseong[(code-hangulBase)/syllableN] == nullOnset && jamo[0] == nullOnset {
			t.Fatalf("Decompose(%q) kept the silent onset", r)
		}
		for _, j := range jamo {
			if _, ok := yaleTable[j]; !ok {
				t.Fatalf("Decompose(%q) produced unmapped jamo %q", r, j)
			}
		}
		got := Convert(string(r), opts)
		if parts := strings.Split(got, "|"); len(parts) != len(jamo) {
			t.Fatalf("Convert(%q) = %q, want %d units", r, got, len(jamo))
		}
		if got != Convert(string(r), opts) {
			t.Fatalf("Convert(%q) is not deterministic", r)
		}
	}
}

func TestTokenize(t *testing.T) {
	tokens := Tokenize("가 ㄱ")
	want := []Token{Unit("k"), Unit("a"), Passthrough(' '), Passthrough('ㄱ')}
	if len(tokens) != len(want) {
		t.Fatalf("Tokenize returned %d tokens, want %d", len(tokens), len(want))
	}
	for i := range want {
		if tokens[i] != want[i] {
			t.Errorf("token %d = %#v, want %#v", i, tokens[i], want[i])
		}
	}
}

func TestJoinSeparatorAdjacency(t *testing.T) {
	inputs := []string{
		"한글, 좋아요!",
		" 앞뒤 공백 ",
		"줄\n바꿈\r\n",
		"abc가나다xyz",
		"값.없다",
	}
	const sep = "·"
	for _, in := range inputs {
		tokens := Tokenize(in)
		out := Join(tokens, sep)
		var b strings.Builder
		for i, tok := range tokens {
			b.WriteString(tok.String())
			if i+1 == len(tokens) {
				break
			}
			_, cur := tok.(Unit)
			_, next := tokens[i+1].(Unit)
			if cur && next {
				b.WriteString(sep)
			}
		}
		if out != b.String() {
			t.Errorf("Join(%q) = %q, want %q", in, out, b.String())
		}
		if strings.HasSuffix(out, sep) || strings.HasPrefix(out, sep) {
			t.Errorf("Join(%q) = %q starts or ends with separator", in, out)
		}
		for _, bad := range []string{" " + sep, sep + " ", sep + ",", sep + "!", sep + "\n", "\n" + sep} {
			if strings.Contains(out, bad) {
				t.Errorf("Join(%q) = %q contains %q", in, out, bad)
			}
		}
	}
}

func TestJoinLatinNeighbours(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"abc가나다xyz", "abck·a·n·a·t·axyz"},
		{"좋아요", "c·o·h·a·yo"},
		{"줄x", "c·wu·lx"},
	}
	for _, tt := range tests {
		if got := Join(Tokenize(tt.input), "·"); got != tt.want {
			t.Errorf("Join(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestJoinEmptySeparator(t *testing.T) {
	tokens := []Token{Unit("k"), Unit("a"), Passthrough('!')}
	if got := Join(tokens, ""); got != "ka!" {
		t.Errorf("Join = %q, want %q", got, "ka!")
	}
	if got := Join(nil, "."); got != "" {
		t.Errorf("Join(nil) = %q, want empty", got)
	}
}

func TestNormalizeSeparator(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{".", "."},
		{"-_", "-"},
		{"·", "·"},
		{"ㆍ밖", "ㆍ"},
		{"\xff\xfe", "\uFFFD"},
		{"\xe3\x80", "\uFFFD"},
	}
	for _, tt := range tests {
		got := NormalizeSeparator(tt.input)
		if got != tt.want {
			t.Errorf("NormalizeSeparator(%q) = %q, want %q", tt.input, got, tt.want)
		}
		if utf8.RuneCountInString(got) > 1 {
			t.Errorf("NormalizeSeparator(%q) kept %d runes", tt.input, utf8.RuneCountInString(got))
		}
	}
}

func TestConvertInvalidSeparator(t *testing.T) {
	got := Convert("값", Options{Separator: "\xff\xfe"})
	if got != "k\uFFFDa\uFFFDp\uFFFDs" {
		t.Errorf("Convert = %q", got)
	}
	if !utf8.ValidString(got) {
		t.Errorf("Convert returned invalid UTF-8 %q", got)
	}
}

func TestConvertBlank(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{" \t\r\n", ""},
		{"\uFEFF", ""},
		{"\u3000\u00A0\u2028", ""},
		{"\u0085", "\u0085"},
		{"\uFEFF한\u3000", "\uFEFFhan\u3000"},
	}
	for _, tt := range tests {
		if got := Convert(tt.input, Options{}); got != tt.want {
			t.Errorf("Convert(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestIsBlank(t *testing.T) {
	for _, r := range []rune{' ', '\t', '\n', '\v', '\f', '\r', '\u00A0', '\u2003', '\u3000', '\uFEFF'} {
		if !IsBlank(r) {
			t.Errorf("IsBlank(%U) = false", r)
		}
	}
	for _, r := range []rune{'\u0085', '\u200B', 'a', '한'} {
		if IsBlank(r) {
			t.Errorf("IsBlank(%U) = true", r)
		}
	}
	if got := TrimBlank("\uFEFF 무\u0085 \u00A0"); got != "무\u0085" {
		t.Errorf("TrimBlank = %q", got)
	}
}

func TestDefaultOptions(t *testing.T) {
	opts := DefaultOptions()
	if !opts.LabialRule || opts.Separator != "" {
		t.Errorf("DefaultOptions() = %+v", opts)
	}
}
