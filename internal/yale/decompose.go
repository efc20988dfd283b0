package yale

// symbol is one position of the decomposed stream. Runes that did not come
// out of a syllable block are opaque: they are neither romanized nor seen by
// the labial rule.
type symbol struct {
	r    rune
	jamo bool
}

// IsSyllable reports whether r is a precomposed Hangul syllable block.
func IsSyllable(r rune) bool {
	return r >= hangulBase && r < hangulBase+hangulN
}

// Decompose breaks a syllable block into its jamo: the onset unless it is the
// silent ㅇ, the vowel, and the coda (compound codas split in two). Any other
// rune is returned as is.
func Decompose(r rune) []rune {
	if !IsSyllable(r) {
		return []rune{r}
	}
	return appendJamo(make([]rune, 0, 4), r)
}

func appendJamo(out []rune, r rune) []rune {
	code := int(r) - hangulBase
	cho := choseong[code/syllableN]
	jung := jungseong[(code%syllableN)/jongN]
	jong := jongseong[code%jongN]

	if cho != nullOnset {
		out = append(out, cho)
	}
	out = append(out, jung)
	if jong != 0 {
		out = append(out, Split(jong)...)
	}
	return out
}

// Split expands a compound coda such as ㄳ into its two consonants, in
// order. Other jamo are returned unchanged.
func Split(coda rune) []rune {
	if pair, ok := compoundCoda[coda]; ok {
		return pair[:]
	}
	return []rune{coda}
}

func decompose(text string) []symbol {
	stream := make([]symbol, 0, len(text))
	var buf [4]rune
	for _, r := range text {
		if !IsSyllable(r) {
			stream = append(stream, symbol{r: r})
			continue
		}
		for _, j := range appendJamo(buf[:0], r) {
			stream = append(stream, symbol{r: j, jamo: true})
		}
	}
	return stream
}
