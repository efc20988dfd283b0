package yale

import "github.com/samber/lo"

// Silent is shown for the onset ㅇ, which is never written.
const Silent = "∅"

const unmapped = "—"

type ReferenceEntry struct {
	Jamo string `json:"jamo"`
	Yale string `json:"yale"`
}

// ReferenceTable lists the romanization of every onset, vowel and coda.
// Compound codas appear through their parts.
type ReferenceTable struct {
	Onset   []ReferenceEntry `json:"onset"`
	Nucleus []ReferenceEntry `json:"nucleus"`
	Coda    []ReferenceEntry `json:"coda"`
	Note    string           `json:"note"`
}

func Reference() ReferenceTable {
	onset := lo.Map(choseong, func(j rune, _ int) ReferenceEntry {
		if j == nullOnset {
			return ReferenceEntry{Jamo: string(j), Yale: Silent}
		}
		return entry(j)
	})
	nucleus := lo.Map(jungseong, func(j rune, _ int) ReferenceEntry { return entry(j) })
	codas := lo.Uniq(lo.FlatMap(jongseong[1:], func(j rune, _ int) []rune { return Split(j) }))

	return ReferenceTable{
		Onset:   onset,
		Nucleus: nucleus,
		Coda:    lo.Map(codas, func(j rune, _ int) ReferenceEntry { return entry(j) }),
		Note:    "ㅇ is silent as an onset",
	}
}

func entry(j rune) ReferenceEntry {
	y, ok := yaleTable[j]
	if !ok {
		y = unmapped
	}
	return ReferenceEntry{Jamo: string(j), Yale: y}
}
