// Package i18n holds the user-facing labels in Japanese and Korean.
// Labels never influence conversion.
package i18n

import "github.com/jusunglee/yaleconv/internal/yale"

type Lang string

const (
	Japanese Lang = "ja"
	Korean   Lang = "ko"
)

type Labels struct {
	OpenHistory      string `json:"openHist"`
	OpenReference    string `json:"openRef"`
	CopyButton       string `json:"copyBtn"`
	Input            string `json:"labelInput"`
	Output           string `json:"labelOutput"`
	Labial           string `json:"labelLabial"`
	Interlinear      string `json:"labelInterlinear"`
	Separator        string `json:"labelSep"`
	InterlinearTitle string `json:"ttlInterlinear"`
	InterlinearHint  string `json:"hintInterlinear"`
	ReferenceTitle   string `json:"ttlRef"`
	HistoryTitle     string `json:"ttlHist"`
	ClearHistory     string `json:"clearHist"`
	Close            string `json:"close"`
	EmptyHistory     string `json:"emptyHist"`
	OnsetTitle       string `json:"ttlOnset"`
	NucleusTitle     string `json:"ttlNucleus"`
	CodaTitle        string `json:"ttlCoda"`
	SilentOnsetNote  string `json:"noteSilent"`
	Toggle           string `json:"langToggle"`
	Copied           string `json:"copied"`
}

var labels = map[Lang]Labels{
	Japanese: {
		OpenHistory:      "変換履歴",
		OpenReference:    "イェール式参照",
		CopyButton:       "変換結果コピー",
		Input:            "入力（ハングル）",
		Output:           "変換結果",
		Labial:           "両唇音の後は「u」",
		Interlinear:      "ハングルと併記",
		Separator:        "字母区切り文字",
		InterlinearTitle: "ハングルと並べて見る",
		InterlinearHint:  "例文をクリックすると分かち書きを「タブ」にしてコピー",
		ReferenceTitle:   "イェール式参照",
		HistoryTitle:     "変換履歴",
		ClearHistory:     "すべて削除",
		Close:            "閉じる",
		EmptyHistory:     "変換履歴がありません。",
		OnsetTitle:       "初声(초성)",
		NucleusTitle:     "中声(중성)",
		CodaTitle:        "終声(종성)",
		SilentOnsetNote:  "「ㅇ」は初声で省略",
		Toggle:           "한국어",
		Copied:           "コピー完了!",
	},
	Korean: {
		OpenHistory:      "변환 기록",
		OpenReference:    "예일식 참조",
		CopyButton:       "변환 결과 복사",
		Input:            "입력(한글)",
		Output:           "변환 결과",
		Labial:           "양순음 뒤는 u",
		Interlinear:      "한글과 나란히 보기",
		Separator:        "자모 구분자",
		InterlinearTitle: "한글과 나란히 보기",
		InterlinearHint:  "예문을 클릭하면 띄어쓰기를 탭으로 하여 복사",
		ReferenceTitle:   "예일식 참조",
		HistoryTitle:     "변환 기록",
		ClearHistory:     "모두 지우기",
		Close:            "닫기",
		EmptyHistory:     "변환 기록이 없습니다.",
		OnsetTitle:       "초성",
		NucleusTitle:     "중성",
		CodaTitle:        "종성",
		SilentOnsetNote:  "초성 「ㅇ」은 생략",
		Toggle:           "日本語",
		Copied:           "복사 완료!",
	},
}

// Parse maps a language code to a supported Lang, defaulting to Japanese.
func Parse(code string) Lang {
	if Lang(code) == Korean {
		return Korean
	}
	return Japanese
}

// For returns the labels for lang, falling back to Japanese.
func For(lang Lang) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[Japanese]
}

// Toggle switches between the two languages.
func Toggle(lang Lang) Lang {
	if lang == Japanese {
		return Korean
	}
	return Japanese
}

// SeparatorLabel renders a separator for display: ∅ when unset, ␣ for a space.
func SeparatorLabel(sep string) string {
	switch sep = yale.NormalizeSeparator(sep); sep {
	case "":
		return yale.Silent
	case " ":
		return "␣"
	default:
		return sep
	}
}
