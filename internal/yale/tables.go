package yale

const (
	hangulBase = 0xAC00
	choN       = 19
	jungN      = 21
	jongN      = 28
	syllableN  = jungN * jongN
	hangulN    = choN * syllableN
)

// Compatibility jamo in Unicode decomposition order.
var (
	choseong = []rune{
		'ㄱ', 'ㄲ', 'ㄴ', 'ㄷ', 'ㄸ', 'ㄹ', 'ㅁ', 'ㅂ', 'ㅃ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅉ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
	jungseong = []rune{
		'ㅏ', 'ㅐ', 'ㅑ', 'ㅒ', 'ㅓ', 'ㅔ', 'ㅕ', 'ㅖ', 'ㅗ', 'ㅘ',
		'ㅙ', 'ㅚ', 'ㅛ', 'ㅜ', 'ㅝ', 'ㅞ', 'ㅟ', 'ㅠ', 'ㅡ', 'ㅢ',
		'ㅣ',
	}
	// index 0 is the empty coda
	jongseong = []rune{
		0, 'ㄱ', 'ㄲ', 'ㄳ', 'ㄴ', 'ㄵ', 'ㄶ', 'ㄷ', 'ㄹ', 'ㄺ',
		'ㄻ', 'ㄼ', 'ㄽ', 'ㄾ', 'ㄿ', 'ㅀ', 'ㅁ', 'ㅂ', 'ㅄ', 'ㅅ',
		'ㅆ', 'ㅇ', 'ㅈ', 'ㅊ', 'ㅋ', 'ㅌ', 'ㅍ', 'ㅎ',
	}
)

// nullOnset is the silent initial; it is never emitted.
const nullOnset = 'ㅇ'

var compoundCoda = map[rune][2]rune{
	'ㄳ': {'ㄱ', 'ㅅ'},
	'ㄵ': {'ㄴ', 'ㅈ'},
	'ㄶ': {'ㄴ', 'ㅎ'},
	'ㄺ': {'ㄹ', 'ㄱ'},
	'ㄻ': {'ㄹ', 'ㅁ'},
	'ㄼ': {'ㄹ', 'ㅂ'},
	'ㄽ': {'ㄹ', 'ㅅ'},
	'ㄾ': {'ㄹ', 'ㅌ'},
	'ㄿ': {'ㄹ', 'ㅍ'},
	'ㅀ': {'ㄹ', 'ㅎ'},
	'ㅄ': {'ㅂ', 'ㅅ'},
}

// Yale romanization
var yaleTable = map[rune]string{
	// consonants
	'ㅂ': "p", 'ㄷ': "t", 'ㅌ': "th", 'ㅈ': "c", 'ㅉ': "cc", 'ㅊ': "ch",
	'ㄱ': "k", 'ㅎ': "h", 'ㄲ': "kk", 'ㅋ': "kh", 'ㄹ': "l", 'ㅁ': "m",
	'ㄴ': "n", 'ㅇ': "ng", 'ㄸ': "tt", 'ㅃ': "pp", 'ㅍ': "ph", 'ㅅ': "s",
	'ㅆ': "ss",
	// vowels
	'ㅏ': "a", 'ㅔ': "ey", 'ㅐ': "ay", 'ㅣ': "i", 'ㅗ': "o", 'ㅚ': "oy",
	'ㅜ': "wu", 'ㅓ': "e", 'ㅡ': "u", 'ㅢ': "uy", 'ㅛ': "yo", 'ㅠ': "yu",
	'ㅑ': "ya", 'ㅕ': "ye", 'ㅖ': "yey", 'ㅒ': "yay", 'ㅘ': "wa", 'ㅝ': "we",
	'ㅟ': "wi", 'ㅙ': "way", 'ㅞ': "wey",
}

var labials = map[rune]struct{}{
	'ㅁ': {}, 'ㅂ': {}, 'ㅃ': {}, 'ㅍ': {},
}

const (
	roundedU   = 'ㅜ'
	unroundedU = 'ㅡ'
)
