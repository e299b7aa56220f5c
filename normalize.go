package ithkuil

import "strings"

// composeReplacer consolidates decomposed diacritic sequences (base letter
// followed by a combining mark) into the single letters used by the standard
// romanization, and folds alternate letters into their canonical forms.
var composeReplacer = strings.NewReplacer(
	"​", "", // zero-width space → removed
	"á", "á", // a + acute → á
	"ä", "ä", // a + diaeresis → ä
	"â", "â", // a + circumflex → â
	"é", "é", // e + acute → é
	"ë", "ë", // e + diaeresis → ë
	"ê", "ê", // e + circumflex → ê
	"ì", "i", // i + grave → i
	"í", "í", // i + acute → í
	"ó", "ó", // o + acute → ó
	"ö", "ö", // o + diaeresis → ö
	"ô", "ô", // o + circumflex → ô
	"ù", "u", // u + grave → u
	"ú", "ú", // u + acute → ú
	"ü", "ü", // u + diaeresis → ü
	"û", "û", // u + circumflex → û
	"č", "č", // c + caron → č
	"ç", "ç", // c + cedilla → ç
	"ţ", "ţ", // t + cedilla → ţ
	"ṭ", "ţ", // t + underdot → ţ
	"ḍ", "ḑ", // d + underdot → ḑ
	"ḑ", "ḑ", // d + cedilla → ḑ
	"ḷ", "ļ", // l + underdot → ļ
	"ļ", "ļ", // l + cedilla → ļ
	"š", "š", // s + caron → š
	"ž", "ž", // z + caron → ž
	"ż", "ẓ", // z + overdot → ẓ
	"ẓ", "ẓ", // z + underdot → ẓ
	"ň", "ň", // n + caron → ň
	"ņ", "ň", // n + cedilla → ň
	"ṇ", "ň", // n + underdot → ň
	"ř", "ř", // r + caron → ř
	"ŗ", "ř", // r + cedilla → ř
	"r͕", "ř", // r + right arrowhead below → ř
	"ṛ", "ř", // r + underdot → ř
)

// foldLetter maps precomposed alternate letters onto the canonical alphabet.
func foldLetter(r rune) rune {
	switch r {
	case 'ì', 'ı': // ì, ı → i
		return 'i'
	case 'ù': // ù → u
		return 'u'
	case 'ṭ', 'ŧ', 'ț': // ṭ, ŧ, ț → ţ
		return 'ţ'
	case 'ḍ', 'đ': // ḍ, đ → ḑ
		return 'ḑ'
	case 'ł', 'ḷ': // ł, ḷ → ļ
		return 'ļ'
	case 'ż': // ż → ẓ
		return 'ẓ'
	case 'ṇ': // ṇ → ň
		return 'ň'
	case 'ṛ', 'ŗ': // ṛ, ŗ → ř
		return 'ř'
	}
	return r
}

// Normalize canonicalizes a romanized word: it consolidates decomposed
// diacritics into single letters, folds alternate letters such as ṭ into
// their standard counterparts, converts curly apostrophes to ', and strips
// a single word-initial glottal stop marker.
func Normalize(word string) string {
	word = composeReplacer.Replace(word)

	var b strings.Builder
	b.Grow(len(word))

	first := true
	for _, r := range word {
		if first {
			first = false
			switch r {
			case '’', 'ʼ', '‘', '\'':
				continue
			}
			b.WriteRune(foldLetter(r))
			continue
		}
		switch r {
		case '’', 'ʼ', '‘':
			b.WriteByte('\'')
		default:
			b.WriteRune(foldLetter(r))
		}
	}
	return b.String()
}

// unstressReplacer maps accented vowels back to their unstressed forms.
var unstressReplacer = strings.NewReplacer(
	"á", "a", // á → a
	"â", "ä", // â → ä
	"é", "e", // é → e
	"ê", "ë", // ê → ë
	"í", "i", // í → i
	"ó", "o", // ó → o
	"ô", "ö", // ô → ö
	"ú", "u", // ú → u
	"û", "ü", // û → ü
)

// UnstressVowels replaces accented vowels with their unstressed
// counterparts.
func UnstressVowels(word string) string {
	return unstressReplacer.Replace(word)
}
