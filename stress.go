package ithkuil

import "strings"

// Stress identifies which syllable of a word carries stress.
type Stress uint8

const (
	StressMonosyllabic Stress = iota
	StressUltimate
	StressPenultimate
	StressAntepenultimate
)

func (s Stress) GlossStatic(flags GlossFlags) string {
	switch s {
	case StressMonosyllabic:
		return "monosyllabic"
	case StressUltimate:
		return "ultimate"
	case StressPenultimate:
		return "penultimate"
	default:
		return "antepenultimate"
	}
}

// DetectStress scans a normalized word for an accented vowel and returns the
// stress it marks. The second return value is false when no vowel is
// accented and the word has more than one vowel form; such words default to
// penultimate stress at a higher level.
func DetectStress(word string) (Stress, bool, error) {
	const (
		lastNone = iota
		lastI
		lastU
	)

	vowelForms := 0
	lastVowel := lastNone
	stress := Stress(0)
	found := false

	mark := func() error {
		if found {
			return ErrStressDoubled
		}
		found = true
		switch vowelForms {
		case 1:
			stress = StressUltimate
		case 2:
			stress = StressPenultimate
		case 3:
			stress = StressAntepenultimate
		default:
			return ErrStressInvalid
		}
		return nil
	}

	runes := []rune(word)
	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]

		// Second halves of diphthongs do not start a new vowel form.
		if lastVowel == lastI {
			switch r {
			case 'a', 'e', 'ë', 'o', 'u':
				lastVowel = lastNone
				continue
			case 'á', 'é', 'ê', 'ó', 'ú':
				lastVowel = lastNone
				if err := mark(); err != nil {
					return 0, false, err
				}
				continue
			}
		} else if lastVowel == lastU {
			switch r {
			case 'a', 'e', 'ë', 'o', 'i':
				lastVowel = lastNone
				continue
			case 'á', 'é', 'ê', 'ó', 'í':
				lastVowel = lastNone
				if err := mark(); err != nil {
					return 0, false, err
				}
				continue
			}
		}

		switch r {
		case 'i':
			lastVowel = lastI
			vowelForms++
		case 'í':
			lastVowel = lastI
			vowelForms++
			if err := mark(); err != nil {
				return 0, false, err
			}
		case 'u':
			lastVowel = lastU
			vowelForms++
		case 'ú':
			lastVowel = lastU
			vowelForms++
			if err := mark(); err != nil {
				return 0, false, err
			}
		case 'a', 'ä', 'e', 'ë', 'o', 'ö', 'ü':
			lastVowel = lastNone
			vowelForms++
		case 'á', 'â', 'é', 'ê', 'ó', 'ô', 'û':
			lastVowel = lastNone
			vowelForms++
			if err := mark(); err != nil {
				return 0, false, err
			}
		default:
			lastVowel = lastNone
		}
	}

	if vowelForms == 1 && !found {
		return StressMonosyllabic, true, nil
	}
	return stress, found, nil
}

func isPlainVowel(r rune) bool {
	switch r {
	case 'a', 'ä', 'e', 'ë', 'i', 'o', 'ö', 'u', 'ü':
		return true
	}
	return false
}

func accent(r rune) rune {
	switch r {
	case 'a':
		return 'á'
	case 'ä':
		return 'â'
	case 'e':
		return 'é'
	case 'ë':
		return 'ê'
	case 'i':
		return 'í'
	case 'o':
		return 'ó'
	case 'ö':
		return 'ô'
	case 'u':
		return 'ú'
	case 'ü':
		return 'û'
	}
	return r
}

// AddStress places an accent mark on an unstressed word so it reads with the
// given stress. Penultimate stress is the written default and returns the
// word unchanged. It returns false when the word cannot carry the stress,
// such as marking a polysyllabic word monosyllabic.
func AddStress(word string, stress Stress) (string, bool) {
	var vowelsRequired int
	switch stress {
	case StressMonosyllabic, StressUltimate:
		vowelsRequired = 1
	case StressPenultimate:
		vowelsRequired = 2
	default:
		vowelsRequired = 3
	}

	runes := []rune(word)
	vowelsFound := 0
	var tail []rune

	anyVowelBefore := func(end int) bool {
		for j := 0; j < end; j++ {
			if isPlainVowel(runes[j]) {
				return true
			}
		}
		return false
	}

	for i := len(runes) - 1; i >= 0; i-- {
		r := runes[i]

		switch {
		case r == 'a' || r == 'ä' || r == 'e' || r == 'ë' || r == 'o' || r == 'ö' || r == 'ü':
			vowelsFound++

		case r == 'i' || r == 'u':
			vowelsFound++
			// A vowel followed by a different i or u forms a falling
			// diphthong; the accent lands on its first letter.
			if i > 0 {
				prev := runes[i-1]
				if prev != r && (prev == 'a' || prev == 'e' || prev == 'ë' || prev == 'i' || prev == 'o' || prev == 'u') {
					tail = append(tail, r)
					r = prev
					i--
				}
			}

		default:
			tail = append(tail, r)
			continue
		}

		if vowelsFound < vowelsRequired {
			tail = append(tail, r)
			continue
		}

		switch stress {
		case StressMonosyllabic:
			if anyVowelBefore(i) {
				return "", false
			}
			return word, true
		case StressUltimate:
			if !anyVowelBefore(i) {
				return word, true
			}
		case StressPenultimate:
			return word, true
		}

		var b strings.Builder
		b.WriteString(string(runes[:i]))
		b.WriteRune(accent(r))
		for j := len(tail) - 1; j >= 0; j-- {
			b.WriteRune(tail[j])
		}
		return b.String(), true
	}

	return "", false
}
