package ithkuil

import (
	"strconv"
	"strings"
)

// Tokenize splits a normalized, unstressed word into tokens. Underscores
// count as consonants and may be used to force cluster boundaries, so
// "malëuţřait" and "malëuţř_ait" tokenize differently. A trailing
// apostrophe becomes a final GlottalStop token.
func Tokenize(word string) ([]Token, error) {
	// A word-initial glottal stop is not phonemic; "'oëtil" reads as "oëtil".
	word = strings.TrimPrefix(word, "'")
	word, finalGlottalStop := strings.CutSuffix(word, "'")

	const (
		runNone = iota
		runC
		runV
		runN
	)

	var tokens []Token
	run := runNone
	var current strings.Builder

	flush := func() error {
		if current.Len() == 0 {
			return nil
		}
		s := current.String()
		current.Reset()
		switch run {
		case runC:
			if strings.IndexAny(s, "hwy") == 0 {
				h, ok := ParseHForm(s)
				if !ok {
					return ErrSourceHFormInvalid
				}
				tokens = append(tokens, h)
			} else {
				tokens = append(tokens, Consonant(s))
			}
		case runV:
			switch s {
			case "'":
				tokens = append(tokens, GlottalStop{})
			case "ë":
				tokens = append(tokens, Schwa{})
			case "üa":
				tokens = append(tokens, UaMarker{})
			default:
				v, ok := ParseVowelForm(s)
				if !ok {
					return ErrSourceVowelInvalid
				}
				tokens = append(tokens, v)
			}
		case runN:
			// Decimal points are tokenized but not yet representable.
			n, err := strconv.ParseUint(s, 10, 64)
			if err != nil {
				return ErrSourceNumeralInvalid
			}
			tokens = append(tokens, Numeral{IntegerPart: n})
		}
		return nil
	}

	push := func(kind int, r rune) error {
		if run != kind {
			if err := flush(); err != nil {
				return err
			}
			run = kind
		}
		current.WriteRune(r)
		return nil
	}

	for _, r := range word {
		switch r {
		case 'b', 'c', 'ç', 'č', 'd', 'ḑ', 'f', 'g', 'h', 'j', 'k', 'l', 'ļ',
			'm', 'n', 'ň', 'p', 'r', 'ř', 's', 'š', 't', 'ţ', 'v', 'w', 'x',
			'y', 'z', 'ẓ', 'ž', '_':
			if err := push(runC, r); err != nil {
				return nil, err
			}
		case 'a', 'ä', 'e', 'ë', 'i', 'o', 'ö', 'u', 'ü', '\'':
			if err := push(runV, r); err != nil {
				return nil, err
			}
		case '0', '1', '2', '3', '4', '5', '6', '7', '8', '9', '.':
			if err := push(runN, r); err != nil {
				return nil, err
			}
		default:
			return nil, ErrSourceCharInvalid
		}
	}
	if err := flush(); err != nil {
		return nil, err
	}

	if finalGlottalStop {
		tokens = append(tokens, GlottalStop{})
	}
	return tokens, nil
}

// TokensToString renders tokens back into an unstressed word.
func TokensToString(tokens []Token) string {
	var b strings.Builder
	for i, tok := range tokens {
		switch t := tok.(type) {
		case Consonant:
			b.WriteString(string(t))
		case VowelForm:
			b.WriteString(t.StringAfter(b.String(), i == len(tokens)-1))
		case HForm:
			b.WriteString(t.String())
		case Numeral:
			b.WriteString(strconv.FormatUint(t.IntegerPart, 10))
		case UaMarker:
			b.WriteString("üa")
		case Schwa:
			b.WriteString("ë")
		case GlottalStop:
			b.WriteString("'")
		}
	}
	return b.String()
}
