package ithkuil

import "strings"

// A Token is one segment of a romanized word: a consonant cluster, a vowel
// form, an h-form, a numeral, or one of the three marker tokens.
type Token interface {
	token()
}

// Consonant is a consonant cluster kept verbatim, underscores included.
type Consonant string

func (Consonant) token() {}

// IsGeminate reports whether the cluster contains a doubled letter.
func (c Consonant) IsGeminate() bool {
	var last rune
	for i, r := range c {
		if i > 0 && r == last {
			return true
		}
		last = r
	}
	return false
}

// VowelSeq is one of the four vowel sequences.
type VowelSeq uint8

const (
	SeqV1 VowelSeq = iota
	SeqV2
	SeqV3
	SeqV4
)

// VowelDegree is a vowel degree, D0 through D9.
type VowelDegree uint8

const (
	D0 VowelDegree = iota
	D1
	D2
	D3
	D4
	D5
	D6
	D7
	D8
	D9
)

// VowelForm is a parsed vowel cluster.
type VowelForm struct {
	HasGlottalStop bool
	Sequence       VowelSeq
	Degree         VowelDegree
}

func (VowelForm) token() {}

// Vowel is shorthand for a glottal-stop-free VowelForm.
func Vowel(seq VowelSeq, degree VowelDegree) VowelForm {
	return VowelForm{Sequence: seq, Degree: degree}
}

var vowelTable = map[string]VowelForm{
	"ae": Vowel(SeqV1, D0),
	"a":  Vowel(SeqV1, D1),
	"ä":  Vowel(SeqV1, D2),
	"e":  Vowel(SeqV1, D3),
	"i":  Vowel(SeqV1, D4),
	"ëi": Vowel(SeqV1, D5),
	"ö":  Vowel(SeqV1, D6),
	"o":  Vowel(SeqV1, D7),
	"ü":  Vowel(SeqV1, D8),
	"u":  Vowel(SeqV1, D9),
	"aa": Vowel(SeqV1, D1),
	"ää": Vowel(SeqV1, D2),
	"ee": Vowel(SeqV1, D3),
	"ii": Vowel(SeqV1, D4),
	"öö": Vowel(SeqV1, D6),
	"oo": Vowel(SeqV1, D7),
	"üü": Vowel(SeqV1, D8),
	"uu": Vowel(SeqV1, D9),

	"ea": Vowel(SeqV2, D0),
	"ai": Vowel(SeqV2, D1),
	"au": Vowel(SeqV2, D2),
	"ei": Vowel(SeqV2, D3),
	"eu": Vowel(SeqV2, D4),
	"ëu": Vowel(SeqV2, D5),
	"ou": Vowel(SeqV2, D6),
	"oi": Vowel(SeqV2, D7),
	"iu": Vowel(SeqV2, D8),
	"ui": Vowel(SeqV2, D9),

	"üo": Vowel(SeqV3, D0),
	"ia": Vowel(SeqV3, D1),
	"uä": Vowel(SeqV3, D1),
	"ie": Vowel(SeqV3, D2),
	"uë": Vowel(SeqV3, D2),
	"io": Vowel(SeqV3, D3),
	"üä": Vowel(SeqV3, D3),
	"iö": Vowel(SeqV3, D4),
	"üë": Vowel(SeqV3, D4),
	"eë": Vowel(SeqV3, D5),
	"uö": Vowel(SeqV3, D6),
	"öë": Vowel(SeqV3, D6),
	"uo": Vowel(SeqV3, D7),
	"öä": Vowel(SeqV3, D7),
	"ue": Vowel(SeqV3, D8),
	"ië": Vowel(SeqV3, D8),
	"ua": Vowel(SeqV3, D9),
	"iä": Vowel(SeqV3, D9),

	"üö": Vowel(SeqV4, D0),
	"ao": Vowel(SeqV4, D1),
	"aö": Vowel(SeqV4, D2),
	"eo": Vowel(SeqV4, D3),
	"eö": Vowel(SeqV4, D4),
	"oë": Vowel(SeqV4, D5),
	"öe": Vowel(SeqV4, D6),
	"oe": Vowel(SeqV4, D7),
	"öa": Vowel(SeqV4, D8),
	"oa": Vowel(SeqV4, D9),
}

// ParseVowelForm parses a vowel cluster. An apostrophe anywhere in the
// cluster marks a glottal stop.
func ParseVowelForm(s string) (VowelForm, bool) {
	glottal := strings.ContainsRune(s, '\'')
	if glottal {
		s = strings.ReplaceAll(s, "'", "")
	}
	v, ok := vowelTable[s]
	if !ok {
		return VowelForm{}, false
	}
	v.HasGlottalStop = glottal
	return v, true
}

// vowelSpellings holds the primary spelling of every sequence/degree pair.
var vowelSpellings = [4][10]string{
	{"ae", "a", "ä", "e", "i", "ëi", "ö", "o", "ü", "u"},
	{"ea", "ai", "au", "ei", "eu", "ëu", "ou", "oi", "iu", "ui"},
	{"üo", "ia", "ie", "io", "iö", "eë", "uö", "uo", "ue", "ua"},
	{"üö", "ao", "aö", "eo", "eö", "oë", "öe", "oe", "öa", "oa"},
}

// Sequence 3 alternates, used when the primary spelling would follow the
// glide it begins with.
var seq3AfterY = [10]string{"", "uä", "uë", "üä", "üë", "", "", "", "", ""}
var seq3AfterW = [10]string{"", "", "", "", "", "", "öë", "öä", "ië", "iä"}

// StringAfter renders the vowel form as it is spelled following the text
// already emitted. Sequence 3 forms beginning with i may not follow y and
// ones beginning with u may not follow w, so their alternates are chosen
// here. A glottal stop is written between the two letters of the form, or
// doubles a single letter around it word-finally.
func (v VowelForm) StringAfter(prev string, isFinal bool) string {
	s := vowelSpellings[v.Sequence][v.Degree]
	if v.Sequence == SeqV3 {
		if strings.HasSuffix(prev, "y") && seq3AfterY[v.Degree] != "" {
			s = seq3AfterY[v.Degree]
		} else if strings.HasSuffix(prev, "w") && seq3AfterW[v.Degree] != "" {
			s = seq3AfterW[v.Degree]
		}
	}
	if !v.HasGlottalStop {
		return s
	}
	runes := []rune(s)
	if len(runes) >= 2 {
		return string(runes[0]) + "'" + string(runes[1:])
	}
	if isFinal {
		return s + "'" + s
	}
	return s + "'"
}

func (v VowelForm) String() string {
	return v.StringAfter("", false)
}

// HSeq distinguishes the three h-form families.
type HSeq uint8

const (
	SeqHPlain HSeq = iota // h, hl, hr, hm, hn, hň
	SeqHW                 // w, hw, hrw, hmw, hnw, hňw
	SeqHY                 // y
)

// HForm is a parsed consonant cluster beginning with h, w or y.
type HForm struct {
	Sequence HSeq
	Degree   VowelDegree
}

func (HForm) token() {}

var hFormTable = map[string]HForm{
	"h":  {SeqHPlain, D1},
	"hl": {SeqHPlain, D2},
	"hr": {SeqHPlain, D3},
	"hm": {SeqHPlain, D4},
	"hn": {SeqHPlain, D5},
	"hň": {SeqHPlain, D6},

	"w":   {SeqHW, D1},
	"hw":  {SeqHW, D2},
	"hrw": {SeqHW, D3},
	"hmw": {SeqHW, D4},
	"hnw": {SeqHW, D5},
	"hňw": {SeqHW, D6},

	"y": {SeqHY, D1},
}

var hFormSpellings = map[HForm]string{}

func init() {
	for s, h := range hFormTable {
		hFormSpellings[h] = s
	}
}

// ParseHForm parses a consonant cluster beginning with h, w or y.
func ParseHForm(s string) (HForm, bool) {
	h, ok := hFormTable[s]
	return h, ok
}

func (h HForm) String() string {
	return hFormSpellings[h]
}

// The named h-forms.
var (
	FormH   = HForm{SeqHPlain, D1}
	FormHL  = HForm{SeqHPlain, D2}
	FormHR  = HForm{SeqHPlain, D3}
	FormHM  = HForm{SeqHPlain, D4}
	FormHN  = HForm{SeqHPlain, D5}
	FormHNW = HForm{SeqHW, D5}
	FormW   = HForm{SeqHW, D1}
	FormY   = HForm{SeqHY, D1}
	FormHW  = HForm{SeqHW, D2}
)

// Numeral is a numeric token. Decimals are not yet carried through.
type Numeral struct {
	IntegerPart uint64
}

func (Numeral) token() {}

// The marker tokens: word-final üa, a standalone ë, and a glottal stop.
type (
	UaMarker    struct{}
	Schwa       struct{}
	GlottalStop struct{}
)

func (UaMarker) token()    {}
func (Schwa) token()       {}
func (GlottalStop) token() {}
