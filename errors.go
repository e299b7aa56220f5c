package ithkuil

// ParseError is the closed set of errors romanized text can fail with.
type ParseError string

func (e ParseError) Error() string { return string(e) }

const (
	ErrWordEmpty              ParseError = "empty word"
	ErrWordInitialUa          ParseError = "word-initial üa"
	ErrWordInitialGlottalStop ParseError = "word-initial glottal stop"

	ErrSourceCharInvalid    ParseError = "invalid character in word"
	ErrSourceVowelInvalid   ParseError = "invalid vowel cluster"
	ErrSourceHFormInvalid   ParseError = "invalid h-form"
	ErrSourceNumeralInvalid ParseError = "invalid numeral"

	ErrStressDoubled ParseError = "two stress markers in one word"
	ErrStressInvalid ParseError = "stress marked before the antepenult"

	ErrTooManyTokens ParseError = "unparsed tokens at end of word"

	ErrExpectedCa              ParseError = "expected a Ca consonant cluster"
	ErrExpectedCb              ParseError = "expected a Cb bias consonant"
	ErrExpectedCc              ParseError = "expected a Cc form"
	ErrExpectedCm              ParseError = "expected Cm (n or ň)"
	ErrExpectedCn              ParseError = "expected a Cn form"
	ErrExpectedCp              ParseError = "expected a Cp form"
	ErrExpectedCs              ParseError = "expected a Cs consonant"
	ErrExpectedCz              ParseError = "expected a Cz form"
	ErrExpectedGs              ParseError = "expected a glottal stop"
	ErrExpectedHh              ParseError = "expected word-initial h"
	ErrExpectedHr              ParseError = "expected word-initial hr"
	ErrExpectedNn              ParseError = "expected a numeral"
	ErrExpectedNonDefaultCn    ParseError = "expected a non-default Cn"
	ErrExpectedReferent        ParseError = "expected a referent cluster"
	ErrExpectedRoot            ParseError = "expected a root consonant"
	ErrExpectedNonNumericRoot  ParseError = "numeric root not allowed here"
	ErrExpectedReferentialRoot ParseError = "expected a referential or affixual root"
	ErrExpectedVc              ParseError = "expected a Vc case vowel"
	ErrExpectedVh              ParseError = "expected a Vh scope vowel"
	ErrExpectedVk              ParseError = "expected a Vk vowel"
	ErrExpectedVm              ParseError = "expected a Vm vowel"
	ErrExpectedVn              ParseError = "expected a Vn vowel"
	ErrExpectedVp              ParseError = "expected a Vp stress vowel"
	ErrExpectedVr              ParseError = "expected a Vr vowel"
	ErrExpectedVs              ParseError = "expected a Vs scope vowel"
	ErrExpectedVv              ParseError = "expected a Vv vowel"
	ErrExpectedVx              ParseError = "expected a Vx vowel"
	ErrExpectedVz              ParseError = "expected a Vz scope vowel"

	ErrAntepenultimateStress  ParseError = "antepenultimate stress not allowed here"
	ErrGlottalizedVc          ParseError = "glottal stop in concatenated Vc"
	ErrGlottalizedVn          ParseError = "glottal stop in Vn"
	ErrDoublyGlottalizedVx    ParseError = "glottal stop on two Vx forms"
	ErrDoublyGlottalizedWord  ParseError = "glottal stop marked twice"
	ErrMultipleSlotVMarkers   ParseError = "multiple end-of-slot-V markers"
	ErrTooFewSlotVAffixes     ParseError = "slot V marker with fewer than two affixes"
	ErrTooManySlotVAffixes    ParseError = "more than one slot V affix without a marker"
	ErrGeminatedCs            ParseError = "geminated Cs form"
	ErrDefaultCnShortcut      ParseError = "Cn shortcut with default Cn"
	ErrAspectualCnShortcut    ParseError = "Cn shortcut with aspectual Cn"
	ErrAffixualCaShortcut     ParseError = "affixual formative with Ca shortcut"
	ErrReferentEmpty          ParseError = "empty referent cluster"
	ErrReferentInvalid        ParseError = "invalid referent cluster"
	ErrAppositiveDegreeZero   ParseError = "appositive referential affix of degree zero"
	ErrCaseStackingDegreeZero ParseError = "case-stacking affix of degree zero"
)
