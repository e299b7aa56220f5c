package ithkuil

// A Word is any complete parsed word: a formative, a referential, or one of
// the adjunct types.
type Word interface {
	Glosser
	word()
}

func (Formative) word()            {}
func (Referential) word()          {}
func (ModularAdjunct) word()       {}
func (SingleAffixAdjunct) word()   {}
func (MultipleAffixAdjunct) word() {}
func (SuppletiveAdjunct) word()    {}
func (RegisterAdjunct) word()      {}
func (MCSAdjunct) word()           {}
func (ParsingAdjunct) word()       {}
func (BiasAdjunct) word()          {}
func (NumericAdjunct) word()       {}

type wordParser func(*TokenStream, ParseFlags) (Word, error)

func asWord[T Word](parse func(*TokenStream, ParseFlags) (T, error)) wordParser {
	return func(stream *TokenStream, flags ParseFlags) (Word, error) {
		w, err := parse(stream, flags)
		if err != nil {
			return nil, err
		}
		return w, nil
	}
}

// parseAffixualAdjunct covers both shapes of the affixual adjunct: the
// single-affix VxCs form and the multi-affix CsVxCz form.
func parseAffixualAdjunct(stream *TokenStream, flags ParseFlags) (Word, error) {
	save := *stream
	if w, err := ParseSingleAffixAdjunct(stream, flags); err == nil {
		return w, nil
	}
	*stream = save
	return asWord(ParseMultipleAffixAdjunct)(stream, flags)
}

// parseAnyOf tries each candidate in order on a copy of the stream. A
// candidate only wins when it both parses and consumes every remaining
// token; otherwise the next one gets a fresh copy. The last candidate's
// error is the one reported.
func parseAnyOf(stream *TokenStream, flags ParseFlags, candidates ...wordParser) (Word, error) {
	var err error
	for _, parse := range candidates {
		attempt := *stream
		var w Word
		w, err = parse(&attempt, flags)
		if err == nil && !attempt.IsDone() {
			err = ErrTooManyTokens
		}
		if err == nil {
			*stream = attempt
			return w, nil
		}
	}
	return nil, err
}

// ParseWord reads one complete word from the stream. The first token picks
// the candidate word types, and formatives are always tried first: they are
// by far the most common word type, and every shorter reading that survives
// is a word a formative parse would have rejected anyway.
func ParseWord(stream *TokenStream, flags ParseFlags) (Word, error) {
	switch stream.Peek().(type) {
	case VowelForm:
		return parseAnyOf(stream, flags,
			asWord(ParseFormative),
			asWord(ParseParsingAdjunct),
			asWord(ParseModularAdjunct),
			parseAffixualAdjunct,
			asWord(ParseReferential),
		)

	case Consonant:
		return parseAnyOf(stream, flags,
			asWord(ParseFormative),
			asWord(ParseBiasAdjunct),
			parseAffixualAdjunct,
			asWord(ParseReferential),
		)

	case HForm:
		return parseAnyOf(stream, flags,
			asWord(ParseFormative),
			asWord(ParseSuppletiveAdjunct),
			asWord(ParseRegisterAdjunct),
			asWord(ParseMCSAdjunct),
			asWord(ParseModularAdjunct),
		)

	case Numeral:
		return parseAnyOf(stream, flags,
			asWord(ParseFormative),
			asWord(ParseNumericAdjunct),
			parseAffixualAdjunct,
		)

	case Schwa:
		return parseAnyOf(stream, flags,
			asWord(ParseReferential),
			parseAffixualAdjunct,
		)

	case UaMarker:
		return nil, ErrWordInitialUa

	case GlottalStop:
		return nil, ErrWordInitialGlottalStop

	default:
		return nil, ErrWordEmpty
	}
}

// ParseWordString runs the whole pipeline on one romanized word:
// normalization, stress detection, tokenization and word parsing.
func ParseWordString(word string, flags ParseFlags) (Word, error) {
	list, err := ParseTokenList(word)
	if err != nil {
		return nil, err
	}
	stream := list.Stream()
	return ParseWord(&stream, flags)
}

// GlossWord parses a romanized word and glosses it in one step.
func GlossWord(word string, parseFlags ParseFlags, glossFlags GlossFlags) (string, error) {
	w, err := ParseWordString(word, parseFlags)
	if err != nil {
		return "", err
	}
	return w.Gloss(glossFlags), nil
}
