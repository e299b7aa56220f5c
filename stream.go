package ithkuil

// ParseFlags adjust how strictly words are parsed.
type ParseFlags uint8

const (
	ParseNone ParseFlags = 0

	// ParsePermissive accepts words that are morphologically sound but
	// violate surface restrictions, such as slot V affix counts.
	ParsePermissive ParseFlags = 1 << iota
)

// Matches reports whether all bits of other are set in f.
func (f ParseFlags) Matches(other ParseFlags) bool {
	return f&other == other
}

// A TokenList is a fully tokenized word together with its marked stress.
type TokenList struct {
	Tokens []Token

	// Stress is only meaningful when StressMarked is set; unmarked words
	// default to penultimate stress at the word level.
	Stress       Stress
	StressMarked bool
}

// ParseTokenList normalizes, destresses and tokenizes a word.
func ParseTokenList(word string) (TokenList, error) {
	word = Normalize(word)
	stress, marked, err := DetectStress(word)
	if err != nil {
		return TokenList{}, err
	}
	tokens, err := Tokenize(UnstressVowels(word))
	if err != nil {
		return TokenList{}, err
	}
	return TokenList{Tokens: tokens, Stress: stress, StressMarked: marked}, nil
}

// Render turns the list back into romanized text, restoring the stress
// marker. It fails when the tokens cannot carry the marked stress.
func (l TokenList) Render() (string, error) {
	word := TokensToString(l.Tokens)
	if !l.StressMarked {
		return word, nil
	}
	out, ok := AddStress(word, l.Stress)
	if !ok {
		return "", ErrStressInvalid
	}
	return out, nil
}

// A TokenStream is a cursor pair over a TokenList. Parsers consume tokens
// from either end; backtracking is a matter of copying the stream, trying a
// parse on the copy, and assigning it back only on success.
type TokenStream struct {
	list  *TokenList
	start int
	end   int
}

// Stream returns a stream over the whole list.
func (l *TokenList) Stream() TokenStream {
	return TokenStream{list: l, start: 0, end: len(l.Tokens)}
}

// IsDone reports whether every token has been consumed.
func (s *TokenStream) IsDone() bool {
	return s.start >= s.end
}

// Stress returns the marked stress of the underlying word.
func (s *TokenStream) Stress() (Stress, bool) {
	return s.list.Stress, s.list.StressMarked
}

// Remaining returns the unconsumed tokens.
func (s *TokenStream) Remaining() []Token {
	return s.list.Tokens[s.start:s.end]
}

// Peek returns the next token without consuming it, or nil.
func (s *TokenStream) Peek() Token {
	if s.IsDone() {
		return nil
	}
	return s.list.Tokens[s.start]
}

// PeekBack returns the last token without consuming it, or nil.
func (s *TokenStream) PeekBack() Token {
	if s.IsDone() {
		return nil
	}
	return s.list.Tokens[s.end-1]
}

// Next consumes and returns the next token, or nil.
func (s *TokenStream) Next() Token {
	if s.IsDone() {
		return nil
	}
	t := s.list.Tokens[s.start]
	s.start++
	return t
}

// NextBack consumes and returns the last token, or nil.
func (s *TokenStream) NextBack() Token {
	if s.IsDone() {
		return nil
	}
	t := s.list.Tokens[s.end-1]
	s.end--
	return t
}

// The typed accessors below consume a token only when it has the requested
// type.

func (s *TokenStream) NextConsonant() (Consonant, bool) {
	if c, ok := s.Peek().(Consonant); ok {
		s.start++
		return c, true
	}
	return "", false
}

func (s *TokenStream) NextVowel() (VowelForm, bool) {
	if v, ok := s.Peek().(VowelForm); ok {
		s.start++
		return v, true
	}
	return VowelForm{}, false
}

func (s *TokenStream) NextH() (HForm, bool) {
	if h, ok := s.Peek().(HForm); ok {
		s.start++
		return h, true
	}
	return HForm{}, false
}

func (s *TokenStream) NextNumeral() (Numeral, bool) {
	if n, ok := s.Peek().(Numeral); ok {
		s.start++
		return n, true
	}
	return Numeral{}, false
}

func (s *TokenStream) NextGlottalStop() bool {
	if _, ok := s.Peek().(GlottalStop); ok {
		s.start++
		return true
	}
	return false
}

func (s *TokenStream) NextSchwa() bool {
	if _, ok := s.Peek().(Schwa); ok {
		s.start++
		return true
	}
	return false
}

func (s *TokenStream) NextUa() bool {
	if _, ok := s.Peek().(UaMarker); ok {
		s.start++
		return true
	}
	return false
}

func (s *TokenStream) NextBackVowel() (VowelForm, bool) {
	if v, ok := s.PeekBack().(VowelForm); ok {
		s.end--
		return v, true
	}
	return VowelForm{}, false
}

func (s *TokenStream) NextBackH() (HForm, bool) {
	if h, ok := s.PeekBack().(HForm); ok {
		s.end--
		return h, true
	}
	return HForm{}, false
}

func (s *TokenStream) NextBackGlottalStop() bool {
	if _, ok := s.PeekBack().(GlottalStop); ok {
		s.end--
		return true
	}
	return false
}
