package ithkuil

import "strings"

// ReferentialHead is the first referent of a referential: either an actual
// referent list or a suppletive adjunct mode standing in for one.
type ReferentialHead interface {
	Glosser
	referentialHead()
}

// NormalHead is a referential headed by a referent list.
type NormalHead struct {
	List ReferentList
}

func (NormalHead) referentialHead() {}

func (h NormalHead) Gloss(flags GlossFlags) string {
	return h.List.Gloss(flags)
}

func (h NormalHead) GlossNonDefault(flags GlossFlags) string { return h.Gloss(flags) }

// SuppletiveHead is a referential headed by a carrier, quotative, naming,
// or phrasal form.
type SuppletiveHead struct {
	Mode SuppletiveMode
}

func (SuppletiveHead) referentialHead() {}

func (h SuppletiveHead) Gloss(flags GlossFlags) string {
	return h.Mode.GlossStatic(flags)
}

func (h SuppletiveHead) GlossNonDefault(flags GlossFlags) string { return h.Gloss(flags) }

// ReferentialKind distinguishes the three referential shapes.
type ReferentialKind uint8

const (
	ReferentialSingle ReferentialKind = iota
	ReferentialDual
	ReferentialCombination
)

// Referential is a referent-headed word. A single referential carries one
// or two cases; a dual one adds a second referent list; a combination one
// adds a specification and affixes instead.
type Referential struct {
	Kind          ReferentialKind
	Head          ReferentialHead
	FirstCase     Case
	SecondCase    *Case
	SecondList    ReferentList
	Specification Specification
	Affixes       []Affix
	Essence       Essence
}

// specFromCs decodes the specification consonant of a combination
// referential.
func specFromCs(cs Consonant) (Specification, bool) {
	switch cs {
	case "x":
		return SpecBSC, true
	case "xt":
		return SpecCTE, true
	case "xp":
		return SpecCSV, true
	case "xx":
		return SpecOBJ, true
	}
	return 0, false
}

// ParseReferential reads a referential off a token stream. The head is
// either an optionally schwa-prefixed referent cluster or the vowel a
// followed by a suppletive head. Ultimate stress marks representative
// essence.
func ParseReferential(stream *TokenStream, flags ParseFlags) (Referential, error) {
	essence := EssenceNRM
	if stress, ok := stream.Stress(); ok {
		switch stress {
		case StressUltimate:
			essence = EssenceRPV
		case StressAntepenultimate:
			return Referential{}, ErrAntepenultimateStress
		}
	}

	var head ReferentialHead
	if c, ok := stream.NextConsonant(); ok {
		list, err := ParseReferentList(string(c))
		if err != nil {
			return Referential{}, err
		}
		head = NormalHead{List: list}
	} else if stream.NextSchwa() {
		c, ok := stream.NextConsonant()
		if !ok {
			return Referential{}, ErrExpectedReferent
		}
		list, err := ParseReferentList(string(c))
		if err != nil {
			return Referential{}, err
		}
		head = NormalHead{List: list}
	} else if v, ok := stream.NextVowel(); ok {
		if v != Vowel(SeqV1, D1) {
			return Referential{}, ErrExpectedReferent
		}
		h, ok := stream.NextH()
		if !ok {
			return Referential{}, ErrExpectedCp
		}
		mode, ok := CpFromHForm(h)
		if !ok {
			return Referential{}, ErrExpectedCp
		}
		head = SuppletiveHead{Mode: mode}
	} else {
		return Referential{}, ErrExpectedReferent
	}

	v, ok := stream.NextVowel()
	if !ok {
		return Referential{}, ErrExpectedVc
	}
	firstCase, err := CaseFromVc(v)
	if err != nil {
		return Referential{}, err
	}

	out := Referential{
		Kind:      ReferentialSingle,
		Head:      head,
		FirstCase: firstCase,
		Essence:   essence,
	}

	if stream.IsDone() {
		return out, nil
	}

	if h, ok := stream.Peek().(HForm); ok && (h == FormW || h == FormY) {
		stream.Next()
		v, ok := stream.NextVowel()
		if !ok {
			return Referential{}, ErrExpectedVc
		}
		secondCase, err := CaseFromVc(v)
		if err != nil {
			return Referential{}, err
		}
		out.SecondCase = &secondCase

		if c, ok := stream.NextConsonant(); ok {
			list, err := ParseReferentList(string(c))
			if err != nil {
				return Referential{}, err
			}
			out.Kind = ReferentialDual
			out.SecondList = list
		}
		return out, nil
	}

	cs, ok := stream.NextConsonant()
	if !ok {
		return Referential{}, ErrExpectedReferent
	}
	spec, ok := specFromCs(cs)
	if !ok {
		return Referential{}, ErrExpectedReferent
	}
	out.Kind = ReferentialCombination
	out.Specification = spec

	for {
		save := *stream
		affix, err := nextVxCs(stream)
		if err != nil {
			*stream = save
			break
		}
		out.Affixes = append(out.Affixes, affix)
	}

	switch {
	case stream.NextUa():
		c := CaseTHM
		out.SecondCase = &c
	default:
		if v, ok := stream.NextVowel(); ok {
			// A plain word-final a is a phonotactic filler, not a case.
			if v != Vowel(SeqV1, D1) {
				secondCase, err := CaseFromVc(v)
				if err != nil {
					return Referential{}, err
				}
				out.SecondCase = &secondCase
			}
		}
	}
	return out, nil
}

func (r Referential) Gloss(flags GlossFlags) string {
	var b strings.Builder
	b.WriteString(r.Head.Gloss(flags))

	switch r.Kind {
	case ReferentialSingle:
		if r.SecondCase != nil {
			addDashed(&b, r.FirstCase.GlossStatic(flags))
			addDashed(&b, r.SecondCase.GlossStatic(flags))
		} else {
			addDashed(&b, r.FirstCase.GlossStaticNonDefault(flags))
		}

	case ReferentialDual:
		addDashed(&b, r.FirstCase.GlossStatic(flags))
		addDashed(&b, r.SecondCase.GlossStatic(flags))
		addDashed(&b, r.SecondList.Gloss(flags))

	case ReferentialCombination:
		addDashed(&b, r.FirstCase.GlossStaticNonDefault(flags))
		addDashed(&b, r.Specification.GlossStatic(flags))
		for _, affix := range r.Affixes {
			addDashed(&b, affix.Gloss(flags))
		}
		if r.SecondCase != nil {
			addDashed(&b, r.SecondCase.GlossStatic(flags))
		}
	}

	if r.Essence != EssenceNRM || flags.Matches(GlossShowDefaults) {
		addDashed(&b, r.Essence.GlossStatic(flags))
	}
	return b.String()
}

func (r Referential) GlossNonDefault(flags GlossFlags) string { return r.Gloss(flags) }
