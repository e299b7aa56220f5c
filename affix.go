package ithkuil

import (
	"strconv"
	"strings"
)

// Affix is one of the six mutually exclusive affix readings of a Vx+Cs pair.
type Affix interface {
	Glosser
	affix()
}

// PlainAffix is an ordinary affix: a Cs form with a degree and a type.
type PlainAffix struct {
	Cs     string
	Type   AffixType
	Degree VowelDegree
}

func (PlainAffix) affix() {}

func (a PlainAffix) Gloss(flags GlossFlags) string {
	var b strings.Builder
	if flags.Matches(GlossMarkdown) {
		b.WriteString("**")
		b.WriteString(a.Cs)
		b.WriteString("**")
	} else {
		b.WriteString(a.Cs)
	}
	b.WriteByte('/')
	b.WriteString(strconv.Itoa(int(a.Degree)))
	b.WriteString(a.Type.GlossStatic(GlossNone))
	return b.String()
}

func (a PlainAffix) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// NumericAffix carries a numeral root as an affix.
type NumericAffix struct {
	IntegerPart uint64
}

func (NumericAffix) affix() {}

func (a NumericAffix) Gloss(GlossFlags) string {
	return strconv.FormatUint(a.IntegerPart, 10)
}

func (a NumericAffix) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// CaStackingAffix stacks a second Ca onto a formative.
type CaStackingAffix struct {
	Ca Ca
}

func (CaStackingAffix) affix() {}

func (a CaStackingAffix) Gloss(flags GlossFlags) string {
	return "(" + a.Ca.Gloss(flags) + ")"
}

func (a CaStackingAffix) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// CaseStackingAffix stacks a second case onto a formative.
type CaseStackingAffix struct {
	Case Case
}

func (CaseStackingAffix) affix() {}

func (a CaseStackingAffix) Gloss(flags GlossFlags) string {
	label := "(case:"
	if flags.Matches(GlossLong) {
		label = "(case_stacking:"
	}
	return label + a.Case.GlossStatic(flags) + ")"
}

func (a CaseStackingAffix) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// CaseAccessorAffix accesses the case of another formative.
type CaseAccessorAffix struct {
	Case Case
	Mode CaseAccessorMode
	Type AffixType
}

func (CaseAccessorAffix) affix() {}

func (a CaseAccessorAffix) Gloss(flags GlossFlags) string {
	return "(" + a.Mode.GlossStatic(flags) + ":" + a.Case.GlossStatic(flags) + ")" +
		a.Type.GlossStatic(flags)
}

func (a CaseAccessorAffix) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// ReferentialAffix attaches referents in a thematic or appositive case.
// Thematic ones live inside normal affix lists; the appositive reading only
// exists at list level.
type ReferentialAffix struct {
	Referents ReferentList
	Case      Case
}

func (ReferentialAffix) affix() {}

func (a ReferentialAffix) Gloss(flags GlossFlags) string {
	return "(" + a.Referents.Gloss(flags) + "-" + a.Case.GlossStatic(flags) + ")"
}

func (a ReferentialAffix) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// reservedAffixCs is the 14-member set of Cs forms that keep their
// case-stacking or case-accessor reading in every context.
var reservedAffixCs = map[string]bool{
	"lw": true, "ly": true,
	"sw": true, "zw": true, "čw": true, "šw": true, "žw": true, "jw": true,
	"sy": true, "zy": true, "čy": true, "šy": true, "žy": true, "jy": true,
}

// caseAccessorCs decomposes a case-accessor Cs form.
func caseAccessorCs(cs string) (mode CaseAccessorMode, typ AffixType, high bool, ok bool) {
	if len(cs) < 2 {
		return 0, 0, false, false
	}
	switch cs[len(cs)-1] {
	case 'w':
	case 'y':
		high = true
	default:
		return 0, 0, false, false
	}
	switch strings.TrimSuffix(strings.TrimSuffix(cs, "w"), "y") {
	case "s":
		return AccessorNormal, AffixType1, high, true
	case "z":
		return AccessorNormal, AffixType2, high, true
	case "č":
		return AccessorNormal, AffixType3, high, true
	case "š":
		return AccessorInverse, AffixType1, high, true
	case "ž":
		return AccessorInverse, AffixType2, high, true
	case "j":
		return AccessorInverse, AffixType3, high, true
	}
	return 0, 0, false, false
}

// thematicCases maps referential-affix degrees onto the thematic cases.
func thematicCaseFromDegree(d VowelDegree) (Case, bool) {
	if d >= D1 && d <= D9 {
		return Case(d - D1), true
	}
	return 0, false
}

// appositiveCaseFromDegree maps degrees onto the appositive cases.
func appositiveCaseFromDegree(d VowelDegree) (Case, bool) {
	if d >= D1 && d <= D9 {
		return CasePOS + Case(d-D1), true
	}
	return 0, false
}

// DecodeAffix resolves one Vx+Cs pair into an affix. The glottal-stop bit of
// the vowel is ignored here; callers use it for slot bookkeeping.
func DecodeAffix(vx VowelForm, cs string) (Affix, error) {
	if vx.Sequence == SeqV4 && vx.Degree == D0 {
		ca, ok := CaFromString(cs)
		if !ok {
			return nil, ErrExpectedCa
		}
		return CaStackingAffix{Ca: ca}, nil
	}

	switch cs {
	case "lw", "ly":
		if vx.Degree == D0 {
			return nil, ErrCaseStackingDegreeZero
		}
		stacked := VowelForm{
			HasGlottalStop: cs == "ly",
			Sequence:       vx.Sequence,
			Degree:         vx.Degree,
		}
		c, err := CaseFromVc(stacked)
		if err != nil {
			return nil, err
		}
		return CaseStackingAffix{Case: c}, nil
	}

	if mode, typ, high, ok := caseAccessorCs(cs); ok {
		accessed := VowelForm{
			HasGlottalStop: high,
			Sequence:       vx.Sequence,
			Degree:         vx.Degree,
		}
		c, err := CaseFromVc(accessed)
		if err != nil {
			return nil, err
		}
		return CaseAccessorAffix{Case: c, Mode: mode, Type: typ}, nil
	}

	if vx.Sequence == SeqV4 {
		c, ok := thematicCaseFromDegree(vx.Degree)
		if !ok {
			return nil, ErrExpectedVx
		}
		referents, err := ParseAffixualReferentList(cs)
		if err != nil {
			return nil, err
		}
		return ReferentialAffix{Referents: referents, Case: c}, nil
	}

	return PlainAffix{
		Cs:     cs,
		Type:   AffixType(vx.Sequence),
		Degree: vx.Degree,
	}, nil
}

// VxCs is one raw affix pair pulled off a token stream.
type VxCs struct {
	Vx VowelForm
	Cs string
}

// DecodeNumericAffix resolves a Vx+numeral pair.
func DecodeNumericAffix(vx VowelForm, n Numeral) (Affix, error) {
	return NumericAffix{IntegerPart: n.IntegerPart}, nil
}

// AffixList is a formative affix slot: either independent affixes, or one
// appositive referential affix claiming the whole slot.
type AffixList struct {
	Affixes    []Affix
	Appositive *ReferentialAffix
}

// AffixListFromPairs decodes a run of Vx+Cs pairs, applying the list-level
// appositive reinterpretation: a lone sequence-3 pair whose Cs is outside
// the reserved set becomes a single appositive referential affix.
func AffixListFromPairs(pairs []VxCs) (AffixList, error) {
	if len(pairs) == 1 && pairs[0].Vx.Sequence == SeqV3 && !reservedAffixCs[pairs[0].Cs] {
		c, ok := appositiveCaseFromDegree(pairs[0].Vx.Degree)
		if !ok {
			return AffixList{}, ErrAppositiveDegreeZero
		}
		referents, err := ParseAffixualReferentList(pairs[0].Cs)
		if err != nil {
			return AffixList{}, err
		}
		return AffixList{Appositive: &ReferentialAffix{Referents: referents, Case: c}}, nil
	}

	var affixes []Affix
	for _, pair := range pairs {
		affix, err := DecodeAffix(pair.Vx, pair.Cs)
		if err != nil {
			return AffixList{}, err
		}
		affixes = append(affixes, affix)
	}
	return AffixList{Affixes: affixes}, nil
}

// IsEmpty reports whether the list holds no affixes at all.
func (l AffixList) IsEmpty() bool {
	return l.Appositive == nil && len(l.Affixes) == 0
}

// Len counts the affixes in the list. An appositive referential affix
// claims the whole slot and counts as one.
func (l AffixList) Len() int {
	if l.Appositive != nil {
		return 1
	}
	return len(l.Affixes)
}

func (l AffixList) Gloss(flags GlossFlags) string {
	if l.Appositive != nil {
		return l.Appositive.Gloss(flags)
	}
	var b strings.Builder
	for i, affix := range l.Affixes {
		if i > 0 {
			b.WriteByte('-')
		}
		b.WriteString(affix.Gloss(flags))
	}
	return b.String()
}

func (l AffixList) GlossNonDefault(flags GlossFlags) string { return l.Gloss(flags) }
