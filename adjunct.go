package ithkuil

import "strconv"

// ParsingAdjunct restores the stress class of the preceding word when that
// word could not carry its own stress marking.
type ParsingAdjunct struct {
	Stress Stress
}

func (a ParsingAdjunct) Gloss(flags GlossFlags) string {
	return a.Stress.GlossStatic(flags)
}

func (a ParsingAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// ParseParsingAdjunct reads a Vp vowel followed by a glottal stop.
func ParseParsingAdjunct(stream *TokenStream, flags ParseFlags) (ParsingAdjunct, error) {
	v, ok := stream.NextVowel()
	if !ok {
		return ParsingAdjunct{}, ErrExpectedVp
	}
	stress, ok := VpFromVowel(v)
	if !ok {
		return ParsingAdjunct{}, ErrExpectedVp
	}
	if !stream.NextGlottalStop() {
		return ParsingAdjunct{}, ErrExpectedGs
	}
	return ParsingAdjunct{Stress: stress}, nil
}

// BiasAdjunct is a bare Cb consonant cluster.
type BiasAdjunct struct {
	Bias Bias
}

func (a BiasAdjunct) Gloss(flags GlossFlags) string {
	return a.Bias.GlossStatic(flags)
}

func (a BiasAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

func ParseBiasAdjunct(stream *TokenStream, flags ParseFlags) (BiasAdjunct, error) {
	c, ok := stream.NextConsonant()
	if !ok {
		return BiasAdjunct{}, ErrExpectedCb
	}
	bias, ok := BiasFromCb(c)
	if !ok {
		return BiasAdjunct{}, ErrExpectedCb
	}
	return BiasAdjunct{Bias: bias}, nil
}

// MCSAdjunct applies a mood or case scope to the next word. The Vm spelling
// fixes which of the two readings is meant.
type MCSAdjunct struct {
	MCS    MoodOrCaseScope
	IsMood bool
}

func (a MCSAdjunct) Gloss(flags GlossFlags) string {
	if a.IsMood {
		return a.MCS.Mood().GlossStatic(flags)
	}
	return a.MCS.CaseScope().GlossStatic(flags)
}

func (a MCSAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// ParseMCSAdjunct reads the fixed head hr followed by a Vm vowel.
func ParseMCSAdjunct(stream *TokenStream, flags ParseFlags) (MCSAdjunct, error) {
	h, ok := stream.NextH()
	if !ok || h != FormHR {
		return MCSAdjunct{}, ErrExpectedHr
	}
	v, ok := stream.NextVowel()
	if !ok {
		return MCSAdjunct{}, ErrExpectedVm
	}
	mcs, ok := VmFromVowel(v)
	if !ok {
		return MCSAdjunct{}, ErrExpectedVm
	}
	return MCSAdjunct{MCS: mcs, IsMood: vmIsMood(v)}, nil
}

// RegisterAdjunct opens or closes a register.
type RegisterAdjunct struct {
	Register Register
}

func (a RegisterAdjunct) Gloss(flags GlossFlags) string {
	return a.Register.GlossStatic(flags)
}

func (a RegisterAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// ParseRegisterAdjunct reads the fixed head h followed by a register vowel.
func ParseRegisterAdjunct(stream *TokenStream, flags ParseFlags) (RegisterAdjunct, error) {
	h, ok := stream.NextH()
	if !ok || h != FormH {
		return RegisterAdjunct{}, ErrExpectedHh
	}
	v, ok := stream.NextVowel()
	if !ok {
		return RegisterAdjunct{}, ErrExpectedVm
	}
	register, ok := RegisterFromVowel(v)
	if !ok {
		return RegisterAdjunct{}, ErrExpectedVm
	}
	return RegisterAdjunct{Register: register}, nil
}

// SuppletiveAdjunct is a carrier, quotative, naming, or phrasal head with a
// case.
type SuppletiveAdjunct struct {
	Mode SuppletiveMode
	Case Case
}

func (a SuppletiveAdjunct) Gloss(flags GlossFlags) string {
	out := a.Mode.GlossStatic(flags)
	if a.Case != CaseTHM || flags.Matches(GlossShowDefaults) {
		out += "-" + a.Case.GlossStatic(flags)
	}
	return out
}

func (a SuppletiveAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

func ParseSuppletiveAdjunct(stream *TokenStream, flags ParseFlags) (SuppletiveAdjunct, error) {
	h, ok := stream.NextH()
	if !ok {
		return SuppletiveAdjunct{}, ErrExpectedCp
	}
	mode, ok := CpFromHForm(h)
	if !ok {
		return SuppletiveAdjunct{}, ErrExpectedCp
	}
	v, ok := stream.NextVowel()
	if !ok {
		return SuppletiveAdjunct{}, ErrExpectedVc
	}
	c, err := CaseFromVc(v)
	if err != nil {
		return SuppletiveAdjunct{}, err
	}
	return SuppletiveAdjunct{Mode: mode, Case: c}, nil
}

// NumericAdjunct is a bare numeral.
type NumericAdjunct struct {
	IntegerPart uint64
}

func (a NumericAdjunct) Gloss(GlossFlags) string {
	return "‘" + strconv.FormatUint(a.IntegerPart, 10) + "’"
}

func (a NumericAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

func ParseNumericAdjunct(stream *TokenStream, flags ParseFlags) (NumericAdjunct, error) {
	n, ok := stream.NextNumeral()
	if !ok {
		return NumericAdjunct{}, ErrExpectedNn
	}
	return NumericAdjunct{IntegerPart: n.IntegerPart}, nil
}

// ModularMode says whether a modular adjunct applies to the whole following
// formative or only to one half of a concatenation pair.
type ModularMode uint8

const (
	ModularFull ModularMode = iota
	ModularParent
	ModularConcatenated
)

func (m ModularMode) GlossStatic(flags GlossFlags) string {
	switch m {
	case ModularParent:
		return glossPick(flags, "{parent}", "{parent formative only}")
	case ModularConcatenated:
		return glossPick(flags, "{concat.}", "{concatenated formative only}")
	}
	return glossPick(flags, "{full}", "{full}")
}

func (m ModularMode) GlossStaticNonDefault(flags GlossFlags) string {
	if m == ModularFull && !flags.Matches(GlossShowDefaults) {
		return ""
	}
	return m.GlossStatic(flags)
}

func (s ModularScope) GlossStaticNonDefault(flags GlossFlags) string {
	if s == ScopeFormative && !flags.Matches(GlossShowDefaults) {
		return ""
	}
	return s.GlossStatic(flags)
}

// ModularKind distinguishes the three shapes a modular adjunct can take.
type ModularKind uint8

const (
	ModularAspect ModularKind = iota
	ModularNonScoped
	ModularScoped
)

// ModularAdjunct carries Vn material that scopes over a nearby formative.
// An aspect-only adjunct has just the Aspect field; the other two shapes
// carry one or two VnCn pairs and end in either a plain non-aspectual Vn or
// a Vh scope marker.
type ModularAdjunct struct {
	Kind   ModularKind
	Mode   ModularMode
	Aspect Aspect
	Vn1    VnForm
	Cn     ArbitraryMoodOrCaseScope
	Vn2    VnForm
	Vn3    VnForm
	Scope  ModularScope
}

func parseModularMode(stream *TokenStream) ModularMode {
	if h, ok := stream.Peek().(HForm); ok {
		switch h {
		case FormW:
			stream.Next()
			return ModularParent
		case FormY:
			stream.Next()
			return ModularConcatenated
		}
	}
	return ModularFull
}

// parseVnCn reads a Vn vowel and its Cn h-form. The Cn series decides
// whether the vowel is aspectual.
func parseVnCn(stream *TokenStream) (VnForm, ArbitraryMoodOrCaseScope, error) {
	v, ok := stream.NextVowel()
	if !ok {
		return nil, 0, ErrExpectedVn
	}
	if v.HasGlottalStop {
		return nil, 0, ErrGlottalizedVn
	}
	h, ok := stream.NextH()
	if !ok {
		return nil, 0, ErrExpectedCn
	}
	mcs, aspect, ok := CnFromConsonant(h)
	if !ok {
		return nil, 0, ErrExpectedCn
	}
	vn, ok := VnFromVowel(v, aspect)
	if !ok {
		return nil, 0, ErrExpectedVn
	}
	return vn, mcs, nil
}

// parseVnCm reads a Vn vowel closed by n or ň.
func parseVnCm(stream *TokenStream) (VnForm, error) {
	v, ok := stream.NextVowel()
	if !ok {
		return nil, ErrExpectedVn
	}
	if v.HasGlottalStop {
		return nil, ErrGlottalizedVn
	}
	c, ok := stream.NextConsonant()
	if !ok {
		return nil, ErrExpectedCm
	}
	aspect, ok := CmFromConsonant(c)
	if !ok {
		return nil, ErrExpectedCm
	}
	vn, ok := VnFromVowel(v, aspect)
	if !ok {
		return nil, ErrExpectedVn
	}
	return vn, nil
}

func ParseModularAdjunct(stream *TokenStream, flags ParseFlags) (ModularAdjunct, error) {
	mode := parseModularMode(stream)

	save := *stream
	vn1, cn, err := parseVnCn(stream)
	if err != nil {
		*stream = save
		v, ok := stream.NextVowel()
		if !ok {
			return ModularAdjunct{}, ErrExpectedVn
		}
		if v.HasGlottalStop {
			return ModularAdjunct{}, ErrGlottalizedVn
		}
		vn, ok := VnFromVowel(v, true)
		if !ok {
			return ModularAdjunct{}, ErrExpectedVn
		}
		aspect, ok := vn.(Aspect)
		if !ok {
			return ModularAdjunct{}, ErrExpectedVn
		}
		return ModularAdjunct{Kind: ModularAspect, Mode: mode, Aspect: aspect}, nil
	}

	var vn2 VnForm
	save = *stream
	if vn, err := parseVnCm(stream); err == nil {
		vn2 = vn
	} else {
		*stream = save
	}

	stress, marked := stream.Stress()
	switch {
	case marked && stress == StressUltimate:
		v, ok := stream.NextVowel()
		if !ok {
			return ModularAdjunct{}, ErrExpectedVh
		}
		scope, ok := VhFromVowel(v)
		if !ok {
			return ModularAdjunct{}, ErrExpectedVh
		}
		return ModularAdjunct{
			Kind:  ModularScoped,
			Mode:  mode,
			Vn1:   vn1,
			Cn:    cn,
			Vn2:   vn2,
			Scope: scope,
		}, nil

	case marked && stress == StressAntepenultimate:
		return ModularAdjunct{}, ErrAntepenultimateStress

	default:
		v, ok := stream.NextVowel()
		if !ok {
			return ModularAdjunct{}, ErrExpectedVn
		}
		if v.HasGlottalStop {
			return ModularAdjunct{}, ErrGlottalizedVn
		}
		vn3, ok := VnFromVowel(v, false)
		if !ok {
			return ModularAdjunct{}, ErrExpectedVn
		}
		return ModularAdjunct{
			Kind: ModularNonScoped,
			Mode: mode,
			Vn1:  vn1,
			Cn:   cn,
			Vn2:  vn2,
			Vn3:  vn3,
		}, nil
	}
}

func (a ModularAdjunct) Gloss(flags GlossFlags) string {
	if a.Kind == ModularAspect {
		out := a.Mode.GlossStaticNonDefault(flags)
		if out != "" {
			out += "-"
		}
		return out + a.Aspect.GlossStatic(flags)
	}

	var parts []string
	if s := a.Mode.GlossStaticNonDefault(flags); s != "" {
		parts = append(parts, s)
	}
	if s := vnGlossNonDefault(a.Vn1, flags); s != "" {
		parts = append(parts, s)
	}
	if s := a.Cn.GlossStaticNonDefault(flags); s != "" {
		parts = append(parts, s)
	}
	if a.Vn2 != nil {
		if s := vnGlossNonDefault(a.Vn2, flags); s != "" {
			parts = append(parts, s)
		}
	}
	if a.Kind == ModularScoped {
		if s := a.Scope.GlossStaticNonDefault(flags); s != "" {
			parts = append(parts, s)
		}
	} else {
		if s := vnGlossNonDefault(a.Vn3, flags); s != "" {
			parts = append(parts, s)
		}
	}
	if len(parts) == 0 {
		return ValenceMNO.GlossStatic(flags)
	}
	out := parts[0]
	for _, p := range parts[1:] {
		out += "-" + p
	}
	return out
}

func (a ModularAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// AffixualMode says whether an affixual adjunct applies to a full formative
// or only to the concatenated half of a concatenation pair.
type AffixualMode uint8

const (
	AffixualFull AffixualMode = iota
	AffixualConcatenated
)

func (m AffixualMode) GlossStatic(flags GlossFlags) string {
	if m == AffixualConcatenated {
		return glossPick(flags, "{concat.}", "{concatenated formative only}")
	}
	return glossPick(flags, "{full}", "{full}")
}

func (m AffixualMode) GlossStaticNonDefault(flags GlossFlags) string {
	if m == AffixualFull && !flags.Matches(GlossShowDefaults) {
		return ""
	}
	return m.GlossStatic(flags)
}

// nextVxCs reads one affix pair: a degree vowel followed by its consonant
// or numeral.
func nextVxCs(stream *TokenStream) (Affix, error) {
	vx, ok := stream.NextVowel()
	if !ok {
		return nil, ErrExpectedVx
	}
	if vx.HasGlottalStop {
		return nil, ErrExpectedVx
	}
	if cs, ok := stream.NextConsonant(); ok {
		return DecodeAffix(vx, string(cs))
	}
	if n, ok := stream.NextNumeral(); ok {
		return DecodeNumericAffix(vx, n)
	}
	return nil, ErrExpectedCs
}

// nextCsVxCz reads the first segment of a multiple-affix adjunct. The Cz
// h-form and the Vx glottal stop together select the first scope.
func nextCsVxCz(stream *TokenStream) (Affix, AffixualScope, error) {
	cs, ok := stream.NextConsonant()
	if !ok {
		return nil, 0, ErrExpectedCs
	}
	vx, ok := stream.NextVowel()
	if !ok {
		return nil, 0, ErrExpectedVx
	}
	cz, ok := stream.NextH()
	if !ok {
		return nil, 0, ErrExpectedCz
	}
	scope, ok := CzFromHForm(cz, vx.HasGlottalStop)
	if !ok {
		return nil, 0, ErrExpectedCz
	}
	vx.HasGlottalStop = false
	affix, err := DecodeAffix(vx, string(cs))
	if err != nil {
		return nil, 0, err
	}
	return affix, scope, nil
}

// nextVs reads the optional trailing scope vowel of a single-affix adjunct.
func nextVs(stream *TokenStream) (AffixualScope, error) {
	if stream.IsDone() {
		return ScopeVDomain, nil
	}
	v, ok := stream.NextVowel()
	if !ok {
		return 0, ErrExpectedVs
	}
	scope, ok := ScopeFromVowel(v)
	if !ok {
		return 0, ErrExpectedVs
	}
	return scope, nil
}

// nextVz reads the optional trailing scope vowel of a multiple-affix
// adjunct. Unlike Vs, its absence is recorded rather than defaulted.
func nextVz(stream *TokenStream) (*AffixualScope, error) {
	if stream.IsDone() {
		return nil, nil
	}
	v, ok := stream.NextVowel()
	if !ok {
		return nil, ErrExpectedVz
	}
	scope, ok := ScopeFromVowel(v)
	if !ok {
		return nil, ErrExpectedVz
	}
	return &scope, nil
}

func affixualMode(stream *TokenStream) (AffixualMode, error) {
	stress, marked := stream.Stress()
	switch {
	case marked && stress == StressUltimate:
		return AffixualConcatenated, nil
	case marked && stress == StressAntepenultimate:
		return 0, ErrAntepenultimateStress
	}
	return AffixualFull, nil
}

// SingleAffixAdjunct is a stand-alone affix with a scope and mode.
type SingleAffixAdjunct struct {
	Affix Affix
	Scope AffixualScope
	Mode  AffixualMode
}

func ParseSingleAffixAdjunct(stream *TokenStream, flags ParseFlags) (SingleAffixAdjunct, error) {
	affix, err := nextVxCs(stream)
	if err != nil {
		return SingleAffixAdjunct{}, err
	}
	scope, err := nextVs(stream)
	if err != nil {
		return SingleAffixAdjunct{}, err
	}
	mode, err := affixualMode(stream)
	if err != nil {
		return SingleAffixAdjunct{}, err
	}
	return SingleAffixAdjunct{Affix: affix, Scope: scope, Mode: mode}, nil
}

func (a SingleAffixAdjunct) Gloss(flags GlossFlags) string {
	out := a.Affix.Gloss(flags)
	if s := a.Scope.GlossStaticNonDefault(flags); s != "" {
		out += "-" + s
	}
	if s := a.Mode.GlossStaticNonDefault(flags); s != "" {
		out += "-" + s
	}
	return out
}

func (a SingleAffixAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }

// MultipleAffixAdjunct is a run of stand-alone affixes. The first affix's
// scope rides on its Cz consonant; the rest optionally share a final Vz
// scope.
type MultipleAffixAdjunct struct {
	FirstAffix   Affix
	FirstScope   AffixualScope
	OtherAffixes []Affix
	OtherScope   *AffixualScope
	Mode         AffixualMode
}

func ParseMultipleAffixAdjunct(stream *TokenStream, flags ParseFlags) (MultipleAffixAdjunct, error) {
	stream.NextSchwa()

	first, firstScope, err := nextCsVxCz(stream)
	if err != nil {
		return MultipleAffixAdjunct{}, err
	}

	second, err := nextVxCs(stream)
	if err != nil {
		return MultipleAffixAdjunct{}, err
	}
	others := []Affix{second}
	for {
		save := *stream
		affix, err := nextVxCs(stream)
		if err != nil {
			*stream = save
			break
		}
		others = append(others, affix)
	}

	otherScope, err := nextVz(stream)
	if err != nil {
		return MultipleAffixAdjunct{}, err
	}
	mode, err := affixualMode(stream)
	if err != nil {
		return MultipleAffixAdjunct{}, err
	}
	return MultipleAffixAdjunct{
		FirstAffix:   first,
		FirstScope:   firstScope,
		OtherAffixes: others,
		OtherScope:   otherScope,
		Mode:         mode,
	}, nil
}

func (a MultipleAffixAdjunct) Gloss(flags GlossFlags) string {
	out := a.FirstAffix.Gloss(flags)
	if s := a.FirstScope.GlossStaticNonDefault(flags); s != "" {
		out += "-" + s
	}
	for _, affix := range a.OtherAffixes {
		out += "-" + affix.Gloss(flags)
	}
	if a.OtherScope != nil {
		if s := a.OtherScope.GlossStaticNonDefault(flags); s != "" {
			out += "-" + s
		}
	}
	if s := a.Mode.GlossStaticNonDefault(flags); s != "" {
		out += "-" + s
	}
	return out
}

func (a MultipleAffixAdjunct) GlossNonDefault(flags GlossFlags) string { return a.Gloss(flags) }
