package ithkuil

// CaShortcut names which Ca complex, if any, the Cc+Vv prefix encodes.
type CaShortcut uint8

const (
	NoCaShortcut CaShortcut = iota
	CaShortcutW
	CaShortcutY
)

// Concatenation marks a formative as a type-1 or type-2 concatenated head.
type Concatenation uint8

const (
	NoConcatenation Concatenation = iota
	ConcatenationT1
	ConcatenationT2
)

// Cc is the optional first slot of a formative.
type Cc struct {
	Shortcut      CaShortcut
	Concatenation Concatenation
}

// CcFromHForm decodes slot I. Only eight h-forms are valid there.
func CcFromHForm(h HForm) (Cc, bool) {
	switch h.Sequence {
	case SeqHPlain:
		switch h.Degree {
		case D1: // h
			return Cc{NoCaShortcut, ConcatenationT1}, true
		case D2: // hl
			return Cc{CaShortcutW, ConcatenationT1}, true
		case D3: // hr
			return Cc{CaShortcutW, ConcatenationT2}, true
		case D4: // hm
			return Cc{CaShortcutY, ConcatenationT1}, true
		case D5: // hn
			return Cc{CaShortcutY, ConcatenationT2}, true
		}
	case SeqHW:
		switch h.Degree {
		case D1: // w
			return Cc{CaShortcutW, NoConcatenation}, true
		case D2: // hw
			return Cc{NoCaShortcut, ConcatenationT2}, true
		}
	case SeqHY:
		if h.Degree == D1 { // y
			return Cc{CaShortcutY, NoConcatenation}, true
		}
	}
	return Cc{}, false
}

// AffixShortcut names the slot-VII affix a sequence-2, -3 or -4 Vv smuggles
// in when no Ca shortcut is active.
type AffixShortcut uint8

const (
	NoAffixShortcut AffixShortcut = iota
	AffixShortcutNEG4
	AffixShortcutDCD4
	AffixShortcutDCD5
)

// affixShortcutFromSeq reads the shortcut off the Vv sequence.
func affixShortcutFromSeq(seq VowelSeq) AffixShortcut {
	switch seq {
	case SeqV2:
		return AffixShortcutNEG4
	case SeqV3:
		return AffixShortcutDCD4
	case SeqV4:
		return AffixShortcutDCD5
	}
	return NoAffixShortcut
}

// shortcutAffix expands an affix shortcut into the slot-VII affix it stands
// for.
func (s AffixShortcut) shortcutAffix() (Affix, bool) {
	switch s {
	case AffixShortcutNEG4:
		return PlainAffix{Cs: "r", Degree: D4, Type: AffixType1}, true
	case AffixShortcutDCD4:
		return PlainAffix{Cs: "t", Degree: D4, Type: AffixType1}, true
	case AffixShortcutDCD5:
		return PlainAffix{Cs: "t", Degree: D5, Type: AffixType1}, true
	}
	return nil, false
}

// RootKind distinguishes the four slot-III root readings.
type RootKind uint8

const (
	RootNormal RootKind = iota
	RootNumeric
	RootReferential
	RootAffixual
)

// Vv is the decoded slot-II vowel. The raw sequence is kept because its
// meaning depends on the Cc slot: with a Ca shortcut it selects the Ca
// value, otherwise it selects an affix shortcut.
type Vv struct {
	Kind     RootKind
	Version  Version
	Stem     Stem
	Function Function
	Sequence VowelSeq
}

// VvFromVowel decodes slot II. Degree 5 selects an affixual root, degree 0
// a referential one; the other degrees carry stem and version for normal
// and numeric roots.
func VvFromVowel(v VowelForm) (Vv, bool) {
	switch v.Degree {
	case D5:
		out := Vv{Kind: RootAffixual, Sequence: v.Sequence}
		switch v.Sequence {
		case SeqV1, SeqV3:
			out.Version = VersionPRC
		default:
			out.Version = VersionCPT
		}
		switch v.Sequence {
		case SeqV1, SeqV2:
			out.Function = FunctionSTA
		default:
			out.Function = FunctionDYN
		}
		return out, true
	case D0:
		out := Vv{Kind: RootReferential, Sequence: v.Sequence}
		switch v.Sequence {
		case SeqV1:
			out.Version = VersionPRC
		case SeqV2:
			out.Version = VersionCPT
		default:
			return Vv{}, false
		}
		return out, true
	}

	out := Vv{Kind: RootNormal, Sequence: v.Sequence}
	switch v.Degree {
	case D1, D3, D9, D7:
		out.Version = VersionPRC
	default:
		out.Version = VersionCPT
	}
	switch v.Degree {
	case D1, D2:
		out.Stem = StemS1
	case D3, D4:
		out.Stem = StemS2
	case D9, D8:
		out.Stem = StemS3
	case D7, D6:
		out.Stem = StemS0
	}
	return out, true
}

// Vr is the decoded slot-IV vowel.
type Vr struct {
	Specification Specification
	Function      Function
	Context       Context
}

// VrFromVowel decodes slot IV. Degree 5 and 0 are not assigned.
func VrFromVowel(v VowelForm) (Vr, bool) {
	var out Vr
	switch v.Degree {
	case D1, D9:
		out.Specification = SpecBSC
	case D2, D8:
		out.Specification = SpecCTE
	case D3, D7:
		out.Specification = SpecCSV
	case D4, D6:
		out.Specification = SpecOBJ
	default:
		return Vr{}, false
	}
	switch v.Degree {
	case D1, D2, D3, D4:
		out.Function = FunctionSTA
	default:
		out.Function = FunctionDYN
	}
	out.Context = Context(v.Sequence)
	return out, true
}

// VrFromProperties is the encoding inverse of VrFromVowel.
func VrFromProperties(spec Specification, fn Function, ctx Context) VowelForm {
	var deg VowelDegree
	switch spec {
	case SpecBSC:
		deg = D1
	case SpecCTE:
		deg = D2
	case SpecCSV:
		deg = D3
	default:
		deg = D4
	}
	if fn == FunctionDYN {
		deg = D9 + D1 - deg
	}
	return Vowel(VowelSeq(ctx), deg)
}

// CnFromConsonant decodes a slot-VIII Cn. The plain series carries mood or
// case-scope; the w and y series flag the preceding Vn as an aspect.
func CnFromConsonant(h HForm) (mcs ArbitraryMoodOrCaseScope, aspect bool, ok bool) {
	switch h.Sequence {
	case SeqHPlain:
		if h.Degree >= D1 && h.Degree <= D6 {
			return ArbitraryMoodOrCaseScope(h.Degree - D1), false, true
		}
	case SeqHW, SeqHY:
		if h.Degree >= D1 && h.Degree <= D6 {
			return ArbitraryMoodOrCaseScope(h.Degree - D1), true, true
		}
	}
	return 0, false, false
}

// CnToConsonant is the encoding inverse of CnFromConsonant.
func CnToConsonant(mcs ArbitraryMoodOrCaseScope, aspect bool) HForm {
	if aspect {
		return HForm{SeqHW, VowelDegree(mcs) + D1}
	}
	return HForm{SeqHPlain, VowelDegree(mcs) + D1}
}

// CmFromConsonant decodes the modular-adjunct Cm slot.
func CmFromConsonant(c Consonant) (aspect bool, ok bool) {
	switch c {
	case "n":
		return false, true
	case "ň":
		return true, true
	}
	return false, false
}

// ModularScope says which part of the following formative a modular
// adjunct's final Vn applies to.
type ModularScope uint8

const (
	ScopeFormative ModularScope = iota
	ScopeMCS
	ScopeOverAdjacent
	ScopeUnderAdjacent
)

func (s ModularScope) GlossStatic(flags GlossFlags) string {
	switch s {
	case ScopeFormative:
		return glossPick(flags, "{form.}", "{scope over formative}")
	case ScopeMCS:
		return glossPick(flags, "{mcs}", "{scope over mood/case-scope}")
	case ScopeOverAdjacent:
		return glossPick(flags, "{over adj.}", "{scope over formative and adjacent adjuncts}")
	default:
		return glossPick(flags, "{under adj.}", "{scope under adjacent adjuncts}")
	}
}

// VhFromVowel decodes the modular-adjunct scope vowel.
func VhFromVowel(v VowelForm) (ModularScope, bool) {
	if v.Sequence != SeqV1 || v.HasGlottalStop {
		return 0, false
	}
	switch v.Degree {
	case D1:
		return ScopeFormative, true
	case D3:
		return ScopeMCS, true
	case D4, D9:
		return ScopeOverAdjacent, true
	case D7:
		return ScopeUnderAdjacent, true
	}
	return 0, false
}

// VpFromVowel decodes the parsing-adjunct vowel into the stress it restores.
func VpFromVowel(v VowelForm) (Stress, bool) {
	if v.Sequence != SeqV1 || v.HasGlottalStop {
		return 0, false
	}
	switch v.Degree {
	case D1:
		return StressMonosyllabic, true
	case D3:
		return StressUltimate, true
	case D7:
		return StressPenultimate, true
	case D9:
		return StressAntepenultimate, true
	}
	return 0, false
}

// MoodOrCaseScope is the payload of a mood/case-scope adjunct, decoded from
// its Vm vowel.
type MoodOrCaseScope = ArbitraryMoodOrCaseScope

// VmFromVowel decodes the mood/case-scope adjunct vowel.
func VmFromVowel(v VowelForm) (MoodOrCaseScope, bool) {
	if v.HasGlottalStop {
		return 0, false
	}
	type key struct {
		seq VowelSeq
		deg VowelDegree
	}
	m, ok := map[key]MoodOrCaseScope{
		{SeqV1, D1}: CnFACCCN,
		{SeqV1, D3}: CnSUBCCA,
		{SeqV1, D4}: CnASMCCS,
		{SeqV1, D7}: CnSPCCCQ,
		{SeqV1, D6}: CnCOUCCP,
		{SeqV1, D9}: CnHYPCCV,
		{SeqV2, D1}: CnFACCCN,
		{SeqV2, D3}: CnSUBCCA,
		{SeqV2, D8}: CnASMCCS,
		{SeqV2, D7}: CnSPCCCQ,
		{SeqV1, D8}: CnCOUCCP,
		{SeqV2, D9}: CnHYPCCV,
	}[key{v.Sequence, v.Degree}]
	if !ok {
		return 0, false
	}
	return m, true
}

// vmIsMood reports whether a Vm spelling selects the mood reading; the
// sequence-2 spellings (and the a/ai pair) select case-scope.
func vmIsMood(v VowelForm) bool {
	if v.Sequence == SeqV1 && v.Degree == D8 {
		return false
	}
	return v.Sequence == SeqV1
}

// RegisterFromVowel decodes the register-adjunct vowel.
func RegisterFromVowel(v VowelForm) (Register, bool) {
	if v.HasGlottalStop {
		return 0, false
	}
	type key struct {
		seq VowelSeq
		deg VowelDegree
	}
	r, ok := map[key]Register{
		{SeqV1, D1}: RegisterDSV,
		{SeqV1, D3}: RegisterPNT,
		{SeqV1, D4}: RegisterSPF,
		{SeqV1, D7}: RegisterEXM,
		{SeqV1, D9}: RegisterCGT,
		{SeqV2, D1}: RegisterDSVEnd,
		{SeqV2, D3}: RegisterPNTEnd,
		{SeqV2, D8}: RegisterSPFEnd,
		{SeqV2, D7}: RegisterEXMEnd,
		{SeqV2, D9}: RegisterCGTEnd,
		{SeqV1, D8}: RegisterEnd,
	}[key{v.Sequence, v.Degree}]
	if !ok {
		return 0, false
	}
	return r, true
}

// CpFromHForm decodes a suppletive-adjunct head.
func CpFromHForm(h HForm) (SuppletiveMode, bool) {
	if h.Sequence != SeqHPlain {
		return 0, false
	}
	switch h.Degree {
	case D2: // hl
		return SuppletiveCAR, true
	case D4: // hm
		return SuppletiveQUO, true
	case D5: // hn
		return SuppletiveNAM, true
	case D6: // hň
		return SuppletivePHR, true
	}
	return 0, false
}

// AffixualScope says which formative slot a stand-alone affix applies to.
type AffixualScope uint8

const (
	ScopeVDomain AffixualScope = iota
	ScopeVSubDomain
	ScopeVIIDomain
	ScopeVIISubDomain
	ScopeAdjFormative
	ScopeAdjOverAdjacent
)

func (s AffixualScope) GlossStatic(flags GlossFlags) string {
	switch s {
	case ScopeVDomain:
		return glossPick(flags, "{v.dom}", "{scope over slot V}")
	case ScopeVSubDomain:
		return glossPick(flags, "{v.sub}", "{scope under slot V}")
	case ScopeVIIDomain:
		return glossPick(flags, "{vii.dom}", "{scope over slot VII}")
	case ScopeVIISubDomain:
		return glossPick(flags, "{vii.sub}", "{scope under slot VII}")
	case ScopeAdjFormative:
		return glossPick(flags, "{form.}", "{scope over formative}")
	default:
		return glossPick(flags, "{adj.}", "{scope over formative and adjacent adjuncts}")
	}
}

func (s AffixualScope) GlossStaticNonDefault(flags GlossFlags) string {
	if s == ScopeVDomain && !flags.Matches(GlossShowDefaults) {
		return ""
	}
	return s.GlossStatic(flags)
}

// ScopeFromVowel decodes a Vs or Vz scope vowel.
func ScopeFromVowel(v VowelForm) (AffixualScope, bool) {
	if v.HasGlottalStop || v.Sequence != SeqV1 {
		return 0, false
	}
	switch v.Degree {
	case D1: // a
		return ScopeVDomain, true
	case D9: // u
		return ScopeVSubDomain, true
	case D3: // e
		return ScopeVIIDomain, true
	case D4: // i
		return ScopeVIISubDomain, true
	case D7: // o
		return ScopeAdjFormative, true
	case D6: // ö
		return ScopeAdjOverAdjacent, true
	}
	return 0, false
}

// CzFromHForm decodes the scope consonant of a multiple-affix adjunct.
func CzFromHForm(h HForm, glottal bool) (AffixualScope, bool) {
	switch h.Sequence {
	case SeqHPlain:
		switch h.Degree {
		case D1: // h
			if glottal {
				return ScopeVSubDomain, true
			}
			return ScopeVDomain, true
		case D2: // hl
			if glottal {
				return ScopeVIIDomain, true
			}
		case D3: // hr
			if glottal {
				return ScopeVIISubDomain, true
			}
		}
	case SeqHW:
		if h.Degree == D2 { // hw
			if glottal {
				return ScopeAdjOverAdjacent, true
			}
			return ScopeAdjFormative, true
		}
	}
	return 0, false
}

// biasTable maps Cb clusters to biases, in bias order.
var biasTable = []struct {
	cb   string
	abbr string
	name string
}{
	{"lf", "ACC", "accidental"},
	{"mçt", "ACH", "achievemental"},
	{"lļ", "ADS", "admissive"},
	{"drr", "ANN", "annunciative"},
	{"lst", "ANP", "anticipative"},
	{"řs", "APB", "approbative"},
	{"vvz", "APH", "apprehensive"},
	{"šzm", "ARB", "arbitrary"},
	{"vvr", "ATE", "attentive"},
	{"ňj", "CMD", "comedic"},
	{"pļļ", "CNV", "contensive"},
	{"gzj", "COI", "coincidental"},
	{"ššç", "CRP", "corruptive"},
	{"mmf", "CRR", "corrective"},
	{"gzz", "CTP", "contemptive"},
	{"ffx", "CTV", "contemplative"},
	{"ňţ", "DCC", "disconcertive"},
	{"mmţ", "DEJ", "dejective"},
	{"cč", "DES", "desperative"},
	{"kff", "DFD", "diffident"},
	{"ẓmm", "DIS", "dismissive"},
	{"žžg", "DLC", "delectative"},
	{"řřx", "DOL", "dolorous"},
	{"ffč", "DPB", "disapprobative"},
	{"mřř", "DRS", "derisive"},
	{"ţţs", "DUB", "dubitative"},
	{"vvt", "EUH", "euphoric"},
	{"vĺ", "EUP", "euphemistic"},
	{"rrs", "EXA", "exasperative"},
	{"ňňs", "EXG", "exigent"},
	{"lzp", "FOR", "fortuitous"},
	{"žžj", "FSC", "fascinative"},
	{"mmh", "GRT", "gratificative"},
	{"pšš", "IDG", "indignative"},
	{"vvm", "IFT", "infatuative"},
	{"vll", "IPL", "implicative"},
	{"žžv", "IPT", "impatient"},
	{"mmž", "IRO", "ironic"},
	{"lçp", "ISP", "insipid"},
	{"řřn", "IVD", "invidious"},
	{"msk", "MAN", "mandatory"},
	{"pss", "MNF", "manifestive"},
	{"kšš", "OPT", "optimal"},
	{"ksp", "PES", "pessimistic"},
	{"mll", "PPT", "propitious"},
	{"llh", "PPX", "perplexive"},
	{"sl", "PPV", "propositive"},
	{"žžt", "PSC", "prosaic"},
	{"nnţ", "PSM", "presumptive"},
	{"kll", "RAC", "reactive"},
	{"llm", "RFL", "reflective"},
	{"msf", "RSG", "resignative"},
	{"šštļ", "RPU", "repulsive"},
	{"mmļ", "RVL", "revelative"},
	{"ňňk", "SAT", "sarcastic"},
	{"trr", "SGS", "suggestive"},
	{"ltç", "SKP", "skeptical"},
	{"ňňz", "SOL", "solicitative"},
	{"gzn", "STU", "stupefactive"},
	{"llč", "TRP", "trepidative"},
	{"ksk", "VEX", "vexative"},
}

// Bias indexes into biasTable.
type Bias uint8

func (b Bias) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, biasTable[b].abbr, biasTable[b].name)
}

// BiasFromCb decodes a bias-adjunct consonant cluster.
func BiasFromCb(c Consonant) (Bias, bool) {
	for i, row := range biasTable {
		if string(c) == row.cb {
			return Bias(i), true
		}
	}
	return 0, false
}

// Cb returns the bias consonant cluster.
func (b Bias) Cb() Consonant {
	return Consonant(biasTable[b].cb)
}
