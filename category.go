package ithkuil

// This file defines every grammatical category the analyzer works with,
// along with its gloss forms. Short glosses are the standard category
// abbreviations; long glosses are snake_case names.

// Version marks a formative as processual or completive.
type Version uint8

const (
	VersionPRC Version = iota
	VersionCPT
)

func (v Version) GlossStatic(flags GlossFlags) string {
	if v == VersionPRC {
		return glossPick(flags, "PRC", "processual")
	}
	return glossPick(flags, "CPT", "completive")
}

func (v Version) GlossStaticNonDefault(flags GlossFlags) string {
	if v == VersionPRC {
		return ""
	}
	return v.GlossStatic(flags)
}

// Stem selects one of a root's three stems, or the whole root (S0).
type Stem uint8

const (
	StemS0 Stem = iota
	StemS1
	StemS2
	StemS3
)

func (s Stem) GlossStatic(flags GlossFlags) string {
	switch s {
	case StemS0:
		return glossPick(flags, "S0", "stem_zero")
	case StemS1:
		return glossPick(flags, "S1", "stem_one")
	case StemS2:
		return glossPick(flags, "S2", "stem_two")
	default:
		return glossPick(flags, "S3", "stem_three")
	}
}

// Function marks a root as stative or dynamic.
type Function uint8

const (
	FunctionSTA Function = iota
	FunctionDYN
)

func (f Function) GlossStatic(flags GlossFlags) string {
	if f == FunctionSTA {
		return glossPick(flags, "STA", "stative")
	}
	return glossPick(flags, "DYN", "dynamic")
}

func (f Function) GlossStaticNonDefault(flags GlossFlags) string {
	if f == FunctionSTA {
		return ""
	}
	return f.GlossStatic(flags)
}

// Specification is the Vr-marked specification.
type Specification uint8

const (
	SpecBSC Specification = iota
	SpecCTE
	SpecCSV
	SpecOBJ
)

func (s Specification) GlossStatic(flags GlossFlags) string {
	switch s {
	case SpecBSC:
		return glossPick(flags, "BSC", "basic")
	case SpecCTE:
		return glossPick(flags, "CTE", "contential")
	case SpecCSV:
		return glossPick(flags, "CSV", "constitutive")
	default:
		return glossPick(flags, "OBJ", "objective")
	}
}

func (s Specification) GlossStaticNonDefault(flags GlossFlags) string {
	if s == SpecBSC {
		return ""
	}
	return s.GlossStatic(flags)
}

// Context is the Vr-marked context.
type Context uint8

const (
	ContextEXS Context = iota
	ContextFNC
	ContextRPS
	ContextAMG
)

func (c Context) GlossStatic(flags GlossFlags) string {
	switch c {
	case ContextEXS:
		return glossPick(flags, "EXS", "existential")
	case ContextFNC:
		return glossPick(flags, "FNC", "functional")
	case ContextRPS:
		return glossPick(flags, "RPS", "representational")
	default:
		return glossPick(flags, "AMG", "amalgamative")
	}
}

func (c Context) GlossStaticNonDefault(flags GlossFlags) string {
	if c == ContextEXS {
		return ""
	}
	return c.GlossStatic(flags)
}

// Affiliation is the first Ca category.
type Affiliation uint8

const (
	AffiliationCSL Affiliation = iota
	AffiliationASO
	AffiliationCOA
	AffiliationVAR
)

func (a Affiliation) GlossStatic(flags GlossFlags) string {
	switch a {
	case AffiliationCSL:
		return glossPick(flags, "CSL", "consolidative")
	case AffiliationASO:
		return glossPick(flags, "ASO", "associative")
	case AffiliationCOA:
		return glossPick(flags, "COA", "coalescent")
	default:
		return glossPick(flags, "VAR", "variative")
	}
}

// Configuration combines plexity, similarity and separability.
type Configuration uint8

const (
	ConfigUPX Configuration = iota
	ConfigMSS
	ConfigMSC
	ConfigMSF
	ConfigMDS
	ConfigMDC
	ConfigMDF
	ConfigMFS
	ConfigMFC
	ConfigMFF
	ConfigDPX
	ConfigDSS
	ConfigDSC
	ConfigDSF
	ConfigDDS
	ConfigDDC
	ConfigDDF
	ConfigDFS
	ConfigDFC
	ConfigDFF
)

var configAbbrs = [20]string{
	"UPX", "MSS", "MSC", "MSF", "MDS", "MDC", "MDF", "MFS", "MFC", "MFF",
	"DPX", "DSS", "DSC", "DSF", "DDS", "DDC", "DDF", "DFS", "DFC", "DFF",
}

var configNames = [20]string{
	"uniplex", "multiplex_similar_separate", "multiplex_similar_connected",
	"multiplex_similar_fused", "multiplex_dissimilar_separate",
	"multiplex_dissimilar_connected", "multiplex_dissimilar_fused",
	"multiplex_fuzzy_separate", "multiplex_fuzzy_connected",
	"multiplex_fuzzy_fused", "duplex", "duplex_similar_separate",
	"duplex_similar_connected", "duplex_similar_fused",
	"duplex_dissimilar_separate", "duplex_dissimilar_connected",
	"duplex_dissimilar_fused", "duplex_fuzzy_separate",
	"duplex_fuzzy_connected", "duplex_fuzzy_fused",
}

func (c Configuration) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, configAbbrs[c], configNames[c])
}

// Extension is the third Ca category.
type Extension uint8

const (
	ExtensionDEL Extension = iota
	ExtensionPRX
	ExtensionICP
	ExtensionATV
	ExtensionGRA
	ExtensionDPL
)

func (e Extension) GlossStatic(flags GlossFlags) string {
	switch e {
	case ExtensionDEL:
		return glossPick(flags, "DEL", "delimitive")
	case ExtensionPRX:
		return glossPick(flags, "PRX", "proximal")
	case ExtensionICP:
		return glossPick(flags, "ICP", "inceptive")
	case ExtensionATV:
		return glossPick(flags, "ATV", "attenuative")
	case ExtensionGRA:
		return glossPick(flags, "GRA", "graduative")
	default:
		return glossPick(flags, "DPL", "depletive")
	}
}

// Perspective is the fourth Ca category.
type Perspective uint8

const (
	PerspectiveM Perspective = iota
	PerspectiveG
	PerspectiveN
	PerspectiveA
)

func (p Perspective) GlossStatic(flags GlossFlags) string {
	switch p {
	case PerspectiveM:
		return glossPick(flags, "M", "monadic")
	case PerspectiveG:
		return glossPick(flags, "G", "agglomerative")
	case PerspectiveN:
		return glossPick(flags, "N", "nomic")
	default:
		return glossPick(flags, "A", "abstract")
	}
}

// Essence is the fifth Ca category.
type Essence uint8

const (
	EssenceNRM Essence = iota
	EssenceRPV
)

func (e Essence) GlossStatic(flags GlossFlags) string {
	if e == EssenceNRM {
		return glossPick(flags, "NRM", "normal")
	}
	return glossPick(flags, "RPV", "representative")
}

// Valence relates two co-occurring activities.
type Valence uint8

const (
	ValenceMNO Valence = iota
	ValencePRL
	ValenceCRO
	ValenceRCP
	ValenceCPL
	ValenceDUP
	ValenceDEM
	ValenceCNG
	ValencePTI
)

var valenceAbbrs = [9]string{"MNO", "PRL", "CRO", "RCP", "CPL", "DUP", "DEM", "CNG", "PTI"}
var valenceNames = [9]string{
	"monoactive", "parallel", "corollary", "reciprocal", "complementary",
	"duplicative", "demonstrative", "contingent", "participative",
}

func (v Valence) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, valenceAbbrs[v], valenceNames[v])
}

// Phase marks the temporal pattern of an event.
type Phase uint8

const (
	PhasePUN Phase = iota
	PhaseITR
	PhaseREP
	PhaseITM
	PhaseRCT
	PhaseFRE
	PhaseFRG
	PhaseVAC
	PhaseFLC
)

var phaseAbbrs = [9]string{"PUN", "ITR", "REP", "ITM", "RCT", "FRE", "FRG", "VAC", "FLC"}
var phaseNames = [9]string{
	"punctual", "iterative", "repetitive", "intermittent", "recurrent",
	"frequentative", "fragmentative", "vacillitative", "fluctuative",
}

func (p Phase) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, phaseAbbrs[p], phaseNames[p])
}

// Effect marks who an event is beneficial or detrimental to.
type Effect uint8

const (
	EffectBEN1 Effect = iota
	EffectBEN2
	EffectBEN3
	EffectBENSelf
	EffectUNK
	EffectDETSelf
	EffectDET3
	EffectDET2
	EffectDET1
)

var effectAbbrs = [9]string{
	"1:BEN", "2:BEN", "3:BEN", "SLF:BEN", "UNK", "SLF:DET", "3:DET", "2:DET", "1:DET",
}
var effectNames = [9]string{
	"beneficial_to_speaker", "beneficial_to_addressee",
	"beneficial_to_third_party", "beneficial_to_self", "unknown_benefit",
	"detrimental_to_self", "detrimental_to_third_party",
	"detrimental_to_addressee", "detrimental_to_speaker",
}

func (e Effect) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, effectAbbrs[e], effectNames[e])
}

// Level compares an event against a reference point.
type Level uint8

const (
	LevelMIN Level = iota
	LevelSBE
	LevelIFR
	LevelDFC
	LevelEQU
	LevelSUR
	LevelSPL
	LevelSPQ
	LevelMAX
)

var levelAbbrs = [9]string{"MIN", "SBE", "IFR", "DFC", "EQU", "SUR", "SPL", "SPQ", "MAX"}
var levelNames = [9]string{
	"minimal", "subequative", "inferior", "deficient", "equative",
	"surpassive", "superlative", "superequative", "maximal",
}

func (l Level) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, levelAbbrs[l], levelNames[l])
}

// Aspect is one of the 36 aspects.
type Aspect uint8

const (
	AspectRTR Aspect = iota
	AspectPRS
	AspectHAB
	AspectPRG
	AspectIMM
	AspectPCS
	AspectREG
	AspectSMM
	AspectATP
	AspectRSM
	AspectCSS
	AspectPAU
	AspectRGR
	AspectPCL
	AspectCNT
	AspectICS
	AspectEXP
	AspectIRP
	AspectPMP
	AspectCLM
	AspectDLT
	AspectTMP
	AspectXPD
	AspectLIM
	AspectEPD
	AspectPTC
	AspectPPR
	AspectDCL
	AspectCCL
	AspectCUL
	AspectIMD
	AspectTRD
	AspectTNS
	AspectITC
	AspectMTV
	AspectSQN
)

var aspectAbbrs = [36]string{
	"RTR", "PRS", "HAB", "PRG", "IMM", "PCS", "REG", "SMM", "ATP",
	"RSM", "CSS", "PAU", "RGR", "PCL", "CNT", "ICS", "EXP", "IRP",
	"PMP", "CLM", "DLT", "TMP", "XPD", "LIM", "EPD", "PTC", "PPR",
	"DCL", "CCL", "CUL", "IMD", "TRD", "TNS", "ITC", "MTV", "SQN",
}

var aspectNames = [36]string{
	"retrospective", "prospective", "habitual", "progressive", "imminent",
	"precessive", "regulative", "summative", "anticipatory",
	"resumptive", "cessative", "pausal", "regressive", "preclusive",
	"continuative", "incessative", "experiential", "interruptive",
	"preemptive", "climactic", "dilatory", "temporary", "expenditive",
	"limitative", "expeditive", "protractive", "preparatory",
	"disclusive", "conclusive", "culminative", "intermediative",
	"tardative", "transitional", "intercommutative", "motive",
	"sequential",
}

func (a Aspect) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, aspectAbbrs[a], aspectNames[a])
}

// Mood is the Cn-marked mood of a verbal formative.
type Mood uint8

const (
	MoodFAC Mood = iota
	MoodSUB
	MoodASM
	MoodSPC
	MoodCOU
	MoodHYP
)

var moodAbbrs = [6]string{"FAC", "SUB", "ASM", "SPC", "COU", "HYP"}
var moodNames = [6]string{
	"factual", "subjunctive", "assumptive", "speculative",
	"counterfactive", "hypothetical",
}

func (m Mood) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, moodAbbrs[m], moodNames[m])
}

// CaseScope is the Cn-marked case scope of a nominal formative.
type CaseScope uint8

const (
	CaseScopeCCN CaseScope = iota
	CaseScopeCCA
	CaseScopeCCS
	CaseScopeCCQ
	CaseScopeCCP
	CaseScopeCCV
)

var caseScopeAbbrs = [6]string{"CCN", "CCA", "CCS", "CCQ", "CCP", "CCV"}
var caseScopeNames = [6]string{
	"natural", "antecedent", "subaltern", "qualifier", "precedent", "successive",
}

func (c CaseScope) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, caseScopeAbbrs[c], caseScopeNames[c])
}

// ArbitraryMoodOrCaseScope is a Cn value before the word's relation decides
// whether it reads as a mood or a case scope.
type ArbitraryMoodOrCaseScope uint8

const (
	CnFACCCN ArbitraryMoodOrCaseScope = iota
	CnSUBCCA
	CnASMCCS
	CnSPCCCQ
	CnCOUCCP
	CnHYPCCV
)

func (c ArbitraryMoodOrCaseScope) Mood() Mood           { return Mood(c) }
func (c ArbitraryMoodOrCaseScope) CaseScope() CaseScope { return CaseScope(c) }

func (c ArbitraryMoodOrCaseScope) GlossStatic(flags GlossFlags) string {
	return glossPick(flags,
		moodAbbrs[c]+"/"+caseScopeAbbrs[c],
		moodNames[c]+"/"+caseScopeNames[c])
}

func (c ArbitraryMoodOrCaseScope) GlossStaticNonDefault(flags GlossFlags) string {
	if c == CnFACCCN && !flags.Matches(GlossShowDefaults) {
		return ""
	}
	return c.GlossStatic(flags)
}

// Case is one of the 68 cases. The constant values follow the vowel grid,
// so four slots are skipped.
type Case uint8

const (
	CaseTHM Case = iota
	CaseINS
	CaseABS
	CaseAFF
	CaseSTM
	CaseEFF
	CaseERG
	CaseDAT
	CaseIND

	CasePOS
	CasePRP
	CaseGEN
	CaseATT
	CasePDC
	CaseITP
	CaseOGN
	CaseIDP
	CasePAR

	CaseAPL
	CasePUR
	CaseTRA
	CaseDFR
	CaseCRS
	CaseTSP
	CaseCMM
	CaseCMP
	CaseCSD

	CaseFUN
	CaseTFM
	CaseCLA
	CaseRSL
	CaseCSM
	CaseCON
	CaseAVR
	CaseCVS
	CaseSIT

	CasePRN
	CaseDSP
	CaseCRR
	CaseCPS
	CaseCOM
	CaseUTL
	CasePRD

	CaseRLT Case = 44
	CaseACT Case = 45
	CaseASI Case = 46
	CaseESS Case = 47
	CaseTRM Case = 48
	CaseSEL Case = 49
	CaseCFM Case = 50
	CaseDEP Case = 51

	CaseVOC Case = 53
	CaseLOC Case = 54
	CaseATD Case = 55
	CaseALL Case = 56
	CaseABL Case = 57
	CaseORI Case = 58
	CaseIRL Case = 59
	CaseINV Case = 60

	CaseNAV Case = 62
	CaseCNR Case = 63
	CaseASS Case = 64
	CasePER Case = 65
	CasePRO Case = 66
	CasePCV Case = 67
	CasePCR Case = 68
	CaseEFM Case = 69

	CasePLM Case = 71
)

// caseAbbrs is indexed by the raw vowel-grid value; gap slots are empty.
var caseAbbrs = [72]string{
	"THM", "INS", "ABS", "AFF", "STM", "EFF", "ERG", "DAT", "IND",
	"POS", "PRP", "GEN", "ATT", "PDC", "ITP", "OGN", "IDP", "PAR",
	"APL", "PUR", "TRA", "DFR", "CRS", "TSP", "CMM", "CMP", "CSD",
	"FUN", "TFM", "CLA", "RSL", "CSM", "CON", "AVR", "CVS", "SIT",
	"PRN", "DSP", "CRR", "CPS", "COM", "UTL", "PRD", "", "RLT",
	"ACT", "ASI", "ESS", "TRM", "SEL", "CFM", "DEP", "", "VOC",
	"LOC", "ATD", "ALL", "ABL", "ORI", "IRL", "INV", "", "NAV",
	"CNR", "ASS", "PER", "PRO", "PCV", "PCR", "EFM", "", "PLM",
}

var caseNames = [72]string{
	"thematic", "instrumental", "absolutive", "affective", "stimulative",
	"effectuative", "ergative", "dative", "inducive",
	"possessive", "proprietive", "genitive", "attributive", "productive",
	"interpretative", "originative", "interdependent", "partitive",
	"applicative", "purposive", "transmissive", "deferential", "contrastive",
	"transpositive", "commutative", "comparative", "considerative",
	"functive", "transformative", "classificative", "resultative",
	"consumptive", "concessive", "aversive", "conversive", "situative",
	"pertinential", "descriptive", "correlative", "compositive",
	"comitative", "utilitative", "predicative", "", "relative",
	"activative", "assimilative", "essive", "terminative", "selective",
	"conformative", "dependent", "", "vocative",
	"locative", "attendant", "allative", "ablative", "orientative",
	"interrelative", "intrative", "", "navigative",
	"concursive", "assessive", "periodic", "prolapsive", "precursive",
	"postcursive", "elapsive", "", "prolimitive",
}

func (c Case) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, caseAbbrs[c], caseNames[c])
}

func (c Case) GlossStaticNonDefault(flags GlossFlags) string {
	if c == CaseTHM {
		return ""
	}
	return c.GlossStatic(flags)
}

// IsHigh reports whether the case belongs to the upper half of the grid,
// the half a concatenated formative marks with a glottal stop.
func (c Case) IsHigh() bool {
	return c >= 36
}

// CaseFromVc decodes a Vc vowel into its case. Degree zero and the four gap
// slots have no case.
func CaseFromVc(vc VowelForm) (Case, error) {
	if vc.Degree == D0 {
		return 0, ErrExpectedVc
	}
	idx := uint8(vc.Sequence)*9 + uint8(vc.Degree) - 1
	if vc.HasGlottalStop {
		idx += 36
	}
	if caseAbbrs[idx] == "" {
		return 0, ErrExpectedVc
	}
	return Case(idx), nil
}

// Vc returns the vowel encoding the case. The glottal stop carries the
// upper half of the grid.
func (c Case) Vc() VowelForm {
	idx := uint8(c)
	glottal := false
	if idx >= 36 {
		glottal = true
		idx -= 36
	}
	return VowelForm{
		HasGlottalStop: glottal,
		Sequence:       VowelSeq(idx / 9),
		Degree:         VowelDegree(idx%9 + 1),
	}
}

// IllocutionOrValidation is the Vk-marked category of an unframed verb.
type IllocutionOrValidation uint8

const (
	IvlOBS IllocutionOrValidation = iota
	IvlREC
	IvlPUP
	IvlRPR
	IvlUSP
	IvlIMA
	IvlCVN
	IvlITU
	IvlINF

	IvlDIR
	IvlDEC
	IvlIRG
	IvlVER
	IvlADM
	IvlPOT
	IvlHOR
	IvlCNJ
)

var ivlAbbrs = [17]string{
	"OBS", "REC", "PUP", "RPR", "USP", "IMA", "CVN", "ITU", "INF",
	"DIR", "DEC", "IRG", "VER", "ADM", "POT", "HOR", "CNJ",
}

var ivlNames = [17]string{
	"observational", "recollective", "purportive", "reportive",
	"unspecified", "imaginary", "conventional", "intuitive", "inferential",
	"directive", "declarative", "interrogative", "verificative",
	"admonitive", "potentiative", "hortative", "conjectural",
}

func (v IllocutionOrValidation) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, ivlAbbrs[v], ivlNames[v])
}

// IvlFromVk decodes a Vk vowel. Sequence 1 carries the nine validations of
// an assertive verb; sequence 2 carries the eight non-assertive
// illocutions.
func IvlFromVk(vk VowelForm) (IllocutionOrValidation, error) {
	switch vk.Sequence {
	case SeqV1:
		if vk.Degree == D0 {
			return 0, ErrExpectedVk
		}
		return IllocutionOrValidation(vk.Degree - 1), nil
	case SeqV2:
		if vk.Degree == D0 || vk.Degree == D9 {
			return 0, ErrExpectedVk
		}
		return IvlDIR + IllocutionOrValidation(vk.Degree-1), nil
	}
	return 0, ErrExpectedVk
}

// VnForm is a Vn value: a valence, phase, effect, level, or aspect.
type VnForm interface {
	vnForm()
	GlossStatic(flags GlossFlags) string
}

func (Valence) vnForm() {}
func (Phase) vnForm()   {}
func (Effect) vnForm()  {}
func (Level) vnForm()   {}
func (Aspect) vnForm()  {}

// vnGlossNonDefault hides the default Vn, monoactive valence.
func vnGlossNonDefault(vn VnForm, flags GlossFlags) string {
	if v, ok := vn.(Valence); ok && v == ValenceMNO && !flags.Matches(GlossShowDefaults) {
		return ""
	}
	return vn.GlossStatic(flags)
}

// VnFromVowel decodes a Vn vowel. The accompanying Cn decides whether the
// vowel reads as an aspect or as a valence, phase, effect, or level.
func VnFromVowel(vn VowelForm, isAspect bool) (VnForm, bool) {
	if vn.Degree == D0 {
		return nil, false
	}
	d := uint8(vn.Degree) - 1
	if isAspect {
		return Aspect(uint8(vn.Sequence)*9 + d), true
	}
	switch vn.Sequence {
	case SeqV1:
		return Valence(d), true
	case SeqV2:
		return Phase(d), true
	case SeqV3:
		return Effect(d), true
	default:
		return Level(d), true
	}
}

// NominalMode distinguishes plain nominals, concatenated formatives, and
// framed verbs.
type NominalMode uint8

const (
	ModeNOM NominalMode = iota
	ModeT1
	ModeT2
	ModeFRM
)

// AffixType is the series an affix belongs to.
type AffixType uint8

const (
	AffixType1 AffixType = iota
	AffixType2
	AffixType3
)

func (t AffixType) GlossStatic(flags GlossFlags) string {
	switch t {
	case AffixType1:
		return glossPick(flags, "₁", "_type_one")
	case AffixType2:
		return glossPick(flags, "₂", "_type_two")
	default:
		return glossPick(flags, "₃", "_type_three")
	}
}

// CaseAccessorMode distinguishes plain case accessors from inverse ones.
type CaseAccessorMode uint8

const (
	AccessorNormal CaseAccessorMode = iota
	AccessorInverse
)

func (m CaseAccessorMode) GlossStatic(flags GlossFlags) string {
	if m == AccessorNormal {
		return glossPick(flags, "acc", "case_accessor")
	}
	return glossPick(flags, "ia", "inverse_accessor")
}

// Register marks the boundaries of quoted or parenthetical speech.
type Register uint8

const (
	RegisterDSV Register = iota
	RegisterPNT
	RegisterSPF
	RegisterEXM
	RegisterCGT
	RegisterDSVEnd
	RegisterPNTEnd
	RegisterSPFEnd
	RegisterEXMEnd
	RegisterCGTEnd
	RegisterEnd
)

var registerAbbrs = [11]string{
	"DSV", "PNT", "SPF", "EXM", "CGT",
	"DSV_END", "PNT_END", "SPF_END", "EXM_END", "CGT_END", "END",
}

func (r Register) GlossStatic(flags GlossFlags) string {
	return registerAbbrs[r]
}

// SuppletiveMode is the head of a suppletive adjunct.
type SuppletiveMode uint8

const (
	SuppletiveCAR SuppletiveMode = iota
	SuppletiveQUO
	SuppletiveNAM
	SuppletivePHR
)

func (m SuppletiveMode) GlossStatic(flags GlossFlags) string {
	switch m {
	case SuppletiveCAR:
		return glossPick(flags, "[CAR]", "[carrier]")
	case SuppletiveQUO:
		return glossPick(flags, "[QUO]", "[quotative]")
	case SuppletiveNAM:
		return glossPick(flags, "[NAM]", "[naming]")
	default:
		return glossPick(flags, "[PHR]", "[phrasal]")
	}
}
