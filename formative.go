package ithkuil

import (
	"strconv"
	"strings"
)

// Relation carries the stress-marked relation of a formative together with
// the categories it gates: illocution and mood for verbal forms, case and
// case scope for everything else.
type Relation struct {
	Verbal bool

	// Verbal forms only.
	Mood Mood
	Ivl  IllocutionOrValidation

	// Non-verbal forms only.
	Mode      NominalMode
	CaseScope CaseScope
	Case      Case
}

// moodOrCaseScopeGloss renders the Cn category under its relation-specific
// reading.
func (r Relation) moodOrCaseScopeGloss(flags GlossFlags) string {
	if r.Verbal {
		return r.Mood.GlossStatic(flags)
	}
	return r.CaseScope.GlossStatic(flags)
}

func (r Relation) moodOrCaseScopeGlossNonDefault(flags GlossFlags) string {
	if r.Verbal && r.Mood == MoodFAC {
		return ""
	}
	if !r.Verbal && r.CaseScope == CaseScopeCCN {
		return ""
	}
	return r.moodOrCaseScopeGloss(flags)
}

// FormativeRoot is the slot-III root of a formative.
type FormativeRoot interface {
	Glosser
	formativeRoot()
}

// NormalRoot is an ordinary consonantal root.
type NormalRoot struct {
	Cr string
}

func (NormalRoot) formativeRoot() {}

func (r NormalRoot) Gloss(flags GlossFlags) string {
	if flags.Matches(GlossMarkdown) {
		return "**" + r.Cr + "**"
	}
	return r.Cr
}

func (r NormalRoot) GlossNonDefault(flags GlossFlags) string { return r.Gloss(flags) }

// NumericRoot is a root spelled with a numeral.
type NumericRoot struct {
	IntegerPart uint64
}

func (NumericRoot) formativeRoot() {}

func (r NumericRoot) Gloss(GlossFlags) string {
	return "“" + strconv.FormatUint(r.IntegerPart, 10) + "”"
}

func (r NumericRoot) GlossNonDefault(flags GlossFlags) string { return r.Gloss(flags) }

// ReferentialRoot is a personal-reference root.
type ReferentialRoot struct {
	Referents []Referent
}

func (ReferentialRoot) formativeRoot() {}

func (r ReferentialRoot) Gloss(flags GlossFlags) string {
	return GlossReferents(r.Referents, flags)
}

func (r ReferentialRoot) GlossNonDefault(flags GlossFlags) string { return r.Gloss(flags) }

// AffixualRoot is an affix used in root position.
type AffixualRoot struct {
	Cs     string
	Degree VowelDegree
}

func (AffixualRoot) formativeRoot() {}

func (r AffixualRoot) Gloss(flags GlossFlags) string {
	d := strconv.Itoa(int(r.Degree))
	if flags.Matches(GlossMarkdown) {
		return "**" + r.Cs + "**/" + d + "-D" + d
	}
	return r.Cs + "/" + d + "-D" + d
}

func (r AffixualRoot) GlossNonDefault(flags GlossFlags) string { return r.Gloss(flags) }

// ShortcutKind names which shortcut, if any, a formative was written with.
type ShortcutKind uint8

const (
	ShortcutNone ShortcutKind = iota
	ShortcutCn
	ShortcutCa
)

// Formative is a fully parsed formative.
type Formative struct {
	Relation      Relation
	Shortcut      ShortcutKind
	AffixShortcut AffixShortcut

	Root          FormativeRoot
	Stem          Stem
	Version       Version
	Function      Function
	Specification Specification
	Context       Context

	SlotVAffixes AffixList
	Ca           Ca

	// Vn is nil when a Cn shortcut leaves slot VIII to the Cn.
	Vn VnForm

	SlotVIIAffixes AffixList
}

// shortcutCaValue resolves the Ca complex a Cc+Vv shortcut pair stands for.
func shortcutCaValue(mode CaShortcut, seq VowelSeq) Ca {
	if mode == CaShortcutW {
		switch seq {
		case SeqV1:
			return Ca{}
		case SeqV2:
			return Ca{Perspective: PerspectiveG}
		case SeqV3:
			return Ca{Perspective: PerspectiveN}
		default:
			return Ca{Perspective: PerspectiveG, Essence: EssenceRPV}
		}
	}
	switch seq {
	case SeqV1:
		return Ca{Extension: ExtensionPRX}
	case SeqV2:
		return Ca{Essence: EssenceRPV}
	case SeqV3:
		return Ca{Perspective: PerspectiveA}
	default:
		return Ca{Extension: ExtensionPRX, Essence: EssenceRPV}
	}
}

// mergeVcVkGlottal folds a displaced glottal stop back into the final
// vowel. At most one glottal stop may mark a formative.
func mergeVcVkGlottal(v *VowelForm, glottal bool) error {
	if !glottal {
		return nil
	}
	if v.HasGlottalStop {
		return ErrDoublyGlottalizedWord
	}
	v.HasGlottalStop = true
	return nil
}

// ParseFormative reads a whole formative from the stream. The grammar
// admits four surface shapes:
//
//  1. ((H)V)CVC(VC...)(VH)(V)    plain Ca, slot VII affixes, VnCn
//  2. ((H)V)CV(CV...)CC(VC...)(VH)(V)    slot V affixes, geminated Ca
//  3. HVCV(VC...')(VC...)(VH)(V)    Ca shortcut
//  4. ((H)V)CVH(VC...)(V)    Cn shortcut
//
// The final vowel is pulled off the back first and interpreted as Vc or Vk
// only once the relation is known.
func ParseFormative(stream *TokenStream, flags ParseFlags) (Formative, error) {
	vcVk := Vowel(SeqV1, D1)
	if v, ok := stream.NextBackVowel(); ok {
		vcVk = v
	}

	caMode, concat, hasCc := NoCaShortcut, NoConcatenation, false
	if h, ok := stream.NextH(); ok {
		cc, valid := CcFromHForm(h)
		if !valid {
			return Formative{}, ErrExpectedCc
		}
		caMode, concat, hasCc = cc.Shortcut, cc.Concatenation, true
	}

	// The relation comes from stress and concatenation alone. For
	// concatenated formatives ultimate stress marks the high case range
	// instead of verbality.
	var relMode NominalMode
	verbal := false
	isHigh := false
	stress, stressMarked := stream.Stress()
	switch concat {
	case NoConcatenation:
		if stressMarked {
			switch stress {
			case StressUltimate, StressMonosyllabic:
				verbal = true
			case StressAntepenultimate:
				relMode = ModeFRM
			}
		}
	default:
		if concat == ConcatenationT1 {
			relMode = ModeT1
		} else {
			relMode = ModeT2
		}
		if stressMarked {
			switch stress {
			case StressUltimate, StressMonosyllabic:
				isHigh = true
			case StressAntepenultimate:
				if !flags.Matches(ParsePermissive) {
					return Formative{}, ErrAntepenultimateStress
				}
			}
		}
	}

	vvVowel := Vowel(SeqV1, D1)
	if v, ok := stream.NextVowel(); ok {
		vvVowel = v
	} else if hasCc {
		return Formative{}, ErrExpectedVv
	}
	vv, ok := VvFromVowel(vvVowel)
	if !ok {
		return Formative{}, ErrExpectedVv
	}

	if caMode != NoCaShortcut && vv.Kind == RootAffixual {
		return Formative{}, ErrAffixualCaShortcut
	}

	var rootC Consonant
	var rootN Numeral
	isNumericRoot := false
	switch t := stream.Next().(type) {
	case Consonant:
		rootC = t
	case Numeral:
		if vv.Kind != RootNormal {
			return Formative{}, ErrExpectedNonNumericRoot
		}
		rootN, isNumericRoot = t, true
	default:
		return Formative{}, ErrExpectedRoot
	}

	var vr VowelForm
	hasVr := false
	if caMode == NoCaShortcut {
		v, ok := stream.NextVowel()
		if !ok {
			return Formative{}, ErrExpectedVr
		}
		vr, hasVr = v, true
	}

	vvGlottal := vvVowel.HasGlottalStop
	vrGlottal := vr.HasGlottalStop

	stem := StemS1
	version := vv.Version
	affixShortcut := NoAffixShortcut
	var shortcutCa Ca
	hasCaShortcut := false
	spec := SpecBSC
	fn := FunctionSTA
	ctx := ContextEXS
	var root FormativeRoot

	switch vv.Kind {
	case RootNormal:
		stem = vv.Stem
		if caMode == NoCaShortcut {
			affixShortcut = affixShortcutFromSeq(vv.Sequence)
			r, ok := VrFromVowel(vr)
			if !ok {
				return Formative{}, ErrExpectedVr
			}
			spec, fn, ctx = r.Specification, r.Function, r.Context
		} else {
			shortcutCa = shortcutCaValue(caMode, vv.Sequence)
			hasCaShortcut = true
		}
		if isNumericRoot {
			root = NumericRoot{IntegerPart: rootN.IntegerPart}
		} else {
			root = NormalRoot{Cr: string(rootC)}
		}

	case RootReferential:
		if hasVr {
			r, ok := VrFromVowel(vr)
			if !ok {
				return Formative{}, ErrExpectedVr
			}
			spec, fn, ctx = r.Specification, r.Function, r.Context
		}
		referents, err := ParsePerspectivelessReferents(string(rootC))
		if err != nil {
			return Formative{}, err
		}
		root = ReferentialRoot{Referents: referents}

	default: // RootAffixual; a Ca shortcut was rejected above
		fn = vv.Function
		switch vr.Sequence {
		case SeqV1:
			ctx = ContextEXS
		case SeqV2:
			ctx = ContextFNC
		case SeqV3:
			ctx = ContextRPS
		default:
			ctx = ContextAMG
		}
		root = AffixualRoot{Cs: string(rootC), Degree: vr.Degree}
	}

	// Slot VIII is easiest to pick off the back: a trailing VnCn pair, a
	// bare word-final Cn shortcut, or nothing.
	var vnVal VnForm
	var cnVal MoodOrCaseScope
	haveVnCn := false
	justCn := false
	vnGlottal := false
	if h, ok := stream.NextBackH(); ok {
		if v, ok := stream.NextBackVowel(); ok {
			cn, isAspect, ok := CnFromConsonant(h)
			if !ok {
				return Formative{}, ErrExpectedCn
			}
			vn, ok := VnFromVowel(v, isAspect)
			if !ok {
				return Formative{}, ErrExpectedVn
			}
			cnVal, vnVal, haveVnCn = cn, vn, true
			vnGlottal = v.HasGlottalStop
		} else if stream.IsDone() {
			if h.Sequence != SeqHPlain {
				return Formative{}, ErrAspectualCnShortcut
			}
			cn, _, ok := CnFromConsonant(h)
			if !ok {
				return Formative{}, ErrExpectedCn
			}
			if cn == CnFACCCN {
				return Formative{}, ErrDefaultCnShortcut
			}
			cnVal, justCn = cn, true
		} else {
			return Formative{}, ErrExpectedVn
		}
	}

	var slotVPairs, slotVIIPairs []VxCs
	var ca Ca
	shortcutKind := ShortcutNone
	cnShortcut := false
	vxGlottal := false

	markVxGlottal := func(vx VowelForm) error {
		if !vx.HasGlottalStop {
			return nil
		}
		if vxGlottal {
			return ErrDoublyGlottalizedVx
		}
		vxGlottal = true
		return nil
	}

	switch {
	case hasCaShortcut:
		// The Ca is already known; the whole middle is affix pairs, with
		// a glottalized Vx splitting slot V from slot VII.
		if justCn {
			return Formative{}, ErrExpectedVn
		}
		ca = shortcutCa
		shortcutKind = ShortcutCa
		for !stream.IsDone() {
			vx, ok := stream.NextVowel()
			if !ok {
				return Formative{}, ErrExpectedVx
			}
			cs, ok := stream.NextConsonant()
			if !ok {
				return Formative{}, ErrExpectedCs
			}
			if cs.IsGeminate() {
				return Formative{}, ErrGeminatedCs
			}
			slotVIIPairs = append(slotVIIPairs, VxCs{vx, string(cs)})
			if vx.HasGlottalStop {
				if len(slotVPairs) != 0 {
					return Formative{}, ErrMultipleSlotVMarkers
				}
				slotVPairs, slotVIIPairs = slotVIIPairs, nil
			}
		}

	case justCn:
		shortcutKind = ShortcutCn
		cnShortcut = true

	default:
		if h, ok := stream.NextH(); ok {
			// A Cn shortcut in Ca position.
			if h.Sequence != SeqHPlain {
				return Formative{}, ErrAspectualCnShortcut
			}
			cn, _, ok := CnFromConsonant(h)
			if !ok {
				return Formative{}, ErrExpectedCn
			}
			if cn == CnFACCCN {
				return Formative{}, ErrDefaultCnShortcut
			}
			cnVal, cnShortcut = cn, true
			shortcutKind = ShortcutCn
			for !stream.IsDone() {
				vx, ok := stream.NextVowel()
				if !ok {
					return Formative{}, ErrExpectedVx
				}
				cs, ok := stream.NextConsonant()
				if !ok {
					return Formative{}, ErrExpectedCs
				}
				if cs.IsGeminate() {
					return Formative{}, ErrGeminatedCs
				}
				if err := markVxGlottal(vx); err != nil {
					return Formative{}, err
				}
				slotVIIPairs = append(slotVIIPairs, VxCs{vx, string(cs)})
			}
			break
		}

		hasGeminate := false
		for _, t := range stream.Remaining() {
			if c, ok := t.(Consonant); ok && c.IsGeminate() {
				hasGeminate = true
				break
			}
		}

		if hasGeminate {
			// Slot V affixes run consonant-first until the geminated Ca.
		pairs:
			for {
				cs, ok := stream.NextConsonant()
				if !ok {
					return Formative{}, ErrExpectedCs
				}
				if cs.IsGeminate() {
					caVal, ok := CaFromGeminated(string(cs))
					if !ok {
						return Formative{}, ErrExpectedCa
					}
					ca = caVal
					for !stream.IsDone() {
						vx, ok := stream.NextVowel()
						if !ok {
							return Formative{}, ErrExpectedVx
						}
						cs, ok := stream.NextConsonant()
						if !ok {
							return Formative{}, ErrExpectedCs
						}
						if cs.IsGeminate() {
							return Formative{}, ErrGeminatedCs
						}
						if err := markVxGlottal(vx); err != nil {
							return Formative{}, err
						}
						slotVIIPairs = append(slotVIIPairs, VxCs{vx, string(cs)})
					}
					break pairs
				}
				vx, ok := stream.NextVowel()
				if !ok {
					return Formative{}, ErrExpectedVx
				}
				if err := markVxGlottal(vx); err != nil {
					return Formative{}, err
				}
				slotVPairs = append(slotVPairs, VxCs{vx, string(cs)})
			}
		} else {
			cs, ok := stream.NextConsonant()
			if !ok {
				return Formative{}, ErrExpectedCa
			}
			caVal, ok := CaFromUngeminated(string(cs))
			if !ok {
				return Formative{}, ErrExpectedCa
			}
			ca = caVal
			for !stream.IsDone() {
				vx, ok := stream.NextVowel()
				if !ok {
					return Formative{}, ErrExpectedVx
				}
				cs, ok := stream.NextConsonant()
				if !ok {
					return Formative{}, ErrExpectedCs
				}
				if cs.IsGeminate() {
					return Formative{}, ErrGeminatedCs
				}
				if err := markVxGlottal(vx); err != nil {
					return Formative{}, err
				}
				slotVIIPairs = append(slotVIIPairs, VxCs{vx, string(cs)})
			}
		}
	}

	slotV, err := AffixListFromPairs(slotVPairs)
	if err != nil {
		return Formative{}, err
	}
	if !cnShortcut && !flags.Matches(ParsePermissive) {
		if vvGlottal {
			if slotV.Len() <= 1 {
				return Formative{}, ErrTooFewSlotVAffixes
			}
		} else if slotV.Len() > 1 {
			return Formative{}, ErrTooManySlotVAffixes
		}
	}
	slotVII, err := AffixListFromPairs(slotVIIPairs)
	if err != nil {
		return Formative{}, err
	}

	if err := mergeVcVkGlottal(&vcVk, vrGlottal); err != nil {
		return Formative{}, err
	}
	if err := mergeVcVkGlottal(&vcVk, vxGlottal); err != nil {
		return Formative{}, err
	}
	if err := mergeVcVkGlottal(&vcVk, vnGlottal); err != nil {
		return Formative{}, err
	}

	var rel Relation
	if verbal {
		mood := MoodFAC
		if cnShortcut {
			if cnVal == CnFACCCN {
				return Formative{}, ErrExpectedNonDefaultCn
			}
			mood = cnVal.Mood()
		} else if haveVnCn {
			mood = cnVal.Mood()
		}
		ivl, err := IvlFromVk(vcVk)
		if err != nil {
			return Formative{}, err
		}
		rel = Relation{Verbal: true, Mood: mood, Ivl: ivl}
	} else {
		cscope := CaseScopeCCN
		if cnShortcut {
			if cnVal == CnFACCCN {
				return Formative{}, ErrExpectedNonDefaultCn
			}
			cscope = cnVal.CaseScope()
		} else if haveVnCn {
			cscope = cnVal.CaseScope()
		}
		if relMode == ModeT1 || relMode == ModeT2 {
			if vcVk.HasGlottalStop {
				return Formative{}, ErrGlottalizedVc
			}
			vcVk.HasGlottalStop = isHigh
		}
		c, err := CaseFromVc(vcVk)
		if err != nil {
			return Formative{}, err
		}
		rel = Relation{Mode: relMode, CaseScope: cscope, Case: c}
	}

	f := Formative{
		Relation:       rel,
		Shortcut:       shortcutKind,
		AffixShortcut:  affixShortcut,
		Root:           root,
		Stem:           stem,
		Version:        version,
		Function:       fn,
		Specification:  spec,
		Context:        ctx,
		SlotVAffixes:   slotV,
		Ca:             ca,
		SlotVIIAffixes: slotVII,
	}
	if !cnShortcut {
		if haveVnCn {
			f.Vn = vnVal
		} else {
			f.Vn = ValenceMNO
		}
	}
	return f, nil
}

// Gloss renders the formative slot by slot.
func (f Formative) Gloss(flags GlossFlags) string {
	slotI := ""
	if !f.Relation.Verbal {
		switch f.Relation.Mode {
		case ModeT1:
			slotI = glossPick(flags, "T1", "type_one")
		case ModeT2:
			slotI = glossPick(flags, "T2", "type_two")
		}
	}

	var slotII string
	switch f.Root.(type) {
	case NormalRoot, NumericRoot:
		var b strings.Builder
		b.WriteString(f.Stem.GlossStatic(flags))
		addDotted(&b, f.Version.GlossStaticNonDefault(flags))
		if f.Shortcut == ShortcutCa {
			addDotted(&b, f.Ca.GlossNonDefault(flags))
		}
		slotII = b.String()
	case ReferentialRoot:
		var b strings.Builder
		b.WriteString(f.Version.GlossStaticNonDefault(flags))
		if f.Shortcut == ShortcutCa {
			addDotted(&b, f.Ca.GlossNonDefault(flags))
		}
		slotII = b.String()
	default:
		var b strings.Builder
		b.WriteString(f.Version.GlossStaticNonDefault(flags))
		addDotted(&b, f.Function.GlossStaticNonDefault(flags))
		slotII = b.String()
	}

	var slotsIIIAndIV string
	if _, ok := f.Root.(AffixualRoot); ok {
		s := f.Root.Gloss(flags)
		if c := f.Context.GlossStaticNonDefault(flags); c != "" {
			s += "." + c
		}
		slotsIIIAndIV = s
	} else {
		s := f.Root.Gloss(flags)
		first := true
		for _, el := range []string{
			f.Function.GlossStaticNonDefault(flags),
			f.Specification.GlossStaticNonDefault(flags),
			f.Context.GlossStaticNonDefault(flags),
		} {
			if el == "" {
				continue
			}
			if first {
				s += "-"
				first = false
			} else {
				s += "."
			}
			s += el
		}
		slotsIIIAndIV = s
	}

	slotV := f.SlotVAffixes.Gloss(flags)

	vnAndCn := func() string {
		var b strings.Builder
		if f.Vn != nil {
			b.WriteString(vnGlossNonDefault(f.Vn, flags))
		}
		addDotted(&b, f.Relation.moodOrCaseScopeGlossNonDefault(flags))
		return b.String()
	}

	var slotVI, slotVIII string
	switch f.Shortcut {
	case ShortcutNone:
		slotVI = f.Ca.Gloss(flags)
		if slotVI == "" && slotV != "" {
			slotVI = "{Ca}"
		}
		slotVIII = vnAndCn()
	case ShortcutCn:
		slotVI = f.Relation.moodOrCaseScopeGloss(flags)
	default:
		if slotV != "" {
			slotVI = "{Ca}"
		}
		slotVIII = vnAndCn()
	}

	slotVII := f.SlotVIIAffixes.Gloss(flags)

	var slotIX string
	if f.Relation.Verbal {
		// Illocution and validation are always shown for disambiguation.
		slotIX = f.Relation.Ivl.GlossStatic(flags)
	} else {
		slotIX = f.Relation.Case.GlossStaticNonDefault(flags)
	}

	slotX := ""
	if f.Relation.Verbal || f.Relation.Mode == ModeNOM {
		if flags.Matches(GlossShowDefaults) {
			slotX = "\\UNF"
		}
	} else if f.Relation.Mode == ModeFRM {
		slotX = "\\FRM"
	}

	var out strings.Builder
	out.WriteString(slotI)
	addDashed(&out, slotII)
	addDashed(&out, slotsIIIAndIV)
	addDashed(&out, slotV)
	addDashed(&out, slotVI)
	addDashed(&out, slotVII)
	addDashed(&out, slotVIII)
	addDashed(&out, slotIX)
	out.WriteString(slotX)
	return out.String()
}

func (f Formative) GlossNonDefault(flags GlossFlags) string { return f.Gloss(flags) }
