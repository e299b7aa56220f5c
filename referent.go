package ithkuil

import "strings"

// ReferentTarget is the party a referent points at.
type ReferentTarget uint8

const (
	TargetM1 ReferentTarget = iota
	TargetM2
	TargetP2
	TargetMA
	TargetPA
	TargetMI
	TargetPI
	TargetMx
	TargetRdp
	TargetObv
	TargetPVS
)

var targetAbbrs = [11]string{
	"1m", "2m", "2p", "ma", "pa", "mi", "pi", "Mx", "Rdp", "Obv", "PVS",
}

var targetNames = [11]string{
	"monadic_speaker", "monadic_addressee", "polyadic_addressee",
	"monadic_animate_third_party", "polyadic_animate_third_party",
	"monadic_inanimate_third_party", "polyadic_inanimate_third_party",
	"mixed_third_party", "reduplicative", "obviative", "provisional",
}

func (t ReferentTarget) GlossStatic(flags GlossFlags) string {
	return glossPick(flags, targetAbbrs[t], targetNames[t])
}

// ReferentEffect is how the referent is affected.
type ReferentEffect uint8

const (
	EffectNEU ReferentEffect = iota
	EffectBEN
	EffectDET
)

func (e ReferentEffect) GlossStatic(flags GlossFlags) string {
	switch e {
	case EffectNEU:
		return glossPick(flags, "NEU", "neutral")
	case EffectBEN:
		return glossPick(flags, "BEN", "beneficial")
	default:
		return glossPick(flags, "DET", "detrimental")
	}
}

// Referent pairs a target with its effect.
type Referent struct {
	Target ReferentTarget
	Effect ReferentEffect
}

func (r Referent) Gloss(flags GlossFlags) string {
	out := r.Target.GlossStatic(flags)
	if r.Effect != EffectNEU || flags.Matches(GlossShowDefaults) {
		out += "." + r.Effect.GlossStatic(flags)
	}
	return out
}

// ReferentList is one or more referents sharing a perspective. Referential
// affixes only allow M, G and N perspectives; their parser never produces
// an abstract one.
type ReferentList struct {
	Referents   []Referent
	Perspective Perspective
}

func (l ReferentList) Gloss(flags GlossFlags) string {
	showPerspective := l.Perspective != PerspectiveM || flags.Matches(GlossShowDefaults)
	needsBrackets := len(l.Referents) != 1 || showPerspective

	var b strings.Builder
	if needsBrackets {
		b.WriteByte('[')
	}
	for i, r := range l.Referents {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(r.Gloss(flags))
	}
	if showPerspective {
		if len(l.Referents) > 0 {
			b.WriteByte('+')
		}
		b.WriteString(l.Perspective.GlossStatic(flags))
	}
	if needsBrackets {
		b.WriteByte(']')
	}
	return b.String()
}

// referentCluster pops referents off the front of a cluster. altRune is the
// letter doubling a base letter into its alternate reading; normal clusters
// double the base letter itself, while referential affixes use ç to stay
// pronounceable.
func referentCluster(s string, affixual bool) ([]Referent, error) {
	if s == "" {
		return nil, ErrReferentEmpty
	}

	runes := []rune(s)
	pos := 0

	peekIs := func(r rune) bool {
		return pos < len(runes) && runes[pos] == r
	}

	// alt chooses between two readings of a base letter depending on the
	// following character.
	alt := func(marker rune, def, other Referent) Referent {
		if peekIs(marker) {
			pos++
			return other
		}
		return def
	}

	double := func(base rune) rune {
		if affixual {
			return 'ç'
		}
		return base
	}

	var referents []Referent
	for pos < len(runes) {
		r := runes[pos]
		pos++

		var ref Referent
		switch r {
		case 'l':
			ref = alt(double('l'), Referent{TargetM1, EffectNEU}, Referent{TargetObv, EffectNEU})
		case 'r':
			ref = alt(double('r'), Referent{TargetM1, EffectBEN}, Referent{TargetObv, EffectBEN})
		case 'ř':
			ref = alt(double('ř'), Referent{TargetM1, EffectDET}, Referent{TargetObv, EffectDET})
		case 's':
			ref = Referent{TargetM2, EffectNEU}
		case 'š':
			ref = Referent{TargetM2, EffectBEN}
		case 'ž':
			ref = Referent{TargetM2, EffectDET}
		case 'n':
			ref = alt(double('n'), Referent{TargetP2, EffectNEU}, Referent{TargetPVS, EffectBEN})
		case 't':
			ref = alt('h', Referent{TargetP2, EffectBEN}, Referent{TargetRdp, EffectNEU})
		case 'd':
			ref = Referent{TargetP2, EffectDET}
		case 'm':
			ref = alt(double('m'), Referent{TargetMA, EffectNEU}, Referent{TargetPVS, EffectNEU})
		case 'p':
			ref = alt('h', Referent{TargetMA, EffectBEN}, Referent{TargetRdp, EffectBEN})
		case 'b':
			ref = Referent{TargetMA, EffectDET}
		case 'ň':
			ref = alt(double('ň'), Referent{TargetPA, EffectNEU}, Referent{TargetPVS, EffectDET})
		case 'k':
			ref = alt('h', Referent{TargetPA, EffectBEN}, Referent{TargetRdp, EffectDET})
		case 'g':
			ref = Referent{TargetPA, EffectDET}
		case 'z':
			ref = Referent{TargetMI, EffectNEU}
		case 'ţ':
			ref = Referent{TargetMI, EffectBEN}
		case 'ḑ':
			ref = Referent{TargetMI, EffectDET}
		case 'ẓ':
			ref = Referent{TargetPI, EffectNEU}
		case 'f':
			ref = Referent{TargetPI, EffectBEN}
		case 'v':
			ref = Referent{TargetPI, EffectDET}
		case 'c':
			ref = Referent{TargetMx, EffectNEU}
		case 'č':
			ref = Referent{TargetMx, EffectBEN}
		case 'j':
			ref = Referent{TargetMx, EffectDET}
		default:
			return nil, ErrReferentInvalid
		}
		referents = append(referents, ref)
	}

	if len(referents) == 0 {
		return nil, ErrReferentEmpty
	}
	return referents, nil
}

// ParseReferentList parses a referential referent cluster. The perspective
// rides along as a prefix or suffix.
func ParseReferentList(s string) (ReferentList, error) {
	perspective := PerspectiveM

	prefixes := []struct {
		form string
		p    Perspective
	}{
		{"tļ", PerspectiveG},
		{"ļ", PerspectiveG},
		{"ç", PerspectiveN},
		{"x", PerspectiveN},
		{"w", PerspectiveA},
		{"y", PerspectiveA},
	}

	for _, pf := range prefixes {
		if strings.HasPrefix(s, pf.form) {
			s = s[len(pf.form):]
			perspective = pf.p
			break
		}
		if strings.HasSuffix(s, pf.form) {
			s = s[:len(s)-len(pf.form)]
			perspective = pf.p
			break
		}
	}

	referents, err := referentCluster(s, false)
	if err != nil {
		return ReferentList{}, err
	}
	return ReferentList{Referents: referents, Perspective: perspective}, nil
}

// ParseAffixualReferentList parses the referent cluster of a referential
// affix. Affixual clusters double base letters with ç, and a suffixed ç is
// only read as a perspective when it cannot be such a doubling.
func ParseAffixualReferentList(s string) (ReferentList, error) {
	perspective := PerspectiveM

	prefixes := []struct {
		form string
		p    Perspective
	}{
		{"tļ", PerspectiveG},
		{"ļ", PerspectiveG},
		{"ç", PerspectiveN},
		{"x", PerspectiveN},
	}

	for _, pf := range prefixes {
		if strings.HasPrefix(s, pf.form) {
			s = s[len(pf.form):]
			perspective = pf.p
			break
		}
	}

	if perspective == PerspectiveM {
		runes := []rune(s)
		allowÇ := false
		if len(runes) >= 2 {
			switch runes[len(runes)-2] {
			case 'l', 'r', 'ř', 'm', 'n', 'ň':
			default:
				allowÇ = true
			}
		}
		switch {
		case strings.HasSuffix(s, "tļ"):
			s = s[:len(s)-len("tļ")]
			perspective = PerspectiveG
		case strings.HasSuffix(s, "ļ"):
			s = s[:len(s)-len("ļ")]
			perspective = PerspectiveG
		case allowÇ && strings.HasSuffix(s, "ç"):
			s = s[:len(s)-len("ç")]
			perspective = PerspectiveN
		case strings.HasSuffix(s, "x"):
			s = s[:len(s)-len("x")]
			perspective = PerspectiveN
		case strings.HasSuffix(s, "w"):
			s = s[:len(s)-len("w")]
			perspective = PerspectiveA
		case strings.HasSuffix(s, "y"):
			s = s[:len(s)-len("y")]
			perspective = PerspectiveA
		}
	}

	referents, err := referentCluster(s, true)
	if err != nil {
		return ReferentList{}, err
	}
	return ReferentList{Referents: referents, Perspective: perspective}, nil
}

// ParsePerspectivelessReferents parses the referent cluster of a
// referential formative root, which carries no perspective letter.
func ParsePerspectivelessReferents(s string) ([]Referent, error) {
	return referentCluster(s, false)
}

// GlossReferents renders a perspectiveless referent cluster.
func GlossReferents(referents []Referent, flags GlossFlags) string {
	if len(referents) == 1 {
		return referents[0].Gloss(flags)
	}
	var b strings.Builder
	b.WriteByte('[')
	for i, r := range referents {
		if i > 0 {
			b.WriteByte('+')
		}
		b.WriteString(r.Gloss(flags))
	}
	b.WriteByte(']')
	return b.String()
}
