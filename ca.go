package ithkuil

import "strings"

// Ca bundles the five categories of a formative's Ca complex.
type Ca struct {
	Affiliation   Affiliation
	Configuration Configuration
	Extension     Extension
	Perspective   Perspective
	Essence       Essence
}

// DefaultCa is CSL.UPX.DEL.M.NRM, spelled "l".
var DefaultCa = Ca{}

func (ca Ca) Gloss(flags GlossFlags) string {
	if flags.Matches(GlossShowDefaults) {
		var b strings.Builder
		addDotted(&b, ca.Affiliation.GlossStatic(flags))
		addDotted(&b, ca.Configuration.GlossStatic(flags))
		addDotted(&b, ca.Extension.GlossStatic(flags))
		addDotted(&b, ca.Perspective.GlossStatic(flags))
		addDotted(&b, ca.Essence.GlossStatic(flags))
		return b.String()
	}

	var b strings.Builder
	if ca.Affiliation != AffiliationCSL {
		addDotted(&b, ca.Affiliation.GlossStatic(flags))
	}
	if ca.Configuration != ConfigUPX {
		addDotted(&b, ca.Configuration.GlossStatic(flags))
	}
	if ca.Extension != ExtensionDEL {
		addDotted(&b, ca.Extension.GlossStatic(flags))
	}
	if ca.Perspective != PerspectiveM {
		addDotted(&b, ca.Perspective.GlossStatic(flags))
	}
	if ca.Essence != EssenceNRM {
		addDotted(&b, ca.Essence.GlossStatic(flags))
	}
	return b.String()
}

func (ca Ca) GlossNonDefault(flags GlossFlags) string {
	if ca == DefaultCa && !flags.Matches(GlossShowDefaults) {
		return ""
	}
	return ca.Gloss(flags)
}

// caIrregulars are the one-category forms with dedicated spellings.
var caIrregulars = []struct {
	ca Ca
	s  string
}{
	{Ca{Affiliation: AffiliationASO}, "nļ"},
	{Ca{Affiliation: AffiliationCOA}, "rļ"},
	{Ca{Affiliation: AffiliationVAR}, "ň"},
	{Ca{}, "l"},
	{Ca{Essence: EssenceRPV}, "tļ"},
	{Ca{Perspective: PerspectiveN}, "v"},
	{Ca{Perspective: PerspectiveA}, "j"},
}

var caAffiliationFragments = [4]string{"", "l", "r", "ř"}

var caConfigFragments = [20]string{
	"", "t", "k", "p", "ţ", "f", "ç", "z", "ž", "ẓ",
	"s", "c", "ks", "ps", "ţs", "fs", "š", "č", "kš", "pš",
}

var caExtensionUniplex = [6]string{"", "d", "g", "b", "gz", "bz"}
var caExtensionOther = [6]string{"", "t", "k", "p", "g", "b"}

// Perspective and essence fragments; the second column applies after a
// final t, p or k.
var caPerspectiveFragments = [4][2][2]string{
	{{"", ""}, {"l", "l"}},   // M
	{{"r", "r"}, {"ř", "ř"}}, // G
	{{"w", "w"}, {"m", "h"}}, // N
	{{"y", "y"}, {"n", "ç"}}, // A
}

// UnallomorphedCaString builds the bare Ca string with no allomorphic
// substitutions applied.
func (ca Ca) UnallomorphedCaString() string {
	for _, ir := range caIrregulars {
		if ca == ir.ca {
			return ir.s
		}
	}

	var b strings.Builder
	b.WriteString(caAffiliationFragments[ca.Affiliation])
	b.WriteString(caConfigFragments[ca.Configuration])
	if ca.Configuration == ConfigUPX {
		b.WriteString(caExtensionUniplex[ca.Extension])
	} else {
		b.WriteString(caExtensionOther[ca.Extension])
	}

	out := b.String()
	pair := caPerspectiveFragments[ca.Perspective][ca.Essence]
	if strings.HasSuffix(out, "t") || strings.HasSuffix(out, "p") || strings.HasSuffix(out, "k") {
		out += pair[1]
	} else {
		out += pair[0]
	}
	return out
}

// UngeminatedCaString builds the surface Ca string.
func (ca Ca) UngeminatedCaString() string {
	return CaAllomorph(ca.UnallomorphedCaString())
}

// GeminatedCaString builds the surface Ca string with gemination, as used
// after non-shortcut slot V affixes.
func (ca Ca) GeminatedCaString() string {
	return CaGeminate(ca.UngeminatedCaString())
}

// CaAllomorph applies the allomorphic substitutions to a bare Ca string.
func CaAllomorph(ca string) string {
	if len(ca) <= 1 {
		return ca
	}

	for _, p := range [...][2]string{
		{"pp", "mp"}, {"tt", "nt"}, {"kk", "nk"}, {"ll", "pļ"},
		{"pb", "mb"}, {"kg", "ng"}, {"çy", "nd"}, {"rr", "ns"},
		{"rř", "nš"}, {"řr", "ňs"}, {"řř", "ňš"}, {"ngn", "ňn"},
	} {
		ca = strings.ReplaceAll(ca, p[0], p[1])
	}

	// The cluster-internal substitutions skip the first letter.
	runes := []rune(ca)
	rest := string(runes[1:])
	for _, p := range [...][2]string{
		{"gm", "x"}, {"gn", "ň"}, {"çx", "xw"}, {"bm", "v"}, {"bn", "ḑ"},
	} {
		rest = strings.ReplaceAll(rest, p[0], p[1])
	}
	ca = string(runes[0]) + rest

	ca = strings.ReplaceAll(ca, "fv", "vw")
	return strings.ReplaceAll(ca, "ţḑ", "ḑy")
}

// CaUnallomorph reverses CaAllomorph.
func CaUnallomorph(ca string) string {
	if len(ca) <= 1 {
		return ca
	}

	ca = strings.ReplaceAll(ca, "ḑy", "ţḑ")
	ca = strings.ReplaceAll(ca, "vw", "fv")

	runes := []rune(ca)
	rest := string(runes[1:])
	for _, p := range [...][2]string{
		{"ḑ", "bn"}, {"v", "bm"}, {"xw", "çx"}, {"ň", "gn"}, {"x", "gm"},
	} {
		rest = strings.ReplaceAll(rest, p[0], p[1])
	}
	ca = string(runes[0]) + rest

	for _, p := range [...][2]string{
		{"ňn", "ngn"}, {"gnn", "ngn"}, {"ňš", "řř"}, {"gnš", "řř"},
		{"ňs", "řr"}, {"gns", "řr"}, {"nš", "rř"}, {"ns", "rr"},
		{"nd", "çy"}, {"ng", "kg"}, {"mb", "pb"}, {"pļ", "ll"},
		{"nk", "kk"}, {"nt", "tt"}, {"mp", "pp"},
	} {
		ca = strings.ReplaceAll(ca, p[0], p[1])
	}
	return ca
}

// caGeminationPairs maps ungeminated clusters to their geminated
// substitutes.
var caGeminationPairs = [...][2]string{
	{"pt", "bbḑ"}, {"pk", "bbv"}, {"kt", "ggḑ"}, {"kp", "ggv"},
	{"tk", "ḑvv"}, {"tp", "ddv"}, {"pm", "vvm"}, {"km", "xxm"},
	{"kn", "xxn"}, {"tm", "ḑḑm"}, {"tn", "ḑḑn"}, {"bm", "mmw"},
	{"bn", "mml"}, {"gm", "ňňw"}, {"gn", "ňňl"}, {"dm", "nnw"},
	{"dn", "nnl"},
}

// caUngeminationPairs is the inverse table. It additionally accepts vvn,
// an older spelling of geminated pm.
var caUngeminationPairs = [...][2]string{
	{"bbḑ", "pt"}, {"bbv", "pk"}, {"ggḑ", "kt"}, {"ggv", "kp"},
	{"ḑvv", "tk"}, {"ddv", "tp"}, {"vvm", "pm"}, {"vvn", "pm"},
	{"xxm", "km"}, {"xxn", "kn"}, {"ḑḑm", "tm"}, {"ḑḑn", "tn"},
	{"mmw", "bm"}, {"mml", "bn"}, {"ňňw", "gm"}, {"ňňl", "gn"},
	{"nnw", "dm"}, {"nnl", "dn"},
}

func isCaSibilant(r rune) bool {
	switch r {
	case 's', 'š', 'z', 'ž', 'ç', 'c', 'č':
		return true
	}
	return false
}

// tryGeminateCore geminates a Ca string, leaving a leading l/r/ř for the
// caller to handle. Returns false when no rule applies.
func tryGeminateCore(ca string) (string, bool) {
	runes := []rune(ca)
	switch len(runes) {
	case 0:
		return "", true
	case 1:
		return ca + ca, true
	}

	if ca == "tļ" {
		return "ttļ", true
	}

	// A stop followed by a liquid or glide doubles the stop.
	switch runes[0] {
	case 't', 'k', 'p', 'd', 'g', 'b':
		switch runes[1] {
		case 'l', 'r', 'ř', 'w', 'y':
			return string(runes[0]) + ca, true
		}
	}

	// The first sibilant anywhere is doubled in place.
	for i, r := range runes {
		if isCaSibilant(r) {
			return string(runes[:i]) + string(r) + string(runes[i:]), true
		}
	}

	// A leading fricative or nasal is doubled.
	switch runes[0] {
	case 'f', 'ţ', 'v', 'ḑ', 'm', 'n', 'ň':
		return string(runes[0]) + ca, true
	}

	// A stop before f, ţ or ç keeps its spelling.
	switch runes[0] {
	case 't', 'k', 'p':
		switch runes[1] {
		case 'f', 'ţ', 'ç':
			return ca, true
		}
	}

	for _, p := range caGeminationPairs {
		if strings.Contains(ca, p[0]) {
			return strings.Replace(ca, p[0], p[1], 1), true
		}
	}

	return "", false
}

// TryGeminateCa geminates a surface Ca string. Returns false when the
// string cannot be geminated.
func TryGeminateCa(ca string) (string, bool) {
	runes := []rune(ca)
	if len(runes) > 0 {
		switch runes[0] {
		case 'l', 'r', 'ř':
			inner, ok := tryGeminateCore(string(runes[1:]))
			if ok {
				return string(runes[0]) + inner, true
			}
			return string(runes[0]) + ca, true
		}
	}
	return tryGeminateCore(ca)
}

// CaGeminate geminates a Ca string, falling back to doubling the first
// letter when no rule applies.
func CaGeminate(ca string) string {
	if out, ok := TryGeminateCa(ca); ok {
		return out
	}
	runes := []rune(ca)
	return string(runes[0]) + ca
}

// CaUngeminate removes the gemination from a Ca string. It returns false
// only for the empty string.
func CaUngeminate(ca string) (string, bool) {
	for _, p := range caUngeminationPairs {
		if strings.Contains(ca, p[0]) {
			return strings.Replace(ca, p[0], p[1], 1), true
		}
	}

	runes := []rune(ca)
	if len(runes) == 0 {
		return "", false
	}
	for i := 1; i < len(runes); i++ {
		if runes[i] == runes[i-1] {
			return string(runes[:i]) + string(runes[i+1:]), true
		}
	}
	return ca, true
}

// CaFromUnallomorphed parses a bare Ca string.
func CaFromUnallomorphed(ca string) (Ca, bool) {
	for _, ir := range caIrregulars {
		if ca == ir.s {
			return ir.ca, true
		}
	}

	runes := []rune(ca)
	pos := 0
	peek := func() rune {
		if pos < len(runes) {
			return runes[pos]
		}
		return 0
	}

	var out Ca

	// Affiliation is only spelled when something follows it.
	if len(runes) > 1 {
		switch peek() {
		case 'l':
			out.Affiliation = AffiliationASO
			pos++
		case 'r':
			out.Affiliation = AffiliationCOA
			pos++
		case 'ř':
			out.Affiliation = AffiliationVAR
			pos++
		}
	}

	switch peek() {
	case 's':
		out.Configuration = ConfigDPX
		pos++
	case 't':
		out.Configuration = ConfigMSS
		pos++
	case 'c':
		out.Configuration = ConfigDSS
		pos++
	case 'k':
		pos++
		switch peek() {
		case 's':
			out.Configuration = ConfigDSC
			pos++
		case 'š':
			out.Configuration = ConfigDFC
			pos++
		default:
			out.Configuration = ConfigMSC
		}
	case 'p':
		pos++
		switch peek() {
		case 's':
			out.Configuration = ConfigDSF
			pos++
		case 'š':
			out.Configuration = ConfigDFF
			pos++
		default:
			out.Configuration = ConfigMSF
		}
	case 'ţ':
		pos++
		if peek() == 's' {
			out.Configuration = ConfigDDS
			pos++
		} else {
			out.Configuration = ConfigMDS
		}
	case 'f':
		pos++
		if peek() == 's' {
			out.Configuration = ConfigDDC
			pos++
		} else {
			out.Configuration = ConfigMDC
		}
	case 'ç':
		out.Configuration = ConfigMDF
		pos++
	case 'š':
		out.Configuration = ConfigDDF
		pos++
	case 'z':
		out.Configuration = ConfigMFS
		pos++
	case 'č':
		out.Configuration = ConfigDFS
		pos++
	case 'ž':
		out.Configuration = ConfigMFC
		pos++
	case 'ẓ':
		out.Configuration = ConfigMFF
		pos++
	}

	if out.Configuration == ConfigUPX {
		switch peek() {
		case 'd':
			out.Extension = ExtensionPRX
			pos++
		case 'g':
			pos++
			if peek() == 'z' {
				out.Extension = ExtensionGRA
				pos++
			} else {
				out.Extension = ExtensionICP
			}
		case 'b':
			pos++
			if peek() == 'z' {
				out.Extension = ExtensionDPL
				pos++
			} else {
				out.Extension = ExtensionATV
			}
		}
	} else {
		switch peek() {
		case 't':
			out.Extension = ExtensionPRX
			pos++
		case 'k':
			out.Extension = ExtensionICP
			pos++
		case 'p':
			out.Extension = ExtensionATV
			pos++
		case 'g':
			out.Extension = ExtensionGRA
			pos++
		case 'b':
			out.Extension = ExtensionDPL
			pos++
		}
	}

	switch peek() {
	case 'l':
		out.Perspective, out.Essence = PerspectiveM, EssenceRPV
		pos++
	case 'r':
		out.Perspective, out.Essence = PerspectiveG, EssenceNRM
		pos++
	case 'ř':
		out.Perspective, out.Essence = PerspectiveG, EssenceRPV
		pos++
	case 'w':
		out.Perspective, out.Essence = PerspectiveN, EssenceNRM
		pos++
	case 'm', 'h':
		out.Perspective, out.Essence = PerspectiveN, EssenceRPV
		pos++
	case 'y':
		out.Perspective, out.Essence = PerspectiveA, EssenceNRM
		pos++
	case 'n':
		out.Perspective, out.Essence = PerspectiveA, EssenceRPV
		pos++
	case 'ç':
		out.Perspective, out.Essence = PerspectiveA, EssenceRPV
		pos++
	}

	if pos != len(runes) {
		return Ca{}, false
	}
	return out, true
}

// CaFromUngeminated parses a surface Ca string.
func CaFromUngeminated(ca string) (Ca, bool) {
	return CaFromUnallomorphed(CaUnallomorph(ca))
}

// CaFromGeminated parses a geminated Ca string.
func CaFromGeminated(ca string) (Ca, bool) {
	u, ok := CaUngeminate(ca)
	if !ok {
		return Ca{}, false
	}
	return CaFromUngeminated(u)
}

// CaFromString parses a Ca string whether or not it is geminated.
func CaFromString(ca string) (Ca, bool) {
	if u, ok := CaUngeminate(ca); ok {
		return CaFromGeminated(u)
	}
	return CaFromGeminated(ca)
}
