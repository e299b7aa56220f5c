package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdjunctGlosses(t *testing.T) {
	tests := []struct {
		word  string
		want  Word
		gloss string
	}{
		{"hla", SuppletiveAdjunct{}, "[CAR]"},
		{"hňo", SuppletiveAdjunct{}, "[PHR]-ERG"},
		{"ha", RegisterAdjunct{}, "DSV"},
		{"hai", RegisterAdjunct{}, "DSV_END"},
		{"hra", MCSAdjunct{}, "FAC"},
		{"hrai", MCSAdjunct{}, "CCN"},
		{"a'", ParsingAdjunct{}, "monosyllabic"},
		{"e'", ParsingAdjunct{}, "ultimate"},
		{"lf", BiasAdjunct{}, "ACC"},
		{"řs", BiasAdjunct{}, "APB"},
		{"1234", NumericAdjunct{}, "‘1234’"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			w, err := ParseWordString(tt.word, ParseNone)
			require.NoError(t, err)
			assert.IsType(t, tt.want, w)
			assert.Equal(t, tt.gloss, w.Gloss(GlossNone))
		})
	}
}

func TestSingleAffixAdjunctStress(t *testing.T) {
	// Ultimate stress restricts the adjunct to the concatenated stem.
	got, err := GlossWord("erú", ParseNone, GlossNone)
	require.NoError(t, err)
	assert.Equal(t, "r/3₁-{v.sub}-{concat.}", got)
}

func TestSuppletiveAdjunctShowDefaults(t *testing.T) {
	got, err := GlossWord("hla", ParseNone, GlossShowDefaults)
	require.NoError(t, err)
	assert.Equal(t, "[CAR]-THM", got)
}
