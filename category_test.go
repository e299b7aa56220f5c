package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCaseVcRoundTrip(t *testing.T) {
	for idx := 0; idx < 72; idx++ {
		c := Case(idx)
		if caseAbbrs[idx] == "" {
			continue
		}
		got, err := CaseFromVc(c.Vc())
		require.NoError(t, err, "case %s", c.GlossStatic(GlossNone))
		assert.Equal(t, c, got, "case %s", c.GlossStatic(GlossNone))
	}
}

func TestCaseVcGaps(t *testing.T) {
	// Four grid slots carry no case and must refuse to decode.
	for _, idx := range []int{43, 52, 61, 70} {
		vc := Case(idx).Vc()
		_, err := CaseFromVc(vc)
		assert.ErrorIs(t, err, ErrExpectedVc, "slot %d", idx)
	}

	// Degree zero is never a case.
	_, err := CaseFromVc(Vowel(SeqV1, D0))
	assert.ErrorIs(t, err, ErrExpectedVc)
}

func TestCaseGlossStatic(t *testing.T) {
	assert.Equal(t, "THM", CaseTHM.GlossStatic(GlossNone))
	assert.Equal(t, "thematic", CaseTHM.GlossStatic(GlossLong))
	assert.Equal(t, "", CaseTHM.GlossStaticNonDefault(GlossNone))
	assert.Equal(t, "ERG", CaseERG.GlossStaticNonDefault(GlossNone))
}

func TestAffixualScopeFromVowel(t *testing.T) {
	tests := []struct {
		vowel string
		scope AffixualScope
	}{
		{"a", ScopeVDomain},
		{"u", ScopeVSubDomain},
		{"e", ScopeVIIDomain},
		{"i", ScopeVIISubDomain},
		{"o", ScopeAdjFormative},
		{"ö", ScopeAdjOverAdjacent},
	}
	for _, tt := range tests {
		v, ok := ParseVowelForm(tt.vowel)
		require.True(t, ok, "vowel %q", tt.vowel)
		scope, ok := ScopeFromVowel(v)
		require.True(t, ok, "vowel %q", tt.vowel)
		assert.Equal(t, tt.scope, scope, "vowel %q", tt.vowel)
	}

	v, _ := ParseVowelForm("ä")
	_, ok := ScopeFromVowel(v)
	assert.False(t, ok, "ä carries no scope")
}

func TestVnFromVowel(t *testing.T) {
	// Sequence 1 vowels are valences, and MNO suppresses itself unless
	// defaults are requested.
	v, ok := ParseVowelForm("a")
	require.True(t, ok)
	vn, ok := VnFromVowel(v, false)
	require.True(t, ok)
	assert.Equal(t, ValenceMNO, vn)
	assert.Equal(t, "", vnGlossNonDefault(vn, GlossNone))
	assert.Equal(t, "MNO", vnGlossNonDefault(vn, GlossShowDefaults))
}
