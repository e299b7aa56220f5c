package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecodeAffixPlain(t *testing.T) {
	affix, err := DecodeAffix(Vowel(SeqV1, D3), "t")
	require.NoError(t, err)
	require.IsType(t, PlainAffix{}, affix)
	assert.Equal(t, "t/3₁", affix.Gloss(GlossNone))
}

func TestDecodeAffixCaseStacking(t *testing.T) {
	affix, err := DecodeAffix(Vowel(SeqV1, D7), "lw")
	require.NoError(t, err)
	require.IsType(t, CaseStackingAffix{}, affix)
	assert.Equal(t, CaseERG, affix.(CaseStackingAffix).Case)
	assert.Equal(t, "(case:ERG)", affix.Gloss(GlossNone))

	// "ly" reaches into the upper half of the case grid.
	affix, err = DecodeAffix(Vowel(SeqV1, D7), "ly")
	require.NoError(t, err)
	assert.Equal(t, "(case:PRD)", affix.Gloss(GlossNone))

	_, err = DecodeAffix(Vowel(SeqV1, D0), "lw")
	assert.ErrorIs(t, err, ErrCaseStackingDegreeZero)
}

func TestDecodeAffixCaseAccessor(t *testing.T) {
	affix, err := DecodeAffix(Vowel(SeqV2, D1), "zy")
	require.NoError(t, err)
	require.IsType(t, CaseAccessorAffix{}, affix)
	assert.Equal(t, "(acc:ACT)₂", affix.Gloss(GlossNone))
}

func TestDecodeAffixCaStacking(t *testing.T) {
	affix, err := DecodeAffix(Vowel(SeqV4, D0), "l")
	require.NoError(t, err)
	require.IsType(t, CaStackingAffix{}, affix)
	assert.Equal(t, DefaultCa, affix.(CaStackingAffix).Ca)
}

func TestDecodeAffixReferential(t *testing.T) {
	affix, err := DecodeAffix(Vowel(SeqV4, D1), "l")
	require.NoError(t, err)
	require.IsType(t, ReferentialAffix{}, affix)
	assert.Equal(t, CaseTHM, affix.(ReferentialAffix).Case)
	assert.Equal(t, "(1m-THM)", affix.Gloss(GlossNone))
}

func TestAffixListAppositive(t *testing.T) {
	// A lone sequence-3 pair outside the reserved Cs set reads as an
	// appositive referential affix.
	list, err := AffixListFromPairs([]VxCs{{Vowel(SeqV3, D1), "ţw"}})
	require.NoError(t, err)
	require.NotNil(t, list.Appositive)
	assert.Equal(t, CasePOS, list.Appositive.Case)
	assert.Equal(t, PerspectiveA, list.Appositive.Referents.Perspective)
	assert.Equal(t, 1, list.Len())

	// Reserved Cs forms keep their case-accessor reading.
	list, err = AffixListFromPairs([]VxCs{{Vowel(SeqV3, D1), "sw"}})
	require.NoError(t, err)
	assert.Nil(t, list.Appositive)
	require.Len(t, list.Affixes, 1)
	assert.IsType(t, CaseAccessorAffix{}, list.Affixes[0])

	// Two pairs never collapse into an appositive.
	list, err = AffixListFromPairs([]VxCs{
		{Vowel(SeqV3, D1), "ţw"},
		{Vowel(SeqV1, D3), "t"},
	})
	require.NoError(t, err)
	assert.Nil(t, list.Appositive)
	assert.Equal(t, 2, list.Len())

	_, err = AffixListFromPairs([]VxCs{{Vowel(SeqV3, D0), "ţw"}})
	assert.ErrorIs(t, err, ErrAppositiveDegreeZero)
}
