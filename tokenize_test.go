package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenize(t *testing.T) {
	tokens, err := Tokenize("malëuţřait")
	require.NoError(t, err)
	want := []Token{
		Consonant("m"),
		Vowel(SeqV1, D1),
		Consonant("l"),
		Vowel(SeqV2, D5),
		Consonant("ţř"),
		Vowel(SeqV2, D1),
		Consonant("t"),
	}
	assert.Equal(t, want, tokens)
}

func TestTokenizeUnderscore(t *testing.T) {
	// Underscores count as consonants and stay inside the cluster, so the
	// two spellings carry distinct consonant tokens.
	plain, err := Tokenize("malëuţřait")
	require.NoError(t, err)
	split, err := Tokenize("malëuţř_ait")
	require.NoError(t, err)

	assert.Equal(t, Consonant("ţř"), plain[4])
	assert.Equal(t, Consonant("ţř_"), split[4])
}

func TestTokenizeMarkers(t *testing.T) {
	tokens, err := Tokenize("ahňaxeltüa")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, UaMarker{}, tokens[len(tokens)-1])

	tokens, err = Tokenize("ëlawe")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, Schwa{}, tokens[0])

	tokens, err = Tokenize("la'")
	require.NoError(t, err)
	require.NotEmpty(t, tokens)
	assert.Equal(t, GlottalStop{}, tokens[len(tokens)-1])
}

func TestTokenizeErrors(t *testing.T) {
	_, err := Tokenize("qal")
	assert.ErrorIs(t, err, ErrSourceCharInvalid)

	_, err = Tokenize("aeal")
	assert.ErrorIs(t, err, ErrSourceVowelInvalid)
}

func TestTokensRoundTrip(t *testing.T) {
	words := []string{
		"hliosulţe",
		"ašflaleče",
		"malëuţřait",
		"ahňaxeltüa",
		"lawe",
		"er",
	}
	for _, word := range words {
		tokens, err := Tokenize(word)
		require.NoError(t, err, "word %q", word)
		assert.Equal(t, word, TokensToString(tokens), "word %q", word)
	}
}

func TestTokenListRender(t *testing.T) {
	list, err := ParseTokenList("walá")
	require.NoError(t, err)
	assert.Equal(t, StressUltimate, list.Stress)
	assert.True(t, list.StressMarked)

	out, err := list.Render()
	require.NoError(t, err)
	assert.Equal(t, "walá", out)
}

func TestTokenStreamBacktrack(t *testing.T) {
	list, err := ParseTokenList("lawe")
	require.NoError(t, err)
	stream := list.Stream()

	save := stream
	c, ok := stream.NextConsonant()
	require.True(t, ok)
	assert.Equal(t, Consonant("l"), c)

	stream = save
	c, ok = stream.NextConsonant()
	require.True(t, ok)
	assert.Equal(t, Consonant("l"), c)

	_, ok = stream.NextVowel()
	require.True(t, ok)
	_, ok = stream.NextBackVowel()
	require.True(t, ok)
	_, ok = stream.NextH()
	require.True(t, ok)
	assert.True(t, stream.IsDone())
}
