package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlossText(t *testing.T) {
	results := GlossText("Lo lawe, eru.", ParseNone, GlossNone)
	require.Len(t, results, 3)

	assert.Equal(t, "Lo", results[0].Token)
	assert.NoError(t, results[0].Err)
	assert.Equal(t, "1m-ERG", results[0].Gloss)

	assert.Equal(t, "lawe", results[1].Token)
	assert.Equal(t, "1m-THM-ABS", results[1].Gloss)

	assert.Equal(t, "eru", results[2].Token)
	assert.Equal(t, "r/3₁-{v.sub}", results[2].Gloss)
}

func TestGlossTextBadToken(t *testing.T) {
	results := GlossText("lo qqq lawe", ParseNone, GlossNone)
	require.Len(t, results, 3)

	assert.NoError(t, results[0].Err)
	assert.Error(t, results[1].Err)
	assert.Nil(t, results[1].Word)
	assert.Empty(t, results[1].Gloss)
	assert.NoError(t, results[2].Err)
}

func TestGlossTextEmpty(t *testing.T) {
	assert.Empty(t, GlossText("", ParseNone, GlossNone))
	assert.Empty(t, GlossText("  ... !!", ParseNone, GlossNone))
}
