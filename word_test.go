package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGlossWord(t *testing.T) {
	tests := []struct {
		word  string
		gloss string
	}{
		{"hliosulţe", "T1-S2.N-s-lţ/9₁-ABS"},
		{"ašflaleče", "S1-šfl-č/3₁-ABS"},
		{"aesmlal", "[2m+ma+1m]"},
		{"holřäksa", "T1-S0-lř-CTE-DSC"},
		{"açbala", "S1-çb"},
		{"ırburučpaızya", "S2.CPT-rb-DYN-G-čp/9₁-(acc:ACT)₂"},
		{"second", "S1-s-CSV-DSS-nd/7₁"},
		{"changed", "S1-ch-MSC.GRA-d/3₁"},
		{"alasa", "S1-l-DPX"},
		{"nomic", "S1-n-DYN.CSV-N.RPV-c/4₁"},
		{"moved", "S1-m-DYN.CSV-N-d/3₁"},
		{"slot", "S1-sl-DYN.CSV-MSS-OBS"},
		{"psalaekpa", "S1-ps-kp/0₁"},
		{"psakpaevv", "S1-ps-kp/0₁-N"},
		{"oëtil", "CPT.DYN-t/4-D4"},
		{"'oëtil", "CPT.DYN-t/4-D4"},

		{"lo", "1m-ERG"},
		{"la", "1m"},
		{"lawe", "1m-THM-ABS"},
		{"ëlawe", "1m-THM-ABS"},
		{"'ëlawe", "1m-THM-ABS"},
		{"ahňax", "[PHR]-BSC"},
		{"ahňaxelta", "[PHR]-BSC-lt/3₁"},
		{"ahňaxeltüa", "[PHR]-BSC-lt/3₁-THM"},

		{"er", "r/3₁"},
		{"eru", "r/3₁-{v.sub}"},

		{"rrata", "S1-rr-MSS"},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			got, err := GlossWord(tt.word, ParseNone, GlossNone)
			require.NoError(t, err)
			assert.Equal(t, tt.gloss, got)
		})
	}
}

func TestParseWordTypes(t *testing.T) {
	tests := []struct {
		word string
		want Word
	}{
		{"hliosulţe", Formative{}},
		{"aesmlal", Formative{}},
		{"oëtil", Formative{}},
		{"lo", Referential{}},
		{"ëlawe", Referential{}},
		{"ahňaxeltüa", Referential{}},
		{"er", SingleAffixAdjunct{}},
		{"eru", SingleAffixAdjunct{}},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			w, err := ParseWordString(tt.word, ParseNone)
			require.NoError(t, err)
			assert.IsType(t, tt.want, w)
		})
	}
}

func TestParseWordErrors(t *testing.T) {
	tests := []struct {
		word string
		err  error
	}{
		{"", ErrWordEmpty},
		{"üa", ErrWordInitialUa},
		{"q", ErrSourceCharInvalid},
		{"áwalala", ErrStressInvalid},
		{"lálá", ErrStressDoubled},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			_, err := ParseWordString(tt.word, ParseNone)
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestParseWordInitialGlottalStop(t *testing.T) {
	list := TokenList{Tokens: []Token{GlottalStop{}}}
	stream := list.Stream()
	_, err := ParseWord(&stream, ParseNone)
	assert.ErrorIs(t, err, ErrWordInitialGlottalStop)
}

func TestParseWordConsumesWholeStream(t *testing.T) {
	// "lo" then leftover tokens must not parse as one word.
	list, err := ParseTokenList("lo")
	require.NoError(t, err)
	list.Tokens = append(list.Tokens, Schwa{}, Schwa{})
	stream := list.Stream()
	_, err = ParseWord(&stream, ParseNone)
	assert.Error(t, err)
}
