package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDetectStress(t *testing.T) {
	tests := []struct {
		word   string
		stress Stress
		marked bool
	}{
		{"la", StressMonosyllabic, true},
		{"lo", StressMonosyllabic, true},
		{"lawe", 0, false},
		{"lawé", StressUltimate, true},
		{"láwe", StressPenultimate, true},
		{"málala", StressAntepenultimate, true},
		// A diphthong is one vowel form, not two.
		{"sailé", StressUltimate, true},
		{"áithai", StressPenultimate, true},
	}
	for _, tt := range tests {
		t.Run(tt.word, func(t *testing.T) {
			stress, marked, err := DetectStress(tt.word)
			require.NoError(t, err)
			assert.Equal(t, tt.marked, marked)
			if tt.marked {
				assert.Equal(t, tt.stress, stress)
			}
		})
	}
}

func TestDetectStressErrors(t *testing.T) {
	_, _, err := DetectStress("lálá")
	assert.ErrorIs(t, err, ErrStressDoubled)

	_, _, err = DetectStress("áwalala")
	assert.ErrorIs(t, err, ErrStressInvalid)
}

func TestAddStress(t *testing.T) {
	tests := []struct {
		word   string
		stress Stress
		want   string
	}{
		{"lawe", StressUltimate, "lawé"},
		{"lawe", StressPenultimate, "lawe"},
		{"walala", StressAntepenultimate, "wálala"},
		{"lo", StressMonosyllabic, "lo"},
	}
	for _, tt := range tests {
		got, ok := AddStress(tt.word, tt.stress)
		require.True(t, ok, "AddStress(%q, %v)", tt.word, tt.stress)
		assert.Equal(t, tt.want, got)
	}

	_, ok := AddStress("lawe", StressMonosyllabic)
	assert.False(t, ok, "polysyllabic word cannot be monosyllabic")
}

func TestAddStressRoundTrip(t *testing.T) {
	cases := []struct {
		word     string
		stresses []Stress
	}{
		{"lawe", []Stress{StressUltimate}},
		{"walala", []Stress{StressUltimate, StressAntepenultimate}},
		{"hliosulţe", []Stress{StressUltimate, StressAntepenultimate}},
	}
	for _, tc := range cases {
		word := tc.word
		for _, stress := range tc.stresses {
			marked, ok := AddStress(word, stress)
			require.True(t, ok, "AddStress(%q, %v)", word, stress)
			got, found, err := DetectStress(marked)
			require.NoError(t, err, "DetectStress(%q)", marked)
			require.True(t, found, "DetectStress(%q)", marked)
			assert.Equal(t, stress, got, "word %q", marked)
			assert.Equal(t, word, UnstressVowels(marked))
		}
	}
}
