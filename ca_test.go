package ithkuil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestCaRoundTrip renders every Ca combination in both its ungeminated and
// geminated spellings and decodes each back.
func TestCaRoundTrip(t *testing.T) {
	for affiliation := AffiliationCSL; affiliation <= AffiliationVAR; affiliation++ {
		for configuration := ConfigUPX; configuration <= ConfigDFF; configuration++ {
			for extension := ExtensionDEL; extension <= ExtensionDPL; extension++ {
				for perspective := PerspectiveM; perspective <= PerspectiveA; perspective++ {
					for essence := EssenceNRM; essence <= EssenceRPV; essence++ {
						ca := Ca{
							Affiliation:   affiliation,
							Configuration: configuration,
							Extension:     extension,
							Perspective:   perspective,
							Essence:       essence,
						}

						ungeminated := ca.UngeminatedCaString()
						got, ok := CaFromString(ungeminated)
						require.True(t, ok, "%s was %q (ungeminated)",
							ca.Gloss(GlossShowDefaults), ungeminated)
						assert.Equal(t, ca, got, "ungeminated %q", ungeminated)

						geminated := ca.GeminatedCaString()
						got, ok = CaFromString(geminated)
						require.True(t, ok, "%s was %q (geminated, ungeminated is %q)",
							ca.Gloss(GlossShowDefaults), geminated, ungeminated)
						assert.Equal(t, ca, got, "geminated %q", geminated)
					}
				}
			}
		}
	}
}

func TestDefaultCa(t *testing.T) {
	assert.Equal(t, "l", DefaultCa.UngeminatedCaString())
	assert.Equal(t, "", DefaultCa.GlossNonDefault(GlossNone))
	assert.Equal(t, "CSL.UPX.DEL.M.NRM", DefaultCa.Gloss(GlossShowDefaults))
}

func TestCaGeminationInverse(t *testing.T) {
	for _, ca := range []string{"l", "s", "ř", "tļ", "lç", "nš", "rž"} {
		geminated, ok := TryGeminateCa(ca)
		if !ok {
			continue
		}
		back, ok := CaUngeminate(geminated)
		require.True(t, ok, "CaUngeminate(%q)", geminated)
		assert.Equal(t, ca, back, "gemination of %q", ca)
	}
}

func TestCaAllomorphInverse(t *testing.T) {
	for affiliation := AffiliationCSL; affiliation <= AffiliationVAR; affiliation++ {
		for perspective := PerspectiveM; perspective <= PerspectiveA; perspective++ {
			ca := Ca{Affiliation: affiliation, Perspective: perspective}
			raw := ca.UnallomorphedCaString()
			assert.Equal(t, raw, CaUnallomorph(CaAllomorph(raw)), "raw %q", raw)
		}
	}
}
