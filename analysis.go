// Package ithkuil parses romanized New Ithkuil and produces interlinear
// glosses. A word goes through normalization, stress detection,
// tokenization into phoneme-cluster tokens, and finally word-type
// dispatch; the result is a Formative, a Referential or one of the
// adjunct types, each of which knows how to gloss itself.
package ithkuil

import (
	"regexp"
	"strings"
)

// reWord matches a single romanized word token. Word-internal apostrophes,
// the underscore cluster separator, numerals and combining diacritics all
// count as word characters.
var reWord = regexp.MustCompile(`[0-9_'’ʼ‘a-zA-ZÀ-ÿ\x{0100}-\x{024F}\x{0300}-\x{036F}\x{1E00}-\x{1EFF}]+`)

// A WordAnalysis is the outcome for one token of running text. Exactly one
// of Word and Err is set.
type WordAnalysis struct {
	// Token is the word as it appeared in the text.
	Token string

	// Word is the parsed word, nil when the token failed to parse.
	Word Word

	// Gloss is Word glossed with the flags passed to GlossText.
	Gloss string

	// Err records why the token failed to parse.
	Err error
}

// GlossText splits running text into word tokens and glosses each one.
// Unparseable tokens are reported in place rather than dropped, so the
// result lines up with the input word for word.
func GlossText(text string, parseFlags ParseFlags, glossFlags GlossFlags) []WordAnalysis {
	var results []WordAnalysis
	for _, token := range reWord.FindAllString(text, -1) {
		res := WordAnalysis{Token: token}
		w, err := ParseWordString(token, parseFlags)
		if err != nil {
			// Sentence-initial capitals are not part of the romanization;
			// retry in lowercase before giving up.
			if lower := strings.ToLower(token); lower != token {
				w, err = ParseWordString(lower, parseFlags)
			}
		}
		if err != nil {
			res.Err = err
		} else {
			res.Word = w
			res.Gloss = w.Gloss(glossFlags)
		}
		results = append(results, res)
	}
	return results
}
