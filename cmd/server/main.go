// Command server exposes the New Ithkuil gloss engine as a JSON REST API.
//
// Endpoints:
//
//	GET  /api/gloss?word=<word>[&long=true][&defaults=true]
//	POST /api/gloss/text   body: {"text":"..."}
//	GET  /api/tokenize?word=<word>
//	GET  /api/ca?cluster=<ca>
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/rs/cors"

	ithkuil "github.com/new-ithkuil/ithkuil"
)

// ---- JSON response types ------------------------------------------------

type glossResponse struct {
	Word  string `json:"word"`
	Gloss string `json:"gloss"`
}

type wordResultJSON struct {
	Token string `json:"token"`
	Gloss string `json:"gloss,omitempty"`
	Error string `json:"error,omitempty"`
}

type glossTextResponse struct {
	Results []wordResultJSON `json:"results"`
}

type tokenizeResponse struct {
	Word   string   `json:"word"`
	Stress string   `json:"stress"`
	Tokens []string `json:"tokens"`
}

type caResponse struct {
	Cluster string `json:"cluster"`
	Gloss   string `json:"gloss"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// ---- helpers ------------------------------------------------------------

func glossFlagsFromQuery(r *http.Request) ithkuil.GlossFlags {
	flags := ithkuil.GlossNone
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("long")); ok {
		flags |= ithkuil.GlossLong
	}
	if ok, _ := strconv.ParseBool(r.URL.Query().Get("defaults")); ok {
		flags |= ithkuil.GlossShowDefaults
	}
	return flags
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode error: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// ---- handlers -----------------------------------------------------------

func handleGlossWord() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		gloss, err := ithkuil.GlossWord(word, ithkuil.ParseNone, glossFlagsFromQuery(r))
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("cannot parse %q: %v", word, err))
			return
		}
		writeJSON(w, http.StatusOK, glossResponse{Word: word, Gloss: gloss})
	}
}

func handleGlossText() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			writeError(w, http.StatusMethodNotAllowed, "POST required")
			return
		}
		var body struct {
			Text string `json:"text"`
		}
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.Text == "" {
			writeError(w, http.StatusBadRequest, "body must be JSON with a non-empty 'text' field")
			return
		}

		results := ithkuil.GlossText(body.Text, ithkuil.ParseNone, glossFlagsFromQuery(r))
		out := make([]wordResultJSON, 0, len(results))
		for _, res := range results {
			wr := wordResultJSON{Token: res.Token, Gloss: res.Gloss}
			if res.Err != nil {
				wr.Error = res.Err.Error()
			}
			out = append(out, wr)
		}
		writeJSON(w, http.StatusOK, glossTextResponse{Results: out})
	}
}

func handleTokenize() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		word := r.URL.Query().Get("word")
		if word == "" {
			writeError(w, http.StatusBadRequest, "missing 'word' query parameter")
			return
		}

		list, err := ithkuil.ParseTokenList(word)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("cannot tokenize %q: %v", word, err))
			return
		}
		tokens := make([]string, 0, len(list.Tokens))
		for _, tok := range list.Tokens {
			tokens = append(tokens, ithkuil.TokensToString([]ithkuil.Token{tok}))
		}
		writeJSON(w, http.StatusOK, tokenizeResponse{
			Word:   word,
			Stress: list.Stress.GlossStatic(ithkuil.GlossNone),
			Tokens: tokens,
		})
	}
}

func handleCa() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			writeError(w, http.StatusMethodNotAllowed, "GET required")
			return
		}
		cluster := r.URL.Query().Get("cluster")
		if cluster == "" {
			writeError(w, http.StatusBadRequest, "missing 'cluster' query parameter")
			return
		}

		ca, ok := ithkuil.CaFromString(ithkuil.Normalize(cluster))
		if !ok {
			writeError(w, http.StatusUnprocessableEntity, fmt.Sprintf("%q is not a Ca cluster", cluster))
			return
		}
		gloss := ca.Gloss(glossFlagsFromQuery(r) | ithkuil.GlossShowDefaults)
		writeJSON(w, http.StatusOK, caResponse{Cluster: cluster, Gloss: gloss})
	}
}

// ---- main ---------------------------------------------------------------

func main() {
	addr := flag.String("addr", ":8080", "listen address")
	origins := flag.String("origins", "*", "comma-separated allowed CORS origins")
	flag.Parse()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/gloss/text", handleGlossText())
	mux.HandleFunc("/api/gloss", handleGlossWord())
	mux.HandleFunc("/api/tokenize", handleTokenize())
	mux.HandleFunc("/api/ca", handleCa())

	c := cors.New(cors.Options{
		AllowedOrigins: strings.Split(*origins, ","),
		AllowedMethods: []string{http.MethodGet, http.MethodPost},
	})

	log.Printf("listening on %s", *addr)
	if err := http.ListenAndServe(*addr, c.Handler(mux)); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
