package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/bastiangx/lingvo/pkg/morph"
	"github.com/bastiangx/lingvo/pkg/suggest"
	"github.com/charmbracelet/log"
	"github.com/rs/cors"
)

type lookupResponse struct {
	Query string           `json:"query"`
	Mode  string           `json:"mode"`
	Words []morph.Paradigm `json:"words"`
}

type completeResponse struct {
	Prefix      string               `json:"prefix"`
	Suggestions []suggest.Suggestion `json:"suggestions"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// NewHTTPHandler returns the JSON API wrapped in CORS handling:
//
//	GET /api/health
//	GET /api/stats
//	GET /api/adjectives/{word}?mode=one|similar|all&comparability=&limit=
//	GET /api/adverbs/{word}?mode=one|similar|all&comparability=&limit=
//	GET /api/complete?prefix=&limit=
//
// A lookup without results answers 404 with an empty word list.
func NewHTTPHandler(engine *Engine, allowedOrigins []string, logger *log.Logger) http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, map[string]string{"status": StatusOK})
	})
	mux.HandleFunc("GET /api/stats", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, logger, http.StatusOK, engine.Stats())
	})
	mux.HandleFunc("GET /api/adjectives/{word}", handleLookup(engine, suggest.KindAdjective, logger))
	mux.HandleFunc("GET /api/adverbs/{word}", handleLookup(engine, suggest.KindAdverb, logger))
	mux.HandleFunc("GET /api/complete", handleComplete(engine, logger))

	c := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins,
		AllowedMethods: []string{http.MethodGet, http.MethodOptions},
	})
	return c.Handler(mux)
}

func handleLookup(engine *Engine, kind string, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		word := r.PathValue("word")
		q := r.URL.Query()
		mode := q.Get("mode")
		if mode == "" {
			mode = ModeOne
		}
		limit, ok := parseLimit(w, logger, q.Get("limit"))
		if !ok {
			return
		}

		words, err := engine.Lookup(kind, mode, word, q.Get("comparability"), limit)
		if err != nil {
			writeError(w, logger, http.StatusBadRequest, err)
			return
		}
		status := http.StatusOK
		if len(words) == 0 {
			status = http.StatusNotFound
		}
		writeJSON(w, logger, status, lookupResponse{Query: word, Mode: mode, Words: words})
	}
}

func handleComplete(engine *Engine, logger *log.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		prefix := q.Get("prefix")
		if prefix == "" {
			writeError(w, logger, http.StatusBadRequest, errors.New("missing 'prefix' query parameter"))
			return
		}
		limit, ok := parseLimit(w, logger, q.Get("limit"))
		if !ok {
			return
		}

		suggestions, err := engine.Complete(prefix, limit)
		if err != nil {
			writeError(w, logger, http.StatusBadRequest, err)
			return
		}
		writeJSON(w, logger, http.StatusOK, completeResponse{Prefix: prefix, Suggestions: suggestions})
	}
}

func parseLimit(w http.ResponseWriter, logger *log.Logger, raw string) (int, bool) {
	if raw == "" {
		return 0, true
	}
	limit, err := strconv.Atoi(raw)
	if err != nil {
		writeError(w, logger, http.StatusBadRequest, errors.New("'limit' must be an integer"))
		return 0, false
	}
	return limit, true
}

func writeJSON(w http.ResponseWriter, logger *log.Logger, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		logger.Errorf("Encoding response: %v", err)
	}
}

func writeError(w http.ResponseWriter, logger *log.Logger, status int, err error) {
	logger.Debugf("HTTP %d: %v", status, err)
	writeJSON(w, logger, status, errorResponse{Error: err.Error()})
}
