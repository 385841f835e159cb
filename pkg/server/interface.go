/*
Package server exposes the lingvo dictionaries over msgpack IPC and a JSON
HTTP API.

# IPC

Clients write a stream of msgpack-encoded Request values to stdin and read
one Response per request from stdout. Values are self-delimiting, so no
framing is needed. A lookup looks like

	{"id": "req_001", "a": "similar", "k": "adjective", "w": "прекрасный"}

and is answered with the full paradigm of the match:

	{"id": "req_001", "status": "ok", "words": [{"word": "прекрасный", "key": "красный", "inexact": true, ...}], "c": 1, "t": 42}

Completion requests use the "complete" action with the prefix in "w":

	{"id": "req_002", "a": "complete", "w": "крас", "l": 5}

The "stats" action reports dictionary sizes. Responses carry the request
time in microseconds. A word that is not found is answered with status
"not_found", invalid requests with status "error".

# HTTP

See NewHTTPHandler for the routes.
*/
package server

import (
	"github.com/bastiangx/lingvo/pkg/morph"
	"github.com/bastiangx/lingvo/pkg/suggest"
)

// Actions understood by the IPC server.
const (
	ActionOne      = ModeOne
	ActionSimilar  = ModeSimilar
	ActionAll      = ModeAll
	ActionComplete = "complete"
	ActionStats    = "stats"
)

// Response statuses.
const (
	StatusOK       = "ok"
	StatusNotFound = "not_found"
	StatusError    = "error"
)

// Request is one IPC request.
type Request struct {
	ID            string `msgpack:"id"`
	Action        string `msgpack:"a"`
	Kind          string `msgpack:"k,omitempty"`
	Word          string `msgpack:"w"`
	Comparability string `msgpack:"cmp,omitempty"`
	Limit         int    `msgpack:"l,omitempty"`
}

// Response is the answer to a Request.
type Response struct {
	ID          string               `msgpack:"id"`
	Status      string               `msgpack:"status"`
	Error       string               `msgpack:"error,omitempty"`
	Words       []morph.Paradigm     `msgpack:"words,omitempty"`
	Suggestions []suggest.Suggestion `msgpack:"s,omitempty"`
	Stats       map[string]int       `msgpack:"stats,omitempty"`
	Count       int                  `msgpack:"c"`
	TimeTaken   int64                `msgpack:"t"`
}
