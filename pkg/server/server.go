package server

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vmihailenco/msgpack/v5"
)

// Server handles msgpack IPC over a reader/writer pair, normally
// stdin/stdout. Requests are answered in order.
type Server struct {
	engine  *Engine
	dec     *msgpack.Decoder
	writer  *bufio.Writer
	enc     *msgpack.Encoder
	logger  *log.Logger
	handled int
}

// NewServer creates a server reading requests from r and writing responses
// to w.
func NewServer(engine *Engine, r io.Reader, w io.Writer, logger *log.Logger) *Server {
	bw := bufio.NewWriter(w)
	return &Server{
		engine: engine,
		dec:    msgpack.NewDecoder(bufio.NewReader(r)),
		writer: bw,
		enc:    msgpack.NewEncoder(bw),
		logger: logger,
	}
}

// Start serves requests until the input ends. A clean EOF returns nil.
// Input that cannot be decoded ends the session with an error, since the
// stream cannot be resynchronised.
func (s *Server) Start() error {
	s.logger.Debug("Starting IPC server")
	if err := s.send(Response{Status: "ready"}); err != nil {
		return err
	}

	for {
		var req Request
		if err := s.dec.Decode(&req); err != nil {
			if errors.Is(err, io.EOF) {
				s.logger.Debugf("Input closed after %d requests", s.handled)
				return nil
			}
			s.logger.Errorf("Decoding request: %v", err)
			_ = s.send(Response{Status: StatusError, Error: "malformed request"})
			return fmt.Errorf("failed to decode request: %w", err)
		}
		if err := s.send(s.Handle(req)); err != nil {
			return err
		}
	}
}

// Handle answers a single request.
func (s *Server) Handle(req Request) Response {
	s.handled++
	start := time.Now()
	resp := Response{ID: req.ID, Status: StatusOK}

	switch req.Action {
	case ActionOne, ActionSimilar, ActionAll:
		words, err := s.engine.Lookup(req.Kind, req.Action, req.Word, req.Comparability, req.Limit)
		if err != nil {
			return s.fail(resp, err)
		}
		resp.Words = words
		resp.Count = len(words)
	case ActionComplete:
		suggestions, err := s.engine.Complete(req.Word, req.Limit)
		if err != nil {
			return s.fail(resp, err)
		}
		resp.Suggestions = suggestions
		resp.Count = len(suggestions)
	case ActionStats:
		resp.Stats = s.engine.Stats()
	default:
		return s.fail(resp, fmt.Errorf("unknown action %q", req.Action))
	}

	if resp.Count == 0 && req.Action != ActionStats {
		resp.Status = StatusNotFound
	}
	resp.TimeTaken = time.Since(start).Microseconds()
	s.logger.Debugf("Handled %s %q in %dµs (%d results)", req.Action, req.Word, resp.TimeTaken, resp.Count)
	return resp
}

func (s *Server) fail(resp Response, err error) Response {
	s.logger.Warnf("Request %s failed: %v", resp.ID, err)
	resp.Status = StatusError
	resp.Error = err.Error()
	return resp
}

func (s *Server) send(resp Response) error {
	if err := s.enc.Encode(&resp); err != nil {
		return fmt.Errorf("failed to encode response: %w", err)
	}
	if err := s.writer.Flush(); err != nil {
		return fmt.Errorf("failed to write response: %w", err)
	}
	return nil
}
