package server

import (
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/bastiangx/prosecomplete/pkg/config"
	"github.com/bastiangx/prosecomplete/pkg/suggest"
	"github.com/charmbracelet/log"
)

// Server handles the IPC between a host and the completion engine.
// Requests are processed one at a time in arrival order.
type Server struct {
	engine   Engine
	codec    Codec
	config   config.ServerConfig
	requests int
	failures int
}

// NewServer creates a server that reads requests and writes replies through codec.
func NewServer(engine Engine, codec Codec, cfg config.ServerConfig) *Server {
	return &Server{
		engine: engine,
		codec:  codec,
		config: cfg,
	}
}

// Init asks the engine to build and install its index and tells the host
// how it went. A failed init does not stop the server: lookups keep being
// answered, with an error until some index is installed.
func (s *Server) Init() error {
	return s.handleInit(Request{Action: ActionInit})
}

// Start begins listening for requests until the host closes the stream.
func (s *Server) Start() error {
	log.Debug("Starting server", "format", s.codec.Name(), "maxQuery", s.config.MaxQuery)

	for {
		frame, err := s.codec.ReadFrame()
		if err != nil {
			if errors.Is(err, io.EOF) {
				log.Debug("Host closed the stream, stopping")
				return nil
			}
			log.Errorf("Reading request: %v", err)
			return fmt.Errorf("read request: %w", err)
		}
		if len(frame) == 0 {
			continue
		}
		s.handleFrame(frame)
	}
}

// handleFrame decodes one request and dispatches it. Panics are turned into
// error replies so one bad request never takes the host's completions down.
func (s *Server) handleFrame(frame []byte) {
	s.requests++

	var request Request
	defer func() {
		if r := recover(); r != nil {
			log.Errorf("Recovered from panic handling request %q: %v", request.ID, r)
			s.sendError(request.ID, "Internal server error", 500)
		}
	}()

	if err := s.codec.Unmarshal(frame, &request); err != nil {
		log.Errorf("Unmarshaling request: %v", err)
		s.sendError("", "Invalid request", 400)
		return
	}

	switch request.Action {
	case ActionLookup, "":
		s.handleLookup(request)
	case ActionInit:
		_ = s.handleInit(request)
	case ActionHealth:
		s.send(StatusMessage{ID: request.ID, Status: "ok"})
	case ActionStats:
		s.handleStats(request)
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown action: %s", request.Action), 400)
	}
}

func (s *Server) handleInit(request Request) error {
	msg, err := s.engine.Init()
	if err != nil {
		log.Errorf("Init failed: %v", err)
		s.sendFailure(request.ID, err)
		return err
	}

	status := StatusMessage{ID: request.ID, Status: "ready", Message: msg}
	if stats, err := s.engine.Stats(); err == nil {
		status.Entries = stats["entries"]
	}
	s.send(status)
	return nil
}

func (s *Server) handleLookup(request Request) {
	if s.config.MaxQuery > 0 && len(request.Query) > s.config.MaxQuery {
		log.Debugf("Query too long in request %q: %d bytes", request.ID, len(request.Query))
		s.sendError(request.ID, fmt.Sprintf("Query exceeds maximum length of %d bytes", s.config.MaxQuery), 400)
		return
	}

	start := time.Now()
	results, err := s.engine.Lookup(request.Query)
	elapsed := time.Since(start)
	if err != nil {
		s.sendFailure(request.ID, err)
		return
	}

	log.Debugf("Took [ %v ] for query '%s', %d results", elapsed, request.Query, len(results))
	s.send(LookupResponse{
		ID:          request.ID,
		Suggestions: results,
		Count:       len(results),
		TimeTaken:   elapsed.Microseconds(),
	})
}

func (s *Server) handleStats(request Request) {
	stats, err := s.engine.Stats()
	if err != nil {
		s.sendFailure(request.ID, err)
		return
	}
	stats["requests"] = s.requests
	stats["failures"] = s.failures
	s.send(StatsResponse{ID: request.ID, Stats: stats})
}

// sendFailure maps an engine error onto the host error signal.
func (s *Server) sendFailure(id string, err error) {
	s.sendError(id, err.Error(), errorCode(err))
}

func (s *Server) sendError(id, message string, code int) {
	s.failures++
	s.send(ErrorResponse{ID: id, Error: message, Code: code})
}

func (s *Server) send(response any) {
	if err := s.codec.WriteMessage(response); err != nil {
		log.Errorf("Writing response: %v", err)
	}
}

func errorCode(err error) int {
	switch {
	case errors.Is(err, suggest.ErrDoubleInit):
		return 409
	case errors.Is(err, suggest.ErrIndexUnavailable):
		return 503
	default:
		return 500
	}
}
