package server

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/bastiangx/typomatch/internal/logger"
	"github.com/bastiangx/typomatch/pkg/complete"
	"github.com/bastiangx/typomatch/pkg/config"
	"github.com/bastiangx/typomatch/pkg/source"
	"github.com/vmihailenco/msgpack/v5"
)

var log = logger.New("ipc")

// Server handles the IPC for typo matching queries. One request is
// processed at a time, so reconfiguration never interleaves with a query.
type Server struct {
	engine     *complete.Engine
	src        source.Source
	cfg        *config.Config
	configPath string
	dec        *msgpack.Decoder
	enc        *msgpack.Encoder
}

// NewServer creates a matching server over stdin/stdout for the given
// candidate source.
func NewServer(src source.Source, cfg *config.Config, configPath string) *Server {
	return NewServerIO(src, cfg, configPath, os.Stdin, os.Stdout)
}

// NewServerIO creates a server over arbitrary streams.
func NewServerIO(src source.Source, cfg *config.Config, configPath string, r io.Reader, w io.Writer) *Server {
	return &Server{
		engine:     complete.NewEngine(cfg.MatchOptions()),
		src:        src,
		cfg:        cfg,
		configPath: configPath,
		dec:        msgpack.NewDecoder(r),
		enc:        msgpack.NewEncoder(w),
	}
}

// Start begins listening for IPC requests. It returns nil on EOF.
func (s *Server) Start() error {
	log.Debug("Starting server.")
	s.send(StatusResponse{Status: "ready"})

	for {
		var request Request
		if err := s.dec.Decode(&request); err != nil {
			if err == io.EOF {
				return nil
			}
			log.Errorf("Decoding request: %v", err)
			s.sendError("", "Invalid msgpack request", 400)
			continue
		}
		s.handleRequest(request)
	}
}

// handleRequest dispatches one request by op name.
func (s *Server) handleRequest(request Request) {
	switch request.Op {
	case "try":
		s.handleTry(request)
	case "all":
		s.handleAll(request)
	case "config":
		s.handleConfig(request)
	case "health":
		s.send(StatusResponse{ID: request.ID, Status: "ok"})
	default:
		s.sendError(request.ID, fmt.Sprintf("Unknown op: %s", request.Op), 400)
	}
}

// validInput bounds the input length per the [server] config section.
func (s *Server) validInput(request Request) bool {
	if request.Input == "" {
		s.sendError(request.ID, "Missing 'q' parameter", 400)
		log.Debug("Input is empty in request")
		return false
	}
	if len(request.Input) < s.cfg.Server.MinInput {
		s.sendError(request.ID, fmt.Sprintf("Input must be at least %d characters", s.cfg.Server.MinInput), 400)
		return false
	}
	if len(request.Input) > s.cfg.Server.MaxInput {
		s.sendError(request.ID, fmt.Sprintf("Input exceeds maximum length of %d characters", s.cfg.Server.MaxInput), 400)
		return false
	}
	return true
}

func (s *Server) handleTry(request Request) {
	if !s.validInput(request) {
		return
	}

	start := time.Now()
	best, err := s.engine.TryCompletion(request.Input, s.src, nil, request.Cursor)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(request.ID, err.Error(), 500)
		log.Errorf("try %q: %v", request.Input, err)
		return
	}

	resp := TryResponse{
		ID:        request.ID,
		TimeTaken: elapsed.Microseconds(),
	}
	if best != nil {
		resp.Word = best.Word
		resp.Length = best.Length
		resp.Found = true
	}
	s.send(resp)
}

func (s *Server) handleAll(request Request) {
	if !s.validInput(request) {
		return
	}

	start := time.Now()
	words, err := s.engine.AllCompletions(request.Input, s.src, nil, request.Cursor)
	elapsed := time.Since(start)
	if err != nil {
		s.sendError(request.ID, err.Error(), 500)
		log.Errorf("all %q: %v", request.Input, err)
		return
	}

	s.send(AllResponse{
		ID:        request.ID,
		Words:     words,
		Count:     len(words),
		TimeTaken: elapsed.Microseconds(),
	})
}

// handleConfig applies a runtime settings change, persists it, and rebuilds
// the engine from the updated config.
func (s *Server) handleConfig(request Request) {
	err := s.cfg.Update(s.configPath, request.TypoLevel, request.ShrinkBound, request.ExpandBound, request.AllCompletions)
	if err != nil {
		s.sendError(request.ID, fmt.Sprintf("Failed to save config: %v", err), 500)
		log.Errorf("Updating config: %v", err)
		return
	}
	s.engine = complete.NewEngine(s.cfg.MatchOptions())
	s.send(StatusResponse{ID: request.ID, Status: "ok"})
}

// send marshals a response and writes it to the client.
func (s *Server) send(response any) {
	if err := s.enc.Encode(response); err != nil {
		log.Errorf("Encoding response: %v", err)
	}
}

// sendError sends an error response
func (s *Server) sendError(id, message string, code int) {
	s.send(ErrorResponse{
		ID:    id,
		Error: message,
		Code:  code,
	})
}
