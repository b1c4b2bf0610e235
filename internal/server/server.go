package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"sync"
	"time"

	mcpserver "github.com/mark3labs/mcp-go/server"

	"consul-mcp/internal/api"
	"consul-mcp/internal/config"
	"consul-mcp/pkg/logging"
)

const shutdownTimeout = 5 * time.Second

// Config selects the transport and identity of the MCP server.
type Config struct {
	Transport string
	Host      string
	Port      int

	Name    string
	Version string
}

// Server serves the tools of a single provider over MCP.
type Server struct {
	config Config

	mcpServer *mcpserver.MCPServer

	mu                   sync.RWMutex
	started              bool
	cancelFunc           context.CancelFunc
	sseServer            *mcpserver.SSEServer
	streamableHTTPServer *mcpserver.StreamableHTTPServer
	done                 chan error
}

// New creates a server and registers every tool of provider. The transport is
// not started until Start is called.
func New(cfg Config, provider api.ToolProvider) (*Server, error) {
	if provider == nil {
		return nil, errors.New("tool provider is required")
	}
	if cfg.Name == "" {
		cfg.Name = "consul-mcp"
	}
	if cfg.Version == "" {
		cfg.Version = "dev"
	}

	mcpServer := mcpserver.NewMCPServer(
		cfg.Name,
		cfg.Version,
		mcpserver.WithToolCapabilities(true),
	)

	serverTools := createServerTools(provider)
	mcpServer.AddTools(serverTools...)
	logging.Debug("Server", "Registered %d tools", len(serverTools))

	return &Server{
		config:    cfg,
		mcpServer: mcpServer,
		done:      make(chan error, 1),
	}, nil
}

// MCPServer returns the underlying mcp-go server.
func (s *Server) MCPServer() *mcpserver.MCPServer {
	return s.mcpServer
}

// Done receives once when the transport stops on its own, for example when
// stdin is closed or the HTTP listener fails. A nil value means a clean exit.
func (s *Server) Done() <-chan error {
	return s.done
}

// Start starts the configured transport in the background.
func (s *Server) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.started {
		return fmt.Errorf("server already started")
	}

	ctx, cancel := context.WithCancel(ctx)
	s.cancelFunc = cancel
	s.started = true

	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)

	switch s.config.Transport {
	case config.MCPTransportSSE:
		logging.Info("Server", "Starting MCP server with SSE transport on %s", addr)
		baseURL := fmt.Sprintf("http://%s:%d", s.config.Host, s.config.Port)
		s.sseServer = mcpserver.NewSSEServer(
			s.mcpServer,
			mcpserver.WithBaseURL(baseURL),
			mcpserver.WithSSEEndpoint("/sse"),
			mcpserver.WithMessageEndpoint("/message"),
			mcpserver.WithKeepAlive(true),
			mcpserver.WithKeepAliveInterval(30*time.Second),
		)
		sseServer := s.sseServer
		go func() {
			err := sseServer.Start(addr)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Server", err, "SSE server error")
				s.finish(err)
				return
			}
			s.finish(nil)
		}()

	case config.MCPTransportStdio:
		logging.Info("Server", "Starting MCP server with stdio transport")
		stdioServer := mcpserver.NewStdioServer(s.mcpServer)
		go func() {
			err := stdioServer.Listen(ctx, os.Stdin, os.Stdout)
			if err != nil && !errors.Is(err, context.Canceled) {
				logging.Error("Server", err, "Stdio server error")
				s.finish(err)
				return
			}
			logging.Info("Server", "Stdio transport closed")
			s.finish(nil)
		}()

	default:
		if s.config.Transport != config.MCPTransportStreamableHTTP {
			logging.Warn("Server", "Unknown transport %q, using %s", s.config.Transport, config.MCPTransportStreamableHTTP)
		}
		logging.Info("Server", "Starting MCP server with streamable-http transport on %s", addr)
		s.streamableHTTPServer = mcpserver.NewStreamableHTTPServer(s.mcpServer)
		streamableServer := s.streamableHTTPServer
		go func() {
			err := streamableServer.Start(addr)
			if err != nil && !errors.Is(err, http.ErrServerClosed) {
				logging.Error("Server", err, "Streamable HTTP server error")
				s.finish(err)
				return
			}
			s.finish(nil)
		}()
	}

	return nil
}

func (s *Server) finish(err error) {
	select {
	case s.done <- err:
	default:
	}
}

// Stop shuts the transport down, waiting at most five seconds for HTTP
// connections to drain.
func (s *Server) Stop(ctx context.Context) error {
	s.mu.Lock()
	if !s.started {
		s.mu.Unlock()
		return fmt.Errorf("server not started")
	}

	logging.Info("Server", "Stopping MCP server")

	cancelFunc := s.cancelFunc
	sseServer := s.sseServer
	streamableServer := s.streamableHTTPServer
	s.started = false
	s.cancelFunc = nil
	s.sseServer = nil
	s.streamableHTTPServer = nil
	s.mu.Unlock()

	if cancelFunc != nil {
		cancelFunc()
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, shutdownTimeout)
	defer cancel()

	var errs []error
	if sseServer != nil {
		if err := sseServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down SSE server")
			errs = append(errs, err)
		}
	}
	if streamableServer != nil {
		if err := streamableServer.Shutdown(shutdownCtx); err != nil {
			logging.Error("Server", err, "Error shutting down streamable HTTP server")
			errs = append(errs, err)
		}
	}

	// The stdio transport stops when its context is cancelled.
	return errors.Join(errs...)
}

// GetEndpoint describes where clients can reach the server.
func (s *Server) GetEndpoint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	switch s.config.Transport {
	case config.MCPTransportSSE:
		return fmt.Sprintf("http://%s:%d/sse", s.config.Host, s.config.Port)
	case config.MCPTransportStdio:
		return "stdio"
	default:
		return fmt.Sprintf("http://%s:%d/mcp", s.config.Host, s.config.Port)
	}
}
