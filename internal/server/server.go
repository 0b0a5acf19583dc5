// Package server exposes axtree operations as MCP tools.
package server

import (
	"fmt"
	"log/slog"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"golang.org/x/time/rate"

	"github.com/mj1618/axtree/internal/config"
	"github.com/mj1618/axtree/internal/platform"
	"github.com/mj1618/axtree/internal/snapshot"
)

// Options configures a Server.
type Options struct {
	Prompt   bool
	MaxDepth int
	// Rate is tool calls per second; 0 disables limiting.
	Rate    int
	Version string
	Logger  *slog.Logger
}

// Server wraps the MCP server with the platform provider. Tool calls are
// serialized: only one touches the UI at a time.
type Server struct {
	provider *platform.Provider
	opts     Options
	logger   *slog.Logger
	limiter  *rate.Limiter

	providerMu sync.Mutex
	mcp        *mcpserver.MCPServer
}

// New creates and configures an MCP server with all axtree tools.
func New(provider *platform.Provider, opts Options) *Server {
	if opts.Logger == nil {
		opts.Logger = slog.New(slog.DiscardHandler)
	}
	if opts.Version == "" {
		opts.Version = "dev"
	}
	s := &Server{
		provider: provider,
		opts:     opts,
		logger:   opts.Logger,
	}
	if opts.Rate > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(opts.Rate), opts.Rate)
	}

	s.mcp = mcpserver.NewMCPServer("axtree", opts.Version)
	s.registerTools()
	return s
}

// Serve starts the MCP server with the given transport.
func (s *Server) Serve(transport config.TransportType, port int) error {
	s.logger.Info("mcp server starting", "transport", transport, "port", port)
	switch transport {
	case config.TransportStdio:
		return mcpserver.ServeStdio(s.mcp)
	case config.TransportHTTP:
		httpServer := mcpserver.NewStreamableHTTPServer(s.mcp)
		return httpServer.Start(fmt.Sprintf(":%d", port))
	default:
		return fmt.Errorf("unsupported transport: %s (use stdio or streamable-http)", transport)
	}
}

func (s *Server) acquireOptions(appRoot bool) snapshot.AcquireOptions {
	return snapshot.AcquireOptions{Prompt: s.opts.Prompt, AppRoot: appRoot}
}

func (s *Server) registerTools() {
	appRoot := mcp.WithBoolean("app_root", mcp.Description("Resolve against the application element instead of its focused window"))

	s.mcp.AddTool(
		mcp.NewTool("snapshot",
			mcp.WithDescription("Capture the accessibility tree of the frontmost application's focused window. Every node carries a ref (e.g. n0.2.1) usable by the other tools until the UI changes."),
			mcp.WithString("roles", mcp.Description("Comma-separated roles to keep (AXButton, btn, interactive, ...)")),
			mcp.WithString("text", mcp.Description("Keep nodes whose name or value contains this text")),
			mcp.WithBoolean("flat", mcp.Description("Return a flat list with role breadcrumbs")),
			mcp.WithNumber("max_depth", mcp.Description("Max depth to traverse (0 = unlimited)")),
			appRoot,
		),
		s.handleSnapshot,
	)

	s.mcp.AddTool(
		mcp.NewTool("click",
			mcp.WithDescription("Press the element at ref. Re-snapshot afterwards: refs go stale when the UI changes."),
			mcp.WithString("ref", mcp.Required(), mcp.Description("Element ref from snapshot")),
			appRoot,
		),
		s.handleClick,
	)

	s.mcp.AddTool(
		mcp.NewTool("focus",
			mcp.WithDescription("Give keyboard focus to the element at ref"),
			mcp.WithString("ref", mcp.Required(), mcp.Description("Element ref from snapshot")),
			appRoot,
		),
		s.handleFocus,
	)

	s.mcp.AddTool(
		mcp.NewTool("set_value",
			mcp.WithDescription("Set the value of the element at ref"),
			mcp.WithString("ref", mcp.Required(), mcp.Description("Element ref from snapshot")),
			mcp.WithString("value", mcp.Required(), mcp.Description("New value")),
			appRoot,
		),
		s.handleSetValue,
	)

	s.mcp.AddTool(
		mcp.NewTool("press",
			mcp.WithDescription("Press a key (enter, tab, escape, a-z, 0-9, arrows, f1-f12, ...) in whatever has focus"),
			mcp.WithString("key", mcp.Required(), mcp.Description("Key name, case-insensitive")),
		),
		s.handlePress,
	)

	s.mcp.AddTool(
		mcp.NewTool("recipe",
			mcp.WithDescription(`Run steps in order, stopping at the first failure. Each step is {"cmd": "snapshot"|"click"|"focus"|"set_value"|"press", "ref"?, "value"?, "key"?}.`),
			mcp.WithArray("steps", mcp.Required(), mcp.Description("Ordered list of steps"),
				mcp.Items(map[string]any{"type": "object"})),
			appRoot,
		),
		s.handleRecipe,
	)
}
