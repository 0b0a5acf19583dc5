package cmd

import (
	"github.com/spf13/cobra"

	"github.com/mj1618/axtree/internal/config"
	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/server"
	"github.com/mj1618/axtree/internal/version"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing axtree tools",
	Long: `Start a Model Context Protocol (MCP) server that exposes snapshot, click,
focus, set_value, press and recipe as tools. Every tool returns the same
envelope as the CLI.

Supported transports:
  stdio             Standard I/O (default)
  streamable-http   Streamable HTTP transport (for remote agents)

Examples:
  axtree serve
  axtree serve --transport streamable-http --port 8080
  axtree serve --rate 0`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().String("transport", "", "Transport: stdio, streamable-http (default from AXTREE_MCP_TRANSPORT or stdio)")
	serveCmd.Flags().Int("port", 0, "HTTP port for streamable-http transport (default from AXTREE_MCP_PORT or 8080)")
	serveCmd.Flags().Int("rate", -1, "Max tool calls per second, 0 = unlimited (default from AXTREE_MCP_RATE or 10)")
}

func runServe(cmd *cobra.Command, args []string) error {
	serveCfg := *cfg
	if cmd.Flags().Changed("transport") {
		t, _ := cmd.Flags().GetString("transport")
		serveCfg.Transport = config.TransportType(t)
	}
	if cmd.Flags().Changed("port") {
		serveCfg.MCPPort, _ = cmd.Flags().GetInt("port")
	}
	if cmd.Flags().Changed("rate") {
		serveCfg.MCPRate, _ = cmd.Flags().GetInt("rate")
	}
	if err := serveCfg.Validate(); err != nil {
		return emit(nil, model.ExecutionError("%w", err))
	}

	p, err := provider()
	if err != nil {
		return emit(nil, err)
	}

	srv := server.New(p, server.Options{
		Prompt:   serveCfg.Prompt,
		MaxDepth: serveCfg.MaxDepth,
		Rate:     serveCfg.MCPRate,
		Version:  version.Version,
		Logger:   logger,
	})
	if err := srv.Serve(serveCfg.Transport, serveCfg.MCPPort); err != nil {
		return emit(nil, model.ExecutionError("mcp server: %w", err))
	}
	return nil
}
