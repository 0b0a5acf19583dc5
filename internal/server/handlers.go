package server

import (
	"context"
	"encoding/json"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mj1618/axtree/internal/action"
	"github.com/mj1618/axtree/internal/model"
	"github.com/mj1618/axtree/internal/output"
	"github.com/mj1618/axtree/internal/recipe"
	"github.com/mj1618/axtree/internal/snapshot"
)

// envelopeResult serializes an envelope to JSON for the MCP response. Failure
// envelopes are flagged as tool errors.
func envelopeResult(env output.Envelope) *mcp.CallToolResult {
	text, err := output.JSON(env)
	if err != nil {
		text = `{"success":false,"error":"ExecutionError","message":"failed to encode result"}`
		return mcp.NewToolResultError(text)
	}
	if !env.Success {
		return mcp.NewToolResultError(text)
	}
	return mcp.NewToolResultText(text)
}

// run serializes tool calls and applies the rate limit before fn touches the UI.
func (s *Server) run(tool string, fn func() output.Envelope) (*mcp.CallToolResult, error) {
	if s.limiter != nil && !s.limiter.Allow() {
		s.logger.Warn("tool call rejected", "tool", tool, "reason", "rate limit")
		return envelopeResult(output.Failure(model.ExecutionError("rate limit exceeded; retry shortly"), nil)), nil
	}

	s.providerMu.Lock()
	defer s.providerMu.Unlock()

	s.logger.Debug("tool call", "tool", tool)
	return envelopeResult(fn()), nil
}

func (s *Server) dispatcher(appRoot bool) *action.Dispatcher {
	return action.NewDispatcher(s.provider, s.acquireOptions(appRoot), s.logger)
}

func (s *Server) handleSnapshot(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	maxDepth := request.GetInt("max_depth", s.opts.MaxDepth)
	view := snapshot.ViewOptions{
		Roles:  snapshot.ParseRoles(request.GetString("roles", "")),
		Text:   request.GetString("text", ""),
		Flat:   request.GetBool("flat", false),
		Logger: s.logger,
	}
	appRoot := request.GetBool("app_root", false)

	return s.run("snapshot", func() output.Envelope {
		if maxDepth < 0 {
			return output.Failure(model.ExecutionError("max_depth must be >= 0"), nil)
		}
		snap, err := snapshot.Take(s.provider, s.acquireOptions(appRoot), snapshot.BuildOptions{MaxDepth: maxDepth, Logger: s.logger})
		if err != nil {
			return output.Failure(err, nil)
		}
		return output.Success(snapshot.View(snap, view))
	})
}

func (s *Server) handleClick(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, refErr := request.RequireString("ref")
	appRoot := request.GetBool("app_root", false)
	return s.run("click", func() output.Envelope {
		if refErr != nil {
			return output.Failure(model.ExecutionError("%w", refErr), nil)
		}
		return actionEnvelope(s.dispatcher(appRoot).Click(ref))
	})
}

func (s *Server) handleFocus(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, refErr := request.RequireString("ref")
	appRoot := request.GetBool("app_root", false)
	return s.run("focus", func() output.Envelope {
		if refErr != nil {
			return output.Failure(model.ExecutionError("%w", refErr), nil)
		}
		return actionEnvelope(s.dispatcher(appRoot).Focus(ref))
	})
}

func (s *Server) handleSetValue(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	ref, refErr := request.RequireString("ref")
	value, valueErr := request.RequireString("value")
	appRoot := request.GetBool("app_root", false)
	return s.run("set_value", func() output.Envelope {
		if refErr != nil {
			return output.Failure(model.ExecutionError("%w", refErr), nil)
		}
		if valueErr != nil {
			return output.Failure(model.ExecutionError("%w", valueErr), nil)
		}
		return actionEnvelope(s.dispatcher(appRoot).SetValue(ref, value))
	})
}

func (s *Server) handlePress(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	key, keyErr := request.RequireString("key")
	return s.run("press", func() output.Envelope {
		if keyErr != nil {
			return output.Failure(model.ExecutionError("%w", keyErr), nil)
		}
		return actionEnvelope(s.dispatcher(false).Press(key))
	})
}

func (s *Server) handleRecipe(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	raw := request.GetArguments()["steps"]
	appRoot := request.GetBool("app_root", false)

	return s.run("recipe", func() output.Envelope {
		steps, err := parseSteps(raw)
		if err != nil {
			return output.Failure(err, nil)
		}
		acquire := s.acquireOptions(appRoot)
		snaps := recipe.SnapshotFunc(func() (*model.Snapshot, error) {
			return snapshot.Take(s.provider, acquire, snapshot.BuildOptions{MaxDepth: s.opts.MaxDepth, Logger: s.logger})
		})
		report := recipe.NewExecutor(s.dispatcher(appRoot), snaps, s.logger).Run(steps)
		if !report.Success() {
			return output.Failure(report.Err(), report)
		}
		return output.Success(report)
	})
}

// parseSteps accepts the steps argument as a JSON array or as a string
// holding a JSON or YAML document.
func parseSteps(raw any) ([]recipe.Step, error) {
	switch v := raw.(type) {
	case nil:
		return nil, model.ExecutionError("required argument \"steps\" not found")
	case string:
		return recipe.Parse([]byte(v))
	default:
		data, err := json.Marshal(v)
		if err != nil {
			return nil, model.ExecutionError("invalid steps: %w", err)
		}
		return recipe.Parse(data)
	}
}

func actionEnvelope(res *model.ActionResult, err error) output.Envelope {
	if err != nil {
		return output.Failure(err, nil)
	}
	return output.Success(res)
}
