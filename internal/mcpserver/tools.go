// Copyright 2026 The rgscope Authors
// SPDX-License-Identifier: MIT

package mcpserver

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/davetashner/rgscope/internal/config"
	"github.com/davetashner/rgscope/internal/output"
	"github.com/davetashner/rgscope/internal/ripgrep"
	"github.com/davetashner/rgscope/internal/searchpath"
)

// ResolveInput is the input schema for the resolve_search_paths MCP tool.
type ResolveInput struct {
	Roots   []string `json:"roots,omitempty" jsonschema:"Workspace root directories (defaults to the current directory)"`
	Include []string `json:"include,omitempty" jsonschema:"Include glob patterns, e.g. ./src/** or *.go"`
	Exclude []string `json:"exclude,omitempty" jsonschema:"Exclude glob patterns"`
}

// ArgsInput is the input schema for the ripgrep_args MCP tool.
type ArgsInput struct {
	Query     string   `json:"query" jsonschema:"Text or regular expression to search for"`
	Roots     []string `json:"roots,omitempty" jsonschema:"Workspace root directories (defaults to the current directory)"`
	Include   []string `json:"include,omitempty" jsonschema:"Include glob patterns, e.g. ./src/** or *.go"`
	Exclude   []string `json:"exclude,omitempty" jsonschema:"Exclude glob patterns"`
	MatchCase bool     `json:"match_case,omitempty" jsonschema:"Search case-sensitively"`
	WholeWord bool     `json:"whole_word,omitempty" jsonschema:"Match whole words only"`
	Regexp    bool     `json:"regexp,omitempty" jsonschema:"Treat query as a regular expression"`
}

// ArgsOutput is the JSON document returned by the ripgrep_args tool.
type ArgsOutput struct {
	Args []string `json:"args"`
}

// boolPtr returns a pointer to a bool.
func boolPtr(b bool) *bool { return &b }

// registerTools adds all rgscope tools to the MCP server.
func registerTools(server *mcp.Server) {
	mcp.AddTool(server, &mcp.Tool{
		Name:        "resolve_search_paths",
		Description: "Reduce include patterns like ./src/** to concrete search paths under the given roots. Returns the paths to search and the patterns still to be passed to the search engine as globs.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleResolve)

	mcp.AddTool(server, &mcp.Tool{
		Name:        "ripgrep_args",
		Description: "Build the ripgrep argument list for a search over the given roots after include patterns are resolved to search paths.",
		Annotations: &mcp.ToolAnnotations{
			ReadOnlyHint:    true,
			DestructiveHint: boolPtr(false),
			OpenWorldHint:   boolPtr(false),
		},
	}, handleArgs)
}

func handleResolve(_ context.Context, _ *mcp.CallToolRequest, input ResolveInput) (*mcp.CallToolResult, any, error) {
	res, err := resolve(input.Roots, searchpath.SearchOptions{
		Include: input.Include,
		Exclude: input.Exclude,
	})
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(output.NewJSONDocument(res))
}

func handleArgs(_ context.Context, _ *mcp.CallToolRequest, input ArgsInput) (*mcp.CallToolResult, any, error) {
	if input.Query == "" {
		return nil, nil, fmt.Errorf("query is required")
	}

	res, err := resolve(input.Roots, searchpath.SearchOptions{
		Include:        input.Include,
		Exclude:        input.Exclude,
		MatchCase:      input.MatchCase,
		MatchWholeWord: input.WholeWord,
		UseRegExp:      input.Regexp,
	})
	if err != nil {
		return nil, nil, err
	}
	return jsonResult(ArgsOutput{Args: ripgrep.FromResult(ripgrep.ModeJSON, input.Query, res)})
}

// resolve loads the config of the first root, merges the tool input over it,
// and resolves the include patterns.
func resolve(roots []string, opts searchpath.SearchOptions) (searchpath.Result, error) {
	abs, err := ResolveRoots(roots)
	if err != nil {
		return searchpath.Result{}, err
	}

	fileCfg, err := config.Load(abs[0])
	if err != nil {
		return searchpath.Result{}, fmt.Errorf("failed to load config: %w", err)
	}
	merged := config.Merge(fileCfg, opts)

	res, err := searchpath.New(serverFS).Resolve(abs, &merged)
	if err != nil {
		return searchpath.Result{}, fmt.Errorf("resolve failed: %w", err)
	}
	return res, nil
}

func jsonResult(v any) (*mcp.CallToolResult, any, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, nil, fmt.Errorf("formatting failed: %w", err)
	}
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			&mcp.TextContent{Text: string(data)},
		},
	}, nil, nil
}
