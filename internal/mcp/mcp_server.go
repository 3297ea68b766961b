// Package mcp provides the Model Context Protocol (MCP) server implementation.
package mcp

import (
	"context"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// NewMCPServer initializes and configures the Trustspot MCP server without starting it.
// This is exposed for unit testing.
func NewMCPServer(baseCfg *contract.Config, mgr contract.StoreManager) *server.MCPServer {
	s := server.NewMCPServer(
		"Trustspot Analysis Server",
		"1.0.0",
		server.WithLogging(),
	)

	h := &toolHandler{
		baseCfg: baseCfg,
		mgr:     mgr,
	}

	// --- 1. Tool: check_package ---
	s.AddTool(mcp.NewTool("check_package",
		mcp.WithDescription("Compute the trust score, zombie status and typosquat risk of a single package."),
		mcp.WithString("name", mcp.Description("Package name, including scope if any."), mcp.Required()),
		mcp.WithString("version", mcp.Description("Exact version to analyze (defaults to latest).")),
		mcp.WithBoolean("offline", mcp.Description("Use cached signals only, never touch the network.")),
	), h.handleCheckPackage)

	// --- 2. Tool: scan_project ---
	s.AddTool(mcp.NewTool("scan_project",
		mcp.WithDescription("Scan every dependency of an npm project and report trust scores with blast radius."),
		mcp.WithString("project_dir", mcp.Description("Path to the project directory (defaults to current directory if not specified).")),
		mcp.WithString("ignore", mcp.Description("Comma-separated package names or patterns to skip.")),
		mcp.WithBoolean("offline", mcp.Description("Use cached signals only, never touch the network.")),
	), h.handleScanProject)

	// --- 3. Tool: recent_scans ---
	s.AddTool(mcp.NewTool("recent_scans",
		mcp.WithDescription("List recent project scan runs from the history store."),
		mcp.WithNumber("limit", mcp.Description("Limit the number of scan runs returned.")),
	), h.handleRecentScans)

	return s
}

// StartMCPServer starts the Trustspot MCP server.
func StartMCPServer(_ context.Context, baseCfg *contract.Config, mgr contract.StoreManager) error {
	s := NewMCPServer(baseCfg, mgr)
	return server.ServeStdio(s)
}
