package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/huangsam/trustspot/core"
	"github.com/huangsam/trustspot/internal/contract"
	"github.com/mark3labs/mcp-go/mcp"
)

// toolHandler holds common dependencies for MCP tool handlers.
type toolHandler struct {
	baseCfg *contract.Config
	mgr     contract.StoreManager
}

func (h *toolHandler) handleCheckPackage(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	name := request.GetString("name", "")
	if name == "" {
		return mcp.NewToolResultError("package name is required"), nil
	}
	version := request.GetString("version", "")

	cfg := h.baseCfg.Clone()
	if request.GetBool("offline", false) {
		cfg.Offline = true
	}

	engine, err := core.NewEngine(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("engine setup failed: %v", err)), nil
	}

	report := engine.CheckPackage(ctx, name, version)
	jsonData, _ := json.MarshalIndent(report, "", "  ")

	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleScanProject(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cfg := h.baseCfg.Clone()
	if p := request.GetString("project_dir", ""); p != "" {
		cfg.ProjectDir = p
	}
	if ignore := request.GetString("ignore", ""); ignore != "" {
		cfg.Ignored = nil
		for _, name := range strings.Split(ignore, ",") {
			if name = strings.TrimSpace(name); name != "" {
				cfg.Ignored = append(cfg.Ignored, name)
			}
		}
	}
	if request.GetBool("offline", false) {
		cfg.Offline = true
	}

	engine, err := core.NewEngine(cfg, h.mgr)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("engine setup failed: %v", err)), nil
	}

	project, err := engine.ScanProject(ctx)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("scan failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(project, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}

func (h *toolHandler) handleRecentScans(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	history := h.mgr.GetHistoryStore()
	if history == nil {
		return mcp.NewToolResultError("scan history is not configured; set a history backend"), nil
	}

	limit := request.GetInt("limit", 10)
	runs, err := history.RecentScans(limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("history query failed: %v", err)), nil
	}

	jsonData, _ := json.MarshalIndent(runs, "", "  ")
	return mcp.NewToolResultText(string(jsonData)), nil
}
