package mcp_test

import (
	"context"
	"testing"

	"github.com/huangsam/trustspot/internal/contract"
	"github.com/huangsam/trustspot/internal/iocache"
	mcp_internal "github.com/huangsam/trustspot/internal/mcp"
	"github.com/huangsam/trustspot/schema"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testBaseConfig() *contract.Config {
	return &contract.Config{
		ProjectDir: ".",
		MinTrust:   contract.DefaultMinTrust,
		Weights:    schema.DefaultWeights,
	}
}

func TestMCPServerToolRegistration(t *testing.T) {
	mgr := &iocache.MockStoreManager{}
	s := mcp_internal.NewMCPServer(testBaseConfig(), mgr)
	require.NotNil(t, s)

	for _, name := range []string{"check_package", "scan_project", "recent_scans"} {
		tool := s.GetTool(name)
		assert.NotNil(t, tool, "Tool %s should exist", name)
	}
}

func TestMCPServerHandlers_ValidationErrors(t *testing.T) {
	mgr := &iocache.MockStoreManager{}
	s := mcp_internal.NewMCPServer(testBaseConfig(), mgr)

	ctx := context.Background()

	t.Run("check_package missing name", func(t *testing.T) {
		tool := s.GetTool("check_package")
		require.NotNil(t, tool, "Tool check_package should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name: "check_package",
				Arguments: map[string]any{
					"name": "", // Missing required
				},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err, "The MCP handler should not return a raw error for tool logic failures")
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "package name is required")
	})

	t.Run("recent_scans without history backend", func(t *testing.T) {
		mgr.On("GetHistoryStore").Return(nil)

		tool := s.GetTool("recent_scans")
		require.NotNil(t, tool, "Tool recent_scans should exist")

		req := mcp.CallToolRequest{
			Params: mcp.CallToolParams{
				Name:      "recent_scans",
				Arguments: map[string]any{},
			},
		}

		res, err := tool.Handler(ctx, req)
		require.NoError(t, err)
		assert.True(t, res.IsError, "The response should indicate an error state")
		assert.Contains(t, res.Content[0].(mcp.TextContent).Text, "scan history is not configured")
	})
}

func TestMCPServerHandlers_RecentScans(t *testing.T) {
	history := &iocache.MockHistoryStore{}
	history.On("RecentScans", 5).Return([]schema.ScanRun{
		{ScanID: 42, TotalPackages: 10, AggregateScore: 77.5},
	}, nil)

	mgr := &iocache.MockStoreManager{}
	mgr.On("GetHistoryStore").Return(history)

	s := mcp_internal.NewMCPServer(testBaseConfig(), mgr)
	tool := s.GetTool("recent_scans")
	require.NotNil(t, tool)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Name: "recent_scans",
			Arguments: map[string]any{
				"limit": 5.0,
			},
		},
	}

	res, err := tool.Handler(context.Background(), req)
	require.NoError(t, err)
	require.False(t, res.IsError)

	text := res.Content[0].(mcp.TextContent).Text
	assert.Contains(t, text, `"scan_id": 42`)
	assert.Contains(t, text, `"aggregate_score": 77.5`)
	history.AssertExpectations(t)
}
