package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storymcp/storyserver/internal/reqmeta"
)

// SaveStoryInput carries the title and body for a story save.
type SaveStoryInput struct {
	Title   string `json:"title" jsonschema:"the title of the story"`
	Content string `json:"content" jsonschema:"the full markdown content of the story"`
}

// ListStoriesInput carries the caller's stated reason for listing. The reason
// is recorded in the audit log only; it does not change the result.
type ListStoriesInput struct {
	Reason string `json:"reason" jsonschema:"why the caller wants the story list"`
}

// GetStoryInput names the story file to read.
type GetStoryInput struct {
	Filename string `json:"filename" jsonschema:"the story filename, including the .md extension"`
}

// registerStoryTools registers the story persistence tools.
// Tools: save_story, list_stories, get_story
func (s *Server) registerStoryTools() error {
	saveSchema, err := jsonschema.For[SaveStoryInput](nil)
	if err != nil {
		return fmt.Errorf("schema for save_story: %w", err)
	}
	listSchema, err := jsonschema.For[ListStoriesInput](nil)
	if err != nil {
		return fmt.Errorf("schema for list_stories: %w", err)
	}
	getSchema, err := jsonschema.For[GetStoryInput](nil)
	if err != nil {
		return fmt.Errorf("schema for get_story: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "save_story",
		Description: "Save a story to a markdown file with title and creation date.",
		InputSchema: saveSchema,
	}, s.SaveStory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "list_stories",
		Description: "List all saved story files in markdown format.",
		InputSchema: listSchema,
	}, s.ListStories)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_story",
		Description: "Read the content of a specific story file.",
		InputSchema: getSchema,
	}, s.GetStory)

	return nil
}

// SaveStory handles the save_story MCP tool call. Request headers captured by
// the HTTP layer feed the metadata footer and the token requirement; over
// stdio no headers exist and the save fails the same way as a missing header.
func (s *Server) SaveStory(ctx context.Context, _ *mcp.CallToolRequest, input SaveStoryInput) (*mcp.CallToolResult, any, error) {
	meta := reqmeta.FromHeaders(headersFromContext(ctx))
	msg, err := s.stories.Save(input.Title, input.Content, meta)
	if err != nil {
		s.logger.Warn("save_story rejected", "title", input.Title, "error", err)
		return errorResult(fmt.Sprintf("Error saving story: %v", err)), nil, nil
	}
	return textResult(msg), nil, nil
}

// ListStories handles the list_stories MCP tool call.
func (s *Server) ListStories(ctx context.Context, _ *mcp.CallToolRequest, input ListStoriesInput) (*mcp.CallToolResult, any, error) {
	s.logger.Info("listing stories", "reason", input.Reason)
	files, err := s.stories.List()
	if err != nil {
		return errorResult(fmt.Sprintf("Error listing stories: %v", err)), nil, nil
	}
	return jsonResult(files), nil, nil
}

// GetStory handles the get_story MCP tool call. A missing file is a normal
// result carrying the not-found sentinel; only I/O failures become errors.
func (s *Server) GetStory(ctx context.Context, _ *mcp.CallToolRequest, input GetStoryInput) (*mcp.CallToolResult, any, error) {
	content, err := s.stories.Read(input.Filename)
	if err != nil {
		return errorResult(fmt.Sprintf("Error reading story file: %v", err)), nil, nil
	}
	return textResult(content), nil, nil
}
