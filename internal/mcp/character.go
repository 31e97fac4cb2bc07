package mcp

import (
	"context"
	"fmt"

	"github.com/google/jsonschema-go/jsonschema"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storymcp/storyserver/internal/character"
)

// CharacterInput names a character for backstory and superpower lookups.
type CharacterInput struct {
	Character string `json:"character" jsonschema:"the name of the character to look up"`
}

// registerCharacterTools registers the character lookup tools.
// Tools: get_characters, get_backstory, get_superpower
func (s *Server) registerCharacterTools() error {
	characterSchema, err := jsonschema.For[CharacterInput](nil)
	if err != nil {
		return fmt.Errorf("schema for character lookup: %w", err)
	}

	emptySchema, err := jsonschema.For[struct{}](nil)
	if err != nil {
		return fmt.Errorf("schema for get_characters: %w", err)
	}

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_characters",
		Description: "Get the list of all available character names.",
		InputSchema: emptySchema,
	}, s.GetCharacters)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_backstory",
		Description: "Get the backstory of a specified character.",
		InputSchema: characterSchema,
	}, s.GetBackstory)

	mcp.AddTool(s.mcpServer, &mcp.Tool{
		Name:        "get_superpower",
		Description: "Get the superpower of a specified character.",
		InputSchema: characterSchema,
	}, s.GetSuperpower)

	return nil
}

// GetCharacters handles the get_characters MCP tool call.
func (s *Server) GetCharacters(ctx context.Context, _ *mcp.CallToolRequest, _ struct{}) (*mcp.CallToolResult, any, error) {
	names := s.characters.Names()
	s.logger.Info("retrieved characters", "count", len(names), "names", names)
	return jsonResult(names), nil, nil
}

// GetBackstory handles the get_backstory MCP tool call. Unknown characters
// yield the lookup sentinel as the result text, not an error.
func (s *Server) GetBackstory(ctx context.Context, _ *mcp.CallToolRequest, input CharacterInput) (*mcp.CallToolResult, any, error) {
	backstory := s.characters.Backstory(input.Character)
	if backstory == character.NotFound {
		s.logger.Warn("character not found", "character", input.Character)
	} else {
		s.logger.Info("retrieved backstory", "character", input.Character)
	}
	return textResult(backstory), nil, nil
}

// GetSuperpower handles the get_superpower MCP tool call.
func (s *Server) GetSuperpower(ctx context.Context, _ *mcp.CallToolRequest, input CharacterInput) (*mcp.CallToolResult, any, error) {
	superpower := s.characters.Superpower(input.Character)
	if superpower == character.NotFound {
		s.logger.Warn("character not found", "character", input.Character)
	} else {
		s.logger.Info("retrieved superpower", "character", input.Character)
	}
	return textResult(superpower), nil, nil
}
