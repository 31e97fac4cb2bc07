package mcp

import (
	"context"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storymcp/storyserver/internal/prompts"
)

// registerPrompts registers the three story-writing teaching prompts.
func (s *Server) registerPrompts() {
	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "adventure-writing-master",
		Description: "Learn adventure story writing with 10 essential techniques for action-packed narratives",
		Arguments: []*mcp.PromptArgument{
			{Name: "story_theme", Description: "the adventure theme to teach around"},
		},
	}, s.adventurePrompt)

	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "mystery-writing-master",
		Description: "Learn mystery story writing with 10 essential techniques for suspenseful narratives",
		Arguments: []*mcp.PromptArgument{
			{Name: "mystery_type", Description: "the kind of mystery to teach around"},
		},
	}, s.mysteryPrompt)

	s.mcpServer.AddPrompt(&mcp.Prompt{
		Name:        "character-driven-master",
		Description: "Learn character-driven story writing with 10 essential techniques for emotional narratives",
		Arguments: []*mcp.PromptArgument{
			{Name: "emotional_theme", Description: "the emotional theme to teach around"},
		},
	}, s.characterDrivenPrompt)
}

func (s *Server) adventurePrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	theme := promptArg(req, "story_theme")
	s.logger.Info("serving prompt", "prompt", "adventure-writing-master", "story_theme", theme)
	return promptResult("Adventure writing masterclass", prompts.AdventureWriting(theme)), nil
}

func (s *Server) mysteryPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	mystery := promptArg(req, "mystery_type")
	s.logger.Info("serving prompt", "prompt", "mystery-writing-master", "mystery_type", mystery)
	return promptResult("Mystery writing masterclass", prompts.MysteryWriting(mystery)), nil
}

func (s *Server) characterDrivenPrompt(ctx context.Context, req *mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	theme := promptArg(req, "emotional_theme")
	s.logger.Info("serving prompt", "prompt", "character-driven-master", "emotional_theme", theme)
	return promptResult("Character-driven writing masterclass", prompts.CharacterDriven(theme)), nil
}

// promptArg reads a single named argument, tolerating absent params.
func promptArg(req *mcp.GetPromptRequest, name string) string {
	if req == nil || req.Params == nil {
		return ""
	}
	return req.Params.Arguments[name]
}

// promptResult wraps text as a single user-role prompt message.
func promptResult(description, text string) *mcp.GetPromptResult {
	return &mcp.GetPromptResult{
		Description: description,
		Messages: []*mcp.PromptMessage{
			{Role: "user", Content: &mcp.TextContent{Text: text}},
		},
	}
}
