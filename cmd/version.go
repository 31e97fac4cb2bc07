package cmd

import "fmt"

// Server identity reported over MCP initialization and by the version command.
const (
	ServerName  = "StoryServer"
	ServerTitle = "StoryServer MCP"
	Version     = "2.1.0"
)

// serverInstructions is sent to MCP clients during initialization.
const serverInstructions = "StoryServer exposes simple tools to list characters, fetch backstories, and save/read markdown stories. Intended for demo and testing."

// runVersion displays version information.
func runVersion() {
	fmt.Printf("%s %s\n", ServerName, Version)
}
