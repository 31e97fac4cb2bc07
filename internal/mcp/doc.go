// Package mcp implements the story server's Model Context Protocol surface.
//
// It wraps the official MCP SDK server and exposes the demo toolset (character
// lookups, story save/list/read) plus three story-writing teaching prompts,
// over either stdio or streamable HTTP.
//
// # Architecture
//
//	MCP client (agent, inspector, IDE)
//	     |
//	     | (MCP protocol over stdio or streamable HTTP)
//	     v
//	Server (MCP SDK)
//	     |
//	     +-- receiving middleware: per-call diagnostics logging
//	     |
//	     +-- tool handlers
//	     |    +-- get_characters / get_backstory / get_superpower
//	     |    +-- save_story / list_stories / get_story
//	     |
//	     +-- prompt handlers
//	          +-- adventure-writing-master
//	          +-- mystery-writing-master
//	          +-- character-driven-master
//
// # Diagnostics
//
// For HTTP transports, an outer http.Handler stores the inbound request
// headers in the context before the SDK handler runs. The receiving
// middleware then logs, per call: the MCP method, session id, a generated
// correlation id, the best-effort client address (X-Forwarded-For, X-Real-Ip,
// then Host), every Mcp-* header verbatim, and a classification of the
// User-Agent string. save_story reads the same headers to build its metadata
// footer and to enforce the X-Atmosphere-Token requirement.
//
// # Error handling
//
// Tool failures that a remote caller should see (missing token, I/O errors,
// malformed input) are returned as in-band text results with IsError set,
// never as protocol faults; remote callers cannot catch in-process errors.
package mcp
