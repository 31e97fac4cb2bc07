// Package story persists short markdown documents in a flat directory.
//
// Documents are plain UTF-8 .md files named by a lossy sanitization of the
// title. There is no locking and no versioning: concurrent saves of colliding
// titles race at the filesystem level and the last writer wins.
package story

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/storymcp/storyserver/internal/reqmeta"
)

// NotFound is returned by Read as the document content when the requested
// file does not exist. Like the character sentinel, it is indistinguishable
// from a real document containing exactly this text.
const NotFound = "Story file not found."

// Extension is the literal filename extension for story documents.
const Extension = ".md"

// SanitizeFilename derives a story filename from a free-text title: spaces
// become underscores, the result is lowercased, titles of more than four
// underscore-separated words are cut to the first four, anything longer than
// 30 characters is hard-truncated, and ".md" is appended.
//
// The mapping is lossy: distinct titles can collide on the same filename, and
// a later save silently overwrites the earlier one. The underscore-count cut
// happens before the length cut; changing that order changes the output.
func SanitizeFilename(title string) string {
	name := strings.ToLower(strings.ReplaceAll(title, " ", "_"))
	if strings.Count(name, "_") > 3 {
		name = strings.Join(strings.Split(name, "_")[:4], "_")
	}
	if len(name) > 30 {
		name = name[:30]
	}
	return name + Extension
}

// Store reads and writes story documents under a single directory.
type Store struct {
	dir    string
	logger *slog.Logger
}

// NewStore creates a store rooted at dir. The directory must already exist;
// the store never creates it. A nil logger falls back to slog.Default().
func NewStore(dir string, logger *slog.Logger) *Store {
	if logger == nil {
		logger = slog.Default()
	}
	return &Store{dir: dir, logger: logger}
}

// Save writes a story document for title. The body is a markdown heading, a
// creation-date line, the raw content, and a metadata footer carrying the
// conversation id, session id, and the truncated (never raw) token.
//
// The X-Atmosphere-Token header must be present in meta and pass structural
// validation; otherwise Save fails before writing anything. On success it
// returns a message naming the absolute path of the saved file.
func (s *Store) Save(title, content string, meta reqmeta.Metadata) (string, error) {
	if !meta.HasToken {
		return "", fmt.Errorf("required header %s is missing; story not saved", reqmeta.HeaderToken)
	}
	v := reqmeta.ValidateToken(meta.Token)
	if !v.Valid {
		return "", fmt.Errorf("invalid %s header (%s); story not saved", reqmeta.HeaderToken, v.Err)
	}

	filename := SanitizeFilename(title)
	path := filepath.Join(s.dir, filename)
	s.logger.Info("saving story", "title", title, "filename", filename)

	var doc strings.Builder
	fmt.Fprintf(&doc, "# %s\n\n", title)
	fmt.Fprintf(&doc, "**Date Created:** %s\n\n", time.Now().Format("January 2, 2006"))
	doc.WriteString(content)
	fmt.Fprintf(&doc, "\n\n---\n**Request Metadata:**\n")
	fmt.Fprintf(&doc, "- Conversation ID: %s\n", meta.ConversationID)
	fmt.Fprintf(&doc, "- Session ID: %s\n", meta.SessionID)
	fmt.Fprintf(&doc, "- Token: %s\n", v.Display)

	if err := os.WriteFile(path, []byte(doc.String()), 0o644); err != nil {
		s.logger.Error("saving story failed", "title", title, "error", err)
		return "", fmt.Errorf("writing story file: %w", err)
	}

	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	s.logger.Info("story saved", "path", abs)
	return "Story has been saved at: " + abs, nil
}

// List returns the names of all .md files in the store directory, in
// filesystem enumeration order. An empty directory yields an empty slice.
func (s *Store) List() ([]string, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		s.logger.Error("listing stories failed", "dir", s.dir, "error", err)
		return nil, fmt.Errorf("listing story directory: %w", err)
	}

	files := []string{}
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		if strings.HasSuffix(e.Name(), Extension) {
			files = append(files, e.Name())
		}
	}
	s.logger.Info("listed stories", "count", len(files))
	return files, nil
}

// Read returns the full content of a story file. A missing file yields the
// NotFound sentinel as content with no error; any other failure (permissions,
// I/O) is returned as an error.
func (s *Store) Read(filename string) (string, error) {
	path := filepath.Join(s.dir, filename)

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			s.logger.Warn("story file not found", "filename", filename)
			return NotFound, nil
		}
		s.logger.Error("reading story failed", "filename", filename, "error", err)
		return "", fmt.Errorf("reading story file: %w", err)
	}

	s.logger.Info("read story", "filename", filename, "bytes", len(data))
	return string(data), nil
}
