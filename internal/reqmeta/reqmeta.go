// Package reqmeta extracts per-request metadata from inbound HTTP headers and
// performs structural validation of the X-Atmosphere-Token bearer header.
//
// Validation is structural only: it checks that a token has the shape of a
// signed JWT (three base64url segments, the first two decoding to JSON
// objects). It never verifies a signature, expiry, or issuer and must not be
// mistaken for authentication.
package reqmeta

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
)

// Header names consumed by the story server.
const (
	HeaderConversationID = "X-Conversation-Id"
	HeaderSessionID      = "X-Session-Id"
	HeaderToken          = "X-Atmosphere-Token"
)

// placeholder stands in for absent header values in logs and story footers.
const placeholder = "N/A"

// Metadata is the per-request diagnostic record pulled from HTTP headers.
// It is scoped to a single call and never persisted beyond the story footer.
type Metadata struct {
	ConversationID string
	SessionID      string
	Token          string

	// HasToken records whether the token header was present at all.
	// An absent header fails a save; a present-but-empty one validates
	// as the placeholder.
	HasToken bool
}

// FromHeaders extracts Metadata from h. Missing conversation and session ids
// are reported as "N/A".
func FromHeaders(h http.Header) Metadata {
	m := Metadata{
		ConversationID: placeholder,
		SessionID:      placeholder,
	}
	if h == nil {
		return m
	}
	if v := h.Get(HeaderConversationID); v != "" {
		m.ConversationID = v
	}
	if v := h.Get(HeaderSessionID); v != "" {
		m.SessionID = v
	}
	if vals := h.Values(HeaderToken); len(vals) > 0 {
		m.HasToken = true
		m.Token = vals[0]
	}
	return m
}

// Validation is the outcome of a structural token check. Display is always
// safe to log or embed in a story footer; it never contains the full token
// when the token is long enough to be sensitive.
type Validation struct {
	Valid   bool
	Display string
	Err     string
}

// tokenParser provides base64url segment decoding. Padding is allowed so
// segments already padded to a multiple of 4 decode the same as raw ones.
var tokenParser = jwt.NewParser(jwt.WithPaddingAllowed())

// ValidateToken checks that token is structurally JWT-shaped. Rules, in order:
// empty or "N/A" tokens are accepted with the placeholder display form; the
// token must split into exactly three dot-separated segments; the first two
// segments must decode as base64url JSON objects. The signature segment is
// never inspected, and header contents (alg included) are never interpreted.
func ValidateToken(token string) Validation {
	if token == "" || token == placeholder {
		return Validation{Valid: true, Display: placeholder}
	}

	segments := strings.Split(token, ".")
	if len(segments) != 3 {
		return Validation{
			Display: invalidDisplay(token),
			Err:     fmt.Sprintf("token has %d segment(s), expected 3", len(segments)),
		}
	}

	for i, name := range []string{"header", "claims"} {
		raw, err := tokenParser.DecodeSegment(segments[i])
		if err != nil {
			return Validation{
				Display: invalidDisplay(token),
				Err:     fmt.Sprintf("token %s segment is not base64url-encoded: %v", name, err),
			}
		}
		var obj map[string]any
		if err := json.Unmarshal(raw, &obj); err != nil {
			return Validation{
				Display: invalidDisplay(token),
				Err:     fmt.Sprintf("token %s segment is not a JSON object: %v", name, err),
			}
		}
	}

	return Validation{Valid: true, Display: TruncateToken(token)}
}

// TruncateToken returns a display form that elides the middle of long tokens:
// first 10 characters, "...", last 10 characters. Tokens of 30 characters or
// fewer are returned unchanged.
func TruncateToken(token string) string {
	if len(token) <= 30 {
		return token
	}
	return token[:10] + "..." + token[len(token)-10:]
}

// invalidDisplay marks a malformed token: its first 10 characters followed by
// an "[INVALID]" tag. The remainder of the token is never exposed.
func invalidDisplay(token string) string {
	head := token
	if len(head) > 10 {
		head = head[:10]
	}
	return head + "...[INVALID]"
}
