package mcp

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"
	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/storymcp/storyserver/internal/clientinfo"
	"github.com/storymcp/storyserver/internal/reqmeta"
)

type contextKey string

// headersKey carries the inbound HTTP request headers through the SDK into
// tool handlers and the logging middleware.
const headersKey contextKey = "httpHeaders"

// headerCapture copies the inbound request headers into the request context
// before the SDK handler consumes the request. The SDK does not expose raw
// headers to tool handlers, so this is the only path they travel.
type headerCapture struct {
	next http.Handler
}

func (hc headerCapture) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h := r.Header.Clone()
	if h.Get("Host") == "" && r.Host != "" {
		// net/http strips Host into r.Host; restore it for diagnostics.
		h.Set("Host", r.Host)
	}
	ctx := context.WithValue(r.Context(), headersKey, h)
	hc.next.ServeHTTP(w, r.WithContext(ctx))
}

// headersFromContext returns the captured request headers, or nil when the
// call arrived over a transport with no HTTP layer.
func headersFromContext(ctx context.Context) http.Header {
	h, _ := ctx.Value(headersKey).(http.Header)
	return h
}

// logCalls is receiving middleware that logs one diagnostic record per MCP
// call: method, session id, a fresh correlation id, the best-effort client
// address, request metadata headers, every Mcp-* header verbatim, and a
// classification of the User-Agent.
func (s *Server) logCalls(next mcp.MethodHandler) mcp.MethodHandler {
	return func(ctx context.Context, method string, req mcp.Request) (mcp.Result, error) {
		correlationID := uuid.NewString()

		sessionID := ""
		if sess := req.GetSession(); sess != nil {
			sessionID = sess.ID()
		}

		attrs := []any{
			"method", method,
			"correlation_id", correlationID,
			"session_id", sessionID,
		}

		if h := headersFromContext(ctx); h != nil {
			meta := reqmeta.FromHeaders(h)
			attrs = append(attrs,
				"client_addr", clientAddr(h),
				"conversation_id", meta.ConversationID,
				"header_session_id", meta.SessionID,
				"token", reqmeta.ValidateToken(meta.Token).Display,
			)
			for name, vals := range h {
				if strings.HasPrefix(name, "Mcp-") {
					attrs = append(attrs, "header_"+strings.ToLower(name), strings.Join(vals, ", "))
				}
			}
			if ua := h.Get("User-Agent"); ua != "" {
				info := clientinfo.Classify(ua)
				attrs = append(attrs,
					"ua_browser", info.Browser,
					"ua_os", info.OS,
					"ua_device", info.DeviceType,
					"ua_is_bot", info.IsBot,
				)
			}
		}

		s.logger.Info("mcp call", attrs...)

		result, err := next(ctx, method, req)
		if err != nil {
			s.logger.Error("mcp call failed", "method", method, "correlation_id", correlationID, "error", err)
		}
		return result, err
	}
}

// clientAddr extracts a best-effort client address from proxy headers, in
// precedence order: the first X-Forwarded-For entry, then X-Real-Ip, then the
// Host header.
func clientAddr(h http.Header) string {
	if fwd := h.Get("X-Forwarded-For"); fwd != "" {
		first, _, _ := strings.Cut(fwd, ",")
		return strings.TrimSpace(first)
	}
	if real := h.Get("X-Real-Ip"); real != "" {
		return real
	}
	return h.Get("Host")
}
