package mcp

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHeaderCapture_RoundTrip(t *testing.T) {
	var captured http.Header
	inner := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		captured = headersFromContext(r.Context())
	})

	req := httptest.NewRequest(http.MethodPost, "http://example.test/mcp", nil)
	req.Header.Set("X-Conversation-Id", "conv-1")
	req.Header.Set("Mcp-Session-Id", "abc123")
	headerCapture{next: inner}.ServeHTTP(httptest.NewRecorder(), req)

	if captured == nil {
		t.Fatal("no headers captured in context")
	}
	if got := captured.Get("X-Conversation-Id"); got != "conv-1" {
		t.Errorf("X-Conversation-Id = %q, want conv-1", got)
	}
	if got := captured.Get("Mcp-Session-Id"); got != "abc123" {
		t.Errorf("Mcp-Session-Id = %q, want abc123", got)
	}
	if got := captured.Get("Host"); got != "example.test" {
		t.Errorf("Host = %q, want example.test", got)
	}
}

func TestHeadersFromContext_Absent(t *testing.T) {
	if h := headersFromContext(t.Context()); h != nil {
		t.Errorf("headersFromContext on bare context = %v, want nil", h)
	}
}

func TestClientAddr(t *testing.T) {
	tests := []struct {
		name    string
		headers map[string]string
		want    string
	}{
		{
			name: "forwarded-for wins",
			headers: map[string]string{
				"X-Forwarded-For": "203.0.113.7, 10.0.0.1",
				"X-Real-Ip":       "198.51.100.2",
				"Host":            "mcp.internal",
			},
			want: "203.0.113.7",
		},
		{
			name: "real-ip second",
			headers: map[string]string{
				"X-Real-Ip": "198.51.100.2",
				"Host":      "mcp.internal",
			},
			want: "198.51.100.2",
		},
		{
			name:    "host last",
			headers: map[string]string{"Host": "mcp.internal"},
			want:    "mcp.internal",
		},
		{
			name:    "nothing",
			headers: map[string]string{},
			want:    "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			h := http.Header{}
			for k, v := range tt.headers {
				h.Set(k, v)
			}
			if got := clientAddr(h); got != tt.want {
				t.Errorf("clientAddr = %q, want %q", got, tt.want)
			}
		})
	}
}
