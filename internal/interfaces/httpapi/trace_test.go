package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestShouldCreateHTTPAPISpan(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want bool
	}{
		{name: "handler span", in: "httpapi.Handler.GetRound", want: true},
		{name: "middleware span", in: "httpapi.RequestLogging", want: false},
		{name: "helper span", in: "httpapi.writeError", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := shouldCreateHTTPAPISpan(tt.in)
			if got != tt.want {
				t.Fatalf("shouldCreateHTTPAPISpan(%q)=%v want=%v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStartHandlerSpan_NoParentIsNoop(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/v1/browser/sessions/bs_1", nil)
	req.SetPathValue("sessionID", "bs_1")

	ctx, span := startHandlerSpan(req, "httpapi.Handler.GetBrowser")
	defer span.End()

	if span.IsRecording() {
		t.Fatalf("expected no-op span without a request span")
	}
	if ctx != req.Context() {
		t.Fatalf("expected request context to be returned unchanged")
	}
	if _, noop := startSpan(context.Background(), "httpapi.Handler.GetRound"); noop != noopSpan {
		t.Fatalf("expected shared no-op span")
	}
}
