package httpapi

import (
	"context"
	"net/http"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
)

var apiTracer = otel.Tracer("courtside/internal/interfaces/httpapi")
var noopSpan = trace.SpanFromContext(context.Background())

// spanPathValues are route wildcards copied onto handler spans when present.
var spanPathValues = []struct {
	wildcard string
	key      string
}{
	{"league", "courtside.league"},
	{"season", "courtside.season"},
	{"round", "courtside.round"},
	{"gameCode", "courtside.game_code"},
	{"sessionID", "courtside.browser_session"},
}

// startSpan only opens a span under an existing request span, and only for
// handler names; helpers and middleware get a no-op span.
func startSpan(ctx context.Context, name string) (context.Context, trace.Span) {
	parent := trace.SpanFromContext(ctx)
	if !parent.SpanContext().IsValid() || !shouldCreateHTTPAPISpan(name) {
		return ctx, noopSpan
	}
	return apiTracer.Start(ctx, name)
}

// startHandlerSpan is startSpan tagged with the route's wildcards.
func startHandlerSpan(r *http.Request, name string) (context.Context, trace.Span) {
	ctx, span := startSpan(r.Context(), name)
	if !span.IsRecording() {
		return ctx, span
	}

	attrs := make([]attribute.KeyValue, 0, len(spanPathValues))
	for _, pv := range spanPathValues {
		if value := strings.TrimSpace(r.PathValue(pv.wildcard)); value != "" {
			attrs = append(attrs, attribute.String(pv.key, value))
		}
	}
	span.SetAttributes(attrs...)
	return ctx, span
}

func shouldCreateHTTPAPISpan(name string) bool {
	return strings.HasPrefix(name, "httpapi.Handler.")
}
