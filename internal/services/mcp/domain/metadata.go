package domain

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/WMs784/space-flight-news/internal/platform/id"
	"github.com/WMs784/space-flight-news/internal/platform/logging"
)

// NewInvocationID generates an identifier for one tool call.
func NewInvocationID() (string, error) {
	return id.NewID()
}

// withInvocation scopes the base logger to one tool call and stores it in
// ctx so downstream fetches log under the same invocation id.
func withInvocation(ctx context.Context, base *slog.Logger, tool string) (context.Context, *slog.Logger, error) {
	invocationID, err := NewInvocationID()
	if err != nil {
		return ctx, nil, fmt.Errorf("generate invocation id: %w", err)
	}
	if base == nil {
		base = logging.From(ctx)
	}
	lg := base.With(
		slog.String("tool", tool),
		slog.String("invocation_id", invocationID),
	)
	return logging.Into(ctx, lg), lg, nil
}
