package pkglog

import (
	"context"
	"testing"
)

func TestCorrelationID(t *testing.T) {
	ctx := context.Background()
	if _, ok := CorrelationID(ctx); ok {
		t.Fatalf("expected no correlation id")
	}
	if got := GetCorrelationID(ctx); got != MissingCorrelationID {
		t.Fatalf("expected %q, got %q", MissingCorrelationID, got)
	}

	ctx = SetCorrelationID(ctx, "cid-123")
	if got, ok := CorrelationID(ctx); !ok || got != "cid-123" {
		t.Fatalf("expected cid-123, got %q", got)
	}
	if got := GetCorrelationID(ctx); got != "cid-123" {
		t.Fatalf("expected cid-123, got %q", got)
	}
}

func TestCorrelationIDEmptyIsMissing(t *testing.T) {
	ctx := SetCorrelationID(context.Background(), "")
	if _, ok := CorrelationID(ctx); ok {
		t.Fatalf("empty correlation id must count as missing")
	}
}
