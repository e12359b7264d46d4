package services_test

import (
	"context"
	"testing"

	"github.com/piotrcurious/same-picture-finder/internal/services"
)

func TestContextHelpers(t *testing.T) {
	ctx := context.Background()
	ctx = services.WithRunID(ctx, "run-123")
	ctx = services.WithDirectory(ctx, "/photos/burst")

	if id, ok := services.RunIDFromContext(ctx); !ok || id != "run-123" {
		t.Fatalf("unexpected run id: %v %v", id, ok)
	}
	if dir, ok := services.DirectoryFromContext(ctx); !ok || dir != "/photos/burst" {
		t.Fatalf("unexpected directory: %v %v", dir, ok)
	}
}

func TestBlankValuesPreserveContext(t *testing.T) {
	ctx := context.Background()
	if got := services.WithRunID(ctx, ""); got != ctx {
		t.Fatal("expected blank run id to return the original context")
	}
	if got := services.WithDirectory(ctx, ""); got != ctx {
		t.Fatal("expected blank directory to return the original context")
	}
	if _, ok := services.RunIDFromContext(ctx); ok {
		t.Fatal("expected no run id on empty context")
	}
}
