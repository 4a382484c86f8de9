package telemetry

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"go.opentelemetry.io/otel/attribute"
)

func TestDisabledTracer(t *testing.T) {
	tr := Disabled()
	ctx, span := tr.Start(context.Background(), "noop", attribute.String("k", "v"))
	if ctx == nil || span == nil {
		t.Fatal("Expected context and span")
	}
	End(span, errors.New("ignored"))
	if err := tr.Shutdown(context.Background()); err != nil {
		t.Errorf("Shutdown failed: %v", err)
	}
}

func TestTracerExportsSpans(t *testing.T) {
	var buf bytes.Buffer
	tr, err := New(context.Background(), "test", &buf)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}

	_, span := tr.Start(context.Background(), "journal.dashboard", attribute.Int("trades", 3))
	End(span, nil)

	if err := tr.Shutdown(context.Background()); err != nil {
		t.Fatalf("Shutdown failed: %v", err)
	}
	if !strings.Contains(buf.String(), "journal.dashboard") {
		t.Errorf("Expected exported span, got %q", buf.String())
	}
}
