package render

import (
	"strings"
	"testing"
)

func TestTextCanvasDrawText(t *testing.T) {
	c := NewTextCanvas(10, 3)
	c.DrawText(2, 1, "hi")

	lines := strings.Split(c.String(), "\n")
	if lines[1] != "  hi" {
		t.Fatalf("line 1 = %q, want %q", lines[1], "  hi")
	}
}

func TestTextCanvasClipsAtEdges(t *testing.T) {
	c := NewTextCanvas(5, 2)
	c.DrawText(3, 0, "wide")
	c.DrawText(0, 7, "below page")
	c.DrawText(-2, 1, "ab")

	lines := strings.Split(c.String(), "\n")
	if lines[0] != "   wi" {
		t.Fatalf("line 0 = %q, want %q", lines[0], "   wi")
	}
	// Only the in-bounds part of a partially off-canvas string survives.
	if lines[1] != "" {
		t.Fatalf("line 1 = %q, want empty", lines[1])
	}
}

func TestTextCanvasDrawLine(t *testing.T) {
	c := NewTextCanvas(6, 4)
	c.DrawLine(1, 2, 4, 2)
	c.DrawLine(0, 0, 0, 3)

	lines := strings.Split(c.String(), "\n")
	if lines[2] != "|----" {
		t.Fatalf("line 2 = %q, want %q", lines[2], "|----")
	}
	if lines[0] != "|" || lines[3] != "|" {
		t.Fatalf("vertical rule missing: %q / %q", lines[0], lines[3])
	}
}
