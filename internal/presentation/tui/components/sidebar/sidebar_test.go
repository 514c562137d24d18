package sidebar

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	got := Render(Props{View: "1. Dashboard", Width: 20, Height: 5, Title: "Shelfdesk"})
	if !strings.Contains(got, "Shelfdesk") {
		t.Error("Missing title")
	}
	if !strings.Contains(got, "1. Dashboard") {
		t.Error("Missing list view")
	}
}

func TestRenderPinsNoteToBottom(t *testing.T) {
	got := Render(Props{View: "1. Dashboard", Width: 20, Height: 8, Title: "Shelfdesk", Note: "demo data"})

	lines := strings.Split(got, "\n")
	if len(lines) != 8 {
		t.Fatalf("got %d lines, want 8", len(lines))
	}
	if !strings.Contains(lines[7], "demo data") {
		t.Errorf("note should be on the last line, got %q", lines[7])
	}
}
