package layout

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	props := Props{
		Sidebar: "SIDEBAR",
		Main:    "MAIN",
		Footer:  "FOOTER",
	}

	got := Render(props)

	if !strings.Contains(got, "SIDEBAR") {
		t.Error("Missing sidebar content")
	}
	if !strings.Contains(got, "MAIN") {
		t.Error("Missing main content")
	}
	if !strings.Contains(got, "FOOTER") {
		t.Error("Missing footer content")
	}
	lines := strings.Split(got, "\n")
	if !strings.Contains(lines[0], "SIDEBAR") || !strings.Contains(lines[0], "MAIN") {
		t.Errorf("sidebar and main should share the first line, got %q", lines[0])
	}
}

func TestRenderWithoutFooter(t *testing.T) {
	got := Render(Props{Sidebar: "S", Main: "M"})
	if strings.Contains(got, "\n") {
		t.Errorf("expected a single line, got %q", got)
	}
}
