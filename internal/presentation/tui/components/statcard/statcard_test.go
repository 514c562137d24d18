package statcard

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	cards := []Card{
		{Label: "Products", Value: "12", Note: "3 low"},
		{Label: "Open POs", Value: "4"},
		{Label: "Stores", Value: "5"},
	}
	got := Render(Props{Cards: cards})
	for _, want := range []string{"Products", "12", "3 low", "Open POs", "Stores"} {
		if !strings.Contains(got, want) {
			t.Errorf("missing %q in %q", want, got)
		}
	}

	wide := lipgloss.Height(got)
	narrow := lipgloss.Height(Render(Props{Cards: cards, Width: 20}))
	if narrow <= wide {
		t.Errorf("narrow layout should wrap cards: wide=%d narrow=%d", wide, narrow)
	}
}

func TestRenderEmpty(t *testing.T) {
	if got := Render(Props{}); got != "" {
		t.Errorf("expected empty output, got %q", got)
	}
}
