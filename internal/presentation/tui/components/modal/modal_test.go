package modal

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
)

func TestRender(t *testing.T) {
	got := Render(Props{Visible: true, Kind: Quit, Title: "Quit", Body: "Are you sure?", Width: 60, Height: 20})
	if !strings.Contains(got, "Quit") || !strings.Contains(got, "Are you sure?") {
		t.Errorf("missing content in %q", got)
	}
	if h := lipgloss.Height(got); h != 20 {
		t.Errorf("modal should fill the terminal height, got %d", h)
	}
}

func TestRenderHidden(t *testing.T) {
	if got := Render(Props{Body: "x"}); got != "" {
		t.Errorf("hidden modal should render nothing, got %q", got)
	}
}
