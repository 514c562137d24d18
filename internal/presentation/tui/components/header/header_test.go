package header

import (
	"strings"
	"testing"
)

func TestRender(t *testing.T) {
	tests := []struct {
		name      string
		props     Props
		wantParts []string
		wantVis   bool
	}{
		{
			name: "Visible",
			props: Props{
				Visible: true,
				Title:   "Stores",
				Counts:  "2 of 5",
				Search:  "austin",
				Filters: []Chip{{Label: "Status", Value: "Active", Active: true, Focused: true}},
			},
			wantParts: []string{"Stores", "2 of 5", `"austin"`, "[Status: Active]"},
			wantVis:   true,
		},
		{
			name: "Banner",
			props: Props{
				Visible: true,
				Title:   "Products",
				Banner:  "connection refused",
			},
			wantParts: []string{"Products", "connection refused"},
			wantVis:   true,
		},
		{
			name: "Hidden",
			props: Props{
				Visible: false,
			},
			wantVis: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Render(tt.props)
			if !tt.wantVis {
				if got != "" {
					t.Errorf("Render() = %q, want empty string", got)
				}
				return
			}
			for _, part := range tt.wantParts {
				if !strings.Contains(got, part) {
					t.Errorf("Render() = %q, want %q", got, part)
				}
			}
			if lines := strings.Count(got, "\n") + 1; lines != 3 {
				t.Errorf("Render() should produce 3 lines, got %d", lines)
			}
		})
	}
}
