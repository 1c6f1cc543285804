package schedule

import "testing"

func strPtr(s string) *string { return &s }

func TestCategoryFilter_Visible(t *testing.T) {
	universe := []string{"work", "home", "errands"}

	tests := []struct {
		name       string
		selected   []string
		categoryID *string
		want       bool
	}{
		{
			name:       "empty selection passes everything",
			selected:   nil,
			categoryID: strPtr("work"),
			want:       true,
		},
		{
			name:       "full selection passes everything",
			selected:   []string{"errands", "work", "home"},
			categoryID: strPtr("home"),
			want:       true,
		},
		{
			name:       "selected category passes",
			selected:   []string{"work"},
			categoryID: strPtr("work"),
			want:       true,
		},
		{
			name:       "unselected category hidden",
			selected:   []string{"work"},
			categoryID: strPtr("home"),
			want:       false,
		},
		{
			name:       "uncategorized always passes",
			selected:   []string{"work"},
			categoryID: nil,
			want:       true,
		},
		{
			name:       "empty category id always passes",
			selected:   []string{"work"},
			categoryID: strPtr(""),
			want:       true,
		},
		{
			name:       "same cardinality different members still filters",
			selected:   []string{"work", "home", "unknown"},
			categoryID: strPtr("errands"),
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := CategoryFilter{Selected: tt.selected, Universe: universe}
			if got := f.Visible(tt.categoryID); got != tt.want {
				t.Errorf("Visible() = %v, want %v", got, tt.want)
			}
		})
	}
}

// TestCategoryFilter_FullSelectionAnyOrder verifies that a selection equal
// to the universe in any order accepts every task, including uncategorized
// ones.
func TestCategoryFilter_FullSelectionAnyOrder(t *testing.T) {
	universe := []string{"a", "b", "c"}
	orders := [][]string{
		{"a", "b", "c"},
		{"c", "a", "b"},
		{"b", "c", "a"},
	}

	for _, selected := range orders {
		f := CategoryFilter{Selected: selected, Universe: universe}
		for _, id := range append([]string{"a", "b", "c"}, "") {
			cat := &id
			if id == "" {
				cat = nil
			}
			if !f.Visible(cat) {
				t.Errorf("Visible(%v) = false with full selection %v", cat, selected)
			}
		}
	}
}
