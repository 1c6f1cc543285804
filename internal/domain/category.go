package domain

// DefaultCategoryColor is used when a category is created without an
// explicit color.
const DefaultCategoryColor = "#7C6FE0"

// Category labels a group of tasks. Categories form a closed universe per
// user; the visibility filter compares a selected subset against the full
// set of known IDs to detect the "nothing filtered" case.
type Category struct {
	ID    string
	Label string
	Color string
}

// NewCategory creates a category with the given label and hex color.
func NewCategory(label, color string) (*Category, error) {
	if label == "" {
		return nil, ErrEmptyCategory
	}
	if color == "" {
		color = DefaultCategoryColor
	}
	return &Category{
		ID:    generateID(),
		Label: label,
		Color: color,
	}, nil
}
