package ingest

import "strings"

// TableKind identifies which of the three input tables a file represents
type TableKind int

const (
	KindUnknown TableKind = iota
	KindCostings
	KindRecipes
	KindMenuPrices
)

// String returns a human-readable name for the table kind
func (k TableKind) String() string {
	switch k {
	case KindCostings:
		return "costings"
	case KindRecipes:
		return "recipes"
	case KindMenuPrices:
		return "menu prices"
	default:
		return "unknown"
	}
}

// Classify detects a table's kind from its column headers. Rules are checked
// in order, so a file with both a pack size and a selling price column
// classifies as costings.
func Classify(headers []string) TableKind {
	normalized := make([]string, 0, len(headers))
	for _, h := range headers {
		normalized = append(normalized, strings.ToLower(strings.TrimSpace(h)))
	}

	has := func(name string) bool {
		for _, h := range normalized {
			if h == name {
				return true
			}
		}
		return false
	}
	hasContaining := func(fragment string) bool {
		for _, h := range normalized {
			if strings.Contains(h, fragment) {
				return true
			}
		}
		return false
	}

	switch {
	case has("ingredient") && (has("pack size") || has("packsize")):
		return KindCostings
	case hasContaining("selling price"):
		return KindMenuPrices
	case has("ingredients") && (has("qty") || has("quantity")):
		return KindRecipes
	case has("menu item") && hasContaining("ingredients"):
		return KindRecipes
	case has("menu item") && has("brand") && has("category"):
		return KindRecipes
	default:
		return KindUnknown
	}
}
