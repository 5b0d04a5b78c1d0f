package domain

import "strings"

// CostEntry represents one row of the cost catalog: an ingredient with its
// purchase price, pack size, and the derived per-unit cost.
type CostEntry struct {
	Ingredient     string  `json:"ingredient"`
	NormalizedName string  `json:"-"`
	PurchasePrice  float64 `json:"purchasePrice"`
	PackSize       float64 `json:"packSize"`
	UnitCost       float64 `json:"unitCost"`
}

// NewCostEntry builds a CostEntry, deriving the normalized name and unit cost.
// Callers must ensure packSize > 0; rows that fail that are excluded upstream.
func NewCostEntry(ingredient string, purchasePrice, packSize float64) CostEntry {
	return CostEntry{
		Ingredient:     ingredient,
		NormalizedName: NormalizeName(ingredient),
		PurchasePrice:  purchasePrice,
		PackSize:       packSize,
		UnitCost:       purchasePrice / packSize,
	}
}

// RecipeEntry represents one menu item's recipe. IngredientLine is a
// semicolon-separated list of "Name: quantity unit" tokens.
type RecipeEntry struct {
	MenuItem       string `json:"menuItem"`
	Brand          string `json:"brand"`
	Category       string `json:"category"`
	IngredientLine string `json:"ingredientLine"`
}

// MenuPriceEntry represents a selling price for a menu item. Matching against
// recipes is case-insensitive on MenuItem; brand is not part of the join key.
type MenuPriceEntry struct {
	MenuItem     string  `json:"menuItem"`
	SellingPrice float64 `json:"sellingPrice"`
	Brand        string  `json:"brand"`
}

// ComputedItem is the per-menu-item output of a GP calculation. Money fields
// are rounded to 2dp and GPPercent to 1dp at construction; values are never
// mutated afterwards.
type ComputedItem struct {
	Brand        string   `json:"brand"`
	MenuItem     string   `json:"menuItem"`
	Category     string   `json:"category"`
	FoodCost     float64  `json:"foodCost"`
	SellingPrice float64  `json:"sellingPrice"`
	GPAmount     float64  `json:"gpAmount"`
	GPPercent    float64  `json:"gpPercent"`
	Notes        []string `json:"notes,omitempty"`
}

// Tables holds the three input tables for one request-scoped computation.
// Nothing here is shared across requests; the GP engine treats it as
// read-only.
type Tables struct {
	Costings   []CostEntry
	Recipes    []RecipeEntry
	MenuPrices []MenuPriceEntry
}

// Result is the grouped output of one GP run. Groups partitions items by
// exact brand string; Order lists brands in first-appearance order so
// renderers stay deterministic. Items with blank brands are computed but
// never appear in Groups.
type Result struct {
	Groups map[string][]ComputedItem `json:"brands"`
	Order  []string                  `json:"-"`
}

// Items returns all grouped items flattened in brand order, preserving the
// append order within each brand.
func (r *Result) Items() []ComputedItem {
	var items []ComputedItem
	for _, brand := range r.Order {
		items = append(items, r.Groups[brand]...)
	}
	return items
}

// NormalizeName lowercases and trims a name for matching.
func NormalizeName(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
