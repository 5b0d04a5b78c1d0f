package ingest

import (
	"log"
	"strings"

	"github.com/bigappetite/backend/internal/domain"
)

// Column aliases across the inconsistent spreadsheets we receive. Lookup is
// against lowercased headers, first alias wins.
var (
	ingredientCols   = []string{"ingredient", "ingredient name"}
	priceCols        = []string{"our price (£)", "our price", "price (£)", "price", "purchase price"}
	packSizeCols     = []string{"pack size", "packsize"}
	menuItemCols     = []string{"menu item", "item"}
	brandCols        = []string{"brand"}
	categoryCols     = []string{"category"}
	ingredientsCols  = []string{"ingredients (qty+unit)", "ingredients"}
	sellingPriceCols = []string{"selling price (£)", "selling price"}
)

const defaultField = "Unknown"

// MapCostings converts a raw costings table into the cost catalog, deriving
// unit costs. Rows with a missing ingredient name, a non-numeric price, or a
// non-positive pack size are skipped — a zero pack size would make the unit
// cost undefined.
func MapCostings(t *RawTable) []domain.CostEntry {
	catalog := make([]domain.CostEntry, 0, len(t.Rows))

	for i, row := range t.Rows {
		name := t.Cell(row, ingredientCols...)
		if name == "" {
			continue
		}

		price, err := t.NumericCell(row, priceCols...)
		if err != nil {
			log.Printf("[INGEST] skipping costings row %d (%s): price %v", i+1, name, err)
			continue
		}
		packSize, err := t.NumericCell(row, packSizeCols...)
		if err != nil || packSize <= 0 {
			log.Printf("[INGEST] skipping costings row %d (%s): invalid pack size", i+1, name)
			continue
		}

		catalog = append(catalog, domain.NewCostEntry(name, price, packSize))
	}

	return catalog
}

// MapRecipes converts a raw recipes table into recipe entries. Brand and
// category default to "Unknown"; rows sharing menu item, brand, and category
// are pre-aggregated into one entry by joining their ingredient lines.
func MapRecipes(t *RawTable) []domain.RecipeEntry {
	type key struct{ item, brand, category string }

	var order []key
	merged := make(map[key]*domain.RecipeEntry)

	for _, row := range t.Rows {
		menuItem := t.Cell(row, menuItemCols...)
		if menuItem == "" {
			continue
		}

		k := key{
			item:     menuItem,
			brand:    orDefault(t.Cell(row, brandCols...)),
			category: orDefault(t.Cell(row, categoryCols...)),
		}
		line := t.Cell(row, ingredientsCols...)
		if strings.EqualFold(line, "nan") {
			line = ""
		}

		if existing, ok := merged[k]; ok {
			if line != "" {
				if existing.IngredientLine != "" {
					existing.IngredientLine += "; " + line
				} else {
					existing.IngredientLine = line
				}
			}
			continue
		}

		merged[k] = &domain.RecipeEntry{
			MenuItem:       k.item,
			Brand:          k.brand,
			Category:       k.category,
			IngredientLine: line,
		}
		order = append(order, k)
	}

	recipes := make([]domain.RecipeEntry, 0, len(order))
	for _, k := range order {
		recipes = append(recipes, *merged[k])
	}
	return recipes
}

// MapMenuPrices converts a raw menu-price table. Rows without a parsable
// selling price are skipped.
func MapMenuPrices(t *RawTable) []domain.MenuPriceEntry {
	prices := make([]domain.MenuPriceEntry, 0, len(t.Rows))

	for i, row := range t.Rows {
		menuItem := t.Cell(row, menuItemCols...)
		if menuItem == "" {
			continue
		}
		price, err := t.NumericCell(row, sellingPriceCols...)
		if err != nil {
			log.Printf("[INGEST] skipping menu price row %d (%s): %v", i+1, menuItem, err)
			continue
		}

		prices = append(prices, domain.MenuPriceEntry{
			MenuItem:     menuItem,
			SellingPrice: price,
			Brand:        t.Cell(row, brandCols...),
		})
	}

	return prices
}

func orDefault(s string) string {
	if s == "" {
		return defaultField
	}
	return s
}
