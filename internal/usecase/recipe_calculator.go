package usecase

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/bigappetite/backend/internal/domain"
)

// qtyUnitRegex extracts the first "<number> <unit>" pair from the text after
// the colon, e.g. "2 slices", "0.5kg".
var qtyUnitRegex = regexp.MustCompile(`([\d.]+)\s*([a-zA-Z]+)`)

// Note texts attached to ComputedItems. These are part of the output
// contract, so downstream consumers can grep for them.
const (
	noteNoIngredients = "No ingredients specified"
	notePrefixAssumed = "ASSUMED"
	notePrefixRef     = "REFERENCED"
)

// RecipeCalculator turns a recipe's ingredient line into a total food cost,
// recording an assumption note for every token it could not price.
type RecipeCalculator struct {
	resolver *Resolver
	currency string
}

// NewRecipeCalculator creates a calculator backed by the given resolver.
// currency is the symbol used in REFERENCED notes (defaults to "£").
func NewRecipeCalculator(resolver *Resolver, currency string) *RecipeCalculator {
	if currency == "" {
		currency = "£"
	}
	return &RecipeCalculator{resolver: resolver, currency: currency}
}

// CalcItemCost computes the total food cost for one recipe. Each token of
// the ingredient line is parsed as "Name: quantity unit", resolved against
// the catalog and, failing that, against known (already-computed menu item
// costs) when provided. Malformed or unresolvable tokens contribute zero
// cost and a note; they never abort the recipe. The returned total is
// unrounded — rounding happens once, at the GP engine boundary.
func (c *RecipeCalculator) CalcItemCost(
	recipe domain.RecipeEntry,
	catalog []domain.CostEntry,
	known *KnownCosts,
) (float64, []string) {
	line := strings.TrimSpace(recipe.IngredientLine)
	if line == "" || strings.EqualFold(line, "nan") {
		return 0, []string{noteNoIngredients}
	}

	var totalCost float64
	var notes []string

	for _, token := range strings.Split(line, ";") {
		token = strings.TrimSpace(token)
		if token == "" {
			continue
		}

		name, qty, err := parseIngredientToken(token)
		if err != nil {
			notes = append(notes, fmt.Sprintf("%s: %s (%v)", notePrefixAssumed, token, err))
			continue
		}

		if matches := c.resolver.Resolve(name, catalog); len(matches) > 0 {
			totalCost += qty * matches[0].UnitCost
			continue
		}

		if known != nil {
			if cost, ok := known.Lookup(name); ok {
				totalCost += qty * cost
				notes = append(notes, fmt.Sprintf("%s: %s (menu item cost: %s%.2f)",
					notePrefixRef, name, c.currency, cost))
				continue
			}
		}

		notes = append(notes, fmt.Sprintf("%s: no match for %s", notePrefixAssumed, name))
	}

	return totalCost, notes
}

// parseIngredientToken splits an ingredient token into its name and
// quantity. The token must contain a colon; everything before the first
// colon is the name, and the remainder must contain a number followed by an
// alphabetic unit.
func parseIngredientToken(token string) (name string, qty float64, err error) {
	parts := strings.SplitN(token, ":", 2)
	if len(parts) != 2 {
		return "", 0, fmt.Errorf("missing ':' separator")
	}

	name = strings.TrimSpace(parts[0])
	qtyUnit := strings.TrimSpace(parts[1])

	m := qtyUnitRegex.FindStringSubmatch(qtyUnit)
	if m == nil {
		return "", 0, fmt.Errorf("no quantity and unit in %q", qtyUnit)
	}

	qty, err = strconv.ParseFloat(m[1], 64)
	if err != nil {
		return "", 0, fmt.Errorf("bad quantity %q", m[1])
	}

	return name, qty, nil
}
