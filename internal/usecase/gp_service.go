package usecase

import (
	"fmt"
	"log"
	"math"
	"strings"

	"github.com/bigappetite/backend/internal/domain"
)

// GPConfig holds configuration for the GP engine
type GPConfig struct {
	// MealMarker tags composite menu items whose cost references other
	// items, e.g. "Meal: Burger Combo".
	MealMarker         string
	Currency           string
	MinTokenLength     int
	EnableDebugLogging bool
}

// GPService orchestrates the two-pass gross-profit calculation: standalone
// items first, then composite "meal" items that may reference standalone
// items' costs.
type GPService struct {
	calc       *RecipeCalculator
	mealMarker string
}

// NewGPService creates a GP engine with its resolver and calculator
func NewGPService(config GPConfig) *GPService {
	marker := config.MealMarker
	if marker == "" {
		marker = "Meal:"
	}

	resolver := NewResolver(ResolverConfig{
		MinTokenLength:     config.MinTokenLength,
		EnableDebugLogging: config.EnableDebugLogging,
	})

	return &GPService{
		calc:       NewRecipeCalculator(resolver, config.Currency),
		mealMarker: marker,
	}
}

// CalculateGP computes food cost and gross profit for every recipe and
// groups the results by brand. menuPrices may be empty, in which case every
// item reports zero selling price and zero GP. The computation is pure:
// given the same tables it always produces the same result, and it shares
// no state across calls.
func (s *GPService) CalculateGP(tables domain.Tables) (*domain.Result, error) {
	if len(tables.Costings) == 0 {
		return nil, domain.ErrMissingCostings
	}
	if len(tables.Recipes) == 0 {
		return nil, domain.ErrMissingRecipes
	}
	for i, recipe := range tables.Recipes {
		if strings.TrimSpace(recipe.MenuItem) == "" {
			return nil, fmt.Errorf("%w: row %d has no menu item", domain.ErrInvalidRecipe, i)
		}
	}

	var standalone, composite []domain.RecipeEntry
	for _, recipe := range tables.Recipes {
		if strings.Contains(recipe.MenuItem, s.mealMarker) {
			composite = append(composite, recipe)
		} else {
			standalone = append(standalone, recipe)
		}
	}

	known := NewKnownCosts()
	var all []domain.ComputedItem

	// Pass 1: standalone items, recording unrounded costs for pass 2
	for _, recipe := range standalone {
		foodCost, notes := s.calc.CalcItemCost(recipe, tables.Costings, nil)
		all = append(all, buildItem(recipe, foodCost, notes, tables.MenuPrices))
		known.Add(recipe.MenuItem, foodCost)
	}

	// Pass 2: composite items may reference pass-1 costs
	for _, recipe := range composite {
		foodCost, notes := s.calc.CalcItemCost(recipe, tables.Costings, known)
		all = append(all, buildItem(recipe, foodCost, notes, tables.MenuPrices))
	}

	return groupByBrand(all), nil
}

// buildItem joins a computed food cost against the selling price and applies
// the rounding policy. This is the only place results are rounded.
func buildItem(
	recipe domain.RecipeEntry,
	foodCost float64,
	notes []string,
	menuPrices []domain.MenuPriceEntry,
) domain.ComputedItem {
	sellingPrice := lookupSellingPrice(recipe.MenuItem, menuPrices)

	// A zero or missing selling price reports GP as exactly zero rather
	// than a misleading negative food cost.
	var gpAmount, gpPercent float64
	if sellingPrice > 0 {
		gpAmount = sellingPrice - foodCost
		gpPercent = gpAmount / sellingPrice * 100
	}

	return domain.ComputedItem{
		Brand:        recipe.Brand,
		MenuItem:     recipe.MenuItem,
		Category:     recipe.Category,
		FoodCost:     round2(foodCost),
		SellingPrice: round2(sellingPrice),
		GPAmount:     round2(gpAmount),
		GPPercent:    round1(gpPercent),
		Notes:        notes,
	}
}

// lookupSellingPrice finds a price by case-insensitive exact match on menu
// item; brand is not part of the join. Returns 0 when unmatched.
func lookupSellingPrice(menuItem string, menuPrices []domain.MenuPriceEntry) float64 {
	for _, price := range menuPrices {
		if strings.EqualFold(price.MenuItem, menuItem) {
			return price.SellingPrice
		}
	}
	return 0
}

// groupByBrand partitions items by exact brand string in append order.
// Items with blank brands are dropped from every group; that preserves the
// upstream system's behavior, so we log instead of surfacing them.
func groupByBrand(items []domain.ComputedItem) *domain.Result {
	result := &domain.Result{Groups: make(map[string][]domain.ComputedItem)}

	for _, item := range items {
		if strings.TrimSpace(item.Brand) == "" {
			log.Printf("[GP] dropping %q from grouped output: blank brand", item.MenuItem)
			continue
		}
		if _, seen := result.Groups[item.Brand]; !seen {
			result.Order = append(result.Order, item.Brand)
		}
		result.Groups[item.Brand] = append(result.Groups[item.Brand], item)
	}

	return result
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
