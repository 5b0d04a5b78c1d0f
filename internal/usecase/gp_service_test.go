package usecase

import (
	"errors"
	"reflect"
	"strings"
	"testing"

	"github.com/bigappetite/backend/internal/domain"
)

func testTables() domain.Tables {
	return domain.Tables{
		Costings: []domain.CostEntry{
			domain.NewCostEntry("Beef Patty", 5.00, 10), // 0.50
			domain.NewCostEntry("Bun", 1.20, 6),         // 0.20
			domain.NewCostEntry("Cheese", 1.00, 10),     // 0.10
			domain.NewCostEntry("Fries", 2.00, 10),      // 0.20
		},
		Recipes: []domain.RecipeEntry{
			{MenuItem: "Burger", Brand: "Hungry Tum", Category: "Mains",
				IngredientLine: "Beef Patty: 1 each; Bun: 1 each; Cheese: 2 slices"},
			{MenuItem: "Fries", Brand: "Hungry Tum", Category: "Sides",
				IngredientLine: "Fries: 1 portion"},
			{MenuItem: "Meal: Burger Combo", Brand: "Hungry Tum", Category: "Meals",
				IngredientLine: "Burger: 1 each; Fries: 1 portion"},
		},
		MenuPrices: []domain.MenuPriceEntry{
			{MenuItem: "burger", SellingPrice: 4.50, Brand: "Hungry Tum"},
			{MenuItem: "Fries", SellingPrice: 2.00, Brand: "Hungry Tum"},
			{MenuItem: "Meal: Burger Combo", SellingPrice: 6.00, Brand: "Hungry Tum"},
		},
	}
}

func TestCalculateGP(t *testing.T) {
	svc := NewGPService(GPConfig{})

	t.Run("rejects missing inputs", func(t *testing.T) {
		tables := testTables()
		_, err := svc.CalculateGP(domain.Tables{Recipes: tables.Recipes})
		if !errors.Is(err, domain.ErrMissingCostings) {
			t.Errorf("error = %v, want ErrMissingCostings", err)
		}

		_, err = svc.CalculateGP(domain.Tables{Costings: tables.Costings})
		if !errors.Is(err, domain.ErrMissingRecipes) {
			t.Errorf("error = %v, want ErrMissingRecipes", err)
		}
	})

	t.Run("rejects recipe row without menu item", func(t *testing.T) {
		tables := testTables()
		tables.Recipes = append(tables.Recipes, domain.RecipeEntry{MenuItem: "  ", Brand: "X"})

		_, err := svc.CalculateGP(tables)
		if !errors.Is(err, domain.ErrInvalidRecipe) {
			t.Errorf("error = %v, want ErrInvalidRecipe", err)
		}
	})

	t.Run("computes standalone item GP against case-insensitive price", func(t *testing.T) {
		result, err := svc.CalculateGP(testTables())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items := result.Groups["Hungry Tum"]
		if len(items) != 3 {
			t.Fatalf("items = %d, want 3", len(items))
		}

		burger := items[0]
		if burger.MenuItem != "Burger" {
			t.Fatalf("first item = %q, want Burger", burger.MenuItem)
		}
		if burger.FoodCost != 0.90 {
			t.Errorf("FoodCost = %v, want 0.90", burger.FoodCost)
		}
		if burger.SellingPrice != 4.50 {
			t.Errorf("SellingPrice = %v, want 4.50 (matched case-insensitively)", burger.SellingPrice)
		}
		if burger.GPAmount != 3.60 {
			t.Errorf("GPAmount = %v, want 3.60", burger.GPAmount)
		}
		if burger.GPPercent != 80.0 {
			t.Errorf("GPPercent = %v, want 80.0", burger.GPPercent)
		}
	})

	t.Run("composite item references standalone costs", func(t *testing.T) {
		result, err := svc.CalculateGP(testTables())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		items := result.Groups["Hungry Tum"]
		combo := items[2]
		if combo.MenuItem != "Meal: Burger Combo" {
			t.Fatalf("third item = %q, want the meal (pass 2 appends last)", combo.MenuItem)
		}
		// Burger 0.90 referenced + Fries 0.20 from the catalog
		if combo.FoodCost < 0.90 {
			t.Errorf("FoodCost = %v, want >= 0.90", combo.FoodCost)
		}
		var referenced bool
		for _, note := range combo.Notes {
			if strings.Contains(note, "REFERENCED: Burger") {
				referenced = true
			}
		}
		if !referenced {
			t.Errorf("Notes = %v, want a REFERENCED: Burger note", combo.Notes)
		}
	})

	t.Run("missing selling price reports zero GP", func(t *testing.T) {
		tables := testTables()
		tables.MenuPrices = nil

		result, err := svc.CalculateGP(tables)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for _, item := range result.Items() {
			if item.GPAmount != 0 || item.GPPercent != 0 {
				t.Errorf("%s: GP = (%v, %v), want (0, 0)", item.MenuItem, item.GPAmount, item.GPPercent)
			}
			if item.SellingPrice != 0 {
				t.Errorf("%s: SellingPrice = %v, want 0", item.MenuItem, item.SellingPrice)
			}
		}
	})

	t.Run("blank brand items are computed but never grouped", func(t *testing.T) {
		tables := testTables()
		tables.Recipes = append(tables.Recipes, domain.RecipeEntry{
			MenuItem: "Orphan Salad", Brand: "   ", IngredientLine: "Cheese: 1 slice",
		})

		result, err := svc.CalculateGP(tables)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		for brand, items := range result.Groups {
			for _, item := range items {
				if item.MenuItem == "Orphan Salad" {
					t.Errorf("Orphan Salad surfaced under brand %q", brand)
				}
			}
		}
	})

	t.Run("idempotent over identical inputs", func(t *testing.T) {
		first, err := svc.CalculateGP(testTables())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		second, err := svc.CalculateGP(testTables())
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		if !reflect.DeepEqual(first, second) {
			t.Error("two runs over identical inputs produced different results")
		}
	})

	t.Run("brands appear in first-seen order", func(t *testing.T) {
		tables := testTables()
		tables.Recipes = append(tables.Recipes, domain.RecipeEntry{
			MenuItem: "Latte", Brand: "Beanhouse", Category: "Drinks",
			IngredientLine: "Cheese: 0 slices",
		})

		result, err := svc.CalculateGP(tables)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}

		want := []string{"Hungry Tum", "Beanhouse"}
		if !reflect.DeepEqual(result.Order, want) {
			t.Errorf("Order = %v, want %v", result.Order, want)
		}
	})

	t.Run("custom meal marker splits passes", func(t *testing.T) {
		svc := NewGPService(GPConfig{MealMarker: "Combo:"})
		tables := domain.Tables{
			Costings: testTables().Costings,
			Recipes: []domain.RecipeEntry{
				{MenuItem: "Burger", Brand: "B", IngredientLine: "Beef Patty: 1 each"},
				{MenuItem: "Combo: Double Up", Brand: "B", IngredientLine: "Burger: 2 each"},
			},
		}

		result, err := svc.CalculateGP(tables)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		combo := result.Groups["B"][1]
		if combo.FoodCost != 1.00 {
			t.Errorf("FoodCost = %v, want 1.00 (2 x referenced burger)", combo.FoodCost)
		}
	})
}

func TestRounding(t *testing.T) {
	tests := []struct {
		in    float64
		want2 float64
		want1 float64
	}{
		{2.344, 2.34, 2.3},
		{2.346, 2.35, 2.3},
		{66.666, 66.67, 66.7},
		{0.1, 0.1, 0.1},
		{80.0, 80.0, 80.0},
	}

	for _, tt := range tests {
		if got := round2(tt.in); got != tt.want2 {
			t.Errorf("round2(%v) = %v, want %v", tt.in, got, tt.want2)
		}
		if got := round1(tt.in); got != tt.want1 {
			t.Errorf("round1(%v) = %v, want %v", tt.in, got, tt.want1)
		}
	}
}
