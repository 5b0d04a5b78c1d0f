package http

import (
	"strings"
	"testing"

	"github.com/bigappetite/backend/internal/domain"
)

func TestGPColor(t *testing.T) {
	tests := []struct {
		gp   float64
		want string
	}{
		{75, "#3CB371"},
		{70, "#3CB371"},
		{67, "#FFB84D"},
		{65, "#FFB84D"},
		{64.9, "#FF6B6B"},
		{0, "#FF6B6B"},
	}

	for _, tt := range tests {
		if got := gpColor(tt.gp); got != tt.want {
			t.Errorf("gpColor(%v) = %q, want %q", tt.gp, got, tt.want)
		}
	}
}

func TestRenderReport(t *testing.T) {
	result := &domain.Result{
		Order: []string{"Hungry Tum", "Beanhouse"},
		Groups: map[string][]domain.ComputedItem{
			"Hungry Tum": {
				{MenuItem: "Burger", Category: "Mains", FoodCost: 0.90, SellingPrice: 4.50,
					GPAmount: 3.60, GPPercent: 80.0},
				{MenuItem: "Fries", Category: "Sides", FoodCost: 0.20, SellingPrice: 2.00,
					GPAmount: 1.80, GPPercent: 90.0, Notes: []string{"ASSUMED: no match for Salt"}},
			},
			"Beanhouse": {
				{MenuItem: "Latte", Category: "Drinks", GPPercent: 60.0},
			},
		},
	}

	html, err := RenderReport(result)
	if err != nil {
		t.Fatalf("RenderReport() error = %v", err)
	}
	out := string(html)

	// Brand sections in order, with items and notes
	first := strings.Index(out, "Hungry Tum")
	second := strings.Index(out, "Beanhouse")
	if first == -1 || second == -1 || first > second {
		t.Errorf("brand sections missing or out of order: %d, %d", first, second)
	}
	for _, want := range []string{"Burger", "£0.90", "80.0%", "ASSUMED: no match for Salt"} {
		if !strings.Contains(out, want) {
			t.Errorf("report missing %q", want)
		}
	}

	// Overall summary counts 2 high-margin and 1 low-margin item
	if !strings.Contains(out, "3 items") {
		t.Error("report missing overall item count")
	}
}
