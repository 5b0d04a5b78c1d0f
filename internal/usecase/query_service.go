package usecase

import (
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/bigappetite/backend/internal/domain"
)

// underThresholdRegex matches GP-threshold queries like "items under 70"
var underThresholdRegex = regexp.MustCompile(`under\s*(\d+)`)

// AnswerKind tags the shape of a query answer
type AnswerKind int

const (
	AnswerUnknown AnswerKind = iota
	AnswerIngredientCost
	AnswerItemGP
	AnswerUnderThreshold
)

// IngredientCostAnswer reports an ingredient's unit cost
type IngredientCostAnswer struct {
	Ingredient string  `json:"ingredient"`
	UnitCost   float64 `json:"unitCost"`
}

// QueryAnswer is the tagged result of a free-text query. Exactly one of the
// payload fields is set, according to Kind.
type QueryAnswer struct {
	Kind       AnswerKind
	Ingredient *IngredientCostAnswer
	Item       *domain.ComputedItem
	Items      []domain.ComputedItem
	Message    string
}

// QueryService answers simple free-text questions over a catalog and a
// computed result set: ingredient cost lookups, menu item GP lookups, and
// GP-percent threshold filters.
type QueryService struct{}

// NewQueryService creates a query service
func NewQueryService() *QueryService {
	return &QueryService{}
}

// Answer resolves a free-text query. Name matching checks containment of
// the catalog or menu item name inside the lowercased query (not the
// reverse) and returns the first hit in table order.
func (s *QueryService) Answer(query string, tables domain.Tables, result *domain.Result) QueryAnswer {
	q := strings.ToLower(query)

	if strings.Contains(q, "cost") || strings.Contains(q, "price") {
		for _, entry := range tables.Costings {
			if entry.NormalizedName != "" && strings.Contains(q, entry.NormalizedName) {
				return QueryAnswer{
					Kind: AnswerIngredientCost,
					Ingredient: &IngredientCostAnswer{
						Ingredient: entry.Ingredient,
						UnitCost:   round4(entry.UnitCost),
					},
				}
			}
		}
	}

	if result != nil && (strings.Contains(q, "gp") || strings.Contains(q, "margin")) {
		for _, item := range result.Items() {
			if strings.Contains(q, strings.ToLower(item.MenuItem)) {
				found := item
				return QueryAnswer{Kind: AnswerItemGP, Item: &found}
			}
		}
	}

	if m := underThresholdRegex.FindStringSubmatch(q); m != nil && result != nil {
		threshold, _ := strconv.ParseFloat(m[1], 64)
		under := []domain.ComputedItem{}
		for _, item := range result.Items() {
			if item.GPPercent < threshold {
				under = append(under, item)
			}
		}
		return QueryAnswer{Kind: AnswerUnderThreshold, Items: under}
	}

	return QueryAnswer{
		Kind:    AnswerUnknown,
		Message: "Query not recognised. Try: 'cheese cost', 'chicken pizza gp', or 'items under 70'",
	}
}

func round4(v float64) float64 {
	return math.Round(v*10000) / 10000
}
