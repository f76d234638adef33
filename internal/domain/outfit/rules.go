package outfit

import (
	"math"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

// Category is a discrete temperature band driving the scoring rules.
type Category string

const (
	CategoryVeryCold Category = "very_cold"
	CategoryCold     Category = "cold"
	CategoryCool     Category = "cool"
	CategoryMild     Category = "mild"
	CategoryWarm     Category = "warm"
	CategoryHot      Category = "hot"
)

// tempRule covers temperatures in (above, atMost]. An above of -Inf means unbounded below.
type tempRule struct {
	category Category
	above    float64
	atMost   float64
	required []string
	avoid    []string
}

func (r tempRule) contains(t float64) bool {
	return (math.IsInf(r.above, -1) || t > r.above) && t <= r.atMost
}

var tempRules = []tempRule{
	{category: CategoryVeryCold, above: math.Inf(-1), atMost: 32, required: []string{wardrobe.TagOuterwear, wardrobe.TagLongSleeve}, avoid: []string{wardrobe.TagSummer}},
	{category: CategoryCold, above: 32, atMost: 50, required: []string{wardrobe.TagOuterwear}, avoid: []string{wardrobe.TagSummer}},
	{category: CategoryCool, above: 50, atMost: 65},
	{category: CategoryMild, above: 65, atMost: 75},
	{category: CategoryWarm, above: 75, atMost: 85, avoid: []string{wardrobe.TagOuterwear, wardrobe.TagLongSleeve}},
	{category: CategoryHot, above: 85, atMost: math.Inf(1), avoid: []string{wardrobe.TagOuterwear, wardrobe.TagLongSleeve, "pants"}},
}

// Classify maps a Fahrenheit temperature to its category. NaN falls back to mild.
func Classify(temperature float64) Category {
	return ruleFor(temperature).category
}

func ruleFor(temperature float64) tempRule {
	for _, r := range tempRules {
		if r.contains(temperature) {
			return r
		}
	}
	return tempRule{category: CategoryMild}
}

// LayeringCategory reports whether the category calls for an outerwear layer.
func (c Category) LayeringCategory() bool {
	return c == CategoryVeryCold || c == CategoryCold || c == CategoryCool
}

// AllowsCompleteOutfit reports whether a single dress or suit may be suggested.
func (c Category) AllowsCompleteOutfit() bool {
	return c == CategoryMild || c == CategoryWarm || c == CategoryHot
}
