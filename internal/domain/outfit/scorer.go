package outfit

import (
	"slices"
	"strings"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

const (
	labelTShirt = "t-shirt"

	requiredTagBonus = 2.0
	avoidTagPenalty  = -2.0
)

// scoreInput is what every rule sees: the item with its label already normalised.
type scoreInput struct {
	item     wardrobe.Item
	label    string
	category Category
	rainy    bool
	snowy    bool
}

type scoreRule struct {
	applies func(in scoreInput) bool
	delta   float64
}

func always(scoreInput) bool { return true }

func labelIn(cats []Category, labels ...string) func(scoreInput) bool {
	return func(in scoreInput) bool {
		return slices.Contains(cats, in.category) && slices.Contains(labels, in.label)
	}
}

func hasTag(tag string) func(scoreInput) bool {
	return func(in scoreInput) bool { return in.item.HasTag(tag) }
}

func inCategoryWithTag(c Category, tag string) func(scoreInput) bool {
	return func(in scoreInput) bool { return in.category == c && in.item.HasTag(tag) }
}

func wetWeatherCover(in scoreInput) bool {
	return (in.rainy || in.snowy) &&
		(in.item.HasTag(wardrobe.TagOuterwear) || slices.Contains([]string{"jacket", "coat", "hoodie"}, in.label))
}

func bareLegsInSnow(in scoreInput) bool {
	return in.snowy && slices.Contains([]string{"dress", "skirt"}, in.label)
}

var (
	coldBands = []Category{CategoryVeryCold, CategoryCold}
	coolBand  = []Category{CategoryCool}
	mildBand  = []Category{CategoryMild}
	warmBands = []Category{CategoryWarm, CategoryHot}
)

// scoreRules is evaluated top to bottom and every matching rule contributes its delta.
// Label buckets within a category are disjoint, so at most one label rule fires.
var scoreRules = buildScoreRules()

func buildScoreRules() []scoreRule {
	rules := []scoreRule{
		{applies: always, delta: 1.0},
		{applies: hasTag(wardrobe.TagRecentlyWorn), delta: -10.0},
		{applies: hasTag(wardrobe.TagSaved), delta: 3.0},

		{applies: labelIn(coldBands, "jacket", "coat", "hoodie", "sweater"), delta: 3.0},
		{applies: labelIn(coldBands, "shirt", "blouse"), delta: 1.0},
		{applies: labelIn(coldBands, "pants", "jeans", "sweatpants"), delta: 2.0},
		{applies: labelIn(coldBands, "shorts", "skirt", "dress", labelTShirt), delta: -2.0},

		{applies: labelIn(coolBand, "jacket", "sweater", "cardigan", "hoodie"), delta: 2.0},
		{applies: labelIn(coolBand, "shirt", labelTShirt, "blouse"), delta: 1.5},
		{applies: labelIn(coolBand, "pants", "jeans"), delta: 1.5},

		// mild deltas are kept as observed: tops and dresses +2, bottoms +1.5.
		{applies: labelIn(mildBand, labelTShirt, "shirt", "blouse"), delta: 2.0},
		{applies: labelIn(mildBand, "pants", "jeans", "skirt"), delta: 1.5},
		{applies: labelIn(mildBand, "dress"), delta: 2.0},
		{applies: labelIn(mildBand, "jacket", "coat"), delta: -1.0},

		{applies: labelIn(warmBands, labelTShirt, "tank top"), delta: 2.0},
		{applies: labelIn(warmBands, "shorts", "skirt", "dress"), delta: 2.0},
		{applies: labelIn(warmBands, "jacket", "coat", "sweater", "hoodie"), delta: -3.0},
	}

	for _, r := range tempRules {
		for _, tag := range r.required {
			rules = append(rules, scoreRule{applies: inCategoryWithTag(r.category, tag), delta: requiredTagBonus})
		}
	}
	for _, r := range tempRules {
		for _, tag := range r.avoid {
			rules = append(rules, scoreRule{applies: inCategoryWithTag(r.category, tag), delta: avoidTagPenalty})
		}
	}

	return append(rules,
		scoreRule{applies: wetWeatherCover, delta: 2.0},
		scoreRule{applies: bareLegsInSnow, delta: -2.0},
	)
}

// Score rates how suitable item is for the category and weather condition.
// Higher is better; negative means unsuitable.
func Score(item wardrobe.Item, category Category, condition string) float64 {
	cond := strings.ToLower(condition)
	in := scoreInput{
		item:     item,
		label:    normalizeLabel(item.Label),
		category: category,
		rainy:    strings.Contains(cond, "rainy"),
		snowy:    strings.Contains(cond, "snowy"),
	}

	score := 0.0
	for _, r := range scoreRules {
		if r.applies(in) {
			score += r.delta
		}
	}
	return score
}

func normalizeLabel(label string) string {
	l := strings.ToLower(strings.TrimSpace(label))
	if strings.Contains(l, labelTShirt) {
		return labelTShirt
	}
	return l
}
