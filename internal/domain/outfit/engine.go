package outfit

import (
	"fmt"
	"math/rand/v2"
	"slices"
	"strings"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

const (
	fallbackReason  = "Could not find a perfect match, but here's a suggestion."
	favoritesReason = "Including your favorite items"
)

// RandSource picks the fallback items when nothing scores positively.
type RandSource interface {
	IntN(n int) int
}

type globalRand struct{}

func (globalRand) IntN(n int) int { return rand.IntN(n) }

// Outfit is the engine result: chosen items in selection order plus reasoning lines.
type Outfit struct {
	Category  Category
	Items     []wardrobe.Item
	Reasoning []string
}

type buckets struct {
	complete  []wardrobe.Item
	outerwear []wardrobe.Item
	tops      []wardrobe.Item
	bottoms   []wardrobe.Item
}

// categorize splits the inventory by normalised label. Unknown labels are dropped.
func categorize(items []wardrobe.Item) buckets {
	var b buckets
	for _, item := range items {
		switch normalizeLabel(item.Label) {
		case "dress", "suit":
			b.complete = append(b.complete, item)
		case "jacket", "coat", "hoodie", "sweater", "cardigan", "blazer":
			b.outerwear = append(b.outerwear, item)
		case labelTShirt, "shirt", "blouse", "tank top", "tshirt":
			b.tops = append(b.tops, item)
		case "pants", "jeans", "shorts", "skirt", "sweatpants":
			b.bottoms = append(b.bottoms, item)
		}
	}
	return b
}

// Engine assembles outfits. It holds no mutable state and is safe for concurrent use
// as long as its RandSource is.
type Engine struct {
	rnd RandSource
}

// NewEngine builds an engine; a nil source uses the shared math/rand/v2 generator.
func NewEngine(rnd RandSource) *Engine {
	if rnd == nil {
		rnd = globalRand{}
	}
	return &Engine{rnd: rnd}
}

// Suggest picks an outfit for the inventory under the given weather.
func (e *Engine) Suggest(items []wardrobe.Item, temperature float64, condition string) Outfit {
	category := Classify(temperature)
	cond := strings.ToLower(condition)
	wet := strings.Contains(cond, "rainy") || strings.Contains(cond, "snowy")
	b := categorize(items)

	out := Outfit{Category: category, Items: []wardrobe.Item{}}
	out.Reasoning = append(out.Reasoning, temperatureReason(category, temperature))
	if line, ok := weatherReason(cond); ok {
		out.Reasoning = append(out.Reasoning, line)
	}

	if category.AllowsCompleteOutfit() && len(b.complete) > 0 {
		if best, ok := pickBest(b.complete, category, condition); ok {
			out.Items = append(out.Items, best)
			if category == CategoryMild {
				light := filterLabels(b.outerwear, "cardigan", "blazer", "jacket")
				if layer, ok := pickBest(light, category, condition); ok {
					out.Items = append(out.Items, layer)
				}
			}
			return withFavorites(out)
		}
	}

	if top, ok := pickBest(b.tops, category, condition); ok {
		out.Items = append(out.Items, top)
	}
	if bottom, ok := pickBest(b.bottoms, category, condition); ok {
		out.Items = append(out.Items, bottom)
	}
	if category.LayeringCategory() || wet {
		if layer, ok := pickBest(b.outerwear, category, condition); ok {
			out.Items = append(out.Items, layer)
		}
	}

	// an empty inventory gets no fallback line.
	if len(out.Items) == 0 && len(items) > 0 {
		out.Reasoning = append(out.Reasoning, fallbackReason)
		if len(b.tops) > 0 {
			out.Items = append(out.Items, b.tops[e.rnd.IntN(len(b.tops))])
		}
		if len(b.bottoms) > 0 {
			out.Items = append(out.Items, b.bottoms[e.rnd.IntN(len(b.bottoms))])
		}
	}

	return withFavorites(out)
}

// pickBest returns the highest scoring candidate if its score is positive.
// Ties keep the earliest candidate in inventory order.
func pickBest(candidates []wardrobe.Item, category Category, condition string) (wardrobe.Item, bool) {
	var (
		best      wardrobe.Item
		bestScore float64
		found     bool
	)
	for _, item := range candidates {
		score := Score(item, category, condition)
		if !found || score > bestScore {
			best, bestScore, found = item, score, true
		}
	}
	if !found || bestScore <= 0 {
		return wardrobe.Item{}, false
	}
	return best, true
}

func filterLabels(items []wardrobe.Item, labels ...string) []wardrobe.Item {
	out := make([]wardrobe.Item, 0, len(items))
	for _, item := range items {
		if slices.Contains(labels, normalizeLabel(item.Label)) {
			out = append(out, item)
		}
	}
	return out
}

func withFavorites(out Outfit) Outfit {
	for _, item := range out.Items {
		if item.HasTag(wardrobe.TagSaved) {
			out.Reasoning = append(out.Reasoning, favoritesReason)
			break
		}
	}
	return out
}

func temperatureReason(category Category, temperature float64) string {
	degrees := int(temperature)
	switch category {
	case CategoryVeryCold:
		return fmt.Sprintf("It's freezing at %d°F - Bundle up!", degrees)
	case CategoryCold:
		return fmt.Sprintf("Cold at %d°F - Stay warm with layers", degrees)
	case CategoryCool:
		return fmt.Sprintf("Cool at %d°F - Light layers recommended", degrees)
	case CategoryWarm:
		return fmt.Sprintf("Warm at %d°F - Keep it light", degrees)
	case CategoryHot:
		return fmt.Sprintf("Hot at %d°F - Stay cool!", degrees)
	default:
		return fmt.Sprintf("Mild at %d°F - Comfortable for most outfits", degrees)
	}
}

func weatherReason(cond string) (string, bool) {
	switch {
	case strings.Contains(cond, "rainy"):
		return "Don't forget a jacket for the rain", true
	case strings.Contains(cond, "snowy"):
		return "Bundle up for the snow", true
	case strings.Contains(cond, "sunny"):
		return "Perfect sunny weather", true
	default:
		return "", false
	}
}
