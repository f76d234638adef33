package outfit

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/yanqian/outfitter/internal/domain/wardrobe"
)

func item(label string, tags ...string) wardrobe.Item {
	return wardrobe.Item{Label: label, Tags: tags}
}

func TestScoreLabelTable(t *testing.T) {
	tests := []struct {
		name     string
		item     wardrobe.Item
		category Category
		want     float64
	}{
		{"cold jacket", item("Jacket"), CategoryCold, 4},
		{"very cold coat", item("coat"), CategoryVeryCold, 4},
		{"cold shirt", item("Shirt"), CategoryCold, 2},
		{"cold jeans", item("Jeans"), CategoryCold, 3},
		{"cold t-shirt", item("Graphic T-Shirt"), CategoryCold, -1},
		{"cold dress", item("Dress"), CategoryCold, -1},
		{"cool hoodie", item("Hoodie"), CategoryCool, 3},
		{"cool t-shirt", item("T-Shirt"), CategoryCool, 2.5},
		{"cool pants", item("Pants"), CategoryCool, 2.5},
		{"cool shorts", item("Shorts"), CategoryCool, 1},
		{"mild blouse", item("Blouse"), CategoryMild, 3},
		{"mild skirt", item("Skirt"), CategoryMild, 2.5},
		{"mild dress", item("Dress"), CategoryMild, 3},
		{"mild coat", item("Coat"), CategoryMild, 0},
		{"warm tank top", item("Tank Top"), CategoryWarm, 3},
		{"hot shorts", item("Shorts"), CategoryHot, 3},
		{"hot sweater", item("Sweater"), CategoryHot, -2},
		{"unknown label", item("Scarf"), CategoryCold, 1},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Score(tc.item, tc.category, "Cloudy"))
		})
	}
}

func TestScoreRuleTags(t *testing.T) {
	require.Equal(t, 8.0, Score(item("Coat", "outerwear", "long sleeve"), CategoryVeryCold, ""))
	require.Equal(t, 6.0, Score(item("Coat", "outerwear", "long sleeve"), CategoryCold, ""))
	require.Equal(t, -3.0, Score(item("Shorts", "summer"), CategoryCold, ""))
	require.Equal(t, -1.0, Score(item("Shirt", "long sleeve"), CategoryWarm, ""))
	require.Equal(t, -1.0, Score(item("Linen", "pants"), CategoryHot, ""))
	require.Equal(t, 1.0, Score(item("Linen", "pants"), CategoryWarm, ""))
}

func TestScoreWeatherAdjustment(t *testing.T) {
	require.Equal(t, 3.0, Score(item("Hoodie"), CategoryMild, "Rainy 🌧️"))
	require.Equal(t, 3.0, Score(item("Poncho", "outerwear"), CategoryMild, "SNOWY"))
	require.Equal(t, 1.0, Score(item("Dress"), CategoryMild, "snowy ❄️"))
	require.Equal(t, 3.0, Score(item("Dress"), CategoryMild, "rainy"))
	require.Equal(t, 3.0, Score(item("Dress"), CategoryMild, "Sunny ☀️"))
}

func TestScoreIsDeterministic(t *testing.T) {
	it := item("Jacket", "saved", "outerwear")
	require.Equal(t, Score(it, CategoryCold, "Rainy"), Score(it, CategoryCold, "Rainy"))
}

func TestRecentlyWornDominates(t *testing.T) {
	for _, c := range []Category{CategoryVeryCold, CategoryCold, CategoryCool, CategoryMild, CategoryWarm, CategoryHot} {
		for _, label := range []string{"Jacket", "T-Shirt", "Jeans", "Dress", "Shorts"} {
			plain := Score(item(label), c, "Rainy")
			worn := Score(item(label, wardrobe.TagRecentlyWorn), c, "Rainy")
			wornSaved := Score(item(label, wardrobe.TagRecentlyWorn, wardrobe.TagSaved), c, "Rainy")

			require.Equal(t, plain-10, worn, "%s at %s", label, c)
			require.Equal(t, plain-7, wornSaved, "%s at %s", label, c)
		}
	}
}

func TestScoreTagMatchingIgnoresCase(t *testing.T) {
	require.Equal(t, Score(item("Shirt", "saved"), CategoryMild, ""), Score(item("Shirt", " Saved "), CategoryMild, ""))
}
