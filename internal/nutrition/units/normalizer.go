package units

import (
	"strings"
)

// Fixed conversion factors for weight and volume units. Volume assumes
// water density - good enough for the liquids that show up in meal plans.
var gramsPerUnit = map[string]float64{
	"g":          1,
	"gram":       1,
	"kg":         1000,
	"kilogram":   1000,
	"ml":         1,
	"milliliter": 1,
	"l":          1000,
	"liter":      1000,
	"litre":      1000,
	"cup":        240,
	"tbsp":       15,
	"tablespoon": 15,
	"tsp":        5,
	"teaspoon":   5,
	"oz":         28.35,
	"ounce":      28.35,
}

// Typical weight of one piece, keyed on a substring of the ingredient name.
var pieceWeights = []struct {
	food  string
	grams float64
}{
	{"egg", 50},
	{"banana", 118},
	{"avocado", 150},
	{"tortilla", 64},
	{"apple", 182},
	{"orange", 131},
}

var pieceUnits = map[string]bool{
	"large":  true,
	"medium": true,
	"small":  true,
	"whole":  true,
	"piece":  true,
	"unit":   true,
}

// Per-can weights: drained tuna vs typical 400g cans of legumes/coconut milk.
var canWeights = []struct {
	food  string
	grams float64
}{
	{"tuna", 142},
	{"bean", 400},
	{"chickpea", 400},
	{"lentil", 400},
	{"coconut milk", 400},
}

// ToGrams converts an ingredient quantity into grams. The second return
// value is false when the unit cannot be converted for this food - the
// caller treats that as "unmatched", not as an error.
func ToGrams(ingredientName string, amount float64, unit string) (float64, bool) {
	if amount < 0 {
		return 0, false
	}

	name := strings.ToLower(strings.TrimSpace(ingredientName))
	u := normalizeUnit(unit)

	if factor, ok := gramsPerUnit[u]; ok {
		return amount * factor, true
	}

	if pieceUnits[u] {
		for _, pw := range pieceWeights {
			if strings.Contains(name, pw.food) {
				return amount * pw.grams, true
			}
		}
		return 0, false
	}

	if u == "scoop" || u == "serving" {
		// only protein powders have a well-known scoop size
		if strings.Contains(name, "whey") || strings.Contains(name, "protein") {
			return amount * 30, true
		}
		return 0, false
	}

	if u == "slice" {
		if strings.Contains(name, "bread") || strings.Contains(name, "cheese") {
			return amount * 28, true
		}
		return 0, false
	}

	if u == "can" {
		for _, cw := range canWeights {
			if strings.Contains(name, cw.food) {
				return amount * cw.grams, true
			}
		}
		return 0, false
	}

	// Generated plans sometimes mislabel gram amounts with a bogus unit.
	// A quantity of 10+ in an unknown unit is far more likely grams than
	// 10+ cups/cans of anything.
	if amount >= 10 {
		return amount, true
	}

	return 0, false
}

func normalizeUnit(unit string) string {
	u := strings.ToLower(strings.TrimSpace(unit))
	u = strings.TrimSuffix(u, ".")
	// pluralization: cups -> cup, slices -> slice, grams -> gram
	if len(u) > 2 && strings.HasSuffix(u, "s") && !strings.HasSuffix(u, "ss") {
		u = strings.TrimSuffix(u, "s")
	}
	return u
}
