package mealplan

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

const categoryPantry = "Pantry"

// Ordered by priority, the first matching category wins. "Coconut oil"
// must land in oils even though "coconut" alone could read as produce,
// which is why oils keywords are checked through this fixed order.
var groceryCategories = []struct {
	name     string
	keywords []string
}{
	{"Protein", []string{
		"chicken", "turkey", "beef", "steak", "pork", "bacon", "salmon",
		"tuna", "cod", "tilapia", "shrimp", "fish", "egg", "tofu",
		"tempeh", "seitan", "whey", "protein powder",
	}},
	{"Dairy", []string{
		"yogurt", "milk", "cheese", "mozzarella", "feta", "parmesan",
		"butter", "cream",
	}},
	{"Grains & Carbs", []string{
		"rice", "quinoa", "oat", "pasta", "bread", "tortilla", "couscous",
		"potato", "bagel", "granola", "cereal", "bean", "chickpea",
		"lentil",
	}},
	{"Produce", []string{
		"broccoli", "spinach", "kale", "lettuce", "greens", "tomato",
		"cucumber", "pepper", "onion", "garlic", "carrot", "zucchini",
		"mushroom", "asparagus", "cauliflower", "banana", "apple",
		"orange", "berr", "grape", "pineapple", "mango", "lemon", "lime",
		"fruit", "vegetable",
	}},
	{"Oils, Fats & Nuts", []string{
		"oil", "avocado", "almond", "walnut", "cashew", "peanut", "nut",
		"seed", "tahini", "coconut",
	}},
}

type groceryEntry struct {
	displayName string
	unit        string
	amount      float64
}

// CompileGroceryList merges the week's ingredient amounts into a
// categorized shopping list. Swap options are left out, they are
// alternatives, not additional food. The list is derived from plan data
// and safe to regenerate at any time.
func CompileGroceryList(planData *PlanData) []GroceryItem {
	merged := map[string]*groceryEntry{}

	for di := range planData.Days {
		day := &planData.Days[di]
		for mi := range day.Meals {
			meal := &day.Meals[mi]
			for ii := range meal.Ingredients {
				ingredient := &meal.Ingredients[ii]
				amount, ok := ingredient.AmountValue()
				if !ok {
					continue
				}

				name := strings.ToLower(strings.TrimSpace(ingredient.Name))
				unit := strings.ToLower(strings.TrimSpace(ingredient.Unit))
				// same name in different units is not merged
				key := name + "|" + unit

				if entry, found := merged[key]; found {
					entry.amount += amount
				} else {
					merged[key] = &groceryEntry{
						displayName: capitalizeFirst(name),
						unit:        unit,
						amount:      amount,
					}
				}
			}
		}
	}

	groceryList := make([]GroceryItem, 0, len(merged))
	for _, entry := range merged {
		groceryList = append(groceryList, GroceryItem{
			Category: categorize(entry.displayName),
			Item:     entry.display(),
		})
	}

	sort.Slice(groceryList, func(i, j int) bool {
		if groceryList[i].Category != groceryList[j].Category {
			return groceryList[i].Category < groceryList[j].Category
		}
		return groceryList[i].Item < groceryList[j].Item
	})

	return groceryList
}

func (e *groceryEntry) display() string {
	if e.unit == "g" && e.amount >= 1000 {
		return fmt.Sprintf("%s — %.1f kg", e.displayName, e.amount/1000)
	}
	return fmt.Sprintf("%s — %d %s", e.displayName, int(math.Round(e.amount)), e.unit)
}

func categorize(name string) string {
	lowered := strings.ToLower(name)
	for _, category := range groceryCategories {
		for _, keyword := range category.keywords {
			if strings.Contains(lowered, keyword) {
				return category.name
			}
		}
	}
	return categoryPantry
}

func capitalizeFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
