package mealplan

import (
	"strconv"
	"strings"
	"time"
)

// Ingredient macros, as estimated by the generator or corrected from the
// nutrient database. Values are for the stated amount, not per 100 g.
type IngredientMacros struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

// MacroTotals is an aggregate over ingredients or meals, integer-rounded.
type MacroTotals struct {
	Calories int `json:"calories"`
	Protein  int `json:"protein"`
	Carbs    int `json:"carbs"`
	Fat      int `json:"fat"`
}

// Ingredient amount arrives from the generator as a numeric string
// ("200", "1.5") and stays a string through persistence.
type Ingredient struct {
	Name   string           `json:"name"`
	Amount string           `json:"amount"`
	Unit   string           `json:"unit"`
	Macros IngredientMacros `json:"macros"`
}

func (i *Ingredient) AmountValue() (float64, bool) {
	amount, err := strconv.ParseFloat(strings.TrimSpace(i.Amount), 64)
	if err != nil {
		return 0, false
	}
	return amount, true
}

type Meal struct {
	Name         string       `json:"name"`
	RecipeTitle  string       `json:"recipeTitle"`
	Ingredients  []Ingredient `json:"ingredients"`
	Instructions []string     `json:"instructions"`
	MacroTotals  MacroTotals  `json:"macroTotals"`
	// alternates with the same shape, one level deep, never nested
	SwapOptions []Meal `json:"swapOptions,omitempty"`
}

type MealDay struct {
	Day       string      `json:"day"`
	Meals     []Meal      `json:"meals"`
	DayTotals MacroTotals `json:"dayTotals"`
}

type PlanData struct {
	Days []MealDay `json:"days"`
}

type MealPlan struct {
	ID             int           `json:"id"`
	UserID         int           `json:"userId"`
	Version        int           `json:"version"`
	TargetsVersion int           `json:"targetsVersion"`
	PlanData       PlanData      `json:"planData"`
	GroceryList    []GroceryItem `json:"groceryList"`
	CreatedAt      time.Time     `json:"createdAt"`
}

type GroceryItem struct {
	Category string `json:"category"`
	Item     string `json:"item"`
}
