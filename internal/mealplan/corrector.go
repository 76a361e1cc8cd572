package mealplan

import (
	"context"
	"math"
	"sort"
	"strconv"
	"sync"
	"time"

	"github.com/2beens/leancoach/internal/nutrition/macros"
	"github.com/2beens/leancoach/internal/nutrition/nutrients"
	"github.com/2beens/leancoach/internal/nutrition/units"
	"github.com/2beens/leancoach/internal/telemetry/metrics"
	"github.com/2beens/leancoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

const (
	// an ingredient contributing this little is a seasoning/condiment,
	// it keeps its amount and stays out of the scaling denominator
	fixedIngredientKcal = 30.0

	// a scale factor this close to 1 means the group is already on
	// target and rescaling would only churn the numbers
	scaleNoOpBand = 0.05
)

type dominantMacro int

const (
	macroProtein dominantMacro = iota
	macroCarbs
	macroFat
)

type nutrientResolver interface {
	Resolve(ctx context.Context, rawName string) *nutrients.Macros
}

// Corrector rewrites a generated meal plan with ground-truth nutrition
// data. The generator is trusted for food choice and recipe structure
// only, never for the final numbers.
type Corrector struct {
	resolver nutrientResolver
	metrics  *metrics.Manager
}

func NewCorrector(resolver nutrientResolver, metricsManager *metrics.Manager) *Corrector {
	return &Corrector{
		resolver: resolver,
		metrics:  metricsManager,
	}
}

// Correct runs the four correction phases in place: override ingredient
// macros from the nutrient database, aggregate, scale each day towards
// the targets, re-aggregate. Every phase is idempotent, so re-running on
// already corrected output is safe. Returns the names of ingredients
// that could not be resolved; those keep their generator-provided macros.
func (c *Corrector) Correct(ctx context.Context, planData *PlanData, targets *macros.MacroTargets) []string {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mealplan.correct")
	defer span.End()

	startedAt := time.Now()
	defer func() {
		c.metrics.HistPlanCorrectionDuration.Observe(time.Since(startedAt).Seconds())
	}()

	unmatched := c.overrideIngredientMacros(ctx, planData)
	aggregateTotals(planData)
	for i := range planData.Days {
		scaleDayToTarget(&planData.Days[i], targets)
	}
	aggregateTotals(planData)

	if len(unmatched) > 0 {
		c.metrics.CounterUnmatchedIngredient.Add(float64(len(unmatched)))
		log.Warnf("meal plan correction: %d unmatched ingredients: %v", len(unmatched), unmatched)
	}

	return unmatched
}

// overrideIngredientMacros resolves ingredients of one day in parallel,
// days one after another, keeping external lookup concurrency bounded to
// a single day's ingredient count.
func (c *Corrector) overrideIngredientMacros(ctx context.Context, planData *PlanData) []string {
	var mu sync.Mutex
	unmatchedSet := map[string]struct{}{}

	for di := range planData.Days {
		day := &planData.Days[di]

		var wg sync.WaitGroup
		for mi := range day.Meals {
			meal := &day.Meals[mi]
			for ii := range meal.Ingredients {
				wg.Add(1)
				go func(ingredient *Ingredient) {
					defer wg.Done()
					if !c.overrideIngredient(ctx, ingredient) {
						mu.Lock()
						unmatchedSet[ingredient.Name] = struct{}{}
						mu.Unlock()
					}
				}(&meal.Ingredients[ii])
			}
			for si := range meal.SwapOptions {
				swap := &meal.SwapOptions[si]
				for ii := range swap.Ingredients {
					wg.Add(1)
					go func(ingredient *Ingredient) {
						defer wg.Done()
						if !c.overrideIngredient(ctx, ingredient) {
							mu.Lock()
							unmatchedSet[ingredient.Name] = struct{}{}
							mu.Unlock()
						}
					}(&swap.Ingredients[ii])
				}
			}
		}
		wg.Wait()
	}

	unmatched := make([]string, 0, len(unmatchedSet))
	for name := range unmatchedSet {
		unmatched = append(unmatched, name)
	}
	sort.Strings(unmatched)
	return unmatched
}

func (c *Corrector) overrideIngredient(ctx context.Context, ingredient *Ingredient) bool {
	amount, ok := ingredient.AmountValue()
	if !ok {
		return false
	}

	grams, ok := units.ToGrams(ingredient.Name, amount, ingredient.Unit)
	if !ok {
		return false
	}

	per100 := c.resolver.Resolve(ctx, ingredient.Name)
	if per100 == nil {
		return false
	}

	scaled := per100.PerGrams(grams)
	ingredient.Macros = IngredientMacros{
		Calories: round1(scaled.Calories),
		Protein:  round1(scaled.Protein),
		Carbs:    round1(scaled.Carbs),
		Fat:      round1(scaled.Fat),
	}
	return true
}

// aggregateTotals is pure summation, it has no failure mode.
func aggregateTotals(planData *PlanData) {
	for di := range planData.Days {
		day := &planData.Days[di]
		dayTotals := MacroTotals{}
		for mi := range day.Meals {
			meal := &day.Meals[mi]
			meal.MacroTotals = sumIngredientMacros(meal.Ingredients)
			for si := range meal.SwapOptions {
				swap := &meal.SwapOptions[si]
				swap.MacroTotals = sumIngredientMacros(swap.Ingredients)
			}
			dayTotals.Calories += meal.MacroTotals.Calories
			dayTotals.Protein += meal.MacroTotals.Protein
			dayTotals.Carbs += meal.MacroTotals.Carbs
			dayTotals.Fat += meal.MacroTotals.Fat
		}
		day.DayTotals = dayTotals
	}
}

func sumIngredientMacros(ingredients []Ingredient) MacroTotals {
	var calories, protein, carbs, fat float64
	for i := range ingredients {
		calories += ingredients[i].Macros.Calories
		protein += ingredients[i].Macros.Protein
		carbs += ingredients[i].Macros.Carbs
		fat += ingredients[i].Macros.Fat
	}
	return MacroTotals{
		Calories: int(math.Round(calories)),
		Protein:  int(math.Round(protein)),
		Carbs:    int(math.Round(carbs)),
		Fat:      int(math.Round(fat)),
	}
}

// scaleDayToTarget rebalances one day's portions. Non-fixed ingredients
// are partitioned into three groups by dominant macro and each group is
// scaled independently towards its macro target. Three independent knobs
// only - no simultaneous three-way optimization; the generation prompt's
// 5% accuracy requirement absorbs the cross-group residual.
func scaleDayToTarget(day *MealDay, targets *macros.MacroTargets) {
	groups := map[dominantMacro][]*Ingredient{}
	fixedContribution := map[dominantMacro]float64{}

	for mi := range day.Meals {
		meal := &day.Meals[mi]
		for ii := range meal.Ingredients {
			ingredient := &meal.Ingredients[ii]
			if ingredient.Macros.Calories <= fixedIngredientKcal {
				fixedContribution[macroProtein] += ingredient.Macros.Protein
				fixedContribution[macroCarbs] += ingredient.Macros.Carbs
				fixedContribution[macroFat] += ingredient.Macros.Fat
				continue
			}
			group := dominantMacroOf(ingredient)
			groups[group] = append(groups[group], ingredient)
		}
	}

	for _, group := range []dominantMacro{macroProtein, macroCarbs, macroFat} {
		ingredients := groups[group]
		if len(ingredients) == 0 {
			continue
		}

		var currentTotal float64
		for _, ingredient := range ingredients {
			currentTotal += macroGrams(ingredient, group)
		}
		if currentTotal == 0 {
			continue
		}

		target := groupTarget(group, targets) - fixedContribution[group]
		if target <= 0 {
			continue
		}

		factor := target / currentTotal
		if math.Abs(factor-1) <= scaleNoOpBand {
			continue
		}

		for _, ingredient := range ingredients {
			scaleIngredient(ingredient, factor)
		}
	}
}

// dominantMacroOf picks the macro with the largest caloric contribution,
// ties favor protein, then carbs, over fat.
func dominantMacroOf(ingredient *Ingredient) dominantMacro {
	proteinKcal := ingredient.Macros.Protein * 4
	carbsKcal := ingredient.Macros.Carbs * 4
	fatKcal := ingredient.Macros.Fat * 9

	if proteinKcal >= carbsKcal && proteinKcal >= fatKcal {
		return macroProtein
	}
	if carbsKcal >= fatKcal {
		return macroCarbs
	}
	return macroFat
}

func macroGrams(ingredient *Ingredient, group dominantMacro) float64 {
	switch group {
	case macroProtein:
		return ingredient.Macros.Protein
	case macroCarbs:
		return ingredient.Macros.Carbs
	default:
		return ingredient.Macros.Fat
	}
}

func groupTarget(group dominantMacro, targets *macros.MacroTargets) float64 {
	switch group {
	case macroProtein:
		return float64(targets.ProteinG)
	case macroCarbs:
		return float64(targets.CarbsG)
	default:
		return float64(targets.FatG)
	}
}

// scaleIngredient is a linear rescale: displayed amount and macros move
// together so they stay mutually consistent.
func scaleIngredient(ingredient *Ingredient, factor float64) {
	if amount, ok := ingredient.AmountValue(); ok {
		ingredient.Amount = strconv.Itoa(int(math.Round(amount * factor)))
	}
	ingredient.Macros = IngredientMacros{
		Calories: round1(ingredient.Macros.Calories * factor),
		Protein:  round1(ingredient.Macros.Protein * factor),
		Carbs:    round1(ingredient.Macros.Carbs * factor),
		Fat:      round1(ingredient.Macros.Fat * factor),
	}
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
