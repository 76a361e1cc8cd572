package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/leancoach/internal/clients"
	"github.com/2beens/leancoach/internal/llm"
	"github.com/2beens/leancoach/internal/nutrition/macros"
	"github.com/2beens/leancoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// Generation is all-or-nothing: any of these aborts the request and
// nothing is persisted. The user just gets told to retry.
var (
	ErrEmptyResponse = errors.New("generator returned empty content")
	ErrTruncated     = errors.New("generator response truncated")
	ErrMalformed     = errors.New("generator response is not valid json")
	ErrWrongShape    = errors.New("generator response has wrong shape")
)

const planDays = 7

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=mealplan_test

type completionClient interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error)
}

type Generator struct {
	llmClient completionClient
	maxTokens int
}

func NewGenerator(llmClient completionClient, maxTokens int) *Generator {
	return &Generator{
		llmClient: llmClient,
		maxTokens: maxTokens,
	}
}

func (g *Generator) Generate(
	ctx context.Context,
	profile *clients.Profile,
	targets *macros.MacroTargets,
) (planData *PlanData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "mealplan.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := g.llmClient.Complete(ctx, llm.CompletionRequest{
		System:      mealPlanSystemPrompt,
		User:        buildMealPlanPrompt(profile, targets),
		Temperature: 0.7,
		MaxTokens:   g.maxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("complete meal plan generation: %w", err)
	}

	if strings.TrimSpace(res.Content) == "" {
		return nil, ErrEmptyResponse
	}
	if res.FinishReason == llm.FinishReasonLength {
		log.Errorf("meal plan generation truncated at %d completion tokens", res.Usage.CompletionTokens)
		return nil, ErrTruncated
	}

	planData = &PlanData{}
	if err := json.Unmarshal([]byte(res.Content), planData); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	if len(planData.Days) != planDays {
		return nil, fmt.Errorf("%w: expected %d days, got %d", ErrWrongShape, planDays, len(planData.Days))
	}
	for _, day := range planData.Days {
		if len(day.Meals) == 0 {
			return nil, fmt.Errorf("%w: day [%s] has no meals", ErrWrongShape, day.Day)
		}
	}

	return planData, nil
}

const mealPlanSystemPrompt = "You are a professional nutrition coach writing structured weekly meal plans. " +
	"You respond with a single valid JSON object and nothing else."

func buildMealPlanPrompt(profile *clients.Profile, targets *macros.MacroTargets) string {
	var b strings.Builder

	b.WriteString("Create a 7-day meal plan for this client.\n\n")

	b.WriteString("CLIENT PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d, Sex: %s\n", profile.Age, profile.Sex)
	fmt.Fprintf(&b, "- Height: %.0f cm, Weight: %.1f kg\n", profile.HeightCm, profile.WeightKg)
	fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal)
	fmt.Fprintf(&b, "- Diet type: %s\n", profile.DietType)
	fmt.Fprintf(&b, "- Cooking skill: %s, Budget: %s\n", profile.CookingSkill, profile.Budget)
	if len(profile.Allergies) > 0 {
		fmt.Fprintf(&b, "- Allergies (NEVER use these): %s\n", strings.Join(profile.Allergies, ", "))
	}
	if len(profile.DislikedFoods) > 0 {
		fmt.Fprintf(&b, "- Disliked foods (avoid): %s\n", strings.Join(profile.DislikedFoods, ", "))
	}
	b.WriteString("\n")

	b.WriteString("DAILY TARGETS (every day must land within 5% of these):\n")
	fmt.Fprintf(&b, "- Calories: %d kcal\n", targets.CalorieTarget)
	fmt.Fprintf(&b, "- Protein: %d g\n", targets.ProteinG)
	fmt.Fprintf(&b, "- Carbs: %d g\n", targets.CarbsG)
	fmt.Fprintf(&b, "- Fat: %d g\n", targets.FatG)
	b.WriteString("\n")

	minProteinPerMeal := targets.ProteinG / (profile.MealsPerDay + 1)

	b.WriteString("STRUCTURAL REQUIREMENTS:\n")
	fmt.Fprintf(&b, "- Exactly %d days, named Monday through Sunday\n", planDays)
	fmt.Fprintf(&b, "- Exactly %d meals per day\n", profile.MealsPerDay)
	fmt.Fprintf(&b, "- At least %d g protein in every meal\n", minProteinPerMeal)
	b.WriteString("- Every ingredient carries amount (numeric string), unit, and a macros object with calories, protein, carbs, fat for that amount\n")
	b.WriteString("- Prefer gram amounts; pieces (eggs, fruit) may use piece units\n")
	b.WriteString("- Every meal includes exactly one swap option: an alternate meal of the same shape with similar macros, without its own swap options\n")
	b.WriteString("- Instructions are an ordered list of short steps\n")
	b.WriteString("\n")

	b.WriteString("RESPONSE FORMAT (JSON only, no extra text):\n")
	b.WriteString(`{
  "days": [
    {
      "day": "Monday",
      "meals": [
        {
          "name": "Breakfast",
          "recipeTitle": "Greek Yogurt Berry Bowl",
          "ingredients": [
            {"name": "Greek yogurt", "amount": "250", "unit": "g", "macros": {"calories": 148, "protein": 25, "carbs": 9, "fat": 1}}
          ],
          "instructions": ["Combine yogurt and berries in a bowl."],
          "macroTotals": {"calories": 148, "protein": 25, "carbs": 9, "fat": 1},
          "swapOptions": [ { same shape as a meal, without swapOptions } ]
        }
      ],
      "dayTotals": {"calories": 0, "protein": 0, "carbs": 0, "fat": 0}
    }
  ]
}`)
	b.WriteString("\n\nCreate the meal plan now.")

	return b.String()
}
