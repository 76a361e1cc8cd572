package trainingplan

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/2beens/leancoach/internal/clients"
	"github.com/2beens/leancoach/internal/llm"
	"github.com/2beens/leancoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

var (
	ErrEmptyResponse = errors.New("generator returned empty content")
	ErrTruncated     = errors.New("generator response truncated")
	ErrMalformed     = errors.New("generator response is not valid json")
	ErrWrongShape    = errors.New("generator response has wrong shape")
)

//go:generate mockgen -source=$GOFILE -destination=generator_mocks_test.go -package=trainingplan_test

type completionClient interface {
	Complete(ctx context.Context, req llm.CompletionRequest) (*llm.CompletionResult, error)
}

// Generator produces the training program. Unlike meal plans, the output
// is persisted without a numeric verification pass: training prescriptions
// have no ground-truth database to check against, so the generator's
// programming expertise is trusted as-is.
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

func (g *Generator) Generate(ctx context.Context, profile *clients.Profile) (planData *PlanData, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "trainingplan.generate")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	res, err := g.llmClient.Complete(ctx, llm.CompletionRequest{
		System:      trainingPlanSystemPrompt,
		User:        buildTrainingPlanPrompt(profile),
		Temperature: 0.7,
		MaxTokens:   g.maxTokens,
		JSONMode:    true,
	})
	if err != nil {
		return nil, fmt.Errorf("complete training plan generation: %w", err)
	}

	if strings.TrimSpace(res.Content) == "" {
		return nil, ErrEmptyResponse
	}
	if res.FinishReason == llm.FinishReasonLength {
		log.Errorf("training plan generation truncated at %d completion tokens", res.Usage.CompletionTokens)
		return nil, ErrTruncated
	}

	planData = &PlanData{}
	if err := json.Unmarshal([]byte(res.Content), planData); err != nil {
		return nil, fmt.Errorf("%w: %s", ErrMalformed, err)
	}

	if len(planData.Weeks) == 0 {
		return nil, fmt.Errorf("%w: no weeks", ErrWrongShape)
	}

	return planData, nil
}

const trainingPlanSystemPrompt = "You are an experienced strength and conditioning coach writing structured " +
	"training programs. You respond with a single valid JSON object and nothing else."

func buildTrainingPlanPrompt(profile *clients.Profile) string {
	var b strings.Builder

	b.WriteString("Create a multi-week training program for this client.\n\n")

	b.WriteString("CLIENT PROFILE:\n")
	fmt.Fprintf(&b, "- Age: %d, Sex: %s\n", profile.Age, profile.Sex)
	fmt.Fprintf(&b, "- Goal: %s\n", profile.Goal)
	fmt.Fprintf(&b, "- Experience level: %s\n", profile.ExperienceLevel)
	fmt.Fprintf(&b, "- Training days per week: %d\n", profile.TrainingDaysPerWeek)
	fmt.Fprintf(&b, "- Training location: %s\n", profile.TrainingLocation)
	if profile.InjuryNotes != "" {
		fmt.Fprintf(&b, "- Injuries / limitations (work around these): %s\n", profile.InjuryNotes)
	}
	b.WriteString("\n")

	b.WriteString("PROGRAM REQUIREMENTS:\n")
	b.WriteString("- 4 weeks, with a clear weekly theme and progression\n")
	fmt.Fprintf(&b, "- %d training days per week, matching the client's schedule\n", profile.TrainingDaysPerWeek)
	b.WriteString("- Every day has a warmup, a main exercise list and optionally a cooldown\n")
	b.WriteString("- Every exercise states sets, reps, rest in seconds, and where useful an RPE, tempo and a substitution\n")
	b.WriteString("- Include program-level progression rules the client can follow after week 4\n")
	b.WriteString("\n")

	b.WriteString("RESPONSE FORMAT (JSON only, no extra text):\n")
	b.WriteString(`{
  "programName": "...",
  "overview": "...",
  "progressionRules": "...",
  "weeks": [
    {
      "week": 1,
      "theme": "...",
      "days": [
        {
          "day": "Monday",
          "name": "Upper Body Strength",
          "warmup": ["..."],
          "exercises": [
            {"name": "Bench Press", "sets": 4, "reps": "6-8", "rpe": 8, "restSeconds": 150, "tempo": "2-0-1", "substitution": "Dumbbell Press"}
          ],
          "cooldown": ["..."],
          "notes": "..."
        }
      ]
    }
  ]
}`)
	b.WriteString("\n\nCreate the training program now.")

	return b.String()
}
