package mealplan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/leancoach/internal/clients"
	"github.com/2beens/leancoach/internal/nutrition/macros"
	"github.com/2beens/leancoach/internal/telemetry/metrics"
	"github.com/2beens/leancoach/internal/telemetry/tracing"
	"github.com/2beens/leancoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=mealplan_mocks_test.go -package=mealplan_test

type plansRepo interface {
	CreateNext(ctx context.Context, plan MealPlan) (*MealPlan, error)
	GetCurrent(ctx context.Context, userID int) (*MealPlan, error)
}

type targetsProvider interface {
	GetCurrent(ctx context.Context, userID int) (*macros.MacroTargets, error)
}

type profilesProvider interface {
	GetLatest(ctx context.Context, userID int) (*clients.Profile, error)
}

type planGenerator interface {
	Generate(ctx context.Context, profile *clients.Profile, targets *macros.MacroTargets) (*PlanData, error)
}

type planCorrector interface {
	Correct(ctx context.Context, planData *PlanData, targets *macros.MacroTargets) []string
}

type Handler struct {
	repo      plansRepo
	targets   targetsProvider
	profiles  profilesProvider
	generator planGenerator
	corrector planCorrector
	metrics   *metrics.Manager
}

func NewHandler(
	repo plansRepo,
	targets targetsProvider,
	profiles profilesProvider,
	generator planGenerator,
	corrector planCorrector,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:      repo,
		targets:   targets,
		profiles:  profiles,
		generator: generator,
		corrector: corrector,
		metrics:   metricsManager,
	}
}

// HandleGenerate runs the whole pipeline: profile + targets in, generated
// and numerically corrected plan out, persisted as a new version. Any
// generation failure aborts the request without persisting anything, the
// client only ever sees a generic retry message.
func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mealplan.generate")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := handler.profiles.GetLatest(ctx, userID)
	if err != nil && !errors.Is(err, clients.ErrProfileNotFound) {
		log.Errorf("generate meal plan, get profile for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, clients.ErrProfileNotFound) {
		http.Error(w, "onboarding profile missing", http.StatusBadRequest)
		return
	}

	targets, err := handler.targets.GetCurrent(ctx, userID)
	if err != nil && !errors.Is(err, macros.ErrTargetsNotFound) {
		log.Errorf("generate meal plan, get targets for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, macros.ErrTargetsNotFound) {
		http.Error(w, "macro targets missing, calculate them first", http.StatusBadRequest)
		return
	}

	planData, err := handler.generator.Generate(ctx, profile, targets)
	if err != nil {
		handler.metrics.CounterGenerationFailures.WithLabelValues(generationFailureKind(err)).Inc()
		log.Errorf("generate meal plan for user %d: %s", userID, err)
		http.Error(w, "meal plan generation failed, please try again", http.StatusBadGateway)
		return
	}

	unmatched := handler.corrector.Correct(ctx, planData, targets)
	if len(unmatched) > 0 {
		log.Warnf("meal plan for user %d has %d unmatched ingredients", userID, len(unmatched))
	}

	plan, err := handler.repo.CreateNext(ctx, MealPlan{
		UserID:         userID,
		TargetsVersion: targets.Version,
		PlanData:       *planData,
		GroceryList:    CompileGroceryList(planData),
	})
	if errors.Is(err, ErrVersionConflict) {
		http.Error(w, "a plan was generated concurrently, please retry", http.StatusConflict)
		return
	} else if err != nil {
		log.Errorf("generate meal plan, store plan for user %d: %s", userID, err)
		http.Error(w, "failed to store meal plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal meal plan: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterMealPlansGenerated.Inc()
	log.Debugf("meal plan v%d created for user %d", plan.Version, userID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.mealplan.getCurrent")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	plan, err := handler.repo.GetCurrent(ctx, userID)
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		log.Errorf("get current meal plan for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, "meal plan not found", http.StatusNotFound)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal meal plan: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusOK)
}

func generationFailureKind(err error) string {
	switch {
	case errors.Is(err, ErrEmptyResponse):
		return "empty"
	case errors.Is(err, ErrTruncated):
		return "truncated"
	case errors.Is(err, ErrMalformed):
		return "malformed"
	case errors.Is(err, ErrWrongShape):
		return "wrong_shape"
	default:
		return "upstream"
	}
}

func userIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	userIDStr := vars["userId"]
	if userIDStr == "" {
		http.Error(w, "error, user id empty", http.StatusBadRequest)
		return 0, false
	}
	userID, err := strconv.Atoi(userIDStr)
	if err != nil {
		http.Error(w, "error, user id NaN", http.StatusBadRequest)
		return 0, false
	}
	return userID, true
}
