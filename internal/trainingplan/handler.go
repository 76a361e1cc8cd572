package trainingplan

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/leancoach/internal/clients"
	"github.com/2beens/leancoach/internal/telemetry/metrics"
	"github.com/2beens/leancoach/internal/telemetry/tracing"
	"github.com/2beens/leancoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=trainingplan_mocks_test.go -package=trainingplan_test

type plansRepo interface {
	CreateNext(ctx context.Context, plan TrainingPlan) (*TrainingPlan, error)
	GetCurrent(ctx context.Context, userID int) (*TrainingPlan, error)
}

type profilesProvider interface {
	GetLatest(ctx context.Context, userID int) (*clients.Profile, error)
}

type planGenerator interface {
	Generate(ctx context.Context, profile *clients.Profile) (*PlanData, error)
}

type Handler struct {
	repo      plansRepo
	profiles  profilesProvider
	generator planGenerator
	metrics   *metrics.Manager
}

func NewHandler(
	repo plansRepo,
	profiles profilesProvider,
	generator planGenerator,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:      repo,
		profiles:  profiles,
		generator: generator,
		metrics:   metricsManager,
	}
}

func (handler *Handler) HandleGenerate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplan.generate")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := handler.profiles.GetLatest(ctx, userID)
	if err != nil && !errors.Is(err, clients.ErrProfileNotFound) {
		log.Errorf("generate training plan, get profile for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, clients.ErrProfileNotFound) {
		http.Error(w, "onboarding profile missing", http.StatusBadRequest)
		return
	}

	planData, err := handler.generator.Generate(ctx, profile)
	if err != nil {
		handler.metrics.CounterGenerationFailures.WithLabelValues(generationFailureKind(err)).Inc()
		log.Errorf("generate training plan for user %d: %s", userID, err)
		http.Error(w, "training plan generation failed, please try again", http.StatusBadGateway)
		return
	}

	plan, err := handler.repo.CreateNext(ctx, TrainingPlan{
		UserID:   userID,
		PlanData: *planData,
	})
	if err != nil {
		log.Errorf("generate training plan, store plan for user %d: %s", userID, err)
		http.Error(w, "failed to store training plan", http.StatusInternalServerError)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal training plan: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	handler.metrics.CounterTrainingPlans.Inc()
	log.Debugf("training plan v%d created for user %d", plan.Version, userID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, planJson, http.StatusCreated)
}

func (handler *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.trainingplan.getCurrent")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	plan, err := handler.repo.GetCurrent(ctx, userID)
	if err != nil && !errors.Is(err, ErrPlanNotFound) {
		log.Errorf("get current training plan for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrPlanNotFound) {
		http.Error(w, "training plan not found", http.StatusNotFound)
		return
	}

	planJson, err := json.Marshal(plan)
	if err != nil {
		log.Errorf("failed to marshal training plan: %s", err)
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
