package macros

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/leancoach/internal/clients"
	"github.com/2beens/leancoach/internal/telemetry/tracing"
	"github.com/2beens/leancoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=macros_mocks_test.go -package=macros_test

type targetsRepo interface {
	CreateNext(ctx context.Context, targets MacroTargets) (*MacroTargets, error)
	GetCurrent(ctx context.Context, userID int) (*MacroTargets, error)
	ListVersions(ctx context.Context, userID int) ([]MacroTargets, error)
}

type profilesRepo interface {
	GetLatest(ctx context.Context, userID int) (*clients.Profile, error)
}

type Handler struct {
	repo     targetsRepo
	profiles profilesRepo
}

func NewHandler(repo targetsRepo, profiles profilesRepo) *Handler {
	return &Handler{
		repo:     repo,
		profiles: profiles,
	}
}

type OverrideRequest struct {
	CalorieTarget int    `json:"calorieTarget"`
	ProteinG      int    `json:"proteinG"`
	FatG          int    `json:"fatG"`
	CarbsG        int    `json:"carbsG"`
	Explanation   string `json:"explanation"`
}

func (handler *Handler) HandleCalculate(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.macros.calculate")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := handler.profiles.GetLatest(ctx, userID)
	if err != nil && !errors.Is(err, clients.ErrProfileNotFound) {
		log.Errorf("calculate macros, get profile for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, clients.ErrProfileNotFound) {
		http.Error(w, "onboarding profile missing", http.StatusBadRequest)
		return
	}

	if err := profile.Validate(); err != nil {
		var validationErr *clients.ValidationError
		if errors.As(err, &validationErr) {
			writeValidationError(w, validationErr)
			return
		}
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return
	}

	targets, err := handler.repo.CreateNext(ctx, Targets(profile))
	if err != nil {
		log.Errorf("calculate macros, store targets for user %d: %s", userID, err)
		http.Error(w, "failed to store macro targets", http.StatusInternalServerError)
		return
	}

	targetsJson, err := json.Marshal(targets)
	if err != nil {
		log.Errorf("failed to marshal macro targets: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("macro targets v%d created for user %d [%s]", targets.Version, userID, targets.FormulaUsed)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, targetsJson, http.StatusCreated)
}

// HandleOverride lets a coach set macro targets directly, bypassing the
// calculator. The record is marked coach_override so dashboards can tell it
// apart from computed targets.
func (handler *Handler) HandleOverride(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.macros.override")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var overrideReq OverrideRequest
	if err := json.NewDecoder(r.Body).Decode(&overrideReq); err != nil {
		log.Tracef("macro override, unmarshal json params: %s", err)
		http.Error(w, "macro override failed", http.StatusBadRequest)
		return
	}

	if overrideReq.CalorieTarget <= 0 || overrideReq.ProteinG <= 0 || overrideReq.FatG <= 0 || overrideReq.CarbsG <= 0 {
		http.Error(w, "error, macro values must be positive", http.StatusBadRequest)
		return
	}

	targets, err := handler.repo.CreateNext(ctx, MacroTargets{
		UserID:        userID,
		CalorieTarget: overrideReq.CalorieTarget,
		ProteinG:      overrideReq.ProteinG,
		FatG:          overrideReq.FatG,
		CarbsG:        overrideReq.CarbsG,
		FormulaUsed:   FormulaCoachOverride,
		Explanation:   overrideReq.Explanation,
	})
	if err != nil {
		log.Errorf("macro override, store targets for user %d: %s", userID, err)
		http.Error(w, "failed to store macro targets", http.StatusInternalServerError)
		return
	}

	targetsJson, err := json.Marshal(targets)
	if err != nil {
		log.Errorf("failed to marshal macro targets: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, targetsJson, http.StatusCreated)
}

func (handler *Handler) HandleGetCurrent(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.macros.getCurrent")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	targets, err := handler.repo.GetCurrent(ctx, userID)
	if err != nil && !errors.Is(err, ErrTargetsNotFound) {
		log.Errorf("get current macro targets for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrTargetsNotFound) {
		http.Error(w, "macro targets not found", http.StatusNotFound)
		return
	}

	targetsJson, err := json.Marshal(targets)
	if err != nil {
		log.Errorf("failed to marshal macro targets: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, targetsJson, http.StatusOK)
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

func writeValidationError(w http.ResponseWriter, validationErr *clients.ValidationError) {
	errJson, err := json.Marshal(validationErr)
	if err != nil {
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, errJson, http.StatusBadRequest)
}
