package checkin

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/2beens/leancoach/internal/clients"
	"github.com/2beens/leancoach/internal/nutrition/macros"
	"github.com/2beens/leancoach/internal/telemetry/metrics"
	"github.com/2beens/leancoach/internal/telemetry/tracing"
	"github.com/2beens/leancoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=checkin_mocks_test.go -package=checkin_test

type checkInsRepo interface {
	CreateCheckIn(ctx context.Context, checkIn CheckIn) (*CheckIn, error)
	GetLastCheckIn(ctx context.Context, userID int) (*CheckIn, error)
	ListCheckIns(ctx context.Context, userID int) ([]CheckIn, error)
	CreatePendingAdjustment(ctx context.Context, adjustment PendingMacroAdjustment) (*PendingMacroAdjustment, error)
	GetPendingAdjustment(ctx context.Context, userID int) (*PendingMacroAdjustment, error)
	ResolveAdjustment(ctx context.Context, adjustmentID int, status AdjustmentStatus) (*PendingMacroAdjustment, error)
	ListClientStatuses(ctx context.Context) ([]ClientCheckInStatus, error)
}

type targetsRepo interface {
	GetCurrent(ctx context.Context, userID int) (*macros.MacroTargets, error)
	CreateNext(ctx context.Context, targets macros.MacroTargets) (*macros.MacroTargets, error)
}

type profilesRepo interface {
	GetLatest(ctx context.Context, userID int) (*clients.Profile, error)
}

type Handler struct {
	repo     checkInsRepo
	targets  targetsRepo
	profiles profilesRepo
	metrics  *metrics.Manager
	now      func() time.Time
}

func NewHandler(
	repo checkInsRepo,
	targets targetsRepo,
	profiles profilesRepo,
	metricsManager *metrics.Manager,
) *Handler {
	return &Handler{
		repo:     repo,
		targets:  targets,
		profiles: profiles,
		metrics:  metricsManager,
		now:      time.Now,
	}
}

type SubmitRequest struct {
	WeightKg        float64  `json:"weightKg"`
	WaistCm         float64  `json:"waistCm,omitempty"`
	AdherenceRating int      `json:"adherenceRating"`
	StepsAvg        int      `json:"stepsAvg"`
	SleepAvg        float64  `json:"sleepAvg"`
	Notes           string   `json:"notes"`
	ProgressPhotos  []string `json:"progressPhotos"`
}

func (req *SubmitRequest) validate() *clients.ValidationError {
	var fieldErrors []clients.FieldError
	if req.WeightKg < 30 || req.WeightKg > 300 {
		fieldErrors = append(fieldErrors, clients.FieldError{Field: "weightKg", Message: "must be between 30 and 300"})
	}
	if req.AdherenceRating < 1 || req.AdherenceRating > 10 {
		fieldErrors = append(fieldErrors, clients.FieldError{Field: "adherenceRating", Message: "must be between 1 and 10"})
	}
	if req.WaistCm < 0 {
		fieldErrors = append(fieldErrors, clients.FieldError{Field: "waistCm", Message: "must not be negative"})
	}
	if len(fieldErrors) > 0 {
		return &clients.ValidationError{FieldErrors: fieldErrors}
	}
	return nil
}

type SubmitResponse struct {
	CheckIn    *CheckIn                `json:"checkIn"`
	Adjustment *PendingMacroAdjustment `json:"adjustment,omitempty"`
}

// HandleSubmit accepts a weekly check-in. The very first check-in is
// accepted at any time, later ones only inside the current window and
// only once per window. A weight change big enough to move the calorie
// target raises a pending macro adjustment for the coach.
func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.submit")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var submitReq SubmitRequest
	if err := json.NewDecoder(r.Body).Decode(&submitReq); err != nil {
		log.Tracef("submit check-in, unmarshal json params: %s", err)
		http.Error(w, "check-in submission failed", http.StatusBadRequest)
		return
	}

	if validationErr := submitReq.validate(); validationErr != nil {
		writeValidationError(w, validationErr)
		return
	}

	now := handler.now()
	lastCheckIn, err := handler.repo.GetLastCheckIn(ctx, userID)
	if err != nil && !errors.Is(err, ErrCheckInNotFound) {
		log.Errorf("submit check-in, get last for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	firstEver := errors.Is(err, ErrCheckInNotFound)
	if !firstEver {
		if HasCheckedInThisWeek(lastCheckIn.CreatedAt, now) {
			http.Error(w, "already checked in this week", http.StatusConflict)
			return
		}
		if !IsWithinCheckInWindow(now) {
			http.Error(w, "check-in window is closed", http.StatusBadRequest)
			return
		}
	}

	checkIn, err := handler.repo.CreateCheckIn(ctx, CheckIn{
		UserID:          userID,
		WeightKg:        submitReq.WeightKg,
		WaistCm:         submitReq.WaistCm,
		AdherenceRating: submitReq.AdherenceRating,
		StepsAvg:        submitReq.StepsAvg,
		SleepAvg:        submitReq.SleepAvg,
		Notes:           submitReq.Notes,
		ProgressPhotos:  submitReq.ProgressPhotos,
	})
	if err != nil {
		log.Errorf("submit check-in, store for user %d: %s", userID, err)
		http.Error(w, "failed to store check-in", http.StatusInternalServerError)
		return
	}
	handler.metrics.CounterCheckIns.Inc()

	adjustment, err := handler.maybeProposeAdjustment(ctx, userID, checkIn)
	if err != nil {
		// the check-in itself is stored, a failed proposal must not undo it
		log.Errorf("submit check-in, propose adjustment for user %d: %s", userID, err)
	}

	respJson, err := json.Marshal(SubmitResponse{CheckIn: checkIn, Adjustment: adjustment})
	if err != nil {
		log.Errorf("failed to marshal check-in response: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("check-in week %d created for user %d", checkIn.WeekNumber, userID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusCreated)
}

// maybeProposeAdjustment recalculates the calorie target with the new
// weight and raises a pending adjustment when it moved by strictly more
// than the threshold.
func (handler *Handler) maybeProposeAdjustment(ctx context.Context, userID int, checkIn *CheckIn) (*PendingMacroAdjustment, error) {
	profile, err := handler.profiles.GetLatest(ctx, userID)
	if errors.Is(err, clients.ErrProfileNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	currentTargets, err := handler.targets.GetCurrent(ctx, userID)
	if errors.Is(err, macros.ErrTargetsNotFound) {
		return nil, nil
	} else if err != nil {
		return nil, err
	}

	updatedProfile := *profile
	updatedProfile.WeightKg = checkIn.WeightKg
	proposed := macros.Targets(&updatedProfile)

	diff := proposed.CalorieTarget - currentTargets.CalorieTarget
	if diff < 0 {
		diff = -diff
	}
	if diff <= adjustmentThresholdKcal {
		return nil, nil
	}

	adjustment, err := handler.repo.CreatePendingAdjustment(ctx, PendingMacroAdjustment{
		UserID:           userID,
		CheckInID:        checkIn.ID,
		CurrentCalories:  currentTargets.CalorieTarget,
		CurrentProteinG:  currentTargets.ProteinG,
		CurrentFatG:      currentTargets.FatG,
		CurrentCarbsG:    currentTargets.CarbsG,
		ProposedCalories: proposed.CalorieTarget,
		ProposedProteinG: proposed.ProteinG,
		ProposedFatG:     proposed.FatG,
		ProposedCarbsG:   proposed.CarbsG,
	})
	if err != nil {
		return nil, err
	}

	handler.metrics.CounterMacroAdjustments.Inc()
	log.Debugf(
		"pending macro adjustment for user %d: %d -> %d kcal",
		userID, currentTargets.CalorieTarget, proposed.CalorieTarget,
	)
	return adjustment, nil
}

// HandleApproveAdjustment marks the adjustment approved and publishes the
// proposed values as a new macro targets version.
func (handler *Handler) HandleApproveAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.approveAdjustment")
	defer span.End()

	adjustmentID, ok := adjustmentIDFromRequest(w, r)
	if !ok {
		return
	}

	adjustment, err := handler.repo.ResolveAdjustment(ctx, adjustmentID, AdjustmentApproved)
	if err != nil && !errors.Is(err, ErrAdjustmentNotFound) {
		log.Errorf("approve adjustment %d: %s", adjustmentID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrAdjustmentNotFound) {
		http.Error(w, "pending adjustment not found", http.StatusNotFound)
		return
	}

	if _, err := handler.targets.CreateNext(ctx, macros.MacroTargets{
		UserID:        adjustment.UserID,
		CalorieTarget: adjustment.ProposedCalories,
		ProteinG:      adjustment.ProposedProteinG,
		FatG:          adjustment.ProposedFatG,
		CarbsG:        adjustment.ProposedCarbsG,
		FormulaUsed:   macros.FormulaCoachOverride,
		Explanation:   "approved weekly check-in macro adjustment",
	}); err != nil {
		log.Errorf("approve adjustment %d, store new targets: %s", adjustmentID, err)
		http.Error(w, "failed to store macro targets", http.StatusInternalServerError)
		return
	}

	adjustmentJson, err := json.Marshal(adjustment)
	if err != nil {
		log.Errorf("failed to marshal adjustment: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, adjustmentJson, http.StatusOK)
}

func (handler *Handler) HandleDismissAdjustment(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.dismissAdjustment")
	defer span.End()

	adjustmentID, ok := adjustmentIDFromRequest(w, r)
	if !ok {
		return
	}

	adjustment, err := handler.repo.ResolveAdjustment(ctx, adjustmentID, AdjustmentDismissed)
	if err != nil && !errors.Is(err, ErrAdjustmentNotFound) {
		log.Errorf("dismiss adjustment %d: %s", adjustmentID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrAdjustmentNotFound) {
		http.Error(w, "pending adjustment not found", http.StatusNotFound)
		return
	}

	adjustmentJson, err := json.Marshal(adjustment)
	if err != nil {
		log.Errorf("failed to marshal adjustment: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, adjustmentJson, http.StatusOK)
}

func (handler *Handler) HandleList(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.list")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	checkIns, err := handler.repo.ListCheckIns(ctx, userID)
	if err != nil {
		log.Errorf("list check-ins for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	checkInsJson, err := json.Marshal(checkIns)
	if err != nil {
		log.Errorf("failed to marshal check-ins: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, checkInsJson, http.StatusOK)
}

func (handler *Handler) HandleWindow(w http.ResponseWriter, r *http.Request) {
	_, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.window")
	defer span.End()

	now := handler.now()
	window := CurrentWindow(now)
	resp := struct {
		Window   Window `json:"window"`
		IsOpen   bool   `json:"isOpen"`
		ServerTs string `json:"serverTs"`
	}{
		Window:   window,
		IsOpen:   window.Contains(now),
		ServerTs: now.UTC().Format(time.RFC3339),
	}

	respJson, err := json.Marshal(resp)
	if err != nil {
		log.Errorf("failed to marshal window: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, respJson, http.StatusOK)
}

// HandleListOverdue returns the clients whose most recently closed
// window passed without a check-in.
func (handler *Handler) HandleListOverdue(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.checkin.listOverdue")
	defer span.End()

	statuses, err := handler.repo.ListClientStatuses(ctx)
	if err != nil {
		log.Errorf("list client check-in statuses: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	now := handler.now()
	overdue := make([]ClientCheckInStatus, 0)
	for _, status := range statuses {
		lastCheckIn := time.Time{}
		if status.LastCheckInAt != nil {
			lastCheckIn = *status.LastCheckInAt
		}
		if IsClientOverdue(lastCheckIn, status.OnboardingCompleted, now) {
			overdue = append(overdue, status)
		}
	}

	overdueJson, err := json.Marshal(overdue)
	if err != nil {
		log.Errorf("failed to marshal overdue clients: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, overdueJson, http.StatusOK)
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

func adjustmentIDFromRequest(w http.ResponseWriter, r *http.Request) (int, bool) {
	vars := mux.Vars(r)
	idStr := vars["adjustmentId"]
	if idStr == "" {
		http.Error(w, "error, adjustment id empty", http.StatusBadRequest)
		return 0, false
	}
	adjustmentID, err := strconv.Atoi(idStr)
	if err != nil {
		http.Error(w, "error, adjustment id NaN", http.StatusBadRequest)
		return 0, false
	}
	return adjustmentID, true
}

func writeValidationError(w http.ResponseWriter, validationErr *clients.ValidationError) {
	errJson, err := json.Marshal(validationErr)
	if err != nil {
		http.Error(w, "invalid check-in", http.StatusBadRequest)
		return
	}
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, errJson, http.StatusBadRequest)
}
