package clients

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/2beens/leancoach/internal/telemetry/tracing"
	"github.com/2beens/leancoach/pkg"

	"github.com/gorilla/mux"
	log "github.com/sirupsen/logrus"
)

//go:generate mockgen -source=$GOFILE -destination=clients_mocks_test.go -package=clients_test

type profilesRepo interface {
	CreateSnapshot(ctx context.Context, profile Profile) (*Profile, error)
	GetLatest(ctx context.Context, userID int) (*Profile, error)
}

type Handler struct {
	repo profilesRepo
}

func NewHandler(repo profilesRepo) *Handler {
	return &Handler{
		repo: repo,
	}
}

// HandleSubmit stores a new onboarding snapshot version. Profiles are
// append-only, a resubmission creates the next version instead of
// touching the previous one.
func (handler *Handler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.submit")
	defer span.End()

	if r.Header.Get("Content-Type") != "application/json" {
		http.Error(w, "invalid content type", http.StatusBadRequest)
		return
	}

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	var profile Profile
	if err := json.NewDecoder(r.Body).Decode(&profile); err != nil {
		log.Tracef("submit profile, unmarshal json params: %s", err)
		http.Error(w, "profile submission failed", http.StatusBadRequest)
		return
	}
	profile.UserID = userID

	if err := profile.Validate(); err != nil {
		var validationErr *ValidationError
		if errors.As(err, &validationErr) {
			errJson, marshalErr := json.Marshal(validationErr)
			if marshalErr != nil {
				http.Error(w, "invalid profile", http.StatusBadRequest)
				return
			}
			pkg.WriteResponseBytes(w, pkg.ContentType.JSON, errJson, http.StatusBadRequest)
			return
		}
		http.Error(w, "invalid profile", http.StatusBadRequest)
		return
	}

	stored, err := handler.repo.CreateSnapshot(ctx, profile)
	if err != nil {
		log.Errorf("submit profile, store snapshot for user %d: %s", userID, err)
		http.Error(w, "failed to store profile", http.StatusInternalServerError)
		return
	}

	profileJson, err := json.Marshal(stored)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	log.Debugf("profile v%d created for user %d", stored.Version, userID)
	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusCreated)
}

func (handler *Handler) HandleGetLatest(w http.ResponseWriter, r *http.Request) {
	ctx, span := tracing.GlobalTracer.Start(r.Context(), "handler.clients.getLatest")
	defer span.End()

	userID, ok := userIDFromRequest(w, r)
	if !ok {
		return
	}

	profile, err := handler.repo.GetLatest(ctx, userID)
	if err != nil && !errors.Is(err, ErrProfileNotFound) {
		log.Errorf("get latest profile for user %d: %s", userID, err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	} else if errors.Is(err, ErrProfileNotFound) {
		http.Error(w, "profile not found", http.StatusNotFound)
		return
	}

	profileJson, err := json.Marshal(profile)
	if err != nil {
		log.Errorf("failed to marshal profile: %s", err)
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}

	pkg.WriteResponseBytes(w, pkg.ContentType.JSON, profileJson, http.StatusOK)
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
