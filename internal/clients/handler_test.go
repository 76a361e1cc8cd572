package clients_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/2beens/leancoach/internal/clients"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestHandler_HandleSubmit(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprofilesRepo(ctrl)
	h := clients.NewHandler(repoMock)

	profile := validProfile()
	profile.DislikedFoods = []string{gofakeit.Vegetable(), gofakeit.Fruit()}
	profileJson, err := json.Marshal(profile)
	require.NoError(t, err)

	repoMock.EXPECT().
		CreateSnapshot(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, p clients.Profile) (*clients.Profile, error) {
			// the user id comes from the path, not the payload
			assert.Equal(t, 42, p.UserID)
			assert.Equal(t, profile.WeightKg, p.WeightKg)
			assert.Equal(t, profile.DislikedFoods, p.DislikedFoods)
			p.ID = 1
			p.Version = 3
			return &p, nil
		})

	req, err := http.NewRequest("POST", "/clients/42/profile", bytes.NewReader(profileJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"userId": "42"})

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, req)
	require.Equal(t, http.StatusCreated, rec.Code)

	var stored clients.Profile
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stored))
	assert.Equal(t, 3, stored.Version)
	assert.Equal(t, 42, stored.UserID)
}

func TestHandler_HandleSubmit_InvalidProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprofilesRepo(ctrl)
	h := clients.NewHandler(repoMock)

	profile := validProfile()
	profile.Age = 7
	profileJson, err := json.Marshal(profile)
	require.NoError(t, err)

	req, err := http.NewRequest("POST", "/clients/42/profile", bytes.NewReader(profileJson))
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")
	req = mux.SetURLVars(req, map[string]string{"userId": "42"})

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, req)
	require.Equal(t, http.StatusBadRequest, rec.Code)

	var validationErr clients.ValidationError
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &validationErr))
	require.Len(t, validationErr.FieldErrors, 1)
	assert.Equal(t, "age", validationErr.FieldErrors[0].Field)
}

func TestHandler_HandleSubmit_WrongContentType(t *testing.T) {
	ctrl := gomock.NewController(t)
	h := clients.NewHandler(NewMockprofilesRepo(ctrl))

	req, err := http.NewRequest("POST", "/clients/42/profile", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "42"})

	rec := httptest.NewRecorder()
	h.HandleSubmit(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandler_HandleGetLatest_NotFound(t *testing.T) {
	ctrl := gomock.NewController(t)
	repoMock := NewMockprofilesRepo(ctrl)
	h := clients.NewHandler(repoMock)

	repoMock.EXPECT().GetLatest(gomock.Any(), 42).Return(nil, clients.ErrProfileNotFound)

	req, err := http.NewRequest("GET", "/clients/42/profile", nil)
	require.NoError(t, err)
	req = mux.SetURLVars(req, map[string]string{"userId": "42"})

	rec := httptest.NewRecorder()
	h.HandleGetLatest(rec, req)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
