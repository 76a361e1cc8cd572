package nutrients

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/2beens/leancoach/internal/telemetry/tracing"

	log "github.com/sirupsen/logrus"
)

// FoodData Central nutrient numbers.
const (
	nutrientIDEnergy  = 1008
	nutrientIDProtein = 1003
	nutrientIDCarbs   = 1005
	nutrientIDFat     = 1004
)

const apiLookupTimeout = 3 * time.Second

var _ Tier = (*API)(nil)

// API looks up unknown ingredients in a FoodData Central style nutrient
// database. Outcomes, including "no such food", are written through the
// cache so each name goes over the wire at most once per process.
type API struct {
	baseURL    string
	apiKey     string
	cache      *Cache
	httpClient *http.Client
}

func NewAPI(baseURL, apiKey string, cache *Cache, httpClient *http.Client) *API {
	return &API{
		baseURL:    baseURL,
		apiKey:     apiKey,
		cache:      cache,
		httpClient: httpClient,
	}
}

func (a *API) Name() string {
	return "nutrient-api"
}

type foodSearchResponse struct {
	Foods []struct {
		Description   string `json:"description"`
		FoodNutrients []struct {
			NutrientID int     `json:"nutrientId"`
			Value      float64 `json:"value"`
		} `json:"foodNutrients"`
	} `json:"foods"`
}

func (a *API) Resolve(ctx context.Context, normalizedName string) (m *Macros, conclusive bool, err error) {
	ctx, span := tracing.GlobalTracer.Start(ctx, "nutrientApi.resolve")
	defer func() {
		tracing.EndSpanWithErrCheck(span, err)
	}()

	ctx, cancel := context.WithTimeout(ctx, apiLookupTimeout)
	defer cancel()

	searchURL := fmt.Sprintf(
		"%s/foods/search?query=%s&pageSize=1&api_key=%s",
		a.baseURL, url.QueryEscape(normalizedName), a.apiKey,
	)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return nil, false, err
	}

	resp, err := a.httpClient.Do(req)
	if err != nil {
		return nil, false, fmt.Errorf("http client do: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, false, fmt.Errorf("nutrient api status %d", resp.StatusCode)
	}

	respBytes, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, false, fmt.Errorf("read nutrient api response: %w", err)
	}

	var searchResp foodSearchResponse
	if err := json.Unmarshal(respBytes, &searchResp); err != nil {
		return nil, false, fmt.Errorf("unmarshal nutrient api response: %w", err)
	}

	if len(searchResp.Foods) == 0 {
		log.Debugf("nutrient api: nothing found for [%s]", normalizedName)
		a.cache.Set(normalizedName, nil)
		return nil, true, nil
	}

	// the top match is taken as-is, the search ranking knows the food
	// database better than we do
	food := searchResp.Foods[0]
	macros := &Macros{}
	for _, nutrient := range food.FoodNutrients {
		switch nutrient.NutrientID {
		case nutrientIDEnergy:
			macros.Calories = nutrient.Value
		case nutrientIDProtein:
			macros.Protein = nutrient.Value
		case nutrientIDCarbs:
			macros.Carbs = nutrient.Value
		case nutrientIDFat:
			macros.Fat = nutrient.Value
		}
	}

	log.Tracef("nutrient api: [%s] resolved via [%s]", normalizedName, food.Description)
	a.cache.Set(normalizedName, macros)

	return macros, true, nil
}
