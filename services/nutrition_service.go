package services

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"os"
	"time"
)

const usdaBaseURL = "https://api.nal.usda.gov/fdc/v1"

// NutritionService proxies the USDA FoodData Central API.
type NutritionService struct {
	apiKey string
	client *http.Client
}

func NewNutritionService() *NutritionService {
	return &NutritionService{
		apiKey: os.Getenv("USDA_API_KEY"),
		client: &http.Client{Timeout: 10 * time.Second},
	}
}

// SearchFoods runs a free-text food search and returns the upstream JSON.
func (s *NutritionService) SearchFoods(query string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/search?api_key=%s&generalSearchInput=%s",
		usdaBaseURL, s.apiKey, url.QueryEscape(query))
	return s.get(u)
}

// FoodDetail fetches full nutrient data for a single FDC id.
func (s *NutritionService) FoodDetail(fdcID string) (json.RawMessage, error) {
	u := fmt.Sprintf("%s/%s?api_key=%s", usdaBaseURL, url.PathEscape(fdcID), s.apiKey)
	return s.get(u)
}

func (s *NutritionService) get(u string) (json.RawMessage, error) {
	resp, err := s.client.Get(u)
	if err != nil {
		return nil, fmt.Errorf("failed to call USDA API: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read USDA response: %w", err)
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("USDA API error %d: %s", resp.StatusCode, string(body))
	}
	return json.RawMessage(body), nil
}
