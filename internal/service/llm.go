package service

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/vitalplan/backend/config"
	"github.com/vitalplan/backend/internal/models"
	"github.com/vitalplan/backend/internal/planner"
)

const defaultGenerationTimeout = 30 * time.Second

// LLMService is the adapter for the external content-generation API
// (DeepSeek-style chat completions with JSON output). It performs the
// outbound call and parses the response; it never mutates persistent
// state and never retries.
type LLMService struct {
	apiKey string
	apiURL string
	client *http.Client
}

// NewLLMService creates a new LLMService instance
func NewLLMService(cfg *config.Config) (*LLMService, error) {
	if cfg.GenerationAPIKey == "" {
		return nil, errors.New("generation API key must be configured")
	}

	timeout := cfg.GenerationTimeout
	if timeout <= 0 {
		timeout = defaultGenerationTimeout
	}

	return &LLMService{
		apiKey: cfg.GenerationAPIKey,
		apiURL: cfg.GenerationAPIURL,
		client: &http.Client{Timeout: timeout},
	}, nil
}

// Message represents a message in the chat
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Request represents a chat-completion request
type Request struct {
	Model          string            `json:"model"`
	Messages       []Message         `json:"messages"`
	ResponseFormat map[string]string `json:"response_format"`
	Temperature    float64           `json:"temperature,omitempty"`
}

const mealPlanSystemPrompt = `You are a professional chef and nutritionist. Please provide your response in JSON format with the following structure:
{
    "meal_plan": [
        {
            "date": "2024-01-01",
            "meals": [
                {
                    "name": "Meal name",
                    "meal_type": "breakfast",
                    "ingredients": [
                        {"name": "flour", "quantity": 2, "unit": "cups"}
                    ],
                    "calories": 350,
                    "protein": 15,
                    "carbs": 45,
                    "fat": 12
                }
            ]
        }
    ]
}

Dates must use YYYY-MM-DD format. Ingredient quantities must be numbers.
The calories, protein, carbs, and fat fields must be numbers, not strings.`

// GenerateMealPlan asks the generation service for a seven-day meal plan
// honoring the stored preferences. Absent numeric targets are passed as
// unconstrained. The returned plan is unvalidated; callers normalize it.
func (s *LLMService) GenerateMealPlan(ctx context.Context, prefs []models.MealPreference) (*planner.RawPlan, error) {
	prompt := mealPlanPrompt(prefs)

	content, err := s.complete(ctx, mealPlanSystemPrompt, prompt)
	if err != nil {
		return nil, err
	}

	var raw planner.RawPlan
	if err := json.Unmarshal([]byte(content), &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err)
	}

	return &raw, nil
}

func mealPlanPrompt(prefs []models.MealPreference) string {
	var b strings.Builder
	b.WriteString("Generate a 7-day meal plan.")

	for _, p := range prefs {
		fmt.Fprintf(&b, "\nFor %s", p.MealType)
		if p.PreferredTime != "" {
			fmt.Fprintf(&b, " (around %s)", p.PreferredTime)
		}
		b.WriteString(":")
		if p.CaloriesTarget > 0 {
			fmt.Fprintf(&b, " target %d calories,", p.CaloriesTarget)
		}
		if p.ProteinTarget > 0 {
			fmt.Fprintf(&b, " %dg protein,", p.ProteinTarget)
		}
		if p.CarbsTarget > 0 {
			fmt.Fprintf(&b, " %dg carbs,", p.CarbsTarget)
		}
		if p.FatTarget > 0 {
			fmt.Fprintf(&b, " %dg fat,", p.FatTarget)
		}
		if p.PreferredCuisine != "" && p.PreferredCuisine != "any" {
			fmt.Fprintf(&b, " prefer %s cuisine,", p.PreferredCuisine)
		}
		if len(p.ExcludedIngredients) > 0 {
			fmt.Fprintf(&b, " avoid: %s,", strings.Join(p.ExcludedIngredients, ", "))
		}
		if len(p.AvailableIngredients) > 0 {
			fmt.Fprintf(&b, " prefer using: %s,", strings.Join(p.AvailableIngredients, ", "))
		}
	}

	return strings.TrimSuffix(b.String(), ",")
}

// WellnessPlanData is the meal/workout plan pair generated from a
// wellness profile.
type WellnessPlanData struct {
	MealPlan    json.RawMessage `json:"meal_plan"`
	WorkoutPlan json.RawMessage `json:"workout_plan"`
}

// GenerateWellnessPlan produces a combined meal and workout outline from
// the questionnaire answers.
func (s *LLMService) GenerateWellnessPlan(ctx context.Context, profile *models.WellnessProfile) (*WellnessPlanData, error) {
	prompt := fmt.Sprintf(
		"Create a wellness plan for a %d year old, %.0f cm tall, %.0f kg. Goals: %s. Dietary restrictions: %s. Activity level: %s.",
		profile.Age, profile.Height, profile.Weight,
		profile.Goals, profile.DietaryRestrictions, profile.ActivityLevel)

	system := `You are a certified wellness coach. Respond in JSON with the structure {"meal_plan": {...}, "workout_plan": {...}} where meal_plan groups suggestions by meal and workout_plan groups exercises by day.`

	content, err := s.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var plan WellnessPlanData
	if err := json.Unmarshal([]byte(content), &plan); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err)
	}

	return &plan, nil
}

// TipData is a generated daily wellness tip.
type TipData struct {
	Tip      string `json:"tip"`
	Quote    string `json:"quote"`
	Category string `json:"category"`
}

// GenerateTip produces a daily wellness tip tailored to the profile.
func (s *LLMService) GenerateTip(ctx context.Context, profile *models.WellnessProfile) (*TipData, error) {
	prompt := fmt.Sprintf(
		"Give one wellness tip for someone whose goals are %q with activity level %q.",
		profile.Goals, profile.ActivityLevel)

	system := `You are a wellness coach. Respond only with JSON like {"tip": "...", "quote": "...", "category": "nutrition|fitness|mindfulness"}`

	content, err := s.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var tip TipData
	if err := json.Unmarshal([]byte(content), &tip); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err)
	}

	return &tip, nil
}

// RecipeSuggestion is one recipe generated from available ingredients.
type RecipeSuggestion struct {
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Ingredients  []string `json:"ingredients"`
	Instructions []string `json:"instructions"`
	Calories     float64  `json:"calories"`
	Protein      float64  `json:"protein"`
	Carbs        float64  `json:"carbs"`
	Fat          float64  `json:"fat"`
}

// RecipesFromIngredients suggests recipes using the given ingredients,
// respecting the profile's dietary restrictions when available.
func (s *LLMService) RecipesFromIngredients(ctx context.Context, ingredients []string, profile *models.WellnessProfile) ([]RecipeSuggestion, error) {
	prompt := "Suggest up to 3 recipes using: " + strings.Join(ingredients, ", ")
	if profile != nil && profile.DietaryRestrictions != "" {
		prompt += ". Dietary restrictions: " + profile.DietaryRestrictions
	}

	system := `You are a professional chef. Respond in JSON with the structure {"recipes": [{"name": "...", "description": "...", "ingredients": ["..."], "instructions": ["..."], "calories": 0, "protein": 0, "carbs": 0, "fat": 0}]}`

	content, err := s.complete(ctx, system, prompt)
	if err != nil {
		return nil, err
	}

	var wrapper struct {
		Recipes []RecipeSuggestion `json:"recipes"`
	}
	if err := json.Unmarshal([]byte(content), &wrapper); err != nil {
		return nil, fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err)
	}

	return wrapper.Recipes, nil
}

// complete performs one chat-completion round trip and returns the
// assistant message content. Failures map onto the generation error
// taxonomy: transport problems and 5xx responses are
// ErrServiceUnavailable, 402/429 are ErrQuotaExceeded, and undecodable
// payloads are ErrMalformedResponse.
func (s *LLMService) complete(ctx context.Context, system, prompt string) (string, error) {
	reqBody := Request{
		Model: "deepseek-chat",
		Messages: []Message{
			{Role: "system", Content: system},
			{Role: "user", Content: prompt},
		},
		ResponseFormat: map[string]string{"type": "json_object"},
		Temperature:    0.9,
	}

	jsonData, err := json.Marshal(reqBody)
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.apiURL, bytes.NewBuffer(jsonData))
	if err != nil {
		return "", fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+s.apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		if ctx.Err() != nil {
			return "", fmt.Errorf("%w: %v", planner.ErrServiceUnavailable, ctx.Err())
		}
		return "", fmt.Errorf("%w: %v", planner.ErrServiceUnavailable, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("%w: %v", planner.ErrServiceUnavailable, err)
	}

	switch {
	case resp.StatusCode == http.StatusPaymentRequired || resp.StatusCode == http.StatusTooManyRequests:
		return "", fmt.Errorf("%w: status %d", planner.ErrQuotaExceeded, resp.StatusCode)
	case resp.StatusCode != http.StatusOK:
		return "", fmt.Errorf("%w: status %d: %s", planner.ErrServiceUnavailable, resp.StatusCode, body)
	}

	var result struct {
		Choices []struct {
			Message struct {
				Content string `json:"content"`
			} `json:"message"`
		} `json:"choices"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return "", fmt.Errorf("%w: %v", planner.ErrMalformedResponse, err)
	}
	if len(result.Choices) == 0 {
		return "", fmt.Errorf("%w: no choices in response", planner.ErrMalformedResponse)
	}

	return result.Choices[0].Message.Content, nil
}
