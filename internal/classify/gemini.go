package classify

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/campus-kit/triage-service/internal/config"
	"github.com/campus-kit/triage-service/internal/domain"
	"github.com/campus-kit/triage-service/internal/observability"
)

// GeminiClassifier calls the Gemini generateContent API with a JSON
// response schema and maps the structured answer to a Suggestion.
type GeminiClassifier struct {
	apiKey  string
	model   string
	baseURL string
	client  *http.Client
	logger  *zap.Logger
	metrics *observability.Metrics
}

// NewGeminiClassifier constructs a classifier from configuration.
func NewGeminiClassifier(cfg config.ClassifierConfig, logger *zap.Logger, metrics *observability.Metrics) *GeminiClassifier {
	return &GeminiClassifier{
		apiKey:  cfg.APIKey,
		model:   cfg.Model,
		baseURL: cfg.BaseURL,
		client:  &http.Client{Timeout: cfg.Timeout()},
		logger:  logger,
		metrics: metrics,
	}
}

type generateContentRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMimeType string         `json:"responseMimeType"`
	ResponseSchema   map[string]any `json:"responseSchema"`
}

type generateContentResponse struct {
	Candidates []struct {
		Content struct {
			Parts []part `json:"parts"`
		} `json:"content"`
	} `json:"candidates"`
}

var responseSchema = map[string]any{
	"type": "OBJECT",
	"properties": map[string]any{
		"category": map[string]any{
			"type":        "STRING",
			"description": "E.g., Infrastructure, Academics, Finance, Faculty, Hygiene",
		},
		"priority": map[string]any{
			"type":        "STRING",
			"enum":        []string{"Low", "Medium", "High", "Urgent"},
			"description": "The priority level of the issue.",
		},
		"suggestedDepartment": map[string]any{
			"type":        "STRING",
			"description": "Which college department should handle this? E.g., Maintenance, Registrar, IT Department",
		},
	},
	"required": []string{"category", "priority", "suggestedDepartment"},
}

// Classify asks the external model to triage the description. It never
// returns an error: an unconfigured key or any call failure yields the
// corresponding fallback suggestion instead.
func (g *GeminiClassifier) Classify(ctx context.Context, description string) Suggestion {
	if g.apiKey == "" {
		g.logger.Warn("classifier API key not configured, using default classification")
		g.metrics.RecordClassification("unconfigured")
		return unconfiguredSuggestion
	}

	suggestion, err := g.call(ctx, description)
	if err != nil {
		g.logger.Error("classification failed", zap.Error(err))
		g.metrics.RecordClassification("fallback")
		return failureSuggestion
	}
	g.metrics.RecordClassification("classified")
	return suggestion
}

func (g *GeminiClassifier) call(ctx context.Context, description string) (Suggestion, error) {
	payload := generateContentRequest{
		Contents: []content{{
			Parts: []part{{
				Text: fmt.Sprintf("Analyze this college complaint and classify it: %q", description),
			}},
		}},
		GenerationConfig: generationConfig{
			ResponseMimeType: "application/json",
			ResponseSchema:   responseSchema,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return Suggestion{}, err
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent", g.baseURL, g.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return Suggestion{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", g.apiKey)

	start := time.Now()
	resp, err := g.client.Do(req)
	if err != nil {
		return Suggestion{}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode >= 300 {
		return Suggestion{}, fmt.Errorf("classifier returned %s", resp.Status)
	}

	var decoded generateContentResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return Suggestion{}, err
	}
	text := candidateText(decoded)
	if text == "" {
		return Suggestion{}, fmt.Errorf("classifier response contained no candidate text")
	}

	var raw struct {
		Category            string `json:"category"`
		Priority            string `json:"priority"`
		SuggestedDepartment string `json:"suggestedDepartment"`
	}
	if err := json.Unmarshal([]byte(text), &raw); err != nil {
		return Suggestion{}, fmt.Errorf("unparseable classifier payload: %w", err)
	}

	g.logger.Debug("classification succeeded",
		zap.String("category", raw.Category),
		zap.String("priority", raw.Priority),
		zap.Duration("elapsed", time.Since(start)))

	return normalize(raw.Category, raw.Priority, raw.SuggestedDepartment), nil
}

func candidateText(resp generateContentResponse) string {
	for _, cand := range resp.Candidates {
		for _, p := range cand.Content.Parts {
			if p.Text != "" {
				return p.Text
			}
		}
	}
	return ""
}

// normalize applies per-field defaults for missing or malformed values.
// A priority outside the closed enum counts as malformed.
func normalize(category, priority, department string) Suggestion {
	suggestion := Suggestion{
		Category:            category,
		Priority:            domain.Priority(priority),
		SuggestedDepartment: department,
	}
	if suggestion.Category == "" {
		suggestion.Category = defaultCategory
	}
	if !suggestion.Priority.Valid() {
		suggestion.Priority = domain.PriorityMedium
	}
	if suggestion.SuggestedDepartment == "" {
		suggestion.SuggestedDepartment = defaultDepartment
	}
	return suggestion
}
