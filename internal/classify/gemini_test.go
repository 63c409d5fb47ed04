package classify

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"go.uber.org/zap"

	"github.com/campus-kit/triage-service/internal/config"
	"github.com/campus-kit/triage-service/internal/domain"
	"github.com/campus-kit/triage-service/internal/observability"
)

func newTestClassifier(t *testing.T, apiKey, baseURL string) *GeminiClassifier {
	t.Helper()
	return NewGeminiClassifier(config.ClassifierConfig{
		APIKey:         apiKey,
		Model:          "test-model",
		BaseURL:        baseURL,
		TimeoutSeconds: 2,
	}, zap.NewNop(), observability.NewMetrics())
}

// classifierServer answers generateContent with the given inner JSON text.
func classifierServer(t *testing.T, innerJSON string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("unexpected method %s", r.Method)
		}
		resp := map[string]any{
			"candidates": []map[string]any{{
				"content": map[string]any{
					"parts": []map[string]any{{"text": innerJSON}},
				},
			}},
		}
		_ = json.NewEncoder(w).Encode(resp)
	}))
}

func TestClassifySuccess(t *testing.T) {
	srv := classifierServer(t, `{"category":"Infrastructure","priority":"High","suggestedDepartment":"Maintenance"}`)
	defer srv.Close()

	got := newTestClassifier(t, "key", srv.URL).Classify(context.Background(), "broken projector")
	want := Suggestion{Category: "Infrastructure", Priority: domain.PriorityHigh, SuggestedDepartment: "Maintenance"}
	if got != want {
		t.Errorf("Classify() = %+v, want %+v", got, want)
	}
}

func TestClassifyFieldFallbacks(t *testing.T) {
	tests := []struct {
		name  string
		inner string
		want  Suggestion
	}{
		{
			name:  "missing category",
			inner: `{"priority":"Low","suggestedDepartment":"Registrar"}`,
			want:  Suggestion{Category: "General", Priority: domain.PriorityLow, SuggestedDepartment: "Registrar"},
		},
		{
			name:  "unrecognized priority",
			inner: `{"category":"Academics","priority":"Critical","suggestedDepartment":"Registrar"}`,
			want:  Suggestion{Category: "Academics", Priority: domain.PriorityMedium, SuggestedDepartment: "Registrar"},
		},
		{
			name:  "missing department",
			inner: `{"category":"Academics","priority":"Urgent"}`,
			want:  Suggestion{Category: "Academics", Priority: domain.PriorityUrgent, SuggestedDepartment: "General Administration"},
		},
		{
			name:  "all fields empty",
			inner: `{}`,
			want:  Suggestion{Category: "General", Priority: domain.PriorityMedium, SuggestedDepartment: "General Administration"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := classifierServer(t, tt.inner)
			defer srv.Close()

			got := newTestClassifier(t, "key", srv.URL).Classify(context.Background(), "something is wrong")
			if got != tt.want {
				t.Errorf("Classify() = %+v, want %+v", got, tt.want)
			}
		})
	}
}

func TestClassifyNoAPIKey(t *testing.T) {
	got := newTestClassifier(t, "", "http://127.0.0.1:1").Classify(context.Background(), "broken projector")
	if got != unconfiguredSuggestion {
		t.Errorf("Classify() = %+v, want unconfigured fallback %+v", got, unconfiguredSuggestion)
	}
}

func TestClassifyCallFailures(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "server error",
			handler: func(w http.ResponseWriter, r *http.Request) {
				http.Error(w, "boom", http.StatusInternalServerError)
			},
		},
		{
			name: "unparseable envelope",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte("not json at all"))
			},
		},
		{
			name: "no candidate text",
			handler: func(w http.ResponseWriter, r *http.Request) {
				_, _ = w.Write([]byte(`{"candidates":[]}`))
			},
		},
		{
			name: "unparseable inner payload",
			handler: func(w http.ResponseWriter, r *http.Request) {
				resp := map[string]any{
					"candidates": []map[string]any{{
						"content": map[string]any{
							"parts": []map[string]any{{"text": "{{{"}},
						},
					}},
				}
				_ = json.NewEncoder(w).Encode(resp)
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			got := newTestClassifier(t, "key", srv.URL).Classify(context.Background(), "water leak")
			if got != failureSuggestion {
				t.Errorf("Classify() = %+v, want failure fallback %+v", got, failureSuggestion)
			}
		})
	}
}

func TestClassifyUnreachable(t *testing.T) {
	got := newTestClassifier(t, "key", "http://127.0.0.1:1").Classify(context.Background(), "water leak")
	if got != failureSuggestion {
		t.Errorf("Classify() = %+v, want failure fallback %+v", got, failureSuggestion)
	}
}

func TestClassifyTimeoutDegrades(t *testing.T) {
	block := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-block
	}))
	defer srv.Close()
	defer close(block)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	start := time.Now()
	got := newTestClassifier(t, "key", srv.URL).Classify(ctx, "stuck call")
	if got != failureSuggestion {
		t.Errorf("Classify() = %+v, want failure fallback %+v", got, failureSuggestion)
	}
	if time.Since(start) > time.Second {
		t.Errorf("Classify() did not respect context deadline")
	}
}
