package classify

import (
	"context"

	"github.com/campus-kit/triage-service/internal/domain"
)

// Suggestion is the triage outcome for a complaint description.
type Suggestion struct {
	Category            string          `json:"category"`
	Priority            domain.Priority `json:"priority"`
	SuggestedDepartment string          `json:"suggestedDepartment"`
}

// Classifier produces a triage suggestion from free text. Implementations
// never fail: any problem reaching or parsing the external classifier
// degrades to a defaulted suggestion so ticket filing can always proceed.
// Callers must not pass an empty description.
type Classifier interface {
	Classify(ctx context.Context, description string) Suggestion
}

// Fallback suggestions. The exact triads are part of the triage contract
// and distinguish "never attempted" from "attempted and failed".
var (
	// unconfiguredSuggestion is returned when no API key is configured.
	unconfiguredSuggestion = Suggestion{
		Category:            "General",
		Priority:            domain.PriorityMedium,
		SuggestedDepartment: "Admin Office",
	}

	// failureSuggestion is returned when the classifier call errored.
	failureSuggestion = Suggestion{
		Category:            "Pending Review",
		Priority:            domain.PriorityMedium,
		SuggestedDepartment: "Head Office",
	}
)

// Per-field defaults applied when the classifier responded but a field is
// missing or malformed.
const (
	defaultCategory   = "General"
	defaultDepartment = "General Administration"
)
