package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/campus-kit/triage-service/internal/classify"
	"github.com/campus-kit/triage-service/internal/domain"
	"github.com/campus-kit/triage-service/internal/events"
	"github.com/campus-kit/triage-service/internal/repository"
	apperrors "github.com/campus-kit/triage-service/pkg/util/errorutil"
)

// LifecycleService owns ticket creation and the status state machine.
// It is the only writer to the ticket store.
type LifecycleService struct {
	store      repository.TicketStore
	classifier classify.Classifier
	dispatcher events.Dispatcher
}

// LifecycleDependencies bundles collaborators for the lifecycle service.
type LifecycleDependencies struct {
	Store      repository.TicketStore
	Classifier classify.Classifier
	Dispatcher events.Dispatcher
}

// NewLifecycleService constructs the service.
func NewLifecycleService(deps LifecycleDependencies) *LifecycleService {
	return &LifecycleService{
		store:      deps.Store,
		classifier: deps.Classifier,
		dispatcher: deps.Dispatcher,
	}
}

// FileTicket validates input, triages the description and persists a new
// ticket in the Submitted state. A category override, when non-empty,
// wins over the classifier's suggestion. Classifier unavailability never
// blocks filing; the suggestion degrades to its defaults instead.
func (s *LifecycleService) FileTicket(ctx context.Context, submitter domain.Submitter, description, categoryOverride string) (*domain.Ticket, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		return nil, apperrors.NewValidationError("description required", nil)
	}
	if strings.TrimSpace(submitter.Name) == "" || strings.TrimSpace(submitter.RollNumber) == "" {
		return nil, apperrors.NewValidationError("submitter name and roll number required", nil)
	}

	suggestion := s.classifier.Classify(ctx, description)

	category := strings.TrimSpace(categoryOverride)
	if category == "" {
		category = suggestion.Category
	}

	now := time.Now().UTC()
	ticket := &domain.Ticket{
		ID:                  generateTicketID(),
		SubmitterID:         submitter.RollNumber,
		Submitter:           submitter,
		Description:         description,
		Category:            category,
		Priority:            suggestion.Priority,
		Status:              domain.TicketStatusSubmitted,
		SuggestedDepartment: suggestion.SuggestedDepartment,
		OperatorRemark:      "",
		CreatedAt:           now,
		UpdatedAt:           now,
	}

	if err := s.store.Put(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketFiled,
		TicketID: ticket.ID,
		Actor:    submitterActor(submitter.RollNumber),
		Payload: events.TicketFiledPayload{
			SubmitterID:         ticket.SubmitterID,
			Category:            ticket.Category,
			Priority:            ticket.Priority,
			SuggestedDepartment: ticket.SuggestedDepartment,
		},
	})
	return ticket, nil
}

// Transition moves a ticket along an allowed status edge, overwriting the
// operator remark (an empty remark means "no remark given").
func (s *LifecycleService) Transition(ctx context.Context, id string, target domain.TicketStatus, remark string) (*domain.Ticket, error) {
	ticket, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if !isValidTransition(ticket.Status, target) {
		return nil, apperrors.NewInvalidTransition("status transition not allowed", map[string]any{
			"from": ticket.Status,
			"to":   target,
		})
	}

	oldStatus := ticket.Status
	ticket.Status = target
	ticket.OperatorRemark = remark
	ticket.UpdatedAt = time.Now().UTC()

	if err := s.store.Put(ctx, ticket); err != nil {
		return nil, err
	}
	s.publishEvent(ctx, events.Event{
		Type:     events.EventTicketStatusChanged,
		TicketID: ticket.ID,
		Actor:    events.Actor{Role: domain.RoleOperator},
		Payload: events.TicketStatusChangedPayload{
			OldStatus: oldStatus,
			NewStatus: target,
			Remark:    remark,
		},
	})
	return ticket, nil
}

// Submitted tickets may move to review or straight to resolution.
// Re-flagging a ticket that is already under review updates the remark
// and timestamp only. Resolved is terminal.
var allowedTransitions = map[domain.TicketStatus][]domain.TicketStatus{
	domain.TicketStatusSubmitted:   {domain.TicketStatusUnderReview, domain.TicketStatusResolved},
	domain.TicketStatusUnderReview: {domain.TicketStatusUnderReview, domain.TicketStatusResolved},
	domain.TicketStatusResolved:    {},
}

func isValidTransition(current, next domain.TicketStatus) bool {
	for _, candidate := range allowedTransitions[current] {
		if candidate == next {
			return true
		}
	}
	return false
}

func generateTicketID() string {
	return "TKT-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:9])
}

func (s *LifecycleService) publishEvent(ctx context.Context, event events.Event) {
	if s.dispatcher == nil {
		return
	}
	if event.ID == "" {
		event.ID = uuid.NewString()
	}
	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}
	_ = s.dispatcher.Publish(ctx, event)
}

func submitterActor(rollNumber string) events.Actor {
	return events.Actor{
		Role:       domain.RoleSubmitter,
		RollNumber: &rollNumber,
	}
}
