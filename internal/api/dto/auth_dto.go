package dto

import (
	"time"

	"github.com/campus-kit/triage-service/internal/domain"
)

// SubmitterLoginRequest payload for submitter sessions.
type SubmitterLoginRequest struct {
	Name       string `json:"name"`
	Class      string `json:"class"`
	Division   string `json:"division"`
	RollNumber string `json:"rollNumber"`
}

// Submitter converts the request to its domain shape.
func (r SubmitterLoginRequest) Submitter() domain.Submitter {
	return domain.Submitter{
		Name:       r.Name,
		Class:      r.Class,
		Division:   r.Division,
		RollNumber: r.RollNumber,
	}
}

// OperatorLoginRequest payload for operator sessions.
type OperatorLoginRequest struct {
	AccessKey string `json:"accessKey"`
}

// AuthResponse standard response for auth endpoints.
type AuthResponse struct {
	Token     string    `json:"token"`
	Role      string    `json:"role"`
	ExpiresAt time.Time `json:"expires_at"`
}
