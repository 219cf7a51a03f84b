package domain

//go:generate mockgen -destination=../../mocks/mock_assessment_repository.go -package=mocks github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/domain AssessmentRepository

import (
	"context"
	"time"
)

// Assessment is a precomputed climate suitability record tied to the user
// who submitted it. Scoring happens upstream; this service only stores and
// serves the results.
type Assessment struct {
	ID              string
	OwnerID         string
	Latitude        float64
	Longitude       float64
	ObservationDate time.Time
	FinalResult     string
	Score           int
	StationName     string
	SoilMapUnit     string
	CreatedAt       time.Time
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *Assessment) error
	GetByID(ctx context.Context, id string) (*Assessment, error)
	ListByOwner(ctx context.Context, ownerID string) ([]*Assessment, error)
}
