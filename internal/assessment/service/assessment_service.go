package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/domain"
	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/dto"
	autherror "github.com/mohammad-ishtiaque/Agro-clima-api/internal/errors"
)

const observationDateLayout = "2006-01-02"

var validFinalResults = map[string]bool{
	"Dry":    true,
	"Normal": true,
	"Wet":    true,
}

// AssessmentService stores precomputed climate assessments and scopes every
// read to the owning user. A record belonging to someone else is reported as
// not found rather than forbidden, so record IDs cannot be probed.
type AssessmentService struct {
	repo domain.AssessmentRepository
}

func NewAssessmentService(repo domain.AssessmentRepository) *AssessmentService {
	return &AssessmentService{repo: repo}
}

func (s *AssessmentService) Create(ctx context.Context, ownerID string, input dto.CreateAssessmentInput) (*dto.AssessmentOutput, error) {
	observationDate, err := time.Parse(observationDateLayout, input.ObservationDate)
	if err != nil {
		return nil, fmt.Errorf("%w: observation_date must be YYYY-MM-DD", autherror.ErrInvalidAssessment)
	}
	if !validFinalResults[input.FinalResult] {
		return nil, fmt.Errorf("%w: final_result must be Dry, Normal or Wet", autherror.ErrInvalidAssessment)
	}

	assessment := &domain.Assessment{
		ID:              uuid.New().String(),
		OwnerID:         ownerID,
		Latitude:        input.Latitude,
		Longitude:       input.Longitude,
		ObservationDate: observationDate,
		FinalResult:     input.FinalResult,
		Score:           input.Score,
		StationName:     input.StationName,
		SoilMapUnit:     input.SoilMapUnit,
		CreatedAt:       time.Now(),
	}

	if err := s.repo.Create(ctx, assessment); err != nil {
		return nil, err
	}

	output := dto.NewAssessmentOutput(assessment)
	return &output, nil
}

func (s *AssessmentService) Get(ctx context.Context, ownerID, id string) (*dto.AssessmentOutput, error) {
	assessment, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if assessment == nil || assessment.OwnerID != ownerID {
		return nil, autherror.ErrAssessmentNotFound
	}

	output := dto.NewAssessmentOutput(assessment)
	return &output, nil
}

func (s *AssessmentService) List(ctx context.Context, ownerID string) ([]dto.AssessmentOutput, error) {
	assessments, err := s.repo.ListByOwner(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return dto.NewAssessmentOutputs(assessments), nil
}
