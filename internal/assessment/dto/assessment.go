package dto

import (
	"time"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/domain"
)

type CreateAssessmentInput struct {
	Latitude        float64 `json:"latitude"`
	Longitude       float64 `json:"longitude"`
	ObservationDate string  `json:"observation_date"`
	FinalResult     string  `json:"final_result"`
	Score           int     `json:"score"`
	StationName     string  `json:"station_name"`
	SoilMapUnit     string  `json:"soil_map_unit"`
}

type AssessmentOutput struct {
	ID              string    `json:"id"`
	Latitude        float64   `json:"latitude"`
	Longitude       float64   `json:"longitude"`
	ObservationDate string    `json:"observation_date"`
	FinalResult     string    `json:"final_result"`
	Score           int       `json:"score"`
	StationName     string    `json:"station_name,omitempty"`
	SoilMapUnit     string    `json:"soil_map_unit,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

func NewAssessmentOutput(a *domain.Assessment) AssessmentOutput {
	return AssessmentOutput{
		ID:              a.ID,
		Latitude:        a.Latitude,
		Longitude:       a.Longitude,
		ObservationDate: a.ObservationDate.Format("2006-01-02"),
		FinalResult:     a.FinalResult,
		Score:           a.Score,
		StationName:     a.StationName,
		SoilMapUnit:     a.SoilMapUnit,
		CreatedAt:       a.CreatedAt,
	}
}

func NewAssessmentOutputs(assessments []*domain.Assessment) []AssessmentOutput {
	outputs := make([]AssessmentOutput, 0, len(assessments))
	for _, a := range assessments {
		outputs = append(outputs, NewAssessmentOutput(a))
	}
	return outputs
}
