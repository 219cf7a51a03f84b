package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/mohammad-ishtiaque/Agro-clima-api/internal/assessment/domain"
)

// DB is the subset of pgxpool.Pool the repository needs. Declaring it
// locally lets tests substitute a pgxmock pool.
type DB interface {
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

type PostgresRepository struct {
	db DB
}

func NewPostgresRepository(db DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

const assessmentColumns = `id, owner_id, latitude, longitude, observation_date, final_result, score, COALESCE(station_name, ''), COALESCE(soil_map_unit, ''), created_at`

func (r *PostgresRepository) Create(ctx context.Context, assessment *domain.Assessment) error {
	query := `INSERT INTO assessments (id, owner_id, latitude, longitude, observation_date, final_result, score, station_name, soil_map_unit, created_at)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)`

	_, err := r.db.Exec(ctx, query,
		assessment.ID,
		assessment.OwnerID,
		assessment.Latitude,
		assessment.Longitude,
		assessment.ObservationDate,
		assessment.FinalResult,
		assessment.Score,
		assessment.StationName,
		assessment.SoilMapUnit,
		assessment.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create assessment: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE id = $1`

	var a domain.Assessment
	err := r.db.QueryRow(ctx, query, id).Scan(
		&a.ID,
		&a.OwnerID,
		&a.Latitude,
		&a.Longitude,
		&a.ObservationDate,
		&a.FinalResult,
		&a.Score,
		&a.StationName,
		&a.SoilMapUnit,
		&a.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to scan assessment: %w", err)
	}

	return &a, nil
}

func (r *PostgresRepository) ListByOwner(ctx context.Context, ownerID string) ([]*domain.Assessment, error) {
	query := `SELECT ` + assessmentColumns + ` FROM assessments WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := r.db.Query(ctx, query, ownerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list assessments: %w", err)
	}
	defer rows.Close()

	var assessments []*domain.Assessment
	for rows.Next() {
		var a domain.Assessment
		err := rows.Scan(
			&a.ID,
			&a.OwnerID,
			&a.Latitude,
			&a.Longitude,
			&a.ObservationDate,
			&a.FinalResult,
			&a.Score,
			&a.StationName,
			&a.SoilMapUnit,
			&a.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan assessment: %w", err)
		}
		assessments = append(assessments, &a)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate assessments: %w", err)
	}

	return assessments, nil
}
