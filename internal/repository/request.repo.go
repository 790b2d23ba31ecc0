package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/Anurag07-07/Resculink/internal/domain"
	xerrors "github.com/Anurag07-07/Resculink/pkg/utils/errors"
)

type RequestRepository struct {
	db *pgxpool.Pool
}

func NewRequestRepository(db *pgxpool.Pool) *RequestRepository {
	return &RequestRepository{db: db}
}

const requestColumns = `
	id, title, description, category, urgency, status, lat, lng,
	user_id, assigned_to, image_url, created_at, resolved_at`

func scanRequest(row pgx.Row) (*domain.AidRequest, error) {
	var req domain.AidRequest
	err := row.Scan(
		&req.ID, &req.Title, &req.Description, &req.Category, &req.Urgency,
		&req.Status, &req.Location.Lat, &req.Location.Lng,
		&req.UserID, &req.AssignedTo, &req.ImageURL, &req.CreatedAt, &req.ResolvedAt,
	)
	if err != nil {
		return nil, err
	}
	return &req, nil
}

func (r *RequestRepository) Create(ctx context.Context, req *domain.AidRequest) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO requests (
			id, title, description, category, urgency, status, lat, lng,
			user_id, assigned_to, image_url, created_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
	`, req.ID, req.Title, req.Description, req.Category, req.Urgency,
		req.Status, req.Location.Lat, req.Location.Lng,
		req.UserID, req.AssignedTo, req.ImageURL, req.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("create request: %w", err)
	}
	return nil
}

func (r *RequestRepository) GetByID(ctx context.Context, id string) (*domain.AidRequest, error) {
	row := r.db.QueryRow(ctx, `SELECT `+requestColumns+` FROM requests WHERE id=$1`, id)
	req, err := scanRequest(row)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, xerrors.ErrRequestNotFound
		}
		return nil, err
	}
	return req, nil
}

// ListAll returns every request, newest first. Filtering is a presentation
// concern.
func (r *RequestRepository) ListAll(ctx context.Context) ([]domain.AidRequest, error) {
	rows, err := r.db.Query(ctx, `
		SELECT `+requestColumns+`
		FROM requests
		ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var requests []domain.AidRequest
	for rows.Next() {
		req, err := scanRequest(rows)
		if err != nil {
			return nil, err
		}
		requests = append(requests, *req)
	}
	return requests, rows.Err()
}

// AcceptPending moves a pending request to in-progress and assigns it to
// the actor in one conditional update, so two concurrent accepts cannot
// both win. Returns ErrRequestNotPending when the request exists but has
// already left the pending state.
func (r *RequestRepository) AcceptPending(ctx context.Context, id, actorID string) (*domain.AidRequest, error) {
	row := r.db.QueryRow(ctx, `
		UPDATE requests
		SET status='in-progress', assigned_to=$2
		WHERE id=$1 AND status='pending'
		RETURNING `+requestColumns,
		id, actorID,
	)
	req, err := scanRequest(row)
	if err == nil {
		return req, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return nil, err
	}

	// Nothing updated: distinguish missing from already-taken.
	if _, getErr := r.GetByID(ctx, id); getErr != nil {
		return nil, getErr
	}
	return nil, xerrors.ErrRequestNotPending
}

// UpdateStatus persists a status transition decided by the usecase.
func (r *RequestRepository) UpdateStatus(ctx context.Context, req *domain.AidRequest) error {
	tag, err := r.db.Exec(ctx, `
		UPDATE requests
		SET status=$1, assigned_to=$2, resolved_at=$3
		WHERE id=$4
	`, req.Status, req.AssignedTo, req.ResolvedAt, req.ID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return xerrors.ErrRequestNotFound
	}
	return nil
}
