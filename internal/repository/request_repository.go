package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// RequestPatch captures a partial update; nil fields are left untouched.
type RequestPatch struct {
	Status             *domain.RequestStatus
	AssignedTechnician *string
	Priority           *domain.RequestPriority
	Description        *string
	Location           *string
	ContactNumber      *string
}

// Empty reports whether the patch changes nothing.
func (p RequestPatch) Empty() bool {
	return p.Status == nil && p.AssignedTechnician == nil && p.Priority == nil &&
		p.Description == nil && p.Location == nil && p.ContactNumber == nil
}

// RequestRepository encapsulates support request persistence.
type RequestRepository interface {
	Create(ctx context.Context, req *domain.SupportRequest) error
	Update(ctx context.Context, id int64, patch RequestPatch) (*domain.SupportRequest, error)
	GetByID(ctx context.Context, id int64) (*domain.SupportRequest, error)
	List(ctx context.Context) ([]domain.SupportRequest, error)
}

type requestRepository struct {
	pool *pgxpool.Pool
}

// NewRequestRepository instantiates repository.
func NewRequestRepository(pool *pgxpool.Pool) RequestRepository {
	return &requestRepository{pool: pool}
}

const requestColumns = `id, serial_number, priority, description, location, contact_number,
       status, assigned_technician, submitted_by, created_at, updated_at`

func (r *requestRepository) Create(ctx context.Context, req *domain.SupportRequest) error {
	const query = `
        INSERT INTO support_requests (serial_number, priority, description, location, contact_number, status, assigned_technician, submitted_by)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		req.SerialNumber,
		req.Priority,
		req.Description,
		req.Location,
		req.ContactNumber,
		req.Status,
		req.AssignedTechnician,
		req.SubmittedBy,
	).Scan(&req.ID, &req.CreatedAt, &req.UpdatedAt)
}

func (r *requestRepository) Update(ctx context.Context, id int64, patch RequestPatch) (*domain.SupportRequest, error) {
	sets := []string{}
	args := []any{}

	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.AssignedTechnician != nil {
		args = append(args, *patch.AssignedTechnician)
		sets = append(sets, fmt.Sprintf("assigned_technician=$%d", len(args)))
	}
	if patch.Priority != nil {
		args = append(args, *patch.Priority)
		sets = append(sets, fmt.Sprintf("priority=$%d", len(args)))
	}
	if patch.Description != nil {
		args = append(args, *patch.Description)
		sets = append(sets, fmt.Sprintf("description=$%d", len(args)))
	}
	if patch.Location != nil {
		args = append(args, *patch.Location)
		sets = append(sets, fmt.Sprintf("location=$%d", len(args)))
	}
	if patch.ContactNumber != nil {
		args = append(args, *patch.ContactNumber)
		sets = append(sets, fmt.Sprintf("contact_number=$%d", len(args)))
	}

	// updated_at is refreshed on every mutation, even an empty patch.
	sets = append(sets, "updated_at=NOW()")
	args = append(args, id)

	query := fmt.Sprintf(`UPDATE support_requests SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), requestColumns)

	return r.scanOne(r.pool.QueryRow(ctx, query, args...))
}

func (r *requestRepository) GetByID(ctx context.Context, id int64) (*domain.SupportRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM support_requests WHERE id=$1`, requestColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *requestRepository) List(ctx context.Context) ([]domain.SupportRequest, error) {
	query := fmt.Sprintf(`SELECT %s FROM support_requests ORDER BY created_at DESC, id DESC`, requestColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanRequests(rows)
}

func (r *requestRepository) scanOne(row pgx.Row) (*domain.SupportRequest, error) {
	var req domain.SupportRequest
	if err := row.Scan(
		&req.ID,
		&req.SerialNumber,
		&req.Priority,
		&req.Description,
		&req.Location,
		&req.ContactNumber,
		&req.Status,
		&req.AssignedTechnician,
		&req.SubmittedBy,
		&req.CreatedAt,
		&req.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &req, nil
}

func scanRequests(rows pgx.Rows) ([]domain.SupportRequest, error) {
	var result []domain.SupportRequest
	for rows.Next() {
		var req domain.SupportRequest
		if err := rows.Scan(
			&req.ID,
			&req.SerialNumber,
			&req.Priority,
			&req.Description,
			&req.Location,
			&req.ContactNumber,
			&req.Status,
			&req.AssignedTechnician,
			&req.SubmittedBy,
			&req.CreatedAt,
			&req.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, req)
	}
	return result, rows.Err()
}
