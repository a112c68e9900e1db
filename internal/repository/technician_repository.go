package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/equipment-support/internal/domain"
)

// TechnicianPatch captures a partial update; nil fields are left untouched.
type TechnicianPatch struct {
	Name           *string
	Phone          *string
	Specialty      *string
	Status         *domain.TechnicianStatus
	ActiveRequests *int
}

// TechnicianRepository encapsulates technician persistence.
type TechnicianRepository interface {
	Create(ctx context.Context, tech *domain.Technician) error
	Update(ctx context.Context, id int64, patch TechnicianPatch) (*domain.Technician, error)
	GetByID(ctx context.Context, id int64) (*domain.Technician, error)
	List(ctx context.Context) ([]domain.Technician, error)
	ListAvailable(ctx context.Context) ([]domain.Technician, error)
}

type technicianRepository struct {
	pool *pgxpool.Pool
}

// NewTechnicianRepository instantiates repository.
func NewTechnicianRepository(pool *pgxpool.Pool) TechnicianRepository {
	return &technicianRepository{pool: pool}
}

const technicianColumns = `id, name, email, phone, specialty, status, active_requests`

func (r *technicianRepository) Create(ctx context.Context, tech *domain.Technician) error {
	const query = `
        INSERT INTO technicians (name, email, phone, specialty, status, active_requests)
        VALUES ($1,$2,$3,$4,$5,$6)
        RETURNING id`
	return r.pool.QueryRow(ctx, query,
		tech.Name,
		tech.Email,
		tech.Phone,
		tech.Specialty,
		tech.Status,
		tech.ActiveRequests,
	).Scan(&tech.ID)
}

func (r *technicianRepository) Update(ctx context.Context, id int64, patch TechnicianPatch) (*domain.Technician, error) {
	sets := []string{}
	args := []any{}

	if patch.Name != nil {
		args = append(args, *patch.Name)
		sets = append(sets, fmt.Sprintf("name=$%d", len(args)))
	}
	if patch.Phone != nil {
		args = append(args, *patch.Phone)
		sets = append(sets, fmt.Sprintf("phone=$%d", len(args)))
	}
	if patch.Specialty != nil {
		args = append(args, *patch.Specialty)
		sets = append(sets, fmt.Sprintf("specialty=$%d", len(args)))
	}
	if patch.Status != nil {
		args = append(args, *patch.Status)
		sets = append(sets, fmt.Sprintf("status=$%d", len(args)))
	}
	if patch.ActiveRequests != nil {
		args = append(args, *patch.ActiveRequests)
		sets = append(sets, fmt.Sprintf("active_requests=$%d", len(args)))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	args = append(args, id)
	query := fmt.Sprintf(`UPDATE technicians SET %s WHERE id=$%d RETURNING %s`,
		strings.Join(sets, ", "), len(args), technicianColumns)

	return r.scanOne(r.pool.QueryRow(ctx, query, args...))
}

func (r *technicianRepository) GetByID(ctx context.Context, id int64) (*domain.Technician, error) {
	query := fmt.Sprintf(`SELECT %s FROM technicians WHERE id=$1`, technicianColumns)
	return r.scanOne(r.pool.QueryRow(ctx, query, id))
}

func (r *technicianRepository) List(ctx context.Context) ([]domain.Technician, error) {
	query := fmt.Sprintf(`SELECT %s FROM technicians ORDER BY name ASC`, technicianColumns)
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTechnicians(rows)
}

func (r *technicianRepository) ListAvailable(ctx context.Context) ([]domain.Technician, error) {
	query := fmt.Sprintf(`SELECT %s FROM technicians WHERE status=$1 ORDER BY name ASC`, technicianColumns)
	rows, err := r.pool.Query(ctx, query, domain.TechnicianStatusAvailable)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanTechnicians(rows)
}

func (r *technicianRepository) scanOne(row pgx.Row) (*domain.Technician, error) {
	var tech domain.Technician
	if err := row.Scan(
		&tech.ID,
		&tech.Name,
		&tech.Email,
		&tech.Phone,
		&tech.Specialty,
		&tech.Status,
		&tech.ActiveRequests,
	); err != nil {
		return nil, err
	}
	return &tech, nil
}

func scanTechnicians(rows pgx.Rows) ([]domain.Technician, error) {
	var result []domain.Technician
	for rows.Next() {
		var tech domain.Technician
		if err := rows.Scan(
			&tech.ID,
			&tech.Name,
			&tech.Email,
			&tech.Phone,
			&tech.Specialty,
			&tech.Status,
			&tech.ActiveRequests,
		); err != nil {
			return nil, err
		}
		result = append(result, tech)
	}
	return result, rows.Err()
}
