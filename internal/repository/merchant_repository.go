package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ops-console/internal/domain"
)

// MerchantRepository encapsulates merchant persistence.
type MerchantRepository interface {
	Create(ctx context.Context, merchant *domain.Merchant) error
	GetByID(ctx context.Context, id string) (*domain.Merchant, error)
	// List returns the full collection, newest first. Narrowing for display
	// is done in memory by the search filter.
	List(ctx context.Context) ([]domain.Merchant, error)
	UpdateStatus(ctx context.Context, id string, status domain.MerchantStatus) error
	CountByStatus(ctx context.Context, status domain.MerchantStatus) (int, error)
	Count(ctx context.Context) (int, error)
}

type merchantRepository struct {
	pool *pgxpool.Pool
}

// NewMerchantRepository instantiates repository.
func NewMerchantRepository(pool *pgxpool.Pool) MerchantRepository {
	return &merchantRepository{pool: pool}
}

const merchantColumns = `id, business_name, business_type, address, tax_id,
        contact_name, contact_email, contact_phone, id_proof_ref, license_ref,
        status, created_at, updated_at`

func (r *merchantRepository) Create(ctx context.Context, merchant *domain.Merchant) error {
	const query = `
        INSERT INTO merchants (business_name, business_type, address, tax_id,
            contact_name, contact_email, contact_phone, id_proof_ref, license_ref, status, created_at)
        VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11)
        RETURNING id, created_at, updated_at`
	return r.pool.QueryRow(ctx, query,
		merchant.BusinessName,
		merchant.BusinessType,
		merchant.Address,
		merchant.TaxID,
		merchant.Contact.Name,
		merchant.Contact.Email,
		merchant.Contact.Phone,
		merchant.Documents.IDProof,
		merchant.Documents.License,
		merchant.Status,
		merchant.CreatedAt,
	).Scan(&merchant.ID, &merchant.CreatedAt, &merchant.UpdatedAt)
}

func (r *merchantRepository) GetByID(ctx context.Context, id string) (*domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants WHERE id=$1`

	var m domain.Merchant
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&m.ID,
		&m.BusinessName,
		&m.BusinessType,
		&m.Address,
		&m.TaxID,
		&m.Contact.Name,
		&m.Contact.Email,
		&m.Contact.Phone,
		&m.Documents.IDProof,
		&m.Documents.License,
		&m.Status,
		&m.CreatedAt,
		&m.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &m, nil
}

func (r *merchantRepository) List(ctx context.Context) ([]domain.Merchant, error) {
	query := `SELECT ` + merchantColumns + ` FROM merchants ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Merchant
	for rows.Next() {
		var m domain.Merchant
		if err := rows.Scan(
			&m.ID,
			&m.BusinessName,
			&m.BusinessType,
			&m.Address,
			&m.TaxID,
			&m.Contact.Name,
			&m.Contact.Email,
			&m.Contact.Phone,
			&m.Documents.IDProof,
			&m.Documents.License,
			&m.Status,
			&m.CreatedAt,
			&m.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, m)
	}
	return result, rows.Err()
}

func (r *merchantRepository) UpdateStatus(ctx context.Context, id string, status domain.MerchantStatus) error {
	const query = `UPDATE merchants SET status=$1, updated_at=NOW() WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *merchantRepository) CountByStatus(ctx context.Context, status domain.MerchantStatus) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM merchants WHERE status=$1`, status).Scan(&count)
	return count, err
}

func (r *merchantRepository) Count(ctx context.Context) (int, error) {
	var count int
	err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM merchants`).Scan(&count)
	return count, err
}
