package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/ops-console/internal/domain"
)

// ReconciliationRepository encapsulates reconciliation record persistence.
type ReconciliationRepository interface {
	GetByID(ctx context.Context, id string) (*domain.ReconciliationRecord, error)
	List(ctx context.Context) ([]domain.ReconciliationRecord, error)
	ListByIDs(ctx context.Context, ids []string) ([]domain.ReconciliationRecord, error)
	// MarkReconciled sets status=balanced and reconciled=true in one update;
	// the two fields always move together.
	MarkReconciled(ctx context.Context, id string) error
}

type reconciliationRepository struct {
	pool *pgxpool.Pool
}

// NewReconciliationRepository instantiates repository.
func NewReconciliationRepository(pool *pgxpool.Pool) ReconciliationRepository {
	return &reconciliationRepository{pool: pool}
}

const reconciliationColumns = `id, transaction_id, order_id, amount, method, status, reconciled, created_at, updated_at`

func (r *reconciliationRepository) GetByID(ctx context.Context, id string) (*domain.ReconciliationRecord, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations WHERE id=$1`

	var rec domain.ReconciliationRecord
	if err := r.pool.QueryRow(ctx, query, id).Scan(
		&rec.ID,
		&rec.TransactionID,
		&rec.OrderID,
		&rec.Amount,
		&rec.Method,
		&rec.Status,
		&rec.Reconciled,
		&rec.CreatedAt,
		&rec.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &rec, nil
}

func (r *reconciliationRepository) List(ctx context.Context) ([]domain.ReconciliationRecord, error) {
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReconciliations(rows)
}

func (r *reconciliationRepository) ListByIDs(ctx context.Context, ids []string) ([]domain.ReconciliationRecord, error) {
	if len(ids) == 0 {
		return []domain.ReconciliationRecord{}, nil
	}
	query := `SELECT ` + reconciliationColumns + ` FROM reconciliations WHERE id = ANY($1)`

	rows, err := r.pool.Query(ctx, query, ids)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return scanReconciliations(rows)
}

func scanReconciliations(rows pgx.Rows) ([]domain.ReconciliationRecord, error) {
	var result []domain.ReconciliationRecord
	for rows.Next() {
		var rec domain.ReconciliationRecord
		if err := rows.Scan(
			&rec.ID,
			&rec.TransactionID,
			&rec.OrderID,
			&rec.Amount,
			&rec.Method,
			&rec.Status,
			&rec.Reconciled,
			&rec.CreatedAt,
			&rec.UpdatedAt,
		); err != nil {
			return nil, err
		}
		result = append(result, rec)
	}
	return result, rows.Err()
}

func (r *reconciliationRepository) MarkReconciled(ctx context.Context, id string) error {
	const query = `
        UPDATE reconciliations SET status=$1, reconciled=TRUE, updated_at=NOW()
        WHERE id=$2`

	cmd, err := r.pool.Exec(ctx, query, domain.ReconciliationStatusBalanced, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
