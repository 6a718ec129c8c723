package repository

import (
	"context"
	"fmt"

	"vehicle-leasing/internal/data/entity"
	"vehicle-leasing/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PaymentRepository interface {
	Create(ctx context.Context, payment *entity.Payment) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error)
	FindByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*entity.Payment, error)
}

type paymentRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPaymentRepository(db database.PgxIface, log *zap.Logger) PaymentRepository {
	return &paymentRepository{
		db:  db,
		log: log.With(zap.String("repository", "payment")),
	}
}

const paymentColumns = `id, lease_id, user_id, amount, payment_method,
	       transaction_id, status, payment_date, created_at, updated_at`

func (pr *paymentRepository) Create(ctx context.Context, payment *entity.Payment) error {
	query := `
		INSERT INTO payments (id, lease_id, user_id, amount, payment_method,
		                     transaction_id, status, payment_date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	`

	_, err := pr.db.Exec(ctx, query,
		payment.ID,
		payment.LeaseID,
		payment.UserID,
		payment.Amount,
		payment.PaymentMethod,
		payment.TransactionID,
		payment.Status,
		payment.PaymentDate,
		payment.CreatedAt,
		payment.UpdatedAt,
	)

	if err != nil {
		pr.log.Error("Failed to create payment",
			zap.Error(err),
			zap.String("lease_id", payment.LeaseID.String()),
		)
		return fmt.Errorf("create payment for lease %s: %w", payment.LeaseID.String(), err)
	}

	return nil
}

func (pr *paymentRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE id = $1`

	payment, err := pr.scanRow(pr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find payment by ID",
			zap.Error(err),
			zap.String("payment_id", id.String()),
		)
		return nil, fmt.Errorf("find payment by ID %s: %w", id.String(), err)
	}

	return payment, nil
}

func (pr *paymentRepository) FindByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*entity.Payment, error) {
	query := `SELECT ` + paymentColumns + ` FROM payments WHERE lease_id = $1 ORDER BY payment_date DESC`

	rows, err := pr.db.Query(ctx, query, leaseID)
	if err != nil {
		pr.log.Error("Failed to get payments by lease",
			zap.Error(err),
			zap.String("lease_id", leaseID.String()),
		)
		return nil, fmt.Errorf("find payments by lease %s: %w", leaseID.String(), err)
	}
	defer rows.Close()

	var payments []*entity.Payment
	for rows.Next() {
		payment, err := pr.scanRow(rows)
		if err != nil {
			pr.log.Error("Failed to scan payment row", zap.Error(err))
			return nil, fmt.Errorf("scan payment row: %w", err)
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		pr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate payment rows: %w", err)
	}

	return payments, nil
}

func (pr *paymentRepository) scanRow(row pgx.Row) (*entity.Payment, error) {
	var payment entity.Payment
	err := row.Scan(
		&payment.ID,
		&payment.LeaseID,
		&payment.UserID,
		&payment.Amount,
		&payment.PaymentMethod,
		&payment.TransactionID,
		&payment.Status,
		&payment.PaymentDate,
		&payment.CreatedAt,
		&payment.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &payment, nil
}
