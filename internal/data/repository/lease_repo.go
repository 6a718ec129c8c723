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

type LeaseRepository interface {
	Create(ctx context.Context, lease *entity.Lease) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error)
	FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Lease, error)
	FindActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*entity.Lease, error)
	FindActiveByUserAndVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*entity.Lease, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeaseStatus) error
}

type leaseRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewLeaseRepository(db database.PgxIface, log *zap.Logger) LeaseRepository {
	return &leaseRepository{
		db:  db,
		log: log.With(zap.String("repository", "lease")),
	}
}

const leaseColumns = `id, user_id, vehicle_id, start_date, end_date,
	       monthly_payment, status, created_at, updated_at`

func (lr *leaseRepository) Create(ctx context.Context, lease *entity.Lease) error {
	query := `
		INSERT INTO leases (id, user_id, vehicle_id, start_date, end_date,
		                   monthly_payment, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := lr.db.Exec(ctx, query,
		lease.ID,
		lease.UserID,
		lease.VehicleID,
		lease.StartDate,
		lease.EndDate,
		lease.MonthlyPayment,
		lease.Status,
		lease.CreatedAt,
		lease.UpdatedAt,
	)

	if err != nil {
		lr.log.Error("Failed to create lease",
			zap.Error(err),
			zap.String("user_id", lease.UserID.String()),
			zap.String("vehicle_id", lease.VehicleID.String()),
		)
		return fmt.Errorf("create lease: %w", err)
	}

	return nil
}

func (lr *leaseRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE id = $1`

	lease, err := lr.scanRow(lr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find lease by ID",
			zap.Error(err),
			zap.String("lease_id", id.String()),
		)
		return nil, fmt.Errorf("find lease by ID %s: %w", id.String(), err)
	}

	return lease, nil
}

func (lr *leaseRepository) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE user_id = $1 ORDER BY start_date DESC`

	rows, err := lr.db.Query(ctx, query, userID)
	if err != nil {
		lr.log.Error("Failed to get leases by user",
			zap.Error(err),
			zap.String("user_id", userID.String()),
		)
		return nil, fmt.Errorf("find leases by user %s: %w", userID.String(), err)
	}
	defer rows.Close()

	var leases []*entity.Lease
	for rows.Next() {
		lease, err := lr.scanRow(rows)
		if err != nil {
			lr.log.Error("Failed to scan lease row", zap.Error(err))
			return nil, fmt.Errorf("scan lease row: %w", err)
		}
		leases = append(leases, lease)
	}

	if err := rows.Err(); err != nil {
		lr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate lease rows: %w", err)
	}

	return leases, nil
}

// FindActiveByVehicleID is the global double-booking guard: at most one
// active lease may reference a vehicle.
func (lr *leaseRepository) FindActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE vehicle_id = $1 AND status = 'active'`

	lease, err := lr.scanRow(lr.db.QueryRow(ctx, query, vehicleID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find active lease by vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil, fmt.Errorf("find active lease by vehicle %s: %w", vehicleID.String(), err)
	}

	return lease, nil
}

func (lr *leaseRepository) FindActiveByUserAndVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*entity.Lease, error) {
	query := `SELECT ` + leaseColumns + ` FROM leases WHERE user_id = $1 AND vehicle_id = $2 AND status = 'active'`

	lease, err := lr.scanRow(lr.db.QueryRow(ctx, query, userID, vehicleID))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		lr.log.Error("Failed to find active lease by user and vehicle",
			zap.Error(err),
			zap.String("user_id", userID.String()),
			zap.String("vehicle_id", vehicleID.String()),
		)
		return nil, fmt.Errorf("find active lease for user %s vehicle %s: %w",
			userID.String(), vehicleID.String(), err)
	}

	return lease, nil
}

func (lr *leaseRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeaseStatus) error {
	query := `UPDATE leases SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := lr.db.Exec(ctx, query, id, status)
	if err != nil {
		lr.log.Error("Failed to update lease status",
			zap.Error(err),
			zap.String("lease_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update lease %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("lease %s not found", id.String())
	}

	return nil
}

func (lr *leaseRepository) scanRow(row pgx.Row) (*entity.Lease, error) {
	var lease entity.Lease
	err := row.Scan(
		&lease.ID,
		&lease.UserID,
		&lease.VehicleID,
		&lease.StartDate,
		&lease.EndDate,
		&lease.MonthlyPayment,
		&lease.Status,
		&lease.CreatedAt,
		&lease.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &lease, nil
}
