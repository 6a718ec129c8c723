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

type VehicleRepository interface {
	Create(ctx context.Context, vehicle *entity.Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error)
	FindByLicense(ctx context.Context, license string) (*entity.Vehicle, error)
	FindAll(ctx context.Context) ([]*entity.Vehicle, error)
	FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Vehicle, error)
	Update(ctx context.Context, vehicle *entity.Vehicle) error
	UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error
	MarkLeased(ctx context.Context, id uuid.UUID) (bool, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type vehicleRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewVehicleRepository(db database.PgxIface, log *zap.Logger) VehicleRepository {
	return &vehicleRepository{
		db:  db,
		log: log.With(zap.String("repository", "vehicle")),
	}
}

const vehicleColumns = `id, make, model, year, license, lease_price, status,
	       owner_id, image_url, description, features, created_at, updated_at`

func (vr *vehicleRepository) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		INSERT INTO vehicles (id, make, model, year, license, lease_price, status,
		                     owner_id, image_url, description, features, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := vr.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.License,
		vehicle.LeasePrice,
		vehicle.Status,
		vehicle.OwnerID,
		vehicle.ImageURL,
		vehicle.Description,
		vehicle.Features,
		vehicle.CreatedAt,
		vehicle.UpdatedAt,
	)

	if err != nil {
		vr.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("license", vehicle.License),
		)
		return fmt.Errorf("create vehicle %s: %w", vehicle.License, err)
	}

	return nil
}

func (vr *vehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE id = $1`

	vehicle, err := vr.scanRow(vr.db.QueryRow(ctx, query, id))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		vr.log.Error("Failed to find vehicle by ID",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return nil, fmt.Errorf("find vehicle by ID %s: %w", id.String(), err)
	}

	return vehicle, nil
}

func (vr *vehicleRepository) FindByLicense(ctx context.Context, license string) (*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE license = $1`

	vehicle, err := vr.scanRow(vr.db.QueryRow(ctx, query, license))
	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		vr.log.Error("Failed to find vehicle by license",
			zap.Error(err),
			zap.String("license", license),
		)
		return nil, fmt.Errorf("find vehicle by license %s: %w", license, err)
	}

	return vehicle, nil
}

// FindAll returns every listing, newest first. Filter/sort/search is the
// caller's job at this data scale.
func (vr *vehicleRepository) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles ORDER BY created_at DESC`

	rows, err := vr.db.Query(ctx, query)
	if err != nil {
		vr.log.Error("Failed to get all vehicles", zap.Error(err))
		return nil, fmt.Errorf("find all vehicles: %w", err)
	}
	defer rows.Close()

	return vr.scanRows(rows)
}

func (vr *vehicleRepository) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Vehicle, error) {
	query := `SELECT ` + vehicleColumns + ` FROM vehicles WHERE owner_id = $1 ORDER BY created_at DESC`

	rows, err := vr.db.Query(ctx, query, ownerID)
	if err != nil {
		vr.log.Error("Failed to get vehicles by owner",
			zap.Error(err),
			zap.String("owner_id", ownerID.String()),
		)
		return nil, fmt.Errorf("find vehicles by owner %s: %w", ownerID.String(), err)
	}
	defer rows.Close()

	return vr.scanRows(rows)
}

func (vr *vehicleRepository) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	query := `
		UPDATE vehicles
		SET make = $2, model = $3, year = $4, license = $5, lease_price = $6,
		    status = $7, image_url = $8, description = $9, features = $10,
		    updated_at = $11
		WHERE id = $1
	`

	result, err := vr.db.Exec(ctx, query,
		vehicle.ID,
		vehicle.Make,
		vehicle.Model,
		vehicle.Year,
		vehicle.License,
		vehicle.LeasePrice,
		vehicle.Status,
		vehicle.ImageURL,
		vehicle.Description,
		vehicle.Features,
		vehicle.UpdatedAt,
	)

	if err != nil {
		vr.log.Error("Failed to update vehicle",
			zap.Error(err),
			zap.String("vehicle_id", vehicle.ID.String()),
		)
		return fmt.Errorf("update vehicle %s: %w", vehicle.ID.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", vehicle.ID.String())
	}

	return nil
}

func (vr *vehicleRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error {
	query := `UPDATE vehicles SET status = $2, updated_at = NOW() WHERE id = $1`

	result, err := vr.db.Exec(ctx, query, id, status)
	if err != nil {
		vr.log.Error("Failed to update vehicle status",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update vehicle %s status: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	return nil
}

// MarkLeased flips available -> leased as a compare-and-swap. Returns false
// when the vehicle was not available anymore, which is how concurrent
// acquisitions lose the race.
func (vr *vehicleRepository) MarkLeased(ctx context.Context, id uuid.UUID) (bool, error) {
	query := `
		UPDATE vehicles
		SET status = 'leased', updated_at = NOW()
		WHERE id = $1 AND status = 'available'
	`

	result, err := vr.db.Exec(ctx, query, id)
	if err != nil {
		vr.log.Error("Failed to mark vehicle leased",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return false, fmt.Errorf("mark vehicle %s leased: %w", id.String(), err)
	}

	return result.RowsAffected() > 0, nil
}

func (vr *vehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	query := `DELETE FROM vehicles WHERE id = $1`

	result, err := vr.db.Exec(ctx, query, id)
	if err != nil {
		vr.log.Error("Failed to delete vehicle",
			zap.Error(err),
			zap.String("vehicle_id", id.String()),
		)
		return fmt.Errorf("delete vehicle %s: %w", id.String(), err)
	}

	if result.RowsAffected() == 0 {
		return fmt.Errorf("vehicle %s not found", id.String())
	}

	vr.log.Info("Vehicle deleted", zap.String("vehicle_id", id.String()))
	return nil
}

func (vr *vehicleRepository) scanRow(row pgx.Row) (*entity.Vehicle, error) {
	var vehicle entity.Vehicle
	err := row.Scan(
		&vehicle.ID,
		&vehicle.Make,
		&vehicle.Model,
		&vehicle.Year,
		&vehicle.License,
		&vehicle.LeasePrice,
		&vehicle.Status,
		&vehicle.OwnerID,
		&vehicle.ImageURL,
		&vehicle.Description,
		&vehicle.Features,
		&vehicle.CreatedAt,
		&vehicle.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &vehicle, nil
}

func (vr *vehicleRepository) scanRows(rows pgx.Rows) ([]*entity.Vehicle, error) {
	var vehicles []*entity.Vehicle
	for rows.Next() {
		vehicle, err := vr.scanRow(rows)
		if err != nil {
			vr.log.Error("Failed to scan vehicle row", zap.Error(err))
			return nil, fmt.Errorf("scan vehicle row: %w", err)
		}
		vehicles = append(vehicles, vehicle)
	}

	if err := rows.Err(); err != nil {
		vr.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate vehicle rows: %w", err)
	}

	return vehicles, nil
}
