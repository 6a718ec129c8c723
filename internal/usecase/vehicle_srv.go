package usecase

import (
	"context"
	"fmt"
	"time"

	"vehicle-leasing/internal/data/entity"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/internal/dto/request"
	"vehicle-leasing/internal/dto/response"
	"vehicle-leasing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type VehicleService interface {
	CreateVehicle(ctx context.Context, ownerID string, req *request.CreateVehicleRequest) (*response.VehicleResponse, error)
	GetVehicles(ctx context.Context) ([]response.VehicleResponse, error)
	GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error)
	UpdateVehicle(ctx context.Context, callerID, vehicleID string, req *request.UpdateVehicleRequest) (*response.VehicleResponse, error)
	DeleteVehicle(ctx context.Context, callerID, vehicleID string) error
	GetOwnerVehicles(ctx context.Context, ownerID string) ([]response.VehicleResponse, error)
}

type vehicleService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewVehicleService(repo *repository.Repository, log *zap.Logger) VehicleService {
	return &vehicleService{
		repo: repo,
		log:  log.With(zap.String("service", "vehicle")),
	}
}

func (s *vehicleService) CreateVehicle(ctx context.Context, ownerID string, req *request.CreateVehicleRequest) (*response.VehicleResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	// License plate must be globally unique
	existing, err := s.repo.Vehicle.FindByLicense(ctx, req.License)
	if err != nil {
		s.log.Error("Failed to check license", zap.Error(err), zap.String("license", req.License))
		return nil, fmt.Errorf("check license: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("a vehicle with this license plate already exists")
	}

	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Make:        req.Make,
		Model:       req.Model,
		Year:        req.Year,
		License:     req.License,
		LeasePrice:  req.LeasePrice,
		Status:      entity.VehicleStatusAvailable,
		OwnerID:     ownerUUID,
		ImageURL:    req.ImageURL,
		Description: req.Description,
		Features:    req.Features,
	}

	if err := s.repo.Vehicle.Create(ctx, vehicle); err != nil {
		s.log.Error("Failed to create vehicle",
			zap.Error(err),
			zap.String("owner_id", ownerID),
			zap.String("license", req.License),
		)
		return nil, fmt.Errorf("create vehicle: %w", err)
	}

	s.log.Info("Vehicle listed",
		zap.String("vehicle_id", vehicle.ID.String()),
		zap.String("owner_id", ownerID),
		zap.String("license", vehicle.License),
	)

	return s.buildVehicleResponse(ctx, vehicle), nil
}

// GetVehicles returns every listing. No server-side filtering: the browse UI
// filters and sorts over the full set.
func (s *vehicleService) GetVehicles(ctx context.Context) ([]response.VehicleResponse, error) {
	vehicles, err := s.repo.Vehicle.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to get vehicles", zap.Error(err))
		return nil, fmt.Errorf("get vehicles: %w", err)
	}

	// Resolve owners once per distinct owner
	owners := make(map[uuid.UUID]*entity.User)
	responses := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		owner, ok := owners[vehicle.OwnerID]
		if !ok {
			owner, _ = s.repo.User.FindByID(ctx, vehicle.OwnerID)
			owners[vehicle.OwnerID] = owner
		}
		responses[i] = response.VehicleToResponse(vehicle, owner)
	}

	return responses, nil
}

func (s *vehicleService) GetVehicleByID(ctx context.Context, vehicleID string) (*response.VehicleResponse, error) {
	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	return s.buildVehicleResponse(ctx, vehicle), nil
}

func (s *vehicleService) UpdateVehicle(ctx context.Context, callerID, vehicleID string, req *request.UpdateVehicleRequest) (*response.VehicleResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update vehicle validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	callerUUID, err := uuid.Parse(callerID)
	if err != nil {
		return nil, fmt.Errorf("invalid caller ID format %s: %w", callerID, err)
	}

	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find vehicle for update", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", vehicleID)
	}

	if req.IsSystemStatusUpdate() {
		// Narrow status-only update issued by the lease flow; any
		// authenticated caller may flip the flag, ownership is not required.
		s.log.Info("System status update to leased",
			zap.String("vehicle_id", vehicleID),
			zap.String("caller_id", callerID),
		)
	} else {
		// General edits are owner-only
		if vehicle.OwnerID != callerUUID {
			return nil, fmt.Errorf("forbidden: not the owner of this vehicle")
		}

		// License change must not collide with another vehicle
		if req.License != nil && *req.License != vehicle.License {
			existing, err := s.repo.Vehicle.FindByLicense(ctx, *req.License)
			if err != nil {
				s.log.Error("Failed to check license", zap.Error(err), zap.String("license", *req.License))
				return nil, fmt.Errorf("check license: %w", err)
			}
			if existing != nil && existing.ID != vehicle.ID {
				return nil, fmt.Errorf("a vehicle with this license plate already exists")
			}
		}
	}

	applyVehicleUpdate(vehicle, req)
	vehicle.UpdatedAt = time.Now()

	if err := s.repo.Vehicle.Update(ctx, vehicle); err != nil {
		s.log.Error("Failed to update vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return nil, fmt.Errorf("update vehicle: %w", err)
	}

	s.log.Info("Vehicle updated",
		zap.String("vehicle_id", vehicleID),
		zap.String("caller_id", callerID),
	)

	return s.buildVehicleResponse(ctx, vehicle), nil
}

func (s *vehicleService) DeleteVehicle(ctx context.Context, callerID, vehicleID string) error {
	callerUUID, err := uuid.Parse(callerID)
	if err != nil {
		return fmt.Errorf("invalid caller ID format %s: %w", callerID, err)
	}

	id, err := uuid.Parse(vehicleID)
	if err != nil {
		return fmt.Errorf("invalid vehicle ID format %s: %w", vehicleID, err)
	}

	vehicle, err := s.repo.Vehicle.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find vehicle for delete", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle == nil {
		return fmt.Errorf("vehicle %s not found", vehicleID)
	}

	if vehicle.OwnerID != callerUUID {
		return fmt.Errorf("forbidden: not the owner of this vehicle")
	}

	if err := s.repo.Vehicle.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete vehicle", zap.Error(err), zap.String("vehicle_id", vehicleID))
		return fmt.Errorf("delete vehicle: %w", err)
	}

	s.log.Info("Vehicle unlisted",
		zap.String("vehicle_id", vehicleID),
		zap.String("owner_id", callerID),
	)
	return nil
}

func (s *vehicleService) GetOwnerVehicles(ctx context.Context, ownerID string) ([]response.VehicleResponse, error) {
	ownerUUID, err := uuid.Parse(ownerID)
	if err != nil {
		return nil, fmt.Errorf("invalid owner ID format %s: %w", ownerID, err)
	}

	vehicles, err := s.repo.Vehicle.FindByOwnerID(ctx, ownerUUID)
	if err != nil {
		s.log.Error("Failed to get owner vehicles", zap.Error(err), zap.String("owner_id", ownerID))
		return nil, fmt.Errorf("get owner vehicles: %w", err)
	}

	responses := make([]response.VehicleResponse, len(vehicles))
	for i, vehicle := range vehicles {
		responses[i] = response.VehicleToResponse(vehicle, nil)
	}

	return responses, nil
}

// ==================== HELPER METHODS ====================

func (s *vehicleService) buildVehicleResponse(ctx context.Context, vehicle *entity.Vehicle) *response.VehicleResponse {
	owner, _ := s.repo.User.FindByID(ctx, vehicle.OwnerID)
	resp := response.VehicleToResponse(vehicle, owner)
	return &resp
}

func applyVehicleUpdate(vehicle *entity.Vehicle, req *request.UpdateVehicleRequest) {
	if req.Make != nil {
		vehicle.Make = *req.Make
	}
	if req.Model != nil {
		vehicle.Model = *req.Model
	}
	if req.Year != nil {
		vehicle.Year = *req.Year
	}
	if req.License != nil {
		vehicle.License = *req.License
	}
	if req.LeasePrice != nil {
		vehicle.LeasePrice = *req.LeasePrice
	}
	if req.Status != nil {
		vehicle.Status = entity.VehicleStatus(*req.Status)
	}
	if req.ImageURL != nil {
		vehicle.ImageURL = req.ImageURL
	}
	if req.Description != nil {
		vehicle.Description = req.Description
	}
	if req.Features != nil {
		vehicle.Features = req.Features
	}
}
