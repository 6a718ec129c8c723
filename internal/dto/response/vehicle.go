package response

import (
	"time"

	"vehicle-leasing/internal/data/entity"
)

type OwnerSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type VehicleResponse struct {
	ID          string               `json:"id"`
	Make        string               `json:"make"`
	Model       string               `json:"model"`
	Year        int                  `json:"year"`
	License     string               `json:"license"`
	LeasePrice  float64              `json:"lease_price"`
	Status      entity.VehicleStatus `json:"status"`
	Owner       *OwnerSummary        `json:"owner,omitempty"`
	ImageURL    *string              `json:"image_url,omitempty"`
	Description *string              `json:"description,omitempty"`
	Features    []string             `json:"features,omitempty"`
	CreatedAt   time.Time            `json:"created_at"`
}

// VehicleSummary is the slim embed used inside lease responses.
type VehicleSummary struct {
	ID         string               `json:"id"`
	Make       string               `json:"make"`
	Model      string               `json:"model"`
	Year       int                  `json:"year"`
	License    string               `json:"license"`
	LeasePrice float64              `json:"lease_price"`
	Status     entity.VehicleStatus `json:"status"`
	ImageURL   *string              `json:"image_url,omitempty"`
}

// Helper converters
func VehicleToResponse(vehicle *entity.Vehicle, owner *entity.User) VehicleResponse {
	resp := VehicleResponse{
		ID:          vehicle.ID.String(),
		Make:        vehicle.Make,
		Model:       vehicle.Model,
		Year:        vehicle.Year,
		License:     vehicle.License,
		LeasePrice:  vehicle.LeasePrice,
		Status:      vehicle.Status,
		ImageURL:    vehicle.ImageURL,
		Description: vehicle.Description,
		Features:    vehicle.Features,
		CreatedAt:   vehicle.CreatedAt,
	}

	if owner != nil {
		resp.Owner = &OwnerSummary{
			ID:    owner.ID.String(),
			Name:  owner.Name,
			Email: owner.Email,
		}
	}

	return resp
}

func VehicleToSummary(vehicle *entity.Vehicle) VehicleSummary {
	return VehicleSummary{
		ID:         vehicle.ID.String(),
		Make:       vehicle.Make,
		Model:      vehicle.Model,
		Year:       vehicle.Year,
		License:    vehicle.License,
		LeasePrice: vehicle.LeasePrice,
		Status:     vehicle.Status,
		ImageURL:   vehicle.ImageURL,
	}
}
