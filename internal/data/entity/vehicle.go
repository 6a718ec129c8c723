package entity

import (
	"github.com/google/uuid"
)

type VehicleStatus string

const (
	VehicleStatusAvailable   VehicleStatus = "available"
	VehicleStatusLeased      VehicleStatus = "leased"
	VehicleStatusMaintenance VehicleStatus = "maintenance"
)

type Vehicle struct {
	Base
	Make        string        `db:"make"`
	Model       string        `db:"model"`
	Year        int           `db:"year"`
	License     string        `db:"license"`
	LeasePrice  float64       `db:"lease_price"`
	Status      VehicleStatus `db:"status"`
	OwnerID     uuid.UUID     `db:"owner_id"`
	ImageURL    *string       `db:"image_url"`
	Description *string       `db:"description"`
	Features    []string      `db:"features"`
}
