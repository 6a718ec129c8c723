package entity

import (
	"time"

	"github.com/google/uuid"
)

type LeaseStatus string

const (
	LeaseStatusActive    LeaseStatus = "active"
	LeaseStatusEnded     LeaseStatus = "ended"
	LeaseStatusCancelled LeaseStatus = "cancelled"
)

type Lease struct {
	Base
	UserID         uuid.UUID   `db:"user_id"`
	VehicleID      uuid.UUID   `db:"vehicle_id"`
	StartDate      time.Time   `db:"start_date"`
	EndDate        time.Time   `db:"end_date"`
	MonthlyPayment float64     `db:"monthly_payment"`
	Status         LeaseStatus `db:"status"`
}
