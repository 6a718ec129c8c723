package response

import (
	"time"

	"vehicle-leasing/internal/data/entity"
)

type LeaseResponse struct {
	ID             string             `json:"id"`
	UserID         string             `json:"user_id"`
	VehicleID      string             `json:"vehicle_id"`
	Vehicle        *VehicleSummary    `json:"vehicle,omitempty"`
	StartDate      time.Time          `json:"start_date"`
	EndDate        time.Time          `json:"end_date"`
	MonthlyPayment float64            `json:"monthly_payment"`
	Status         entity.LeaseStatus `json:"status"`
	Payment        *PaymentResponse   `json:"payment,omitempty"`
	CreatedAt      time.Time          `json:"created_at"`
}

type LeaseDetailResponse struct {
	LeaseResponse
	Payments []PaymentResponse `json:"payments"`
}

// Helper converters
func LeaseToResponse(lease *entity.Lease) LeaseResponse {
	return LeaseResponse{
		ID:             lease.ID.String(),
		UserID:         lease.UserID.String(),
		VehicleID:      lease.VehicleID.String(),
		StartDate:      lease.StartDate,
		EndDate:        lease.EndDate,
		MonthlyPayment: lease.MonthlyPayment,
		Status:         lease.Status,
		CreatedAt:      lease.CreatedAt,
	}
}
