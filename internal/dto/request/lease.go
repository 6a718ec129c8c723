package request

type CreateLeaseRequest struct {
	UserID    string `json:"userId" validate:"required,uuid4"`
	VehicleID string `json:"vehicleId" validate:"required,uuid4"`
	// RFC 3339 timestamps; both optional, defaulting to a one-year term from now.
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	// Accepted for wire compatibility and ignored: the monthly payment is
	// always derived from the vehicle's lease price.
	MonthlyPayment *float64 `json:"monthlyPayment,omitempty"`
}
