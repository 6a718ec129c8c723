package request

type CreateVehicleRequest struct {
	Make        string   `json:"make" validate:"required"`
	Model       string   `json:"model" validate:"required"`
	Year        int      `json:"year" validate:"required,gte=1990"`
	License     string   `json:"license" validate:"required,min=3"`
	LeasePrice  float64  `json:"leasePrice" validate:"required,gt=0"`
	ImageURL    *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Description *string  `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// UpdateVehicleRequest carries a partial update; nil means "leave as is".
type UpdateVehicleRequest struct {
	Make        *string  `json:"make,omitempty"`
	Model       *string  `json:"model,omitempty"`
	Year        *int     `json:"year,omitempty" validate:"omitempty,gte=1990"`
	License     *string  `json:"license,omitempty" validate:"omitempty,min=3"`
	LeasePrice  *float64 `json:"leasePrice,omitempty" validate:"omitempty,gt=0"`
	Status      *string  `json:"status,omitempty" validate:"omitempty,oneof=available leased maintenance"`
	ImageURL    *string  `json:"imageUrl,omitempty" validate:"omitempty,url"`
	Description *string  `json:"description,omitempty"`
	Features    []string `json:"features,omitempty"`
}

// IsSystemStatusUpdate reports whether the body is exactly {"status":"leased"},
// the narrow update the lease flow is allowed to issue on someone else's listing.
func (r *UpdateVehicleRequest) IsSystemStatusUpdate() bool {
	return r.Status != nil && *r.Status == "leased" &&
		r.Make == nil && r.Model == nil && r.Year == nil &&
		r.License == nil && r.LeasePrice == nil &&
		r.ImageURL == nil && r.Description == nil && r.Features == nil
}
