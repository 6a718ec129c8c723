package wire

import (
	"vehicle-leasing/internal/adaptor"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/pkg/middleware"
	"vehicle-leasing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireVehicle(
	r chi.Router,
	vehicleHandler *adaptor.VehicleHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PUBLIC ROUTES ====================
	// GET /api/vehicles - Browse all listings
	r.Get("/api/vehicles", vehicleHandler.GetVehicles)

	// GET /api/vehicles/{id} - Listing detail
	r.Get("/api/vehicles/{id}", vehicleHandler.GetVehicleByID)

	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/vehicles - List a vehicle for lease
		r.Post("/api/vehicles", vehicleHandler.CreateVehicle)

		// PATCH /api/vehicles/{id} - Update own listing (or system status flip)
		r.Patch("/api/vehicles/{id}", vehicleHandler.UpdateVehicle)

		// DELETE /api/vehicles/{id} - Remove own listing
		r.Delete("/api/vehicles/{id}", vehicleHandler.DeleteVehicle)

		// GET /api/users/me/vehicles - Listings owned by the caller
		r.Get("/api/users/me/vehicles", vehicleHandler.GetMyVehicles)
	})
}
