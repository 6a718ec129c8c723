package wire

import (
	"vehicle-leasing/internal/adaptor"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/pkg/middleware"
	"vehicle-leasing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireLease(
	r chi.Router,
	leaseHandler *adaptor.LeaseHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/leases - Acquire a lease on an available vehicle
		r.Post("/api/leases", leaseHandler.AcquireLease)

		// GET /api/users/me/leases - Caller's lease history
		r.Get("/api/users/me/leases", leaseHandler.GetMyLeases)
	})

	// ==================== ADMIN ROUTES ====================
	r.Route("/api/admin/leases", func(r chi.Router) {
		// Require both authentication AND admin role
		r.Use(middleware.AuthSession(repo.Session, log))
		r.Use(middleware.Admin(repo.User, log))

		// GET /api/admin/leases/{id} - Any lease with its payment history
		r.Get("/{id}", leaseHandler.GetLeaseByID)

		// PUT /api/admin/leases/{id}/cancel - Cancel any active lease
		r.Put("/{id}/cancel", leaseHandler.CancelLease)
	})
}
