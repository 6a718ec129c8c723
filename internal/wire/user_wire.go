package wire

import (
	"vehicle-leasing/internal/adaptor"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/pkg/middleware"
	"vehicle-leasing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireUser(
	r chi.Router,
	userHandler *adaptor.UserHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// GET /api/users/me - Current user's profile
		r.Get("/api/users/me", userHandler.GetProfile)
	})
}
