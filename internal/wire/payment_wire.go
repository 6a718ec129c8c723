package wire

import (
	"vehicle-leasing/internal/adaptor"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/pkg/middleware"
	"vehicle-leasing/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePayment(
	r chi.Router,
	paymentHandler *adaptor.PaymentHandler,
	repo *repository.Repository,
	config *utils.Config,
	log *zap.Logger,
) {
	// ==================== PROTECTED ROUTES (require auth) ====================
	r.Group(func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, log))

		// POST /api/payments - Record a monthly payment on own lease
		r.Post("/api/payments", paymentHandler.RecordPayment)
	})
}
