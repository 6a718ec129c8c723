package usecase

import (
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/internal/notifier"
	"vehicle-leasing/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth    AuthService
	User    UserService
	Vehicle VehicleService
	Lease   LeaseService
	Payment PaymentService
}

func NewService(repo *repository.Repository, config *utils.Config, notif notifier.Notifier, log *zap.Logger) *Service {
	return &Service{
		Auth:    NewAuthService(repo, config, notif, log),
		User:    NewUserService(repo.User, log),
		Vehicle: NewVehicleService(repo, log),
		Lease:   NewLeaseService(repo, log),
		Payment: NewPaymentService(repo, log),
	}
}
