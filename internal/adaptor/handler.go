package adaptor

import (
	"vehicle-leasing/internal/usecase"

	"go.uber.org/zap"
)

type Handler struct {
	Auth    *AuthHandler
	User    *UserHandler
	Vehicle *VehicleHandler
	Lease   *LeaseHandler
	Payment *PaymentHandler
}

func NewHandler(service *usecase.Service, log *zap.Logger) *Handler {
	return &Handler{
		Auth:    NewAuthHandler(service.Auth, log),
		User:    NewUserHandler(service.User, log),
		Vehicle: NewVehicleHandler(service.Vehicle, log),
		Lease:   NewLeaseHandler(service.Lease, log),
		Payment: NewPaymentHandler(service.Payment, log),
	}
}
