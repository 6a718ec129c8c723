package usecase

import (
	"context"
	"fmt"
	"time"

	"vehicle-leasing/internal/data/entity"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/internal/dto/request"
	"vehicle-leasing/internal/dto/response"
	"vehicle-leasing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PaymentService interface {
	RecordPayment(ctx context.Context, callerID string, req *request.CreatePaymentRequest) (*response.PaymentResponse, error)
}

type paymentService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewPaymentService(repo *repository.Repository, log *zap.Logger) PaymentService {
	return &paymentService{
		repo: repo,
		log:  log.With(zap.String("service", "payment")),
	}
}

// RecordPayment books a simulated payment against the caller's lease. Used
// for recurring monthly payments after acquisition.
func (s *paymentService) RecordPayment(ctx context.Context, callerID string, req *request.CreatePaymentRequest) (*response.PaymentResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Record payment validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	userUUID, err := uuid.Parse(callerID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", callerID, err)
	}

	leaseUUID, err := uuid.Parse(req.LeaseID)
	if err != nil {
		return nil, fmt.Errorf("invalid lease ID format %s: %w", req.LeaseID, err)
	}

	// Lease must exist and belong to the caller
	lease, err := s.repo.Lease.FindByID(ctx, leaseUUID)
	if err != nil {
		s.log.Error("Failed to find lease", zap.Error(err), zap.String("lease_id", req.LeaseID))
		return nil, fmt.Errorf("get lease: %w", err)
	}
	if lease == nil {
		return nil, fmt.Errorf("lease %s not found", req.LeaseID)
	}
	if lease.UserID != userUUID {
		return nil, fmt.Errorf("forbidden: this lease does not belong to the authenticated user")
	}

	// Synthesize a gateway transaction id when the client has none
	transactionID := utils.GenerateTransactionID()
	if req.TransactionID != nil && *req.TransactionID != "" {
		transactionID = *req.TransactionID
	}

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LeaseID:       leaseUUID,
		UserID:        userUUID,
		Amount:        req.Amount,
		PaymentMethod: req.PaymentMethod,
		TransactionID: transactionID,
		Status:        entity.PaymentStatusSucceeded,
		PaymentDate:   now,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		s.log.Error("Failed to record payment",
			zap.Error(err),
			zap.String("lease_id", req.LeaseID),
			zap.String("user_id", callerID),
		)
		return nil, fmt.Errorf("record payment: %w", err)
	}

	s.log.Info("Payment recorded",
		zap.String("payment_id", payment.ID.String()),
		zap.String("lease_id", req.LeaseID),
		zap.Float64("amount", req.Amount),
	)

	resp := response.PaymentToResponse(payment)
	return &resp, nil
}
