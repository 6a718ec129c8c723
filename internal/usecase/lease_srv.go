package usecase

import (
	"context"
	"fmt"
	"time"

	"vehicle-leasing/internal/data/entity"
	"vehicle-leasing/internal/data/repository"
	"vehicle-leasing/internal/dto/request"
	"vehicle-leasing/internal/dto/response"
	"vehicle-leasing/pkg/metrics"
	"vehicle-leasing/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// defaultLeaseTerm is used when the request carries no explicit dates.
const defaultLeaseTerm = 365 * 24 * time.Hour

// paymentSimDelay stands in for the payment-gateway round trip.
const paymentSimDelay = 150 * time.Millisecond

type LeaseService interface {
	AcquireLease(ctx context.Context, callerID string, req *request.CreateLeaseRequest) (*response.LeaseResponse, error)
	GetUserLeases(ctx context.Context, userID string) ([]response.LeaseResponse, error)

	// Admin endpoints
	GetLeaseByID(ctx context.Context, leaseID string) (*response.LeaseDetailResponse, error)
	CancelLease(ctx context.Context, leaseID string) error
}

type leaseService struct {
	repo *repository.Repository
	log  *zap.Logger

	// sleep is swapped out in tests; production uses the gateway delay.
	sleep func(time.Duration)
}

func NewLeaseService(repo *repository.Repository, log *zap.Logger) LeaseService {
	return &leaseService{
		repo:  repo,
		log:   log.With(zap.String("service", "lease")),
		sleep: time.Sleep,
	}
}

// AcquireLease runs the acquisition workflow: preconditions, lease record,
// simulated payment, then the vehicle status flip. The status flip is a
// compare-and-swap; losing it cancels the just-created lease so two racing
// acquisitions can never both hold an active lease. The payment step is
// best-effort: its failure is logged and counted but the lease stands.
func (s *leaseService) AcquireLease(ctx context.Context, callerID string, req *request.CreateLeaseRequest) (*response.LeaseResponse, error) {
	// Validate request
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Acquire lease validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// The body's userId must be the session identity
	if req.UserID != callerID {
		return nil, fmt.Errorf("forbidden: user ID does not match the authenticated user")
	}

	userUUID, err := uuid.Parse(callerID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", callerID, err)
	}

	vehicleUUID, err := uuid.Parse(req.VehicleID)
	if err != nil {
		return nil, fmt.Errorf("invalid vehicle ID format %s: %w", req.VehicleID, err)
	}

	// Vehicle must exist and be available
	vehicle, err := s.repo.Vehicle.FindByID(ctx, vehicleUUID)
	if err != nil {
		s.log.Error("Failed to find vehicle", zap.Error(err), zap.String("vehicle_id", req.VehicleID))
		return nil, fmt.Errorf("get vehicle: %w", err)
	}
	if vehicle == nil {
		return nil, fmt.Errorf("vehicle %s not found", req.VehicleID)
	}
	if vehicle.Status != entity.VehicleStatusAvailable {
		return nil, fmt.Errorf("vehicle is not available for lease")
	}

	// Owners cannot lease their own listing
	if vehicle.OwnerID == userUUID {
		return nil, fmt.Errorf("forbidden: cannot lease your own vehicle")
	}

	// Global double-booking guard. This also makes a double submit by the
	// same caller idempotent at the conflict level.
	existingLease, err := s.repo.Lease.FindActiveByVehicleID(ctx, vehicleUUID)
	if err != nil {
		s.log.Error("Failed to check active lease", zap.Error(err), zap.String("vehicle_id", req.VehicleID))
		return nil, fmt.Errorf("check active lease: %w", err)
	}
	if existingLease != nil {
		return nil, fmt.Errorf("vehicle already has an active lease")
	}

	startDate, endDate, err := resolveLeaseTerm(req.StartDate, req.EndDate)
	if err != nil {
		return nil, err
	}

	// Step 1: create the lease. Monthly payment always comes from the
	// listing, never from the client.
	now := time.Now()
	lease := &entity.Lease{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		UserID:         userUUID,
		VehicleID:      vehicleUUID,
		StartDate:      startDate,
		EndDate:        endDate,
		MonthlyPayment: vehicle.LeasePrice,
		Status:         entity.LeaseStatusActive,
	}

	if err := s.repo.Lease.Create(ctx, lease); err != nil {
		s.log.Error("Failed to create lease",
			zap.Error(err),
			zap.String("user_id", callerID),
			zap.String("vehicle_id", req.VehicleID),
		)
		return nil, fmt.Errorf("create lease: %w", err)
	}

	// Step 2: simulate the payment-gateway round trip and record the
	// payment. Best effort, the lease survives a bookkeeping failure.
	payment := s.recordFirstPayment(ctx, lease, vehicle.LeasePrice)

	// Step 3: flip available -> leased with a compare-and-swap. A miss
	// means someone got the vehicle between our check and this write;
	// compensate by cancelling the lease.
	flipped, err := s.repo.Vehicle.MarkLeased(ctx, vehicleUUID)
	if err != nil || !flipped {
		s.cancelLeaseCompensation(ctx, lease.ID)

		if err != nil {
			s.log.Error("Failed to mark vehicle leased",
				zap.Error(err),
				zap.String("lease_id", lease.ID.String()),
				zap.String("vehicle_id", req.VehicleID),
			)
			return nil, fmt.Errorf("mark vehicle leased: %w", err)
		}

		metrics.LeaseStatusFlipConflicted()
		s.log.Warn("Vehicle no longer available at commit, lease cancelled",
			zap.String("lease_id", lease.ID.String()),
			zap.String("vehicle_id", req.VehicleID),
		)
		return nil, fmt.Errorf("vehicle is not available for lease")
	}

	metrics.LeaseCreated()
	s.log.Info("Lease acquired",
		zap.String("lease_id", lease.ID.String()),
		zap.String("user_id", callerID),
		zap.String("vehicle_id", req.VehicleID),
		zap.Float64("monthly_payment", lease.MonthlyPayment),
	)

	resp := response.LeaseToResponse(lease)
	vehicleSummary := response.VehicleToSummary(vehicle)
	vehicleSummary.Status = entity.VehicleStatusLeased
	resp.Vehicle = &vehicleSummary
	if payment != nil {
		paymentResp := response.PaymentToResponse(payment)
		resp.Payment = &paymentResp
	}
	return &resp, nil
}

func (s *leaseService) GetUserLeases(ctx context.Context, userID string) ([]response.LeaseResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID format %s: %w", userID, err)
	}

	leases, err := s.repo.Lease.FindByUserID(ctx, userUUID)
	if err != nil {
		s.log.Error("Failed to get user leases", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("get user leases: %w", err)
	}

	responses := make([]response.LeaseResponse, len(leases))
	for i, lease := range leases {
		responses[i] = response.LeaseToResponse(lease)

		vehicle, _ := s.repo.Vehicle.FindByID(ctx, lease.VehicleID)
		if vehicle != nil {
			summary := response.VehicleToSummary(vehicle)
			responses[i].Vehicle = &summary
		}
	}

	return responses, nil
}

// ==================== ADMIN METHODS ====================

func (s *leaseService) GetLeaseByID(ctx context.Context, leaseID string) (*response.LeaseDetailResponse, error) {
	id, err := uuid.Parse(leaseID)
	if err != nil {
		return nil, fmt.Errorf("invalid lease ID format %s: %w", leaseID, err)
	}

	lease, err := s.repo.Lease.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find lease", zap.Error(err), zap.String("lease_id", leaseID))
		return nil, fmt.Errorf("get lease: %w", err)
	}
	if lease == nil {
		return nil, fmt.Errorf("lease %s not found", leaseID)
	}

	resp := response.LeaseToResponse(lease)

	vehicle, _ := s.repo.Vehicle.FindByID(ctx, lease.VehicleID)
	if vehicle != nil {
		summary := response.VehicleToSummary(vehicle)
		resp.Vehicle = &summary
	}

	payments, err := s.repo.Payment.FindByLeaseID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get lease payments", zap.Error(err), zap.String("lease_id", leaseID))
		return nil, fmt.Errorf("get lease payments: %w", err)
	}

	paymentResponses := make([]response.PaymentResponse, len(payments))
	for i, payment := range payments {
		paymentResponses[i] = response.PaymentToResponse(payment)
	}

	return &response.LeaseDetailResponse{
		LeaseResponse: resp,
		Payments:      paymentResponses,
	}, nil
}

// CancelLease ends an active lease and returns the vehicle to the market.
func (s *leaseService) CancelLease(ctx context.Context, leaseID string) error {
	id, err := uuid.Parse(leaseID)
	if err != nil {
		return fmt.Errorf("invalid lease ID format %s: %w", leaseID, err)
	}

	lease, err := s.repo.Lease.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to find lease for cancel", zap.Error(err), zap.String("lease_id", leaseID))
		return fmt.Errorf("get lease: %w", err)
	}
	if lease == nil {
		return fmt.Errorf("lease %s not found", leaseID)
	}

	if lease.Status != entity.LeaseStatusActive {
		return fmt.Errorf("lease status is %s, cannot cancel", lease.Status)
	}

	if err := s.repo.Lease.UpdateStatus(ctx, id, entity.LeaseStatusCancelled); err != nil {
		s.log.Error("Failed to cancel lease", zap.Error(err), zap.String("lease_id", leaseID))
		return fmt.Errorf("cancel lease: %w", err)
	}

	// Put the vehicle back on the market; best effort, logged on failure
	if err := s.repo.Vehicle.UpdateStatus(ctx, lease.VehicleID, entity.VehicleStatusAvailable); err != nil {
		s.log.Error("Failed to return vehicle to available after cancel",
			zap.Error(err),
			zap.String("lease_id", leaseID),
			zap.String("vehicle_id", lease.VehicleID.String()),
		)
	}

	s.log.Info("Lease cancelled",
		zap.String("lease_id", leaseID),
		zap.String("vehicle_id", lease.VehicleID.String()),
	)
	return nil
}

// ==================== HELPER METHODS ====================

// recordFirstPayment simulates the gateway round trip and inserts the
// acquisition payment. Returns nil when bookkeeping failed; the caller
// keeps going either way.
func (s *leaseService) recordFirstPayment(ctx context.Context, lease *entity.Lease, amount float64) *entity.Payment {
	s.sleep(paymentSimDelay)

	now := time.Now()
	payment := &entity.Payment{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LeaseID:       lease.ID,
		UserID:        lease.UserID,
		Amount:        amount,
		PaymentMethod: "Simulated Card",
		TransactionID: utils.GenerateTransactionID(),
		Status:        entity.PaymentStatusSucceeded,
		PaymentDate:   now,
	}

	if err := s.repo.Payment.Create(ctx, payment); err != nil {
		metrics.LeasePaymentFailed()
		s.log.Error("Failed to record acquisition payment, lease kept",
			zap.Error(err),
			zap.String("lease_id", lease.ID.String()),
		)
		return nil
	}

	return payment
}

func (s *leaseService) cancelLeaseCompensation(ctx context.Context, leaseID uuid.UUID) {
	if err := s.repo.Lease.UpdateStatus(ctx, leaseID, entity.LeaseStatusCancelled); err != nil {
		s.log.Error("Compensation failed: lease left active without vehicle",
			zap.Error(err),
			zap.String("lease_id", leaseID.String()),
		)
	}
}

func resolveLeaseTerm(startStr, endStr string) (time.Time, time.Time, error) {
	now := time.Now()
	startDate := now
	endDate := now.Add(defaultLeaseTerm)

	if startStr != "" {
		parsed, err := time.Parse(time.RFC3339, startStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid start date format %s: %w", startStr, err)
		}
		startDate = parsed
		endDate = parsed.Add(defaultLeaseTerm)
	}

	if endStr != "" {
		parsed, err := time.Parse(time.RFC3339, endStr)
		if err != nil {
			return time.Time{}, time.Time{}, fmt.Errorf("invalid end date format %s: %w", endStr, err)
		}
		endDate = parsed
	}

	if !endDate.After(startDate) {
		return time.Time{}, time.Time{}, fmt.Errorf("validation failed: end date must be after start date")
	}

	return startDate, endDate, nil
}
