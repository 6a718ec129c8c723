package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"vehicle-leasing/internal/data/entity"
	"vehicle-leasing/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// newLeaseSvc builds the service with the gateway delay stubbed out.
func newLeaseSvc(repos *testRepos) *leaseService {
	svc := NewLeaseService(repos.repo, zap.NewNop()).(*leaseService)
	svc.sleep = func(time.Duration) {}
	return svc
}

func leaseReq(userID, vehicleID string) *request.CreateLeaseRequest {
	return &request.CreateLeaseRequest{
		UserID:    userID,
		VehicleID: vehicleID,
	}
}

func TestAcquireLease(t *testing.T) {
	ctx := context.Background()

	t.Run("HappyPath", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		resp, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
		require.NoError(t, err)

		assert.Equal(t, entity.LeaseStatusActive, resp.Status)
		assert.Equal(t, vehicle.LeasePrice, resp.MonthlyPayment)
		require.NotNil(t, resp.Vehicle)
		assert.Equal(t, entity.VehicleStatusLeased, resp.Vehicle.Status)

		// Acquisition payment is booked against the lease
		require.NotNil(t, resp.Payment)
		assert.Equal(t, vehicle.LeasePrice, resp.Payment.Amount)
		assert.Equal(t, entity.PaymentStatusSucceeded, resp.Payment.Status)
		assert.True(t, strings.HasPrefix(resp.Payment.TransactionID, "SIM-"))

		// Vehicle is off the market
		stored, err := repos.vehicles.FindByID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.VehicleStatusLeased, stored.Status)

		// Default term is one year
		assert.WithinDuration(t, resp.StartDate.AddDate(1, 0, 0), resp.EndDate, 24*time.Hour)
	})

	t.Run("ClientMonthlyPaymentIgnored", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		req := leaseReq(lessee.ID.String(), vehicle.ID.String())
		bogus := 1.0
		req.MonthlyPayment = &bogus

		resp, err := svc.AcquireLease(ctx, lessee.ID.String(), req)
		require.NoError(t, err)
		assert.Equal(t, vehicle.LeasePrice, resp.MonthlyPayment, "monthly payment must come from the listing")
	})

	t.Run("UserIDMismatch", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		impostor := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		_, err := svc.AcquireLease(ctx, impostor.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "does not match")
	})

	t.Run("OwnVehicleForbidden", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		_, err := svc.AcquireLease(ctx, owner.ID.String(), leaseReq(owner.ID.String(), vehicle.ID.String()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot lease your own vehicle")
	})

	t.Run("VehicleNotAvailable", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusMaintenance)
		svc := newLeaseSvc(repos)

		_, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available")
	})

	t.Run("VehicleNotFound", func(t *testing.T) {
		repos := newTestRepos()
		lessee := seedUser(repos, entity.RoleLessee)
		svc := newLeaseSvc(repos)

		_, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), "22222222-2222-4222-8222-222222222222"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})

	t.Run("ActiveLeaseBlocksSecondAcquisition", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		first := seedUser(repos, entity.RoleLessee)
		second := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		_, err := svc.AcquireLease(ctx, first.ID.String(), leaseReq(first.ID.String(), vehicle.ID.String()))
		require.NoError(t, err)

		_, err = svc.AcquireLease(ctx, second.ID.String(), leaseReq(second.ID.String(), vehicle.ID.String()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available")

		// Only the first lease exists and it is still active
		leases, err := repos.leases.FindByUserID(ctx, second.ID)
		require.NoError(t, err)
		assert.Empty(t, leases)
	})

	t.Run("StatusFlipConflictCancelsLease", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		repos.vehicles.forceMarkLeasedMiss = true
		svc := newLeaseSvc(repos)

		_, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not available")

		// The losing lease was compensated, never left active
		leases, err := repos.leases.FindByUserID(ctx, lessee.ID)
		require.NoError(t, err)
		require.Len(t, leases, 1)
		assert.Equal(t, entity.LeaseStatusCancelled, leases[0].Status)

		active, err := repos.leases.FindActiveByVehicleID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Nil(t, active)
	})

	t.Run("PaymentFailureKeepsLease", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		repos.payments.createErr = errors.New("payments table unreachable")
		svc := newLeaseSvc(repos)

		resp, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
		require.NoError(t, err, "a bookkeeping failure must not abort the acquisition")
		assert.Equal(t, entity.LeaseStatusActive, resp.Status)
		assert.Nil(t, resp.Payment)

		stored, err := repos.vehicles.FindByID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.VehicleStatusLeased, stored.Status)
	})

	t.Run("ExplicitTerm", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		req := leaseReq(lessee.ID.String(), vehicle.ID.String())
		req.StartDate = "2026-09-01T00:00:00Z"
		req.EndDate = "2027-03-01T00:00:00Z"

		resp, err := svc.AcquireLease(ctx, lessee.ID.String(), req)
		require.NoError(t, err)
		assert.Equal(t, time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC), resp.StartDate.UTC())
		assert.Equal(t, time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC), resp.EndDate.UTC())
	})

	t.Run("EndBeforeStart", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		req := leaseReq(lessee.ID.String(), vehicle.ID.String())
		req.StartDate = "2026-09-01T00:00:00Z"
		req.EndDate = "2026-08-01T00:00:00Z"

		_, err := svc.AcquireLease(ctx, lessee.ID.String(), req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "end date must be after start date")
	})
}

func TestGetUserLeases(t *testing.T) {
	ctx := context.Background()

	repos := newTestRepos()
	owner := seedUser(repos, entity.RoleLessee)
	lessee := seedUser(repos, entity.RoleLessee)
	vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
	svc := newLeaseSvc(repos)

	_, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
	require.NoError(t, err)

	leases, err := svc.GetUserLeases(ctx, lessee.ID.String())
	require.NoError(t, err)
	require.Len(t, leases, 1)
	require.NotNil(t, leases[0].Vehicle)
	assert.Equal(t, vehicle.ID.String(), leases[0].Vehicle.ID)

	// Other users see nothing
	leases, err = svc.GetUserLeases(ctx, owner.ID.String())
	require.NoError(t, err)
	assert.Empty(t, leases)
}

func TestGetLeaseByID(t *testing.T) {
	ctx := context.Background()

	repos := newTestRepos()
	owner := seedUser(repos, entity.RoleLessee)
	lessee := seedUser(repos, entity.RoleLessee)
	vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
	svc := newLeaseSvc(repos)

	resp, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
	require.NoError(t, err)

	detail, err := svc.GetLeaseByID(ctx, resp.ID)
	require.NoError(t, err)
	assert.Equal(t, resp.ID, detail.ID)
	require.NotNil(t, detail.Vehicle)
	require.Len(t, detail.Payments, 1)
	assert.Equal(t, vehicle.LeasePrice, detail.Payments[0].Amount)

	t.Run("NotFound", func(t *testing.T) {
		_, err := svc.GetLeaseByID(ctx, "33333333-3333-4333-8333-333333333333")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}

func TestCancelLease(t *testing.T) {
	ctx := context.Background()

	t.Run("ActiveLease", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		resp, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
		require.NoError(t, err)

		require.NoError(t, svc.CancelLease(ctx, resp.ID))

		active, err := repos.leases.FindActiveByVehicleID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Nil(t, active)

		// Vehicle is back on the market
		stored, err := repos.vehicles.FindByID(ctx, vehicle.ID)
		require.NoError(t, err)
		assert.Equal(t, entity.VehicleStatusAvailable, stored.Status)
	})

	t.Run("AlreadyCancelled", func(t *testing.T) {
		repos := newTestRepos()
		owner := seedUser(repos, entity.RoleLessee)
		lessee := seedUser(repos, entity.RoleLessee)
		vehicle := seedVehicle(repos, owner.ID, entity.VehicleStatusAvailable)
		svc := newLeaseSvc(repos)

		resp, err := svc.AcquireLease(ctx, lessee.ID.String(), leaseReq(lessee.ID.String(), vehicle.ID.String()))
		require.NoError(t, err)
		require.NoError(t, svc.CancelLease(ctx, resp.ID))

		err = svc.CancelLease(ctx, resp.ID)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel")
	})

	t.Run("NotFound", func(t *testing.T) {
		repos := newTestRepos()
		svc := newLeaseSvc(repos)

		err := svc.CancelLease(ctx, "44444444-4444-4444-8444-444444444444")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "not found")
	})
}
