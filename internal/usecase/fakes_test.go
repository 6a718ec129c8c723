package usecase

import (
	"context"
	"sync"
	"time"

	"vehicle-leasing/internal/data/entity"
	"vehicle-leasing/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes shared by the service tests.

type fakeUserRepo struct {
	mu        sync.Mutex
	users     map[uuid.UUID]*entity.User
	createErr error
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

func (f *fakeUserRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	user, ok := f.users[id]
	if !ok {
		return nil, nil
	}
	cp := *user
	return &cp, nil
}

func (f *fakeUserRepo) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, user := range f.users {
		if user.Email == email {
			cp := *user
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(ctx context.Context, user *entity.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *user
	f.users[user.ID] = &cp
	return nil
}

type fakeSessionRepo struct {
	mu        sync.Mutex
	sessions  map[string]*entity.Session
	createErr error
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(ctx context.Context, session *entity.Session) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *session
	f.sessions[session.Token.String()] = &cp
	return nil
}

func (f *fakeSessionRepo) FindValidSession(ctx context.Context, token string) (*entity.Session, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	session, ok := f.sessions[token]
	if !ok || session.RevokedAt != nil || time.Now().After(session.ExpiresAt) {
		return nil, nil
	}
	cp := *session
	return &cp, nil
}

func (f *fakeSessionRepo) Revoke(ctx context.Context, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if session, ok := f.sessions[token]; ok {
		now := time.Now()
		session.RevokedAt = &now
	}
	return nil
}

func (f *fakeSessionRepo) CleanExpiredSessions(ctx context.Context) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var removed int64
	for token, session := range f.sessions {
		if time.Now().After(session.ExpiresAt) {
			delete(f.sessions, token)
			removed++
		}
	}
	return removed, nil
}

type fakeVehicleRepo struct {
	mu       sync.Mutex
	vehicles map[uuid.UUID]*entity.Vehicle

	// forceMarkLeasedMiss makes MarkLeased report the vehicle as taken,
	// simulating a racing acquisition winning between check and commit.
	forceMarkLeasedMiss bool
	markLeasedErr       error
}

func newFakeVehicleRepo() *fakeVehicleRepo {
	return &fakeVehicleRepo{vehicles: make(map[uuid.UUID]*entity.Vehicle)}
}

func (f *fakeVehicleRepo) Create(ctx context.Context, vehicle *entity.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *vehicle
	f.vehicles[vehicle.ID] = &cp
	return nil
}

func (f *fakeVehicleRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	vehicle, ok := f.vehicles[id]
	if !ok {
		return nil, nil
	}
	cp := *vehicle
	return &cp, nil
}

func (f *fakeVehicleRepo) FindByLicense(ctx context.Context, license string) (*entity.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, vehicle := range f.vehicles {
		if vehicle.License == license {
			cp := *vehicle
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeVehicleRepo) FindAll(ctx context.Context) ([]*entity.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]*entity.Vehicle, 0, len(f.vehicles))
	for _, vehicle := range f.vehicles {
		cp := *vehicle
		out = append(out, &cp)
	}
	return out, nil
}

func (f *fakeVehicleRepo) FindByOwnerID(ctx context.Context, ownerID uuid.UUID) ([]*entity.Vehicle, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Vehicle
	for _, vehicle := range f.vehicles {
		if vehicle.OwnerID == ownerID {
			cp := *vehicle
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeVehicleRepo) Update(ctx context.Context, vehicle *entity.Vehicle) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	cp := *vehicle
	f.vehicles[vehicle.ID] = &cp
	return nil
}

func (f *fakeVehicleRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.VehicleStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if vehicle, ok := f.vehicles[id]; ok {
		vehicle.Status = status
	}
	return nil
}

func (f *fakeVehicleRepo) MarkLeased(ctx context.Context, id uuid.UUID) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.markLeasedErr != nil {
		return false, f.markLeasedErr
	}
	if f.forceMarkLeasedMiss {
		return false, nil
	}
	vehicle, ok := f.vehicles[id]
	if !ok || vehicle.Status != entity.VehicleStatusAvailable {
		return false, nil
	}
	vehicle.Status = entity.VehicleStatusLeased
	return true, nil
}

func (f *fakeVehicleRepo) Delete(ctx context.Context, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	delete(f.vehicles, id)
	return nil
}

type fakeLeaseRepo struct {
	mu        sync.Mutex
	leases    map[uuid.UUID]*entity.Lease
	createErr error
}

func newFakeLeaseRepo() *fakeLeaseRepo {
	return &fakeLeaseRepo{leases: make(map[uuid.UUID]*entity.Lease)}
}

func (f *fakeLeaseRepo) Create(ctx context.Context, lease *entity.Lease) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *lease
	f.leases[lease.ID] = &cp
	return nil
}

func (f *fakeLeaseRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Lease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	lease, ok := f.leases[id]
	if !ok {
		return nil, nil
	}
	cp := *lease
	return &cp, nil
}

func (f *fakeLeaseRepo) FindByUserID(ctx context.Context, userID uuid.UUID) ([]*entity.Lease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Lease
	for _, lease := range f.leases {
		if lease.UserID == userID {
			cp := *lease
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (f *fakeLeaseRepo) FindActiveByVehicleID(ctx context.Context, vehicleID uuid.UUID) (*entity.Lease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, lease := range f.leases {
		if lease.VehicleID == vehicleID && lease.Status == entity.LeaseStatusActive {
			cp := *lease
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaseRepo) FindActiveByUserAndVehicle(ctx context.Context, userID, vehicleID uuid.UUID) (*entity.Lease, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, lease := range f.leases {
		if lease.UserID == userID && lease.VehicleID == vehicleID && lease.Status == entity.LeaseStatusActive {
			cp := *lease
			return &cp, nil
		}
	}
	return nil, nil
}

func (f *fakeLeaseRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status entity.LeaseStatus) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if lease, ok := f.leases[id]; ok {
		lease.Status = status
	}
	return nil
}

type fakePaymentRepo struct {
	mu        sync.Mutex
	payments  map[uuid.UUID]*entity.Payment
	createErr error
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[uuid.UUID]*entity.Payment)}
}

func (f *fakePaymentRepo) Create(ctx context.Context, payment *entity.Payment) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.createErr != nil {
		return f.createErr
	}
	cp := *payment
	f.payments[payment.ID] = &cp
	return nil
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	payment, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *payment
	return &cp, nil
}

func (f *fakePaymentRepo) FindByLeaseID(ctx context.Context, leaseID uuid.UUID) ([]*entity.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []*entity.Payment
	for _, payment := range f.payments {
		if payment.LeaseID == leaseID {
			cp := *payment
			out = append(out, &cp)
		}
	}
	return out, nil
}

// fakeNotifier records welcome calls and can be told to fail.
type fakeNotifier struct {
	mu    sync.Mutex
	sent  []string
	err   error
	calls chan struct{}
}

func newFakeNotifier() *fakeNotifier {
	return &fakeNotifier{calls: make(chan struct{}, 8)}
}

func (f *fakeNotifier) SendWelcome(ctx context.Context, email, name string) error {
	f.mu.Lock()
	f.sent = append(f.sent, email)
	f.mu.Unlock()
	f.calls <- struct{}{}
	return f.err
}

func (f *fakeNotifier) waitForCall(timeout time.Duration) bool {
	select {
	case <-f.calls:
		return true
	case <-time.After(timeout):
		return false
	}
}

// testRepos bundles the fakes with the Repository the services consume.
type testRepos struct {
	repo     *repository.Repository
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	vehicles *fakeVehicleRepo
	leases   *fakeLeaseRepo
	payments *fakePaymentRepo
}

func newTestRepos() *testRepos {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	vehicles := newFakeVehicleRepo()
	leases := newFakeLeaseRepo()
	payments := newFakePaymentRepo()

	return &testRepos{
		repo: &repository.Repository{
			User:    users,
			Session: sessions,
			Vehicle: vehicles,
			Lease:   leases,
			Payment: payments,
		},
		users:    users,
		sessions: sessions,
		vehicles: vehicles,
		leases:   leases,
		payments: payments,
	}
}

func seedUser(repos *testRepos, role entity.UserRole) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Test User",
		Email:        uuid.New().String() + "@example.com",
		Phone:        "08123456789",
		PasswordHash: "$2a$10$placeholderplaceholderplaceholde",
		Role:         role,
	}
	repos.users.users[user.ID] = user
	return user
}

func seedVehicle(repos *testRepos, ownerID uuid.UUID, status entity.VehicleStatus) *entity.Vehicle {
	now := time.Now()
	vehicle := &entity.Vehicle{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Make:       "Toyota",
		Model:      "Corolla",
		Year:       2022,
		License:    "B " + uuid.New().String()[:8],
		LeasePrice: 450.0,
		Status:     status,
		OwnerID:    ownerID,
	}
	repos.vehicles.vehicles[vehicle.ID] = vehicle
	return vehicle
}
