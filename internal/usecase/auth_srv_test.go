package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"vehicle-leasing/internal/data/entity"
	"vehicle-leasing/internal/dto/request"
	"vehicle-leasing/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func testConfig() *utils.Config {
	return &utils.Config{
		Session: utils.SessionConfig{ExpiryHours: 24},
	}
}

func registerReq() *request.RegisterRequest {
	return &request.RegisterRequest{
		Name:     "Jane Lessee",
		Email:    "jane@example.com",
		Phone:    "08123456789",
		Password: "secret123",
	}
}

func TestRegister(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		repos := newTestRepos()
		notif := newFakeNotifier()
		svc := NewAuthService(repos.repo, testConfig(), notif, zap.NewNop())

		resp, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)
		require.NotNil(t, resp)

		assert.Equal(t, "jane@example.com", resp.User.Email)
		assert.Equal(t, entity.RoleLessee, resp.User.Role)
		assert.NotEmpty(t, resp.Token, "registration should auto-login")
		require.NotNil(t, resp.ExpiresAt)
		assert.True(t, resp.ExpiresAt.After(time.Now()))

		// Stored hash must never be the plaintext
		user, err := repos.users.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		require.NotNil(t, user)
		assert.NotEqual(t, "secret123", user.PasswordHash)
		assert.True(t, utils.CheckPasswordHash("secret123", user.PasswordHash))

		// Welcome notification goes out asynchronously
		assert.True(t, notif.waitForCall(2*time.Second), "welcome notification was never sent")
	})

	t.Run("DuplicateEmail", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewAuthService(repos.repo, testConfig(), newFakeNotifier(), zap.NewNop())

		_, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)

		_, err = svc.Register(ctx, registerReq())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "email already registered")
	})

	t.Run("InvalidEmail", func(t *testing.T) {
		repos := newTestRepos()
		svc := NewAuthService(repos.repo, testConfig(), newFakeNotifier(), zap.NewNop())

		req := registerReq()
		req.Email = "not-an-email"

		_, err := svc.Register(ctx, req)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "validation failed")
	})

	t.Run("NotifierFailureDoesNotFailRegistration", func(t *testing.T) {
		repos := newTestRepos()
		notif := newFakeNotifier()
		notif.err = errors.New("brevo unreachable")
		svc := NewAuthService(repos.repo, testConfig(), notif, zap.NewNop())

		resp, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.True(t, notif.waitForCall(2*time.Second))
	})

	t.Run("SessionFailureDowngradesToManualLogin", func(t *testing.T) {
		repos := newTestRepos()
		repos.sessions.createErr = errors.New("sessions table on fire")
		svc := NewAuthService(repos.repo, testConfig(), newFakeNotifier(), zap.NewNop())

		resp, err := svc.Register(ctx, registerReq())
		require.NoError(t, err, "account creation must survive a session failure")
		assert.Empty(t, resp.Token)
		assert.Nil(t, resp.ExpiresAt)

		user, err := repos.users.FindByEmail(ctx, "jane@example.com")
		require.NoError(t, err)
		assert.NotNil(t, user, "user should exist despite the failed auto-login")
	})
}

func TestLogin(t *testing.T) {
	ctx := context.Background()

	setup := func(t *testing.T) (*testRepos, AuthService) {
		repos := newTestRepos()
		svc := NewAuthService(repos.repo, testConfig(), newFakeNotifier(), zap.NewNop())
		_, err := svc.Register(ctx, registerReq())
		require.NoError(t, err)
		return repos, svc
	}

	t.Run("Success", func(t *testing.T) {
		_, svc := setup(t)

		resp, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "jane@example.com",
			Password: "secret123",
		})
		require.NoError(t, err)
		assert.NotEmpty(t, resp.Token)
		assert.Equal(t, "jane@example.com", resp.User.Email)
	})

	t.Run("WrongPassword", func(t *testing.T) {
		_, svc := setup(t)

		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "jane@example.com",
			Password: "wrongpass",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})

	t.Run("UnknownEmail", func(t *testing.T) {
		_, svc := setup(t)

		_, err := svc.Login(ctx, &request.LoginRequest{
			Email:    "nobody@example.com",
			Password: "secret123",
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid credentials")
	})
}

func TestLogout(t *testing.T) {
	ctx := context.Background()

	repos := newTestRepos()
	svc := NewAuthService(repos.repo, testConfig(), newFakeNotifier(), zap.NewNop())

	resp, err := svc.Register(ctx, registerReq())
	require.NoError(t, err)
	require.NotEmpty(t, resp.Token)

	// Session is valid before logout
	session, err := repos.sessions.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	require.NotNil(t, session)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	// And gone after
	session, err = repos.sessions.FindValidSession(ctx, resp.Token)
	require.NoError(t, err)
	assert.Nil(t, session)

	t.Run("MalformedToken", func(t *testing.T) {
		err := svc.Logout(ctx, "definitely-not-a-uuid")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid token format")
	})
}
