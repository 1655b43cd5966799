package impl

import (
	"context"
	"sync"
	"testing"

	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/infra/auth"
	"pixelforge/internal/infra/revocation"
	mockSvc "pixelforge/internal/mocks/service"
	"pixelforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// memoryUserRepo keeps users in a map keyed by exact email.
type memoryUserRepo struct {
	mu    sync.Mutex
	users map[string]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*entity.User)}
}

func (r *memoryUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, user := range r.users {
		if user.ID == id {
			clone := *user

			return &clone, nil
		}
	}

	return nil, repository.ErrUserNotFound
}

func (r *memoryUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	user, ok := r.users[email]
	if !ok {
		return nil, repository.ErrUserNotFound
	}
	clone := *user

	return &clone, nil
}

func (r *memoryUserRepo) Create(_ context.Context, user *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.users[user.Email]; ok {
		return repository.ErrEmailTaken
	}
	if user.ID == uuid.Nil {
		user.ID = uuid.New()
	}
	clone := *user
	r.users[user.Email] = &clone

	return nil
}

func (r *memoryUserRepo) UpdateFields(_ context.Context, id uuid.UUID, update entity.UserUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for email, user := range r.users {
		if user.ID != id {
			continue
		}
		if update.PasswordHash != nil {
			user.PasswordHash = *update.PasswordHash
		}
		if update.Role != nil {
			user.Role = *update.Role
		}
		if update.Email != nil {
			delete(r.users, email)
			user.Email = *update.Email
			r.users[user.Email] = user
		}

		return nil
	}

	return repository.ErrUserNotFound
}

func TestAuthService_RegisterLoginLogoutWithRealComponents(t *testing.T) {
	ctx := context.Background()

	cfg := newTestConfig()
	cfg.SecretKey.Access = "integration-secret"

	tokenService, err := auth.NewJWTService(cfg)
	require.NoError(t, err)

	publisher := mockSvc.NewMockEventPublisher(t)
	publisher.EXPECT().PublishSystemEvent(mock.Anything, mock.Anything).Return(nil).Maybe()

	users := newMemoryUserRepo()
	service := NewAuthService(AuthServiceParams{
		UserRepo:     users,
		Revocations:  revocation.NewMemoryStore(),
		Hasher:       auth.NewBcryptHasher(cfg),
		TokenService: tokenService,
		Publisher:    publisher,
		Config:       cfg,
		Logger:       newDiscardLogger(),
	})

	registered, err := service.Register(ctx, usecase.RegisterInput{
		Email:    "ada@example.com",
		Username: "ada",
		Password: "s3cret!",
	})
	require.NoError(t, err)

	stored, err := users.FindByEmail(ctx, "ada@example.com")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret!", stored.PasswordHash)
	assert.Equal(t, entity.PlanFree.String(), stored.Role)

	_, err = service.Register(ctx, usecase.RegisterInput{Email: "ada@example.com", Username: "ada2", Password: "other"})
	require.ErrorIs(t, err, domainerrors.ErrDuplicateEmail)

	login, err := service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "s3cret!"})
	require.NoError(t, err)
	assert.Equal(t, "bearer", login.TokenType)

	claims, err := tokenService.Validate(login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", claims.Subject)
	assert.Equal(t, registered.User.ID, claims.UserID)
	assert.False(t, claims.Expired)

	_, wrongPassword := service.Login(ctx, usecase.LoginInput{Email: "ada@example.com", Password: "wrong"})
	_, unknownEmail := service.Login(ctx, usecase.LoginInput{Email: "nobody@example.com", Password: "s3cret!"})
	require.ErrorIs(t, wrongPassword, domainerrors.ErrInvalidCredentials)
	assert.Equal(t, wrongPassword, unknownEmail)

	session, err := service.Authenticate(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, registered.User.ID, session.UserID)

	logout, err := service.Logout(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, usecase.LogoutSuccess, logout.Status)

	again, err := service.Logout(ctx, login.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, usecase.LogoutFailed, again.Status)

	_, err = service.Authenticate(ctx, login.AccessToken)
	require.ErrorIs(t, err, domainerrors.ErrUnauthorized)
}
