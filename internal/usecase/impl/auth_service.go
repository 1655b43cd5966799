package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"pixelforge/config"
	deliverycontext "pixelforge/internal/delivery/context"
	"pixelforge/internal/domain/constants"
	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/domain/service"
	"pixelforge/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const (
	msgLogoutSuccessful = "Logout successful"
	msgSessionNotFound  = "Session not found"

	// timingPassword is hashed once and compared against on unknown-email logins.
	timingPassword = "pixelforge-timing-equalizer"
)

// authService implements the AuthUsecase interface.
type authService struct {
	userRepo       repository.UserRepository
	revocations    repository.TokenRevocationRepository
	hasher         service.PasswordHasher
	tokenService   service.TokenService
	publisher      service.EventPublisher
	accessTokenTTL time.Duration
	logger         *slog.Logger

	timingHashOnce sync.Once
	timingHash     string
}

// AuthServiceParams holds dependencies for AuthService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	UserRepo     repository.UserRepository
	Revocations  repository.TokenRevocationRepository
	Hasher       service.PasswordHasher
	TokenService service.TokenService
	Publisher    service.EventPublisher
	Config       *config.Config
	Logger       *slog.Logger
}

// NewAuthService is the constructor for authService. It receives all dependencies as interfaces.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	var ttl time.Duration
	if params.Config != nil && params.Config.Auth != nil {
		ttl = params.Config.Auth.AccessTokenTTL
	}
	if ttl <= 0 {
		ttl = params.TokenService.AccessTokenTTL()
	}

	return &authService{
		userRepo:       params.UserRepo,
		revocations:    params.Revocations,
		hasher:         params.Hasher,
		tokenService:   params.TokenService,
		publisher:      params.Publisher,
		accessTokenTTL: ttl,
		logger:         params.Logger,
	}
}

// log returns a request-scoped logger if available, otherwise falls back to the service's logger.
func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Register creates a FREE user. Emails are matched exactly.
func (srv *authService) Register(ctx context.Context, input usecase.RegisterInput) (*usecase.RegisterOutput, error) {
	srv.log(ctx).Info("Starting registration", slog.String("email", input.Email))

	_, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err == nil {
		return nil, domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
	}
	if !errors.Is(err, repository.ErrUserNotFound) {
		return nil, errors.Wrap(err, "failed to look up email")
	}

	passwordHash, err := srv.hasher.Hash(input.Password)
	if err != nil {
		srv.log(ctx).Error("Failed to hash password", slog.Any("error", err))

		return nil, domainerrors.ErrPasswordHashFailed.WrapMessage(err.Error())
	}

	user := &entity.User{
		Email:        input.Email,
		Username:     input.Username,
		PasswordHash: passwordHash,
		Role:         entity.PlanFree.String(),
	}

	if err := srv.userRepo.Create(ctx, user); err != nil {
		// A concurrent registration can still lose the race on the unique index.
		if errors.Is(err, repository.ErrEmailTaken) {
			return nil, domainerrors.ErrDuplicateEmail.WrapMessage("email already registered")
		}

		return nil, errors.Wrap(err, "failed to create user")
	}

	srv.log(ctx).Info("User registered", slog.String("userID", user.ID.String()))
	publishEvent(ctx, srv.log(ctx), srv.publisher, entity.EventUserSignup, user.ID, map[string]any{
		"email":    user.Email,
		"username": user.Username,
	})

	return &usecase.RegisterOutput{User: user}, nil
}

// Login verifies credentials and issues an access token whose subject is the email.
// Unknown email and wrong password fail with the same error.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	user, err := srv.userRepo.FindByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			srv.checkTimingHash(ctx, input.Password)
			srv.log(ctx).Info("Login rejected", slog.String("reason", "unknown email"))

			return nil, domainerrors.ErrInvalidCredentials
		}

		return nil, errors.Wrap(err, "failed to look up user")
	}

	if !srv.hasher.Check(input.Password, user.PasswordHash) {
		srv.log(ctx).Info("Login rejected", slog.String("reason", "password mismatch"), slog.String("userID", user.ID.String()))

		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := srv.tokenService.Issue(user.Email, user.ID, srv.accessTokenTTL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to issue access token")
	}

	publishEvent(ctx, srv.log(ctx), srv.publisher, entity.EventUserLogin, user.ID, map[string]any{
		"token_id": token.TokenID,
	})

	return &usecase.LoginOutput{
		AccessToken: token.Token,
		TokenType:   constants.TokenTypeBearer,
		ExpiresAt:   token.ExpiresAt,
		User:        user,
	}, nil
}

// checkTimingHash pays for one bcrypt comparison so an unknown email takes as long as a wrong password.
func (srv *authService) checkTimingHash(ctx context.Context, password string) {
	srv.timingHashOnce.Do(func() {
		hash, err := srv.hasher.Hash(timingPassword)
		if err != nil {
			srv.log(ctx).Warn("Failed to prepare login timing hash", slog.Any("error", err))

			return
		}
		srv.timingHash = hash
	})

	srv.hasher.Check(password, srv.timingHash)
}

// Logout revokes the token until it expires. Exactly one of several concurrent
// logouts of the same token succeeds.
func (srv *authService) Logout(ctx context.Context, token string) (*usecase.LogoutOutput, error) {
	failed := &usecase.LogoutOutput{Status: usecase.LogoutFailed, Message: msgSessionNotFound}

	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidSignature) {
			return failed, nil
		}

		return nil, errors.Wrap(err, "failed to validate token")
	}
	if claims.Expired {
		return failed, nil
	}

	revoked, err := srv.revocations.Revoke(ctx, claims.TokenID, claims.ExpiresAt)
	if err != nil {
		return nil, errors.Wrap(err, "failed to revoke token")
	}
	if !revoked {
		return failed, nil
	}

	srv.log(ctx).Info("User logged out", slog.String("userID", claims.UserID.String()))
	publishEvent(ctx, srv.log(ctx), srv.publisher, entity.EventUserLogout, claims.UserID, map[string]any{
		"token_id": claims.TokenID,
	})

	return &usecase.LogoutOutput{Status: usecase.LogoutSuccess, Message: msgLogoutSuccessful}, nil
}

// Authenticate resolves a bearer token to a session, rejecting expired and revoked tokens.
func (srv *authService) Authenticate(ctx context.Context, token string) (*entity.Session, error) {
	claims, err := srv.tokenService.Validate(token)
	if err != nil {
		if errors.Is(err, domainerrors.ErrInvalidSignature) {
			return nil, domainerrors.ErrUnauthorized.WrapMessage("invalid token")
		}

		return nil, errors.Wrap(err, "failed to validate token")
	}
	if claims.Expired {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token expired")
	}

	revoked, err := srv.revocations.IsRevoked(ctx, claims.TokenID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to check token revocation")
	}
	if revoked {
		return nil, domainerrors.ErrUnauthorized.WrapMessage("token revoked")
	}

	return &entity.Session{
		UserID:    claims.UserID,
		Email:     claims.Subject,
		TokenID:   claims.TokenID,
		ExpiresAt: claims.ExpiresAt,
	}, nil
}
