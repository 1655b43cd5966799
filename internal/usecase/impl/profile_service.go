package impl

import (
	"context"
	"log/slog"
	"strings"

	deliverycontext "pixelforge/internal/delivery/context"
	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/domain/service"
	"pixelforge/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const msgProfileUpdated = "Profile updated successfully"

// profileService implements the ProfileUsecase interface.
type profileService struct {
	userRepo  repository.UserRepository
	hasher    service.PasswordHasher
	publisher service.EventPublisher
	logger    *slog.Logger
}

// ProfileServiceParams holds dependencies for ProfileService, injected by Fx.
type ProfileServiceParams struct {
	fx.In

	UserRepo  repository.UserRepository
	Hasher    service.PasswordHasher
	Publisher service.EventPublisher
	Logger    *slog.Logger
}

// NewProfileService is the constructor for profileService.
func NewProfileService(params ProfileServiceParams) usecase.ProfileUsecase {
	return &profileService{
		userRepo:  params.UserRepo,
		hasher:    params.Hasher,
		publisher: params.Publisher,
		logger:    params.Logger,
	}
}

func (srv *profileService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// UpdateProfile writes the provided fields in a single update. Domain failures
// are folded into the result, so the returned error is always nil.
func (srv *profileService) UpdateProfile(ctx context.Context, userID uuid.UUID, input usecase.UpdateProfileInput) (*usecase.UpdateProfileOutput, error) {
	srv.log(ctx).Info("Updating user profile", slog.String("userID", userID.String()))

	update, err := srv.buildUpdate(input)
	if err != nil {
		srv.log(ctx).Error("Failed to prepare profile update", slog.Any("error", err))

		return failedProfileUpdate(err), nil
	}
	if update.IsEmpty() {
		return failedProfileUpdate(domainerrors.ErrNoProfileFields), nil
	}

	if err := srv.userRepo.UpdateFields(ctx, userID, update); err != nil {
		switch {
		case errors.Is(err, repository.ErrUserNotFound):
			return failedProfileUpdate(domainerrors.ErrUserNotFound), nil
		case errors.Is(err, repository.ErrEmailTaken):
			return failedProfileUpdate(domainerrors.ErrDuplicateEmail), nil
		default:
			srv.log(ctx).Error("Failed to update profile",
				slog.String("userID", userID.String()),
				slog.Any("error", err),
			)

			return failedProfileUpdate(err), nil
		}
	}

	publishEvent(ctx, srv.log(ctx), srv.publisher, entity.EventProfileUpdated, userID, map[string]any{
		"fields": update.FieldNames(),
	})

	return &usecase.UpdateProfileOutput{Success: true, Message: msgProfileUpdated}, nil
}

func (srv *profileService) buildUpdate(input usecase.UpdateProfileInput) (entity.UserUpdate, error) {
	var update entity.UserUpdate

	if input.Email != nil && *input.Email != "" {
		email := *input.Email
		update.Email = &email
	}

	if input.Password != nil && *input.Password != "" {
		passwordHash, err := srv.hasher.Hash(*input.Password)
		if err != nil {
			return update, errors.Wrap(err, "failed to hash password")
		}
		update.PasswordHash = &passwordHash
	}

	if input.SubscriptionType != nil {
		role := strings.ToUpper(strings.TrimSpace(*input.SubscriptionType))
		if role != "" {
			update.Role = &role
		}
	}

	return update, nil
}

func failedProfileUpdate(err error) *usecase.UpdateProfileOutput {
	return &usecase.UpdateProfileOutput{
		Success: false,
		Message: domainerrors.MessageOf(err, domainerrors.ErrUserUpdateFailed.Message()),
	}
}
