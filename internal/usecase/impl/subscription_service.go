package impl

import (
	"context"
	"log/slog"
	"time"

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

// subscriptionService implements the SubscriptionUsecase interface.
type subscriptionService struct {
	txManager        repository.TransactionManager
	subscriptionRepo repository.SubscriptionRepository
	publisher        service.EventPublisher
	logger           *slog.Logger
	now              func() time.Time
}

// SubscriptionServiceParams holds dependencies for SubscriptionService, injected by Fx.
type SubscriptionServiceParams struct {
	fx.In

	TxManager        repository.TransactionManager
	SubscriptionRepo repository.SubscriptionRepository
	Publisher        service.EventPublisher
	Logger           *slog.Logger
}

// NewSubscriptionService creates a new subscription service.
func NewSubscriptionService(params SubscriptionServiceParams) usecase.SubscriptionUsecase {
	return &subscriptionService{
		txManager:        params.TxManager,
		subscriptionRepo: params.SubscriptionRepo,
		publisher:        params.Publisher,
		logger:           params.Logger,
		now:              func() time.Time { return time.Now().UTC() },
	}
}

func (srv *subscriptionService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// ViewSubscription returns the latest stored subscription. Users without one are on FREE.
func (srv *subscriptionService) ViewSubscription(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	sub, err := srv.subscriptionRepo.FindLatestByUserID(ctx, userID)
	if errors.Is(err, repository.ErrSubscriptionNotFound) {
		return entity.FreeSubscription(userID, srv.now()), nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to find subscription")
	}

	return sub, nil
}

// UpgradeSubscription stores the user's paid plan and sets their role to it in one transaction.
func (srv *subscriptionService) UpgradeSubscription(ctx context.Context, userID uuid.UUID, plan string) (*entity.Subscription, error) {
	planType, ok := entity.ParsePlanType(plan)
	if !ok || !planType.IsUpgradable() {
		return nil, domainerrors.ErrUnsupportedPlan.WrapMessage("plan " + plan + " cannot be purchased")
	}

	sub := entity.NewPlanSubscription(userID, planType, srv.now())
	role := planType.String()

	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		if err := repoFactory.SubscriptionRepo().UpsertActive(ctx, sub); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("cannot upgrade unknown user")
			}

			return errors.Wrap(err, "failed to upsert subscription")
		}

		if err := repoFactory.UserRepo().UpdateFields(ctx, userID, entity.UserUpdate{Role: &role}); err != nil {
			if errors.Is(err, repository.ErrUserNotFound) {
				return domainerrors.ErrUserNotFound.WrapMessage("cannot upgrade unknown user")
			}

			return errors.Wrap(err, "failed to update user role")
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to upgrade subscription")
	}

	srv.log(ctx).Info("Subscription upgraded",
		slog.String("userID", userID.String()),
		slog.String("plan", role),
	)
	publishEvent(ctx, srv.log(ctx), srv.publisher, entity.EventSubscriptionUpgraded, userID, map[string]any{
		"plan_type":  role,
		"start_date": sub.StartDate,
		"end_date":   sub.EndDate,
	})

	return sub, nil
}
