package impl

import (
	"context"
	"testing"
	"time"

	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	mockRepo "pixelforge/internal/mocks/repository"
	mockSvc "pixelforge/internal/mocks/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type subscriptionServiceFixtures struct {
	service          *subscriptionService
	txManager        *mockRepo.MockTransactionManager
	subscriptionRepo *mockRepo.MockSubscriptionRepository
	publisher        *mockSvc.MockEventPublisher
	now              time.Time
}

func createTestSubscriptionService(t *testing.T) subscriptionServiceFixtures {
	t.Helper()

	txManager := mockRepo.NewMockTransactionManager(t)
	subscriptionRepo := mockRepo.NewMockSubscriptionRepository(t)
	publisher := mockSvc.NewMockEventPublisher(t)
	now := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	srv := NewSubscriptionService(SubscriptionServiceParams{
		TxManager:        txManager,
		SubscriptionRepo: subscriptionRepo,
		Publisher:        publisher,
		Logger:           newDiscardLogger(),
	}).(*subscriptionService)
	srv.now = func() time.Time { return now }

	return subscriptionServiceFixtures{
		service:          srv,
		txManager:        txManager,
		subscriptionRepo: subscriptionRepo,
		publisher:        publisher,
		now:              now,
	}
}

func TestSubscriptionService_ViewSubscription(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("no stored subscription reads as FREE without end", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.subscriptionRepo.EXPECT().FindLatestByUserID(ctx, userID).Return(nil, repository.ErrSubscriptionNotFound)

		sub, err := fx.service.ViewSubscription(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, entity.PlanFree, sub.PlanType)
		assert.Equal(t, fx.now, sub.StartDate)
		assert.Nil(t, sub.EndDate)
	})

	t.Run("returns the latest stored subscription", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		stored := entity.NewPlanSubscription(userID, entity.PlanYearly, fx.now.AddDate(0, -1, 0))

		fx.subscriptionRepo.EXPECT().FindLatestByUserID(ctx, userID).Return(stored, nil)

		sub, err := fx.service.ViewSubscription(ctx, userID)

		require.NoError(t, err)
		assert.Equal(t, stored, sub)
	})

	t.Run("repository failure is returned", func(t *testing.T) {
		fx := createTestSubscriptionService(t)

		fx.subscriptionRepo.EXPECT().FindLatestByUserID(ctx, userID).Return(nil, errors.New("timeout"))

		_, err := fx.service.ViewSubscription(ctx, userID)

		assert.Error(t, err)
	})
}

func TestSubscriptionService_UpgradeSubscription(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	expectUpgradeTx := func(fx subscriptionServiceFixtures, wantPlan entity.PlanType, wantDays int) {
		fx.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			RunAndReturn(func(ctx context.Context, fn func(repository.RepositoryFactory) error) error {
				mockFactory := mockRepo.NewMockRepositoryFactory(t)
				mockSubRepo := mockRepo.NewMockSubscriptionRepository(t)
				mockUserRepo := mockRepo.NewMockUserRepository(t)

				mockFactory.EXPECT().SubscriptionRepo().Return(mockSubRepo)
				mockFactory.EXPECT().UserRepo().Return(mockUserRepo)
				mockSubRepo.EXPECT().
					UpsertActive(ctx, mock.AnythingOfType("*entity.Subscription")).
					Run(func(_ context.Context, sub *entity.Subscription) {
						assert.Equal(t, userID, sub.UserID)
						assert.Equal(t, wantPlan, sub.PlanType)
						require.NotNil(t, sub.EndDate)
						assert.Equal(t, fx.now.AddDate(0, 0, wantDays), *sub.EndDate)
						sub.ID = uuid.New()
					}).
					Return(nil)
				mockUserRepo.EXPECT().
					UpdateFields(ctx, userID, mock.MatchedBy(func(update entity.UserUpdate) bool {
						return update.Role != nil && *update.Role == wantPlan.String() &&
							update.Email == nil && update.PasswordHash == nil
					})).
					Return(nil)

				return fn(mockFactory)
			})
	}

	t.Run("MONTHLY lasts thirty days and sets the role", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		expectUpgradeTx(fx, entity.PlanMonthly, 30)
		fx.publisher.EXPECT().PublishSystemEvent(ctx, eventOfType(entity.EventSubscriptionUpgraded)).Return(nil)

		sub, err := fx.service.UpgradeSubscription(ctx, userID, "MONTHLY")

		require.NoError(t, err)
		assert.Equal(t, entity.PlanMonthly, sub.PlanType)
		assert.Equal(t, fx.now, sub.StartDate)
		assert.NotEqual(t, uuid.Nil, sub.ID)
	})

	t.Run("YEARLY lasts three hundred sixty five days", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		expectUpgradeTx(fx, entity.PlanYearly, 365)
		fx.publisher.EXPECT().PublishSystemEvent(ctx, mock.Anything).Return(nil)

		sub, err := fx.service.UpgradeSubscription(ctx, userID, "YEARLY")

		require.NoError(t, err)
		assert.Equal(t, entity.PlanYearly, sub.PlanType)
	})

	for _, plan := range []string{"FREE", "free", "weekly", "", "monthly", " MONTHLY ", "Yearly"} {
		t.Run("rejects "+plan, func(t *testing.T) {
			fx := createTestSubscriptionService(t)

			sub, err := fx.service.UpgradeSubscription(ctx, userID, plan)

			assert.Nil(t, sub)
			assert.ErrorIs(t, err, domainerrors.ErrUnsupportedPlan)
		})
	}

	t.Run("transaction failure is returned", func(t *testing.T) {
		fx := createTestSubscriptionService(t)
		txErr := errors.New("serialization failure")

		fx.txManager.EXPECT().
			Execute(ctx, mock.AnythingOfType("func(repository.RepositoryFactory) error")).
			Return(txErr)

		_, err := fx.service.UpgradeSubscription(ctx, userID, "MONTHLY")

		assert.ErrorIs(t, err, txErr)
	})
}
