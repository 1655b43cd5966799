package postgres

import (
	"context"
	"time"

	"pixelforge/internal/domain/entity"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/domain/repository"
	"pixelforge/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// subscriptionRepository implements the repository.SubscriptionRepository interface.
type subscriptionRepository struct {
	db *gorm.DB
}

// NewSubscriptionRepository is the constructor for subscriptionRepository.
func NewSubscriptionRepository(db *gorm.DB) repository.SubscriptionRepository {
	return &subscriptionRepository{
		db: db,
	}
}

// FindLatestByUserID returns the subscription with the latest start date.
func (repo *subscriptionRepository) FindLatestByUserID(ctx context.Context, userID uuid.UUID) (*entity.Subscription, error) {
	var subscriptionM model.SubscriptionModel

	if err := repo.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("start_date DESC, id DESC").
		First(&subscriptionM).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, repository.ErrSubscriptionNotFound
		}

		return nil, errors.Wrap(err, "failed to find latest subscription")
	}

	return toSubscriptionDomain(&subscriptionM), nil
}

// UpsertActive inserts or replaces the user's single non-FREE subscription.
// The conflict target matches the partial unique index on (user_id) WHERE plan_type <> 'FREE',
// so concurrent upgrades of one user converge on one row.
func (repo *subscriptionRepository) UpsertActive(ctx context.Context, sub *entity.Subscription) error {
	if sub.PlanType == entity.PlanFree {
		return domainerrors.ErrUnsupportedPlan.WrapMessage("free plan is not stored")
	}

	subscriptionM := fromSubscriptionDomain(sub)
	if subscriptionM.ID == uuid.Nil {
		subscriptionM.ID = uuid.New()
	}
	now := time.Now().UTC()
	subscriptionM.CreatedAt = now
	subscriptionM.UpdatedAt = now

	err := repo.db.WithContext(ctx).
		Clauses(
			clause.OnConflict{
				Columns:     []clause.Column{{Name: "user_id"}},
				TargetWhere: clause.Where{Exprs: []clause.Expression{clause.Expr{SQL: "plan_type <> 'FREE'"}}},
				DoUpdates:   clause.AssignmentColumns([]string{"plan_type", "start_date", "end_date", "updated_at"}),
			},
			clause.Returning{},
		).
		Create(subscriptionM).Error
	if err != nil {
		if isForeignKeyConstraintViolation(err) {
			return repository.ErrUserNotFound
		}
		if isCheckConstraintViolation(err) {
			return domainerrors.ErrUnsupportedPlan.WrapMessage("plan rejected by database")
		}

		return domainerrors.NewDatabaseExecuteError(err, "failed to upsert subscription")
	}

	*sub = *toSubscriptionDomain(subscriptionM)

	return nil
}

// --- Mapper Functions ---

// toSubscriptionDomain converts a GORM model to a domain entity.
func toSubscriptionDomain(data *model.SubscriptionModel) *entity.Subscription {
	if data == nil {
		return nil
	}

	return &entity.Subscription{
		ID:        data.ID,
		UserID:    data.UserID,
		PlanType:  entity.PlanType(data.PlanType),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// fromSubscriptionDomain converts a domain entity to a GORM model.
func fromSubscriptionDomain(data *entity.Subscription) *model.SubscriptionModel {
	if data == nil {
		return nil
	}

	return &model.SubscriptionModel{
		ID:        data.ID,
		UserID:    data.UserID,
		PlanType:  data.PlanType.String(),
		StartDate: data.StartDate,
		EndDate:   data.EndDate,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}
