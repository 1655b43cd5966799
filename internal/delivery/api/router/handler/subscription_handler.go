package handler

import (
	"log/slog"
	"net/http"

	"pixelforge/internal/delivery/api/middleware"
	"pixelforge/internal/delivery/api/response"
	domainerrors "pixelforge/internal/domain/errors"
	"pixelforge/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// SubscriptionHandlerParams holds dependencies for SubscriptionHandler, injected by Fx.
type SubscriptionHandlerParams struct {
	fx.In

	SubscriptionUC usecase.SubscriptionUsecase
	Logger         *slog.Logger
}

// SubscriptionHandler serves plan viewing and upgrades.
type SubscriptionHandler struct {
	subscriptionUC usecase.SubscriptionUsecase
	logger         *slog.Logger
}

// NewSubscriptionHandler is the constructor for SubscriptionHandler.
func NewSubscriptionHandler(params SubscriptionHandlerParams) *SubscriptionHandler {
	return &SubscriptionHandler{
		subscriptionUC: params.SubscriptionUC,
		logger:         params.Logger,
	}
}

// Details handles GET /subscription/details.
func (h *SubscriptionHandler) Details(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	sub, err := h.subscriptionUC.ViewSubscription(c.Request().Context(), userID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, SubscriptionDetailsResponse{
		SubscriptionType: sub.PlanType.String(),
		StartDate:        sub.StartDate,
		EndDate:          sub.EndDate,
	})
}

// Upgrade handles POST /subscription/upgrade.
func (h *SubscriptionHandler) Upgrade(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return domainerrors.ErrUnauthorized
	}

	var req UpgradeSubscriptionRequest
	if err := c.Bind(&req); err != nil {
		return response.BadRequest(c, "INVALID_INPUT", "Invalid subscription input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	sub, err := h.subscriptionUC.UpgradeSubscription(c.Request().Context(), userID, req.NewSubscriptionType)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, UpgradeSubscriptionResponse{
		UserID:           sub.UserID,
		SubscriptionType: sub.PlanType.String(),
		Start:            sub.StartDate,
		End:              sub.EndDate,
	})
}
