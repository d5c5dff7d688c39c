package handler

import (
	"log/slog"
	"net/http"

	"closet/internal/delivery/http/response"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// AccountHandlerParams holds dependencies for AccountHandler, injected by Fx.
type AccountHandlerParams struct {
	fx.In

	AccountUC usecase.AccountUsecase
	Logger    *slog.Logger
}

// AccountHandler holds dependencies for account configuration handlers
type AccountHandler struct {
	accountUC usecase.AccountUsecase
	logger    *slog.Logger
}

// NewAccountHandler is the constructor for AccountHandler
func NewAccountHandler(params AccountHandlerParams) *AccountHandler {
	return &AccountHandler{
		accountUC: params.AccountUC,
		logger:    params.Logger,
	}
}

// UpdateWashCycleRequest represents the request body for changing the wash cycle
type UpdateWashCycleRequest struct {
	WashCycleDays int `json:"wash_cycle_days" validate:"required,min=1,max=60"`
}

// LinkProviderRequest represents the request body for linking an identity provider
type LinkProviderRequest struct {
	UserID         uuid.UUID `json:"user_id" validate:"required"`
	Provider       string    `json:"provider" validate:"required"`
	ProviderUserID string    `json:"provider_user_id" validate:"required"`
}

// UpdateWashCycle handles changing a user's wash cycle length
func (h *AccountHandler) UpdateWashCycle(c echo.Context) error {
	userID, err := uuid.Parse(c.Param("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	var req UpdateWashCycleRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wash cycle input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.UpdateWashCycleInput{
		UserID:        userID,
		WashCycleDays: req.WashCycleDays,
	}

	if err := h.accountUC.UpdateWashCycle(c.Request().Context(), input); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]int{"wash_cycle_days": req.WashCycleDays}, "Wash cycle updated successfully")
}

// LinkProvider handles linking an external identity provider to a user
func (h *AccountHandler) LinkProvider(c echo.Context) error {
	var req LinkProviderRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid provider input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.LinkProviderInput{
		UserID:         req.UserID,
		Provider:       req.Provider,
		ProviderUserID: req.ProviderUserID,
	}

	link, err := h.accountUC.LinkProvider(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, map[string]string{
		"user_id":          link.UserID.String(),
		"provider":         link.Provider,
		"provider_user_id": link.ProviderUserID,
	}, "Provider linked successfully")
}

// handleAppError handles application errors
func (h *AccountHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
