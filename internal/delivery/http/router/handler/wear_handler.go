package handler

import (
	"log/slog"
	"net/http"
	"time"

	"closet/internal/delivery/http/response"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// WearHandlerParams holds dependencies for WearHandler, injected by Fx.
type WearHandlerParams struct {
	fx.In

	WearUC usecase.WearUsecase
	Logger *slog.Logger
}

// WearHandler holds dependencies for wear confirmation handlers
type WearHandler struct {
	wearUC usecase.WearUsecase
	logger *slog.Logger
}

// NewWearHandler is the constructor for WearHandler
func NewWearHandler(params WearHandlerParams) *WearHandler {
	return &WearHandler{
		wearUC: params.WearUC,
		logger: params.Logger,
	}
}

// ConfirmWearRequest represents the request body for confirming a worn outfit.
// Date is optional and defaults to today.
type ConfirmWearRequest struct {
	UserID   uuid.UUID   `json:"user_id" validate:"required"`
	ClothIDs []uuid.UUID `json:"cloth_ids" validate:"required,min=1"`
	Date     string      `json:"date,omitempty"` // YYYY-MM-DD
}

// ConfirmWear handles recording that an outfit was worn
func (h *WearHandler) ConfirmWear(c echo.Context) error {
	var req ConfirmWearRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid wear input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	var date time.Time
	if req.Date != "" {
		parsed, err := time.Parse(time.DateOnly, req.Date)
		if err != nil {
			return response.BadRequest(c, "VALIDATION_ERROR", "date must be formatted as YYYY-MM-DD")
		}
		date = parsed
	}

	input := &usecase.ConfirmWearInput{
		UserID:   req.UserID,
		ClothIDs: req.ClothIDs,
		Date:     date,
	}

	if err := h.wearUC.ConfirmWear(c.Request().Context(), input); err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, nil, "Wear recorded successfully")
}

// handleAppError handles application errors
func (h *WearHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
