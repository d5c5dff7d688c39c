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

// RecommendHandlerParams holds dependencies for RecommendHandler, injected by Fx.
type RecommendHandlerParams struct {
	fx.In

	RecommendUC usecase.RecommendUsecase
	Logger      *slog.Logger
}

// RecommendHandler holds dependencies for recommendation handlers
type RecommendHandler struct {
	recommendUC usecase.RecommendUsecase
	logger      *slog.Logger
}

// NewRecommendHandler is the constructor for RecommendHandler
func NewRecommendHandler(params RecommendHandlerParams) *RecommendHandler {
	return &RecommendHandler{
		recommendUC: params.RecommendUC,
		logger:      params.Logger,
	}
}

// RecommendRequest represents the request body for an outfit recommendation
type RecommendRequest struct {
	UserID    uuid.UUID `json:"user_id" validate:"required"`
	Latitude  float64   `json:"latitude" validate:"min=-90,max=90"`
	Longitude float64   `json:"longitude" validate:"min=-180,max=180"`
}

// RecommendResponse represents the recommendation payload returned to clients
type RecommendResponse struct {
	Clothes []*usecase.ClothPayload `json:"clothes"`
	Reason  string                  `json:"reason"`
}

// Recommend handles producing a daily outfit recommendation
func (h *RecommendHandler) Recommend(c echo.Context) error {
	var req RecommendRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid recommendation input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.RecommendInput{
		UserID:    req.UserID,
		Latitude:  req.Latitude,
		Longitude: req.Longitude,
	}

	rec, err := h.recommendUC.Recommend(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	payload := &RecommendResponse{
		Clothes: usecase.NewClothPayloads(rec.Clothes),
		Reason:  rec.Reason,
	}

	return response.Success(c, http.StatusOK, payload, "Recommendation generated successfully")
}

// handleAppError handles application errors
func (h *RecommendHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}
