package handler

import (
	"io"
	"log/slog"
	"net/http"

	"closet/internal/delivery/http/response"
	"closet/internal/domain/entity"
	domainerrors "closet/internal/domain/errors"
	"closet/internal/usecase"
	"closet/internal/util"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ClothHandlerParams holds dependencies for ClothHandler, injected by Fx.
type ClothHandlerParams struct {
	fx.In

	ClosetUC usecase.ClosetUsecase
	Logger   *slog.Logger
}

// ClothHandler holds dependencies for wardrobe-related handlers
type ClothHandler struct {
	closetUC usecase.ClosetUsecase
	logger   *slog.Logger
}

// NewClothHandler is the constructor for ClothHandler
func NewClothHandler(params ClothHandlerParams) *ClothHandler {
	return &ClothHandler{
		closetUC: params.ClosetUC,
		logger:   params.Logger,
	}
}

// ChangeStatusRequest represents the request body for a lifecycle change
type ChangeStatusRequest struct {
	UserID uuid.UUID `json:"user_id" validate:"required"`
	Status string    `json:"status" validate:"required,oneof=ACTIVE LAUNDRY DISCARDED"`
}

// ListClothes handles retrieving all non-discarded clothes of a user
func (h *ClothHandler) ListClothes(c echo.Context) error {
	userID, err := uuid.Parse(c.QueryParam("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	clothes, err := h.closetUC.ListClothes(c.Request().Context(), userID)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewClothPayloads(clothes), "Clothes retrieved successfully")
}

// AddCloth handles registering a new cloth from a multipart upload
func (h *ClothHandler) AddCloth(c echo.Context) error {
	userID, err := uuid.Parse(c.FormValue("user_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid user ID")
	}

	category := c.FormValue("category")
	if category == "" {
		return response.BadRequest(c, "VALIDATION_ERROR", "category is required")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", "image file is required")
	}

	file, err := fileHeader.Open()
	if err != nil {
		return errors.Wrap(err, "failed to open uploaded image")
	}
	defer file.Close()

	image, err := io.ReadAll(file)
	if err != nil {
		return errors.Wrap(err, "failed to read uploaded image")
	}

	h.logger.Debug("Received cloth image",
		slog.String("size", util.FormatBytes(int64(len(image)))),
		slog.String("checksum", util.Checksum(image)),
	)

	input := &usecase.AddClothInput{
		UserID:      userID,
		Category:    category,
		FileName:    fileHeader.Filename,
		ContentType: fileHeader.Header.Get("Content-Type"),
		Image:       image,
	}

	cloth, err := h.closetUC.AddCloth(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusCreated, usecase.NewClothPayload(cloth), "Cloth registered successfully")
}

// ChangeStatus handles a cloth lifecycle transition
func (h *ClothHandler) ChangeStatus(c echo.Context) error {
	clothID, err := uuid.Parse(c.Param("cloth_id"))
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid cloth ID")
	}

	var req ChangeStatusRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid status input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	input := &usecase.ChangeClothStatusInput{
		UserID:  req.UserID,
		ClothID: clothID,
		Status:  entity.ClothStatus(req.Status),
	}

	cloth, err := h.closetUC.ChangeClothStatus(c.Request().Context(), input)
	if err != nil {
		return h.handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, usecase.NewClothPayload(cloth), "Cloth status updated successfully")
}

// handleAppError handles application errors
func (h *ClothHandler) handleAppError(c echo.Context, err error) error {
	var appErr domainerrors.AppError
	if errors.As(err, &appErr) {
		return response.Error(c, appErr.HTTPCode(), appErr.ErrorCode(), appErr.Message(), appErr.Details())
	}

	return errors.WithStack(err)
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"}, "Service is healthy")
}
