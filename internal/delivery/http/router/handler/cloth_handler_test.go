package handler

import (
	"bytes"
	"context"
	"log/slog"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"

	"closet/internal/delivery/http/validator"
	"closet/internal/domain/entity"
	"closet/internal/usecase"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// stubClosetUsecase returns canned wardrobe results and records the last
// AddCloth input it received.
type stubClosetUsecase struct {
	cloth    *entity.Cloth
	err      error
	gotInput *usecase.AddClothInput
}

func (s *stubClosetUsecase) ListClothes(_ context.Context, _ uuid.UUID) ([]*entity.Cloth, error) {
	return []*entity.Cloth{s.cloth}, s.err
}

func (s *stubClosetUsecase) AddCloth(_ context.Context, input *usecase.AddClothInput) (*entity.Cloth, error) {
	s.gotInput = input
	return s.cloth, s.err
}

func (s *stubClosetUsecase) ChangeClothStatus(_ context.Context, _ *usecase.ChangeClothStatusInput) (*entity.Cloth, error) {
	return s.cloth, s.err
}

func newUploadContext(t *testing.T, userID uuid.UUID, filePart string) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	require.NoError(t, writer.WriteField("user_id", userID.String()))
	require.NoError(t, writer.WriteField("category", "tops"))
	part, err := writer.CreateFormFile(filePart, "shirt.jpg")
	require.NoError(t, err)
	_, err = part.Write([]byte("fake-image-bytes"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	e := echo.New()
	e.Validator = validator.New()

	req := httptest.NewRequest(http.MethodPost, "/clothes", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func TestClothHandler_AddCloth_Success(t *testing.T) {
	userID := uuid.New()
	cloth := &entity.Cloth{
		ID:       uuid.New(),
		UserID:   userID,
		Category: "tops",
		Status:   entity.StatusActive,
	}
	stub := &stubClosetUsecase{cloth: cloth}
	handler := &ClothHandler{
		closetUC: stub,
		logger:   slog.New(slog.DiscardHandler),
	}

	c, rec := newUploadContext(t, userID, "file")

	require.NoError(t, handler.AddCloth(c))
	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), cloth.ID.String())

	require.NotNil(t, stub.gotInput)
	assert.Equal(t, userID, stub.gotInput.UserID)
	assert.Equal(t, "shirt.jpg", stub.gotInput.FileName)
	assert.Equal(t, []byte("fake-image-bytes"), stub.gotInput.Image)
}

func TestClothHandler_AddCloth_MissingFilePart(t *testing.T) {
	handler := &ClothHandler{
		closetUC: &stubClosetUsecase{},
		logger:   slog.New(slog.DiscardHandler),
	}

	c, rec := newUploadContext(t, uuid.New(), "attachment")

	require.NoError(t, handler.AddCloth(c))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, rec.Body.String(), "VALIDATION_ERROR")
}