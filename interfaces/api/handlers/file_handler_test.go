package handlers_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"file-gateway/application/serviceimpl"
	"file-gateway/domain/dto"
	"file-gateway/domain/models"
	"file-gateway/interfaces/api/handlers"
	"file-gateway/interfaces/api/middleware"
	"file-gateway/interfaces/api/routes"
	"file-gateway/pkg/utils"
)

const testSecret = "test-secret"

type SpyFileService struct {
	mock.Mock
}

func (s *SpyFileService) Upload(ctx context.Context, input *dto.UploadInput) (*models.FileMetadata, error) {
	args := s.Called(ctx, input)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FileMetadata), args.Error(1)
}

func (s *SpyFileService) Download(ctx context.Context, id string) (io.ReadCloser, *models.FileMetadata, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, nil, args.Error(2)
	}
	return args.Get(0).(io.ReadCloser), args.Get(1).(*models.FileMetadata), args.Error(2)
}

func (s *SpyFileService) GetInfo(ctx context.Context, id string) (*models.FileMetadata, error) {
	args := s.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.FileMetadata), args.Error(1)
}

func (s *SpyFileService) ListByUploader(ctx context.Context, uploadedBy string) ([]*models.FileMetadata, error) {
	args := s.Called(ctx, uploadedBy)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FileMetadata), args.Error(1)
}

func (s *SpyFileService) ListAll(ctx context.Context) ([]*models.FileMetadata, error) {
	args := s.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.FileMetadata), args.Error(1)
}

func (s *SpyFileService) Delete(ctx context.Context, id string) error {
	args := s.Called(ctx, id)
	return args.Error(0)
}

func (s *SpyFileService) PresignedDownloadURL(ctx context.Context, id string, expiryMinutes int) (*dto.PresignedURLResponse, error) {
	args := s.Called(ctx, id, expiryMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PresignedURLResponse), args.Error(1)
}

func (s *SpyFileService) PresignedUploadURL(ctx context.Context, fileName string, expiryMinutes int) (*dto.PresignedURLResponse, error) {
	args := s.Called(ctx, fileName, expiryMinutes)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dto.PresignedURLResponse), args.Error(1)
}

func newTestApp(t *testing.T) (*fiber.App, *SpyFileService, string) {
	t.Helper()

	svc := new(SpyFileService)
	app := fiber.New(fiber.Config{
		ErrorHandler: middleware.ErrorHandler(),
	})
	app.Use(middleware.RequestIDMiddleware())

	h := handlers.NewHandlers(svc)
	routes.SetupRoutes(app, h, testSecret)

	token, err := utils.GenerateToken("alice", testSecret, time.Hour)
	require.NoError(t, err)

	return app, svc, token
}

func authed(req *http.Request, token string) *http.Request {
	req.Header.Set("Authorization", "Bearer "+token)
	return req
}

func decodeResponse(t *testing.T, resp *http.Response) utils.Response {
	t.Helper()
	var envelope utils.Response
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&envelope))
	return envelope
}

func multipartBody(t *testing.T, fieldName, fileName string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile(fieldName, fileName)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())
	return body, writer.FormDataContentType()
}

func sampleMetadata() *models.FileMetadata {
	return &models.FileMetadata{
		ID:           "7b0d7f3a-0000-0000-0000-000000000001",
		OriginalName: "notes.txt",
		StoredName:   "7b0d7f3a-0000-0000-0000-000000000001.txt",
		ContentType:  "text/plain",
		Size:         10,
		Extension:    "txt",
		UploadedBy:   "alice",
		BucketName:   "files",
		CreatedAt:    time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestUploadFileEndpoint(t *testing.T) {
	t.Run("201 with file response", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		metadata := sampleMetadata()

		svc.On("Upload", mock.Anything, mock.MatchedBy(func(input *dto.UploadInput) bool {
			return input.OriginalName == "notes.txt" &&
				input.UploadedBy == "alice" &&
				input.Size == 10
		})).Return(metadata, nil)

		body, contentType := multipartBody(t, "file", "notes.txt", []byte("0123456789"))
		req := authed(httptest.NewRequest(http.MethodPost, "/files", body), token)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusCreated, resp.StatusCode)

		envelope := decodeResponse(t, resp)
		assert.True(t, envelope.Success)

		data := envelope.Data.(map[string]any)
		assert.Equal(t, metadata.ID, data["id"])
		assert.Equal(t, "notes.txt", data["originalName"])
		assert.Equal(t, "txt", data["extension"])
		assert.Equal(t, float64(10), data["size"])
		assert.Equal(t, "alice", data["uploadedBy"])
		assert.Equal(t, "/files/"+metadata.ID+"/download", data["downloadUrl"])
	})

	t.Run("401 without token", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		body, contentType := multipartBody(t, "file", "notes.txt", []byte("x"))
		req := httptest.NewRequest(http.MethodPost, "/files", body)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)

		envelope := decodeResponse(t, resp)
		assert.False(t, envelope.Success)
		assert.Equal(t, utils.ErrCodeUnauthorized, envelope.Error)
	})

	t.Run("400 when the form field is missing", func(t *testing.T) {
		app, _, token := newTestApp(t)

		body, contentType := multipartBody(t, "wrong-field", "notes.txt", []byte("x"))
		req := authed(httptest.NewRequest(http.MethodPost, "/files", body), token)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, utils.ErrCodeMissingParameter, decodeResponse(t, resp).Error)
	})

	t.Run("400 with extension code from the service", func(t *testing.T) {
		app, svc, token := newTestApp(t)

		svc.On("Upload", mock.Anything, mock.Anything).Return(nil, serviceimpl.ErrExtensionNotAllowed)

		body, contentType := multipartBody(t, "file", "tool.exe", []byte("mz"))
		req := authed(httptest.NewRequest(http.MethodPost, "/files", body), token)
		req.Header.Set("Content-Type", contentType)

		resp, err := app.Test(req)
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, utils.ErrCodeExtensionNotAllowed, decodeResponse(t, resp).Error)
	})
}

func TestGetFileInfoEndpoint(t *testing.T) {
	t.Run("200 with metadata", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		metadata := sampleMetadata()
		svc.On("GetInfo", mock.Anything, metadata.ID).Return(metadata, nil)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files/"+metadata.ID, nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		envelope := decodeResponse(t, resp)
		assert.True(t, envelope.Success)
		data := envelope.Data.(map[string]any)
		assert.Equal(t, metadata.ID, data["id"])
	})

	t.Run("404 for unknown id", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("GetInfo", mock.Anything, "missing").Return(nil, serviceimpl.ErrFileNotFound)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files/missing", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		assert.Equal(t, utils.ErrCodeNotFound, decodeResponse(t, resp).Error)
	})
}

func TestDownloadFileEndpoint(t *testing.T) {
	t.Run("streams bytes with attachment headers", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		metadata := sampleMetadata()
		metadata.OriginalName = "my notes.txt"
		content := []byte("0123456789")

		svc.On("Download", mock.Anything, metadata.ID).
			Return(io.NopCloser(bytes.NewReader(content)), metadata, nil)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files/"+metadata.ID+"/download", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		body, err := io.ReadAll(resp.Body)
		require.NoError(t, err)
		assert.Equal(t, content, body)

		assert.Equal(t, "text/plain", resp.Header.Get("Content-Type"))
		assert.Equal(t, "10", resp.Header.Get("Content-Length"))
		disposition := resp.Header.Get("Content-Disposition")
		assert.Contains(t, disposition, "attachment")
		assert.Contains(t, disposition, "my%20notes.txt")
	})

	t.Run("500 with storage code on read failure", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("Download", mock.Anything, "id-1").Return(nil, nil, serviceimpl.ErrStorageRead)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files/id-1/download", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, utils.ErrCodeStorage, decodeResponse(t, resp).Error)
	})
}

func TestListEndpoints(t *testing.T) {
	t.Run("my files returns the caller's uploads", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("ListByUploader", mock.Anything, "alice").
			Return([]*models.FileMetadata{sampleMetadata()}, nil)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files/my", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		envelope := decodeResponse(t, resp)
		data := envelope.Data.([]any)
		assert.Len(t, data, 1)
	})

	t.Run("list all returns an empty array when there is nothing", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("ListAll", mock.Anything).Return([]*models.FileMetadata{}, nil)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		envelope := decodeResponse(t, resp)
		assert.True(t, envelope.Success)
		data := envelope.Data.([]any)
		assert.Empty(t, data)
	})
}

func TestDeleteFileEndpoint(t *testing.T) {
	t.Run("204 on success", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("Delete", mock.Anything, "id-1").Return(nil)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodDelete, "/files/id-1", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	})

	t.Run("404 when already deleted", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("Delete", mock.Anything, "id-1").Return(serviceimpl.ErrFileNotFound)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodDelete, "/files/id-1", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}

func TestPresignedEndpoints(t *testing.T) {
	t.Run("download URL with default expiry", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("PresignedDownloadURL", mock.Anything, "id-1", 60).
			Return(&dto.PresignedURLResponse{
				URL:       "https://store/signed-get",
				ExpiresAt: time.Now().Add(time.Hour),
			}, nil)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files/id-1/presigned", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeResponse(t, resp).Data.(map[string]any)
		assert.Equal(t, "https://store/signed-get", data["url"])
		assert.NotEmpty(t, data["expiresAt"])
	})

	t.Run("non-numeric expiry is a type mismatch", func(t *testing.T) {
		app, _, token := newTestApp(t)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodGet, "/files/id-1/presigned?expiryMinutes=soon", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, utils.ErrCodeTypeMismatch, decodeResponse(t, resp).Error)
	})

	t.Run("upload URL requires fileName", func(t *testing.T) {
		app, _, token := newTestApp(t)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodPost, "/files/presigned/upload", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, utils.ErrCodeMissingParameter, decodeResponse(t, resp).Error)
	})

	t.Run("upload URL rejects disallowed extensions without generating anything", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("PresignedUploadURL", mock.Anything, "tool.exe", 60).
			Return(nil, serviceimpl.ErrExtensionNotAllowed)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodPost, "/files/presigned/upload?fileName=tool.exe", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, utils.ErrCodeExtensionNotAllowed, decodeResponse(t, resp).Error)
	})

	t.Run("upload URL success", func(t *testing.T) {
		app, svc, token := newTestApp(t)
		svc.On("PresignedUploadURL", mock.Anything, "image.png", 15).
			Return(&dto.PresignedURLResponse{
				URL:       "https://store/signed-put",
				ExpiresAt: time.Now().Add(15 * time.Minute),
			}, nil)

		resp, err := app.Test(authed(httptest.NewRequest(http.MethodPost, "/files/presigned/upload?fileName=image.png&expiryMinutes=15", nil), token))
		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		data := decodeResponse(t, resp).Data.(map[string]any)
		assert.Equal(t, "https://store/signed-put", data["url"])
	})
}

func TestMethodNotAllowed(t *testing.T) {
	app, _, token := newTestApp(t)

	resp, err := app.Test(authed(httptest.NewRequest(http.MethodPut, "/files/id-1", nil), token))
	require.NoError(t, err)
	assert.Equal(t, http.StatusMethodNotAllowed, resp.StatusCode)
	assert.Equal(t, utils.ErrCodeMethodNotAllowed, decodeResponse(t, resp).Error)
}
