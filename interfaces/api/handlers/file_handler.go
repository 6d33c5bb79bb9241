package handlers

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/gofiber/fiber/v2"

	"file-gateway/application/serviceimpl"
	"file-gateway/domain/dto"
	"file-gateway/domain/services"
	"file-gateway/pkg/logger"
	"file-gateway/pkg/utils"
)

const defaultPresignExpiryMinutes = 60

type FileHandler struct {
	fileService services.FileService
}

func NewFileHandler(fileService services.FileService) *FileHandler {
	return &FileHandler{
		fileService: fileService,
	}
}

// UploadFile handles POST /files (multipart form, field "file").
func (h *FileHandler) UploadFile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	fileHeader, err := c.FormFile("file")
	if err != nil {
		logger.WarnContext(ctx, "No file provided", "error", err)
		return utils.BadRequestResponse(c, utils.ErrCodeMissingParameter, "Required form field is missing: file")
	}

	file, err := fileHeader.Open()
	if err != nil {
		logger.ErrorContext(ctx, "Failed to open uploaded file", "filename", fileHeader.Filename, "error", err)
		return utils.InternalServerErrorResponse(c)
	}
	defer file.Close()

	logger.InfoContext(ctx, "File upload attempt",
		"uploaded_by", user.Subject, "filename", fileHeader.Filename, "size", fileHeader.Size)

	metadata, err := h.fileService.Upload(ctx, &dto.UploadInput{
		Content:      file,
		OriginalName: fileHeader.Filename,
		ContentType:  fileHeader.Header.Get("Content-Type"),
		Size:         fileHeader.Size,
		UploadedBy:   user.Subject,
	})
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.CreatedResponse(c, dto.FileToFileResponse(metadata))
}

// GetFileInfo handles GET /files/:id.
func (h *FileHandler) GetFileInfo(c *fiber.Ctx) error {
	ctx := c.UserContext()

	metadata, err := h.fileService.GetInfo(ctx, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.FileToFileResponse(metadata))
}

// DownloadFile handles GET /files/:id/download, streaming the payload with
// an attachment disposition carrying the URL-encoded original name.
func (h *FileHandler) DownloadFile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	stream, metadata, err := h.fileService.Download(ctx, c.Params("id"))
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	encodedName := utils.ContentDispositionFilename(metadata.OriginalName)

	c.Set(fiber.HeaderContentType, metadata.ContentType)
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename*=UTF-8''%s", encodedName))
	c.Set(fiber.HeaderContentLength, strconv.FormatInt(metadata.Size, 10))

	// SendStream closes the reader once the body is written.
	return c.SendStream(stream, int(metadata.Size))
}

// GetMyFiles handles GET /files/my.
func (h *FileHandler) GetMyFiles(c *fiber.Ctx) error {
	ctx := c.UserContext()

	user, err := utils.GetUserFromContext(c)
	if err != nil {
		return utils.UnauthorizedResponse(c, "")
	}

	files, err := h.fileService.ListByUploader(ctx, user.Subject)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.FilesToFileResponses(files))
}

// ListFiles handles GET /files.
func (h *FileHandler) ListFiles(c *fiber.Ctx) error {
	ctx := c.UserContext()

	files, err := h.fileService.ListAll(ctx)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, dto.FilesToFileResponses(files))
}

// DeleteFile handles DELETE /files/:id. Deletion is not idempotent: a second
// delete of the same id yields 404.
func (h *FileHandler) DeleteFile(c *fiber.Ctx) error {
	ctx := c.UserContext()

	if err := h.fileService.Delete(ctx, c.Params("id")); err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.NoContentResponse(c)
}

// GetPresignedDownloadURL handles GET /files/:id/presigned?expiryMinutes=60.
func (h *FileHandler) GetPresignedDownloadURL(c *fiber.Ctx) error {
	ctx := c.UserContext()

	expiryMinutes, err := queryExpiryMinutes(c)
	if err != nil {
		return utils.BadRequestResponse(c, utils.ErrCodeTypeMismatch, "Invalid parameter type: expiryMinutes")
	}

	response, err := h.fileService.PresignedDownloadURL(ctx, c.Params("id"), expiryMinutes)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, response)
}

// GetPresignedUploadURL handles POST /files/presigned/upload?fileName=...&expiryMinutes=60.
// No metadata row is created; see FileService.PresignedUploadURL.
func (h *FileHandler) GetPresignedUploadURL(c *fiber.Ctx) error {
	ctx := c.UserContext()

	req := dto.PresignedUploadRequest{
		FileName: c.Query("fileName"),
	}
	if req.FileName == "" {
		return utils.BadRequestResponse(c, utils.ErrCodeMissingParameter, "Required parameter is missing: fileName")
	}

	expiryMinutes, err := queryExpiryMinutes(c)
	if err != nil {
		return utils.BadRequestResponse(c, utils.ErrCodeTypeMismatch, "Invalid parameter type: expiryMinutes")
	}
	req.ExpiryMinutes = expiryMinutes

	if err := utils.ValidateStruct(&req); err != nil {
		message := utils.GetValidationErrors(err)
		logger.WarnContext(ctx, "Validation failed", "message", message)
		return utils.ValidationErrorResponse(c, message)
	}

	response, err := h.fileService.PresignedUploadURL(ctx, req.FileName, req.ExpiryMinutes)
	if err != nil {
		return serviceErrorResponse(c, err)
	}

	return utils.SuccessResponse(c, response)
}

func queryExpiryMinutes(c *fiber.Ctx) (int, error) {
	raw := c.Query("expiryMinutes")
	if raw == "" {
		return defaultPresignExpiryMinutes, nil
	}
	return strconv.Atoi(raw)
}

// serviceErrorResponse translates file service errors into the envelope.
// Validation errors keep their message; storage failures get a fixed message
// so no internal detail leaks.
func serviceErrorResponse(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, serviceimpl.ErrEmptyFile):
		return utils.BadRequestResponse(c, utils.ErrCodeEmptyFile, err.Error())
	case errors.Is(err, serviceimpl.ErrFileTooLarge):
		return utils.BadRequestResponse(c, utils.ErrCodeFileTooLarge, err.Error())
	case errors.Is(err, serviceimpl.ErrExtensionNotAllowed):
		return utils.BadRequestResponse(c, utils.ErrCodeExtensionNotAllowed, err.Error())
	case errors.Is(err, serviceimpl.ErrFileNotFound):
		return utils.NotFoundResponse(c, "File not found")
	case serviceimpl.IsStorageError(err):
		return utils.ErrorResponse(c, fiber.StatusInternalServerError, utils.ErrCodeStorage, "File storage operation failed")
	default:
		return utils.InternalServerErrorResponse(c)
	}
}
