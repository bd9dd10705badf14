package handlers

import (
	"bytes"
	"fmt"
	"io"
	"net/url"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	storage_go "github.com/supabase-community/storage-go"

	"mobilemall/api-gateway/utils"
)

// maxUploadBytes caps image uploads at 5 MiB, checked before any storage
// call.
const maxUploadBytes = 5 * 1024 * 1024

var (
	folderPattern = regexp.MustCompile(`^[a-z0-9_-]{1,40}$`)
	extPattern    = regexp.MustCompile(`^[a-z0-9]{1,8}$`)
)

// UploadImage godoc
// @Summary Upload an image to object storage
// @Description Validates type and size, stores the file under <folder>/<timestamp>.<ext> and returns its public URL.
// @Tags admin
// @Accept mpfd
// @Produce json
// @Param file formData file true "Image file (max 5 MiB)"
// @Param folder formData string false "Destination folder (default: general)"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} map[string]interface{}
// @Failure 502 {object} map[string]interface{}
// @Router /admin/uploads [post]
func (h *ApplicationHandler) UploadImage(c *fiber.Ctx) error {
	folder := c.FormValue("folder", "general")
	if !folderPattern.MatchString(folder) {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Invalid folder name")
	}

	file, err := c.FormFile("file")
	if err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Missing 'file' field: "+err.Error())
	}

	if file.Size > maxUploadBytes {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "File exceeds the 5MB limit")
	}

	contentType := file.Header.Get(fiber.HeaderContentType)
	if !strings.HasPrefix(contentType, "image/") {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Only image files can be uploaded")
	}

	ext := strings.ToLower(strings.TrimPrefix(filepath.Ext(file.Filename), "."))
	if !extPattern.MatchString(ext) {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "File name needs a plain alphanumeric extension")
	}

	fileHandle, err := file.Open()
	if err != nil {
		h.Logger.WithError(err).Error("Error opening uploaded file")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Error reading uploaded file")
	}
	defer fileHandle.Close()

	content, err := io.ReadAll(fileHandle)
	if err != nil {
		h.Logger.WithError(err).Error("Error reading uploaded file")
		return utils.RespondWithError(c, fiber.StatusInternalServerError, "Error reading uploaded file")
	}

	objectPath := fmt.Sprintf("%s/%d.%s", folder, time.Now().UnixMilli(), ext)
	bucket := h.Config.StorageBucket

	_, err = h.DB.Storage.UploadFile(bucket, objectPath, bytes.NewReader(content), storage_go.FileOptions{
		ContentType: &contentType,
	})
	if err != nil {
		h.Logger.WithError(err).Errorf("Storage upload failed for %s", objectPath)
		return utils.RespondWithError(c, fiber.StatusBadGateway, "Storage upload failed; enter an image URL directly instead")
	}

	publicURL := h.DB.Storage.GetPublicUrl(bucket, objectPath).SignedURL
	h.Logger.Infof("Uploaded image to %s", objectPath)
	return utils.RespondWithJSON(c, fiber.StatusCreated, fiber.Map{
		"url":  publicURL,
		"path": objectPath,
	})
}

// RegisterImageURLRequest is the payload for pasting an image URL
// instead of uploading a file.
type RegisterImageURLRequest struct {
	URL string `json:"url" validate:"required"`
}

// RegisterImageURL validates a pasted image URL and echoes it back.
// Nothing is stored; this is the fallback path when uploads fail.
func (h *ApplicationHandler) RegisterImageURL(c *fiber.Ctx) error {
	req := new(RegisterImageURLRequest)
	if err := c.BodyParser(req); err != nil {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Cannot parse URL JSON: "+err.Error())
	}
	if err := h.Validate.Struct(req); err != nil {
		return utils.RespondWithValidationError(c, err)
	}

	parsed, err := url.ParseRequestURI(strings.TrimSpace(req.URL))
	if err != nil || (parsed.Scheme != "http" && parsed.Scheme != "https") {
		return utils.RespondWithError(c, fiber.StatusBadRequest, "Enter a valid http(s) URL")
	}

	return utils.RespondWithJSON(c, fiber.StatusOK, fiber.Map{"url": parsed.String()})
}
