package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"vecino-backend-go/internal/core"
)

// maxUploadBatch caps how many files one request may carry.
const maxUploadBatch = 10

// UploadHandler receives multipart image uploads for the owner's profile.
type UploadHandler struct {
	storageService core.StorageService
	logger         *zap.Logger
}

// NewUploadHandler creates a new UploadHandler. The storage service may be
// nil when no bucket is configured; uploads then answer 503.
func NewUploadHandler(ss core.StorageService, logger *zap.Logger) *UploadHandler {
	return &UploadHandler{storageService: ss, logger: logger}
}

// UploadImages handles POST /profile/images. Files go in the multipart
// field "images"; an optional "subresource" form value routes them under
// gallery, logo, services or portfolio paths. Responds 207 when only part
// of the batch made it.
func (h *UploadHandler) UploadImages(c *gin.Context) {
	userID, ok := requireUserID(c)
	if !ok {
		return
	}

	if h.storageService == nil {
		mapCoreErrorToStatus(c, h.logger, core.ErrStorageUnavailable)
		return
	}

	form, err := c.MultipartForm()
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid multipart form", Details: err.Error()})
		return
	}
	files := form.File["images"]
	if len(files) == 0 {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "At least one file is required in the 'images' field"})
		return
	}
	if len(files) > maxUploadBatch {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Too many files in one request"})
		return
	}

	subresource := c.PostForm("subresource")
	if subresource == "" {
		subresource = "gallery"
	}

	urls, failed, err := h.storageService.UploadImages(c.Request.Context(), userID, subresource, files)
	if err != nil {
		mapCoreErrorToStatus(c, h.logger, err)
		return
	}

	status := http.StatusOK
	if len(failed) > 0 {
		status = http.StatusMultiStatus
	}
	c.JSON(status, UploadResponse{URLs: urls, Failed: failed})
}
