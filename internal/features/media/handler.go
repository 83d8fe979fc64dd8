package media

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/xyz-asif/foundly/internal/pkg/cloudinary"
	"github.com/xyz-asif/foundly/internal/pkg/response"
)

type Handler struct {
	cloudinary *cloudinary.Service
}

func NewHandler(cld *cloudinary.Service) *Handler {
	return &Handler{cloudinary: cld}
}

// UploadImage godoc
// @Summary Upload an item photo
// @Description Uploads an image to Cloudinary and returns its hosted URL for use in item reports.
// @Tags media
// @Accept multipart/form-data
// @Produce json
// @Security BearerAuth
// @Param file formData file true "Image to upload"
// @Success 200 {object} response.SuccessResponse
// @Failure 400 {object} response.ErrorResponse
// @Failure 503 {object} response.ErrorResponse
// @Router /media/image [post]
func (h *Handler) UploadImage(c *gin.Context) {
	if h.cloudinary == nil {
		response.Error(c, http.StatusServiceUnavailable, "Image uploads are not configured", "SERVICE_UNAVAILABLE")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		response.BadRequest(c, "File is required", "MISSING_FILE")
		return
	}
	defer file.Close()

	if err := cloudinary.ValidateImageFile(header); err != nil {
		response.BadRequest(c, err.Error(), "INVALID_FILE")
		return
	}

	result, err := h.cloudinary.UploadImage(c.Request.Context(), file, header.Filename)
	if err != nil {
		response.InternalServerError(c, "Failed to upload image", "UPLOAD_FAILED")
		return
	}

	response.Success(c, result)
}
