package api

import (
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tastetrail/backend/internal/middleware"
	"github.com/tastetrail/backend/internal/service"
)

// maxImageSize caps uploads at 5 MiB.
const maxImageSize = 5 << 20

// ImageHandler serves image uploads for recipe images and review photos.
type ImageHandler struct {
	imageService *service.ImageService
	authService  *service.AuthService
}

func NewImageHandler(imageService *service.ImageService, authService *service.AuthService) *ImageHandler {
	return &ImageHandler{
		imageService: imageService,
		authService:  authService,
	}
}

func (h *ImageHandler) RegisterRoutes(router *gin.RouterGroup) {
	images := router.Group("/images")
	images.Use(middleware.AuthMiddleware(h.authService))
	{
		images.POST("", h.Upload)
	}
}

func (h *ImageHandler) Upload(c *gin.Context) {
	file, err := c.FormFile("image")
	if err != nil {
		fail(c, http.StatusBadRequest, "image file is required")
		return
	}
	if file.Size > maxImageSize {
		fail(c, http.StatusBadRequest, "image exceeds the 5MB limit")
		return
	}

	f, err := file.Open()
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to read image")
		return
	}
	defer func() { _ = f.Close() }()

	data, err := io.ReadAll(f)
	if err != nil {
		fail(c, http.StatusInternalServerError, "failed to read image")
		return
	}

	url, err := h.imageService.Upload(c.Request.Context(), data, file.Header.Get("Content-Type"), file.Filename)
	if err != nil {
		fail(c, http.StatusBadRequest, err.Error())
		return
	}

	respond(c, http.StatusCreated, gin.H{"url": url})
}
