package handlers

import (
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/intervid/intervid-backend/internal/http/response"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
	"github.com/intervid/intervid-backend/internal/services"
)

type ImageHandler struct {
	log    *logger.Logger
	images services.ImageService
}

func NewImageHandler(log *logger.Logger, images services.ImageService) *ImageHandler {
	return &ImageHandler{
		log:    log.With("handler", "ImageHandler"),
		images: images,
	}
}

type generateImageRequest struct {
	Prompt string `json:"prompt"`
}

type generateImageResponse struct {
	ImageBase64 string `json:"image_base64"`
}

func (h *ImageHandler) GenerateImage(c *gin.Context) {
	var req generateImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	if strings.TrimSpace(req.Prompt) == "" {
		response.RespondError(c, http.StatusBadRequest, "prompt_required", errors.New("Prompt is required"))
		return
	}

	imageBase64, err := h.images.GenerateFromPrompt(c.Request.Context(), req.Prompt)
	if err != nil {
		response.RespondError(c, http.StatusInternalServerError, "image_generation_failed", err)
		return
	}
	if imageBase64 == "" {
		response.RespondError(c, http.StatusInternalServerError, "image_generation_failed", errors.New("Failed to generate image"))
		return
	}
	response.RespondOK(c, generateImageResponse{ImageBase64: imageBase64})
}
