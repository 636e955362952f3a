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

type VideoHandler struct {
	log    *logger.Logger
	videos services.VideoService
}

func NewVideoHandler(log *logger.Logger, videos services.VideoService) *VideoHandler {
	return &VideoHandler{
		log:    log.With("handler", "VideoHandler"),
		videos: videos,
	}
}

type processVideoRequest struct {
	YoutubeURL string `json:"youtube_url"`
}

func (h *VideoHandler) ProcessVideo(c *gin.Context) {
	var req processVideoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}
	videoURL := strings.TrimSpace(req.YoutubeURL)
	if videoURL == "" {
		response.RespondError(c, http.StatusBadRequest, "invalid_youtube_url", errors.New("Invalid YouTube URL"))
		return
	}

	result, err := h.videos.ProcessVideo(c.Request.Context(), videoURL)
	if err != nil {
		h.log.Error("Video processing failed", "url", videoURL, "error", err)
		response.RespondError(c, http.StatusInternalServerError, "processing_failed", err)
		return
	}
	response.RespondOK(c, result)
}
