package services

import (
	"context"
	"encoding/base64"
	"strings"

	"github.com/intervid/intervid-backend/internal/clients/gemini"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
)

type ImageService interface {
	// GenerateFromPrompt returns the generated image base64-encoded. An
	// empty prompt yields an empty result without any upstream call; an
	// upstream failure is returned as an error for the handler to map.
	GenerateFromPrompt(ctx context.Context, prompt string) (string, error)
}

type imageService struct {
	log *logger.Logger
	ai  gemini.Client // nil when no API credentials are configured
}

func NewImageService(baseLog *logger.Logger, ai gemini.Client) ImageService {
	return &imageService{
		log: baseLog.With("service", "ImageService"),
		ai:  ai,
	}
}

func (is *imageService) GenerateFromPrompt(ctx context.Context, prompt string) (string, error) {
	if strings.TrimSpace(prompt) == "" {
		return "", nil
	}
	if is.ai == nil {
		is.log.Warn("No AI credentials configured, cannot generate image")
		return "", nil
	}

	is.log.Info("Generating image", "prompt", prompt)
	img, err := is.ai.GenerateImage(ctx, prompt)
	if err != nil {
		is.log.Error("Image generation failed", "error", err)
		return "", err
	}
	if len(img.Bytes) == 0 {
		return "", nil
	}
	return base64.StdEncoding.EncodeToString(img.Bytes), nil
}
