package http

import (
	"github.com/gin-gonic/gin"

	httpH "github.com/intervid/intervid-backend/internal/http/handlers"
	httpMW "github.com/intervid/intervid-backend/internal/http/middleware"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
)

type RouterConfig struct {
	Log *logger.Logger

	VideoHandler    *httpH.VideoHandler
	ImageHandler    *httpH.ImageHandler
	NotebookHandler *httpH.NotebookHandler
	HealthHandler   *httpH.HealthHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	r := gin.Default()
	r.Use(httpMW.AttachTraceContext())
	r.Use(httpMW.RequestLogger(cfg.Log))
	r.Use(httpMW.CORS())

	if cfg.HealthHandler != nil {
		r.GET("/", cfg.HealthHandler.Root)
		r.GET("/healthcheck", cfg.HealthHandler.HealthCheck)
	}

	if cfg.VideoHandler != nil {
		r.POST("/process-video", cfg.VideoHandler.ProcessVideo)
	}

	if cfg.ImageHandler != nil {
		r.POST("/generate-image", cfg.ImageHandler.GenerateImage)
	}

	if cfg.NotebookHandler != nil {
		r.POST("/save-notebook", cfg.NotebookHandler.SaveNotebook)
		r.GET("/notebooks", cfg.NotebookHandler.ListNotebooks)
		r.GET("/notebooks/:name", cfg.NotebookHandler.GetNotebook)
		r.DELETE("/notebooks/:name", cfg.NotebookHandler.DeleteNotebook)
	}

	return r
}
