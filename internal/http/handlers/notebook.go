package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/intervid/intervid-backend/internal/http/response"
	"github.com/intervid/intervid-backend/internal/pkg/logger"
	"github.com/intervid/intervid-backend/internal/store"
	"github.com/intervid/intervid-backend/internal/types"
)

type NotebookHandler struct {
	log       *logger.Logger
	notebooks *store.NotebookStore
}

func NewNotebookHandler(log *logger.Logger, notebooks *store.NotebookStore) *NotebookHandler {
	return &NotebookHandler{
		log:       log.With("handler", "NotebookHandler"),
		notebooks: notebooks,
	}
}

type saveNotebookRequest struct {
	Name string         `json:"name"`
	Data map[string]any `json:"data"`
}

type saveNotebookResponse struct {
	Message  string `json:"message"`
	Filename string `json:"filename"`
}

type listNotebooksResponse struct {
	Notebooks []types.NotebookSummary `json:"notebooks"`
}

func (h *NotebookHandler) SaveNotebook(c *gin.Context) {
	var req saveNotebookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.RespondError(c, http.StatusBadRequest, "invalid_request", err)
		return
	}

	filename, err := h.notebooks.Save(req.Name, req.Data)
	if err != nil {
		h.log.Error("Saving notebook failed", "name", req.Name, "error", err)
		response.RespondError(c, http.StatusInternalServerError, "save_failed", err)
		return
	}
	response.RespondOK(c, saveNotebookResponse{
		Message:  "Notebook saved successfully",
		Filename: filename,
	})
}

func (h *NotebookHandler) ListNotebooks(c *gin.Context) {
	notebooks, err := h.notebooks.List()
	if err != nil {
		h.log.Error("Listing notebooks failed", "error", err)
		response.RespondError(c, http.StatusInternalServerError, "list_failed", err)
		return
	}
	response.RespondOK(c, listNotebooksResponse{Notebooks: notebooks})
}

func (h *NotebookHandler) GetNotebook(c *gin.Context) {
	name := c.Param("name")
	raw, err := h.notebooks.Load(name)
	if err != nil {
		h.log.Error("Loading notebook failed", "name", name, "error", err)
		response.RespondError(c, http.StatusInternalServerError, "load_failed", err)
		return
	}
	if raw == nil {
		response.RespondError(c, http.StatusNotFound, "notebook_not_found", errors.New("Notebook not found"))
		return
	}
	c.Data(http.StatusOK, "application/json", raw)
}

func (h *NotebookHandler) DeleteNotebook(c *gin.Context) {
	name := c.Param("name")
	removed, err := h.notebooks.Delete(name)
	if err != nil {
		h.log.Error("Deleting notebook failed", "name", name, "error", err)
		response.RespondError(c, http.StatusInternalServerError, "delete_failed", err)
		return
	}
	if !removed {
		response.RespondError(c, http.StatusNotFound, "notebook_not_found", errors.New("Notebook not found"))
		return
	}
	response.RespondOK(c, gin.H{"message": "Notebook deleted successfully"})
}
