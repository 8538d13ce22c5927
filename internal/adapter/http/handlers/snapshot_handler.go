package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/gin-gonic/gin"

	"moap_dashboard/internal/usecase"
	"moap_dashboard/pkg"
)

const maxSnapshotBytes = 16 << 20

var (
	errInvalidSnapshotPayload = pkg.NewDomainErrorSimple("INVALID_SNAPSHOT", "Invalid snapshot payload", http.StatusBadRequest)
)

// SnapshotHandler exposes the persisted dashboard state for backup and
// restore.
type SnapshotHandler struct {
	usecase usecase.ISnapshotUseCase
}

func NewSnapshotHandler(uc usecase.ISnapshotUseCase) *SnapshotHandler {
	return &SnapshotHandler{usecase: uc}
}

// ExportSnapshot godoc
// @Summary  Download the persisted state as JSON
// @Tags     admin
// @Produce  json
// @Success  200 {object} object
// @Router   /admin/snapshot [get]
func (h *SnapshotHandler) ExportSnapshot(c *gin.Context) {
	data, err := h.usecase.Export(c.Request.Context())
	if err != nil {
		writeError(c, mapSnapshotError(err))
		return
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

// ImportSnapshot replaces the collections present in the uploaded document.
func (h *SnapshotHandler) ImportSnapshot(c *gin.Context) {
	data, err := io.ReadAll(io.LimitReader(c.Request.Body, maxSnapshotBytes))
	if err != nil {
		writeError(c, errInvalidSnapshotPayload)
		return
	}
	if err := h.usecase.Import(c.Request.Context(), data); err != nil {
		writeError(c, mapSnapshotError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

// FlushSnapshot godoc
// @Summary  Write pending changes to the key-value store now
// @Tags     admin
// @Success  204
// @Router   /admin/snapshot [post]
func (h *SnapshotHandler) FlushSnapshot(c *gin.Context) {
	if err := h.usecase.Flush(c.Request.Context()); err != nil {
		writeError(c, mapSnapshotError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *SnapshotHandler) ResetSnapshot(c *gin.Context) {
	if err := h.usecase.Reset(c.Request.Context()); err != nil {
		writeError(c, mapSnapshotError(err))
		return
	}
	c.Status(http.StatusNoContent)
}

func mapSnapshotError(err error) *pkg.AppError {
	if errors.Is(err, usecase.ErrInvalidSnapshot) {
		return errInvalidSnapshotPayload
	}
	return mapCommonError(err)
}
