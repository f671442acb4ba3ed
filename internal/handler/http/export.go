package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/handler/http/response"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/export"
)

type ExportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ExportRequests(w http.ResponseWriter, r *http.Request)
}

type exportHandlerImpl struct {
	exportService export.ExportService
}

func NewExportHandler(exportService export.ExportService) ExportHandler {
	return &exportHandlerImpl{
		exportService: exportService,
	}
}

// ExportAttendance implements ExportHandler.
func (h *exportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.exportService.ExportAttendance(r.Context(), export.AttendanceExportRequest{
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		Format: r.URL.Query().Get("format"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamArtifact(w, artifact)
}

// ExportRequests implements ExportHandler.
func (h *exportHandlerImpl) ExportRequests(w http.ResponseWriter, r *http.Request) {
	artifact, err := h.exportService.ExportRequests(r.Context(), export.RequestExportRequest{
		From:   r.URL.Query().Get("from"),
		To:     r.URL.Query().Get("to"),
		Status: r.URL.Query().Get("status"),
		Format: r.URL.Query().Get("format"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	streamArtifact(w, artifact)
}

func streamArtifact(w http.ResponseWriter, artifact export.Artifact) {
	w.Header().Set("Content-Type", artifact.ContentType)
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", artifact.Filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(artifact.Data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(artifact.Data)
}
