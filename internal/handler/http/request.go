package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RequestHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	SetStatus(w http.ResponseWriter, r *http.Request)
	ListMine(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type requestHandlerImpl struct {
	requestService request.RequestService
}

func NewRequestHandler(requestService request.RequestService) RequestHandler {
	return &requestHandlerImpl{
		requestService: requestService,
	}
}

// Create implements RequestHandler. Accepts multipart form data with an
// optional attachment, or a plain JSON body when no file is attached.
func (h *requestHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req request.CreateRequestRequest

	contentType := r.Header.Get("Content-Type")
	if len(contentType) >= 19 && contentType[:19] == "multipart/form-data" {
		// Parse multipart form (max 10MB)
		if err := r.ParseMultipartForm(10 << 20); err != nil {
			slog.Error("Failed to parse multipart form", "error", err)
			response.BadRequest(w, "Failed to parse form data", nil)
			return
		}

		dataJSON := r.FormValue("data")
		if dataJSON == "" {
			response.BadRequest(w, "Field 'data' is required", nil)
			return
		}

		if err := json.Unmarshal([]byte(dataJSON), &req); err != nil {
			slog.Error("Failed to unmarshal JSON data", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}

		file, fileHeader, err := r.FormFile("attachment")
		if err == nil {
			defer file.Close()
			req.File = file
			req.FileHeader = fileHeader
		} else if err != http.ErrMissingFile {
			slog.Error("Failed to get file from form", "error", err)
			response.BadRequest(w, "Invalid file upload", nil)
			return
		}
	} else {
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			slog.Error("Failed to decode request body", "error", err)
			response.BadRequest(w, "Invalid request format", nil)
			return
		}
	}

	result, err := h.requestService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Request submitted successfully", result)
}

// SetStatus implements RequestHandler.
func (h *requestHandlerImpl) SetStatus(w http.ResponseWriter, r *http.Request) {
	requestID := chi.URLParam(r, "id")

	var req request.SetStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	result, err := h.requestService.SetStatus(r.Context(), requestID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Request status updated", result)
}

// ListMine implements RequestHandler.
func (h *requestHandlerImpl) ListMine(w http.ResponseWriter, r *http.Request) {
	max, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	result, err := h.requestService.ListMine(r.Context(), max)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// List implements RequestHandler. With a status query param it returns a
// capped newest-first slice, otherwise a cursor-paged listing.
func (h *requestHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	status := r.URL.Query().Get("status")
	if status != "" {
		max, _ := strconv.Atoi(r.URL.Query().Get("limit"))
		result, err := h.requestService.ListByStatus(r.Context(), status, max)
		if err != nil {
			response.HandleError(w, err)
			return
		}
		response.Success(w, result)
		return
	}

	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	after := r.URL.Query().Get("after")

	result, err := h.requestService.ListPage(r.Context(), pageSize, after)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}
