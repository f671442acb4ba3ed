package http

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/shift"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

const defaultUserPageSize = 20

type UserHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	SetRole(w http.ResponseWriter, r *http.Request)
	SetActive(w http.ResponseWriter, r *http.Request)
	AssignShift(w http.ResponseWriter, r *http.Request)
}

type userHandlerImpl struct {
	userService  user.UserService
	shiftService shift.ShiftService
}

func NewUserHandler(userService user.UserService, shiftService shift.ShiftService) UserHandler {
	return &userHandlerImpl{
		userService:  userService,
		shiftService: shiftService,
	}
}

// List implements UserHandler.
func (h *userHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	pageSize, _ := strconv.Atoi(r.URL.Query().Get("page_size"))
	if pageSize == 0 {
		pageSize = defaultUserPageSize
	}

	result, err := h.userService.ListPage(r.Context(), user.ListUsersRequest{
		PageSize: pageSize,
		After:    r.URL.Query().Get("after"),
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// SetRole implements UserHandler.
func (h *userHandlerImpl) SetRole(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req user.SetRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.userService.SetRole(r.Context(), uid, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Role updated", nil)
}

// SetActive implements UserHandler.
func (h *userHandlerImpl) SetActive(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req user.SetActiveRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.userService.SetActive(r.Context(), uid, req); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Active flag updated", nil)
}

// AssignShift implements UserHandler.
func (h *userHandlerImpl) AssignShift(w http.ResponseWriter, r *http.Request) {
	uid := chi.URLParam(r, "uid")

	var req user.AssignShiftRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Failed to decode request body", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := h.shiftService.Assign(r.Context(), uid, req.ShiftID); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Shift assignment updated", nil)
}
