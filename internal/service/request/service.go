package request

import (
	"context"
	"fmt"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/database"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/sse"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/service/file"
	"github.com/go-chi/jwtauth/v5"
)

const adminFeedKey = "admin"

const defaultListMax = 100

type RequestServiceImpl struct {
	db *database.DB
	request.RequestRepository
	user.UserRepository
	fileService file.FileService
	hub         *sse.Hub
}

func NewRequestService(
	db *database.DB,
	requestRepo request.RequestRepository,
	userRepo user.UserRepository,
	fileService file.FileService,
	hub *sse.Hub,
) request.RequestService {
	return &RequestServiceImpl{
		db:                db,
		RequestRepository: requestRepo,
		UserRepository:    userRepo,
		fileService:       fileService,
		hub:               hub,
	}
}

func uidFromContext(ctx context.Context) (string, error) {
	_, claims, err := jwtauth.FromContext(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to extract claims from context: %w", err)
	}

	uid, ok := claims["uid"].(string)
	if !ok || uid == "" {
		return "", fmt.Errorf("uid claim is missing or invalid")
	}

	return uid, nil
}

// Create implements request.RequestService.
func (r *RequestServiceImpl) Create(ctx context.Context, req request.CreateRequestRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	uid, err := uidFromContext(ctx)
	if err != nil {
		return request.RequestResponse{}, err
	}

	subject, err := r.UserRepository.GetByID(ctx, uid)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to get user: %w", err)
	}
	if !subject.Active {
		return request.RequestResponse{}, user.ErrUserInactive
	}

	entity := request.Request{
		UID:    uid,
		Type:   req.NormalizedType(),
		Reason: req.Reason,
		Status: request.StatusPending,
	}

	if entity.Type == request.TypeOvertime {
		date := req.Date
		start := req.StartTime
		end := req.EndTime
		duration := req.ComputedDuration()
		entity.Date = &date
		entity.StartTime = &start
		entity.EndTime = &end
		entity.DurationMinutes = &duration
	} else {
		from := req.From
		to := req.To
		entity.From = &from
		entity.To = &to
	}

	if req.File != nil && req.FileHeader != nil {
		path, err := r.fileService.UploadRequestAttachment(ctx, uid, req.File, req.FileHeader.Filename)
		if err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to upload attachment: %w", err)
		}

		url, err := r.fileService.GetFileURL(ctx, path, 0)
		if err != nil {
			return request.RequestResponse{}, fmt.Errorf("failed to resolve attachment URL: %w", err)
		}
		entity.Attachment = &url
	} else if req.AttachmentURL != nil {
		entity.Attachment = req.AttachmentURL
	}

	created, err := r.RequestRepository.Create(ctx, entity)
	if err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to create request: %w", err)
	}

	resp := request.NewRequestResponse(created)

	r.hub.PublishToMany([]string{uid, adminFeedKey}, sse.Event{
		Event: "request.created",
		Data:  resp,
	})

	return resp, nil
}

// SetStatus implements request.RequestService. The write is unconditional:
// setting an already-approved request to rejected simply overwrites, and the
// latest write wins.
func (r *RequestServiceImpl) SetStatus(ctx context.Context, requestID string, req request.SetStatusRequest) (request.RequestResponse, error) {
	if err := req.Validate(); err != nil {
		return request.RequestResponse{}, err
	}

	approverUID, err := uidFromContext(ctx)
	if err != nil {
		return request.RequestResponse{}, err
	}

	if _, err := r.RequestRepository.GetByID(ctx, requestID); err != nil {
		return request.RequestResponse{}, err
	}

	if err := r.RequestRepository.UpdateStatus(ctx, requestID, req.Status, approverUID); err != nil {
		return request.RequestResponse{}, fmt.Errorf("failed to update request status: %w", err)
	}

	updated, err := r.RequestRepository.GetByID(ctx, requestID)
	if err != nil {
		return request.RequestResponse{}, err
	}

	resp := request.NewRequestResponse(updated)

	r.hub.PublishToMany([]string{updated.UID, adminFeedKey}, sse.Event{
		Event: "request.updated",
		Data:  resp,
	})

	return resp, nil
}

// ListMine implements request.RequestService.
func (r *RequestServiceImpl) ListMine(ctx context.Context, max int) ([]request.RequestResponse, error) {
	uid, err := uidFromContext(ctx)
	if err != nil {
		return nil, err
	}

	if max <= 0 {
		max = defaultListMax
	}

	requests, err := r.RequestRepository.ListByUID(ctx, uid, max)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests: %w", err)
	}

	return toResponses(requests), nil
}

// ListByStatus implements request.RequestService.
func (r *RequestServiceImpl) ListByStatus(ctx context.Context, status string, max int) ([]request.RequestResponse, error) {
	if max <= 0 {
		max = defaultListMax
	}

	requests, err := r.RequestRepository.ListByStatus(ctx, status, max)
	if err != nil {
		return nil, fmt.Errorf("failed to list requests by status: %w", err)
	}

	return toResponses(requests), nil
}

// ListPage implements request.RequestService.
func (r *RequestServiceImpl) ListPage(ctx context.Context, pageSize int, after string) (request.ListPageResponse, error) {
	if pageSize <= 0 || pageSize > 200 {
		pageSize = 20
	}

	cursor, err := pagination.Decode(after)
	if err != nil {
		return request.ListPageResponse{}, err
	}

	requests, err := r.RequestRepository.ListPage(ctx, pageSize, cursor)
	if err != nil {
		return request.ListPageResponse{}, fmt.Errorf("failed to list requests: %w", err)
	}

	var last pagination.Cursor
	if len(requests) > 0 {
		tail := requests[len(requests)-1]
		last = pagination.Cursor{CreatedAt: tail.CreatedAt, ID: tail.ID}
	}

	return request.ListPageResponse{
		Rows: toResponses(requests),
		Page: pagination.NewPageInfo(last, len(requests), pageSize),
	}, nil
}

func toResponses(requests []request.Request) []request.RequestResponse {
	responses := make([]request.RequestResponse, 0, len(requests))
	for _, req := range requests {
		responses = append(responses, request.NewRequestResponse(req))
	}
	return responses
}
