package request

import (
	"context"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
)

type ListPageResponse struct {
	Rows []RequestResponse   `json:"rows"`
	Page pagination.PageInfo `json:"page"`
}

type RequestService interface {
	// Create validates and persists a new request for the current subject
	// with initial status pending
	Create(ctx context.Context, req CreateRequestRequest) (RequestResponse, error)

	// SetStatus advances a request to approved/rejected/pending, recording
	// the approver (admin/manager action)
	SetStatus(ctx context.Context, requestID string, req SetStatusRequest) (RequestResponse, error)

	// ListMine returns the current subject's requests, newest first
	ListMine(ctx context.Context, max int) ([]RequestResponse, error)

	// ListByStatus returns requests with the given status, newest first
	// (admin view)
	ListByStatus(ctx context.Context, status string, max int) ([]RequestResponse, error)

	// ListPage returns one cursor-paged slice of all requests (admin view)
	ListPage(ctx context.Context, pageSize int, after string) (ListPageResponse, error)
}
