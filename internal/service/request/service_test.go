package request

import (
	"context"
	"fmt"
	"io"
	"testing"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/pagination"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/sse"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/validator"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRequestRepo struct {
	request.RequestRepository
	requests map[string]request.Request
	seq      int
}

func newFakeRequestRepo() *fakeRequestRepo {
	return &fakeRequestRepo{requests: make(map[string]request.Request)}
}

func (f *fakeRequestRepo) Create(ctx context.Context, req request.Request) (request.Request, error) {
	f.seq++
	req.ID = fmt.Sprintf("req-%d", f.seq)
	req.CreatedAt = time.Now()
	f.requests[req.ID] = req
	return req, nil
}

func (f *fakeRequestRepo) GetByID(ctx context.Context, id string) (request.Request, error) {
	req, ok := f.requests[id]
	if !ok {
		return request.Request{}, request.ErrRequestNotFound
	}
	return req, nil
}

func (f *fakeRequestRepo) UpdateStatus(ctx context.Context, id string, status string, approverUID string) error {
	req, ok := f.requests[id]
	if !ok {
		return request.ErrRequestNotFound
	}
	now := time.Now()
	req.Status = status
	req.ApproverUID = &approverUID
	req.UpdatedAt = &now
	f.requests[id] = req
	return nil
}

func (f *fakeRequestRepo) ListByUID(ctx context.Context, uid string, max int) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.requests {
		if req.UID == uid {
			out = append(out, req)
		}
	}
	return out, nil
}

func (f *fakeRequestRepo) ListPage(ctx context.Context, pageSize int, after *pagination.Cursor) ([]request.Request, error) {
	var out []request.Request
	for _, req := range f.requests {
		out = append(out, req)
		if len(out) == pageSize {
			break
		}
	}
	return out, nil
}

type fakeUserRepo struct {
	user.UserRepository
	users map[string]user.User
}

func (f *fakeUserRepo) GetByID(ctx context.Context, uid string) (user.User, error) {
	u, ok := f.users[uid]
	if !ok {
		return user.User{}, user.ErrUserNotFound
	}
	return u, nil
}

type fakeFileService struct{}

func (fakeFileService) UploadAttendancePhoto(ctx context.Context, uid string, ymd string, file io.Reader, filename string, eventType string) (string, error) {
	return "attendance/" + uid + "/" + ymd + "/" + filename, nil
}

func (fakeFileService) UploadRequestAttachment(ctx context.Context, uid string, file io.Reader, filename string) (string, error) {
	return "requests/" + uid + "/" + filename, nil
}

func (fakeFileService) DeleteFile(ctx context.Context, path string) error { return nil }

func (fakeFileService) GetFileURL(ctx context.Context, path string, expiry time.Duration) (string, error) {
	return "http://localhost:8080/uploads/" + path, nil
}

func authedContext(t *testing.T, uid string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("test-secret"), nil)
	tok, _, err := ja.Encode(map[string]interface{}{"uid": uid, "type": "access"})
	require.NoError(t, err)
	return jwtauth.NewContext(context.Background(), tok, nil)
}

func newTestService() (request.RequestService, *fakeRequestRepo) {
	repo := newFakeRequestRepo()
	users := map[string]user.User{
		"u1":    {UID: "u1", Active: true},
		"admin": {UID: "admin", Active: true, Role: user.RoleAdmin},
	}
	svc := NewRequestService(nil, repo, &fakeUserRepo{users: users}, fakeFileService{}, sse.NewHub())
	return svc, repo
}

func TestCreate_OvertimeDurationComputed(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "u1")

	resp, err := svc.Create(ctx, request.CreateRequestRequest{
		Type:      "Overtime",
		Reason:    "deploy window",
		Date:      "2026-02-04",
		StartTime: "18:00",
		EndTime:   "20:30",
	})
	require.NoError(t, err)

	assert.Equal(t, request.TypeOvertime, resp.Type)
	assert.Equal(t, request.StatusPending, resp.Status)
	require.NotNil(t, resp.DurationMinutes)
	assert.Equal(t, 150, *resp.DurationMinutes)
	assert.Equal(t, "u1", resp.UID)
}

func TestCreate_OvertimeDurationOverrideWins(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "u1")

	override := 90
	resp, err := svc.Create(ctx, request.CreateRequestRequest{
		Type:            "overtime",
		Date:            "2026-02-04",
		StartTime:       "18:00",
		EndTime:         "20:30",
		DurationMinutes: &override,
	})
	require.NoError(t, err)
	require.NotNil(t, resp.DurationMinutes)
	assert.Equal(t, 90, *resp.DurationMinutes)
}

func TestCreate_LeaveRequiresRange(t *testing.T) {
	svc, _ := newTestService()
	ctx := authedContext(t, "u1")

	_, err := svc.Create(ctx, request.CreateRequestRequest{
		Type: "leave",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "from")
}

func TestSetStatus_RecordsApprover(t *testing.T) {
	svc, repo := newTestService()

	resp, err := svc.Create(authedContext(t, "u1"), request.CreateRequestRequest{
		Type: "leave",
		From: "2026-02-03",
		To:   "2026-02-05",
	})
	require.NoError(t, err)

	updated, err := svc.SetStatus(authedContext(t, "admin"), resp.ID, request.SetStatusRequest{
		Status: request.StatusApproved,
	})
	require.NoError(t, err)

	assert.Equal(t, request.StatusApproved, updated.Status)
	require.NotNil(t, updated.ApproverUID)
	assert.Equal(t, "admin", *updated.ApproverUID)
	assert.Equal(t, request.StatusApproved, repo.requests[resp.ID].Status)
}

func TestSetStatus_LatestWriteWins(t *testing.T) {
	svc, _ := newTestService()

	resp, err := svc.Create(authedContext(t, "u1"), request.CreateRequestRequest{
		Type: "sick",
		From: "2026-02-03",
		To:   "2026-02-03",
	})
	require.NoError(t, err)

	adminCtx := authedContext(t, "admin")

	_, err = svc.SetStatus(adminCtx, resp.ID, request.SetStatusRequest{Status: request.StatusApproved})
	require.NoError(t, err)

	// A second write on a processed request overwrites without complaint
	updated, err := svc.SetStatus(adminCtx, resp.ID, request.SetStatusRequest{Status: request.StatusRejected})
	require.NoError(t, err)
	assert.Equal(t, request.StatusRejected, updated.Status)
}

func TestSetStatus_UnknownRequest(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetStatus(authedContext(t, "admin"), "missing", request.SetStatusRequest{
		Status: request.StatusApproved,
	})
	assert.ErrorIs(t, err, request.ErrRequestNotFound)
}

func TestSetStatus_InvalidStatusRejected(t *testing.T) {
	svc, _ := newTestService()

	_, err := svc.SetStatus(authedContext(t, "admin"), "req-1", request.SetStatusRequest{
		Status: "maybe",
	})

	var verrs validator.ValidationErrors
	require.ErrorAs(t, err, &verrs)
	assert.Contains(t, verrs.ToMap(), "status")
}
