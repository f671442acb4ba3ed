package attendance

import (
	"context"
	"fmt"
	"io"
	"mime/multipart"
	"testing"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/attendance"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/shift"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/pkg/sse"
	"github.com/go-chi/jwtauth/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAttendanceRepo struct {
	attendance.AttendanceRepository
	records []attendance.Attendance
}

func (f *fakeAttendanceRepo) lastForDay(uid, ymd string) *attendance.Attendance {
	for i := len(f.records) - 1; i >= 0; i-- {
		if f.records[i].UID == uid && f.records[i].YMD == ymd {
			return &f.records[i]
		}
	}
	return nil
}

func (f *fakeAttendanceRepo) AppendForDay(ctx context.Context, rec attendance.Attendance) (attendance.Attendance, error) {
	if rec.Type != attendance.NextType(f.lastForDay(rec.UID, rec.YMD)) {
		return attendance.Attendance{}, attendance.ErrUnexpectedEventType
	}
	rec.ID = fmt.Sprintf("att-%d", len(f.records)+1)
	rec.CreatedAt = time.Now()
	f.records = append(f.records, rec)
	return rec, nil
}

func (f *fakeAttendanceRepo) LastForDay(ctx context.Context, uid string, ymd string) (*attendance.Attendance, error) {
	return f.lastForDay(uid, ymd), nil
}

func (f *fakeAttendanceRepo) ListByUID(ctx context.Context, uid string, limit int) ([]attendance.Attendance, error) {
	var out []attendance.Attendance
	for _, rec := range f.records {
		if rec.UID == uid {
			out = append(out, rec)
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

type fakeShiftRepo struct {
	shift.ShiftRepository
	shifts map[string]shift.Shift
}

func (f *fakeShiftRepo) GetByID(ctx context.Context, id string) (shift.Shift, error) {
	s, ok := f.shifts[id]
	if !ok {
		return shift.Shift{}, shift.ErrShiftNotFound
	}
	return s, nil
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

func newTestService(users map[string]user.User, shifts map[string]shift.Shift) (attendance.AttendanceService, *fakeAttendanceRepo) {
	repo := &fakeAttendanceRepo{}
	svc := NewAttendanceService(nil, repo, &fakeUserRepo{users: users}, &fakeShiftRepo{shifts: shifts}, fakeFileService{}, sse.NewHub())
	return svc, repo
}

func photoHeader() *multipart.FileHeader {
	return &multipart.FileHeader{Filename: "proof.jpg", Size: 1024}
}

func TestNextType_Alternates(t *testing.T) {
	users := map[string]user.User{"u1": {UID: "u1", Active: true}}
	svc, _ := newTestService(users, nil)
	ctx := authedContext(t, "u1")

	resp, err := svc.NextType(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.TypeCheckIn, resp.NextType)

	_, err = svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckIn,
		FileHeader: photoHeader(),
	})
	require.NoError(t, err)

	resp, err = svc.NextType(ctx)
	require.NoError(t, err)
	assert.Equal(t, attendance.TypeCheckOut, resp.NextType)
}

func TestRecord_OutOfOrderRejected(t *testing.T) {
	users := map[string]user.User{"u1": {UID: "u1", Active: true}}
	svc, _ := newTestService(users, nil)
	ctx := authedContext(t, "u1")

	_, err := svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckOut,
		FileHeader: photoHeader(),
	})
	assert.ErrorIs(t, err, attendance.ErrUnexpectedEventType)
}

func TestRecord_CheckInWithoutShift(t *testing.T) {
	users := map[string]user.User{"u1": {UID: "u1", Active: true}}
	svc, repo := newTestService(users, nil)
	ctx := authedContext(t, "u1")

	resp, err := svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckIn,
		FileHeader: photoHeader(),
	})
	require.NoError(t, err)

	require.NotNil(t, resp.Status)
	assert.Equal(t, attendance.StatusPresent, *resp.Status)
	assert.Equal(t, 0, *repo.records[0].LateMinutes)
	assert.Nil(t, resp.ShiftID)
}

func TestRecord_DanglingShiftBehavesLikeNone(t *testing.T) {
	shiftID := "gone"
	users := map[string]user.User{"u1": {UID: "u1", Active: true, ShiftID: &shiftID}}
	svc, _ := newTestService(users, nil)
	ctx := authedContext(t, "u1")

	resp, err := svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckIn,
		FileHeader: photoHeader(),
	})
	require.NoError(t, err)
	require.NotNil(t, resp.Status)
	assert.Equal(t, attendance.StatusPresent, *resp.Status)
	assert.Nil(t, resp.ShiftID)
}

func TestRecord_CheckOutCarriesNoStatus(t *testing.T) {
	users := map[string]user.User{"u1": {UID: "u1", Active: true}}
	svc, _ := newTestService(users, nil)
	ctx := authedContext(t, "u1")

	_, err := svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckIn,
		FileHeader: photoHeader(),
	})
	require.NoError(t, err)

	resp, err := svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckOut,
		FileHeader: photoHeader(),
	})
	require.NoError(t, err)
	assert.Nil(t, resp.Status)
	assert.Equal(t, "-", resp.StatusText)
}

func TestRecord_InactiveUserRejected(t *testing.T) {
	users := map[string]user.User{"u1": {UID: "u1", Active: false}}
	svc, _ := newTestService(users, nil)
	ctx := authedContext(t, "u1")

	_, err := svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckIn,
		FileHeader: photoHeader(),
	})
	assert.ErrorIs(t, err, user.ErrUserInactive)
}

func TestRecord_MissingPhotoRejected(t *testing.T) {
	users := map[string]user.User{"u1": {UID: "u1", Active: true}}
	svc, _ := newTestService(users, nil)
	ctx := authedContext(t, "u1")

	_, err := svc.Record(ctx, attendance.RecordRequest{
		Type: attendance.TypeCheckIn,
	})
	require.Error(t, err)
	assert.NotErrorIs(t, err, attendance.ErrUnexpectedEventType)
}

func TestRecord_PublishesToSubscribers(t *testing.T) {
	users := map[string]user.User{"u1": {UID: "u1", Active: true}}
	repo := &fakeAttendanceRepo{}
	hub := sse.NewHub()
	svc := NewAttendanceService(nil, repo, &fakeUserRepo{users: users}, &fakeShiftRepo{}, fakeFileService{}, hub)
	ctx := authedContext(t, "u1")

	events, cleanup := hub.Subscribe("admin")
	defer cleanup()

	_, err := svc.Record(ctx, attendance.RecordRequest{
		Type:       attendance.TypeCheckIn,
		FileHeader: photoHeader(),
	})
	require.NoError(t, err)

	select {
	case ev := <-events:
		assert.Equal(t, "attendance.recorded", ev.Event)
	case <-time.After(time.Second):
		t.Fatal("expected an event on the admin feed")
	}
}
