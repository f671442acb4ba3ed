package export

import (
	"bytes"
	"context"
	"encoding/csv"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/attendance"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/request"
	"github.com/MuhammadSyaifulIbrahim/absensipro/internal/domain/user"
	"github.com/xuri/excelize/v2"
)

// ErrNoExportData signals that the requested range matched zero rows. The
// handler surfaces it as a user-visible message instead of producing an
// empty file.
var ErrNoExportData = errors.New("no data found for the selected range")

const (
	csvContentType  = "text/csv"
	xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type ExportService interface {
	// ExportAttendance aggregates attendance records over a closed day range
	// into a downloadable CSV or XLSX artifact (admin action)
	ExportAttendance(ctx context.Context, req AttendanceExportRequest) (Artifact, error)

	// ExportRequests aggregates workflow requests submitted within a closed
	// day range, optionally filtered by status (admin action)
	ExportRequests(ctx context.Context, req RequestExportRequest) (Artifact, error)
}

type ExportServiceImpl struct {
	attendance.AttendanceRepository
	request.RequestRepository
	user.UserRepository
}

func NewExportService(
	attendanceRepo attendance.AttendanceRepository,
	requestRepo request.RequestRepository,
	userRepo user.UserRepository,
) ExportService {
	return &ExportServiceImpl{
		AttendanceRepository: attendanceRepo,
		RequestRepository:    requestRepo,
		UserRepository:       userRepo,
	}
}

// displayNames builds the uid -> label lookup used in export rows. Unknown
// uids fall back to the uid itself.
func (e *ExportServiceImpl) displayNames(ctx context.Context) (map[string]string, error) {
	users, err := e.UserRepository.ListAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}

	names := make(map[string]string, len(users))
	for _, u := range users {
		names[u.UID] = u.DisplayName()
	}
	return names, nil
}

func nameFor(names map[string]string, uid string) string {
	if name, ok := names[uid]; ok {
		return name
	}
	return uid
}

func prettyEventType(t string) string {
	switch t {
	case attendance.TypeCheckIn:
		return "Check In"
	case attendance.TypeCheckOut:
		return "Check Out"
	}
	return t
}

func locationCell(rec attendance.Attendance) string {
	if rec.LocationLat == nil || rec.LocationLng == nil {
		return "-"
	}
	return fmt.Sprintf("%.6f,%.6f", *rec.LocationLat, *rec.LocationLng)
}

func strOrDash(s *string) string {
	if s == nil || *s == "" {
		return "-"
	}
	return *s
}

// ExportAttendance implements ExportService.
func (e *ExportServiceImpl) ExportAttendance(ctx context.Context, req AttendanceExportRequest) (Artifact, error) {
	if err := req.Validate(); err != nil {
		return Artifact{}, err
	}

	records, err := e.AttendanceRepository.ListRange(ctx, req.From, req.To)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to list attendance records: %w", err)
	}
	if len(records) == 0 {
		return Artifact{}, ErrNoExportData
	}

	names, err := e.displayNames(ctx)
	if err != nil {
		return Artifact{}, err
	}

	header := []string{"Name", "Date", "Type", "Status", "Late (min)", "Location", "Recorded At"}
	rows := make([][]string, 0, len(records))
	for _, rec := range records {
		derived := attendance.Derive(rec)
		rows = append(rows, []string{
			nameFor(names, rec.UID),
			rec.YMD,
			prettyEventType(rec.Type),
			derived.Text,
			strconv.Itoa(derived.LateMinutes),
			locationCell(rec),
			rec.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	filename := fmt.Sprintf("attendance_%s_%s", req.From, req.To)
	return e.buildArtifact(req.Format, filename, "Attendance", header, rows)
}

// ExportRequests implements ExportService.
func (e *ExportServiceImpl) ExportRequests(ctx context.Context, req RequestExportRequest) (Artifact, error) {
	if err := req.Validate(); err != nil {
		return Artifact{}, err
	}

	start, err := time.ParseInLocation("2006-01-02", req.From, time.Local)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to parse from date: %w", err)
	}
	endDay, err := time.ParseInLocation("2006-01-02", req.To, time.Local)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to parse to date: %w", err)
	}
	end := endDay.Add(24*time.Hour - time.Second)

	status := req.NormalizedStatus()

	requests, err := e.RequestRepository.ListRange(ctx, start, end, status)
	if err != nil {
		return Artifact{}, fmt.Errorf("failed to list requests: %w", err)
	}
	if len(requests) == 0 {
		return Artifact{}, ErrNoExportData
	}

	names, err := e.displayNames(ctx)
	if err != nil {
		return Artifact{}, err
	}

	header := []string{
		"Name", "Type", "Status", "From", "To", "Date", "Start", "End",
		"Duration (min)", "Reason", "Submitted At",
	}
	rows := make([][]string, 0, len(requests))
	for _, r := range requests {
		duration := "-"
		if r.DurationMinutes != nil {
			duration = strconv.Itoa(*r.DurationMinutes)
		}
		rows = append(rows, []string{
			nameFor(names, r.UID),
			r.Type,
			r.Status,
			strOrDash(r.From),
			strOrDash(r.To),
			strOrDash(r.Date),
			strOrDash(r.StartTime),
			strOrDash(r.EndTime),
			duration,
			r.Reason,
			r.CreatedAt.Format("2006-01-02 15:04:05"),
		})
	}

	filename := fmt.Sprintf("requests_%s_%s", req.From, req.To)
	if status != "" {
		filename = fmt.Sprintf("%s_%s", filename, status)
	}
	return e.buildArtifact(req.Format, filename, "Requests", header, rows)
}

func (e *ExportServiceImpl) buildArtifact(format, filename, sheetName string, header []string, rows [][]string) (Artifact, error) {
	if format == FormatXLSX {
		data, err := buildXLSX(sheetName, header, rows)
		if err != nil {
			return Artifact{}, err
		}
		return Artifact{
			Filename:    filename + ".xlsx",
			ContentType: xlsxContentType,
			Data:        data,
		}, nil
	}

	data, err := buildCSV(header, rows)
	if err != nil {
		return Artifact{}, err
	}
	return Artifact{
		Filename:    filename + ".csv",
		ContentType: csvContentType,
		Data:        data,
	}, nil
}

func buildCSV(header []string, rows [][]string) ([]byte, error) {
	buf := new(bytes.Buffer)
	w := csv.NewWriter(buf)

	if err := w.Write(header); err != nil {
		return nil, fmt.Errorf("failed to write csv header: %w", err)
	}
	for _, row := range rows {
		if err := w.Write(row); err != nil {
			return nil, fmt.Errorf("failed to write csv row: %w", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return nil, fmt.Errorf("failed to flush csv: %w", err)
	}

	return buf.Bytes(), nil
}

func buildXLSX(sheetName string, header []string, rows [][]string) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	idx, err := f.NewSheet(sheetName)
	if err != nil {
		return nil, fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(idx)
	f.DeleteSheet("Sheet1")

	headerStyle, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true, Size: 11},
	})

	for col, title := range header {
		cell, _ := excelize.CoordinatesToCellName(col+1, 1)
		f.SetCellValue(sheetName, cell, title)
		f.SetCellStyle(sheetName, cell, cell, headerStyle)
	}

	for i, row := range rows {
		for col, value := range row {
			cell, _ := excelize.CoordinatesToCellName(col+1, i+2)
			f.SetCellValue(sheetName, cell, value)
		}
	}

	buf := new(bytes.Buffer)
	if err := f.Write(buf); err != nil {
		return nil, fmt.Errorf("failed to write xlsx: %w", err)
	}

	return buf.Bytes(), nil
}
