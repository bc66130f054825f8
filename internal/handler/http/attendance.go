package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/attendance"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/handler/http/response"
)

type AttendanceHandler interface {
	ProcessAttendance(w http.ResponseWriter, r *http.Request)
	ListAttendance(w http.ResponseWriter, r *http.Request)
}

type attendanceHandlerImpl struct {
	attendanceService attendance.AttendanceService
}

func NewAttendanceHandler(attendanceService attendance.AttendanceService) AttendanceHandler {
	return &attendanceHandlerImpl{attendanceService: attendanceService}
}

// ProcessAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ProcessAttendance(w http.ResponseWriter, r *http.Request) {
	var req attendance.ProcessRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.attendanceService.Process(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Processing completed", result)
}

// ListAttendance implements AttendanceHandler
func (h *attendanceHandlerImpl) ListAttendance(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := attendance.ListRequest{
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
		EmployeeCode: query.Get("employee_code"),
	}
	if p := query.Get("page"); p != "" {
		if page, err := strconv.Atoi(p); err == nil && page > 0 {
			req.Page = page
		}
	}
	if l := query.Get("limit"); l != "" {
		if limit, err := strconv.Atoi(l); err == nil && limit > 0 {
			req.Limit = limit
		}
	}

	result, err := h.attendanceService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	totalPages := 0
	if result.Limit > 0 {
		totalPages = int((result.TotalCount + int64(result.Limit) - 1) / int64(result.Limit))
	}
	response.SuccessWithMeta(w, result.Records, &response.Meta{
		Page:       result.Page,
		Limit:      result.Limit,
		TotalItems: result.TotalCount,
		TotalPages: totalPages,
	})
}
