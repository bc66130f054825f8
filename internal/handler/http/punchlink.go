package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punchlink"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/handler/http/response"
)

type PunchLinkHandler interface {
	ScanMidnightLinks(w http.ResponseWriter, r *http.Request)
	DecideMidnightLink(w http.ResponseWriter, r *http.Request)
}

type punchLinkHandlerImpl struct {
	linkService punchlink.LinkService
}

func NewPunchLinkHandler(linkService punchlink.LinkService) PunchLinkHandler {
	return &punchLinkHandlerImpl{linkService: linkService}
}

// ScanMidnightLinks implements PunchLinkHandler
func (h *punchLinkHandlerImpl) ScanMidnightLinks(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()

	req := punchlink.ScanRequest{
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
		EmployeeCode: query.Get("employee_code"),
	}
	if o := query.Get("timezone_offset_minutes"); o != "" {
		offset, err := strconv.Atoi(o)
		if err != nil {
			response.BadRequest(w, "timezone_offset_minutes must be an integer", nil)
			return
		}
		req.TimezoneOffsetMinutes = offset
	}

	result, err := h.linkService.Scan(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DecideMidnightLink implements PunchLinkHandler
func (h *punchLinkHandlerImpl) DecideMidnightLink(w http.ResponseWriter, r *http.Request) {
	var req punchlink.ActionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.linkService.Decide(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Decision saved", result)
}
