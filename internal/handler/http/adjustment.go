package http

import (
	"encoding/json"
	"net/http"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/adjustment"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/handler/http/response"
)

type AdjustmentHandler interface {
	ListAdjustments(w http.ResponseWriter, r *http.Request)
	CreateAdjustment(w http.ResponseWriter, r *http.Request)
	ImportAdjustments(w http.ResponseWriter, r *http.Request)
}

type adjustmentHandlerImpl struct {
	adjustmentService adjustment.AdjustmentService
}

func NewAdjustmentHandler(adjustmentService adjustment.AdjustmentService) AdjustmentHandler {
	return &adjustmentHandlerImpl{adjustmentService: adjustmentService}
}

// ListAdjustments implements AdjustmentHandler
func (h *adjustmentHandlerImpl) ListAdjustments(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := adjustment.ListAdjustmentsRequest{
		StartDate:    query.Get("start_date"),
		EndDate:      query.Get("end_date"),
		EmployeeCode: query.Get("employee_code"),
		Type:         query.Get("type"),
	}

	result, err := h.adjustmentService.List(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateAdjustment implements AdjustmentHandler
func (h *adjustmentHandlerImpl) CreateAdjustment(w http.ResponseWriter, r *http.Request) {
	var req adjustment.CreateAdjustmentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.adjustmentService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment created", result)
}

// ImportAdjustments implements AdjustmentHandler
func (h *adjustmentHandlerImpl) ImportAdjustments(w http.ResponseWriter, r *http.Request) {
	var req adjustment.ImportAdjustmentsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.Rows) == 0 {
		response.BadRequest(w, "rows must not be empty", nil)
		return
	}

	result, err := h.adjustmentService.Import(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}
