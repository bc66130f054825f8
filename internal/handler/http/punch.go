package http

import (
	"encoding/json"
	"net/http"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/punch"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/handler/http/response"
)

type PunchHandler interface {
	ImportPunches(w http.ResponseWriter, r *http.Request)
}

type punchHandlerImpl struct {
	punchService punch.PunchService
}

func NewPunchHandler(punchService punch.PunchService) PunchHandler {
	return &punchHandlerImpl{punchService: punchService}
}

// ImportPunches implements PunchHandler
func (h *punchHandlerImpl) ImportPunches(w http.ResponseWriter, r *http.Request) {
	var req struct {
		Rows []punch.ImportPunchRow `json:"rows"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}
	if len(req.Rows) == 0 {
		response.BadRequest(w, "rows must not be empty", nil)
		return
	}

	result, err := h.punchService.Import(r.Context(), req.Rows)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}
