package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/domain/rule"
	"github.com/MohamedRadiWebDev/HRAttendance-codex-fix-attendance-calculation-logic-n5uo7s/internal/handler/http/response"
	"github.com/go-chi/chi/v5"
)

type RuleHandler interface {
	ListRules(w http.ResponseWriter, r *http.Request)
	CreateRule(w http.ResponseWriter, r *http.Request)
	UpdateRule(w http.ResponseWriter, r *http.Request)
	DeleteRule(w http.ResponseWriter, r *http.Request)
}

type ruleHandlerImpl struct {
	ruleService rule.RuleService
}

func NewRuleHandler(ruleService rule.RuleService) RuleHandler {
	return &ruleHandlerImpl{ruleService: ruleService}
}

// ListRules implements RuleHandler
func (h *ruleHandlerImpl) ListRules(w http.ResponseWriter, r *http.Request) {
	result, err := h.ruleService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// CreateRule implements RuleHandler
func (h *ruleHandlerImpl) CreateRule(w http.ResponseWriter, r *http.Request) {
	var req rule.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ruleService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Rule created", result)
}

// UpdateRule implements RuleHandler
func (h *ruleHandlerImpl) UpdateRule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Rule ID must be numeric", nil)
		return
	}

	var req rule.CreateRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	result, err := h.ruleService.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// DeleteRule implements RuleHandler
func (h *ruleHandlerImpl) DeleteRule(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		response.BadRequest(w, "Rule ID must be numeric", nil)
		return
	}

	if err := h.ruleService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Rule deleted", nil)
}
