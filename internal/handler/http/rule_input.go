package http

import (
	"net/http"

	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/handler/http/response"
)

type RuleInputHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Seed(w http.ResponseWriter, r *http.Request)
}

type ruleInputHandlerImpl struct {
	service ruleinput.RuleInputService
}

func NewRuleInputHandler(service ruleinput.RuleInputService) RuleInputHandler {
	return &ruleInputHandlerImpl{service: service}
}

// List optionally narrows by ?concept=earn|deduction.
func (h *ruleInputHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	inputs, err := h.service.List(r.Context(), r.URL.Query().Get("concept"))
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, inputs)
}

func (h *ruleInputHandlerImpl) Seed(w http.ResponseWriter, r *http.Request) {
	seeded, err := h.service.SeedDefaults(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Default rule inputs seeded", seeded)
}
