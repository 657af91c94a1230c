package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/handler/http/response"
)

type ContractHandler interface {
	PayrollPeriod(w http.ResponseWriter, r *http.Request)
}

type contractHandlerImpl struct {
	service contract.ContractService
}

func NewContractHandler(service contract.ContractService) ContractHandler {
	return &contractHandlerImpl{service: service}
}

// PayrollPeriod reports the DIAN period code derived from the contract schedule.
func (h *contractHandlerImpl) PayrollPeriod(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Contract ID is required", nil)
		return
	}

	period, err := h.service.GetPayrollPeriod(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, period)
}
