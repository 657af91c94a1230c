package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/quanamco/payroll-edi/internal/domain/payslip"
	"github.com/quanamco/payroll-edi/internal/handler/http/response"
)

type PayslipHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	Compute(w http.ResponseWriter, r *http.Request)

	AddEarnLine(w http.ResponseWriter, r *http.Request)
	UpdateEarnLine(w http.ResponseWriter, r *http.Request)
	DeleteEarnLine(w http.ResponseWriter, r *http.Request)

	AddDeductionLine(w http.ResponseWriter, r *http.Request)
	UpdateDeductionLine(w http.ResponseWriter, r *http.Request)
	DeleteDeductionLine(w http.ResponseWriter, r *http.Request)
}

type payslipHandlerImpl struct {
	service payslip.PayslipService
}

func NewPayslipHandler(service payslip.PayslipService) PayslipHandler {
	return &payslipHandlerImpl{service: service}
}

func (h *payslipHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	p, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, p)
}

// Compute rebuilds and stores the payslip payload from its lines.
func (h *payslipHandlerImpl) Compute(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip ID is required", nil)
		return
	}

	p, err := h.service.ComputePayload(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip payload computed", p)
}

func (h *payslipHandlerImpl) AddEarnLine(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "id")

	var req payslip.CreateEarnLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddEarnLine decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	line, err := h.service.AddEarnLine(r.Context(), payslipID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Earn line created successfully", line)
}

func (h *payslipHandlerImpl) UpdateEarnLine(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineID")

	var req payslip.UpdateEarnLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateEarnLine decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	line, err := h.service.UpdateEarnLine(r.Context(), payslipID, lineID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Earn line updated successfully", line)
}

func (h *payslipHandlerImpl) DeleteEarnLine(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteEarnLine(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "lineID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Earn line deleted successfully", nil)
}

func (h *payslipHandlerImpl) AddDeductionLine(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "id")

	var req payslip.CreateDeductionLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("AddDeductionLine decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	line, err := h.service.AddDeductionLine(r.Context(), payslipID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Deduction line created successfully", line)
}

func (h *payslipHandlerImpl) UpdateDeductionLine(w http.ResponseWriter, r *http.Request) {
	payslipID := chi.URLParam(r, "id")
	lineID := chi.URLParam(r, "lineID")

	var req payslip.UpdateDeductionLineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("UpdateDeductionLine decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	line, err := h.service.UpdateDeductionLine(r.Context(), payslipID, lineID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction line updated successfully", line)
}

func (h *payslipHandlerImpl) DeleteDeductionLine(w http.ResponseWriter, r *http.Request) {
	if err := h.service.DeleteDeductionLine(r.Context(), chi.URLParam(r, "id"), chi.URLParam(r, "lineID")); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Deduction line deleted successfully", nil)
}
