package http

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	"github.com/quanamco/payroll-edi/internal/handler/http/response"
)

type PayslipEdiHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	Payload(w http.ResponseWriter, r *http.Request)
	RefreshPayload(w http.ResponseWriter, r *http.Request)

	ComputeSheet(w http.ResponseWriter, r *http.Request)
	Done(w http.ResponseWriter, r *http.Request)
	Cancel(w http.ResponseWriter, r *http.Request)
	Draft(w http.ResponseWriter, r *http.Request)
	Refund(w http.ResponseWriter, r *http.Request)
	ValidateDian(w http.ResponseWriter, r *http.Request)
	StatusZip(w http.ResponseWriter, r *http.Request)
	StatusDocumentLog(w http.ResponseWriter, r *http.Request)
}

type payslipEdiHandlerImpl struct {
	service payslipedi.PayslipEdiService
}

func NewPayslipEdiHandler(service payslipedi.PayslipEdiService) PayslipEdiHandler {
	return &payslipEdiHandlerImpl{service: service}
}

// List accepts the optional state, credit_note and employee_id query filters.
func (h *payslipEdiHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	var filter payslipedi.ListFilter

	if s := query.Get("state"); s != "" {
		state := payslipedi.State(s)
		switch state {
		case payslipedi.StateDraft, payslipedi.StateVerify, payslipedi.StateDone, payslipedi.StateCancel:
			filter.State = &state
		default:
			response.BadRequest(w, "Invalid state filter", map[string]string{"state": s})
			return
		}
	}

	if s := query.Get("credit_note"); s != "" {
		creditNote, err := strconv.ParseBool(s)
		if err != nil {
			response.BadRequest(w, "Invalid credit_note filter", map[string]string{"credit_note": s})
			return
		}
		filter.CreditNote = &creditNote
	}

	if s := query.Get("employee_id"); s != "" {
		filter.EmployeeID = &s
	}

	docs, err := h.service.List(r.Context(), filter)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, docs)
}

func (h *payslipEdiHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip edi ID is required", nil)
		return
	}

	doc, err := h.service.GetByID(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, doc)
}

func (h *payslipEdiHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req payslipedi.CreatePayslipEdiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Create payslip edi decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.service.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Payslip edi created successfully", doc)
}

func (h *payslipEdiHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip edi ID is required", nil)
		return
	}

	var req payslipedi.UpdatePayslipEdiRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Update payslip edi decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	doc, err := h.service.Update(r.Context(), id, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip edi updated successfully", doc)
}

// Delete removes every listed record or none of them.
func (h *payslipEdiHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBatch(w, r)
	if !ok {
		return
	}

	if err := h.service.Delete(r.Context(), req.IDs); err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Payslip edi deleted successfully", nil)
}

// Payload returns the assembled request body that would be sent to the gateway without storing anything.
func (h *payslipEdiHandlerImpl) Payload(w http.ResponseWriter, r *http.Request) {
	h.writePayload(w, r, h.service.PreviewJSONRequest)
}

// RefreshPayload assembles the request body and stores the totals derived from it.
func (h *payslipEdiHandlerImpl) RefreshPayload(w http.ResponseWriter, r *http.Request) {
	h.writePayload(w, r, h.service.GetJSONRequest)
}

func (h *payslipEdiHandlerImpl) writePayload(w http.ResponseWriter, r *http.Request, build func(context.Context, string) (*payload.Payload, error)) {
	id := chi.URLParam(r, "id")
	if id == "" {
		response.BadRequest(w, "Payslip edi ID is required", nil)
		return
	}

	out, err := build(r.Context(), id)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, out)
}

func (h *payslipEdiHandlerImpl) ComputeSheet(w http.ResponseWriter, r *http.Request) {
	h.runBatch(w, r, h.service.ComputeSheet, "Payroll computed")
}

func (h *payslipEdiHandlerImpl) Done(w http.ResponseWriter, r *http.Request) {
	h.runBatch(w, r, h.service.Done, "Payroll confirmed")
}

func (h *payslipEdiHandlerImpl) Cancel(w http.ResponseWriter, r *http.Request) {
	h.runBatch(w, r, h.service.Cancel, "Payroll cancelled")
}

func (h *payslipEdiHandlerImpl) Draft(w http.ResponseWriter, r *http.Request) {
	h.runBatch(w, r, h.service.Draft, "Payroll set to draft")
}

func (h *payslipEdiHandlerImpl) Refund(w http.ResponseWriter, r *http.Request) {
	req, ok := decodeBatch(w, r)
	if !ok {
		return
	}

	refund, err := h.service.Refund(r.Context(), req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Created(w, "Adjustment notes created", refund)
}

func (h *payslipEdiHandlerImpl) ValidateDian(w http.ResponseWriter, r *http.Request) {
	h.runBatch(w, r, h.service.ValidateDian, "Payroll sent to DIAN")
}

func (h *payslipEdiHandlerImpl) StatusZip(w http.ResponseWriter, r *http.Request) {
	h.runBatch(w, r, h.service.StatusZip, "Zip status refreshed")
}

func (h *payslipEdiHandlerImpl) StatusDocumentLog(w http.ResponseWriter, r *http.Request) {
	h.runBatch(w, r, h.service.StatusDocumentLog, "Document log refreshed")
}

type batchAction func(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error)

func (h *payslipEdiHandlerImpl) runBatch(w http.ResponseWriter, r *http.Request, action batchAction, message string) {
	req, ok := decodeBatch(w, r)
	if !ok {
		return
	}

	docs, err := action(r.Context(), req.IDs)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, message, docs)
}

func decodeBatch(w http.ResponseWriter, r *http.Request) (payslipedi.BatchRequest, bool) {
	var req payslipedi.BatchRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		slog.Error("Batch request decode error", "error", err)
		response.BadRequest(w, "Invalid request body", nil)
		return req, false
	}

	if err := req.Validate(); err != nil {
		response.HandleError(w, err)
		return req, false
	}

	return req, true
}
