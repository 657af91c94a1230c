package http

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/handler/http/response"
)

type CompanyHandler interface {
	GetMy(w http.ResponseWriter, r *http.Request)
	UpdateEdiSettings(w http.ResponseWriter, r *http.Request)
}

type CompanyHandlerImpl struct {
	companyService company.CompanyService
}

// GetMy implements CompanyHandler.
func (c *CompanyHandlerImpl) GetMy(w http.ResponseWriter, r *http.Request) {
	co, err := c.companyService.GetMy(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, co)
}

// UpdateEdiSettings implements CompanyHandler.
func (c *CompanyHandlerImpl) UpdateEdiSettings(w http.ResponseWriter, r *http.Request) {
	var updateReq company.UpdateEdiSettingsRequest

	if err := json.NewDecoder(r.Body).Decode(&updateReq); err != nil {
		slog.Error("Update edi settings decode error", "error", err)
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	if err := updateReq.Validate(); err != nil {
		response.HandleError(w, err)
		return
	}

	co, err := c.companyService.UpdateEdiSettings(r.Context(), updateReq)
	if err != nil {
		slog.Error("Company edi settings service error", "error", err)
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Company updated successfully", co)
}

func NewCompanyHandler(companyService company.CompanyService) CompanyHandler {
	return &CompanyHandlerImpl{
		companyService: companyService,
	}
}
