package company

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/go-chi/jwtauth/v5"
	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type memCompanyRepo struct {
	companies map[string]company.Company
}

func (r *memCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (r *memCompanyRepo) UpdateEdiSettings(_ context.Context, id string, req company.UpdateEdiSettingsRequest) error {
	c, ok := r.companies[id]
	if !ok {
		return company.ErrCompanyNotFound
	}
	if req.EdiPayrollEnable != nil {
		c.EdiPayrollEnable = *req.EdiPayrollEnable
	}
	if req.EdiPayrollConsolidatedEnable != nil {
		c.EdiPayrollConsolidatedEnable = *req.EdiPayrollConsolidatedEnable
	}
	if req.EdiPayrollEnableValidateState != nil {
		c.EdiPayrollEnableValidateState = *req.EdiPayrollEnableValidateState
	}
	if req.EdiPayrollIsNotTest != nil {
		c.EdiPayrollIsNotTest = *req.EdiPayrollIsNotTest
	}
	r.companies[id] = c
	return nil
}

func newCompanyTestContext(t *testing.T, companyID string) context.Context {
	t.Helper()
	ja := jwtauth.New("HS256", []byte("secret"), nil)
	ctx, err := jwt.NewContext(context.Background(), ja, "user-1", companyID)
	require.NoError(t, err)
	return ctx
}

func boolPtr(b bool) *bool { return &b }

func TestCompanyService_UpdateEdiSettings(t *testing.T) {
	repo := &memCompanyRepo{companies: map[string]company.Company{
		"company-1": {ID: "company-1", Name: "Acme SAS"},
	}}
	svc := NewCompanyService(passthroughTransactor{}, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))
	ctx := newCompanyTestContext(t, "company-1")

	t.Run("partial update keeps other flags", func(t *testing.T) {
		resp, err := svc.UpdateEdiSettings(ctx, company.UpdateEdiSettingsRequest{
			EdiPayrollEnable:             boolPtr(true),
			EdiPayrollConsolidatedEnable: boolPtr(true),
		})
		require.NoError(t, err)
		assert.True(t, resp.EdiPayrollEnable)
		assert.True(t, resp.EdiPayrollConsolidatedEnable)
		assert.False(t, resp.EdiPayrollIsNotTest)

		resp, err = svc.UpdateEdiSettings(ctx, company.UpdateEdiSettingsRequest{EdiPayrollIsNotTest: boolPtr(true)})
		require.NoError(t, err)
		assert.True(t, resp.EdiPayrollEnable)
		assert.True(t, resp.EdiPayrollIsNotTest)
		assert.True(t, repo.companies["company-1"].AutoValidates())
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := svc.UpdateEdiSettings(ctx, company.UpdateEdiSettingsRequest{})
		var verrs validator.ValidationErrors
		require.ErrorAs(t, err, &verrs)
		assert.Equal(t, "body", verrs[0].Field)
	})

	t.Run("unknown company", func(t *testing.T) {
		_, err := svc.GetMy(newCompanyTestContext(t, "company-2"))
		assert.ErrorIs(t, err, company.ErrCompanyNotFound)
	})
}

func TestCompanyService_GetMy(t *testing.T) {
	repo := &memCompanyRepo{companies: map[string]company.Company{
		"company-1": {ID: "company-1", Name: "Acme SAS", Vat: "900123456"},
	}}
	svc := NewCompanyService(passthroughTransactor{}, repo, slog.New(slog.NewTextHandler(io.Discard, nil)))

	resp, err := svc.GetMy(newCompanyTestContext(t, "company-1"))
	require.NoError(t, err)
	assert.Equal(t, "Acme SAS", resp.Name)
	assert.Equal(t, "900123456", resp.Vat)
}
