package payslipedi

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"sync"
	"testing"
	"time"

	"github.com/go-chi/jwtauth/v5"
	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/domain/employee"
	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/domain/payslip"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/text/language"
)

const testCompanyID = "company-1"

type passthroughTransactor struct{}

func (passthroughTransactor) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}

type fakeEdiRepo struct {
	mu   sync.RWMutex
	docs map[string]payslipedi.PayslipEdi
}

func newFakeEdiRepo() *fakeEdiRepo {
	return &fakeEdiRepo{docs: make(map[string]payslipedi.PayslipEdi)}
}

func (r *fakeEdiRepo) GetByID(_ context.Context, id string, companyID string) (payslipedi.PayslipEdi, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	if !ok || doc.CompanyID != companyID {
		return payslipedi.PayslipEdi{}, payslipedi.ErrPayslipEdiNotFound
	}
	return doc, nil
}

func (r *fakeEdiRepo) GetByIDs(ctx context.Context, ids []string, companyID string) ([]payslipedi.PayslipEdi, error) {
	out := make([]payslipedi.PayslipEdi, 0, len(ids))
	for _, id := range ids {
		doc, err := r.GetByID(ctx, id, companyID)
		if err != nil {
			return nil, err
		}
		out = append(out, doc)
	}
	return out, nil
}

func (r *fakeEdiRepo) List(_ context.Context, companyID string, filter payslipedi.ListFilter) ([]payslipedi.PayslipEdi, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	var out []payslipedi.PayslipEdi
	for _, doc := range r.docs {
		if doc.CompanyID != companyID {
			continue
		}
		if filter.State != nil && doc.State != *filter.State {
			continue
		}
		if filter.CreditNote != nil && doc.CreditNote != *filter.CreditNote {
			continue
		}
		out = append(out, doc)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *fakeEdiRepo) Create(_ context.Context, doc payslipedi.PayslipEdi) (payslipedi.PayslipEdi, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.docs[doc.ID]; exists {
		return payslipedi.PayslipEdi{}, fmt.Errorf("duplicate id %s", doc.ID)
	}
	r.docs[doc.ID] = doc
	return doc, nil
}

func (r *fakeEdiRepo) Update(_ context.Context, doc payslipedi.PayslipEdi) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.docs[doc.ID]; !ok {
		return payslipedi.ErrPayslipEdiNotFound
	}
	r.docs[doc.ID] = doc
	return nil
}

func (r *fakeEdiRepo) Delete(_ context.Context, ids []string, companyID string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, id := range ids {
		delete(r.docs, id)
	}
	return nil
}

func (r *fakeEdiRepo) get(t *testing.T, id string) payslipedi.PayslipEdi {
	t.Helper()
	r.mu.RLock()
	defer r.mu.RUnlock()
	doc, ok := r.docs[id]
	require.True(t, ok, "document %s not stored", id)
	return doc
}

type fakePayslipRepo struct {
	payslip.PayslipRepository
	payslips map[string]payslip.Payslip
}

func (r *fakePayslipRepo) GetByID(_ context.Context, id string, companyID string) (payslip.Payslip, error) {
	p, ok := r.payslips[id]
	if !ok || p.CompanyID != companyID {
		return payslip.Payslip{}, payslip.ErrPayslipNotFound
	}
	return p, nil
}

type fakeContractRepo struct {
	contracts map[string]contract.Contract
}

func (r *fakeContractRepo) GetByID(_ context.Context, id string, companyID string) (contract.Contract, error) {
	c, ok := r.contracts[id]
	if !ok || c.CompanyID != companyID {
		return contract.Contract{}, contract.ErrContractNotFound
	}
	return c, nil
}

type fakeEmployeeRepo struct {
	employees map[string]employee.Employee
}

func (r *fakeEmployeeRepo) GetByID(_ context.Context, id string, companyID string) (employee.Employee, error) {
	e, ok := r.employees[id]
	if !ok || e.CompanyID != companyID {
		return employee.Employee{}, employee.ErrEmployeeNotFound
	}
	return e, nil
}

type fakeCompanyRepo struct {
	companies map[string]company.Company
}

func (r *fakeCompanyRepo) GetByID(_ context.Context, id string) (company.Company, error) {
	c, ok := r.companies[id]
	if !ok {
		return company.Company{}, company.ErrCompanyNotFound
	}
	return c, nil
}

func (r *fakeCompanyRepo) UpdateEdiSettings(context.Context, string, company.UpdateEdiSettingsRequest) error {
	return nil
}

type fakeSequences struct {
	counters map[string]int
}

func (s *fakeSequences) NextByCode(_ context.Context, companyID string, code string) (string, error) {
	if s.counters == nil {
		s.counters = make(map[string]int)
	}
	s.counters[code]++
	prefix := "NE"
	if code == payslipedi.SequenceCodeNote {
		prefix = "NAE"
	}
	return fmt.Sprintf("%s%d", prefix, s.counters[code]), nil
}

type gatewayCallRecord struct {
	Kind      string
	Payload   *payload.Payload
	IsNotTest bool
}

type fakeGateway struct {
	result payslipedi.Result
	err    error
	calls  []gatewayCallRecord
}

func (g *fakeGateway) record(kind string, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	g.calls = append(g.calls, gatewayCallRecord{Kind: kind, Payload: p, IsNotTest: isNotTest})
	return g.result, g.err
}

func (g *fakeGateway) Validate(_ context.Context, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	return g.record("validate", p, isNotTest)
}

func (g *fakeGateway) StatusZip(_ context.Context, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	return g.record("status_zip", p, isNotTest)
}

func (g *fakeGateway) StatusDocumentLog(_ context.Context, p *payload.Payload, isNotTest bool) (payslipedi.Result, error) {
	return g.record("status_document_log", p, isNotTest)
}

type testEnv struct {
	svc       *PayslipEdiServiceImpl
	repo      *fakeEdiRepo
	companies *fakeCompanyRepo
	employees *fakeEmployeeRepo
	contracts *fakeContractRepo
	payslips  *fakePayslipRepo
	gateway   *fakeGateway
	ctx       context.Context
}

var fixedNow = time.Date(2024, 4, 2, 15, 4, 5, 0, time.UTC)

func intPtr(v int) *int { return &v }

func datePtr(s string) *time.Time {
	t, _ := time.Parse(payload.DateLayout, s)
	return &t
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	env := &testEnv{
		repo: newFakeEdiRepo(),
		companies: &fakeCompanyRepo{companies: map[string]company.Company{
			testCompanyID: {
				ID:                           testCompanyID,
				Name:                         "Acme SAS",
				TypeDocumentIdentificationID: intPtr(6),
				Vat:                          "900123456",
				PostalMunicipalityID:         intPtr(149),
				Street:                       "Calle 1",
			},
		}},
		employees: &fakeEmployeeRepo{employees: map[string]employee.Employee{
			"employee-1": {
				ID:        "employee-1",
				CompanyID: testCompanyID,
				Name:      "Ana Gomez",
				HomeAddress: &employee.HomeAddress{
					FirstName:                    "Ana",
					Surname:                      "Gomez",
					TypeDocumentIdentificationID: intPtr(3),
					Vat:                          "1010",
					PostalMunicipalityID:         intPtr(149),
					Street:                       "Carrera 2",
				},
			},
		}},
		contracts: &fakeContractRepo{contracts: map[string]contract.Contract{
			"contract-1": {
				ID:              "contract-1",
				CompanyID:       testCompanyID,
				EmployeeID:      "employee-1",
				Name:            "Contract Ana",
				Wage:            decimal.NewFromInt(1300000),
				DateStart:       datePtr("2024-01-01"),
				SchedulePay:     contract.SchedulePayMonthly,
				TypeWorkerID:    intPtr(1),
				SubtypeWorkerID: intPtr(1),
				TypeContractID:  intPtr(1),
			},
		}},
		gateway: &fakeGateway{},
	}

	env.payslips = &fakePayslipRepo{payslips: map[string]payslip.Payslip{
		"payslip-1": {
			ID: "payslip-1", CompanyID: testCompanyID, Number: "SLIP/001",
			EdiPayload: &payload.Payload{
				PayrollPeriodID: 5,
				Period: &payload.Period{
					AdmissionDate:       "2024-01-01",
					SettlementStartDate: "2024-03-01",
					SettlementEndDate:   "2024-03-15",
					AmountTime:          decimal.NewFromInt(75),
					IssueDate:           "2024-03-15",
				},
				Payment:      &payload.Payment{Code: 1, MethodCode: 10},
				PaymentDates: []payload.PaymentDate{{Date: "2024-03-15"}},
				Earn: &payload.Earn{
					Basic: payload.Basic{WorkedDays: 15, WorkerSalary: decimal.NewFromInt(650000)},
					Items: []payload.EarnItem{{Category: "bonuses", Code: "BONUS", Total: decimal.NewFromInt(100000)}},
				},
				Deductions:      &payload.Deductions{Items: []payload.DeductionItem{{Category: "health", Amount: decimal.NewFromInt(26000)}}},
				AccruedTotal:    decimal.NewFromInt(750000),
				DeductionsTotal: decimal.NewFromInt(26000),
				Total:           decimal.NewFromInt(724000),
			},
		},
		"payslip-2": {
			ID: "payslip-2", CompanyID: testCompanyID, Number: "SLIP/002",
			EdiPayload: &payload.Payload{
				PayrollPeriodID: 5,
				Period: &payload.Period{
					AdmissionDate:       "2024-01-01",
					SettlementStartDate: "2024-03-16",
					SettlementEndDate:   "2024-03-30",
					AmountTime:          decimal.NewFromInt(90),
					IssueDate:           "2024-03-30",
				},
				Payment:      &payload.Payment{Code: 1, MethodCode: 10},
				PaymentDates: []payload.PaymentDate{{Date: "2024-03-30"}},
				Earn: &payload.Earn{
					Basic: payload.Basic{WorkedDays: 15, WorkerSalary: decimal.NewFromInt(650000)},
					Items: []payload.EarnItem{{Category: "transport", Code: "AUX", Total: decimal.NewFromInt(50000)}},
				},
				Deductions:      &payload.Deductions{Items: []payload.DeductionItem{{Category: "pension_fund", Amount: decimal.NewFromInt(26000)}}},
				AccruedTotal:    decimal.NewFromInt(700000),
				DeductionsTotal: decimal.NewFromInt(26000),
				Total:           decimal.NewFromInt(674000),
			},
		},
		"payslip-empty": {ID: "payslip-empty", CompanyID: testCompanyID, Number: "SLIP/003"},
	}}

	svc := NewPayslipEdiService(
		passthroughTransactor{},
		env.repo,
		env.payslips,
		env.contracts,
		env.employees,
		env.companies,
		&fakeSequences{},
		env.gateway,
		language.English,
		slog.New(slog.NewTextHandler(io.Discard, nil)),
	).(*PayslipEdiServiceImpl)
	svc.now = func() time.Time { return fixedNow }
	env.svc = svc

	ja := jwtauth.New("HS256", []byte("secret"), nil)
	ctx, err := jwt.NewContext(context.Background(), ja, "user-1", testCompanyID)
	require.NoError(t, err)
	env.ctx = ctx

	return env
}

// seed stores a draft document covering both payslips of March 2024.
func (e *testEnv) seed(t *testing.T, mutate func(doc *payslipedi.PayslipEdi)) payslipedi.PayslipEdi {
	t.Helper()
	doc := payslipedi.PayslipEdi{
		ID:              fmt.Sprintf("edi-%d", len(e.repo.docs)+1),
		CompanyID:       testCompanyID,
		Name:            "Salary Slip of Ana Gomez for March-2024",
		Number:          "NE0042",
		ContractID:      "contract-1",
		EmployeeID:      "employee-1",
		State:           payslipedi.StateDraft,
		Date:            time.Date(2024, 3, 31, 0, 0, 0, 0, time.UTC),
		Month:           3,
		Year:            2024,
		PayslipIDs:      []string{"payslip-1", "payslip-2"},
		PaymentFormID:   intPtr(1),
		PaymentMethodID: intPtr(10),
	}
	if mutate != nil {
		mutate(&doc)
	}
	_, err := e.repo.Create(context.Background(), doc)
	require.NoError(t, err)
	return doc
}

func (e *testEnv) setCompany(mutate func(c *company.Company)) {
	c := e.companies.companies[testCompanyID]
	mutate(&c)
	e.companies.companies[testCompanyID] = c
}
