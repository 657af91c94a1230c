package payslipedi

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/quanamco/payroll-edi/internal/domain/company"
	"github.com/quanamco/payroll-edi/internal/domain/contract"
	"github.com/quanamco/payroll-edi/internal/domain/employee"
	"github.com/quanamco/payroll-edi/internal/domain/payload"
	"github.com/quanamco/payroll-edi/internal/domain/payslip"
	"github.com/quanamco/payroll-edi/internal/domain/payslipedi"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
	"github.com/quanamco/payroll-edi/internal/pkg/validator"
	"golang.org/x/text/language"
)

type PayslipEdiServiceImpl struct {
	transactor   database.Transactor
	repo         payslipedi.PayslipEdiRepository
	payslipRepo  payslip.PayslipRepository
	contractRepo contract.ContractRepository
	employeeRepo employee.EmployeeRepository
	companyRepo  company.CompanyRepository
	sequences    payslipedi.SequenceGenerator
	gateway      payslipedi.Gateway
	merger       payslipedi.Merger
	reverser     payslipedi.Reverser
	lang         language.Tag
	logger       *slog.Logger
	now          func() time.Time
}

func NewPayslipEdiService(
	transactor database.Transactor,
	repo payslipedi.PayslipEdiRepository,
	payslipRepo payslip.PayslipRepository,
	contractRepo contract.ContractRepository,
	employeeRepo employee.EmployeeRepository,
	companyRepo company.CompanyRepository,
	sequences payslipedi.SequenceGenerator,
	gateway payslipedi.Gateway,
	lang language.Tag,
	logger *slog.Logger,
) payslipedi.PayslipEdiService {
	return &PayslipEdiServiceImpl{
		transactor:   transactor,
		repo:         repo,
		payslipRepo:  payslipRepo,
		contractRepo: contractRepo,
		employeeRepo: employeeRepo,
		companyRepo:  companyRepo,
		sequences:    sequences,
		gateway:      gateway,
		merger:       Merger{},
		reverser:     Reverser{},
		lang:         lang,
		logger:       logger,
		now:          time.Now,
	}
}

func (s *PayslipEdiServiceImpl) today() time.Time {
	t := s.now()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// ========== CRUD ==========

func (s *PayslipEdiServiceImpl) List(ctx context.Context, filter payslipedi.ListFilter) ([]payslipedi.PayslipEdiResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	docs, err := s.repo.List(ctx, claims.CompanyID, filter)
	if err != nil {
		return nil, err
	}
	return payslipedi.NewPayslipEdiResponses(docs), nil
}

func (s *PayslipEdiServiceImpl) GetByID(ctx context.Context, id string) (payslipedi.PayslipEdiResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}

	doc, err := s.repo.GetByID(ctx, id, claims.CompanyID)
	if err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}
	return payslipedi.NewPayslipEdiResponse(doc), nil
}

func (s *PayslipEdiServiceImpl) Create(ctx context.Context, req payslipedi.CreatePayslipEdiRequest) (payslipedi.PayslipEdiResponse, error) {
	if err := req.Validate(); err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}

	today := s.today()
	doc := payslipedi.PayslipEdi{
		ID:              uuid.NewString(),
		CompanyID:       claims.CompanyID,
		Number:          req.Number,
		Note:            req.Note,
		ContractID:      req.ContractID,
		EmployeeID:      req.EmployeeID,
		CreditNote:      req.CreditNote,
		OriginPayslipID: req.OriginPayslipID,
		State:           payslipedi.StateDraft,
		Date:            today,
		Month:           int(today.Month()),
		Year:            today.Year(),
		PayslipIDs:      req.PayslipIDs,
		PaymentFormID:   req.PaymentFormID,
		PaymentMethodID: req.PaymentMethodID,
	}
	if doc.Number == "" {
		doc.Number = payslipedi.PlaceholderNumber
	}
	if req.Date != nil {
		if doc.Date, err = time.Parse(payload.DateLayout, *req.Date); err != nil {
			return payslipedi.PayslipEdiResponse{}, fmt.Errorf("invalid date: %w", err)
		}
	}
	if req.Month != nil {
		doc.Month = *req.Month
	}
	if req.Year != nil {
		doc.Year = *req.Year
	}

	var created payslipedi.PayslipEdi
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		if err := s.checkReferences(ctx, &doc); err != nil {
			return err
		}
		created, err = s.repo.Create(ctx, doc)
		return err
	})
	if err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}

	s.logger.Info("payslip edi created", "id", created.ID, "name", created.Name, "credit_note", created.CreditNote)
	return payslipedi.NewPayslipEdiResponse(created), nil
}

func (s *PayslipEdiServiceImpl) Update(ctx context.Context, id string, req payslipedi.UpdatePayslipEdiRequest) (payslipedi.PayslipEdiResponse, error) {
	if err := req.Validate(); err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}

	var doc payslipedi.PayslipEdi
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		doc, err = s.repo.GetByID(ctx, id, claims.CompanyID)
		if err != nil {
			return err
		}
		if doc.State != payslipedi.StateDraft {
			return payslipedi.ErrNotDraft
		}

		if req.Note != nil {
			doc.Note = *req.Note
		}
		if req.Number != nil {
			doc.Number = *req.Number
		}
		if req.CreditNote != nil {
			doc.CreditNote = *req.CreditNote
		}
		if req.OriginPayslipID != nil {
			doc.OriginPayslipID = req.OriginPayslipID
			if *req.OriginPayslipID == "" {
				doc.OriginPayslipID = nil
			}
		}
		if req.Date != nil {
			if doc.Date, err = time.Parse(payload.DateLayout, *req.Date); err != nil {
				return fmt.Errorf("invalid date: %w", err)
			}
		}
		if req.Month != nil {
			doc.Month = *req.Month
		}
		if req.Year != nil {
			doc.Year = *req.Year
		}
		if req.PayslipIDs != nil {
			doc.PayslipIDs = req.PayslipIDs
		}
		if req.PaymentFormID != nil {
			doc.PaymentFormID = req.PaymentFormID
		}
		if req.PaymentMethodID != nil {
			doc.PaymentMethodID = req.PaymentMethodID
		}

		if err := s.checkReferences(ctx, &doc); err != nil {
			return err
		}
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return payslipedi.PayslipEdiResponse{}, err
	}

	return payslipedi.NewPayslipEdiResponse(doc), nil
}

// checkReferences verifies the linked records of the company and refreshes the display name.
func (s *PayslipEdiServiceImpl) checkReferences(ctx context.Context, doc *payslipedi.PayslipEdi) error {
	if !validator.UniqueStrings(doc.PayslipIDs) {
		return validator.ValidationErrors{{Field: "payslip_ids", Message: "payslip_ids must not repeat a payslip"}}
	}
	if _, err := s.contractRepo.GetByID(ctx, doc.ContractID, doc.CompanyID); err != nil {
		return err
	}
	emp, err := s.employeeRepo.GetByID(ctx, doc.EmployeeID, doc.CompanyID)
	if err != nil {
		return err
	}
	for _, payslipID := range doc.PayslipIDs {
		if _, err := s.payslipRepo.GetByID(ctx, payslipID, doc.CompanyID); err != nil {
			return err
		}
	}
	if doc.OriginPayslipID != nil {
		if *doc.OriginPayslipID == doc.ID {
			return fmt.Errorf("%w: a document cannot be its own origin", payslipedi.ErrOriginRequired)
		}
		if _, err := s.repo.GetByID(ctx, *doc.OriginPayslipID, doc.CompanyID); err != nil {
			return err
		}
	}

	if name, ok := payslipedi.DisplayName(emp.Name, doc.Month, doc.Year, s.lang); ok {
		doc.Name = name
	}
	return nil
}

func (s *PayslipEdiServiceImpl) Delete(ctx context.Context, ids []string) error {
	ids = distinct(ids)
	if len(ids) == 0 {
		return payslipedi.ErrEmptyIDs
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return err
	}

	return s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		docs, err := s.repo.GetByIDs(ctx, ids, claims.CompanyID)
		if err != nil {
			return err
		}
		for _, doc := range docs {
			if !doc.Deletable() {
				return payslipedi.ErrCannotDelete
			}
		}
		if err := s.repo.Delete(ctx, ids, claims.CompanyID); err != nil {
			return err
		}
		s.logger.Info("payslip edis deleted", "ids", ids)
		return nil
	})
}

// ========== PAYLOAD ==========

func (s *PayslipEdiServiceImpl) GetJSONRequest(ctx context.Context, id string) (*payload.Payload, error) {
	return s.jsonRequest(ctx, id, true)
}

// PreviewJSONRequest assembles the payload like GetJSONRequest but leaves the stored record untouched.
func (s *PayslipEdiServiceImpl) PreviewJSONRequest(ctx context.Context, id string) (*payload.Payload, error) {
	return s.jsonRequest(ctx, id, false)
}

func (s *PayslipEdiServiceImpl) jsonRequest(ctx context.Context, id string, persist bool) (*payload.Payload, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var out *payload.Payload
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		co, err := s.companyRepo.GetByID(ctx, claims.CompanyID)
		if err != nil {
			return err
		}
		doc, err := s.repo.GetByID(ctx, id, claims.CompanyID)
		if err != nil {
			return err
		}
		out, err = s.assemble(ctx, &doc, co)
		if err != nil {
			return err
		}
		if !persist {
			return nil
		}
		return s.repo.Update(ctx, doc)
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// assemble builds the document payload from the linked payslips and caches the derived totals on doc.
// Nothing is written to doc unless every check passes.
func (s *PayslipEdiServiceImpl) assemble(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) (*payload.Payload, error) {
	c, err := s.contractRepo.GetByID(ctx, doc.ContractID, doc.CompanyID)
	if err != nil {
		return nil, err
	}
	emp, err := s.employeeRepo.GetByID(ctx, doc.EmployeeID, doc.CompanyID)
	if err != nil {
		return nil, err
	}
	if err := payslipedi.CheckPreconditions(*doc, c, emp, co); err != nil {
		return nil, err
	}

	sequence, err := payslipedi.ParseSequence(doc.Number)
	if err != nil {
		return nil, err
	}

	var out *payload.Payload
	for _, payslipID := range doc.PayslipIDs {
		p, err := s.payslipRepo.GetByID(ctx, payslipID, doc.CompanyID)
		if err != nil {
			return nil, err
		}
		if p.EdiPayload == nil {
			return nil, fmt.Errorf("%w: payslip %s", payslip.ErrPayslipHasNoPayload, p.Number)
		}
		if out == nil {
			out = p.EdiPayload.Clone()
			continue
		}
		out = s.merger.Merge(out, p.EdiPayload, doc.Date)
	}
	if out == nil {
		return nil, payslipedi.ErrNoPayslips
	}
	if out.Payment == nil || out.Earn == nil {
		return nil, payslipedi.ErrIncompletePayload
	}

	if sequence != nil {
		out.Sequence = sequence
	}
	if doc.Note != "" {
		out.Notes = []payload.Note{{Text: doc.Note}}
	}

	paymentForm, paymentMethod := out.Payment.Code, out.Payment.MethodCode
	accrued, deducted, total := out.AccruedTotal, out.DeductionsTotal, out.Total
	workedDays := out.WorkedDays()

	if doc.CreditNote {
		if doc.OriginPayslipID == nil {
			return nil, payslipedi.ErrOriginRequired
		}
		origin, err := s.repo.GetByID(ctx, *doc.OriginPayslipID, doc.CompanyID)
		if err != nil {
			return nil, err
		}
		out.PayrollReference = payslipedi.PayrollReference(origin)
		out = s.reverser.DeleteRequest(out)
	}

	doc.PaymentFormID = &paymentForm
	doc.PaymentMethodID = &paymentMethod
	doc.AccruedTotalAmount = accrued
	doc.DeductionsTotalAmount = deducted
	doc.TotalAmount = total
	doc.WorkedDaysTotal = workedDays
	return out, nil
}

// ========== ACTIONS ==========

func (s *PayslipEdiServiceImpl) ComputeSheet(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error) {
	return s.batch(ctx, ids, func(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error {
		return s.computeSheet(ctx, doc, co)
	})
}

// computeSheet stamps the sending date and stores a freshly assembled payload.
func (s *PayslipEdiServiceImpl) computeSheet(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error {
	if doc.Number == "" {
		doc.Number = payslipedi.PlaceholderNumber
	}
	doc.Date = s.today()

	out, err := s.assemble(ctx, doc, co)
	if err != nil {
		return err
	}
	doc.EdiPayload = out
	doc.EdiSync = co.EdiPayrollIsNotTest
	doc.EdiIsNotTest = co.EdiPayrollIsNotTest
	return s.repo.Update(ctx, *doc)
}

func (s *PayslipEdiServiceImpl) Done(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error) {
	return s.batch(ctx, ids, func(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error {
		return s.done(ctx, doc, co, false)
	})
}

func (s *PayslipEdiServiceImpl) done(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company, withoutComputeSheet bool) error {
	if doc.State != payslipedi.StateDraft {
		return nil
	}
	if doc.HasPlaceholderNumber() {
		number, err := s.sequences.NextByCode(ctx, doc.CompanyID, doc.SequenceCode())
		if err != nil {
			return err
		}
		doc.Number = number
	}
	if !withoutComputeSheet {
		if err := s.computeSheet(ctx, doc, co); err != nil {
			return err
		}
	}
	if err := s.transition(ctx, doc, payslipedi.StateDone); err != nil {
		return err
	}

	if co.AutoValidates() {
		return s.validate(ctx, doc, co)
	}
	return nil
}

func (s *PayslipEdiServiceImpl) Cancel(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error) {
	return s.batch(ctx, ids, func(ctx context.Context, doc *payslipedi.PayslipEdi, _ company.Company) error {
		if doc.EdiIsValid {
			return payslipedi.ErrAlreadyValidated
		}
		return s.transition(ctx, doc, payslipedi.StateCancel)
	})
}

func (s *PayslipEdiServiceImpl) Draft(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error) {
	return s.batch(ctx, ids, func(ctx context.Context, doc *payslipedi.PayslipEdi, _ company.Company) error {
		return s.transition(ctx, doc, payslipedi.StateDraft)
	})
}

func (s *PayslipEdiServiceImpl) transition(ctx context.Context, doc *payslipedi.PayslipEdi, to payslipedi.State) error {
	from := doc.State
	doc.State = to
	if err := s.repo.Update(ctx, *doc); err != nil {
		return err
	}
	s.logger.Info("payslip edi state changed", "id", doc.ID, "from", from, "to", to, "number", doc.Number)
	return nil
}

func (s *PayslipEdiServiceImpl) Refund(ctx context.Context, ids []string) (payslipedi.RefundResponse, error) {
	ids = distinct(ids)
	if len(ids) == 0 {
		return payslipedi.RefundResponse{}, payslipedi.ErrEmptyIDs
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return payslipedi.RefundResponse{}, err
	}

	var created []string
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		co, err := s.companyRepo.GetByID(ctx, claims.CompanyID)
		if err != nil {
			return err
		}
		sources, err := s.repo.GetByIDs(ctx, ids, claims.CompanyID)
		if err != nil {
			return err
		}

		for _, source := range sources {
			if source.CreditNote {
				return payslipedi.ErrRefundOfCreditNote
			}
			refund, err := s.repo.Create(ctx, s.refundCopy(source))
			if err != nil {
				return err
			}
			if err := s.done(ctx, &refund, co, true); err != nil {
				return err
			}
			if source.EdiPayload != nil && refund.EdiPayload == nil {
				out, err := s.assemble(ctx, &refund, co)
				if err != nil {
					return err
				}
				refund.EdiPayload = out
				if err := s.repo.Update(ctx, refund); err != nil {
					return err
				}
			}
			s.logger.Info("payslip edi refunded", "id", source.ID, "refund_id", refund.ID, "number", refund.Number)
			created = append(created, refund.ID)
		}
		return nil
	})
	if err != nil {
		return payslipedi.RefundResponse{}, err
	}

	return payslipedi.NewRefundResponse(created), nil
}

// refundCopy duplicates source as a draft adjustment note pointing back at it.
func (s *PayslipEdiServiceImpl) refundCopy(source payslipedi.PayslipEdi) payslipedi.PayslipEdi {
	today := s.today()
	origin := source.ID
	return payslipedi.PayslipEdi{
		ID:              uuid.NewString(),
		CompanyID:       source.CompanyID,
		Name:            "Refund: " + source.Name,
		Number:          payslipedi.PlaceholderNumber,
		Note:            source.Note,
		ContractID:      source.ContractID,
		EmployeeID:      source.EmployeeID,
		CreditNote:      true,
		OriginPayslipID: &origin,
		State:           payslipedi.StateDraft,
		Date:            today,
		Month:           int(today.Month()),
		Year:            today.Year(),
		PayslipIDs:      append([]string(nil), source.PayslipIDs...),
		PaymentFormID:   source.PaymentFormID,
		PaymentMethodID: source.PaymentMethodID,
		EdiIsNotTest:    source.EdiIsNotTest,
	}
}

// ========== GATEWAY ==========

func (s *PayslipEdiServiceImpl) ValidateDian(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error) {
	return s.batch(ctx, ids, func(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error {
		if doc.State != payslipedi.StateDone {
			return nil
		}
		return s.validate(ctx, doc, co)
	})
}

// validate submits the document unless the company does not report payroll or it is already accepted.
func (s *PayslipEdiServiceImpl) validate(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error {
	if !co.PayrollGatewayEnabled() || doc.EdiIsValid {
		return nil
	}
	return s.submit(ctx, doc, co, s.gateway.Validate)
}

func (s *PayslipEdiServiceImpl) StatusZip(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error) {
	return s.batch(ctx, ids, func(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error {
		if !co.PayrollGatewayEnabled() {
			return nil
		}
		return s.submit(ctx, doc, co, s.gateway.StatusZip)
	})
}

func (s *PayslipEdiServiceImpl) StatusDocumentLog(ctx context.Context, ids []string) ([]payslipedi.PayslipEdiResponse, error) {
	return s.batch(ctx, ids, func(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error {
		if !co.PayrollGatewayEnabled() {
			return nil
		}
		return s.submit(ctx, doc, co, s.gateway.StatusDocumentLog)
	})
}

type gatewayCall func(ctx context.Context, p *payload.Payload, isNotTest bool) (payslipedi.Result, error)

// submit refreshes the payload, sends it and stores the gateway answer.
func (s *PayslipEdiServiceImpl) submit(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company, call gatewayCall) error {
	out, err := s.assemble(ctx, doc, co)
	if err != nil {
		return err
	}
	result, err := call(ctx, out, doc.EdiIsNotTest)
	if err != nil {
		return fmt.Errorf("failed to submit payslip edi %s: %w", doc.Number, err)
	}
	doc.ApplyResult(result)
	if err := s.repo.Update(ctx, *doc); err != nil {
		return err
	}
	s.logger.Info("payslip edi submitted",
		"id", doc.ID,
		"number", doc.Number,
		"is_valid", result.IsValid,
		"status_code", result.StatusCode,
	)
	return nil
}

// batch loads the documents of the caller's company and applies fn to each, in one transaction.
func (s *PayslipEdiServiceImpl) batch(
	ctx context.Context,
	ids []string,
	fn func(ctx context.Context, doc *payslipedi.PayslipEdi, co company.Company) error,
) ([]payslipedi.PayslipEdiResponse, error) {
	ids = distinct(ids)
	if len(ids) == 0 {
		return nil, payslipedi.ErrEmptyIDs
	}

	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var docs []payslipedi.PayslipEdi
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		co, err := s.companyRepo.GetByID(ctx, claims.CompanyID)
		if err != nil {
			return err
		}
		docs, err = s.repo.GetByIDs(ctx, ids, claims.CompanyID)
		if err != nil {
			return err
		}
		for i := range docs {
			if err := fn(ctx, &docs[i], co); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return payslipedi.NewPayslipEdiResponses(docs), nil
}

// distinct drops repeated ids, keeping the first occurrence, so a batch touches each record once.
func distinct(ids []string) []string {
	seen := make(map[string]struct{}, len(ids))
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
