package ruleinput

import (
	"context"
	"log/slog"

	"github.com/quanamco/payroll-edi/internal/domain/ruleinput"
	"github.com/quanamco/payroll-edi/internal/fixtures"
	"github.com/quanamco/payroll-edi/internal/pkg/database"
	"github.com/quanamco/payroll-edi/internal/pkg/jwt"
)

type RuleInputServiceImpl struct {
	transactor    database.Transactor
	ruleInputRepo ruleinput.RuleInputRepository
	logger        *slog.Logger
}

func NewRuleInputService(transactor database.Transactor, ruleInputRepo ruleinput.RuleInputRepository, logger *slog.Logger) ruleinput.RuleInputService {
	return &RuleInputServiceImpl{
		transactor:    transactor,
		ruleInputRepo: ruleInputRepo,
		logger:        logger,
	}
}

// List returns the rule inputs of the company, optionally filtered by concept ("earn" or "deduction").
func (s *RuleInputServiceImpl) List(ctx context.Context, concept string) ([]ruleinput.RuleInputResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return nil, err
	}

	var filter *ruleinput.TypeConcept
	if concept != "" {
		tc := ruleinput.TypeConcept(concept)
		if !tc.Valid() {
			return nil, ruleinput.ErrInvalidTypeConcept
		}
		filter = &tc
	}

	inputs, err := s.ruleInputRepo.List(ctx, claims.CompanyID, filter)
	if err != nil {
		return nil, err
	}

	out := make([]ruleinput.RuleInputResponse, 0, len(inputs))
	for _, ri := range inputs {
		out = append(out, ruleinput.NewRuleInputResponse(ri))
	}
	return out, nil
}

// SeedDefaults installs the default catalog for the company. Existing codes are refreshed.
func (s *RuleInputServiceImpl) SeedDefaults(ctx context.Context) (ruleinput.SeedResponse, error) {
	claims, err := jwt.ClaimsFromContext(ctx)
	if err != nil {
		return ruleinput.SeedResponse{}, err
	}

	defaults := fixtures.DefaultRuleInputs(claims.CompanyID)
	err = s.transactor.WithinTransaction(ctx, func(ctx context.Context) error {
		for _, ri := range defaults {
			if _, err := s.ruleInputRepo.Upsert(ctx, ri); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		s.logger.Error("failed to seed rule inputs", "company_id", claims.CompanyID, "error", err)
		return ruleinput.SeedResponse{}, err
	}

	s.logger.Info("seeded default rule inputs", "company_id", claims.CompanyID, "count", len(defaults))
	return ruleinput.SeedResponse{Seeded: len(defaults)}, nil
}
